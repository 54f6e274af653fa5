package services

import (
	"github.com/rxtech-lab/lp-factory/internal/models"
	"gorm.io/gorm"
)

// Redacted is the placeholder returned in place of a stored secret value.
const Redacted = "••••"

// Well-known setting keys. Arbitrary keys are accepted and stored; the
// registry below only drives redaction and integration flags.
const (
	SettingAPIKey                 = "apiKey"
	SettingOpenAIKey              = "openaiKey"
	SettingGeminiKey              = "geminiKey"
	SettingHostingToken           = "hostingToken"
	SettingCardToken              = "cardToken"
	SettingCardTeamUUID           = "cardTeamUuid"
	SettingBrowserToken           = "browserToken"
	SettingBrowserEmail           = "browserEmail"
	SettingBrowserPassword        = "browserPassword"
	SettingBrowserFolderID        = "browserFolderId"
	SettingBrowserAutomationToken = "browserAutomationToken"
)

// secretKeys never leave the process unredacted.
var secretKeys = map[string]bool{
	SettingAPIKey:          true,
	SettingOpenAIKey:       true,
	SettingGeminiKey:       true,
	SettingHostingToken:    true,
	SettingCardToken:       true,
	SettingBrowserToken:    true,
	SettingBrowserPassword: true,
}

// SettingsService handles key-value configuration
type SettingsService interface {
	Get(key string) (string, error)
	Set(key, value string) error
	SetAll(values map[string]string) error
	GetAll() (map[string]string, error)
	GetAllRedacted() (map[string]string, error)
}

type settingsService struct {
	db *gorm.DB
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(db *gorm.DB) SettingsService {
	return &settingsService{db: db}
}

// Get returns the raw stored value for a key, empty when unset. Raw values
// are for internal integration use only and must not be returned to clients.
func (s *settingsService) Get(key string) (string, error) {
	var setting models.Setting
	err := s.db.Where("key = ?", key).First(&setting).Error
	if err == gorm.ErrRecordNotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

// Set upserts one setting
func (s *settingsService) Set(key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	return s.db.Save(&setting).Error
}

// SetAll upserts every provided key
func (s *settingsService) SetAll(values map[string]string) error {
	for key, value := range values {
		if err := s.Set(key, value); err != nil {
			return err
		}
	}
	return nil
}

// GetAll returns all settings unredacted
func (s *settingsService) GetAll() (map[string]string, error) {
	var settings []models.Setting
	if err := s.db.Find(&settings).Error; err != nil {
		return nil, err
	}
	values := make(map[string]string, len(settings))
	for _, setting := range settings {
		values[setting.Key] = setting.Value
	}
	return values, nil
}

// GetAllRedacted returns all settings with secret values masked. An unset
// secret stays empty so clients can tell configured from unconfigured.
func (s *settingsService) GetAllRedacted() (map[string]string, error) {
	values, err := s.GetAll()
	if err != nil {
		return nil, err
	}
	for key, value := range values {
		if secretKeys[key] && value != "" {
			values[key] = Redacted
		}
	}
	return values, nil
}
