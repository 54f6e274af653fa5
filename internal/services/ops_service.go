package services

import (
	"fmt"

	"github.com/rxtech-lab/lp-factory/internal/models"
	"github.com/rxtech-lab/lp-factory/internal/risk"
	"github.com/rxtech-lab/lp-factory/internal/utils"
	"gorm.io/gorm"
)

// opsLogLimit caps the audit log returned to clients.
const opsLogLimit = 200

// Column whitelists for partial updates. Keys are the camelCase JSON field
// names; id and createdAt are never updatable. Anything not listed is
// silently dropped.
var (
	accountCols = whitelist("label", "email", "paymentId", "budget", "status",
		"cardUuid", "cardLast4", "cardStatus", "profileId", "proxyIp", "monthlySpend")

	profileCols = whitelist("name", "proxyIp", "browserType", "os", "status",
		"remoteId", "remoteFolderId", "remoteStatus", "proxyHost", "proxyPort",
		"proxyUser", "proxyPass", "proxyType", "fingerprintOs",
		"lastStartedAt", "lastStoppedAt", "accountId")

	paymentCols = whitelist("label", "type", "last4", "bankName", "status",
		"issuerCardUuid", "issuerBinUuid", "cardLimit", "cardExpiry", "totalSpend")
)

func whitelist(keys ...string) map[string]bool {
	m := make(map[string]bool, len(keys))
	for _, k := range keys {
		m[k] = true
	}
	return m
}

// OpsService handles the advertising-operations entities and their audit log
type OpsService interface {
	ListDomains() ([]models.Domain, error)
	CreateDomain(domain *models.Domain) error
	DeleteDomain(id string) error

	ListAccounts() ([]models.Account, error)
	CreateAccount(account *models.Account) error
	UpdateAccount(id string, fields map[string]any) error
	DeleteAccount(id string) error

	ListProfiles() ([]models.Profile, error)
	CreateProfile(profile *models.Profile) error
	CreateMirroredProfile(profile *models.Profile) error
	UpdateProfile(id string, fields map[string]any) error
	DeleteProfile(id string) error
	GetProfileByRemoteID(remoteID string) (*models.Profile, error)
	UpdateProfileByRemoteID(remoteID string, cols map[string]any) error
	DeleteProfilesByRemoteIDs(remoteIDs []string) (int64, error)
	ListActiveProfiles() ([]models.Profile, error)

	ListPayments() ([]models.Payment, error)
	CreatePayment(payment *models.Payment) error
	UpdatePayment(id string, fields map[string]any) error
	DeletePayment(id string) error

	ListLogs() ([]models.OpsLog, error)
	AppendLog(msg string) error

	Risks() ([]risk.Finding, error)
}

type opsService struct {
	db *gorm.DB
}

// NewOpsService creates a new OpsService
func NewOpsService(db *gorm.DB) OpsService {
	return &opsService{db: db}
}

// Domains

func (s *opsService) ListDomains() ([]models.Domain, error) {
	var domains []models.Domain
	err := s.db.Order("created_at DESC").Find(&domains).Error
	return domains, err
}

func (s *opsService) CreateDomain(domain *models.Domain) error {
	if domain.ID == "" {
		domain.ID = utils.NewID()
	}
	if domain.Status == "" {
		domain.Status = "active"
	}
	if err := s.db.Create(domain).Error; err != nil {
		return err
	}
	return s.AppendLog(fmt.Sprintf("Added domain: %s", domain.Domain))
}

func (s *opsService) DeleteDomain(id string) error {
	label := id
	var domain models.Domain
	if err := s.db.Where("id = ?", id).First(&domain).Error; err == nil {
		label = domain.Domain
	}
	if err := s.db.Where("id = ?", id).Delete(&models.Domain{}).Error; err != nil {
		return err
	}
	return s.AppendLog(fmt.Sprintf("Deleted domain: %s", label))
}

// Accounts

func (s *opsService) ListAccounts() ([]models.Account, error) {
	var accounts []models.Account
	err := s.db.Order("created_at DESC").Find(&accounts).Error
	return accounts, err
}

func (s *opsService) CreateAccount(account *models.Account) error {
	if account.ID == "" {
		account.ID = utils.NewID()
	}
	if account.Status == "" {
		account.Status = "active"
	}
	if err := s.db.Create(account).Error; err != nil {
		return err
	}
	return s.AppendLog(fmt.Sprintf("Added account: %s", account.Label))
}

func (s *opsService) UpdateAccount(id string, fields map[string]any) error {
	if err := s.update(&models.Account{}, id, fields, accountCols); err != nil {
		return err
	}
	return s.AppendLog(fmt.Sprintf("Updated account: %s", id))
}

func (s *opsService) DeleteAccount(id string) error {
	label := id
	var account models.Account
	if err := s.db.Where("id = ?", id).First(&account).Error; err == nil && account.Label != "" {
		label = account.Label
	}
	if err := s.db.Where("id = ?", id).Delete(&models.Account{}).Error; err != nil {
		return err
	}
	return s.AppendLog(fmt.Sprintf("Deleted account: %s", label))
}

// Profiles

func (s *opsService) ListProfiles() ([]models.Profile, error) {
	var profiles []models.Profile
	err := s.db.Order("created_at DESC").Find(&profiles).Error
	return profiles, err
}

func (s *opsService) CreateProfile(profile *models.Profile) error {
	if profile.ID == "" {
		profile.ID = utils.NewID()
	}
	if profile.Status == "" {
		profile.Status = "active"
	}
	if err := s.db.Create(profile).Error; err != nil {
		return err
	}
	return s.AppendLog(fmt.Sprintf("Added profile: %s", profile.Name))
}

// CreateMirroredProfile creates a profile row mirroring a remote browser
// profile. The caller writes its own audit entry, so this one does not log.
func (s *opsService) CreateMirroredProfile(profile *models.Profile) error {
	if profile.ID == "" {
		profile.ID = utils.NewID()
	}
	if profile.Status == "" {
		profile.Status = "active"
	}
	return s.db.Create(profile).Error
}

func (s *opsService) UpdateProfile(id string, fields map[string]any) error {
	if err := s.update(&models.Profile{}, id, fields, profileCols); err != nil {
		return err
	}
	return s.AppendLog(fmt.Sprintf("Updated profile: %s", id))
}

func (s *opsService) DeleteProfile(id string) error {
	label := id
	var profile models.Profile
	if err := s.db.Where("id = ?", id).First(&profile).Error; err == nil && profile.Name != "" {
		label = profile.Name
	}
	if err := s.db.Where("id = ?", id).Delete(&models.Profile{}).Error; err != nil {
		return err
	}
	return s.AppendLog(fmt.Sprintf("Deleted profile: %s", label))
}

// GetProfileByRemoteID returns the profile mirroring a remote browser
// profile, or gorm.ErrRecordNotFound when none mirrors it.
func (s *opsService) GetProfileByRemoteID(remoteID string) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.Where("remote_id = ?", remoteID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfileByRemoteID applies already-resolved column values to the
// mirrored profile row. Unlike UpdateProfile the keys here are column
// names, not client input, so no whitelist applies.
func (s *opsService) UpdateProfileByRemoteID(remoteID string, cols map[string]any) error {
	if len(cols) == 0 {
		return nil
	}
	return s.db.Model(&models.Profile{}).Where("remote_id = ?", remoteID).Updates(cols).Error
}

func (s *opsService) DeleteProfilesByRemoteIDs(remoteIDs []string) (int64, error) {
	if len(remoteIDs) == 0 {
		return 0, nil
	}
	result := s.db.Where("remote_id IN ?", remoteIDs).Delete(&models.Profile{})
	return result.RowsAffected, result.Error
}

// ListActiveProfiles returns mirrored profiles whose remote browser is
// currently running, most recently started first.
func (s *opsService) ListActiveProfiles() ([]models.Profile, error) {
	var profiles []models.Profile
	err := s.db.Where("remote_status = ?", "running").
		Order("last_started_at DESC").Find(&profiles).Error
	return profiles, err
}

// Payments

func (s *opsService) ListPayments() ([]models.Payment, error) {
	var payments []models.Payment
	err := s.db.Order("created_at DESC").Find(&payments).Error
	return payments, err
}

func (s *opsService) CreatePayment(payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = utils.NewID()
	}
	if payment.Status == "" {
		payment.Status = "active"
	}
	if err := s.db.Create(payment).Error; err != nil {
		return err
	}
	return s.AppendLog(fmt.Sprintf("Added payment: %s", payment.Label))
}

func (s *opsService) UpdatePayment(id string, fields map[string]any) error {
	if err := s.update(&models.Payment{}, id, fields, paymentCols); err != nil {
		return err
	}
	return s.AppendLog(fmt.Sprintf("Updated payment: %s", id))
}

func (s *opsService) DeletePayment(id string) error {
	label := id
	var payment models.Payment
	if err := s.db.Where("id = ?", id).First(&payment).Error; err == nil && payment.Label != "" {
		label = payment.Label
	}
	if err := s.db.Where("id = ?", id).Delete(&models.Payment{}).Error; err != nil {
		return err
	}
	return s.AppendLog(fmt.Sprintf("Deleted payment: %s", label))
}

// update applies a whitelisted partial update: camelCase keys become
// snake_case columns, unknown keys are dropped, and an update with nothing
// left is rejected without touching the store.
func (s *opsService) update(model any, id string, fields map[string]any, allowed map[string]bool) error {
	cols := make(map[string]any, len(fields))
	for key, value := range fields {
		if key == "id" || key == "createdAt" {
			continue
		}
		if !allowed[key] {
			continue
		}
		cols[utils.CamelToSnake(key)] = value
	}
	if len(cols) == 0 {
		return ErrNoFieldsToUpdate
	}
	return s.db.Model(model).Where("id = ?", id).Updates(cols).Error
}

// Audit log

// ListLogs returns the most recent audit entries, newest first
func (s *opsService) ListLogs() ([]models.OpsLog, error) {
	var logs []models.OpsLog
	err := s.db.Order("created_at DESC").Limit(opsLogLimit).Find(&logs).Error
	return logs, err
}

// AppendLog records one audit entry
func (s *opsService) AppendLog(msg string) error {
	return s.db.Create(&models.OpsLog{ID: utils.NewID(), Msg: msg}).Error
}

// Risk

// Risks recomputes the operational risk findings from current data
func (s *opsService) Risks() ([]risk.Finding, error) {
	domains, err := s.ListDomains()
	if err != nil {
		return nil, err
	}
	accounts, err := s.ListAccounts()
	if err != nil {
		return nil, err
	}
	profiles, err := s.ListProfiles()
	if err != nil {
		return nil, err
	}
	payments, err := s.ListPayments()
	if err != nil {
		return nil, err
	}
	return risk.Detect(domains, accounts, profiles, payments), nil
}
