package services

import (
	"github.com/rxtech-lab/lp-factory/internal/models"
	"github.com/rxtech-lab/lp-factory/internal/utils"
	"gorm.io/gorm"
)

// HostAccountService handles hosting provider accounts
type HostAccountService interface {
	ListHostAccounts() ([]models.HostAccount, error)
	CreateHostAccount(account *models.HostAccount) error
	DeleteHostAccount(id string) error
}

type hostAccountService struct {
	db *gorm.DB
}

// NewHostAccountService creates a new HostAccountService
func NewHostAccountService(db *gorm.DB) HostAccountService {
	return &hostAccountService{db: db}
}

// ListHostAccounts returns all host accounts sorted by label
func (s *hostAccountService) ListHostAccounts() ([]models.HostAccount, error) {
	var accounts []models.HostAccount
	err := s.db.Order("label ASC").Find(&accounts).Error
	return accounts, err
}

// CreateHostAccount persists a host account
func (s *hostAccountService) CreateHostAccount(account *models.HostAccount) error {
	if account.ID == "" {
		account.ID = utils.NewID()
	}
	return s.db.Create(account).Error
}

// DeleteHostAccount deletes a host account by its id
func (s *hostAccountService) DeleteHostAccount(id string) error {
	return s.db.Where("id = ?", id).Delete(&models.HostAccount{}).Error
}
