package services

import (
	"github.com/rxtech-lab/lp-factory/internal/models"
	"github.com/rxtech-lab/lp-factory/internal/utils"
	"gorm.io/gorm"
)

// SiteService handles site-related operations
type SiteService interface {
	CreateSite(site *models.Site) error
	SaveSite(site *models.Site) error
	GetSiteByID(id string) (*models.Site, error)
	ListSites() ([]models.Site, error)
	DeleteSite(id string) error
}

type siteService struct {
	db *gorm.DB
}

// NewSiteService creates a new SiteService
func NewSiteService(db *gorm.DB) SiteService {
	return &siteService{db: db}
}

// CreateSite persists a site, filling the id and any blank theme or offer
// fields with catalog defaults.
func (s *siteService) CreateSite(site *models.Site) error {
	if site.ID == "" {
		site.ID = utils.NewID()
	}
	applySiteDefaults(site)
	return s.db.Create(site).Error
}

func applySiteDefaults(site *models.Site) {
	if site.LoanType == "" {
		site.LoanType = "personal"
	}
	if site.AmountMin == 0 {
		site.AmountMin = 100
	}
	if site.AmountMax == 0 {
		site.AmountMax = 5000
	}
	if site.AprMin == 0 {
		site.AprMin = 5.99
	}
	if site.AprMax == 0 {
		site.AprMax = 35.99
	}
	if site.ColorID == "" {
		site.ColorID = "ocean"
	}
	if site.FontID == "" {
		site.FontID = "dm-sans"
	}
	if site.Layout == "" {
		site.Layout = "hero-left"
	}
	if site.RadiusID == "" {
		site.RadiusID = "rounded"
	}
	if site.Sections == "" {
		site.Sections = "default"
	}
	if site.Compliance == "" {
		site.Compliance = "standard"
	}
	if site.Network == "" {
		site.Network = "LeadsGate"
	}
	if site.Status == "" {
		site.Status = "completed"
	}
}

// SaveSite persists changes to an existing site
func (s *siteService) SaveSite(site *models.Site) error {
	return s.db.Save(site).Error
}

// GetSiteByID returns a site by its id
func (s *siteService) GetSiteByID(id string) (*models.Site, error) {
	var site models.Site
	if err := s.db.Where("id = ?", id).First(&site).Error; err != nil {
		return nil, err
	}
	return &site, nil
}

// ListSites returns all sites, newest first
func (s *siteService) ListSites() ([]models.Site, error) {
	var sites []models.Site
	err := s.db.Order("created_at DESC").Find(&sites).Error
	return sites, err
}

// DeleteSite deletes a site by its id
func (s *siteService) DeleteSite(id string) error {
	return s.db.Where("id = ?", id).Delete(&models.Site{}).Error
}
