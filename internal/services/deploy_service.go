package services

import (
	"github.com/rxtech-lab/lp-factory/internal/models"
	"github.com/rxtech-lab/lp-factory/internal/utils"
	"gorm.io/gorm"
)

// deployListLimit caps the deploy history returned to clients.
const deployListLimit = 100

// DeployService handles deploy history records
type DeployService interface {
	CreateDeploy(deploy *models.Deploy) error
	ListDeploys() ([]models.Deploy, error)
	DeleteDeploy(id string) error
	HasDeployForSite(siteID string) (bool, error)
}

type deployService struct {
	db *gorm.DB
}

// NewDeployService creates a new DeployService
func NewDeployService(db *gorm.DB) DeployService {
	return &deployService{db: db}
}

// CreateDeploy records one deploy attempt
func (s *deployService) CreateDeploy(deploy *models.Deploy) error {
	if deploy.ID == "" {
		deploy.ID = utils.NewID()
	}
	if deploy.Type == "" {
		deploy.Type = models.DeployTypeNew
	}
	return s.db.Create(deploy).Error
}

// ListDeploys returns the most recent deploys, newest first
func (s *deployService) ListDeploys() ([]models.Deploy, error) {
	var deploys []models.Deploy
	err := s.db.Order("created_at DESC").Limit(deployListLimit).Find(&deploys).Error
	return deploys, err
}

// DeleteDeploy deletes a deploy record by its id
func (s *deployService) DeleteDeploy(id string) error {
	return s.db.Where("id = ?", id).Delete(&models.Deploy{}).Error
}

// HasDeployForSite reports whether the site has been deployed before,
// which distinguishes a redeploy from a first deploy.
func (s *deployService) HasDeployForSite(siteID string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Deploy{}).Where("site_id = ?", siteID).Count(&count).Error
	return count > 0, err
}
