package services

import (
	"github.com/rxtech-lab/lp-factory/internal/models"
	"gorm.io/gorm"
)

// Stats are the dashboard aggregates computed on demand
type Stats struct {
	Builds   int64   `json:"builds"`
	Spend    float64 `json:"spend"`
	Deployed int64   `json:"deployed"`
	Domains  int64   `json:"domains"`
}

// StatsService computes dashboard aggregates
type StatsService interface {
	GetStats() (*Stats, error)
}

type statsService struct {
	db *gorm.DB
}

// NewStatsService creates a new StatsService
func NewStatsService(db *gorm.DB) StatsService {
	return &statsService{db: db}
}

// GetStats counts builds, total spend, deploys and domains
func (s *statsService) GetStats() (*Stats, error) {
	stats := &Stats{}

	if err := s.db.Model(&models.Site{}).Count(&stats.Builds).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Site{}).
		Select("COALESCE(SUM(cost), 0)").Scan(&stats.Spend).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Deploy{}).Count(&stats.Deployed).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Domain{}).Count(&stats.Domains).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
