package services

import (
	"math/rand"
	"time"

	"github.com/rxtech-lab/lp-factory/internal/models"
	"github.com/rxtech-lab/lp-factory/internal/theme"
	"github.com/rxtech-lab/lp-factory/internal/utils"
	"gorm.io/gorm"
)

// VariantService handles the saved variant registry
type VariantService interface {
	CreateVariant(variant *models.Variant) error
	CreateVariants(variants []models.Variant) (int, error)
	ListVariants() ([]models.Variant, error)
	DeleteVariant(id string) error
	GenerateVariants(count int, createdBy string) ([]models.Variant, error)
}

type variantService struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewVariantService creates a new VariantService
func NewVariantService(db *gorm.DB) VariantService {
	return &variantService{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateVariant persists one variant, filling blank axes with defaults
func (s *variantService) CreateVariant(variant *models.Variant) error {
	if variant.ID == "" {
		variant.ID = utils.NewID()
	}
	applyVariantDefaults(variant)
	return s.db.Create(variant).Error
}

func applyVariantDefaults(v *models.Variant) {
	if v.ColorID == "" {
		v.ColorID = "ocean"
	}
	if v.FontID == "" {
		v.FontID = "dm-sans"
	}
	if v.Layout == "" {
		v.Layout = "hero-left"
	}
	if v.RadiusID == "" {
		v.RadiusID = "rounded"
	}
	if v.CopyID == "" {
		v.CopyID = "smart"
	}
	if v.Sections == "" {
		v.Sections = "default"
	}
	if v.Compliance == "" {
		v.Compliance = "standard"
	}
}

// CreateVariants persists a client-provided batch and returns the count
func (s *variantService) CreateVariants(variants []models.Variant) (int, error) {
	if len(variants) == 0 {
		return 0, nil
	}
	for i := range variants {
		if variants[i].ID == "" {
			variants[i].ID = utils.NewID()
		}
	}
	if err := s.db.Create(&variants).Error; err != nil {
		return 0, err
	}
	return len(variants), nil
}

// ListVariants returns all saved variants, newest first
func (s *variantService) ListVariants() ([]models.Variant, error) {
	var variants []models.Variant
	err := s.db.Order("created_at DESC").Find(&variants).Error
	return variants, err
}

// DeleteVariant deletes a variant by its id
func (s *variantService) DeleteVariant(id string) error {
	return s.db.Where("id = ?", id).Delete(&models.Variant{}).Error
}

// GenerateVariants draws up to count low-similarity variants against the
// saved registry and persists whatever the generator produced. The result
// can be shorter than requested when the combination space is saturated.
func (s *variantService) GenerateVariants(count int, createdBy string) ([]models.Variant, error) {
	saved, err := s.ListVariants()
	if err != nil {
		return nil, err
	}

	population := make([]theme.Variant, len(saved))
	for i, v := range saved {
		population[i] = themeVariant(v)
	}

	generated := theme.GenerateBatch(s.rng, count, population)
	if len(generated) == 0 {
		return []models.Variant{}, nil
	}

	rows := make([]models.Variant, len(generated))
	for i, v := range generated {
		rows[i] = models.Variant{
			ID:         v.ID,
			ColorID:    v.ColorID,
			FontID:     v.FontID,
			Layout:     v.Layout,
			RadiusID:   v.RadiusID,
			CopyID:     v.CopyID,
			Sections:   v.Sections,
			Compliance: v.Compliance,
			CreatedBy:  createdBy,
		}
	}
	if err := s.db.Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func themeVariant(v models.Variant) theme.Variant {
	return theme.Variant{
		ID:         v.ID,
		ColorID:    v.ColorID,
		FontID:     v.FontID,
		Layout:     v.Layout,
		RadiusID:   v.RadiusID,
		CopyID:     v.CopyID,
		Sections:   v.Sections,
		Compliance: v.Compliance,
	}
}
