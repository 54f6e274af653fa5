package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rxtech-lab/lp-factory/internal/assetgen"
	"github.com/rxtech-lab/lp-factory/internal/copygen"
	"github.com/rxtech-lab/lp-factory/internal/services"
)

type generateCopyRequest struct {
	Brand     string `json:"brand" validate:"required"`
	LoanType  string `json:"loanType"`
	AmountMin int    `json:"amountMin"`
	AmountMax int    `json:"amountMax"`
	Lang      string `json:"lang"`
	// SiteID, when set, applies the result to that site's blank copy fields.
	SiteID string `json:"siteId"`
}

// handleGenerateCopy asks the AI provider for a landing page copy set
func (s *APIServer) handleGenerateCopy(c *fiber.Ctx) error {
	var req generateCopyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := s.validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	apiKey, err := s.settingsService.Get(services.SettingOpenAIKey)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if apiKey == "" {
		return c.Status(400).JSON(fiber.Map{"error": "OpenAI key not configured"})
	}

	generator := s.copyGenerator(apiKey)
	copySet, err := generator.GenerateCopy(c.Context(), copygen.Request{
		Brand:     req.Brand,
		LoanType:  req.LoanType,
		AmountMin: req.AmountMin,
		AmountMax: req.AmountMax,
		Lang:      req.Lang,
	})
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": err.Error()})
	}

	if req.SiteID != "" {
		site, err := s.siteService.GetSiteByID(req.SiteID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(404).JSON(fiber.Map{"error": "Site not found"})
			}
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		copygen.FillBlankFields(site, copySet)
		if err := s.siteService.SaveSite(site); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.JSON(copySet)
}

type generateAssetsRequest struct {
	Brand string `json:"brand" validate:"required"`
	Type  string `json:"type"`
	Style string `json:"style"`
}

// handleGenerateAssets refines an image prompt for the brand and returns
// the generated image URL alongside it
func (s *APIServer) handleGenerateAssets(c *fiber.Ctx) error {
	var req generateAssetsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := s.validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	apiKey, err := s.settingsService.Get(services.SettingGeminiKey)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if apiKey == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Gemini key not configured"})
	}

	asset, err := s.assetGenerator(apiKey).GenerateAsset(c.Context(), assetgen.Request{
		Brand: req.Brand,
		Type:  req.Type,
		Style: req.Style,
	})
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(asset)
}
