package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rxtech-lab/lp-factory/internal/models"
)

// handleListVariants returns all saved variants, newest first
func (s *APIServer) handleListVariants(c *fiber.Ctx) error {
	variants, err := s.variantService.ListVariants()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(variants)
}

// handleCreateVariant saves one variant
func (s *APIServer) handleCreateVariant(c *fiber.Ctx) error {
	var variant models.Variant
	if err := c.BodyParser(&variant); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := s.variantService.CreateVariant(&variant); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"id": variant.ID, "success": true})
}

type variantBatchRequest struct {
	Variants []models.Variant `json:"variants"`
}

// handleCreateVariantBatch saves a client-provided batch
func (s *APIServer) handleCreateVariantBatch(c *fiber.Ctx) error {
	var req variantBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	count, err := s.variantService.CreateVariants(req.Variants)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "count": count})
}

type generateVariantsRequest struct {
	Count     int    `json:"count"`
	CreatedBy string `json:"createdBy"`
}

// handleGenerateVariants runs the low-similarity batch generator against
// the saved registry and persists the result. The response can hold fewer
// variants than requested when the combination space is saturated.
func (s *APIServer) handleGenerateVariants(c *fiber.Ctx) error {
	var req generateVariantsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Count <= 0 {
		req.Count = 5
	}
	variants, err := s.variantService.GenerateVariants(req.Count, req.CreatedBy)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "count": len(variants), "variants": variants})
}

// handleDeleteVariant removes a variant from the registry
func (s *APIServer) handleDeleteVariant(c *fiber.Ctx) error {
	if err := s.variantService.DeleteVariant(c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}
