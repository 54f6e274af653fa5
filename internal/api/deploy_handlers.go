package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rxtech-lab/lp-factory/internal/models"
)

// handleListDeploys returns recent deploys, newest first
func (s *APIServer) handleListDeploys(c *fiber.Ctx) error {
	deploys, err := s.deployService.ListDeploys()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(deploys)
}

// handleCreateDeploy records a deploy performed elsewhere
func (s *APIServer) handleCreateDeploy(c *fiber.Ctx) error {
	var deploy models.Deploy
	if err := c.BodyParser(&deploy); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := s.deployService.CreateDeploy(&deploy); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"id": deploy.ID, "success": true})
}

// handleDeleteDeploy removes a deploy record
func (s *APIServer) handleDeleteDeploy(c *fiber.Ctx) error {
	if err := s.deployService.DeleteDeploy(c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}
