package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/rxtech-lab/lp-factory/internal/models"
	"github.com/rxtech-lab/lp-factory/internal/services"
)

// Domains

func (s *APIServer) handleListDomains(c *fiber.Ctx) error {
	domains, err := s.opsService.ListDomains()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(domains)
}

func (s *APIServer) handleCreateDomain(c *fiber.Ctx) error {
	var domain models.Domain
	if err := c.BodyParser(&domain); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := s.opsService.CreateDomain(&domain); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"id": domain.ID, "success": true})
}

func (s *APIServer) handleDeleteDomain(c *fiber.Ctx) error {
	if err := s.opsService.DeleteDomain(c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

// Accounts

func (s *APIServer) handleListAccounts(c *fiber.Ctx) error {
	accounts, err := s.opsService.ListAccounts()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(accounts)
}

func (s *APIServer) handleCreateAccount(c *fiber.Ctx) error {
	var account models.Account
	if err := c.BodyParser(&account); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := s.opsService.CreateAccount(&account); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"id": account.ID, "success": true})
}

func (s *APIServer) handleUpdateAccount(c *fiber.Ctx) error {
	return s.partialUpdate(c, s.opsService.UpdateAccount)
}

func (s *APIServer) handleDeleteAccount(c *fiber.Ctx) error {
	if err := s.opsService.DeleteAccount(c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

// Profiles

func (s *APIServer) handleListProfiles(c *fiber.Ctx) error {
	profiles, err := s.opsService.ListProfiles()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(profiles)
}

func (s *APIServer) handleCreateProfile(c *fiber.Ctx) error {
	var profile models.Profile
	if err := c.BodyParser(&profile); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := s.opsService.CreateProfile(&profile); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"id": profile.ID, "success": true})
}

func (s *APIServer) handleUpdateProfile(c *fiber.Ctx) error {
	return s.partialUpdate(c, s.opsService.UpdateProfile)
}

func (s *APIServer) handleDeleteProfile(c *fiber.Ctx) error {
	if err := s.opsService.DeleteProfile(c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

// Payments

func (s *APIServer) handleListPayments(c *fiber.Ctx) error {
	payments, err := s.opsService.ListPayments()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(payments)
}

func (s *APIServer) handleCreatePayment(c *fiber.Ctx) error {
	var payment models.Payment
	if err := c.BodyParser(&payment); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := s.opsService.CreatePayment(&payment); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"id": payment.ID, "success": true})
}

func (s *APIServer) handleUpdatePayment(c *fiber.Ctx) error {
	return s.partialUpdate(c, s.opsService.UpdatePayment)
}

func (s *APIServer) handleDeletePayment(c *fiber.Ctx) error {
	if err := s.opsService.DeletePayment(c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

// partialUpdate parses an arbitrary JSON object and hands it to the given
// whitelisted update; a rejected update maps to 400.
func (s *APIServer) partialUpdate(c *fiber.Ctx, update func(id string, fields map[string]any) error) error {
	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := update(c.Params("id"), fields); err != nil {
		if errors.Is(err, services.ErrNoFieldsToUpdate) {
			return c.Status(400).JSON(fiber.Map{"error": "No fields to update"})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

// Audit log and risk

func (s *APIServer) handleListLogs(c *fiber.Ctx) error {
	logs, err := s.opsService.ListLogs()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(logs)
}

func (s *APIServer) handleListRisks(c *fiber.Ctx) error {
	findings, err := s.opsService.Risks()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(findings)
}
