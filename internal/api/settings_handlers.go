package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rxtech-lab/lp-factory/internal/models"
	"github.com/rxtech-lab/lp-factory/internal/services"
)

// handleGetSettings returns all settings with secrets masked
func (s *APIServer) handleGetSettings(c *fiber.Ctx) error {
	settings, err := s.settingsService.GetAllRedacted()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(settings)
}

// handleSaveSettings upserts every provided key
func (s *APIServer) handleSaveSettings(c *fiber.Ctx) error {
	var values map[string]string
	if err := c.BodyParser(&values); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := s.settingsService.SetAll(values); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

// Host accounts

func (s *APIServer) handleListHostAccounts(c *fiber.Ctx) error {
	accounts, err := s.hostAccountService.ListHostAccounts()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(accounts)
}

type createHostAccountRequest struct {
	Label  string `json:"label"`
	Email  string `json:"email" validate:"omitempty,email"`
	APIKey string `json:"apiKey"`
}

func (s *APIServer) handleCreateHostAccount(c *fiber.Ctx) error {
	var req createHostAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := s.validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	account := &models.HostAccount{Label: req.Label, Email: req.Email, APIKey: req.APIKey}
	if err := s.hostAccountService.CreateHostAccount(account); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"id": account.ID, "success": true})
}

func (s *APIServer) handleDeleteHostAccount(c *fiber.Ctx) error {
	if err := s.hostAccountService.DeleteHostAccount(c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

// Aggregates

func (s *APIServer) handleStats(c *fiber.Ctx) error {
	stats, err := s.statsService.GetStats()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(stats)
}

// handleInit returns every collection plus redacted settings, stats and
// integration flags in one payload for the initial client load.
func (s *APIServer) handleInit(c *fiber.Ctx) error {
	sites, err := s.siteService.ListSites()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	deploys, err := s.deployService.ListDeploys()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	variants, err := s.variantService.ListVariants()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	domains, err := s.opsService.ListDomains()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	accounts, err := s.opsService.ListAccounts()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	profiles, err := s.opsService.ListProfiles()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	payments, err := s.opsService.ListPayments()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	logs, err := s.opsService.ListLogs()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	hostAccounts, err := s.hostAccountService.ListHostAccounts()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	stats, err := s.statsService.GetStats()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	raw, err := s.settingsService.GetAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	redacted, err := s.settingsService.GetAllRedacted()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"sites":    sites,
		"deploys":  deploys,
		"variants": variants,
		"ops": fiber.Map{
			"domains":  domains,
			"accounts": accounts,
			"profiles": profiles,
			"payments": payments,
			"logs":     logs,
		},
		"hostAccounts": hostAccounts,
		"settings":     redacted,
		"stats":        stats,
		"integrations": fiber.Map{
			"cardConfigured":    raw[services.SettingCardToken] != "",
			"browserConfigured": raw[services.SettingBrowserToken] != "",
			"hostingConfigured": raw[services.SettingHostingToken] != "",
			"aiConfigured":      raw[services.SettingOpenAIKey] != "",
		},
	})
}
