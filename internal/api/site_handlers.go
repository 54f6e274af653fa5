package api

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rxtech-lab/lp-factory/internal/archive"
	"github.com/rxtech-lab/lp-factory/internal/hosting"
	"github.com/rxtech-lab/lp-factory/internal/lp"
	"github.com/rxtech-lab/lp-factory/internal/models"
	"github.com/rxtech-lab/lp-factory/internal/services"
	"github.com/rxtech-lab/lp-factory/internal/theme"
)

// handleListSites returns all sites, newest first
func (s *APIServer) handleListSites(c *fiber.Ctx) error {
	sites, err := s.siteService.ListSites()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(sites)
}

// handleCreateSite persists a new site
func (s *APIServer) handleCreateSite(c *fiber.Ctx) error {
	var site models.Site
	if err := c.BodyParser(&site); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := s.siteService.CreateSite(&site); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"id": site.ID, "success": true})
}

// handleDeleteSite deletes a site; its deploy history stays
func (s *APIServer) handleDeleteSite(c *fiber.Ctx) error {
	if err := s.siteService.DeleteSite(c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

// handleSiteTheme returns the serialized theme document for a site
func (s *APIServer) handleSiteTheme(c *fiber.Ctx) error {
	site, err := s.siteService.GetSiteByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Site not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(theme.Serialize(site))
}

// handleSitePage returns the generated landing page HTML
func (s *APIServer) handleSitePage(c *fiber.Ctx) error {
	site, err := s.siteService.GetSiteByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Site not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	html, err := lp.Generate(site)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set("Content-Type", "text/html; charset=utf-8")
	return c.SendString(html)
}

type deploySiteRequest struct {
	DeployedBy string `json:"deployedBy"`
}

// handleDeploySite packs the generated page and pushes it to the hosting
// provider, recording a deploy row on success.
func (s *APIServer) handleDeploySite(c *fiber.Ctx) error {
	site, err := s.siteService.GetSiteByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Site not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	token, err := s.settingsService.Get(services.SettingHostingToken)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if token == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Hosting token not configured"})
	}

	var req deploySiteRequest
	_ = c.BodyParser(&req)

	html, err := lp.Generate(site)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Minute)
	defer cancel()

	client := s.hostingClient(token)
	slug := hosting.Slug(site.Domain, site.Brand, site.ID)
	hostSite, err := client.EnsureSite(ctx, slug)
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": fmt.Sprintf("hosting site: %v", err)})
	}

	if err := client.DeployZip(ctx, hostSite.ID, archive.PackSingleFile("index.html", []byte(html))); err != nil {
		return c.Status(502).JSON(fiber.Map{"error": fmt.Sprintf("deploy: %v", err)})
	}

	deployType := models.DeployTypeNew
	hasPrior, err := s.deployService.HasDeployForSite(site.ID)
	if err == nil && hasPrior {
		deployType = models.DeployTypeRedeploy
	}

	url := hosting.SiteURL(hostSite, slug)
	deploy := &models.Deploy{
		SiteID:     site.ID,
		Brand:      site.Brand,
		URL:        url,
		Type:       deployType,
		DeployedBy: req.DeployedBy,
	}
	if err := s.deployService.CreateDeploy(deploy); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "url": url, "type": deployType, "deployId": deploy.ID})
}
