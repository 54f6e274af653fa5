package api

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/rxtech-lab/lp-factory/internal/api/middleware"
	"github.com/rxtech-lab/lp-factory/internal/assetgen"
	"github.com/rxtech-lab/lp-factory/internal/browserprofile"
	"github.com/rxtech-lab/lp-factory/internal/cardissuer"
	"github.com/rxtech-lab/lp-factory/internal/copygen"
	"github.com/rxtech-lab/lp-factory/internal/hosting"
	"github.com/rxtech-lab/lp-factory/internal/services"
)

// APIServer is the HTTP surface of the landing page factory.
type APIServer struct {
	app      *fiber.App
	validate *validator.Validate

	siteService        services.SiteService
	deployService      services.DeployService
	variantService     services.VariantService
	opsService         services.OpsService
	settingsService    services.SettingsService
	hostAccountService services.HostAccountService
	statsService       services.StatsService

	// integration client constructors, replaceable in tests
	hostingClient  func(token string) *hosting.Client
	cardClient     func(token, teamUUID string) *cardissuer.Client
	browserClient  *browserprofile.Client
	copyGenerator  func(apiKey string) copygen.Generator
	assetGenerator func(apiKey string) assetgen.Generator

	port int
}

// ServerConfig wires the services and options into the server.
type ServerConfig struct {
	// APISecret, when set, requires a matching bearer token on every route.
	APISecret string

	SiteService        services.SiteService
	DeployService      services.DeployService
	VariantService     services.VariantService
	OpsService         services.OpsService
	SettingsService    services.SettingsService
	HostAccountService services.HostAccountService
	StatsService       services.StatsService
}

// NewAPIServer creates the server with middleware and routes registered.
func NewAPIServer(cfg ServerConfig) *APIServer {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// Add middleware
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	app.Use(middleware.AuthMiddleware(middleware.AuthConfig{Secret: cfg.APISecret}))

	server := &APIServer{
		app:                app,
		validate:           validator.New(),
		siteService:        cfg.SiteService,
		deployService:      cfg.DeployService,
		variantService:     cfg.VariantService,
		opsService:         cfg.OpsService,
		settingsService:    cfg.SettingsService,
		hostAccountService: cfg.HostAccountService,
		statsService:       cfg.StatsService,
		hostingClient:      hosting.NewClient,
		cardClient:         cardissuer.NewClient,
		browserClient:      browserprofile.NewClient(),
		copyGenerator:      copygen.NewGenerator,
		assetGenerator:     assetgen.NewGenerator,
	}
	server.setupRoutes()
	return server
}

func (s *APIServer) setupRoutes() {
	// Sites and per-site derived artifacts
	s.app.Get("/api/sites", s.handleListSites)
	s.app.Post("/api/sites", s.handleCreateSite)
	s.app.Delete("/api/sites/:id", s.handleDeleteSite)
	s.app.Get("/api/sites/:id/theme", s.handleSiteTheme)
	s.app.Get("/api/sites/:id/page", s.handleSitePage)
	s.app.Post("/api/sites/:id/deploy", s.handleDeploySite)

	// Deploy history
	s.app.Get("/api/deploys", s.handleListDeploys)
	s.app.Post("/api/deploys", s.handleCreateDeploy)
	s.app.Delete("/api/deploys/:id", s.handleDeleteDeploy)

	// Variant registry
	s.app.Get("/api/variants", s.handleListVariants)
	s.app.Post("/api/variants", s.handleCreateVariant)
	s.app.Post("/api/variants/batch", s.handleCreateVariantBatch)
	s.app.Post("/api/variants/generate", s.handleGenerateVariants)
	s.app.Delete("/api/variants/:id", s.handleDeleteVariant)

	// Ops entities
	s.app.Get("/api/ops/domains", s.handleListDomains)
	s.app.Post("/api/ops/domains", s.handleCreateDomain)
	s.app.Delete("/api/ops/domains/:id", s.handleDeleteDomain)

	s.app.Get("/api/ops/accounts", s.handleListAccounts)
	s.app.Post("/api/ops/accounts", s.handleCreateAccount)
	s.app.Put("/api/ops/accounts/:id", s.handleUpdateAccount)
	s.app.Delete("/api/ops/accounts/:id", s.handleDeleteAccount)

	s.app.Get("/api/ops/profiles", s.handleListProfiles)
	s.app.Post("/api/ops/profiles", s.handleCreateProfile)
	s.app.Put("/api/ops/profiles/:id", s.handleUpdateProfile)
	s.app.Delete("/api/ops/profiles/:id", s.handleDeleteProfile)

	s.app.Get("/api/ops/payments", s.handleListPayments)
	s.app.Post("/api/ops/payments", s.handleCreatePayment)
	s.app.Put("/api/ops/payments/:id", s.handleUpdatePayment)
	s.app.Delete("/api/ops/payments/:id", s.handleDeletePayment)

	s.app.Get("/api/ops/logs", s.handleListLogs)
	s.app.Get("/api/ops/risks", s.handleListRisks)

	// Settings and aggregates
	s.app.Get("/api/settings", s.handleGetSettings)
	s.app.Post("/api/settings", s.handleSaveSettings)

	s.app.Get("/api/host-accounts", s.handleListHostAccounts)
	s.app.Post("/api/host-accounts", s.handleCreateHostAccount)
	s.app.Delete("/api/host-accounts/:id", s.handleDeleteHostAccount)

	s.app.Get("/api/stats", s.handleStats)
	s.app.Get("/api/init", s.handleInit)

	// AI copy and asset generation
	s.app.Post("/api/ai/generate-copy", s.handleGenerateCopy)
	s.app.Post("/api/ai/generate-assets", s.handleGenerateAssets)

	// Card issuer proxy
	s.app.Get("/api/cards", s.handleListCards)
	s.app.Post("/api/cards", s.handleCreateCard)
	s.app.Put("/api/cards/:uuid/limit", s.handleCardLimit)
	s.app.Put("/api/cards/:uuid/:action", s.handleCardAction)
	s.app.Get("/api/cards/meta/:resource", s.handleCardMeta)
	s.app.Post("/api/cards/billing", s.handleCreateBilling)

	// Browser profile proxy
	s.app.Post("/api/browser/signin", s.handleBrowserSignin)
	s.app.Post("/api/browser/refresh-token", s.handleBrowserRefreshToken)
	s.app.Post("/api/browser/automation-token", s.handleBrowserAutomationToken)
	s.app.Get("/api/browser/folders", s.handleBrowserListFolders)
	s.app.Get("/api/browser/profiles", s.handleBrowserListProfiles)
	s.app.Post("/api/browser/profiles", s.handleBrowserCreateProfile)
	s.app.Get("/api/browser/profiles/active", s.handleBrowserActiveProfiles)
	s.app.Post("/api/browser/profiles/sync", s.handleBrowserSyncProfiles)
	s.app.Patch("/api/browser/profiles/update", s.handleBrowserUpdateProfile)
	s.app.Post("/api/browser/profiles/:id/clone", s.handleBrowserCloneProfile)
	s.app.Post("/api/browser/profiles/:id/:action", s.handleBrowserProfileAction)
	s.app.Delete("/api/browser/profiles", s.handleBrowserDeleteProfiles)

	// Health check
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(map[string]string{"status": "ok"})
	})

	// JSON 404 for everything else
	s.app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	})
}

// Start starts the server on the given port without blocking.
func (s *APIServer) Start(port int) error {
	s.port = port
	go func() {
		if err := s.app.Listen(fmt.Sprintf(":%d", port)); err != nil {
			log.Printf("Error starting API server: %v\n", err)
		}
	}()
	return nil
}

func (s *APIServer) Shutdown() error {
	return s.app.Shutdown()
}

func (s *APIServer) GetPort() int {
	return s.port
}

// App exposes the underlying fiber app for tests.
func (s *APIServer) App() *fiber.App {
	return s.app
}
