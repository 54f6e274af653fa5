package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/rxtech-lab/lp-factory/internal/api"
	"github.com/rxtech-lab/lp-factory/internal/config"
	"github.com/rxtech-lab/lp-factory/internal/services"
)

// Build information (set via ldflags)
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildTime  = "unknown"
)

func main() {
	// Command line flags
	var showVersion = flag.Bool("version", false, "Show version information")
	var showHelp = flag.Bool("help", false, "Show help information")
	var configPath = flag.String("config", "", "Path to YAML config file")
	flag.Parse()

	if *showVersion {
		log.Printf("Landing Page Factory\n")
		log.Printf("Version: %s\n", Version)
		log.Printf("Commit: %s\n", CommitHash)
		log.Printf("Built: %s\n", BuildTime)
		return
	}

	if *showHelp {
		log.Printf("Landing Page Factory\n\n")
		log.Printf("Usage: %s [options]\n\n", os.Args[0])
		log.Printf("Options:\n")
		log.Printf("  --version    Show version information\n")
		log.Printf("  --help       Show this help message\n")
		log.Printf("  --config     Path to YAML config file\n\n")
		log.Printf("Description:\n")
		log.Printf("  Builder and operations console for loan-affiliate landing pages.\n")
		log.Printf("  Serves the REST API for sites, variants, deploys and integrations.\n\n")
		log.Printf("Environment: LPF_PORT, LPF_DATABASE_DSN, LPF_API_SECRET\n")
		return
	}

	// Load .env if present, real environment wins
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database
	db, err := services.NewDBService(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	// Initialize services
	siteService := services.NewSiteService(db.GetDB())
	deployService := services.NewDeployService(db.GetDB())
	variantService := services.NewVariantService(db.GetDB())
	opsService := services.NewOpsService(db.GetDB())
	settingsService := services.NewSettingsService(db.GetDB())
	hostAccountService := services.NewHostAccountService(db.GetDB())
	statsService := services.NewStatsService(db.GetDB())

	// Initialize and start API server
	apiServer := api.NewAPIServer(api.ServerConfig{
		APISecret:          cfg.APISecret,
		SiteService:        siteService,
		DeployService:      deployService,
		VariantService:     variantService,
		OpsService:         opsService,
		SettingsService:    settingsService,
		HostAccountService: hostAccountService,
		StatsService:       statsService,
	})

	if err := apiServer.Start(cfg.Port); err != nil {
		log.Fatal("Failed to start API server:", err)
	}

	log.Printf("API server started on port %d\n", cfg.Port)

	// Set up graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Println("\nShutting down server...")

	if err := apiServer.Shutdown(); err != nil {
		log.Printf("Error shutting down API server: %v", err)
	}

	log.Println("Server shut down successfully")
}
