package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"learn-publish-system/handlers"
	"learn-publish-system/middleware"
	"learn-publish-system/services"
	"learn-publish-system/storage"
	"learn-publish-system/utils"
	"learn-publish-system/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB — covers avatars and lesson covers
	})

	// 🔐 GLOBAL: Only Gateway requests allowed — no exceptions
	app.Use(middleware.GatewayAuthMiddleware())

	// Load allowed origins from environment variable
	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("⚠️  ALLOWED_ORIGINS environment variable not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}
	allowedOriginsString := strings.Join(allowedOriginsList, ",")

	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOriginsString,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-Request-ID, User-Agent, Cache-Control, X-Wallet-Address, X-Service-Token",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization, X-Request-ID",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// --- Record store backend, selected by configuration (never sniffed) ---
	backend := os.Getenv("STORAGE_BACKEND")
	if backend == "" {
		backend = "sqlite"
	}
	store, err := storage.Open(backend, os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal("failed to open record store: ", err)
	}

	if err := utils.InitR2(); err != nil {
		log.Printf("⚠️  R2 not configured (%v) — media uploads fall back to local disk", err)
		if err := utils.EnsureUploadDir(); err != nil {
			log.Fatal("failed to ensure upload dir: ", err)
		}
	}

	achievementService := services.NewAchievementService(store)
	profileService := services.NewProfileService(store, achievementService)
	feedService := services.NewFeedService(store)
	contentService := services.NewContentService(store, feedService)
	catalogService := services.NewCatalogService()

	// --- Chain service client for reward mints (pass-through, no retries) ---
	var chainClient *workers.ChainClient
	chainServiceURL := os.Getenv("CHAIN_SERVICE_URL")
	chainServiceToken := os.Getenv("CHAIN_SERVICE_TOKEN")
	if chainServiceURL != "" && chainServiceToken != "" {
		chainClient = workers.NewChainClient(chainServiceURL, chainServiceToken)
	} else {
		log.Println("⚠️  CHAIN_SERVICE_URL/CHAIN_SERVICE_TOKEN not set — credential mints disabled")
	}
	rewardService := services.NewRewardService(store, achievementService, chainClient)

	feedService.StartMaintenanceScheduler()

	// ✅ Setup routes — all behind enforced Gateway auth. Public-read route
	// files register first; wallet-gated groups are prefix-scoped so they
	// cannot shadow the public reads either way.
	handlers.SetupContentRoutes(app, contentService)
	handlers.SetupFeedRoutes(app, feedService)
	handlers.SetupCatalogRoutes(app, catalogService)
	handlers.SetupProfileRoutes(app, profileService)
	handlers.SetupRewardRoutes(app, rewardService)

	app.Static("/uploads", "./uploads")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := app.Listen(":5300"); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Println("✅ Server running on http://localhost:5300")
	log.Printf("✅ Record store backend: %s", backend)
	log.Println("✅ Feed maintenance scheduler running (every 10m)")
	log.Println("✅ GatewayAuthMiddleware enforced globally — all requests must come from Gateway")
	log.Printf("✅ CORS configured for origins: %s", allowedOriginsString)

	<-ctx.Done()
	log.Println("Shutting down server...")
}
