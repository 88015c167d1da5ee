package main

import (
	"context"
	"log"

	"swot-core/internal/adapter/api"
	"swot-core/internal/adapter/client"
	"swot-core/internal/adapter/store"
	"swot-core/internal/config"
	"swot-core/internal/domain/repository"
	"swot-core/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := godotenv.Load(".env.dev"); err != nil {
		log.Println("Warning: .env.dev file not found, using system environment variables")
	}
	ctx := context.Background()

	cfg := config.Load()

	// Rate limiter: in-process fixed window by default, Redis when a
	// multi-instance deployment points us at one.
	var limiter repository.RateLimiter
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		})
		limiter = store.NewRedisLimiter(rdb, cfg.RateLimit, cfg.RateWindow)
	} else {
		limiter = store.NewMemoryLimiter(cfg.RateLimit, cfg.RateWindow)
	}

	// The provider is only wired outside demo mode; canned responses never
	// touch it.
	var provider repository.CompletionProvider
	if !cfg.DemoMode {
		gemini, err := client.NewGeminiClient(ctx, cfg.ProjectID, cfg.Location, cfg.ModelID)
		if err != nil {
			log.Fatalf("failed to init genai client: %v", err)
		}
		provider = usecase.NewTimeoutProvider(gemini)
	}

	gateway := usecase.NewGateway(limiter, provider, cfg.DemoMode)

	// Initialize API Layer (Delivery Layer)
	app := fiber.New(fiber.Config{
		AppName: "SWOT Insight Gateway",
	})

	handler := api.NewInsightHandler(gateway)
	api.SetupRouter(app, handler)

	if cfg.DemoMode {
		log.Printf("Demo mode active: canned insights, limit %d req/%s", cfg.RateLimit, cfg.RateWindow)
	}

	// Start Server
	log.Printf("SWOT Insight Gateway running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
