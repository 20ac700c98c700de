package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"hot-takes-system/handlers"
	"hot-takes-system/models"
	"hot-takes-system/services"
	"hot-takes-system/storage"
	"hot-takes-system/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New(fiber.Config{})

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
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID, User-Agent, Cache-Control, X-Device-ID",
		ExposeHeaders:    "Content-Length, Content-Type, X-Request-ID",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Prompt{},
		&models.DailyPrompt{},
		&models.WeeklyAward{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	if err := services.SeedPrompts(db); err != nil {
		log.Fatal("failed to seed prompts:", err)
	}

	clock := clockwork.NewRealClock()
	store := storage.NewStore(db)

	postService := services.NewPostService(db)
	userService := services.NewUserService(db)
	promptService := services.NewPromptService(store, clock)
	awardsService := services.NewAwardsService(store, clock)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	warmWorker := workers.NewPromptWarmWorker(promptService)
	warmWorker.Start(ctx)

	awardsService.StartAwardsScheduler()

	handlers.SetupPostRoutes(app, postService)
	handlers.SetupPromptRoutes(app, promptService)
	handlers.SetupAwardRoutes(app, awardsService, store)
	handlers.SetupUserRoutes(app, userService)

	go func() {
		if err := app.Listen(":5300"); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Println("✅ Server running on http://localhost:5300")
	log.Println("✅ Prompt Warm Worker running (hourly)")
	log.Println("✅ Weekly awards scheduled (Saturday 23:55 UTC)")
	log.Printf("✅ CORS configured for origins: %s", allowedOriginsString)

	<-ctx.Done()
	log.Println("Shutting down server...")
}
