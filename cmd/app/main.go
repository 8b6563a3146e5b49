package main

import (
	"database/sql"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/carmelyp/aircon-backend/internal/admin"
	"github.com/carmelyp/aircon-backend/internal/chat"
	"github.com/carmelyp/aircon-backend/internal/config"
	"github.com/carmelyp/aircon-backend/internal/content"
	"github.com/carmelyp/aircon-backend/internal/i18n"
	"github.com/carmelyp/aircon-backend/internal/notify"
	"github.com/carmelyp/aircon-backend/internal/slot"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := log.Default()

	app := fiber.New()
	setupCORS(app)

	slots := openSlots(cfg, logger)

	notifier := notify.NewNotifier(cfg.LeadWebhookURL, cfg.AdminEmail, cfg.AdminWhatsApp, logger)
	store := content.NewStore(slots, notifier, logger)
	locale := i18n.NewService(slots, logger)
	adminService := admin.NewService(slots, logger)

	var completion chat.CompletionClient = chat.StubClient{}
	if cfg.ChatAPIEndpoint != "" {
		completion = chat.NewHTTPCompletionClient(cfg.ChatAPIEndpoint, cfg.ChatAPIKey)
	}
	chatService := chat.NewService(completion, store, logger)

	contentHandler := content.NewHandler(store, locale)
	localeHandler := i18n.NewHandler(locale)
	adminHandler := admin.NewHandler(adminService)
	chatHandler := chat.NewHandler(chatService)

	contentHandler.RegisterPublicRoutes(app)
	localeHandler.RegisterPublicRoutes(app)
	chatHandler.RegisterPublicRoutes(app)
	adminHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
		// only /api/v1/admin/* requires a token; sign-in stays open
		Filter: func(c *fiber.Ctx) bool {
			p := c.Path()
			if !strings.HasPrefix(p, "/api/v1/admin/") {
				return true
			}
			return p == "/api/v1/admin/sign-in"
		},
	}))

	adminHandler.RegisterProtectedRoutes(app)
	contentHandler.RegisterAdminRoutes(app)

	if err := app.Listen(cfg.Addr); err != nil {
		logger.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

// openSlots builds the durable slot backend the rest of the app writes
// through.
func openSlots(cfg config.Config, logger *log.Logger) slot.Repository {
	switch cfg.SlotBackend {
	case "memory":
		logger.Println("slots: in-memory backend, nothing survives a restart")
		return slot.NewInMemoryRepository()
	case "redis":
		repo, err := slot.NewRedisRepository(cfg.RedisAddr)
		if err != nil {
			logger.Fatalf("slots: redis at %s: %v", cfg.RedisAddr, err)
		}
		return repo
	default:
		return slot.NewPostgresRepository(mustOpenDB(cfg.DatabaseURL))
	}
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}
	if err := db.Ping(); err != nil {
		panic(err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS slots (
        name TEXT PRIMARY KEY,
        value TEXT NOT NULL,
        "updatedAt" TEXT
    )`); err != nil {
		panic(err)
	}
	return db
}
