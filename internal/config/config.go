package config

import "os"

// Config collects every environment knob the server reads. Values are
// read once at startup; missing optional values fall back to defaults.
type Config struct {
	Addr        string
	DatabaseURL string

	// SlotBackend selects the durable storage: "postgres", "redis" or
	// "memory".
	SlotBackend string
	RedisAddr   string

	JWTSecret string

	LeadWebhookURL string
	AdminEmail     string
	AdminWhatsApp  string

	ChatAPIEndpoint string
	ChatAPIKey      string
}

func Load() Config {
	return Config{
		Addr:            envOrDefault("ADDR", ":8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		SlotBackend:     envOrDefault("SLOT_BACKEND", "postgres"),
		RedisAddr:       envOrDefault("REDIS_ADDR", "localhost:6379"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		LeadWebhookURL:  os.Getenv("LEAD_WEBHOOK_URL"),
		AdminEmail:      os.Getenv("ADMIN_EMAIL"),
		AdminWhatsApp:   os.Getenv("ADMIN_WHATSAPP"),
		ChatAPIEndpoint: os.Getenv("CHAT_API_ENDPOINT"),
		ChatAPIKey:      os.Getenv("CHAT_API_KEY"),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
