package config

import "os"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	PostgresDSN string
	JWTSecret   string
	Env         string
	FrontendURL string
}

// Load builds Config from environment with sensible defaults.
// JWT_SECRET deliberately has no default: tokens signed with a well-known
// fallback key would verify anywhere, so startup fails without it instead.
func Load() *Config {
	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "3001"),
		PostgresDSN: getEnv("POSTGRES_DSN", "host=localhost port=5432 user=postgres dbname=digital_literacy sslmode=disable connect_timeout=2"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Env:         getEnv("ENV", "production"),
		FrontendURL: os.Getenv("FRONTEND_URL"),
	}
}

// IsDevelopment reports whether error detail may be exposed to callers.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
