package config

import (
	"os"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr            string
	DatabaseURL     string
	RedisURL        string
	JWTSigningKey   string
	ProfileCacheTTL time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
// DatabaseURL and RedisURL may be empty: the service then runs on in-memory
// stores, which keeps local development and unit tests dependency-free.
func FromEnv() Server {
	addr := os.Getenv("TALENTRADAR_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Development default - must be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	cacheTTL := 5 * time.Minute
	if raw := os.Getenv("PROFILE_CACHE_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			cacheTTL = parsed
		}
	}

	return Server{
		Addr:            addr,
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		JWTSigningKey:   jwtSigningKey,
		ProfileCacheTTL: cacheTTL,
	}
}
