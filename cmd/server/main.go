package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	alerthandler "talentradar/internal/alert/handler"
	alertservice "talentradar/internal/alert/service"
	alertstore "talentradar/internal/alert/store"
	httptransport "talentradar/internal/http"
	newsletterhandler "talentradar/internal/newsletter/handler"
	newsletterservice "talentradar/internal/newsletter/service"
	newsletterstore "talentradar/internal/newsletter/store"
	"talentradar/internal/platform/config"
	"talentradar/internal/platform/httpserver"
	"talentradar/internal/platform/logger"
	"talentradar/internal/platform/metrics"
	"talentradar/internal/platform/postgres"
	"talentradar/internal/platform/redis"
	recruiterhandler "talentradar/internal/recruiter/handler"
	recruiterservice "talentradar/internal/recruiter/service"
	recruiterstore "talentradar/internal/recruiter/store"
	"talentradar/internal/token"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal feature
// packages.
func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Error("postgres connection failed", "error", err)
		os.Exit(1)
	}

	var alerts alertstore.Store
	var profiles recruiterstore.Store
	var subscriptions newsletterstore.Store
	if db != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := postgres.Migrate(ctx, db); err != nil {
			cancel()
			log.Error("schema migration failed", "error", err)
			os.Exit(1)
		}
		cancel()
		alerts = alertstore.NewPostgres(db)
		profiles = recruiterstore.NewPostgres(db)
		subscriptions = newsletterstore.NewPostgres(db)
		log.Info("using postgres stores")
	} else {
		alerts = alertstore.NewInMemory()
		profiles = recruiterstore.NewInMemory()
		subscriptions = newsletterstore.NewInMemory()
		log.Warn("DATABASE_URL not set, using in-memory stores")
	}

	redisClient, err := redis.New(cfg.RedisURL)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		profiles = recruiterstore.NewCached(profiles, redisClient.Client, cfg.ProfileCacheTTL)
		log.Info("profile cache enabled")
	}

	jwtService := token.NewJWTService(cfg.JWTSigningKey, "talentradar")

	alertHandler := alerthandler.New(alertservice.New(alerts), log, m)
	recruiterHandler := recruiterhandler.New(recruiterservice.New(profiles), log)
	newsletterHandler := newsletterhandler.New(newsletterservice.New(subscriptions), log, m)

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:       log,
		Metrics:      m,
		JWTValidator: jwtService,
		Alerts:       alertHandler,
		Recruiter:    recruiterHandler,
		Newsletter:   newsletterHandler,
		DB:           db,
	})

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting talentradar", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if db != nil {
		_ = db.Close()
	}
}
