package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"assistant-backend/internal/config"
	"assistant-backend/internal/handlers"
	"assistant-backend/internal/middleware"
	"assistant-backend/internal/router"
	"assistant-backend/internal/services"
	"assistant-backend/internal/store"
)

func main() {
	log.Println("🚀 Starting AI Assistant Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Config Store ────
	var kv store.KV
	switch cfg.StoreDriver {
	case "postgres":
		pg, err := store.NewPostgresKV(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("✗ PostgreSQL connection failed: %v", err)
		}
		defer pg.Close()
		kv = pg
		log.Println("✓ PostgreSQL config store connected")
	default:
		rd, err := store.NewRedisKV(cfg.RedisURL)
		if err != nil {
			log.Fatalf("✗ Redis connection failed: %v", err)
		}
		defer rd.Close()
		kv = rd
		log.Println("✓ Redis config store connected")
	}
	configStore := store.NewAssistantConfigStore(kv)

	// ──── Step 3: Initialize Services ────
	basicAuth := middleware.NewBasicAuth(cfg.AdminUsername, cfg.AdminPassword)
	relayService := services.NewRelayService()

	// ──── Step 4: Initialize Handlers ────
	loginHandler := handlers.NewLoginHandler(basicAuth)
	configHandler := handlers.NewConfigHandler(configStore)
	chatHandler := handlers.NewChatHandler(configStore, relayService)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(
		basicAuth,
		loginHandler,
		configHandler,
		chatHandler,
		cfg.FrontendURL,
		cfg.StaticDir,
	)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// No WriteTimeout: a chat relay stays open until the provider
		// answers; its own limits bound the call.
		IdleTimeout: 60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ AI Assistant Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
