package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/abtaheetaseen/Life-Drop-Server/config"
	"github.com/abtaheetaseen/Life-Drop-Server/db"
	"github.com/abtaheetaseen/Life-Drop-Server/handlers"
	"github.com/abtaheetaseen/Life-Drop-Server/store"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Failed to disconnect MongoDB client: %v", err)
		}
	}()

	database := client.Database(cfg.DatabaseName)

	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	if err := db.SeedReferenceData(ctx, database); err != nil {
		log.Fatalf("Failed to seed reference data: %v", err)
	}

	stripeEnabled := cfg.StripeSecretKey != ""
	if stripeEnabled {
		stripe.Key = cfg.StripeSecretKey
	} else {
		log.Println("STRIPE_SECRET_KEY not set, payment intents disabled")
	}

	handler := handlers.New(store.NewMongoStores(database), []byte(cfg.JWTSecret), stripeEnabled)
	router := handler.Routes(cfg.AllowedOrigins)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("server running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}
