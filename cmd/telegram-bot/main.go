package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mensa-ukon/internal/config"
	"mensa-ukon/internal/fetch"
	"mensa-ukon/internal/mensa"
	"mensa-ukon/internal/telegram"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Initialize the engine
	svc := mensa.NewService(fetch.NewClient())

	// 3. Initialize Telegram Bot
	bot, err := telegram.NewBot(cfg, svc)
	if err != nil {
		log.Fatalf("Failed to initialize Telegram Bot: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	if cfg.WebhookURL == "" {
		// Long polling needs no inbound connectivity.
		go bot.RunPolling(ctx)
		bot.NotifyAll("Bot started (polling).")
		<-quit
		log.Println("Shutting down bot...")
		bot.NotifyAll("Bot shutting down.")
		cancel()
		return
	}

	// 4. Webhook mode: start server with graceful shutdown
	if err := bot.RegisterHandlers(); err != nil {
		log.Fatalf("Failed to register webhook: %v", err)
	}
	bot.NotifyAll("Bot started (webhook).")

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: nil}

	go func() {
		log.Printf("Telegram Bot Server listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	bot.NotifyAll("Bot shutting down.")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
