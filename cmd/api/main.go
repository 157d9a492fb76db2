package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"travel-planner-api/internal/ai"
	"travel-planner-api/internal/config"
	"travel-planner-api/internal/handlers"
	"travel-planner-api/internal/planner"
	"travel-planner-api/internal/routes"
	"travel-planner-api/internal/session"
	"travel-planner-api/internal/store"
)

func main() {
	// 1. --- Configuration (.env + environment) ---
	cfg := config.Load()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. --- AI Service (optional) ---
	// The key is read once; without one, every plan uses the deterministic
	// synthesizer for the lifetime of the process.
	var aiService *ai.Service
	if cfg.AIEnabled() {
		svc, err := ai.NewService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("Failed to initialize AI service: %v", err)
		}
		defer svc.Close()
		aiService = svc
		log.Printf("AI service initialized with model %s", cfg.GeminiModel)
	} else {
		log.Println("AI disabled - serving deterministic sample plans")
	}

	// 3. --- Application Setup ---
	// All state is in-memory and volatile; a restart clears users, plans
	// and sessions.
	p := planner.New(nil)
	if aiService != nil {
		p = planner.New(aiService)
	}

	app := &handlers.Handlers{
		Config:   cfg,
		Users:    store.NewUserStore(),
		Plans:    store.NewPlanStore(),
		Sessions: session.NewManager(),
		Planner:  p,
	}

	router := routes.SetupRouter(app)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// 4. --- Start Server ---
	go func() {
		log.Printf("Starting AI Travel Planner API on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// 5. --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
