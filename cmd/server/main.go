package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/remote-browser-stream/backend/api/handlers"
	"github.com/remote-browser-stream/backend/internal/browser"
	"github.com/remote-browser-stream/backend/internal/session"
	"github.com/remote-browser-stream/backend/internal/ws"
)

func main() {
	// Get configuration from environment
	port := getEnv("PORT", "8080")
	width := getEnvInt("VIEWPORT_WIDTH", browser.DefaultWidth)
	height := getEnvInt("VIEWPORT_HEIGHT", browser.DefaultHeight)
	startURL := getEnv("START_URL", browser.DefaultStartURL)

	// Initialize the browser session; the process cannot serve without it
	store := browser.NewStore(browser.Config{
		Width:    width,
		Height:   height,
		StartURL: startURL,
		Headless: true,
	})
	if err := store.Initialize(context.Background()); err != nil {
		log.Fatalf("Failed to initialize browser session: %v", err)
	}
	defer store.Teardown()

	// Initialize the command core
	manager := session.NewManager(store)

	// Initialize the streaming service
	wsService := ws.NewService(manager)
	defer wsService.Close()

	// Initialize handlers
	browserHandler := handlers.NewBrowserHandler(manager)
	streamHandler := handlers.NewStreamHandler(wsService.Handler())

	// Initialize Gin router
	r := gin.Default()

	// Enable CORS for development
	r.Use(corsMiddleware())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		browserHandler.RegisterRoutes(api)
		streamHandler.RegisterRoutes(api)
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("Shutting down server...")
		wsService.Close()
		store.Teardown()
		os.Exit(0)
	}()

	// Start server
	log.Printf("Starting server on port %s (viewport %dx%d)", port, width, height)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns an integer environment variable or a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
		log.Printf("Ignoring invalid %s=%q, using %d", key, value, defaultValue)
	}
	return defaultValue
}

// corsMiddleware returns a CORS middleware for development.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
