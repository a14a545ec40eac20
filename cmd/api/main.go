package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hostel-management-api/config"
	"hostel-management-api/controllers"
	"hostel-management-api/middleware"
	"hostel-management-api/realtime"
	"hostel-management-api/routes"
	"hostel-management-api/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logFile, _ := config.InitLogging()
	if logFile != nil {
		defer logFile.Close()
	}

	// Initialize database
	config.InitDB()

	// Set Gin mode
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Realtime hub, with a Redis bridge when configured
	hub := realtime.NewHub()
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		bridge, err := realtime.NewBridge(addr)
		if err != nil {
			log.Fatal("Failed to connect Redis:", err)
		}
		hub.SetBridge(bridge)
		log.Println("Realtime bridge connected to Redis")
	}
	go hub.Run()

	controllers.Init(services.NewNotifier(config.DB, hub), hub)

	// Create Gin router
	router := gin.New()

	router.Use(gin.LoggerWithWriter(config.LogWriter))
	router.Use(gin.Recovery())

	// Security headers
	router.Use(func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	})

	router.Use(middleware.CORSMiddleware())

	// Realtime channel
	router.GET("/ws", controllers.ServeWebSocket)

	// Setup routes
	routes.SetupRoutes(router)

	// Start server
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
