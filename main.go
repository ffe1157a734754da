package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/gramseva/gramseva-backend/db"
	"github.com/gramseva/gramseva-backend/handlers"
	"github.com/gramseva/gramseva-backend/routes"
	"github.com/gramseva/gramseva-backend/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize database
	database, err := db.NewDB()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize services
	serviceManager, err := services.NewServiceManager(database)
	if err != nil {
		log.Fatal("Failed to initialize services:", err)
	}

	// Initialize handlers
	handlerManager := handlers.NewHandlerManager(serviceManager)

	// Setup routes
	r := routes.SetupRoutes(handlerManager, database)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Printf("Gram Seva API starting on port %s", port)
	log.Fatal(r.Run(":" + port))
}
