package main

import (
	"fmt"
	"log"
	"os"

	"workshop-backend/config"
	"workshop-backend/models"
	"workshop-backend/routes"
	"workshop-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Radiator{},
		&models.Booking{},
	)
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	services.StartReconcileScheduler(config.DB)

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
