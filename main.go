package main

import (
	"fmt"
	"log"
	"os"

	"estetica-backend/config"
	"estetica-backend/models"
	"estetica-backend/routes"
	"estetica-backend/services"

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
		&models.Salon{},
		&models.User{},
		&models.Setting{},
		&models.Client{},
		&models.Employee{},
		&models.Service{},
		&models.Appointment{},
		&models.Product{},
		&models.Cashbox{},
		&models.Payment{},
		&models.BlogPost{},
		&models.ReminderLog{},
	)
}

func main() {
	reminders := services.NewReminderService(config.DB)
	reminders.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
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
