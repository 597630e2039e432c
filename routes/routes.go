package routes

import (
	"os"
	"strings"

	"estetica-backend/config"
	"estetica-backend/controllers"
	"estetica-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[strings.TrimSpace(o)] = true
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) bool {
			return allowed[origin]
		},
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Client routes
		clients := api.Group("/clients")
		{
			clients.POST("", controllers.CreateClient)
			clients.GET("", controllers.GetClients)
			clients.GET("/:id", controllers.GetClient)
			clients.PUT("/:id", controllers.UpdateClient)
			clients.DELETE("/:id", controllers.DeleteClient)
		}

		// Employee routes
		employees := api.Group("/employees")
		{
			employees.POST("", controllers.AddEmployee)
			employees.GET("", controllers.GetEmployees)
			employees.GET("/:id", controllers.GetEmployee)
			employees.PUT("/:id", controllers.UpdateEmployee)
			employees.DELETE("/:id", controllers.DeleteEmployee)

			employees.GET("/balances", controllers.GetEmployeeBalances)
			employees.GET("/:id/balance", controllers.GetEmployeeBalance)
			employees.POST("/:id/payments", controllers.PayEmployee)
		}

		// Service routes
		services := api.Group("/services")
		{
			services.POST("", controllers.CreateService)
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)
			services.PUT("/:id", controllers.UpdateService)
			services.DELETE("/:id", controllers.DeleteService)
		}

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.POST("", controllers.CreateAppointment)
			appointments.GET("", controllers.GetAppointments)
			appointments.GET("/:id", controllers.GetAppointment)
			appointments.PUT("/:id", controllers.UpdateAppointment)
			appointments.DELETE("/:id", controllers.DeleteAppointment)

			appointments.POST("/:id/collect", controllers.CollectAppointment)
			appointments.POST("/:id/uncollect", controllers.UncollectAppointment)
		}

		// Product routes
		products := api.Group("/products")
		{
			products.POST("", controllers.AddProduct)
			products.GET("", controllers.GetProducts)
			products.GET("/:id", controllers.GetProduct)
			products.PUT("/:id", controllers.UpdateProduct)
			products.DELETE("/:id", controllers.DeleteProduct)
		}

		// Cashbox routes
		cashboxes := api.Group("/cashboxes")
		{
			cashboxes.POST("", controllers.AddCashbox)
			cashboxes.GET("", controllers.GetCashboxes)
			cashboxes.GET("/:id", controllers.GetCashbox)
			cashboxes.PUT("/:id", controllers.UpdateCashbox)
			cashboxes.DELETE("/:id", controllers.DeactivateCashbox)
		}

		// Payment routes
		payments := api.Group("/payments")
		{
			payments.POST("", controllers.AddPayment)
			payments.GET("", controllers.GetPayments)
			payments.GET("/:id", controllers.GetPayment)
			payments.DELETE("/:id", controllers.DeletePayment)
		}

		// Report routes
		reports := api.Group("/reports")
		{
			reports.GET("/cashflow", controllers.CashflowReport)
			reports.GET("/export", controllers.ExportCashflow)
		}

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboard)

		// Settings routes
		settings := api.Group("/settings")
		{
			settings.GET("", controllers.GetSettings)
			settings.PUT("", controllers.UpdateSettings)
		}

		// Blog routes
		blogs := api.Group("/blogs")
		{
			blogs.POST("", controllers.CreateBlogPost)
			blogs.GET("", controllers.GetBlogPosts)
			blogs.GET("/:id", controllers.GetBlogPost)
			blogs.PUT("/:id", controllers.UpdateBlogPost)
			blogs.DELETE("/:id", controllers.DeleteBlogPost)

			blogs.POST("/generate", controllers.GenerateBlogPost)
		}
	}

	return r
}
