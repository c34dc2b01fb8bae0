package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/aurelita66/autoshop-api/config"
	"github.com/aurelita66/autoshop-api/controllers"
	"github.com/aurelita66/autoshop-api/middleware"
	"github.com/aurelita66/autoshop-api/services"
	"github.com/aurelita66/autoshop-api/utils"
)

func main() {
	// Basic logging
	log.Println("Starting Autoshop API server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	if err := config.MigrateDatabase(config.GetDB()); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Sessions back both login state and the per-visitor dashboard counter
	services.InitSessionStore(time.Duration(cfg.SessionTTLHours) * time.Hour)

	utils.UploadDir = cfg.UploadDir
	if cfg.UseS3() {
		s3Service, err := services.InitS3Service()
		if err != nil {
			log.Fatalf("Failed to initialize S3: %v", err)
		}
		services.InitS3ImageService(s3Service)
		log.Println("Using S3 image storage")
	} else {
		services.InitLocalImageService(cfg.UploadDir)
		log.Printf("Using local image storage in %s", cfg.UploadDir)
	}

	router := setupRouter()

	// Start server
	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter wires middleware and every API route
func setupRouter() *gin.Engine {
	router := gin.Default()

	router.Use(cors.Default())
	router.Use(middleware.RateLimiter(rate.Limit(20), 40))
	router.Use(middleware.Session())

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Health check endpoint
		v1.GET("/health", healthCheck)

		// Database status endpoint
		v1.GET("/database/status", databaseStatus)

		// Public read surface
		v1.GET("/dashboard", controllers.Dashboard)
		v1.GET("/vehicles", controllers.GetVehicles)
		v1.GET("/vehicles/search", controllers.SearchVehicles)
		v1.GET("/vehicles/:id", controllers.GetVehicle)
		v1.GET("/orders", controllers.GetOrders)
		v1.GET("/orders/:id", controllers.GetOrder)
		v1.GET("/manufacturers", controllers.GetManufacturers)
		v1.GET("/car-models", controllers.GetCarModels)
		v1.GET("/services", controllers.GetServices)

		auth := v1.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)
			auth.POST("/logout", controllers.Logout)
		}

		authed := v1.Group("")
		authed.Use(middleware.RequireAuth())
		{
			authed.GET("/orders/my", controllers.GetMyOrders)
			authed.POST("/orders/:id/reviews", controllers.CreateReview)
			authed.GET("/users/me", controllers.GetMyProfile)
			authed.PUT("/users/me", controllers.UpdateMyProfile)
			authed.PUT("/users/me/picture", controllers.UpdateMyPicture)
			authed.GET("/uploads/:filename", controllers.GetUploadedImage)
		}

		staff := v1.Group("")
		staff.Use(middleware.RequireStaff())
		{
			staff.POST("/manufacturers", controllers.CreateManufacturer)
			staff.PUT("/manufacturers/:id", controllers.UpdateManufacturer)
			staff.DELETE("/manufacturers/:id", controllers.DeleteManufacturer)

			staff.POST("/car-models", controllers.CreateCarModel)
			staff.PUT("/car-models/:id", controllers.UpdateCarModel)
			staff.DELETE("/car-models/:id", controllers.DeleteCarModel)

			staff.GET("/clients", controllers.GetClients)
			staff.GET("/clients/:id", controllers.GetClient)
			staff.POST("/clients", controllers.CreateClient)
			staff.PUT("/clients/:id", controllers.UpdateClient)
			staff.DELETE("/clients/:id", controllers.DeleteClient)

			staff.POST("/vehicles", controllers.CreateVehicle)
			staff.PUT("/vehicles/:id", controllers.UpdateVehicle)
			staff.DELETE("/vehicles/:id", controllers.DeleteVehicle)

			staff.POST("/services", controllers.CreateService)
			staff.PUT("/services/:id", controllers.UpdateService)
			staff.DELETE("/services/:id", controllers.DeleteService)

			staff.POST("/orders", controllers.CreateOrder)
			staff.PUT("/orders/:id", controllers.UpdateOrder)
			staff.DELETE("/orders/:id", controllers.DeleteOrder)
			staff.POST("/orders/:id/lines", controllers.AddOrderLine)
			staff.DELETE("/orders/:id/lines/:lineID", controllers.RemoveOrderLine)
		}
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Autoshop API is running",
	})
}

// databaseStatus checks database connectivity and returns table information
func databaseStatus(c *gin.Context) {
	db := config.GetDB()

	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			},
		})
		return
	}

	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	var tables []string
	if err := db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public'").Scan(&tables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_QUERY_ERROR",
				"message": "Failed to query tables",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"tables":  tables,
	})
}
