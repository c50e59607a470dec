package main

import (
	"log"
	"time"

	"tailor_shop/internal/config"
	"tailor_shop/internal/database"
	"tailor_shop/internal/handlers"
	"tailor_shop/internal/middleware"
	"tailor_shop/internal/migrations"
	"tailor_shop/internal/redis"
	"tailor_shop/internal/repository"
	"tailor_shop/internal/services"
	"tailor_shop/internal/storage"
	"tailor_shop/pkg/whatsapp"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize file storage
	store, err := storage.NewLocalStore(cfg.StorageDir, cfg.PublicBaseURL)
	if err != nil {
		log.Fatal("Failed to initialize storage:", err)
	}

	links := whatsapp.NewLinkBuilder(cfg.WACountryCode)

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	measurementRepo := repository.NewMeasurementRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	designRepo := repository.NewDesignRepository(db)

	// Initialize services
	authService := services.NewAuthService(profileRepo, redisClient, cfg.JWTSecret,
		time.Duration(cfg.TokenTTL)*time.Second, time.Duration(cfg.ResetTokenTTL)*time.Second)
	sessionService := services.NewSessionService(profileRepo, redisClient,
		time.Duration(cfg.IdleLockTTL)*time.Second)
	notificationService := services.NewNotificationService(redisClient,
		time.Duration(cfg.NotificationTTL)*time.Second)
	customerService := services.NewCustomerService(customerRepo, measurementRepo)
	orderService := services.NewOrderService(orderRepo, customerRepo)
	wizardService := services.NewWizardService(redisClient, customerRepo, measurementRepo, orderRepo)
	invoiceService := services.NewInvoiceService(orderRepo, customerRepo, measurementRepo, profileRepo,
		store, links, cfg.DownloadDir)
	expenseService := services.NewExpenseService(expenseRepo)
	designService := services.NewDesignService(designRepo, store)
	reportService := services.NewReportService(orderRepo, customerRepo, expenseRepo)
	settingsService := services.NewSettingsService(profileRepo, store)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, sessionService)
	orderHandler := handlers.NewOrderHandler(orderService, invoiceService, notificationService)
	wizardHandler := handlers.NewWizardHandler(wizardService, notificationService)
	apiHandler := handlers.NewAPIHandler(customerService, expenseService, designService,
		reportService, settingsService, notificationService)

	// Setup routes
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.Static("/files", store.Root())

	// Public auth endpoints
	auth := router.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/reset-password", authHandler.ResetPassword)
		auth.POST("/update-password", authHandler.UpdatePassword)
		auth.GET("/session", authHandler.Session)
	}

	// Authenticated but not PIN-gated: the unlock screen itself
	locked := router.Group("/auth")
	locked.Use(middleware.Authenticate(authService))
	{
		locked.POST("/unlock", authHandler.Unlock)
		locked.POST("/lock", authHandler.Lock)
		locked.POST("/logout", authHandler.Logout)
	}

	// Shop screens: valid session + recent PIN entry required
	api := router.Group("/api")
	api.Use(middleware.Authenticate(authService), middleware.RequireUnlocked(sessionService))
	{
		api.GET("/customers", apiHandler.ListCustomers)
		api.POST("/customers", apiHandler.SaveCustomer)
		api.GET("/customers/:id", apiHandler.GetCustomer)
		api.DELETE("/customers/:id", apiHandler.DeleteCustomer)
		api.GET("/customers/:id/measurements", apiHandler.GetCustomerMeasurements)

		api.GET("/orders", orderHandler.List)
		api.GET("/orders/:id", orderHandler.Get)
		api.PATCH("/orders/:id/status", orderHandler.UpdateStatus)
		api.DELETE("/orders/:id", orderHandler.Delete)
		api.POST("/orders/:id/share", orderHandler.Share)

		api.POST("/wizard/start", wizardHandler.Start)
		api.GET("/wizard", wizardHandler.Get)
		api.POST("/wizard/lookup", wizardHandler.Lookup)
		api.POST("/wizard/customer", wizardHandler.CreateCustomer)
		api.POST("/wizard/measurements", wizardHandler.SetMeasurements)
		api.POST("/wizard/tab", wizardHandler.SetActiveTab)
		api.POST("/wizard/details", wizardHandler.SetDetails)
		api.POST("/wizard/commit", wizardHandler.Commit)
		api.DELETE("/wizard", wizardHandler.Abandon)

		api.GET("/expenses", apiHandler.ListExpenses)
		api.POST("/expenses", apiHandler.SaveExpense)
		api.DELETE("/expenses/:id", apiHandler.DeleteExpense)

		api.GET("/designs", apiHandler.ListDesigns)
		api.POST("/designs", apiHandler.UploadDesign)
		api.DELETE("/designs/:id", apiHandler.DeleteDesign)

		api.GET("/reports/summary", apiHandler.ReportSummary)

		api.GET("/config", apiHandler.GetConfig)
		api.PUT("/config", apiHandler.UpdateConfig)
		api.POST("/config/logo", apiHandler.UploadLogo)

		api.GET("/notifications", apiHandler.DrainNotifications)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
