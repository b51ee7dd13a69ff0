// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"facilita/internal/handlers"
	"facilita/internal/middleware"
	"facilita/internal/models"
	"facilita/internal/repositories"
	"facilita/internal/services/atm"
	"facilita/internal/services/auth"
	"facilita/internal/services/checkout"
	"facilita/internal/services/company"
	"facilita/internal/services/dashboard"
	"facilita/internal/services/finance"
	"facilita/internal/services/messaging"
	"facilita/internal/services/payment"
	"facilita/internal/services/plan"
	"facilita/internal/services/product"
	"facilita/internal/services/user"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
// It groups routes by functionality and applies appropriate middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Repositories
	userRepo := repositories.NewUserRepository(db, repositories.CacheService)
	companyRepo := repositories.NewCompanyRepository(db)
	productRepo := repositories.NewProductRepository(db, repositories.CacheService)
	planRepo := repositories.NewPlanRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	withdrawalRepo := repositories.NewWithdrawalRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	atmRepo := repositories.NewATMRepository(db)
	platformRepo := repositories.NewPlatformRepository(db)

	// Services
	authService := auth.NewService(userRepo, companyRepo)
	userService := user.NewService(userRepo, companyRepo)
	planService := plan.NewService(planRepo, userRepo, productRepo, companyRepo)
	productService := product.NewService(productRepo, companyRepo, userRepo, planService)
	companyService := company.NewService(companyRepo, userRepo)
	gateway := payment.FromEnv()
	checkoutService := checkout.NewService(productRepo, companyRepo, userRepo, transactionRepo, planService, gateway)
	financeService := finance.NewService(userRepo, transactionRepo, withdrawalRepo, companyRepo, planService)
	messagingService := messaging.NewService(messageRepo, userRepo)
	atmService := atm.NewService(atmRepo)
	dashboardService := dashboard.NewService(transactionRepo, db)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	productHandler := handlers.NewProductHandler(productService)
	companyHandler := handlers.NewCompanyHandler(companyService)
	planHandler := handlers.NewPlanHandler(planService, userRepo)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	financeHandler := handlers.NewFinanceHandler(financeService)
	messageHandler := handlers.NewMessageHandler(messagingService)
	atmHandler := handlers.NewATMHandler(atmService)
	adminHandler := handlers.NewAdminHandler(userService, financeService, planService, dashboardService, messagingService, platformRepo)

	api := app.Group("/api")

	// Public endpoints (no auth required)
	api.Post("/register", authHandler.RegisterUser)
	api.Post("/login", authHandler.LoginUser)
	api.Post("/refresh", authHandler.RefreshToken)
	api.Get("/health", handlers.HealthCheck)

	// Public catalog
	api.Get("/products", productHandler.ListProducts)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Get("/companies", companyHandler.ListCompanies)
	api.Get("/companies/:id", companyHandler.GetCompany)
	api.Get("/companies/:id/products", productHandler.ListByCompany)
	api.Get("/companies/:id/branches", companyHandler.ListBranches)
	api.Get("/plans", planHandler.ListPlans)
	api.Get("/atms", atmHandler.ListATMs)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Facilita API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	authMiddleware := middleware.NewAuthMiddleware(userRepo)
	protected := api.Use(authMiddleware.Handler)

	setupAccountRoutes(protected, authHandler, userHandler, planHandler)
	setupMarketplaceRoutes(protected, productHandler, companyHandler, checkoutHandler)
	setupFinanceRoutes(protected, financeHandler)
	setupMessagingRoutes(protected, messageHandler)
	setupATMRoutes(protected, atmHandler)
	setupAdminRoutes(app, authMiddleware, adminHandler)
}

func setupAccountRoutes(router fiber.Router, authHandler *handlers.AuthHandler, userHandler *handlers.UserHandler, planHandler *handlers.PlanHandler) {
	router.Post("/logout", authHandler.LogoutUser)
	router.Post("/change-password", middleware.HasPermission(models.PermissionChangePassword), authHandler.ChangePassword)

	router.Get("/profile", userHandler.GetProfile)
	router.Put("/profile", userHandler.UpdateProfile)
	router.Post("/profile/upgrade", userHandler.UpgradeToBusiness)

	router.Get("/favorites", userHandler.GetFavorites)
	router.Post("/favorites/:id", userHandler.ToggleFavorite)
	router.Get("/following", userHandler.GetFollowing)

	router.Get("/plans/limits", planHandler.GetMyLimits)
}

func setupMarketplaceRoutes(router fiber.Router, productHandler *handlers.ProductHandler, companyHandler *handlers.CompanyHandler, checkoutHandler *handlers.CheckoutHandler) {
	products := router.Group("/products")
	products.Post("/", middleware.HasPermission(models.PermissionProductWrite), productHandler.CreateProduct)
	products.Put("/:id", middleware.HasPermission(models.PermissionProductWrite), productHandler.UpdateProduct)
	products.Delete("/:id", middleware.HasPermission(models.PermissionProductWrite), productHandler.DeleteProduct)
	products.Post("/:id/promote", middleware.HasPermission(models.PermissionProductPromote), productHandler.PromoteProduct)

	companies := router.Group("/companies")
	companies.Post("/", middleware.HasPermission(models.PermissionCompanyWrite), companyHandler.CreateCompany)
	companies.Get("/me", companyHandler.GetMyCompany)
	companies.Put("/:id", middleware.HasPermission(models.PermissionCompanyWrite), companyHandler.UpdateCompany)
	companies.Delete("/:id", middleware.HasPermission(models.PermissionCompanyWrite), companyHandler.DeleteCompany)
	companies.Post("/:id/branches", middleware.HasPermission(models.PermissionCompanyWrite), companyHandler.CreateBranch)
	companies.Post("/:id/follow", companyHandler.FollowCompany)
	companies.Post("/:id/rate", companyHandler.RateCompany)
	companies.Get("/:id/quota", productHandler.GetQuota)

	router.Post("/checkout", checkoutHandler.Checkout)
	router.Post("/plans/purchase", middleware.HasPermission(models.PermissionPlanPurchase), checkoutHandler.PurchasePlan)
}

func setupFinanceRoutes(router fiber.Router, financeHandler *handlers.FinanceHandler) {
	finance := router.Group("/finance", middleware.HasPermission(models.PermissionFinanceRead))
	finance.Get("/transactions", financeHandler.GetMyTransactions)
	finance.Get("/withdrawals", financeHandler.GetMyWithdrawals)
	finance.Post("/deposits", middleware.HasPermission(models.PermissionFinanceWrite), financeHandler.RequestDeposit)
	finance.Post("/withdrawals", middleware.HasPermission(models.PermissionFinanceWrite), financeHandler.RequestWithdrawal)
	finance.Post("/sales/:id/settle", middleware.HasPermission(models.PermissionFinanceWrite), financeHandler.SettleSale)
}

func setupMessagingRoutes(router fiber.Router, messageHandler *handlers.MessageHandler) {
	messages := router.Group("/messages", middleware.HasPermission(models.PermissionMessageRead))
	messages.Get("/", messageHandler.GetInbox)
	messages.Post("/", middleware.HasPermission(models.PermissionMessageWrite), messageHandler.SendMessage)
	messages.Post("/:id/reply", middleware.HasPermission(models.PermissionMessageWrite), messageHandler.ReplyMessage)
	messages.Get("/with/:id", messageHandler.GetConversation)
	messages.Post("/with/:id/read", messageHandler.MarkConversationRead)

	router.Get("/notifications", messageHandler.GetNotifications)
	router.Post("/notifications/clear", messageHandler.ClearNotifications)
}

func setupATMRoutes(router fiber.Router, atmHandler *handlers.ATMHandler) {
	atms := router.Group("/atms", middleware.HasPermission(models.PermissionATMWrite))
	atms.Post("/", atmHandler.CreateATM)
	atms.Put("/:id", atmHandler.UpdateATM)
	atms.Delete("/:id", atmHandler.DeleteATM)
	atms.Post("/:id/vote", atmHandler.VoteATM)
	atms.Post("/:id/status", atmHandler.SetATMStatus)
}

func setupAdminRoutes(app *fiber.App, authMiddleware *middleware.AuthMiddleware, adminHandler *handlers.AdminHandler) {
	admin := app.Group("/api/admin", authMiddleware.Handler, middleware.AdminAuthMiddleware)

	admin.Get("/overview", middleware.HasPermission(models.PermissionReadAdmin), adminHandler.GetOverview)
	admin.Get("/users", middleware.HasPermission(models.PermissionReadAdmin), adminHandler.ListUsers)
	admin.Post("/users/:id/status", middleware.HasPermission(models.PermissionWriteAdmin), adminHandler.SetUserStatus)

	admin.Get("/transactions", middleware.HasPermission(models.PermissionReadAdmin), adminHandler.ListTransactions)
	admin.Post("/transactions/:id/settle", middleware.HasPermission(models.PermissionWriteAdmin), adminHandler.SettleTransaction)
	admin.Get("/withdrawals", middleware.HasPermission(models.PermissionReadAdmin), adminHandler.ListWithdrawals)
	admin.Post("/withdrawals/:id/settle", middleware.HasPermission(models.PermissionWriteAdmin), adminHandler.SettleWithdrawal)

	admin.Post("/plans", middleware.HasPermission(models.PermissionWriteAdmin), adminHandler.CreatePlan)
	admin.Put("/plans/:type", middleware.HasPermission(models.PermissionWriteAdmin), adminHandler.UpdatePlan)
	admin.Delete("/plans/:type", middleware.HasPermission(models.PermissionWriteAdmin), adminHandler.DeletePlan)

	admin.Get("/bank-accounts", adminHandler.ListBankAccounts)
	admin.Post("/bank-accounts", adminHandler.CreateBankAccount)
	admin.Put("/bank-accounts/:id", adminHandler.UpdateBankAccount)
	admin.Delete("/bank-accounts/:id", adminHandler.DeleteBankAccount)

	admin.Get("/gateways", adminHandler.ListGateways)
	admin.Post("/gateways", adminHandler.CreateGateway)
	admin.Put("/gateways/:id", adminHandler.UpdateGateway)
	admin.Delete("/gateways/:id", adminHandler.DeleteGateway)

	admin.Post("/broadcast", adminHandler.Broadcast)

	admin.Get("/cache-stats", handlers.CacheStats)
}
