package routes

import (
	"securepay-portal/internal/adapters/http/handlers"
	"securepay-portal/internal/adapters/http/middleware"
	"securepay-portal/internal/adapters/persistence/repositories"
	"securepay-portal/internal/config"
	"securepay-portal/internal/core/services"
	"securepay-portal/internal/pkg/bruteforce"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, guard bruteforce.Guard) {
	// Initialize repositories
	customerRepo := repositories.NewCustomerRepository(db)
	staffRepo := repositories.NewStaffRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)

	// Initialize services
	authService := services.NewAuthService(customerRepo, staffRepo, cfg)
	staffService := services.NewStaffService(staffRepo, customerRepo)
	paymentService := services.NewPaymentService(paymentRepo)
	dashboardService := services.NewDashboardService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, guard)
	staffHandler := handlers.NewStaffHandler(authService, staffService, guard)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Customer auth (public)
	userRoutes := app.Group("/user")
	userRoutes.Post("/signup", authHandler.Signup)
	userRoutes.Post("/login", middleware.LoginGuard(guard), authHandler.Login)

	// Payments
	paymentRoutes := app.Group("/payment")
	paymentRoutes.Use(middleware.AuthMiddleware(cfg))
	paymentRoutes.Post("/", middleware.CustomerOnly(), paymentHandler.Create)
	paymentRoutes.Get("/", middleware.CustomerOnly(), paymentHandler.History)
	paymentRoutes.Patch("/approve/:id", middleware.ApprovedStaffOnly(staffRepo), paymentHandler.Approve)
	paymentRoutes.Patch("/reject/:id", middleware.ApprovedStaffOnly(staffRepo), paymentHandler.Reject)

	// Staff
	staffRoutes := app.Group("/staff")

	// Public staff routes
	staffRoutes.Post("/register", staffHandler.Register)
	staffRoutes.Post("/login", middleware.LoginGuard(guard), staffHandler.Login)
	staffRoutes.Post("/create-admin", staffHandler.CreateAdmin)

	// Staff-only routes: bearer token plus an authoritative re-check of
	// the account's current approval status in the store
	staffProtected := staffRoutes.Group("")
	staffProtected.Use(middleware.AuthMiddleware(cfg))
	staffProtected.Use(middleware.ApprovedStaffOnly(staffRepo))

	staffProtected.Get("/pending-staff", staffHandler.ListPendingStaff)
	staffProtected.Patch("/approve-staff/:id", staffHandler.ApproveStaff)
	staffProtected.Patch("/reject-staff/:id", staffHandler.RejectStaff)
	staffProtected.Post("/register-user", staffHandler.RegisterUser)
	staffProtected.Get("/users", staffHandler.ListUsers)
	staffProtected.Get("/payments", paymentHandler.ListAll)
	staffProtected.Get("/dashboard-stats", dashboardHandler.GetStats)
}
