package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tallerlab/taller-api/internal/config"
	"github.com/tallerlab/taller-api/internal/presentation/http/handler"
	"github.com/tallerlab/taller-api/internal/presentation/http/middleware"
	"github.com/tallerlab/taller-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	WorkOrder   *handler.WorkOrderHandler
	Expense     *handler.ExpenseHandler
	Appointment *handler.AppointmentHandler
	Raffle      *handler.RaffleHandler
	Dashboard   *handler.DashboardHandler
	Ledger      *handler.LedgerHandler
	Settings    *handler.SettingsHandler
	Backup      *handler.BackupHandler
	Report      *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	protected.GET("/profile", h.Auth.GetProfile)

	// Work orders
	orders := protected.Group("/work-orders")
	{
		orders.GET("", h.WorkOrder.ListWorkOrders)
		orders.POST("", h.WorkOrder.CreateWorkOrder)
		orders.GET("/:id", h.WorkOrder.GetWorkOrder)
		orders.PUT("/:id", h.WorkOrder.UpdateWorkOrder)
		orders.PATCH("/:id/status", h.WorkOrder.UpdateWorkOrderStatus)
		orders.DELETE("/:id", h.WorkOrder.DeleteWorkOrder)
		orders.PATCH("/:id/items/:itemID/reimburse", h.WorkOrder.ToggleItemReimbursed)
	}

	// Standalone expenses
	expenses := protected.Group("/expenses")
	{
		expenses.GET("", h.Expense.ListExpenses)
		expenses.POST("", h.Expense.CreateExpense)
		expenses.GET("/:id", h.Expense.GetExpense)
		expenses.PUT("/:id", h.Expense.UpdateExpense)
		expenses.DELETE("/:id", h.Expense.DeleteExpense)
		expenses.PATCH("/:id/pay", h.Expense.TogglePaid)
	}

	// Appointments
	appointments := protected.Group("/appointments")
	{
		appointments.GET("", h.Appointment.ListAppointments)
		appointments.POST("", h.Appointment.CreateAppointment)
		appointments.PATCH("/:id/status", h.Appointment.UpdateAppointmentStatus)
		appointments.DELETE("/:id", h.Appointment.DeleteAppointment)
	}

	// Raffle
	raffle := protected.Group("/raffle")
	{
		raffle.POST("/draw", h.Raffle.Draw)
		raffle.GET("/winners", h.Raffle.ListWinners)
		raffle.PATCH("/winners/:id/redeem", h.Raffle.ToggleRedeemed)
		raffle.DELETE("/winners/:id", h.Raffle.DeleteWinner)
	}

	// Dashboard and tax views
	protected.GET("/dashboard/summary", h.Dashboard.GetMonthlySummary)
	protected.GET("/dashboard/f29", h.Dashboard.GetF29Estimate)

	// Reimbursement ledger
	protected.GET("/ledger", h.Ledger.GetLedger)
	protected.POST("/ledger/toggle", h.Ledger.ToggleEntry)

	// Settings
	protected.GET("/settings", h.Settings.GetSettings)
	protected.PUT("/settings", h.Settings.UpdateSettings)

	// Backup
	protected.GET("/backup/export", h.Backup.Export)
	protected.POST("/backup/import", h.Backup.Import)

	// Reports
	protected.GET("/reports/xlsx", h.Report.Download)
}
