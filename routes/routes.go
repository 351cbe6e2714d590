package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"fairway/handlers"
	"fairway/middleware"
	"fairway/utils"
)

// RegisterScheduleRoutes registers availability and schedule management
// endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/:ownerId/availability", hb.Schedule.GetAvailabilityHandler)
		api.GET("/:ownerId/summaries", hb.Schedule.GetSummariesHandler)

		api.GET("/:ownerId/weekly", hb.Schedule.GetWeeklyEntriesHandler)
		api.PUT("/:ownerId/weekly", hb.Schedule.PutWeeklyEntryHandler)
		api.POST("/:ownerId/blocks", hb.Schedule.CreateBlockHandler)
		api.DELETE("/:ownerId/blocks/:blockId", hb.Schedule.DeleteBlockHandler)
		api.POST("/:ownerId/overrides", hb.Schedule.CreateOverrideHandler)
		api.DELETE("/:ownerId/overrides/:overrideId", hb.Schedule.DeleteOverrideHandler)
	}

	// The day layout spans every owner, so it lives outside the
	// per-owner schedule group.
	calendar := r.Group("/api/calendar")
	{
		calendar.Use(middleware.JWTAuthMiddleware())
		calendar.GET("/layout", hb.Schedule.GetDayLayoutHandler)
	}
}

// RegisterBookingRoutes registers the booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Booking.CreateBookingHandler)
		api.GET("", hb.Booking.ListDayBookingsHandler)
		api.GET("/id/:id", hb.Booking.GetBookingHandler)
		api.PUT("/update/:id", hb.Booking.UpdateBookingHandler)
		api.DELETE("/cancel/:id", hb.Booking.CancelBookingHandler)
	}
}

// RegisterCustomerRoutes registers the CRM endpoints.
func RegisterCustomerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/customers")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Customer.CreateCustomerHandler)
		api.GET("/search", hb.Customer.SearchCustomersHandler)
		api.GET("/id/:id", hb.Customer.GetCustomerHandler)
		api.PUT("/update/:id", hb.Customer.UpdateCustomerHandler)
		api.DELETE("/delete/:id", hb.Customer.DeleteCustomerHandler)
	}
}

// RegisterStaffRoutes registers staff accounts, sign-in and time clock
// endpoints. Login is public; account creation is admin only.
func RegisterStaffRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/staff")
	{
		api.POST("/login", hb.Staff.LoginHandler)

		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.Staff.ListStaffHandler)
		api.POST("/clock-in", hb.Staff.ClockInHandler)
		api.POST("/clock-out", hb.Staff.ClockOutHandler)
		api.GET("/time-report/:id", hb.Staff.TimeReportHandler)

		admin := api.Group("")
		admin.Use(middleware.AdminOnlyMiddleware())
		admin.POST("/register", hb.Staff.RegisterStaffHandler)
	}
}

// RegisterInvoiceRoutes registers suppliers, invoices and venue settings.
func RegisterInvoiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/invoicing")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/suppliers", hb.Invoice.CreateSupplierHandler)
		api.GET("/suppliers", hb.Invoice.ListSuppliersHandler)
		api.POST("/invoices", hb.Invoice.CreateInvoiceHandler)
		api.GET("/invoices", hb.Invoice.ListMonthInvoicesHandler)
		api.GET("/invoices/:id", hb.Invoice.GetInvoiceHandler)
		api.GET("/settings", hb.Invoice.GetSettingsHandler)

		admin := api.Group("")
		admin.Use(middleware.AdminOnlyMiddleware())
		admin.PUT("/settings", hb.Invoice.PutSettingsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Mongo || !status.Redis {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterScheduleRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCustomerRoutes(r, hb)
	RegisterStaffRoutes(r, hb)
	RegisterInvoiceRoutes(r, hb)
}
