package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/vetclinic-api/internal/audit"
	"github.com/BruksfildServices01/vetclinic-api/internal/auth"
	"github.com/BruksfildServices01/vetclinic-api/internal/docstore"
	"github.com/BruksfildServices01/vetclinic-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/vetclinic-api/internal/infra/repository"
	"github.com/BruksfildServices01/vetclinic-api/internal/middleware"
	"github.com/BruksfildServices01/vetclinic-api/internal/models"
	"github.com/BruksfildServices01/vetclinic-api/internal/notify"
	"github.com/BruksfildServices01/vetclinic-api/internal/payment"
	"github.com/BruksfildServices01/vetclinic-api/internal/storage"
	ucAppointment "github.com/BruksfildServices01/vetclinic-api/internal/usecase/appointment"
	ucAuth "github.com/BruksfildServices01/vetclinic-api/internal/usecase/auth"
	ucCart "github.com/BruksfildServices01/vetclinic-api/internal/usecase/cart"
	ucProduct "github.com/BruksfildServices01/vetclinic-api/internal/usecase/product"
	ucSettings "github.com/BruksfildServices01/vetclinic-api/internal/usecase/settings"
)

// Deps are the process-wide handles the API is built on.
type Deps struct {
	Store    docstore.Store
	Tokens   *auth.Tokens
	Sink     storage.Sink
	Gateway  payment.Gateway
	Sender   notify.Sender
	Location *time.Location

	// StaticDir is served under StaticURLPrefix when set.
	StaticDir       string
	StaticURLPrefix string
}

// App holds what the caller needs after the routes are registered.
type App struct {
	Auth *ucAuth.Service

	audit    *audit.Dispatcher
	notifier *notify.Notifier
}

// Close drains the background audit and notification workers.
func (a *App) Close() {
	a.notifier.Close()
	a.audit.Close()
}

func RegisterRoutes(r *gin.Engine, d Deps) *App {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	productRepo := infraRepo.NewProductRepository(d.Store)
	userRepo := infraRepo.NewUserRepository(d.Store)
	patientRepo := infraRepo.NewPatientRepository(d.Store)
	appointmentRepo := infraRepo.NewAppointmentRepository(d.Store)
	requestRepo := infraRepo.NewAppointmentRequestRepository(d.Store)
	cartRepo := infraRepo.NewCartRepository(d.Store)
	orderRepo := infraRepo.NewOrderRepository(d.Store)
	settingsRepo := infraRepo.NewSettingsRepository(d.Store)
	auditLogRepo := infraRepo.NewAuditLogRepository(d.Store)

	auditDispatcher := audit.NewDispatcher(audit.New(d.Store))

	settingsService := ucSettings.NewService(settingsRepo, auditDispatcher)
	notifier := notify.NewNotifier(d.Sender, settingsService)

	// ======================================================
	// USE CASES
	// ======================================================
	authService := ucAuth.NewService(userRepo, d.Tokens, auditDispatcher)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
		notifier,
		d.Location,
	)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		auditDispatcher,
	)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, d.Location)

	productImages := ucProduct.NewImages(productRepo, d.Sink, auditDispatcher)

	cartService := ucCart.NewService(cartRepo)
	checkoutUC := ucCart.NewCheckout(cartRepo, d.Gateway, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productRepo, productImages, auditDispatcher)
	userHandler := handlers.NewUserHandler(userRepo, auditDispatcher)
	patientHandler := handlers.NewPatientHandler(patientRepo, auditDispatcher, notifier)
	appointmentHandler := handlers.NewAppointmentHandler(
		appointmentRepo,
		createAppointmentUC,
		updateAppointmentUC,
		listAppointmentsUC,
		availabilityUC,
		auditDispatcher,
	)
	requestHandler := handlers.NewAppointmentRequestHandler(requestRepo, auditDispatcher)
	cartHandler := handlers.NewCartHandler(cartService, checkoutUC)
	orderHandler := handlers.NewOrderHandler(orderRepo)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogRepo)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if d.StaticDir != "" {
		r.Static(d.StaticURLPrefix, d.StaticDir)
	}

	authRequired := middleware.AuthMiddleware(authService)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api/v1")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/me", authRequired, authHandler.Me)

		// ------------------------------
		// PRODUCTS
		// ------------------------------
		products := api.Group("/products")
		{
			products.GET("/", productHandler.List)
			products.GET("/:id", productHandler.Get)
			products.POST("/", authRequired, adminOnly, productHandler.Create)
			products.POST("/with-image", authRequired, adminOnly, productHandler.CreateWithImage)
			products.POST("/:id/image", authRequired, adminOnly, productHandler.UploadImage)
			products.PUT("/:id", authRequired, adminOnly, productHandler.Update)
			products.DELETE("/:id", authRequired, adminOnly, productHandler.Delete)
		}

		// ------------------------------
		// SETTINGS
		// ------------------------------
		api.GET("/settings/", settingsHandler.Get)
		api.PUT("/settings/", authRequired, adminOnly, settingsHandler.Update)

		// ------------------------------
		// APPOINTMENT REQUESTS
		// ------------------------------
		api.POST("/appointment-requests/", requestHandler.Create)
		requests := api.Group("/appointment-requests", authRequired, adminOnly)
		{
			requests.GET("/", requestHandler.List)
			requests.GET("/:id", requestHandler.Get)
			requests.PUT("/:id", requestHandler.Update)
			requests.DELETE("/:id", requestHandler.Delete)
		}

		// ------------------------------
		// CART & ORDERS
		// ------------------------------
		cart := api.Group("/cart/:userId", authRequired, middleware.RequireSelfOrAdmin("userId"))
		{
			cart.GET("", cartHandler.Get)
			cart.POST("/items", cartHandler.AddItem)
			cart.DELETE("/items/:productId", cartHandler.RemoveItem)
			cart.DELETE("", cartHandler.Clear)
			cart.POST("/checkout", cartHandler.Checkout)
		}

		api.GET("/orders/", authRequired, adminOnly, orderHandler.List)
		api.GET("/orders/:id", authRequired, orderHandler.Get)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/", authRequired, adminOnly)
		{
			admin.GET("/users/", userHandler.List)
			admin.GET("/users/:id", userHandler.Get)
			admin.POST("/users/", userHandler.Create)
			admin.PUT("/users/:id", userHandler.Update)
			admin.DELETE("/users/:id", userHandler.Delete)

			admin.GET("/patients/", patientHandler.List)
			admin.GET("/patients/:id", patientHandler.Get)
			admin.POST("/patients/", patientHandler.Create)
			admin.PUT("/patients/:id", patientHandler.Update)
			admin.DELETE("/patients/:id", patientHandler.Delete)

			admin.GET("/appointments/", appointmentHandler.List)
			admin.GET("/appointments/availability", appointmentHandler.Availability)
			admin.GET("/appointments/:id", appointmentHandler.Get)
			admin.POST("/appointments/", appointmentHandler.Create)
			admin.PUT("/appointments/:id", appointmentHandler.Update)
			admin.DELETE("/appointments/:id", appointmentHandler.Delete)

			admin.GET("/audit-logs/", auditLogsHandler.List)
		}
	}

	return &App{
		Auth:     authService,
		audit:    auditDispatcher,
		notifier: notifier,
	}
}
