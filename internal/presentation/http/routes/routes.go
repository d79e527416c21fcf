package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/minhducmx/banhang-api/internal/config"
	domainRepo "github.com/minhducmx/banhang-api/internal/domain/repository"
	"github.com/minhducmx/banhang-api/internal/presentation/http/handler"
	"github.com/minhducmx/banhang-api/internal/presentation/http/middleware"
	"github.com/minhducmx/banhang-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Product  *handler.ProductHandler
	Customer *handler.CustomerHandler
	Order    *handler.OrderHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
	Receipt  *handler.ReceiptHandler
	Settings *handler.SettingsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
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

	v1 := router.Group("/api/v1")
	{
		registerAuthRoutes(v1, h)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewTerminalRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.Refresh)
		auth.GET("/google", h.Auth.GoogleAuthURL)
		auth.POST("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	protected.GET("/auth/me", h.Auth.Me)

	// Catalog
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/barcode/:barcode", h.Product.GetByBarcode)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", middleware.RequireRole("admin"), h.Product.Delete)
	}

	categories := protected.Group("/categories")
	{
		categories.GET("", h.Product.ListCategories)
		categories.POST("", h.Product.CreateCategory)
		categories.DELETE("/:id", middleware.RequireRole("admin"), h.Product.DeleteCategory)
	}

	// Customers
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/phone/:phone", h.Customer.GetByPhone)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", middleware.RequireRole("admin"), h.Customer.Delete)
	}

	// Cart, one per register terminal
	cart := protected.Group("/cart/:terminal")
	{
		cart.GET("", h.Cart.Get)
		cart.POST("/items", h.Cart.AddItem)
		cart.PUT("/items/:productId/quantity", h.Cart.SetQuantity)
		cart.PUT("/items/:productId/price", h.Cart.SetItemPrice)
		cart.DELETE("/items/:productId", h.Cart.RemoveItem)
		cart.PUT("/discount", h.Cart.SetDiscount)
		cart.PUT("/received", h.Cart.SetReceived)
		cart.PUT("/payment-method", h.Cart.SetPaymentMethod)
		cart.PUT("/customer", h.Cart.SetCustomer)
		cart.POST("/reset", h.Cart.Reset)
	}

	// Checkout; submit is idempotency-guarded for safe retries
	checkout := protected.Group("/checkout/:terminal")
	{
		idem := middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo})
		checkout.POST("/submit", idem, h.Checkout.Submit)
		checkout.GET("/state", h.Checkout.State)
	}

	// Orders
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.GET("/export", h.Order.Export)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id/paid", h.Order.MarkPaid)
		orders.DELETE("/:id", middleware.RequireRole("admin"), h.Order.Delete)

		// Receipt rendering and printing
		orders.GET("/:id/receipt", h.Receipt.Render)
		orders.POST("/:id/print", h.Receipt.Print)
	}

	// Printer
	printer := protected.Group("/printer")
	{
		printer.GET("/status", h.Receipt.Status)
		printer.POST("/test", h.Receipt.TestPrint)
	}

	// Store settings and receipt templates
	protected.GET("/settings", h.Settings.Get)
	protected.PUT("/settings", middleware.RequireRole("admin"), h.Settings.Update)

	templates := protected.Group("/templates")
	{
		templates.GET("", h.Settings.ListTemplates)
		templates.POST("", middleware.RequireRole("admin"), h.Settings.CreateTemplate)
		templates.GET("/:id", h.Settings.GetTemplate)
		templates.PUT("/:id", middleware.RequireRole("admin"), h.Settings.UpdateTemplate)
		templates.DELETE("/:id", middleware.RequireRole("admin"), h.Settings.DeleteTemplate)
		templates.PUT("/:id/default", middleware.RequireRole("admin"), h.Settings.SetDefaultTemplate)
	}
}
