package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/minhducmx/banhang-api/internal/application/service"
	"github.com/minhducmx/banhang-api/internal/config"
	"github.com/minhducmx/banhang-api/internal/infrastructure/database"
	"github.com/minhducmx/banhang-api/internal/infrastructure/repository"
	"github.com/minhducmx/banhang-api/internal/presentation/http/handler"
	"github.com/minhducmx/banhang-api/internal/presentation/http/routes"
	"github.com/minhducmx/banhang-api/pkg/oauth"
	"github.com/minhducmx/banhang-api/pkg/printer"
	"github.com/minhducmx/banhang-api/pkg/utils"
)

func main() {
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	googleService := oauth.NewGoogleService(oauth.GoogleConfig{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURL,
	})

	// Thermal printer
	thermalPrinter, err := printer.NewFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Services
	authService := service.NewAuthService(userRepo, jwtManager, googleService)
	productService := service.NewProductService(productRepo, categoryRepo)
	customerService := service.NewCustomerService(customerRepo)
	cartService := service.NewCartService(productRepo)
	checkoutService := service.NewCheckoutService(cartService, orderRepo, customerRepo)
	orderService := service.NewOrderService(orderRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	templateService := service.NewTemplateService(templateRepo)
	receiptService := service.NewReceiptService(orderRepo, settingsRepo, templateRepo, thermalPrinter, cfg.Printer.Type)

	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Product:  handler.NewProductHandler(productService),
		Customer: handler.NewCustomerHandler(customerService),
		Order:    handler.NewOrderHandler(orderService),
		Cart:     handler.NewCartHandler(cartService),
		Checkout: handler.NewCheckoutHandler(checkoutService),
		Receipt:  handler.NewReceiptHandler(receiptService),
		Settings: handler.NewSettingsHandler(settingsService, templateService),
	}

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}

	log.Printf("Starting %s on port %s", cfg.App.Name, port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
