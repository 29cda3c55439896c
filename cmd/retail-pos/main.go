package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/aaravmahajanofficial/retail-pos/docs"
	"github.com/aaravmahajanofficial/retail-pos/internal/api/handlers"
	"github.com/aaravmahajanofficial/retail-pos/internal/api/middleware"
	"github.com/aaravmahajanofficial/retail-pos/internal/cache"
	"github.com/aaravmahajanofficial/retail-pos/internal/config"
	"github.com/aaravmahajanofficial/retail-pos/internal/health"
	"github.com/aaravmahajanofficial/retail-pos/internal/metrics"
	"github.com/aaravmahajanofficial/retail-pos/internal/models"
	repository "github.com/aaravmahajanofficial/retail-pos/internal/repositories"
	service "github.com/aaravmahajanofficial/retail-pos/internal/services"
	"github.com/aaravmahajanofficial/retail-pos/internal/tracing"
	"github.com/aaravmahajanofficial/retail-pos/pkg/sendGrid"
	httpSwagger "github.com/swaggo/http-swagger"
)

//	@title						Retail POS API
//	@version					1.0
//	@description				Point of sale backend: catalog, till cart, checkout, sale confirmations and sales reporting.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the JWT token.
func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	shutdownTracing, err := tracing.Setup(context.Background(), &cfg.Tracing, cfg.Env)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Postgres.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer redisClient.Close()

	redisCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	rateLimitRepo := repository.NewRateLimitRepo(redisClient, cfg)
	sessionRepo := repository.NewSessionRepo(redisClient, cfg)
	cartRepo := repository.NewCartRepo(redisCache, &cfg.Cache)

	sendGridClient := sendGrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	userService := service.NewUserService(repos.User, repos.Profile, rateLimitRepo, sessionRepo, &cfg.Security)
	productService := service.NewProductService(repos.Product, redisCache, cfg)
	cartService := service.NewCartService(cartRepo, repos.Product)
	notificationService := service.NewNotificationService(repos.Notification, sendGridClient, cfg)
	checkoutService := service.NewCheckoutService(cartRepo, repos.Sale, notificationService, redisCache)
	reportService := service.NewReportService(repos.Sale, repos.Product, cfg)

	userHandler := handlers.NewUserHandler(userService)
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	reportHandler := handlers.NewReportHandler(reportService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	authMiddleware := middleware.NewAuthMiddleware([]byte(cfg.Security.JWTKey), sessionRepo)
	gate := middleware.NewAccessGate(authMiddleware)

	signedIn := gate.Require()
	staff := gate.Require(models.RoleAdmin, models.RoleSalesperson)
	adminOnly := gate.Require(models.RoleAdmin)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", health.Version))

	// Setup router
	routerMux := http.NewServeMux()

	routerMux.Handle("GET /healthz", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	routerMux.HandleFunc("POST /api/v1/auth/register", userHandler.Register())
	routerMux.HandleFunc("POST /api/v1/auth/login", userHandler.Login())
	routerMux.Handle("POST /api/v1/auth/logout", signedIn(userHandler.Logout()))
	routerMux.Handle("GET /api/v1/auth/session", signedIn(userHandler.Session()))
	routerMux.Handle("PUT /api/v1/auth/password", signedIn(userHandler.ChangePassword()))

	routerMux.Handle("GET /api/v1/products", staff(productHandler.ListProducts()))
	routerMux.Handle("GET /api/v1/products/{id}", staff(productHandler.GetProduct()))
	routerMux.Handle("POST /api/v1/products", adminOnly(productHandler.CreateProduct()))
	routerMux.Handle("PATCH /api/v1/products/{id}", adminOnly(productHandler.UpdateProduct()))
	routerMux.Handle("PUT /api/v1/products/{id}/stock", adminOnly(productHandler.SetStock()))

	routerMux.Handle("GET /api/v1/cart", staff(cartHandler.GetCart()))
	routerMux.Handle("DELETE /api/v1/cart", staff(cartHandler.ClearCart()))
	routerMux.Handle("POST /api/v1/cart/items", staff(cartHandler.AddItem()))
	routerMux.Handle("PUT /api/v1/cart/items/{productId}", staff(cartHandler.SetQuantity()))
	routerMux.Handle("DELETE /api/v1/cart/items/{productId}", staff(cartHandler.RemoveItem()))
	routerMux.Handle("POST /api/v1/checkout", staff(checkoutHandler.Checkout()))

	routerMux.Handle("GET /api/v1/sales", adminOnly(reportHandler.ListSales()))
	routerMux.Handle("GET /api/v1/sales/{id}", adminOnly(reportHandler.GetSale()))
	routerMux.Handle("GET /api/v1/reports/summary", adminOnly(reportHandler.Summary()))
	routerMux.Handle("GET /api/v1/dashboard", staff(reportHandler.Dashboard()))
	routerMux.Handle("GET /api/v1/notifications", adminOnly(notificationHandler.ListNotifications()))

	// Setup http server
	server := http.Server{
		Addr:         cfg.Addr,
		Handler:      newServerHandler(cfg, routerMux),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
			done <- syscall.SIGTERM
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}
}
