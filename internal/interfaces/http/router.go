package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	catalogUsecases "milkrun/internal/application/catalog/usecases"
	customerUsecases "milkrun/internal/application/customer/usecases"
	orderUsecases "milkrun/internal/application/order/usecases"
	subscriptionUsecases "milkrun/internal/application/subscription/usecases"
	"milkrun/internal/infrastructure/config"
	"milkrun/internal/infrastructure/ratelimit"
	"milkrun/internal/infrastructure/repository"
	"milkrun/internal/interfaces/http/handlers"
	"milkrun/internal/interfaces/http/middleware"
	"milkrun/internal/shared/auth"
	"milkrun/internal/shared/clock"
	"milkrun/internal/shared/logger"
	"milkrun/internal/shared/utils"
)

// Router wires repositories, use cases and handlers into the HTTP surface.
type Router struct {
	engine              *gin.Engine
	cfg                 *config.Config
	guard               *auth.Guard
	logger              logger.Interface
	rateLimiter         ratelimit.RateLimiter
	productHandler      *handlers.ProductHandler
	profileHandler      *handlers.ProfileHandler
	orderHandler        *handlers.OrderHandler
	subscriptionHandler *handlers.SubscriptionHandler
	maintenanceHandler  *handlers.MaintenanceHandler
	authHandler         *handlers.AuthHandler
	recurringOrdersUC   *subscriptionUsecases.GenerateRecurringOrdersUseCase
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, guard *auth.Guard, clk clock.Clock, log logger.Interface) *Router {
	engine := gin.New()
	registerValidators()

	productRepo := repository.NewProductRepository(db, log)
	profileRepo := repository.NewProfileRepository(db, log)
	orderRepo := repository.NewOrderRepository(db, log)
	subscriptionRepo := repository.NewSubscriptionRepository(db, log)
	initFlagRepo := repository.NewSystemFlagRepository(db, log)

	listProductsUC := catalogUsecases.NewListProductsUseCase(productRepo, log)
	addProductUC := catalogUsecases.NewAddProductUseCase(productRepo, clk, log)
	updateProductUC := catalogUsecases.NewUpdateProductUseCase(productRepo, clk, log)
	seedCatalogUC := catalogUsecases.NewSeedCatalogUseCase(productRepo, initFlagRepo, clk, log)

	createProfileUC := customerUsecases.NewCreateProfileUseCase(profileRepo, clk, log)
	updateProfileUC := customerUsecases.NewUpdateProfileUseCase(profileRepo, clk, log)
	getProfileUC := customerUsecases.NewGetProfileUseCase(profileRepo, log)
	listCustomersUC := customerUsecases.NewListCustomersUseCase(profileRepo, log)
	deleteProfileUC := customerUsecases.NewDeleteProfileUseCase(profileRepo, log)

	createOrderUC := orderUsecases.NewCreateOrderUseCase(orderRepo, profileRepo, productRepo, clk, log)
	getMyOrdersUC := orderUsecases.NewGetMyOrdersUseCase(orderRepo, log)
	getOrderDetailsUC := orderUsecases.NewGetOrderDetailsUseCase(orderRepo, log)
	cancelOrderUC := orderUsecases.NewCancelOrderUseCase(orderRepo, clk, log)
	listAllOrdersUC := orderUsecases.NewListAllOrdersUseCase(orderRepo, log)
	updateOrderStatusUC := orderUsecases.NewUpdateOrderStatusUseCase(orderRepo, clk, log)

	createSubscriptionUC := subscriptionUsecases.NewCreateSubscriptionUseCase(subscriptionRepo, profileRepo, productRepo, clk, log)
	getMySubscriptionsUC := subscriptionUsecases.NewGetMySubscriptionsUseCase(subscriptionRepo, log)
	getSubscriptionDetailsUC := subscriptionUsecases.NewGetSubscriptionDetailsUseCase(subscriptionRepo, log)
	pauseSubscriptionUC := subscriptionUsecases.NewPauseSubscriptionUseCase(subscriptionRepo, profileRepo, clk, log)
	resumeSubscriptionUC := subscriptionUsecases.NewResumeSubscriptionUseCase(subscriptionRepo, profileRepo, clk, log)
	cancelSubscriptionUC := subscriptionUsecases.NewCancelSubscriptionUseCase(subscriptionRepo, profileRepo, clk, log)
	updateSubscriptionDetailsUC := subscriptionUsecases.NewUpdateSubscriptionDetailsUseCase(subscriptionRepo, productRepo, clk, log)
	listAllSubscriptionsUC := subscriptionUsecases.NewListAllSubscriptionsUseCase(subscriptionRepo, log)
	updateSubscriptionStatusUC := subscriptionUsecases.NewUpdateSubscriptionStatusUseCase(subscriptionRepo, profileRepo, clk, log)
	recurringOrdersUC := subscriptionUsecases.NewGenerateRecurringOrdersUseCase(subscriptionRepo, createOrderUC, clk, log)

	var limiter ratelimit.RateLimiter
	if cfg.RateLimit.Enabled {
		if cfg.Redis.Enabled {
			client := redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.GetAddr(),
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			limiter = ratelimit.NewRedisRateLimiter(client)
		} else {
			limiter = ratelimit.NewMemoryRateLimiter()
		}
	}

	return &Router{
		engine:      engine,
		cfg:         cfg,
		guard:       guard,
		logger:      log,
		rateLimiter: limiter,
		productHandler: handlers.NewProductHandler(
			listProductsUC, addProductUC, updateProductUC, seedCatalogUC, log,
		),
		profileHandler: handlers.NewProfileHandler(
			createProfileUC, updateProfileUC, getProfileUC, listCustomersUC, deleteProfileUC, log,
		),
		orderHandler: handlers.NewOrderHandler(
			createOrderUC, getMyOrdersUC, getOrderDetailsUC, cancelOrderUC, listAllOrdersUC, updateOrderStatusUC, log,
		),
		subscriptionHandler: handlers.NewSubscriptionHandler(
			createSubscriptionUC, getMySubscriptionsUC, getSubscriptionDetailsUC,
			pauseSubscriptionUC, resumeSubscriptionUC, cancelSubscriptionUC,
			updateSubscriptionDetailsUC, listAllSubscriptionsUC, updateSubscriptionStatusUC, log,
		),
		maintenanceHandler: handlers.NewMaintenanceHandler(recurringOrdersUC, log),
		authHandler:        handlers.NewAuthHandler(guard),
		recurringOrdersUC:  recurringOrdersUC,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())

	if r.rateLimiter != nil {
		r.engine.Use(middleware.RateLimit(r.rateLimiter, ratelimit.RateLimitConfig{
			RequestsPerMinute: r.cfg.RateLimit.RequestsPerMinute,
			BurstSize:         r.cfg.RateLimit.BurstSize,
		}, r.logger))
	}

	r.engine.GET("/healthz", func(c *gin.Context) {
		utils.OKResponse(c, gin.H{"status": "ok", "time": time.Now().UTC()})
	})

	api := r.engine.Group("/api")
	{
		api.GET("/auth/check", r.authHandler.Check)

		api.GET("/products", r.productHandler.ListProducts)

		api.GET("/profiles/:phone", r.profileHandler.GetProfile)
		api.POST("/profiles", r.profileHandler.CreateProfile)
		api.PUT("/profiles", r.profileHandler.UpdateProfile)

		api.POST("/orders", r.orderHandler.CreateOrder)
		api.GET("/orders", r.orderHandler.GetMyOrders)
		api.GET("/orders/:id", r.orderHandler.GetOrderDetails)
		api.POST("/orders/:id/cancel", r.orderHandler.CancelOrder)

		api.POST("/subscriptions", r.subscriptionHandler.CreateSubscription)
		api.GET("/subscriptions", r.subscriptionHandler.GetMySubscriptions)
		api.GET("/subscriptions/:id", r.subscriptionHandler.GetSubscriptionDetails)
		api.POST("/subscriptions/:id/pause", r.subscriptionHandler.PauseSubscription)
		api.POST("/subscriptions/:id/resume", r.subscriptionHandler.ResumeSubscription)
		api.POST("/subscriptions/:id/cancel", r.subscriptionHandler.CancelSubscription)
		api.PATCH("/subscriptions/:id", r.subscriptionHandler.UpdateSubscription)
	}

	admin := r.engine.Group("/api/admin")
	admin.Use(middleware.AdminAuth(r.guard))
	{
		admin.POST("/products", r.productHandler.AddProduct)
		admin.PUT("/products/:id", r.productHandler.UpdateProduct)
		admin.POST("/products/initialize", r.productHandler.InitializeProducts)

		admin.GET("/customers", r.profileHandler.ListCustomers)
		admin.DELETE("/profiles/:phone", r.profileHandler.DeleteProfile)

		admin.GET("/orders", r.orderHandler.ListAllOrders)
		admin.GET("/orders/:id", r.orderHandler.GetOrderDetails)
		admin.PUT("/orders/:id/status", r.orderHandler.UpdateOrderStatus)

		admin.GET("/subscriptions", r.subscriptionHandler.ListAllSubscriptions)
		admin.PUT("/subscriptions/:id/status", r.subscriptionHandler.UpdateSubscriptionStatus)

		admin.POST("/maintenance/recurring-orders", r.maintenanceHandler.RunRecurringOrderSweep)
	}
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// RecurringOrdersUseCase exposes the sweep use case so the scheduler shares
// the exact wiring the maintenance endpoint uses.
func (r *Router) RecurringOrdersUseCase() *subscriptionUsecases.GenerateRecurringOrdersUseCase {
	return r.recurringOrdersUC
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	if err := r.engine.Run(addr); err != nil {
		return fmt.Errorf("failed to run server: %w", err)
	}
	return nil
}
