package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/auth"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/cart"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/catalog"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/checkout"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/email"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/events"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/handlers"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/orders"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/payments"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/recipes"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/session"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/shipping"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/stripe"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage"
)

type Service struct {
	storage   *storage.Storage
	config    *Config
	provider  payments.Provider
	publisher events.Publisher
	redis     *redis.Client

	carts        cart.Store
	source       catalog.Source
	builder      *checkout.Builder
	materializer *orders.Materializer
	workflow     *orders.Workflow
	aggregator   *recipes.Aggregator
}

// New wires the storefront's components from config. Optional backends (Redis, Kafka,
// Shopify, EasyPost) are used when configured and replaced by local fallbacks otherwise.
func New(storage *storage.Storage, config *Config) (*Service, error) {
	s := &Service{
		storage: storage,
		config:  config,
	}

	if config.Stripe.SecretKey != "" {
		s.provider = stripe.NewService(config.Stripe.SecretKey, config.Stripe.WebhookSecret)
	} else {
		if config.IsProduction() {
			return nil, errors.New("STRIPE_SECRET_KEY is required in production")
		}
		slog.Warn("stripe not configured, using in-memory payment provider")
		s.provider = payments.NewFakeProvider()
	}

	if len(config.Kafka.Brokers) > 0 {
		slog.Info("publishing domain events to kafka", "brokers", config.Kafka.Brokers, "topic", config.Kafka.Topic)
		s.publisher = events.NewKafkaPublisher(config.Kafka.Brokers, config.Kafka.Topic)
	} else {
		s.publisher = events.LogPublisher{}
	}

	s.redis = connectRedis(config)

	if config.ShopifyEnabled() {
		slog.Info("using shopify storefront catalog", "domain", config.Shopify.Domain)
		s.source = catalog.NewShopifySource(catalog.ShopifyConfig{
			Domain:     config.Shopify.Domain,
			Token:      config.Shopify.Token,
			APIVersion: config.Shopify.APIVersion,
		})
	} else {
		s.source = catalog.NewLocalSource(storage.Queries)
	}

	sessions := session.NewManager(config.Cart.CookieSecret, config.IsProduction())
	var summaryCache recipes.SummaryCache
	if s.redis != nil {
		s.carts = cart.NewRedisStore(s.redis, sessions, cart.DefaultTTL)
		summaryCache = recipes.NewRedisCache(s.redis)
	} else {
		s.carts = cart.NewSessionStore(sessions)
	}

	rates, err := checkout.LoadRateTable(config.Checkout.RatesPath)
	if err != nil {
		return nil, err
	}
	tax := checkout.FlatRateTax{
		BasisPoints:     config.Checkout.TaxRateBPS,
		IncludeShipping: config.Checkout.TaxIncludeShipping,
	}
	s.builder = checkout.NewBuilder(s.source, rates, tax, s.provider, config.BaseURL)

	emailService := email.NewService(email.Config{
		Provider:       config.Email.Provider,
		From:           config.Email.From,
		InternalTo:     config.Email.InternalTo,
		StoreURL:       config.BaseURL,
		SMTPHost:       config.Email.SMTPHost,
		SMTPPort:       config.Email.SMTPPort,
		SMTPLogin:      config.Email.SMTPLogin,
		SMTPPassword:   config.Email.SMTPPassword,
		SendGridAPIKey: config.Email.SendGridAPIKey,
	})
	s.materializer = orders.NewMaterializer(storage, s.provider, emailService, s.publisher)

	tracker := shipping.NewTracker(config.EasyPost.APIKey)
	if tracker.IsUsingTemplates() {
		slog.Info("easypost not configured, tracking links use carrier templates")
	}
	s.workflow = orders.NewWorkflow(storage.Queries, tracker, s.publisher)

	s.aggregator = recipes.NewAggregator(storage, summaryCache, s.publisher)

	return s, nil
}

func connectRedis(config *Config) *redis.Client {
	if config.Redis.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Redis.Addr,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unavailable, carts fall back to cookies", "error", err, "addr", config.Redis.Addr)
		client.Close()
		return nil
	}

	slog.Info("connected to redis", "addr", config.Redis.Addr)
	return client
}

// Close releases the event publisher and the Redis connection
func (s *Service) Close() error {
	if err := s.publisher.Close(); err != nil {
		slog.Error("failed to close event publisher", "error", err)
	}
	if s.redis != nil {
		return s.redis.Close()
	}
	return nil
}

func (s *Service) RegisterRoutes(e *echo.Echo) {
	// Tests run without a key; verification then fails and requests stay anonymous.
	clerk.SetKey(s.config.Clerk.SecretKey)

	// Static files - no auth middleware
	e.Static("/public", "public")

	// Health check - no auth
	e.GET("/health", s.handleHealth)

	// Provider webhooks are authenticated by signature, not by session
	paymentHandler := handlers.NewPaymentHandler(s.provider, s.materializer)
	e.POST("/api/stripe/webhook", paymentHandler.HandleWebhook)

	withAuth := e.Group("")
	withAuth.Use(auth.ClerkAuthMiddleware(s.storage))

	withAuth.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/shop")
	})

	// Shop routes
	shopHandler := handlers.NewShopHandler(catalog.NewStorefront(s.source), s.config.BaseURL)
	shop := withAuth.Group("/shop")
	shop.GET("", shopHandler.HandleListing)
	shop.GET("/products/:handle", shopHandler.HandleProduct)

	// Cart API
	cartHandler := handlers.NewCartHandler(s.carts, s.source)
	withAuth.GET("/api/cart", cartHandler.HandleGet)
	withAuth.POST("/api/cart/items", cartHandler.HandleAddItem)
	withAuth.PUT("/api/cart/items/:variantId", cartHandler.HandleUpdateItem)
	withAuth.DELETE("/api/cart/items/:variantId", cartHandler.HandleRemoveItem)

	// Checkout routes
	checkoutHandler := handlers.NewCheckoutHandler(s.builder, s.materializer, s.carts, s.config.BaseURL)
	withAuth.GET("/checkout/rates", checkoutHandler.HandleRates)
	withAuth.POST("/checkout/quote", checkoutHandler.HandleQuote)
	withAuth.POST("/checkout/create-session", checkoutHandler.HandleCreateSession)
	withAuth.GET("/checkout/success", checkoutHandler.HandleSuccess)
	withAuth.GET("/checkout/cancel", checkoutHandler.HandleCancel)

	// Recipe routes
	recipesHandler := handlers.NewRecipesHandler(s.storage.Queries, s.aggregator, s.config.BaseURL)
	withAuth.GET("/recipes", recipesHandler.HandleList)
	withAuth.GET("/recipes/:slug", recipesHandler.HandleDetail)
	withAuth.GET("/recipes/:slug/ratings", recipesHandler.HandleRatings)
	withAuth.GET("/recipes/:slug/share.png", recipesHandler.HandleSharePNG)
	withAuth.POST("/recipes/:slug/rate", recipesHandler.HandleRate, auth.RequireAuth())

	// Admin routes - admin users or API keys
	adminHandler := handlers.NewAdminHandler(s.storage, s.aggregator)
	adminOrdersHandler := handlers.NewAdminOrdersHandler(s.workflow, s.config.BaseURL)

	admin := withAuth.Group("/admin", auth.RequireAdmin(s.storage))

	// Orders management routes
	admin.GET("/orders", adminOrdersHandler.HandleList)
	admin.GET("/orders/:id", adminOrdersHandler.HandleDetail)
	admin.POST("/orders/:id", adminOrdersHandler.HandleUpdate)
	admin.PATCH("/orders/:id", adminOrdersHandler.HandleUpdate)
	admin.GET("/orders/:id/packing-slip", adminOrdersHandler.HandlePackingSlip)

	// Rating moderation
	admin.GET("/ratings", adminHandler.HandleRatingsList)
	admin.POST("/ratings/:id/approve", adminHandler.HandleApproveRating)
	admin.POST("/ratings/:id/unapprove", adminHandler.HandleUnapproveRating)

	// Catalog management routes
	admin.POST("/products", adminHandler.HandleCreateProduct)
	admin.POST("/products/:id/variants", adminHandler.HandleCreateVariant)
	admin.PUT("/variants/:id/inventory", adminHandler.HandleSetInventory)
	admin.POST("/recipes", adminHandler.HandleCreateRecipe)

	// API keys
	admin.POST("/api-keys", adminHandler.HandleAPIKeyCreate)
	admin.DELETE("/api-keys/:id", adminHandler.HandleAPIKeyRevoke)
}

func (s *Service) handleHealth(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	code, status, database := http.StatusOK, "healthy", "connected"
	if err := s.storage.DB().PingContext(ctx); err != nil {
		slog.Error("health check database ping failed", "error", err)
		code, status, database = http.StatusServiceUnavailable, "degraded", "unavailable"
	}

	cache := "disabled"
	if s.redis != nil {
		cache = "connected"
		if err := s.redis.Ping(ctx).Err(); err != nil {
			cache = "unavailable"
		}
	}

	return c.JSON(code, map[string]any{
		"status":      status,
		"environment": s.config.Environment,
		"database":    database,
		"cache":       cache,
		"catalog":     s.source.Name(),
	})
}
