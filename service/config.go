package service

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Port        string
	BaseURL     string
	DBPath      string

	Stripe struct {
		PublishableKey string
		SecretKey      string
		WebhookSecret  string
	}

	Clerk struct {
		SecretKey string
	}

	Email struct {
		Provider       string
		From           string
		InternalTo     string
		SMTPHost       string
		SMTPPort       int
		SMTPLogin      string
		SMTPPassword   string
		SendGridAPIKey string
	}

	Shopify struct {
		Domain     string
		Token      string
		APIVersion string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	Kafka struct {
		Brokers []string
		Topic   string
	}

	Checkout struct {
		RatesPath          string
		TaxRateBPS         int64
		TaxIncludeShipping bool
	}

	Cart struct {
		CookieSecret string
	}

	EasyPost struct {
		APIKey string
	}
}

// LoadConfig reads configuration from the environment, loading .env first when present
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8000"),
		BaseURL:     strings.TrimRight(getEnv("BASE_URL", "http://localhost:8000"), "/"),
		DBPath:      getEnv("DB_PATH", "./db/hunt-kitchen.db"),
	}

	// Stripe
	config.Stripe.PublishableKey = getEnv("STRIPE_PUBLISHABLE_KEY", "")
	config.Stripe.SecretKey = getEnv("STRIPE_SECRET_KEY", "")
	config.Stripe.WebhookSecret = getEnv("STRIPE_WEBHOOK_SECRET", "")

	config.Clerk.SecretKey = getEnv("CLERK_SECRET_KEY", "")

	// Email
	config.Email.Provider = getEnv("EMAIL_PROVIDER", "smtp")
	config.Email.From = getEnv("EMAIL_FROM", "orders@huntkitchen.com")
	config.Email.InternalTo = getEnv("EMAIL_TO_INTERNAL", "kitchen@huntkitchen.com")
	config.Email.SMTPHost = getEnv("SMTP_HOST", "smtp.gmail.com")
	config.Email.SMTPPort = getEnvInt("SMTP_PORT", 587)
	config.Email.SMTPLogin = getEnv("SMTP_LOGIN", "")
	config.Email.SMTPPassword = getEnv("SMTP_PASSWORD", "")
	config.Email.SendGridAPIKey = getEnv("SENDGRID_API_KEY", "")

	// Shopify
	config.Shopify.Domain = getEnv("SHOPIFY_STORE_DOMAIN", "")
	config.Shopify.Token = getEnv("SHOPIFY_STOREFRONT_TOKEN", "")
	config.Shopify.APIVersion = getEnv("SHOPIFY_API_VERSION", "2024-10")

	// Redis
	config.Redis.Addr = getEnv("REDIS_ADDR", "")
	config.Redis.Password = getEnv("REDIS_PASSWORD", "")
	config.Redis.DB = getEnvInt("REDIS_DB", 0)

	// Kafka
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				config.Kafka.Brokers = append(config.Kafka.Brokers, b)
			}
		}
	}
	config.Kafka.Topic = getEnv("KAFKA_TOPIC", "hunt-kitchen.events")

	// Checkout
	config.Checkout.RatesPath = getEnv("SHIPPING_RATES_PATH", "")
	config.Checkout.TaxRateBPS = int64(getEnvInt("TAX_RATE_BPS", 0))
	config.Checkout.TaxIncludeShipping = getEnvBool("TAX_INCLUDE_SHIPPING", false)
	if config.Checkout.TaxRateBPS < 0 {
		return nil, fmt.Errorf("TAX_RATE_BPS must not be negative, got %d", config.Checkout.TaxRateBPS)
	}

	config.Cart.CookieSecret = getEnv("CART_COOKIE_SECRET", "")
	if config.Cart.CookieSecret == "" {
		if config.IsProduction() {
			return nil, errors.New("CART_COOKIE_SECRET is required in production")
		}
		config.Cart.CookieSecret = "development-cart-secret"
	}

	config.EasyPost.APIKey = getEnv("EASYPOST_API_KEY", "")

	return config, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) ShopifyEnabled() bool {
	return c.Shopify.Domain != "" && c.Shopify.Token != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", raw, "default", defaultValue)
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		slog.Warn("invalid boolean in environment, using default", "key", key, "value", raw, "default", defaultValue)
		return defaultValue
	}
	return b
}
