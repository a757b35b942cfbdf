package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/auth"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/seed"
	"github.com/treysweeney3/hunt-kitchen-sub000/service"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage/db"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:           "hunt-kitchen",
	Short:         "Hunt Kitchen storefront and recipe site",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(logLevel)
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := service.LoadConfig()
		if err != nil {
			return err
		}
		store, err := storage.New(config.DBPath)
		if err != nil {
			return err
		}
		return store.Close()
	},
}

var (
	seedValue    uint64
	seedShoppers int
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill an empty database with a demo catalog, recipes and reviews",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := service.LoadConfig()
		if err != nil {
			return err
		}
		store, err := storage.New(config.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		summary, err := seed.Run(cmd.Context(), store, seed.Options{Seed: seedValue, Shoppers: seedShoppers})
		if errors.Is(err, seed.ErrAlreadySeeded) {
			slog.Warn("skipping seed, database is not empty", "database", config.DBPath)
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d products (%d variants), %d recipes, %d ratings\n",
			summary.Products, summary.Variants, summary.Recipes, summary.Ratings)
		return nil
	},
}

var apiKeyCmd = &cobra.Command{
	Use:   "apikey",
	Short: "Manage admin API keys",
}

var apiKeyPermissions []string

var apiKeyCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create an API key; the plaintext key is printed once",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := service.LoadConfig()
		if err != nil {
			return err
		}
		store, err := storage.New(config.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		key, plaintext, err := auth.CreateAPIKey(cmd.Context(), store.Queries, args[0], strings.Join(apiKeyPermissions, ","))
		if err != nil {
			return fmt.Errorf("failed to create API key: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "id:  %s\nkey: %s\n", key.ID, plaintext)
		return nil
	},
}

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage admin users",
}

var adminRevoke bool

var adminGrantCmd = &cobra.Command{
	Use:   "grant [email]",
	Short: "Give a signed-in user admin access (use --revoke to take it away)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := service.LoadConfig()
		if err != nil {
			return err
		}
		store, err := storage.New(config.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := store.Queries.SetUserAdminByEmail(cmd.Context(), db.SetUserAdminByEmailParams{
			IsAdmin: !adminRevoke,
			Lower:   args[0],
		})
		if err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("no user with email %s; users appear after their first sign-in", args[0])
		}
		slog.Info("admin access updated", "email", args[0], "is_admin", !adminRevoke)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", os.Getenv("LOG_LEVEL"), "log level (debug, info, warn, error)")

	seedCmd.Flags().Uint64Var(&seedValue, "seed", 0, "random seed for generated shoppers and reviews")
	seedCmd.Flags().IntVar(&seedShoppers, "shoppers", 12, "number of demo shoppers leaving reviews")

	apiKeyCreateCmd.Flags().StringSliceVar(&apiKeyPermissions, "permission", []string{"*"}, "permission granted to the key (repeatable)")
	apiKeyCmd.AddCommand(apiKeyCreateCmd)

	adminGrantCmd.Flags().BoolVar(&adminRevoke, "revoke", false, "remove admin access instead")
	adminCmd.AddCommand(adminGrantCmd)

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, apiKeyCmd, adminCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	config, err := service.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	store, err := storage.New(config.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer store.Close()

	svc, err := service.New(store, config)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer svc.Close()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("2M"))

	// slog request middleware
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			slog.Info("request handled",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration", time.Since(start),
				"ip", c.RealIP(),
			)

			return nil
		}
	})

	// Security headers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
			c.Response().Header().Set("X-Content-Type-Options", "nosniff")
			c.Response().Header().Set("X-Frame-Options", "DENY")
			return next(c)
		}
	})

	svc.RegisterRoutes(e)

	addr := fmt.Sprintf(":%s", config.Port)
	slog.Info("hunt kitchen starting",
		"url", config.BaseURL,
		"port", config.Port,
		"environment", config.Environment,
		"database", config.DBPath,
	)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-cmd.Context().Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
