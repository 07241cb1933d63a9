package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"booksync/core/catalog"
	"booksync/core/config"
	"booksync/core/database"
	"booksync/core/logger"
	"booksync/core/middleware/auth"
	"booksync/core/middleware/reqid"
	"booksync/core/reconcile"
	"booksync/core/storage"
	"booksync/feature/bucket"
	"booksync/feature/library"
	"booksync/feature/shelf"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the sync report server",
	Long: `Starts an HTTP server exposing the sync report. Every request to the
report endpoint runs a fresh dry-run reconciliation, so the response always
reflects the current state of both catalogs.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		db, err := database.Connect(cfg.Library)
		if err != nil {
			logg.Fatal("Failed to connect to library database", zap.Error(err))
		}
		logg.Info("Connected to library database")

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware Registration
		// 1. Request ID (Must be first to trace everything)
		app.Use(reqid.New())

		// 2. Logging Middleware (Custom to use Zap + request ID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRequestID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Health check (Public)
		app.Get("/healthz", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})

		// 4. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 5. Report endpoint: dry-run sync on demand
		app.Get("/v1/report", func(c *fiber.Ctx) error {
			l := logger.WithRequestID(logg, c)

			source, err := serveFileCatalog(cfg, l)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			target := library.NewProvider(db, l)

			report := reconcile.RunSync(c.Context(), source, target, nil, reconcile.Options{
				OneFile: cfg.Sync.OneFile,
				DryRun:  true,
				Logger:  l,
			})
			return c.JSON(report)
		})

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

// serveFileCatalog builds the configured source catalog for a report request.
func serveFileCatalog(cfg *config.Config, l *zap.Logger) (reconcile.Provider, error) {
	extensions := catalog.ParseExtensions(cfg.Sync.Extensions)
	switch cfg.Sync.Source {
	case "bucket":
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, err
		}
		return bucket.NewProvider(client, cfg.Storage.Bucket, cfg.Sync.BucketPrefix, extensions, l), nil
	default:
		return shelf.NewProvider(cfg.Sync.ShelfRoot, extensions, l), nil
	}
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
