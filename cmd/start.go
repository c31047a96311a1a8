package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"hris-sync/core/config"
	"hris-sync/core/loader"
	"hris-sync/core/logger"
	"hris-sync/core/middleware/rayid"

	"hris-sync/feature/employee"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "hris-sync/docs/swagger"
)

// @title HRIS Sync API
// @version 1.0
// @description Triggers HRIS-to-directory reconciliation passes.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the sync trigger server",
	Long: `Starts the HTTP server and registers the sync endpoints.
Configuration is validated at startup and reloaded at the start of every pass.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load and validate configuration
		loaderCfg := config.FileLoader{Path: configPath}
		cfg, err := loaderCfg.Load()
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

		// 3. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			ReadTimeout:           cfg.Server.ReadTimeout(),
			WriteTimeout:          cfg.Server.WriteTimeout(),
		})

		// 4. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(employee.NewFeature(loaderCfg, logg))

		// RayID first so every line below can be traced
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
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

		app.Get("/swagger/*", swagger.HandlerDefault)

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Address()); err != nil {
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

func init() {
	RootCmd.AddCommand(startCmd)
}
