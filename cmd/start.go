package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spawner-loot/core/guard"
	"spawner-loot/core/loader"
	"spawner-loot/core/logger"
	"spawner-loot/core/metrics"
	"spawner-loot/core/middleware/auth"
	"spawner-loot/core/middleware/rayid"
	"spawner-loot/core/siphon"
	"spawner-loot/core/storage"

	"spawner-loot/feature/integrity"
	"spawner-loot/feature/spawner"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "spawner-loot/docs/swagger"
)

// @title Spawner Loot API
// @version 1.0
// @description Accumulates spawner drops and moves them to players, siphons and the economy.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the spawner loot server",
	Long:  `Starts the HTTP server, restores persisted spawners and runs the siphon and autosave loops.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// 1. Configuration, logger, database, storage
		e, err := setup(false)
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		logg := e.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)
		metrics.Init()

		if e.db != nil {
			if err := e.migrate(); err != nil {
				logg.Fatal("Failed to migrate database", zap.Error(err))
			}
		}
		if err := storage.EnsureBucket(ctx, e.store, e.cfg.Storage.Bucket); err != nil {
			logg.Warn("Object storage unavailable, backups will fail", zap.Error(err))
		}

		// 2. Catalog
		cat, err := e.loadCatalog(ctx)
		if err != nil {
			logg.Warn("Catalog not loaded, using defaults", zap.Error(err))
		}

		// 3. Guards and siphons
		cooldown := guard.NewCooldown(e.cfg.Engine.Cooldown())
		cooldown.Start()
		defer cooldown.Stop()
		go sweep(ctx, cooldown, e.cfg.Engine.CooldownSweep())

		sched := siphon.New(siphon.Config{
			Interval: e.cfg.Engine.SiphonInterval(),
			Workers:  e.cfg.Engine.SiphonWorkers,
		}, logg)
		sched.Start(ctx)

		// 4. Spawners
		svc, err := e.spawnerService(ctx, cat, cooldown, sched)
		if err != nil {
			logg.Fatal("Failed to initialize spawners", zap.Error(err))
		}
		saved := make(chan struct{})
		go func() {
			defer close(saved)
			svc.Autosave(ctx, e.cfg.Engine.SaveInterval())
		}()

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager()
		mgr.Register(spawner.NewFeature(svc))
		mgr.Register(integrity.NewFeature(integrity.NewService(e.store, e.cfg.Storage.Bucket, e.cfg.Catalog.Object, e.db, logg)))

		// RayID first so every later log line carries it
		app.Use(rayid.New())
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			start := time.Now()
			err := c.Next()
			l.Info("Request",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Int("status", c.Response().StatusCode()),
				zap.Duration("took", time.Since(start)),
			)
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)
		skip := []string{"/swagger"}
		if e.cfg.Metrics.Enabled {
			app.Get(e.cfg.Metrics.Path, adaptor.HTTPHandler(metrics.Handler()))
			skip = append(skip, e.cfg.Metrics.Path)
		}
		app.Use(auth.New(auth.Config{ApiKey: e.cfg.Server.ApiKey, Skip: skip}))

		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		go func() {
			logg.Info("Starting server", zap.String("port", e.cfg.Server.Port), zap.Bool("auth", e.cfg.Server.AuthEnabled()))
			if err := app.Listen(e.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		<-ctx.Done()
		logg.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(e.cfg.Server.ShutdownTimeout()); err != nil {
			logg.Warn("Server shutdown incomplete", zap.Error(err))
		}
		sched.Stop()
		// Autosave writes once more when ctx is done
		<-saved
		logg.Info("Server stopped")
	},
}

// sweep drops expired cooldown entries every interval until ctx is done.
func sweep(ctx context.Context, cooldown *guard.Cooldown, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cooldown.Sweep()
		}
	}
}

func init() {
	RootCmd.AddCommand(startCmd)
}
