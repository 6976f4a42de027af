package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/export"
	"resume-builder/internal/form"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/session"
	"resume-builder/pkg/ai"
	infra "resume-builder/pkg/infrastructure"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// export history is optional
	pool, err := infra.NewExportsPool(ctx, cfg.Database.URL)
	if err != nil {
		logger.Warn("export history DB not available", zap.Error(err))
	}
	if pool != nil {
		defer pool.Close()
		if err := migration.RunMigrations(ctx, pool, logger); err != nil {
			return err
		}
	}
	exportsRepo := repo.NewExportsRepo(pool)

	rasterizer := infra.NewChromedpRasterizer(cfg.Export.ChromePath, cfg.ExportTimeout(), logger)
	enhancer := ai.NewClient(ai.Config{Endpoint: cfg.Enhance.Endpoint, Timeout: cfg.EnhanceTimeout()}, logger)
	opts := cfg.ExportOptions()

	sessions := session.NewStore(func(id string) *form.Controller {
		l := logger.With(zap.String("session", id))
		trigger := export.NewTrigger(rasterizer, exportsRepo, opts, l)
		return form.NewController(enhancer, trigger, form.RealScheduler, l)
	}, logger)
	defer sessions.CloseAll()

	app := fiber.New(fiber.Config{
		BodyLimit:             cfg.Server.BodyLimitMB * 1024 * 1024,
		DisableStartupMessage: true,
		Immutable:             true,
	})
	app.Use(recover.New())
	httpadapter.NewHandler(sessions, exportsRepo, logger).Register(app)

	errc := make(chan error, 1)
	go func() {
		errc <- app.Listen(cfg.Addr())
	}()
	logger.Info("server listening",
		zap.String("addr", cfg.Addr()),
		zap.String("enhance_endpoint", cfg.Enhance.Endpoint),
		zap.Bool("export_history", exportsRepo.Enabled()))

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	return app.ShutdownWithTimeout(shutdownTimeout)
}
