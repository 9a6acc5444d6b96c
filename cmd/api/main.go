package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/cookiemice-api/internal/ai"
	"github.com/windoze95/cookiemice-api/internal/config"
	"github.com/windoze95/cookiemice-api/internal/db"
	"github.com/windoze95/cookiemice-api/internal/logger"
	"github.com/windoze95/cookiemice-api/internal/router"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// init is called before the main function.
func init() {
	// Initialize structured logger (dev mode if GIN_MODE != release)
	isDev := os.Getenv("GIN_MODE") != "release"
	logger.Init(isDev)

	// Configure the runtime
	ConfigureRuntime()
}

// Entry point for the API.
func main() {
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load the config
	var cfg *config.Config
	if c, err := config.LoadConfig(); err != nil {
		logger.Get().Fatal("failed to load config", zap.Error(err))
	} else {
		cfg = c
	}

	// Check that all ENV variables are set
	if err := cfg.CheckConfigEnvFields(); err != nil {
		logger.Get().Fatal("missing required config fields", zap.Error(err))
	}
	if err := cfg.Validate(); err != nil {
		logger.Get().Fatal("invalid config", zap.Error(err))
	}

	// Load prompts from YAML
	prompts, err := config.LoadPrompts(cfg.EnvVars.PromptsPath)
	if err != nil {
		logger.Get().Warn("failed to load prompts, using built-in defaults",
			zap.String("path", cfg.EnvVars.PromptsPath),
			zap.Error(err),
		)
		prompts = config.DefaultPrompts()
	}
	cfg.Prompts = prompts

	if err := os.MkdirAll(cfg.EnvVars.UploadDir, 0o755); err != nil {
		logger.Get().Fatal("failed to create upload directory", zap.Error(err))
	}

	// Connect to the database
	store, err := db.New(ctx, cfg)
	if err != nil {
		logger.Get().Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Get().Warn("failed to close database", zap.Error(err))
		}
	}()

	// AI providers; nil means the matching endpoints answer as not configured
	textProvider, err := ai.NewTextProvider(ctx, cfg)
	if err != nil {
		logger.Get().Fatal("failed to create text provider", zap.Error(err))
	}
	if closer, ok := textProvider.(io.Closer); ok {
		defer closer.Close()
	}
	speechProvider, err := ai.NewSpeechProvider(ctx, cfg)
	if err != nil {
		logger.Get().Fatal("failed to create speech provider", zap.Error(err))
	}

	// Create a new gin router
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := router.SetupRouter(ctx, cfg, store.Recipes, textProvider, speechProvider)

	srv := &http.Server{
		Addr:              ":" + cfg.EnvVars.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Get().Info("starting server",
			zap.String("port", cfg.EnvVars.Port),
			zap.String("database", string(store.Backend)),
			zap.String("generation_provider", cfg.EnvVars.GenerationProvider),
			zap.String("speech_provider", cfg.EnvVars.SpeechProvider),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Get().Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Get().Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Get().Error("graceful shutdown failed", zap.Error(err))
	}
}

// ConfigureRuntime sets the number of operating system threads.
func ConfigureRuntime() {
	nuCPU := runtime.NumCPU()
	runtime.GOMAXPROCS(nuCPU)
	logger.Get().Info("runtime configured", zap.Int("cpus", nuCPU))
}
