package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/windoze95/cookiemice-api/internal/config"
	"github.com/windoze95/cookiemice-api/internal/db"
	"github.com/windoze95/cookiemice-api/internal/logger"
	"github.com/windoze95/cookiemice-api/internal/seed"
	"go.uber.org/zap"
)

// Entry point for the catalog seeder. It replaces every stored recipe with
// the catalog at -source, or with -export writes the stored catalog out.
func main() {
	source := flag.String("source", seed.DefaultSource, "seed file path or s3://bucket/key")
	export := flag.String("export", "", "write the stored catalog to this path or s3://bucket/key instead of seeding")
	flag.Parse()

	logger.Init(os.Getenv("GIN_MODE") != "release")
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Get().Fatal("failed to load config", zap.Error(err))
	}

	store, err := db.New(ctx, cfg)
	if err != nil {
		logger.Get().Fatal("failed to connect to database", zap.Error(err))
	}
	defer store.Close(context.Background())

	if *export != "" {
		if err := seed.Export(ctx, cfg, store.Recipes, *export); err != nil {
			logger.Get().Fatal("failed to export recipes", zap.Error(err))
		}
		return
	}

	recipes, err := seed.Load(ctx, cfg, *source)
	if err != nil {
		logger.Get().Fatal("failed to load seed recipes", zap.String("source", *source), zap.Error(err))
	}
	if err := seed.Apply(ctx, store.Recipes, recipes); err != nil {
		logger.Get().Fatal("failed to seed recipes", zap.Error(err))
	}
}
