// Command seed initializes a ResourceHub database with demo data: the
// Faculty and Student groups, three demo accounts, and five sample
// resources with placeholder files. It is idempotent and safe to re-run.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dalemusser/resourcehub/internal/app/bootstrap"
	"github.com/dalemusser/resourcehub/internal/app/seed"
	"github.com/dalemusser/waffle/pantry/storage"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger init failed:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}
}

func run(logger *zap.Logger) error {
	coreCfg, appCfg, err := bootstrap.LoadConfig(logger)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := bootstrap.ValidateConfig(coreCfg, appCfg, logger); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	deps, err := bootstrap.ConnectDB(ctx, coreCfg, appCfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := deps.MongoClient.Disconnect(context.Background()); err != nil {
			logger.Warn("disconnect failed", zap.Error(err))
		}
	}()

	if err := bootstrap.EnsureSchema(ctx, coreCfg, appCfg, deps, logger); err != nil {
		return err
	}

	if err := os.MkdirAll(appCfg.StorageLocalPath, 0o755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}
	fileStore, err := storage.NewLocal(storage.LocalConfig{
		BasePath: appCfg.StorageLocalPath,
		BaseURL:  appCfg.StorageLocalURL,
	})
	if err != nil {
		return fmt.Errorf("init local storage: %w", err)
	}

	result, err := seed.Run(ctx, deps.MongoDatabase, fileStore, logger)
	if err != nil {
		return err
	}

	logger.Info("seed complete",
		zap.Int("resources_created", result.ResourcesCreated),
		zap.Int64("resources_total", result.ResourcesTotal))

	fmt.Println("Demo credentials:")
	fmt.Println("  Administrator: admin / admin123")
	fmt.Println("  Faculty:       faculty / faculty123")
	fmt.Println("  Student:       student / student123")
	return nil
}
