// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"os"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	// Make sure the upload directory exists before the storage backend
	// starts writing to it.
	if err := os.MkdirAll(appCfg.StorageLocalPath, 0o755); err != nil {
		return err
	}
	return nil
}
