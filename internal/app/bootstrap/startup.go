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
	// The local storage backend serves files straight off disk; make
	// sure the directory exists so the file server has something to
	// point at.
	if appCfg.StorageType == "local" && appCfg.StorageLocalPath != "" {
		if err := os.MkdirAll(appCfg.StorageLocalPath, 0o755); err != nil {
			return err
		}
	}
	return nil
}
