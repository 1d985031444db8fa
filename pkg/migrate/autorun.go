package migrate

import (
	"context"
	"fmt"

	"github.com/bengkelpos/backend/pkg/config"
	"github.com/bengkelpos/backend/pkg/db"
	"github.com/bengkelpos/backend/pkg/logger"
)

// MaybeRunDev applies pending migrations at API startup. It only fires when
// the env is dev AND the auto-migrate flag is set; production schemas move
// through cmd/migrate.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env, "dir": DefaultDir})
	logg.Info(ctx, "migrate.autorun.start")

	if err := Run(ctx, sqlDB, DefaultDir, "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}

	logg.Info(ctx, "migrate.autorun.done")
	return nil
}
