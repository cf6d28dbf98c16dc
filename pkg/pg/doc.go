// Package pg wires PostgreSQL through pgx/v5: pool creation with retries,
// goose migrations from an fs.FS, and a readiness check.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	if cfg.Enabled() {
//		pool, err := pg.Connect(ctx, cfg)
//		if err != nil {
//			return err
//		}
//		defer pool.Close()
//
//		if cfg.AutoMigrate {
//			if err := pg.Migrate(ctx, pool, migrations.FS, cfg, log); err != nil {
//				return err
//			}
//		}
//	}
//
// Errors wrap the package sentinels (ErrFailedToOpenDBConnection,
// ErrFailedToApplyMigrations and so on) with errors.Join.
package pg
