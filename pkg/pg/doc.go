// Package pg connects to PostgreSQL with pgx/v5 and applies goose migrations.
//
//	cfg := config.MustLoad[pg.Config]()
//	if cfg.Enabled() {
//		pool, err := pg.Connect(ctx, cfg)
//		...
//		err = pg.Migrate(ctx, pool, contact.Migrations, cfg, log)
//	}
//
// Connect retries RetryAttempts times, waiting RetryInterval longer before each
// attempt, and verifies the pool with a ping. Migrations are read from an
// fs.FS, usually an embedded directory owned by the package defining the schema.
// Healthcheck adapts the pool to httpserver readiness checks.
package pg
