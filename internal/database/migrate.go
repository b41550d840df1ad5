package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

// Migrator applies the embedded SQL migrations with goose
type Migrator struct {
	provider *goose.Provider
	log      *zap.Logger
}

// NewMigrator creates a migrator over the migrations found at the root of fsys
func NewMigrator(db *sql.DB, fsys fs.FS, log *zap.Logger) (*Migrator, error) {
	if db == nil {
		return nil, errors.New("nil database provided")
	}
	if log == nil {
		log = zap.NewNop()
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("configure goose: %w", err)
	}

	return &Migrator{provider: provider, log: log}, nil
}

// Up applies all pending migrations
func (m *Migrator) Up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	for _, res := range results {
		m.log.Info("migration applied",
			zap.Int64("version", res.Source.Version),
			zap.String("path", res.Source.Path),
			zap.Duration("duration", res.Duration),
		)
	}
	if len(results) == 0 {
		m.log.Info("no pending migrations")
	}
	return nil
}

// Down rolls back the latest migration, or down to target when target > 0
func (m *Migrator) Down(ctx context.Context, target int64) error {
	if target > 0 {
		results, err := m.provider.DownTo(ctx, target)
		if err != nil {
			return fmt.Errorf("rollback to version %d: %w", target, err)
		}
		for _, res := range results {
			m.log.Info("migration rolled back", zap.Int64("version", res.Source.Version))
		}
		return nil
	}

	res, err := m.provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("rollback latest migration: %w", err)
	}
	m.log.Info("migration rolled back", zap.Int64("version", res.Source.Version))
	return nil
}

// Status logs the state of every known migration
func (m *Migrator) Status(ctx context.Context) error {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return fmt.Errorf("migration status: %w", err)
	}

	for _, st := range statuses {
		fields := []zap.Field{
			zap.Int64("version", st.Source.Version),
			zap.String("path", st.Source.Path),
			zap.String("state", string(st.State)),
		}
		if !st.AppliedAt.IsZero() {
			fields = append(fields, zap.Time("applied_at", st.AppliedAt))
		}
		m.log.Info("migration", fields...)
	}
	return nil
}
