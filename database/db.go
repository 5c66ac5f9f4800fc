package database

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kbukum/tablerw/logger"
	"github.com/kbukum/tablerw/resilience"
)

// DB is an open database holding the cells table.
type DB struct {
	Gorm   *gorm.DB
	log    *logger.Logger
	closed bool
	mu     sync.Mutex
}

// Open connects to cfg.DSN, retrying under cfg.Connect, and migrates the
// cells table. It logs to the "database" component logger and routes GORM's
// own logs to the "gorm" one.
func Open(ctx context.Context, cfg Config) (*DB, error) {
	cfg.ApplyDefaults()
	log := logger.Get("database")

	gormCfg := &gorm.Config{
		Logger: newGormLogger(logger.Get("gorm"), cfg.SlowQueryThreshold, parseLogLevel(cfg.LogLevel)),
	}

	var db *gorm.DB
	err := resilience.Do(ctx, cfg.Connect, "database.open", func(ctx context.Context) error {
		var err error
		db, err = gorm.Open(sqlite.Open(cfg.DSN), gormCfg)
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			_ = sqlDB.Close()
			return err
		}
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("database: open %s: %w", cfg.DSN, err)
	}

	d := &DB{Gorm: db, log: log}
	if err := db.WithContext(ctx).AutoMigrate(&Cell{}); err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("database: migrate cells: %w", err)
	}
	log.Info("database opened", map[string]interface{}{logger.FieldPath: cfg.DSN})
	return d, nil
}

// Close closes the connection pool. Later calls do nothing.
func (d *DB) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}
	sqlDB, err := d.Gorm.DB()
	if err != nil {
		return err
	}
	d.closed = true
	return sqlDB.Close()
}

// Transaction runs fn in a transaction bound to ctx.
func (d *DB) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return d.Gorm.WithContext(ctx).Transaction(fn)
}
