package store

import (
	"context"

	"github.com/jmattila/webshop/internal/config"
	"github.com/jmattila/webshop/internal/logger"
)

// Storages bundles every repository the application needs, all sharing one
// database handle.
type Storages struct {
	UserRepository    UserRepository
	ProductRepository ProductRepository
	OrderRepository   OrderRepository

	db *DB
}

// NewStorages connects to PostgreSQL, runs pending migrations, and wires up
// all repositories. A connection or migration failure here is fatal to the
// caller; there is no degraded mode without storage.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		ProductRepository: NewProductRepository(db, log),
		OrderRepository:   NewOrderRepository(db, log),
		db:                db,
	}, nil
}

// Close releases the underlying database handle.
func (s *Storages) Close() error {
	return s.db.Close()
}
