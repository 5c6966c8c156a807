package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/docrelay/internal/config"
	"github.com/MKhiriev/docrelay/internal/logger"
	"github.com/MKhiriev/docrelay/migrations"
)

// Storages bundles every repository backed by the shared database
// connection. It is the single persistence entry point handed to the
// service layer.
type Storages struct {
	UserRepository     UserRepository
	DocumentRepository DocumentRepository
	ProfileRepository  ProfileRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations, and
// constructs all repositories on top of the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		DocumentRepository: NewDocumentRepository(db, log),
		ProfileRepository:  NewProfileRepository(db, log),
	}, nil
}
