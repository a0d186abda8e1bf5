package repository

import (
	"context"

	"lounge/internal/domain/entity"
)

// MigrationAuditRepository keeps a durable log of identity migration runs.
type MigrationAuditRepository interface {
	// Append stores one run. runErr is the error the run ended with, if any.
	Append(ctx context.Context, report *entity.MigrationReport, runErr error) error

	// ListByEmail returns the runs that involved email as old or new identity,
	// most recent first.
	ListByEmail(ctx context.Context, email string) ([]*entity.MigrationAuditRecord, error)
}
