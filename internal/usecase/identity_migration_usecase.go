// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"lounge/internal/domain/entity"
)

// IdentityMigrationUsecase moves every record tied to one email to another.
type IdentityMigrationUsecase interface {
	// MigrateIdentity rewrites every denormalized copy of oldEmail so it
	// references newEmail. The caller must already have re-authenticated the
	// owner of oldEmail. On a direct-key failure the partial report is
	// returned together with the error. Re-running the same pair is safe.
	MigrateIdentity(ctx context.Context, oldEmail, newEmail string) (*entity.MigrationReport, error)

	// History lists the recorded migration runs involving email.
	History(ctx context.Context, email string) ([]*entity.MigrationAuditRecord, error)
}
