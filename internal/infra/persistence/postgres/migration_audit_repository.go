// Package postgres contains the migration audit log persisted with GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"log/slog"

	"lounge/internal/domain/entity"
	"lounge/internal/domain/repository"
	"lounge/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditParams holds dependencies for the audit repository, injected by Fx
type AuditParams struct {
	fx.In

	DB     *gorm.DB `optional:"true"`
	Logger *slog.Logger
}

// migrationAuditRepository implements repository.MigrationAuditRepository using GORM.
type migrationAuditRepository struct {
	db *gorm.DB
}

// noopAuditRepository is used when PostgreSQL is not configured
type noopAuditRepository struct {
	logger *slog.Logger
}

// NewMigrationAuditRepository returns the GORM audit log, or a no-op when no
// database is configured.
func NewMigrationAuditRepository(params AuditParams) repository.MigrationAuditRepository {
	if params.DB == nil {
		params.Logger.Info("Postgres not configured, migration audit log disabled")

		return &noopAuditRepository{logger: params.Logger}
	}

	return &migrationAuditRepository{db: params.DB}
}

// Append stores one migration run.
func (repo *migrationAuditRepository) Append(ctx context.Context, report *entity.MigrationReport, runErr error) error {
	auditM, err := toAuditModel(report, runErr)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(auditM).Error; err != nil {
		return errors.Wrap(err, "failed to append migration audit")
	}

	return nil
}

// ListByEmail returns the runs that involved email, most recent first.
func (repo *migrationAuditRepository) ListByEmail(ctx context.Context, email string) ([]*entity.MigrationAuditRecord, error) {
	var auditMs []model.MigrationAuditModel
	err := repo.db.WithContext(ctx).
		Where("old_email = ? OR new_email = ?", email, email).
		Order("finished_at DESC").
		Find(&auditMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list migration audits")
	}

	records := make([]*entity.MigrationAuditRecord, 0, len(auditMs))
	for i := range auditMs {
		records = append(records, toAuditDomain(&auditMs[i]))
	}

	return records, nil
}

func (repo *noopAuditRepository) Append(ctx context.Context, report *entity.MigrationReport, _ error) error {
	repo.logger.DebugContext(ctx, "[NoopAudit] Migration audit disabled, skipping",
		slog.String("old_email", report.OldEmail),
		slog.String("new_email", report.NewEmail),
	)

	return nil
}

func (repo *noopAuditRepository) ListByEmail(context.Context, string) ([]*entity.MigrationAuditRecord, error) {
	return nil, nil
}

func toAuditModel(report *entity.MigrationReport, runErr error) (*model.MigrationAuditModel, error) {
	raw, err := json.Marshal(report)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode migration report")
	}

	auditM := &model.MigrationAuditModel{
		OldEmail:        report.OldEmail,
		NewEmail:        report.NewEmail,
		AlreadyMigrated: report.AlreadyMigrated,
		Migrated:        report.Total(),
		Failed:          len(report.Failures),
		Report:          datatypes.JSON(raw),
		StartedAt:       report.StartedAt,
		FinishedAt:      report.FinishedAt,
	}
	if runErr != nil {
		auditM.Error = runErr.Error()
	}

	return auditM, nil
}

func toAuditDomain(auditM *model.MigrationAuditModel) *entity.MigrationAuditRecord {
	return &entity.MigrationAuditRecord{
		ID:              auditM.ID,
		OldEmail:        auditM.OldEmail,
		NewEmail:        auditM.NewEmail,
		AlreadyMigrated: auditM.AlreadyMigrated,
		Migrated:        auditM.Migrated,
		Failed:          auditM.Failed,
		Error:           auditM.Error,
		Report:          []byte(auditM.Report),
		StartedAt:       auditM.StartedAt,
		FinishedAt:      auditM.FinishedAt,
	}
}
