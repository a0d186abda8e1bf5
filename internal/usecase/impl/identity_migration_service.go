// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "lounge/internal/delivery/context"
	"lounge/internal/domain/denormalization"
	"lounge/internal/domain/entity"
	domainerrors "lounge/internal/domain/errors"
	"lounge/internal/domain/identity"
	"lounge/internal/domain/repository"
	"lounge/internal/domain/service"
	"lounge/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// identityMigrationService implements the IdentityMigrationUsecase interface.
type identityMigrationService struct {
	store     repository.RecordStore
	index     *denormalization.Index
	audit     repository.MigrationAuditRepository
	publisher service.EventPublisher
	now       func() time.Time
	logger    *slog.Logger
}

// IdentityMigrationServiceParams holds dependencies for the migration
// service, injected by Fx.
type IdentityMigrationServiceParams struct {
	fx.In

	Store     repository.RecordStore
	Index     *denormalization.Index
	Audit     repository.MigrationAuditRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewIdentityMigrationService is the constructor for identityMigrationService.
func NewIdentityMigrationService(params IdentityMigrationServiceParams) usecase.IdentityMigrationUsecase {
	index := params.Index
	if index == nil {
		index = denormalization.Default()
	}

	return &identityMigrationService{
		store:     params.Store,
		index:     index,
		audit:     params.Audit,
		publisher: params.Publisher,
		now:       time.Now,
		logger:    params.Logger,
	}
}

// MigrateIdentity moves the profile and cart to the new identity key and
// rewrites the email of every value-keyed record.
func (srv *identityMigrationService) MigrateIdentity(ctx context.Context, oldEmail, newEmail string) (*entity.MigrationReport, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	oldKey, err := identity.Encode(oldEmail)
	if err != nil {
		return nil, errors.Wrap(err, "invalid current email")
	}
	newKey, err := identity.Encode(newEmail)
	if err != nil {
		return nil, errors.Wrap(err, "invalid new email")
	}
	if oldKey == newKey {
		return nil, errors.WithStack(domainerrors.Validation("new email must differ from the current email"))
	}

	report := entity.NewMigrationReport(oldEmail, newEmail, oldKey, newKey, srv.now())

	oldProfile, oldExists, resume, err := srv.checkProfiles(ctx, report)
	if err != nil {
		logger.Warn("Identity migration rejected", "old_key", oldKey, "new_key", newKey, "error", err)

		return nil, err
	}

	// From here on every step runs to completion even if the caller goes away.
	ctx = context.WithoutCancel(ctx)

	runErr := srv.migrate(ctx, report, oldProfile, oldExists, resume)
	report.FinishedAt = srv.now()
	srv.recordRun(ctx, report, runErr)

	if runErr != nil {
		return report, runErr
	}

	return report, nil
}

// checkProfiles reads both profiles and decides whether the run starts fresh
// or resumes an earlier one.
func (srv *identityMigrationService) checkProfiles(ctx context.Context, report *entity.MigrationReport) (entity.Document, bool, bool, error) {
	oldProfile, oldExists, err := srv.store.Get(ctx, entity.CollectionUsers, report.OldKey)
	if err != nil {
		return nil, false, false, errors.Wrap(err, "failed to read current profile")
	}
	newProfile, newExists, err := srv.store.Get(ctx, entity.CollectionUsers, report.NewKey)
	if err != nil {
		return nil, false, false, errors.Wrap(err, "failed to read target profile")
	}

	switch {
	case newExists && identity.Equal(newProfile.String(entity.ProfileFieldMigratedFrom), report.OldEmail):
		// A live profile at the old key is only the source of that copy if it
		// was marked for this move. Otherwise the address was registered again.
		if oldExists && !identity.Equal(oldProfile.String(entity.ProfileFieldMigratingTo), report.NewEmail) {
			return nil, false, false, errors.WithStack(domainerrors.ErrIdentityConflict.WithDetails(report.NewEmail))
		}
		report.AlreadyMigrated = true

		return oldProfile, oldExists, true, nil
	case newExists:
		return nil, false, false, errors.WithStack(domainerrors.ErrIdentityConflict.WithDetails(report.NewEmail))
	case !oldExists:
		return nil, false, false, errors.WithStack(domainerrors.ErrProfileNotFound.WithDetails(report.OldEmail))
	}

	return oldProfile, true, false, nil
}

func (srv *identityMigrationService) migrate(
	ctx context.Context,
	report *entity.MigrationReport,
	oldProfile entity.Document,
	oldExists, resume bool,
) error {
	if err := srv.moveProfile(ctx, report, oldProfile, oldExists, resume); err != nil {
		return err
	}

	for _, lookup := range srv.index.CollectionsForIdentity(report.OldEmail) {
		if lookup.Collection == entity.CollectionUsers {
			continue
		}

		switch lookup.Strategy {
		case denormalization.DirectKey:
			if err := srv.moveDirect(ctx, report, lookup.Entry); err != nil {
				return err
			}
		case denormalization.FieldScan:
			srv.rewriteMatches(ctx, report, lookup.Entry)
		}
	}

	return nil
}

func (srv *identityMigrationService) moveProfile(
	ctx context.Context,
	report *entity.MigrationReport,
	oldProfile entity.Document,
	oldExists, resume bool,
) error {
	moved := 0
	if !resume {
		marked := oldProfile.WithField(entity.ProfileFieldMigratingTo, report.NewEmail)
		if err := srv.store.Set(ctx, entity.CollectionUsers, report.OldKey, marked); err != nil {
			return errors.Wrap(err, "failed to mark current profile")
		}

		profile := oldProfile.
			WithField(entity.ProfileFieldEmail, report.NewEmail).
			WithField(entity.ProfileFieldMigratedFrom, report.OldEmail)
		delete(profile, entity.ProfileFieldMigratingTo)
		if err := srv.store.Set(ctx, entity.CollectionUsers, report.NewKey, profile); err != nil {
			return errors.Wrap(err, "failed to write migrated profile")
		}
		moved = 1
	}

	if oldExists {
		if err := srv.store.Delete(ctx, entity.CollectionUsers, report.OldKey); err != nil {
			return errors.Wrap(err, "failed to delete old profile")
		}
	}
	report.Record(entity.CollectionUsers, denormalization.DirectKey.String(), moved)

	return nil
}

// moveDirect moves a record keyed by identity key, merging it into any record
// already stored under the new key. Fields of the old record win.
func (srv *identityMigrationService) moveDirect(ctx context.Context, report *entity.MigrationReport, entry denormalization.Entry) error {
	oldDoc, ok, err := srv.store.Get(ctx, entry.Collection, report.OldKey)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", entry.Collection)
	}
	if !ok {
		report.Record(entry.Collection, entry.Strategy.String(), 0)

		return nil
	}

	newDoc, _, err := srv.store.Get(ctx, entry.Collection, report.NewKey)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", entry.Collection)
	}
	if err := srv.store.Set(ctx, entry.Collection, report.NewKey, entity.MergeCartDocuments(newDoc, oldDoc)); err != nil {
		return errors.Wrapf(err, "failed to write %s", entry.Collection)
	}
	if err := srv.store.Delete(ctx, entry.Collection, report.OldKey); err != nil {
		return errors.Wrapf(err, "failed to delete %s", entry.Collection)
	}
	report.Record(entry.Collection, entry.Strategy.String(), 1)

	return nil
}

// rewriteMatches points every record matching the old email at the new one.
// Failures are recorded per record and never stop the run. Records already
// holding the new email verbatim are left alone, which keeps re-runs of a
// case-only change from counting them again.
func (srv *identityMigrationService) rewriteMatches(ctx context.Context, report *entity.MigrationReport, entry denormalization.Entry) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	ctx = repository.WithUnreadableHandler(ctx, func(collection, key string, err error) {
		logger.Error("Unreadable record left unmigrated", "collection", collection, "key", key, "error", err)
		report.Fail(collection, key, err)
	})
	records, err := srv.store.Scan(ctx, entry.Collection, func(_ string, doc entity.Document) bool {
		return doc.String(entry.MatchField) != report.NewEmail && entry.Matches(doc, report.OldEmail)
	})
	if err != nil {
		logger.Error("Failed to scan collection", "collection", entry.Collection, "error", err)
		report.Fail(entry.Collection, "", err)
		report.Record(entry.Collection, entry.Strategy.String(), 0)

		return
	}

	migrated := 0
	for key, doc := range records {
		if err := srv.store.Set(ctx, entry.Collection, key, doc.WithField(entry.MatchField, report.NewEmail)); err != nil {
			logger.Error("Failed to rewrite record", "collection", entry.Collection, "key", key, "error", err)
			report.Fail(entry.Collection, key, err)

			continue
		}
		migrated++
	}
	report.Record(entry.Collection, entry.Strategy.String(), migrated)
}

// recordRun logs the outcome, appends it to the audit log and publishes it.
// None of these can fail the run.
func (srv *identityMigrationService) recordRun(ctx context.Context, report *entity.MigrationReport, runErr error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(
		"old_key", report.OldKey,
		"new_key", report.NewKey,
		"already_migrated", report.AlreadyMigrated,
		"migrated", report.Total(),
		"failed", len(report.Failures),
		"duration", report.FinishedAt.Sub(report.StartedAt),
	)

	switch {
	case runErr != nil:
		logger.Error("Identity migration aborted", "error", runErr)
	case !report.Complete():
		logger.Warn("Identity migration finished with failures")
	default:
		logger.Info("Identity migration completed")
	}

	if err := srv.audit.Append(ctx, report, runErr); err != nil {
		logger.Error("Failed to append migration audit record", "error", err)
	}

	if err := srv.publisher.PublishIdentityMigrated(ctx, newIdentityMigratedEvent(ctx, report, runErr)); err != nil {
		logger.Error("Failed to publish identity migrated event", "error", err)
	}
}

func newIdentityMigratedEvent(ctx context.Context, report *entity.MigrationReport, runErr error) *service.IdentityMigratedEvent {
	migrated := make(map[string]int, len(report.Collections))
	for _, c := range report.Collections {
		migrated[c.Collection] = c.Migrated
	}

	event := &service.IdentityMigratedEvent{
		RequestID:       deliverycontext.GetRequestIDFromContext(ctx),
		OldEmail:        report.OldEmail,
		NewEmail:        report.NewEmail,
		AlreadyMigrated: report.AlreadyMigrated,
		Migrated:        migrated,
		FailedRecords:   len(report.Failures),
		FinishedAt:      report.FinishedAt,
	}
	if runErr != nil {
		event.Error = runErr.Error()
	}

	return event
}

// History lists the recorded migration runs involving email.
func (srv *identityMigrationService) History(ctx context.Context, email string) ([]*entity.MigrationAuditRecord, error) {
	if err := identity.Validate(email); err != nil {
		return nil, err
	}

	records, err := srv.audit.ListByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list migration history")
	}

	return records, nil
}
