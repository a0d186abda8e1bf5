package impl

import (
	"context"
	"testing"
	"time"

	"lounge/internal/domain/denormalization"
	"lounge/internal/domain/entity"
	domainerrors "lounge/internal/domain/errors"
	"lounge/internal/domain/service"
	mockRepo "lounge/internal/mocks/repository"
	mockService "lounge/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	janeOld    = "jane.doe@example.com"
	janeNew    = "jane.smith@example.com"
	janeOldKey = "jane_doe@example_com"
	janeNewKey = "jane_smith@example_com"
)

type migrationFixtures struct {
	service   *identityMigrationService
	store     *faultyStore
	audit     *mockRepo.MockMigrationAuditRepository
	publisher *mockService.MockEventPublisher
}

func createTestMigrationService(t *testing.T) migrationFixtures {
	store := newFaultyStore()
	audit := mockRepo.NewMockMigrationAuditRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	srv := NewIdentityMigrationService(IdentityMigrationServiceParams{
		Store:     store,
		Index:     denormalization.Default(),
		Audit:     audit,
		Publisher: publisher,
		Logger:    discardLogger(),
	}).(*identityMigrationService)

	clock := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	srv.now = func() time.Time {
		clock = clock.Add(time.Second)

		return clock
	}

	return migrationFixtures{service: srv, store: store, audit: audit, publisher: publisher}
}

func (f migrationFixtures) expectRecorded() {
	f.audit.EXPECT().Append(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishIdentityMigrated(mock.Anything, mock.Anything).Return(nil)
}

// seedJane writes the records of the jane.doe account used across scenarios.
func seedJane(t *testing.T, f migrationFixtures) {
	seed(t, f.store, entity.CollectionUsers, janeOldKey, entity.Document{
		"email": janeOld, "name": "Jane", "surname": "Doe",
	})
	seed(t, f.store, entity.CollectionCarts, janeOldKey, entity.Document{
		"latte": map[string]any{"itemName": "Latte", "price": 30, "quantity": 2, "totalPrice": 60},
	})
	seed(t, f.store, entity.CollectionOrders, "o1", entity.Document{"email": janeOld, "orderNumber": 1001, "totalPrice": 60})
	seed(t, f.store, entity.CollectionOrders, "o2", entity.Document{"email": " Jane.Doe@Example.com ", "orderNumber": 1002})
	seed(t, f.store, entity.CollectionOrders, "o3", entity.Document{"email": "bob@example.com", "orderNumber": 1003})
	seed(t, f.store, entity.CollectionBookings, "b1", entity.Document{"email": janeOld, "bookingNumber": 4821})
	seed(t, f.store, entity.CollectionDeletionRequests, "d1", entity.Document{"email": janeOld, "reason": "moving"})
	seed(t, f.store, entity.CollectionReviews, "r1", entity.Document{"email": janeOld, "Rating": 5, "Text": "Great"})
	seed(t, f.store, entity.CollectionServiceRequests, "q1", entity.Document{"email": janeOld, "blanket": "yes"})
}

// seedReRegistered leaves jane.smith as the result of an earlier move from
// jane.doe and gives the freed jane.doe address to a new account.
func seedReRegistered(t *testing.T, f migrationFixtures) {
	seed(t, f.store, entity.CollectionUsers, janeNewKey, entity.Document{
		"email": janeNew, "name": "Jane", "surname": "Smith", "migratedFrom": janeOld,
	})
	seed(t, f.store, entity.CollectionCarts, janeNewKey, entity.Document{
		"tea": map[string]any{"itemName": "Tea", "price": 20, "quantity": 1, "totalPrice": 20},
	})
	seed(t, f.store, entity.CollectionUsers, janeOldKey, entity.Document{
		"email": janeOld, "name": "Bob", "surname": "Brown",
	})
	seed(t, f.store, entity.CollectionCarts, janeOldKey, entity.Document{
		"latte": map[string]any{"itemName": "Latte", "price": 30, "quantity": 2, "totalPrice": 60},
	})
	seed(t, f.store, entity.CollectionOrders, "o1", entity.Document{"email": janeOld, "orderNumber": 2001})
}

func TestIdentityMigration_JaneDoeToJaneSmith(t *testing.T) {
	f := createTestMigrationService(t)
	seedJane(t, f)

	var published *service.IdentityMigratedEvent
	f.audit.EXPECT().Append(mock.Anything, mock.Anything, nil).Return(nil).Once()
	f.publisher.EXPECT().PublishIdentityMigrated(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *service.IdentityMigratedEvent) { published = event }).
		Return(nil).Once()

	report, err := f.service.MigrateIdentity(context.Background(), janeOld, janeNew)
	require.NoError(t, err)

	profile := mustGet(t, f.store, entity.CollectionUsers, janeNewKey)
	assert.Equal(t, janeNew, profile["email"])
	assert.Equal(t, janeOld, profile["migratedFrom"])
	assert.NotContains(t, profile, "migratingTo")
	assert.Equal(t, "Jane", profile["name"])
	assertAbsent(t, f.store, entity.CollectionUsers, janeOldKey)

	cart := mustGet(t, f.store, entity.CollectionCarts, janeNewKey)
	assert.Contains(t, cart, "latte")
	assertAbsent(t, f.store, entity.CollectionCarts, janeOldKey)

	assert.Equal(t, janeNew, mustGet(t, f.store, entity.CollectionOrders, "o1")["email"])
	assert.Equal(t, janeNew, mustGet(t, f.store, entity.CollectionOrders, "o2")["email"])
	assert.Equal(t, "bob@example.com", mustGet(t, f.store, entity.CollectionOrders, "o3")["email"])
	assert.Equal(t, float64(1001), mustGet(t, f.store, entity.CollectionOrders, "o1")["orderNumber"])
	assert.Equal(t, janeNew, mustGet(t, f.store, entity.CollectionBookings, "b1")["email"])
	assert.Equal(t, janeNew, mustGet(t, f.store, entity.CollectionDeletionRequests, "d1")["email"])

	// Reviews and service requests keep the email they were written with.
	assert.Equal(t, janeOld, mustGet(t, f.store, entity.CollectionReviews, "r1")["email"])
	assert.Equal(t, janeOld, mustGet(t, f.store, entity.CollectionServiceRequests, "q1")["email"])

	assert.False(t, report.AlreadyMigrated)
	assert.True(t, report.Complete())
	assert.Equal(t, []entity.CollectionResult{
		{Collection: entity.CollectionUsers, Strategy: "direct_key", Migrated: 1},
		{Collection: entity.CollectionCarts, Strategy: "direct_key", Migrated: 1},
		{Collection: entity.CollectionOrders, Strategy: "field_scan", Migrated: 2},
		{Collection: entity.CollectionBookings, Strategy: "field_scan", Migrated: 1},
		{Collection: entity.CollectionDeletionRequests, Strategy: "field_scan", Migrated: 1},
	}, report.Collections)
	assert.True(t, report.FinishedAt.After(report.StartedAt))

	require.NotNil(t, published)
	assert.Equal(t, janeOld, published.OldEmail)
	assert.Equal(t, 2, published.Migrated[entity.CollectionOrders])
	assert.Zero(t, published.FailedRecords)
	assert.Empty(t, published.Error)
}

func TestIdentityMigration_Idempotent(t *testing.T) {
	f := createTestMigrationService(t)
	seedJane(t, f)
	f.expectRecorded()

	_, err := f.service.MigrateIdentity(context.Background(), janeOld, janeNew)
	require.NoError(t, err)

	report, err := f.service.MigrateIdentity(context.Background(), janeOld, janeNew)
	require.NoError(t, err)

	assert.True(t, report.AlreadyMigrated)
	assert.Zero(t, report.Total())
	assert.Equal(t, 1, f.store.Len(entity.CollectionUsers))
	assert.Equal(t, 1, f.store.Len(entity.CollectionCarts))
	assert.Equal(t, 3, f.store.Len(entity.CollectionOrders))
	assert.Equal(t, janeNew, mustGet(t, f.store, entity.CollectionUsers, janeNewKey)["email"])
}

func TestIdentityMigration_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		seed     func(t *testing.T, f migrationFixtures)
		oldEmail string
		newEmail string
		wantErr  error
	}{
		{
			name: "target identity already taken",
			seed: func(t *testing.T, f migrationFixtures) {
				seedJane(t, f)
				seed(t, f.store, entity.CollectionUsers, janeNewKey, entity.Document{"email": janeNew, "name": "Other"})
			},
			oldEmail: janeOld,
			newEmail: janeNew,
			wantErr:  domainerrors.ErrIdentityConflict,
		},
		{
			name: "target migrated from someone else",
			seed: func(t *testing.T, f migrationFixtures) {
				seedJane(t, f)
				seed(t, f.store, entity.CollectionUsers, janeNewKey, entity.Document{
					"email": janeNew, "migratedFrom": "bob@example.com",
				})
			},
			oldEmail: janeOld,
			newEmail: janeNew,
			wantErr:  domainerrors.ErrIdentityConflict,
		},
		{
			name:     "old address registered again after an earlier move",
			seed:     seedReRegistered,
			oldEmail: janeOld,
			newEmail: janeNew,
			wantErr:  domainerrors.ErrIdentityConflict,
		},
		{
			name:     "no profile on either side",
			seed:     func(*testing.T, migrationFixtures) {},
			oldEmail: janeOld,
			newEmail: janeNew,
			wantErr:  domainerrors.ErrProfileNotFound,
		},
		{
			name:     "malformed new email",
			seed:     seedJane,
			oldEmail: janeOld,
			newEmail: "jane.smith",
			wantErr:  domainerrors.ErrInvalidIdentity,
		},
		{
			name:     "malformed old email",
			seed:     seedJane,
			oldEmail: "not an email",
			newEmail: janeNew,
			wantErr:  domainerrors.ErrInvalidIdentity,
		},
		{
			name:     "same email",
			seed:     seedJane,
			oldEmail: janeOld,
			newEmail: janeOld,
			wantErr:  domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestMigrationService(t)
			tt.seed(t, f)
			usersBefore := f.store.Len(entity.CollectionUsers)

			report, err := f.service.MigrateIdentity(context.Background(), tt.oldEmail, tt.newEmail)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Nil(t, report)
			assert.Equal(t, usersBefore, f.store.Len(entity.CollectionUsers))
			if usersBefore > 0 && tt.oldEmail == janeOld {
				assert.Equal(t, janeOld, mustGet(t, f.store, entity.CollectionOrders, "o1")["email"])
			}
		})
	}
}

func TestIdentityMigration_ReRegisteredAddressIsUntouched(t *testing.T) {
	f := createTestMigrationService(t)
	seedReRegistered(t, f)

	report, err := f.service.MigrateIdentity(context.Background(), janeOld, janeNew)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrIdentityConflict))
	assert.Nil(t, report)

	assert.Equal(t, "Bob", mustGet(t, f.store, entity.CollectionUsers, janeOldKey)["name"])
	assert.Equal(t, janeOld, mustGet(t, f.store, entity.CollectionOrders, "o1")["email"])
	assert.Contains(t, mustGet(t, f.store, entity.CollectionCarts, janeOldKey), "latte")

	cart := mustGet(t, f.store, entity.CollectionCarts, janeNewKey)
	assert.Contains(t, cart, "tea")
	assert.NotContains(t, cart, "latte")
}

func TestIdentityMigration_CaseOnlyChangeIsIdempotent(t *testing.T) {
	const caseOnly = "Jane.Doe@example.com"

	f := createTestMigrationService(t)
	seedJane(t, f)
	f.expectRecorded()

	report, err := f.service.MigrateIdentity(context.Background(), janeOld, caseOnly)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Migrated(entity.CollectionOrders))
	assert.Equal(t, caseOnly, mustGet(t, f.store, entity.CollectionOrders, "o2")["email"])

	report, err = f.service.MigrateIdentity(context.Background(), janeOld, caseOnly)
	require.NoError(t, err)
	assert.True(t, report.AlreadyMigrated)
	assert.Zero(t, report.Total())
	assert.True(t, report.Complete())
	assert.Equal(t, caseOnly, mustGet(t, f.store, entity.CollectionOrders, "o1")["email"])
}

func TestIdentityMigration_UnreadableRecordIsReported(t *testing.T) {
	f := createTestMigrationService(t)
	seedJane(t, f)
	f.store.unreadable[entity.CollectionOrders] = []string{"o9"}
	f.expectRecorded()

	report, err := f.service.MigrateIdentity(context.Background(), janeOld, janeNew)
	require.NoError(t, err)

	assert.False(t, report.Complete())
	require.Len(t, report.Failures, 1)
	assert.Equal(t, entity.CollectionOrders, report.Failures[0].Collection)
	assert.Equal(t, "o9", report.Failures[0].Key)
	assert.Equal(t, 2, report.Migrated(entity.CollectionOrders))
	assert.Equal(t, 1, report.Migrated(entity.CollectionBookings))
}

func TestIdentityMigration_ResumesAfterFailedDelete(t *testing.T) {
	f := createTestMigrationService(t)
	seedJane(t, f)
	f.store.fail("delete", entity.CollectionUsers, janeOldKey, 1)

	f.audit.EXPECT().Append(mock.Anything, mock.Anything, mock.MatchedBy(func(err error) bool {
		return domainerrors.IsStoreError(err)
	})).Return(nil).Once()
	f.publisher.EXPECT().PublishIdentityMigrated(mock.Anything, mock.MatchedBy(func(e *service.IdentityMigratedEvent) bool {
		return e.Error != ""
	})).Return(nil).Once()

	report, err := f.service.MigrateIdentity(context.Background(), janeOld, janeNew)
	require.Error(t, err)
	assert.True(t, domainerrors.IsStoreError(err))
	require.NotNil(t, report)
	assert.Empty(t, report.Collections)

	// The copy exists and the old profile survived the failed delete,
	// marked as the source of that copy.
	assert.Equal(t, janeOld, mustGet(t, f.store, entity.CollectionUsers, janeNewKey)["migratedFrom"])
	assert.Equal(t, janeNew, mustGet(t, f.store, entity.CollectionUsers, janeOldKey)["migratingTo"])
	assert.Equal(t, janeOld, mustGet(t, f.store, entity.CollectionOrders, "o1")["email"])

	f.audit.EXPECT().Append(mock.Anything, mock.Anything, nil).Return(nil).Once()
	f.publisher.EXPECT().PublishIdentityMigrated(mock.Anything, mock.Anything).Return(nil).Once()

	report, err = f.service.MigrateIdentity(context.Background(), janeOld, janeNew)
	require.NoError(t, err)
	assert.True(t, report.AlreadyMigrated)
	assertAbsent(t, f.store, entity.CollectionUsers, janeOldKey)
	assertAbsent(t, f.store, entity.CollectionCarts, janeOldKey)
	assert.Equal(t, 2, report.Migrated(entity.CollectionOrders))
	assert.Equal(t, janeNew, mustGet(t, f.store, entity.CollectionOrders, "o1")["email"])
}

func TestIdentityMigration_DirectKeyWriteFailureAborts(t *testing.T) {
	f := createTestMigrationService(t)
	seedJane(t, f)
	f.store.fail("set", entity.CollectionCarts, janeNewKey, 1)
	f.expectRecorded()

	report, err := f.service.MigrateIdentity(context.Background(), janeOld, janeNew)
	require.Error(t, err)
	assert.True(t, domainerrors.IsStoreError(err))

	require.NotNil(t, report)
	assert.Equal(t, 1, report.Migrated(entity.CollectionUsers))
	assert.Zero(t, report.Migrated(entity.CollectionOrders))
	mustGet(t, f.store, entity.CollectionCarts, janeOldKey)
	assert.Equal(t, janeOld, mustGet(t, f.store, entity.CollectionOrders, "o1")["email"])
}

func TestIdentityMigration_RecordFailureDoesNotAbort(t *testing.T) {
	f := createTestMigrationService(t)
	seedJane(t, f)
	f.store.fail("set", entity.CollectionOrders, "o1", 1)
	f.expectRecorded()

	report, err := f.service.MigrateIdentity(context.Background(), janeOld, janeNew)
	require.NoError(t, err)

	assert.False(t, report.Complete())
	require.Len(t, report.Failures, 1)
	assert.Equal(t, entity.CollectionOrders, report.Failures[0].Collection)
	assert.Equal(t, "o1", report.Failures[0].Key)
	assert.Equal(t, 1, report.Migrated(entity.CollectionOrders))
	assert.Equal(t, 1, report.Migrated(entity.CollectionBookings))
	assert.Equal(t, janeOld, mustGet(t, f.store, entity.CollectionOrders, "o1")["email"])
	assert.Equal(t, janeNew, mustGet(t, f.store, entity.CollectionOrders, "o2")["email"])

	report, err = f.service.MigrateIdentity(context.Background(), janeOld, janeNew)
	require.NoError(t, err)
	assert.True(t, report.Complete())
	assert.Equal(t, 1, report.Migrated(entity.CollectionOrders))
	assert.Equal(t, janeNew, mustGet(t, f.store, entity.CollectionOrders, "o1")["email"])
}

func TestIdentityMigration_ScanFailureDoesNotAbort(t *testing.T) {
	f := createTestMigrationService(t)
	seedJane(t, f)
	f.store.fail("scan", entity.CollectionBookings, "", 1)
	f.expectRecorded()

	report, err := f.service.MigrateIdentity(context.Background(), janeOld, janeNew)
	require.NoError(t, err)

	require.Len(t, report.Failures, 1)
	assert.Equal(t, entity.CollectionBookings, report.Failures[0].Collection)
	assert.Empty(t, report.Failures[0].Key)
	assert.Equal(t, janeOld, mustGet(t, f.store, entity.CollectionBookings, "b1")["email"])
	assert.Equal(t, janeNew, mustGet(t, f.store, entity.CollectionDeletionRequests, "d1")["email"])
}

func TestIdentityMigration_MergesCartIntoExistingCart(t *testing.T) {
	f := createTestMigrationService(t)
	seedJane(t, f)
	seed(t, f.store, entity.CollectionCarts, janeOldKey, entity.Document{
		"latte": map[string]any{"itemName": "Latte", "price": 30, "quantity": 2, "totalPrice": 60},
		"bagel": map[string]any{"itemName": "Bagel", "price": 25, "quantity": 1, "totalPrice": 25},
	})
	seed(t, f.store, entity.CollectionCarts, janeNewKey, entity.Document{
		"latte": map[string]any{"itemName": "Latte", "price": 30, "quantity": 5, "totalPrice": 150},
		"tea":   map[string]any{"itemName": "Tea", "price": 20, "quantity": 1, "totalPrice": 20},
	})
	f.expectRecorded()

	_, err := f.service.MigrateIdentity(context.Background(), janeOld, janeNew)
	require.NoError(t, err)

	cart, err := entity.DecodeCart(janeNewKey, mustGet(t, f.store, entity.CollectionCarts, janeNewKey))
	require.NoError(t, err)
	require.Len(t, cart.Lines, 3)
	assert.Equal(t, 2, cart.Lines["latte"].Quantity)
	assert.Equal(t, 1, cart.Lines["tea"].Quantity)
	assert.InDelta(t, 105.0, cart.Total(), 0.001)
}

func TestIdentityMigration_AuditAndPublishFailuresAreIgnored(t *testing.T) {
	f := createTestMigrationService(t)
	seedJane(t, f)
	f.audit.EXPECT().Append(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("audit down"))
	f.publisher.EXPECT().PublishIdentityMigrated(mock.Anything, mock.Anything).Return(errors.New("pubsub down"))

	report, err := f.service.MigrateIdentity(context.Background(), janeOld, janeNew)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Migrated(entity.CollectionUsers))
}

func TestIdentityMigration_CompletesAfterCallerCancels(t *testing.T) {
	f := createTestMigrationService(t)
	seedJane(t, f)

	ctx, cancel := context.WithCancel(context.Background())
	f.audit.EXPECT().Append(mock.Anything, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, _ *entity.MigrationReport, _ error) {
			assert.NoError(t, ctx.Err())
		}).Return(nil)
	f.publisher.EXPECT().PublishIdentityMigrated(mock.Anything, mock.Anything).Return(nil)

	// Cancel once the profile has been copied.
	f.store.onSet = func(collection string) {
		if collection == entity.CollectionUsers {
			cancel()
		}
	}

	_, err := f.service.MigrateIdentity(ctx, janeOld, janeNew)
	require.NoError(t, err)
	assert.Equal(t, janeNew, mustGet(t, f.store, entity.CollectionDeletionRequests, "d1")["email"])
}

func TestIdentityMigration_History(t *testing.T) {
	f := createTestMigrationService(t)
	records := []*entity.MigrationAuditRecord{{ID: 7, OldEmail: janeOld, NewEmail: janeNew, Migrated: 6}}
	f.audit.EXPECT().ListByEmail(mock.Anything, janeNew).Return(records, nil).Once()

	got, err := f.service.History(context.Background(), janeNew)
	require.NoError(t, err)
	assert.Equal(t, records, got)

	_, err = f.service.History(context.Background(), "nope")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidIdentity))
}
