package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "lounge/internal/delivery/context"
	"lounge/internal/domain/entity"
	domainerrors "lounge/internal/domain/errors"
	"lounge/internal/domain/identity"
	"lounge/internal/domain/repository"
	"lounge/internal/domain/validation"
	"lounge/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const unknownReviewItem = "Unknown Item"

// historyService implements the HistoryUsecase interface.
type historyService struct {
	store  repository.RecordStore
	logger *slog.Logger
}

// HistoryServiceParams holds dependencies for HistoryService, injected by Fx.
type HistoryServiceParams struct {
	fx.In

	Store  repository.RecordStore
	Logger *slog.Logger
}

// NewHistoryService is the constructor for historyService.
func NewHistoryService(params HistoryServiceParams) usecase.HistoryUsecase {
	return &historyService{
		store:  params.Store,
		logger: params.Logger,
	}
}

// ListOrders returns the orders placed with email.
func (srv *historyService) ListOrders(ctx context.Context, email string) ([]entity.Order, error) {
	records, err := srv.store.Scan(ctx, entity.CollectionOrders, repository.FieldEquals(entity.FieldEmail, email, identity.Equal))
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan orders")
	}

	orders := make([]entity.Order, 0)
	for key, doc := range records {
		order, err := entity.DecodeOrder(key, doc)
		if err != nil {
			srv.skip(ctx, entity.CollectionOrders, key, err)

			continue
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// ListBookings returns the bookings made with email.
func (srv *historyService) ListBookings(ctx context.Context, email string) ([]entity.Booking, error) {
	records, err := srv.store.Scan(ctx, entity.CollectionBookings, repository.FieldEquals(entity.FieldEmail, email, identity.Equal))
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan bookings")
	}

	bookings := make([]entity.Booking, 0)
	for key, doc := range records {
		booking, err := entity.DecodeBooking(key, doc)
		if err != nil {
			srv.skip(ctx, entity.CollectionBookings, key, err)

			continue
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (srv *historyService) skip(ctx context.Context, collection, key string, err error) {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Skipping unreadable record",
		"collection", collection, "key", key, "error", err)
}

// SubmitReview stores a review of an order or booking owned by email and
// flags the record as reviewed. A record can be reviewed once.
func (srv *historyService) SubmitReview(ctx context.Context, email string, input usecase.SubmitReviewInput) (*entity.Review, error) {
	collection := input.Target.Collection()
	if !input.Target.IsValid() {
		return nil, errors.WithStack(domainerrors.Validation("review target must be order or booking"))
	}

	record, ok, err := srv.store.Get(ctx, collection, input.RecordKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read reviewed record")
	}
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrNotFound.WithDetails(string(input.Target) + " " + input.RecordKey))
	}
	if !identity.Equal(record.String(entity.FieldEmail), email) {
		return nil, errors.WithStack(domainerrors.ErrForbidden.WithDetails("not your " + string(input.Target)))
	}
	if reviewed, _ := record[entity.FieldReviewed].(bool); reviewed {
		return nil, errors.WithStack(domainerrors.Validation("already reviewed"))
	}

	review := entity.Review{
		Item:         reviewItem(input.Item, record),
		ProductID:    input.ProductID,
		Rating:       input.Rating,
		ReviewerName: strings.TrimSpace(input.ReviewerName),
		Text:         strings.TrimSpace(input.Text),
		Email:        email,
	}
	if review.ReviewerName == "" {
		profile, _, err := loadProfile(ctx, srv.store, email)
		if err != nil {
			return nil, err
		}
		review.ReviewerName = strings.TrimSpace(profile.Name + " " + profile.Surname)
	}
	if err := validation.ValidateReview(review, input.Target, input.RecordKey); err != nil {
		return nil, err
	}

	doc, err := entity.NormalizeDocument(review)
	if err != nil {
		return nil, err
	}
	key, err := srv.store.Push(ctx, entity.CollectionReviews, doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to save review")
	}
	review.Key = key

	if err := srv.store.Set(ctx, collection, input.RecordKey, record.WithField(entity.FieldReviewed, true)); err != nil {
		return nil, errors.Wrap(err, "failed to mark record as reviewed")
	}

	return &review, nil
}

func reviewItem(item string, record entity.Document) string {
	for _, candidate := range []string{item, record.String("item"), record.String("itemName")} {
		if s := strings.TrimSpace(candidate); s != "" {
			return s
		}
	}

	return unknownReviewItem
}

// ListReviews returns every review, oldest first.
func (srv *historyService) ListReviews(ctx context.Context) ([]entity.Review, error) {
	records, err := srv.store.Scan(ctx, entity.CollectionReviews, repository.All)
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan reviews")
	}

	reviews := make([]entity.Review, 0)
	for key, doc := range records {
		var review entity.Review
		if err := entity.DecodeDocument(doc, &review); err != nil {
			srv.skip(ctx, entity.CollectionReviews, key, err)

			continue
		}
		review.Key = key
		reviews = append(reviews, review)
	}

	return reviews, nil
}
