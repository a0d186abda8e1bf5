package usecase

import (
	"context"

	"lounge/internal/domain/entity"
)

// SubmitReviewInput defines a review of a past order or booking.
type SubmitReviewInput struct {
	Target    entity.ReviewTarget `json:"target" validate:"required,oneof=order booking"`
	RecordKey string              `json:"recordKey" validate:"required"`
	Item      string              `json:"item"`
	ProductID string              `json:"productId"`
	Rating    int                 `json:"rating" validate:"required,min=1,max=5"`
	Text      string              `json:"text" validate:"required"`
	// ReviewerName defaults to the name on the profile.
	ReviewerName string `json:"reviewerName"`
}

// HistoryUsecase covers past orders, bookings and their reviews.
type HistoryUsecase interface {
	ListOrders(ctx context.Context, email string) ([]entity.Order, error)
	ListBookings(ctx context.Context, email string) ([]entity.Booking, error)
	// SubmitReview stores the review and marks the reviewed record.
	SubmitReview(ctx context.Context, email string, input SubmitReviewInput) (*entity.Review, error)
	ListReviews(ctx context.Context) ([]entity.Review, error)
}
