package usecase

import (
	"context"

	"lounge/internal/domain/entity"
)

// AddMenuItemInput adds one unit of a menu item to the cart.
type AddMenuItemInput struct {
	Category string `json:"category" validate:"required"`
	ItemKey  string `json:"itemKey" validate:"required"`
}

// CartOutput is the cart with its total.
type CartOutput struct {
	Lines map[string]entity.CartLine `json:"lines"`
	Total float64                    `json:"total"`
}

// CartUsecase manages the café cart of the signed-in user.
type CartUsecase interface {
	GetCart(ctx context.Context, email string) (*CartOutput, error)
	AddMenuItem(ctx context.Context, email string, input AddMenuItemInput) (*CartOutput, error)
}
