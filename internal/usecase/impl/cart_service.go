package impl

import (
	"context"
	"log/slog"

	"lounge/internal/domain/entity"
	domainerrors "lounge/internal/domain/errors"
	"lounge/internal/domain/identity"
	"lounge/internal/domain/repository"
	"lounge/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	store  repository.RecordStore
	logger *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	Store  repository.RecordStore
	Logger *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		store:  params.Store,
		logger: params.Logger,
	}
}

// GetCart returns the cart of email. A missing cart is empty.
func (srv *cartService) GetCart(ctx context.Context, email string) (*usecase.CartOutput, error) {
	key, err := identity.Encode(email)
	if err != nil {
		return nil, err
	}

	doc, _, err := srv.store.Get(ctx, entity.CollectionCarts, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cart")
	}

	return toCartOutput(key, doc)
}

// AddMenuItem adds one unit of a menu item. The line is keyed by the menu
// item key, so adding the same item again increments its quantity.
func (srv *cartService) AddMenuItem(ctx context.Context, email string, input usecase.AddMenuItemInput) (*usecase.CartOutput, error) {
	key, err := identity.Encode(email)
	if err != nil {
		return nil, err
	}

	itemDoc, ok, err := srv.store.Get(ctx, entity.MenuCollection(input.Category), input.ItemKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read menu item")
	}
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrNotFound.WithDetails("menu item " + input.Category + "/" + input.ItemKey))
	}
	var item entity.MenuItem
	if err := entity.DecodeDocument(itemDoc, &item); err != nil {
		return nil, err
	}

	cartDoc, _, err := srv.store.Get(ctx, entity.CollectionCarts, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cart")
	}
	cart, err := entity.DecodeCart(key, cartDoc)
	if err != nil {
		return nil, err
	}

	line, exists := cart.Lines[input.ItemKey]
	if exists {
		line = line.WithQuantity(line.Quantity + 1)
	} else {
		line = entity.CartLine{ItemName: item.Item, Price: item.Price}.WithQuantity(1)
	}

	lineDoc, err := entity.NormalizeDocument(line)
	if err != nil {
		return nil, err
	}
	updated := cartDoc.WithField(input.ItemKey, lineDoc)
	if err := srv.store.Set(ctx, entity.CollectionCarts, key, updated); err != nil {
		return nil, errors.Wrap(err, "failed to update cart")
	}

	return toCartOutput(key, updated)
}

func toCartOutput(key string, doc entity.Document) (*usecase.CartOutput, error) {
	cart, err := entity.DecodeCart(key, doc)
	if err != nil {
		return nil, err
	}

	return &usecase.CartOutput{Lines: cart.Lines, Total: cart.Total()}, nil
}
