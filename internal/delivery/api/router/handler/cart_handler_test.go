package handler

import (
	"net/http"
	"testing"

	"lounge/internal/domain/entity"
	domainerrors "lounge/internal/domain/errors"
	mockUsecase "lounge/internal/mocks/usecase"
	"lounge/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCartHandler_AddMenuItem(t *testing.T) {
	cartUC := mockUsecase.NewMockCartUsecase(t)
	handler := NewCartHandler(CartHandlerParams{CartUC: cartUC, Logger: discardLogger()})
	e := newTestEcho()
	e.POST("/cart/items", handler.AddMenuItem, signedIn(testEmail))

	input := usecase.AddMenuItemInput{Category: "Coffee", ItemKey: "flat-white"}
	cartUC.EXPECT().AddMenuItem(mock.Anything, testEmail, input).Return(&usecase.CartOutput{
		Lines: map[string]entity.CartLine{
			"flat-white": {ItemName: "Flat White", Price: 4.5, Quantity: 2, TotalPrice: 9},
		},
		Total: 9,
	}, nil).Once()

	rec := serve(t, e, http.MethodPost, "/cart/items", input)

	assert.Equal(t, http.StatusOK, rec.Code)
	cart := decodeData[usecase.CartOutput](t, decode(t, rec))
	assert.InDelta(t, 9.0, cart.Total, 0.001)
	assert.Equal(t, 2, cart.Lines["flat-white"].Quantity)
}

func TestCartHandler_AddMenuItem_UnknownItem(t *testing.T) {
	cartUC := mockUsecase.NewMockCartUsecase(t)
	handler := NewCartHandler(CartHandlerParams{CartUC: cartUC, Logger: discardLogger()})
	e := newTestEcho()
	e.POST("/cart/items", handler.AddMenuItem, signedIn(testEmail))

	cartUC.EXPECT().AddMenuItem(mock.Anything, testEmail, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrNotFound.WithDetails("Menu/Coffee/mocha"))).Once()

	rec := serve(t, e, http.MethodPost, "/cart/items", usecase.AddMenuItemInput{Category: "Coffee", ItemKey: "mocha"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decode(t, rec).Error.Code)
}
