package entity

import "github.com/pkg/errors"

// CartLine is one line of a cart. Menu lines carry item/quantity, pod lines
// carry podId/numPods/roomNumber.
type CartLine struct {
	ItemName   string  `json:"itemName,omitempty"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity,omitempty"`
	TotalPrice float64 `json:"totalPrice"`
	PodID      string  `json:"podId,omitempty"`
	NumPods    int     `json:"numPods,omitempty"`
	RoomNumber string  `json:"roomNumber,omitempty"`
}

// WithQuantity returns a copy of the line with quantity and total recomputed.
func (l CartLine) WithQuantity(quantity int) CartLine {
	l.Quantity = quantity
	l.TotalPrice = float64(quantity) * l.Price

	return l
}

// CartEntry is the cart stored under Carts/<identityKey>, keyed by line.
type CartEntry struct {
	IdentityKey string
	Lines       map[string]CartLine
}

// Total sums the line totals.
func (c CartEntry) Total() float64 {
	var total float64
	for _, line := range c.Lines {
		total += line.TotalPrice
	}

	return total
}

// DecodeCart builds a typed cart from the stored document.
func DecodeCart(identityKey string, doc Document) (CartEntry, error) {
	lines := make(map[string]CartLine, len(doc))
	if len(doc) == 0 {
		return CartEntry{IdentityKey: identityKey, Lines: lines}, nil
	}
	if err := DecodeDocument(doc, &lines); err != nil {
		return CartEntry{}, errors.Wrapf(err, "cart %s", identityKey)
	}

	return CartEntry{IdentityKey: identityKey, Lines: lines}, nil
}

// MergeCartDocuments overlays src lines on top of dst lines. Neither input is
// modified.
func MergeCartDocuments(dst, src Document) Document {
	merged := dst.Clone()
	for key, line := range src {
		merged[key] = line
	}

	return merged
}
