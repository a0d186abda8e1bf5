package entity

// Review is a product review. Its email is historical and is never rewritten
// when the reviewer changes identity.
type Review struct {
	Key          string `json:"-"`
	Item         string `json:"Item"`
	ProductID    string `json:"Product_id,omitempty"`
	Rating       int    `json:"Rating"`
	ReviewerName string `json:"ReviewName"`
	Text         string `json:"Text"`
	Email        string `json:"email"`
}

// ReviewTarget names the kind of record a review is written for.
type ReviewTarget string

const (
	ReviewTargetOrder   ReviewTarget = "order"
	ReviewTargetBooking ReviewTarget = "booking"
)

// Collection returns the collection holding the reviewed record.
func (t ReviewTarget) Collection() string {
	if t == ReviewTargetOrder {
		return CollectionOrders
	}

	return CollectionBookings
}

// IsValid reports whether t is a known target.
func (t ReviewTarget) IsValid() bool {
	return t == ReviewTargetOrder || t == ReviewTargetBooking
}
