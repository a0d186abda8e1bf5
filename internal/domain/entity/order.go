package entity

// Fields shared by the value-keyed collections.
const (
	FieldEmail    = "email"
	FieldReviewed = "Reviews"
)

// OrderItem is one item on a café order.
type OrderItem struct {
	ItemName string  `json:"itemName"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order is a café order. Ownership is the email value, not the key.
type Order struct {
	Key         string      `json:"-"`
	OrderNumber int         `json:"orderNumber"`
	Email       string      `json:"email"`
	Items       []OrderItem `json:"items,omitempty"`
	TotalPrice  float64     `json:"totalPrice"`
	Timestamp   string      `json:"timestamp,omitempty"`
	Collected   bool        `json:"collected"`
	Reviewed    bool        `json:"Reviews,omitempty"`
}

// WithEmail returns a copy owned by email.
func (o Order) WithEmail(email string) Order {
	o.Email = email

	return o
}

// DecodeOrder builds a typed order from a stored document.
func DecodeOrder(key string, doc Document) (Order, error) {
	var order Order
	if err := DecodeDocument(doc, &order); err != nil {
		return Order{}, err
	}
	order.Key = key

	return order, nil
}
