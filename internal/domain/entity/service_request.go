package entity

// Service items a guest can ask for during a stay.
const (
	ServiceItemBlanket      = "blanket"
	ServiceItemExtraStorage = "extraStorage"
	ServiceItemPillows      = "pillows"
)

// ServiceItems lists the known service items in display order.
var ServiceItems = []string{ServiceItemBlanket, ServiceItemExtraStorage, ServiceItemPillows}

// ServiceRequest is a guest request for extras tied to a booking. The item
// flags are stored as top-level fields next to the quantities map.
type ServiceRequest struct {
	Items         map[string]string
	Quantities    map[string]int
	BookingNumber int
	Email         string
	Name          string
	SubmittedDate string
	SubmittedTime string
}

// Document renders the request in its stored shape.
func (r ServiceRequest) Document() Document {
	doc := Document{
		"quantities":    r.Quantities,
		"bookingNumber": r.BookingNumber,
		"email":         r.Email,
		"name":          r.Name,
		"submittedDate": r.SubmittedDate,
		"submittedTime": r.SubmittedTime,
	}
	for item, flag := range r.Items {
		doc[item] = flag
	}

	return doc
}
