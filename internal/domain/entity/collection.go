package entity

// Collection names as they exist in the realtime database. The casing is
// inherited from the mobile clients and must not be changed.
const (
	CollectionUsers            = "users"
	CollectionCarts            = "Carts"
	CollectionOrders           = "Orders"
	CollectionBookings         = "bookings"
	CollectionDeletionRequests = "deletion"
	CollectionReviews          = "Reviews"
	CollectionSleepingPods     = "sleepingPods"
	CollectionServiceRequests  = "requests"
	CollectionMenu             = "Menu"
	CollectionCredentials      = "credentials"
)

// MenuCollection returns the collection holding one menu category.
func MenuCollection(category string) string {
	return CollectionMenu + "/" + category
}
