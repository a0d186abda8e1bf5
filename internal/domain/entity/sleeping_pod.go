package entity

// SleepingPod is an inventory record. It is not owned by any identity.
type SleepingPod struct {
	PodID        string   `json:"podId"`
	BedNumber    string   `json:"bedNumber"`
	Price        float64  `json:"price"`
	Availability bool     `json:"availability"`
	Amenities    []string `json:"amenities,omitempty"`
	ImageURL     string   `json:"imageUrl,omitempty"`
}
