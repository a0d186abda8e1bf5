package entity

// MenuItem is a café menu entry stored under Menu/<category>/<key>.
type MenuItem struct {
	Key         string  `json:"-"`
	Category    string  `json:"-"`
	Item        string  `json:"item"`
	Price       float64 `json:"price"`
	Img         string  `json:"img,omitempty"`
	Description string  `json:"description,omitempty"`
}
