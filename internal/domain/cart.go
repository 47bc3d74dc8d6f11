package domain

// CartLine is one selected menu item in the client-local cart. ID is the
// menu item id and doubles as the unique line key.
type CartLine struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Image    string `json:"image,omitempty"`
	Quantity int    `json:"quantity"`
}
