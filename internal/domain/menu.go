package domain

// Category groups menu items.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MenuItem is a dish offered on the menu. Price is in the base currency
// unit (VND); presentation-layer conversion is out of scope.
type MenuItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       int64  `json:"price"`
	Image       string `json:"image,omitempty"`
	CategoryID  int64  `json:"categoryId"`
	Available   bool   `json:"available"`
}
