package models

// Product is a catalog item sold by the shop.
type Product struct {
	// ID is the unique identifier of the product: 24 lowercase hex characters.
	ID string `json:"id"`

	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Description string  `json:"description,omitempty"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}
