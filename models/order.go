package models

// OrderedProduct is the snapshot of a product embedded in an order item.
// Orders keep their own copy so later catalog edits do not rewrite history.
type OrderedProduct struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// OrderItem is one line of an order: a product snapshot and a quantity.
type OrderItem struct {
	Product  OrderedProduct `json:"product"`
	Quantity int            `json:"quantity"`
}

// Order is a customer's purchase: who ordered and what was ordered.
type Order struct {
	// ID is the unique identifier of the order: 24 lowercase hex characters.
	ID string `json:"id"`

	// CustomerID references the user that placed the order.
	CustomerID string `json:"customerId"`

	Items []OrderItem `json:"items"`
}

// TableName returns the name of the database table
// associated with the Order model.
func (o Order) TableName() string {
	return "orders"
}
