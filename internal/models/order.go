package models

// Order represents a placed order. TotalPrice is computed from the product
// price at order time and never recomputed afterwards.
type Order struct {
	ID          int    `json:"id"`
	ProductID   int    `json:"productId"`
	OrdererName string `json:"ordererName"`
	Quantity    int    `json:"quantity"`
	TotalPrice  int    `json:"totalPrice"`
	ChosenColor string `json:"chosenColor"`
}

// OrderWithProduct is an order joined with its product for display.
// Product is nil when the product has been deleted since the order was placed.
type OrderWithProduct struct {
	Order
	Product *Product `json:"product,omitempty"`
}

// PlaceOrderRequest represents an order form submission.
// Quantity arrives as the raw form value and is parsed by the service.
type PlaceOrderRequest struct {
	OrdererName string `json:"ordererName"`
	Quantity    string `json:"quantity"`
	ChosenColor string `json:"chosenColor"`
}
