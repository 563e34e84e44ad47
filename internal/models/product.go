package models

// Product represents a catalog item
type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	FabricType  string `json:"fabricType"`
	Color       string `json:"color"`
	Price       int    `json:"price"` // whole-number amount, no minor units
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"` // filename under the upload directory
}

// CreateProductRequest represents an add-product form submission.
// Price arrives as the raw form value and is parsed by the service.
type CreateProductRequest struct {
	Name        string `json:"name"`
	FabricType  string `json:"fabricType"`
	Color       string `json:"color"`
	Price       string `json:"price"`
	Description string `json:"description,omitempty"`
}

// Catalog is the home view payload: all products plus the aggregate
// quantity across every order ever placed.
type Catalog struct {
	Products     []Product `json:"products"`
	TotalOrdered int       `json:"totalOrdered"`
}
