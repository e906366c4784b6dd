package skilledhelpers

import (
	"context"
	"strings"
)

// Default values applied by ProductForm.
const (
	DefaultProductCategory = "Tools"
	DefaultProductImage    = "https://placehold.co/300x200?text=Tool"
	DefaultProductRating   = 5.0
)

// Product represents a tool or piece of equipment in the marketplace.
// Category is a free-text label, unrelated to worker categories.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	Rating   float64 `json:"rating"`
}

// Validate returns an error if the product contains invalid fields.
func (p *Product) Validate() error {
	if p.Name == "" {
		return Errorf(EINVALID, "product name required")
	}
	if !finite(p.Price) || p.Price < 0 {
		return Errorf(EINVALID, "product price must be a non-negative number")
	}
	if !finite(p.Rating) || p.Rating < 0 || p.Rating > MaxRating {
		return Errorf(EINVALID, "product rating must be between 0 and %g", MaxRating)
	}
	return nil
}

// ProductService represents a service for managing marketplace products.
type ProductService interface {
	// CreateProduct assigns an ID to the product and lists it ahead of
	// every existing product.
	CreateProduct(ctx context.Context, product *Product) error

	// FindProducts retrieves all products, most recent first.
	FindProducts(ctx context.Context) ([]*Product, error)
}

// ProductForm holds the raw input of the "add product" form.
type ProductForm struct {
	Name     string
	Price    string
	Category string
}

// Build converts the form into a new, unsaved product.
func (f ProductForm) Build() (*Product, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return nil, Errorf(EINVALID, "product name required")
	}

	price := ParseAmount(f.Price)
	if price < 0 {
		price = 0
	}

	category := strings.TrimSpace(f.Category)
	if category == "" {
		category = DefaultProductCategory
	}

	return &Product{
		Name:     name,
		Price:    price,
		Category: category,
		Rating:   DefaultProductRating,
		Image:    DefaultProductImage,
	}, nil
}
