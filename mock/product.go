package mock

import (
	"context"

	"github.com/fwojciec/skilledhelpers"
)

var _ skilledhelpers.ProductService = (*ProductService)(nil)

// ProductService is a mock implementation of skilledhelpers.ProductService.
type ProductService struct {
	CreateProductFn func(ctx context.Context, product *skilledhelpers.Product) error
	FindProductsFn  func(ctx context.Context) ([]*skilledhelpers.Product, error)
}

func (s *ProductService) CreateProduct(ctx context.Context, product *skilledhelpers.Product) error {
	return s.CreateProductFn(ctx, product)
}

func (s *ProductService) FindProducts(ctx context.Context) ([]*skilledhelpers.Product, error) {
	return s.FindProductsFn(ctx)
}
