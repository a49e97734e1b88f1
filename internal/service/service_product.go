package service

import (
	"context"

	"github.com/jmattila/webshop/internal/logger"
	"github.com/jmattila/webshop/internal/store"
	"github.com/jmattila/webshop/models"
)

// productService is the concrete implementation of [ProductService].
type productService struct {
	productRepository store.ProductRepository
	logger            *logger.Logger
}

// NewProductService constructs a [ProductService].
func NewProductService(productRepository store.ProductRepository, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		logger:            logger,
	}
}

// ListProducts returns the whole catalog.
func (s *productService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.productRepository.FindAllProducts(ctx)
}

// GetProduct returns a single product or [store.ErrProductNotFound].
func (s *productService) GetProduct(ctx context.Context, id string) (models.Product, error) {
	return s.productRepository.FindProductByID(ctx, id)
}

// CreateProduct validates the payload and persists a new catalog item.
// Validation errors take precedence over a duplicate name.
func (s *productService) CreateProduct(ctx context.Context, payload models.NewProduct) (models.Product, error) {
	if err := validateNewProduct(payload); err != nil {
		return models.Product{}, err
	}

	product := models.Product{
		Name:        payload.Name,
		Price:       payload.Price,
		Image:       payload.Image,
		Description: payload.Description,
	}

	return s.productRepository.CreateProduct(ctx, product)
}

// UpdateProduct overwrites an existing product with the validated payload.
// An unknown target is reported before the payload is inspected.
func (s *productService) UpdateProduct(ctx context.Context, id string, payload models.NewProduct) (models.Product, error) {
	if _, err := s.productRepository.FindProductByID(ctx, id); err != nil {
		return models.Product{}, err
	}

	if err := validateNewProduct(payload); err != nil {
		return models.Product{}, err
	}

	product := models.Product{
		ID:          id,
		Name:        payload.Name,
		Price:       payload.Price,
		Image:       payload.Image,
		Description: payload.Description,
	}

	return s.productRepository.UpdateProduct(ctx, product)
}

// RemoveProduct deletes the product and returns the deleted record.
func (s *productService) RemoveProduct(ctx context.Context, id string) (models.Product, error) {
	return s.productRepository.DeleteProduct(ctx, id)
}
