package service

import (
	"context"
	"fmt"

	"github.com/retailstack/store-api/internal/logger"
	"github.com/retailstack/store-api/internal/store"
	"github.com/retailstack/store-api/models"
)

// productService is the concrete implementation of ProductService.
// It validates inbound catalog data and delegates persistence to a
// ProductRepository; storage sentinel errors pass through wrapped so callers
// can match them with errors.Is.
type productService struct {
	productRepository store.ProductRepository
	logger            *logger.Logger
}

// NewProductService constructs a ProductService wired to the given
// ProductRepository. The returned service is safe for concurrent use.
func NewProductService(productRepository store.ProductRepository, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		logger:            logger,
	}
}

// GetAll returns every product in the catalog.
func (p *productService) GetAll(ctx context.Context) ([]models.Product, error) {
	products, err := p.productRepository.GetAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("products listing failed")
		return nil, fmt.Errorf("products listing failed: %w", err)
	}

	return products, nil
}

// GetByID returns a single product by id.
//
// Returns store.ErrProductNotFound (wrapped) when no product carries the id.
func (p *productService) GetByID(ctx context.Context, id int64) (models.Product, error) {
	product, err := p.productRepository.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("product lookup failed")
		return models.Product{}, fmt.Errorf("product lookup failed: %w", err)
	}

	return product, nil
}

// Add persists a new product.
//
// Returns ErrInvalidDataProvided if the name is empty or the price is
// negative, or a wrapped storage error (e.g. store.ErrIDAlreadyExists when a
// caller-supplied id clashes with an existing product).
func (p *productService) Add(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	if err := validateProduct(product); err != nil {
		log.Error().Any("product", product).Msg("invalid product data provided")
		return models.Product{}, err
	}

	created, err := p.productRepository.Create(ctx, product)
	if err != nil {
		log.Err(err).Any("product", product).Msg("product creation ended with error")
		return models.Product{}, fmt.Errorf("product creation ended with error: %w", err)
	}

	return created, nil
}

// Update replaces an existing product record wholesale.
//
// Returns ErrInvalidDataProvided on bad data or store.ErrProductNotFound
// (wrapped) when the id matches nothing.
func (p *productService) Update(ctx context.Context, product models.Product) error {
	log := logger.FromContext(ctx)

	if err := validateProduct(product); err != nil {
		log.Error().Any("product", product).Msg("invalid product data provided")
		return err
	}

	if err := p.productRepository.Update(ctx, product); err != nil {
		log.Err(err).Any("product", product).Msg("product update ended with error")
		return fmt.Errorf("product update ended with error: %w", err)
	}

	return nil
}

// Delete removes a product by id.
//
// Returns store.ErrProductNotFound (wrapped) when the id matches nothing;
// the store is left unchanged in that case.
func (p *productService) Delete(ctx context.Context, id int64) error {
	if err := p.productRepository.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("product deletion ended with error")
		return fmt.Errorf("product deletion ended with error: %w", err)
	}

	return nil
}

func validateProduct(product models.Product) error {
	if product.Name == "" || product.Price < 0 {
		return ErrInvalidDataProvided
	}
	return nil
}
