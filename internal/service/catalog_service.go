package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"brew-pos/internal/model"
	"brew-pos/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// catalogService implements CatalogService.
type catalogService struct {
	catalogRepo repository.CatalogRepository
	logger      zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(catalogRepo repository.CatalogRepository, logger zerolog.Logger) CatalogService {
	return &catalogService{
		catalogRepo: catalogRepo,
		logger:      logger.With().Str("service", "catalog").Logger(),
	}
}

// ListActiveProducts retrieves the active menu.
func (s *catalogService) ListActiveProducts(ctx context.Context) ([]model.ProductListing, error) {
	products, err := s.catalogRepo.ListActiveProducts(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// ListCategories retrieves all categories.
func (s *catalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.catalogRepo.ListCategories(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// PriceOf retrieves the current price of a product.
func (s *catalogService) PriceOf(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	price, err := s.catalogRepo.PriceOf(ctx, id)
	if err != nil {
		if model.IsNotFound(err) {
			return decimal.Zero, err
		}
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to get price")
		return decimal.Zero, fmt.Errorf("failed to get price: %w", err)
	}
	return price, nil
}

// CreateCategory creates a new category.
func (s *catalogService) CreateCategory(ctx context.Context, name, description string) (*model.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, model.ErrNameRequired
	}

	category := &model.Category{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(name),
		Description: description,
	}

	if err := s.catalogRepo.CreateCategory(ctx, category); err != nil {
		if model.IsConflict(err) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("name", name).Msg("failed to create category")
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

// CreateProduct creates a new, active product in the given category.
func (s *catalogService) CreateProduct(ctx context.Context, name string, price decimal.Decimal, categoryID uuid.UUID) (*model.Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, model.ErrNameRequired
	}
	if price.IsNegative() {
		return nil, model.NewDomainError(model.KindValidation, model.ErrCodeInvalidJSON, "Price must not be negative")
	}

	product := &model.Product{
		ID:         uuid.New(),
		Name:       strings.TrimSpace(name),
		Price:      price.Round(2),
		Active:     true,
		CategoryID: categoryID,
		CreatedAt:  time.Now(),
	}

	if err := s.catalogRepo.CreateProduct(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}
