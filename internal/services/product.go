package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aaravmahajanofficial/retail-pos/internal/cache"
	"github.com/aaravmahajanofficial/retail-pos/internal/config"
	appErrors "github.com/aaravmahajanofficial/retail-pos/internal/errors"
	"github.com/aaravmahajanofficial/retail-pos/internal/logging"
	"github.com/aaravmahajanofficial/retail-pos/internal/models"
	repository "github.com/aaravmahajanofficial/retail-pos/internal/repositories"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error)
	SetStock(ctx context.Context, id uuid.UUID, stock int) (*models.Product, error)
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, error)
}

type productService struct {
	repo   repository.ProductRepository
	cache  cache.Cache
	cfg    *config.Config
	policy *bluemonday.Policy
}

func NewProductService(repo repository.ProductRepository, c cache.Cache, cfg *config.Config) ProductService {
	return &productService{repo: repo, cache: c, cfg: cfg, policy: bluemonday.StrictPolicy()}
}

func (s *productService) clean(v string) string {
	return strings.TrimSpace(s.policy.Sanitize(v))
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {

	product := &models.Product{
		Name:     s.clean(req.Name),
		Category: s.clean(req.Category),
		Price:    req.Price,
		Stock:    req.Stock,
	}

	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, appErrors.DatabaseError("Failed to create product").WithError(err)
	}

	invalidateCatalog(ctx, s.cache)

	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, productLookupError(err)
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, productLookupError(err)
	}

	if req.Version != nil && *req.Version != product.Version {
		return nil, appErrors.ConflictError("Product was modified by someone else").
			WithDetail("reload the product and retry")
	}

	if req.Name != nil {
		product.Name = s.clean(*req.Name)
	}
	if req.Category != nil {
		product.Category = s.clean(*req.Category)
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return nil, appErrors.ConflictError("Product was modified by someone else").
				WithDetail("reload the product and retry").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to update product").WithError(err)
	}

	invalidateCatalog(ctx, s.cache)

	return product, nil
}

// SetStock overwrites the stored stock with an absolute value.
func (s *productService) SetStock(ctx context.Context, id uuid.UUID, stock int) (*models.Product, error) {

	if stock < 0 {
		return nil, appErrors.ValidationError("Stock must not be negative")
	}

	product, err := s.repo.SetStock(ctx, id, stock)
	if err != nil {
		return nil, productLookupError(err)
	}

	invalidateCatalog(ctx, s.cache)

	return product, nil
}

// ListProducts serves the unfiltered catalog from the cache when it can.
func (s *productService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, error) {

	logger := logging.FromContext(ctx)

	filter.Search = s.clean(filter.Search)
	filter.Category = s.clean(filter.Category)
	if filter.LowStockOnly && filter.LowStockThreshold <= 0 {
		filter.LowStockThreshold = s.cfg.POS.LowStockThreshold
	}

	cacheable := filter.IsZero()

	if cacheable {
		var cached []*models.Product

		found, err := s.cache.Get(ctx, cache.ProductListKey, &cached)
		if err != nil {
			logger.Warn("Product list cache read failed", slog.String("error", err.Error()))
		} else if found {
			return cached, nil
		}
	}

	products, err := s.repo.ListProducts(ctx, filter)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list products").WithError(err)
	}

	if cacheable {
		if err := s.cache.Set(ctx, cache.ProductListKey, products, s.cfg.Cache.ProductListTTL); err != nil {
			logger.Warn("Product list cache write failed", slog.String("error", err.Error()))
		}
	}

	return products, nil
}

func validateProduct(p *models.Product) error {
	if len(p.Name) < 2 {
		return appErrors.ValidationError("Product name must be at least 2 characters")
	}
	if p.Category == "" {
		return appErrors.ValidationError("Product category is required")
	}
	if p.Price.IsNegative() {
		return appErrors.ValidationError("Price must not be negative")
	}
	if p.Stock < 0 {
		return appErrors.ValidationError("Stock must not be negative")
	}

	return nil
}

func productLookupError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return appErrors.NotFoundError("Product not found").WithError(err)
	}

	return appErrors.DatabaseError("Failed to fetch product").WithError(err)
}

// invalidateCatalog drops the cached product listing. Failures only cost a
// stale read until the entry expires.
func invalidateCatalog(ctx context.Context, c cache.Cache) {
	if err := c.Delete(ctx, cache.ProductListKey); err != nil {
		logging.FromContext(ctx).Warn("Product list cache invalidation failed", slog.String("error", err.Error()))
	}
}
