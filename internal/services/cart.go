package service

import (
	"context"
	"errors"
	"time"

	appErrors "github.com/aaravmahajanofficial/retail-pos/internal/errors"
	"github.com/aaravmahajanofficial/retail-pos/internal/models"
	repository "github.com/aaravmahajanofficial/retail-pos/internal/repositories"
	"github.com/google/uuid"
)

// CartService keeps one cart per session. A rejected mutation is never
// persisted.
type CartService interface {
	GetCart(ctx context.Context, sessionID uuid.UUID) (*models.CartResponse, error)
	AddItem(ctx context.Context, sessionID uuid.UUID, req *models.AddItemRequest) (*models.CartResponse, error)
	SetQuantity(ctx context.Context, sessionID uuid.UUID, productID uuid.UUID, qty int) (*models.CartResponse, error)
	RemoveItem(ctx context.Context, sessionID uuid.UUID, productID uuid.UUID) (*models.CartResponse, error)
	ClearCart(ctx context.Context, sessionID uuid.UUID) error
}

type cartService struct {
	repo        repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(repo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{repo: repo, productRepo: productRepo}
}

func (s *cartService) load(ctx context.Context, sessionID uuid.UUID) (*models.Cart, error) {
	cart, err := s.repo.GetCart(ctx, sessionID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to load cart").WithError(err)
	}

	return cart, nil
}

func (s *cartService) save(ctx context.Context, cart *models.Cart) (*models.CartResponse, error) {
	cart.UpdatedAt = time.Now()

	if err := s.repo.SaveCart(ctx, cart); err != nil {
		return nil, appErrors.DatabaseError("Failed to update cart").WithError(err)
	}

	return &models.CartResponse{Cart: cart, Totals: cart.Totals()}, nil
}

func (s *cartService) GetCart(ctx context.Context, sessionID uuid.UUID) (*models.CartResponse, error) {

	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &models.CartResponse{Cart: cart, Totals: cart.Totals()}, nil
}

// AddItem snapshots the product as currently stored and adds it to the cart.
func (s *cartService) AddItem(ctx context.Context, sessionID uuid.UUID, req *models.AddItemRequest) (*models.CartResponse, error) {

	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}

	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if err := cart.AddItem(product, qty); err != nil {
		return nil, err
	}

	return s.save(ctx, cart)
}

func (s *cartService) SetQuantity(ctx context.Context, sessionID uuid.UUID, productID uuid.UUID, qty int) (*models.CartResponse, error) {

	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := cart.SetQuantity(productID, qty); err != nil {
		return nil, err
	}

	return s.save(ctx, cart)
}

func (s *cartService) RemoveItem(ctx context.Context, sessionID uuid.UUID, productID uuid.UUID) (*models.CartResponse, error) {

	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if _, ok := cart.Line(productID); !ok {
		return &models.CartResponse{Cart: cart, Totals: cart.Totals()}, nil
	}

	cart.RemoveItem(productID)

	return s.save(ctx, cart)
}

func (s *cartService) ClearCart(ctx context.Context, sessionID uuid.UUID) error {

	if err := s.repo.DeleteCart(ctx, sessionID); err != nil {
		return appErrors.DatabaseError("Failed to clear cart").WithError(err)
	}

	return nil
}
