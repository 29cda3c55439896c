package repository

import (
	"context"
	"fmt"

	"github.com/aaravmahajanofficial/retail-pos/internal/cache"
	"github.com/aaravmahajanofficial/retail-pos/internal/config"
	"github.com/aaravmahajanofficial/retail-pos/internal/models"
	"github.com/google/uuid"
)

// CartRepository keeps one cart per session.
type CartRepository interface {
	GetCart(ctx context.Context, sessionID uuid.UUID) (*models.Cart, error)
	SaveCart(ctx context.Context, cart *models.Cart) error
	DeleteCart(ctx context.Context, sessionID uuid.UUID) error
}

type cartRepository struct {
	cache cache.Cache
	cfg   *config.CacheConfig
}

func NewCartRepo(c cache.Cache, cfg *config.CacheConfig) CartRepository {
	return &cartRepository{cache: c, cfg: cfg}
}

// GetCart returns an empty cart when the session has none. Reading a cart
// pushes its expiry out by the cart TTL.
func (r *cartRepository) GetCart(ctx context.Context, sessionID uuid.UUID) (*models.Cart, error) {

	cart := &models.Cart{}

	found, err := r.cache.GetEx(ctx, cache.Key(cache.CartKeyPrefix, sessionID.String()), cart, r.cfg.CartTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	if !found {
		return models.NewCart(sessionID), nil
	}

	if cart.Lines == nil {
		cart.Lines = []models.CartLine{}
	}

	return cart, nil
}

func (r *cartRepository) SaveCart(ctx context.Context, cart *models.Cart) error {

	if err := r.cache.Set(ctx, cache.Key(cache.CartKeyPrefix, cart.SessionID.String()), cart, r.cfg.CartTTL); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	return nil
}

func (r *cartRepository) DeleteCart(ctx context.Context, sessionID uuid.UUID) error {

	if err := r.cache.Delete(ctx, cache.Key(cache.CartKeyPrefix, sessionID.String())); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}

	return nil
}
