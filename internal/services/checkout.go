package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aaravmahajanofficial/retail-pos/internal/cache"
	appErrors "github.com/aaravmahajanofficial/retail-pos/internal/errors"
	"github.com/aaravmahajanofficial/retail-pos/internal/logging"
	"github.com/aaravmahajanofficial/retail-pos/internal/metrics"
	"github.com/aaravmahajanofficial/retail-pos/internal/models"
	repository "github.com/aaravmahajanofficial/retail-pos/internal/repositories"
	"github.com/aaravmahajanofficial/retail-pos/internal/tracing"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type CheckoutService interface {
	Checkout(ctx context.Context, cashierID uuid.UUID, req *models.CheckoutRequest) (*models.CheckoutResult, error)
}

type checkoutService struct {
	cartRepo repository.CartRepository
	saleRepo repository.SaleRepository
	notifier NotificationService
	cache    cache.Cache
	validate *validator.Validate
	policy   *bluemonday.Policy
}

func NewCheckoutService(cartRepo repository.CartRepository, saleRepo repository.SaleRepository, notifier NotificationService, c cache.Cache) CheckoutService {
	return &checkoutService{
		cartRepo: cartRepo,
		saleRepo: saleRepo,
		notifier: notifier,
		cache:    c,
		validate: validator.New(),
		policy:   bluemonday.StrictPolicy(),
	}
}

// Checkout turns the cashier's cart into a sale. The sale and its stock
// decrements commit together or not at all; on failure the cart is kept.
func (s *checkoutService) Checkout(ctx context.Context, cashierID uuid.UUID, req *models.CheckoutRequest) (*models.CheckoutResult, error) {

	ctx, span := tracing.Tracer().Start(ctx, "checkout")
	defer span.End()

	logger := logging.FromContext(ctx)

	contact := strings.TrimSpace(s.policy.Sanitize(req.CustomerContact))
	if contact != "" {
		if _, err := ClassifyContact(s.validate, contact); err != nil {
			return nil, err
		}
	}

	cart, err := s.cartRepo.GetCart(ctx, cashierID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to load cart").WithError(err)
	}

	if cart.IsEmpty() {
		metrics.RecordCheckout(metrics.CheckoutEmptyCart)
		return nil, appErrors.BadRequestError("Cannot checkout an empty cart")
	}

	totals := cart.Totals()

	sale := &models.Sale{
		ID:          uuid.New(),
		CashierID:   cashierID,
		Subtotal:    totals.Subtotal,
		TaxAmount:   totals.Tax,
		TotalAmount: totals.Total,
		Items:       make([]models.SaleItem, 0, len(cart.Lines)),
	}

	if contact != "" {
		sale.CustomerContact = &contact
	}

	for _, line := range cart.Lines {
		sale.Items = append(sale.Items, models.SaleItem{
			ID:          uuid.New(),
			SaleID:      sale.ID,
			ProductID:   line.Product.ID,
			Quantity:    line.Quantity,
			PriceAtTime: line.Product.Price,
			Product: &models.ProductSummary{
				ID:       line.Product.ID,
				Name:     line.Product.Name,
				Category: line.Product.Category,
			},
		})
	}

	span.SetAttributes(
		attribute.String("sale.id", sale.ID.String()),
		attribute.Int("sale.lines", len(sale.Items)),
	)

	if err := s.saleRepo.CreateSale(ctx, sale); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "sale write failed")

		if errors.Is(err, repository.ErrInsufficientStock) {
			metrics.RecordCheckout(metrics.CheckoutStockConflict)
			logger.Warn("Checkout rejected, stock changed", slog.String("error", err.Error()))

			return nil, appErrors.StockSyncFailedError("Stock changed since the items were added").
				WithDetail("review the cart and retry").WithError(err)
		}

		metrics.RecordCheckout(metrics.CheckoutWriteFailed)
		logger.Error("Failed to record sale", slog.String("error", err.Error()))

		return nil, appErrors.RemoteWriteFailedError("Failed to record the sale").WithError(err)
	}

	metrics.RecordCheckout(metrics.CheckoutCompleted)
	metrics.AddSaleRevenue(sale.TotalAmount.InexactFloat64())

	logger.Info("Sale recorded",
		slog.String("saleId", sale.ID.String()),
		slog.String("total", models.FormatCurrency(sale.TotalAmount)),
		slog.Int("lines", len(sale.Items)),
	)

	if err := s.cartRepo.DeleteCart(ctx, cashierID); err != nil {
		logger.Error("Failed to clear cart after checkout", slog.String("error", err.Error()))
	}

	invalidateCatalog(ctx, s.cache)

	result := &models.CheckoutResult{Sale: sale, Totals: totals}

	if contact != "" {
		outcome, err := s.notifier.SendSaleConfirmation(ctx, sale, contact)
		if err != nil {
			logger.Warn("Sale confirmation failed", slog.String("saleId", sale.ID.String()), slog.String("error", err.Error()))

			channel, _ := ClassifyContact(s.validate, contact)
			outcome = &models.NotificationOutcome{Channel: channel, Status: models.StatusFailed, Error: err.Error()}
		}
		result.Notification = outcome
	}

	return result, nil
}
