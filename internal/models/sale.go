package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SaleItem struct {
	ID          uuid.UUID       `json:"id"`
	SaleID      uuid.UUID       `json:"sale_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	Quantity    int             `json:"quantity"`
	PriceAtTime decimal.Decimal `json:"price_at_time"`
	LineNo      int             `json:"line_no"`
	Product     *ProductSummary `json:"product,omitempty"`
}

func (i SaleItem) Revenue() decimal.Decimal {
	return i.PriceAtTime.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Sale is immutable once written.
type Sale struct {
	ID              uuid.UUID       `json:"id"`
	CashierID       uuid.UUID       `json:"cashier_id"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	CustomerContact *string         `json:"customer_contact,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	Items           []SaleItem      `json:"items"`
}

type CheckoutRequest struct {
	CustomerContact string `json:"customer_contact,omitempty" validate:"omitempty,max=254"`
}

type NotificationOutcome struct {
	Channel NotificationType   `json:"channel"`
	Status  NotificationStatus `json:"status"`
	Error   string             `json:"error,omitempty"`
}

type CheckoutResult struct {
	Sale         *Sale                `json:"sale"`
	Totals       CartTotals           `json:"totals"`
	Notification *NotificationOutcome `json:"notification,omitempty"`
}

type SaleListResponse struct {
	Sales []Sale     `json:"sales"`
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}
