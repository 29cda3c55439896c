package models

import (
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/retail-pos/internal/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartProduct is the product as it was when the line was created. Price and
// stock are not refreshed afterwards.
type CartProduct struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
}

type CartLine struct {
	Product  CartProduct `json:"product"`
	Quantity int         `json:"quantity"`
}

func (l CartLine) LineTotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart holds at most one line per product, in insertion order.
type Cart struct {
	SessionID uuid.UUID  `json:"session_id"`
	Lines     []CartLine `json:"lines"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	TaxRate  decimal.Decimal `json:"tax_rate"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`

	SubtotalDisplay string `json:"subtotal_display"`
	TaxDisplay      string `json:"tax_display"`
	TotalDisplay    string `json:"total_display"`
}

type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"omitempty,min=1"`
}

// Quantity is checked by the cart itself so that zero and negative values
// surface as INVALID_QUANTITY.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CartResponse struct {
	Cart   *Cart      `json:"cart"`
	Totals CartTotals `json:"totals"`
}

func NewCart(sessionID uuid.UUID) *Cart {
	return &Cart{
		SessionID: sessionID,
		Lines:     []CartLine{},
		UpdatedAt: time.Now(),
	}
}

func (c *Cart) indexOf(productID uuid.UUID) int {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			return i
		}
	}

	return -1
}

// Line returns a copy of the line for productID.
func (c *Cart) Line(productID uuid.UUID) (CartLine, bool) {
	if i := c.indexOf(productID); i >= 0 {
		return c.Lines[i], true
	}

	return CartLine{}, false
}

func (c *Cart) AddItem(product *Product, qty int) error {
	if product.Stock <= 0 {
		return errors.OutOfStockError(fmt.Sprintf("%s is out of stock", product.Name))
	}

	if qty < 1 {
		return errors.InvalidQuantityError("Quantity must be at least 1")
	}

	if i := c.indexOf(product.ID); i >= 0 {
		newQty := c.Lines[i].Quantity + qty
		if newQty > product.Stock {
			return errors.InsufficientStockError(fmt.Sprintf("Only %d of %s in stock", product.Stock, product.Name))
		}

		c.Lines[i].Quantity = newQty
		c.UpdatedAt = time.Now()

		return nil
	}

	if qty > product.Stock {
		return errors.InsufficientStockError(fmt.Sprintf("Only %d of %s in stock", product.Stock, product.Name))
	}

	c.Lines = append(c.Lines, CartLine{
		Product: CartProduct{
			ID:       product.ID,
			Name:     product.Name,
			Category: product.Category,
			Price:    product.Price,
			Stock:    product.Stock,
		},
		Quantity: qty,
	})
	c.UpdatedAt = time.Now()

	return nil
}

// RemoveItem is a no-op when the product has no line.
func (c *Cart) RemoveItem(productID uuid.UUID) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}

	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	c.UpdatedAt = time.Now()
}

func (c *Cart) SetQuantity(productID uuid.UUID, qty int) error {
	if qty < 1 {
		return errors.InvalidQuantityError("Quantity must be at least 1")
	}

	i := c.indexOf(productID)
	if i < 0 {
		return errors.NotFoundError("Item not found in the cart")
	}

	if qty > c.Lines[i].Product.Stock {
		return errors.InsufficientStockError(fmt.Sprintf("Only %d of %s in stock", c.Lines[i].Product.Stock, c.Lines[i].Product.Name))
	}

	c.Lines[i].Quantity = qty
	c.UpdatedAt = time.Now()

	return nil
}

func (c *Cart) Clear() {
	c.Lines = []CartLine{}
	c.UpdatedAt = time.Now()
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}

	return count
}

func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range c.Lines {
		subtotal = subtotal.Add(line.LineTotal())
	}

	return subtotal
}

func (c *Cart) Tax(rate decimal.Decimal) decimal.Decimal {
	return TaxOn(c.Subtotal(), rate)
}

func (c *Cart) GrandTotal() decimal.Decimal {
	return c.Subtotal().Add(c.Tax(DefaultTaxRate))
}

func (c *Cart) Totals() CartTotals {
	subtotal := c.Subtotal()
	tax := TaxOn(subtotal, DefaultTaxRate)
	total := subtotal.Add(tax)

	return CartTotals{
		Subtotal:        subtotal,
		TaxRate:         DefaultTaxRate,
		Tax:             tax,
		Total:           total,
		SubtotalDisplay: FormatCurrency(subtotal),
		TaxDisplay:      FormatCurrency(tax),
		TotalDisplay:    FormatCurrency(total),
	}
}
