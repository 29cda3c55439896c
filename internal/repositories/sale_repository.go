package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/retail-pos/internal/models"
	"github.com/aaravmahajanofficial/retail-pos/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type SaleRepository interface {
	CreateSale(ctx context.Context, sale *models.Sale) error
	GetSaleByID(ctx context.Context, id uuid.UUID) (*models.Sale, error)
	ListSales(ctx context.Context, start, end *time.Time, limit int) ([]models.Sale, error)
	SalesTotals(ctx context.Context, start, end *time.Time) (models.SalesTotals, error)
}

type saleRepository struct {
	DB *sql.DB
}

func NewSaleRepo(db *sql.DB) SaleRepository {
	return &saleRepository{DB: db}
}

// CreateSale writes the header, the items and the stock decrements in one
// transaction. A line whose product no longer has enough stock aborts the
// whole sale with ErrInsufficientStock.
func (r *saleRepository) CreateSale(ctx context.Context, sale *models.Sale) (err error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	headerQuery := `
		INSERT INTO sales (id, cashier_id, subtotal, tax_amount, total_amount, customer_contact, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`

	err = tx.QueryRowContext(dbCtx, headerQuery, sale.ID, sale.CashierID, sale.Subtotal, sale.TaxAmount, sale.TotalAmount, sale.CustomerContact).Scan(&sale.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert sale: %w", err)
	}

	decrementQuery := `
		UPDATE products SET stock = stock - $1, version = version + 1, updated_at = NOW()
		WHERE id = $2 AND stock >= $1
	`

	itemQuery := `
		INSERT INTO sale_items (id, sale_id, product_id, quantity, price_at_time, line_no)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for i := range sale.Items {

		item := &sale.Items[i]
		item.SaleID = sale.ID
		item.LineNo = i + 1

		result, execErr := tx.ExecContext(dbCtx, decrementQuery, item.Quantity, item.ProductID)
		if execErr != nil {
			return fmt.Errorf("failed to decrement stock: %w", execErr)
		}

		updatedRows, rowsErr := result.RowsAffected()
		if rowsErr != nil {
			return fmt.Errorf("failed to get updated rows: %w", rowsErr)
		}

		if updatedRows == 0 {
			return fmt.Errorf("%w: product %s", ErrInsufficientStock, item.ProductID)
		}

		if _, execErr := tx.ExecContext(dbCtx, itemQuery, item.ID, sale.ID, item.ProductID, item.Quantity, item.PriceAtTime, item.LineNo); execErr != nil {
			return fmt.Errorf("failed to insert a sale item: %w", execErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		return fmt.Errorf("failed to commit sale: %w", commitErr)
	}

	return nil
}

func (r *saleRepository) GetSaleByID(ctx context.Context, id uuid.UUID) (*models.Sale, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, cashier_id, subtotal, tax_amount, total_amount, customer_contact, created_at
		FROM sales
		WHERE id = $1
	`

	sale := &models.Sale{}

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&sale.ID, &sale.CashierID, &sale.Subtotal, &sale.TaxAmount, &sale.TotalAmount, &sale.CustomerContact, &sale.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get the sale: %w", err)
	}

	items, err := r.itemsFor(dbCtx, []string{id.String()})
	if err != nil {
		return nil, err
	}

	sale.Items = items[sale.ID]
	if sale.Items == nil {
		sale.Items = []models.SaleItem{}
	}

	return sale, nil
}

// ListSales returns the sales created inside [start, end], newest first.
// Nil bounds are open. A positive limit caps the number of sales.
func (r *saleRepository) ListSales(ctx context.Context, start, end *time.Time, limit int) ([]models.Sale, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, cashier_id, subtotal, tax_amount, total_amount, customer_contact, created_at
		FROM sales
		WHERE ($1::timestamptz IS NULL OR created_at >= $1)
		AND ($2::timestamptz IS NULL OR created_at <= $2)
		ORDER BY created_at DESC
	`

	args := []any{start, end}
	if limit > 0 {
		query += ` LIMIT $3`
		args = append(args, limit)
	}

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}

	defer rows.Close()

	sales := []models.Sale{}
	ids := []string{}

	for rows.Next() {
		var sale models.Sale

		if err := rows.Scan(&sale.ID, &sale.CashierID, &sale.Subtotal, &sale.TaxAmount, &sale.TotalAmount, &sale.CustomerContact, &sale.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}

		sales = append(sales, sale)
		ids = append(ids, sale.ID.String())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over the rows: %w", err)
	}

	if len(sales) == 0 {
		return sales, nil
	}

	items, err := r.itemsFor(dbCtx, ids)
	if err != nil {
		return nil, err
	}

	for i := range sales {
		sales[i].Items = items[sales[i].ID]
		if sales[i].Items == nil {
			sales[i].Items = []models.SaleItem{}
		}
	}

	return sales, nil
}

// itemsFor loads the items of the given sales with their product summary,
// in the order they were rung up.
func (r *saleRepository) itemsFor(ctx context.Context, saleIDs []string) (map[uuid.UUID][]models.SaleItem, error) {

	query := `
		SELECT si.id, si.sale_id, si.product_id, si.quantity, si.price_at_time, si.line_no, p.name, p.category
		FROM sale_items si
		JOIN products p ON p.id = si.product_id
		WHERE si.sale_id = ANY($1)
		ORDER BY si.sale_id, si.line_no
	`

	rows, err := r.DB.QueryContext(ctx, query, pq.Array(saleIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to get the sale items: %w", err)
	}

	defer rows.Close()

	items := make(map[uuid.UUID][]models.SaleItem, len(saleIDs))

	for rows.Next() {
		var item models.SaleItem
		summary := &models.ProductSummary{}

		if err := rows.Scan(&item.ID, &item.SaleID, &item.ProductID, &item.Quantity, &item.PriceAtTime, &item.LineNo, &summary.Name, &summary.Category); err != nil {
			return nil, fmt.Errorf("failed to scan sale item: %w", err)
		}

		summary.ID = item.ProductID
		item.Product = summary

		items[item.SaleID] = append(items[item.SaleID], item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return items, nil
}

func (r *saleRepository) SalesTotals(ctx context.Context, start, end *time.Time) (models.SalesTotals, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM sales
		WHERE ($1::timestamptz IS NULL OR created_at >= $1)
		AND ($2::timestamptz IS NULL OR created_at <= $2)
	`

	var totals models.SalesTotals

	if err := r.DB.QueryRowContext(dbCtx, query, start, end).Scan(&totals.Count, &totals.Amount); err != nil {
		return models.SalesTotals{}, fmt.Errorf("failed to sum sales: %w", err)
	}

	return totals, nil
}
