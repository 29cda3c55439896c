package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/retail-pos/internal/models"
	repository "github.com/aaravmahajanofficial/retail-pos/internal/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	saleHeaderColumns = []string{"id", "cashier_id", "subtotal", "tax_amount", "total_amount", "customer_contact", "created_at"}
	saleItemColumns   = []string{"id", "sale_id", "product_id", "quantity", "price_at_time", "line_no", "name", "category"}

	insertSaleSQL     = regexp.QuoteMeta(`INSERT INTO sales (id, cashier_id, subtotal, tax_amount, total_amount, customer_contact, created_at)`)
	decrementSQL      = regexp.QuoteMeta(`UPDATE products SET stock = stock - $1, version = version + 1, updated_at = NOW() WHERE id = $2 AND stock >= $1`)
	insertSaleItemSQL = regexp.QuoteMeta(`INSERT INTO sale_items (id, sale_id, product_id, quantity, price_at_time, line_no)`)
	saleItemsSQL      = regexp.QuoteMeta(`FROM sale_items si JOIN products p ON p.id = si.product_id WHERE si.sale_id = ANY($1) ORDER BY si.sale_id, si.line_no`)
)

func newTestSale() *models.Sale {
	saleID := uuid.New()

	return &models.Sale{
		ID:          saleID,
		CashierID:   uuid.New(),
		Subtotal:    decimal.RequireFromString("9250"),
		TaxAmount:   decimal.RequireFromString("1665"),
		TotalAmount: decimal.RequireFromString("10915"),
		Items: []models.SaleItem{
			{ID: uuid.New(), ProductID: uuid.New(), Quantity: 1, PriceAtTime: decimal.RequireFromString("8500")},
			{ID: uuid.New(), ProductID: uuid.New(), Quantity: 3, PriceAtTime: decimal.RequireFromString("250")},
		},
	}
}

func setupSaleRepoTest(t *testing.T) (repository.SaleRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewSaleRepo(db), mock
}

func TestCreateSale(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Header, Items And Decrements Commit Together", func(t *testing.T) {
		// Arrange
		repo, mock := setupSaleRepoTest(t)
		sale := newTestSale()
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(insertSaleSQL).
			WithArgs(sale.ID, sale.CashierID, sale.Subtotal, sale.TaxAmount, sale.TotalAmount, nil).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
		for i, item := range sale.Items {
			mock.ExpectExec(decrementSQL).
				WithArgs(item.Quantity, item.ProductID).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec(insertSaleItemSQL).
				WithArgs(item.ID, sale.ID, item.ProductID, item.Quantity, item.PriceAtTime, i+1).
				WillReturnResult(sqlmock.NewResult(0, 1))
		}
		mock.ExpectCommit()

		// Act
		err := repo.CreateSale(ctx, sale)

		// Assert
		require.NoError(t, err)
		assert.WithinDuration(t, now, sale.CreatedAt, time.Second)
		for i, item := range sale.Items {
			assert.Equal(t, sale.ID, item.SaleID)
			assert.Equal(t, i+1, item.LineNo)
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Guarded Decrement Rolls Back", func(t *testing.T) {
		// Arrange
		repo, mock := setupSaleRepoTest(t)
		sale := newTestSale()

		mock.ExpectBegin()
		mock.ExpectQuery(insertSaleSQL).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
		mock.ExpectExec(decrementSQL).
			WithArgs(sale.Items[0].Quantity, sale.Items[0].ProductID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(insertSaleItemSQL).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(decrementSQL).
			WithArgs(sale.Items[1].Quantity, sale.Items[1].ProductID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		// Act
		err := repo.CreateSale(ctx, sale)

		// Assert
		assert.ErrorIs(t, err, repository.ErrInsufficientStock)
		assert.ErrorContains(t, err, sale.Items[1].ProductID.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Header Write Rolls Back", func(t *testing.T) {
		// Arrange
		repo, mock := setupSaleRepoTest(t)
		sale := newTestSale()
		dbError := errors.New("connection reset")

		mock.ExpectBegin()
		mock.ExpectQuery(insertSaleSQL).WillReturnError(dbError)
		mock.ExpectRollback()

		// Act
		err := repo.CreateSale(ctx, sale)

		// Assert
		assert.ErrorIs(t, err, dbError)
		assert.NotErrorIs(t, err, repository.ErrInsufficientStock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Item Insert Rolls Back", func(t *testing.T) {
		// Arrange
		repo, mock := setupSaleRepoTest(t)
		sale := newTestSale()

		mock.ExpectBegin()
		mock.ExpectQuery(insertSaleSQL).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
		mock.ExpectExec(decrementSQL).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(insertSaleItemSQL).WillReturnError(errors.New("fk violation"))
		mock.ExpectRollback()

		// Act
		err := repo.CreateSale(ctx, sale)

		// Assert
		assert.ErrorContains(t, err, "failed to insert a sale item")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Begin", func(t *testing.T) {
		// Arrange
		repo, mock := setupSaleRepoTest(t)
		mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

		// Act
		err := repo.CreateSale(ctx, newTestSale())

		// Assert
		assert.ErrorContains(t, err, "failed to begin transaction")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetSaleByID(t *testing.T) {
	ctx := t.Context()
	saleID := uuid.New()
	cashierID := uuid.New()
	productID := uuid.New()
	now := time.Now()

	t.Run("Success - Items Carry Product Summary", func(t *testing.T) {
		// Arrange
		repo, mock := setupSaleRepoTest(t)
		contact := "buyer@example.com"

		mock.ExpectQuery(regexp.QuoteMeta(`FROM sales WHERE id = $1`)).
			WithArgs(saleID).
			WillReturnRows(sqlmock.NewRows(saleHeaderColumns).
				AddRow(saleID.String(), cashierID.String(), "250.00", "45.00", "295.00", contact, now))
		mock.ExpectQuery(saleItemsSQL).
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(saleItemColumns).
				AddRow(uuid.New().String(), saleID.String(), productID.String(), 1, "250.00", 1, "Socks", "Footwear"))

		// Act
		sale, err := repo.GetSaleByID(ctx, saleID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, cashierID, sale.CashierID)
		require.NotNil(t, sale.CustomerContact)
		assert.Equal(t, contact, *sale.CustomerContact)
		require.Len(t, sale.Items, 1)
		assert.Equal(t, "Socks", sale.Items[0].Product.Name)
		assert.Equal(t, productID, sale.Items[0].Product.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Items In Line Order", func(t *testing.T) {
		// Arrange
		repo, mock := setupSaleRepoTest(t)
		shoes, socks, hat := uuid.New(), uuid.New(), uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(`FROM sales WHERE id = $1`)).
			WithArgs(saleID).
			WillReturnRows(sqlmock.NewRows(saleHeaderColumns).
				AddRow(saleID.String(), cashierID.String(), "9300.00", "1674.00", "10974.00", nil, now))
		mock.ExpectQuery(saleItemsSQL).
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(saleItemColumns).
				AddRow(uuid.New().String(), saleID.String(), shoes.String(), 1, "8500.00", 1, "Running Shoes", "Footwear").
				AddRow(uuid.New().String(), saleID.String(), socks.String(), 3, "250.00", 2, "Socks", "Footwear").
				AddRow(uuid.New().String(), saleID.String(), hat.String(), 1, "50.00", 3, "Cap", "Accessories"))

		// Act
		sale, err := repo.GetSaleByID(ctx, saleID)

		// Assert
		require.NoError(t, err)
		require.Len(t, sale.Items, 3)
		assert.Equal(t, []uuid.UUID{shoes, socks, hat}, []uuid.UUID{sale.Items[0].ProductID, sale.Items[1].ProductID, sale.Items[2].ProductID})
		assert.Equal(t, []int{1, 2, 3}, []int{sale.Items[0].LineNo, sale.Items[1].LineNo, sale.Items[2].LineNo})
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		repo, mock := setupSaleRepoTest(t)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM sales WHERE id = $1`)).WillReturnError(sql.ErrNoRows)

		// Act
		sale, err := repo.GetSaleByID(ctx, saleID)

		// Assert
		assert.Nil(t, sale)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListSales(t *testing.T) {
	ctx := t.Context()
	listSQL := regexp.QuoteMeta(`FROM sales WHERE ($1::timestamptz IS NULL OR created_at >= $1)`)

	t.Run("Success - Window With Items", func(t *testing.T) {
		// Arrange
		repo, mock := setupSaleRepoTest(t)
		start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC)
		first, second := uuid.New(), uuid.New()

		mock.ExpectQuery(listSQL).
			WithArgs(start, end).
			WillReturnRows(sqlmock.NewRows(saleHeaderColumns).
				AddRow(first.String(), uuid.New().String(), "100.00", "18.00", "118.00", nil, end).
				AddRow(second.String(), uuid.New().String(), "50.00", "9.00", "59.00", nil, start))
		mock.ExpectQuery(saleItemsSQL).
			WillReturnRows(sqlmock.NewRows(saleItemColumns).
				AddRow(uuid.New().String(), first.String(), uuid.New().String(), 2, "50.00", 1, "Cap", "Accessories"))

		// Act
		sales, err := repo.ListSales(ctx, &start, &end, 0)

		// Assert
		require.NoError(t, err)
		require.Len(t, sales, 2)
		assert.Len(t, sales[0].Items, 1)
		assert.NotNil(t, sales[1].Items)
		assert.Empty(t, sales[1].Items)
		assert.Nil(t, sales[0].CustomerContact)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Limit And Empty", func(t *testing.T) {
		// Arrange
		repo, mock := setupSaleRepoTest(t)
		mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC LIMIT $3`)).
			WithArgs(nil, nil, 5).
			WillReturnRows(sqlmock.NewRows(saleHeaderColumns))

		// Act
		sales, err := repo.ListSales(ctx, nil, nil, 5)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, sales)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Items Query", func(t *testing.T) {
		// Arrange
		repo, mock := setupSaleRepoTest(t)
		mock.ExpectQuery(listSQL).
			WillReturnRows(sqlmock.NewRows(saleHeaderColumns).
				AddRow(uuid.New().String(), uuid.New().String(), "1.00", "0.18", "1.18", nil, time.Now()))
		mock.ExpectQuery(saleItemsSQL).WillReturnError(errors.New("timeout"))

		// Act
		sales, err := repo.ListSales(ctx, nil, nil, 0)

		// Assert
		assert.Nil(t, sales)
		assert.ErrorContains(t, err, "failed to get the sale items")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSalesTotals(t *testing.T) {
	// Arrange
	repo, mock := setupSaleRepoTest(t)
	start := time.Now().Add(-time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*), COALESCE(SUM(total_amount), 0)`)).
		WithArgs(start, nil).
		WillReturnRows(sqlmock.NewRows([]string{"count", "sum"}).AddRow(3, "354.00"))

	// Act
	totals, err := repo.SalesTotals(t.Context(), &start, nil)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, totals.Count)
	assert.True(t, decimal.RequireFromString("354").Equal(totals.Amount))
	assert.NoError(t, mock.ExpectationsWereMet())
}
