package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appErrors "github.com/aaravmahajanofficial/retail-pos/internal/errors"
	"github.com/aaravmahajanofficial/retail-pos/internal/models"
	repository "github.com/aaravmahajanofficial/retail-pos/internal/repositories"
	"github.com/aaravmahajanofficial/retail-pos/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/retail-pos/internal/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type line struct {
	product *models.ProductSummary
	qty     int
	price   int64
}

func saleAt(at time.Time, lines ...line) models.Sale {
	sale := models.Sale{ID: uuid.New(), CreatedAt: at}
	for _, l := range lines {
		sale.Items = append(sale.Items, models.SaleItem{
			ID:          uuid.New(),
			SaleID:      sale.ID,
			ProductID:   l.product.ID,
			Quantity:    l.qty,
			PriceAtTime: decimal.NewFromInt(l.price),
			Product:     l.product,
		})
	}

	return sale
}

func summary(name, category string) *models.ProductSummary {
	return &models.ProductSummary{ID: uuid.New(), Name: name, Category: category}
}

func TestSummarizeSales(t *testing.T) {
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 10, 31, 23, 59, 59, 0, time.UTC)
	inWindow := start.Add(48 * time.Hour)

	shoes := summary("Shoes", "Footwear")
	socks := summary("Socks", "Apparel")

	t.Run("Two Categories In One Sale", func(t *testing.T) {
		sales := []models.Sale{saleAt(inWindow, line{shoes, 1, 8500}, line{socks, 3, 250})}

		got := service.SummarizeSales(sales, start, end, 3)

		require.Len(t, got.TopCategories, 2)
		assert.Equal(t, "Footwear", got.TopCategories[0].Category)
		assert.Equal(t, 1, got.TopCategories[0].Quantity)
		assert.True(t, decimal.NewFromInt(8500).Equal(got.TopCategories[0].Revenue))
		assert.Equal(t, "Apparel", got.TopCategories[1].Category)
		assert.Equal(t, 3, got.TopCategories[1].Quantity)
		assert.True(t, decimal.NewFromInt(750).Equal(got.TopCategories[1].Revenue))

		assert.Equal(t, 1, got.SaleCount)
		assert.Equal(t, 4, got.ItemsSold)
		assert.True(t, decimal.NewFromInt(9250).Equal(got.TotalRevenue))
	})

	t.Run("Accumulates Across Sales And Drops Outside Window", func(t *testing.T) {
		sales := []models.Sale{
			saleAt(inWindow, line{socks, 2, 250}),
			saleAt(inWindow.Add(time.Hour), line{socks, 1, 300}),
			saleAt(start.Add(-time.Second), line{shoes, 5, 8500}),
			saleAt(end.Add(time.Second), line{shoes, 5, 8500}),
		}

		got := service.SummarizeSales(sales, start, end, 3)

		require.Len(t, got.TopProducts, 1)
		assert.Equal(t, socks.ID, got.TopProducts[0].ProductID)
		assert.Equal(t, 3, got.TopProducts[0].Quantity)
		assert.True(t, decimal.NewFromInt(800).Equal(got.TopProducts[0].Revenue))
		assert.Equal(t, 2, got.SaleCount)
	})

	t.Run("Ties Keep First Seen Order And Limit Applies", func(t *testing.T) {
		a := summary("A", "X")
		b := summary("B", "Y")
		c := summary("C", "Z")
		d := summary("D", "W")
		sales := []models.Sale{saleAt(inWindow, line{a, 1, 100}, line{b, 1, 100}, line{c, 2, 100}, line{d, 1, 100})}

		got := service.SummarizeSales(sales, start, end, 0)

		require.Len(t, got.TopProducts, 3)
		assert.Equal(t, "C", got.TopProducts[0].Name)
		assert.Equal(t, "A", got.TopProducts[1].Name)
		assert.Equal(t, "B", got.TopProducts[2].Name)
	})

	t.Run("Empty Window", func(t *testing.T) {
		got := service.SummarizeSales(nil, start, end, 3)

		assert.Empty(t, got.TopProducts)
		assert.Empty(t, got.TopCategories)
		assert.True(t, got.TotalRevenue.IsZero())
	})
}

func TestReportService_Summary(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		saleRepo := mocks.NewSaleRepository(t)
		reportService := service.NewReportService(saleRepo, mocks.NewProductRepository(t), testConfig())

		sales := []models.Sale{saleAt(start.Add(time.Hour), line{summary("Shoes", "Footwear"), 2, 100})}
		saleRepo.On("ListSales", ctx, &start, &end, 0).Return(sales, nil).Once()

		got, err := reportService.Summary(ctx, &start, &end)

		require.NoError(t, err)
		assert.Equal(t, 1, got.SaleCount)
		assert.Equal(t, start, got.Start)
		assert.Equal(t, end, got.End)
	})

	t.Run("Failure - Ledger Unavailable", func(t *testing.T) {
		saleRepo := mocks.NewSaleRepository(t)
		reportService := service.NewReportService(saleRepo, mocks.NewProductRepository(t), testConfig())

		saleRepo.On("ListSales", ctx, (*time.Time)(nil), (*time.Time)(nil), 0).Return(nil, errors.New("db down")).Once()

		_, err := reportService.Summary(ctx, nil, nil)

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeDatabaseError))
	})
}

func TestReportService_Dashboard(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 19, 15, 30, 0, 0, time.UTC)
	dayStart := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		saleRepo := mocks.NewSaleRepository(t)
		productRepo := mocks.NewProductRepository(t)
		reportService := service.NewReportService(saleRepo, productRepo, testConfig())

		lowStock := []*models.Product{{ID: uuid.New(), Name: "Socks", Stock: 2}}
		recent := []models.Sale{{ID: uuid.New()}}

		productRepo.On("CountProducts", ctx).Return(42, nil).Once()
		saleRepo.On("SalesTotals", ctx, mock.MatchedBy(func(s *time.Time) bool { return s.Equal(dayStart) }), mock.Anything).
			Return(models.SalesTotals{Count: 3, Amount: decimal.NewFromInt(1200)}, nil).Once()
		saleRepo.On("SalesTotals", ctx, mock.MatchedBy(func(s *time.Time) bool { return s.Equal(monthStart) }), mock.Anything).
			Return(models.SalesTotals{Count: 40, Amount: decimal.NewFromInt(56000)}, nil).Once()
		productRepo.On("ListProducts", ctx, models.ProductFilter{LowStockOnly: true, LowStockThreshold: 10}).Return(lowStock, nil).Once()
		saleRepo.On("ListSales", ctx, (*time.Time)(nil), (*time.Time)(nil), 5).Return(recent, nil).Once()

		// Act
		dashboard, err := reportService.Dashboard(ctx, now)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 42, dashboard.TotalProducts)
		assert.Equal(t, 3, dashboard.TodaySaleCount)
		assert.True(t, decimal.NewFromInt(1200).Equal(dashboard.TodaySales))
		assert.True(t, decimal.NewFromInt(56000).Equal(dashboard.MonthlyRevenue))
		assert.Equal(t, 10, dashboard.LowStockThreshold)
		assert.Equal(t, lowStock, dashboard.LowStock)
		assert.Equal(t, recent, dashboard.RecentSales)
	})

	t.Run("Failure - Count Fails", func(t *testing.T) {
		productRepo := mocks.NewProductRepository(t)
		reportService := service.NewReportService(mocks.NewSaleRepository(t), productRepo, testConfig())

		productRepo.On("CountProducts", ctx).Return(0, errors.New("db down")).Once()

		_, err := reportService.Dashboard(ctx, now)

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeDatabaseError))
	})
}

func TestReportService_Sales(t *testing.T) {
	ctx := context.Background()
	saleID := uuid.New()

	t.Run("ListSales", func(t *testing.T) {
		saleRepo := mocks.NewSaleRepository(t)
		reportService := service.NewReportService(saleRepo, mocks.NewProductRepository(t), testConfig())

		start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
		saleRepo.On("ListSales", ctx, &start, (*time.Time)(nil), 0).Return([]models.Sale{{ID: saleID}}, nil).Once()

		resp, err := reportService.ListSales(ctx, &start, nil)

		require.NoError(t, err)
		assert.Len(t, resp.Sales, 1)
		assert.Equal(t, &start, resp.Start)
	})

	t.Run("GetSale - Not Found", func(t *testing.T) {
		saleRepo := mocks.NewSaleRepository(t)
		reportService := service.NewReportService(saleRepo, mocks.NewProductRepository(t), testConfig())

		saleRepo.On("GetSaleByID", ctx, saleID).Return(nil, repository.ErrNotFound).Once()

		_, err := reportService.GetSale(ctx, saleID)

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeNotFound))
	})

	t.Run("GetSale - Success", func(t *testing.T) {
		saleRepo := mocks.NewSaleRepository(t)
		reportService := service.NewReportService(saleRepo, mocks.NewProductRepository(t), testConfig())

		saleRepo.On("GetSaleByID", ctx, saleID).Return(&models.Sale{ID: saleID}, nil).Once()

		sale, err := reportService.GetSale(ctx, saleID)

		require.NoError(t, err)
		assert.Equal(t, saleID, sale.ID)
	})
}
