package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/aaravmahajanofficial/retail-pos/internal/config"
	appErrors "github.com/aaravmahajanofficial/retail-pos/internal/errors"
	"github.com/aaravmahajanofficial/retail-pos/internal/models"
	repository "github.com/aaravmahajanofficial/retail-pos/internal/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultTopN       = 3
	recentSalesLimit  = 5
	uncategorizedName = "Uncategorized"
)

// SummarizeSales ranks products and categories by revenue over the sales
// created within [start, end]. Equal revenues keep first-seen order.
func SummarizeSales(sales []models.Sale, start, end time.Time, limit int) models.ReportSummary {

	if limit <= 0 {
		limit = defaultTopN
	}

	summary := models.ReportSummary{
		Start:        start,
		End:          end,
		TotalRevenue: decimal.Zero,
	}

	products := []*models.ProductStat{}
	productIdx := map[uuid.UUID]*models.ProductStat{}
	categories := []*models.CategoryStat{}
	categoryIdx := map[string]*models.CategoryStat{}

	for _, sale := range sales {
		if sale.CreatedAt.Before(start) || sale.CreatedAt.After(end) {
			continue
		}

		summary.SaleCount++

		for _, item := range sale.Items {
			revenue := item.Revenue()

			summary.ItemsSold += item.Quantity
			summary.TotalRevenue = summary.TotalRevenue.Add(revenue)

			name, category := item.ProductID.String(), uncategorizedName
			if item.Product != nil {
				name = item.Product.Name
				if item.Product.Category != "" {
					category = item.Product.Category
				}
			}

			p, ok := productIdx[item.ProductID]
			if !ok {
				p = &models.ProductStat{ProductID: item.ProductID, Name: name, Category: category, Revenue: decimal.Zero}
				productIdx[item.ProductID] = p
				products = append(products, p)
			}
			p.Quantity += item.Quantity
			p.Revenue = p.Revenue.Add(revenue)

			c, ok := categoryIdx[category]
			if !ok {
				c = &models.CategoryStat{Category: category, Revenue: decimal.Zero}
				categoryIdx[category] = c
				categories = append(categories, c)
			}
			c.Quantity += item.Quantity
			c.Revenue = c.Revenue.Add(revenue)
		}
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Revenue.GreaterThan(products[j].Revenue)
	})
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Revenue.GreaterThan(categories[j].Revenue)
	})

	summary.TopProducts = make([]models.ProductStat, 0, min(limit, len(products)))
	for _, p := range products[:min(limit, len(products))] {
		summary.TopProducts = append(summary.TopProducts, *p)
	}

	summary.TopCategories = make([]models.CategoryStat, 0, min(limit, len(categories)))
	for _, c := range categories[:min(limit, len(categories))] {
		summary.TopCategories = append(summary.TopCategories, *c)
	}

	return summary
}

type ReportService interface {
	Summary(ctx context.Context, start, end *time.Time) (*models.ReportSummary, error)
	Dashboard(ctx context.Context, now time.Time) (*models.Dashboard, error)
	ListSales(ctx context.Context, start, end *time.Time) (*models.SaleListResponse, error)
	GetSale(ctx context.Context, id uuid.UUID) (*models.Sale, error)
}

type reportService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	cfg         *config.Config
}

func NewReportService(saleRepo repository.SaleRepository, productRepo repository.ProductRepository, cfg *config.Config) ReportService {
	return &reportService{saleRepo: saleRepo, productRepo: productRepo, cfg: cfg}
}

// Summary defaults to everything up to now when the window is open ended.
func (s *reportService) Summary(ctx context.Context, start, end *time.Time) (*models.ReportSummary, error) {

	sales, err := s.saleRepo.ListSales(ctx, start, end, 0)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to load sales").WithError(err)
	}

	from, to := time.Time{}, time.Now()
	if start != nil {
		from = *start
	}
	if end != nil {
		to = *end
	}

	summary := SummarizeSales(sales, from, to, s.cfg.POS.ReportTopN)

	return &summary, nil
}

func (s *reportService) Dashboard(ctx context.Context, now time.Time) (*models.Dashboard, error) {

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	totalProducts, err := s.productRepo.CountProducts(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to count products").WithError(err)
	}

	today, err := s.saleRepo.SalesTotals(ctx, &dayStart, &now)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to load today's sales").WithError(err)
	}

	month, err := s.saleRepo.SalesTotals(ctx, &monthStart, &now)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to load monthly revenue").WithError(err)
	}

	threshold := s.cfg.POS.LowStockThreshold

	lowStock, err := s.productRepo.ListProducts(ctx, models.ProductFilter{LowStockOnly: true, LowStockThreshold: threshold})
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to load low stock products").WithError(err)
	}

	recent, err := s.saleRepo.ListSales(ctx, nil, nil, recentSalesLimit)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to load recent sales").WithError(err)
	}

	return &models.Dashboard{
		TotalProducts:     totalProducts,
		TodaySales:        today.Amount,
		TodaySaleCount:    today.Count,
		MonthlyRevenue:    month.Amount,
		LowStockThreshold: threshold,
		LowStock:          lowStock,
		RecentSales:       recent,
	}, nil
}

func (s *reportService) ListSales(ctx context.Context, start, end *time.Time) (*models.SaleListResponse, error) {

	sales, err := s.saleRepo.ListSales(ctx, start, end, 0)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list sales").WithError(err)
	}

	return &models.SaleListResponse{Sales: sales, Start: start, End: end}, nil
}

func (s *reportService) GetSale(ctx context.Context, id uuid.UUID) (*models.Sale, error) {

	sale, err := s.saleRepo.GetSaleByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Sale not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to fetch sale").WithError(err)
	}

	return sale, nil
}
