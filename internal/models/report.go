package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductStat struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Quantity  int             `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
}

type CategoryStat struct {
	Category string          `json:"category"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type ReportSummary struct {
	Start         time.Time       `json:"start"`
	End           time.Time       `json:"end"`
	SaleCount     int             `json:"sale_count"`
	ItemsSold     int             `json:"items_sold"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TopProducts   []ProductStat   `json:"top_products"`
	TopCategories []CategoryStat  `json:"top_categories"`
}

type Dashboard struct {
	TotalProducts     int             `json:"total_products"`
	TodaySales        decimal.Decimal `json:"today_sales"`
	TodaySaleCount    int             `json:"today_sale_count"`
	MonthlyRevenue    decimal.Decimal `json:"monthly_revenue"`
	LowStockThreshold int             `json:"low_stock_threshold"`
	LowStock          []*Product      `json:"low_stock"`
	RecentSales       []Sale          `json:"recent_sales"`
}

// SalesTotals is an aggregate over the sale headers of a window.
type SalesTotals struct {
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}
