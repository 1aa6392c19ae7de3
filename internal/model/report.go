package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySales is one row of the sales-by-day report: all orders placed on a
// calendar date, with sums coalesced to zero so callers never see nulls.
type DailySales struct {
	Date          time.Time       `json:"date"`
	OrderCount    int             `json:"orderCount"`
	TotalSales    decimal.Decimal `json:"totalSales"`
	AvgOrderValue decimal.Decimal `json:"avgOrderValue"`
}

// ProductSales is one row of the sales-by-product report. Only products that
// appear in at least one order line are included.
type ProductSales struct {
	ProductName        string          `json:"productName"`
	CategoryName       string          `json:"categoryName"`
	TotalQuantity      int             `json:"totalQuantity"`
	TotalRevenue       decimal.Decimal `json:"totalRevenue"`
	DistinctOrderCount int             `json:"distinctOrderCount"`
}

// CustomerSales is one row of the sales-by-customer report. Customers with no
// orders appear with zeroed aggregates and no last order date.
type CustomerSales struct {
	CustomerName  string          `json:"customerName"`
	CustomerType  string          `json:"customerType"`
	OrderCount    int             `json:"orderCount"`
	TotalSpent    decimal.Decimal `json:"totalSpent"`
	AvgOrderValue decimal.Decimal `json:"avgOrderValue"`
	LastOrderDate *time.Time      `json:"lastOrderDate,omitempty"`
}
