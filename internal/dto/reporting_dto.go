package dto

import "github.com/shopspring/decimal"

// DashboardStatsResponse aggregates the headline figures shown on the dashboard.
type DashboardStatsResponse struct {
	TotalMonth     decimal.Decimal   `json:"totalMonth"`
	CountMonth     int               `json:"countMonth"`
	TotalPending   decimal.Decimal   `json:"totalPending"`
	ClientCount    int               `json:"clientCount"`
	RecentInvoices []InvoiceResponse `json:"recentInvoices"`
}

// ChartPoint is one month of paid income for the dashboard chart.
type ChartPoint struct {
	Name  string          `json:"name"` // short month name, e.g. "Aug"
	Total decimal.Decimal `json:"total"`
}
