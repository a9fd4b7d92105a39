// ABOUTME: Dashboard and report endpoints
// ABOUTME: Aggregated stats, sales reports and product performance reports

package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jagatix-comp/petshop-pos/internal/models"
)

const (
	dashboardStatsPath = "/dashboard/stats"
	salesReportPath    = "/reports/sales"
	productsReportPath = "/reports/products"
)

// DashboardStats fetches the aggregated dashboard numbers. Date is optional
// (YYYY-MM-DD); empty means today.
func (c *Client) DashboardStats(ctx context.Context, date string) (*models.DashboardStats, error) {
	endpoint := dashboardStatsPath
	if date != "" {
		endpoint += "?date=" + url.QueryEscape(date)
	}
	stats, _, err := doEnvelope[models.DashboardStats](ctx, c, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// SalesReport fetches revenue and transaction counts bucketed by day or
// month. All parameters are optional.
func (c *Client) SalesReport(ctx context.Context, startDate, endDate, groupBy string) (*models.SalesReport, error) {
	q := url.Values{}
	if startDate != "" {
		q.Set("start_date", startDate)
	}
	if endDate != "" {
		q.Set("end_date", endDate)
	}
	if groupBy != "" {
		q.Set("group_by", groupBy)
	}
	endpoint := salesReportPath
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}
	report, _, err := doEnvelope[models.SalesReport](ctx, c, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// ProductsReport fetches best sellers and revenue by category for a period.
func (c *Client) ProductsReport(ctx context.Context, startDate, endDate string) (*models.ProductsReport, error) {
	q := url.Values{}
	if startDate != "" {
		q.Set("start_date", startDate)
	}
	if endDate != "" {
		q.Set("end_date", endDate)
	}
	endpoint := productsReportPath
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}
	report, _, err := doEnvelope[models.ProductsReport](ctx, c, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	return &report, nil
}
