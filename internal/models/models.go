// ABOUTME: Domain types shared across the POS client
// ABOUTME: Mirrors the JSON shapes returned by the pet-shop backend API

package models

// Role values returned by the backend for a user account.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// Tenant identifies the store-chain partition every record belongs to.
// Isolation is enforced server-side; the client only carries it along.
type Tenant struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// User is the profile record for an authenticated account.
// It is replaced wholesale on every profile fetch, never partially mutated.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Username    string `json:"username"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
	Tenant      Tenant `json:"tenant"`
}

// Ref is an embedded id/name reference used inside product records.
type Ref struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Product is a sellable item with live stock tracking.
// The backend emits snake_case timestamps on products but camelCase on
// brands and categories; the tags preserve that as-is.
type Product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Stock     int     `json:"stock"`
	Price     float64 `json:"price"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
	Brand     Ref     `json:"brand"`
	Category  Ref     `json:"category"`
	Tenant    Tenant  `json:"tenant"`
}

// Brand is a product brand record.
type Brand struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	Tenant    Tenant `json:"tenant"`
}

// Category is a product category record.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	Tenant    Tenant `json:"tenant"`
}

// TransactionLine is a single product line inside a transaction.
type TransactionLine struct {
	ID       string  `json:"id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Name     string  `json:"name,omitempty"`
}

// Transaction is a completed checkout.
// Field casing follows the backend's transaction schema verbatim.
type Transaction struct {
	ID            string            `json:"id"`
	PaymentMethod string            `json:"PaymentMethod"`
	TotalPrice    float64           `json:"TotalPrice"`
	User          User              `json:"user"`
	Tenant        Tenant            `json:"tenant"`
	Products      []TransactionLine `json:"products"`
	CreatedAt     string            `json:"created_at"`
	UpdatedAt     string            `json:"updated_at"`
}

// DashboardStats aggregates the numbers shown on the dashboard view.
type DashboardStats struct {
	TotalProducts     int     `json:"total_products"`
	TodayTransactions int     `json:"today_transactions"`
	TodayRevenue      float64 `json:"today_revenue"`
	LowStockCount     int     `json:"low_stock_count"`
}

// SalesReportRow is one bucket of the sales report (per day or month).
type SalesReportRow struct {
	Date         string  `json:"date"`
	Revenue      float64 `json:"revenue"`
	Transactions int     `json:"transactions"`
}

// SalesReportSummary carries report-wide totals.
type SalesReportSummary struct {
	TotalRevenue      float64 `json:"total_revenue"`
	TotalTransactions int     `json:"total_transactions"`
}

// SalesReport is the full sales report response payload.
type SalesReport struct {
	Summary SalesReportSummary `json:"summary"`
	Data    []SalesReportRow   `json:"data"`
}

// ProductSales is a best-seller row in the products report.
type ProductSales struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Revenue   float64 `json:"revenue"`
}

// CategoryRevenue is a revenue-by-category row in the products report.
type CategoryRevenue struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
}

// ProductsReport is the full products report response payload.
type ProductsReport struct {
	BestSelling       []ProductSales    `json:"best_selling"`
	RevenueByCategory []CategoryRevenue `json:"revenue_by_category"`
}

// Metadata carries pagination info on list responses.
type Metadata struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}
