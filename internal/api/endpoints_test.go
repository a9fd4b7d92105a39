// ABOUTME: Tests for resource endpoint wiring
// ABOUTME: Paths, query strings and envelope unwrapping for the CRUD surface

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jagatix-comp/petshop-pos/internal/models"
)

func TestListParamsQuery(t *testing.T) {
	tests := []struct {
		name   string
		params ListParams
		want   string
	}{
		{"empty", ListParams{}, ""},
		{"search only", ListParams{Search: "cat food"}, "?search=cat+food"},
		{"pagination", ListParams{Page: 2, Limit: 25}, "?limit=25&page=2"},
		{"category filter", ListParams{Category: "food", Page: 1}, "?category=food&page=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.params.query(); got != tt.want {
				t.Errorf("query() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProductsListDecodesMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("search"); got != "food" {
			t.Errorf("search = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "success",
			"message": "ok",
			"data": [{"id":"p1","name":"Cat Food","stock":12,"price":35000,
				"created_at":"2026-08-01T10:00:00Z",
				"brand":{"id":"b1","name":"Whiskers"},
				"category":{"id":"c1","name":"Food"}}],
			"metadata": {"page":1,"limit":10,"total":42,"totalPages":5}
		}`))
	}))
	defer server.Close()

	client, store := newTestClient(server.URL)
	store.Save("token-abc", testUser())

	products, meta, err := client.Products(context.Background(), ListParams{Search: "food"})
	if err != nil {
		t.Fatalf("Products() error = %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("want 1 product, got %d", len(products))
	}
	p := products[0]
	if p.Name != "Cat Food" || p.Stock != 12 || p.Brand.Name != "Whiskers" || p.Category.ID != "c1" {
		t.Errorf("unexpected product %+v", p)
	}
	if meta == nil || meta.Total != 42 || meta.TotalPages != 5 {
		t.Errorf("unexpected metadata %+v", meta)
	}
}

func TestCreateBrandPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/brands" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		writeEnvelope(w, http.StatusOK, "success", models.Brand{ID: "b1", Name: "Whiskers"})
	}))
	defer server.Close()

	client, store := newTestClient(server.URL)
	store.Save("token-abc", testUser())

	brand, err := client.CreateBrand(context.Background(), "Whiskers")
	if err != nil {
		t.Fatalf("CreateBrand() error = %v", err)
	}
	if brand.ID != "b1" {
		t.Errorf("brand ID = %q", brand.ID)
	}
}

func TestLowStockProductsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/low-stock" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("threshold"); got != "5" {
			t.Errorf("threshold = %q", got)
		}
		writeEnvelope(w, http.StatusOK, "success", []models.Product{{ID: "p1", Stock: 2}})
	}))
	defer server.Close()

	client, store := newTestClient(server.URL)
	store.Save("token-abc", testUser())

	products, err := client.LowStockProducts(context.Background(), 5)
	if err != nil {
		t.Fatalf("LowStockProducts() error = %v", err)
	}
	if len(products) != 1 || products[0].Stock != 2 {
		t.Errorf("unexpected products %+v", products)
	}
}

func TestTransactionDecodesBackendCasing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transactions/tx-1" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "success",
			"data": {
				"id": "tx-1",
				"PaymentMethod": "cash",
				"TotalPrice": 95000,
				"products": [{"id":"p1","quantity":2,"price":35000,"name":"Cat Food"}],
				"created_at": "2026-08-30 14:05"
			}
		}`))
	}))
	defer server.Close()

	client, store := newTestClient(server.URL)
	store.Save("token-abc", testUser())

	tx, err := client.Transaction(context.Background(), "tx-1")
	if err != nil {
		t.Fatalf("Transaction() error = %v", err)
	}
	if tx.PaymentMethod != "cash" || tx.TotalPrice != 95000 {
		t.Errorf("unexpected transaction %+v", tx)
	}
	if len(tx.Products) != 1 || tx.Products[0].Quantity != 2 {
		t.Errorf("unexpected lines %+v", tx.Products)
	}
}

func TestSalesReportQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("start_date") != "2026-08-01" || q.Get("end_date") != "2026-08-30" || q.Get("group_by") != "day" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		writeEnvelope(w, http.StatusOK, "success", models.SalesReport{
			Summary: models.SalesReportSummary{TotalRevenue: 500000, TotalTransactions: 12},
			Data:    []models.SalesReportRow{{Date: "2026-08-01", Revenue: 100000, Transactions: 3}},
		})
	}))
	defer server.Close()

	client, store := newTestClient(server.URL)
	store.Save("token-abc", testUser())

	report, err := client.SalesReport(context.Background(), "2026-08-01", "2026-08-30", "day")
	if err != nil {
		t.Fatalf("SalesReport() error = %v", err)
	}
	if report.Summary.TotalRevenue != 500000 || len(report.Data) != 1 {
		t.Errorf("unexpected report %+v", report)
	}
}
