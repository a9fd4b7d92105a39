// ABOUTME: Transaction endpoints for the cashier checkout flow
// ABOUTME: Creates transactions and fetches history with pagination

package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jagatix-comp/petshop-pos/internal/models"
)

const transactionsPath = "/transactions"

// TransactionItem is one product line in a checkout request.
type TransactionItem struct {
	ID       string  `json:"id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// CreateTransactionRequest is the checkout payload. Field casing follows the
// backend's transaction schema verbatim.
type CreateTransactionRequest struct {
	PaymentMethod string            `json:"PaymentMethod"`
	TotalPrice    float64           `json:"TotalPrice"`
	Products      []TransactionItem `json:"Products"`
}

// CreateTransaction records a completed checkout. The backend decrements
// stock for every product line as part of the same operation.
func (c *Client) CreateTransaction(ctx context.Context, req CreateTransactionRequest) (*models.Transaction, error) {
	tx, _, err := doEnvelope[models.Transaction](ctx, c, http.MethodPost, transactionsPath, req)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// Transactions lists transaction history, newest first.
func (c *Client) Transactions(ctx context.Context, page, limit int) ([]models.Transaction, *models.Metadata, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	endpoint := transactionsPath
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}
	return doEnvelope[[]models.Transaction](ctx, c, http.MethodGet, endpoint, nil)
}

// Transaction fetches a single transaction by ID.
func (c *Client) Transaction(ctx context.Context, id string) (*models.Transaction, error) {
	tx, _, err := doEnvelope[models.Transaction](ctx, c, http.MethodGet, transactionsPath+"/"+id, nil)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}
