// ABOUTME: In-memory cart for the cashier checkout flow
// ABOUTME: Stock-aware line management and checkout via the transactions endpoint

package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jagatix-comp/petshop-pos/internal/api"
	"github.com/jagatix-comp/petshop-pos/internal/models"
)

// Payment methods accepted at checkout.
const (
	PaymentCash     = "cash"
	PaymentQRIS     = "qris"
	PaymentTransfer = "transfer"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Item is one product line in the cart.
type Item struct {
	Product  models.Product
	Quantity int
}

// Subtotal is the line total for this item.
func (i Item) Subtotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}

// Cart accumulates items for a single checkout. Safe for use from the TUI's
// update loop and background commands.
type Cart struct {
	mu    sync.Mutex
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// Add puts quantity units of the product in the cart, accumulating onto an
// existing line. The combined quantity may not exceed known stock.
func (c *Cart) Add(product models.Product, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", quantity)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for idx, item := range c.items {
		if item.Product.ID == product.ID {
			if item.Quantity+quantity > product.Stock {
				return fmt.Errorf("%w: %s has %d in stock", ErrInsufficientStock, product.Name, product.Stock)
			}
			c.items[idx].Quantity += quantity
			return nil
		}
	}

	if quantity > product.Stock {
		return fmt.Errorf("%w: %s has %d in stock", ErrInsufficientStock, product.Name, product.Stock)
	}
	c.items = append(c.items, Item{Product: product, Quantity: quantity})
	return nil
}

// Remove drops the line for the given product. Unknown IDs are a no-op.
func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for idx, item := range c.items {
		if item.Product.ID == productID {
			c.items = append(c.items[:idx], c.items[idx+1:]...)
			return
		}
	}
}

// SetQuantity replaces a line's quantity. Zero or negative removes the line.
func (c *Cart) SetQuantity(productID string, quantity int) error {
	if quantity <= 0 {
		c.Remove(productID)
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for idx, item := range c.items {
		if item.Product.ID == productID {
			if quantity > item.Product.Stock {
				return fmt.Errorf("%w: %s has %d in stock", ErrInsufficientStock, item.Product.Name, item.Product.Stock)
			}
			c.items[idx].Quantity = quantity
			return nil
		}
	}
	return fmt.Errorf("product %s is not in the cart", productID)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a copy of the current lines.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// Total is the sum of all line subtotals.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, item := range c.items {
		total += item.Subtotal()
	}
	return total
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Checkout posts the cart as a transaction and clears it on success. The
// backend decrements stock; the cart is left untouched on failure so the
// cashier can retry.
func (c *Cart) Checkout(ctx context.Context, client *api.Client, paymentMethod string) (*models.Transaction, error) {
	items := c.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	req := api.CreateTransactionRequest{
		PaymentMethod: paymentMethod,
		TotalPrice:    c.Total(),
		Products:      make([]api.TransactionItem, 0, len(items)),
	}
	for _, item := range items {
		req.Products = append(req.Products, api.TransactionItem{
			ID:       item.Product.ID,
			Quantity: item.Quantity,
			Price:    item.Product.Price,
		})
	}

	tx, err := client.CreateTransaction(ctx, req)
	if err != nil {
		return nil, err
	}

	c.Clear()
	return tx, nil
}
