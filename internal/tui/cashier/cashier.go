// ABOUTME: Cashier view: product search, cart management and checkout
// ABOUTME: Bubbletea model backing the interactive point-of-sale screen

package cashier

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jagatix-comp/petshop-pos/internal/api"
	"github.com/jagatix-comp/petshop-pos/internal/cart"
	"github.com/jagatix-comp/petshop-pos/internal/models"
	"github.com/jagatix-comp/petshop-pos/internal/receipt"
	"github.com/jagatix-comp/petshop-pos/internal/tui/styles"
)

// searchLimit caps how many matches one search pulls in.
const searchLimit = 25

type state int

const (
	stateBrowse state = iota
	statePayment
	stateReceipt
)

type productsMsg struct {
	products []models.Product
	err      error
}

type checkoutMsg struct {
	tx  *models.Transaction
	err error
}

// Model is the cashier screen.
type Model struct {
	client *api.Client
	cart   *cart.Cart

	search  textinput.Model
	spin    spinner.Model
	loading bool

	products []models.Product
	cursor   int

	state   state
	status  string
	receipt string

	width  int
	height int
}

// New creates a cashier model bound to the API client.
func New(client *api.Client) Model {
	search := textinput.New()
	search.Placeholder = "search products"
	search.CharLimit = 64
	search.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	return Model{
		client: client,
		cart:   cart.New(),
		search: search,
		spin:   spin,
		state:  stateBrowse,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.searchProducts(""))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case productsMsg:
		m.loading = false
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.products = msg.products
		m.cursor = 0
		m.status = ""
		return m, nil

	case checkoutMsg:
		m.loading = false
		if msg.err != nil {
			m.status = msg.err.Error()
			m.state = stateBrowse
			return m, nil
		}
		m.receipt = receipt.Render(msg.tx, 0)
		m.state = stateReceipt
		// Stock changed server-side; re-run the last search.
		return m, m.searchProducts(m.search.Value())

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.state {
	case stateReceipt:
		m.state = stateBrowse
		m.receipt = ""
		return m, nil

	case statePayment:
		switch msg.String() {
		case "1":
			return m.checkout(cart.PaymentCash)
		case "2":
			return m.checkout(cart.PaymentQRIS)
		case "3":
			return m.checkout(cart.PaymentTransfer)
		case "esc":
			m.state = stateBrowse
			return m, nil
		}
		return m, nil
	}

	// stateBrowse
	if m.search.Focused() {
		switch msg.Type {
		case tea.KeyEnter:
			m.search.Blur()
			m.loading = true
			return m, tea.Batch(m.spin.Tick, m.searchProducts(m.search.Value()))
		case tea.KeyEsc:
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.search.Focus()
		return m, textinput.Blink
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.products)-1 {
			m.cursor++
		}
	case "a", "enter":
		if m.cursor < len(m.products) {
			if err := m.cart.Add(m.products[m.cursor], 1); err != nil {
				m.status = err.Error()
			} else {
				m.status = ""
			}
		}
	case "d":
		if m.cursor < len(m.products) {
			m.cart.Remove(m.products[m.cursor].ID)
		}
	case "x":
		m.cart.Clear()
	case "c":
		if m.cart.Len() == 0 {
			m.status = "cart is empty"
			return m, nil
		}
		m.state = statePayment
	}
	return m, nil
}

func (m Model) checkout(paymentMethod string) (tea.Model, tea.Cmd) {
	m.loading = true
	m.status = ""
	client := m.client
	crt := m.cart
	return m, tea.Batch(m.spin.Tick, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), client.Timeout())
		defer cancel()
		tx, err := crt.Checkout(ctx, client, paymentMethod)
		return checkoutMsg{tx: tx, err: err}
	})
}

func (m Model) searchProducts(query string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), client.Timeout())
		defer cancel()
		products, _, err := client.Products(ctx, api.ListParams{Search: query, Limit: searchLimit})
		return productsMsg{products: products, err: err}
	}
}

func (m Model) View() string {
	switch m.state {
	case stateReceipt:
		return styles.Panel.Render(m.receipt) + "\n" +
			styles.Help.Render("press any key to continue")
	case statePayment:
		lines := []string{
			styles.Title.Render("Payment"),
			fmt.Sprintf("Total: %s", receipt.FormatIDR(m.cart.Total())),
			"",
			"  [1] cash",
			"  [2] qris",
			"  [3] transfer",
			"",
			styles.Help.Render("esc to go back"),
		}
		return styles.ActivePanel.Render(strings.Join(lines, "\n"))
	}

	left := m.productsPane()
	right := m.cartPane()
	panes := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	var footer string
	if m.loading {
		footer = m.spin.View() + " working..."
	} else if m.status != "" {
		footer = styles.StatusError.Render(m.status)
	} else {
		footer = styles.Help.Render("/ search · a add · d drop · x clear · c checkout · q quit")
	}

	return m.search.View() + "\n" + panes + "\n" + footer
}

func (m Model) productsPane() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Products"))
	b.WriteString("\n")

	if len(m.products) == 0 {
		b.WriteString(styles.Subtitle.Render("no matches"))
	}
	for idx, p := range m.products {
		line := fmt.Sprintf("%-24s %10s  stock %d", truncate(p.Name, 24), receipt.FormatIDR(p.Price), p.Stock)
		switch {
		case idx == m.cursor:
			line = styles.Selected.Render(line)
		case p.Stock == 0:
			line = styles.StatusError.Render(line)
		case p.Stock <= 10:
			line = styles.LowStock.Render(line)
		}
		b.WriteString(line + "\n")
	}

	pane := styles.Panel
	if !m.search.Focused() {
		pane = styles.ActivePanel
	}
	return pane.Render(b.String())
}

func (m Model) cartPane() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Cart"))
	b.WriteString("\n")

	items := m.cart.Items()
	if len(items) == 0 {
		b.WriteString(styles.Subtitle.Render("empty"))
	}
	for _, item := range items {
		b.WriteString(fmt.Sprintf("%-20s x%-3d %10s\n",
			truncate(item.Product.Name, 20), item.Quantity, receipt.FormatIDR(item.Subtotal())))
	}
	b.WriteString("\n")
	b.WriteString(styles.StatusOK.Render(fmt.Sprintf("Total %s", receipt.FormatIDR(m.cart.Total()))))

	return styles.Panel.Render(b.String())
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "~"
}
