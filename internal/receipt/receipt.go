// ABOUTME: Plain-text receipt rendering for completed transactions
// ABOUTME: Formats IDR amounts and lays out 32-column receipts for line printers

package receipt

import (
	"fmt"
	"strings"
	"time"

	"github.com/jagatix-comp/petshop-pos/internal/models"
)

// width matches the 32-column paper of the store's thermal printers. The
// byte-level printer protocol is the device driver's business; this package
// only produces the text.
const width = 32

// FormatIDR renders an amount as Indonesian rupiah with dot thousands
// separators and no decimals, e.g. 1500000 -> "Rp 1.500.000".
func FormatIDR(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := fmt.Sprintf("%.0f", amount)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	if negative {
		return "-Rp " + b.String()
	}
	return "Rp " + b.String()
}

// Render lays out a completed transaction as receipt text. Cash and change
// lines appear only for cash payments where the tendered amount is known.
func Render(tx *models.Transaction, cashReceived float64) string {
	var b strings.Builder

	writeCentered(&b, tx.Tenant.Name)
	if tx.Tenant.Location != "" {
		writeCentered(&b, tx.Tenant.Location)
	}
	b.WriteString(strings.Repeat("=", width) + "\n")

	when := tx.CreatedAt
	if when == "" {
		when = time.Now().Format("2006-01-02 15:04")
	}
	writeKV(&b, "Date", when)
	writeKV(&b, "Cashier", tx.User.Name)
	writeKV(&b, "Receipt", shortID(tx.ID))
	b.WriteString(strings.Repeat("-", width) + "\n")

	for _, line := range tx.Products {
		name := line.Name
		if name == "" {
			name = line.ID
		}
		b.WriteString(truncate(name, width) + "\n")
		qty := fmt.Sprintf("  %d x %s", line.Quantity, FormatIDR(line.Price))
		subtotal := FormatIDR(line.Price * float64(line.Quantity))
		writeSpread(&b, qty, subtotal)
	}

	b.WriteString(strings.Repeat("-", width) + "\n")
	writeSpread(&b, "TOTAL", FormatIDR(tx.TotalPrice))
	writeSpread(&b, "Payment", tx.PaymentMethod)
	if strings.EqualFold(tx.PaymentMethod, "cash") && cashReceived > 0 {
		writeSpread(&b, "Cash", FormatIDR(cashReceived))
		writeSpread(&b, "Change", FormatIDR(cashReceived-tx.TotalPrice))
	}
	b.WriteString(strings.Repeat("=", width) + "\n")
	writeCentered(&b, "Terima kasih!")

	return b.String()
}

func writeCentered(b *strings.Builder, text string) {
	text = truncate(text, width)
	pad := (width - len(text)) / 2
	if pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(text + "\n")
}

func writeKV(b *strings.Builder, key, value string) {
	b.WriteString(truncate(key+": "+value, width) + "\n")
}

// writeSpread puts left and right on one line with the gap padded, wrapping
// to two lines when they cannot fit.
func writeSpread(b *strings.Builder, left, right string) {
	gap := width - len(left) - len(right)
	if gap < 1 {
		b.WriteString(truncate(left, width) + "\n")
		gap = width - len(right)
		if gap < 0 {
			gap = 0
		}
		b.WriteString(strings.Repeat(" ", gap) + right + "\n")
		return
	}
	b.WriteString(left + strings.Repeat(" ", gap) + right + "\n")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "~"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
