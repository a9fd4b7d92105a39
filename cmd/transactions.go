// ABOUTME: Transaction history commands
// ABOUTME: Lists past checkouts and renders a single transaction as a receipt

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jagatix-comp/petshop-pos/internal/receipt"
)

var (
	txPage  int
	txLimit int
)

var transactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "Browse transaction history",
}

var transactionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		app, err := newAppContext()
		if err != nil {
			return err
		}
		defer app.shutdown()
		if err := app.requireAuth(ctx); err != nil {
			return err
		}

		transactions, meta, err := app.client.Transactions(ctx, txPage, txLimit)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(transactions)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tCASHIER\tPAYMENT\tITEMS\tTOTAL")
		for _, tx := range transactions {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
				tx.ID, tx.CreatedAt, tx.User.Name, tx.PaymentMethod, len(tx.Products), receipt.FormatIDR(tx.TotalPrice))
		}
		w.Flush()
		printPageInfo(meta)
		return nil
	},
}

var transactionsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one transaction as a receipt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		app, err := newAppContext()
		if err != nil {
			return err
		}
		defer app.shutdown()
		if err := app.requireAuth(ctx); err != nil {
			return err
		}

		tx, err := app.client.Transaction(ctx, args[0])
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(tx)
		}
		fmt.Print(receipt.Render(tx, 0))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(transactionsCmd)
	transactionsCmd.AddCommand(transactionsListCmd, transactionsShowCmd)

	transactionsListCmd.Flags().IntVar(&txPage, "page", 0, "Page number")
	transactionsListCmd.Flags().IntVar(&txLimit, "limit", 0, "Page size")
}
