// ABOUTME: Report commands
// ABOUTME: Sales revenue over time and product performance summaries

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jagatix-comp/petshop-pos/internal/receipt"
)

var (
	reportStart   string
	reportEnd     string
	reportGroupBy string
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Sales and product reports",
}

var reportsSalesCmd = &cobra.Command{
	Use:   "sales",
	Short: "Revenue and transaction counts over time",
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

		if reportGroupBy != "" && reportGroupBy != "day" && reportGroupBy != "month" {
			return fmt.Errorf("--group-by must be \"day\" or \"month\"")
		}

		report, err := app.client.SalesReport(ctx, reportStart, reportEnd, reportGroupBy)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(report)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tTRANSACTIONS\tREVENUE")
		for _, row := range report.Data {
			fmt.Fprintf(w, "%s\t%d\t%s\n", row.Date, row.Transactions, receipt.FormatIDR(row.Revenue))
		}
		w.Flush()
		fmt.Printf("Total: %s over %d transactions\n",
			receipt.FormatIDR(report.Summary.TotalRevenue), report.Summary.TotalTransactions)
		return nil
	},
}

var reportsProductsCmd = &cobra.Command{
	Use:   "products",
	Short: "Best sellers and revenue by category",
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

		report, err := app.client.ProductsReport(ctx, reportStart, reportEnd)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(report)
		}

		fmt.Println("Best selling:")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tQTY\tREVENUE")
		for _, row := range report.BestSelling {
			fmt.Fprintf(w, "%s\t%d\t%s\n", row.Name, row.Quantity, receipt.FormatIDR(row.Revenue))
		}
		w.Flush()

		fmt.Println("\nRevenue by category:")
		w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CATEGORY\tREVENUE")
		for _, row := range report.RevenueByCategory {
			fmt.Fprintf(w, "%s\t%s\n", row.Category, receipt.FormatIDR(row.Revenue))
		}
		w.Flush()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportsCmd)
	reportsCmd.AddCommand(reportsSalesCmd, reportsProductsCmd)

	for _, c := range []*cobra.Command{reportsSalesCmd, reportsProductsCmd} {
		c.Flags().StringVar(&reportStart, "start", "", "Start date (YYYY-MM-DD)")
		c.Flags().StringVar(&reportEnd, "end", "", "End date (YYYY-MM-DD)")
	}
	reportsSalesCmd.Flags().StringVar(&reportGroupBy, "group-by", "day", "Bucket size (day or month)")
}
