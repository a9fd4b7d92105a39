// ABOUTME: Dashboard command
// ABOUTME: Shows the aggregated store numbers for a day

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jagatix-comp/petshop-pos/internal/receipt"
)

var dashboardDate string

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show dashboard stats",
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

		stats, err := app.client.DashboardStats(ctx, dashboardDate)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(stats)
		}

		fmt.Printf("Products:           %d\n", stats.TotalProducts)
		fmt.Printf("Transactions today: %d\n", stats.TodayTransactions)
		fmt.Printf("Revenue today:      %s\n", receipt.FormatIDR(stats.TodayRevenue))
		fmt.Printf("Low stock items:    %d\n", stats.LowStockCount)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().StringVar(&dashboardDate, "date", "", "Date (YYYY-MM-DD, default today)")
}
