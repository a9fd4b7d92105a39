// ABOUTME: Cashier command launching the interactive checkout TUI
// ABOUTME: Requires an authenticated session before entering the screen

package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jagatix-comp/petshop-pos/internal/tui/cashier"
)

var cashierCmd = &cobra.Command{
	Use:   "cashier",
	Short: "Open the interactive cashier screen",
	Long: `Open the interactive cashier screen.

Search products, build a cart and check out. The session's background token
refresh keeps long shifts logged in.`,
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

		program := tea.NewProgram(cashier.New(app.client), tea.WithAltScreen(), tea.WithContext(ctx))
		_, err = program.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(cashierCmd)
}
