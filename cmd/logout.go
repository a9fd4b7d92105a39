// ABOUTME: Logout command
// ABOUTME: Invalidates the server session best-effort and clears local credentials

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		app, err := newAppContext()
		if err != nil {
			return err
		}
		defer app.shutdown()

		if err := app.session.Initialize(ctx); err != nil {
			return err
		}

		// Safe to call when already logged out.
		app.session.Logout(ctx)
		fmt.Println("Logged out.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
