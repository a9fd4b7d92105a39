// ABOUTME: Whoami command
// ABOUTME: Shows the cached profile of the current session

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session's user",
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

		user := app.session.CurrentUser()
		if jsonOutput {
			return printJSON(user)
		}

		fmt.Printf("%s (%s)\n", user.Name, user.Username)
		fmt.Printf("Role:   %s\n", user.Role)
		if user.PhoneNumber != "" {
			fmt.Printf("Phone:  %s\n", user.PhoneNumber)
		}
		if user.Tenant.Name != "" {
			fmt.Printf("Tenant: %s (%s)\n", user.Tenant.Name, user.Tenant.Location)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
