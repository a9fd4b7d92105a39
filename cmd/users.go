// ABOUTME: User administration commands
// ABOUTME: Account listing, creation, update and removal

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jagatix-comp/petshop-pos/internal/api"
	"github.com/jagatix-comp/petshop-pos/internal/models"
)

var (
	userSearch string
	userPage   int
	userLimit  int

	userName     string
	userUsername string
	userPassword string
	userPhone    string
	userRole     string
	userTenantID string
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage user accounts",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List user accounts",
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

		users, meta, err := app.client.Users(ctx, api.ListParams{Search: userSearch, Page: userPage, Limit: userLimit})
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(users)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tUSERNAME\tROLE\tPHONE\tTENANT")
		for _, u := range users {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				u.ID, u.Name, u.Username, u.Role, u.PhoneNumber, u.Tenant.Name)
		}
		w.Flush()
		printPageInfo(meta)
		return nil
	},
}

var usersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a user account",
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

		if userRole != models.RoleAdmin && userRole != models.RoleSuperAdmin {
			return fmt.Errorf("role must be %q or %q", models.RoleAdmin, models.RoleSuperAdmin)
		}
		if userRole != models.RoleSuperAdmin && userTenantID == "" {
			return fmt.Errorf("--tenant is required for role %q", userRole)
		}

		user, err := app.client.CreateUser(ctx, api.CreateUserRequest{
			Name:            userName,
			Username:        userUsername,
			Password:        userPassword,
			ConfirmPassword: userPassword,
			PhoneNumber:     userPhone,
			Role:            userRole,
			TenantID:        userTenantID,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(user)
		}
		fmt.Printf("Created user %s (%s)\n", user.Username, user.ID)
		return nil
	},
}

var usersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a user account",
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

		var req api.UpdateUserRequest
		if cmd.Flags().Changed("name") {
			req.Name = &userName
		}
		if cmd.Flags().Changed("phone") {
			req.PhoneNumber = &userPhone
		}
		if cmd.Flags().Changed("role") {
			req.Role = &userRole
		}
		if cmd.Flags().Changed("password") {
			req.Password = &userPassword
		}
		if cmd.Flags().Changed("tenant") {
			req.TenantID = &userTenantID
		}

		user, err := app.client.UpdateUser(ctx, args[0], req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(user)
		}
		fmt.Printf("Updated user %s\n", user.Username)
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user account",
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

		if err := app.client.DeleteUser(ctx, args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted user %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersListCmd, usersAddCmd, usersUpdateCmd, usersDeleteCmd)

	usersListCmd.Flags().StringVar(&userSearch, "search", "", "Search term")
	usersListCmd.Flags().IntVar(&userPage, "page", 0, "Page number")
	usersListCmd.Flags().IntVar(&userLimit, "limit", 0, "Page size")

	for _, c := range []*cobra.Command{usersAddCmd, usersUpdateCmd} {
		c.Flags().StringVar(&userName, "name", "", "Display name")
		c.Flags().StringVar(&userPhone, "phone", "", "Phone number")
		c.Flags().StringVar(&userRole, "role", models.RoleAdmin, "Role (admin or super_admin)")
		c.Flags().StringVar(&userPassword, "password", "", "Password")
		c.Flags().StringVar(&userTenantID, "tenant", "", "Tenant ID")
	}
	usersAddCmd.Flags().StringVar(&userUsername, "username", "", "Login username")
	usersAddCmd.MarkFlagRequired("name")
	usersAddCmd.MarkFlagRequired("username")
	usersAddCmd.MarkFlagRequired("password")
}
