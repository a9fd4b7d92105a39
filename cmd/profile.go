// ABOUTME: Profile commands
// ABOUTME: Update the current user's details and rotate the password

package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/jagatix-comp/petshop-pos/internal/api"
)

var (
	profileName  string
	profilePhone string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile",
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update name or phone number",
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

		current := app.session.CurrentUser()
		req := api.UpdateProfileRequest{
			Name:        current.Name,
			PhoneNumber: current.PhoneNumber,
		}
		if cmd.Flags().Changed("name") {
			req.Name = profileName
		}
		if cmd.Flags().Changed("phone") {
			req.PhoneNumber = profilePhone
		}

		user, err := app.client.UpdateProfile(ctx, req)
		if err != nil {
			return err
		}

		// Keep the stored profile in sync with the server's record.
		if creds, loadErr := app.store.Load(); loadErr == nil && creds != nil {
			if saveErr := app.store.Save(creds.AccessToken, user); saveErr != nil {
				return saveErr
			}
		}

		if jsonOutput {
			return printJSON(user)
		}
		fmt.Printf("Profile updated: %s\n", user.Name)
		return nil
	},
}

var profilePasswordCmd = &cobra.Command{
	Use:   "change-password",
	Short: "Rotate your password",
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

		var oldPassword, newPassword, confirmPassword string
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Current password").EchoMode(huh.EchoModePassword).Value(&oldPassword),
			huh.NewInput().Title("New password").EchoMode(huh.EchoModePassword).Value(&newPassword),
			huh.NewInput().Title("Confirm new password").EchoMode(huh.EchoModePassword).Value(&confirmPassword),
		)).WithTheme(huh.ThemeBase())
		if err := form.Run(); err != nil {
			return err
		}

		if newPassword != confirmPassword {
			return fmt.Errorf("passwords do not match")
		}

		if err := app.client.ChangePassword(ctx, oldPassword, newPassword, confirmPassword); err != nil {
			return err
		}
		fmt.Println("Password changed.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileUpdateCmd, profilePasswordCmd)

	profileUpdateCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileUpdateCmd.Flags().StringVar(&profilePhone, "phone", "", "Phone number")
}
