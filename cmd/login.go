// ABOUTME: Login command with interactive credential prompt
// ABOUTME: Establishes and persists a session against the backend

package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the backend",
	Long: `Log in to the backend and persist the session locally.

Prompts for credentials when --username/--password are not given. Logging in
while a session exists replaces it.`,
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

		username, password := loginUsername, loginPassword
		if username == "" || password == "" {
			if err := promptCredentials(&username, &password); err != nil {
				return err
			}
		}

		ok, err := app.session.Login(ctx, username, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
		if !ok {
			return fmt.Errorf("invalid username or password")
		}

		user := app.session.CurrentUser()
		fmt.Printf("Logged in as %s (%s) @ %s\n", user.Name, user.Role, app.cfg.TenantName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password (prompted when omitted)")
}

// promptCredentials asks for whichever of username/password is missing.
func promptCredentials(username, password *string) error {
	var fields []huh.Field
	if *username == "" {
		fields = append(fields, huh.NewInput().Title("Username").Value(username))
	}
	if *password == "" {
		fields = append(fields, huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(password))
	}

	form := huh.NewForm(huh.NewGroup(fields...)).WithTheme(huh.ThemeBase())
	return form.Run()
}
