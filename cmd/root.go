// ABOUTME: Root command for the petshop-pos CLI
// ABOUTME: Global flags, shared bootstrap and output helpers

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jagatix-comp/petshop-pos/internal/api"
	"github.com/jagatix-comp/petshop-pos/internal/config"
	"github.com/jagatix-comp/petshop-pos/internal/credentials"
	"github.com/jagatix-comp/petshop-pos/internal/session"
)

var jsonOutput bool

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "petshop-pos",
	Short: "Point-of-sale and inventory client for the pet-shop backend",
	Long: `petshop-pos is the terminal client for the pet-shop retail backend.

It handles cashier checkout, product/brand/category/user administration,
dashboards and reports, with the session persisted between runs.

Environment variables:
  PETSHOP_API_URL           Backend base URL (required)
  PETSHOP_TENANT            Tenant name sent on every request (required)
  PETSHOP_CREDENTIALS_FILE  Credential record path (default: user config dir)
  REQUEST_TIMEOUT           Per-request timeout in seconds (default: 30)
  REFRESH_INTERVAL          Token refresh poll interval in seconds (default: 240)

A .env file in the working directory is read first.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// appContext bundles the per-invocation object graph. Commands build one,
// use it, and shut it down; nothing is process-global.
type appContext struct {
	cfg     *config.Config
	store   credentials.Store
	client  *api.Client
	session *session.Manager
}

// newAppContext loads config and wires store, client and session manager.
func newAppContext() (*appContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	store := credentials.NewFileStore(cfg.CredentialsFile)
	client := api.New(cfg, store)
	mgr := session.NewManager(cfg, client, store)

	return &appContext{
		cfg:     cfg,
		store:   store,
		client:  client,
		session: mgr,
	}, nil
}

// requireAuth restores the persisted session and fails when none exists.
func (a *appContext) requireAuth(ctx context.Context) error {
	if err := a.session.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	if !a.session.IsAuthenticated() {
		return fmt.Errorf("not logged in; run `petshop-pos login` first")
	}
	return nil
}

func (a *appContext) shutdown() {
	a.session.Shutdown()
}

// commandContext returns a context cancelled on SIGINT/SIGTERM.
func commandContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
