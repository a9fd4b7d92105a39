// ABOUTME: Brand and category commands
// ABOUTME: Both are plain named records, so one command builder serves them

package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jagatix-comp/petshop-pos/internal/api"
	"github.com/jagatix-comp/petshop-pos/internal/models"
)

// namedRecord is the common projection of brands and categories.
type namedRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

// namedResourceOps adapts one resource's API methods for the shared commands.
type namedResourceOps struct {
	singular string
	plural   string
	list     func(ctx context.Context, app *appContext, params api.ListParams) ([]namedRecord, *models.Metadata, error)
	create   func(ctx context.Context, app *appContext, name string) (namedRecord, error)
	update   func(ctx context.Context, app *appContext, id, name string) (namedRecord, error)
	remove   func(ctx context.Context, app *appContext, id string) error
}

// newNamedResourceCommands builds list/add/rename/delete subcommands.
func newNamedResourceCommands(ops namedResourceOps) *cobra.Command {
	var (
		search string
		page   int
		limit  int
		name   string
	)

	parent := &cobra.Command{
		Use:   ops.plural,
		Short: "Manage " + ops.plural,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List " + ops.plural,
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

			records, meta, err := ops.list(ctx, app, api.ListParams{Search: search, Page: page, Limit: limit})
			if err != nil {
				return err
			}

			if jsonOutput {
				return printJSON(records)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCREATED")
			for _, r := range records {
				fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID, r.Name, r.CreatedAt)
			}
			w.Flush()
			printPageInfo(meta)
			return nil
		},
	}
	listCmd.Flags().StringVar(&search, "search", "", "Search term")
	listCmd.Flags().IntVar(&page, "page", 0, "Page number")
	listCmd.Flags().IntVar(&limit, "limit", 0, "Page size")

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a " + ops.singular,
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

			record, err := ops.create(ctx, app, args[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(record)
			}
			fmt.Printf("Created %s %s (%s)\n", ops.singular, record.Name, record.ID)
			return nil
		},
	}

	renameCmd := &cobra.Command{
		Use:   "rename <id>",
		Short: "Rename a " + ops.singular,
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

			record, err := ops.update(ctx, app, args[0], name)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(record)
			}
			fmt.Printf("Renamed %s to %s\n", ops.singular, record.Name)
			return nil
		},
	}
	renameCmd.Flags().StringVar(&name, "name", "", "New name")
	renameCmd.MarkFlagRequired("name")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a " + ops.singular,
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

			if err := ops.remove(ctx, app, args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted %s %s\n", ops.singular, args[0])
			return nil
		},
	}

	parent.AddCommand(listCmd, addCmd, renameCmd, deleteCmd)
	return parent
}

func init() {
	brands := namedResourceOps{
		singular: "brand",
		plural:   "brands",
		list: func(ctx context.Context, app *appContext, params api.ListParams) ([]namedRecord, *models.Metadata, error) {
			brands, meta, err := app.client.Brands(ctx, params)
			if err != nil {
				return nil, nil, err
			}
			records := make([]namedRecord, 0, len(brands))
			for _, b := range brands {
				records = append(records, namedRecord{ID: b.ID, Name: b.Name, CreatedAt: b.CreatedAt})
			}
			return records, meta, nil
		},
		create: func(ctx context.Context, app *appContext, name string) (namedRecord, error) {
			b, err := app.client.CreateBrand(ctx, name)
			if err != nil {
				return namedRecord{}, err
			}
			return namedRecord{ID: b.ID, Name: b.Name, CreatedAt: b.CreatedAt}, nil
		},
		update: func(ctx context.Context, app *appContext, id, name string) (namedRecord, error) {
			b, err := app.client.UpdateBrand(ctx, id, name)
			if err != nil {
				return namedRecord{}, err
			}
			return namedRecord{ID: b.ID, Name: b.Name, CreatedAt: b.CreatedAt}, nil
		},
		remove: func(ctx context.Context, app *appContext, id string) error {
			return app.client.DeleteBrand(ctx, id)
		},
	}

	categories := namedResourceOps{
		singular: "category",
		plural:   "categories",
		list: func(ctx context.Context, app *appContext, params api.ListParams) ([]namedRecord, *models.Metadata, error) {
			cats, meta, err := app.client.Categories(ctx, params)
			if err != nil {
				return nil, nil, err
			}
			records := make([]namedRecord, 0, len(cats))
			for _, c := range cats {
				records = append(records, namedRecord{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt})
			}
			return records, meta, nil
		},
		create: func(ctx context.Context, app *appContext, name string) (namedRecord, error) {
			c, err := app.client.CreateCategory(ctx, name)
			if err != nil {
				return namedRecord{}, err
			}
			return namedRecord{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}, nil
		},
		update: func(ctx context.Context, app *appContext, id, name string) (namedRecord, error) {
			c, err := app.client.UpdateCategory(ctx, id, name)
			if err != nil {
				return namedRecord{}, err
			}
			return namedRecord{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}, nil
		},
		remove: func(ctx context.Context, app *appContext, id string) error {
			return app.client.DeleteCategory(ctx, id)
		},
	}

	rootCmd.AddCommand(newNamedResourceCommands(brands))
	rootCmd.AddCommand(newNamedResourceCommands(categories))
}
