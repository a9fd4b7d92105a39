// ABOUTME: Product administration commands
// ABOUTME: List, add, update, delete and low-stock queries

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jagatix-comp/petshop-pos/internal/api"
	"github.com/jagatix-comp/petshop-pos/internal/models"
	"github.com/jagatix-comp/petshop-pos/internal/receipt"
)

var (
	productSearch   string
	productCategory string
	productPage     int
	productLimit    int

	productName       string
	productPrice      float64
	productStock      int
	productBrandID    string
	productCategoryID string

	lowStockThreshold int
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage products",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
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

		products, meta, err := app.client.Products(ctx, api.ListParams{
			Search:   productSearch,
			Category: productCategory,
			Page:     productPage,
			Limit:    productLimit,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(struct {
				Products []models.Product `json:"products"`
				Metadata *models.Metadata `json:"metadata,omitempty"`
			}{products, meta})
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPRICE\tSTOCK\tBRAND\tCATEGORY")
		for _, p := range products {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
				p.ID, p.Name, receipt.FormatIDR(p.Price), p.Stock, p.Brand.Name, p.Category.Name)
		}
		w.Flush()
		printPageInfo(meta)
		return nil
	},
}

var productsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product",
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

		product, err := app.client.CreateProduct(ctx, api.CreateProductRequest{
			Name:       productName,
			Price:      productPrice,
			Stock:      productStock,
			BrandID:    productBrandID,
			CategoryID: productCategoryID,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(product)
		}
		fmt.Printf("Created product %s (%s)\n", product.Name, product.ID)
		return nil
	},
}

var productsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a product",
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

		// Only explicitly-set flags go in the request.
		var req api.UpdateProductRequest
		if cmd.Flags().Changed("name") {
			req.Name = &productName
		}
		if cmd.Flags().Changed("price") {
			req.Price = &productPrice
		}
		if cmd.Flags().Changed("stock") {
			req.Stock = &productStock
		}
		if cmd.Flags().Changed("brand") {
			req.BrandID = &productBrandID
		}
		if cmd.Flags().Changed("category") {
			req.CategoryID = &productCategoryID
		}

		product, err := app.client.UpdateProduct(ctx, args[0], req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(product)
		}
		fmt.Printf("Updated product %s\n", product.Name)
		return nil
	},
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product",
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

		if err := app.client.DeleteProduct(ctx, args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted product %s\n", args[0])
		return nil
	},
}

var productsLowStockCmd = &cobra.Command{
	Use:   "low-stock",
	Short: "List products at or below the stock threshold",
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

		threshold := lowStockThreshold
		if !cmd.Flags().Changed("threshold") {
			threshold = app.cfg.LowStockThreshold
		}

		products, err := app.client.LowStockProducts(ctx, threshold)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(products)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSTOCK")
		for _, p := range products {
			fmt.Fprintf(w, "%s\t%s\t%d\n", p.ID, p.Name, p.Stock)
		}
		w.Flush()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(productsCmd)
	productsCmd.AddCommand(productsListCmd, productsAddCmd, productsUpdateCmd, productsDeleteCmd, productsLowStockCmd)

	productsListCmd.Flags().StringVar(&productSearch, "search", "", "Search term")
	productsListCmd.Flags().StringVar(&productCategory, "category", "", "Filter by category")
	productsListCmd.Flags().IntVar(&productPage, "page", 0, "Page number")
	productsListCmd.Flags().IntVar(&productLimit, "limit", 0, "Page size")

	for _, c := range []*cobra.Command{productsAddCmd, productsUpdateCmd} {
		c.Flags().StringVar(&productName, "name", "", "Product name")
		c.Flags().Float64Var(&productPrice, "price", 0, "Unit price")
		c.Flags().IntVar(&productStock, "stock", 0, "Stock count")
		c.Flags().StringVar(&productBrandID, "brand", "", "Brand ID")
		c.Flags().StringVar(&productCategoryID, "category", "", "Category ID")
	}
	productsAddCmd.MarkFlagRequired("name")
	productsAddCmd.MarkFlagRequired("price")

	productsLowStockCmd.Flags().IntVar(&lowStockThreshold, "threshold", 10, "Stock threshold")
}

// printPageInfo prints pagination info when the backend sent it.
func printPageInfo(meta *models.Metadata) {
	if meta == nil {
		return
	}
	fmt.Printf("page %d/%d (%d total)\n", meta.Page, meta.TotalPages, meta.Total)
}
