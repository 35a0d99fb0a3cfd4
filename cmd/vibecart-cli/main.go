// Command vibecart-cli is a terminal front end for the vibecart API: it
// lists products, manages a per-user cart, and runs the mock checkout.
// Totals come from the server in USD; --inr converts for display only.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"vibecart/internal/currency"
	"vibecart/internal/services"
	"vibecart/pkg/client"
)

var (
	apiURL  string
	userID  int64
	showINR bool
)

func format(v float64) string {
	if showINR {
		return currency.FormatINR(v)
	}
	return currency.FormatUSD(v)
}

func api() *client.Client { return client.New(apiURL, userID) }

func main() {
	root := &cobra.Command{
		Use:           "vibecart-cli",
		Short:         "Terminal client for the vibecart API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&apiURL, "api", "http://localhost:4000", "API base URL")
	root.PersistentFlags().Int64Var(&userID, "user", 1, "user id to act as")
	root.PersistentFlags().BoolVar(&showINR, "inr", false, "display amounts in INR")

	products := &cobra.Command{
		Use:   "products",
		Short: "List the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := api().Products(cmd.Context())
			if err != nil {
				return err
			}
			for _, p := range ps {
				fmt.Printf("%4d  %-44s %s\n", p.ID, p.Name, format(p.Price))
			}
			return nil
		},
	}

	cart := &cobra.Command{
		Use:   "cart",
		Short: "Show the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			cv, err := api().Cart(cmd.Context())
			if err != nil {
				return err
			}
			for _, it := range cv.Items {
				fmt.Printf("%4d  %-36s x%-3d %s\n", it.ID, it.Name, it.Qty, format(it.Price*float64(it.Qty)))
			}
			fmt.Printf("total: %s\n", format(cv.Total))
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add <productId> <qty>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("bad productId: %w", err)
			}
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("bad qty: %w", err)
			}
			line, err := api().AddToCart(cmd.Context(), productID, qty)
			if err != nil {
				return err
			}
			fmt.Printf("line %d: product %d x%d\n", line.ID, line.ProductID, line.Qty)
			return nil
		},
	}

	rm := &cobra.Command{
		Use:   "rm <lineId>",
		Short: "Remove a cart line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("bad line id: %w", err)
			}
			if err := api().RemoveFromCart(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Println("removed")
			return nil
		},
	}

	var name, email string
	checkout := &cobra.Command{
		Use:   "checkout",
		Short: "Check out the current cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			cl := api()
			cv, err := cl.Cart(cmd.Context())
			if err != nil {
				return err
			}
			items := make([]services.CheckoutItem, 0, len(cv.Items))
			for _, it := range cv.Items {
				items = append(items, services.CheckoutItem{ProductID: it.ProductID, Qty: it.Qty})
			}
			receipt, err := cl.Checkout(cmd.Context(), items, name, email)
			if err != nil {
				return err
			}
			fmt.Printf("receipt %s\n  total: %s\n  at:    %s\n", receipt.Ref, format(receipt.Total), receipt.Timestamp)
			return nil
		},
	}
	checkout.Flags().StringVar(&name, "name", "", "customer name")
	checkout.Flags().StringVar(&email, "email", "", "customer email")

	root.AddCommand(products, cart, add, rm, checkout)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
