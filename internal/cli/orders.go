// internal/cli/orders.go
package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"lazzat-client/internal/api"
	"lazzat-client/internal/app"
	"lazzat-client/internal/domain/order"

	"github.com/spf13/cobra"
)

func newCheckoutCmd(a *app.App) *cobra.Command {
	var address, promo string

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Submit the cart as an order",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(a); err != nil {
				return err
			}

			resp, err := a.Checkout.Submit(cmd.Context(), address, promo)
			if err != nil {
				var apiErr *api.Error
				if errors.As(err, &apiErr) {
					if msg, ok := apiErr.FieldError("promo_code"); ok {
						return fmt.Errorf("promo code rejected: %s", msg)
					}
				}
				return err
			}

			fmt.Printf("Order #%d placed, total %.2f\n", resp.OrderID, resp.TotalPrice)
			if resp.Message != "" {
				fmt.Println(resp.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "delivery address")
	cmd.Flags().StringVar(&promo, "promo", "", "promo code")
	_ = cmd.MarkFlagRequired("address")

	return cmd
}

func newOrdersCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Show your orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(a); err != nil {
				return err
			}
			orders, err := a.Orders.Mine(cmd.Context())
			if err != nil {
				return err
			}
			printOrders(orders)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "detail <order-id>",
		Short: "Show one order with its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(a); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order id %q", args[0])
			}
			o, err := a.Orders.Detail(cmd.Context(), id)
			if err != nil {
				return err
			}
			printOrderDetail(o)
			return nil
		},
	})

	return cmd
}

func printOrders(orders []order.Order) {
	if len(orders) == 0 {
		fmt.Println("No orders yet")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tTOTAL\tADDRESS\tCREATED")
	for _, o := range orders {
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%s\t%s\n", o.ID, o.Status, o.TotalPrice, o.Address, o.CreatedAt)
	}
	w.Flush()
}

func printOrderDetail(o *order.Order) {
	fmt.Printf("Order #%d  status=%s  total=%.2f\n", o.ID, o.Status, o.TotalPrice)
	fmt.Printf("Deliver to: %s\n", o.Address)
	if o.PromoCode != "" {
		fmt.Printf("Promo: %s\n", o.PromoCode)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FOOD\tQTY\tPRICE")
	for _, item := range o.Items {
		fmt.Fprintf(w, "%s\t%d\t%.2f\n", item.FoodName, item.Quantity, item.Price)
	}
	w.Flush()
}
