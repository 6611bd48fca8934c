// internal/cli/cart.go
package cli

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"lazzat-client/internal/api"
	"lazzat-client/internal/app"

	"github.com/spf13/cobra"
)

func newCartCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the shopping cart",
	}

	cmd.AddCommand(
		newCartAddCmd(a),
		newCartRemoveCmd(a),
		newCartQtyCmd(a),
		newCartShowCmd(a),
		newCartClearCmd(a),
	)

	return cmd
}

func newCartAddCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <food-id>",
		Short: "Add one unit of a food to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			foodID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid food id %q", args[0])
			}

			foods, err := a.Foods.List(cmd.Context(), api.ListParams{})
			if err != nil {
				return err
			}
			for _, f := range foods {
				if f.ID == foodID {
					if err := a.Cart.Add(f); err != nil {
						return err
					}
					fmt.Printf("Added %s (%d in cart)\n", f.Name, a.Cart.Count())
					return nil
				}
			}
			return fmt.Errorf("food %d not found in the catalog", foodID)
		},
	}
}

func newCartRemoveCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <food-id>",
		Short: "Remove a line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			foodID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid food id %q", args[0])
			}
			a.Cart.Remove(foodID)
			fmt.Printf("Removed; %d item(s) left\n", a.Cart.Count())
			return nil
		},
	}
}

func newCartQtyCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "qty <food-id> <quantity>",
		Short: "Set a line's quantity (0 removes it)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			foodID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid food id %q", args[0])
			}
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			a.Cart.UpdateQuantity(foodID, qty)
			fmt.Printf("Cart now holds %d item(s)\n", a.Cart.Count())
			return nil
		},
	}
}

func newCartShowCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the cart contents and total",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := a.Cart.Lines()
			if len(lines) == 0 {
				fmt.Println("Cart is empty")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPRICE\tQTY\tSUBTOTAL")
			for _, line := range lines {
				fmt.Fprintf(w, "%d\t%s\t%.2f\t%d\t%.2f\n",
					line.FoodID, line.Name, line.Price, line.Quantity, line.Subtotal())
			}
			w.Flush()
			fmt.Printf("Total: %.2f\n", a.Cart.TotalPrice())
			return nil
		},
	}
}

func newCartClearCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.Cart.Clear()
			fmt.Println("Cart cleared")
			return nil
		},
	}
}
