// internal/cli/admin.go
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"lazzat-client/internal/api"
	"lazzat-client/internal/app"
	"lazzat-client/internal/domain/food"
	"lazzat-client/internal/domain/order"

	"github.com/spf13/cobra"
)

func newAdminCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Catalog and order administration",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return requireAdmin(a)
		},
	}

	foods := &cobra.Command{Use: "foods", Short: "Manage the catalog"}
	foods.AddCommand(
		newAdminFoodsListCmd(a),
		newAdminFoodsCreateCmd(a),
		newAdminFoodsUpdateCmd(a),
		newAdminFoodsDeleteCmd(a),
	)

	orders := &cobra.Command{Use: "orders", Short: "Manage orders"}
	orders.AddCommand(
		newAdminOrdersListCmd(a),
		newAdminOrdersStatusCmd(a),
	)

	cmd.AddCommand(foods, orders)
	return cmd
}

func newAdminFoodsListCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the catalog including unavailable foods",
		RunE: func(cmd *cobra.Command, args []string) error {
			foods, err := a.Foods.AdminList(cmd.Context(), api.ListParams{})
			if err != nil {
				return err
			}
			printFoods(foods)
			return nil
		},
	}
}

func foodFormFlags(cmd *cobra.Command, name, price, category, image *string, available *bool) {
	cmd.Flags().StringVar(name, "name", "", "food name")
	cmd.Flags().StringVar(price, "price", "", "decimal price, e.g. 12.50")
	cmd.Flags().StringVar(category, "category", "", "fastfood|national|drink|dessert")
	cmd.Flags().StringVar(image, "image", "", "path to an image file")
	cmd.Flags().BoolVar(available, "available", true, "whether the food can be ordered")
}

func buildFoodForm(cmd *cobra.Command, name, price, category, image string, available bool) (api.FoodForm, func(), error) {
	form := api.FoodForm{
		Name:     name,
		Price:    price,
		Category: food.Category(category),
	}
	if cmd.Flags().Changed("available") {
		form.Available = &available
	}

	cleanup := func() {}
	if image != "" {
		f, err := os.Open(image)
		if err != nil {
			return form, cleanup, fmt.Errorf("open image: %w", err)
		}
		form.Image = f
		form.ImageName = filepath.Base(image)
		cleanup = func() { f.Close() }
	}
	return form, cleanup, nil
}

func newAdminFoodsCreateCmd(a *app.App) *cobra.Command {
	var name, price, category, image string
	var available bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a food to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			form, cleanup, err := buildFoodForm(cmd, name, price, category, image, available)
			if err != nil {
				return err
			}
			defer cleanup()

			created, err := a.Foods.Create(cmd.Context(), form)
			if err != nil {
				return err
			}
			fmt.Printf("Created %s (id %d)\n", created.Name, created.ID)
			return nil
		},
	}

	foodFormFlags(cmd, &name, &price, &category, &image, &available)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func newAdminFoodsUpdateCmd(a *app.App) *cobra.Command {
	var name, price, category, image string
	var available bool

	cmd := &cobra.Command{
		Use:   "update <food-id>",
		Short: "Update catalog fields; unset flags are left unchanged",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid food id %q", args[0])
			}

			form, cleanup, err := buildFoodForm(cmd, name, price, category, image, available)
			if err != nil {
				return err
			}
			defer cleanup()

			updated, err := a.Foods.Update(cmd.Context(), id, form)
			if err != nil {
				return err
			}
			fmt.Printf("Updated %s (id %d)\n", updated.Name, updated.ID)
			return nil
		},
	}

	foodFormFlags(cmd, &name, &price, &category, &image, &available)
	return cmd
}

func newAdminFoodsDeleteCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <food-id>",
		Short: "Remove a food from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid food id %q", args[0])
			}
			if err := a.Foods.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted food %d\n", id)
			return nil
		},
	}
}

func newAdminOrdersListCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := a.Orders.All(cmd.Context())
			if err != nil {
				return err
			}
			printOrders(orders)
			return nil
		},
	}
}

func newAdminOrdersStatusCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <order-id> <new|preparing|delivered>",
		Short: "Move an order through its lifecycle",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order id %q", args[0])
			}
			updated, err := a.Orders.UpdateStatus(cmd.Context(), id, order.Status(args[1]))
			if err != nil {
				return err
			}
			fmt.Printf("Order #%d is now %s\n", updated.ID, updated.Status)
			return nil
		},
	}
}
