// internal/cli/menu.go
package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"lazzat-client/internal/api"
	"lazzat-client/internal/app"
	"lazzat-client/internal/domain/food"

	"github.com/spf13/cobra"
)

func newMenuCmd(a *app.App) *cobra.Command {
	var category, search string

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Browse the food catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			foods, err := a.Foods.List(cmd.Context(), api.ListParams{
				Category: food.Category(category),
				Search:   search,
			})
			if err != nil {
				return err
			}
			printFoods(foods)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "filter by category (fastfood|national|drink|dessert)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "search by name")

	return cmd
}

func printFoods(foods []food.Food) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tAVAILABLE")
	for _, f := range foods {
		availability := "yes"
		if !f.Available {
			availability = "no"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%s\n", f.ID, f.Name, f.Category, f.Price, availability)
	}
	w.Flush()
}
