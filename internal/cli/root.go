// internal/cli/root.go
package cli

import (
	"fmt"

	"lazzat-client/internal/app"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Each command maps to one page of the
// storefront: auth, menu, cart, checkout, orders and the admin screens.
func NewRootCmd(a *app.App) *cobra.Command {
	root := &cobra.Command{
		Use:           "lazzat",
		Short:         "Lazzat food ordering storefront",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(a),
		newRegisterCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newMenuCmd(a),
		newCartCmd(a),
		newCheckoutCmd(a),
		newOrdersCmd(a),
		newAdminCmd(a),
	)

	return root
}

// requireLogin guards commands that only make sense with a session.
func requireLogin(a *app.App) error {
	if a.Session.Identity() == nil {
		return fmt.Errorf("not logged in; run `lazzat login` first")
	}
	return nil
}

// requireAdmin gates the admin screens. UI gating only - the backend
// enforces authorization on every request regardless.
func requireAdmin(a *app.App) error {
	if err := requireLogin(a); err != nil {
		return err
	}
	if !a.Session.IsAdmin() {
		return fmt.Errorf("admin commands require an administrator account")
	}
	return nil
}
