// internal/cli/auth.go
package cli

import (
	"fmt"

	"lazzat-client/internal/app"

	"github.com/spf13/cobra"
)

func newLoginCmd(a *app.App) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the storefront",
		RunE: func(cmd *cobra.Command, args []string) error {
			res := a.Session.Login(cmd.Context(), username, password)
			if !res.Success {
				return fmt.Errorf("%s", res.Error)
			}
			ident := a.Session.Identity()
			fmt.Printf("Logged in as %s\n", ident.Username)
			if ident.IsAdmin {
				fmt.Println("Administrator account")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newRegisterCmd(a *app.App) *cobra.Command {
	var username, password, phone string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			res := a.Session.Register(cmd.Context(), username, password, phone)
			if !res.Success {
				return fmt.Errorf("%s", res.Error)
			}
			fmt.Printf("Registered and logged in as %s\n", a.Session.Identity().Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	cmd.Flags().StringVar(&phone, "phone", "", "contact phone number")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.Session.Logout()
			fmt.Println("Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ident := a.Session.Identity()
			if ident == nil {
				fmt.Println("Not logged in")
				return nil
			}
			fmt.Printf("%s (user id %d)\n", ident.Username, ident.UserID)
			if ident.IsAdmin {
				fmt.Println("Administrator account")
			}
			return nil
		},
	}
}
