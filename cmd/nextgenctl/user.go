package main

import (
	"fmt"

	"github.com/nextgencars/backend/internal/application"
	"github.com/nextgencars/backend/internal/domain/user"
	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage staff accounts",
}

var newUser user.CreateUserInput

// userCreateCmd bypasses the role check so the first admin can be created
var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a staff account",
	Example: `  nextgenctl user create --username chef --email chef@nextgen-cars.de \
      --password 'change-me-now' --role admin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		repos, err := connect()
		if err != nil {
			return err
		}
		u, err := application.NewUserService(repos).Register(cmd.Context(), 0, newUser)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %s user %q (id %d)\n", u.Role, u.Username, u.UserID)
		return nil
	},
}

func init() {
	f := userCreateCmd.Flags()
	f.StringVar(&newUser.Username, "username", "", "Login name")
	f.StringVar(&newUser.Email, "email", "", "Email address")
	f.StringVar(&newUser.Password, "password", "", "Initial password (min 8 characters)")
	f.StringVar(&newUser.Role, "role", string(user.RoleMechanic), "admin, frontdesk or mechanic")
	_ = userCreateCmd.MarkFlagRequired("username")
	_ = userCreateCmd.MarkFlagRequired("email")
	_ = userCreateCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userCreateCmd)
}
