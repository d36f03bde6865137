package cmd

import (
	"errors"
	"fmt"

	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/utils"

	"github.com/spf13/cobra"
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create a superuser account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		username, _ := cmd.Flags().GetString("username")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.Close()

		users := usecase.NewUserService(rt.repo, rt.config, rt.logger)
		return createAdmin(cmd, users, username, email, password)
	},
}

func init() {
	createAdminCmd.Flags().String("username", "admin", "admin username")
	createAdminCmd.Flags().String("email", "admin@example.com", "admin email")
	createAdminCmd.Flags().String("password", "admin1234", "admin password")
}

// createAdmin reports a taken username or email as a command error.
func createAdmin(cmd *cobra.Command, users usecase.UserService, username, email, password string) error {
	if errs := utils.ValidateStruct(adminInput{Username: username, Email: email, Password: password}); len(errs) > 0 {
		return errs
	}

	_, err := users.CreateAdmin(cmd.Context(), username, email, password)
	switch {
	case errors.Is(err, usecase.ErrUsernameTaken):
		return fmt.Errorf("Username `%s` already taken.", username)
	case errors.Is(err, usecase.ErrEmailTaken):
		return fmt.Errorf("Email `%s` already taken.", email)
	case err != nil:
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Admin `%s` successfully created!\n", username)
	return nil
}

type adminInput struct {
	Username string `json:"username" validate:"required,max=150,username"`
	Email    string `json:"email" validate:"required,max=127,email"`
	Password string `json:"password" validate:"required"`
}
