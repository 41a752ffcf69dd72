package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/maniksharma/vitalog/internal/api"
	"github.com/maniksharma/vitalog/internal/cli/formatter"
)

func newLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				if !app.interactive() {
					return fmt.Errorf("--email and --password are required in non-interactive mode")
				}
				form := themedForm(huh.NewGroup(
					huh.NewInput().Title("Email").Value(&email).Validate(validateNonEmpty),
					huh.NewInput().Title("Password").Value(&password).
						EchoMode(huh.EchoModePassword).Validate(validateNonEmpty),
				))
				if err := form.Run(); err != nil {
					return err
				}
			}

			sess, err := app.Auth.Login(context.Background(), email, password)
			if err != nil {
				return err
			}

			fmt.Printf("Logged in as %s (%s)\n", formatter.Bold(sess.User.Name), sess.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")

	return cmd
}

func newSignupCmd(app *App) *cobra.Command {
	var req api.SignupRequest
	var diseases []string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Email == "" || req.Password == "" || req.Name == "" {
				if !app.interactive() {
					return fmt.Errorf("--email, --password and --name are required in non-interactive mode")
				}
				form := themedForm(huh.NewGroup(
					huh.NewInput().Title("Name").Value(&req.Name).Validate(validateNonEmpty),
					huh.NewInput().Title("Email").Value(&req.Email).Validate(validateNonEmpty),
					huh.NewInput().Title("Password").Value(&req.Password).
						EchoMode(huh.EchoModePassword).Validate(validateNonEmpty),
				))
				if err := form.Run(); err != nil {
					return err
				}
			}
			req.Diseases = diseases

			sess, err := app.Auth.Signup(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Printf("Welcome, %s. You are logged in.\n", formatter.Bold(sess.User.Name))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "Account password")
	cmd.Flags().StringVar(&req.Name, "name", "", "Display name")
	cmd.Flags().IntVar(&req.Age, "age", 0, "Age in years")
	cmd.Flags().StringVar(&req.Gender, "gender", "", "Gender")
	cmd.Flags().StringSliceVar(&diseases, "condition", nil, "Managed condition (repeatable)")

	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.Logout(context.Background()); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, err := app.Auth.Current(ctx)
			if err != nil {
				return err
			}

			u := sess.User
			if refresh {
				fresh, err := app.Auth.Refresh(ctx)
				if err != nil {
					return err
				}
				u = *fresh
			}

			fmt.Printf("%s <%s>\n", formatter.Bold(u.Name), u.Email)
			if len(u.Diseases) > 0 {
				fmt.Println(formatter.Dim("Managing: " + strings.Join(u.Diseases, ", ")))
			}
			fmt.Println(formatter.Dim("Session saved " + formatter.HumanTimestamp(sess.SavedAt)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Fetch the profile from the server instead of the stored copy")

	return cmd
}
