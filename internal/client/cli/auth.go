package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/courtside/courtside/internal/client/client"
	"github.com/courtside/courtside/internal/tokenx"
)

func (a *App) newSignupCmd() *cobra.Command {
	var req client.SignupRequest

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.promptIfEmpty(cmd, &req.Email, "email", "Email:"); err != nil {
				return err
			}
			if err := a.promptIfEmpty(cmd, &req.Role, "role", "Role (Coach or Player):"); err != nil {
				return err
			}

			password, err := GetPassword(a.reader, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			req.Password = password

			res, err := a.client.Signup(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s), id %s\n", res.Message, res.User.Email, res.User.Role, res.User.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "Email (prompted for when omitted)")
	cmd.Flags().StringVar(&req.Role, "role", "", "Coach or Player (prompted for when omitted)")
	cmd.Flags().StringVar(&req.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&req.LastName, "last-name", "", "Last name")

	return cmd
}

func (a *App) newLoginCmd() *cobra.Command {
	var req client.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and save the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.promptIfEmpty(cmd, &req.Email, "email", "Email:"); err != nil {
				return err
			}

			password, err := GetPassword(a.reader, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			req.Password = password

			res, err := a.client.Login(cmd.Context(), req)
			if err != nil {
				return err
			}

			if err := saveToken(a.config.TokenFile, res.Token); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", res.User.Email, res.User.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "Email (prompted for when omitted)")
	cmd.Flags().StringVar(&req.Role, "role", "", "Expected role; login fails if the account has another")

	return cmd
}

func (a *App) newWhoamiCmd() *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show who the saved token belongs to",
		Long: `Without --verify the saved token is decoded locally and its signature is
NOT checked: the output is informational only. With --verify the server
checks the token.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := loadToken(a.config.TokenFile)
			if err != nil {
				return err
			}

			if verify {
				me, err := a.client.Me(cmd.Context(), token)
				if err != nil {
					if errors.Is(err, client.ErrUnauthorized) {
						return fmt.Errorf("saved token rejected by server: %w", err)
					}
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), displayName(me.User.FirstName, me.User.ID, me.User.Role))
				return nil
			}

			claims, err := tokenx.DecodeUnverified(token)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), displayName(claims.FirstName, claims.UserID, claims.Role))
			fmt.Fprintln(cmd.ErrOrStderr(), "(decoded locally, signature not verified)")
			return nil
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "Ask the server to verify the token")
	return cmd
}

func (a *App) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := removeToken(a.config.TokenFile); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func (a *App) newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.Health(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Status)
			return nil
		},
	}
}

func displayName(firstName, id, role string) string {
	name := firstName
	if name == "" {
		name = id
	}
	return fmt.Sprintf("%s (%s)", name, role)
}

// promptIfEmpty asks for a field the user did not pass as a flag.
func (a *App) promptIfEmpty(cmd *cobra.Command, dst *string, field, prompt string) error {
	if *dst != "" {
		return nil
	}
	v, err := GetSimpleText(a.reader, prompt, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("read %s: %w", field, err)
	}
	if v == "" {
		return fmt.Errorf("%s is required", field)
	}
	*dst = v
	return nil
}
