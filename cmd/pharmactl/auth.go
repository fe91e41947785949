package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rxdeskhq/pharmaclient"
)

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, logger, cleanup, err := newComponents(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if email == "" {
				email, err = promptLine(cmd, "Email: ")
				if err != nil {
					return err
				}
			}
			if password == "" {
				password, err = promptLine(cmd, "Password: ")
				if err != nil {
					return err
				}
			}

			user, err := client.Login(cmd.Context(), pharmaclient.LoginPayload{
				Email:    email,
				Password: password,
			})
			if err != nil {
				logger.Debug("login failed", zap.Error(err))
				return err
			}

			role := ""
			if user.RoleName != nil {
				role = *user.RoleName
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", user.Username, role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, cleanup, err := newComponents(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			// The local session is cleared even when the backend call
			// fails; only report the error.
			if err := client.Logout(cmd.Context()); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Backend logout failed (local session cleared): %v\n", err)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, cleanup, err := newComponents(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			user, err := client.CurrentUser(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Username: %s\n", user.Username)
			fmt.Fprintf(out, "Email:    %s\n", user.Email)
			if user.RoleName != nil {
				fmt.Fprintf(out, "Role:     %s\n", *user.RoleName)
			}
			if perms := client.Session().Permissions(); len(perms) > 0 {
				fmt.Fprintf(out, "Permissions: %s\n", strings.Join(perms, ", "))
			}
			return nil
		},
	}
}

func promptLine(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
