package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"fittrack/internal/auth"
	"fittrack/internal/model"
)

// Login command flags.
var (
	loginFlagEmail    string
	loginFlagPassword string
)

// loginCmd performs the demo sign-in. It gates nothing; tracking works
// without it.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with the demo account",
	Long: `Sign in with the demo account. The password is prompted when the
--password flag is omitted.

Demo credentials: demo@example.com / password`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	RunE:  runLogout,
}

func init() {
	loginCmd.Flags().StringVarP(&loginFlagEmail, "email", "e", "", "Account email")
	loginCmd.Flags().StringVarP(&loginFlagPassword, "password", "p", "", "Account password (prompted if omitted)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	email := strings.TrimSpace(loginFlagEmail)
	if email == "" {
		fmt.Fprint(os.Stderr, "Email: ")
		fmt.Fscanln(os.Stdin, &email)
	}

	password := loginFlagPassword
	if password == "" {
		fmt.Fprint(os.Stderr, "Password: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return err
		}
		password = string(raw)
	}

	if err := auth.Verify(email, password); err != nil {
		return err
	}

	session := model.Session{Email: auth.DemoEmail, LoggedIn: time.Now()}
	if err := ctx.SessionRepo.Set(session); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{"status": "logged_in", "email": session.Email})
	}
	ctx.CLIFormatter().Success("Signed in as " + session.Email)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	if err := ctx.SessionRepo.Clear(); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{"status": "logged_out"})
	}
	ctx.CLIFormatter().Success("Signed out")
	return nil
}
