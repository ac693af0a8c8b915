package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/quarterdeckhq/quarterdeck/internal/config"
)

const minTokenLength = 8

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage the API access token",
	Long: `Manage the token consoles and API clients authenticate with.

Only a bcrypt hash is stored in the config file; the token itself is never
written to disk. A running daemon re-reads the hash on every request, so
'token set' and 'token clear' take effect immediately.`,
}

var tokenSetCmd = &cobra.Command{
	Use:   "set <token>",
	Short: "Set the access token",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenSet,
}

var tokenClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the access token (open access)",
	RunE:  runTokenClear,
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.AddCommand(tokenSetCmd)
	tokenCmd.AddCommand(tokenClearCmd)
}

func runTokenSet(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	token := args[0]
	if len(token) < minTokenLength {
		return fmt.Errorf("token must be at least %d characters", minTokenLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash token: %w", err)
	}

	err = app.Manager.Update(func(c *config.Config) {
		c.Server.AuthTokenHash = string(hash)
	})
	if err != nil {
		return fmt.Errorf("save token hash: %w", err)
	}

	fmt.Println("Token updated. Clients must now authenticate.")
	return nil
}

func runTokenClear(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	err := app.Manager.Update(func(c *config.Config) {
		c.Server.AuthTokenHash = ""
	})
	if err != nil {
		return fmt.Errorf("clear token hash: %w", err)
	}

	fmt.Println("Token cleared. The API now accepts unauthenticated requests.")
	return nil
}
