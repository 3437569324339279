package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/killallgit/jamjot-api/internal/services/auth"
)

// tokenCmd issues bearer tokens for local use
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token",
	Long: `Issue an HS256 bearer token for a catalog user, signed with auth.jwt_secret.

Example:
  jamjot-api token --user smedjan --name "Smedjan"
  jamjot-api token --user smedjan --ttl 1h`,
	RunE: runToken,
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().String("user", "", "catalog user id (token subject)")
	tokenCmd.Flags().String("name", "", "display name claim")
	tokenCmd.Flags().Duration("ttl", 0, "token lifetime (defaults to auth.token_ttl)")
	_ = tokenCmd.MarkFlagRequired("user")
}

func runToken(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	userID, _ := cmd.Flags().GetString("user")
	name, _ := cmd.Flags().GetString("name")
	ttl, _ := cmd.Flags().GetDuration("ttl")
	if ttl <= 0 {
		ttl = cfg.Auth.TokenTTL
	}

	tokens, err := auth.NewService(cfg.Auth.JWTSecret, "")
	if err != nil {
		return fmt.Errorf("auth.jwt_secret is required to issue tokens: %w", err)
	}

	token, err := tokens.IssueToken(userID, name, ttl)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
