// Command bank_admin provisions back-office credentials for the bank statements API.
//
//	bank_admin new-key                 print a fresh API key and its ADMIN_API_KEY_HASH
//	bank_admin hash-key KEY            print the hash of an existing key
//	bank_admin token --operator NAME   print a JWT signed with JWT_SECRET
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/golder/bank_statements_api/internal/platform/config"
	"github.com/golder/bank_statements_api/internal/utils"
	"github.com/spf13/pflag"
)

const apiKeyBytes = 32

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: bank_admin new-key | hash-key KEY | token --operator NAME [--ttl 12h]")
	}

	switch args[0] {
	case "new-key":
		key, err := utils.GenerateAPIKey(apiKeyBytes)
		if err != nil {
			return err
		}
		hash, err := utils.HashAPIKey(key)
		if err != nil {
			return fmt.Errorf("failed to hash key: %w", err)
		}
		fmt.Fprintf(out, "API key:            %s\nADMIN_API_KEY_HASH: %s\n", key, hash)
		return nil

	case "hash-key":
		if len(args) != 2 || args[1] == "" {
			return fmt.Errorf("usage: bank_admin hash-key KEY")
		}
		hash, err := utils.HashAPIKey(args[1])
		if err != nil {
			return fmt.Errorf("failed to hash key: %w", err)
		}
		fmt.Fprintln(out, hash)
		return nil

	case "token":
		fs := pflag.NewFlagSet("token", pflag.ContinueOnError)
		operator := fs.String("operator", "", "operator id recorded as created_by/last_updated_by")
		ttl := fs.Duration("ttl", 12*time.Hour, "token lifetime")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		token, err := utils.IssueOperatorToken(*operator, cfg.JWTSecret, *ttl)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, token)
		return nil
	}

	return fmt.Errorf("unknown command %q", args[0])
}
