// Package main is the entry point for the param-vault-cli application.
// It initializes the root command and registers the override inspection
// sub-commands for the CLI, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/param-vault/param-vault/cmd/param-vault-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "param-vault-cli",
		Short: "Parameter override inspection CLI tool",
		Long: `param-vault-cli is a command-line tool for inspecting and maintaining
persisted parameter overrides. It operates on the override store directly,
listing, reading, writing and deleting admin-level and user-level records.

The database connection is configured through environment variables:
- PARAMVAULT_DATABASE_TYPE (postgres or sqlite, defaults to sqlite)
- PARAMVAULT_DATABASE_DSN
- PARAMVAULT_DATABASE_DB_NAME (postgres only)`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitOverrideCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize override commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
