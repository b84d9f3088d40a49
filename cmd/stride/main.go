// Package main provides the stride CLI, a thin front end over the local
// task/habit store. It owns the connection lifecycle: the store is opened
// before a subcommand runs and closed after it finishes.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stride-app/stride/internal/config"
	"github.com/stride-app/stride/internal/store"
)

var (
	// flagConfig is set by the --config flag.
	flagConfig string

	// flagDB overrides the configured database path.
	flagDB string

	// cfg and db are initialized by the root PersistentPreRunE and shared
	// by all subcommands.
	cfg *config.Config
	db  *store.SQLiteStore
)

var rootCmd = &cobra.Command{
	Use:   "stride",
	Short: "Stride is a local task and habit tracker",
	Long: `Stride tracks tasks, habits, and roadmap groups in a local SQLite
database. Tasks carry priorities, due dates, subtasks and reference links;
habits generate recurring occurrence tasks inside their groups.`,
	SilenceUsage:      true,
	PersistentPreRunE: openStore,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if db != nil {
			return db.Close()
		}
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openStore(cmd *cobra.Command, args []string) error {
	path := flagConfig
	if path == "" {
		path = config.DefaultConfigPath()
	}

	var err error
	cfg, err = config.Load(path)
	if err != nil {
		return err
	}

	dbPath := cfg.DBPath
	if flagDB != "" {
		dbPath = flagDB
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	db, err = store.NewSQLiteStore(dbPath)
	if err != nil {
		return fmt.Errorf("opening store at %s: %w", dbPath, err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ~/.config/stride/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "database file (overrides config)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(undoneCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(subtaskCmd)
	rootCmd.AddCommand(groupCmd)
	rootCmd.AddCommand(overviewCmd)
	rootCmd.AddCommand(importCmd)
}
