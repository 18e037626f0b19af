package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sidecash/sidecash/internal/rules"
	"github.com/sidecash/sidecash/internal/storage"
	"github.com/sidecash/sidecash/internal/tax"
)

const flagDateFormat = "2006-01-02"

// openStorage opens (and migrates) the transaction database.
func openStorage(cmd *cobra.Command) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".local", "share", "sidecash", "sidecash.db")
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	if err := store.Migrate(cmd.Context()); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// loadRuleSet returns the configured rules file, or the built-in tables.
func loadRuleSet() (*rules.RuleSet, error) {
	path := viper.GetString("rules.file")
	if path == "" {
		return rules.DefaultRuleSet(), nil
	}
	return rules.Load(path)
}

// loadTaxConfig resolves the tax tables for a year, preferring an explicit
// table file over the built-in constants.
func loadTaxConfig(year int, tablePath string) (tax.YearConfig, error) {
	if tablePath != "" {
		return tax.LoadConfig(tablePath)
	}
	return tax.ForYear(year)
}

// parseDateFlag parses an optional YYYY-MM-DD flag value.
func parseDateFlag(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(flagDateFormat, value)
	if err != nil {
		return nil, fmt.Errorf("expected YYYY-MM-DD, got %q", value)
	}
	return &t, nil
}
