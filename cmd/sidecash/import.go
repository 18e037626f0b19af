package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/sidecash/sidecash/internal/ingest"
	"github.com/sidecash/sidecash/internal/model"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import transactions from CSV files",
		Long: `Import transactions from delimited-text exports.

Expected columns: ` + ingest.CSVHeader + `

Amounts are non-negative; the direction column carries the sign of the
cash flow.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without saving")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	files, err := expandGlobs(args)
	if err != nil {
		return err
	}

	var all []model.Transaction
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}

		txns, parseErr := ingest.ReadCSV(f)
		_ = f.Close()
		if parseErr != nil {
			return fmt.Errorf("%s: %w", filepath.Base(path), parseErr)
		}

		slog.Info("Parsed CSV file", "file", filepath.Base(path), "transactions", len(txns))
		all = append(all, txns...)
	}

	return saveImported(cmd, all, dryRun)
}

func importOFXCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import transactions from OFX/QFX files",
		Long:  `Import transactions from OFX or QFX (Quicken) files exported from your bank.`,
		Args:  cobra.MinimumNArgs(1),
		RunE:  runImportOFX,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without saving")

	return cmd
}

func runImportOFX(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	files, err := expandGlobs(args)
	if err != nil {
		return err
	}

	parser := ingest.NewOFXParser()

	var all []model.Transaction
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}

		txns, parseErr := parser.Parse(f)
		_ = f.Close()
		if parseErr != nil {
			return fmt.Errorf("%s: %w", filepath.Base(path), parseErr)
		}

		all = append(all, txns...)
	}

	return saveImported(cmd, all, dryRun)
}

// saveImported deduplicates and persists a parsed batch.
func saveImported(cmd *cobra.Command, txns []model.Transaction, dryRun bool) error {
	if len(txns) == 0 {
		slog.Warn("No transactions found in any file")
		return nil
	}

	// Dedupe within the batch by content hash; the database enforces the
	// same constraint across imports.
	seen := make(map[string]bool, len(txns))
	var unique []model.Transaction
	for _, txn := range txns {
		if txn.Hash == "" {
			txn.Hash = txn.GenerateHash()
		}
		if !seen[txn.Hash] {
			seen[txn.Hash] = true
			unique = append(unique, txn)
		}
	}

	if dryRun {
		fmt.Printf("Would import %d transactions (%d duplicates in batch)\n", len(unique), len(txns)-len(unique))
		return nil
	}

	store, err := openStorage(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	bar := progressbar.Default(int64(len(unique)), "importing")

	saved := 0
	const batchSize = 200
	for start := 0; start < len(unique); start += batchSize {
		end := start + batchSize
		if end > len(unique) {
			end = len(unique)
		}

		n, err := store.SaveTransactions(cmd.Context(), unique[start:end])
		if err != nil {
			return fmt.Errorf("failed to save transactions: %w", err)
		}
		saved += n
		_ = bar.Add(end - start)
	}

	slog.Info("Import complete",
		"parsed", len(txns),
		"unique", len(unique),
		"saved", saved,
		"already_known", len(unique)-saved)

	return nil
}

// expandGlobs resolves glob patterns and bare paths into a file list.
func expandGlobs(args []string) ([]string, error) {
	var files []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, statErr := os.Stat(pattern); statErr == nil {
				files = append(files, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			files = append(files, matches...)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no files found to import")
	}

	return files, nil
}
