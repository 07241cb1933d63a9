package cmd

import (
	"context"
	"fmt"

	"booksync/core/catalog"
	"booksync/core/config"
	"booksync/core/logger"
	"booksync/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// dedupeCmd reports which duplicate formats a one-file sync would drop.
var dedupeCmd = &cobra.Command{
	Use:   "dedupe",
	Short: "Report duplicate formats per work in a file catalog",
	Long: `Dedupe groups the files of a catalog by work and reports, for every
work held in more than one format, which file the format priority would keep
and which it would drop. Nothing is modified; use 'sync --onefile' to apply
the selection.`,
	RunE: runDedupe,
}

func init() {
	dedupeCmd.Flags().StringVar(&syncSource, "source", "", "File catalog to inspect: shelf or bucket (default from config)")
	dedupeCmd.Flags().StringVar(&syncPath, "path", "", "Shelf root directory (default from config)")
	dedupeCmd.Flags().StringVar(&syncPrefix, "prefix", "", "Bucket object key prefix (default from config)")
	dedupeCmd.Flags().StringVar(&syncExtensions, "ext", "", "Comma-separated extension filter, e.g. epub,mobi (empty = all book formats)")

	RootCmd.AddCommand(dedupeCmd)
}

func runDedupe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if syncSource == "" {
		syncSource = cfg.Sync.Source
	}
	if syncPath == "" {
		syncPath = cfg.Sync.ShelfRoot
	}
	if syncPrefix == "" {
		syncPrefix = cfg.Sync.BucketPrefix
	}
	if syncExtensions == "" {
		syncExtensions = cfg.Sync.Extensions
	}

	source, err := buildFileCatalog(cfg, syncSource, catalog.ParseExtensions(syncExtensions), l)
	if err != nil {
		return err
	}

	l.Info("Inspecting catalog", zap.String("source", source.Name()))
	listing, err := source.ListRecords(ctx)
	if err != nil {
		return fmt.Errorf("failed to list %s catalog: %w", source.Name(), err)
	}

	kept, skips := reconcile.DedupeOneFile(listing.Records, catalog.DefaultFormatPriority())

	l.Info("Dedupe report",
		zap.Int("files", len(listing.Records)),
		zap.Int("kept", len(kept)),
		zap.Int("duplicates", len(skips)),
	)

	for _, skip := range skips {
		l.Info("Duplicate format",
			zap.String("work", skip.WorkID),
			zap.String("keep", skip.SelectedPath),
			zap.String("drop", skip.SkippedPath),
		)
	}

	if len(skips) == 0 {
		l.Info("No duplicate formats found.")
	}

	return nil
}
