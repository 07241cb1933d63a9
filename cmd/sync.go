package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"booksync/core/catalog"
	"booksync/core/config"
	"booksync/core/database"
	"booksync/core/logger"
	"booksync/core/reconcile"
	"booksync/core/storage"
	"booksync/feature/bucket"
	"booksync/feature/library"
	"booksync/feature/shelf"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the sync command
	syncSource     string
	syncPath       string
	syncPrefix     string
	syncExtensions string
	syncOneFile    bool
	syncDryRun     bool
	yesConfirm     bool
)

// syncCmd reconciles the file-management catalog against the library database.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync book files into the library catalog (plan + optionally apply)",
	Long: `Sync reconciles the book files of a shelf directory or storage bucket
against the library metadata catalog.

Books are matched by normalized author and title, never by path. Files missing
from the library are added; library entries whose path drifted are repointed.
The run is idempotent: a second pass over an unchanged pair plans nothing.

Examples:
  # Plan only (dry-run) against the local shelf
  sync --source shelf --path ~/books --dry-run

  # Apply with interactive confirmation
  sync --source shelf --path ~/books

  # Sync the storage bucket, best format per work only, non-interactive
  sync --source bucket --onefile --yes

  # Restrict to specific formats
  sync --source shelf --path ~/books --ext epub,mobi`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncSource, "source", "", "File catalog to sync from: shelf or bucket (default from config)")
	syncCmd.Flags().StringVar(&syncPath, "path", "", "Shelf root directory (default from config)")
	syncCmd.Flags().StringVar(&syncPrefix, "prefix", "", "Bucket object key prefix (default from config)")
	syncCmd.Flags().StringVar(&syncExtensions, "ext", "", "Comma-separated extension filter, e.g. epub,mobi (empty = all book formats)")
	syncCmd.Flags().BoolVar(&syncOneFile, "onefile", false, "Keep only the best format per work")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Plan only, no library mutations")
	syncCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm library mutations (non-interactive)")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Flags override config defaults
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
	if !syncOneFile {
		syncOneFile = cfg.Sync.OneFile
	}

	extensions := catalog.ParseExtensions(syncExtensions)

	source, err := buildFileCatalog(cfg, syncSource, extensions, l)
	if err != nil {
		return err
	}

	db, err := database.Connect(cfg.Library)
	if err != nil {
		return fmt.Errorf("failed to connect to library database: %w", err)
	}
	target := library.NewProvider(db, l)

	opts := reconcile.Options{
		OneFile: syncOneFile,
		DryRun:  true,
		Logger:  l,
	}

	// Step 1: Plan (always runs, never mutates)
	l.Info("Planning sync", zap.String("source", source.Name()))
	plan := reconcile.RunSync(ctx, source, target, nil, opts)
	printSyncReport(l, plan)

	if syncDryRun {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	planned := plan.Skipped
	if planned == 0 {
		l.Info("Library is up to date. No actions required.")
		return nil
	}

	// Step 2: Apply (if confirmed)
	if !confirmLibraryMutation(planned) {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	opts.DryRun = false
	l.Info("Applying actions...", zap.Int("planned", planned))
	report := reconcile.RunSync(ctx, source, target, library.NewExecutor(db, l), opts)
	printSyncReport(l, report)

	if report.Failed > 0 {
		return fmt.Errorf("sync finished with %d failed actions", report.Failed)
	}
	return nil
}

// buildFileCatalog constructs the source catalog selected by name.
func buildFileCatalog(cfg *config.Config, name string, extensions []string, l *zap.Logger) (reconcile.Provider, error) {
	switch name {
	case "shelf":
		return shelf.NewProvider(syncPath, extensions, l), nil
	case "bucket":
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
		return bucket.NewProvider(client, cfg.Storage.Bucket, syncPrefix, extensions, l), nil
	default:
		return nil, fmt.Errorf("unknown source catalog %q (want shelf or bucket)", name)
	}
}

// printSyncReport prints a formatted sync report using logger.
func printSyncReport(l *zap.Logger, report *reconcile.SyncReport) {
	l.Info("Sync report",
		zap.String("run_id", report.RunID),
		zap.Int("scanned", report.Scanned),
		zap.Int("matched", report.Matched),
		zap.Int("missing", report.Missing),
		zap.Int("added", report.Added),
		zap.Int("updated", report.Updated),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed),
	)

	// Show sample of missing records (max 5 for logger)
	maxShow := 5
	if len(report.MissingRecords) < maxShow {
		maxShow = len(report.MissingRecords)
	}
	for i := 0; i < maxShow; i++ {
		r := report.MissingRecords[i]
		l.Info("Missing from library",
			zap.String("author", r.Author),
			zap.String("title", r.Title),
			zap.String("path", r.Path),
		)
	}
	if len(report.MissingRecords) > maxShow {
		l.Info("Additional missing records not shown", zap.Int("count", len(report.MissingRecords)-maxShow))
	}

	for _, skip := range report.FormatSkips {
		l.Info("Duplicate format skipped",
			zap.String("work", skip.WorkID),
			zap.String("selected", skip.SelectedPath),
			zap.String("skipped", skip.SkippedPath),
		)
	}

	for _, e := range report.Errors {
		l.Warn("Sync error", zap.String("error", e))
	}
}

// confirmLibraryMutation prompts the user for confirmation or uses --yes flag.
func confirmLibraryMutation(planned int) bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Printf("\n⚠️  Type 'yes' to apply %d library actions: ", planned)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(response)
	return response == "yes"
}
