package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"storefront/cmd"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/core/application/usecases/commands"

	"github.com/spf13/cobra"
)

var migrateUploadsApply bool

var migrateUploadsCmd = &cobra.Command{
	Use:   "migrate-uploads",
	Short: "Import legacy screenshot files into their orders",
	Long: `Scan the uploads directory for payment screenshots written by older releases and
attach each file to the orders that reference it. Without --apply nothing is written.`,
	RunE: runMigrateUploads,
}

func init() {
	migrateUploadsCmd.Flags().BoolVar(&migrateUploadsApply, "apply", false, "write the screenshots to the database")
}

func runMigrateUploads(c *cobra.Command, _ []string) error {
	rt, err := newBootstrap()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(rt.cfg.DSN())
	if err != nil {
		return err
	}
	defer func() { _ = postgres.Close(db) }()

	app := cmd.NewCompositionRoot(rt.cfg, db, rt.logger)
	if err := app.Storage().Check(ctx); err != nil {
		return fmt.Errorf("database not ready: %w", err)
	}

	handler := app.CreateMigrateLegacyScreenshotsCommandHandler()
	entries, err := handler.Handle(ctx, commands.NewMigrateLegacyScreenshotsCommand(migrateUploadsApply))
	if err != nil {
		return err
	}

	out := c.OutOrStdout()
	var failed int
	for _, entry := range entries {
		switch {
		case entry.Err != nil:
			failed++
			fmt.Fprintf(out, "FAIL  %s: %v\n", entry.Filename, entry.Err)
		case len(entry.OrderIDs) == 0:
			fmt.Fprintf(out, "SKIP  %s: no order references it\n", entry.Filename)
		case entry.Applied:
			fmt.Fprintf(out, "DONE  %s (%s) -> %s\n", entry.Filename, entry.MIME, strings.Join(entry.OrderIDs, ", "))
		default:
			fmt.Fprintf(out, "PLAN  %s (%s) -> %s\n", entry.Filename, entry.MIME, strings.Join(entry.OrderIDs, ", "))
		}
	}

	fmt.Fprintf(out, "%d file(s) scanned, %d failed\n", len(entries), failed)
	if !migrateUploadsApply && len(entries) > 0 {
		fmt.Fprintln(out, "dry run: re-run with --apply to write changes")
	}
	if failed > 0 {
		return fmt.Errorf("%d file(s) could not be migrated", failed)
	}
	return nil
}
