// Package cli wires the hackathon lifecycle commands.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stpnv0/HackathonLifecycle/internal/app"
	"github.com/stpnv0/HackathonLifecycle/internal/config"
	"github.com/stpnv0/HackathonLifecycle/internal/domain"
)

// Version is set at build time.
var Version = "dev"

var errReconcileFailures = errors.New("some hackathons were not reconciled")

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "hackathon_lifecycle",
		Short:        "Hackathon lifecycle service",
		Long:         "Derives hackathon phases from their stage windows and keeps the stored phase in sync.",
		SilenceUsage: true,
		RunE:         runServe,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API and the background reconciler",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "reconcile",
			Short: "Reconcile every hackathon once and exit",
			Long: `Reconcile every stored hackathon once and print a summary.
Exits with a non-zero status when any hackathon could not be reconciled.`,
			RunE: runReconcile,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending database migrations",
			RunE: func(_ *cobra.Command, _ []string) error {
				return app.Migrate(config.MustLoad())
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Run: func(cmd *cobra.Command, _ []string) {
				cmd.Println(Version)
			},
		},
	)

	return root
}

func runServe(_ *cobra.Command, _ []string) error {
	application, err := app.New(config.MustLoad())
	if err != nil {
		return fmt.Errorf("app init: %w", err)
	}

	if err = application.Run(); err != nil {
		return fmt.Errorf("app run: %w", err)
	}
	return nil
}

func runReconcile(cmd *cobra.Command, _ []string) error {
	application, err := app.New(config.MustLoad())
	if err != nil {
		return fmt.Errorf("app init: %w", err)
	}

	report, err := application.ReconcileOnce()
	if report != nil {
		printReport(cmd, report)
	}
	if err != nil {
		return fmt.Errorf("reconcile: %w", err)
	}
	if report.Failed > 0 {
		return errReconcileFailures
	}
	return nil
}

func printReport(cmd *cobra.Command, r *domain.ReconcileReport) {
	cmd.Printf("corrected: %d, unchanged: %d, failed: %d\n", r.Corrected, r.Unchanged, r.Failed)
	for _, res := range r.Results {
		cmd.Printf("  %s: %s -> %s\n", res.Slug, res.From, res.To)
	}
	for _, e := range r.Errors {
		cmd.Printf("  failed %s\n", e.Error())
	}
}
