package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pagekraft/pagekraft/internal/adapters/outbound/config"
	"github.com/pagekraft/pagekraft/internal/adapters/outbound/cssparse"
	"github.com/pagekraft/pagekraft/internal/adapters/outbound/gitinfo"
	"github.com/pagekraft/pagekraft/internal/adapters/outbound/history"
	"github.com/pagekraft/pagekraft/internal/adapters/outbound/htmlparse"
	"github.com/pagekraft/pagekraft/internal/adapters/outbound/textreport"
	"github.com/pagekraft/pagekraft/internal/adapters/outbound/tui"
	"github.com/pagekraft/pagekraft/internal/application"
	"github.com/pagekraft/pagekraft/internal/domain"
)

func newAuditCmd() *cobra.Command {
	var (
		jsonOutput  bool
		textOutput  bool
		ciMode      bool
		minScore    float64
		badge       bool
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "audit [path]",
		Short: "Audit a static page for accessibility and code quality",
		Long:  "Parse a site directory's page and stylesheets and produce a categorized, scored audit report.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			svc := application.NewAuditService(
				htmlparse.New(),
				cssparse.New(),
				config.New(),
			)

			report, err := svc.AuditSite(absPath)
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			// Attach git commit hash if available
			gi := gitinfo.New()
			if hash, err := gi.CommitHash(absPath); err == nil {
				report.CommitHash = hash
			}

			// Save to history
			hist := history.New()
			entry := domain.AuditEntry{
				Timestamp:  time.Now().Format(time.RFC3339),
				CommitHash: report.CommitHash,
				Overall:    report.Overall,
				Grade:      report.Grade(),
			}
			_ = hist.Save(absPath, entry) // best-effort

			if showHistory {
				entries, err := hist.Load(absPath)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			switch {
			case jsonOutput:
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			case textOutput:
				fmt.Fprint(cmd.OutOrStdout(), textreport.Render(report))
			case badge:
				renderBadge(cmd, report)
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			if ciMode {
				// The config's min_score applies unless --min was given.
				if !cmd.Flags().Changed("min") {
					if cfg, err := config.New().Load(absPath); err == nil {
						minScore = cfg.MinScore
					}
				}
				if report.Overall < minScore {
					return fmt.Errorf("score %.1f is below minimum %.1f", report.Overall, minScore)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().BoolVar(&textOutput, "text", false, "Output report in the plain-text format")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if below --min")
	cmd.Flags().Float64Var(&minScore, "min", 0, "Minimum score for CI mode (defaults to min_score from .pagekraft.yaml)")
	cmd.Flags().BoolVar(&badge, "badge", false, "Output shields.io badge URL")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show audit history")

	return cmd
}

func renderJSON(cmd *cobra.Command, report *domain.AuditReport) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func renderBadge(cmd *cobra.Command, report *domain.AuditReport) {
	color := domain.BadgeColor(report.Overall)
	url := fmt.Sprintf("https://img.shields.io/badge/pagekraft-%.1f%%2F10-%s", report.Overall, color)
	fmt.Fprintln(cmd.OutOrStdout(), url)
}
