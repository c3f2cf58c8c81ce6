// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of imagevault.
//
// imagevault is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/imagevault/internal/config"
	"github.com/jeremyhahn/imagevault/pkg/bundle"
	"github.com/jeremyhahn/imagevault/pkg/hints"
	"github.com/jeremyhahn/imagevault/pkg/logging"
)

const defaultCSVURLTemplate = "https://sheets.example.com/hints/%s.csv"

func newBuildCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the per-language HTML bundles",
		Long: `build reads data-global.json, data-keys.json, and the source images
from --data-dir, derives the per-level cryptographic material and hint
shares, fetches the per-language CSV hint sheet, and writes one
index-<lang>.html per configured language into --output-dir.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runBuildWithDryRun(cmd, args, dryRun); err != nil {
				handleError(err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "run every stage except the final file write")
	cmd.Flags().StringVar(&globalConfig.CSVURLTemplate, "csv-url-template", defaultCSVURLTemplate,
		"fmt.Sprintf URL template (one %s verb for the language tag) used to fetch the hint sheet")

	return cmd
}

// runBuild is the default-action entry point (no subcommand given).
func runBuild(cmd *cobra.Command, args []string) error {
	if globalConfig.CSVURLTemplate == "" {
		globalConfig.CSVURLTemplate = defaultCSVURLTemplate
	}
	if err := runBuildWithDryRun(cmd, args, false); err != nil {
		handleError(err)
	}
	return nil
}

func runBuildWithDryRun(cmd *cobra.Command, args []string, dryRun bool) error {
	logger := logging.NewLogger(os.Stderr, logging.Format(globalConfig.LogFormat), globalConfig.LogLevel == "debug")

	cfgPath := filepath.Join(globalConfig.DataDir, "data-global.json")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	keysPath := filepath.Join(globalConfig.DataDir, "data-keys.json")
	keyRecords, err := config.LoadKeys(keysPath)
	if err != nil {
		return err
	}

	fetcher := hints.NewHTTPFetcher(globalConfig.CSVURLTemplate)
	templates := bundle.NewFileTemplateLoader(globalConfig.TemplateDir)

	builder := bundle.NewBuilder(cfg, keyRecords, globalConfig.DataDir, globalConfig.OutputDir, fetcher, templates, logger, dryRun)
	if err := builder.Build(cmd.Context()); err != nil {
		return err
	}

	printer := NewPrinter("text", os.Stdout)
	return printer.PrintBuildSummary(cfg.Languages, globalConfig.OutputDir, dryRun)
}
