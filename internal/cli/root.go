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

	"github.com/spf13/cobra"
)

var globalConfig *Config

// rootCmd represents the base command. Running it with no subcommand
// builds the bundle, matching spec.md §6's "default: builds the bundle".
var rootCmd = &cobra.Command{
	Use:   "imagevault",
	Short: "imagevault - image-puzzle bundle generator",
	Long: `imagevault reads a global config, a set of source images, and a
verification key-pair file, and produces one self-contained HTML bundle
per configured language: per-level AES-GCM-wrapped private keys,
Shamir-split hint-unlock shares, and CSV-sourced hints, all embedded as
base64 JSON inside the language's HTML template.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(cmd, args)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	globalConfig = NewConfig()

	rootCmd.PersistentFlags().StringVar(&globalConfig.DataDir, "data-dir", globalConfig.DataDir,
		"directory containing data-global.json, data-keys.json, and source images")
	rootCmd.PersistentFlags().StringVar(&globalConfig.TemplateDir, "template-dir", globalConfig.TemplateDir,
		"directory containing index-<lang>.html templates")
	rootCmd.PersistentFlags().StringVar(&globalConfig.OutputDir, "output-dir", globalConfig.OutputDir,
		"directory to write generated index-<lang>.html bundles to")
	rootCmd.PersistentFlags().StringVar(&globalConfig.LogLevel, "log-level", globalConfig.LogLevel,
		"log verbosity (info, debug)")
	rootCmd.PersistentFlags().StringVar(&globalConfig.LogFormat, "log-format", globalConfig.LogFormat,
		"log output format (text, json)")

	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newGenerateKeysCmd())
}

// handleError prints a fatal error and exits non-zero, matching spec.md
// §6's "non-zero exit on any fatal error" contract.
func handleError(err error) {
	printer := NewPrinter("text", os.Stderr)
	_ = printer.PrintError(err)
	os.Exit(1)
}
