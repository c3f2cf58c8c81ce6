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

// Config holds the global CLI flags shared by every subcommand.
type Config struct {
	// DataDir holds data-global.json, data-keys.json, and the source
	// images (<i>.png, <i>_thumb.png).
	DataDir string

	// TemplateDir holds the per-language index-<lang>.html templates.
	TemplateDir string

	// OutputDir is where the rendered per-language HTML bundles are written.
	OutputDir string

	// CSVURLTemplate is an fmt.Sprintf template with a single %s verb for
	// the language tag, used to fetch the per-language hint sheet.
	CSVURLTemplate string

	// LogLevel selects slog's verbosity: "info" or "debug".
	LogLevel string

	// LogFormat selects the logging.Format: "text" or "json".
	LogFormat string
}

// NewConfig returns a Config populated with the defaults matching spec §6's
// fixed filesystem layout.
func NewConfig() *Config {
	return &Config{
		DataDir:     "data",
		TemplateDir: "base-html",
		OutputDir:   "generated-html",
		LogLevel:    "info",
		LogFormat:   "text",
	}
}
