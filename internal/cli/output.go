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
	"encoding/json"
	"fmt"
	"io"
)

// OutputFormat selects how Printer renders a result.
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
)

// Printer writes build/key-generation results to an io.Writer in the
// requested format.
type Printer struct {
	format OutputFormat
	writer io.Writer
}

// NewPrinter creates a new Printer.
func NewPrinter(format string, writer io.Writer) *Printer {
	return &Printer{format: OutputFormat(format), writer: writer}
}

// PrintBuildSummary reports which language bundles were written.
func (p *Printer) PrintBuildSummary(languages []string, outputDir string, dryRun bool) error {
	if p.format == OutputFormatJSON {
		return p.printJSON(map[string]interface{}{
			"languages": languages,
			"outputDir": outputDir,
			"dryRun":    dryRun,
		})
	}
	if dryRun {
		fmt.Fprintf(p.writer, "dry run: would have written %d language bundle(s) to %s\n", len(languages), outputDir)
		return nil
	}
	fmt.Fprintf(p.writer, "wrote %d language bundle(s) to %s\n", len(languages), outputDir)
	return nil
}

// PrintError reports a fatal error.
func (p *Printer) PrintError(err error) error {
	if p.format == OutputFormatJSON {
		return p.printJSON(map[string]interface{}{"error": err.Error()})
	}
	_, werr := fmt.Fprintf(p.writer, "error: %v\n", err)
	return werr
}

func (p *Printer) printJSON(v interface{}) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
