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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/imagevault/pkg/bundle"
)

func newGenerateKeysCmd() *cobra.Command {
	var (
		count int
		out   string
	)

	cmd := &cobra.Command{
		Use:   "generate-keys [N]",
		Short: "Generate N ECDSA P-256 key pairs as a JSON array",
		Long: `generate-keys generates N independent ECDSA P-256 key pairs from a
CSPRNG, exports public keys as SPKI and private keys as PKCS#8 (both
base64-encoded), and emits the array as compact JSON. Writes no files
unless --out is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := count
			if len(args) == 1 {
				parsed, err := parsePositiveInt(args[0])
				if err != nil {
					return fmt.Errorf("invalid N %q: %w", args[0], err)
				}
				n = parsed
			}

			data, err := bundle.GenerateKeys(n)
			if err != nil {
				handleError(err)
				return nil
			}

			if out != "" {
				if err := os.WriteFile(out, data, 0644); err != nil {
					handleError(fmt.Errorf("generate-keys: write %s: %w", out, err))
				}
				return nil
			}

			fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 0, "number of key pairs to generate (default 30)")
	cmd.Flags().StringVar(&out, "out", "", "write the JSON array to this file instead of stdout")

	return cmd
}

func parsePositiveInt(s string) (int, error) {
	n := 0
	if s == "" {
		return 0, fmt.Errorf("empty")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("not a non-negative integer")
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}
