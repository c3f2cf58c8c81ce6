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

package config

import "fmt"

// ConfigError wraps a failure to read or parse a configuration file,
// naming the path that failed.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// MissingKeyError reports that the verification key records array is
// shorter than the configured level count.
type MissingKeyError struct {
	Have int
	Want int
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("config: have %d verification key records, need at least %d", e.Have, e.Want)
}
