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

import (
	"encoding/json"
	"fmt"
	"os"
)

// GlobalConfig is the build's immutable input: the game's random salt,
// level count, hint-unlock thresholds, already-unlocked level count, and
// the set of languages to render a bundle for.
type GlobalConfig struct {
	GameRandomSalt string   `json:"gameRandomSalt"`
	LevelCount     int      `json:"levelCount"`
	HintThresholds []int    `json:"hintThresholds"`
	UnlockedLevels int      `json:"unlockedLevels"`
	Languages      []string `json:"languages"`
}

// KeyRecord is a single base64-encoded {publicKey, privateKey} pair as read
// from data-keys.json.
type KeyRecord struct {
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
}

// Load reads and validates the global config JSON file at path.
func Load(path string) (*GlobalConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	var cfg GlobalConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	return &cfg, nil
}

// LoadKeys reads and decodes the verification key records JSON file at path.
func LoadKeys(path string) ([]KeyRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	var records []KeyRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	return records, nil
}

// Validate checks the structural invariants a GlobalConfig must satisfy
// before the build pipeline can run against it.
func (c *GlobalConfig) Validate() error {
	if c.GameRandomSalt == "" {
		return fmt.Errorf("config: gameRandomSalt must not be empty")
	}
	if c.LevelCount < 1 {
		return fmt.Errorf("config: levelCount must be positive, got %d", c.LevelCount)
	}
	if len(c.Languages) == 0 {
		return fmt.Errorf("config: languages must list at least one language tag")
	}
	for i, k := range c.HintThresholds {
		if k < 2 {
			return fmt.Errorf("config: hintThresholds[%d]=%d must be >= 2", i, k)
		}
		if k > c.LevelCount {
			return fmt.Errorf("config: hintThresholds[%d]=%d exceeds levelCount %d", i, k, c.LevelCount)
		}
	}
	if c.UnlockedLevels < 0 || c.UnlockedLevels > c.LevelCount {
		return fmt.Errorf("config: unlockedLevels %d out of range [0, %d]", c.UnlockedLevels, c.LevelCount)
	}
	return nil
}
