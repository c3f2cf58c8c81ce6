// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of imagevault.

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir string, cfg GlobalConfig) string {
	t.Helper()
	path := filepath.Join(dir, "data-global.json")
	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func validConfig() GlobalConfig {
	return GlobalConfig{
		GameRandomSalt: "correct-horse-battery-staple",
		LevelCount:     5,
		HintThresholds: []int{2, 3},
		UnlockedLevels: 0,
		Languages:      []string{"en"},
	}
}

func TestLoad_Success(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, validConfig())

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "correct-horse-battery-staple", cfg.GameRandomSalt)
	assert.Equal(t, 5, cfg.LevelCount)
	assert.Equal(t, []int{2, 3}, cfg.HintThresholds)
	assert.Equal(t, []string{"en"}, cfg.Languages)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestLoad_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data-global.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate_RejectsEmptySalt(t *testing.T) {
	cfg := validConfig()
	cfg.GameRandomSalt = ""
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsZeroLevelCount(t *testing.T) {
	cfg := validConfig()
	cfg.LevelCount = 0
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsNoLanguages(t *testing.T) {
	cfg := validConfig()
	cfg.Languages = nil
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsThresholdBelowTwo(t *testing.T) {
	cfg := validConfig()
	cfg.HintThresholds = []int{1}
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsThresholdAboveLevelCount(t *testing.T) {
	cfg := validConfig()
	cfg.LevelCount = 2
	cfg.HintThresholds = []int{3}
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsUnlockedLevelsOutOfRange(t *testing.T) {
	cfg := validConfig()
	cfg.UnlockedLevels = cfg.LevelCount + 1
	assert.Error(t, cfg.Validate())
}

func TestLoadKeys_Success(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data-keys.json")
	records := []KeyRecord{
		{PublicKey: "AAAA", PrivateKey: "BBBB"},
		{PublicKey: "CCCC", PrivateKey: "DDDD"},
	}
	data, err := json.Marshal(records)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	loaded, err := LoadKeys(path)
	require.NoError(t, err)
	assert.Len(t, loaded, 2)
	assert.Equal(t, "AAAA", loaded[0].PublicKey)
}

func TestLoadKeys_MissingFile(t *testing.T) {
	_, err := LoadKeys(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
