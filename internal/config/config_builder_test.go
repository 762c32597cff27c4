// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuild_DefaultsFillGaps verifies that merging an empty layer with the
// defaults layer produces the full default configuration.
func TestBuild_DefaultsFillGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b = b.withDefaults()

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, DefaultPasswordMinLength, cfg.App.PasswordMinLength)
	assert.Equal(t, DefaultHashRounds, cfg.App.HashRounds)
	assert.Equal(t, time.Duration(DefaultTokenTTL), cfg.App.TokenTTL)
	assert.Equal(t, DefaultDataFile, cfg.Storage.Files.DataFile)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
}

// TestBuild_EarlierLayerWins verifies that values from an earlier layer are
// not overwritten by later layers.
func TestBuild_EarlierLayerWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{PasswordMinLength: 10}},
		&StructuredConfig{App: App{PasswordMinLength: 6, HashRounds: 50000}},
	)
	b = b.withDefaults()

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, 10, cfg.App.PasswordMinLength, "first layer must win")
	assert.Equal(t, 50000, cfg.App.HashRounds, "second layer fills the gap")
}

// TestValidate_RejectsBadPolicy verifies that out-of-range policy values
// fail validation with the app sentinel error.
func TestValidate_RejectsBadPolicy(t *testing.T) {
	cfg := defaultConfig()
	cfg.App.HashRounds = 0

	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
}

// TestValidate_RejectsMissingDataFile verifies the storage sentinel error.
func TestValidate_RejectsMissingDataFile(t *testing.T) {
	cfg := defaultConfig()
	cfg.Storage.Files.DataFile = ""

	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

// TestValidate_RejectsMissingAddress verifies the server sentinel error.
func TestValidate_RejectsMissingAddress(t *testing.T) {
	cfg := defaultConfig()
	cfg.Server.HTTPAddress = ""

	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
}

// TestValidate_DefaultsAreValid guards the built-in defaults against drift.
func TestValidate_DefaultsAreValid(t *testing.T) {
	assert.NoError(t, defaultConfig().validate())
}
