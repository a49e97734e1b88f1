package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "postgres://localhost/webshop"}}},
		&StructuredConfig{Server: Server{HTTPAddress: ":3000"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/webshop", cfg.Storage.DB.DSN)
	assert.Equal(t, ":3000", cfg.Server.HTTPAddress)
}

// TestBuild_EarlierSourcesWin verifies the priority order: a field set by an
// earlier config is not overwritten by a later one.
func TestBuild_EarlierSourcesWin(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Storage: Storage{DB: DB{DSN: "postgres://localhost/webshop"}},
			Server:  Server{HTTPAddress: ":8080", ReadTimeout: time.Minute},
		},
		&StructuredConfig{
			Server: Server{HTTPAddress: ":3000", ReadTimeout: 30 * time.Second, ShutdownTimeout: 10 * time.Second},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout, "zero fields still fall through to later sources")
}

// TestBuild_FailsWithoutDSN verifies that a merged config with no database
// DSN is rejected.
func TestBuild_FailsWithoutDSN(t *testing.T) {
	b := newConfigBuilder().withDefaults()

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestWithDefaults verifies the built-in fallback values.
func TestWithDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "postgres://localhost/webshop"}}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "public", cfg.Assets.PublicDir)
}
