package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/campuskit/pkg/config"
)

func TestLoad(t *testing.T) {
	type testConfig struct {
		Name  string `env:"LOADER_TEST_NAME" envDefault:"fallback"`
		Count int    `env:"LOADER_TEST_COUNT" envDefault:"7"`
	}

	t.Setenv("LOADER_TEST_NAME", "campus")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "campus", cfg.Name)
	assert.Equal(t, 7, cfg.Count)
}

func TestLoad_CachesPerType(t *testing.T) {
	type cachedConfig struct {
		Value string `env:"LOADER_TEST_CACHED" envDefault:"first"`
	}

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	// A later env change does not affect the cached type.
	t.Setenv("LOADER_TEST_CACHED", "second")

	var again cachedConfig
	require.NoError(t, config.Load(&again))
	assert.Equal(t, first.Value, again.Value)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *struct{}
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestLoad_RequiredMissing(t *testing.T) {
	type strictConfig struct {
		Secret string `env:"LOADER_TEST_REQUIRED,required"`
	}

	var cfg strictConfig
	assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
}

func TestMustLoad_PanicsOnFailure(t *testing.T) {
	type strictConfig struct {
		Secret string `env:"LOADER_TEST_MUST_REQUIRED,required"`
	}

	assert.Panics(t, func() {
		var cfg strictConfig
		config.MustLoad(&cfg)
	})
}
