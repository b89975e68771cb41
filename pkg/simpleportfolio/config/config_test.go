package config_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trvan/simple-portfolio/pkg/simpleportfolio/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "memory", cfg.DefaultStorageBackend)
	assert.Equal(t, "/api/media", cfg.MediaURLPrefix)
	assert.Equal(t, "/api/uploads", cfg.UploadURLPrefix)
	require.Len(t, cfg.StorageBackends, 1)
	assert.Equal(t, "memory", cfg.StorageBackends[0].Name)
}

func TestLoadWithOptions(t *testing.T) {
	cfg, err := config.Load(
		config.WithPort("9000"),
		config.WithEnvironment("production"),
		config.WithStorageBackend(config.StorageBackendConfig{
			Name:    "fs",
			Type:    "fs",
			BaseDir: t.TempDir(),
		}),
		config.WithDefaultStorageBackend("fs"),
		config.WithEventLogging(false),
	)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "fs", cfg.DefaultStorageBackend)
	assert.Len(t, cfg.StorageBackends, 2)
}

func TestLoadRejectsInvalidInput(t *testing.T) {
	t.Run("EmptyPort", func(t *testing.T) {
		_, err := config.Load(config.WithPort(""))
		assert.Error(t, err)
	})

	t.Run("UnknownEnvironment", func(t *testing.T) {
		_, err := config.Load(config.WithEnvironment("staging"))
		assert.Error(t, err)
	})

	t.Run("UnregisteredDefaultBackend", func(t *testing.T) {
		_, err := config.Load(config.WithDefaultStorageBackend("s3"))
		assert.Error(t, err)
	})
}

func TestStorageBackendReplacedByName(t *testing.T) {
	cfg, err := config.Load(
		config.WithStorageBackend(config.StorageBackendConfig{Name: "memory", Type: "memory"}),
	)
	require.NoError(t, err)
	assert.Len(t, cfg.StorageBackends, 1)
}

func TestBuildService(t *testing.T) {
	cfg, err := config.Load(
		config.WithStorageBackend(config.StorageBackendConfig{
			Name:    "fs",
			Type:    "fs",
			BaseDir: t.TempDir(),
		}),
	)
	require.NoError(t, err)

	svc, err := cfg.BuildService()
	require.NoError(t, err)
	require.NotNil(t, svc)

	// Both configured backends are registered and the seeded store answers.
	_, err = svc.GetBackend("memory")
	assert.NoError(t, err)
	_, err = svc.GetBackend("fs")
	assert.NoError(t, err)
	assert.Equal(t, "memory", svc.DefaultBackend())

	intro, err := svc.GetIntro(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, intro.Title)
}

func TestBuildServiceRejectsUnknownBackendType(t *testing.T) {
	cfg := &config.ServerConfig{
		Port:                  "8080",
		DefaultStorageBackend: "weird",
		StorageBackends: []config.StorageBackendConfig{
			{Name: "weird", Type: "tape"},
		},
	}
	require.NoError(t, cfg.Validate())

	_, err := cfg.BuildService()
	assert.Error(t, err)
}
