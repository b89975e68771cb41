package config

import (
	"errors"
	"fmt"

	"github.com/trvan/simple-portfolio/pkg/simpleportfolio"
	"github.com/trvan/simple-portfolio/pkg/simpleportfolio/repo/memory"
	fsstorage "github.com/trvan/simple-portfolio/pkg/simpleportfolio/storage/fs"
	memorystorage "github.com/trvan/simple-portfolio/pkg/simpleportfolio/storage/memory"
	s3storage "github.com/trvan/simple-portfolio/pkg/simpleportfolio/storage/s3"
)

// Option applies configuration to a ServerConfig instance.
type Option func(*ServerConfig) error

// Load constructs a ServerConfig by applying the supplied options on top of
// library defaults.
func Load(opts ...Option) (*ServerConfig, error) {
	cfg := defaults()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaults() ServerConfig {
	return ServerConfig{
		Port:                  "8080",
		Environment:           "development",
		DefaultStorageBackend: "memory",
		StorageBackends: []StorageBackendConfig{
			{Name: "memory", Type: "memory"},
		},
		MediaURLPrefix:     "/api/media",
		UploadURLPrefix:    "/api/uploads",
		EnableEventLogging: true,
	}
}

// ServerConfig represents server configuration for the portfolio content
// service.
type ServerConfig struct {
	Port        string
	Environment string // development, production, testing

	// Storage configuration
	DefaultStorageBackend string
	StorageBackends       []StorageBackendConfig

	// URL prefixes the upload surface is mounted under
	MediaURLPrefix  string
	UploadURLPrefix string

	// Server options
	EnableEventLogging bool
}

// StorageBackendConfig represents configuration for one blob storage backend
type StorageBackendConfig struct {
	Name string
	Type string // "memory", "fs", "s3"

	// Filesystem options
	BaseDir   string
	URLPrefix string

	// S3 options
	Region                 string
	Bucket                 string
	AccessKeyID            string
	SecretAccessKey        string
	Endpoint               string
	UsePathStyle           bool
	PresignDuration        int
	CreateBucketIfNotExist bool
}

// Validate validates the server configuration
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}

	found := false
	for _, backend := range c.StorageBackends {
		if backend.Name == c.DefaultStorageBackend {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("default storage backend %q not found in configured backends", c.DefaultStorageBackend)
	}

	return nil
}

// BuildService creates a Service instance from the server configuration. The
// repository is always the seeded in-memory store; content does not survive a
// restart.
func (c *ServerConfig) BuildService() (simpleportfolio.Service, error) {
	options := []simpleportfolio.Option{
		simpleportfolio.WithRepository(memory.New()),
		simpleportfolio.WithDefaultBackend(c.DefaultStorageBackend),
		simpleportfolio.WithMediaURLPrefix(c.MediaURLPrefix),
		simpleportfolio.WithUploadURLPrefix(c.UploadURLPrefix),
	}

	for _, backendConfig := range c.StorageBackends {
		store, err := buildStorageBackend(backendConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to build storage backend %q: %w", backendConfig.Name, err)
		}
		options = append(options, simpleportfolio.WithBlobStore(backendConfig.Name, store))
	}

	if c.EnableEventLogging {
		options = append(options, simpleportfolio.WithEventSink(simpleportfolio.NewLoggingEventSink(nil)))
	} else {
		options = append(options, simpleportfolio.WithEventSink(simpleportfolio.NewNoopEventSink()))
	}

	return simpleportfolio.New(options...)
}

func buildStorageBackend(cfg StorageBackendConfig) (simpleportfolio.BlobStore, error) {
	switch cfg.Type {
	case "memory":
		return memorystorage.New(), nil
	case "fs":
		return fsstorage.New(fsstorage.Config{
			BaseDir:   cfg.BaseDir,
			URLPrefix: cfg.URLPrefix,
		})
	case "s3":
		return s3storage.New(s3storage.Config{
			Region:                 cfg.Region,
			Bucket:                 cfg.Bucket,
			AccessKeyID:            cfg.AccessKeyID,
			SecretAccessKey:        cfg.SecretAccessKey,
			Endpoint:               cfg.Endpoint,
			UsePathStyle:           cfg.UsePathStyle,
			PresignDuration:        cfg.PresignDuration,
			CreateBucketIfNotExist: cfg.CreateBucketIfNotExist,
		})
	default:
		return nil, fmt.Errorf("unsupported storage backend type: %s", cfg.Type)
	}
}
