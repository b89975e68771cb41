package config

import "fmt"

// WithPort sets the port to listen on.
func WithPort(port string) Option {
	return func(c *ServerConfig) error {
		if port == "" {
			return fmt.Errorf("port cannot be empty")
		}
		c.Port = port
		return nil
	}
}

// WithEnvironment sets the deployment environment.
func WithEnvironment(env string) Option {
	return func(c *ServerConfig) error {
		switch env {
		case "development", "production", "testing":
			c.Environment = env
			return nil
		default:
			return fmt.Errorf("invalid environment: %s", env)
		}
	}
}

// WithStorageBackend registers an additional storage backend. A backend with
// the same name replaces the earlier registration.
func WithStorageBackend(backend StorageBackendConfig) Option {
	return func(c *ServerConfig) error {
		if backend.Name == "" {
			return fmt.Errorf("storage backend name cannot be empty")
		}
		for i, existing := range c.StorageBackends {
			if existing.Name == backend.Name {
				c.StorageBackends[i] = backend
				return nil
			}
		}
		c.StorageBackends = append(c.StorageBackends, backend)
		return nil
	}
}

// WithDefaultStorageBackend selects which registered backend serves uploads
// when the client does not ask for one.
func WithDefaultStorageBackend(name string) Option {
	return func(c *ServerConfig) error {
		if name == "" {
			return fmt.Errorf("default storage backend cannot be empty")
		}
		c.DefaultStorageBackend = name
		return nil
	}
}

// WithMediaURLPrefix overrides the path media URLs are served under.
func WithMediaURLPrefix(prefix string) Option {
	return func(c *ServerConfig) error {
		if prefix == "" {
			return fmt.Errorf("media URL prefix cannot be empty")
		}
		c.MediaURLPrefix = prefix
		return nil
	}
}

// WithUploadURLPrefix overrides the path app-served uploads are accepted
// under.
func WithUploadURLPrefix(prefix string) Option {
	return func(c *ServerConfig) error {
		if prefix == "" {
			return fmt.Errorf("upload URL prefix cannot be empty")
		}
		c.UploadURLPrefix = prefix
		return nil
	}
}

// WithEventLogging toggles the slog-backed event sink.
func WithEventLogging(enabled bool) Option {
	return func(c *ServerConfig) error {
		c.EnableEventLogging = enabled
		return nil
	}
}
