package main

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/trvan/simple-portfolio/pkg/simpleportfolio/config"
)

type envConfig struct {
	Port        string `env:"PORT" env-default:"8080"`
	Environment string `env:"ENVIRONMENT" env-default:"development"`

	DefaultStorageBackend string `env:"DEFAULT_STORAGE_BACKEND" env-default:"memory"`
	MediaURLPrefix        string `env:"MEDIA_URL_PREFIX" env-default:"/api/media"`
	UploadURLPrefix       string `env:"UPLOAD_URL_PREFIX" env-default:"/api/uploads"`
	EnableEventLogging    bool   `env:"ENABLE_EVENT_LOGGING" env-default:"true"`

	FS fsEnvConfig
	S3 s3EnvConfig
}

type fsEnvConfig struct {
	BaseDir   string `env:"FS_BASE_DIR" env-default:""`
	URLPrefix string `env:"FS_URL_PREFIX" env-default:""`
}

type s3EnvConfig struct {
	Bucket                 string `env:"S3_BUCKET" env-default:""`
	Region                 string `env:"S3_REGION" env-default:"us-east-1"`
	AccessKeyID            string `env:"S3_ACCESS_KEY_ID" env-default:""`
	SecretAccessKey        string `env:"S3_SECRET_ACCESS_KEY" env-default:""`
	Endpoint               string `env:"S3_ENDPOINT" env-default:""`
	UsePathStyle           bool   `env:"S3_USE_PATH_STYLE" env-default:"false"`
	PresignDuration        int    `env:"S3_PRESIGN_DURATION" env-default:"3600"`
	CreateBucketIfNotExist bool   `env:"S3_CREATE_BUCKET_IF_NOT_EXIST" env-default:"false"`
}

// loadServerConfigFromEnv constructs a ServerConfig by reading process
// environment variables. Environment-specific logic stays in the executable
// instead of the library.
func loadServerConfigFromEnv() (*config.ServerConfig, error) {
	_ = godotenv.Load()

	var env envConfig
	if err := cleanenv.ReadEnv(&env); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	opts := []config.Option{
		config.WithPort(env.Port),
		config.WithEnvironment(env.Environment),
		config.WithMediaURLPrefix(env.MediaURLPrefix),
		config.WithUploadURLPrefix(env.UploadURLPrefix),
		config.WithEventLogging(env.EnableEventLogging),
	}

	// The memory backend is always registered by the library defaults.
	if env.FS.BaseDir != "" {
		opts = append(opts, config.WithStorageBackend(config.StorageBackendConfig{
			Name:      "fs",
			Type:      "fs",
			BaseDir:   env.FS.BaseDir,
			URLPrefix: env.FS.URLPrefix,
		}))
	}

	if env.S3.Bucket != "" {
		opts = append(opts, config.WithStorageBackend(config.StorageBackendConfig{
			Name:                   "s3",
			Type:                   "s3",
			Region:                 env.S3.Region,
			Bucket:                 env.S3.Bucket,
			AccessKeyID:            env.S3.AccessKeyID,
			SecretAccessKey:        env.S3.SecretAccessKey,
			Endpoint:               env.S3.Endpoint,
			UsePathStyle:           env.S3.UsePathStyle,
			PresignDuration:        env.S3.PresignDuration,
			CreateBucketIfNotExist: env.S3.CreateBucketIfNotExist,
		}))
	}

	opts = append(opts, config.WithDefaultStorageBackend(env.DefaultStorageBackend))

	cfg, err := config.Load(opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func mustLoadServerConfig() *config.ServerConfig {
	cfg, err := loadServerConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
