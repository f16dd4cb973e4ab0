package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const DefaultInferenceURL = "https://api-inference.huggingface.co/models/black-forest-labs/FLUX.1-dev"

// Config holds all configuration for the application
type Config struct {
	InferenceURL   string
	Token          string
	TokenParam     string
	PromptsParam   string
	DownloadDir    string
	DownloadBucket string
	Theme          string
	ToastDuration  time.Duration
	LogFile        string
	LogFormat      string
	LogLevel       string
}

// Load reads the optional .env file and then the environment. A missing
// token is not an error; requests without one fail like any other.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	config := &Config{
		InferenceURL:   getDefault("INFERENCE_URL", DefaultInferenceURL),
		Token:          os.Getenv("HUGGING_FACE_TOKEN"),
		TokenParam:     os.Getenv("HUGGING_FACE_TOKEN_PARAM"),
		PromptsParam:   os.Getenv("PROMPTS_PARAM"),
		DownloadDir:    getDefault("DOWNLOAD_DIR", "."),
		DownloadBucket: os.Getenv("DOWNLOAD_BUCKET"),
		Theme:          getDefault("THEME", "system"),
		LogFile:        getDefault("LOG_FILE", "imagegen.log"),
		LogFormat:      getDefault("LOG_FORMAT", "json"),
		LogLevel:       getDefault("LOG_LEVEL", "info"),
	}

	if d, err := time.ParseDuration(os.Getenv("TOAST_DURATION")); err == nil && d > 0 {
		config.ToastDuration = d
	} else {
		config.ToastDuration = 5 * time.Second // default value
	}

	switch config.Theme {
	case "dark", "light", "system":
	default:
		return nil, fmt.Errorf("THEME must be dark, light or system, got %q", config.Theme)
	}

	return config, nil
}

func getDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
