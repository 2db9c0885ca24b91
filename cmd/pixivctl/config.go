package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"
)

// fileConfig is the on-disk configuration. Environment variables take
// precedence over the file so tokens can stay out of it.
type fileConfig struct {
	RefreshToken string `yaml:"refresh_token"`
	AccessToken  string `yaml:"access_token"`
	BaseURL      string `yaml:"base_url"`
	DownloadDir  string `yaml:"download_dir"`
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// missing file is fine, env vars may carry everything
	case err != nil:
		return cfg, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	if v := os.Getenv("PIXIV_REFRESH_TOKEN"); v != "" {
		cfg.RefreshToken = v
	}
	if v := os.Getenv("PIXIV_ACCESS_TOKEN"); v != "" {
		cfg.AccessToken = v
	}
	if v := os.Getenv("PIXIV_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if cfg.DownloadDir == "" {
		cfg.DownloadDir = "."
	}
	return cfg, nil
}
