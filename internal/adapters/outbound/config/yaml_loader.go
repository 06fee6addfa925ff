package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pagekraft/pagekraft/internal/domain"
)

const fileName = ".pagekraft.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .pagekraft.yaml.
type YAMLLoader struct{}

func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .pagekraft.yaml from sitePath. Returns DefaultConfig when the
// file does not exist.
func (l *YAMLLoader) Load(sitePath string) (domain.SiteConfig, error) {
	data, err := os.ReadFile(filepath.Join(sitePath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.SiteConfig{}, err
	}

	cfg := domain.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.SiteConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return domain.SiteConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	if cfg.Page == "" {
		cfg.Page = "index.html"
	}
	return cfg, nil
}
