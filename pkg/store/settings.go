package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/lumiere/pkg/assist"
	"tableflip.dev/lumiere/pkg/i18n"
)

const (
	languageKey = "app_language"
	aiConfigKey = "ai_config"
)

// Settings persists process-wide configuration separately from entries:
// the assist configuration as one JSON object under its own key, and the
// display language under another. Writes happen immediately on change.
type Settings struct {
	d *diskv.Diskv
}

// OpenSettings opens the settings store under <base>/settings.
func OpenSettings(cfg Config) (*Settings, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	basePath = filepath.Join(basePath, "settings")
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure settings path: %w", err)
	}
	return &Settings{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flatTransform,
		CacheSizeMax: 64 * 1024,
	})}, nil
}

// Language returns the persisted display language, defaulting when unset
// or unreadable.
func (s *Settings) Language() i18n.Language {
	data, err := s.d.Read(languageKey)
	if err != nil {
		return i18n.Default
	}
	return i18n.Parse(string(data))
}

func (s *Settings) SetLanguage(lang i18n.Language) error {
	if err := s.d.Write(languageKey, []byte(lang)); err != nil {
		return fmt.Errorf("store: write %s: %w", languageKey, err)
	}
	return nil
}

// AIConfig returns the persisted assist configuration; a missing or
// corrupt value degrades to the default.
func (s *Settings) AIConfig() assist.Config {
	data, err := s.d.Read(aiConfigKey)
	if err != nil {
		return assist.DefaultConfig()
	}
	var cfg assist.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "store: decode %s: %v\n", aiConfigKey, err)
		return assist.DefaultConfig()
	}
	if cfg.Model == "" {
		cfg.Model = assist.DefaultConfig().Model
	}
	return cfg
}

func (s *Settings) SetAIConfig(cfg assist.Config) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", aiConfigKey, err)
	}
	if err := s.d.Write(aiConfigKey, data); err != nil {
		return fmt.Errorf("store: write %s: %w", aiConfigKey, err)
	}
	return nil
}
