// Package settings holds the runners behind the settings subcommands.
package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/lumiere/pkg/assist"
	"tableflip.dev/lumiere/pkg/i18n"
	"tableflip.dev/lumiere/pkg/store"
)

// Show prints the current language and assist configuration. The API key
// is masked.
type Show struct {
	Settings *store.Settings
}

func (n *Show) Do(ctx context.Context) error {
	if n.Settings == nil {
		return errors.New("can not show settings, no settings store")
	}

	cfg := n.Settings.AIConfig()
	f := color.New(color.Faint)

	fmt.Println("")
	fmt.Printf("language  %s\n", n.Settings.Language())
	fmt.Printf("provider  %s\n", cfg.Provider)
	fmt.Printf("model     %s\n", cfg.ModelOrDefault())
	if cfg.BaseURL != "" {
		fmt.Printf("base url  %s\n", cfg.BaseURL)
	}
	if cfg.APIKey == "" {
		_, _ = f.Println("api key   (not set)")
	} else {
		fmt.Printf("api key   %s\n", mask(cfg.APIKey))
	}
	fmt.Println("")
	return nil
}

func mask(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// Set updates the persisted settings. Empty fields keep the stored value.
type Set struct {
	Language string
	Provider string
	APIKey   string
	BaseURL  string
	Model    string

	Settings *store.Settings
}

func (n *Set) Do(ctx context.Context) error {
	if n.Settings == nil {
		return errors.New("can not update settings, no settings store")
	}

	if n.Language != "" {
		switch strings.ToLower(strings.TrimSpace(n.Language)) {
		case "en", "zh":
		default:
			return fmt.Errorf("unknown language %q (one of en, zh)", n.Language)
		}
		if err := n.Settings.SetLanguage(i18n.Parse(n.Language)); err != nil {
			return err
		}
	}

	cfg := n.Settings.AIConfig()
	changed := false
	if n.Provider != "" {
		p, err := assist.ParseProviderStrict(n.Provider)
		if err != nil {
			return err
		}
		cfg.Provider = p
		changed = true
	}
	if n.APIKey != "" {
		cfg.APIKey = n.APIKey
		changed = true
	}
	if n.BaseURL != "" {
		cfg.BaseURL = n.BaseURL
		changed = true
	}
	if n.Model != "" {
		cfg.Model = n.Model
		changed = true
	}
	if changed {
		if err := n.Settings.SetAIConfig(cfg); err != nil {
			return err
		}
	}

	show := Show{Settings: n.Settings}
	return show.Do(ctx)
}
