package store

import (
	"log"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config interface {
	BasePath() string
}

// LoadConfig resolves the journal base path from a .lumiere config file or
// LUMIERE_* environment variables, defaulting to ~/.lumiere.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.lumiere")
	viper.SetConfigName(".lumiere") // .yaml is implicit
	viper.SetEnvPrefix("LUMIERE")
	viper.AutomaticEnv()

	if override := os.Getenv("LUMIERE_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

// StaticConfig pins the base path, mainly for tests.
func StaticConfig(path string) Config {
	return &fileConfig{Path: path}
}

func fallbackBasePath() string {
	if cache, err := os.UserCacheDir(); err == nil {
		return filepath.Join(cache, "lumiere")
	}
	return filepath.Join(os.TempDir(), "lumiere")
}
