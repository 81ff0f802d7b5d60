package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config collects the values the generation run needs. Everything can come
// from the optional YAML config file; flags override file values and the
// token can always come from the environment.
type Config struct {
	Owner   string
	Repo    string
	BaseRef string
	HeadRef string
	Version string
	Token   string
	BaseURL string
}

const tokenEnvVar = "GITHUB_TOKEN"

// Load reads the config file at path, or returns an env-only config when
// path is empty.
func Load(path string) (Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Owner:   v.GetString("owner"),
		Repo:    v.GetString("repo"),
		BaseRef: v.GetString("base_ref"),
		HeadRef: v.GetString("head_ref"),
		Version: v.GetString("version"),
		Token:   v.GetString("token"),
		BaseURL: v.GetString("base_url"),
	}

	if cfg.Token == "" {
		cfg.Token = os.Getenv(tokenEnvVar)
	}

	return cfg, nil
}
