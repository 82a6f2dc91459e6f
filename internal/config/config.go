package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	defaultAPIBase   = "https://www.fanatical.com/api"
	defaultTokenEnv  = "FANATICAL_BEARER_TOKEN"
	defaultTokenFile = "fanatical.TOKEN"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "fanbookctl", "config.yml")
}

// Load reads the config from disk (or env). Every setting has a
// default, so a missing config file is fine. An empty path falls back
// to $FANBOOKCTL_CONFIG, then the default location.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("api.base", defaultAPIBase)
	v.SetDefault("auth.token_env", defaultTokenEnv)
	v.SetDefault("auth.token_file", defaultTokenFile)
	v.SetDefault("paths.catalog", "fanatical-book-details.json")
	v.SetDefault("paths.details", "fanatical-order-details.json")
	v.SetDefault("paths.download_dir", "fanatical-downloads")

	v.SetEnvPrefix("FANBOOKCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = os.Getenv("FANBOOKCTL_CONFIG")
	}
	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, isCfgNotFound := err.(viper.ConfigFileNotFoundError); !isCfgNotFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Paths.Catalog = ExpandHome(cfg.Paths.Catalog)
	cfg.Paths.Details = ExpandHome(cfg.Paths.Details)
	cfg.Paths.DownloadDir = ExpandHome(cfg.Paths.DownloadDir)
	cfg.Auth.TokenFile = ExpandHome(cfg.Auth.TokenFile)

	return &cfg, nil
}

// Default returns a config populated with the built-in defaults, for
// writing a starter config file.
func Default() *Config {
	return &Config{
		API: APIConfig{Base: defaultAPIBase},
		Auth: AuthConfig{
			TokenEnv:  defaultTokenEnv,
			TokenFile: defaultTokenFile,
		},
		Paths: PathsConfig{
			Catalog:     "fanatical-book-details.json",
			Details:     "fanatical-order-details.json",
			DownloadDir: "fanatical-downloads",
		},
	}
}

// Save writes the config to the given path, creating parent
// directories as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(cfg)
}

// ResolveToken returns the bearer token, trying the explicit override,
// then the configured environment variable, then the token file.
// Absence of all three is a usage error and must abort before any
// network call.
func (c *Config) ResolveToken(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	tokenEnv := c.Auth.TokenEnv
	if tokenEnv == "" {
		tokenEnv = defaultTokenEnv
	}
	if tok := os.Getenv(tokenEnv); tok != "" {
		return tok, nil
	}
	if c.Auth.TokenFile != "" {
		if data, err := os.ReadFile(c.Auth.TokenFile); err == nil {
			if tok := strings.TrimSpace(string(data)); tok != "" {
				return tok, nil
			}
		}
	}
	return "", fmt.Errorf("bearer token must be provided via --token, $%s, or %s", tokenEnv, c.Auth.TokenFile)
}

// ExpandHome expands a leading ~/ in a path.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
