package config

// Config is the top-level fanbookctl configuration.
type Config struct {
	API   APIConfig   `mapstructure:"api" yaml:"api"`
	Auth  AuthConfig  `mapstructure:"auth" yaml:"auth"`
	Paths PathsConfig `mapstructure:"paths" yaml:"paths"`
}

// APIConfig holds storefront API connection settings.
type APIConfig struct {
	Base string `mapstructure:"base" yaml:"base"`
}

// AuthConfig holds bearer token resolution settings. The token itself
// is resolved at runtime and never written to the config file.
type AuthConfig struct {
	TokenEnv  string `mapstructure:"token_env" yaml:"token_env"`
	TokenFile string `mapstructure:"token_file" yaml:"token_file"`
}

// PathsConfig holds the on-disk artifact locations.
type PathsConfig struct {
	Catalog     string `mapstructure:"catalog" yaml:"catalog"`
	Details     string `mapstructure:"details" yaml:"details"`
	DownloadDir string `mapstructure:"download_dir" yaml:"download_dir"`
}
