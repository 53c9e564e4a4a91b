package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Auth    AuthConfig        `mapstructure:"auth"`
	API     APIConfig         `mapstructure:"api"`
	Logging LoggingConfig     `mapstructure:"logging"`
	Filters map[string]string `mapstructure:"filters"`
}

// AuthConfig holds login credentials and the token cache location
type AuthConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	CacheDir string `mapstructure:"cache_dir"`
}

// APIConfig holds HTTP client settings
type APIConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
