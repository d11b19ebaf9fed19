package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerAddress  = "localhost:8000"
	defaultLogLevel       = "info"
	defaultEnv            = "local"
	defaultConfigDir      = ".labsync"
	defaultTimeoutSeconds = 30
)

type Config struct {
	Env             string `mapstructure:"app_env"`
	ServerAddress   string `mapstructure:"server_address"`
	LogLevel        string `mapstructure:"log_level"`
	ConfigDir       string `mapstructure:"config_dir"`
	CredentialsPath string `mapstructure:"credentials_path"`
	JournalPath     string `mapstructure:"journal_path"`
	EnableTLS       bool   `mapstructure:"enable_tls"`
	TimeoutSeconds  int    `mapstructure:"http_timeout_seconds"`
}

// MustLoad builds the client configuration from the environment, creating
// the config directory on first run.
func MustLoad() *Config {
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("Failed to load .env file: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("SERVER_ADDRESS", defaultServerAddress)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("ENABLE_TLS", false)
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", defaultTimeoutSeconds)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		fmt.Printf("Failed to create config directory: %v\n", err)
	}

	config := &Config{
		Env:             viper.GetString("APP_ENV"),
		ServerAddress:   viper.GetString("SERVER_ADDRESS"),
		LogLevel:        viper.GetString("LOG_LEVEL"),
		ConfigDir:       configDir,
		CredentialsPath: filepath.Join(configDir, "credentials"),
		JournalPath:     filepath.Join(configDir, "journal.db"),
		EnableTLS:       viper.GetBool("ENABLE_TLS"),
		TimeoutSeconds:  viper.GetInt("HTTP_TIMEOUT_SECONDS"),
	}

	if err := config.validate(); err != nil {
		panic(fmt.Sprintf("Invalid configuration: %v", err))
	}

	return config
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("server_address must not be empty")
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("http_timeout_seconds must be positive")
	}
	return nil
}

// IsProd reports whether the client targets a production server.
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// IsLocal reports whether the client runs in a local environment.
func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}
