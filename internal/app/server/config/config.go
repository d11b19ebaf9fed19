package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Defaults applied when the environment leaves a knob unset.
const (
	DefaultRunAddress          = ":8000"
	DefaultMigrationsPath      = "migrations"
	DefaultModelPath           = "models/anomaly_detector.json"
	DefaultAnomalyThreshold    = 0.7
	DefaultComplianceThreshold = 0.9
)

type Config struct {
	Env        string
	DB         db
	Server     server
	Logger     logger
	Model      model
	Validation validation
	Auth       auth
}

type defaultConfig struct {
	RunAddress          string
	DatabaseURI         string
	LogLevel            string
	Env                 string
	Migrations          string
	ModelPath           string
	AnomalyThreshold    float64
	ComplianceThreshold float64
	APIKeyHash          string
	InMemory            bool
}

type db struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
	InMemory    bool   `env:"IN_MEMORY"`
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

type model struct {
	Path string `env:"MODEL_PATH"`
}

type validation struct {
	AnomalyThreshold    float64 `env:"ANOMALY_THRESHOLD"`
	ComplianceThreshold float64 `env:"COMPLIANCE_THRESHOLD"`
}

type auth struct {
	// Bcrypt hash of the service API key. Empty disables authentication.
	APIKeyHash string `env:"API_KEY_HASH"`
}

func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	d := defaultConfig{
		RunAddress:          viper.GetString("run_address"),
		DatabaseURI:         viper.GetString("database_uri"),
		LogLevel:            viper.GetString("log_level"),
		Env:                 viper.GetString("app_env"),
		Migrations:          viper.GetString("migrations_path"),
		ModelPath:           viper.GetString("model_path"),
		AnomalyThreshold:    viper.GetFloat64("anomaly_threshold"),
		ComplianceThreshold: viper.GetFloat64("compliance_threshold"),
		APIKeyHash:          viper.GetString("api_key_hash"),
		InMemory:            viper.GetBool("in_memory"),
	}
	if d.RunAddress == "" {
		d.RunAddress = DefaultRunAddress
	}
	if d.Migrations == "" {
		d.Migrations = DefaultMigrationsPath
	}
	if d.ModelPath == "" {
		d.ModelPath = DefaultModelPath
	}
	if d.AnomalyThreshold == 0 {
		d.AnomalyThreshold = DefaultAnomalyThreshold
	}
	if d.ComplianceThreshold == 0 {
		d.ComplianceThreshold = DefaultComplianceThreshold
	}

	config := Config{
		Env: d.Env,
		DB: db{
			DatabaseURI: d.DatabaseURI,
			Migrations:  d.Migrations,
			InMemory:    d.InMemory,
		},
		Server:     server{RunAddress: d.RunAddress},
		Logger:     logger{LogLevel: d.LogLevel},
		Model:      model{Path: d.ModelPath},
		Validation: validation{AnomalyThreshold: d.AnomalyThreshold, ComplianceThreshold: d.ComplianceThreshold},
		Auth:       auth{APIKeyHash: d.APIKeyHash},
	}

	return &config
}
