package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds all configuration for the seeder
type Config struct {
	MongoDB    MongoDBConfig    `mapstructure:"mongodb"`
	Generation GenerationConfig `mapstructure:"generation"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

type MongoDBConfig struct {
	URI            string `mapstructure:"uri"`
	Database       string `mapstructure:"database"`
	Collection     string `mapstructure:"collection"`
	ConnectTimeout int    `mapstructure:"connect_timeout"`
}

type GenerationConfig struct {
	MonthsBack int `mapstructure:"months_back"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables.
// $VAR references in the file are expanded from the environment before
// parsing, so credentials can stay out of the config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	expanded := os.ExpandEnv(string(data))
	if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mongodb.uri", "mongodb://localhost:27017")
	v.SetDefault("mongodb.database", "powermeter")
	v.SetDefault("mongodb.collection", "readings")
	v.SetDefault("mongodb.connect_timeout", 10)

	v.SetDefault("generation.months_back", 2)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}
