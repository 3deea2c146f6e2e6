package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

/* Config is loaded from a .env file (toml) plus environment variables,
 * environment winning. A missing file is fine: every key has a default
 */

type Config struct {
	Port          string `mapstructure:"PORT"`
	Env           string `mapstructure:"ENV"`
	Repository    string `mapstructure:"REPOSITORY"`
	SeedFile      string `mapstructure:"SEED_FILE"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
}

func GetConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "production")
	viper.SetDefault("REPOSITORY", "memory")
	viper.SetDefault("SEED_FILE", "")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}
	var config Config
	err = viper.Unmarshal(&config)
	if err != nil {
		return nil, fmt.Errorf("parsing config data: %w", err)
	}
	return &config, nil
}

// IsDevelopment reports whether the service should expose error detail
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
