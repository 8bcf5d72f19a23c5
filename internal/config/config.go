package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	GeminiAPIKey     string `mapstructure:"GEMINI_API_KEY"`
	AppPort          int    `mapstructure:"APP_PORT"`
	Debug            bool   `mapstructure:"DEBUG"`
	SecretKey        string `mapstructure:"SECRET_KEY"`
	ConversationsDir string `mapstructure:"CONVERSATIONS_DIR"`
	LogLevel         string `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("APP_PORT", 5000)
	viper.SetDefault("DEBUG", false)
	// An empty secret key makes the app generate an ephemeral one at startup.
	viper.SetDefault("SECRET_KEY", "")
	viper.SetDefault("CONVERSATIONS_DIR", "conversations")
	viper.SetDefault("LOG_LEVEL", "INFO")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
