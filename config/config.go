package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Gemini   Gemini
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Gemini holds the shared settings for all AI collaborator calls.
type Gemini struct {
	ApiKey         string
	Model          string
	TimeoutSeconds int
	MaxRetries     int
	BackoffBaseMs  int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("AI_TIMEOUT_SECONDS", 60)
	viper.SetDefault("AI_MAX_RETRIES", 3)
	viper.SetDefault("AI_BACKOFF_BASE_MS", 500)

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Gemini.ApiKey = viper.GetString("GEMINI_API_KEY")
	config.Gemini.Model = viper.GetString("GEMINI_MODEL")
	config.Gemini.TimeoutSeconds = viper.GetInt("AI_TIMEOUT_SECONDS")
	config.Gemini.MaxRetries = viper.GetInt("AI_MAX_RETRIES")
	config.Gemini.BackoffBaseMs = viper.GetInt("AI_BACKOFF_BASE_MS")

	log.Info().
		Str("server_port", config.Server.Port).
		Str("database_host", config.Database.Host).
		Str("gemini_model", config.Gemini.Model).
		Int("ai_max_retries", config.Gemini.MaxRetries).
		Msg("Config loaded")
	return &config, nil
}
