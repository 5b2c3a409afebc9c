package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	JWT      JWT
	Model    Model
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

type JWT struct {
	Secret           string
	AccessTTLMinutes int
	RefreshTTLDays   int
}

type Model struct {
	Path        string // ONNX weights, loaded once at startup
	LibraryPath string // onnxruntime shared library (empty = default lookup)
	UploadDir   string // where classified uploads are stored
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8000")
	viper.SetDefault("ACCESS_TOKEN_LIFETIME", 30)
	viper.SetDefault("REFRESH_TOKEN_LIFETIME", 7)
	viper.SetDefault("MODEL_PATH", "sign_classifier.onnx")
	viper.SetDefault("UPLOAD_DIR", "uploads")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.JWT.Secret = viper.GetString("JWT_SECRET")
	config.JWT.AccessTTLMinutes = viper.GetInt("ACCESS_TOKEN_LIFETIME")
	config.JWT.RefreshTTLDays = viper.GetInt("REFRESH_TOKEN_LIFETIME")

	config.Model.Path = viper.GetString("MODEL_PATH")
	config.Model.LibraryPath = viper.GetString("ONNXRUNTIME_LIB_PATH")
	config.Model.UploadDir = viper.GetString("UPLOAD_DIR")

	log.Info().Str("port", config.Server.Port).Str("db_host", config.Database.Host).Msg("Config loaded")
	return &config, nil
}
