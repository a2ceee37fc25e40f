package config

import (
	"avien/model"

	"github.com/spf13/viper"
)

// Cfg is the loaded configuration.
var Cfg model.Config

// LoadConfig reads config.yaml from the working directory, with environment
// variables taking precedence.
func LoadConfig() (err error) {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	viper.SetDefault("avien.db_path", "./data/avien.db")
	viper.SetDefault("avien.page_size", 3)
	viper.SetDefault("avien.state_ttl_minutes", 30)
	viper.SetDefault("http.port", "5000")

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&Cfg)
	return
}
