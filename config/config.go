package config

import (
	"github.com/spf13/viper"
)

// Config is the runtime configuration, read from config.yaml with
// environment-variable overrides.
type Config struct {
	Token         string         `mapstructure:"TOKEN"`
	MongoURI      string         `mapstructure:"MONGO_URI"`
	MongoDatabase string         `mapstructure:"MONGO_DATABASE"`
	Commands      CommandsConfig `mapstructure:"COMMANDS"`
}

// CommandsConfig controls slash-command registration.
type CommandsConfig struct {
	// AllowGuilds lists the guilds to register commands against.
	// Empty means global registration.
	AllowGuilds []string `mapstructure:"ALLOW_GUILDS"`
}

// Load reads the configuration.
func Load() (cfg Config, err error) {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()
	viper.SetDefault("MONGO_DATABASE", "suggestions")

	if err = viper.ReadInConfig(); err != nil {
		return
	}
	err = viper.Unmarshal(&cfg)
	return
}
