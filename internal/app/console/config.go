package console

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port         string
	PollInterval time.Duration

	GamesTableName string
}

func NewConfig() Config {
	var config Config

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs/console")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		panic(fmt.Errorf("fatal error config file: %s", err))
	}

	// List of env files to load
	envFiles := []string{
		"./configs/aws/base.env",
		"./configs/aws/dynamodb.env",
	}

	// Load all env files
	err = loadEnvFiles(envFiles)
	if err != nil {
		panic(fmt.Errorf("fatal error config file: %s", err))
	}

	config.Port = viper.GetString("Console.Port")
	pollInterval, err := time.ParseDuration(viper.GetString("Console.PollInterval"))
	if err != nil {
		panic(fmt.Errorf("fatal error config file: %s", err))
	}
	config.PollInterval = pollInterval
	config.GamesTableName = viper.GetString("GAMES_TABLE_NAME")

	return config
}

func loadEnvFiles(filenames []string) error {
	for _, file := range filenames {
		viper.SetConfigFile(file) // Set specific file
		viper.SetConfigType("env")
		viper.AutomaticEnv() // Allow override by OS environment variables

		err := viper.MergeInConfig()
		if err != nil {
			return err
		}
	}
	return nil
}
