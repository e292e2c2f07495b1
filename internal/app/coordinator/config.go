package coordinator

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	QuarterSeconds     int
	RegulationQuarters int
	Timeouts           int
	KickoffLandingSpot int
	SquibLandingSpot   int
	OnsideSpot         int
	TouchbackSpot      int
	OvertimeSpot       int
	DefenseNumberMin   int
	DefenseNumberMax   int

	ThreadLinkBase  string
	MessageLinkBase string
	ComposeLinkBase string
	AccountName     string

	GamesTableName       string
	AssignmentsTableName string
	TeamsTableName       string

	ResolverFunctionName string
	AlertWebhookUrl      string
	OperatorTopicArn     string
}

func NewConfig() Config {
	var config Config

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs/coordinator")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("fatal error config file: %s", err))
	}

	envFiles := []string{
		"./configs/aws/base.env",
		"./configs/aws/dynamodb.env",
		"./configs/aws/lambda.env",
		"./configs/aws/sns.env",
	}
	if err := loadEnvFiles(envFiles); err != nil {
		panic(fmt.Errorf("fatal error config file: %s", err))
	}

	viper.SetDefault("Game.QuarterSeconds", 420)
	viper.SetDefault("Game.RegulationQuarters", 4)
	viper.SetDefault("Game.Timeouts", 3)
	viper.SetDefault("Game.KickoffLandingSpot", 25)
	viper.SetDefault("Game.SquibLandingSpot", 35)
	viper.SetDefault("Game.OnsideSpot", 45)
	viper.SetDefault("Game.TouchbackSpot", 20)
	viper.SetDefault("Game.OvertimeSpot", 75)
	viper.SetDefault("Game.DefenseNumberMin", 1)
	viper.SetDefault("Game.DefenseNumberMax", 1500)

	config.QuarterSeconds = viper.GetInt("Game.QuarterSeconds")
	config.RegulationQuarters = viper.GetInt("Game.RegulationQuarters")
	config.Timeouts = viper.GetInt("Game.Timeouts")
	config.KickoffLandingSpot = viper.GetInt("Game.KickoffLandingSpot")
	config.SquibLandingSpot = viper.GetInt("Game.SquibLandingSpot")
	config.OnsideSpot = viper.GetInt("Game.OnsideSpot")
	config.TouchbackSpot = viper.GetInt("Game.TouchbackSpot")
	config.OvertimeSpot = viper.GetInt("Game.OvertimeSpot")
	config.DefenseNumberMin = viper.GetInt("Game.DefenseNumberMin")
	config.DefenseNumberMax = viper.GetInt("Game.DefenseNumberMax")

	config.ThreadLinkBase = viper.GetString("Links.ThreadBase")
	config.MessageLinkBase = viper.GetString("Links.MessageBase")
	config.ComposeLinkBase = viper.GetString("Links.ComposeBase")
	config.AccountName = viper.GetString("Links.AccountName")

	config.GamesTableName = viper.GetString("GAMES_TABLE_NAME")
	config.AssignmentsTableName = viper.GetString("ASSIGNMENTS_TABLE_NAME")
	config.TeamsTableName = viper.GetString("TEAMS_TABLE_NAME")
	config.ResolverFunctionName = viper.GetString("RESOLVER_FUNCTION_NAME")
	config.AlertWebhookUrl = viper.GetString("ALERT_WEBHOOK_URL")
	config.OperatorTopicArn = viper.GetString("OPERATOR_TOPIC_ARN")

	return config
}

func loadEnvFiles(filenames []string) error {
	for _, file := range filenames {
		viper.SetConfigFile(file)
		viper.SetConfigType("env")
		viper.AutomaticEnv()

		if err := viper.MergeInConfig(); err != nil {
			return err
		}
	}
	return nil
}
