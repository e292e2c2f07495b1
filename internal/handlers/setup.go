package handlers

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/pbf-league/huddle/internal/app/coordinator"
	"github.com/pbf-league/huddle/internal/aws/notification"
	"github.com/pbf-league/huddle/internal/aws/resolver"
	"github.com/pbf-league/huddle/internal/aws/storage"
	"github.com/pbf-league/huddle/internal/discord"
	"github.com/pbf-league/huddle/internal/gateway"
	"github.com/spf13/viper"
)

var (
	engine     *coordinator.Engine
	engineOnce sync.Once
)

// getEngine wires the coordinator against its AWS and platform
// collaborators. Built once per runtime.
func getEngine() *coordinator.Engine {
	engineOnce.Do(func() {
		cfg := coordinator.NewConfig()

		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
		if err != nil {
			panic(err)
		}

		storageClient := storage.NewClient(
			dynamodb.NewFromConfig(awsCfg),
			storage.Config{
				GamesTableName:       aws.String(cfg.GamesTableName),
				AssignmentsTableName: aws.String(cfg.AssignmentsTableName),
				TeamsTableName:       aws.String(cfg.TeamsTableName),
			},
		)
		resolverClient := resolver.NewClient(
			lambda.NewFromConfig(awsCfg),
			resolver.Config{FunctionName: cfg.ResolverFunctionName},
		)
		alerter := notification.NewClient(
			sns.NewFromConfig(awsCfg),
			notification.Config{OperatorTopicArn: cfg.OperatorTopicArn},
		)
		gatewayClient := gateway.NewClient(gateway.Config{
			BaseUrl:   viper.GetString("PLATFORM_BASE_URL"),
			Community: viper.GetString("PLATFORM_COMMUNITY"),
		})
		notifier := discord.NewClient(cfg.AlertWebhookUrl)

		engine = coordinator.NewEngine(
			cfg,
			storageClient,
			storageClient,
			gatewayClient,
			resolverClient,
			notifier,
			alerter,
		)
	})
	return engine
}
