package storage

import "github.com/aws/aws-sdk-go-v2/service/dynamodb"

type Config struct {
	GamesTableName       *string
	AssignmentsTableName *string
	TeamsTableName       *string
}

type Client struct {
	dynamodb *dynamodb.Client
	cfg      Config
}

func NewClient(dynamoClient *dynamodb.Client, cfg Config) *Client {
	return &Client{
		dynamodb: dynamoClient,
		cfg:      cfg,
	}
}
