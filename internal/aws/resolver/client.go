package resolver

import "github.com/aws/aws-sdk-go-v2/service/lambda"

type Config struct {
	FunctionName string
}

type Client struct {
	lambda *lambda.Client
	cfg    Config
}

func NewClient(lambdaClient *lambda.Client, cfg Config) *Client {
	return &Client{
		lambda: lambdaClient,
		cfg:    cfg,
	}
}
