package notification

import "github.com/aws/aws-sdk-go-v2/service/sns"

type Config struct {
	OperatorTopicArn string
}

type Client struct {
	sns *sns.Client
	cfg Config
}

func NewClient(snsClient *sns.Client, cfg Config) *Client {
	return &Client{
		sns: snsClient,
		cfg: cfg,
	}
}
