package notification

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// Alert publishes an operator-facing diagnosis to the operator topic.
func (client *Client) Alert(ctx context.Context, subject, message string) error {
	_, err := client.sns.Publish(ctx, &sns.PublishInput{
		Subject:  aws.String(subject),
		Message:  aws.String(message),
		TopicArn: aws.String(client.cfg.OperatorTopicArn),
	})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}
