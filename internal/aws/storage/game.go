package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pbf-league/huddle/internal/domains/entities"
)

var (
	ErrGameNotFound      = fmt.Errorf("game not found")
	ErrUnsupportedSchema = fmt.Errorf("unsupported game schema version")
	ErrMissingThreadId   = fmt.Errorf("game has no thread id")
	ErrScheduleNotFound  = fmt.Errorf("schedule not found")
)

const currentSchemaVersion = 1

// gameRecord is the versioned persisted shape of a game aggregate.
type gameRecord struct {
	ThreadId      string        `dynamodbav:"ThreadId"`
	SchemaVersion int           `dynamodbav:"SchemaVersion"`
	Game          entities.Game `dynamodbav:"Game"`
	UpdatedAt     time.Time     `dynamodbav:"UpdatedAt"`
}

func (client *Client) PutGame(ctx context.Context, game entities.Game) error {
	if game.Thread == "" {
		return ErrMissingThreadId
	}
	record := gameRecord{
		ThreadId:      game.Thread,
		SchemaVersion: currentSchemaVersion,
		Game:          game,
		UpdatedAt:     time.Now().UTC(),
	}
	av, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("failed to marshal game record: %w", err)
	}
	_, err = client.dynamodb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: client.cfg.GamesTableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put game: %w", err)
	}
	return nil
}

func (client *Client) GetGame(ctx context.Context, threadId string) (entities.Game, error) {
	output, err := client.dynamodb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: client.cfg.GamesTableName,
		Key: map[string]types.AttributeValue{
			"ThreadId": &types.AttributeValueMemberS{
				Value: threadId,
			},
		},
	})
	if err != nil {
		return entities.Game{}, err
	}
	if output.Item == nil {
		return entities.Game{}, ErrGameNotFound
	}
	var record gameRecord
	if err := attributevalue.UnmarshalMap(output.Item, &record); err != nil {
		return entities.Game{}, err
	}
	if record.SchemaVersion != currentSchemaVersion {
		return entities.Game{}, fmt.Errorf("%w: %d", ErrUnsupportedSchema, record.SchemaVersion)
	}
	return record.Game, nil
}

// GetSchedule reads the advisory wake times maintained outside the
// coordinator. Used only for display.
func (client *Client) GetSchedule(ctx context.Context, threadId string) (entities.Schedule, error) {
	output, err := client.dynamodb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: client.cfg.GamesTableName,
		Key: map[string]types.AttributeValue{
			"ThreadId": &types.AttributeValueMemberS{
				Value: threadId,
			},
		},
		ProjectionExpression: ptr("Playclock, Deadline"),
	})
	if err != nil {
		return entities.Schedule{}, err
	}
	if output.Item == nil {
		return entities.Schedule{}, ErrScheduleNotFound
	}
	var schedule entities.Schedule
	if err := attributevalue.UnmarshalMap(output.Item, &schedule); err != nil {
		return entities.Schedule{}, err
	}
	return schedule, nil
}

func ptr(s string) *string {
	return &s
}
