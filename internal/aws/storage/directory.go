package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pbf-league/huddle/internal/domains/entities"
)

var (
	ErrAssignmentNotFound = fmt.Errorf("assignment not found")
	ErrTeamNotFound       = fmt.Errorf("team not found")
)

type assignment struct {
	CoachId  string `dynamodbav:"CoachId"`
	ThreadId string `dynamodbav:"ThreadId"`
}

// AssignCoach records which game thread a coach is currently playing
// in. One active game per coach.
func (client *Client) AssignCoach(ctx context.Context, coach, threadId string) error {
	av, err := attributevalue.MarshalMap(assignment{
		CoachId:  coach,
		ThreadId: threadId,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal assignment: %w", err)
	}
	_, err = client.dynamodb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: client.cfg.AssignmentsTableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put assignment: %w", err)
	}
	return nil
}

func (client *Client) ReleaseCoach(ctx context.Context, coach string) error {
	_, err := client.dynamodb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: client.cfg.AssignmentsTableName,
		Key: map[string]types.AttributeValue{
			"CoachId": &types.AttributeValueMemberS{Value: coach},
		},
	})
	if err != nil {
		return err
	}
	return nil
}

func (client *Client) GameForCoach(ctx context.Context, coach string) (string, error) {
	output, err := client.dynamodb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: client.cfg.AssignmentsTableName,
		Key: map[string]types.AttributeValue{
			"CoachId": &types.AttributeValueMemberS{Value: coach},
		},
	})
	if err != nil {
		return "", err
	}
	if output.Item == nil {
		return "", ErrAssignmentNotFound
	}
	var record assignment
	if err := attributevalue.UnmarshalMap(output.Item, &record); err != nil {
		return "", err
	}
	return record.ThreadId, nil
}

type teamRecord struct {
	CoachId string        `dynamodbav:"CoachId"`
	Team    entities.Team `dynamodbav:"Team"`
}

// TeamForCoach looks up the league team a coach belongs to.
func (client *Client) TeamForCoach(ctx context.Context, coach string) (entities.Team, error) {
	output, err := client.dynamodb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: client.cfg.TeamsTableName,
		Key: map[string]types.AttributeValue{
			"CoachId": &types.AttributeValueMemberS{Value: coach},
		},
	})
	if err != nil {
		return entities.Team{}, err
	}
	if output.Item == nil {
		return entities.Team{}, ErrTeamNotFound
	}
	var record teamRecord
	if err := attributevalue.UnmarshalMap(output.Item, &record); err != nil {
		return entities.Team{}, err
	}
	return record.Team, nil
}
