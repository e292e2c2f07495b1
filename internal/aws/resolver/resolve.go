package resolver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/google/uuid"
	"github.com/pbf-league/huddle/internal/app/coordinator"
	"github.com/pbf-league/huddle/internal/domains/entities"
)

var ErrEmptyOutcome = fmt.Errorf("resolver returned no payload")

type invocation struct {
	InvocationId string `json:"invocationId"`
	coordinator.ResolutionRequest
}

// Resolve invokes the play resolver function synchronously and decodes
// the outcome. The numeric mapping from submitted numbers to a result
// lives entirely on the other side of this call.
func (client *Client) Resolve(
	ctx context.Context,
	req coordinator.ResolutionRequest,
) (entities.Outcome, error) {
	payload, err := json.Marshal(invocation{
		InvocationId:      uuid.NewString(),
		ResolutionRequest: req,
	})
	if err != nil {
		return entities.Outcome{}, fmt.Errorf("failed to marshal resolution request: %w", err)
	}

	output, err := client.lambda.Invoke(ctx, &lambda.InvokeInput{
		FunctionName:   aws.String(client.cfg.FunctionName),
		Payload:        payload,
		InvocationType: types.InvocationTypeRequestResponse,
	})
	if err != nil {
		return entities.Outcome{}, fmt.Errorf("failed to invoke resolver: %w", err)
	}
	if output.FunctionError != nil {
		return entities.Outcome{}, fmt.Errorf("resolver failed: %s", *output.FunctionError)
	}
	if len(output.Payload) == 0 {
		return entities.Outcome{}, ErrEmptyOutcome
	}

	var outcome entities.Outcome
	if err := json.Unmarshal(output.Payload, &outcome); err != nil {
		return entities.Outcome{}, fmt.Errorf("failed to unmarshal outcome: %w", err)
	}
	if err := outcome.Validate(); err != nil {
		return entities.Outcome{}, err
	}
	return outcome, nil
}
