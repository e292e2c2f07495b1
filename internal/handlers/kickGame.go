package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pbf-league/huddle/pkg/logging"
	"go.uber.org/zap"
)

type kickGameRequest struct {
	ThreadId string `json:"threadId"`
	Index    int    `json:"index"`
}

// KickGameHandler is the operator recovery entrypoint: roll a game back
// to one of its archived snapshots.
func KickGameHandler(
	ctx context.Context,
	request events.APIGatewayProxyRequest,
) (events.APIGatewayProxyResponse, error) {
	var req kickGameRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, nil
	}

	text, err := getEngine().KickGame(ctx, req.ThreadId, req.Index)
	if err != nil {
		logging.Error("kick game failed",
			zap.String("thread", req.ThreadId),
			zap.Int("index", req.Index),
			zap.Error(err),
		)
	}

	body, _ := json.Marshal(replyResponse{Reply: text})
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Body:       string(body),
	}, nil
}
