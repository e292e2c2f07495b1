package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pbf-league/huddle/internal/app/coordinator"
	"github.com/pbf-league/huddle/pkg/logging"
	"go.uber.org/zap"
)

type replyRequest struct {
	Author    string `json:"author"`
	MessageId string `json:"messageId"`
	Body      string `json:"body"`
}

type replyResponse struct {
	Reply string `json:"reply"`
}

// ReplyHandler processes one inbound comment or private message pushed
// by the platform webhook. The response body is the text to send back
// to the author.
func ReplyHandler(
	ctx context.Context,
	request events.APIGatewayProxyRequest,
) (events.APIGatewayProxyResponse, error) {
	var req replyRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, nil
	}

	text, err := getEngine().HandleReply(ctx, coordinator.InboundReply{
		Author:    req.Author,
		MessageId: req.MessageId,
		Body:      req.Body,
	})
	if err != nil {
		logging.Error("reply handling failed",
			zap.String("author", req.Author),
			zap.String("message_id", req.MessageId),
			zap.Error(err),
		)
	}

	body, _ := json.Marshal(replyResponse{Reply: text})
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Body:       string(body),
	}, nil
}
