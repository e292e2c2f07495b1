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

type startGameRequest struct {
	HomeCoach  string `json:"homeCoach"`
	AwayCoach  string `json:"awayCoach"`
	StartTime  string `json:"startTime"`
	Location   string `json:"location"`
	Station    string `json:"station"`
	HomeRecord string `json:"homeRecord"`
	AwayRecord string `json:"awayRecord"`
}

func StartGameHandler(
	ctx context.Context,
	request events.APIGatewayProxyRequest,
) (events.APIGatewayProxyResponse, error) {
	var req startGameRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, nil
	}

	text, err := getEngine().StartGame(ctx, coordinator.StartGameRequest{
		HomeCoach:  req.HomeCoach,
		AwayCoach:  req.AwayCoach,
		StartTime:  req.StartTime,
		Location:   req.Location,
		Station:    req.Station,
		HomeRecord: req.HomeRecord,
		AwayRecord: req.AwayRecord,
	})
	if err != nil {
		logging.Error("start game failed",
			zap.String("home_coach", req.HomeCoach),
			zap.String("away_coach", req.AwayCoach),
			zap.Error(err),
		)
	}

	body, _ := json.Marshal(replyResponse{Reply: text})
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Body:       string(body),
	}, nil
}
