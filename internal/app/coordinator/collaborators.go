package coordinator

import (
	"context"

	"github.com/pbf-league/huddle/internal/domains/entities"
)

// GameStore persists one opaque-to-it aggregate per game, keyed by the
// immutable thread id. The schedule accessor is advisory display data.
type GameStore interface {
	PutGame(ctx context.Context, game entities.Game) error
	GetGame(ctx context.Context, threadId string) (entities.Game, error)
	GetSchedule(ctx context.Context, threadId string) (entities.Schedule, error)
}

// Directory routes coaches to their single active game and to their
// league team.
type Directory interface {
	AssignCoach(ctx context.Context, coach, threadId string) error
	ReleaseCoach(ctx context.Context, coach string) error
	GameForCoach(ctx context.Context, coach string) (string, error)
	TeamForCoach(ctx context.Context, coach string) (entities.Team, error)
}

// MessagingGateway is the external platform surface. All rendered text
// handed to it already carries any embedded correlation context.
type MessagingGateway interface {
	PublishThread(ctx context.Context, title, body string) (string, error)
	EditThread(ctx context.Context, threadId, body string) error
	PostReply(ctx context.Context, threadId, body string) (string, error)
	SendPrivateMessage(ctx context.Context, recipients []string, subject, body string) (string, error)
}

// ResolutionRequest carries the inputs of one play to the resolver.
type ResolutionRequest struct {
	Action        entities.ActionKind `json:"action"`
	Play          entities.PlayKind   `json:"play"`
	OffenseNumber int                 `json:"offenseNumber"`
	DefenseNumber int                 `json:"defenseNumber"`
}

// PlayResolver computes play outcomes. The coordinator is agnostic to
// the numeric mapping; it only checks outcome shape.
type PlayResolver interface {
	Resolve(ctx context.Context, req ResolutionRequest) (entities.Outcome, error)
}

// Notifier receives human-readable summaries of terminal and scoring
// events. Fire and forget: failures are logged and swallowed, never
// retried, and never block persistence.
type Notifier interface {
	GameEvent(ctx context.Context, game *entities.Game, event Event) error
}

// OperatorAlerter surfaces fatal per-game failures to a human operator.
type OperatorAlerter interface {
	Alert(ctx context.Context, subject, message string) error
}
