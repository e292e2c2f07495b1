package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/pbf-league/huddle/internal/app/coordinator"
	"github.com/pbf-league/huddle/internal/domains/entities"
)

// GameEvent maps a coordinator event to a webhook alert. Implements
// coordinator.Notifier.
func (c *Client) GameEvent(ctx context.Context, game *entities.Game, event coordinator.Event) error {
	team := game.Team(event.Side).Name

	switch event.Kind {
	case coordinator.EventTouchdown:
		return c.score(ctx, game, fmt.Sprintf("**Touchdown %s!**", team))
	case coordinator.EventPat:
		return c.score(ctx, game, fmt.Sprintf("**%s PAT is good**", team))
	case coordinator.EventTwoPoint:
		return c.score(ctx, game, fmt.Sprintf("**%s two-point conversion is good**", team))
	case coordinator.EventFieldGoal:
		return c.score(ctx, game, fmt.Sprintf("**%s field goal is good!**", team))
	case coordinator.EventSafety:
		return c.score(ctx, game, fmt.Sprintf("**%s safety!**", team))
	case coordinator.EventFinal:
		return c.final(ctx, game)
	default:
		return fmt.Errorf("unknown event kind: %d", event.Kind)
	}
}

func scoreLine(game *entities.Game) string {
	return fmt.Sprintf("%s %d - %s %d (%dQ %d:%02d)",
		game.Away.Name,
		game.Status.Away.Points,
		game.Home.Name,
		game.Status.Home.Points,
		game.Status.Quarter,
		game.Status.Clock/60,
		game.Status.Clock%60,
	)
}

func (c *Client) score(ctx context.Context, game *entities.Game, message string) error {
	return c.send(ctx, "Scoring Alert", strings.ToUpper(message)+"\n"+scoreLine(game))
}

func (c *Client) final(ctx context.Context, game *entities.Game) error {
	var message string
	switch game.Winner {
	case game.Home.Name:
		message = fmt.Sprintf("%s %d - **%s %d**",
			game.Away.Name, game.Status.Away.Points,
			game.Home.Name, game.Status.Home.Points)
	case game.Away.Name:
		message = fmt.Sprintf("**%s %d** - %s %d",
			game.Away.Name, game.Status.Away.Points,
			game.Home.Name, game.Status.Home.Points)
	default:
		message = fmt.Sprintf("Game between %s and %s has ended with no winner",
			game.Away.Name, game.Home.Name)
	}
	return c.send(ctx, "Final Alert", message)
}
