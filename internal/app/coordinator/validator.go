package coordinator

import (
	"fmt"

	"github.com/pbf-league/huddle/internal/domains/entities"
)

// TurnValidator decides whether an inbound reply matches the game's
// live waiting descriptor. It is pure: no state mutates on either path.
type TurnValidator struct {
	links links
}

func NewTurnValidator(cfg Config) TurnValidator {
	return TurnValidator{links: newLinks(cfg)}
}

// Validate checks, in order: the claimed action, the responding team,
// and the correlation id. A nil return is the only path that may
// proceed to a transition.
func (v TurnValidator) Validate(
	game *entities.Game,
	coach string,
	claimed entities.ActionKind,
	messageId string,
) *Rejection {
	waiting := game.Status.Waiting

	if waiting.Action != claimed {
		return &Rejection{
			Code: RejectWrongAction,
			Guidance: fmt.Sprintf(
				"I'm not waiting on a %s for this game, are you sure you replied to the right message?",
				claimed,
			),
		}
	}

	side, ok := game.CoachSide(coach)
	if !ok || side != waiting.On {
		return &Rejection{
			Code:     RejectWrongTurn,
			Guidance: "I'm not waiting on a message from you, are you sure you responded to the right message?",
		}
	}

	if waiting.MessageId != "" && waiting.MessageId != messageId {
		link, ok := v.links.ForThing(game.Thread, waiting.MessageId)
		if !ok {
			return &Rejection{
				Code:     RejectStaleReply,
				Guidance: fmt.Sprintf("Something went wrong. Not a valid message id: %s", waiting.MessageId),
			}
		}
		kind, _ := thingKind(waiting.MessageId)
		return &Rejection{
			Code: RejectStaleReply,
			Guidance: fmt.Sprintf(
				"I'm not waiting on a reply to this %s. Please respond to this %s",
				kind,
				link,
			),
		}
	}

	return nil
}
