package coordinator

import "errors"

// Rejection categories for turn validation. Rejections are non-fatal:
// no state mutates and the guidance text goes back to the sender.
var (
	RejectWrongAction = "WRONG_ACTION"
	RejectWrongTurn   = "WRONG_TURN"
	RejectStaleReply  = "STALE_REPLY"
)

// Rejection is a turn-validation failure with user-facing guidance.
type Rejection struct {
	Code     string
	Guidance string
}

func (r *Rejection) Error() string {
	return r.Code + ": " + r.Guidance
}

var (
	ErrGameNotFound    = errors.New("game not found")
	ErrNoActiveGame    = errors.New("no active game for coach")
	ErrBadHistoryIndex = errors.New("no such history entry")
)

// genericFailureText is what a coach sees for anything that is not a
// validation rejection.
const genericFailureText = "Something went wrong, an operator has been notified. Please wait for the game to be fixed."
