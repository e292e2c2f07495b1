package entities

import "strings"

// HomeAway designates one side of a game.
type HomeAway bool

const (
	Home HomeAway = true
	Away HomeAway = false
)

func (h HomeAway) Negate() HomeAway {
	return !h
}

func (h HomeAway) Name() string {
	if h == Home {
		return "home"
	}
	return "away"
}

type Team struct {
	Name    string   `dynamodbav:"Name"`
	Tag     string   `dynamodbav:"Tag"`
	Coaches []string `dynamodbav:"Coaches"`

	// Record and scheme tags are league bookkeeping, opaque to the
	// state machine.
	Record  string `dynamodbav:"Record"`
	Offense string `dynamodbav:"Offense"`
	Defense string `dynamodbav:"Defense"`
}

func (t *Team) HasCoach(coach string) bool {
	coach = strings.ToLower(coach)
	for _, c := range t.Coaches {
		if strings.ToLower(c) == coach {
			return true
		}
	}
	return false
}
