package entities

import (
	"strings"
	"time"
)

// Game is the aggregate root for one contest. Thread is assigned when
// the game thread is published and never changes afterwards.
type Game struct {
	Thread string `dynamodbav:"Thread"`

	Home Team `dynamodbav:"Home"`
	Away Team `dynamodbav:"Away"`

	StartTime string `dynamodbav:"StartTime"`
	Location  string `dynamodbav:"Location"`
	Station   string `dynamodbav:"Station"`

	Status GameStatus `dynamodbav:"Status"`

	// PrevStatuses is the rollback log, most recent first, capped at
	// three entries.
	PrevStatuses []GameStatus `dynamodbav:"PrevStatuses"`

	// Dirty is true between a state mutation and its successful
	// persistence and republish.
	Dirty   bool   `dynamodbav:"Dirty"`
	Errored bool   `dynamodbav:"Errored"`
	Winner  string `dynamodbav:"Winner"`
}

// Schedule carries advisory wake times owned by the store. Display
// only; never a transition trigger.
type Schedule struct {
	Playclock time.Time `dynamodbav:"Playclock"`
	Deadline  time.Time `dynamodbav:"Deadline"`
}

func NewGame(home, away Team, quarterSeconds, timeouts int) *Game {
	return &Game{
		Home:   home,
		Away:   away,
		Status: NewGameStatus(quarterSeconds, timeouts),
	}
}

func (g *Game) Team(side HomeAway) *Team {
	if side == Home {
		return &g.Home
	}
	return &g.Away
}

// CoachSide reports which side a coach belongs to.
func (g *Game) CoachSide(coach string) (HomeAway, bool) {
	coach = strings.ToLower(coach)
	if g.Home.HasCoach(coach) {
		return Home, true
	}
	if g.Away.HasCoach(coach) {
		return Away, true
	}
	return Home, false
}
