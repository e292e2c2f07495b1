package coordinator

import (
	"github.com/pbf-league/huddle/internal/domains/entities"
)

// EventKind classifies notable happenings a transition produced, for
// out-of-band alerting.
type EventKind uint8

const (
	EventTouchdown EventKind = iota
	EventPat
	EventTwoPoint
	EventFieldGoal
	EventSafety
	EventFinal
)

type Event struct {
	Kind EventKind
	Side entities.HomeAway
}

// Transitioner advances a game's status. Every Apply method constructs
// the complete next snapshot before committing it to the game, so a
// failed transition never leaves a half-mutated status behind.
type Transitioner struct {
	cfg Config
}

func NewTransitioner(cfg Config) Transitioner {
	return Transitioner{cfg: cfg}
}

// ApplyCoinToss records the toss winner and hands them the
// receive/defer choice.
func (t Transitioner) ApplyCoinToss(game *entities.Game, winner entities.HomeAway) {
	next := game.Status.Copy()
	next.Waiting = entities.Waiting{On: winner, Action: entities.ActionDefer}
	game.Status = next
}

// ApplyDeferChoice records the toss winner's choice. The kicking team
// owns the ball through the kickoff.
func (t Transitioner) ApplyDeferChoice(game *entities.Game, receive bool) {
	chooser := game.Status.Waiting.On
	kicking := chooser
	if receive {
		kicking = chooser.Negate()
	}

	next := game.Status.Copy()
	next.Possession = kicking
	next.Waiting = entities.Waiting{On: kicking, Action: entities.ActionKickoff}
	game.Status = next
}

// ApplyKickoff places the ball from a resolved kickoff and opens the
// receiving team's drive.
func (t Transitioner) ApplyKickoff(game *entities.Game, outcome entities.Outcome) ([]Event, error) {
	if err := outcome.Validate(); err != nil {
		return nil, err
	}

	next := game.Status.Copy()
	kicking := next.Possession
	receiving := kicking.Negate()

	switch outcome.Result {
	case entities.ResultTouchback:
		next.Possession = receiving
		next.Location = t.cfg.KickoffLandingSpot
	case entities.ResultKickoffReturn:
		next.Possession = receiving
		next.Location = clampField(outcome.Yards)
	case entities.ResultOnsideRecovered:
		next.Location = t.cfg.OnsideSpot
	default:
		return nil, &entities.MalformedOutcomeError{Field: "result", Value: string(outcome.Result)}
	}

	startDrive(&next)
	expired := t.advanceClock(&next, outcome.Elapsed)

	var events []Event
	if expired {
		events = t.settleExpiry(game, &next)
	}
	game.Status = next
	return events, nil
}

// ApplyPlayCall stores the offense's call; the play resolves once the
// defense's number arrives.
func (t Transitioner) ApplyPlayCall(game *entities.Game, play entities.PlayKind) {
	next := game.Status.Copy()
	next.PendingPlay = &play
	next.Waiting = entities.Waiting{
		On:     next.Possession.Negate(),
		Action: entities.ActionDefense,
	}
	game.Status = next
}

// ApplyPlayResult folds a resolved play into the game: statistics,
// field position, downs, possession, score and clock, then the next
// waiting descriptor.
func (t Transitioner) ApplyPlayResult(
	game *entities.Game,
	play entities.PlayKind,
	outcome entities.Outcome,
) ([]Event, error) {
	if err := outcome.Validate(); err != nil {
		return nil, err
	}

	next := game.Status.Copy()
	next.PendingPlay = nil
	offense := next.Possession
	defense := offense.Negate()

	AddStat(next.Stats(offense), StatPossessionSeconds, outcome.Elapsed)

	var events []Event
	landed := next.Location + outcome.Yards

	switch outcome.Result {
	case entities.ResultGain, entities.ResultTouchdown, entities.ResultSafety:
		AddRushPassStat(next.Stats(offense), play, outcome.Yards)
		switch {
		case landed >= 100:
			events = append(events, t.scoreTouchdown(&next, offense)...)
		case landed <= 0:
			events = append(events, t.scoreSafety(&next, offense)...)
		default:
			next.Location = landed
			t.advanceDown(&next, outcome.Yards)
		}

	case entities.ResultTurnover:
		t.recordTurnoverStat(&next, play, offense)
		flipPossession(&next, clampField(landed))
		next.Waiting = entities.Waiting{On: defense, Action: entities.ActionPlay}

	case entities.ResultTurnoverTouchdown:
		t.recordTurnoverStat(&next, play, offense)
		next.Possession = defense
		events = append(events, t.scoreTouchdown(&next, defense)...)

	case entities.ResultTurnoverOnDowns:
		flipPossession(&next, clampField(100-landed))
		next.Waiting = entities.Waiting{On: defense, Action: entities.ActionPlay}

	case entities.ResultPunt:
		if landed >= 100 {
			flipPossession(&next, t.cfg.TouchbackSpot)
		} else {
			flipPossession(&next, clampField(100-landed))
		}
		next.Waiting = entities.Waiting{On: defense, Action: entities.ActionPlay}

	case entities.ResultFieldGoal:
		AddStat(next.Stats(offense), StatFieldGoalsAttempted, 1)
		AddStat(next.Stats(offense), StatFieldGoalsMade, 1)
		addPoints(&next, offense, entities.ScoreFieldGoal.Points())
		events = append(events, Event{Kind: EventFieldGoal, Side: offense})
		next.Waiting = entities.Waiting{On: offense, Action: entities.ActionKickoff}

	case entities.ResultFieldGoalMiss:
		AddStat(next.Stats(offense), StatFieldGoalsAttempted, 1)
		flipPossession(&next, clampField(100-next.Location))
		next.Waiting = entities.Waiting{On: defense, Action: entities.ActionPlay}

	default:
		return nil, &entities.MalformedOutcomeError{Field: "result", Value: string(outcome.Result)}
	}

	expired := t.advanceClock(&next, outcome.Elapsed)
	if expired && next.Waiting.Action != entities.ActionConversion {
		// End-of-period decision waits for the conversion attempt when
		// a touchdown is pending.
		events = append(events, t.settleExpiry(game, &next)...)
	}

	game.Status = next
	return events, nil
}

// ApplyConversion folds a resolved PAT or two-point attempt, then hands
// the ball to the opponent via kickoff unless the final period has
// expired without a tie.
func (t Transitioner) ApplyConversion(
	game *entities.Game,
	play entities.PlayKind,
	outcome entities.Outcome,
) ([]Event, error) {
	if err := outcome.Validate(); err != nil {
		return nil, err
	}

	next := game.Status.Copy()
	scoring := next.Possession

	var events []Event
	if outcome.Result == entities.ResultKickGood {
		if play == entities.PlayTwoPoint {
			addPoints(&next, scoring, entities.ScoreTwoPoint.Points())
			events = append(events, Event{Kind: EventTwoPoint, Side: scoring})
		} else {
			addPoints(&next, scoring, entities.ScorePat.Points())
			events = append(events, Event{Kind: EventPat, Side: scoring})
		}
	} else if outcome.Result != entities.ResultKickMiss {
		return nil, &entities.MalformedOutcomeError{Field: "result", Value: string(outcome.Result)}
	}

	if next.Clock <= 0 && t.finalPeriod(&next) {
		events = append(events, t.settleExpiry(game, &next)...)
	} else {
		next.Waiting = entities.Waiting{On: scoring, Action: entities.ActionKickoff}
		next.Possession = scoring
	}

	game.Status = next
	return events, nil
}

func (t Transitioner) scoreTouchdown(next *entities.GameStatus, side entities.HomeAway) []Event {
	next.Location = 100
	addPoints(next, side, entities.ScoreTouchdown.Points())
	next.Waiting = entities.Waiting{On: side, Action: entities.ActionConversion}
	return []Event{{Kind: EventTouchdown, Side: side}}
}

// scoreSafety awards two points to the defense; the conceding team
// free-kicks from its own end.
func (t Transitioner) scoreSafety(next *entities.GameStatus, offense entities.HomeAway) []Event {
	defense := offense.Negate()
	next.Location = 0
	addPoints(next, defense, entities.ScoreSafety.Points())
	next.Waiting = entities.Waiting{On: offense, Action: entities.ActionKickoff}
	return []Event{{Kind: EventSafety, Side: defense}}
}

// advanceDown handles the first-down chain for an in-bounds gain.
func (t Transitioner) advanceDown(next *entities.GameStatus, gained int) {
	if gained >= next.Yards {
		next.Down = 1
		next.Yards = yardsToGain(next.Location)
	} else {
		next.Down++
		next.Yards -= gained
		if next.Down > 4 {
			flipPossession(next, clampField(100-next.Location))
		}
	}
	next.Waiting = entities.Waiting{On: next.Possession, Action: entities.ActionPlay}
}

func (t Transitioner) recordTurnoverStat(
	next *entities.GameStatus,
	play entities.PlayKind,
	offense entities.HomeAway,
) {
	if play == entities.PlayPass {
		AddStat(next.Stats(offense), StatInterceptions, 1)
	} else {
		AddStat(next.Stats(offense), StatFumbles, 1)
	}
}

// advanceClock burns elapsed seconds, rolling into the next quarter
// when a non-final period is exhausted. Reports true when the final
// period's clock has run out.
func (t Transitioner) advanceClock(next *entities.GameStatus, elapsed int) bool {
	next.Clock -= elapsed
	if next.Clock > 0 {
		return false
	}
	next.Clock = 0
	if next.QuarterKind == entities.QuarterRegulation && next.Quarter < t.cfg.RegulationQuarters {
		next.Quarter++
		next.Clock = t.cfg.QuarterSeconds
		appendQuarter(next)
		return false
	}
	return true
}

func (t Transitioner) finalPeriod(next *entities.GameStatus) bool {
	if next.QuarterKind.IsOvertime() {
		return true
	}
	return next.Quarter >= t.cfg.RegulationQuarters
}

// settleExpiry decides between overtime and a finished game once the
// final period's clock has run out. Tied regulation rolls into an
// overtime period starting from a configured spot instead of a kickoff;
// a tied overtime ends the game as a tie.
func (t Transitioner) settleExpiry(game *entities.Game, next *entities.GameStatus) []Event {
	tied := next.Home.Points == next.Away.Points
	if tied && next.QuarterKind == entities.QuarterRegulation {
		t.enterOvertime(next)
		return nil
	}
	return t.complete(game, next)
}

func (t Transitioner) enterOvertime(next *entities.GameStatus) {
	next.Quarter++
	next.QuarterKind = entities.QuarterOvertimeTime
	next.Clock = t.cfg.QuarterSeconds
	appendQuarter(next)

	// First overtime possession goes to the side that was on defense
	// when regulation expired.
	next.Possession = next.Possession.Negate()
	next.Location = t.cfg.OvertimeSpot
	next.Down = 1
	next.Yards = yardsToGain(next.Location)
	next.PendingPlay = nil
	next.Waiting = entities.Waiting{On: next.Possession, Action: entities.ActionPlay}
}

func (t Transitioner) complete(game *entities.Game, next *entities.GameStatus) []Event {
	next.Waiting = entities.Waiting{On: next.Possession, Action: entities.ActionEnd}
	next.PendingPlay = nil

	switch {
	case next.Home.Points > next.Away.Points:
		game.Winner = game.Home.Name
	case next.Away.Points > next.Home.Points:
		game.Winner = game.Away.Name
	default:
		game.Winner = ""
	}
	return []Event{{Kind: EventFinal, Side: entities.Home}}
}

func startDrive(next *entities.GameStatus) {
	next.Down = 1
	next.Yards = yardsToGain(next.Location)
	next.PendingPlay = nil
	next.Waiting = entities.Waiting{On: next.Possession, Action: entities.ActionPlay}
}

func flipPossession(next *entities.GameStatus, location int) {
	next.Possession = next.Possession.Negate()
	next.Location = location
	next.Down = 1
	next.Yards = yardsToGain(location)
}

// yardsToGain is 10 or goal-to-go, never below 1.
func yardsToGain(location int) int {
	yards := 10
	if remaining := 100 - location; remaining < yards {
		yards = remaining
	}
	if yards < 1 {
		yards = 1
	}
	return yards
}

func clampField(location int) int {
	if location < 0 {
		return 0
	}
	if location > 100 {
		return 100
	}
	return location
}

func addPoints(next *entities.GameStatus, side entities.HomeAway, points int) {
	state := next.State(side)
	state.Points += points
	state.Quarters[len(state.Quarters)-1] += points
}

func appendQuarter(next *entities.GameStatus) {
	next.Home.Quarters = append(next.Home.Quarters, 0)
	next.Away.Quarters = append(next.Away.Quarters, 0)
}
