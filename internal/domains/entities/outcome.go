package entities

// ResultKind classifies how a resolved play ended.
type ResultKind string

const (
	ResultGain              ResultKind = "GAIN"
	ResultTurnover          ResultKind = "TURNOVER"
	ResultTurnoverTouchdown ResultKind = "TURNOVER_TOUCHDOWN"
	ResultTouchdown         ResultKind = "TOUCHDOWN"
	ResultTurnoverOnDowns   ResultKind = "TURNOVER_ON_DOWNS"
	ResultPunt              ResultKind = "PUNT"
	ResultTouchback         ResultKind = "TOUCHBACK"
	ResultFieldGoal         ResultKind = "FIELD_GOAL"
	ResultFieldGoalMiss     ResultKind = "FIELD_GOAL_MISS"
	ResultSafety            ResultKind = "SAFETY"
	ResultKickGood          ResultKind = "KICK_GOOD"
	ResultKickMiss          ResultKind = "KICK_MISS"
	ResultKickoffReturn     ResultKind = "KICKOFF_RETURN"
	ResultOnsideRecovered   ResultKind = "ONSIDE_RECOVERED"
)

func (r ResultKind) valid() bool {
	switch r {
	case ResultGain, ResultTurnover, ResultTurnoverTouchdown, ResultTouchdown,
		ResultTurnoverOnDowns, ResultPunt, ResultTouchback, ResultFieldGoal,
		ResultFieldGoalMiss, ResultSafety, ResultKickGood, ResultKickMiss,
		ResultKickoffReturn, ResultOnsideRecovered:
		return true
	}
	return false
}

// ScoreKind classifies the points, if any, a resolved play produced.
type ScoreKind string

const (
	ScoreNone      ScoreKind = "NONE"
	ScoreTouchdown ScoreKind = "TOUCHDOWN"
	ScoreFieldGoal ScoreKind = "FIELD_GOAL"
	ScoreSafety    ScoreKind = "SAFETY"
	ScorePat       ScoreKind = "PAT"
	ScoreTwoPoint  ScoreKind = "TWO_POINT"
)

func (s ScoreKind) valid() bool {
	switch s {
	case ScoreNone, ScoreTouchdown, ScoreFieldGoal, ScoreSafety, ScorePat, ScoreTwoPoint:
		return true
	}
	return false
}

func (s ScoreKind) Points() int {
	switch s {
	case ScoreTouchdown:
		return 6
	case ScoreFieldGoal:
		return 3
	case ScoreSafety, ScoreTwoPoint:
		return 2
	case ScorePat:
		return 1
	default:
		return 0
	}
}

// Outcome is a resolved play as returned by the play resolver. The
// coordinator is agnostic to how it was computed.
type Outcome struct {
	Yards    int        `json:"yards"`
	Elapsed  int        `json:"elapsed"`
	Result   ResultKind `json:"result"`
	Turnover bool       `json:"turnover"`
	Score    ScoreKind  `json:"score"`
}

// Validate rejects outcomes whose shape the state machine cannot apply.
// A bad outcome is fatal to the transition attempt, never guessed around.
func (o Outcome) Validate() error {
	if !o.Result.valid() {
		return &MalformedOutcomeError{Field: "result", Value: string(o.Result)}
	}
	if !o.Score.valid() {
		return &MalformedOutcomeError{Field: "score", Value: string(o.Score)}
	}
	if o.Elapsed < 0 {
		return &MalformedOutcomeError{Field: "elapsed", Value: "negative"}
	}
	return nil
}

type MalformedOutcomeError struct {
	Field string
	Value string
}

func (e *MalformedOutcomeError) Error() string {
	return "malformed outcome: bad " + e.Field + ": " + e.Value
}
