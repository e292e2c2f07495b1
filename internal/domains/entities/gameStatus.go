package entities

// QuarterKind distinguishes regulation play from overtime variants.
type QuarterKind uint8

const (
	QuarterRegulation QuarterKind = iota
	QuarterOvertimeNormal
	QuarterOvertimeTime
)

func (q QuarterKind) IsOvertime() bool {
	return q == QuarterOvertimeNormal || q == QuarterOvertimeTime
}

// Waiting is the single outstanding expected-response record for a game.
// MessageId is the external id of the outbound message a reply must
// answer; empty means any reply from the expected team is acceptable.
type Waiting struct {
	On        HomeAway   `dynamodbav:"On"`
	Action    ActionKind `dynamodbav:"Action"`
	MessageId string     `dynamodbav:"MessageId"`
}

// GameStatus is the full turn state of a game. It is replaced wholesale
// on every transition; the next snapshot is fully constructed before it
// is committed.
type GameStatus struct {
	Clock       int         `dynamodbav:"Clock"`
	Quarter     int         `dynamodbav:"Quarter"`
	QuarterKind QuarterKind `dynamodbav:"QuarterKind"`
	Down        int         `dynamodbav:"Down"`
	Yards       int         `dynamodbav:"Yards"`
	Location    int         `dynamodbav:"Location"`
	Possession  HomeAway    `dynamodbav:"Possession"`

	Home TeamState `dynamodbav:"Home"`
	Away TeamState `dynamodbav:"Away"`

	Waiting Waiting `dynamodbav:"Waiting"`

	// PendingPlay holds the offense's submitted call while the
	// defense's number is still outstanding.
	PendingPlay *PlayKind `dynamodbav:"PendingPlay"`

	// MessageId is stamped when the snapshot is archived into history.
	MessageId string `dynamodbav:"MessageId"`
}

func (s *GameStatus) State(side HomeAway) *TeamState {
	if side == Home {
		return &s.Home
	}
	return &s.Away
}

func (s *GameStatus) Stats(side HomeAway) *Stats {
	return &s.State(side).Stats
}

// Copy returns a deep copy so archived snapshots cannot alias the live
// status.
func (s GameStatus) Copy() GameStatus {
	next := s
	next.Home = s.Home.Copy()
	next.Away = s.Away.Copy()
	if s.PendingPlay != nil {
		p := *s.PendingPlay
		next.PendingPlay = &p
	}
	return next
}

func NewGameStatus(quarterSeconds, timeouts int) GameStatus {
	return GameStatus{
		Clock:       quarterSeconds,
		Quarter:     1,
		QuarterKind: QuarterRegulation,
		Down:        1,
		Yards:       10,
		Location:    50,
		Possession:  Home,
		Home:        TeamState{Quarters: []int{0}, Timeouts: timeouts},
		Away:        TeamState{Quarters: []int{0}, Timeouts: timeouts},
		Waiting:     Waiting{On: Away, Action: ActionCoin},
	}
}
