package entities

// Stats is one team's running statistics. TotalYards always equals
// PassingYards + RushingYards; the accumulator maintains that invariant
// on every write.
type Stats struct {
	PassingYards        int `dynamodbav:"PassingYards"`
	RushingYards        int `dynamodbav:"RushingYards"`
	TotalYards          int `dynamodbav:"TotalYards"`
	Interceptions       int `dynamodbav:"Interceptions"`
	Fumbles             int `dynamodbav:"Fumbles"`
	FieldGoalsMade      int `dynamodbav:"FieldGoalsMade"`
	FieldGoalsAttempted int `dynamodbav:"FieldGoalsAttempted"`
	PossessionSeconds   int `dynamodbav:"PossessionSeconds"`
}

// TeamState is one team's in-game state within a status snapshot.
type TeamState struct {
	Points   int   `dynamodbav:"Points"`
	Quarters []int `dynamodbav:"Quarters"`
	Timeouts int   `dynamodbav:"Timeouts"`
	Stats    Stats `dynamodbav:"Stats"`
}

// Copy returns a deep copy. Quarters is the only reference field.
func (t TeamState) Copy() TeamState {
	next := t
	next.Quarters = make([]int, len(t.Quarters))
	copy(next.Quarters, t.Quarters)
	return next
}
