package coordinator

import (
	"fmt"

	"github.com/pbf-league/huddle/internal/domains/entities"
)

// StatName names a field of entities.Stats for delta application.
type StatName string

const (
	StatPassingYards        StatName = "passingYards"
	StatRushingYards        StatName = "rushingYards"
	StatInterceptions       StatName = "interceptions"
	StatFumbles             StatName = "fumbles"
	StatFieldGoalsMade      StatName = "fieldGoalsMade"
	StatFieldGoalsAttempted StatName = "fieldGoalsAttempted"
	StatPossessionSeconds   StatName = "possessionSeconds"
)

// AddStat applies a delta to the named stat. Writes to passing or
// rushing yards also update total yards in the same call, so no caller
// ever observes total != passing + rushing. An unknown name is a
// programming error.
func AddStat(stats *entities.Stats, name StatName, delta int) {
	switch name {
	case StatPassingYards:
		stats.PassingYards += delta
		stats.TotalYards += delta
	case StatRushingYards:
		stats.RushingYards += delta
		stats.TotalYards += delta
	case StatInterceptions:
		stats.Interceptions += delta
	case StatFumbles:
		stats.Fumbles += delta
	case StatFieldGoalsMade:
		stats.FieldGoalsMade += delta
	case StatFieldGoalsAttempted:
		stats.FieldGoalsAttempted += delta
	case StatPossessionSeconds:
		stats.PossessionSeconds += delta
	default:
		panic(fmt.Sprintf("unknown stat name: %s", name))
	}
}

// AddRushPassStat routes yardage to the right bucket for a run or pass
// play. Other play kinds carry no rush/pass yardage.
func AddRushPassStat(stats *entities.Stats, play entities.PlayKind, yards int) {
	switch play {
	case entities.PlayRun:
		AddStat(stats, StatRushingYards, yards)
	case entities.PlayPass:
		AddStat(stats, StatPassingYards, yards)
	}
}
