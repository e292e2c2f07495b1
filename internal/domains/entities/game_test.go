package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoachSide(t *testing.T) {
	game := NewGame(
		Team{Name: "Sharks", Coaches: []string{"HomeCoach"}},
		Team{Name: "Comets", Coaches: []string{"awaycoach", "cocoach"}},
		420,
		3,
	)

	side, ok := game.CoachSide("homecoach")
	require.True(t, ok)
	assert.Equal(t, Home, side)

	side, ok = game.CoachSide("CoCoach")
	require.True(t, ok)
	assert.Equal(t, Away, side)

	_, ok = game.CoachSide("stranger")
	assert.False(t, ok)
}

func TestNewGameStatus(t *testing.T) {
	status := NewGameStatus(420, 3)

	assert.Equal(t, 420, status.Clock)
	assert.Equal(t, 1, status.Quarter)
	assert.Equal(t, QuarterRegulation, status.QuarterKind)
	assert.Equal(t, 50, status.Location)
	assert.Equal(t, Away, status.Waiting.On)
	assert.Equal(t, ActionCoin, status.Waiting.Action)
	assert.Equal(t, []int{0}, status.Home.Quarters)
	assert.Equal(t, 3, status.Away.Timeouts)
}

func TestGameStatusCopyIsDeep(t *testing.T) {
	status := NewGameStatus(420, 3)
	play := PlayPass
	status.PendingPlay = &play

	clone := status.Copy()
	clone.Home.Quarters[0] = 7
	*clone.PendingPlay = PlayRun

	assert.Equal(t, 0, status.Home.Quarters[0])
	assert.Equal(t, PlayPass, *status.PendingPlay)
}
