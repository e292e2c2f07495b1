package coordinator

import (
	"testing"

	"github.com/pbf-league/huddle/internal/domains/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		QuarterSeconds:     420,
		RegulationQuarters: 4,
		Timeouts:           3,
		KickoffLandingSpot: 25,
		SquibLandingSpot:   35,
		OnsideSpot:         45,
		TouchbackSpot:      20,
		OvertimeSpot:       75,
		DefenseNumberMin:   1,
		DefenseNumberMax:   1500,
		ThreadLinkBase:     "https://platform.example/comments/",
		MessageLinkBase:    "https://platform.example/message/messages/",
		ComposeLinkBase:    "https://platform.example/message/compose/",
		AccountName:        "huddlebot",
	}
}

func testGame() *entities.Game {
	game := entities.NewGame(
		entities.Team{Name: "Sharks", Tag: "sharks", Coaches: []string{"homecoach"}},
		entities.Team{Name: "Comets", Tag: "comets", Coaches: []string{"awaycoach"}},
		420,
		3,
	)
	game.Thread = "t3_abc123"
	return game
}

func gain(yards, elapsed int) entities.Outcome {
	return entities.Outcome{
		Yards:   yards,
		Elapsed: elapsed,
		Result:  entities.ResultGain,
		Score:   entities.ScoreNone,
	}
}

func TestApplyCoinToss(t *testing.T) {
	tr := NewTransitioner(testConfig())
	game := testGame()

	tr.ApplyCoinToss(game, entities.Away)

	assert.Equal(t, entities.Away, game.Status.Waiting.On)
	assert.Equal(t, entities.ActionDefer, game.Status.Waiting.Action)
}

func TestApplyDeferChoice(t *testing.T) {
	tests := []struct {
		name        string
		chooser     entities.HomeAway
		receive     bool
		wantKicking entities.HomeAway
	}{
		{"winner receives, loser kicks", entities.Away, true, entities.Home},
		{"winner defers and kicks", entities.Away, false, entities.Away},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTransitioner(testConfig())
			game := testGame()
			game.Status.Waiting = entities.Waiting{On: tt.chooser, Action: entities.ActionDefer}

			tr.ApplyDeferChoice(game, tt.receive)

			assert.Equal(t, tt.wantKicking, game.Status.Possession)
			assert.Equal(t, tt.wantKicking, game.Status.Waiting.On)
			assert.Equal(t, entities.ActionKickoff, game.Status.Waiting.Action)
		})
	}
}

func TestApplyKickoff(t *testing.T) {
	tests := []struct {
		name           string
		outcome        entities.Outcome
		wantPossession entities.HomeAway
		wantLocation   int
	}{
		{
			"touchback to landing spot",
			entities.Outcome{Elapsed: 6, Result: entities.ResultTouchback, Score: entities.ScoreNone},
			entities.Away, 25,
		},
		{
			"return to the landing yard line",
			entities.Outcome{Yards: 35, Elapsed: 8, Result: entities.ResultKickoffReturn, Score: entities.ScoreNone},
			entities.Away, 35,
		},
		{
			"onside recovered keeps possession",
			entities.Outcome{Elapsed: 5, Result: entities.ResultOnsideRecovered, Score: entities.ScoreNone},
			entities.Home, 45,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTransitioner(testConfig())
			game := testGame()
			game.Status.Possession = entities.Home
			game.Status.Waiting = entities.Waiting{On: entities.Home, Action: entities.ActionKickoff}

			events, err := tr.ApplyKickoff(game, tt.outcome)
			require.NoError(t, err)
			assert.Empty(t, events)

			assert.Equal(t, tt.wantPossession, game.Status.Possession)
			assert.Equal(t, tt.wantLocation, game.Status.Location)
			assert.Equal(t, 1, game.Status.Down)
			assert.Equal(t, 10, game.Status.Yards)
			assert.Equal(t, tt.wantPossession, game.Status.Waiting.On)
			assert.Equal(t, entities.ActionPlay, game.Status.Waiting.Action)
			assert.Equal(t, 420-tt.outcome.Elapsed, game.Status.Clock)
		})
	}
}

func TestApplyKickoffRejectsNonKickoffResult(t *testing.T) {
	tr := NewTransitioner(testConfig())
	game := testGame()

	_, err := tr.ApplyKickoff(game, gain(10, 5))
	assert.Error(t, err)
}

func TestApplyPlayCall(t *testing.T) {
	tr := NewTransitioner(testConfig())
	game := testGame()
	game.Status.Possession = entities.Away
	game.Status.Waiting = entities.Waiting{On: entities.Away, Action: entities.ActionPlay}

	tr.ApplyPlayCall(game, entities.PlayRun)

	require.NotNil(t, game.Status.PendingPlay)
	assert.Equal(t, entities.PlayRun, *game.Status.PendingPlay)
	assert.Equal(t, entities.Home, game.Status.Waiting.On)
	assert.Equal(t, entities.ActionDefense, game.Status.Waiting.Action)
}

func TestApplyPlayResultFirstDown(t *testing.T) {
	tr := NewTransitioner(testConfig())
	game := testGame()
	game.Status.Possession = entities.Home

	_, err := tr.ApplyPlayResult(game, entities.PlayRun, gain(12, 25))
	require.NoError(t, err)

	assert.Equal(t, 62, game.Status.Location)
	assert.Equal(t, 1, game.Status.Down)
	assert.Equal(t, 10, game.Status.Yards)
	assert.Equal(t, 12, game.Status.Stats(entities.Home).RushingYards)
	assert.Equal(t, 12, game.Status.Stats(entities.Home).TotalYards)
	assert.Equal(t, 25, game.Status.Stats(entities.Home).PossessionSeconds)
	assert.Equal(t, entities.ActionPlay, game.Status.Waiting.Action)
	assert.Equal(t, entities.Home, game.Status.Waiting.On)
}

func TestApplyPlayResultShortGain(t *testing.T) {
	tr := NewTransitioner(testConfig())
	game := testGame()
	game.Status.Possession = entities.Home

	_, err := tr.ApplyPlayResult(game, entities.PlayPass, gain(3, 20))
	require.NoError(t, err)

	assert.Equal(t, 53, game.Status.Location)
	assert.Equal(t, 2, game.Status.Down)
	assert.Equal(t, 7, game.Status.Yards)
	assert.Equal(t, 3, game.Status.Stats(entities.Home).PassingYards)
}

func TestApplyPlayResultTouchdownByPosition(t *testing.T) {
	tr := NewTransitioner(testConfig())
	game := testGame()
	game.Status.Possession = entities.Home
	game.Status.Location = 95
	game.Status.Yards = 5

	events, err := tr.ApplyPlayResult(game, entities.PlayRun, gain(20, 15))
	require.NoError(t, err)

	assert.Equal(t, 100, game.Status.Location)
	assert.Equal(t, 6, game.Status.Home.Points)
	assert.Equal(t, 6, game.Status.Home.Quarters[0])
	assert.Equal(t, entities.ActionConversion, game.Status.Waiting.Action)
	assert.Equal(t, entities.Home, game.Status.Waiting.On)
	require.Len(t, events, 1)
	assert.Equal(t, EventTouchdown, events[0].Kind)
}

func TestApplyPlayResultTouchdownClaimShortOfGoal(t *testing.T) {
	// The resolver may say touchdown, but field position decides.
	tr := NewTransitioner(testConfig())
	game := testGame()
	game.Status.Possession = entities.Home

	outcome := entities.Outcome{
		Yards:   5,
		Elapsed: 10,
		Result:  entities.ResultTouchdown,
		Score:   entities.ScoreTouchdown,
	}
	events, err := tr.ApplyPlayResult(game, entities.PlayRun, outcome)
	require.NoError(t, err)

	assert.Empty(t, events)
	assert.Equal(t, 0, game.Status.Home.Points)
	assert.Equal(t, 55, game.Status.Location)
	assert.Equal(t, 2, game.Status.Down)
}

func TestApplyPlayResultSafetyByPosition(t *testing.T) {
	tr := NewTransitioner(testConfig())
	game := testGame()
	game.Status.Possession = entities.Home
	game.Status.Location = 3

	events, err := tr.ApplyPlayResult(game, entities.PlayRun, gain(-7, 10))
	require.NoError(t, err)

	assert.Equal(t, 0, game.Status.Location)
	assert.Equal(t, 2, game.Status.Away.Points)
	assert.Equal(t, entities.ActionKickoff, game.Status.Waiting.Action)
	assert.Equal(t, entities.Home, game.Status.Waiting.On)
	require.Len(t, events, 1)
	assert.Equal(t, EventSafety, events[0].Kind)
	assert.Equal(t, entities.Away, events[0].Side)
}

func TestApplyPlayResultTurnoverOnDownsByCount(t *testing.T) {
	tr := NewTransitioner(testConfig())
	game := testGame()
	game.Status.Possession = entities.Home
	game.Status.Location = 40
	game.Status.Down = 4
	game.Status.Yards = 5

	_, err := tr.ApplyPlayResult(game, entities.PlayRun, gain(2, 25))
	require.NoError(t, err)

	assert.Equal(t, entities.Away, game.Status.Possession)
	assert.Equal(t, 58, game.Status.Location)
	assert.Equal(t, 1, game.Status.Down)
	assert.Equal(t, 10, game.Status.Yards)
}

func TestApplyPlayResultInterception(t *testing.T) {
	tr := NewTransitioner(testConfig())
	game := testGame()
	game.Status.Possession = entities.Home

	outcome := entities.Outcome{
		Yards:    10,
		Elapsed:  15,
		Result:   entities.ResultTurnover,
		Turnover: true,
		Score:    entities.ScoreNone,
	}
	_, err := tr.ApplyPlayResult(game, entities.PlayPass, outcome)
	require.NoError(t, err)

	assert.Equal(t, 1, game.Status.Stats(entities.Home).Interceptions)
	assert.Equal(t, entities.Away, game.Status.Possession)
	assert.Equal(t, 60, game.Status.Location)
	assert.Equal(t, entities.Away, game.Status.Waiting.On)
	assert.Equal(t, entities.ActionPlay, game.Status.Waiting.Action)
}

func TestApplyPlayResultPuntIntoEndZone(t *testing.T) {
	tr := NewTransitioner(testConfig())
	game := testGame()
	game.Status.Possession = entities.Home
	game.Status.Location = 60
	game.Status.Down = 4

	outcome := entities.Outcome{
		Yards:   45,
		Elapsed: 12,
		Result:  entities.ResultPunt,
		Score:   entities.ScoreNone,
	}
	_, err := tr.ApplyPlayResult(game, entities.PlayPunt, outcome)
	require.NoError(t, err)

	assert.Equal(t, entities.Away, game.Status.Possession)
	assert.Equal(t, 20, game.Status.Location)
}

func TestApplyPlayResultFieldGoal(t *testing.T) {
	tests := []struct {
		name           string
		result         entities.ResultKind
		score          entities.ScoreKind
		wantPoints     int
		wantMade       int
		wantPossession entities.HomeAway
		wantAction     entities.ActionKind
	}{
		{"made", entities.ResultFieldGoal, entities.ScoreFieldGoal, 3, 1, entities.Home, entities.ActionKickoff},
		{"missed", entities.ResultFieldGoalMiss, entities.ScoreNone, 0, 0, entities.Away, entities.ActionPlay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTransitioner(testConfig())
			game := testGame()
			game.Status.Possession = entities.Home
			game.Status.Location = 70
			game.Status.Down = 4

			outcome := entities.Outcome{
				Elapsed: 6,
				Result:  tt.result,
				Score:   tt.score,
			}
			_, err := tr.ApplyPlayResult(game, entities.PlayFieldGoal, outcome)
			require.NoError(t, err)

			assert.Equal(t, tt.wantPoints, game.Status.Home.Points)
			assert.Equal(t, tt.wantMade, game.Status.Stats(entities.Home).FieldGoalsMade)
			assert.Equal(t, 1, game.Status.Stats(entities.Home).FieldGoalsAttempted)
			assert.Equal(t, tt.wantPossession, game.Status.Possession)
			assert.Equal(t, tt.wantAction, game.Status.Waiting.Action)
		})
	}
}

func TestApplyPlayResultQuarterRollover(t *testing.T) {
	tr := NewTransitioner(testConfig())
	game := testGame()
	game.Status.Possession = entities.Home
	game.Status.Clock = 10

	_, err := tr.ApplyPlayResult(game, entities.PlayRun, gain(4, 30))
	require.NoError(t, err)

	assert.Equal(t, 2, game.Status.Quarter)
	assert.Equal(t, 420, game.Status.Clock)
	assert.Len(t, game.Status.Home.Quarters, 2)
	assert.Len(t, game.Status.Away.Quarters, 2)
}

func TestApplyPlayResultTiedRegulationExpiryEntersOvertime(t *testing.T) {
	tr := NewTransitioner(testConfig())
	game := testGame()
	game.Status.Possession = entities.Home
	game.Status.Quarter = 4
	game.Status.Clock = 10

	events, err := tr.ApplyPlayResult(game, entities.PlayRun, gain(4, 30))
	require.NoError(t, err)
	assert.Empty(t, events)

	assert.Equal(t, 5, game.Status.Quarter)
	assert.Equal(t, entities.QuarterOvertimeTime, game.Status.QuarterKind)
	assert.Equal(t, 420, game.Status.Clock)
	assert.Equal(t, 75, game.Status.Location)
	// Whoever was defending when regulation expired gets the ball.
	assert.Equal(t, entities.Away, game.Status.Possession)
	assert.Equal(t, entities.ActionPlay, game.Status.Waiting.Action)
}

func TestApplyPlayResultExpiryWithLeaderCompletes(t *testing.T) {
	tr := NewTransitioner(testConfig())
	game := testGame()
	game.Status.Possession = entities.Home
	game.Status.Quarter = 4
	game.Status.Clock = 10
	game.Status.Home.Points = 14
	game.Status.Away.Points = 7

	events, err := tr.ApplyPlayResult(game, entities.PlayRun, gain(4, 30))
	require.NoError(t, err)

	assert.Equal(t, entities.ActionEnd, game.Status.Waiting.Action)
	assert.Equal(t, "Sharks", game.Winner)
	require.Len(t, events, 1)
	assert.Equal(t, EventFinal, events[0].Kind)
}

func TestTouchdownAtExpiryDefersEndToConversion(t *testing.T) {
	tr := NewTransitioner(testConfig())
	game := testGame()
	game.Status.Possession = entities.Home
	game.Status.Quarter = 4
	game.Status.Clock = 5
	game.Status.Location = 95
	game.Status.Yards = 5
	game.Status.Away.Points = 6

	events, err := tr.ApplyPlayResult(game, entities.PlayRun, gain(10, 10))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, EventTouchdown, events[0].Kind)

	// Clock is out but the conversion attempt still happens.
	assert.Equal(t, 0, game.Status.Clock)
	assert.Equal(t, entities.ActionConversion, game.Status.Waiting.Action)
	assert.Equal(t, 4, game.Status.Quarter)

	pat := entities.Outcome{Result: entities.ResultKickGood, Score: entities.ScorePat}
	events, err = tr.ApplyConversion(game, entities.PlayPat, pat)
	require.NoError(t, err)

	assert.Equal(t, 7, game.Status.Home.Points)
	assert.Equal(t, entities.ActionEnd, game.Status.Waiting.Action)
	assert.Equal(t, "Sharks", game.Winner)
	require.Len(t, events, 2)
	assert.Equal(t, EventPat, events[0].Kind)
	assert.Equal(t, EventFinal, events[1].Kind)
}

func TestApplyConversion(t *testing.T) {
	tests := []struct {
		name       string
		play       entities.PlayKind
		result     entities.ResultKind
		score      entities.ScoreKind
		wantPoints int
		wantEvents int
	}{
		{"pat good", entities.PlayPat, entities.ResultKickGood, entities.ScorePat, 1, 1},
		{"pat missed", entities.PlayPat, entities.ResultKickMiss, entities.ScoreNone, 0, 0},
		{"two point good", entities.PlayTwoPoint, entities.ResultKickGood, entities.ScoreTwoPoint, 2, 1},
		{"two point failed", entities.PlayTwoPoint, entities.ResultKickMiss, entities.ScoreNone, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTransitioner(testConfig())
			game := testGame()
			game.Status.Possession = entities.Home
			game.Status.Waiting = entities.Waiting{On: entities.Home, Action: entities.ActionConversion}

			outcome := entities.Outcome{Result: tt.result, Score: tt.score}
			events, err := tr.ApplyConversion(game, tt.play, outcome)
			require.NoError(t, err)

			assert.Equal(t, tt.wantPoints, game.Status.Home.Points)
			assert.Len(t, events, tt.wantEvents)
			assert.Equal(t, entities.ActionKickoff, game.Status.Waiting.Action)
			assert.Equal(t, entities.Home, game.Status.Waiting.On)
		})
	}
}

func TestYardsToGain(t *testing.T) {
	assert.Equal(t, 10, yardsToGain(50))
	assert.Equal(t, 5, yardsToGain(95))
	assert.Equal(t, 1, yardsToGain(99))
	assert.Equal(t, 1, yardsToGain(100))
}
