package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeValidate(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		wantErr bool
	}{
		{
			"valid gain",
			Outcome{Yards: 5, Elapsed: 20, Result: ResultGain, Score: ScoreNone},
			false,
		},
		{
			"valid touchdown",
			Outcome{Yards: 40, Elapsed: 12, Result: ResultTouchdown, Score: ScoreTouchdown},
			false,
		},
		{
			"empty result",
			Outcome{Score: ScoreNone},
			true,
		},
		{
			"unknown result",
			Outcome{Result: ResultKind("LATERAL"), Score: ScoreNone},
			true,
		},
		{
			"empty score",
			Outcome{Result: ResultGain},
			true,
		},
		{
			"negative elapsed",
			Outcome{Result: ResultGain, Score: ScoreNone, Elapsed: -1},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.outcome.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScoreKindPoints(t *testing.T) {
	assert.Equal(t, 6, ScoreTouchdown.Points())
	assert.Equal(t, 3, ScoreFieldGoal.Points())
	assert.Equal(t, 2, ScoreSafety.Points())
	assert.Equal(t, 2, ScoreTwoPoint.Points())
	assert.Equal(t, 1, ScorePat.Points())
	assert.Equal(t, 0, ScoreNone.Points())
}
