package coordinator

import (
	"testing"

	"github.com/pbf-league/huddle/internal/domains/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindKeyword(t *testing.T) {
	tests := []struct {
		name   string
		action entities.ActionKind
		body   string
		want   string
	}{
		{"plain keyword", entities.ActionCoin, "I'll take heads!", "heads"},
		{"case insensitive", entities.ActionCoin, "TAILS never fails", "tails"},
		{"synonym maps to canonical", entities.ActionPlay, "let's kick the FG here", "field goal"},
		{"two-word keyword", entities.ActionConversion, "going for two point", "two point"},
		{"conversion synonym", entities.ActionConversion, "extra point please", "pat"},
		{"kickoff type", entities.ActionKickoff, "squib it", "squib"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := findKeyword(tt.action, tt.body)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindKeywordErrors(t *testing.T) {
	_, err := findKeyword(entities.ActionCoin, "flip it")
	assert.ErrorContains(t, err, "couldn't find")

	_, err = findKeyword(entities.ActionPlay, "run or pass, you pick")
	assert.ErrorContains(t, err, "multiple")
}

func TestExtractNumber(t *testing.T) {
	number, err := extractNumber("I'll go with 743 this time", 1, 1500)
	require.NoError(t, err)
	assert.Equal(t, 743, number)
}

func TestExtractNumberErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no number", "hut hut hike"},
		{"multiple numbers", "either 3 or 400"},
		{"below range", "0"},
		{"above range", "1501"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := extractNumber(tt.body, 1, 1500)
			assert.Error(t, err)
		})
	}
}
