package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pbf-league/huddle/internal/app/coordinator"
	"github.com/pbf-league/huddle/internal/domains/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWebhookServer(t *testing.T) (*httptest.Server, *webhookPayload) {
	t.Helper()
	payload := &webhookPayload{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(payload))
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)
	return server, payload
}

func webhookGame() *entities.Game {
	game := entities.NewGame(
		entities.Team{Name: "Sharks"},
		entities.Team{Name: "Comets"},
		420,
		3,
	)
	game.Status.Home.Points = 21
	game.Status.Away.Points = 17
	game.Status.Quarter = 3
	game.Status.Clock = 65
	return game
}

func TestGameEventScoringAlert(t *testing.T) {
	server, payload := newWebhookServer(t)
	client := NewClient(server.URL)
	game := webhookGame()

	err := client.GameEvent(context.Background(), game, coordinator.Event{
		Kind: coordinator.EventTouchdown,
		Side: entities.Home,
	})
	require.NoError(t, err)

	require.Len(t, payload.Embeds, 1)
	assert.Equal(t, "Scoring Alert", payload.Embeds[0].Title)
	assert.Contains(t, payload.Embeds[0].Description, "TOUCHDOWN SHARKS")
	assert.Contains(t, payload.Embeds[0].Description, "Comets 17 - Sharks 21 (3Q 1:05)")
}

func TestGameEventFinalBoldsWinner(t *testing.T) {
	server, payload := newWebhookServer(t)
	client := NewClient(server.URL)
	game := webhookGame()
	game.Winner = game.Home.Name

	err := client.GameEvent(context.Background(), game, coordinator.Event{
		Kind: coordinator.EventFinal,
		Side: entities.Home,
	})
	require.NoError(t, err)

	require.Len(t, payload.Embeds, 1)
	assert.Equal(t, "Final Alert", payload.Embeds[0].Title)
	assert.Equal(t, "Comets 17 - **Sharks 21**", payload.Embeds[0].Description)
}

func TestGameEventNoWebhookConfigured(t *testing.T) {
	client := NewClient("")
	game := webhookGame()

	err := client.GameEvent(context.Background(), game, coordinator.Event{
		Kind: coordinator.EventSafety,
		Side: entities.Away,
	})
	assert.Error(t, err)
}
