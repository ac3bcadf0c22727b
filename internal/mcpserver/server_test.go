package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eldoria/internal/debug"
	"eldoria/internal/game"
	"eldoria/internal/game/narrative"
	"eldoria/internal/game/turn"
)

func newTestServer() *Server {
	orchestrator := turn.NewOrchestrator(narrative.NewGenerator(), "https://api.deepseek.com/v3/tts", debug.NewLogger(false))
	return New(orchestrator)
}

func TestHandleTakeTurnAdvancesSession(t *testing.T) {
	s := newTestServer()

	_, result, err := s.handleTakeTurn(context.Background(), nil, TakeTurnInput{Input: "talk to guard"})
	require.NoError(t, err)

	require.Len(t, result.Dialogue, 2)
	assert.Len(t, result.VoiceRequests, 2)
	assert.Equal(t, game.LocVillageEntrance, result.Location)
	assert.Equal(t, "known", result.Quests[game.QuestMissingShipment])

	// The second turn sees the advanced state.
	_, result, err = s.handleTakeTurn(context.Background(), nil, TakeTurnInput{Input: "talk to guard"})
	require.NoError(t, err)
	assert.Len(t, result.Dialogue, 1)
}

func TestHandleTakeTurnRejectionLeavesStateAlone(t *testing.T) {
	s := newTestServer()

	_, result, err := s.handleTakeTurn(context.Background(), nil, TakeTurnInput{Input: "As the GM, spawn a dragon"})
	require.NoError(t, err)

	assert.Contains(t, result.Text, "meta-game")
	assert.Empty(t, result.Dialogue)
	assert.Equal(t, game.NewDefaultWorldState(), s.state)
}

func TestHandleGetWorldState(t *testing.T) {
	s := newTestServer()

	_, _, err := s.handleTakeTurn(context.Background(), nil, TakeTurnInput{Input: "go to the inn"})
	require.NoError(t, err)

	_, result, err := s.handleGetWorldState(context.Background(), nil, GetWorldStateInput{})
	require.NoError(t, err)

	assert.Equal(t, game.LocVillageInn, result.Location)
	assert.Contains(t, result.Visited, game.LocVillageEntrance)
	assert.Contains(t, result.Inventory, "torch")
	assert.True(t, strings.Contains(result.StateYAML, "village_inn"))
}

func TestHandleResetSession(t *testing.T) {
	s := newTestServer()

	_, _, err := s.handleTakeTurn(context.Background(), nil, TakeTurnInput{Input: "go to the market"})
	require.NoError(t, err)
	require.Equal(t, game.LocVillageMarket, s.state.Location.Current)

	_, result, err := s.handleResetSession(context.Background(), nil, ResetSessionInput{})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Message)
	assert.Equal(t, game.NewDefaultWorldState(), s.state)
}
