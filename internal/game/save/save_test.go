package save

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eldoria/internal/game"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	state := game.NewDefaultWorldState()
	state.Location.MoveTo(game.LocVillageInn)
	guard := state.NPCs[game.NPCVillageGuard]
	guard.Remember(game.TokenMentionedMerchant)
	guard.InteractionCount = 3
	state.NPCs[game.NPCVillageGuard] = guard
	quest := state.Quests[game.QuestMissingShipment]
	quest.Advance(game.QuestKnown)
	state.Quests[game.QuestMissingShipment] = quest

	history := game.NewHistory(50)
	history.AddPlayerAction("talk to guard")
	history.AddNarration("You approach Guard Harlon.")
	history.AddDialogue("Guard Harlon", "Welcome to Oakvale, traveler.")

	require.NoError(t, store.Save("trip", state, history))

	loaded, loadedHistory, err := store.Load("trip", 50)
	require.NoError(t, err)

	assert.Equal(t, state, loaded)
	assert.Equal(t, history.GetEntries(), loadedHistory.GetEntries())
}

func TestLoadMissingSession(t *testing.T) {
	store := NewStore(t.TempDir())
	_, _, err := store.Load("nope", 50)
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	sessions, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, sessions)

	state := game.NewDefaultWorldState()
	require.NoError(t, store.Save("alpha", state, game.NewHistory(10)))
	require.NoError(t, store.Save("beta", state, game.NewHistory(10)))

	sessions, err = store.List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alpha", "beta"}, sessions)
}
