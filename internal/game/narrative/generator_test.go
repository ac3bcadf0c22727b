package narrative

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eldoria/internal/game"
	"eldoria/internal/game/events"
	"eldoria/internal/game/input"
	"eldoria/internal/game/voice"
)

func classify(t *testing.T, raw string) input.Action {
	t.Helper()
	action, err := input.Classify(raw)
	require.NoError(t, err)
	return action
}

func TestGenerateHelpShortCircuits(t *testing.T) {
	g := NewGenerator()
	result := g.Generate(game.WorldState{}, input.Action{Text: "help", Category: input.Help})

	assert.Contains(t, result.Text, "Move around")
	assert.Contains(t, result.Text, "Observe your surroundings")
	assert.Empty(t, result.Dialogue)
	assert.Equal(t, []string{"Player requested help"}, events.Labels(result.Events))
}

func TestGenerateMovementToInn(t *testing.T) {
	g := NewGenerator()
	state := game.NewDefaultWorldState()

	result := g.Generate(state, classify(t, "go to the inn"))

	assert.Contains(t, result.Text, "Prancing Pony")
	assert.Empty(t, result.Dialogue)
	assert.Equal(t, []string{"Moved from village_entrance to village_inn"}, events.Labels(result.Events))
}

func TestGenerateMovementFallback(t *testing.T) {
	g := NewGenerator()
	state := game.NewDefaultWorldState()

	result := g.Generate(state, classify(t, "go to the moon"))

	assert.Contains(t, result.Text, "don't see a clear path")
	assert.Empty(t, result.Dialogue)
	assert.Empty(t, result.Events)
}

func TestGenerateGuardFirstConversation(t *testing.T) {
	g := NewGenerator()
	state := game.NewDefaultWorldState()

	result := g.Generate(state, classify(t, "talk to guard"))

	require.Len(t, result.Dialogue, 2)
	assert.Equal(t, "Guard Harlon", result.Dialogue[0].Speaker)
	assert.Equal(t, voice.ProfileNPCMale, result.Dialogue[0].Profile)
	assert.Contains(t, result.Dialogue[1].Text, "Merchant Galen")

	assert.Equal(t, []string{
		"Spoke with Guard Harlon",
		"Guard mentioned merchant's missing shipment",
	}, events.Labels(result.Events))
}

func TestGenerateGuardRepeatConversationSkipsHint(t *testing.T) {
	g := NewGenerator()
	state := game.NewDefaultWorldState()
	guard := state.NPCs[game.NPCVillageGuard]
	guard.Remember(game.TokenMentionedMerchant)
	state.NPCs[game.NPCVillageGuard] = guard

	result := g.Generate(state, classify(t, "talk to guard"))

	require.Len(t, result.Dialogue, 1)
	assert.Contains(t, result.Dialogue[0].Text, "Welcome to Oakvale")
	assert.Equal(t, []string{"Spoke with Guard Harlon"}, events.Labels(result.Events))
}

func TestGenerateInnkeeperUsesFemaleProfile(t *testing.T) {
	g := NewGenerator()
	state := game.NewDefaultWorldState()
	state.Location.MoveTo(game.LocVillageInn)

	result := g.Generate(state, classify(t, "talk to mabel"))

	require.Len(t, result.Dialogue, 2)
	for _, line := range result.Dialogue {
		assert.Equal(t, voice.ProfileNPCFemale, line.Profile)
	}
	assert.Equal(t, []string{
		"Spoke with Mabel",
		"Mabel shared a rumor about the forest road",
	}, events.Labels(result.Events))
}

func TestGenerateMerchantCompletesObjective(t *testing.T) {
	g := NewGenerator()
	state := game.NewDefaultWorldState()
	state.Location.MoveTo(game.LocVillageMarket)

	result := g.Generate(state, classify(t, "talk to merchant"))

	require.Len(t, result.Dialogue, 2)
	assert.Equal(t, []string{
		"Spoke with Merchant Galen",
		"Merchant Galen asked you to find his shipment",
		"Completed objective talk_to_merchant of quest missing_shipment",
	}, events.Labels(result.Events))
}

func TestGenerateDialogueRulesAreLocationScoped(t *testing.T) {
	g := NewGenerator()
	state := game.NewDefaultWorldState()

	// The innkeeper is not at the entrance.
	result := g.Generate(state, classify(t, "talk to innkeeper"))
	assert.Contains(t, result.Text, "head to the inn first")
	assert.Empty(t, result.Dialogue)
	assert.Empty(t, result.Events)

	// The guard is not at the market.
	state.Location.MoveTo(game.LocVillageMarket)
	result = g.Generate(state, classify(t, "talk to guard"))
	assert.Contains(t, result.Text, "no one here")
}

func TestGenerateObservationAtEntrance(t *testing.T) {
	g := NewGenerator()
	state := game.NewDefaultWorldState()

	result := g.Generate(state, classify(t, "look around"))

	assert.Contains(t, result.Text, "Oakvale")
	assert.Equal(t, []string{"Observed village_entrance"}, events.Labels(result.Events))
}

func TestGenerateMarketItemRule(t *testing.T) {
	g := NewGenerator()
	state := game.NewDefaultWorldState()
	state.Location.MoveTo(game.LocVillageMarket)

	result := g.Generate(state, classify(t, "take the apple"))

	assert.Equal(t, []string{"Found apple at village_market"}, events.Labels(result.Events))
}

func TestGenerateDoesNotMutateState(t *testing.T) {
	g := NewGenerator()
	state := game.NewDefaultWorldState()
	before := state.Clone()

	g.Generate(state, classify(t, "talk to guard"))
	g.Generate(state, classify(t, "go to the inn"))

	assert.Equal(t, before, state)
}

func TestGenerateOtherFallbackHasNoEvents(t *testing.T) {
	g := NewGenerator()
	state := game.NewDefaultWorldState()

	result := g.Generate(state, input.Action{Text: "whistle a tune", Category: input.Other})

	assert.NotEmpty(t, result.Text)
	assert.Empty(t, result.Dialogue)
	assert.Empty(t, result.Events)
}
