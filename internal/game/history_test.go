package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryBounded(t *testing.T) {
	h := NewHistory(4)

	for i := 0; i < 10; i++ {
		h.AddPlayerAction(fmt.Sprintf("action %d", i))
	}

	entries := h.GetEntries()
	assert.Len(t, entries, 4)
	assert.Equal(t, "Player: action 6", entries[0])
	assert.Equal(t, "Player: action 9", entries[3])
}

func TestHistoryEntryKinds(t *testing.T) {
	h := NewHistory(10)

	h.AddPlayerAction("talk to guard")
	h.AddNarration("You approach Guard Harlon.")
	h.AddDialogue("Guard Harlon", "Welcome to Oakvale, traveler.")
	h.AddError(fmt.Errorf("boom"))

	assert.Equal(t, []string{
		"Player: talk to guard",
		"Narrator: You approach Guard Harlon.",
		`Guard Harlon: "Welcome to Oakvale, traveler."`,
		"Error: boom",
	}, h.GetEntries())
}

func TestHistoryRestore(t *testing.T) {
	h := NewHistory(3)
	h.Restore([]string{"one", "two", "three", "four"})

	assert.Equal(t, []string{"two", "three", "four"}, h.GetEntries())
}
