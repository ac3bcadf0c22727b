// Package events defines the closed vocabulary of things the narrative step
// can report happening. The reducer consumes these; anything it does not
// model reduces to a no-op, so the generator can grow its vocabulary without
// a lockstep reducer change.
package events

import (
	"fmt"
	"strings"

	"eldoria/internal/game"
)

// Event is one semantic effect of a turn. Label is the canonical
// human-readable form; events whose label starts with a significant verb
// (Moved, Spoke, Completed, Found) are additionally appended verbatim to the
// world event log.
type Event interface {
	Label() string
}

var significantVerbs = []string{"Moved", "Spoke", "Completed", "Found"}

// Significant reports whether the event belongs in the world event log.
func Significant(e Event) bool {
	label := e.Label()
	for _, verb := range significantVerbs {
		if strings.HasPrefix(label, verb) {
			return true
		}
	}
	return false
}

// Moved records the player travelling between two locations.
type Moved struct {
	From string
	To   string
}

func (e Moved) Label() string {
	return fmt.Sprintf("Moved from %s to %s", e.From, e.To)
}

// SpokeWith records a generic conversation with an NPC.
type SpokeWith struct {
	NPCID string
	Name  string
}

func (e SpokeWith) Label() string {
	return "Spoke with " + e.Name
}

// NPCMention records an NPC telling the player something that should only be
// told once. Applying it stores Token in the NPC's dialogue history and, when
// QuestID names a quest still available, advances that quest to known.
type NPCMention struct {
	NPCID   string
	Token   game.MemoryToken
	QuestID string
	Text    string
}

func (e NPCMention) Label() string {
	return e.Text
}

// ObjectiveCompleted records a quest objective being fulfilled. Applying it
// marks the objective complete and advances the quest to active.
type ObjectiveCompleted struct {
	QuestID     string
	ObjectiveID string
}

func (e ObjectiveCompleted) Label() string {
	return fmt.Sprintf("Completed objective %s of quest %s", e.ObjectiveID, e.QuestID)
}

// ItemFound records the player acquiring an item.
type ItemFound struct {
	Item  string
	Where string
}

func (e ItemFound) Label() string {
	return fmt.Sprintf("Found %s at %s", e.Item, e.Where)
}

// DispositionChanged records an NPC's affinity toward the player shifting.
type DispositionChanged struct {
	NPCID string
	Delta int
}

func (e DispositionChanged) Label() string {
	return fmt.Sprintf("Disposition of %s changed by %d", e.NPCID, e.Delta)
}

// Observed records the player studying a location.
type Observed struct {
	LocationID string
}

func (e Observed) Label() string {
	return "Observed " + e.LocationID
}

// HelpRequested records the help short-circuit firing.
type HelpRequested struct{}

func (e HelpRequested) Label() string {
	return "Player requested help"
}

// Generic carries an event the reducer has no handler for. It exists so new
// narrative vocabulary degrades to a safe no-op instead of a dropped turn.
type Generic struct {
	Text string
}

func (e Generic) Label() string {
	return e.Text
}

// Labels renders a slice of events to their canonical strings, preserving
// order.
func Labels(evs []Event) []string {
	out := make([]string, len(evs))
	for i, e := range evs {
		out[i] = e.Label()
	}
	return out
}
