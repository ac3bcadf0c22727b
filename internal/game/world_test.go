package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloneIsIndependent(t *testing.T) {
	original := NewDefaultWorldState()
	clone := original.Clone()

	assert.Equal(t, original, clone)

	clone.Player.Inventory = append(clone.Player.Inventory, "stolen goose")
	clone.Player.Equipment[SlotWeapon] = "rusty dagger"
	clone.Location.MoveTo(LocVillageInn)
	guard := clone.NPCs[NPCVillageGuard]
	guard.Remember(TokenMentionedMerchant)
	guard.Disposition = 0
	clone.NPCs[NPCVillageGuard] = guard
	quest := clone.Quests[QuestMissingShipment]
	quest.Objectives["talk_to_merchant"] = Objective{Description: "changed", Completed: true}
	clone.Quests[QuestMissingShipment] = quest
	clone.World.Events = append(clone.World.Events, "clone-only event")
	clone.World.Flags["village_gates_open"] = false
	clone.Memory.RecentEvents = append(clone.Memory.RecentEvents, "clone memory")

	assert.Equal(t, NewDefaultWorldState(), original)
}

func TestMoveToRecordsVisitedOnce(t *testing.T) {
	loc := Location{Current: LocVillageEntrance, Visited: []string{LocVillageEntrance}}

	loc.MoveTo(LocVillageInn)
	assert.Equal(t, LocVillageInn, loc.Current)
	assert.True(t, loc.HasVisited(LocVillageInn))

	loc.MoveTo(LocVillageEntrance)
	loc.MoveTo(LocVillageInn)
	assert.Equal(t, []string{LocVillageEntrance, LocVillageInn}, loc.Visited)
}

func TestRememberDeduplicates(t *testing.T) {
	npc := NPC{Name: "Guard Harlon"}

	npc.Remember(TokenMentionedMerchant)
	npc.Remember(TokenMentionedMerchant)
	npc.Remember(TokenSharedRumor)

	assert.Equal(t, []MemoryToken{TokenMentionedMerchant, TokenSharedRumor}, npc.DialogueHistory)
	assert.True(t, npc.HasMemory(TokenMentionedMerchant))
	assert.False(t, npc.HasMemory(TokenGaveShipmentTask))
}

func TestQuestAdvanceIsMonotonic(t *testing.T) {
	q := Quest{Status: QuestAvailable}

	assert.True(t, q.Advance(QuestKnown))
	assert.Equal(t, QuestKnown, q.Status)

	// No going back.
	assert.False(t, q.Advance(QuestAvailable))
	assert.Equal(t, QuestKnown, q.Status)

	// Skipping forward is fine.
	assert.True(t, q.Advance(QuestCompleted))
	assert.Equal(t, QuestCompleted, q.Status)

	// Terminal states stay terminal.
	assert.False(t, q.Advance(QuestFailed))
	assert.Equal(t, QuestCompleted, q.Status)
}

func TestQuestAdvanceRejectsUnknownStatus(t *testing.T) {
	q := Quest{Status: QuestActive}
	assert.False(t, q.Advance(QuestStatus("paused")))
	assert.Equal(t, QuestActive, q.Status)
}

func TestDefaultWorldState(t *testing.T) {
	s := NewDefaultWorldState()

	assert.Equal(t, "Adventurer", s.Player.Name)
	assert.Equal(t, 20, s.Player.Health.Max)
	assert.Equal(t, LocVillageEntrance, s.Location.Current)
	assert.True(t, s.Location.HasVisited(LocVillageEntrance))
	assert.Len(t, s.NPCs, 3)
	assert.Equal(t, QuestAvailable, s.Quests[QuestMissingShipment].Status)
	assert.True(t, s.World.Flags["village_gates_open"])
}
