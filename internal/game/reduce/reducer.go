// Package reduce applies a turn's events to the world state. It is the only
// place world state changes, and it always works on a copy.
package reduce

import (
	"eldoria/internal/game"
	"eldoria/internal/game/events"
)

// Apply folds the events, in order, into a deep copy of state and returns
// the copy. The input state is never modified. If anything panics while
// applying, Apply fails closed and returns the original state untouched, so
// a bad event can never leave the caller holding a half-updated world.
func Apply(state game.WorldState, evs []events.Event) (next game.WorldState) {
	next = state
	defer func() {
		if r := recover(); r != nil {
			next = state
		}
	}()

	out := state.Clone()
	for _, ev := range evs {
		applyOne(&out, ev)

		if events.Significant(ev) {
			out.World.Events = append(out.World.Events, ev.Label())
			out.Memory.RecentEvents = appendRecent(out.Memory.RecentEvents, ev.Label())
		}
	}
	return out
}

// maxRecentEvents bounds memory.recent_events; world.events keeps the full
// log.
const maxRecentEvents = 20

func appendRecent(recent []string, label string) []string {
	recent = append(recent, label)
	if len(recent) > maxRecentEvents {
		recent = recent[len(recent)-maxRecentEvents:]
	}
	return recent
}

func applyOne(s *game.WorldState, ev events.Event) {
	switch e := ev.(type) {
	case events.Moved:
		s.Location.MoveTo(e.To)

	case events.SpokeWith:
		if npc, ok := s.NPCs[e.NPCID]; ok {
			npc.InteractionCount++
			s.NPCs[e.NPCID] = npc
		}

	case events.NPCMention:
		if npc, ok := s.NPCs[e.NPCID]; ok {
			npc.Remember(e.Token)
			s.NPCs[e.NPCID] = npc
		}
		if quest, ok := s.Quests[e.QuestID]; ok {
			quest.Advance(game.QuestKnown)
			s.Quests[e.QuestID] = quest
		}

	case events.ObjectiveCompleted:
		quest, ok := s.Quests[e.QuestID]
		if !ok {
			return
		}
		if obj, ok := quest.Objectives[e.ObjectiveID]; ok {
			obj.Completed = true
			quest.Objectives[e.ObjectiveID] = obj
		}
		quest.Advance(game.QuestActive)
		s.Quests[e.QuestID] = quest

	case events.ItemFound:
		s.Player.Inventory = append(s.Player.Inventory, e.Item)

	case events.DispositionChanged:
		if npc, ok := s.NPCs[e.NPCID]; ok {
			npc.Disposition += e.Delta
			s.NPCs[e.NPCID] = npc
		}

	default:
		// Observed, HelpRequested, Generic and any future vocabulary are
		// deliberate no-ops here; unrecognized events must never crash the
		// reducer.
	}
}
