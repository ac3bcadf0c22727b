package game

// Clone returns a deep copy of the world state. The reducer copies before
// applying anything so a partial failure can never corrupt the state the
// caller retained.
func (s WorldState) Clone() WorldState {
	out := s
	out.Player = s.Player.clone()
	out.Location.Visited = copyStrings(s.Location.Visited)
	out.NPCs = make(map[string]NPC, len(s.NPCs))
	for id, npc := range s.NPCs {
		npc.DialogueHistory = copyTokens(npc.DialogueHistory)
		out.NPCs[id] = npc
	}
	out.Quests = make(map[string]Quest, len(s.Quests))
	for id, q := range s.Quests {
		objectives := make(map[string]Objective, len(q.Objectives))
		for oid, obj := range q.Objectives {
			objectives[oid] = obj
		}
		q.Objectives = objectives
		out.Quests[id] = q
	}
	out.World.Events = copyStrings(s.World.Events)
	out.World.Flags = make(map[string]bool, len(s.World.Flags))
	for k, v := range s.World.Flags {
		out.World.Flags[k] = v
	}
	out.Memory.RecentEvents = copyStrings(s.Memory.RecentEvents)
	out.Memory.ImportantDecisions = copyStrings(s.Memory.ImportantDecisions)
	return out
}

func (p Player) clone() Player {
	p.Inventory = copyStrings(p.Inventory)
	equipment := make(map[string]string, len(p.Equipment))
	for slot, item := range p.Equipment {
		equipment[slot] = item
	}
	p.Equipment = equipment
	p.Abilities = copyStrings(p.Abilities)
	return p
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyTokens(in []MemoryToken) []MemoryToken {
	if in == nil {
		return nil
	}
	out := make([]MemoryToken, len(in))
	copy(out, in)
	return out
}
