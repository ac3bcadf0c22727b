package game

// WorldState is the root aggregate for one play session. Each turn consumes
// one instance and produces a new one; nothing in this package mutates a
// state the caller still holds.
type WorldState struct {
	Player   Player           `yaml:"player"`
	Location Location         `yaml:"location"`
	NPCs     map[string]NPC   `yaml:"npcs"`
	Quests   map[string]Quest `yaml:"quests"`
	World    World            `yaml:"world"`
	Memory   Memory           `yaml:"memory"`
}

type Player struct {
	Name      string            `yaml:"name"`
	Stats     Stats             `yaml:"stats"`
	Health    Health            `yaml:"health"`
	Inventory []string          `yaml:"inventory"`
	Equipment map[string]string `yaml:"equipment"`
	Abilities []string          `yaml:"abilities"`
}

type Stats struct {
	Strength     int `yaml:"strength"`
	Dexterity    int `yaml:"dexterity"`
	Constitution int `yaml:"constitution"`
	Intelligence int `yaml:"intelligence"`
	Wisdom       int `yaml:"wisdom"`
	Charisma     int `yaml:"charisma"`
}

type Health struct {
	Current int `yaml:"current"`
	Max     int `yaml:"max"`
}

// Equipment slot names are fixed.
const (
	SlotWeapon    = "weapon"
	SlotArmor     = "armor"
	SlotAccessory = "accessory"
)

// Location tracks where the player is and everywhere they have been.
// Current is always a member of Visited.
type Location struct {
	Current string   `yaml:"current"`
	Visited []string `yaml:"visited"`
}

func (l *Location) HasVisited(id string) bool {
	for _, v := range l.Visited {
		if v == id {
			return true
		}
	}
	return false
}

// MoveTo sets the current location and records it as visited.
func (l *Location) MoveTo(id string) {
	l.Current = id
	if !l.HasVisited(id) {
		l.Visited = append(l.Visited, id)
	}
}

// MemoryToken marks something an NPC has already told or done with the
// player, so one-time dialogue lines stay one-time.
type MemoryToken string

const (
	TokenMentionedMerchant MemoryToken = "mentioned_merchant"
	TokenSharedRumor       MemoryToken = "shared_festival_rumor"
	TokenGaveShipmentTask  MemoryToken = "gave_shipment_task"
)

type NPC struct {
	Name             string        `yaml:"name"`
	Disposition      int           `yaml:"disposition"`
	Location         string        `yaml:"location"`
	State            string        `yaml:"state"`
	DialogueHistory  []MemoryToken `yaml:"dialogue_history"`
	InteractionCount int           `yaml:"interaction_count,omitempty"`
}

func (n *NPC) HasMemory(token MemoryToken) bool {
	for _, t := range n.DialogueHistory {
		if t == token {
			return true
		}
	}
	return false
}

// Remember appends the token once; duplicates are dropped.
func (n *NPC) Remember(token MemoryToken) {
	if !n.HasMemory(token) {
		n.DialogueHistory = append(n.DialogueHistory, token)
	}
}

type QuestStatus string

const (
	QuestAvailable QuestStatus = "available"
	QuestKnown     QuestStatus = "known"
	QuestActive    QuestStatus = "active"
	QuestCompleted QuestStatus = "completed"
	QuestFailed    QuestStatus = "failed"
)

var questRank = map[QuestStatus]int{
	QuestAvailable: 0,
	QuestKnown:     1,
	QuestActive:    2,
	QuestCompleted: 3,
	QuestFailed:    3,
}

type Quest struct {
	Name        string               `yaml:"name"`
	Description string               `yaml:"description"`
	Status      QuestStatus          `yaml:"status"`
	Objectives  map[string]Objective `yaml:"objectives"`
}

type Objective struct {
	Description string `yaml:"description"`
	Completed   bool   `yaml:"completed"`
}

// Advance moves the quest status forward. Transitions that would regress or
// leave a terminal status are refused, so status stays monotonic no matter
// what events a rule emits.
func (q *Quest) Advance(to QuestStatus) bool {
	from, ok := questRank[q.Status]
	target, ok2 := questRank[to]
	if !ok || !ok2 || target <= from || from >= questRank[QuestCompleted] {
		return false
	}
	q.Status = to
	return true
}

// World holds session-wide facts not tied to the player or a single NPC:
// the time of day, an append-only event log, and open-ended boolean flags.
type World struct {
	Time   string          `yaml:"time"`
	Events []string        `yaml:"events"`
	Flags  map[string]bool `yaml:"flags"`
}

type Memory struct {
	RecentEvents       []string `yaml:"recent_events"`
	ImportantDecisions []string `yaml:"important_decisions"`
	NarrativeContext   string   `yaml:"narrative_context"`
}

// Location identifiers used by the default world.
const (
	LocVillageEntrance = "village_entrance"
	LocVillageInn      = "village_inn"
	LocVillageMarket   = "village_market"
)

// NPC identifiers used by the default world.
const (
	NPCVillageGuard = "village_guard"
	NPCInnkeeper    = "innkeeper"
	NPCMerchant     = "merchant"
)

// QuestMissingShipment is the quest seeded into the default world.
const QuestMissingShipment = "missing_shipment"

// NewDefaultWorldState returns the fixed snapshot every session starts from:
// an adventurer at the gates of Oakvale on the morning of the harvest
// festival.
func NewDefaultWorldState() WorldState {
	return WorldState{
		Player: Player{
			Name: "Adventurer",
			Stats: Stats{
				Strength:     10,
				Dexterity:    10,
				Constitution: 10,
				Intelligence: 10,
				Wisdom:       10,
				Charisma:     10,
			},
			Health:    Health{Current: 20, Max: 20},
			Inventory: []string{"torch", "bedroll", "rations (3)"},
			Equipment: map[string]string{
				SlotWeapon:    "short sword",
				SlotArmor:     "leather armor",
				SlotAccessory: "lucky coin",
			},
			Abilities: []string{"strike", "dodge", "persuade"},
		},
		Location: Location{
			Current: LocVillageEntrance,
			Visited: []string{LocVillageEntrance},
		},
		NPCs: map[string]NPC{
			NPCVillageGuard: {
				Name:            "Guard Harlon",
				Disposition:     50,
				Location:        LocVillageEntrance,
				State:           "on_duty",
				DialogueHistory: []MemoryToken{},
			},
			NPCInnkeeper: {
				Name:            "Mabel",
				Disposition:     60,
				Location:        LocVillageInn,
				State:           "working",
				DialogueHistory: []MemoryToken{},
			},
			NPCMerchant: {
				Name:            "Merchant Galen",
				Disposition:     55,
				Location:        LocVillageMarket,
				State:           "fretting",
				DialogueHistory: []MemoryToken{},
			},
		},
		Quests: map[string]Quest{
			QuestMissingShipment: {
				Name:        "The Missing Shipment",
				Description: "Find the merchant's missing supplies",
				Status:      QuestAvailable,
				Objectives: map[string]Objective{
					"talk_to_merchant": {Description: "Speak with Merchant Galen"},
					"find_shipment":    {Description: "Locate the missing supplies"},
				},
			},
		},
		World: World{
			Time:   "morning",
			Events: []string{"Village festival preparations underway"},
			Flags: map[string]bool{
				"village_gates_open": true,
				"bandits_nearby":     true,
			},
		},
		Memory: Memory{
			RecentEvents:       []string{"Arrived at the village"},
			ImportantDecisions: []string{},
			NarrativeContext:   "You are an adventurer who has just arrived at the village of Oakvale, seeking fortune and glory.",
		},
	}
}
