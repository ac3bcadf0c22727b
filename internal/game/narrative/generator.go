// Package narrative resolves a classified action against the world and
// produces narration, NPC dialogue, and event tags. It only reads state;
// every effect travels as an event for the reducer to apply.
package narrative

import (
	"strings"

	"eldoria/internal/game"
	"eldoria/internal/game/events"
	"eldoria/internal/game/input"
	"eldoria/internal/game/voice"
)

// DialogueLine is one spoken line, tagged with the voice profile the
// synthesizer should use for it.
type DialogueLine struct {
	Speaker string        `yaml:"speaker"`
	Text    string        `yaml:"text"`
	Profile voice.Profile `yaml:"voice_profile"`
}

// Result is everything one turn's narration produced.
type Result struct {
	Text     string
	Dialogue []DialogueLine
	Events   []events.Event
}

// rule matches when any keyword is contained in the normalized input (an
// empty keyword list always matches) and builds its response from the
// current world state.
type rule struct {
	keywords []string
	respond  func(s game.WorldState) Result
}

// tableKey addresses one ordered rule list.
type tableKey struct {
	location string
	category input.Category
}

// Generator dispatches actions through a (location, category) rule table.
type Generator struct {
	rules     map[tableKey][]rule
	fallbacks map[input.Category]string
}

func NewGenerator() *Generator {
	return &Generator{
		rules:     defaultRules(),
		fallbacks: defaultFallbacks(),
	}
}

const helpText = `As an adventurer in this world, you can:
- Move around (go north, enter the cave, etc.)
- Talk to characters (talk to guard, ask innkeeper about rumors)
- Interact with items (take sword, examine chest)
- Fight enemies (attack goblin, defend against wolf)
- Observe your surroundings (look around, inspect wall)

What would you like to do?`

// Generate resolves the action against the rules for the player's current
// location. Help never consults state; an unmatched action yields the
// category's fallback narration with no dialogue and no events.
func (g *Generator) Generate(state game.WorldState, action input.Action) Result {
	if action.Category == input.Help {
		return Result{
			Text:   helpText,
			Events: []events.Event{events.HelpRequested{}},
		}
	}

	key := tableKey{location: state.Location.Current, category: action.Category}
	for _, r := range g.rules[key] {
		if r.matches(action.Text) {
			return r.respond(state)
		}
	}

	return Result{Text: g.fallback(action.Category)}
}

func (r rule) matches(text string) bool {
	if len(r.keywords) == 0 {
		return true
	}
	for _, kw := range r.keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func (g *Generator) fallback(category input.Category) string {
	if text, ok := g.fallbacks[category]; ok {
		return text
	}
	return g.fallbacks[input.Other]
}

