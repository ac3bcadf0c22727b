// Package input normalizes and categorizes one line of raw player text.
// It knows nothing about the world; entity extraction is left to the
// narrative rules via substring checks.
package input

import (
	"regexp"
	"strings"
)

// Category is the coarse kind of action the player attempted.
type Category string

const (
	Movement        Category = "movement"
	Combat          Category = "combat"
	Dialogue        Category = "dialogue"
	ItemInteraction Category = "item_interaction"
	Observation     Category = "observation"
	Help            Category = "help"
	Other           Category = "other"
)

// Action is a successfully classified input: the normalized text plus its
// category. No other transformation happens here.
type Action struct {
	Text     string
	Category Category
}

// RejectionError is a user-input rejection. Reason is the exact text shown
// to the player; a rejected turn never mutates world state.
type RejectionError struct {
	Reason string
}

func (e *RejectionError) Error() string {
	return e.Reason
}

const (
	emptyInputReason      = "Please enter an action for your character."
	metaInstructionReason = "Please only describe actions your character would take, not meta-game instructions."
)

// Meta/GM instructions are refused outright, before categorization. All
// patterns are anchored at the start of the normalized input.
var metaPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^as the (gm|game master|dm|dungeon master)`),
	regexp.MustCompile(`^change (the world|the setting|the scene)`),
	regexp.MustCompile(`^create (a|an) (npc|character|monster)`),
	regexp.MustCompile(`^add (a|an) (item|weapon|spell)`),
	regexp.MustCompile(`^teleport\b`),
	regexp.MustCompile(`^spawn\b`),
	regexp.MustCompile(`^set\b`),
	regexp.MustCompile(`^modify\b`),
}

// Category tests are prefix-anchored and disjoint; first match wins.
var categoryPrefixes = []struct {
	category Category
	prefixes []string
}{
	{Movement, []string{"go", "walk", "run", "move", "travel", "head", "enter", "exit", "leave"}},
	{Combat, []string{"attack", "fight", "strike", "slash", "stab", "shoot", "cast", "use"}},
	{Dialogue, []string{"talk", "speak", "ask", "tell", "say", "greet", "call"}},
	{ItemInteraction, []string{"take", "grab", "pick", "get", "collect", "steal", "loot"}},
	{Observation, []string{"look", "examine", "inspect", "search", "investigate", "check"}},
	{Help, []string{"help", "what can i do", "options", "actions", "commands"}},
}

// Classify trims and lower-cases raw, rejects empty or meta-instruction
// input with a *RejectionError, and otherwise returns the normalized text
// with its category.
func Classify(raw string) (Action, error) {
	text := strings.ToLower(strings.TrimSpace(raw))

	if text == "" {
		return Action{}, &RejectionError{Reason: emptyInputReason}
	}

	for _, pattern := range metaPatterns {
		if pattern.MatchString(text) {
			return Action{}, &RejectionError{Reason: metaInstructionReason}
		}
	}

	for _, group := range categoryPrefixes {
		for _, prefix := range group.prefixes {
			if hasWordPrefix(text, prefix) {
				return Action{Text: text, Category: group.category}, nil
			}
		}
	}

	return Action{Text: text, Category: Other}, nil
}

// hasWordPrefix reports whether text starts with prefix as whole words, so
// "goblin stare" is not movement but "go to the inn" is.
func hasWordPrefix(text, prefix string) bool {
	if !strings.HasPrefix(text, prefix) {
		return false
	}
	return len(text) == len(prefix) || text[len(prefix)] == ' '
}
