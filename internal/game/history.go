package game

import "fmt"

// History keeps the last few exchanges of a session for display and for the
// saved transcript. It is bounded so long sessions stay cheap.
type History struct {
	exchanges []string
	maxSize   int
}

func NewHistory(maxSize int) *History {
	return &History{
		exchanges: make([]string, 0, maxSize),
		maxSize:   maxSize,
	}
}

func (h *History) AddPlayerAction(input string) {
	h.add("Player: " + input)
}

func (h *History) AddNarration(text string) {
	h.add("Narrator: " + text)
}

func (h *History) AddDialogue(speaker, text string) {
	h.add(fmt.Sprintf("%s: %q", speaker, text))
}

func (h *History) AddError(err error) {
	h.add("Error: " + err.Error())
}

func (h *History) add(entry string) {
	h.exchanges = append(h.exchanges, entry)

	if len(h.exchanges) > h.maxSize {
		h.exchanges = h.exchanges[len(h.exchanges)-h.maxSize:]
	}
}

func (h *History) GetEntries() []string {
	result := make([]string, len(h.exchanges))
	copy(result, h.exchanges)
	return result
}

// Restore replaces the history with a previously saved transcript, keeping
// only the newest entries when the transcript is longer than the bound.
func (h *History) Restore(entries []string) {
	h.exchanges = h.exchanges[:0]
	for _, e := range entries {
		h.add(e)
	}
}
