package voice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const endpoint = "https://api.deepseek.com/v3/tts"

func TestResolveProfile(t *testing.T) {
	assert.Equal(t, ProfileNarrator, ResolveProfile("narrator"))
	assert.Equal(t, ProfileNPCMale, ResolveProfile("npc_male"))
	assert.Equal(t, ProfileNPCFemale, ResolveProfile("npc_female"))

	// Unknown profiles fall back silently.
	assert.Equal(t, ProfileNarrator, ResolveProfile("dragon"))
	assert.Equal(t, ProfileNarrator, ResolveProfile(""))
}

func TestSynthesize(t *testing.T) {
	req := Synthesize("Guard Harlon", "Welcome to Oakvale, traveler.", "npc_male", endpoint)

	assert.Equal(t, "Guard Harlon", req.Speaker)
	assert.Equal(t, "Welcome to Oakvale, traveler.", req.Text)
	assert.Equal(t, ProfileNPCMale, req.Profile)
	assert.True(t, strings.HasPrefix(req.AudioLocator, "mock://audio/api.deepseek.com_v3_tts/npc_male/"), req.AudioLocator)
	assert.True(t, strings.HasSuffix(req.AudioLocator, ".mp3"), req.AudioLocator)
}

func TestSynthesizeUnknownProfileFallsBack(t *testing.T) {
	req := Synthesize("???", "mystery line", "ghost", endpoint)

	assert.Equal(t, ProfileNarrator, req.Profile)
	assert.Contains(t, req.AudioLocator, "/narrator/")
}

func TestSynthesizeLocatorsAreUnique(t *testing.T) {
	a := Synthesize("n", "line", "narrator", endpoint)
	b := Synthesize("n", "line", "narrator", endpoint)
	assert.NotEqual(t, a.AudioLocator, b.AudioLocator)
}
