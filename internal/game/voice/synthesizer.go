// Package voice turns dialogue lines into speech-synthesis request
// descriptors. No network call happens here; the locator stands in for the
// result of an eventual real synthesis backend, which is the concern of
// whatever consumes the Request.
package voice

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Profile selects a synthesis voice.
type Profile string

const (
	ProfileNarrator  Profile = "narrator"
	ProfileNPCMale   Profile = "npc_male"
	ProfileNPCFemale Profile = "npc_female"
)

// ResolveProfile maps a requested profile string onto the fixed enum.
// Unrecognized values are not an error; they fall back to the narrator.
func ResolveProfile(requested string) Profile {
	switch Profile(requested) {
	case ProfileNarrator, ProfileNPCMale, ProfileNPCFemale:
		return Profile(requested)
	default:
		return ProfileNarrator
	}
}

// Request is a validated voice-synthesis request descriptor.
type Request struct {
	Speaker      string  `yaml:"speaker"`
	Text         string  `yaml:"text"`
	Profile      Profile `yaml:"voice_profile"`
	AudioLocator string  `yaml:"audio_locator"`
}

// Synthesize builds the request for one dialogue line. The locator is
// derived from the endpoint and resolved profile plus a random id, e.g.
// mock://audio/api.deepseek.com_v3_tts/npc_male/<id>.mp3.
func Synthesize(speaker, text, requestedProfile, endpoint string) Request {
	profile := ResolveProfile(requestedProfile)

	path := strings.TrimPrefix(endpoint, "https://")
	path = strings.TrimPrefix(path, "http://")
	path = strings.ReplaceAll(path, "/", "_")

	return Request{
		Speaker:      speaker,
		Text:         text,
		Profile:      profile,
		AudioLocator: fmt.Sprintf("mock://audio/%s/%s/%s.mp3", path, profile, uuid.NewString()),
	}
}
