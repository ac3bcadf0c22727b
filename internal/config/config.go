// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Debug enables the debug.log file logger.
	Debug bool `env:"ELDORIA_DEBUG" envDefault:"false"`

	// TTSEndpoint is the text-to-speech endpoint voice requests are
	// addressed to. No network call is ever made to it; it only shapes the
	// audio locators.
	TTSEndpoint string `env:"ELDORIA_TTS_ENDPOINT" envDefault:"https://api.deepseek.com/v3/tts"`

	// TurnLogPath is the sqlite database the turn log is written to.
	TurnLogPath string `env:"ELDORIA_TURN_LOG" envDefault:"./turns.db"`

	// SavesDir is where session saves live, one subdirectory per session.
	SavesDir string `env:"ELDORIA_SAVES_DIR" envDefault:".saves"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
