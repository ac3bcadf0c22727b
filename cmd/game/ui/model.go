package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"eldoria/internal/debug"
	"eldoria/internal/game"
	"eldoria/internal/game/save"
	"eldoria/internal/game/turn"
)

const welcomeBanner = "=== Welcome to the World of Eldoria ==="

type GameLoggers struct {
	Debug *debug.Logger
}

type Model struct {
	messages       []string
	input          string
	cursor         int
	width          int
	height         int
	loading        bool
	animationFrame int

	orchestrator *turn.Orchestrator
	world        game.WorldState
	gameHistory  *game.History
	saves        *save.Store
	sessionName  string
	loggers      GameLoggers
}

func NewModel(
	orchestrator *turn.Orchestrator,
	world game.WorldState,
	gameHistory *game.History,
	saves *save.Store,
	sessionName string,
	loggers GameLoggers,
) Model {
	messages := []string{welcomeBanner, ""}

	// The narrative context seeds the screen once, at session start.
	if world.Memory.NarrativeContext != "" {
		messages = append(messages, world.Memory.NarrativeContext, "")
	}

	if loggers.Debug.IsEnabled() {
		messages = append(messages,
			"[DEBUG] Debug commands: /worldstate, /help",
			"")
	}

	return Model{
		messages:     messages,
		input:        "",
		cursor:       0,
		orchestrator: orchestrator,
		world:        world,
		gameHistory:  gameHistory,
		saves:        saves,
		sessionName:  sessionName,
		loggers:      loggers,
	}
}

// World exposes the current state for saving on exit.
func (m Model) World() game.WorldState {
	return m.world
}

func (m Model) Init() tea.Cmd {
	return nil
}

type animationTickMsg struct{}

type turnCompletedMsg struct {
	world     game.WorldState
	output    turn.Output
	userInput string
}
