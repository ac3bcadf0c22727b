package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"eldoria/internal/game"
	"eldoria/internal/game/turn"
)

func animationTimer() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return animationTickMsg{}
	})
}

func getLoadingAnimation(frame int) string {
	arc := []string{"◜", "◠", "◝", "◞", "◡", "◟"}
	return arc[frame%len(arc)]
}

func takeTurnCmd(orchestrator *turn.Orchestrator, world game.WorldState, userInput string) tea.Cmd {
	return func() tea.Msg {
		next, output := orchestrator.TakeTurn(context.Background(), world, userInput)
		return turnCompletedMsg{
			world:     next,
			output:    output,
			userInput: userInput,
		}
	}
}
