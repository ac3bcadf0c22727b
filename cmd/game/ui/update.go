package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	dialogueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("13")).
			Bold(true)

	voiceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case turnCompletedMsg:
		return m.handleTurnCompleted(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case animationTickMsg:
		return m.handleAnimation(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m Model) handleTurnCompleted(msg turnCompletedMsg) (tea.Model, tea.Cmd) {
	if !m.loading {
		return m, nil
	}

	// Drop the loading animation line.
	m.messages = m.messages[:len(m.messages)-1]
	m.loading = false

	m.world = msg.world

	m.messages = append(m.messages, msg.output.Text)
	m.gameHistory.AddNarration(msg.output.Text)

	for i, line := range msg.output.Dialogue {
		m.messages = append(m.messages, dialogueStyle.Render(fmt.Sprintf("%s: %q", line.Speaker, line.Text)))
		m.gameHistory.AddDialogue(line.Speaker, line.Text)

		if i < len(msg.output.VoiceRequests) {
			m.messages = append(m.messages, voiceStyle.Render("  ♪ "+msg.output.VoiceRequests[i].AudioLocator))
		}
	}

	m.messages = append(m.messages, "")
	return m, nil
}

func (m Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	return m, nil
}

func (m Model) handleAnimation(msg animationTickMsg) (tea.Model, tea.Cmd) {
	if m.loading {
		m.animationFrame++
		return m, animationTimer()
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "enter":
		if strings.TrimSpace(m.input) != "" && !m.loading {
			userInput := m.input
			m.input = ""

			if strings.HasPrefix(userInput, "/") {
				return m.handleSlashCommand(userInput)
			}

			m.messages = append(m.messages, "> "+userInput)
			m.messages = append(m.messages, "")
			m.gameHistory.AddPlayerAction(userInput)
			m.loading = true
			m.animationFrame = 0
			m.messages = append(m.messages, "LOADING_ANIMATION")

			return m, tea.Batch(takeTurnCmd(m.orchestrator, m.world, userInput), animationTimer())
		}
		return m, nil

	case "backspace":
		if len(m.input) > 0 && !m.loading {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil

	default:
		if len(msg.String()) == 1 && !m.loading {
			m.input += msg.String()
		}
		return m, nil
	}
}

func (m Model) handleSlashCommand(userInput string) (tea.Model, tea.Cmd) {
	m.messages = append(m.messages, "> "+userInput)

	fields := strings.Fields(strings.ToLower(userInput))
	switch fields[0] {
	case "/save":
		name := m.sessionName
		if len(fields) > 1 {
			name = fields[1]
		}
		if name == "" {
			m.messages = append(m.messages, "Usage: /save <name>")
			break
		}
		if err := m.saves.Save(name, m.world, m.gameHistory); err != nil {
			m.messages = append(m.messages, "Failed to save session: "+err.Error())
			m.gameHistory.AddError(err)
			break
		}
		m.sessionName = name
		m.messages = append(m.messages, fmt.Sprintf("Session saved as %q.", name))

	case "/sessions":
		sessions, err := m.saves.List()
		if err != nil {
			m.messages = append(m.messages, "Failed to list sessions: "+err.Error())
			break
		}
		if len(sessions) == 0 {
			m.messages = append(m.messages, "No saved sessions.")
			break
		}
		m.messages = append(m.messages, "Saved sessions: "+strings.Join(sessions, ", "))

	case "/worldstate", "/world", "/debug":
		if !m.loggers.Debug.IsEnabled() {
			m.messages = append(m.messages, "Unknown command. Try /help")
			break
		}
		m.messages = append(m.messages, "[DEBUG] Current World State:")
		m.messages = append(m.messages, fmt.Sprintf("[DEBUG] Location: %s (visited: %v)", m.world.Location.Current, m.world.Location.Visited))
		m.messages = append(m.messages, fmt.Sprintf("[DEBUG] Inventory: %v", m.world.Player.Inventory))
		for id, quest := range m.world.Quests {
			m.messages = append(m.messages, fmt.Sprintf("[DEBUG] Quest %s: %s", id, quest.Status))
		}
		for id, npc := range m.world.NPCs {
			m.messages = append(m.messages, fmt.Sprintf("[DEBUG] NPC %s: disposition=%d memory=%v", id, npc.Disposition, npc.DialogueHistory))
		}

	case "/help":
		m.messages = append(m.messages, "Available commands:")
		m.messages = append(m.messages, "/save <name> - Save the session")
		m.messages = append(m.messages, "/sessions - List saved sessions")
		if m.loggers.Debug.IsEnabled() {
			m.messages = append(m.messages, "[DEBUG] /worldstate - Show current world state")
		}

	default:
		m.messages = append(m.messages, "Unknown command. Try /help")
	}

	m.messages = append(m.messages, "")
	return m, nil
}
