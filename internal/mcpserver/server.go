// Package mcpserver exposes the game engine to MCP clients over stdio. The
// server owns one session's world state and serializes turns against it, so
// agent callers get the same one-turn-at-a-time contract the TUI has.
package mcpserver

import (
	"context"
	"fmt"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"gopkg.in/yaml.v3"

	"eldoria/internal/game"
	"eldoria/internal/game/turn"
)

const serverVersion = "1.0.0"

const historySize = 50

type Server struct {
	mu           sync.Mutex
	state        game.WorldState
	history      *game.History
	orchestrator *turn.Orchestrator

	mcpServer *mcp.Server
}

type TakeTurnInput struct {
	Input string `json:"input" jsonschema:"the player's action, in plain language"`
}

type DialogueLine struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
	Profile string `json:"profile"`
}

type VoiceRequest struct {
	Speaker      string `json:"speaker"`
	Text         string `json:"text"`
	Profile      string `json:"profile"`
	AudioLocator string `json:"audio_locator"`
}

type TakeTurnResult struct {
	Text          string            `json:"text"`
	Dialogue      []DialogueLine    `json:"dialogue"`
	VoiceRequests []VoiceRequest    `json:"voice_requests"`
	Location      string            `json:"location"`
	Quests        map[string]string `json:"quests"`
}

type GetWorldStateInput struct{}

type GetWorldStateResult struct {
	Location  string            `json:"location"`
	Visited   []string          `json:"visited"`
	Inventory []string          `json:"inventory"`
	Quests    map[string]string `json:"quests"`
	StateYAML string            `json:"state_yaml"`
}

type ResetSessionInput struct{}

type ResetSessionResult struct {
	Message string `json:"message"`
}

func New(orchestrator *turn.Orchestrator) *Server {
	s := &Server{
		state:        game.NewDefaultWorldState(),
		history:      game.NewHistory(historySize),
		orchestrator: orchestrator,
	}

	s.mcpServer = mcp.NewServer(&mcp.Implementation{Name: "eldoria", Version: serverVersion}, nil)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "take_turn",
		Description: "Submit one player action and get the resulting narration, dialogue and voice requests. World state advances by one turn.",
	}, s.handleTakeTurn)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_world_state",
		Description: "Read the current world state without advancing the session.",
	}, s.handleGetWorldState)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "reset_session",
		Description: "Discard the session and start over from the initial world snapshot.",
	}, s.handleResetSession)

	return s
}

// Run serves the session on stdio until the context ends.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) handleTakeTurn(ctx context.Context, _ *mcp.CallToolRequest, in TakeTurnInput) (*mcp.CallToolResult, TakeTurnResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, out := s.orchestrator.TakeTurn(ctx, s.state, in.Input)

	s.history.AddPlayerAction(in.Input)
	s.history.AddNarration(out.Text)
	for _, line := range out.Dialogue {
		s.history.AddDialogue(line.Speaker, line.Text)
	}
	s.state = next

	result := TakeTurnResult{
		Text:          out.Text,
		Dialogue:      make([]DialogueLine, 0, len(out.Dialogue)),
		VoiceRequests: make([]VoiceRequest, 0, len(out.VoiceRequests)),
		Location:      next.Location.Current,
		Quests:        questStatuses(next),
	}
	for _, line := range out.Dialogue {
		result.Dialogue = append(result.Dialogue, DialogueLine{
			Speaker: line.Speaker,
			Text:    line.Text,
			Profile: string(line.Profile),
		})
	}
	for _, req := range out.VoiceRequests {
		result.VoiceRequests = append(result.VoiceRequests, VoiceRequest{
			Speaker:      req.Speaker,
			Text:         req.Text,
			Profile:      string(req.Profile),
			AudioLocator: req.AudioLocator,
		})
	}

	return nil, result, nil
}

func (s *Server) handleGetWorldState(_ context.Context, _ *mcp.CallToolRequest, _ GetWorldStateInput) (*mcp.CallToolResult, GetWorldStateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := yaml.Marshal(s.state)
	if err != nil {
		return nil, GetWorldStateResult{}, fmt.Errorf("failed to marshal world state: %w", err)
	}

	return nil, GetWorldStateResult{
		Location:  s.state.Location.Current,
		Visited:   append([]string(nil), s.state.Location.Visited...),
		Inventory: append([]string(nil), s.state.Player.Inventory...),
		Quests:    questStatuses(s.state),
		StateYAML: string(data),
	}, nil
}

func (s *Server) handleResetSession(_ context.Context, _ *mcp.CallToolRequest, _ ResetSessionInput) (*mcp.CallToolResult, ResetSessionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = game.NewDefaultWorldState()
	s.history = game.NewHistory(historySize)

	return nil, ResetSessionResult{Message: "Session reset to the initial world."}, nil
}

func questStatuses(state game.WorldState) map[string]string {
	statuses := make(map[string]string, len(state.Quests))
	for id, quest := range state.Quests {
		statuses[id] = string(quest.Status)
	}
	return statuses
}
