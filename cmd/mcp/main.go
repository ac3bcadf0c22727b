// MCP stdio server for the Eldoria turn engine. Exposes take_turn,
// get_world_state and reset_session so agent clients can play a session the
// same way the terminal client does.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"eldoria/internal/config"
	"eldoria/internal/debug"
	"eldoria/internal/game/narrative"
	"eldoria/internal/game/turn"
	"eldoria/internal/logging"
	"eldoria/internal/mcpserver"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	debugLogger := debug.NewLogger(cfg.Debug)

	turnLogger, err := logging.NewTurnLogger(cfg.TurnLogPath)
	if err != nil {
		return fmt.Errorf("failed to initialize turn logger: %w", err)
	}
	defer turnLogger.Close()

	orchestrator := turn.NewOrchestrator(narrative.NewGenerator(), cfg.TTSEndpoint, debugLogger).
		WithTurnLogger(turnLogger)

	server := mcpserver.New(orchestrator)
	debugLogger.Println("Serving MCP session on stdio")
	return server.Run(ctx)
}
