package main

import (
	"context"
	"fmt"

	"eldoria/cmd/game/ui"
	"eldoria/internal/config"
	"eldoria/internal/debug"
	"eldoria/internal/game"
	"eldoria/internal/game/narrative"
	"eldoria/internal/game/save"
	"eldoria/internal/game/turn"
	"eldoria/internal/logging"
	"eldoria/internal/observability"
)

const historySize = 50

func createApp(sessionName string) (ui.Model, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return ui.Model{}, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	debugLogger := debug.NewLogger(cfg.Debug)

	ctx := context.Background()
	tracingConfig := observability.LoadConfigFromEnv()
	tracerProvider, err := observability.InitTracing(ctx, tracingConfig)
	if err != nil {
		debugLogger.Printf("Failed to initialize tracing: %v", err)
		tracerProvider = nil
	} else if tracerProvider.IsEnabled() {
		debugLogger.Println("OpenTelemetry tracing initialized and enabled")
	} else {
		debugLogger.Println("OpenTelemetry tracing disabled (set OTEL_TRACES_ENABLED=true to enable)")
	}

	turnLogger, err := logging.NewTurnLogger(cfg.TurnLogPath)
	if err != nil {
		return ui.Model{}, nil, fmt.Errorf("failed to initialize turn logger: %w", err)
	}

	orchestrator := turn.NewOrchestrator(narrative.NewGenerator(), cfg.TTSEndpoint, debugLogger).
		WithTurnLogger(turnLogger)
	if tracerProvider != nil {
		orchestrator = orchestrator.WithTracer(tracerProvider.GetTracer("turn"))
	}

	saves := save.NewStore(cfg.SavesDir)

	world := game.NewDefaultWorldState()
	history := game.NewHistory(historySize)
	if sessionName != "" {
		loadedWorld, loadedHistory, err := saves.Load(sessionName, historySize)
		if err != nil {
			return ui.Model{}, nil, fmt.Errorf("failed to load session %q: %w", sessionName, err)
		}
		world = loadedWorld
		history = loadedHistory
		debugLogger.Printf("Loaded session %q at %s", sessionName, world.Location.Current)
	}

	loggers := ui.GameLoggers{
		Debug: debugLogger,
	}
	model := ui.NewModel(orchestrator, world, history, saves, sessionName, loggers)

	cleanup := func() {
		turnLogger.Close()
		if tracerProvider != nil {
			tracerProvider.Shutdown(context.Background())
		}
	}

	return model, cleanup, nil
}
