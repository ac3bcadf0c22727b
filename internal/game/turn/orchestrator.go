// Package turn composes the classifier, generator, reducer and voice
// synthesizer into single request/response turns. Orchestrator.TakeTurn is
// the only entry point the surrounding UI calls.
package turn

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"eldoria/internal/debug"
	"eldoria/internal/game"
	"eldoria/internal/game/events"
	"eldoria/internal/game/input"
	"eldoria/internal/game/narrative"
	"eldoria/internal/game/reduce"
	"eldoria/internal/game/voice"
	"eldoria/internal/logging"
)

// internalFaultMessage is what the player sees when a turn fails for any
// reason that is not their input's fault.
const internalFaultMessage = "Something went wrong processing that action. The world is unchanged; try something else."

// Output is everything one turn hands back to the caller besides the next
// world state. VoiceRequests is index-aligned with Dialogue.
type Output struct {
	Text          string
	Dialogue      []narrative.DialogueLine
	VoiceRequests []voice.Request
}

// Orchestrator runs turns against a caller-held world state. Callers must
// serialize turns for one session; the orchestrator itself holds no state
// between calls.
type Orchestrator struct {
	generator   *narrative.Generator
	ttsEndpoint string
	debugLogger *debug.Logger
	tracer      trace.Tracer
	turnLog     *logging.TurnLogger
}

func NewOrchestrator(generator *narrative.Generator, ttsEndpoint string, debugLogger *debug.Logger) *Orchestrator {
	return &Orchestrator{
		generator:   generator,
		ttsEndpoint: ttsEndpoint,
		debugLogger: debugLogger,
		tracer:      trace.NewNoopTracerProvider().Tracer("turn"),
	}
}

// WithTracer makes every turn open a span on the given tracer.
func (o *Orchestrator) WithTracer(tracer trace.Tracer) *Orchestrator {
	o.tracer = tracer
	return o
}

// WithTurnLogger records every completed turn to the sqlite turn log.
// Logging is best-effort: a logging failure never fails the turn.
func (o *Orchestrator) WithTurnLogger(logger *logging.TurnLogger) *Orchestrator {
	o.turnLog = logger
	return o
}

// TakeTurn runs one full turn: classify the raw input, generate narrative
// and events against state, reduce the events into the next state, and
// synthesize one voice request per dialogue line. Rejected input returns
// state unchanged with the rejection reason as the output text. A panic
// anywhere below is caught here and downgraded to a generic message, with
// next left at whatever state was valid just before the failing step.
func (o *Orchestrator) TakeTurn(ctx context.Context, state game.WorldState, rawInput string) (next game.WorldState, out Output) {
	_, span := o.tracer.Start(ctx, "turn.take")
	defer span.End()

	next = state
	defer func() {
		if r := recover(); r != nil {
			o.debugLogger.Printf("turn recovered from panic: %v", r)
			out = Output{
				Text:          internalFaultMessage,
				Dialogue:      []narrative.DialogueLine{},
				VoiceRequests: []voice.Request{},
			}
		}
	}()

	action, err := input.Classify(rawInput)
	if err != nil {
		var rejection *input.RejectionError
		if !errors.As(err, &rejection) {
			// Classify only returns rejections today; anything else is a
			// contract violation and gets the generic message.
			o.debugLogger.Printf("unexpected classify error: %v", err)
			return state, Output{
				Text:          internalFaultMessage,
				Dialogue:      []narrative.DialogueLine{},
				VoiceRequests: []voice.Request{},
			}
		}
		span.SetAttributes(attribute.Bool("turn.rejected", true))
		return state, Output{
			Text:          rejection.Reason,
			Dialogue:      []narrative.DialogueLine{},
			VoiceRequests: []voice.Request{},
		}
	}

	span.SetAttributes(attribute.String("turn.category", string(action.Category)))
	o.debugLogger.Printf("turn: input=%q category=%s location=%s", action.Text, action.Category, state.Location.Current)

	result := o.generator.Generate(state, action)
	span.SetAttributes(attribute.Int("turn.events", len(result.Events)))

	next = reduce.Apply(state, result.Events)

	requests := make([]voice.Request, 0, len(result.Dialogue))
	for _, line := range result.Dialogue {
		requests = append(requests, voice.Synthesize(line.Speaker, line.Text, string(line.Profile), o.ttsEndpoint))
	}

	out = Output{
		Text:          result.Text,
		Dialogue:      result.Dialogue,
		VoiceRequests: requests,
	}

	if o.turnLog != nil {
		labels := events.Labels(result.Events)
		if err := o.turnLog.LogTurn(next, action.Text, string(action.Category), result.Text, labels); err != nil {
			o.debugLogger.Printf("failed to log turn: %v", err)
		}
	}

	return next, out
}
