package calculator

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"calcpad/internal/engine"
	"calcpad/internal/handlers"
	"calcpad/internal/input"
	"calcpad/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// maxInputs bounds a single evaluate request.
const maxInputs = 1024

// ---------------------------------------------------------------------------
// Handlers: binary operations
// ---------------------------------------------------------------------------

// Add handles POST /calculator/add
func Add(w http.ResponseWriter, r *http.Request) {
	handleBinaryOp(w, r, engine.Add)
}

// Subtract handles POST /calculator/subtract
func Subtract(w http.ResponseWriter, r *http.Request) {
	handleBinaryOp(w, r, engine.Subtract)
}

// Multiply handles POST /calculator/multiply
func Multiply(w http.ResponseWriter, r *http.Request) {
	handleBinaryOp(w, r, engine.Multiply)
}

// Divide handles POST /calculator/divide. Division by zero is reported in the
// display, the same way the keypad shows it.
func Divide(w http.ResponseWriter, r *http.Request) {
	handleBinaryOp(w, r, engine.Divide)
}

// handleBinaryOp is the shared implementation for the one-shot operations.
func handleBinaryOp(w http.ResponseWriter, r *http.Request, op engine.Operator) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)
	opName := op.Name()

	ctx, span := tracer.Start(ctx, fmt.Sprintf("calculator.%s", opName),
		trace.WithAttributes(
			attribute.String("calculator.operation", opName),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req CalcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if math.IsNaN(req.A) || math.IsInf(req.A, 0) || math.IsNaN(req.B) || math.IsInf(req.B, 0) {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "invalid numeric input", fmt.Errorf("a=%g b=%g", req.A, req.B), http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.Float64("calculator.operand.a", req.A),
		attribute.Float64("calculator.operand.b", req.B),
	)

	start := time.Now()
	result := engine.Apply(req.A, req.B, op)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms
	display := engine.Format(result)

	attrs := metric.WithAttributes(attribute.String("operation", opName))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, result, attrs)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.String("display", display),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.String("calculator.display", display))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator operation completed",
		zap.String("operation", opName),
		zap.Float64("a", req.A),
		zap.Float64("b", req.B),
		zap.String("display", display),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, CalcResponse{
		Operation: opName,
		A:         req.A,
		B:         req.B,
		Display:   display,
	})
}

// ---------------------------------------------------------------------------
// Handler: keypad replay (nested spans)
// ---------------------------------------------------------------------------

// Evaluate handles POST /calculator/evaluate. It replays a sequence of button
// labels or key names through the keypad state machine starting from a
// cleared calculator, with a child span per input.
func Evaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.evaluate",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "evaluate", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if req.Source == "" {
		req.Source = SourceButton
	}
	resolve, err := resolver(req.Source)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "evaluate", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	if len(req.Inputs) == 0 {
		observability.RecordError(ctx, span, logger, errorCounter, "evaluate", "no inputs provided", fmt.Errorf("inputs array is empty"), http.StatusBadRequest, w)
		return
	}
	if len(req.Inputs) > maxInputs {
		observability.RecordError(ctx, span, logger, errorCounter, "evaluate", "too many inputs", fmt.Errorf("%d inputs exceeds %d", len(req.Inputs), maxInputs), http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.String("evaluate.source", req.Source),
		attribute.Int("evaluate.inputs_count", len(req.Inputs)),
	)
	inputsHistogram.Record(ctx, int64(len(req.Inputs)), metric.WithAttributes(attribute.String("source", req.Source)))

	state := engine.New()
	steps := make([]EvaluateStep, 0, len(req.Inputs))

	for i, in := range req.Inputs {
		_, stepSpan := tracer.Start(ctx, fmt.Sprintf("calculator.evaluate.step.%d", i),
			trace.WithAttributes(
				attribute.Int("evaluate.step.index", i),
				attribute.String("evaluate.step.input", in),
				attribute.String("evaluate.step.display_before", state.Display()),
			),
		)

		event, ok := resolve(in)
		if !ok {
			err := fmt.Errorf("unknown %s input %q at step %d", req.Source, in, i)

			stepSpan.RecordError(err)
			stepSpan.SetStatus(codes.Error, err.Error())
			stepSpan.End()

			span.SetStatus(codes.Error, fmt.Sprintf("failed at step %d", i))
			observability.RecordError(ctx, span, logger, errorCounter, "evaluate", err.Error(), err, http.StatusBadRequest, w)
			return
		}

		stepStart := time.Now()
		state = state.Handle(event)
		stepElapsed := float64(time.Since(stepStart).Microseconds()) / 1000.0

		attrs := metric.WithAttributes(attribute.String("operation", event.Kind.String()))
		opsCounter.Add(ctx, 1, attrs)
		opsHistogram.Record(ctx, stepElapsed, attrs)

		stepSpan.SetAttributes(
			attribute.String("evaluate.step.event", event.Kind.String()),
			attribute.String("evaluate.step.display", state.Display()),
		)
		stepSpan.SetStatus(codes.Ok, "")
		stepSpan.End()

		logger.Debug("evaluate step completed",
			zap.Int("step", i),
			zap.String("input", in),
			zap.String("event", event.Kind.String()),
			zap.String("display", state.Display()),
		)

		steps = append(steps, EvaluateStep{
			Input:   in,
			Event:   event.Kind.String(),
			Display: state.Display(),
		})
	}

	resultGauge.Record(ctx, engine.ParseNumber(state.Display()), metric.WithAttributes(attribute.String("operation", "evaluate")))

	span.AddEvent("evaluate.complete", trace.WithAttributes(
		attribute.String("display", state.Display()),
		attribute.Int("total_steps", len(steps)),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("keypad evaluation completed",
		zap.String("source", req.Source),
		zap.Int("steps", len(steps)),
		zap.String("display", state.Display()),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, EvaluateResponse{
		Source:  req.Source,
		Steps:   steps,
		Display: state.Display(),
		State:   state.Snapshot(),
	})
}

func resolver(source string) (func(string) (engine.Event, bool), error) {
	switch source {
	case SourceButton:
		return input.FromButton, nil
	case SourceKey:
		return func(key string) (engine.Event, bool) {
			action, ok := input.FromKey(key)
			return action.Event, ok
		}, nil
	}
	return nil, fmt.Errorf("unknown input source %q", source)
}
