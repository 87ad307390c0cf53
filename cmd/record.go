package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/studybuddy/internal/engine"
	"github.com/abhisek/studybuddy/internal/quiz"
	"github.com/abhisek/studybuddy/internal/store"
	"github.com/abhisek/studybuddy/internal/studyplan"
	"github.com/abhisek/studybuddy/internal/tui"
)

// eventAppender is the slice of store.EventRepo the recorder needs.
type eventAppender interface {
	Append(ctx context.Context, data store.EventData) (int64, error)
}

// recorder dispatches through the engine and appends one event per request.
// Recording failures are logged; the response is returned either way.
type recorder struct {
	next   tui.Dispatcher
	events eventAppender
	log    *zap.Logger
}

var _ tui.Dispatcher = (*recorder)(nil)

func newRecorder(next tui.Dispatcher, events eventAppender, log *zap.Logger) *recorder {
	return &recorder{next: next, events: events, log: log}
}

func (r *recorder) Dispatch(ctx context.Context, req engine.Request) *engine.Response {
	resp := r.next.Dispatch(ctx, req)

	data := store.EventData{
		RequestID:   resp.ID,
		Kind:        string(resp.Kind),
		DocumentIDs: requestDocuments(req),
		Summary:     summarize(resp),
	}
	payload, err := eventPayload(resp)
	if err != nil {
		r.log.Error("event payload rejected",
			zap.String("request_id", resp.ID),
			zap.String("kind", data.Kind),
			zap.Error(err),
		)
	} else {
		data.Payload = payload
	}

	if _, err := r.events.Append(ctx, data); err != nil {
		r.log.Warn("record event", zap.String("request_id", resp.ID), zap.Error(err))
	}
	return resp
}

func requestDocuments(req engine.Request) []string {
	switch r := req.(type) {
	case engine.ChatRequest:
		return r.DocumentIDs
	case engine.QuizRequest:
		return r.DocumentIDs
	case engine.StudyPlanRequest:
		return r.DocumentIDs
	}
	return nil
}

func summarize(resp *engine.Response) string {
	switch {
	case resp.Answer != nil:
		return string(resp.Answer.Outcome)
	case resp.Quiz != nil:
		return fmt.Sprintf("%d %s questions", len(resp.Quiz.Questions), resp.Quiz.Difficulty)
	case resp.Plan != nil:
		return fmt.Sprintf("%d topics over %d days", resp.Plan.TotalTopics, len(resp.Plan.Schedule))
	}
	return "help"
}

// eventPayload encodes the structured result. Quiz and plan payloads must
// pass their JSON schema before they are stored.
func eventPayload(resp *engine.Response) (json.RawMessage, error) {
	var (
		raw []byte
		err error
	)
	switch {
	case resp.Quiz != nil:
		if raw, err = json.Marshal(resp.Quiz.Questions); err != nil {
			return nil, fmt.Errorf("encode quiz: %w", err)
		}
		if err := quiz.ValidateJSON(raw); err != nil {
			return nil, err
		}
	case resp.Plan != nil:
		if raw, err = json.Marshal(resp.Plan); err != nil {
			return nil, fmt.Errorf("encode plan: %w", err)
		}
		if err := studyplan.ValidateJSON(raw); err != nil {
			return nil, err
		}
	case resp.Answer != nil:
		if raw, err = json.Marshal(resp.Answer); err != nil {
			return nil, fmt.Errorf("encode answer: %w", err)
		}
	default:
		return nil, nil
	}
	return raw, nil
}
