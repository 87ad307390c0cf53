package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/studybuddy/ent/migrate"
)

// ErrEventNotFound is returned by Get for an unknown sequence number.
var ErrEventNotFound = errors.New("event not found")

// sequenceCounter hands out the global monotonic sequence number for the
// event log. The mutex serializes within the process; the RETURNING clause
// makes the increment atomic at the database level, so several processes
// sharing one file still get distinct sequences.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// EventRepo appends to and reads the request event log.
type EventRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
	now func() time.Time
}

var (
	eventsTable  = migrate.RequestEventsTable.Name
	eventColumns = []string{"sequence", "timestamp", "request_id", "kind", "document_ids", "summary", "payload"}
)

// Append records one event and returns its sequence number.
func (r *EventRepo) Append(ctx context.Context, data EventData) (int64, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return 0, err
	}

	ids := data.DocumentIDs
	if ids == nil {
		ids = []string{}
	}
	idsJSON, err := json.Marshal(ids)
	if err != nil {
		return 0, fmt.Errorf("encode document ids: %w", err)
	}

	var payload any
	if len(data.Payload) > 0 {
		payload = string(data.Payload)
	}

	now := time.Now
	if r.now != nil {
		now = r.now
	}

	q, args := builder.Insert(eventsTable).
		Columns(eventColumns...).
		Values(seqNum, toUnix(now()), data.RequestID, data.Kind, string(idsJSON), data.Summary, payload).
		Query()
	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return 0, fmt.Errorf("save %s event: %w", data.Kind, err)
	}
	return seqNum, nil
}

// Query returns events newest first.
func (r *EventRepo) Query(ctx context.Context, opts QueryOpts) ([]Event, error) {
	sel := builder.Select(eventColumns...).From(builder.Table(eventsTable))
	if opts.Kind != "" {
		sel.Where(entsql.EQ("kind", opts.Kind))
	}
	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE("timestamp", toUnix(opts.From)))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE("timestamp", toUnix(opts.To)))
	}
	sel.OrderBy(entsql.Desc("sequence"))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	out, err := r.collect(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	return out, nil
}

// Get returns the event with the given sequence number.
func (r *EventRepo) Get(ctx context.Context, seq int64) (*Event, error) {
	sel := builder.Select(eventColumns...).
		From(builder.Table(eventsTable)).
		Where(entsql.EQ("sequence", seq))

	out, err := r.collect(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("get event %d: %w", seq, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("event %d: %w", seq, ErrEventNotFound)
	}
	return &out[0], nil
}

func (r *EventRepo) collect(ctx context.Context, sel *entsql.Selector) ([]Event, error) {
	var out []Event
	err := queryRows(ctx, r.drv, sel, func(rows *entsql.Rows) error {
		e, err := scanEvent(rows)
		if err != nil {
			return err
		}
		out = append(out, *e)
		return nil
	})
	return out, err
}

func scanEvent(rows *entsql.Rows) (*Event, error) {
	var (
		e       Event
		ts      int64
		ids     string
		payload sql.NullString
	)
	if err := rows.Scan(&e.Sequence, &ts, &e.RequestID, &e.Kind, &ids, &e.Summary, &payload); err != nil {
		return nil, fmt.Errorf("scan event: %w", err)
	}
	e.Timestamp = fromUnix(ts)
	if err := json.Unmarshal([]byte(ids), &e.DocumentIDs); err != nil {
		return nil, fmt.Errorf("decode document ids for event %d: %w", e.Sequence, err)
	}
	if payload.Valid {
		e.Payload = json.RawMessage(payload.String)
	}
	return &e, nil
}

// CountByKind returns the number of events per kind.
func (r *EventRepo) CountByKind(ctx context.Context) (map[string]int, error) {
	sel := builder.Select("kind", entsql.Count("*")).
		From(builder.Table(eventsTable)).
		GroupBy("kind")

	counts := make(map[string]int)
	err := queryRows(ctx, r.drv, sel, func(rows *entsql.Rows) error {
		var (
			kind string
			n    int
		)
		if err := rows.Scan(&kind, &n); err != nil {
			return fmt.Errorf("scan count: %w", err)
		}
		counts[kind] = n
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	return counts, nil
}
