package store

import (
	"context"
	"encoding/json"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// builder renders statements in SQLite's dialect.
var builder = entsql.Dialect(dialect.SQLite)

// queryRows runs the statement built by b and calls scan once per row.
func queryRows(ctx context.Context, q dialect.ExecQuerier, b entsql.Querier, scan func(*entsql.Rows) error) error {
	stmt, args := b.Query()
	rows := &entsql.Rows{}
	if err := q.Query(ctx, stmt, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// QueryOpts configures list queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After (events only)
	Before int64     // sequence < Before (events only)
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
	Kind   string    // exact kind match (events only)
}

// Document is a stored, normalized document body.
type Document struct {
	ID        string
	FileName  string
	Text      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EventData is what callers supply when appending to the log.
type EventData struct {
	RequestID   string
	Kind        string
	DocumentIDs []string
	Summary     string
	Payload     json.RawMessage
}

// Event is one entry of the append-only request log.
type Event struct {
	Sequence    int64           `json:"sequence"`
	Timestamp   time.Time       `json:"timestamp"`
	RequestID   string          `json:"request_id"`
	Kind        string          `json:"kind"`
	DocumentIDs []string        `json:"document_ids"`
	Summary     string          `json:"summary"`
	Payload     json.RawMessage `json:"payload,omitempty"`
}

func toUnix(t time.Time) int64 { return t.UTC().UnixNano() }

func fromUnix(n int64) time.Time { return time.Unix(0, n).UTC() }
