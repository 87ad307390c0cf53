package store

import (
	"context"
	stdsql "database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/studybuddy/ent/migrate"
	"github.com/abhisek/studybuddy/internal/engine"
)

var (
	documentsTable  = migrate.DocumentsTable.Name
	documentColumns = []string{"id", "file_name", "text", "created_at", "updated_at"}
)

// DocumentRepo reads and writes the documents table.
type DocumentRepo struct {
	drv *entsql.Driver
	now func() time.Time
}

func (r *DocumentRepo) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

// Put inserts doc or replaces its name and text. CreatedAt is kept on
// update; both timestamps are written back into doc.
func (r *DocumentRepo) Put(ctx context.Context, doc *Document) error {
	if doc.ID == "" {
		return errors.New("put document: empty id")
	}
	now := r.clock().UTC()

	insert := builder.Insert(documentsTable).
		Columns(documentColumns...).
		Values(doc.ID, doc.FileName, doc.Text, toUnix(now), toUnix(now)).
		OnConflict(
			entsql.ConflictColumns("id"),
			entsql.ResolveWith(func(u *entsql.UpdateSet) {
				u.SetExcluded("file_name")
				u.SetExcluded("text")
				u.SetExcluded("updated_at")
			}),
		).
		Returning("created_at")

	var (
		created int64
		found   bool
	)
	err := queryRows(ctx, r.drv, insert, func(rows *entsql.Rows) error {
		found = true
		return rows.Scan(&created)
	})
	if err == nil && !found {
		err = errors.New("no row returned")
	}
	if err != nil {
		return fmt.Errorf("put document %s: %w", doc.ID, err)
	}
	doc.CreatedAt = fromUnix(created)
	doc.UpdatedAt = now
	return nil
}

func (r *DocumentRepo) Get(ctx context.Context, id string) (*Document, error) {
	sel := builder.Select(documentColumns...).
		From(builder.Table(documentsTable)).
		Where(entsql.EQ("id", id))

	docs, err := r.collect(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("get document %s: %w", id, err)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("document %s: %w", id, ErrNotFound)
	}
	return &docs[0], nil
}

// List returns documents newest first. Text is included.
func (r *DocumentRepo) List(ctx context.Context, opts QueryOpts) ([]Document, error) {
	sel := builder.Select(documentColumns...).From(builder.Table(documentsTable))
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE("created_at", toUnix(opts.From)))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE("created_at", toUnix(opts.To)))
	}
	sel.OrderBy(entsql.Desc("created_at"), "id")
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	docs, err := r.collect(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

func (r *DocumentRepo) collect(ctx context.Context, sel *entsql.Selector) ([]Document, error) {
	var out []Document
	err := queryRows(ctx, r.drv, sel, func(rows *entsql.Rows) error {
		var (
			d                Document
			created, updated int64
		)
		if err := rows.Scan(&d.ID, &d.FileName, &d.Text, &created, &updated); err != nil {
			return fmt.Errorf("scan document: %w", err)
		}
		d.CreatedAt, d.UpdatedAt = fromUnix(created), fromUnix(updated)
		out = append(out, d)
		return nil
	})
	return out, err
}

func (r *DocumentRepo) Delete(ctx context.Context, id string) error {
	q, args := builder.Delete(documentsTable).Where(entsql.EQ("id", id)).Query()
	var res stdsql.Result
	if err := r.drv.Exec(ctx, q, args, &res); err != nil {
		return fmt.Errorf("delete document %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete document %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("document %s: %w", id, ErrNotFound)
	}
	return nil
}

// GetDocumentText implements engine.DocumentSource.
func (r *DocumentRepo) GetDocumentText(ctx context.Context, id string) (*engine.Document, error) {
	d, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &engine.Document{ID: d.ID, FileName: d.FileName, Text: d.Text}, nil
}
