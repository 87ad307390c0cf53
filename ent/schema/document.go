package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Document holds one ingested, normalized document body.
type Document struct {
	ent.Schema
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("Caller-assigned document id"),
		field.String("file_name").
			Comment("Display name, usually the source file name"),
		field.Text("text").
			Comment("Normalized document text"),
		field.Int64("created_at").
			Immutable().
			Comment("First ingest time in unix nanoseconds"),
		field.Int64("updated_at").
			Comment("Last ingest time in unix nanoseconds"),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
