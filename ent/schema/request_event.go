package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RequestEvent records one dispatched chat, quiz or study-plan request.
type RequestEvent struct {
	ent.Schema
}

func (RequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("request_id").
			Comment("Response id returned to the caller"),
		field.String("kind").
			NotEmpty().
			Comment("chat, quiz or study-plan"),
		field.Strings("document_ids").
			Comment("Documents the request ran against"),
		field.String("summary").
			Default("").
			Comment("One-line outcome shown by history"),
		field.Text("payload").
			Optional().
			Comment("Schema-validated JSON of the answer, quiz or plan"),
	}
}

func (RequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind"),
	}
}
