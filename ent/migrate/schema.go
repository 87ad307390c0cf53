package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "file_name", Type: field.TypeString},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeInt64},
		{Name: "updated_at", Type: field.TypeInt64},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[3]},
			},
		},
	}
	// RequestEventsColumns holds the columns for the "request_events" table.
	RequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeInt64},
		{Name: "request_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "document_ids", Type: field.TypeJSON},
		{Name: "summary", Type: field.TypeString, Default: ""},
		{Name: "payload", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// RequestEventsTable holds the schema information for the "request_events" table.
	RequestEventsTable = &schema.Table{
		Name:       "request_events",
		Columns:    RequestEventsColumns,
		PrimaryKey: []*schema.Column{RequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "requestevent_kind",
				Unique:  false,
				Columns: []*schema.Column{RequestEventsColumns[4]},
			},
			{
				Name:    "requestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{RequestEventsColumns[1]},
			},
			{
				Name:    "requestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RequestEventsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		RequestEventsTable,
	}
)
