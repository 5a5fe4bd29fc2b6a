package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/kamil-urbanek/docpipe/constants"
	"github.com/kamil-urbanek/docpipe/db/ent/schema/utils"
)

// Document is one uploaded case file awaiting or having undergone OCR.
// Its ocr_status column doubles as the work queue; every pipeline write
// is conditioned on (id, version) for optimistic concurrency.
type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("case_id", uuid.UUID{}),
		field.String("storage_path").NotEmpty(),
		field.String("filename").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.String("ocr_status").
			Default(string(constants.StatusPending)).
			Validate(utils.EnumValidator(constants.Statuses...)),
		field.Int("ocr_retry_count").Default(0).NonNegative(),
		field.Time("ocr_next_retry_at").Optional().Nillable(),
		field.String("ocr_error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Bool("data_applied_to_forms").Default(false),
		field.JSON("extracted_fields", map[string]string{}).Optional(),
		field.Int("version").Default(1).Positive(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
		field.Time("deleted_at").Optional().Nillable(),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE document -> MANY processing attempts
		edge.To("attempts", ProcessingLog.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ocr_status", "updated_at"),
		index.Fields("ocr_status", "ocr_next_retry_at"),
		index.Fields("case_id", "ocr_status"),
	}
}
