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
)

// ProcessingLog is the append-only audit record of one processing attempt.
// Rows are written once and never mutated.
type ProcessingLog struct{ ent.Schema }

func (ProcessingLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "processing_log"},
	}
}

func (ProcessingLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("document_id", uuid.UUID{}),
		field.Int("attempt").NonNegative(),
		// which stage produced the outcome: ocr, reaper, retry_scheduler, apply
		field.String("phase").NotEmpty(),
		field.String("outcome").NotEmpty(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("started_at").Default(time.Now).Immutable(),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (ProcessingLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("attempts").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (ProcessingLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "started_at"),
		index.Fields("outcome", "started_at"),
	}
}
