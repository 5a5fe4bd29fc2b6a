package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// CaseForm is the case-scoped target record extracted data is applied to.
// Fields are arbitrary named values; partial updates go through the form
// repository, which merges under a version check so one failed merge never
// half-commits.
type CaseForm struct{ ent.Schema }

func (CaseForm) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "case_forms"},
	}
}

func (CaseForm) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("case_id", uuid.UUID{}).Unique(),
		field.JSON("fields", map[string]string{}).Optional(),
		field.Int("version").Default(1).Positive(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (CaseForm) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("case_id").Unique(),
	}
}
