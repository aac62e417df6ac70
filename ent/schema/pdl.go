package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Pdl is a Person Deprived of Liberty (the detainee being visited).
type Pdl struct{ ent.Schema }

// Fields of the Pdl.
func (Pdl) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("name").NotEmpty().Unique(),
		field.String("cell").NotEmpty().Comment("cell code, lower-cased"),
		field.String("crime").Optional(),
		field.Time("date_committed").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Edges of the Pdl.
func (Pdl) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("visitors", RegisteredVisitor.Type),
	}
}
