package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// RegisteredVisitor is a visitor profile created once at registration,
// independent of individual visit sessions.
type RegisteredVisitor struct{ ent.Schema }

// Fields of the RegisteredVisitor.
func (RegisteredVisitor) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("visitor_id").NotEmpty().Unique().MaxLen(16).Comment("VIS-YY-NNNNNN"),
		field.String("full_name").NotEmpty(),
		field.String("relationship").Optional(),
		field.Int("age").Optional().Min(0),
		field.String("address").Optional(),
		field.String("valid_id").Optional(),
		field.String("contact_number").Optional(),
		field.Time("date_of_application").Optional(),
		field.Bool("conjugal_verified").Default(false),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Edges of the RegisteredVisitor.
func (RegisteredVisitor) Edges() []ent.Edge {
	return []ent.Edge{
		// the PDL this visitor is registered against
		edge.From("pdl", Pdl.Type).Ref("visitors").Unique(),
	}
}
