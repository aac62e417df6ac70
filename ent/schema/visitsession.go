package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// VisitSession is one physical visit: opened on time-in, closed on time-out.
// A row with a null time_out is an open session.
type VisitSession struct{ ent.Schema }

// Fields of the VisitSession.
func (VisitSession) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("visitor_name").NotEmpty().Comment("trimmed, original casing for display"),
		field.String("visitor_key").NotEmpty().Comment("lower-cased visitor_name used for matching"),
		field.String("pdl_name").NotEmpty().Comment("trimmed and lower-cased"),
		field.String("cell").NotEmpty().Comment("trimmed and lower-cased"),
		field.String("relationship").Optional(),
		field.String("contact_number").Optional(),
		field.Enum("purpose").Values("normal", "conjugal").Default("normal"),
		// never touched by the resolver after creation; manual corrections
		// may rewrite it together with time_out
		field.Time("time_in").SchemaType(map[string]string{
			dialect.Postgres: "timestamptz",
		}),
		field.Time("time_out").Optional().Nillable().SchemaType(map[string]string{
			dialect.Postgres: "timestamptz",
		}),
		field.Time("scan_date").Comment("day the session was opened, for same-day reports"),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Indexes of the VisitSession. The partial unique index is what enforces
// "at most one open session per triple" under concurrent commits.
func (VisitSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("visitor_key", "pdl_name", "cell").
			Unique().
			Annotations(entsql.IndexWhere("time_out IS NULL")),
		index.Fields("scan_date"),
	}
}
