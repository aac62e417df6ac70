package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Cell is a jail cell. Active cells feed the daily visiting schedule.
type Cell struct{ ent.Schema }

// Fields of the Cell.
func (Cell) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("code").NotEmpty().Unique().Comment("stored lower-cased"),
		field.Int("capacity").Default(0).Min(0),
		field.Bool("active").Default(true),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}
