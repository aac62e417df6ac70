package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// StaffUser is a facility staff account for the admin surface.
type StaffUser struct{ ent.Schema }

// Fields of the StaffUser.
func (StaffUser) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("username").NotEmpty().Unique(),
		field.String("password_hash").NotEmpty().Sensitive().Comment("argon2id PHC string"),
		field.Enum("role").Values("staff", "admin").Default("staff"),
		field.Time("last_login_at").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}
