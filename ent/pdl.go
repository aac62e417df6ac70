// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"
	"visitlog/ent/pdl"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Pdl is the model entity for the Pdl schema.
type Pdl struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// cell code, lower-cased
	Cell string `json:"cell,omitempty"`
	// Crime holds the value of the "crime" field.
	Crime string `json:"crime,omitempty"`
	// DateCommitted holds the value of the "date_committed" field.
	DateCommitted time.Time `json:"date_committed,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PdlQuery when eager-loading is set.
	Edges        PdlEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PdlEdges holds the relations/edges for other nodes in the graph.
type PdlEdges struct {
	// Visitors holds the value of the visitors edge.
	Visitors []*RegisteredVisitor `json:"visitors,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// VisitorsOrErr returns the Visitors value or an error if the edge
// was not loaded in eager-loading.
func (e PdlEdges) VisitorsOrErr() ([]*RegisteredVisitor, error) {
	if e.loadedTypes[0] {
		return e.Visitors, nil
	}
	return nil, &NotLoadedError{edge: "visitors"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Pdl) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pdl.FieldName, pdl.FieldCell, pdl.FieldCrime:
			values[i] = new(sql.NullString)
		case pdl.FieldDateCommitted, pdl.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case pdl.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Pdl fields.
func (_m *Pdl) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pdl.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case pdl.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case pdl.FieldCell:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cell", values[i])
			} else if value.Valid {
				_m.Cell = value.String
			}
		case pdl.FieldCrime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field crime", values[i])
			} else if value.Valid {
				_m.Crime = value.String
			}
		case pdl.FieldDateCommitted:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date_committed", values[i])
			} else if value.Valid {
				_m.DateCommitted = value.Time
			}
		case pdl.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Pdl.
// This includes values selected through modifiers, order, etc.
func (_m *Pdl) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryVisitors queries the "visitors" edge of the Pdl entity.
func (_m *Pdl) QueryVisitors() *RegisteredVisitorQuery {
	return NewPdlClient(_m.config).QueryVisitors(_m)
}

// Update returns a builder for updating this Pdl.
// Note that you need to call Pdl.Unwrap() before calling this method if this Pdl
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Pdl) Update() *PdlUpdateOne {
	return NewPdlClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Pdl entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Pdl) Unwrap() *Pdl {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Pdl is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Pdl) String() string {
	var builder strings.Builder
	builder.WriteString("Pdl(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("cell=")
	builder.WriteString(_m.Cell)
	builder.WriteString(", ")
	builder.WriteString("crime=")
	builder.WriteString(_m.Crime)
	builder.WriteString(", ")
	builder.WriteString("date_committed=")
	builder.WriteString(_m.DateCommitted.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Pdls is a parsable slice of Pdl.
type Pdls []*Pdl
