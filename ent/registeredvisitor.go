// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"
	"visitlog/ent/pdl"
	"visitlog/ent/registeredvisitor"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// RegisteredVisitor is the model entity for the RegisteredVisitor schema.
type RegisteredVisitor struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// VIS-YY-NNNNNN
	VisitorID string `json:"visitor_id,omitempty"`
	// FullName holds the value of the "full_name" field.
	FullName string `json:"full_name,omitempty"`
	// Relationship holds the value of the "relationship" field.
	Relationship string `json:"relationship,omitempty"`
	// Age holds the value of the "age" field.
	Age int `json:"age,omitempty"`
	// Address holds the value of the "address" field.
	Address string `json:"address,omitempty"`
	// ValidID holds the value of the "valid_id" field.
	ValidID string `json:"valid_id,omitempty"`
	// ContactNumber holds the value of the "contact_number" field.
	ContactNumber string `json:"contact_number,omitempty"`
	// DateOfApplication holds the value of the "date_of_application" field.
	DateOfApplication time.Time `json:"date_of_application,omitempty"`
	// ConjugalVerified holds the value of the "conjugal_verified" field.
	ConjugalVerified bool `json:"conjugal_verified,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RegisteredVisitorQuery when eager-loading is set.
	Edges        RegisteredVisitorEdges `json:"edges"`
	pdl_visitors *uuid.UUID
	selectValues sql.SelectValues
}

// RegisteredVisitorEdges holds the relations/edges for other nodes in the graph.
type RegisteredVisitorEdges struct {
	// Pdl holds the value of the pdl edge.
	Pdl *Pdl `json:"pdl,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PdlOrErr returns the Pdl value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RegisteredVisitorEdges) PdlOrErr() (*Pdl, error) {
	if e.Pdl != nil {
		return e.Pdl, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: pdl.Label}
	}
	return nil, &NotLoadedError{edge: "pdl"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RegisteredVisitor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case registeredvisitor.FieldConjugalVerified:
			values[i] = new(sql.NullBool)
		case registeredvisitor.FieldAge:
			values[i] = new(sql.NullInt64)
		case registeredvisitor.FieldVisitorID, registeredvisitor.FieldFullName, registeredvisitor.FieldRelationship, registeredvisitor.FieldAddress, registeredvisitor.FieldValidID, registeredvisitor.FieldContactNumber:
			values[i] = new(sql.NullString)
		case registeredvisitor.FieldDateOfApplication, registeredvisitor.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case registeredvisitor.FieldID:
			values[i] = new(uuid.UUID)
		case registeredvisitor.ForeignKeys[0]: // pdl_visitors
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RegisteredVisitor fields.
func (_m *RegisteredVisitor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case registeredvisitor.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case registeredvisitor.FieldVisitorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field visitor_id", values[i])
			} else if value.Valid {
				_m.VisitorID = value.String
			}
		case registeredvisitor.FieldFullName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_name", values[i])
			} else if value.Valid {
				_m.FullName = value.String
			}
		case registeredvisitor.FieldRelationship:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field relationship", values[i])
			} else if value.Valid {
				_m.Relationship = value.String
			}
		case registeredvisitor.FieldAge:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field age", values[i])
			} else if value.Valid {
				_m.Age = int(value.Int64)
			}
		case registeredvisitor.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = value.String
			}
		case registeredvisitor.FieldValidID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field valid_id", values[i])
			} else if value.Valid {
				_m.ValidID = value.String
			}
		case registeredvisitor.FieldContactNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_number", values[i])
			} else if value.Valid {
				_m.ContactNumber = value.String
			}
		case registeredvisitor.FieldDateOfApplication:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date_of_application", values[i])
			} else if value.Valid {
				_m.DateOfApplication = value.Time
			}
		case registeredvisitor.FieldConjugalVerified:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field conjugal_verified", values[i])
			} else if value.Valid {
				_m.ConjugalVerified = value.Bool
			}
		case registeredvisitor.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case registeredvisitor.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field pdl_visitors", values[i])
			} else if value.Valid {
				_m.pdl_visitors = new(uuid.UUID)
				*_m.pdl_visitors = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RegisteredVisitor.
// This includes values selected through modifiers, order, etc.
func (_m *RegisteredVisitor) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPdl queries the "pdl" edge of the RegisteredVisitor entity.
func (_m *RegisteredVisitor) QueryPdl() *PdlQuery {
	return NewRegisteredVisitorClient(_m.config).QueryPdl(_m)
}

// Update returns a builder for updating this RegisteredVisitor.
// Note that you need to call RegisteredVisitor.Unwrap() before calling this method if this RegisteredVisitor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RegisteredVisitor) Update() *RegisteredVisitorUpdateOne {
	return NewRegisteredVisitorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RegisteredVisitor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RegisteredVisitor) Unwrap() *RegisteredVisitor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RegisteredVisitor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RegisteredVisitor) String() string {
	var builder strings.Builder
	builder.WriteString("RegisteredVisitor(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("visitor_id=")
	builder.WriteString(_m.VisitorID)
	builder.WriteString(", ")
	builder.WriteString("full_name=")
	builder.WriteString(_m.FullName)
	builder.WriteString(", ")
	builder.WriteString("relationship=")
	builder.WriteString(_m.Relationship)
	builder.WriteString(", ")
	builder.WriteString("age=")
	builder.WriteString(fmt.Sprintf("%v", _m.Age))
	builder.WriteString(", ")
	builder.WriteString("address=")
	builder.WriteString(_m.Address)
	builder.WriteString(", ")
	builder.WriteString("valid_id=")
	builder.WriteString(_m.ValidID)
	builder.WriteString(", ")
	builder.WriteString("contact_number=")
	builder.WriteString(_m.ContactNumber)
	builder.WriteString(", ")
	builder.WriteString("date_of_application=")
	builder.WriteString(_m.DateOfApplication.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("conjugal_verified=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConjugalVerified))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RegisteredVisitors is a parsable slice of RegisteredVisitor.
type RegisteredVisitors []*RegisteredVisitor
