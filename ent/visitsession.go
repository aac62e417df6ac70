// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"
	"visitlog/ent/visitsession"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// VisitSession is the model entity for the VisitSession schema.
type VisitSession struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// trimmed, original casing for display
	VisitorName string `json:"visitor_name,omitempty"`
	// lower-cased visitor_name used for matching
	VisitorKey string `json:"visitor_key,omitempty"`
	// trimmed and lower-cased
	PdlName string `json:"pdl_name,omitempty"`
	// trimmed and lower-cased
	Cell string `json:"cell,omitempty"`
	// Relationship holds the value of the "relationship" field.
	Relationship string `json:"relationship,omitempty"`
	// ContactNumber holds the value of the "contact_number" field.
	ContactNumber string `json:"contact_number,omitempty"`
	// Purpose holds the value of the "purpose" field.
	Purpose visitsession.Purpose `json:"purpose,omitempty"`
	// TimeIn holds the value of the "time_in" field.
	TimeIn time.Time `json:"time_in,omitempty"`
	// TimeOut holds the value of the "time_out" field.
	TimeOut *time.Time `json:"time_out,omitempty"`
	// day the session was opened, for same-day reports
	ScanDate time.Time `json:"scan_date,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VisitSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case visitsession.FieldVisitorName, visitsession.FieldVisitorKey, visitsession.FieldPdlName, visitsession.FieldCell, visitsession.FieldRelationship, visitsession.FieldContactNumber, visitsession.FieldPurpose:
			values[i] = new(sql.NullString)
		case visitsession.FieldTimeIn, visitsession.FieldTimeOut, visitsession.FieldScanDate, visitsession.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case visitsession.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VisitSession fields.
func (_m *VisitSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case visitsession.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case visitsession.FieldVisitorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field visitor_name", values[i])
			} else if value.Valid {
				_m.VisitorName = value.String
			}
		case visitsession.FieldVisitorKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field visitor_key", values[i])
			} else if value.Valid {
				_m.VisitorKey = value.String
			}
		case visitsession.FieldPdlName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pdl_name", values[i])
			} else if value.Valid {
				_m.PdlName = value.String
			}
		case visitsession.FieldCell:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cell", values[i])
			} else if value.Valid {
				_m.Cell = value.String
			}
		case visitsession.FieldRelationship:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field relationship", values[i])
			} else if value.Valid {
				_m.Relationship = value.String
			}
		case visitsession.FieldContactNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_number", values[i])
			} else if value.Valid {
				_m.ContactNumber = value.String
			}
		case visitsession.FieldPurpose:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field purpose", values[i])
			} else if value.Valid {
				_m.Purpose = visitsession.Purpose(value.String)
			}
		case visitsession.FieldTimeIn:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field time_in", values[i])
			} else if value.Valid {
				_m.TimeIn = value.Time
			}
		case visitsession.FieldTimeOut:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field time_out", values[i])
			} else if value.Valid {
				_m.TimeOut = new(time.Time)
				*_m.TimeOut = value.Time
			}
		case visitsession.FieldScanDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field scan_date", values[i])
			} else if value.Valid {
				_m.ScanDate = value.Time
			}
		case visitsession.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the VisitSession.
// This includes values selected through modifiers, order, etc.
func (_m *VisitSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this VisitSession.
// Note that you need to call VisitSession.Unwrap() before calling this method if this VisitSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VisitSession) Update() *VisitSessionUpdateOne {
	return NewVisitSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VisitSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VisitSession) Unwrap() *VisitSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VisitSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VisitSession) String() string {
	var builder strings.Builder
	builder.WriteString("VisitSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("visitor_name=")
	builder.WriteString(_m.VisitorName)
	builder.WriteString(", ")
	builder.WriteString("visitor_key=")
	builder.WriteString(_m.VisitorKey)
	builder.WriteString(", ")
	builder.WriteString("pdl_name=")
	builder.WriteString(_m.PdlName)
	builder.WriteString(", ")
	builder.WriteString("cell=")
	builder.WriteString(_m.Cell)
	builder.WriteString(", ")
	builder.WriteString("relationship=")
	builder.WriteString(_m.Relationship)
	builder.WriteString(", ")
	builder.WriteString("contact_number=")
	builder.WriteString(_m.ContactNumber)
	builder.WriteString(", ")
	builder.WriteString("purpose=")
	builder.WriteString(fmt.Sprintf("%v", _m.Purpose))
	builder.WriteString(", ")
	builder.WriteString("time_in=")
	builder.WriteString(_m.TimeIn.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.TimeOut; v != nil {
		builder.WriteString("time_out=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("scan_date=")
	builder.WriteString(_m.ScanDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// VisitSessions is a parsable slice of VisitSession.
type VisitSessions []*VisitSession
