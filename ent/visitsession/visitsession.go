// Code generated by ent, DO NOT EDIT.

package visitsession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the visitsession type in the database.
	Label = "visit_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldVisitorName holds the string denoting the visitor_name field in the database.
	FieldVisitorName = "visitor_name"
	// FieldVisitorKey holds the string denoting the visitor_key field in the database.
	FieldVisitorKey = "visitor_key"
	// FieldPdlName holds the string denoting the pdl_name field in the database.
	FieldPdlName = "pdl_name"
	// FieldCell holds the string denoting the cell field in the database.
	FieldCell = "cell"
	// FieldRelationship holds the string denoting the relationship field in the database.
	FieldRelationship = "relationship"
	// FieldContactNumber holds the string denoting the contact_number field in the database.
	FieldContactNumber = "contact_number"
	// FieldPurpose holds the string denoting the purpose field in the database.
	FieldPurpose = "purpose"
	// FieldTimeIn holds the string denoting the time_in field in the database.
	FieldTimeIn = "time_in"
	// FieldTimeOut holds the string denoting the time_out field in the database.
	FieldTimeOut = "time_out"
	// FieldScanDate holds the string denoting the scan_date field in the database.
	FieldScanDate = "scan_date"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the visitsession in the database.
	Table = "visit_sessions"
)

// Columns holds all SQL columns for visitsession fields.
var Columns = []string{
	FieldID,
	FieldVisitorName,
	FieldVisitorKey,
	FieldPdlName,
	FieldCell,
	FieldRelationship,
	FieldContactNumber,
	FieldPurpose,
	FieldTimeIn,
	FieldTimeOut,
	FieldScanDate,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// VisitorNameValidator is a validator for the "visitor_name" field. It is called by the builders before save.
	VisitorNameValidator func(string) error
	// VisitorKeyValidator is a validator for the "visitor_key" field. It is called by the builders before save.
	VisitorKeyValidator func(string) error
	// PdlNameValidator is a validator for the "pdl_name" field. It is called by the builders before save.
	PdlNameValidator func(string) error
	// CellValidator is a validator for the "cell" field. It is called by the builders before save.
	CellValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Purpose defines the type for the "purpose" enum field.
type Purpose string

// PurposeNormal is the default value of the Purpose enum.
const DefaultPurpose = PurposeNormal

// Purpose values.
const (
	PurposeNormal   Purpose = "normal"
	PurposeConjugal Purpose = "conjugal"
)

func (pu Purpose) String() string {
	return string(pu)
}

// PurposeValidator is a validator for the "purpose" field enum values. It is called by the builders before save.
func PurposeValidator(pu Purpose) error {
	switch pu {
	case PurposeNormal, PurposeConjugal:
		return nil
	default:
		return fmt.Errorf("visitsession: invalid enum value for purpose field: %q", pu)
	}
}

// OrderOption defines the ordering options for the VisitSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByVisitorName orders the results by the visitor_name field.
func ByVisitorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisitorName, opts...).ToFunc()
}

// ByVisitorKey orders the results by the visitor_key field.
func ByVisitorKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisitorKey, opts...).ToFunc()
}

// ByPdlName orders the results by the pdl_name field.
func ByPdlName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPdlName, opts...).ToFunc()
}

// ByCell orders the results by the cell field.
func ByCell(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCell, opts...).ToFunc()
}

// ByRelationship orders the results by the relationship field.
func ByRelationship(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelationship, opts...).ToFunc()
}

// ByContactNumber orders the results by the contact_number field.
func ByContactNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContactNumber, opts...).ToFunc()
}

// ByPurpose orders the results by the purpose field.
func ByPurpose(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPurpose, opts...).ToFunc()
}

// ByTimeIn orders the results by the time_in field.
func ByTimeIn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeIn, opts...).ToFunc()
}

// ByTimeOut orders the results by the time_out field.
func ByTimeOut(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeOut, opts...).ToFunc()
}

// ByScanDate orders the results by the scan_date field.
func ByScanDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScanDate, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
