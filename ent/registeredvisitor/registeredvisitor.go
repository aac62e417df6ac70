// Code generated by ent, DO NOT EDIT.

package registeredvisitor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the registeredvisitor type in the database.
	Label = "registered_visitor"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldVisitorID holds the string denoting the visitor_id field in the database.
	FieldVisitorID = "visitor_id"
	// FieldFullName holds the string denoting the full_name field in the database.
	FieldFullName = "full_name"
	// FieldRelationship holds the string denoting the relationship field in the database.
	FieldRelationship = "relationship"
	// FieldAge holds the string denoting the age field in the database.
	FieldAge = "age"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldValidID holds the string denoting the valid_id field in the database.
	FieldValidID = "valid_id"
	// FieldContactNumber holds the string denoting the contact_number field in the database.
	FieldContactNumber = "contact_number"
	// FieldDateOfApplication holds the string denoting the date_of_application field in the database.
	FieldDateOfApplication = "date_of_application"
	// FieldConjugalVerified holds the string denoting the conjugal_verified field in the database.
	FieldConjugalVerified = "conjugal_verified"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgePdl holds the string denoting the pdl edge name in mutations.
	EdgePdl = "pdl"
	// Table holds the table name of the registeredvisitor in the database.
	Table = "registered_visitors"
	// PdlTable is the table that holds the pdl relation/edge.
	PdlTable = "registered_visitors"
	// PdlInverseTable is the table name for the Pdl entity.
	// It exists in this package in order to avoid circular dependency with the "pdl" package.
	PdlInverseTable = "pdls"
	// PdlColumn is the table column denoting the pdl relation/edge.
	PdlColumn = "pdl_visitors"
)

// Columns holds all SQL columns for registeredvisitor fields.
var Columns = []string{
	FieldID,
	FieldVisitorID,
	FieldFullName,
	FieldRelationship,
	FieldAge,
	FieldAddress,
	FieldValidID,
	FieldContactNumber,
	FieldDateOfApplication,
	FieldConjugalVerified,
	FieldCreatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "registered_visitors"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"pdl_visitors",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// VisitorIDValidator is a validator for the "visitor_id" field. It is called by the builders before save.
	VisitorIDValidator func(string) error
	// FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	FullNameValidator func(string) error
	// AgeValidator is a validator for the "age" field. It is called by the builders before save.
	AgeValidator func(int) error
	// DefaultConjugalVerified holds the default value on creation for the "conjugal_verified" field.
	DefaultConjugalVerified bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the RegisteredVisitor queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByVisitorID orders the results by the visitor_id field.
func ByVisitorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisitorID, opts...).ToFunc()
}

// ByFullName orders the results by the full_name field.
func ByFullName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullName, opts...).ToFunc()
}

// ByRelationship orders the results by the relationship field.
func ByRelationship(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelationship, opts...).ToFunc()
}

// ByAge orders the results by the age field.
func ByAge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAge, opts...).ToFunc()
}

// ByAddress orders the results by the address field.
func ByAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddress, opts...).ToFunc()
}

// ByValidID orders the results by the valid_id field.
func ByValidID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidID, opts...).ToFunc()
}

// ByContactNumber orders the results by the contact_number field.
func ByContactNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContactNumber, opts...).ToFunc()
}

// ByDateOfApplication orders the results by the date_of_application field.
func ByDateOfApplication(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateOfApplication, opts...).ToFunc()
}

// ByConjugalVerified orders the results by the conjugal_verified field.
func ByConjugalVerified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConjugalVerified, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPdlField orders the results by pdl field.
func ByPdlField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPdlStep(), sql.OrderByField(field, opts...))
	}
}
func newPdlStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PdlInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PdlTable, PdlColumn),
	)
}
