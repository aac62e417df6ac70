// Code generated by ent, DO NOT EDIT.

package pdl

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the pdl type in the database.
	Label = "pdl"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldCell holds the string denoting the cell field in the database.
	FieldCell = "cell"
	// FieldCrime holds the string denoting the crime field in the database.
	FieldCrime = "crime"
	// FieldDateCommitted holds the string denoting the date_committed field in the database.
	FieldDateCommitted = "date_committed"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeVisitors holds the string denoting the visitors edge name in mutations.
	EdgeVisitors = "visitors"
	// Table holds the table name of the pdl in the database.
	Table = "pdls"
	// VisitorsTable is the table that holds the visitors relation/edge.
	VisitorsTable = "registered_visitors"
	// VisitorsInverseTable is the table name for the RegisteredVisitor entity.
	// It exists in this package in order to avoid circular dependency with the "registeredvisitor" package.
	VisitorsInverseTable = "registered_visitors"
	// VisitorsColumn is the table column denoting the visitors relation/edge.
	VisitorsColumn = "pdl_visitors"
)

// Columns holds all SQL columns for pdl fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldCell,
	FieldCrime,
	FieldDateCommitted,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// CellValidator is a validator for the "cell" field. It is called by the builders before save.
	CellValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Pdl queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCell orders the results by the cell field.
func ByCell(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCell, opts...).ToFunc()
}

// ByCrime orders the results by the crime field.
func ByCrime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCrime, opts...).ToFunc()
}

// ByDateCommitted orders the results by the date_committed field.
func ByDateCommitted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateCommitted, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByVisitorsCount orders the results by visitors count.
func ByVisitorsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newVisitorsStep(), opts...)
	}
}

// ByVisitors orders the results by visitors terms.
func ByVisitors(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVisitorsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newVisitorsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VisitorsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, VisitorsTable, VisitorsColumn),
	)
}
