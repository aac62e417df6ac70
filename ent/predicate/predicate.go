// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Cell is the predicate function for cell builders.
type Cell func(*sql.Selector)

// Pdl is the predicate function for pdl builders.
type Pdl func(*sql.Selector)

// RegisteredVisitor is the predicate function for registeredvisitor builders.
type RegisteredVisitor func(*sql.Selector)

// StaffUser is the predicate function for staffuser builders.
type StaffUser func(*sql.Selector)

// VisitSession is the predicate function for visitsession builders.
type VisitSession func(*sql.Selector)
