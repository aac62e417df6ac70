// Code generated by ent, DO NOT EDIT.

package pdl

import (
	"time"
	"visitlog/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Pdl {
	return predicate.Pdl(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Pdl {
	return predicate.Pdl(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Pdl {
	return predicate.Pdl(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Pdl {
	return predicate.Pdl(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Pdl {
	return predicate.Pdl(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Pdl {
	return predicate.Pdl(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Pdl {
	return predicate.Pdl(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Pdl {
	return predicate.Pdl(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Pdl {
	return predicate.Pdl(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldEQ(FieldName, v))
}

// Cell applies equality check predicate on the "cell" field. It's identical to CellEQ.
func Cell(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldEQ(FieldCell, v))
}

// Crime applies equality check predicate on the "crime" field. It's identical to CrimeEQ.
func Crime(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldEQ(FieldCrime, v))
}

// DateCommitted applies equality check predicate on the "date_committed" field. It's identical to DateCommittedEQ.
func DateCommitted(v time.Time) predicate.Pdl {
	return predicate.Pdl(sql.FieldEQ(FieldDateCommitted, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Pdl {
	return predicate.Pdl(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Pdl {
	return predicate.Pdl(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Pdl {
	return predicate.Pdl(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldContainsFold(FieldName, v))
}

// CellEQ applies the EQ predicate on the "cell" field.
func CellEQ(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldEQ(FieldCell, v))
}

// CellNEQ applies the NEQ predicate on the "cell" field.
func CellNEQ(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldNEQ(FieldCell, v))
}

// CellIn applies the In predicate on the "cell" field.
func CellIn(vs ...string) predicate.Pdl {
	return predicate.Pdl(sql.FieldIn(FieldCell, vs...))
}

// CellNotIn applies the NotIn predicate on the "cell" field.
func CellNotIn(vs ...string) predicate.Pdl {
	return predicate.Pdl(sql.FieldNotIn(FieldCell, vs...))
}

// CellGT applies the GT predicate on the "cell" field.
func CellGT(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldGT(FieldCell, v))
}

// CellGTE applies the GTE predicate on the "cell" field.
func CellGTE(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldGTE(FieldCell, v))
}

// CellLT applies the LT predicate on the "cell" field.
func CellLT(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldLT(FieldCell, v))
}

// CellLTE applies the LTE predicate on the "cell" field.
func CellLTE(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldLTE(FieldCell, v))
}

// CellContains applies the Contains predicate on the "cell" field.
func CellContains(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldContains(FieldCell, v))
}

// CellHasPrefix applies the HasPrefix predicate on the "cell" field.
func CellHasPrefix(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldHasPrefix(FieldCell, v))
}

// CellHasSuffix applies the HasSuffix predicate on the "cell" field.
func CellHasSuffix(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldHasSuffix(FieldCell, v))
}

// CellEqualFold applies the EqualFold predicate on the "cell" field.
func CellEqualFold(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldEqualFold(FieldCell, v))
}

// CellContainsFold applies the ContainsFold predicate on the "cell" field.
func CellContainsFold(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldContainsFold(FieldCell, v))
}

// CrimeEQ applies the EQ predicate on the "crime" field.
func CrimeEQ(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldEQ(FieldCrime, v))
}

// CrimeNEQ applies the NEQ predicate on the "crime" field.
func CrimeNEQ(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldNEQ(FieldCrime, v))
}

// CrimeIn applies the In predicate on the "crime" field.
func CrimeIn(vs ...string) predicate.Pdl {
	return predicate.Pdl(sql.FieldIn(FieldCrime, vs...))
}

// CrimeNotIn applies the NotIn predicate on the "crime" field.
func CrimeNotIn(vs ...string) predicate.Pdl {
	return predicate.Pdl(sql.FieldNotIn(FieldCrime, vs...))
}

// CrimeGT applies the GT predicate on the "crime" field.
func CrimeGT(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldGT(FieldCrime, v))
}

// CrimeGTE applies the GTE predicate on the "crime" field.
func CrimeGTE(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldGTE(FieldCrime, v))
}

// CrimeLT applies the LT predicate on the "crime" field.
func CrimeLT(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldLT(FieldCrime, v))
}

// CrimeLTE applies the LTE predicate on the "crime" field.
func CrimeLTE(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldLTE(FieldCrime, v))
}

// CrimeContains applies the Contains predicate on the "crime" field.
func CrimeContains(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldContains(FieldCrime, v))
}

// CrimeHasPrefix applies the HasPrefix predicate on the "crime" field.
func CrimeHasPrefix(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldHasPrefix(FieldCrime, v))
}

// CrimeHasSuffix applies the HasSuffix predicate on the "crime" field.
func CrimeHasSuffix(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldHasSuffix(FieldCrime, v))
}

// CrimeIsNil applies the IsNil predicate on the "crime" field.
func CrimeIsNil() predicate.Pdl {
	return predicate.Pdl(sql.FieldIsNull(FieldCrime))
}

// CrimeNotNil applies the NotNil predicate on the "crime" field.
func CrimeNotNil() predicate.Pdl {
	return predicate.Pdl(sql.FieldNotNull(FieldCrime))
}

// CrimeEqualFold applies the EqualFold predicate on the "crime" field.
func CrimeEqualFold(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldEqualFold(FieldCrime, v))
}

// CrimeContainsFold applies the ContainsFold predicate on the "crime" field.
func CrimeContainsFold(v string) predicate.Pdl {
	return predicate.Pdl(sql.FieldContainsFold(FieldCrime, v))
}

// DateCommittedEQ applies the EQ predicate on the "date_committed" field.
func DateCommittedEQ(v time.Time) predicate.Pdl {
	return predicate.Pdl(sql.FieldEQ(FieldDateCommitted, v))
}

// DateCommittedNEQ applies the NEQ predicate on the "date_committed" field.
func DateCommittedNEQ(v time.Time) predicate.Pdl {
	return predicate.Pdl(sql.FieldNEQ(FieldDateCommitted, v))
}

// DateCommittedIn applies the In predicate on the "date_committed" field.
func DateCommittedIn(vs ...time.Time) predicate.Pdl {
	return predicate.Pdl(sql.FieldIn(FieldDateCommitted, vs...))
}

// DateCommittedNotIn applies the NotIn predicate on the "date_committed" field.
func DateCommittedNotIn(vs ...time.Time) predicate.Pdl {
	return predicate.Pdl(sql.FieldNotIn(FieldDateCommitted, vs...))
}

// DateCommittedGT applies the GT predicate on the "date_committed" field.
func DateCommittedGT(v time.Time) predicate.Pdl {
	return predicate.Pdl(sql.FieldGT(FieldDateCommitted, v))
}

// DateCommittedGTE applies the GTE predicate on the "date_committed" field.
func DateCommittedGTE(v time.Time) predicate.Pdl {
	return predicate.Pdl(sql.FieldGTE(FieldDateCommitted, v))
}

// DateCommittedLT applies the LT predicate on the "date_committed" field.
func DateCommittedLT(v time.Time) predicate.Pdl {
	return predicate.Pdl(sql.FieldLT(FieldDateCommitted, v))
}

// DateCommittedLTE applies the LTE predicate on the "date_committed" field.
func DateCommittedLTE(v time.Time) predicate.Pdl {
	return predicate.Pdl(sql.FieldLTE(FieldDateCommitted, v))
}

// DateCommittedIsNil applies the IsNil predicate on the "date_committed" field.
func DateCommittedIsNil() predicate.Pdl {
	return predicate.Pdl(sql.FieldIsNull(FieldDateCommitted))
}

// DateCommittedNotNil applies the NotNil predicate on the "date_committed" field.
func DateCommittedNotNil() predicate.Pdl {
	return predicate.Pdl(sql.FieldNotNull(FieldDateCommitted))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Pdl {
	return predicate.Pdl(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Pdl {
	return predicate.Pdl(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Pdl {
	return predicate.Pdl(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Pdl {
	return predicate.Pdl(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Pdl {
	return predicate.Pdl(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Pdl {
	return predicate.Pdl(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Pdl {
	return predicate.Pdl(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Pdl {
	return predicate.Pdl(sql.FieldLTE(FieldCreatedAt, v))
}

// HasVisitors applies the HasEdge predicate on the "visitors" edge.
func HasVisitors() predicate.Pdl {
	return predicate.Pdl(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VisitorsTable, VisitorsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVisitorsWith applies the HasEdge predicate on the "visitors" edge with a given conditions (other predicates).
func HasVisitorsWith(preds ...predicate.RegisteredVisitor) predicate.Pdl {
	return predicate.Pdl(func(s *sql.Selector) {
		step := newVisitorsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Pdl) predicate.Pdl {
	return predicate.Pdl(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Pdl) predicate.Pdl {
	return predicate.Pdl(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Pdl) predicate.Pdl {
	return predicate.Pdl(sql.NotPredicates(p))
}
