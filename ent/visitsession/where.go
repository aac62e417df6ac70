// Code generated by ent, DO NOT EDIT.

package visitsession

import (
	"time"
	"visitlog/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldLTE(FieldID, id))
}

// VisitorName applies equality check predicate on the "visitor_name" field. It's identical to VisitorNameEQ.
func VisitorName(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldEQ(FieldVisitorName, v))
}

// VisitorKey applies equality check predicate on the "visitor_key" field. It's identical to VisitorKeyEQ.
func VisitorKey(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldEQ(FieldVisitorKey, v))
}

// PdlName applies equality check predicate on the "pdl_name" field. It's identical to PdlNameEQ.
func PdlName(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldEQ(FieldPdlName, v))
}

// Cell applies equality check predicate on the "cell" field. It's identical to CellEQ.
func Cell(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldEQ(FieldCell, v))
}

// Relationship applies equality check predicate on the "relationship" field. It's identical to RelationshipEQ.
func Relationship(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldEQ(FieldRelationship, v))
}

// ContactNumber applies equality check predicate on the "contact_number" field. It's identical to ContactNumberEQ.
func ContactNumber(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldEQ(FieldContactNumber, v))
}

// TimeIn applies equality check predicate on the "time_in" field. It's identical to TimeInEQ.
func TimeIn(v time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldEQ(FieldTimeIn, v))
}

// TimeOut applies equality check predicate on the "time_out" field. It's identical to TimeOutEQ.
func TimeOut(v time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldEQ(FieldTimeOut, v))
}

// ScanDate applies equality check predicate on the "scan_date" field. It's identical to ScanDateEQ.
func ScanDate(v time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldEQ(FieldScanDate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldEQ(FieldCreatedAt, v))
}

// VisitorNameEQ applies the EQ predicate on the "visitor_name" field.
func VisitorNameEQ(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldEQ(FieldVisitorName, v))
}

// VisitorNameNEQ applies the NEQ predicate on the "visitor_name" field.
func VisitorNameNEQ(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldNEQ(FieldVisitorName, v))
}

// VisitorNameIn applies the In predicate on the "visitor_name" field.
func VisitorNameIn(vs ...string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldIn(FieldVisitorName, vs...))
}

// VisitorNameNotIn applies the NotIn predicate on the "visitor_name" field.
func VisitorNameNotIn(vs ...string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldNotIn(FieldVisitorName, vs...))
}

// VisitorNameGT applies the GT predicate on the "visitor_name" field.
func VisitorNameGT(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldGT(FieldVisitorName, v))
}

// VisitorNameGTE applies the GTE predicate on the "visitor_name" field.
func VisitorNameGTE(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldGTE(FieldVisitorName, v))
}

// VisitorNameLT applies the LT predicate on the "visitor_name" field.
func VisitorNameLT(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldLT(FieldVisitorName, v))
}

// VisitorNameLTE applies the LTE predicate on the "visitor_name" field.
func VisitorNameLTE(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldLTE(FieldVisitorName, v))
}

// VisitorNameContains applies the Contains predicate on the "visitor_name" field.
func VisitorNameContains(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldContains(FieldVisitorName, v))
}

// VisitorNameHasPrefix applies the HasPrefix predicate on the "visitor_name" field.
func VisitorNameHasPrefix(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldHasPrefix(FieldVisitorName, v))
}

// VisitorNameHasSuffix applies the HasSuffix predicate on the "visitor_name" field.
func VisitorNameHasSuffix(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldHasSuffix(FieldVisitorName, v))
}

// VisitorNameEqualFold applies the EqualFold predicate on the "visitor_name" field.
func VisitorNameEqualFold(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldEqualFold(FieldVisitorName, v))
}

// VisitorNameContainsFold applies the ContainsFold predicate on the "visitor_name" field.
func VisitorNameContainsFold(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldContainsFold(FieldVisitorName, v))
}

// VisitorKeyEQ applies the EQ predicate on the "visitor_key" field.
func VisitorKeyEQ(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldEQ(FieldVisitorKey, v))
}

// VisitorKeyNEQ applies the NEQ predicate on the "visitor_key" field.
func VisitorKeyNEQ(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldNEQ(FieldVisitorKey, v))
}

// VisitorKeyIn applies the In predicate on the "visitor_key" field.
func VisitorKeyIn(vs ...string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldIn(FieldVisitorKey, vs...))
}

// VisitorKeyNotIn applies the NotIn predicate on the "visitor_key" field.
func VisitorKeyNotIn(vs ...string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldNotIn(FieldVisitorKey, vs...))
}

// VisitorKeyGT applies the GT predicate on the "visitor_key" field.
func VisitorKeyGT(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldGT(FieldVisitorKey, v))
}

// VisitorKeyGTE applies the GTE predicate on the "visitor_key" field.
func VisitorKeyGTE(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldGTE(FieldVisitorKey, v))
}

// VisitorKeyLT applies the LT predicate on the "visitor_key" field.
func VisitorKeyLT(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldLT(FieldVisitorKey, v))
}

// VisitorKeyLTE applies the LTE predicate on the "visitor_key" field.
func VisitorKeyLTE(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldLTE(FieldVisitorKey, v))
}

// VisitorKeyContains applies the Contains predicate on the "visitor_key" field.
func VisitorKeyContains(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldContains(FieldVisitorKey, v))
}

// VisitorKeyHasPrefix applies the HasPrefix predicate on the "visitor_key" field.
func VisitorKeyHasPrefix(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldHasPrefix(FieldVisitorKey, v))
}

// VisitorKeyHasSuffix applies the HasSuffix predicate on the "visitor_key" field.
func VisitorKeyHasSuffix(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldHasSuffix(FieldVisitorKey, v))
}

// VisitorKeyEqualFold applies the EqualFold predicate on the "visitor_key" field.
func VisitorKeyEqualFold(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldEqualFold(FieldVisitorKey, v))
}

// VisitorKeyContainsFold applies the ContainsFold predicate on the "visitor_key" field.
func VisitorKeyContainsFold(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldContainsFold(FieldVisitorKey, v))
}

// PdlNameEQ applies the EQ predicate on the "pdl_name" field.
func PdlNameEQ(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldEQ(FieldPdlName, v))
}

// PdlNameNEQ applies the NEQ predicate on the "pdl_name" field.
func PdlNameNEQ(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldNEQ(FieldPdlName, v))
}

// PdlNameIn applies the In predicate on the "pdl_name" field.
func PdlNameIn(vs ...string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldIn(FieldPdlName, vs...))
}

// PdlNameNotIn applies the NotIn predicate on the "pdl_name" field.
func PdlNameNotIn(vs ...string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldNotIn(FieldPdlName, vs...))
}

// PdlNameGT applies the GT predicate on the "pdl_name" field.
func PdlNameGT(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldGT(FieldPdlName, v))
}

// PdlNameGTE applies the GTE predicate on the "pdl_name" field.
func PdlNameGTE(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldGTE(FieldPdlName, v))
}

// PdlNameLT applies the LT predicate on the "pdl_name" field.
func PdlNameLT(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldLT(FieldPdlName, v))
}

// PdlNameLTE applies the LTE predicate on the "pdl_name" field.
func PdlNameLTE(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldLTE(FieldPdlName, v))
}

// PdlNameContains applies the Contains predicate on the "pdl_name" field.
func PdlNameContains(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldContains(FieldPdlName, v))
}

// PdlNameHasPrefix applies the HasPrefix predicate on the "pdl_name" field.
func PdlNameHasPrefix(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldHasPrefix(FieldPdlName, v))
}

// PdlNameHasSuffix applies the HasSuffix predicate on the "pdl_name" field.
func PdlNameHasSuffix(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldHasSuffix(FieldPdlName, v))
}

// PdlNameEqualFold applies the EqualFold predicate on the "pdl_name" field.
func PdlNameEqualFold(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldEqualFold(FieldPdlName, v))
}

// PdlNameContainsFold applies the ContainsFold predicate on the "pdl_name" field.
func PdlNameContainsFold(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldContainsFold(FieldPdlName, v))
}

// CellEQ applies the EQ predicate on the "cell" field.
func CellEQ(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldEQ(FieldCell, v))
}

// CellNEQ applies the NEQ predicate on the "cell" field.
func CellNEQ(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldNEQ(FieldCell, v))
}

// CellIn applies the In predicate on the "cell" field.
func CellIn(vs ...string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldIn(FieldCell, vs...))
}

// CellNotIn applies the NotIn predicate on the "cell" field.
func CellNotIn(vs ...string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldNotIn(FieldCell, vs...))
}

// CellGT applies the GT predicate on the "cell" field.
func CellGT(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldGT(FieldCell, v))
}

// CellGTE applies the GTE predicate on the "cell" field.
func CellGTE(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldGTE(FieldCell, v))
}

// CellLT applies the LT predicate on the "cell" field.
func CellLT(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldLT(FieldCell, v))
}

// CellLTE applies the LTE predicate on the "cell" field.
func CellLTE(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldLTE(FieldCell, v))
}

// CellContains applies the Contains predicate on the "cell" field.
func CellContains(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldContains(FieldCell, v))
}

// CellHasPrefix applies the HasPrefix predicate on the "cell" field.
func CellHasPrefix(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldHasPrefix(FieldCell, v))
}

// CellHasSuffix applies the HasSuffix predicate on the "cell" field.
func CellHasSuffix(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldHasSuffix(FieldCell, v))
}

// CellEqualFold applies the EqualFold predicate on the "cell" field.
func CellEqualFold(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldEqualFold(FieldCell, v))
}

// CellContainsFold applies the ContainsFold predicate on the "cell" field.
func CellContainsFold(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldContainsFold(FieldCell, v))
}

// RelationshipEQ applies the EQ predicate on the "relationship" field.
func RelationshipEQ(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldEQ(FieldRelationship, v))
}

// RelationshipNEQ applies the NEQ predicate on the "relationship" field.
func RelationshipNEQ(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldNEQ(FieldRelationship, v))
}

// RelationshipIn applies the In predicate on the "relationship" field.
func RelationshipIn(vs ...string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldIn(FieldRelationship, vs...))
}

// RelationshipNotIn applies the NotIn predicate on the "relationship" field.
func RelationshipNotIn(vs ...string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldNotIn(FieldRelationship, vs...))
}

// RelationshipGT applies the GT predicate on the "relationship" field.
func RelationshipGT(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldGT(FieldRelationship, v))
}

// RelationshipGTE applies the GTE predicate on the "relationship" field.
func RelationshipGTE(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldGTE(FieldRelationship, v))
}

// RelationshipLT applies the LT predicate on the "relationship" field.
func RelationshipLT(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldLT(FieldRelationship, v))
}

// RelationshipLTE applies the LTE predicate on the "relationship" field.
func RelationshipLTE(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldLTE(FieldRelationship, v))
}

// RelationshipContains applies the Contains predicate on the "relationship" field.
func RelationshipContains(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldContains(FieldRelationship, v))
}

// RelationshipHasPrefix applies the HasPrefix predicate on the "relationship" field.
func RelationshipHasPrefix(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldHasPrefix(FieldRelationship, v))
}

// RelationshipHasSuffix applies the HasSuffix predicate on the "relationship" field.
func RelationshipHasSuffix(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldHasSuffix(FieldRelationship, v))
}

// RelationshipIsNil applies the IsNil predicate on the "relationship" field.
func RelationshipIsNil() predicate.VisitSession {
	return predicate.VisitSession(sql.FieldIsNull(FieldRelationship))
}

// RelationshipNotNil applies the NotNil predicate on the "relationship" field.
func RelationshipNotNil() predicate.VisitSession {
	return predicate.VisitSession(sql.FieldNotNull(FieldRelationship))
}

// RelationshipEqualFold applies the EqualFold predicate on the "relationship" field.
func RelationshipEqualFold(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldEqualFold(FieldRelationship, v))
}

// RelationshipContainsFold applies the ContainsFold predicate on the "relationship" field.
func RelationshipContainsFold(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldContainsFold(FieldRelationship, v))
}

// ContactNumberEQ applies the EQ predicate on the "contact_number" field.
func ContactNumberEQ(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldEQ(FieldContactNumber, v))
}

// ContactNumberNEQ applies the NEQ predicate on the "contact_number" field.
func ContactNumberNEQ(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldNEQ(FieldContactNumber, v))
}

// ContactNumberIn applies the In predicate on the "contact_number" field.
func ContactNumberIn(vs ...string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldIn(FieldContactNumber, vs...))
}

// ContactNumberNotIn applies the NotIn predicate on the "contact_number" field.
func ContactNumberNotIn(vs ...string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldNotIn(FieldContactNumber, vs...))
}

// ContactNumberGT applies the GT predicate on the "contact_number" field.
func ContactNumberGT(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldGT(FieldContactNumber, v))
}

// ContactNumberGTE applies the GTE predicate on the "contact_number" field.
func ContactNumberGTE(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldGTE(FieldContactNumber, v))
}

// ContactNumberLT applies the LT predicate on the "contact_number" field.
func ContactNumberLT(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldLT(FieldContactNumber, v))
}

// ContactNumberLTE applies the LTE predicate on the "contact_number" field.
func ContactNumberLTE(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldLTE(FieldContactNumber, v))
}

// ContactNumberContains applies the Contains predicate on the "contact_number" field.
func ContactNumberContains(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldContains(FieldContactNumber, v))
}

// ContactNumberHasPrefix applies the HasPrefix predicate on the "contact_number" field.
func ContactNumberHasPrefix(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldHasPrefix(FieldContactNumber, v))
}

// ContactNumberHasSuffix applies the HasSuffix predicate on the "contact_number" field.
func ContactNumberHasSuffix(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldHasSuffix(FieldContactNumber, v))
}

// ContactNumberIsNil applies the IsNil predicate on the "contact_number" field.
func ContactNumberIsNil() predicate.VisitSession {
	return predicate.VisitSession(sql.FieldIsNull(FieldContactNumber))
}

// ContactNumberNotNil applies the NotNil predicate on the "contact_number" field.
func ContactNumberNotNil() predicate.VisitSession {
	return predicate.VisitSession(sql.FieldNotNull(FieldContactNumber))
}

// ContactNumberEqualFold applies the EqualFold predicate on the "contact_number" field.
func ContactNumberEqualFold(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldEqualFold(FieldContactNumber, v))
}

// ContactNumberContainsFold applies the ContainsFold predicate on the "contact_number" field.
func ContactNumberContainsFold(v string) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldContainsFold(FieldContactNumber, v))
}

// PurposeEQ applies the EQ predicate on the "purpose" field.
func PurposeEQ(v Purpose) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldEQ(FieldPurpose, v))
}

// PurposeNEQ applies the NEQ predicate on the "purpose" field.
func PurposeNEQ(v Purpose) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldNEQ(FieldPurpose, v))
}

// PurposeIn applies the In predicate on the "purpose" field.
func PurposeIn(vs ...Purpose) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldIn(FieldPurpose, vs...))
}

// PurposeNotIn applies the NotIn predicate on the "purpose" field.
func PurposeNotIn(vs ...Purpose) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldNotIn(FieldPurpose, vs...))
}

// TimeInEQ applies the EQ predicate on the "time_in" field.
func TimeInEQ(v time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldEQ(FieldTimeIn, v))
}

// TimeInNEQ applies the NEQ predicate on the "time_in" field.
func TimeInNEQ(v time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldNEQ(FieldTimeIn, v))
}

// TimeInIn applies the In predicate on the "time_in" field.
func TimeInIn(vs ...time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldIn(FieldTimeIn, vs...))
}

// TimeInNotIn applies the NotIn predicate on the "time_in" field.
func TimeInNotIn(vs ...time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldNotIn(FieldTimeIn, vs...))
}

// TimeInGT applies the GT predicate on the "time_in" field.
func TimeInGT(v time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldGT(FieldTimeIn, v))
}

// TimeInGTE applies the GTE predicate on the "time_in" field.
func TimeInGTE(v time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldGTE(FieldTimeIn, v))
}

// TimeInLT applies the LT predicate on the "time_in" field.
func TimeInLT(v time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldLT(FieldTimeIn, v))
}

// TimeInLTE applies the LTE predicate on the "time_in" field.
func TimeInLTE(v time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldLTE(FieldTimeIn, v))
}

// TimeOutEQ applies the EQ predicate on the "time_out" field.
func TimeOutEQ(v time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldEQ(FieldTimeOut, v))
}

// TimeOutNEQ applies the NEQ predicate on the "time_out" field.
func TimeOutNEQ(v time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldNEQ(FieldTimeOut, v))
}

// TimeOutIn applies the In predicate on the "time_out" field.
func TimeOutIn(vs ...time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldIn(FieldTimeOut, vs...))
}

// TimeOutNotIn applies the NotIn predicate on the "time_out" field.
func TimeOutNotIn(vs ...time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldNotIn(FieldTimeOut, vs...))
}

// TimeOutGT applies the GT predicate on the "time_out" field.
func TimeOutGT(v time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldGT(FieldTimeOut, v))
}

// TimeOutGTE applies the GTE predicate on the "time_out" field.
func TimeOutGTE(v time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldGTE(FieldTimeOut, v))
}

// TimeOutLT applies the LT predicate on the "time_out" field.
func TimeOutLT(v time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldLT(FieldTimeOut, v))
}

// TimeOutLTE applies the LTE predicate on the "time_out" field.
func TimeOutLTE(v time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldLTE(FieldTimeOut, v))
}

// TimeOutIsNil applies the IsNil predicate on the "time_out" field.
func TimeOutIsNil() predicate.VisitSession {
	return predicate.VisitSession(sql.FieldIsNull(FieldTimeOut))
}

// TimeOutNotNil applies the NotNil predicate on the "time_out" field.
func TimeOutNotNil() predicate.VisitSession {
	return predicate.VisitSession(sql.FieldNotNull(FieldTimeOut))
}

// ScanDateEQ applies the EQ predicate on the "scan_date" field.
func ScanDateEQ(v time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldEQ(FieldScanDate, v))
}

// ScanDateNEQ applies the NEQ predicate on the "scan_date" field.
func ScanDateNEQ(v time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldNEQ(FieldScanDate, v))
}

// ScanDateIn applies the In predicate on the "scan_date" field.
func ScanDateIn(vs ...time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldIn(FieldScanDate, vs...))
}

// ScanDateNotIn applies the NotIn predicate on the "scan_date" field.
func ScanDateNotIn(vs ...time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldNotIn(FieldScanDate, vs...))
}

// ScanDateGT applies the GT predicate on the "scan_date" field.
func ScanDateGT(v time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldGT(FieldScanDate, v))
}

// ScanDateGTE applies the GTE predicate on the "scan_date" field.
func ScanDateGTE(v time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldGTE(FieldScanDate, v))
}

// ScanDateLT applies the LT predicate on the "scan_date" field.
func ScanDateLT(v time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldLT(FieldScanDate, v))
}

// ScanDateLTE applies the LTE predicate on the "scan_date" field.
func ScanDateLTE(v time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldLTE(FieldScanDate, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.VisitSession {
	return predicate.VisitSession(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VisitSession) predicate.VisitSession {
	return predicate.VisitSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VisitSession) predicate.VisitSession {
	return predicate.VisitSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VisitSession) predicate.VisitSession {
	return predicate.VisitSession(sql.NotPredicates(p))
}
