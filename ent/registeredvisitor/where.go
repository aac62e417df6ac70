// Code generated by ent, DO NOT EDIT.

package registeredvisitor

import (
	"time"
	"visitlog/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldLTE(FieldID, id))
}

// VisitorID applies equality check predicate on the "visitor_id" field. It's identical to VisitorIDEQ.
func VisitorID(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldEQ(FieldVisitorID, v))
}

// FullName applies equality check predicate on the "full_name" field. It's identical to FullNameEQ.
func FullName(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldEQ(FieldFullName, v))
}

// Relationship applies equality check predicate on the "relationship" field. It's identical to RelationshipEQ.
func Relationship(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldEQ(FieldRelationship, v))
}

// Age applies equality check predicate on the "age" field. It's identical to AgeEQ.
func Age(v int) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldEQ(FieldAge, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldEQ(FieldAddress, v))
}

// ValidID applies equality check predicate on the "valid_id" field. It's identical to ValidIDEQ.
func ValidID(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldEQ(FieldValidID, v))
}

// ContactNumber applies equality check predicate on the "contact_number" field. It's identical to ContactNumberEQ.
func ContactNumber(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldEQ(FieldContactNumber, v))
}

// DateOfApplication applies equality check predicate on the "date_of_application" field. It's identical to DateOfApplicationEQ.
func DateOfApplication(v time.Time) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldEQ(FieldDateOfApplication, v))
}

// ConjugalVerified applies equality check predicate on the "conjugal_verified" field. It's identical to ConjugalVerifiedEQ.
func ConjugalVerified(v bool) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldEQ(FieldConjugalVerified, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldEQ(FieldCreatedAt, v))
}

// VisitorIDEQ applies the EQ predicate on the "visitor_id" field.
func VisitorIDEQ(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldEQ(FieldVisitorID, v))
}

// VisitorIDNEQ applies the NEQ predicate on the "visitor_id" field.
func VisitorIDNEQ(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldNEQ(FieldVisitorID, v))
}

// VisitorIDIn applies the In predicate on the "visitor_id" field.
func VisitorIDIn(vs ...string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldIn(FieldVisitorID, vs...))
}

// VisitorIDNotIn applies the NotIn predicate on the "visitor_id" field.
func VisitorIDNotIn(vs ...string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldNotIn(FieldVisitorID, vs...))
}

// VisitorIDGT applies the GT predicate on the "visitor_id" field.
func VisitorIDGT(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldGT(FieldVisitorID, v))
}

// VisitorIDGTE applies the GTE predicate on the "visitor_id" field.
func VisitorIDGTE(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldGTE(FieldVisitorID, v))
}

// VisitorIDLT applies the LT predicate on the "visitor_id" field.
func VisitorIDLT(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldLT(FieldVisitorID, v))
}

// VisitorIDLTE applies the LTE predicate on the "visitor_id" field.
func VisitorIDLTE(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldLTE(FieldVisitorID, v))
}

// VisitorIDContains applies the Contains predicate on the "visitor_id" field.
func VisitorIDContains(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldContains(FieldVisitorID, v))
}

// VisitorIDHasPrefix applies the HasPrefix predicate on the "visitor_id" field.
func VisitorIDHasPrefix(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldHasPrefix(FieldVisitorID, v))
}

// VisitorIDHasSuffix applies the HasSuffix predicate on the "visitor_id" field.
func VisitorIDHasSuffix(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldHasSuffix(FieldVisitorID, v))
}

// VisitorIDEqualFold applies the EqualFold predicate on the "visitor_id" field.
func VisitorIDEqualFold(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldEqualFold(FieldVisitorID, v))
}

// VisitorIDContainsFold applies the ContainsFold predicate on the "visitor_id" field.
func VisitorIDContainsFold(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldContainsFold(FieldVisitorID, v))
}

// FullNameEQ applies the EQ predicate on the "full_name" field.
func FullNameEQ(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldEQ(FieldFullName, v))
}

// FullNameNEQ applies the NEQ predicate on the "full_name" field.
func FullNameNEQ(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldNEQ(FieldFullName, v))
}

// FullNameIn applies the In predicate on the "full_name" field.
func FullNameIn(vs ...string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldIn(FieldFullName, vs...))
}

// FullNameNotIn applies the NotIn predicate on the "full_name" field.
func FullNameNotIn(vs ...string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldNotIn(FieldFullName, vs...))
}

// FullNameGT applies the GT predicate on the "full_name" field.
func FullNameGT(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldGT(FieldFullName, v))
}

// FullNameGTE applies the GTE predicate on the "full_name" field.
func FullNameGTE(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldGTE(FieldFullName, v))
}

// FullNameLT applies the LT predicate on the "full_name" field.
func FullNameLT(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldLT(FieldFullName, v))
}

// FullNameLTE applies the LTE predicate on the "full_name" field.
func FullNameLTE(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldLTE(FieldFullName, v))
}

// FullNameContains applies the Contains predicate on the "full_name" field.
func FullNameContains(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldContains(FieldFullName, v))
}

// FullNameHasPrefix applies the HasPrefix predicate on the "full_name" field.
func FullNameHasPrefix(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldHasPrefix(FieldFullName, v))
}

// FullNameHasSuffix applies the HasSuffix predicate on the "full_name" field.
func FullNameHasSuffix(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldHasSuffix(FieldFullName, v))
}

// FullNameEqualFold applies the EqualFold predicate on the "full_name" field.
func FullNameEqualFold(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldEqualFold(FieldFullName, v))
}

// FullNameContainsFold applies the ContainsFold predicate on the "full_name" field.
func FullNameContainsFold(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldContainsFold(FieldFullName, v))
}

// RelationshipEQ applies the EQ predicate on the "relationship" field.
func RelationshipEQ(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldEQ(FieldRelationship, v))
}

// RelationshipNEQ applies the NEQ predicate on the "relationship" field.
func RelationshipNEQ(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldNEQ(FieldRelationship, v))
}

// RelationshipIn applies the In predicate on the "relationship" field.
func RelationshipIn(vs ...string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldIn(FieldRelationship, vs...))
}

// RelationshipNotIn applies the NotIn predicate on the "relationship" field.
func RelationshipNotIn(vs ...string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldNotIn(FieldRelationship, vs...))
}

// RelationshipGT applies the GT predicate on the "relationship" field.
func RelationshipGT(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldGT(FieldRelationship, v))
}

// RelationshipGTE applies the GTE predicate on the "relationship" field.
func RelationshipGTE(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldGTE(FieldRelationship, v))
}

// RelationshipLT applies the LT predicate on the "relationship" field.
func RelationshipLT(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldLT(FieldRelationship, v))
}

// RelationshipLTE applies the LTE predicate on the "relationship" field.
func RelationshipLTE(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldLTE(FieldRelationship, v))
}

// RelationshipContains applies the Contains predicate on the "relationship" field.
func RelationshipContains(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldContains(FieldRelationship, v))
}

// RelationshipHasPrefix applies the HasPrefix predicate on the "relationship" field.
func RelationshipHasPrefix(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldHasPrefix(FieldRelationship, v))
}

// RelationshipHasSuffix applies the HasSuffix predicate on the "relationship" field.
func RelationshipHasSuffix(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldHasSuffix(FieldRelationship, v))
}

// RelationshipIsNil applies the IsNil predicate on the "relationship" field.
func RelationshipIsNil() predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldIsNull(FieldRelationship))
}

// RelationshipNotNil applies the NotNil predicate on the "relationship" field.
func RelationshipNotNil() predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldNotNull(FieldRelationship))
}

// RelationshipEqualFold applies the EqualFold predicate on the "relationship" field.
func RelationshipEqualFold(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldEqualFold(FieldRelationship, v))
}

// RelationshipContainsFold applies the ContainsFold predicate on the "relationship" field.
func RelationshipContainsFold(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldContainsFold(FieldRelationship, v))
}

// AgeEQ applies the EQ predicate on the "age" field.
func AgeEQ(v int) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldEQ(FieldAge, v))
}

// AgeNEQ applies the NEQ predicate on the "age" field.
func AgeNEQ(v int) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldNEQ(FieldAge, v))
}

// AgeIn applies the In predicate on the "age" field.
func AgeIn(vs ...int) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldIn(FieldAge, vs...))
}

// AgeNotIn applies the NotIn predicate on the "age" field.
func AgeNotIn(vs ...int) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldNotIn(FieldAge, vs...))
}

// AgeGT applies the GT predicate on the "age" field.
func AgeGT(v int) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldGT(FieldAge, v))
}

// AgeGTE applies the GTE predicate on the "age" field.
func AgeGTE(v int) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldGTE(FieldAge, v))
}

// AgeLT applies the LT predicate on the "age" field.
func AgeLT(v int) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldLT(FieldAge, v))
}

// AgeLTE applies the LTE predicate on the "age" field.
func AgeLTE(v int) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldLTE(FieldAge, v))
}

// AgeIsNil applies the IsNil predicate on the "age" field.
func AgeIsNil() predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldIsNull(FieldAge))
}

// AgeNotNil applies the NotNil predicate on the "age" field.
func AgeNotNil() predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldNotNull(FieldAge))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressIsNil applies the IsNil predicate on the "address" field.
func AddressIsNil() predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldIsNull(FieldAddress))
}

// AddressNotNil applies the NotNil predicate on the "address" field.
func AddressNotNil() predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldNotNull(FieldAddress))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldContainsFold(FieldAddress, v))
}

// ValidIDEQ applies the EQ predicate on the "valid_id" field.
func ValidIDEQ(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldEQ(FieldValidID, v))
}

// ValidIDNEQ applies the NEQ predicate on the "valid_id" field.
func ValidIDNEQ(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldNEQ(FieldValidID, v))
}

// ValidIDIn applies the In predicate on the "valid_id" field.
func ValidIDIn(vs ...string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldIn(FieldValidID, vs...))
}

// ValidIDNotIn applies the NotIn predicate on the "valid_id" field.
func ValidIDNotIn(vs ...string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldNotIn(FieldValidID, vs...))
}

// ValidIDGT applies the GT predicate on the "valid_id" field.
func ValidIDGT(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldGT(FieldValidID, v))
}

// ValidIDGTE applies the GTE predicate on the "valid_id" field.
func ValidIDGTE(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldGTE(FieldValidID, v))
}

// ValidIDLT applies the LT predicate on the "valid_id" field.
func ValidIDLT(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldLT(FieldValidID, v))
}

// ValidIDLTE applies the LTE predicate on the "valid_id" field.
func ValidIDLTE(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldLTE(FieldValidID, v))
}

// ValidIDContains applies the Contains predicate on the "valid_id" field.
func ValidIDContains(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldContains(FieldValidID, v))
}

// ValidIDHasPrefix applies the HasPrefix predicate on the "valid_id" field.
func ValidIDHasPrefix(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldHasPrefix(FieldValidID, v))
}

// ValidIDHasSuffix applies the HasSuffix predicate on the "valid_id" field.
func ValidIDHasSuffix(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldHasSuffix(FieldValidID, v))
}

// ValidIDIsNil applies the IsNil predicate on the "valid_id" field.
func ValidIDIsNil() predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldIsNull(FieldValidID))
}

// ValidIDNotNil applies the NotNil predicate on the "valid_id" field.
func ValidIDNotNil() predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldNotNull(FieldValidID))
}

// ValidIDEqualFold applies the EqualFold predicate on the "valid_id" field.
func ValidIDEqualFold(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldEqualFold(FieldValidID, v))
}

// ValidIDContainsFold applies the ContainsFold predicate on the "valid_id" field.
func ValidIDContainsFold(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldContainsFold(FieldValidID, v))
}

// ContactNumberEQ applies the EQ predicate on the "contact_number" field.
func ContactNumberEQ(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldEQ(FieldContactNumber, v))
}

// ContactNumberNEQ applies the NEQ predicate on the "contact_number" field.
func ContactNumberNEQ(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldNEQ(FieldContactNumber, v))
}

// ContactNumberIn applies the In predicate on the "contact_number" field.
func ContactNumberIn(vs ...string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldIn(FieldContactNumber, vs...))
}

// ContactNumberNotIn applies the NotIn predicate on the "contact_number" field.
func ContactNumberNotIn(vs ...string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldNotIn(FieldContactNumber, vs...))
}

// ContactNumberGT applies the GT predicate on the "contact_number" field.
func ContactNumberGT(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldGT(FieldContactNumber, v))
}

// ContactNumberGTE applies the GTE predicate on the "contact_number" field.
func ContactNumberGTE(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldGTE(FieldContactNumber, v))
}

// ContactNumberLT applies the LT predicate on the "contact_number" field.
func ContactNumberLT(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldLT(FieldContactNumber, v))
}

// ContactNumberLTE applies the LTE predicate on the "contact_number" field.
func ContactNumberLTE(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldLTE(FieldContactNumber, v))
}

// ContactNumberContains applies the Contains predicate on the "contact_number" field.
func ContactNumberContains(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldContains(FieldContactNumber, v))
}

// ContactNumberHasPrefix applies the HasPrefix predicate on the "contact_number" field.
func ContactNumberHasPrefix(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldHasPrefix(FieldContactNumber, v))
}

// ContactNumberHasSuffix applies the HasSuffix predicate on the "contact_number" field.
func ContactNumberHasSuffix(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldHasSuffix(FieldContactNumber, v))
}

// ContactNumberIsNil applies the IsNil predicate on the "contact_number" field.
func ContactNumberIsNil() predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldIsNull(FieldContactNumber))
}

// ContactNumberNotNil applies the NotNil predicate on the "contact_number" field.
func ContactNumberNotNil() predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldNotNull(FieldContactNumber))
}

// ContactNumberEqualFold applies the EqualFold predicate on the "contact_number" field.
func ContactNumberEqualFold(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldEqualFold(FieldContactNumber, v))
}

// ContactNumberContainsFold applies the ContainsFold predicate on the "contact_number" field.
func ContactNumberContainsFold(v string) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldContainsFold(FieldContactNumber, v))
}

// DateOfApplicationEQ applies the EQ predicate on the "date_of_application" field.
func DateOfApplicationEQ(v time.Time) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldEQ(FieldDateOfApplication, v))
}

// DateOfApplicationNEQ applies the NEQ predicate on the "date_of_application" field.
func DateOfApplicationNEQ(v time.Time) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldNEQ(FieldDateOfApplication, v))
}

// DateOfApplicationIn applies the In predicate on the "date_of_application" field.
func DateOfApplicationIn(vs ...time.Time) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldIn(FieldDateOfApplication, vs...))
}

// DateOfApplicationNotIn applies the NotIn predicate on the "date_of_application" field.
func DateOfApplicationNotIn(vs ...time.Time) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldNotIn(FieldDateOfApplication, vs...))
}

// DateOfApplicationGT applies the GT predicate on the "date_of_application" field.
func DateOfApplicationGT(v time.Time) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldGT(FieldDateOfApplication, v))
}

// DateOfApplicationGTE applies the GTE predicate on the "date_of_application" field.
func DateOfApplicationGTE(v time.Time) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldGTE(FieldDateOfApplication, v))
}

// DateOfApplicationLT applies the LT predicate on the "date_of_application" field.
func DateOfApplicationLT(v time.Time) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldLT(FieldDateOfApplication, v))
}

// DateOfApplicationLTE applies the LTE predicate on the "date_of_application" field.
func DateOfApplicationLTE(v time.Time) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldLTE(FieldDateOfApplication, v))
}

// DateOfApplicationIsNil applies the IsNil predicate on the "date_of_application" field.
func DateOfApplicationIsNil() predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldIsNull(FieldDateOfApplication))
}

// DateOfApplicationNotNil applies the NotNil predicate on the "date_of_application" field.
func DateOfApplicationNotNil() predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldNotNull(FieldDateOfApplication))
}

// ConjugalVerifiedEQ applies the EQ predicate on the "conjugal_verified" field.
func ConjugalVerifiedEQ(v bool) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldEQ(FieldConjugalVerified, v))
}

// ConjugalVerifiedNEQ applies the NEQ predicate on the "conjugal_verified" field.
func ConjugalVerifiedNEQ(v bool) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldNEQ(FieldConjugalVerified, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.FieldLTE(FieldCreatedAt, v))
}

// HasPdl applies the HasEdge predicate on the "pdl" edge.
func HasPdl() predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PdlTable, PdlColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPdlWith applies the HasEdge predicate on the "pdl" edge with a given conditions (other predicates).
func HasPdlWith(preds ...predicate.Pdl) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(func(s *sql.Selector) {
		step := newPdlStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RegisteredVisitor) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RegisteredVisitor) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RegisteredVisitor) predicate.RegisteredVisitor {
	return predicate.RegisteredVisitor(sql.NotPredicates(p))
}
