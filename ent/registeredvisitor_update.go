// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"visitlog/ent/pdl"
	"visitlog/ent/predicate"
	"visitlog/ent/registeredvisitor"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// RegisteredVisitorUpdate is the builder for updating RegisteredVisitor entities.
type RegisteredVisitorUpdate struct {
	config
	hooks    []Hook
	mutation *RegisteredVisitorMutation
}

// Where appends a list predicates to the RegisteredVisitorUpdate builder.
func (_u *RegisteredVisitorUpdate) Where(ps ...predicate.RegisteredVisitor) *RegisteredVisitorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVisitorID sets the "visitor_id" field.
func (_u *RegisteredVisitorUpdate) SetVisitorID(v string) *RegisteredVisitorUpdate {
	_u.mutation.SetVisitorID(v)
	return _u
}

// SetNillableVisitorID sets the "visitor_id" field if the given value is not nil.
func (_u *RegisteredVisitorUpdate) SetNillableVisitorID(v *string) *RegisteredVisitorUpdate {
	if v != nil {
		_u.SetVisitorID(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *RegisteredVisitorUpdate) SetFullName(v string) *RegisteredVisitorUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *RegisteredVisitorUpdate) SetNillableFullName(v *string) *RegisteredVisitorUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetRelationship sets the "relationship" field.
func (_u *RegisteredVisitorUpdate) SetRelationship(v string) *RegisteredVisitorUpdate {
	_u.mutation.SetRelationship(v)
	return _u
}

// SetNillableRelationship sets the "relationship" field if the given value is not nil.
func (_u *RegisteredVisitorUpdate) SetNillableRelationship(v *string) *RegisteredVisitorUpdate {
	if v != nil {
		_u.SetRelationship(*v)
	}
	return _u
}

// ClearRelationship clears the value of the "relationship" field.
func (_u *RegisteredVisitorUpdate) ClearRelationship() *RegisteredVisitorUpdate {
	_u.mutation.ClearRelationship()
	return _u
}

// SetAge sets the "age" field.
func (_u *RegisteredVisitorUpdate) SetAge(v int) *RegisteredVisitorUpdate {
	_u.mutation.ResetAge()
	_u.mutation.SetAge(v)
	return _u
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_u *RegisteredVisitorUpdate) SetNillableAge(v *int) *RegisteredVisitorUpdate {
	if v != nil {
		_u.SetAge(*v)
	}
	return _u
}

// AddAge adds value to the "age" field.
func (_u *RegisteredVisitorUpdate) AddAge(v int) *RegisteredVisitorUpdate {
	_u.mutation.AddAge(v)
	return _u
}

// ClearAge clears the value of the "age" field.
func (_u *RegisteredVisitorUpdate) ClearAge() *RegisteredVisitorUpdate {
	_u.mutation.ClearAge()
	return _u
}

// SetAddress sets the "address" field.
func (_u *RegisteredVisitorUpdate) SetAddress(v string) *RegisteredVisitorUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *RegisteredVisitorUpdate) SetNillableAddress(v *string) *RegisteredVisitorUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *RegisteredVisitorUpdate) ClearAddress() *RegisteredVisitorUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetValidID sets the "valid_id" field.
func (_u *RegisteredVisitorUpdate) SetValidID(v string) *RegisteredVisitorUpdate {
	_u.mutation.SetValidID(v)
	return _u
}

// SetNillableValidID sets the "valid_id" field if the given value is not nil.
func (_u *RegisteredVisitorUpdate) SetNillableValidID(v *string) *RegisteredVisitorUpdate {
	if v != nil {
		_u.SetValidID(*v)
	}
	return _u
}

// ClearValidID clears the value of the "valid_id" field.
func (_u *RegisteredVisitorUpdate) ClearValidID() *RegisteredVisitorUpdate {
	_u.mutation.ClearValidID()
	return _u
}

// SetContactNumber sets the "contact_number" field.
func (_u *RegisteredVisitorUpdate) SetContactNumber(v string) *RegisteredVisitorUpdate {
	_u.mutation.SetContactNumber(v)
	return _u
}

// SetNillableContactNumber sets the "contact_number" field if the given value is not nil.
func (_u *RegisteredVisitorUpdate) SetNillableContactNumber(v *string) *RegisteredVisitorUpdate {
	if v != nil {
		_u.SetContactNumber(*v)
	}
	return _u
}

// ClearContactNumber clears the value of the "contact_number" field.
func (_u *RegisteredVisitorUpdate) ClearContactNumber() *RegisteredVisitorUpdate {
	_u.mutation.ClearContactNumber()
	return _u
}

// SetDateOfApplication sets the "date_of_application" field.
func (_u *RegisteredVisitorUpdate) SetDateOfApplication(v time.Time) *RegisteredVisitorUpdate {
	_u.mutation.SetDateOfApplication(v)
	return _u
}

// SetNillableDateOfApplication sets the "date_of_application" field if the given value is not nil.
func (_u *RegisteredVisitorUpdate) SetNillableDateOfApplication(v *time.Time) *RegisteredVisitorUpdate {
	if v != nil {
		_u.SetDateOfApplication(*v)
	}
	return _u
}

// ClearDateOfApplication clears the value of the "date_of_application" field.
func (_u *RegisteredVisitorUpdate) ClearDateOfApplication() *RegisteredVisitorUpdate {
	_u.mutation.ClearDateOfApplication()
	return _u
}

// SetConjugalVerified sets the "conjugal_verified" field.
func (_u *RegisteredVisitorUpdate) SetConjugalVerified(v bool) *RegisteredVisitorUpdate {
	_u.mutation.SetConjugalVerified(v)
	return _u
}

// SetNillableConjugalVerified sets the "conjugal_verified" field if the given value is not nil.
func (_u *RegisteredVisitorUpdate) SetNillableConjugalVerified(v *bool) *RegisteredVisitorUpdate {
	if v != nil {
		_u.SetConjugalVerified(*v)
	}
	return _u
}

// SetPdlID sets the "pdl" edge to the Pdl entity by ID.
func (_u *RegisteredVisitorUpdate) SetPdlID(id uuid.UUID) *RegisteredVisitorUpdate {
	_u.mutation.SetPdlID(id)
	return _u
}

// SetNillablePdlID sets the "pdl" edge to the Pdl entity by ID if the given value is not nil.
func (_u *RegisteredVisitorUpdate) SetNillablePdlID(id *uuid.UUID) *RegisteredVisitorUpdate {
	if id != nil {
		_u = _u.SetPdlID(*id)
	}
	return _u
}

// SetPdl sets the "pdl" edge to the Pdl entity.
func (_u *RegisteredVisitorUpdate) SetPdl(v *Pdl) *RegisteredVisitorUpdate {
	return _u.SetPdlID(v.ID)
}

// Mutation returns the RegisteredVisitorMutation object of the builder.
func (_u *RegisteredVisitorUpdate) Mutation() *RegisteredVisitorMutation {
	return _u.mutation
}

// ClearPdl clears the "pdl" edge to the Pdl entity.
func (_u *RegisteredVisitorUpdate) ClearPdl() *RegisteredVisitorUpdate {
	_u.mutation.ClearPdl()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RegisteredVisitorUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RegisteredVisitorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RegisteredVisitorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RegisteredVisitorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RegisteredVisitorUpdate) check() error {
	if v, ok := _u.mutation.VisitorID(); ok {
		if err := registeredvisitor.VisitorIDValidator(v); err != nil {
			return &ValidationError{Name: "visitor_id", err: fmt.Errorf(`ent: validator failed for field "RegisteredVisitor.visitor_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FullName(); ok {
		if err := registeredvisitor.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "RegisteredVisitor.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Age(); ok {
		if err := registeredvisitor.AgeValidator(v); err != nil {
			return &ValidationError{Name: "age", err: fmt.Errorf(`ent: validator failed for field "RegisteredVisitor.age": %w`, err)}
		}
	}
	return nil
}

func (_u *RegisteredVisitorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(registeredvisitor.Table, registeredvisitor.Columns, sqlgraph.NewFieldSpec(registeredvisitor.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VisitorID(); ok {
		_spec.SetField(registeredvisitor.FieldVisitorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(registeredvisitor.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Relationship(); ok {
		_spec.SetField(registeredvisitor.FieldRelationship, field.TypeString, value)
	}
	if _u.mutation.RelationshipCleared() {
		_spec.ClearField(registeredvisitor.FieldRelationship, field.TypeString)
	}
	if value, ok := _u.mutation.Age(); ok {
		_spec.SetField(registeredvisitor.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAge(); ok {
		_spec.AddField(registeredvisitor.FieldAge, field.TypeInt, value)
	}
	if _u.mutation.AgeCleared() {
		_spec.ClearField(registeredvisitor.FieldAge, field.TypeInt)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(registeredvisitor.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(registeredvisitor.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.ValidID(); ok {
		_spec.SetField(registeredvisitor.FieldValidID, field.TypeString, value)
	}
	if _u.mutation.ValidIDCleared() {
		_spec.ClearField(registeredvisitor.FieldValidID, field.TypeString)
	}
	if value, ok := _u.mutation.ContactNumber(); ok {
		_spec.SetField(registeredvisitor.FieldContactNumber, field.TypeString, value)
	}
	if _u.mutation.ContactNumberCleared() {
		_spec.ClearField(registeredvisitor.FieldContactNumber, field.TypeString)
	}
	if value, ok := _u.mutation.DateOfApplication(); ok {
		_spec.SetField(registeredvisitor.FieldDateOfApplication, field.TypeTime, value)
	}
	if _u.mutation.DateOfApplicationCleared() {
		_spec.ClearField(registeredvisitor.FieldDateOfApplication, field.TypeTime)
	}
	if value, ok := _u.mutation.ConjugalVerified(); ok {
		_spec.SetField(registeredvisitor.FieldConjugalVerified, field.TypeBool, value)
	}
	if _u.mutation.PdlCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   registeredvisitor.PdlTable,
			Columns: []string{registeredvisitor.PdlColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pdl.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PdlIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   registeredvisitor.PdlTable,
			Columns: []string{registeredvisitor.PdlColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pdl.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{registeredvisitor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RegisteredVisitorUpdateOne is the builder for updating a single RegisteredVisitor entity.
type RegisteredVisitorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RegisteredVisitorMutation
}

// SetVisitorID sets the "visitor_id" field.
func (_u *RegisteredVisitorUpdateOne) SetVisitorID(v string) *RegisteredVisitorUpdateOne {
	_u.mutation.SetVisitorID(v)
	return _u
}

// SetNillableVisitorID sets the "visitor_id" field if the given value is not nil.
func (_u *RegisteredVisitorUpdateOne) SetNillableVisitorID(v *string) *RegisteredVisitorUpdateOne {
	if v != nil {
		_u.SetVisitorID(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *RegisteredVisitorUpdateOne) SetFullName(v string) *RegisteredVisitorUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *RegisteredVisitorUpdateOne) SetNillableFullName(v *string) *RegisteredVisitorUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetRelationship sets the "relationship" field.
func (_u *RegisteredVisitorUpdateOne) SetRelationship(v string) *RegisteredVisitorUpdateOne {
	_u.mutation.SetRelationship(v)
	return _u
}

// SetNillableRelationship sets the "relationship" field if the given value is not nil.
func (_u *RegisteredVisitorUpdateOne) SetNillableRelationship(v *string) *RegisteredVisitorUpdateOne {
	if v != nil {
		_u.SetRelationship(*v)
	}
	return _u
}

// ClearRelationship clears the value of the "relationship" field.
func (_u *RegisteredVisitorUpdateOne) ClearRelationship() *RegisteredVisitorUpdateOne {
	_u.mutation.ClearRelationship()
	return _u
}

// SetAge sets the "age" field.
func (_u *RegisteredVisitorUpdateOne) SetAge(v int) *RegisteredVisitorUpdateOne {
	_u.mutation.ResetAge()
	_u.mutation.SetAge(v)
	return _u
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_u *RegisteredVisitorUpdateOne) SetNillableAge(v *int) *RegisteredVisitorUpdateOne {
	if v != nil {
		_u.SetAge(*v)
	}
	return _u
}

// AddAge adds value to the "age" field.
func (_u *RegisteredVisitorUpdateOne) AddAge(v int) *RegisteredVisitorUpdateOne {
	_u.mutation.AddAge(v)
	return _u
}

// ClearAge clears the value of the "age" field.
func (_u *RegisteredVisitorUpdateOne) ClearAge() *RegisteredVisitorUpdateOne {
	_u.mutation.ClearAge()
	return _u
}

// SetAddress sets the "address" field.
func (_u *RegisteredVisitorUpdateOne) SetAddress(v string) *RegisteredVisitorUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *RegisteredVisitorUpdateOne) SetNillableAddress(v *string) *RegisteredVisitorUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *RegisteredVisitorUpdateOne) ClearAddress() *RegisteredVisitorUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetValidID sets the "valid_id" field.
func (_u *RegisteredVisitorUpdateOne) SetValidID(v string) *RegisteredVisitorUpdateOne {
	_u.mutation.SetValidID(v)
	return _u
}

// SetNillableValidID sets the "valid_id" field if the given value is not nil.
func (_u *RegisteredVisitorUpdateOne) SetNillableValidID(v *string) *RegisteredVisitorUpdateOne {
	if v != nil {
		_u.SetValidID(*v)
	}
	return _u
}

// ClearValidID clears the value of the "valid_id" field.
func (_u *RegisteredVisitorUpdateOne) ClearValidID() *RegisteredVisitorUpdateOne {
	_u.mutation.ClearValidID()
	return _u
}

// SetContactNumber sets the "contact_number" field.
func (_u *RegisteredVisitorUpdateOne) SetContactNumber(v string) *RegisteredVisitorUpdateOne {
	_u.mutation.SetContactNumber(v)
	return _u
}

// SetNillableContactNumber sets the "contact_number" field if the given value is not nil.
func (_u *RegisteredVisitorUpdateOne) SetNillableContactNumber(v *string) *RegisteredVisitorUpdateOne {
	if v != nil {
		_u.SetContactNumber(*v)
	}
	return _u
}

// ClearContactNumber clears the value of the "contact_number" field.
func (_u *RegisteredVisitorUpdateOne) ClearContactNumber() *RegisteredVisitorUpdateOne {
	_u.mutation.ClearContactNumber()
	return _u
}

// SetDateOfApplication sets the "date_of_application" field.
func (_u *RegisteredVisitorUpdateOne) SetDateOfApplication(v time.Time) *RegisteredVisitorUpdateOne {
	_u.mutation.SetDateOfApplication(v)
	return _u
}

// SetNillableDateOfApplication sets the "date_of_application" field if the given value is not nil.
func (_u *RegisteredVisitorUpdateOne) SetNillableDateOfApplication(v *time.Time) *RegisteredVisitorUpdateOne {
	if v != nil {
		_u.SetDateOfApplication(*v)
	}
	return _u
}

// ClearDateOfApplication clears the value of the "date_of_application" field.
func (_u *RegisteredVisitorUpdateOne) ClearDateOfApplication() *RegisteredVisitorUpdateOne {
	_u.mutation.ClearDateOfApplication()
	return _u
}

// SetConjugalVerified sets the "conjugal_verified" field.
func (_u *RegisteredVisitorUpdateOne) SetConjugalVerified(v bool) *RegisteredVisitorUpdateOne {
	_u.mutation.SetConjugalVerified(v)
	return _u
}

// SetNillableConjugalVerified sets the "conjugal_verified" field if the given value is not nil.
func (_u *RegisteredVisitorUpdateOne) SetNillableConjugalVerified(v *bool) *RegisteredVisitorUpdateOne {
	if v != nil {
		_u.SetConjugalVerified(*v)
	}
	return _u
}

// SetPdlID sets the "pdl" edge to the Pdl entity by ID.
func (_u *RegisteredVisitorUpdateOne) SetPdlID(id uuid.UUID) *RegisteredVisitorUpdateOne {
	_u.mutation.SetPdlID(id)
	return _u
}

// SetNillablePdlID sets the "pdl" edge to the Pdl entity by ID if the given value is not nil.
func (_u *RegisteredVisitorUpdateOne) SetNillablePdlID(id *uuid.UUID) *RegisteredVisitorUpdateOne {
	if id != nil {
		_u = _u.SetPdlID(*id)
	}
	return _u
}

// SetPdl sets the "pdl" edge to the Pdl entity.
func (_u *RegisteredVisitorUpdateOne) SetPdl(v *Pdl) *RegisteredVisitorUpdateOne {
	return _u.SetPdlID(v.ID)
}

// Mutation returns the RegisteredVisitorMutation object of the builder.
func (_u *RegisteredVisitorUpdateOne) Mutation() *RegisteredVisitorMutation {
	return _u.mutation
}

// ClearPdl clears the "pdl" edge to the Pdl entity.
func (_u *RegisteredVisitorUpdateOne) ClearPdl() *RegisteredVisitorUpdateOne {
	_u.mutation.ClearPdl()
	return _u
}

// Where appends a list predicates to the RegisteredVisitorUpdate builder.
func (_u *RegisteredVisitorUpdateOne) Where(ps ...predicate.RegisteredVisitor) *RegisteredVisitorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RegisteredVisitorUpdateOne) Select(field string, fields ...string) *RegisteredVisitorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RegisteredVisitor entity.
func (_u *RegisteredVisitorUpdateOne) Save(ctx context.Context) (*RegisteredVisitor, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RegisteredVisitorUpdateOne) SaveX(ctx context.Context) *RegisteredVisitor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RegisteredVisitorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RegisteredVisitorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RegisteredVisitorUpdateOne) check() error {
	if v, ok := _u.mutation.VisitorID(); ok {
		if err := registeredvisitor.VisitorIDValidator(v); err != nil {
			return &ValidationError{Name: "visitor_id", err: fmt.Errorf(`ent: validator failed for field "RegisteredVisitor.visitor_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FullName(); ok {
		if err := registeredvisitor.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "RegisteredVisitor.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Age(); ok {
		if err := registeredvisitor.AgeValidator(v); err != nil {
			return &ValidationError{Name: "age", err: fmt.Errorf(`ent: validator failed for field "RegisteredVisitor.age": %w`, err)}
		}
	}
	return nil
}

func (_u *RegisteredVisitorUpdateOne) sqlSave(ctx context.Context) (_node *RegisteredVisitor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(registeredvisitor.Table, registeredvisitor.Columns, sqlgraph.NewFieldSpec(registeredvisitor.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RegisteredVisitor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, registeredvisitor.FieldID)
		for _, f := range fields {
			if !registeredvisitor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != registeredvisitor.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VisitorID(); ok {
		_spec.SetField(registeredvisitor.FieldVisitorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(registeredvisitor.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Relationship(); ok {
		_spec.SetField(registeredvisitor.FieldRelationship, field.TypeString, value)
	}
	if _u.mutation.RelationshipCleared() {
		_spec.ClearField(registeredvisitor.FieldRelationship, field.TypeString)
	}
	if value, ok := _u.mutation.Age(); ok {
		_spec.SetField(registeredvisitor.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAge(); ok {
		_spec.AddField(registeredvisitor.FieldAge, field.TypeInt, value)
	}
	if _u.mutation.AgeCleared() {
		_spec.ClearField(registeredvisitor.FieldAge, field.TypeInt)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(registeredvisitor.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(registeredvisitor.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.ValidID(); ok {
		_spec.SetField(registeredvisitor.FieldValidID, field.TypeString, value)
	}
	if _u.mutation.ValidIDCleared() {
		_spec.ClearField(registeredvisitor.FieldValidID, field.TypeString)
	}
	if value, ok := _u.mutation.ContactNumber(); ok {
		_spec.SetField(registeredvisitor.FieldContactNumber, field.TypeString, value)
	}
	if _u.mutation.ContactNumberCleared() {
		_spec.ClearField(registeredvisitor.FieldContactNumber, field.TypeString)
	}
	if value, ok := _u.mutation.DateOfApplication(); ok {
		_spec.SetField(registeredvisitor.FieldDateOfApplication, field.TypeTime, value)
	}
	if _u.mutation.DateOfApplicationCleared() {
		_spec.ClearField(registeredvisitor.FieldDateOfApplication, field.TypeTime)
	}
	if value, ok := _u.mutation.ConjugalVerified(); ok {
		_spec.SetField(registeredvisitor.FieldConjugalVerified, field.TypeBool, value)
	}
	if _u.mutation.PdlCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   registeredvisitor.PdlTable,
			Columns: []string{registeredvisitor.PdlColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pdl.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PdlIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   registeredvisitor.PdlTable,
			Columns: []string{registeredvisitor.PdlColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pdl.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RegisteredVisitor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{registeredvisitor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
