// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"visitlog/ent/predicate"
	"visitlog/ent/visitsession"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// VisitSessionUpdate is the builder for updating VisitSession entities.
type VisitSessionUpdate struct {
	config
	hooks    []Hook
	mutation *VisitSessionMutation
}

// Where appends a list predicates to the VisitSessionUpdate builder.
func (_u *VisitSessionUpdate) Where(ps ...predicate.VisitSession) *VisitSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVisitorName sets the "visitor_name" field.
func (_u *VisitSessionUpdate) SetVisitorName(v string) *VisitSessionUpdate {
	_u.mutation.SetVisitorName(v)
	return _u
}

// SetNillableVisitorName sets the "visitor_name" field if the given value is not nil.
func (_u *VisitSessionUpdate) SetNillableVisitorName(v *string) *VisitSessionUpdate {
	if v != nil {
		_u.SetVisitorName(*v)
	}
	return _u
}

// SetVisitorKey sets the "visitor_key" field.
func (_u *VisitSessionUpdate) SetVisitorKey(v string) *VisitSessionUpdate {
	_u.mutation.SetVisitorKey(v)
	return _u
}

// SetNillableVisitorKey sets the "visitor_key" field if the given value is not nil.
func (_u *VisitSessionUpdate) SetNillableVisitorKey(v *string) *VisitSessionUpdate {
	if v != nil {
		_u.SetVisitorKey(*v)
	}
	return _u
}

// SetPdlName sets the "pdl_name" field.
func (_u *VisitSessionUpdate) SetPdlName(v string) *VisitSessionUpdate {
	_u.mutation.SetPdlName(v)
	return _u
}

// SetNillablePdlName sets the "pdl_name" field if the given value is not nil.
func (_u *VisitSessionUpdate) SetNillablePdlName(v *string) *VisitSessionUpdate {
	if v != nil {
		_u.SetPdlName(*v)
	}
	return _u
}

// SetCell sets the "cell" field.
func (_u *VisitSessionUpdate) SetCell(v string) *VisitSessionUpdate {
	_u.mutation.SetCell(v)
	return _u
}

// SetNillableCell sets the "cell" field if the given value is not nil.
func (_u *VisitSessionUpdate) SetNillableCell(v *string) *VisitSessionUpdate {
	if v != nil {
		_u.SetCell(*v)
	}
	return _u
}

// SetRelationship sets the "relationship" field.
func (_u *VisitSessionUpdate) SetRelationship(v string) *VisitSessionUpdate {
	_u.mutation.SetRelationship(v)
	return _u
}

// SetNillableRelationship sets the "relationship" field if the given value is not nil.
func (_u *VisitSessionUpdate) SetNillableRelationship(v *string) *VisitSessionUpdate {
	if v != nil {
		_u.SetRelationship(*v)
	}
	return _u
}

// ClearRelationship clears the value of the "relationship" field.
func (_u *VisitSessionUpdate) ClearRelationship() *VisitSessionUpdate {
	_u.mutation.ClearRelationship()
	return _u
}

// SetContactNumber sets the "contact_number" field.
func (_u *VisitSessionUpdate) SetContactNumber(v string) *VisitSessionUpdate {
	_u.mutation.SetContactNumber(v)
	return _u
}

// SetNillableContactNumber sets the "contact_number" field if the given value is not nil.
func (_u *VisitSessionUpdate) SetNillableContactNumber(v *string) *VisitSessionUpdate {
	if v != nil {
		_u.SetContactNumber(*v)
	}
	return _u
}

// ClearContactNumber clears the value of the "contact_number" field.
func (_u *VisitSessionUpdate) ClearContactNumber() *VisitSessionUpdate {
	_u.mutation.ClearContactNumber()
	return _u
}

// SetPurpose sets the "purpose" field.
func (_u *VisitSessionUpdate) SetPurpose(v visitsession.Purpose) *VisitSessionUpdate {
	_u.mutation.SetPurpose(v)
	return _u
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_u *VisitSessionUpdate) SetNillablePurpose(v *visitsession.Purpose) *VisitSessionUpdate {
	if v != nil {
		_u.SetPurpose(*v)
	}
	return _u
}

// SetTimeIn sets the "time_in" field.
func (_u *VisitSessionUpdate) SetTimeIn(v time.Time) *VisitSessionUpdate {
	_u.mutation.SetTimeIn(v)
	return _u
}

// SetNillableTimeIn sets the "time_in" field if the given value is not nil.
func (_u *VisitSessionUpdate) SetNillableTimeIn(v *time.Time) *VisitSessionUpdate {
	if v != nil {
		_u.SetTimeIn(*v)
	}
	return _u
}

// SetTimeOut sets the "time_out" field.
func (_u *VisitSessionUpdate) SetTimeOut(v time.Time) *VisitSessionUpdate {
	_u.mutation.SetTimeOut(v)
	return _u
}

// SetNillableTimeOut sets the "time_out" field if the given value is not nil.
func (_u *VisitSessionUpdate) SetNillableTimeOut(v *time.Time) *VisitSessionUpdate {
	if v != nil {
		_u.SetTimeOut(*v)
	}
	return _u
}

// ClearTimeOut clears the value of the "time_out" field.
func (_u *VisitSessionUpdate) ClearTimeOut() *VisitSessionUpdate {
	_u.mutation.ClearTimeOut()
	return _u
}

// SetScanDate sets the "scan_date" field.
func (_u *VisitSessionUpdate) SetScanDate(v time.Time) *VisitSessionUpdate {
	_u.mutation.SetScanDate(v)
	return _u
}

// SetNillableScanDate sets the "scan_date" field if the given value is not nil.
func (_u *VisitSessionUpdate) SetNillableScanDate(v *time.Time) *VisitSessionUpdate {
	if v != nil {
		_u.SetScanDate(*v)
	}
	return _u
}

// Mutation returns the VisitSessionMutation object of the builder.
func (_u *VisitSessionUpdate) Mutation() *VisitSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VisitSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VisitSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VisitSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VisitSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VisitSessionUpdate) check() error {
	if v, ok := _u.mutation.VisitorName(); ok {
		if err := visitsession.VisitorNameValidator(v); err != nil {
			return &ValidationError{Name: "visitor_name", err: fmt.Errorf(`ent: validator failed for field "VisitSession.visitor_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VisitorKey(); ok {
		if err := visitsession.VisitorKeyValidator(v); err != nil {
			return &ValidationError{Name: "visitor_key", err: fmt.Errorf(`ent: validator failed for field "VisitSession.visitor_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PdlName(); ok {
		if err := visitsession.PdlNameValidator(v); err != nil {
			return &ValidationError{Name: "pdl_name", err: fmt.Errorf(`ent: validator failed for field "VisitSession.pdl_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Cell(); ok {
		if err := visitsession.CellValidator(v); err != nil {
			return &ValidationError{Name: "cell", err: fmt.Errorf(`ent: validator failed for field "VisitSession.cell": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Purpose(); ok {
		if err := visitsession.PurposeValidator(v); err != nil {
			return &ValidationError{Name: "purpose", err: fmt.Errorf(`ent: validator failed for field "VisitSession.purpose": %w`, err)}
		}
	}
	return nil
}

func (_u *VisitSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(visitsession.Table, visitsession.Columns, sqlgraph.NewFieldSpec(visitsession.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VisitorName(); ok {
		_spec.SetField(visitsession.FieldVisitorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.VisitorKey(); ok {
		_spec.SetField(visitsession.FieldVisitorKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.PdlName(); ok {
		_spec.SetField(visitsession.FieldPdlName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cell(); ok {
		_spec.SetField(visitsession.FieldCell, field.TypeString, value)
	}
	if value, ok := _u.mutation.Relationship(); ok {
		_spec.SetField(visitsession.FieldRelationship, field.TypeString, value)
	}
	if _u.mutation.RelationshipCleared() {
		_spec.ClearField(visitsession.FieldRelationship, field.TypeString)
	}
	if value, ok := _u.mutation.ContactNumber(); ok {
		_spec.SetField(visitsession.FieldContactNumber, field.TypeString, value)
	}
	if _u.mutation.ContactNumberCleared() {
		_spec.ClearField(visitsession.FieldContactNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Purpose(); ok {
		_spec.SetField(visitsession.FieldPurpose, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TimeIn(); ok {
		_spec.SetField(visitsession.FieldTimeIn, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TimeOut(); ok {
		_spec.SetField(visitsession.FieldTimeOut, field.TypeTime, value)
	}
	if _u.mutation.TimeOutCleared() {
		_spec.ClearField(visitsession.FieldTimeOut, field.TypeTime)
	}
	if value, ok := _u.mutation.ScanDate(); ok {
		_spec.SetField(visitsession.FieldScanDate, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{visitsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VisitSessionUpdateOne is the builder for updating a single VisitSession entity.
type VisitSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VisitSessionMutation
}

// SetVisitorName sets the "visitor_name" field.
func (_u *VisitSessionUpdateOne) SetVisitorName(v string) *VisitSessionUpdateOne {
	_u.mutation.SetVisitorName(v)
	return _u
}

// SetNillableVisitorName sets the "visitor_name" field if the given value is not nil.
func (_u *VisitSessionUpdateOne) SetNillableVisitorName(v *string) *VisitSessionUpdateOne {
	if v != nil {
		_u.SetVisitorName(*v)
	}
	return _u
}

// SetVisitorKey sets the "visitor_key" field.
func (_u *VisitSessionUpdateOne) SetVisitorKey(v string) *VisitSessionUpdateOne {
	_u.mutation.SetVisitorKey(v)
	return _u
}

// SetNillableVisitorKey sets the "visitor_key" field if the given value is not nil.
func (_u *VisitSessionUpdateOne) SetNillableVisitorKey(v *string) *VisitSessionUpdateOne {
	if v != nil {
		_u.SetVisitorKey(*v)
	}
	return _u
}

// SetPdlName sets the "pdl_name" field.
func (_u *VisitSessionUpdateOne) SetPdlName(v string) *VisitSessionUpdateOne {
	_u.mutation.SetPdlName(v)
	return _u
}

// SetNillablePdlName sets the "pdl_name" field if the given value is not nil.
func (_u *VisitSessionUpdateOne) SetNillablePdlName(v *string) *VisitSessionUpdateOne {
	if v != nil {
		_u.SetPdlName(*v)
	}
	return _u
}

// SetCell sets the "cell" field.
func (_u *VisitSessionUpdateOne) SetCell(v string) *VisitSessionUpdateOne {
	_u.mutation.SetCell(v)
	return _u
}

// SetNillableCell sets the "cell" field if the given value is not nil.
func (_u *VisitSessionUpdateOne) SetNillableCell(v *string) *VisitSessionUpdateOne {
	if v != nil {
		_u.SetCell(*v)
	}
	return _u
}

// SetRelationship sets the "relationship" field.
func (_u *VisitSessionUpdateOne) SetRelationship(v string) *VisitSessionUpdateOne {
	_u.mutation.SetRelationship(v)
	return _u
}

// SetNillableRelationship sets the "relationship" field if the given value is not nil.
func (_u *VisitSessionUpdateOne) SetNillableRelationship(v *string) *VisitSessionUpdateOne {
	if v != nil {
		_u.SetRelationship(*v)
	}
	return _u
}

// ClearRelationship clears the value of the "relationship" field.
func (_u *VisitSessionUpdateOne) ClearRelationship() *VisitSessionUpdateOne {
	_u.mutation.ClearRelationship()
	return _u
}

// SetContactNumber sets the "contact_number" field.
func (_u *VisitSessionUpdateOne) SetContactNumber(v string) *VisitSessionUpdateOne {
	_u.mutation.SetContactNumber(v)
	return _u
}

// SetNillableContactNumber sets the "contact_number" field if the given value is not nil.
func (_u *VisitSessionUpdateOne) SetNillableContactNumber(v *string) *VisitSessionUpdateOne {
	if v != nil {
		_u.SetContactNumber(*v)
	}
	return _u
}

// ClearContactNumber clears the value of the "contact_number" field.
func (_u *VisitSessionUpdateOne) ClearContactNumber() *VisitSessionUpdateOne {
	_u.mutation.ClearContactNumber()
	return _u
}

// SetPurpose sets the "purpose" field.
func (_u *VisitSessionUpdateOne) SetPurpose(v visitsession.Purpose) *VisitSessionUpdateOne {
	_u.mutation.SetPurpose(v)
	return _u
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_u *VisitSessionUpdateOne) SetNillablePurpose(v *visitsession.Purpose) *VisitSessionUpdateOne {
	if v != nil {
		_u.SetPurpose(*v)
	}
	return _u
}

// SetTimeIn sets the "time_in" field.
func (_u *VisitSessionUpdateOne) SetTimeIn(v time.Time) *VisitSessionUpdateOne {
	_u.mutation.SetTimeIn(v)
	return _u
}

// SetNillableTimeIn sets the "time_in" field if the given value is not nil.
func (_u *VisitSessionUpdateOne) SetNillableTimeIn(v *time.Time) *VisitSessionUpdateOne {
	if v != nil {
		_u.SetTimeIn(*v)
	}
	return _u
}

// SetTimeOut sets the "time_out" field.
func (_u *VisitSessionUpdateOne) SetTimeOut(v time.Time) *VisitSessionUpdateOne {
	_u.mutation.SetTimeOut(v)
	return _u
}

// SetNillableTimeOut sets the "time_out" field if the given value is not nil.
func (_u *VisitSessionUpdateOne) SetNillableTimeOut(v *time.Time) *VisitSessionUpdateOne {
	if v != nil {
		_u.SetTimeOut(*v)
	}
	return _u
}

// ClearTimeOut clears the value of the "time_out" field.
func (_u *VisitSessionUpdateOne) ClearTimeOut() *VisitSessionUpdateOne {
	_u.mutation.ClearTimeOut()
	return _u
}

// SetScanDate sets the "scan_date" field.
func (_u *VisitSessionUpdateOne) SetScanDate(v time.Time) *VisitSessionUpdateOne {
	_u.mutation.SetScanDate(v)
	return _u
}

// SetNillableScanDate sets the "scan_date" field if the given value is not nil.
func (_u *VisitSessionUpdateOne) SetNillableScanDate(v *time.Time) *VisitSessionUpdateOne {
	if v != nil {
		_u.SetScanDate(*v)
	}
	return _u
}

// Mutation returns the VisitSessionMutation object of the builder.
func (_u *VisitSessionUpdateOne) Mutation() *VisitSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the VisitSessionUpdate builder.
func (_u *VisitSessionUpdateOne) Where(ps ...predicate.VisitSession) *VisitSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VisitSessionUpdateOne) Select(field string, fields ...string) *VisitSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VisitSession entity.
func (_u *VisitSessionUpdateOne) Save(ctx context.Context) (*VisitSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VisitSessionUpdateOne) SaveX(ctx context.Context) *VisitSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VisitSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VisitSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VisitSessionUpdateOne) check() error {
	if v, ok := _u.mutation.VisitorName(); ok {
		if err := visitsession.VisitorNameValidator(v); err != nil {
			return &ValidationError{Name: "visitor_name", err: fmt.Errorf(`ent: validator failed for field "VisitSession.visitor_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VisitorKey(); ok {
		if err := visitsession.VisitorKeyValidator(v); err != nil {
			return &ValidationError{Name: "visitor_key", err: fmt.Errorf(`ent: validator failed for field "VisitSession.visitor_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PdlName(); ok {
		if err := visitsession.PdlNameValidator(v); err != nil {
			return &ValidationError{Name: "pdl_name", err: fmt.Errorf(`ent: validator failed for field "VisitSession.pdl_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Cell(); ok {
		if err := visitsession.CellValidator(v); err != nil {
			return &ValidationError{Name: "cell", err: fmt.Errorf(`ent: validator failed for field "VisitSession.cell": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Purpose(); ok {
		if err := visitsession.PurposeValidator(v); err != nil {
			return &ValidationError{Name: "purpose", err: fmt.Errorf(`ent: validator failed for field "VisitSession.purpose": %w`, err)}
		}
	}
	return nil
}

func (_u *VisitSessionUpdateOne) sqlSave(ctx context.Context) (_node *VisitSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(visitsession.Table, visitsession.Columns, sqlgraph.NewFieldSpec(visitsession.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VisitSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, visitsession.FieldID)
		for _, f := range fields {
			if !visitsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != visitsession.FieldID {
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
	if value, ok := _u.mutation.VisitorName(); ok {
		_spec.SetField(visitsession.FieldVisitorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.VisitorKey(); ok {
		_spec.SetField(visitsession.FieldVisitorKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.PdlName(); ok {
		_spec.SetField(visitsession.FieldPdlName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cell(); ok {
		_spec.SetField(visitsession.FieldCell, field.TypeString, value)
	}
	if value, ok := _u.mutation.Relationship(); ok {
		_spec.SetField(visitsession.FieldRelationship, field.TypeString, value)
	}
	if _u.mutation.RelationshipCleared() {
		_spec.ClearField(visitsession.FieldRelationship, field.TypeString)
	}
	if value, ok := _u.mutation.ContactNumber(); ok {
		_spec.SetField(visitsession.FieldContactNumber, field.TypeString, value)
	}
	if _u.mutation.ContactNumberCleared() {
		_spec.ClearField(visitsession.FieldContactNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Purpose(); ok {
		_spec.SetField(visitsession.FieldPurpose, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TimeIn(); ok {
		_spec.SetField(visitsession.FieldTimeIn, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TimeOut(); ok {
		_spec.SetField(visitsession.FieldTimeOut, field.TypeTime, value)
	}
	if _u.mutation.TimeOutCleared() {
		_spec.ClearField(visitsession.FieldTimeOut, field.TypeTime)
	}
	if value, ok := _u.mutation.ScanDate(); ok {
		_spec.SetField(visitsession.FieldScanDate, field.TypeTime, value)
	}
	_node = &VisitSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{visitsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
