// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"visitlog/ent/cell"
	"visitlog/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CellUpdate is the builder for updating Cell entities.
type CellUpdate struct {
	config
	hooks    []Hook
	mutation *CellMutation
}

// Where appends a list predicates to the CellUpdate builder.
func (_u *CellUpdate) Where(ps ...predicate.Cell) *CellUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCode sets the "code" field.
func (_u *CellUpdate) SetCode(v string) *CellUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *CellUpdate) SetNillableCode(v *string) *CellUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetCapacity sets the "capacity" field.
func (_u *CellUpdate) SetCapacity(v int) *CellUpdate {
	_u.mutation.ResetCapacity()
	_u.mutation.SetCapacity(v)
	return _u
}

// SetNillableCapacity sets the "capacity" field if the given value is not nil.
func (_u *CellUpdate) SetNillableCapacity(v *int) *CellUpdate {
	if v != nil {
		_u.SetCapacity(*v)
	}
	return _u
}

// AddCapacity adds value to the "capacity" field.
func (_u *CellUpdate) AddCapacity(v int) *CellUpdate {
	_u.mutation.AddCapacity(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *CellUpdate) SetActive(v bool) *CellUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *CellUpdate) SetNillableActive(v *bool) *CellUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the CellMutation object of the builder.
func (_u *CellUpdate) Mutation() *CellMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CellUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CellUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CellUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CellUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CellUpdate) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := cell.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Cell.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Capacity(); ok {
		if err := cell.CapacityValidator(v); err != nil {
			return &ValidationError{Name: "capacity", err: fmt.Errorf(`ent: validator failed for field "Cell.capacity": %w`, err)}
		}
	}
	return nil
}

func (_u *CellUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cell.Table, cell.Columns, sqlgraph.NewFieldSpec(cell.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(cell.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Capacity(); ok {
		_spec.SetField(cell.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCapacity(); ok {
		_spec.AddField(cell.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(cell.FieldActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cell.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CellUpdateOne is the builder for updating a single Cell entity.
type CellUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CellMutation
}

// SetCode sets the "code" field.
func (_u *CellUpdateOne) SetCode(v string) *CellUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *CellUpdateOne) SetNillableCode(v *string) *CellUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetCapacity sets the "capacity" field.
func (_u *CellUpdateOne) SetCapacity(v int) *CellUpdateOne {
	_u.mutation.ResetCapacity()
	_u.mutation.SetCapacity(v)
	return _u
}

// SetNillableCapacity sets the "capacity" field if the given value is not nil.
func (_u *CellUpdateOne) SetNillableCapacity(v *int) *CellUpdateOne {
	if v != nil {
		_u.SetCapacity(*v)
	}
	return _u
}

// AddCapacity adds value to the "capacity" field.
func (_u *CellUpdateOne) AddCapacity(v int) *CellUpdateOne {
	_u.mutation.AddCapacity(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *CellUpdateOne) SetActive(v bool) *CellUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *CellUpdateOne) SetNillableActive(v *bool) *CellUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the CellMutation object of the builder.
func (_u *CellUpdateOne) Mutation() *CellMutation {
	return _u.mutation
}

// Where appends a list predicates to the CellUpdate builder.
func (_u *CellUpdateOne) Where(ps ...predicate.Cell) *CellUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CellUpdateOne) Select(field string, fields ...string) *CellUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Cell entity.
func (_u *CellUpdateOne) Save(ctx context.Context) (*Cell, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CellUpdateOne) SaveX(ctx context.Context) *Cell {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CellUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CellUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CellUpdateOne) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := cell.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Cell.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Capacity(); ok {
		if err := cell.CapacityValidator(v); err != nil {
			return &ValidationError{Name: "capacity", err: fmt.Errorf(`ent: validator failed for field "Cell.capacity": %w`, err)}
		}
	}
	return nil
}

func (_u *CellUpdateOne) sqlSave(ctx context.Context) (_node *Cell, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cell.Table, cell.Columns, sqlgraph.NewFieldSpec(cell.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Cell.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cell.FieldID)
		for _, f := range fields {
			if !cell.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cell.FieldID {
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
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(cell.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Capacity(); ok {
		_spec.SetField(cell.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCapacity(); ok {
		_spec.AddField(cell.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(cell.FieldActive, field.TypeBool, value)
	}
	_node = &Cell{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cell.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
