// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"visitlog/ent/predicate"
	"visitlog/ent/registeredvisitor"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// RegisteredVisitorDelete is the builder for deleting a RegisteredVisitor entity.
type RegisteredVisitorDelete struct {
	config
	hooks    []Hook
	mutation *RegisteredVisitorMutation
}

// Where appends a list predicates to the RegisteredVisitorDelete builder.
func (_d *RegisteredVisitorDelete) Where(ps ...predicate.RegisteredVisitor) *RegisteredVisitorDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *RegisteredVisitorDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RegisteredVisitorDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *RegisteredVisitorDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(registeredvisitor.Table, sqlgraph.NewFieldSpec(registeredvisitor.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// RegisteredVisitorDeleteOne is the builder for deleting a single RegisteredVisitor entity.
type RegisteredVisitorDeleteOne struct {
	_d *RegisteredVisitorDelete
}

// Where appends a list predicates to the RegisteredVisitorDelete builder.
func (_d *RegisteredVisitorDeleteOne) Where(ps ...predicate.RegisteredVisitor) *RegisteredVisitorDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *RegisteredVisitorDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{registeredvisitor.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RegisteredVisitorDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
