// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"visitlog/ent/pdl"
	"visitlog/ent/registeredvisitor"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// PdlCreate is the builder for creating a Pdl entity.
type PdlCreate struct {
	config
	mutation *PdlMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *PdlCreate) SetName(v string) *PdlCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCell sets the "cell" field.
func (_c *PdlCreate) SetCell(v string) *PdlCreate {
	_c.mutation.SetCell(v)
	return _c
}

// SetCrime sets the "crime" field.
func (_c *PdlCreate) SetCrime(v string) *PdlCreate {
	_c.mutation.SetCrime(v)
	return _c
}

// SetNillableCrime sets the "crime" field if the given value is not nil.
func (_c *PdlCreate) SetNillableCrime(v *string) *PdlCreate {
	if v != nil {
		_c.SetCrime(*v)
	}
	return _c
}

// SetDateCommitted sets the "date_committed" field.
func (_c *PdlCreate) SetDateCommitted(v time.Time) *PdlCreate {
	_c.mutation.SetDateCommitted(v)
	return _c
}

// SetNillableDateCommitted sets the "date_committed" field if the given value is not nil.
func (_c *PdlCreate) SetNillableDateCommitted(v *time.Time) *PdlCreate {
	if v != nil {
		_c.SetDateCommitted(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PdlCreate) SetCreatedAt(v time.Time) *PdlCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PdlCreate) SetNillableCreatedAt(v *time.Time) *PdlCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PdlCreate) SetID(v uuid.UUID) *PdlCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PdlCreate) SetNillableID(v *uuid.UUID) *PdlCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddVisitorIDs adds the "visitors" edge to the RegisteredVisitor entity by IDs.
func (_c *PdlCreate) AddVisitorIDs(ids ...uuid.UUID) *PdlCreate {
	_c.mutation.AddVisitorIDs(ids...)
	return _c
}

// AddVisitors adds the "visitors" edges to the RegisteredVisitor entity.
func (_c *PdlCreate) AddVisitors(v ...*RegisteredVisitor) *PdlCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVisitorIDs(ids...)
}

// Mutation returns the PdlMutation object of the builder.
func (_c *PdlCreate) Mutation() *PdlMutation {
	return _c.mutation
}

// Save creates the Pdl in the database.
func (_c *PdlCreate) Save(ctx context.Context) (*Pdl, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PdlCreate) SaveX(ctx context.Context) *Pdl {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PdlCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PdlCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PdlCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pdl.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := pdl.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PdlCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Pdl.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := pdl.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Pdl.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Cell(); !ok {
		return &ValidationError{Name: "cell", err: errors.New(`ent: missing required field "Pdl.cell"`)}
	}
	if v, ok := _c.mutation.Cell(); ok {
		if err := pdl.CellValidator(v); err != nil {
			return &ValidationError{Name: "cell", err: fmt.Errorf(`ent: validator failed for field "Pdl.cell": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Pdl.created_at"`)}
	}
	return nil
}

func (_c *PdlCreate) sqlSave(ctx context.Context) (*Pdl, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PdlCreate) createSpec() (*Pdl, *sqlgraph.CreateSpec) {
	var (
		_node = &Pdl{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pdl.Table, sqlgraph.NewFieldSpec(pdl.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(pdl.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Cell(); ok {
		_spec.SetField(pdl.FieldCell, field.TypeString, value)
		_node.Cell = value
	}
	if value, ok := _c.mutation.Crime(); ok {
		_spec.SetField(pdl.FieldCrime, field.TypeString, value)
		_node.Crime = value
	}
	if value, ok := _c.mutation.DateCommitted(); ok {
		_spec.SetField(pdl.FieldDateCommitted, field.TypeTime, value)
		_node.DateCommitted = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pdl.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.VisitorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pdl.VisitorsTable,
			Columns: []string{pdl.VisitorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(registeredvisitor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PdlCreateBulk is the builder for creating many Pdl entities in bulk.
type PdlCreateBulk struct {
	config
	err      error
	builders []*PdlCreate
}

// Save creates the Pdl entities in the database.
func (_c *PdlCreateBulk) Save(ctx context.Context) ([]*Pdl, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Pdl, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PdlMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PdlCreateBulk) SaveX(ctx context.Context) []*Pdl {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PdlCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PdlCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
