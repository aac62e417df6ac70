// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"visitlog/ent/visitsession"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// VisitSessionCreate is the builder for creating a VisitSession entity.
type VisitSessionCreate struct {
	config
	mutation *VisitSessionMutation
	hooks    []Hook
}

// SetVisitorName sets the "visitor_name" field.
func (_c *VisitSessionCreate) SetVisitorName(v string) *VisitSessionCreate {
	_c.mutation.SetVisitorName(v)
	return _c
}

// SetVisitorKey sets the "visitor_key" field.
func (_c *VisitSessionCreate) SetVisitorKey(v string) *VisitSessionCreate {
	_c.mutation.SetVisitorKey(v)
	return _c
}

// SetPdlName sets the "pdl_name" field.
func (_c *VisitSessionCreate) SetPdlName(v string) *VisitSessionCreate {
	_c.mutation.SetPdlName(v)
	return _c
}

// SetCell sets the "cell" field.
func (_c *VisitSessionCreate) SetCell(v string) *VisitSessionCreate {
	_c.mutation.SetCell(v)
	return _c
}

// SetRelationship sets the "relationship" field.
func (_c *VisitSessionCreate) SetRelationship(v string) *VisitSessionCreate {
	_c.mutation.SetRelationship(v)
	return _c
}

// SetNillableRelationship sets the "relationship" field if the given value is not nil.
func (_c *VisitSessionCreate) SetNillableRelationship(v *string) *VisitSessionCreate {
	if v != nil {
		_c.SetRelationship(*v)
	}
	return _c
}

// SetContactNumber sets the "contact_number" field.
func (_c *VisitSessionCreate) SetContactNumber(v string) *VisitSessionCreate {
	_c.mutation.SetContactNumber(v)
	return _c
}

// SetNillableContactNumber sets the "contact_number" field if the given value is not nil.
func (_c *VisitSessionCreate) SetNillableContactNumber(v *string) *VisitSessionCreate {
	if v != nil {
		_c.SetContactNumber(*v)
	}
	return _c
}

// SetPurpose sets the "purpose" field.
func (_c *VisitSessionCreate) SetPurpose(v visitsession.Purpose) *VisitSessionCreate {
	_c.mutation.SetPurpose(v)
	return _c
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_c *VisitSessionCreate) SetNillablePurpose(v *visitsession.Purpose) *VisitSessionCreate {
	if v != nil {
		_c.SetPurpose(*v)
	}
	return _c
}

// SetTimeIn sets the "time_in" field.
func (_c *VisitSessionCreate) SetTimeIn(v time.Time) *VisitSessionCreate {
	_c.mutation.SetTimeIn(v)
	return _c
}

// SetTimeOut sets the "time_out" field.
func (_c *VisitSessionCreate) SetTimeOut(v time.Time) *VisitSessionCreate {
	_c.mutation.SetTimeOut(v)
	return _c
}

// SetNillableTimeOut sets the "time_out" field if the given value is not nil.
func (_c *VisitSessionCreate) SetNillableTimeOut(v *time.Time) *VisitSessionCreate {
	if v != nil {
		_c.SetTimeOut(*v)
	}
	return _c
}

// SetScanDate sets the "scan_date" field.
func (_c *VisitSessionCreate) SetScanDate(v time.Time) *VisitSessionCreate {
	_c.mutation.SetScanDate(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VisitSessionCreate) SetCreatedAt(v time.Time) *VisitSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VisitSessionCreate) SetNillableCreatedAt(v *time.Time) *VisitSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VisitSessionCreate) SetID(v uuid.UUID) *VisitSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VisitSessionCreate) SetNillableID(v *uuid.UUID) *VisitSessionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the VisitSessionMutation object of the builder.
func (_c *VisitSessionCreate) Mutation() *VisitSessionMutation {
	return _c.mutation
}

// Save creates the VisitSession in the database.
func (_c *VisitSessionCreate) Save(ctx context.Context) (*VisitSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VisitSessionCreate) SaveX(ctx context.Context) *VisitSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VisitSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VisitSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VisitSessionCreate) defaults() {
	if _, ok := _c.mutation.Purpose(); !ok {
		v := visitsession.DefaultPurpose
		_c.mutation.SetPurpose(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := visitsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := visitsession.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VisitSessionCreate) check() error {
	if _, ok := _c.mutation.VisitorName(); !ok {
		return &ValidationError{Name: "visitor_name", err: errors.New(`ent: missing required field "VisitSession.visitor_name"`)}
	}
	if v, ok := _c.mutation.VisitorName(); ok {
		if err := visitsession.VisitorNameValidator(v); err != nil {
			return &ValidationError{Name: "visitor_name", err: fmt.Errorf(`ent: validator failed for field "VisitSession.visitor_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VisitorKey(); !ok {
		return &ValidationError{Name: "visitor_key", err: errors.New(`ent: missing required field "VisitSession.visitor_key"`)}
	}
	if v, ok := _c.mutation.VisitorKey(); ok {
		if err := visitsession.VisitorKeyValidator(v); err != nil {
			return &ValidationError{Name: "visitor_key", err: fmt.Errorf(`ent: validator failed for field "VisitSession.visitor_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PdlName(); !ok {
		return &ValidationError{Name: "pdl_name", err: errors.New(`ent: missing required field "VisitSession.pdl_name"`)}
	}
	if v, ok := _c.mutation.PdlName(); ok {
		if err := visitsession.PdlNameValidator(v); err != nil {
			return &ValidationError{Name: "pdl_name", err: fmt.Errorf(`ent: validator failed for field "VisitSession.pdl_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Cell(); !ok {
		return &ValidationError{Name: "cell", err: errors.New(`ent: missing required field "VisitSession.cell"`)}
	}
	if v, ok := _c.mutation.Cell(); ok {
		if err := visitsession.CellValidator(v); err != nil {
			return &ValidationError{Name: "cell", err: fmt.Errorf(`ent: validator failed for field "VisitSession.cell": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Purpose(); !ok {
		return &ValidationError{Name: "purpose", err: errors.New(`ent: missing required field "VisitSession.purpose"`)}
	}
	if v, ok := _c.mutation.Purpose(); ok {
		if err := visitsession.PurposeValidator(v); err != nil {
			return &ValidationError{Name: "purpose", err: fmt.Errorf(`ent: validator failed for field "VisitSession.purpose": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimeIn(); !ok {
		return &ValidationError{Name: "time_in", err: errors.New(`ent: missing required field "VisitSession.time_in"`)}
	}
	if _, ok := _c.mutation.ScanDate(); !ok {
		return &ValidationError{Name: "scan_date", err: errors.New(`ent: missing required field "VisitSession.scan_date"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VisitSession.created_at"`)}
	}
	return nil
}

func (_c *VisitSessionCreate) sqlSave(ctx context.Context) (*VisitSession, error) {
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

func (_c *VisitSessionCreate) createSpec() (*VisitSession, *sqlgraph.CreateSpec) {
	var (
		_node = &VisitSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(visitsession.Table, sqlgraph.NewFieldSpec(visitsession.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.VisitorName(); ok {
		_spec.SetField(visitsession.FieldVisitorName, field.TypeString, value)
		_node.VisitorName = value
	}
	if value, ok := _c.mutation.VisitorKey(); ok {
		_spec.SetField(visitsession.FieldVisitorKey, field.TypeString, value)
		_node.VisitorKey = value
	}
	if value, ok := _c.mutation.PdlName(); ok {
		_spec.SetField(visitsession.FieldPdlName, field.TypeString, value)
		_node.PdlName = value
	}
	if value, ok := _c.mutation.Cell(); ok {
		_spec.SetField(visitsession.FieldCell, field.TypeString, value)
		_node.Cell = value
	}
	if value, ok := _c.mutation.Relationship(); ok {
		_spec.SetField(visitsession.FieldRelationship, field.TypeString, value)
		_node.Relationship = value
	}
	if value, ok := _c.mutation.ContactNumber(); ok {
		_spec.SetField(visitsession.FieldContactNumber, field.TypeString, value)
		_node.ContactNumber = value
	}
	if value, ok := _c.mutation.Purpose(); ok {
		_spec.SetField(visitsession.FieldPurpose, field.TypeEnum, value)
		_node.Purpose = value
	}
	if value, ok := _c.mutation.TimeIn(); ok {
		_spec.SetField(visitsession.FieldTimeIn, field.TypeTime, value)
		_node.TimeIn = value
	}
	if value, ok := _c.mutation.TimeOut(); ok {
		_spec.SetField(visitsession.FieldTimeOut, field.TypeTime, value)
		_node.TimeOut = &value
	}
	if value, ok := _c.mutation.ScanDate(); ok {
		_spec.SetField(visitsession.FieldScanDate, field.TypeTime, value)
		_node.ScanDate = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(visitsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// VisitSessionCreateBulk is the builder for creating many VisitSession entities in bulk.
type VisitSessionCreateBulk struct {
	config
	err      error
	builders []*VisitSessionCreate
}

// Save creates the VisitSession entities in the database.
func (_c *VisitSessionCreateBulk) Save(ctx context.Context) ([]*VisitSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VisitSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VisitSessionMutation)
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
func (_c *VisitSessionCreateBulk) SaveX(ctx context.Context) []*VisitSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VisitSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VisitSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
