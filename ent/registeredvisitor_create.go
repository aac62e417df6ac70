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

// RegisteredVisitorCreate is the builder for creating a RegisteredVisitor entity.
type RegisteredVisitorCreate struct {
	config
	mutation *RegisteredVisitorMutation
	hooks    []Hook
}

// SetVisitorID sets the "visitor_id" field.
func (_c *RegisteredVisitorCreate) SetVisitorID(v string) *RegisteredVisitorCreate {
	_c.mutation.SetVisitorID(v)
	return _c
}

// SetFullName sets the "full_name" field.
func (_c *RegisteredVisitorCreate) SetFullName(v string) *RegisteredVisitorCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetRelationship sets the "relationship" field.
func (_c *RegisteredVisitorCreate) SetRelationship(v string) *RegisteredVisitorCreate {
	_c.mutation.SetRelationship(v)
	return _c
}

// SetNillableRelationship sets the "relationship" field if the given value is not nil.
func (_c *RegisteredVisitorCreate) SetNillableRelationship(v *string) *RegisteredVisitorCreate {
	if v != nil {
		_c.SetRelationship(*v)
	}
	return _c
}

// SetAge sets the "age" field.
func (_c *RegisteredVisitorCreate) SetAge(v int) *RegisteredVisitorCreate {
	_c.mutation.SetAge(v)
	return _c
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_c *RegisteredVisitorCreate) SetNillableAge(v *int) *RegisteredVisitorCreate {
	if v != nil {
		_c.SetAge(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *RegisteredVisitorCreate) SetAddress(v string) *RegisteredVisitorCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *RegisteredVisitorCreate) SetNillableAddress(v *string) *RegisteredVisitorCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetValidID sets the "valid_id" field.
func (_c *RegisteredVisitorCreate) SetValidID(v string) *RegisteredVisitorCreate {
	_c.mutation.SetValidID(v)
	return _c
}

// SetNillableValidID sets the "valid_id" field if the given value is not nil.
func (_c *RegisteredVisitorCreate) SetNillableValidID(v *string) *RegisteredVisitorCreate {
	if v != nil {
		_c.SetValidID(*v)
	}
	return _c
}

// SetContactNumber sets the "contact_number" field.
func (_c *RegisteredVisitorCreate) SetContactNumber(v string) *RegisteredVisitorCreate {
	_c.mutation.SetContactNumber(v)
	return _c
}

// SetNillableContactNumber sets the "contact_number" field if the given value is not nil.
func (_c *RegisteredVisitorCreate) SetNillableContactNumber(v *string) *RegisteredVisitorCreate {
	if v != nil {
		_c.SetContactNumber(*v)
	}
	return _c
}

// SetDateOfApplication sets the "date_of_application" field.
func (_c *RegisteredVisitorCreate) SetDateOfApplication(v time.Time) *RegisteredVisitorCreate {
	_c.mutation.SetDateOfApplication(v)
	return _c
}

// SetNillableDateOfApplication sets the "date_of_application" field if the given value is not nil.
func (_c *RegisteredVisitorCreate) SetNillableDateOfApplication(v *time.Time) *RegisteredVisitorCreate {
	if v != nil {
		_c.SetDateOfApplication(*v)
	}
	return _c
}

// SetConjugalVerified sets the "conjugal_verified" field.
func (_c *RegisteredVisitorCreate) SetConjugalVerified(v bool) *RegisteredVisitorCreate {
	_c.mutation.SetConjugalVerified(v)
	return _c
}

// SetNillableConjugalVerified sets the "conjugal_verified" field if the given value is not nil.
func (_c *RegisteredVisitorCreate) SetNillableConjugalVerified(v *bool) *RegisteredVisitorCreate {
	if v != nil {
		_c.SetConjugalVerified(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RegisteredVisitorCreate) SetCreatedAt(v time.Time) *RegisteredVisitorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RegisteredVisitorCreate) SetNillableCreatedAt(v *time.Time) *RegisteredVisitorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RegisteredVisitorCreate) SetID(v uuid.UUID) *RegisteredVisitorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RegisteredVisitorCreate) SetNillableID(v *uuid.UUID) *RegisteredVisitorCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPdlID sets the "pdl" edge to the Pdl entity by ID.
func (_c *RegisteredVisitorCreate) SetPdlID(id uuid.UUID) *RegisteredVisitorCreate {
	_c.mutation.SetPdlID(id)
	return _c
}

// SetNillablePdlID sets the "pdl" edge to the Pdl entity by ID if the given value is not nil.
func (_c *RegisteredVisitorCreate) SetNillablePdlID(id *uuid.UUID) *RegisteredVisitorCreate {
	if id != nil {
		_c = _c.SetPdlID(*id)
	}
	return _c
}

// SetPdl sets the "pdl" edge to the Pdl entity.
func (_c *RegisteredVisitorCreate) SetPdl(v *Pdl) *RegisteredVisitorCreate {
	return _c.SetPdlID(v.ID)
}

// Mutation returns the RegisteredVisitorMutation object of the builder.
func (_c *RegisteredVisitorCreate) Mutation() *RegisteredVisitorMutation {
	return _c.mutation
}

// Save creates the RegisteredVisitor in the database.
func (_c *RegisteredVisitorCreate) Save(ctx context.Context) (*RegisteredVisitor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RegisteredVisitorCreate) SaveX(ctx context.Context) *RegisteredVisitor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RegisteredVisitorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RegisteredVisitorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RegisteredVisitorCreate) defaults() {
	if _, ok := _c.mutation.ConjugalVerified(); !ok {
		v := registeredvisitor.DefaultConjugalVerified
		_c.mutation.SetConjugalVerified(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := registeredvisitor.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := registeredvisitor.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RegisteredVisitorCreate) check() error {
	if _, ok := _c.mutation.VisitorID(); !ok {
		return &ValidationError{Name: "visitor_id", err: errors.New(`ent: missing required field "RegisteredVisitor.visitor_id"`)}
	}
	if v, ok := _c.mutation.VisitorID(); ok {
		if err := registeredvisitor.VisitorIDValidator(v); err != nil {
			return &ValidationError{Name: "visitor_id", err: fmt.Errorf(`ent: validator failed for field "RegisteredVisitor.visitor_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FullName(); !ok {
		return &ValidationError{Name: "full_name", err: errors.New(`ent: missing required field "RegisteredVisitor.full_name"`)}
	}
	if v, ok := _c.mutation.FullName(); ok {
		if err := registeredvisitor.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "RegisteredVisitor.full_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Age(); ok {
		if err := registeredvisitor.AgeValidator(v); err != nil {
			return &ValidationError{Name: "age", err: fmt.Errorf(`ent: validator failed for field "RegisteredVisitor.age": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConjugalVerified(); !ok {
		return &ValidationError{Name: "conjugal_verified", err: errors.New(`ent: missing required field "RegisteredVisitor.conjugal_verified"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RegisteredVisitor.created_at"`)}
	}
	return nil
}

func (_c *RegisteredVisitorCreate) sqlSave(ctx context.Context) (*RegisteredVisitor, error) {
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

func (_c *RegisteredVisitorCreate) createSpec() (*RegisteredVisitor, *sqlgraph.CreateSpec) {
	var (
		_node = &RegisteredVisitor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(registeredvisitor.Table, sqlgraph.NewFieldSpec(registeredvisitor.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.VisitorID(); ok {
		_spec.SetField(registeredvisitor.FieldVisitorID, field.TypeString, value)
		_node.VisitorID = value
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(registeredvisitor.FieldFullName, field.TypeString, value)
		_node.FullName = value
	}
	if value, ok := _c.mutation.Relationship(); ok {
		_spec.SetField(registeredvisitor.FieldRelationship, field.TypeString, value)
		_node.Relationship = value
	}
	if value, ok := _c.mutation.Age(); ok {
		_spec.SetField(registeredvisitor.FieldAge, field.TypeInt, value)
		_node.Age = value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(registeredvisitor.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := _c.mutation.ValidID(); ok {
		_spec.SetField(registeredvisitor.FieldValidID, field.TypeString, value)
		_node.ValidID = value
	}
	if value, ok := _c.mutation.ContactNumber(); ok {
		_spec.SetField(registeredvisitor.FieldContactNumber, field.TypeString, value)
		_node.ContactNumber = value
	}
	if value, ok := _c.mutation.DateOfApplication(); ok {
		_spec.SetField(registeredvisitor.FieldDateOfApplication, field.TypeTime, value)
		_node.DateOfApplication = value
	}
	if value, ok := _c.mutation.ConjugalVerified(); ok {
		_spec.SetField(registeredvisitor.FieldConjugalVerified, field.TypeBool, value)
		_node.ConjugalVerified = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(registeredvisitor.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.PdlIDs(); len(nodes) > 0 {
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
		_node.pdl_visitors = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RegisteredVisitorCreateBulk is the builder for creating many RegisteredVisitor entities in bulk.
type RegisteredVisitorCreateBulk struct {
	config
	err      error
	builders []*RegisteredVisitorCreate
}

// Save creates the RegisteredVisitor entities in the database.
func (_c *RegisteredVisitorCreateBulk) Save(ctx context.Context) ([]*RegisteredVisitor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RegisteredVisitor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RegisteredVisitorMutation)
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
func (_c *RegisteredVisitorCreateBulk) SaveX(ctx context.Context) []*RegisteredVisitor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RegisteredVisitorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RegisteredVisitorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
