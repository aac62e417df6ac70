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

// PdlUpdate is the builder for updating Pdl entities.
type PdlUpdate struct {
	config
	hooks    []Hook
	mutation *PdlMutation
}

// Where appends a list predicates to the PdlUpdate builder.
func (_u *PdlUpdate) Where(ps ...predicate.Pdl) *PdlUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *PdlUpdate) SetName(v string) *PdlUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PdlUpdate) SetNillableName(v *string) *PdlUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCell sets the "cell" field.
func (_u *PdlUpdate) SetCell(v string) *PdlUpdate {
	_u.mutation.SetCell(v)
	return _u
}

// SetNillableCell sets the "cell" field if the given value is not nil.
func (_u *PdlUpdate) SetNillableCell(v *string) *PdlUpdate {
	if v != nil {
		_u.SetCell(*v)
	}
	return _u
}

// SetCrime sets the "crime" field.
func (_u *PdlUpdate) SetCrime(v string) *PdlUpdate {
	_u.mutation.SetCrime(v)
	return _u
}

// SetNillableCrime sets the "crime" field if the given value is not nil.
func (_u *PdlUpdate) SetNillableCrime(v *string) *PdlUpdate {
	if v != nil {
		_u.SetCrime(*v)
	}
	return _u
}

// ClearCrime clears the value of the "crime" field.
func (_u *PdlUpdate) ClearCrime() *PdlUpdate {
	_u.mutation.ClearCrime()
	return _u
}

// SetDateCommitted sets the "date_committed" field.
func (_u *PdlUpdate) SetDateCommitted(v time.Time) *PdlUpdate {
	_u.mutation.SetDateCommitted(v)
	return _u
}

// SetNillableDateCommitted sets the "date_committed" field if the given value is not nil.
func (_u *PdlUpdate) SetNillableDateCommitted(v *time.Time) *PdlUpdate {
	if v != nil {
		_u.SetDateCommitted(*v)
	}
	return _u
}

// ClearDateCommitted clears the value of the "date_committed" field.
func (_u *PdlUpdate) ClearDateCommitted() *PdlUpdate {
	_u.mutation.ClearDateCommitted()
	return _u
}

// AddVisitorIDs adds the "visitors" edge to the RegisteredVisitor entity by IDs.
func (_u *PdlUpdate) AddVisitorIDs(ids ...uuid.UUID) *PdlUpdate {
	_u.mutation.AddVisitorIDs(ids...)
	return _u
}

// AddVisitors adds the "visitors" edges to the RegisteredVisitor entity.
func (_u *PdlUpdate) AddVisitors(v ...*RegisteredVisitor) *PdlUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVisitorIDs(ids...)
}

// Mutation returns the PdlMutation object of the builder.
func (_u *PdlUpdate) Mutation() *PdlMutation {
	return _u.mutation
}

// ClearVisitors clears all "visitors" edges to the RegisteredVisitor entity.
func (_u *PdlUpdate) ClearVisitors() *PdlUpdate {
	_u.mutation.ClearVisitors()
	return _u
}

// RemoveVisitorIDs removes the "visitors" edge to RegisteredVisitor entities by IDs.
func (_u *PdlUpdate) RemoveVisitorIDs(ids ...uuid.UUID) *PdlUpdate {
	_u.mutation.RemoveVisitorIDs(ids...)
	return _u
}

// RemoveVisitors removes "visitors" edges to RegisteredVisitor entities.
func (_u *PdlUpdate) RemoveVisitors(v ...*RegisteredVisitor) *PdlUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVisitorIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PdlUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PdlUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PdlUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PdlUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PdlUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := pdl.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Pdl.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Cell(); ok {
		if err := pdl.CellValidator(v); err != nil {
			return &ValidationError{Name: "cell", err: fmt.Errorf(`ent: validator failed for field "Pdl.cell": %w`, err)}
		}
	}
	return nil
}

func (_u *PdlUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pdl.Table, pdl.Columns, sqlgraph.NewFieldSpec(pdl.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(pdl.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cell(); ok {
		_spec.SetField(pdl.FieldCell, field.TypeString, value)
	}
	if value, ok := _u.mutation.Crime(); ok {
		_spec.SetField(pdl.FieldCrime, field.TypeString, value)
	}
	if _u.mutation.CrimeCleared() {
		_spec.ClearField(pdl.FieldCrime, field.TypeString)
	}
	if value, ok := _u.mutation.DateCommitted(); ok {
		_spec.SetField(pdl.FieldDateCommitted, field.TypeTime, value)
	}
	if _u.mutation.DateCommittedCleared() {
		_spec.ClearField(pdl.FieldDateCommitted, field.TypeTime)
	}
	if _u.mutation.VisitorsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVisitorsIDs(); len(nodes) > 0 && !_u.mutation.VisitorsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VisitorsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pdl.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PdlUpdateOne is the builder for updating a single Pdl entity.
type PdlUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PdlMutation
}

// SetName sets the "name" field.
func (_u *PdlUpdateOne) SetName(v string) *PdlUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PdlUpdateOne) SetNillableName(v *string) *PdlUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCell sets the "cell" field.
func (_u *PdlUpdateOne) SetCell(v string) *PdlUpdateOne {
	_u.mutation.SetCell(v)
	return _u
}

// SetNillableCell sets the "cell" field if the given value is not nil.
func (_u *PdlUpdateOne) SetNillableCell(v *string) *PdlUpdateOne {
	if v != nil {
		_u.SetCell(*v)
	}
	return _u
}

// SetCrime sets the "crime" field.
func (_u *PdlUpdateOne) SetCrime(v string) *PdlUpdateOne {
	_u.mutation.SetCrime(v)
	return _u
}

// SetNillableCrime sets the "crime" field if the given value is not nil.
func (_u *PdlUpdateOne) SetNillableCrime(v *string) *PdlUpdateOne {
	if v != nil {
		_u.SetCrime(*v)
	}
	return _u
}

// ClearCrime clears the value of the "crime" field.
func (_u *PdlUpdateOne) ClearCrime() *PdlUpdateOne {
	_u.mutation.ClearCrime()
	return _u
}

// SetDateCommitted sets the "date_committed" field.
func (_u *PdlUpdateOne) SetDateCommitted(v time.Time) *PdlUpdateOne {
	_u.mutation.SetDateCommitted(v)
	return _u
}

// SetNillableDateCommitted sets the "date_committed" field if the given value is not nil.
func (_u *PdlUpdateOne) SetNillableDateCommitted(v *time.Time) *PdlUpdateOne {
	if v != nil {
		_u.SetDateCommitted(*v)
	}
	return _u
}

// ClearDateCommitted clears the value of the "date_committed" field.
func (_u *PdlUpdateOne) ClearDateCommitted() *PdlUpdateOne {
	_u.mutation.ClearDateCommitted()
	return _u
}

// AddVisitorIDs adds the "visitors" edge to the RegisteredVisitor entity by IDs.
func (_u *PdlUpdateOne) AddVisitorIDs(ids ...uuid.UUID) *PdlUpdateOne {
	_u.mutation.AddVisitorIDs(ids...)
	return _u
}

// AddVisitors adds the "visitors" edges to the RegisteredVisitor entity.
func (_u *PdlUpdateOne) AddVisitors(v ...*RegisteredVisitor) *PdlUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVisitorIDs(ids...)
}

// Mutation returns the PdlMutation object of the builder.
func (_u *PdlUpdateOne) Mutation() *PdlMutation {
	return _u.mutation
}

// ClearVisitors clears all "visitors" edges to the RegisteredVisitor entity.
func (_u *PdlUpdateOne) ClearVisitors() *PdlUpdateOne {
	_u.mutation.ClearVisitors()
	return _u
}

// RemoveVisitorIDs removes the "visitors" edge to RegisteredVisitor entities by IDs.
func (_u *PdlUpdateOne) RemoveVisitorIDs(ids ...uuid.UUID) *PdlUpdateOne {
	_u.mutation.RemoveVisitorIDs(ids...)
	return _u
}

// RemoveVisitors removes "visitors" edges to RegisteredVisitor entities.
func (_u *PdlUpdateOne) RemoveVisitors(v ...*RegisteredVisitor) *PdlUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVisitorIDs(ids...)
}

// Where appends a list predicates to the PdlUpdate builder.
func (_u *PdlUpdateOne) Where(ps ...predicate.Pdl) *PdlUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PdlUpdateOne) Select(field string, fields ...string) *PdlUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Pdl entity.
func (_u *PdlUpdateOne) Save(ctx context.Context) (*Pdl, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PdlUpdateOne) SaveX(ctx context.Context) *Pdl {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PdlUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PdlUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PdlUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := pdl.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Pdl.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Cell(); ok {
		if err := pdl.CellValidator(v); err != nil {
			return &ValidationError{Name: "cell", err: fmt.Errorf(`ent: validator failed for field "Pdl.cell": %w`, err)}
		}
	}
	return nil
}

func (_u *PdlUpdateOne) sqlSave(ctx context.Context) (_node *Pdl, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pdl.Table, pdl.Columns, sqlgraph.NewFieldSpec(pdl.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Pdl.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pdl.FieldID)
		for _, f := range fields {
			if !pdl.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pdl.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(pdl.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cell(); ok {
		_spec.SetField(pdl.FieldCell, field.TypeString, value)
	}
	if value, ok := _u.mutation.Crime(); ok {
		_spec.SetField(pdl.FieldCrime, field.TypeString, value)
	}
	if _u.mutation.CrimeCleared() {
		_spec.ClearField(pdl.FieldCrime, field.TypeString)
	}
	if value, ok := _u.mutation.DateCommitted(); ok {
		_spec.SetField(pdl.FieldDateCommitted, field.TypeTime, value)
	}
	if _u.mutation.DateCommittedCleared() {
		_spec.ClearField(pdl.FieldDateCommitted, field.TypeTime)
	}
	if _u.mutation.VisitorsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVisitorsIDs(); len(nodes) > 0 && !_u.mutation.VisitorsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VisitorsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Pdl{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pdl.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
