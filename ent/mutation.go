// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
	"visitlog/ent/cell"
	"visitlog/ent/pdl"
	"visitlog/ent/predicate"
	"visitlog/ent/registeredvisitor"
	"visitlog/ent/staffuser"
	"visitlog/ent/visitsession"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCell              = "Cell"
	TypePdl               = "Pdl"
	TypeRegisteredVisitor = "RegisteredVisitor"
	TypeStaffUser         = "StaffUser"
	TypeVisitSession      = "VisitSession"
)

// CellMutation represents an operation that mutates the Cell nodes in the graph.
type CellMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	code          *string
	capacity      *int
	addcapacity   *int
	active        *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Cell, error)
	predicates    []predicate.Cell
}

var _ ent.Mutation = (*CellMutation)(nil)

// cellOption allows management of the mutation configuration using functional options.
type cellOption func(*CellMutation)

// newCellMutation creates new mutation for the Cell entity.
func newCellMutation(c config, op Op, opts ...cellOption) *CellMutation {
	m := &CellMutation{
		config:        c,
		op:            op,
		typ:           TypeCell,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCellID sets the ID field of the mutation.
func withCellID(id uuid.UUID) cellOption {
	return func(m *CellMutation) {
		var (
			err   error
			once  sync.Once
			value *Cell
		)
		m.oldValue = func(ctx context.Context) (*Cell, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Cell.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCell sets the old Cell of the mutation.
func withCell(node *Cell) cellOption {
	return func(m *CellMutation) {
		m.oldValue = func(context.Context) (*Cell, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CellMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CellMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Cell entities.
func (m *CellMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CellMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CellMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Cell.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCode sets the "code" field.
func (m *CellMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *CellMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the Cell entity.
// If the Cell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *CellMutation) ResetCode() {
	m.code = nil
}

// SetCapacity sets the "capacity" field.
func (m *CellMutation) SetCapacity(i int) {
	m.capacity = &i
	m.addcapacity = nil
}

// Capacity returns the value of the "capacity" field in the mutation.
func (m *CellMutation) Capacity() (r int, exists bool) {
	v := m.capacity
	if v == nil {
		return
	}
	return *v, true
}

// OldCapacity returns the old "capacity" field's value of the Cell entity.
// If the Cell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellMutation) OldCapacity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapacity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapacity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapacity: %w", err)
	}
	return oldValue.Capacity, nil
}

// AddCapacity adds i to the "capacity" field.
func (m *CellMutation) AddCapacity(i int) {
	if m.addcapacity != nil {
		*m.addcapacity += i
	} else {
		m.addcapacity = &i
	}
}

// AddedCapacity returns the value that was added to the "capacity" field in this mutation.
func (m *CellMutation) AddedCapacity() (r int, exists bool) {
	v := m.addcapacity
	if v == nil {
		return
	}
	return *v, true
}

// ResetCapacity resets all changes to the "capacity" field.
func (m *CellMutation) ResetCapacity() {
	m.capacity = nil
	m.addcapacity = nil
}

// SetActive sets the "active" field.
func (m *CellMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *CellMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Cell entity.
// If the Cell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *CellMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CellMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CellMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Cell entity.
// If the Cell object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CellMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the CellMutation builder.
func (m *CellMutation) Where(ps ...predicate.Cell) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CellMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CellMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Cell, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CellMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CellMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Cell).
func (m *CellMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CellMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.code != nil {
		fields = append(fields, cell.FieldCode)
	}
	if m.capacity != nil {
		fields = append(fields, cell.FieldCapacity)
	}
	if m.active != nil {
		fields = append(fields, cell.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, cell.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CellMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cell.FieldCode:
		return m.Code()
	case cell.FieldCapacity:
		return m.Capacity()
	case cell.FieldActive:
		return m.Active()
	case cell.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CellMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cell.FieldCode:
		return m.OldCode(ctx)
	case cell.FieldCapacity:
		return m.OldCapacity(ctx)
	case cell.FieldActive:
		return m.OldActive(ctx)
	case cell.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Cell field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CellMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cell.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case cell.FieldCapacity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapacity(v)
		return nil
	case cell.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case cell.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Cell field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CellMutation) AddedFields() []string {
	var fields []string
	if m.addcapacity != nil {
		fields = append(fields, cell.FieldCapacity)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CellMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case cell.FieldCapacity:
		return m.AddedCapacity()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CellMutation) AddField(name string, value ent.Value) error {
	switch name {
	case cell.FieldCapacity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCapacity(v)
		return nil
	}
	return fmt.Errorf("unknown Cell numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CellMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CellMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CellMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Cell nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CellMutation) ResetField(name string) error {
	switch name {
	case cell.FieldCode:
		m.ResetCode()
		return nil
	case cell.FieldCapacity:
		m.ResetCapacity()
		return nil
	case cell.FieldActive:
		m.ResetActive()
		return nil
	case cell.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Cell field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CellMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CellMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CellMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CellMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CellMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CellMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CellMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Cell unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CellMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Cell edge %s", name)
}

// PdlMutation represents an operation that mutates the Pdl nodes in the graph.
type PdlMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	name            *string
	cell            *string
	crime           *string
	date_committed  *time.Time
	created_at      *time.Time
	clearedFields   map[string]struct{}
	visitors        map[uuid.UUID]struct{}
	removedvisitors map[uuid.UUID]struct{}
	clearedvisitors bool
	done            bool
	oldValue        func(context.Context) (*Pdl, error)
	predicates      []predicate.Pdl
}

var _ ent.Mutation = (*PdlMutation)(nil)

// pdlOption allows management of the mutation configuration using functional options.
type pdlOption func(*PdlMutation)

// newPdlMutation creates new mutation for the Pdl entity.
func newPdlMutation(c config, op Op, opts ...pdlOption) *PdlMutation {
	m := &PdlMutation{
		config:        c,
		op:            op,
		typ:           TypePdl,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPdlID sets the ID field of the mutation.
func withPdlID(id uuid.UUID) pdlOption {
	return func(m *PdlMutation) {
		var (
			err   error
			once  sync.Once
			value *Pdl
		)
		m.oldValue = func(ctx context.Context) (*Pdl, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Pdl.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPdl sets the old Pdl of the mutation.
func withPdl(node *Pdl) pdlOption {
	return func(m *PdlMutation) {
		m.oldValue = func(context.Context) (*Pdl, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PdlMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PdlMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Pdl entities.
func (m *PdlMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PdlMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PdlMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Pdl.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *PdlMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PdlMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Pdl entity.
// If the Pdl object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PdlMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PdlMutation) ResetName() {
	m.name = nil
}

// SetCell sets the "cell" field.
func (m *PdlMutation) SetCell(s string) {
	m.cell = &s
}

// Cell returns the value of the "cell" field in the mutation.
func (m *PdlMutation) Cell() (r string, exists bool) {
	v := m.cell
	if v == nil {
		return
	}
	return *v, true
}

// OldCell returns the old "cell" field's value of the Pdl entity.
// If the Pdl object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PdlMutation) OldCell(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCell is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCell requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCell: %w", err)
	}
	return oldValue.Cell, nil
}

// ResetCell resets all changes to the "cell" field.
func (m *PdlMutation) ResetCell() {
	m.cell = nil
}

// SetCrime sets the "crime" field.
func (m *PdlMutation) SetCrime(s string) {
	m.crime = &s
}

// Crime returns the value of the "crime" field in the mutation.
func (m *PdlMutation) Crime() (r string, exists bool) {
	v := m.crime
	if v == nil {
		return
	}
	return *v, true
}

// OldCrime returns the old "crime" field's value of the Pdl entity.
// If the Pdl object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PdlMutation) OldCrime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCrime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCrime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCrime: %w", err)
	}
	return oldValue.Crime, nil
}

// ClearCrime clears the value of the "crime" field.
func (m *PdlMutation) ClearCrime() {
	m.crime = nil
	m.clearedFields[pdl.FieldCrime] = struct{}{}
}

// CrimeCleared returns if the "crime" field was cleared in this mutation.
func (m *PdlMutation) CrimeCleared() bool {
	_, ok := m.clearedFields[pdl.FieldCrime]
	return ok
}

// ResetCrime resets all changes to the "crime" field.
func (m *PdlMutation) ResetCrime() {
	m.crime = nil
	delete(m.clearedFields, pdl.FieldCrime)
}

// SetDateCommitted sets the "date_committed" field.
func (m *PdlMutation) SetDateCommitted(t time.Time) {
	m.date_committed = &t
}

// DateCommitted returns the value of the "date_committed" field in the mutation.
func (m *PdlMutation) DateCommitted() (r time.Time, exists bool) {
	v := m.date_committed
	if v == nil {
		return
	}
	return *v, true
}

// OldDateCommitted returns the old "date_committed" field's value of the Pdl entity.
// If the Pdl object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PdlMutation) OldDateCommitted(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateCommitted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateCommitted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateCommitted: %w", err)
	}
	return oldValue.DateCommitted, nil
}

// ClearDateCommitted clears the value of the "date_committed" field.
func (m *PdlMutation) ClearDateCommitted() {
	m.date_committed = nil
	m.clearedFields[pdl.FieldDateCommitted] = struct{}{}
}

// DateCommittedCleared returns if the "date_committed" field was cleared in this mutation.
func (m *PdlMutation) DateCommittedCleared() bool {
	_, ok := m.clearedFields[pdl.FieldDateCommitted]
	return ok
}

// ResetDateCommitted resets all changes to the "date_committed" field.
func (m *PdlMutation) ResetDateCommitted() {
	m.date_committed = nil
	delete(m.clearedFields, pdl.FieldDateCommitted)
}

// SetCreatedAt sets the "created_at" field.
func (m *PdlMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PdlMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Pdl entity.
// If the Pdl object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PdlMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PdlMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddVisitorIDs adds the "visitors" edge to the RegisteredVisitor entity by ids.
func (m *PdlMutation) AddVisitorIDs(ids ...uuid.UUID) {
	if m.visitors == nil {
		m.visitors = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.visitors[ids[i]] = struct{}{}
	}
}

// ClearVisitors clears the "visitors" edge to the RegisteredVisitor entity.
func (m *PdlMutation) ClearVisitors() {
	m.clearedvisitors = true
}

// VisitorsCleared reports if the "visitors" edge to the RegisteredVisitor entity was cleared.
func (m *PdlMutation) VisitorsCleared() bool {
	return m.clearedvisitors
}

// RemoveVisitorIDs removes the "visitors" edge to the RegisteredVisitor entity by IDs.
func (m *PdlMutation) RemoveVisitorIDs(ids ...uuid.UUID) {
	if m.removedvisitors == nil {
		m.removedvisitors = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.visitors, ids[i])
		m.removedvisitors[ids[i]] = struct{}{}
	}
}

// RemovedVisitors returns the removed IDs of the "visitors" edge to the RegisteredVisitor entity.
func (m *PdlMutation) RemovedVisitorsIDs() (ids []uuid.UUID) {
	for id := range m.removedvisitors {
		ids = append(ids, id)
	}
	return
}

// VisitorsIDs returns the "visitors" edge IDs in the mutation.
func (m *PdlMutation) VisitorsIDs() (ids []uuid.UUID) {
	for id := range m.visitors {
		ids = append(ids, id)
	}
	return
}

// ResetVisitors resets all changes to the "visitors" edge.
func (m *PdlMutation) ResetVisitors() {
	m.visitors = nil
	m.clearedvisitors = false
	m.removedvisitors = nil
}

// Where appends a list predicates to the PdlMutation builder.
func (m *PdlMutation) Where(ps ...predicate.Pdl) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PdlMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PdlMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Pdl, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PdlMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PdlMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Pdl).
func (m *PdlMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PdlMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, pdl.FieldName)
	}
	if m.cell != nil {
		fields = append(fields, pdl.FieldCell)
	}
	if m.crime != nil {
		fields = append(fields, pdl.FieldCrime)
	}
	if m.date_committed != nil {
		fields = append(fields, pdl.FieldDateCommitted)
	}
	if m.created_at != nil {
		fields = append(fields, pdl.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PdlMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pdl.FieldName:
		return m.Name()
	case pdl.FieldCell:
		return m.Cell()
	case pdl.FieldCrime:
		return m.Crime()
	case pdl.FieldDateCommitted:
		return m.DateCommitted()
	case pdl.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PdlMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pdl.FieldName:
		return m.OldName(ctx)
	case pdl.FieldCell:
		return m.OldCell(ctx)
	case pdl.FieldCrime:
		return m.OldCrime(ctx)
	case pdl.FieldDateCommitted:
		return m.OldDateCommitted(ctx)
	case pdl.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Pdl field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PdlMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pdl.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case pdl.FieldCell:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCell(v)
		return nil
	case pdl.FieldCrime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCrime(v)
		return nil
	case pdl.FieldDateCommitted:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateCommitted(v)
		return nil
	case pdl.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Pdl field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PdlMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PdlMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PdlMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Pdl numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PdlMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pdl.FieldCrime) {
		fields = append(fields, pdl.FieldCrime)
	}
	if m.FieldCleared(pdl.FieldDateCommitted) {
		fields = append(fields, pdl.FieldDateCommitted)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PdlMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PdlMutation) ClearField(name string) error {
	switch name {
	case pdl.FieldCrime:
		m.ClearCrime()
		return nil
	case pdl.FieldDateCommitted:
		m.ClearDateCommitted()
		return nil
	}
	return fmt.Errorf("unknown Pdl nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PdlMutation) ResetField(name string) error {
	switch name {
	case pdl.FieldName:
		m.ResetName()
		return nil
	case pdl.FieldCell:
		m.ResetCell()
		return nil
	case pdl.FieldCrime:
		m.ResetCrime()
		return nil
	case pdl.FieldDateCommitted:
		m.ResetDateCommitted()
		return nil
	case pdl.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Pdl field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PdlMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.visitors != nil {
		edges = append(edges, pdl.EdgeVisitors)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PdlMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pdl.EdgeVisitors:
		ids := make([]ent.Value, 0, len(m.visitors))
		for id := range m.visitors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PdlMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedvisitors != nil {
		edges = append(edges, pdl.EdgeVisitors)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PdlMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case pdl.EdgeVisitors:
		ids := make([]ent.Value, 0, len(m.removedvisitors))
		for id := range m.removedvisitors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PdlMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedvisitors {
		edges = append(edges, pdl.EdgeVisitors)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PdlMutation) EdgeCleared(name string) bool {
	switch name {
	case pdl.EdgeVisitors:
		return m.clearedvisitors
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PdlMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Pdl unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PdlMutation) ResetEdge(name string) error {
	switch name {
	case pdl.EdgeVisitors:
		m.ResetVisitors()
		return nil
	}
	return fmt.Errorf("unknown Pdl edge %s", name)
}

// RegisteredVisitorMutation represents an operation that mutates the RegisteredVisitor nodes in the graph.
type RegisteredVisitorMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	visitor_id          *string
	full_name           *string
	relationship        *string
	age                 *int
	addage              *int
	address             *string
	valid_id            *string
	contact_number      *string
	date_of_application *time.Time
	conjugal_verified   *bool
	created_at          *time.Time
	clearedFields       map[string]struct{}
	pdl                 *uuid.UUID
	clearedpdl          bool
	done                bool
	oldValue            func(context.Context) (*RegisteredVisitor, error)
	predicates          []predicate.RegisteredVisitor
}

var _ ent.Mutation = (*RegisteredVisitorMutation)(nil)

// registeredvisitorOption allows management of the mutation configuration using functional options.
type registeredvisitorOption func(*RegisteredVisitorMutation)

// newRegisteredVisitorMutation creates new mutation for the RegisteredVisitor entity.
func newRegisteredVisitorMutation(c config, op Op, opts ...registeredvisitorOption) *RegisteredVisitorMutation {
	m := &RegisteredVisitorMutation{
		config:        c,
		op:            op,
		typ:           TypeRegisteredVisitor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRegisteredVisitorID sets the ID field of the mutation.
func withRegisteredVisitorID(id uuid.UUID) registeredvisitorOption {
	return func(m *RegisteredVisitorMutation) {
		var (
			err   error
			once  sync.Once
			value *RegisteredVisitor
		)
		m.oldValue = func(ctx context.Context) (*RegisteredVisitor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RegisteredVisitor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRegisteredVisitor sets the old RegisteredVisitor of the mutation.
func withRegisteredVisitor(node *RegisteredVisitor) registeredvisitorOption {
	return func(m *RegisteredVisitorMutation) {
		m.oldValue = func(context.Context) (*RegisteredVisitor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RegisteredVisitorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RegisteredVisitorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RegisteredVisitor entities.
func (m *RegisteredVisitorMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RegisteredVisitorMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RegisteredVisitorMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RegisteredVisitor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVisitorID sets the "visitor_id" field.
func (m *RegisteredVisitorMutation) SetVisitorID(s string) {
	m.visitor_id = &s
}

// VisitorID returns the value of the "visitor_id" field in the mutation.
func (m *RegisteredVisitorMutation) VisitorID() (r string, exists bool) {
	v := m.visitor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVisitorID returns the old "visitor_id" field's value of the RegisteredVisitor entity.
// If the RegisteredVisitor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegisteredVisitorMutation) OldVisitorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisitorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisitorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisitorID: %w", err)
	}
	return oldValue.VisitorID, nil
}

// ResetVisitorID resets all changes to the "visitor_id" field.
func (m *RegisteredVisitorMutation) ResetVisitorID() {
	m.visitor_id = nil
}

// SetFullName sets the "full_name" field.
func (m *RegisteredVisitorMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *RegisteredVisitorMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the RegisteredVisitor entity.
// If the RegisteredVisitor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegisteredVisitorMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ResetFullName resets all changes to the "full_name" field.
func (m *RegisteredVisitorMutation) ResetFullName() {
	m.full_name = nil
}

// SetRelationship sets the "relationship" field.
func (m *RegisteredVisitorMutation) SetRelationship(s string) {
	m.relationship = &s
}

// Relationship returns the value of the "relationship" field in the mutation.
func (m *RegisteredVisitorMutation) Relationship() (r string, exists bool) {
	v := m.relationship
	if v == nil {
		return
	}
	return *v, true
}

// OldRelationship returns the old "relationship" field's value of the RegisteredVisitor entity.
// If the RegisteredVisitor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegisteredVisitorMutation) OldRelationship(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelationship is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelationship requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelationship: %w", err)
	}
	return oldValue.Relationship, nil
}

// ClearRelationship clears the value of the "relationship" field.
func (m *RegisteredVisitorMutation) ClearRelationship() {
	m.relationship = nil
	m.clearedFields[registeredvisitor.FieldRelationship] = struct{}{}
}

// RelationshipCleared returns if the "relationship" field was cleared in this mutation.
func (m *RegisteredVisitorMutation) RelationshipCleared() bool {
	_, ok := m.clearedFields[registeredvisitor.FieldRelationship]
	return ok
}

// ResetRelationship resets all changes to the "relationship" field.
func (m *RegisteredVisitorMutation) ResetRelationship() {
	m.relationship = nil
	delete(m.clearedFields, registeredvisitor.FieldRelationship)
}

// SetAge sets the "age" field.
func (m *RegisteredVisitorMutation) SetAge(i int) {
	m.age = &i
	m.addage = nil
}

// Age returns the value of the "age" field in the mutation.
func (m *RegisteredVisitorMutation) Age() (r int, exists bool) {
	v := m.age
	if v == nil {
		return
	}
	return *v, true
}

// OldAge returns the old "age" field's value of the RegisteredVisitor entity.
// If the RegisteredVisitor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegisteredVisitorMutation) OldAge(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAge: %w", err)
	}
	return oldValue.Age, nil
}

// AddAge adds i to the "age" field.
func (m *RegisteredVisitorMutation) AddAge(i int) {
	if m.addage != nil {
		*m.addage += i
	} else {
		m.addage = &i
	}
}

// AddedAge returns the value that was added to the "age" field in this mutation.
func (m *RegisteredVisitorMutation) AddedAge() (r int, exists bool) {
	v := m.addage
	if v == nil {
		return
	}
	return *v, true
}

// ClearAge clears the value of the "age" field.
func (m *RegisteredVisitorMutation) ClearAge() {
	m.age = nil
	m.addage = nil
	m.clearedFields[registeredvisitor.FieldAge] = struct{}{}
}

// AgeCleared returns if the "age" field was cleared in this mutation.
func (m *RegisteredVisitorMutation) AgeCleared() bool {
	_, ok := m.clearedFields[registeredvisitor.FieldAge]
	return ok
}

// ResetAge resets all changes to the "age" field.
func (m *RegisteredVisitorMutation) ResetAge() {
	m.age = nil
	m.addage = nil
	delete(m.clearedFields, registeredvisitor.FieldAge)
}

// SetAddress sets the "address" field.
func (m *RegisteredVisitorMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *RegisteredVisitorMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the RegisteredVisitor entity.
// If the RegisteredVisitor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegisteredVisitorMutation) OldAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *RegisteredVisitorMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[registeredvisitor.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *RegisteredVisitorMutation) AddressCleared() bool {
	_, ok := m.clearedFields[registeredvisitor.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *RegisteredVisitorMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, registeredvisitor.FieldAddress)
}

// SetValidID sets the "valid_id" field.
func (m *RegisteredVisitorMutation) SetValidID(s string) {
	m.valid_id = &s
}

// ValidID returns the value of the "valid_id" field in the mutation.
func (m *RegisteredVisitorMutation) ValidID() (r string, exists bool) {
	v := m.valid_id
	if v == nil {
		return
	}
	return *v, true
}

// OldValidID returns the old "valid_id" field's value of the RegisteredVisitor entity.
// If the RegisteredVisitor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegisteredVisitorMutation) OldValidID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidID: %w", err)
	}
	return oldValue.ValidID, nil
}

// ClearValidID clears the value of the "valid_id" field.
func (m *RegisteredVisitorMutation) ClearValidID() {
	m.valid_id = nil
	m.clearedFields[registeredvisitor.FieldValidID] = struct{}{}
}

// ValidIDCleared returns if the "valid_id" field was cleared in this mutation.
func (m *RegisteredVisitorMutation) ValidIDCleared() bool {
	_, ok := m.clearedFields[registeredvisitor.FieldValidID]
	return ok
}

// ResetValidID resets all changes to the "valid_id" field.
func (m *RegisteredVisitorMutation) ResetValidID() {
	m.valid_id = nil
	delete(m.clearedFields, registeredvisitor.FieldValidID)
}

// SetContactNumber sets the "contact_number" field.
func (m *RegisteredVisitorMutation) SetContactNumber(s string) {
	m.contact_number = &s
}

// ContactNumber returns the value of the "contact_number" field in the mutation.
func (m *RegisteredVisitorMutation) ContactNumber() (r string, exists bool) {
	v := m.contact_number
	if v == nil {
		return
	}
	return *v, true
}

// OldContactNumber returns the old "contact_number" field's value of the RegisteredVisitor entity.
// If the RegisteredVisitor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegisteredVisitorMutation) OldContactNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactNumber: %w", err)
	}
	return oldValue.ContactNumber, nil
}

// ClearContactNumber clears the value of the "contact_number" field.
func (m *RegisteredVisitorMutation) ClearContactNumber() {
	m.contact_number = nil
	m.clearedFields[registeredvisitor.FieldContactNumber] = struct{}{}
}

// ContactNumberCleared returns if the "contact_number" field was cleared in this mutation.
func (m *RegisteredVisitorMutation) ContactNumberCleared() bool {
	_, ok := m.clearedFields[registeredvisitor.FieldContactNumber]
	return ok
}

// ResetContactNumber resets all changes to the "contact_number" field.
func (m *RegisteredVisitorMutation) ResetContactNumber() {
	m.contact_number = nil
	delete(m.clearedFields, registeredvisitor.FieldContactNumber)
}

// SetDateOfApplication sets the "date_of_application" field.
func (m *RegisteredVisitorMutation) SetDateOfApplication(t time.Time) {
	m.date_of_application = &t
}

// DateOfApplication returns the value of the "date_of_application" field in the mutation.
func (m *RegisteredVisitorMutation) DateOfApplication() (r time.Time, exists bool) {
	v := m.date_of_application
	if v == nil {
		return
	}
	return *v, true
}

// OldDateOfApplication returns the old "date_of_application" field's value of the RegisteredVisitor entity.
// If the RegisteredVisitor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegisteredVisitorMutation) OldDateOfApplication(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateOfApplication is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateOfApplication requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateOfApplication: %w", err)
	}
	return oldValue.DateOfApplication, nil
}

// ClearDateOfApplication clears the value of the "date_of_application" field.
func (m *RegisteredVisitorMutation) ClearDateOfApplication() {
	m.date_of_application = nil
	m.clearedFields[registeredvisitor.FieldDateOfApplication] = struct{}{}
}

// DateOfApplicationCleared returns if the "date_of_application" field was cleared in this mutation.
func (m *RegisteredVisitorMutation) DateOfApplicationCleared() bool {
	_, ok := m.clearedFields[registeredvisitor.FieldDateOfApplication]
	return ok
}

// ResetDateOfApplication resets all changes to the "date_of_application" field.
func (m *RegisteredVisitorMutation) ResetDateOfApplication() {
	m.date_of_application = nil
	delete(m.clearedFields, registeredvisitor.FieldDateOfApplication)
}

// SetConjugalVerified sets the "conjugal_verified" field.
func (m *RegisteredVisitorMutation) SetConjugalVerified(b bool) {
	m.conjugal_verified = &b
}

// ConjugalVerified returns the value of the "conjugal_verified" field in the mutation.
func (m *RegisteredVisitorMutation) ConjugalVerified() (r bool, exists bool) {
	v := m.conjugal_verified
	if v == nil {
		return
	}
	return *v, true
}

// OldConjugalVerified returns the old "conjugal_verified" field's value of the RegisteredVisitor entity.
// If the RegisteredVisitor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegisteredVisitorMutation) OldConjugalVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConjugalVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConjugalVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConjugalVerified: %w", err)
	}
	return oldValue.ConjugalVerified, nil
}

// ResetConjugalVerified resets all changes to the "conjugal_verified" field.
func (m *RegisteredVisitorMutation) ResetConjugalVerified() {
	m.conjugal_verified = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RegisteredVisitorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RegisteredVisitorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RegisteredVisitor entity.
// If the RegisteredVisitor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegisteredVisitorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RegisteredVisitorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetPdlID sets the "pdl" edge to the Pdl entity by id.
func (m *RegisteredVisitorMutation) SetPdlID(id uuid.UUID) {
	m.pdl = &id
}

// ClearPdl clears the "pdl" edge to the Pdl entity.
func (m *RegisteredVisitorMutation) ClearPdl() {
	m.clearedpdl = true
}

// PdlCleared reports if the "pdl" edge to the Pdl entity was cleared.
func (m *RegisteredVisitorMutation) PdlCleared() bool {
	return m.clearedpdl
}

// PdlID returns the "pdl" edge ID in the mutation.
func (m *RegisteredVisitorMutation) PdlID() (id uuid.UUID, exists bool) {
	if m.pdl != nil {
		return *m.pdl, true
	}
	return
}

// PdlIDs returns the "pdl" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PdlID instead. It exists only for internal usage by the builders.
func (m *RegisteredVisitorMutation) PdlIDs() (ids []uuid.UUID) {
	if id := m.pdl; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPdl resets all changes to the "pdl" edge.
func (m *RegisteredVisitorMutation) ResetPdl() {
	m.pdl = nil
	m.clearedpdl = false
}

// Where appends a list predicates to the RegisteredVisitorMutation builder.
func (m *RegisteredVisitorMutation) Where(ps ...predicate.RegisteredVisitor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RegisteredVisitorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RegisteredVisitorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RegisteredVisitor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RegisteredVisitorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RegisteredVisitorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RegisteredVisitor).
func (m *RegisteredVisitorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RegisteredVisitorMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.visitor_id != nil {
		fields = append(fields, registeredvisitor.FieldVisitorID)
	}
	if m.full_name != nil {
		fields = append(fields, registeredvisitor.FieldFullName)
	}
	if m.relationship != nil {
		fields = append(fields, registeredvisitor.FieldRelationship)
	}
	if m.age != nil {
		fields = append(fields, registeredvisitor.FieldAge)
	}
	if m.address != nil {
		fields = append(fields, registeredvisitor.FieldAddress)
	}
	if m.valid_id != nil {
		fields = append(fields, registeredvisitor.FieldValidID)
	}
	if m.contact_number != nil {
		fields = append(fields, registeredvisitor.FieldContactNumber)
	}
	if m.date_of_application != nil {
		fields = append(fields, registeredvisitor.FieldDateOfApplication)
	}
	if m.conjugal_verified != nil {
		fields = append(fields, registeredvisitor.FieldConjugalVerified)
	}
	if m.created_at != nil {
		fields = append(fields, registeredvisitor.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RegisteredVisitorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case registeredvisitor.FieldVisitorID:
		return m.VisitorID()
	case registeredvisitor.FieldFullName:
		return m.FullName()
	case registeredvisitor.FieldRelationship:
		return m.Relationship()
	case registeredvisitor.FieldAge:
		return m.Age()
	case registeredvisitor.FieldAddress:
		return m.Address()
	case registeredvisitor.FieldValidID:
		return m.ValidID()
	case registeredvisitor.FieldContactNumber:
		return m.ContactNumber()
	case registeredvisitor.FieldDateOfApplication:
		return m.DateOfApplication()
	case registeredvisitor.FieldConjugalVerified:
		return m.ConjugalVerified()
	case registeredvisitor.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RegisteredVisitorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case registeredvisitor.FieldVisitorID:
		return m.OldVisitorID(ctx)
	case registeredvisitor.FieldFullName:
		return m.OldFullName(ctx)
	case registeredvisitor.FieldRelationship:
		return m.OldRelationship(ctx)
	case registeredvisitor.FieldAge:
		return m.OldAge(ctx)
	case registeredvisitor.FieldAddress:
		return m.OldAddress(ctx)
	case registeredvisitor.FieldValidID:
		return m.OldValidID(ctx)
	case registeredvisitor.FieldContactNumber:
		return m.OldContactNumber(ctx)
	case registeredvisitor.FieldDateOfApplication:
		return m.OldDateOfApplication(ctx)
	case registeredvisitor.FieldConjugalVerified:
		return m.OldConjugalVerified(ctx)
	case registeredvisitor.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RegisteredVisitor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RegisteredVisitorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case registeredvisitor.FieldVisitorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisitorID(v)
		return nil
	case registeredvisitor.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case registeredvisitor.FieldRelationship:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelationship(v)
		return nil
	case registeredvisitor.FieldAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAge(v)
		return nil
	case registeredvisitor.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case registeredvisitor.FieldValidID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidID(v)
		return nil
	case registeredvisitor.FieldContactNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactNumber(v)
		return nil
	case registeredvisitor.FieldDateOfApplication:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateOfApplication(v)
		return nil
	case registeredvisitor.FieldConjugalVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConjugalVerified(v)
		return nil
	case registeredvisitor.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RegisteredVisitor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RegisteredVisitorMutation) AddedFields() []string {
	var fields []string
	if m.addage != nil {
		fields = append(fields, registeredvisitor.FieldAge)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RegisteredVisitorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case registeredvisitor.FieldAge:
		return m.AddedAge()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RegisteredVisitorMutation) AddField(name string, value ent.Value) error {
	switch name {
	case registeredvisitor.FieldAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAge(v)
		return nil
	}
	return fmt.Errorf("unknown RegisteredVisitor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RegisteredVisitorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(registeredvisitor.FieldRelationship) {
		fields = append(fields, registeredvisitor.FieldRelationship)
	}
	if m.FieldCleared(registeredvisitor.FieldAge) {
		fields = append(fields, registeredvisitor.FieldAge)
	}
	if m.FieldCleared(registeredvisitor.FieldAddress) {
		fields = append(fields, registeredvisitor.FieldAddress)
	}
	if m.FieldCleared(registeredvisitor.FieldValidID) {
		fields = append(fields, registeredvisitor.FieldValidID)
	}
	if m.FieldCleared(registeredvisitor.FieldContactNumber) {
		fields = append(fields, registeredvisitor.FieldContactNumber)
	}
	if m.FieldCleared(registeredvisitor.FieldDateOfApplication) {
		fields = append(fields, registeredvisitor.FieldDateOfApplication)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RegisteredVisitorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RegisteredVisitorMutation) ClearField(name string) error {
	switch name {
	case registeredvisitor.FieldRelationship:
		m.ClearRelationship()
		return nil
	case registeredvisitor.FieldAge:
		m.ClearAge()
		return nil
	case registeredvisitor.FieldAddress:
		m.ClearAddress()
		return nil
	case registeredvisitor.FieldValidID:
		m.ClearValidID()
		return nil
	case registeredvisitor.FieldContactNumber:
		m.ClearContactNumber()
		return nil
	case registeredvisitor.FieldDateOfApplication:
		m.ClearDateOfApplication()
		return nil
	}
	return fmt.Errorf("unknown RegisteredVisitor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RegisteredVisitorMutation) ResetField(name string) error {
	switch name {
	case registeredvisitor.FieldVisitorID:
		m.ResetVisitorID()
		return nil
	case registeredvisitor.FieldFullName:
		m.ResetFullName()
		return nil
	case registeredvisitor.FieldRelationship:
		m.ResetRelationship()
		return nil
	case registeredvisitor.FieldAge:
		m.ResetAge()
		return nil
	case registeredvisitor.FieldAddress:
		m.ResetAddress()
		return nil
	case registeredvisitor.FieldValidID:
		m.ResetValidID()
		return nil
	case registeredvisitor.FieldContactNumber:
		m.ResetContactNumber()
		return nil
	case registeredvisitor.FieldDateOfApplication:
		m.ResetDateOfApplication()
		return nil
	case registeredvisitor.FieldConjugalVerified:
		m.ResetConjugalVerified()
		return nil
	case registeredvisitor.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RegisteredVisitor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RegisteredVisitorMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.pdl != nil {
		edges = append(edges, registeredvisitor.EdgePdl)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RegisteredVisitorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case registeredvisitor.EdgePdl:
		if id := m.pdl; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RegisteredVisitorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RegisteredVisitorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RegisteredVisitorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpdl {
		edges = append(edges, registeredvisitor.EdgePdl)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RegisteredVisitorMutation) EdgeCleared(name string) bool {
	switch name {
	case registeredvisitor.EdgePdl:
		return m.clearedpdl
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RegisteredVisitorMutation) ClearEdge(name string) error {
	switch name {
	case registeredvisitor.EdgePdl:
		m.ClearPdl()
		return nil
	}
	return fmt.Errorf("unknown RegisteredVisitor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RegisteredVisitorMutation) ResetEdge(name string) error {
	switch name {
	case registeredvisitor.EdgePdl:
		m.ResetPdl()
		return nil
	}
	return fmt.Errorf("unknown RegisteredVisitor edge %s", name)
}

// StaffUserMutation represents an operation that mutates the StaffUser nodes in the graph.
type StaffUserMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	username      *string
	password_hash *string
	role          *staffuser.Role
	last_login_at *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*StaffUser, error)
	predicates    []predicate.StaffUser
}

var _ ent.Mutation = (*StaffUserMutation)(nil)

// staffuserOption allows management of the mutation configuration using functional options.
type staffuserOption func(*StaffUserMutation)

// newStaffUserMutation creates new mutation for the StaffUser entity.
func newStaffUserMutation(c config, op Op, opts ...staffuserOption) *StaffUserMutation {
	m := &StaffUserMutation{
		config:        c,
		op:            op,
		typ:           TypeStaffUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStaffUserID sets the ID field of the mutation.
func withStaffUserID(id uuid.UUID) staffuserOption {
	return func(m *StaffUserMutation) {
		var (
			err   error
			once  sync.Once
			value *StaffUser
		)
		m.oldValue = func(ctx context.Context) (*StaffUser, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StaffUser.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStaffUser sets the old StaffUser of the mutation.
func withStaffUser(node *StaffUser) staffuserOption {
	return func(m *StaffUserMutation) {
		m.oldValue = func(context.Context) (*StaffUser, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StaffUserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StaffUserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StaffUser entities.
func (m *StaffUserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StaffUserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StaffUserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StaffUser.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUsername sets the "username" field.
func (m *StaffUserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *StaffUserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the StaffUser entity.
// If the StaffUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffUserMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *StaffUserMutation) ResetUsername() {
	m.username = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *StaffUserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *StaffUserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the StaffUser entity.
// If the StaffUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffUserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *StaffUserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetRole sets the "role" field.
func (m *StaffUserMutation) SetRole(s staffuser.Role) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *StaffUserMutation) Role() (r staffuser.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the StaffUser entity.
// If the StaffUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffUserMutation) OldRole(ctx context.Context) (v staffuser.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *StaffUserMutation) ResetRole() {
	m.role = nil
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *StaffUserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *StaffUserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the StaffUser entity.
// If the StaffUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffUserMutation) OldLastLoginAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *StaffUserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[staffuser.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *StaffUserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[staffuser.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *StaffUserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, staffuser.FieldLastLoginAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *StaffUserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StaffUserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StaffUser entity.
// If the StaffUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffUserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StaffUserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the StaffUserMutation builder.
func (m *StaffUserMutation) Where(ps ...predicate.StaffUser) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StaffUserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StaffUserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StaffUser, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StaffUserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StaffUserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StaffUser).
func (m *StaffUserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StaffUserMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.username != nil {
		fields = append(fields, staffuser.FieldUsername)
	}
	if m.password_hash != nil {
		fields = append(fields, staffuser.FieldPasswordHash)
	}
	if m.role != nil {
		fields = append(fields, staffuser.FieldRole)
	}
	if m.last_login_at != nil {
		fields = append(fields, staffuser.FieldLastLoginAt)
	}
	if m.created_at != nil {
		fields = append(fields, staffuser.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StaffUserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case staffuser.FieldUsername:
		return m.Username()
	case staffuser.FieldPasswordHash:
		return m.PasswordHash()
	case staffuser.FieldRole:
		return m.Role()
	case staffuser.FieldLastLoginAt:
		return m.LastLoginAt()
	case staffuser.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StaffUserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case staffuser.FieldUsername:
		return m.OldUsername(ctx)
	case staffuser.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case staffuser.FieldRole:
		return m.OldRole(ctx)
	case staffuser.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	case staffuser.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StaffUser field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StaffUserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case staffuser.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case staffuser.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case staffuser.FieldRole:
		v, ok := value.(staffuser.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case staffuser.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	case staffuser.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StaffUser field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StaffUserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StaffUserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StaffUserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StaffUser numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StaffUserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(staffuser.FieldLastLoginAt) {
		fields = append(fields, staffuser.FieldLastLoginAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StaffUserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StaffUserMutation) ClearField(name string) error {
	switch name {
	case staffuser.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown StaffUser nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StaffUserMutation) ResetField(name string) error {
	switch name {
	case staffuser.FieldUsername:
		m.ResetUsername()
		return nil
	case staffuser.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case staffuser.FieldRole:
		m.ResetRole()
		return nil
	case staffuser.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	case staffuser.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown StaffUser field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StaffUserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StaffUserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StaffUserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StaffUserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StaffUserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StaffUserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StaffUserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StaffUser unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StaffUserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StaffUser edge %s", name)
}

// VisitSessionMutation represents an operation that mutates the VisitSession nodes in the graph.
type VisitSessionMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	visitor_name   *string
	visitor_key    *string
	pdl_name       *string
	cell           *string
	relationship   *string
	contact_number *string
	purpose        *visitsession.Purpose
	time_in        *time.Time
	time_out       *time.Time
	scan_date      *time.Time
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*VisitSession, error)
	predicates     []predicate.VisitSession
}

var _ ent.Mutation = (*VisitSessionMutation)(nil)

// visitsessionOption allows management of the mutation configuration using functional options.
type visitsessionOption func(*VisitSessionMutation)

// newVisitSessionMutation creates new mutation for the VisitSession entity.
func newVisitSessionMutation(c config, op Op, opts ...visitsessionOption) *VisitSessionMutation {
	m := &VisitSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeVisitSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVisitSessionID sets the ID field of the mutation.
func withVisitSessionID(id uuid.UUID) visitsessionOption {
	return func(m *VisitSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *VisitSession
		)
		m.oldValue = func(ctx context.Context) (*VisitSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VisitSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVisitSession sets the old VisitSession of the mutation.
func withVisitSession(node *VisitSession) visitsessionOption {
	return func(m *VisitSessionMutation) {
		m.oldValue = func(context.Context) (*VisitSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VisitSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VisitSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VisitSession entities.
func (m *VisitSessionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VisitSessionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VisitSessionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VisitSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVisitorName sets the "visitor_name" field.
func (m *VisitSessionMutation) SetVisitorName(s string) {
	m.visitor_name = &s
}

// VisitorName returns the value of the "visitor_name" field in the mutation.
func (m *VisitSessionMutation) VisitorName() (r string, exists bool) {
	v := m.visitor_name
	if v == nil {
		return
	}
	return *v, true
}

// OldVisitorName returns the old "visitor_name" field's value of the VisitSession entity.
// If the VisitSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitSessionMutation) OldVisitorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisitorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisitorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisitorName: %w", err)
	}
	return oldValue.VisitorName, nil
}

// ResetVisitorName resets all changes to the "visitor_name" field.
func (m *VisitSessionMutation) ResetVisitorName() {
	m.visitor_name = nil
}

// SetVisitorKey sets the "visitor_key" field.
func (m *VisitSessionMutation) SetVisitorKey(s string) {
	m.visitor_key = &s
}

// VisitorKey returns the value of the "visitor_key" field in the mutation.
func (m *VisitSessionMutation) VisitorKey() (r string, exists bool) {
	v := m.visitor_key
	if v == nil {
		return
	}
	return *v, true
}

// OldVisitorKey returns the old "visitor_key" field's value of the VisitSession entity.
// If the VisitSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitSessionMutation) OldVisitorKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisitorKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisitorKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisitorKey: %w", err)
	}
	return oldValue.VisitorKey, nil
}

// ResetVisitorKey resets all changes to the "visitor_key" field.
func (m *VisitSessionMutation) ResetVisitorKey() {
	m.visitor_key = nil
}

// SetPdlName sets the "pdl_name" field.
func (m *VisitSessionMutation) SetPdlName(s string) {
	m.pdl_name = &s
}

// PdlName returns the value of the "pdl_name" field in the mutation.
func (m *VisitSessionMutation) PdlName() (r string, exists bool) {
	v := m.pdl_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPdlName returns the old "pdl_name" field's value of the VisitSession entity.
// If the VisitSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitSessionMutation) OldPdlName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPdlName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPdlName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPdlName: %w", err)
	}
	return oldValue.PdlName, nil
}

// ResetPdlName resets all changes to the "pdl_name" field.
func (m *VisitSessionMutation) ResetPdlName() {
	m.pdl_name = nil
}

// SetCell sets the "cell" field.
func (m *VisitSessionMutation) SetCell(s string) {
	m.cell = &s
}

// Cell returns the value of the "cell" field in the mutation.
func (m *VisitSessionMutation) Cell() (r string, exists bool) {
	v := m.cell
	if v == nil {
		return
	}
	return *v, true
}

// OldCell returns the old "cell" field's value of the VisitSession entity.
// If the VisitSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitSessionMutation) OldCell(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCell is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCell requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCell: %w", err)
	}
	return oldValue.Cell, nil
}

// ResetCell resets all changes to the "cell" field.
func (m *VisitSessionMutation) ResetCell() {
	m.cell = nil
}

// SetRelationship sets the "relationship" field.
func (m *VisitSessionMutation) SetRelationship(s string) {
	m.relationship = &s
}

// Relationship returns the value of the "relationship" field in the mutation.
func (m *VisitSessionMutation) Relationship() (r string, exists bool) {
	v := m.relationship
	if v == nil {
		return
	}
	return *v, true
}

// OldRelationship returns the old "relationship" field's value of the VisitSession entity.
// If the VisitSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitSessionMutation) OldRelationship(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelationship is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelationship requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelationship: %w", err)
	}
	return oldValue.Relationship, nil
}

// ClearRelationship clears the value of the "relationship" field.
func (m *VisitSessionMutation) ClearRelationship() {
	m.relationship = nil
	m.clearedFields[visitsession.FieldRelationship] = struct{}{}
}

// RelationshipCleared returns if the "relationship" field was cleared in this mutation.
func (m *VisitSessionMutation) RelationshipCleared() bool {
	_, ok := m.clearedFields[visitsession.FieldRelationship]
	return ok
}

// ResetRelationship resets all changes to the "relationship" field.
func (m *VisitSessionMutation) ResetRelationship() {
	m.relationship = nil
	delete(m.clearedFields, visitsession.FieldRelationship)
}

// SetContactNumber sets the "contact_number" field.
func (m *VisitSessionMutation) SetContactNumber(s string) {
	m.contact_number = &s
}

// ContactNumber returns the value of the "contact_number" field in the mutation.
func (m *VisitSessionMutation) ContactNumber() (r string, exists bool) {
	v := m.contact_number
	if v == nil {
		return
	}
	return *v, true
}

// OldContactNumber returns the old "contact_number" field's value of the VisitSession entity.
// If the VisitSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitSessionMutation) OldContactNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactNumber: %w", err)
	}
	return oldValue.ContactNumber, nil
}

// ClearContactNumber clears the value of the "contact_number" field.
func (m *VisitSessionMutation) ClearContactNumber() {
	m.contact_number = nil
	m.clearedFields[visitsession.FieldContactNumber] = struct{}{}
}

// ContactNumberCleared returns if the "contact_number" field was cleared in this mutation.
func (m *VisitSessionMutation) ContactNumberCleared() bool {
	_, ok := m.clearedFields[visitsession.FieldContactNumber]
	return ok
}

// ResetContactNumber resets all changes to the "contact_number" field.
func (m *VisitSessionMutation) ResetContactNumber() {
	m.contact_number = nil
	delete(m.clearedFields, visitsession.FieldContactNumber)
}

// SetPurpose sets the "purpose" field.
func (m *VisitSessionMutation) SetPurpose(v visitsession.Purpose) {
	m.purpose = &v
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *VisitSessionMutation) Purpose() (r visitsession.Purpose, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the VisitSession entity.
// If the VisitSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitSessionMutation) OldPurpose(ctx context.Context) (v visitsession.Purpose, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *VisitSessionMutation) ResetPurpose() {
	m.purpose = nil
}

// SetTimeIn sets the "time_in" field.
func (m *VisitSessionMutation) SetTimeIn(t time.Time) {
	m.time_in = &t
}

// TimeIn returns the value of the "time_in" field in the mutation.
func (m *VisitSessionMutation) TimeIn() (r time.Time, exists bool) {
	v := m.time_in
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeIn returns the old "time_in" field's value of the VisitSession entity.
// If the VisitSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitSessionMutation) OldTimeIn(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeIn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeIn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeIn: %w", err)
	}
	return oldValue.TimeIn, nil
}

// ResetTimeIn resets all changes to the "time_in" field.
func (m *VisitSessionMutation) ResetTimeIn() {
	m.time_in = nil
}

// SetTimeOut sets the "time_out" field.
func (m *VisitSessionMutation) SetTimeOut(t time.Time) {
	m.time_out = &t
}

// TimeOut returns the value of the "time_out" field in the mutation.
func (m *VisitSessionMutation) TimeOut() (r time.Time, exists bool) {
	v := m.time_out
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeOut returns the old "time_out" field's value of the VisitSession entity.
// If the VisitSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitSessionMutation) OldTimeOut(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeOut is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeOut requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeOut: %w", err)
	}
	return oldValue.TimeOut, nil
}

// ClearTimeOut clears the value of the "time_out" field.
func (m *VisitSessionMutation) ClearTimeOut() {
	m.time_out = nil
	m.clearedFields[visitsession.FieldTimeOut] = struct{}{}
}

// TimeOutCleared returns if the "time_out" field was cleared in this mutation.
func (m *VisitSessionMutation) TimeOutCleared() bool {
	_, ok := m.clearedFields[visitsession.FieldTimeOut]
	return ok
}

// ResetTimeOut resets all changes to the "time_out" field.
func (m *VisitSessionMutation) ResetTimeOut() {
	m.time_out = nil
	delete(m.clearedFields, visitsession.FieldTimeOut)
}

// SetScanDate sets the "scan_date" field.
func (m *VisitSessionMutation) SetScanDate(t time.Time) {
	m.scan_date = &t
}

// ScanDate returns the value of the "scan_date" field in the mutation.
func (m *VisitSessionMutation) ScanDate() (r time.Time, exists bool) {
	v := m.scan_date
	if v == nil {
		return
	}
	return *v, true
}

// OldScanDate returns the old "scan_date" field's value of the VisitSession entity.
// If the VisitSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitSessionMutation) OldScanDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScanDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScanDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScanDate: %w", err)
	}
	return oldValue.ScanDate, nil
}

// ResetScanDate resets all changes to the "scan_date" field.
func (m *VisitSessionMutation) ResetScanDate() {
	m.scan_date = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *VisitSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VisitSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the VisitSession entity.
// If the VisitSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VisitSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the VisitSessionMutation builder.
func (m *VisitSessionMutation) Where(ps ...predicate.VisitSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VisitSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VisitSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VisitSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VisitSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VisitSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VisitSession).
func (m *VisitSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VisitSessionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.visitor_name != nil {
		fields = append(fields, visitsession.FieldVisitorName)
	}
	if m.visitor_key != nil {
		fields = append(fields, visitsession.FieldVisitorKey)
	}
	if m.pdl_name != nil {
		fields = append(fields, visitsession.FieldPdlName)
	}
	if m.cell != nil {
		fields = append(fields, visitsession.FieldCell)
	}
	if m.relationship != nil {
		fields = append(fields, visitsession.FieldRelationship)
	}
	if m.contact_number != nil {
		fields = append(fields, visitsession.FieldContactNumber)
	}
	if m.purpose != nil {
		fields = append(fields, visitsession.FieldPurpose)
	}
	if m.time_in != nil {
		fields = append(fields, visitsession.FieldTimeIn)
	}
	if m.time_out != nil {
		fields = append(fields, visitsession.FieldTimeOut)
	}
	if m.scan_date != nil {
		fields = append(fields, visitsession.FieldScanDate)
	}
	if m.created_at != nil {
		fields = append(fields, visitsession.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VisitSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case visitsession.FieldVisitorName:
		return m.VisitorName()
	case visitsession.FieldVisitorKey:
		return m.VisitorKey()
	case visitsession.FieldPdlName:
		return m.PdlName()
	case visitsession.FieldCell:
		return m.Cell()
	case visitsession.FieldRelationship:
		return m.Relationship()
	case visitsession.FieldContactNumber:
		return m.ContactNumber()
	case visitsession.FieldPurpose:
		return m.Purpose()
	case visitsession.FieldTimeIn:
		return m.TimeIn()
	case visitsession.FieldTimeOut:
		return m.TimeOut()
	case visitsession.FieldScanDate:
		return m.ScanDate()
	case visitsession.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VisitSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case visitsession.FieldVisitorName:
		return m.OldVisitorName(ctx)
	case visitsession.FieldVisitorKey:
		return m.OldVisitorKey(ctx)
	case visitsession.FieldPdlName:
		return m.OldPdlName(ctx)
	case visitsession.FieldCell:
		return m.OldCell(ctx)
	case visitsession.FieldRelationship:
		return m.OldRelationship(ctx)
	case visitsession.FieldContactNumber:
		return m.OldContactNumber(ctx)
	case visitsession.FieldPurpose:
		return m.OldPurpose(ctx)
	case visitsession.FieldTimeIn:
		return m.OldTimeIn(ctx)
	case visitsession.FieldTimeOut:
		return m.OldTimeOut(ctx)
	case visitsession.FieldScanDate:
		return m.OldScanDate(ctx)
	case visitsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown VisitSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VisitSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case visitsession.FieldVisitorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisitorName(v)
		return nil
	case visitsession.FieldVisitorKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisitorKey(v)
		return nil
	case visitsession.FieldPdlName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPdlName(v)
		return nil
	case visitsession.FieldCell:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCell(v)
		return nil
	case visitsession.FieldRelationship:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelationship(v)
		return nil
	case visitsession.FieldContactNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactNumber(v)
		return nil
	case visitsession.FieldPurpose:
		v, ok := value.(visitsession.Purpose)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case visitsession.FieldTimeIn:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeIn(v)
		return nil
	case visitsession.FieldTimeOut:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeOut(v)
		return nil
	case visitsession.FieldScanDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScanDate(v)
		return nil
	case visitsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown VisitSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VisitSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VisitSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VisitSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown VisitSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VisitSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(visitsession.FieldRelationship) {
		fields = append(fields, visitsession.FieldRelationship)
	}
	if m.FieldCleared(visitsession.FieldContactNumber) {
		fields = append(fields, visitsession.FieldContactNumber)
	}
	if m.FieldCleared(visitsession.FieldTimeOut) {
		fields = append(fields, visitsession.FieldTimeOut)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VisitSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VisitSessionMutation) ClearField(name string) error {
	switch name {
	case visitsession.FieldRelationship:
		m.ClearRelationship()
		return nil
	case visitsession.FieldContactNumber:
		m.ClearContactNumber()
		return nil
	case visitsession.FieldTimeOut:
		m.ClearTimeOut()
		return nil
	}
	return fmt.Errorf("unknown VisitSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VisitSessionMutation) ResetField(name string) error {
	switch name {
	case visitsession.FieldVisitorName:
		m.ResetVisitorName()
		return nil
	case visitsession.FieldVisitorKey:
		m.ResetVisitorKey()
		return nil
	case visitsession.FieldPdlName:
		m.ResetPdlName()
		return nil
	case visitsession.FieldCell:
		m.ResetCell()
		return nil
	case visitsession.FieldRelationship:
		m.ResetRelationship()
		return nil
	case visitsession.FieldContactNumber:
		m.ResetContactNumber()
		return nil
	case visitsession.FieldPurpose:
		m.ResetPurpose()
		return nil
	case visitsession.FieldTimeIn:
		m.ResetTimeIn()
		return nil
	case visitsession.FieldTimeOut:
		m.ResetTimeOut()
		return nil
	case visitsession.FieldScanDate:
		m.ResetScanDate()
		return nil
	case visitsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown VisitSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VisitSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VisitSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VisitSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VisitSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VisitSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VisitSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VisitSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown VisitSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VisitSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown VisitSession edge %s", name)
}
