// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"
	"visitlog/ent/pdl"
	"visitlog/ent/predicate"
	"visitlog/ent/registeredvisitor"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// RegisteredVisitorQuery is the builder for querying RegisteredVisitor entities.
type RegisteredVisitorQuery struct {
	config
	ctx        *QueryContext
	order      []registeredvisitor.OrderOption
	inters     []Interceptor
	predicates []predicate.RegisteredVisitor
	withPdl    *PdlQuery
	withFKs    bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the RegisteredVisitorQuery builder.
func (_q *RegisteredVisitorQuery) Where(ps ...predicate.RegisteredVisitor) *RegisteredVisitorQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *RegisteredVisitorQuery) Limit(limit int) *RegisteredVisitorQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *RegisteredVisitorQuery) Offset(offset int) *RegisteredVisitorQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *RegisteredVisitorQuery) Unique(unique bool) *RegisteredVisitorQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *RegisteredVisitorQuery) Order(o ...registeredvisitor.OrderOption) *RegisteredVisitorQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryPdl chains the current query on the "pdl" edge.
func (_q *RegisteredVisitorQuery) QueryPdl() *PdlQuery {
	query := (&PdlClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(registeredvisitor.Table, registeredvisitor.FieldID, selector),
			sqlgraph.To(pdl.Table, pdl.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, registeredvisitor.PdlTable, registeredvisitor.PdlColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first RegisteredVisitor entity from the query.
// Returns a *NotFoundError when no RegisteredVisitor was found.
func (_q *RegisteredVisitorQuery) First(ctx context.Context) (*RegisteredVisitor, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{registeredvisitor.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *RegisteredVisitorQuery) FirstX(ctx context.Context) *RegisteredVisitor {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first RegisteredVisitor ID from the query.
// Returns a *NotFoundError when no RegisteredVisitor ID was found.
func (_q *RegisteredVisitorQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{registeredvisitor.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *RegisteredVisitorQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single RegisteredVisitor entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one RegisteredVisitor entity is found.
// Returns a *NotFoundError when no RegisteredVisitor entities are found.
func (_q *RegisteredVisitorQuery) Only(ctx context.Context) (*RegisteredVisitor, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{registeredvisitor.Label}
	default:
		return nil, &NotSingularError{registeredvisitor.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *RegisteredVisitorQuery) OnlyX(ctx context.Context) *RegisteredVisitor {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only RegisteredVisitor ID in the query.
// Returns a *NotSingularError when more than one RegisteredVisitor ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *RegisteredVisitorQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{registeredvisitor.Label}
	default:
		err = &NotSingularError{registeredvisitor.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *RegisteredVisitorQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of RegisteredVisitors.
func (_q *RegisteredVisitorQuery) All(ctx context.Context) ([]*RegisteredVisitor, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*RegisteredVisitor, *RegisteredVisitorQuery]()
	return withInterceptors[[]*RegisteredVisitor](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *RegisteredVisitorQuery) AllX(ctx context.Context) []*RegisteredVisitor {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of RegisteredVisitor IDs.
func (_q *RegisteredVisitorQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(registeredvisitor.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *RegisteredVisitorQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *RegisteredVisitorQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*RegisteredVisitorQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *RegisteredVisitorQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *RegisteredVisitorQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *RegisteredVisitorQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the RegisteredVisitorQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *RegisteredVisitorQuery) Clone() *RegisteredVisitorQuery {
	if _q == nil {
		return nil
	}
	return &RegisteredVisitorQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]registeredvisitor.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.RegisteredVisitor{}, _q.predicates...),
		withPdl:    _q.withPdl.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithPdl tells the query-builder to eager-load the nodes that are connected to
// the "pdl" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RegisteredVisitorQuery) WithPdl(opts ...func(*PdlQuery)) *RegisteredVisitorQuery {
	query := (&PdlClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPdl = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		VisitorID string `json:"visitor_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.RegisteredVisitor.Query().
//		GroupBy(registeredvisitor.FieldVisitorID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *RegisteredVisitorQuery) GroupBy(field string, fields ...string) *RegisteredVisitorGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &RegisteredVisitorGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = registeredvisitor.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		VisitorID string `json:"visitor_id,omitempty"`
//	}
//
//	client.RegisteredVisitor.Query().
//		Select(registeredvisitor.FieldVisitorID).
//		Scan(ctx, &v)
func (_q *RegisteredVisitorQuery) Select(fields ...string) *RegisteredVisitorSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &RegisteredVisitorSelect{RegisteredVisitorQuery: _q}
	sbuild.label = registeredvisitor.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a RegisteredVisitorSelect configured with the given aggregations.
func (_q *RegisteredVisitorQuery) Aggregate(fns ...AggregateFunc) *RegisteredVisitorSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *RegisteredVisitorQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !registeredvisitor.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *RegisteredVisitorQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*RegisteredVisitor, error) {
	var (
		nodes       = []*RegisteredVisitor{}
		withFKs     = _q.withFKs
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withPdl != nil,
		}
	)
	if _q.withPdl != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, registeredvisitor.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*RegisteredVisitor).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &RegisteredVisitor{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withPdl; query != nil {
		if err := _q.loadPdl(ctx, query, nodes, nil,
			func(n *RegisteredVisitor, e *Pdl) { n.Edges.Pdl = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *RegisteredVisitorQuery) loadPdl(ctx context.Context, query *PdlQuery, nodes []*RegisteredVisitor, init func(*RegisteredVisitor), assign func(*RegisteredVisitor, *Pdl)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*RegisteredVisitor)
	for i := range nodes {
		if nodes[i].pdl_visitors == nil {
			continue
		}
		fk := *nodes[i].pdl_visitors
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(pdl.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "pdl_visitors" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *RegisteredVisitorQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *RegisteredVisitorQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(registeredvisitor.Table, registeredvisitor.Columns, sqlgraph.NewFieldSpec(registeredvisitor.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, registeredvisitor.FieldID)
		for i := range fields {
			if fields[i] != registeredvisitor.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *RegisteredVisitorQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(registeredvisitor.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = registeredvisitor.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// RegisteredVisitorGroupBy is the group-by builder for RegisteredVisitor entities.
type RegisteredVisitorGroupBy struct {
	selector
	build *RegisteredVisitorQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *RegisteredVisitorGroupBy) Aggregate(fns ...AggregateFunc) *RegisteredVisitorGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *RegisteredVisitorGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RegisteredVisitorQuery, *RegisteredVisitorGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *RegisteredVisitorGroupBy) sqlScan(ctx context.Context, root *RegisteredVisitorQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// RegisteredVisitorSelect is the builder for selecting fields of RegisteredVisitor entities.
type RegisteredVisitorSelect struct {
	*RegisteredVisitorQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *RegisteredVisitorSelect) Aggregate(fns ...AggregateFunc) *RegisteredVisitorSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *RegisteredVisitorSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RegisteredVisitorQuery, *RegisteredVisitorSelect](ctx, _s.RegisteredVisitorQuery, _s, _s.inters, v)
}

func (_s *RegisteredVisitorSelect) sqlScan(ctx context.Context, root *RegisteredVisitorQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
