// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
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

// PdlQuery is the builder for querying Pdl entities.
type PdlQuery struct {
	config
	ctx          *QueryContext
	order        []pdl.OrderOption
	inters       []Interceptor
	predicates   []predicate.Pdl
	withVisitors *RegisteredVisitorQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PdlQuery builder.
func (_q *PdlQuery) Where(ps ...predicate.Pdl) *PdlQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PdlQuery) Limit(limit int) *PdlQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PdlQuery) Offset(offset int) *PdlQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PdlQuery) Unique(unique bool) *PdlQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PdlQuery) Order(o ...pdl.OrderOption) *PdlQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryVisitors chains the current query on the "visitors" edge.
func (_q *PdlQuery) QueryVisitors() *RegisteredVisitorQuery {
	query := (&RegisteredVisitorClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(pdl.Table, pdl.FieldID, selector),
			sqlgraph.To(registeredvisitor.Table, registeredvisitor.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, pdl.VisitorsTable, pdl.VisitorsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Pdl entity from the query.
// Returns a *NotFoundError when no Pdl was found.
func (_q *PdlQuery) First(ctx context.Context) (*Pdl, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{pdl.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PdlQuery) FirstX(ctx context.Context) *Pdl {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Pdl ID from the query.
// Returns a *NotFoundError when no Pdl ID was found.
func (_q *PdlQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{pdl.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PdlQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Pdl entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Pdl entity is found.
// Returns a *NotFoundError when no Pdl entities are found.
func (_q *PdlQuery) Only(ctx context.Context) (*Pdl, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{pdl.Label}
	default:
		return nil, &NotSingularError{pdl.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PdlQuery) OnlyX(ctx context.Context) *Pdl {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Pdl ID in the query.
// Returns a *NotSingularError when more than one Pdl ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PdlQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{pdl.Label}
	default:
		err = &NotSingularError{pdl.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PdlQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Pdls.
func (_q *PdlQuery) All(ctx context.Context) ([]*Pdl, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Pdl, *PdlQuery]()
	return withInterceptors[[]*Pdl](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PdlQuery) AllX(ctx context.Context) []*Pdl {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Pdl IDs.
func (_q *PdlQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(pdl.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PdlQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PdlQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PdlQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PdlQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PdlQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *PdlQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PdlQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PdlQuery) Clone() *PdlQuery {
	if _q == nil {
		return nil
	}
	return &PdlQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]pdl.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.Pdl{}, _q.predicates...),
		withVisitors: _q.withVisitors.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithVisitors tells the query-builder to eager-load the nodes that are connected to
// the "visitors" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PdlQuery) WithVisitors(opts ...func(*RegisteredVisitorQuery)) *PdlQuery {
	query := (&RegisteredVisitorClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withVisitors = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Pdl.Query().
//		GroupBy(pdl.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *PdlQuery) GroupBy(field string, fields ...string) *PdlGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PdlGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = pdl.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.Pdl.Query().
//		Select(pdl.FieldName).
//		Scan(ctx, &v)
func (_q *PdlQuery) Select(fields ...string) *PdlSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PdlSelect{PdlQuery: _q}
	sbuild.label = pdl.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PdlSelect configured with the given aggregations.
func (_q *PdlQuery) Aggregate(fns ...AggregateFunc) *PdlSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PdlQuery) prepareQuery(ctx context.Context) error {
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
		if !pdl.ValidColumn(f) {
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

func (_q *PdlQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Pdl, error) {
	var (
		nodes       = []*Pdl{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withVisitors != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Pdl).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Pdl{config: _q.config}
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
	if query := _q.withVisitors; query != nil {
		if err := _q.loadVisitors(ctx, query, nodes,
			func(n *Pdl) { n.Edges.Visitors = []*RegisteredVisitor{} },
			func(n *Pdl, e *RegisteredVisitor) { n.Edges.Visitors = append(n.Edges.Visitors, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *PdlQuery) loadVisitors(ctx context.Context, query *RegisteredVisitorQuery, nodes []*Pdl, init func(*Pdl), assign func(*Pdl, *RegisteredVisitor)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Pdl)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.RegisteredVisitor(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(pdl.VisitorsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.pdl_visitors
		if fk == nil {
			return fmt.Errorf(`foreign-key "pdl_visitors" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "pdl_visitors" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *PdlQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *PdlQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(pdl.Table, pdl.Columns, sqlgraph.NewFieldSpec(pdl.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pdl.FieldID)
		for i := range fields {
			if fields[i] != pdl.FieldID {
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

func (_q *PdlQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(pdl.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = pdl.Columns
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

// PdlGroupBy is the group-by builder for Pdl entities.
type PdlGroupBy struct {
	selector
	build *PdlQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PdlGroupBy) Aggregate(fns ...AggregateFunc) *PdlGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PdlGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PdlQuery, *PdlGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PdlGroupBy) sqlScan(ctx context.Context, root *PdlQuery, v any) error {
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

// PdlSelect is the builder for selecting fields of Pdl entities.
type PdlSelect struct {
	*PdlQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PdlSelect) Aggregate(fns ...AggregateFunc) *PdlSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PdlSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PdlQuery, *PdlSelect](ctx, _s.PdlQuery, _s, _s.inters, v)
}

func (_s *PdlSelect) sqlScan(ctx context.Context, root *PdlQuery, v any) error {
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
