// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"visitlog/ent/migrate"

	"visitlog/ent/cell"
	"visitlog/ent/pdl"
	"visitlog/ent/registeredvisitor"
	"visitlog/ent/staffuser"
	"visitlog/ent/visitsession"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Cell is the client for interacting with the Cell builders.
	Cell *CellClient
	// Pdl is the client for interacting with the Pdl builders.
	Pdl *PdlClient
	// RegisteredVisitor is the client for interacting with the RegisteredVisitor builders.
	RegisteredVisitor *RegisteredVisitorClient
	// StaffUser is the client for interacting with the StaffUser builders.
	StaffUser *StaffUserClient
	// VisitSession is the client for interacting with the VisitSession builders.
	VisitSession *VisitSessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Cell = NewCellClient(c.config)
	c.Pdl = NewPdlClient(c.config)
	c.RegisteredVisitor = NewRegisteredVisitorClient(c.config)
	c.StaffUser = NewStaffUserClient(c.config)
	c.VisitSession = NewVisitSessionClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		Cell:              NewCellClient(cfg),
		Pdl:               NewPdlClient(cfg),
		RegisteredVisitor: NewRegisteredVisitorClient(cfg),
		StaffUser:         NewStaffUserClient(cfg),
		VisitSession:      NewVisitSessionClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		Cell:              NewCellClient(cfg),
		Pdl:               NewPdlClient(cfg),
		RegisteredVisitor: NewRegisteredVisitorClient(cfg),
		StaffUser:         NewStaffUserClient(cfg),
		VisitSession:      NewVisitSessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Cell.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.Cell.Use(hooks...)
	c.Pdl.Use(hooks...)
	c.RegisteredVisitor.Use(hooks...)
	c.StaffUser.Use(hooks...)
	c.VisitSession.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Cell.Intercept(interceptors...)
	c.Pdl.Intercept(interceptors...)
	c.RegisteredVisitor.Intercept(interceptors...)
	c.StaffUser.Intercept(interceptors...)
	c.VisitSession.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CellMutation:
		return c.Cell.mutate(ctx, m)
	case *PdlMutation:
		return c.Pdl.mutate(ctx, m)
	case *RegisteredVisitorMutation:
		return c.RegisteredVisitor.mutate(ctx, m)
	case *StaffUserMutation:
		return c.StaffUser.mutate(ctx, m)
	case *VisitSessionMutation:
		return c.VisitSession.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CellClient is a client for the Cell schema.
type CellClient struct {
	config
}

// NewCellClient returns a client for the Cell from the given config.
func NewCellClient(c config) *CellClient {
	return &CellClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cell.Hooks(f(g(h())))`.
func (c *CellClient) Use(hooks ...Hook) {
	c.hooks.Cell = append(c.hooks.Cell, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cell.Intercept(f(g(h())))`.
func (c *CellClient) Intercept(interceptors ...Interceptor) {
	c.inters.Cell = append(c.inters.Cell, interceptors...)
}

// Create returns a builder for creating a Cell entity.
func (c *CellClient) Create() *CellCreate {
	mutation := newCellMutation(c.config, OpCreate)
	return &CellCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Cell entities.
func (c *CellClient) CreateBulk(builders ...*CellCreate) *CellCreateBulk {
	return &CellCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CellClient) MapCreateBulk(slice any, setFunc func(*CellCreate, int)) *CellCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CellCreateBulk{err: fmt.Errorf("calling to CellClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CellCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CellCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Cell.
func (c *CellClient) Update() *CellUpdate {
	mutation := newCellMutation(c.config, OpUpdate)
	return &CellUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CellClient) UpdateOne(_m *Cell) *CellUpdateOne {
	mutation := newCellMutation(c.config, OpUpdateOne, withCell(_m))
	return &CellUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CellClient) UpdateOneID(id uuid.UUID) *CellUpdateOne {
	mutation := newCellMutation(c.config, OpUpdateOne, withCellID(id))
	return &CellUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Cell.
func (c *CellClient) Delete() *CellDelete {
	mutation := newCellMutation(c.config, OpDelete)
	return &CellDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CellClient) DeleteOne(_m *Cell) *CellDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CellClient) DeleteOneID(id uuid.UUID) *CellDeleteOne {
	builder := c.Delete().Where(cell.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CellDeleteOne{builder}
}

// Query returns a query builder for Cell.
func (c *CellClient) Query() *CellQuery {
	return &CellQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCell},
		inters: c.Interceptors(),
	}
}

// Get returns a Cell entity by its id.
func (c *CellClient) Get(ctx context.Context, id uuid.UUID) (*Cell, error) {
	return c.Query().Where(cell.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CellClient) GetX(ctx context.Context, id uuid.UUID) *Cell {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CellClient) Hooks() []Hook {
	return c.hooks.Cell
}

// Interceptors returns the client interceptors.
func (c *CellClient) Interceptors() []Interceptor {
	return c.inters.Cell
}

func (c *CellClient) mutate(ctx context.Context, m *CellMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CellCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CellUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CellUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CellDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Cell mutation op: %q", m.Op())
	}
}

// PdlClient is a client for the Pdl schema.
type PdlClient struct {
	config
}

// NewPdlClient returns a client for the Pdl from the given config.
func NewPdlClient(c config) *PdlClient {
	return &PdlClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pdl.Hooks(f(g(h())))`.
func (c *PdlClient) Use(hooks ...Hook) {
	c.hooks.Pdl = append(c.hooks.Pdl, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pdl.Intercept(f(g(h())))`.
func (c *PdlClient) Intercept(interceptors ...Interceptor) {
	c.inters.Pdl = append(c.inters.Pdl, interceptors...)
}

// Create returns a builder for creating a Pdl entity.
func (c *PdlClient) Create() *PdlCreate {
	mutation := newPdlMutation(c.config, OpCreate)
	return &PdlCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Pdl entities.
func (c *PdlClient) CreateBulk(builders ...*PdlCreate) *PdlCreateBulk {
	return &PdlCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PdlClient) MapCreateBulk(slice any, setFunc func(*PdlCreate, int)) *PdlCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PdlCreateBulk{err: fmt.Errorf("calling to PdlClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PdlCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PdlCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Pdl.
func (c *PdlClient) Update() *PdlUpdate {
	mutation := newPdlMutation(c.config, OpUpdate)
	return &PdlUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PdlClient) UpdateOne(_m *Pdl) *PdlUpdateOne {
	mutation := newPdlMutation(c.config, OpUpdateOne, withPdl(_m))
	return &PdlUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PdlClient) UpdateOneID(id uuid.UUID) *PdlUpdateOne {
	mutation := newPdlMutation(c.config, OpUpdateOne, withPdlID(id))
	return &PdlUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Pdl.
func (c *PdlClient) Delete() *PdlDelete {
	mutation := newPdlMutation(c.config, OpDelete)
	return &PdlDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PdlClient) DeleteOne(_m *Pdl) *PdlDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PdlClient) DeleteOneID(id uuid.UUID) *PdlDeleteOne {
	builder := c.Delete().Where(pdl.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PdlDeleteOne{builder}
}

// Query returns a query builder for Pdl.
func (c *PdlClient) Query() *PdlQuery {
	return &PdlQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePdl},
		inters: c.Interceptors(),
	}
}

// Get returns a Pdl entity by its id.
func (c *PdlClient) Get(ctx context.Context, id uuid.UUID) (*Pdl, error) {
	return c.Query().Where(pdl.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PdlClient) GetX(ctx context.Context, id uuid.UUID) *Pdl {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryVisitors queries the visitors edge of a Pdl.
func (c *PdlClient) QueryVisitors(_m *Pdl) *RegisteredVisitorQuery {
	query := (&RegisteredVisitorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pdl.Table, pdl.FieldID, id),
			sqlgraph.To(registeredvisitor.Table, registeredvisitor.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, pdl.VisitorsTable, pdl.VisitorsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PdlClient) Hooks() []Hook {
	return c.hooks.Pdl
}

// Interceptors returns the client interceptors.
func (c *PdlClient) Interceptors() []Interceptor {
	return c.inters.Pdl
}

func (c *PdlClient) mutate(ctx context.Context, m *PdlMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PdlCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PdlUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PdlUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PdlDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Pdl mutation op: %q", m.Op())
	}
}

// RegisteredVisitorClient is a client for the RegisteredVisitor schema.
type RegisteredVisitorClient struct {
	config
}

// NewRegisteredVisitorClient returns a client for the RegisteredVisitor from the given config.
func NewRegisteredVisitorClient(c config) *RegisteredVisitorClient {
	return &RegisteredVisitorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `registeredvisitor.Hooks(f(g(h())))`.
func (c *RegisteredVisitorClient) Use(hooks ...Hook) {
	c.hooks.RegisteredVisitor = append(c.hooks.RegisteredVisitor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `registeredvisitor.Intercept(f(g(h())))`.
func (c *RegisteredVisitorClient) Intercept(interceptors ...Interceptor) {
	c.inters.RegisteredVisitor = append(c.inters.RegisteredVisitor, interceptors...)
}

// Create returns a builder for creating a RegisteredVisitor entity.
func (c *RegisteredVisitorClient) Create() *RegisteredVisitorCreate {
	mutation := newRegisteredVisitorMutation(c.config, OpCreate)
	return &RegisteredVisitorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RegisteredVisitor entities.
func (c *RegisteredVisitorClient) CreateBulk(builders ...*RegisteredVisitorCreate) *RegisteredVisitorCreateBulk {
	return &RegisteredVisitorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RegisteredVisitorClient) MapCreateBulk(slice any, setFunc func(*RegisteredVisitorCreate, int)) *RegisteredVisitorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RegisteredVisitorCreateBulk{err: fmt.Errorf("calling to RegisteredVisitorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RegisteredVisitorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RegisteredVisitorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RegisteredVisitor.
func (c *RegisteredVisitorClient) Update() *RegisteredVisitorUpdate {
	mutation := newRegisteredVisitorMutation(c.config, OpUpdate)
	return &RegisteredVisitorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RegisteredVisitorClient) UpdateOne(_m *RegisteredVisitor) *RegisteredVisitorUpdateOne {
	mutation := newRegisteredVisitorMutation(c.config, OpUpdateOne, withRegisteredVisitor(_m))
	return &RegisteredVisitorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RegisteredVisitorClient) UpdateOneID(id uuid.UUID) *RegisteredVisitorUpdateOne {
	mutation := newRegisteredVisitorMutation(c.config, OpUpdateOne, withRegisteredVisitorID(id))
	return &RegisteredVisitorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RegisteredVisitor.
func (c *RegisteredVisitorClient) Delete() *RegisteredVisitorDelete {
	mutation := newRegisteredVisitorMutation(c.config, OpDelete)
	return &RegisteredVisitorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RegisteredVisitorClient) DeleteOne(_m *RegisteredVisitor) *RegisteredVisitorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RegisteredVisitorClient) DeleteOneID(id uuid.UUID) *RegisteredVisitorDeleteOne {
	builder := c.Delete().Where(registeredvisitor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RegisteredVisitorDeleteOne{builder}
}

// Query returns a query builder for RegisteredVisitor.
func (c *RegisteredVisitorClient) Query() *RegisteredVisitorQuery {
	return &RegisteredVisitorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRegisteredVisitor},
		inters: c.Interceptors(),
	}
}

// Get returns a RegisteredVisitor entity by its id.
func (c *RegisteredVisitorClient) Get(ctx context.Context, id uuid.UUID) (*RegisteredVisitor, error) {
	return c.Query().Where(registeredvisitor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RegisteredVisitorClient) GetX(ctx context.Context, id uuid.UUID) *RegisteredVisitor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPdl queries the pdl edge of a RegisteredVisitor.
func (c *RegisteredVisitorClient) QueryPdl(_m *RegisteredVisitor) *PdlQuery {
	query := (&PdlClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(registeredvisitor.Table, registeredvisitor.FieldID, id),
			sqlgraph.To(pdl.Table, pdl.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, registeredvisitor.PdlTable, registeredvisitor.PdlColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RegisteredVisitorClient) Hooks() []Hook {
	return c.hooks.RegisteredVisitor
}

// Interceptors returns the client interceptors.
func (c *RegisteredVisitorClient) Interceptors() []Interceptor {
	return c.inters.RegisteredVisitor
}

func (c *RegisteredVisitorClient) mutate(ctx context.Context, m *RegisteredVisitorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RegisteredVisitorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RegisteredVisitorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RegisteredVisitorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RegisteredVisitorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RegisteredVisitor mutation op: %q", m.Op())
	}
}

// StaffUserClient is a client for the StaffUser schema.
type StaffUserClient struct {
	config
}

// NewStaffUserClient returns a client for the StaffUser from the given config.
func NewStaffUserClient(c config) *StaffUserClient {
	return &StaffUserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `staffuser.Hooks(f(g(h())))`.
func (c *StaffUserClient) Use(hooks ...Hook) {
	c.hooks.StaffUser = append(c.hooks.StaffUser, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `staffuser.Intercept(f(g(h())))`.
func (c *StaffUserClient) Intercept(interceptors ...Interceptor) {
	c.inters.StaffUser = append(c.inters.StaffUser, interceptors...)
}

// Create returns a builder for creating a StaffUser entity.
func (c *StaffUserClient) Create() *StaffUserCreate {
	mutation := newStaffUserMutation(c.config, OpCreate)
	return &StaffUserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StaffUser entities.
func (c *StaffUserClient) CreateBulk(builders ...*StaffUserCreate) *StaffUserCreateBulk {
	return &StaffUserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StaffUserClient) MapCreateBulk(slice any, setFunc func(*StaffUserCreate, int)) *StaffUserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StaffUserCreateBulk{err: fmt.Errorf("calling to StaffUserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StaffUserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StaffUserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StaffUser.
func (c *StaffUserClient) Update() *StaffUserUpdate {
	mutation := newStaffUserMutation(c.config, OpUpdate)
	return &StaffUserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StaffUserClient) UpdateOne(_m *StaffUser) *StaffUserUpdateOne {
	mutation := newStaffUserMutation(c.config, OpUpdateOne, withStaffUser(_m))
	return &StaffUserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StaffUserClient) UpdateOneID(id uuid.UUID) *StaffUserUpdateOne {
	mutation := newStaffUserMutation(c.config, OpUpdateOne, withStaffUserID(id))
	return &StaffUserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StaffUser.
func (c *StaffUserClient) Delete() *StaffUserDelete {
	mutation := newStaffUserMutation(c.config, OpDelete)
	return &StaffUserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StaffUserClient) DeleteOne(_m *StaffUser) *StaffUserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StaffUserClient) DeleteOneID(id uuid.UUID) *StaffUserDeleteOne {
	builder := c.Delete().Where(staffuser.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StaffUserDeleteOne{builder}
}

// Query returns a query builder for StaffUser.
func (c *StaffUserClient) Query() *StaffUserQuery {
	return &StaffUserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStaffUser},
		inters: c.Interceptors(),
	}
}

// Get returns a StaffUser entity by its id.
func (c *StaffUserClient) Get(ctx context.Context, id uuid.UUID) (*StaffUser, error) {
	return c.Query().Where(staffuser.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StaffUserClient) GetX(ctx context.Context, id uuid.UUID) *StaffUser {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StaffUserClient) Hooks() []Hook {
	return c.hooks.StaffUser
}

// Interceptors returns the client interceptors.
func (c *StaffUserClient) Interceptors() []Interceptor {
	return c.inters.StaffUser
}

func (c *StaffUserClient) mutate(ctx context.Context, m *StaffUserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StaffUserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StaffUserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StaffUserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StaffUserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StaffUser mutation op: %q", m.Op())
	}
}

// VisitSessionClient is a client for the VisitSession schema.
type VisitSessionClient struct {
	config
}

// NewVisitSessionClient returns a client for the VisitSession from the given config.
func NewVisitSessionClient(c config) *VisitSessionClient {
	return &VisitSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `visitsession.Hooks(f(g(h())))`.
func (c *VisitSessionClient) Use(hooks ...Hook) {
	c.hooks.VisitSession = append(c.hooks.VisitSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `visitsession.Intercept(f(g(h())))`.
func (c *VisitSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.VisitSession = append(c.inters.VisitSession, interceptors...)
}

// Create returns a builder for creating a VisitSession entity.
func (c *VisitSessionClient) Create() *VisitSessionCreate {
	mutation := newVisitSessionMutation(c.config, OpCreate)
	return &VisitSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VisitSession entities.
func (c *VisitSessionClient) CreateBulk(builders ...*VisitSessionCreate) *VisitSessionCreateBulk {
	return &VisitSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VisitSessionClient) MapCreateBulk(slice any, setFunc func(*VisitSessionCreate, int)) *VisitSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VisitSessionCreateBulk{err: fmt.Errorf("calling to VisitSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VisitSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VisitSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VisitSession.
func (c *VisitSessionClient) Update() *VisitSessionUpdate {
	mutation := newVisitSessionMutation(c.config, OpUpdate)
	return &VisitSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VisitSessionClient) UpdateOne(_m *VisitSession) *VisitSessionUpdateOne {
	mutation := newVisitSessionMutation(c.config, OpUpdateOne, withVisitSession(_m))
	return &VisitSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VisitSessionClient) UpdateOneID(id uuid.UUID) *VisitSessionUpdateOne {
	mutation := newVisitSessionMutation(c.config, OpUpdateOne, withVisitSessionID(id))
	return &VisitSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VisitSession.
func (c *VisitSessionClient) Delete() *VisitSessionDelete {
	mutation := newVisitSessionMutation(c.config, OpDelete)
	return &VisitSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VisitSessionClient) DeleteOne(_m *VisitSession) *VisitSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VisitSessionClient) DeleteOneID(id uuid.UUID) *VisitSessionDeleteOne {
	builder := c.Delete().Where(visitsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VisitSessionDeleteOne{builder}
}

// Query returns a query builder for VisitSession.
func (c *VisitSessionClient) Query() *VisitSessionQuery {
	return &VisitSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVisitSession},
		inters: c.Interceptors(),
	}
}

// Get returns a VisitSession entity by its id.
func (c *VisitSessionClient) Get(ctx context.Context, id uuid.UUID) (*VisitSession, error) {
	return c.Query().Where(visitsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VisitSessionClient) GetX(ctx context.Context, id uuid.UUID) *VisitSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *VisitSessionClient) Hooks() []Hook {
	return c.hooks.VisitSession
}

// Interceptors returns the client interceptors.
func (c *VisitSessionClient) Interceptors() []Interceptor {
	return c.inters.VisitSession
}

func (c *VisitSessionClient) mutate(ctx context.Context, m *VisitSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VisitSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VisitSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VisitSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VisitSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VisitSession mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Cell, Pdl, RegisteredVisitor, StaffUser, VisitSession []ent.Hook
	}
	inters struct {
		Cell, Pdl, RegisteredVisitor, StaffUser, VisitSession []ent.Interceptor
	}
)
