// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/kamil-urbanek/docpipe/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/kamil-urbanek/docpipe/gen/ent/caseform"
	"github.com/kamil-urbanek/docpipe/gen/ent/document"
	"github.com/kamil-urbanek/docpipe/gen/ent/processinglog"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CaseForm is the client for interacting with the CaseForm builders.
	CaseForm *CaseFormClient
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// ProcessingLog is the client for interacting with the ProcessingLog builders.
	ProcessingLog *ProcessingLogClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CaseForm = NewCaseFormClient(c.config)
	c.Document = NewDocumentClient(c.config)
	c.ProcessingLog = NewProcessingLogClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		CaseForm:      NewCaseFormClient(cfg),
		Document:      NewDocumentClient(cfg),
		ProcessingLog: NewProcessingLogClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		CaseForm:      NewCaseFormClient(cfg),
		Document:      NewDocumentClient(cfg),
		ProcessingLog: NewProcessingLogClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CaseForm.
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
	c.CaseForm.Use(hooks...)
	c.Document.Use(hooks...)
	c.ProcessingLog.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CaseForm.Intercept(interceptors...)
	c.Document.Intercept(interceptors...)
	c.ProcessingLog.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CaseFormMutation:
		return c.CaseForm.mutate(ctx, m)
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *ProcessingLogMutation:
		return c.ProcessingLog.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CaseFormClient is a client for the CaseForm schema.
type CaseFormClient struct {
	config
}

// NewCaseFormClient returns a client for the CaseForm from the given config.
func NewCaseFormClient(c config) *CaseFormClient {
	return &CaseFormClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `caseform.Hooks(f(g(h())))`.
func (c *CaseFormClient) Use(hooks ...Hook) {
	c.hooks.CaseForm = append(c.hooks.CaseForm, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `caseform.Intercept(f(g(h())))`.
func (c *CaseFormClient) Intercept(interceptors ...Interceptor) {
	c.inters.CaseForm = append(c.inters.CaseForm, interceptors...)
}

// Create returns a builder for creating a CaseForm entity.
func (c *CaseFormClient) Create() *CaseFormCreate {
	mutation := newCaseFormMutation(c.config, OpCreate)
	return &CaseFormCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CaseForm entities.
func (c *CaseFormClient) CreateBulk(builders ...*CaseFormCreate) *CaseFormCreateBulk {
	return &CaseFormCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CaseFormClient) MapCreateBulk(slice any, setFunc func(*CaseFormCreate, int)) *CaseFormCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CaseFormCreateBulk{err: fmt.Errorf("calling to CaseFormClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CaseFormCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CaseFormCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CaseForm.
func (c *CaseFormClient) Update() *CaseFormUpdate {
	mutation := newCaseFormMutation(c.config, OpUpdate)
	return &CaseFormUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CaseFormClient) UpdateOne(_m *CaseForm) *CaseFormUpdateOne {
	mutation := newCaseFormMutation(c.config, OpUpdateOne, withCaseForm(_m))
	return &CaseFormUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CaseFormClient) UpdateOneID(id uuid.UUID) *CaseFormUpdateOne {
	mutation := newCaseFormMutation(c.config, OpUpdateOne, withCaseFormID(id))
	return &CaseFormUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CaseForm.
func (c *CaseFormClient) Delete() *CaseFormDelete {
	mutation := newCaseFormMutation(c.config, OpDelete)
	return &CaseFormDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CaseFormClient) DeleteOne(_m *CaseForm) *CaseFormDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CaseFormClient) DeleteOneID(id uuid.UUID) *CaseFormDeleteOne {
	builder := c.Delete().Where(caseform.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CaseFormDeleteOne{builder}
}

// Query returns a query builder for CaseForm.
func (c *CaseFormClient) Query() *CaseFormQuery {
	return &CaseFormQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCaseForm},
		inters: c.Interceptors(),
	}
}

// Get returns a CaseForm entity by its id.
func (c *CaseFormClient) Get(ctx context.Context, id uuid.UUID) (*CaseForm, error) {
	return c.Query().Where(caseform.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CaseFormClient) GetX(ctx context.Context, id uuid.UUID) *CaseForm {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CaseFormClient) Hooks() []Hook {
	return c.hooks.CaseForm
}

// Interceptors returns the client interceptors.
func (c *CaseFormClient) Interceptors() []Interceptor {
	return c.inters.CaseForm
}

func (c *CaseFormClient) mutate(ctx context.Context, m *CaseFormMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CaseFormCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CaseFormUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CaseFormUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CaseFormDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CaseForm mutation op: %q", m.Op())
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id uuid.UUID) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id uuid.UUID) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id uuid.UUID) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAttempts queries the attempts edge of a Document.
func (c *DocumentClient) QueryAttempts(_m *Document) *ProcessingLogQuery {
	query := (&ProcessingLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(processinglog.Table, processinglog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.AttemptsTable, document.AttemptsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// ProcessingLogClient is a client for the ProcessingLog schema.
type ProcessingLogClient struct {
	config
}

// NewProcessingLogClient returns a client for the ProcessingLog from the given config.
func NewProcessingLogClient(c config) *ProcessingLogClient {
	return &ProcessingLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processinglog.Hooks(f(g(h())))`.
func (c *ProcessingLogClient) Use(hooks ...Hook) {
	c.hooks.ProcessingLog = append(c.hooks.ProcessingLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processinglog.Intercept(f(g(h())))`.
func (c *ProcessingLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessingLog = append(c.inters.ProcessingLog, interceptors...)
}

// Create returns a builder for creating a ProcessingLog entity.
func (c *ProcessingLogClient) Create() *ProcessingLogCreate {
	mutation := newProcessingLogMutation(c.config, OpCreate)
	return &ProcessingLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessingLog entities.
func (c *ProcessingLogClient) CreateBulk(builders ...*ProcessingLogCreate) *ProcessingLogCreateBulk {
	return &ProcessingLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessingLogClient) MapCreateBulk(slice any, setFunc func(*ProcessingLogCreate, int)) *ProcessingLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessingLogCreateBulk{err: fmt.Errorf("calling to ProcessingLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessingLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessingLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessingLog.
func (c *ProcessingLogClient) Update() *ProcessingLogUpdate {
	mutation := newProcessingLogMutation(c.config, OpUpdate)
	return &ProcessingLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessingLogClient) UpdateOne(_m *ProcessingLog) *ProcessingLogUpdateOne {
	mutation := newProcessingLogMutation(c.config, OpUpdateOne, withProcessingLog(_m))
	return &ProcessingLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessingLogClient) UpdateOneID(id uuid.UUID) *ProcessingLogUpdateOne {
	mutation := newProcessingLogMutation(c.config, OpUpdateOne, withProcessingLogID(id))
	return &ProcessingLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessingLog.
func (c *ProcessingLogClient) Delete() *ProcessingLogDelete {
	mutation := newProcessingLogMutation(c.config, OpDelete)
	return &ProcessingLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessingLogClient) DeleteOne(_m *ProcessingLog) *ProcessingLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessingLogClient) DeleteOneID(id uuid.UUID) *ProcessingLogDeleteOne {
	builder := c.Delete().Where(processinglog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessingLogDeleteOne{builder}
}

// Query returns a query builder for ProcessingLog.
func (c *ProcessingLogClient) Query() *ProcessingLogQuery {
	return &ProcessingLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessingLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessingLog entity by its id.
func (c *ProcessingLogClient) Get(ctx context.Context, id uuid.UUID) (*ProcessingLog, error) {
	return c.Query().Where(processinglog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessingLogClient) GetX(ctx context.Context, id uuid.UUID) *ProcessingLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a ProcessingLog.
func (c *ProcessingLogClient) QueryDocument(_m *ProcessingLog) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(processinglog.Table, processinglog.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, processinglog.DocumentTable, processinglog.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProcessingLogClient) Hooks() []Hook {
	return c.hooks.ProcessingLog
}

// Interceptors returns the client interceptors.
func (c *ProcessingLogClient) Interceptors() []Interceptor {
	return c.inters.ProcessingLog
}

func (c *ProcessingLogClient) mutate(ctx context.Context, m *ProcessingLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessingLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessingLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessingLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessingLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessingLog mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CaseForm, Document, ProcessingLog []ent.Hook
	}
	inters struct {
		CaseForm, Document, ProcessingLog []ent.Interceptor
	}
)
