// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/examkit/proctor/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/examkit/proctor/ent/problemspec"
	"github.com/examkit/proctor/ent/promptevaluation"
	"github.com/examkit/proctor/ent/promptmessage"
	"github.com/examkit/proctor/ent/promptsession"
	"github.com/examkit/proctor/ent/score"
	"github.com/examkit/proctor/ent/submission"
	"github.com/examkit/proctor/ent/submissionrun"

	stdsql "database/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ProblemSpec is the client for interacting with the ProblemSpec builders.
	ProblemSpec *ProblemSpecClient
	// PromptEvaluation is the client for interacting with the PromptEvaluation builders.
	PromptEvaluation *PromptEvaluationClient
	// PromptMessage is the client for interacting with the PromptMessage builders.
	PromptMessage *PromptMessageClient
	// PromptSession is the client for interacting with the PromptSession builders.
	PromptSession *PromptSessionClient
	// Score is the client for interacting with the Score builders.
	Score *ScoreClient
	// Submission is the client for interacting with the Submission builders.
	Submission *SubmissionClient
	// SubmissionRun is the client for interacting with the SubmissionRun builders.
	SubmissionRun *SubmissionRunClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ProblemSpec = NewProblemSpecClient(c.config)
	c.PromptEvaluation = NewPromptEvaluationClient(c.config)
	c.PromptMessage = NewPromptMessageClient(c.config)
	c.PromptSession = NewPromptSessionClient(c.config)
	c.Score = NewScoreClient(c.config)
	c.Submission = NewSubmissionClient(c.config)
	c.SubmissionRun = NewSubmissionRunClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		ProblemSpec:      NewProblemSpecClient(cfg),
		PromptEvaluation: NewPromptEvaluationClient(cfg),
		PromptMessage:    NewPromptMessageClient(cfg),
		PromptSession:    NewPromptSessionClient(cfg),
		Score:            NewScoreClient(cfg),
		Submission:       NewSubmissionClient(cfg),
		SubmissionRun:    NewSubmissionRunClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		ProblemSpec:      NewProblemSpecClient(cfg),
		PromptEvaluation: NewPromptEvaluationClient(cfg),
		PromptMessage:    NewPromptMessageClient(cfg),
		PromptSession:    NewPromptSessionClient(cfg),
		Score:            NewScoreClient(cfg),
		Submission:       NewSubmissionClient(cfg),
		SubmissionRun:    NewSubmissionRunClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ProblemSpec.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.ProblemSpec, c.PromptEvaluation, c.PromptMessage, c.PromptSession, c.Score,
		c.Submission, c.SubmissionRun,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ProblemSpec, c.PromptEvaluation, c.PromptMessage, c.PromptSession, c.Score,
		c.Submission, c.SubmissionRun,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ProblemSpecMutation:
		return c.ProblemSpec.mutate(ctx, m)
	case *PromptEvaluationMutation:
		return c.PromptEvaluation.mutate(ctx, m)
	case *PromptMessageMutation:
		return c.PromptMessage.mutate(ctx, m)
	case *PromptSessionMutation:
		return c.PromptSession.mutate(ctx, m)
	case *ScoreMutation:
		return c.Score.mutate(ctx, m)
	case *SubmissionMutation:
		return c.Submission.mutate(ctx, m)
	case *SubmissionRunMutation:
		return c.SubmissionRun.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ProblemSpecClient is a client for the ProblemSpec schema.
type ProblemSpecClient struct {
	config
}

// NewProblemSpecClient returns a client for the ProblemSpec from the given config.
func NewProblemSpecClient(c config) *ProblemSpecClient {
	return &ProblemSpecClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `problemspec.Hooks(f(g(h())))`.
func (c *ProblemSpecClient) Use(hooks ...Hook) {
	c.hooks.ProblemSpec = append(c.hooks.ProblemSpec, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `problemspec.Intercept(f(g(h())))`.
func (c *ProblemSpecClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProblemSpec = append(c.inters.ProblemSpec, interceptors...)
}

// Create returns a builder for creating a ProblemSpec entity.
func (c *ProblemSpecClient) Create() *ProblemSpecCreate {
	mutation := newProblemSpecMutation(c.config, OpCreate)
	return &ProblemSpecCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProblemSpec entities.
func (c *ProblemSpecClient) CreateBulk(builders ...*ProblemSpecCreate) *ProblemSpecCreateBulk {
	return &ProblemSpecCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProblemSpecClient) MapCreateBulk(slice any, setFunc func(*ProblemSpecCreate, int)) *ProblemSpecCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProblemSpecCreateBulk{err: fmt.Errorf("calling to ProblemSpecClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProblemSpecCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProblemSpecCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProblemSpec.
func (c *ProblemSpecClient) Update() *ProblemSpecUpdate {
	mutation := newProblemSpecMutation(c.config, OpUpdate)
	return &ProblemSpecUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProblemSpecClient) UpdateOne(_m *ProblemSpec) *ProblemSpecUpdateOne {
	mutation := newProblemSpecMutation(c.config, OpUpdateOne, withProblemSpec(_m))
	return &ProblemSpecUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProblemSpecClient) UpdateOneID(id int) *ProblemSpecUpdateOne {
	mutation := newProblemSpecMutation(c.config, OpUpdateOne, withProblemSpecID(id))
	return &ProblemSpecUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProblemSpec.
func (c *ProblemSpecClient) Delete() *ProblemSpecDelete {
	mutation := newProblemSpecMutation(c.config, OpDelete)
	return &ProblemSpecDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProblemSpecClient) DeleteOne(_m *ProblemSpec) *ProblemSpecDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProblemSpecClient) DeleteOneID(id int) *ProblemSpecDeleteOne {
	builder := c.Delete().Where(problemspec.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProblemSpecDeleteOne{builder}
}

// Query returns a query builder for ProblemSpec.
func (c *ProblemSpecClient) Query() *ProblemSpecQuery {
	return &ProblemSpecQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProblemSpec},
		inters: c.Interceptors(),
	}
}

// Get returns a ProblemSpec entity by its id.
func (c *ProblemSpecClient) Get(ctx context.Context, id int) (*ProblemSpec, error) {
	return c.Query().Where(problemspec.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProblemSpecClient) GetX(ctx context.Context, id int) *ProblemSpec {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProblemSpecClient) Hooks() []Hook {
	return c.hooks.ProblemSpec
}

// Interceptors returns the client interceptors.
func (c *ProblemSpecClient) Interceptors() []Interceptor {
	return c.inters.ProblemSpec
}

func (c *ProblemSpecClient) mutate(ctx context.Context, m *ProblemSpecMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProblemSpecCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProblemSpecUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProblemSpecUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProblemSpecDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProblemSpec mutation op: %q", m.Op())
	}
}

// PromptEvaluationClient is a client for the PromptEvaluation schema.
type PromptEvaluationClient struct {
	config
}

// NewPromptEvaluationClient returns a client for the PromptEvaluation from the given config.
func NewPromptEvaluationClient(c config) *PromptEvaluationClient {
	return &PromptEvaluationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `promptevaluation.Hooks(f(g(h())))`.
func (c *PromptEvaluationClient) Use(hooks ...Hook) {
	c.hooks.PromptEvaluation = append(c.hooks.PromptEvaluation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `promptevaluation.Intercept(f(g(h())))`.
func (c *PromptEvaluationClient) Intercept(interceptors ...Interceptor) {
	c.inters.PromptEvaluation = append(c.inters.PromptEvaluation, interceptors...)
}

// Create returns a builder for creating a PromptEvaluation entity.
func (c *PromptEvaluationClient) Create() *PromptEvaluationCreate {
	mutation := newPromptEvaluationMutation(c.config, OpCreate)
	return &PromptEvaluationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PromptEvaluation entities.
func (c *PromptEvaluationClient) CreateBulk(builders ...*PromptEvaluationCreate) *PromptEvaluationCreateBulk {
	return &PromptEvaluationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PromptEvaluationClient) MapCreateBulk(slice any, setFunc func(*PromptEvaluationCreate, int)) *PromptEvaluationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PromptEvaluationCreateBulk{err: fmt.Errorf("calling to PromptEvaluationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PromptEvaluationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PromptEvaluationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PromptEvaluation.
func (c *PromptEvaluationClient) Update() *PromptEvaluationUpdate {
	mutation := newPromptEvaluationMutation(c.config, OpUpdate)
	return &PromptEvaluationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PromptEvaluationClient) UpdateOne(_m *PromptEvaluation) *PromptEvaluationUpdateOne {
	mutation := newPromptEvaluationMutation(c.config, OpUpdateOne, withPromptEvaluation(_m))
	return &PromptEvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PromptEvaluationClient) UpdateOneID(id int) *PromptEvaluationUpdateOne {
	mutation := newPromptEvaluationMutation(c.config, OpUpdateOne, withPromptEvaluationID(id))
	return &PromptEvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PromptEvaluation.
func (c *PromptEvaluationClient) Delete() *PromptEvaluationDelete {
	mutation := newPromptEvaluationMutation(c.config, OpDelete)
	return &PromptEvaluationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PromptEvaluationClient) DeleteOne(_m *PromptEvaluation) *PromptEvaluationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PromptEvaluationClient) DeleteOneID(id int) *PromptEvaluationDeleteOne {
	builder := c.Delete().Where(promptevaluation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PromptEvaluationDeleteOne{builder}
}

// Query returns a query builder for PromptEvaluation.
func (c *PromptEvaluationClient) Query() *PromptEvaluationQuery {
	return &PromptEvaluationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePromptEvaluation},
		inters: c.Interceptors(),
	}
}

// Get returns a PromptEvaluation entity by its id.
func (c *PromptEvaluationClient) Get(ctx context.Context, id int) (*PromptEvaluation, error) {
	return c.Query().Where(promptevaluation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PromptEvaluationClient) GetX(ctx context.Context, id int) *PromptEvaluation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a PromptEvaluation.
func (c *PromptEvaluationClient) QuerySession(_m *PromptEvaluation) *PromptSessionQuery {
	query := (&PromptSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(promptevaluation.Table, promptevaluation.FieldID, id),
			sqlgraph.To(promptsession.Table, promptsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, promptevaluation.SessionTable, promptevaluation.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PromptEvaluationClient) Hooks() []Hook {
	return c.hooks.PromptEvaluation
}

// Interceptors returns the client interceptors.
func (c *PromptEvaluationClient) Interceptors() []Interceptor {
	return c.inters.PromptEvaluation
}

func (c *PromptEvaluationClient) mutate(ctx context.Context, m *PromptEvaluationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PromptEvaluationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PromptEvaluationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PromptEvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PromptEvaluationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PromptEvaluation mutation op: %q", m.Op())
	}
}

// PromptMessageClient is a client for the PromptMessage schema.
type PromptMessageClient struct {
	config
}

// NewPromptMessageClient returns a client for the PromptMessage from the given config.
func NewPromptMessageClient(c config) *PromptMessageClient {
	return &PromptMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `promptmessage.Hooks(f(g(h())))`.
func (c *PromptMessageClient) Use(hooks ...Hook) {
	c.hooks.PromptMessage = append(c.hooks.PromptMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `promptmessage.Intercept(f(g(h())))`.
func (c *PromptMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.PromptMessage = append(c.inters.PromptMessage, interceptors...)
}

// Create returns a builder for creating a PromptMessage entity.
func (c *PromptMessageClient) Create() *PromptMessageCreate {
	mutation := newPromptMessageMutation(c.config, OpCreate)
	return &PromptMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PromptMessage entities.
func (c *PromptMessageClient) CreateBulk(builders ...*PromptMessageCreate) *PromptMessageCreateBulk {
	return &PromptMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PromptMessageClient) MapCreateBulk(slice any, setFunc func(*PromptMessageCreate, int)) *PromptMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PromptMessageCreateBulk{err: fmt.Errorf("calling to PromptMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PromptMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PromptMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PromptMessage.
func (c *PromptMessageClient) Update() *PromptMessageUpdate {
	mutation := newPromptMessageMutation(c.config, OpUpdate)
	return &PromptMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PromptMessageClient) UpdateOne(_m *PromptMessage) *PromptMessageUpdateOne {
	mutation := newPromptMessageMutation(c.config, OpUpdateOne, withPromptMessage(_m))
	return &PromptMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PromptMessageClient) UpdateOneID(id int) *PromptMessageUpdateOne {
	mutation := newPromptMessageMutation(c.config, OpUpdateOne, withPromptMessageID(id))
	return &PromptMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PromptMessage.
func (c *PromptMessageClient) Delete() *PromptMessageDelete {
	mutation := newPromptMessageMutation(c.config, OpDelete)
	return &PromptMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PromptMessageClient) DeleteOne(_m *PromptMessage) *PromptMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PromptMessageClient) DeleteOneID(id int) *PromptMessageDeleteOne {
	builder := c.Delete().Where(promptmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PromptMessageDeleteOne{builder}
}

// Query returns a query builder for PromptMessage.
func (c *PromptMessageClient) Query() *PromptMessageQuery {
	return &PromptMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePromptMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a PromptMessage entity by its id.
func (c *PromptMessageClient) Get(ctx context.Context, id int) (*PromptMessage, error) {
	return c.Query().Where(promptmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PromptMessageClient) GetX(ctx context.Context, id int) *PromptMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a PromptMessage.
func (c *PromptMessageClient) QuerySession(_m *PromptMessage) *PromptSessionQuery {
	query := (&PromptSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(promptmessage.Table, promptmessage.FieldID, id),
			sqlgraph.To(promptsession.Table, promptsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, promptmessage.SessionTable, promptmessage.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PromptMessageClient) Hooks() []Hook {
	return c.hooks.PromptMessage
}

// Interceptors returns the client interceptors.
func (c *PromptMessageClient) Interceptors() []Interceptor {
	return c.inters.PromptMessage
}

func (c *PromptMessageClient) mutate(ctx context.Context, m *PromptMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PromptMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PromptMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PromptMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PromptMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PromptMessage mutation op: %q", m.Op())
	}
}

// PromptSessionClient is a client for the PromptSession schema.
type PromptSessionClient struct {
	config
}

// NewPromptSessionClient returns a client for the PromptSession from the given config.
func NewPromptSessionClient(c config) *PromptSessionClient {
	return &PromptSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `promptsession.Hooks(f(g(h())))`.
func (c *PromptSessionClient) Use(hooks ...Hook) {
	c.hooks.PromptSession = append(c.hooks.PromptSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `promptsession.Intercept(f(g(h())))`.
func (c *PromptSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PromptSession = append(c.inters.PromptSession, interceptors...)
}

// Create returns a builder for creating a PromptSession entity.
func (c *PromptSessionClient) Create() *PromptSessionCreate {
	mutation := newPromptSessionMutation(c.config, OpCreate)
	return &PromptSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PromptSession entities.
func (c *PromptSessionClient) CreateBulk(builders ...*PromptSessionCreate) *PromptSessionCreateBulk {
	return &PromptSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PromptSessionClient) MapCreateBulk(slice any, setFunc func(*PromptSessionCreate, int)) *PromptSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PromptSessionCreateBulk{err: fmt.Errorf("calling to PromptSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PromptSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PromptSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PromptSession.
func (c *PromptSessionClient) Update() *PromptSessionUpdate {
	mutation := newPromptSessionMutation(c.config, OpUpdate)
	return &PromptSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PromptSessionClient) UpdateOne(_m *PromptSession) *PromptSessionUpdateOne {
	mutation := newPromptSessionMutation(c.config, OpUpdateOne, withPromptSession(_m))
	return &PromptSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PromptSessionClient) UpdateOneID(id int) *PromptSessionUpdateOne {
	mutation := newPromptSessionMutation(c.config, OpUpdateOne, withPromptSessionID(id))
	return &PromptSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PromptSession.
func (c *PromptSessionClient) Delete() *PromptSessionDelete {
	mutation := newPromptSessionMutation(c.config, OpDelete)
	return &PromptSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PromptSessionClient) DeleteOne(_m *PromptSession) *PromptSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PromptSessionClient) DeleteOneID(id int) *PromptSessionDeleteOne {
	builder := c.Delete().Where(promptsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PromptSessionDeleteOne{builder}
}

// Query returns a query builder for PromptSession.
func (c *PromptSessionClient) Query() *PromptSessionQuery {
	return &PromptSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePromptSession},
		inters: c.Interceptors(),
	}
}

// Get returns a PromptSession entity by its id.
func (c *PromptSessionClient) Get(ctx context.Context, id int) (*PromptSession, error) {
	return c.Query().Where(promptsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PromptSessionClient) GetX(ctx context.Context, id int) *PromptSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMessages queries the messages edge of a PromptSession.
func (c *PromptSessionClient) QueryMessages(_m *PromptSession) *PromptMessageQuery {
	query := (&PromptMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(promptsession.Table, promptsession.FieldID, id),
			sqlgraph.To(promptmessage.Table, promptmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, promptsession.MessagesTable, promptsession.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvaluations queries the evaluations edge of a PromptSession.
func (c *PromptSessionClient) QueryEvaluations(_m *PromptSession) *PromptEvaluationQuery {
	query := (&PromptEvaluationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(promptsession.Table, promptsession.FieldID, id),
			sqlgraph.To(promptevaluation.Table, promptevaluation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, promptsession.EvaluationsTable, promptsession.EvaluationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySubmissions queries the submissions edge of a PromptSession.
func (c *PromptSessionClient) QuerySubmissions(_m *PromptSession) *SubmissionQuery {
	query := (&SubmissionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(promptsession.Table, promptsession.FieldID, id),
			sqlgraph.To(submission.Table, submission.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, promptsession.SubmissionsTable, promptsession.SubmissionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PromptSessionClient) Hooks() []Hook {
	return c.hooks.PromptSession
}

// Interceptors returns the client interceptors.
func (c *PromptSessionClient) Interceptors() []Interceptor {
	return c.inters.PromptSession
}

func (c *PromptSessionClient) mutate(ctx context.Context, m *PromptSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PromptSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PromptSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PromptSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PromptSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PromptSession mutation op: %q", m.Op())
	}
}

// ScoreClient is a client for the Score schema.
type ScoreClient struct {
	config
}

// NewScoreClient returns a client for the Score from the given config.
func NewScoreClient(c config) *ScoreClient {
	return &ScoreClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `score.Hooks(f(g(h())))`.
func (c *ScoreClient) Use(hooks ...Hook) {
	c.hooks.Score = append(c.hooks.Score, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `score.Intercept(f(g(h())))`.
func (c *ScoreClient) Intercept(interceptors ...Interceptor) {
	c.inters.Score = append(c.inters.Score, interceptors...)
}

// Create returns a builder for creating a Score entity.
func (c *ScoreClient) Create() *ScoreCreate {
	mutation := newScoreMutation(c.config, OpCreate)
	return &ScoreCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Score entities.
func (c *ScoreClient) CreateBulk(builders ...*ScoreCreate) *ScoreCreateBulk {
	return &ScoreCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScoreClient) MapCreateBulk(slice any, setFunc func(*ScoreCreate, int)) *ScoreCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScoreCreateBulk{err: fmt.Errorf("calling to ScoreClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScoreCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScoreCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Score.
func (c *ScoreClient) Update() *ScoreUpdate {
	mutation := newScoreMutation(c.config, OpUpdate)
	return &ScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScoreClient) UpdateOne(_m *Score) *ScoreUpdateOne {
	mutation := newScoreMutation(c.config, OpUpdateOne, withScore(_m))
	return &ScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScoreClient) UpdateOneID(id int) *ScoreUpdateOne {
	mutation := newScoreMutation(c.config, OpUpdateOne, withScoreID(id))
	return &ScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Score.
func (c *ScoreClient) Delete() *ScoreDelete {
	mutation := newScoreMutation(c.config, OpDelete)
	return &ScoreDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScoreClient) DeleteOne(_m *Score) *ScoreDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScoreClient) DeleteOneID(id int) *ScoreDeleteOne {
	builder := c.Delete().Where(score.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScoreDeleteOne{builder}
}

// Query returns a query builder for Score.
func (c *ScoreClient) Query() *ScoreQuery {
	return &ScoreQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScore},
		inters: c.Interceptors(),
	}
}

// Get returns a Score entity by its id.
func (c *ScoreClient) Get(ctx context.Context, id int) (*Score, error) {
	return c.Query().Where(score.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScoreClient) GetX(ctx context.Context, id int) *Score {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySubmission queries the submission edge of a Score.
func (c *ScoreClient) QuerySubmission(_m *Score) *SubmissionQuery {
	query := (&SubmissionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(score.Table, score.FieldID, id),
			sqlgraph.To(submission.Table, submission.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, score.SubmissionTable, score.SubmissionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ScoreClient) Hooks() []Hook {
	return c.hooks.Score
}

// Interceptors returns the client interceptors.
func (c *ScoreClient) Interceptors() []Interceptor {
	return c.inters.Score
}

func (c *ScoreClient) mutate(ctx context.Context, m *ScoreMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScoreCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScoreDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Score mutation op: %q", m.Op())
	}
}

// SubmissionClient is a client for the Submission schema.
type SubmissionClient struct {
	config
}

// NewSubmissionClient returns a client for the Submission from the given config.
func NewSubmissionClient(c config) *SubmissionClient {
	return &SubmissionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `submission.Hooks(f(g(h())))`.
func (c *SubmissionClient) Use(hooks ...Hook) {
	c.hooks.Submission = append(c.hooks.Submission, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `submission.Intercept(f(g(h())))`.
func (c *SubmissionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Submission = append(c.inters.Submission, interceptors...)
}

// Create returns a builder for creating a Submission entity.
func (c *SubmissionClient) Create() *SubmissionCreate {
	mutation := newSubmissionMutation(c.config, OpCreate)
	return &SubmissionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Submission entities.
func (c *SubmissionClient) CreateBulk(builders ...*SubmissionCreate) *SubmissionCreateBulk {
	return &SubmissionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubmissionClient) MapCreateBulk(slice any, setFunc func(*SubmissionCreate, int)) *SubmissionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubmissionCreateBulk{err: fmt.Errorf("calling to SubmissionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubmissionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubmissionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Submission.
func (c *SubmissionClient) Update() *SubmissionUpdate {
	mutation := newSubmissionMutation(c.config, OpUpdate)
	return &SubmissionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubmissionClient) UpdateOne(_m *Submission) *SubmissionUpdateOne {
	mutation := newSubmissionMutation(c.config, OpUpdateOne, withSubmission(_m))
	return &SubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubmissionClient) UpdateOneID(id int) *SubmissionUpdateOne {
	mutation := newSubmissionMutation(c.config, OpUpdateOne, withSubmissionID(id))
	return &SubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Submission.
func (c *SubmissionClient) Delete() *SubmissionDelete {
	mutation := newSubmissionMutation(c.config, OpDelete)
	return &SubmissionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubmissionClient) DeleteOne(_m *Submission) *SubmissionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubmissionClient) DeleteOneID(id int) *SubmissionDeleteOne {
	builder := c.Delete().Where(submission.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubmissionDeleteOne{builder}
}

// Query returns a query builder for Submission.
func (c *SubmissionClient) Query() *SubmissionQuery {
	return &SubmissionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubmission},
		inters: c.Interceptors(),
	}
}

// Get returns a Submission entity by its id.
func (c *SubmissionClient) Get(ctx context.Context, id int) (*Submission, error) {
	return c.Query().Where(submission.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubmissionClient) GetX(ctx context.Context, id int) *Submission {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a Submission.
func (c *SubmissionClient) QuerySession(_m *Submission) *PromptSessionQuery {
	query := (&PromptSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(submission.Table, submission.FieldID, id),
			sqlgraph.To(promptsession.Table, promptsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, submission.SessionTable, submission.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRuns queries the runs edge of a Submission.
func (c *SubmissionClient) QueryRuns(_m *Submission) *SubmissionRunQuery {
	query := (&SubmissionRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(submission.Table, submission.FieldID, id),
			sqlgraph.To(submissionrun.Table, submissionrun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, submission.RunsTable, submission.RunsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryScore queries the score edge of a Submission.
func (c *SubmissionClient) QueryScore(_m *Submission) *ScoreQuery {
	query := (&ScoreClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(submission.Table, submission.FieldID, id),
			sqlgraph.To(score.Table, score.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, submission.ScoreTable, submission.ScoreColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SubmissionClient) Hooks() []Hook {
	return c.hooks.Submission
}

// Interceptors returns the client interceptors.
func (c *SubmissionClient) Interceptors() []Interceptor {
	return c.inters.Submission
}

func (c *SubmissionClient) mutate(ctx context.Context, m *SubmissionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubmissionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubmissionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubmissionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Submission mutation op: %q", m.Op())
	}
}

// SubmissionRunClient is a client for the SubmissionRun schema.
type SubmissionRunClient struct {
	config
}

// NewSubmissionRunClient returns a client for the SubmissionRun from the given config.
func NewSubmissionRunClient(c config) *SubmissionRunClient {
	return &SubmissionRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `submissionrun.Hooks(f(g(h())))`.
func (c *SubmissionRunClient) Use(hooks ...Hook) {
	c.hooks.SubmissionRun = append(c.hooks.SubmissionRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `submissionrun.Intercept(f(g(h())))`.
func (c *SubmissionRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.SubmissionRun = append(c.inters.SubmissionRun, interceptors...)
}

// Create returns a builder for creating a SubmissionRun entity.
func (c *SubmissionRunClient) Create() *SubmissionRunCreate {
	mutation := newSubmissionRunMutation(c.config, OpCreate)
	return &SubmissionRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SubmissionRun entities.
func (c *SubmissionRunClient) CreateBulk(builders ...*SubmissionRunCreate) *SubmissionRunCreateBulk {
	return &SubmissionRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubmissionRunClient) MapCreateBulk(slice any, setFunc func(*SubmissionRunCreate, int)) *SubmissionRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubmissionRunCreateBulk{err: fmt.Errorf("calling to SubmissionRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubmissionRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubmissionRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SubmissionRun.
func (c *SubmissionRunClient) Update() *SubmissionRunUpdate {
	mutation := newSubmissionRunMutation(c.config, OpUpdate)
	return &SubmissionRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubmissionRunClient) UpdateOne(_m *SubmissionRun) *SubmissionRunUpdateOne {
	mutation := newSubmissionRunMutation(c.config, OpUpdateOne, withSubmissionRun(_m))
	return &SubmissionRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubmissionRunClient) UpdateOneID(id int) *SubmissionRunUpdateOne {
	mutation := newSubmissionRunMutation(c.config, OpUpdateOne, withSubmissionRunID(id))
	return &SubmissionRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SubmissionRun.
func (c *SubmissionRunClient) Delete() *SubmissionRunDelete {
	mutation := newSubmissionRunMutation(c.config, OpDelete)
	return &SubmissionRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubmissionRunClient) DeleteOne(_m *SubmissionRun) *SubmissionRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubmissionRunClient) DeleteOneID(id int) *SubmissionRunDeleteOne {
	builder := c.Delete().Where(submissionrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubmissionRunDeleteOne{builder}
}

// Query returns a query builder for SubmissionRun.
func (c *SubmissionRunClient) Query() *SubmissionRunQuery {
	return &SubmissionRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubmissionRun},
		inters: c.Interceptors(),
	}
}

// Get returns a SubmissionRun entity by its id.
func (c *SubmissionRunClient) Get(ctx context.Context, id int) (*SubmissionRun, error) {
	return c.Query().Where(submissionrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubmissionRunClient) GetX(ctx context.Context, id int) *SubmissionRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySubmission queries the submission edge of a SubmissionRun.
func (c *SubmissionRunClient) QuerySubmission(_m *SubmissionRun) *SubmissionQuery {
	query := (&SubmissionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(submissionrun.Table, submissionrun.FieldID, id),
			sqlgraph.To(submission.Table, submission.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, submissionrun.SubmissionTable, submissionrun.SubmissionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SubmissionRunClient) Hooks() []Hook {
	return c.hooks.SubmissionRun
}

// Interceptors returns the client interceptors.
func (c *SubmissionRunClient) Interceptors() []Interceptor {
	return c.inters.SubmissionRun
}

func (c *SubmissionRunClient) mutate(ctx context.Context, m *SubmissionRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubmissionRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubmissionRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubmissionRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubmissionRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SubmissionRun mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ProblemSpec, PromptEvaluation, PromptMessage, PromptSession, Score, Submission,
		SubmissionRun []ent.Hook
	}
	inters struct {
		ProblemSpec, PromptEvaluation, PromptMessage, PromptSession, Score, Submission,
		SubmissionRun []ent.Interceptor
	}
)

// ExecContext allows calling the underlying ExecContext method of the driver if it is supported by it.
// See, database/sql#DB.ExecContext for more information.
func (c *config) ExecContext(ctx context.Context, query string, args ...any) (stdsql.Result, error) {
	ex, ok := c.driver.(interface {
		ExecContext(context.Context, string, ...any) (stdsql.Result, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.ExecContext is not supported")
	}
	return ex.ExecContext(ctx, query, args...)
}

// QueryContext allows calling the underlying QueryContext method of the driver if it is supported by it.
// See, database/sql#DB.QueryContext for more information.
func (c *config) QueryContext(ctx context.Context, query string, args ...any) (*stdsql.Rows, error) {
	q, ok := c.driver.(interface {
		QueryContext(context.Context, string, ...any) (*stdsql.Rows, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.QueryContext is not supported")
	}
	return q.QueryContext(ctx, query, args...)
}
