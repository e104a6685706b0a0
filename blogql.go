package blogql

import (
	"context"
	"fmt"
	"time"

	"github.com/nasdf/blogql/core"
	"github.com/nasdf/blogql/graphql"
	"github.com/nasdf/blogql/metrics"
	"github.com/nasdf/blogql/resolver"

	"github.com/vektah/gqlparser/v2/ast"
	"go.uber.org/zap"
)

// DB executes GraphQL operations against an entity store.
type DB struct {
	store     *core.Store
	schema    *ast.Schema
	resolvers *graphql.Resolvers
	metrics   *metrics.Collector
	log       *zap.Logger
}

type options struct {
	ids     core.IDGenerator
	log     *zap.Logger
	metrics *metrics.Collector
}

// Option configures a DB.
type Option func(*options)

// WithIDGenerator sets the generator used to assign ids to created records.
func WithIDGenerator(ids core.IDGenerator) Option {
	return func(o *options) {
		o.ids = ids
	}
}

// WithLogger sets the logger used by the DB and its resolvers.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithMetrics sets the collector that records executed operations.
func WithMetrics(c *metrics.Collector) Option {
	return func(o *options) {
		o.metrics = c
	}
}

// New creates a DB that serves the API schema using the given store.
func New(store *core.Store, opts ...Option) (*DB, error) {
	o := options{
		ids: core.UUIDGenerator{},
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	schema, err := graphql.LoadSchema()
	if err != nil {
		return nil, err
	}
	resolvers := resolver.New(store, o.ids, o.log).Resolvers()
	if err := resolvers.Check(schema); err != nil {
		return nil, fmt.Errorf("invalid resolvers: %w", err)
	}
	o.metrics.SetCounts(store.Counts())
	return &DB{
		store:     store,
		schema:    schema,
		resolvers: resolvers,
		metrics:   o.metrics,
		log:       o.log,
	}, nil
}

// Store returns the entity store.
func (db *DB) Store() *core.Store {
	return db.store
}

// Schema returns the parsed API schema.
func (db *DB) Schema() *ast.Schema {
	return db.schema
}

// Execute runs the operation described by params and returns its data.
func (db *DB) Execute(ctx context.Context, params graphql.QueryParams) (any, error) {
	start := time.Now()
	operation, data, err := graphql.Execute(ctx, db.schema, db.resolvers, params)
	db.metrics.ObserveOperation(string(operation), err, time.Since(start))
	db.metrics.SetCounts(db.store.Counts())
	if err != nil {
		db.log.Debug("operation failed",
			zap.String("operation", string(operation)),
			zap.String("operationName", params.OperationName),
			zap.Error(err))
		return nil, err
	}
	return data, nil
}
