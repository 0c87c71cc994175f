package divdex

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/divdex/divdex/internal/db"
	dbRedis "github.com/divdex/divdex/internal/db/redis"
	domdoc "github.com/divdex/divdex/internal/domain/document"
	"github.com/divdex/divdex/internal/domain/query/request"
	"github.com/divdex/divdex/internal/domain/query/result"
	documentrepo "github.com/divdex/divdex/internal/repository/document"
	documentuc "github.com/divdex/divdex/internal/usecase/document"
	healthuc "github.com/divdex/divdex/internal/usecase/health"
	queryuc "github.com/divdex/divdex/internal/usecase/query"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultKeyPrefix        = "divdex:"
)

// Internal interfaces so tests can substitute the wired services.
type documentUseCase interface {
	Ingest(ctx context.Context, docs []domdoc.Document) (int, error)
	Get(ctx context.Context, id string) (domdoc.Document, error)
	Delete(ctx context.Context, id string) error
}

type queryUseCase interface {
	Query(ctx context.Context, req *request.Request) (result.Hits, error)
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Client is the divdex SDK entry point.
type Client struct {
	store     db.Store
	docSvc    documentUseCase
	querySvc  queryUseCase
	healthSvc healthUseCase
	obs       *observer
}

// New creates a divdex Client, connects to the database, and builds the
// initial index snapshot from persisted documents. The provided context is
// used for the readiness check and the initial rebuild.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		keyPrefix:        defaultKeyPrefix,
		readinessTimeout: defaultReadinessTimeout,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("divdex: database address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("divdex: create store: %w", err)
	}

	if err := store.WaitForReady(ctx, cfg.readinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("divdex: database not ready: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		store.Close()
		return nil, err
	}

	docRepo := documentrepo.New(store, cfg.keyPrefix)
	docSvc := documentuc.New(docRepo)
	if err := docSvc.Rebuild(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("divdex: build initial index: %w", err)
	}

	return &Client{
		store:     store,
		docSvc:    docSvc,
		querySvc:  queryuc.New(docSvc),
		healthSvc: healthuc.New(store, docSvc),
		obs:       obs,
	}, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Documents returns the document service.
func (c *Client) Documents() *DocumentService {
	return &DocumentService{c: c}
}

// Query returns a fluent query builder.
func (c *Client) Query() *QueryBuilder {
	return &QueryBuilder{c: c}
}
