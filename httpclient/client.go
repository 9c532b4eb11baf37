/*
 * MIT License
 *
 * Copyright (c) 2026 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package httpclient is the public surface of the library:
// Client.Execute built by a Builder, composing the execchain pipeline over
// a shared connection pool and route planner for the lifetime of the
// Client.
package httpclient

import (
	"context"
	"net/http"
	"sync"

	"github.com/sabouaram/httpcore/cachestore"
	"github.com/sabouaram/httpcore/clientconfig"
	"github.com/sabouaram/httpcore/connpool"
	liberr "github.com/sabouaram/httpcore/errors"
	"github.com/sabouaram/httpcore/execchain"
	"github.com/sabouaram/httpcore/execctx"
	"github.com/sabouaram/httpcore/logger"
	"github.com/sabouaram/httpcore/route"
)

// Client is the long-lived, concurrency-safe entry point: one Client wraps
// one connection pool and route planner, shared by every Execute call
// (the pool is process-wide and safe for concurrent use).
type Client struct {
	opts    clientconfig.ClientOptions
	pool    connpool.Pool
	planner route.Planner
	dial    connpool.DialFunc
	reaper  *connpool.Reaper
	log     logger.Logger

	mu     sync.Mutex
	closed bool
}

// New builds a Client from opts, starting the pool's idle/TTL reaper if
// opts.PoolPruneInterval is positive. Call Close to stop the reaper and
// shut the pool down.
func New(opts clientconfig.ClientOptions) (*Client, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	pool := connpool.New(opts.MaxTotalConnections, opts.DefaultMaxPerRoute, opts.ReusePolicy)
	if opts.MaxPerRoute > 0 {
		pool.SetDefaultMaxPerRoute(opts.MaxPerRoute)
	}
	pool.SetValidateAfterInactivity(opts.ValidateAfterInactivity.Time())
	pool.SetConnTTL(opts.ConnTTL.Time())

	log := opts.Logger
	if log == nil {
		log = logger.New(context.Background())
	}

	c := &Client{
		opts:    opts,
		pool:    pool,
		planner: route.NewPlanner(nil, nil, nil),
		dial:    connpool.NewDialer(),
		log:     log,
	}

	if opts.PoolPruneInterval > 0 {
		c.reaper = connpool.NewReaper(pool, opts.PoolPruneInterval.Time())
		c.reaper.Start(context.Background())
	}

	return c, nil
}

// NewDefault builds a Client from clientconfig.Default().
func NewDefault() (*Client, error) {
	return New(clientconfig.Default())
}

// newScope builds the execchain.Scope for one Execute call, seeding its
// execctx.Context with the collaborators carried on the Client and on the
// request's own per-call options.
func (c *Client) newScope(parent context.Context, execCtx execctx.Context) *execchain.Scope {
	fresh := execCtx == nil
	if fresh {
		execCtx = execctx.New(parent)
	}

	if execctx.CredentialsProvider(execCtx) == nil && c.opts.CredentialsProvider != nil {
		execctx.SetCredentialsProvider(execCtx, c.opts.CredentialsProvider)
	}
	if c.opts.AuthRegistry != nil {
		execctx.SetAuthRegistry(execCtx, c.opts.AuthRegistry)
	}
	if c.opts.CookieJar != nil && execctx.CookieJar(execCtx) == nil {
		execctx.SetCookieJar(execCtx, c.opts.CookieJar)
	}
	if fresh {
		execctx.SetRequestOptions(execCtx, c.opts.DefaultRequestOptions)
	}

	return &execchain.Scope{
		Ctx:              execCtx,
		Pool:             c.pool,
		Planner:          c.planner,
		Dial:             c.dial,
		TLS:              c.opts.TLSConfig,
		RedirectStrategy: c.opts.RedirectStrategy,
		Retry:            c.opts.RetryStrategy,
		DefaultHeaders:   c.opts.DefaultHeaders,
		UserAgent:        c.opts.UserAgent,
		Logger:           c.log,
	}
}

// Execute is the user-level entry point: it drives req
// through the five-stage execution chain and returns the assembled
// Response, or an error carrying one of the closed set of error kinds.
// Passing a nil execCtx creates a fresh per-call Context (the
// per-request context is never shared across concurrent Execute calls).
func (c *Client) Execute(req *http.Request, execCtx execctx.Context) (*http.Response, error) {
	if req == nil {
		return nil, ErrorNilRequest.Error(nil)
	}

	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return nil, ErrorClientClosed.Error(nil)
	}

	scope := c.newScope(req.Context(), execCtx)
	handler := execchain.Build(scope)

	resp, err := handler(req)
	if err != nil {
		return nil, liberr.New(0, "request to "+req.URL.String()+" failed", err)
	}
	return resp, nil
}

// ResponseConsumer is invoked with the final Response before Execute
// returns, letting a caller stream the body without the Client retaining
// ownership of it past the consumer call - the streaming variant of
// Execute.
type ResponseConsumer func(*http.Response) error

// ExecuteStreaming runs Execute and, on success, hands the Response to
// consumer before returning, closing the body afterward regardless of
// whether consumer returned an error.
func (c *Client) ExecuteStreaming(req *http.Request, consumer ResponseConsumer, execCtx execctx.Context) error {
	resp, err := c.Execute(req, execCtx)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if consumer == nil {
		return nil
	}
	return consumer(resp)
}

// Pool exposes the underlying connection pool for callers that want direct
// access to Stats/SetMaxTotal/etc. beyond what ClientOptions configures
// up front.
func (c *Client) Pool() connpool.Pool {
	return c.pool
}

// CacheStore exposes the configured cache storage backend, or nil when the
// Client was built without one. The Client itself applies no caching
// policy; the store is the storage contract handed to whatever layer does.
func (c *Client) CacheStore() cachestore.Store {
	return c.opts.CacheStore
}

// Close stops the background reaper (if any) and shuts the connection pool
// down; subsequent Execute calls fail with ErrorClientClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	if c.reaper != nil {
		c.reaper.Stop()
	}
	c.pool.Shutdown()
	return nil
}
