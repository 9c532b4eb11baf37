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

package connpool

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"sync"
	"time"

	liberr "github.com/sabouaram/httpcore/errors"
	"github.com/sabouaram/httpcore/route"
)

// ReusePolicy picks which idle entry on a route is handed out first.
type ReusePolicy uint8

const (
	// LIFO hands out the most recently released connection first, to
	// maximize locality. This is the default.
	LIFO ReusePolicy = iota
	FIFO
)

type waiter struct {
	userToken interface{}
	result    chan leaseResult
	cancelled bool
}

type leaseResult struct {
	ep  *endpoint
	err error
}

// subpool is the keyed collection of entries for one route: the same
// add/get/filter shape as a bind-address keyed server collection, narrowed
// here to idle/leased connection bookkeeping per route.
type subpool struct {
	rt      route.Route
	idle    []*entry
	leased  map[*entry]struct{}
	waiters []*waiter
	max     int // -1 means "use pool default"
}

func newSubpool(rt route.Route) *subpool {
	return &subpool{
		rt:     rt,
		leased: make(map[*entry]struct{}),
		max:    -1,
	}
}

func (sp *subpool) leasedCount() int { return len(sp.leased) }
func (sp *subpool) idleCount() int   { return len(sp.idle) }

func (sp *subpool) limit(def int) int {
	if sp.max >= 0 {
		return sp.max
	}
	return def
}

// pool is the single shared resource allocator. All mutations happen under
// one mutex (a single lock per pool);
// waiters park on per-route queues drained in FIFO (longest-waiting-first)
// order on release or limit increase.
type pool struct {
	mu sync.Mutex

	routes map[string]*subpool

	maxTotal           int
	defaultMaxPerRoute int
	reuse              ReusePolicy
	validateAfter      time.Duration
	connTTL            time.Duration

	totalLeased int
	totalIdle   int

	shutdown bool
	metrics  *Metrics
}

// New builds a Pool with the given total and default per-route capacity.
// reuse selects LIFO (default, zero value) or FIFO idle-entry selection.
func New(maxTotal, defaultMaxPerRoute int, reuse ReusePolicy) Pool {
	return &pool{
		routes:             make(map[string]*subpool),
		maxTotal:           maxTotal,
		defaultMaxPerRoute: defaultMaxPerRoute,
		reuse:              reuse,
	}
}

// WithMetrics attaches a Prometheus-backed Metrics recorder to an existing
// Pool built via New. Returns the same Pool for chaining.
func WithMetrics(p Pool, m *Metrics) Pool {
	if pp, ok := p.(*pool); ok {
		pp.mu.Lock()
		pp.metrics = m
		pp.mu.Unlock()
	}
	return p
}

func (p *pool) subpoolFor(rt route.Route) *subpool {
	k := rt.Key()
	sp, ok := p.routes[k]
	if !ok {
		sp = newSubpool(rt)
		p.routes[k] = sp
	}
	return sp
}

func (p *pool) Lease(ctx context.Context, rt route.Route, userToken interface{}, leaseTimeout time.Duration) (Endpoint, error) {
	p.mu.Lock()

	if p.shutdown {
		p.mu.Unlock()
		return nil, liberr.PoolShutdown.Error(nil)
	}

	sp := p.subpoolFor(rt)

	if ep, ok := p.tryLeaseLocked(sp, userToken); ok {
		p.mu.Unlock()
		p.record()
		return ep, nil
	}

	w := &waiter{userToken: userToken, result: make(chan leaseResult, 1)}
	sp.waiters = append(sp.waiters, w)
	p.mu.Unlock()

	var timer *time.Timer
	var timeoutCh <-chan time.Time
	if leaseTimeout > 0 {
		timer = time.NewTimer(leaseTimeout)
		defer timer.Stop()
		timeoutCh = timer.C
	}

	select {
	case r := <-w.result:
		if r.err != nil {
			return nil, r.err
		}
		p.record()
		return r.ep, nil
	case <-timeoutCh:
		p.abandonWaiter(sp, w)
		return nil, liberr.PoolTimeout.Error(nil)
	case <-ctx.Done():
		p.abandonWaiter(sp, w)
		return nil, liberr.Cancelled.Error(ctx.Err())
	}
}

// abandonWaiter deregisters w so a later release does not leak a lease onto
// a caller that already gave up.
func (p *pool) abandonWaiter(sp *subpool, w *waiter) {
	p.mu.Lock()
	w.cancelled = true
	for i, o := range sp.waiters {
		if o == w {
			sp.waiters = append(sp.waiters[:i], sp.waiters[i+1:]...)
			break
		}
	}
	p.mu.Unlock()

	// a release racing with the cancellation may have already handed w an
	// endpoint; return it so the lease cannot leak
	select {
	case r := <-w.result:
		if r.ep != nil {
			p.Release(r.ep, r.ep.e.userToken, 0)
		}
	default:
	}
}

// tryLeaseLocked attempts to satisfy a lease immediately: prefer an idle
// entry tagged with a matching user token, else any idle entry on the route,
// else create a fresh (unconnected) entry if capacity allows.
func (p *pool) tryLeaseLocked(sp *subpool, userToken interface{}) (*endpoint, bool) {
	for {
		e := p.popIdleLocked(sp, userToken)
		if e == nil {
			break
		}
		// liveness probe: an entry idle past the inactivity threshold may
		// have been closed by the peer; drop it and pop the next one (the
		// probe uses an immediate read deadline, so it does not block the
		// pool lock)
		if p.validateAfter > 0 && e.c.Open() &&
			time.Since(e.c.LastUsedAt()) >= p.validateAfter && e.c.peerClosed() {
			e.state = Closed
			_ = e.c.Close()
			continue
		}
		e.state = Leased
		e.userToken = userToken
		e.idleDeadline = time.Time{}
		sp.leased[e] = struct{}{}
		p.totalLeased++
		return &endpoint{p: p, rt: sp.rt, e: e}, true
	}

	routeMax := sp.limit(p.defaultMaxPerRoute)
	if sp.leasedCount()+sp.idleCount() >= routeMax {
		return nil, false
	}
	if p.totalLeased+p.totalIdle >= p.maxTotal {
		return nil, false
	}

	e := newEntry(sp.rt, p.connTTL)
	e.state = Leased
	e.userToken = userToken
	sp.leased[e] = struct{}{}
	p.totalLeased++
	return &endpoint{p: p, rt: sp.rt, e: e}, true
}

func (p *pool) popIdleLocked(sp *subpool, userToken interface{}) *entry {
	if len(sp.idle) == 0 {
		return nil
	}

	if userToken != nil {
		for i, e := range sp.idle {
			if e.userToken == userToken {
				sp.idle = append(sp.idle[:i], sp.idle[i+1:]...)
				p.totalIdle--
				return e
			}
		}
	}

	var idx int
	if p.reuse == LIFO {
		idx = len(sp.idle) - 1
	} else {
		idx = 0
	}
	e := sp.idle[idx]
	sp.idle = append(sp.idle[:idx], sp.idle[idx+1:]...)
	p.totalIdle--
	return e
}

func (p *pool) Release(ep Endpoint, newUserToken interface{}, keepAlive time.Duration) {
	real, ok := ep.(*endpoint)
	if !ok || real == nil {
		return
	}

	p.mu.Lock()

	sp, ok := p.routes[real.rt.Key()]
	if !ok {
		p.mu.Unlock()
		return
	}

	e := real.e
	delete(sp.leased, e)
	p.totalLeased--

	discard := e.state == Closed || !e.c.Reusable() || !e.c.Open()

	if discard {
		e.state = Closed
	} else {
		e.userToken = newUserToken
		e.state = Idle
		switch {
		case keepAlive < 0:
			e.idleDeadline = time.Time{}
		case keepAlive == 0:
			e.idleDeadline = time.Now()
		default:
			e.idleDeadline = time.Now().Add(keepAlive)
		}
		sp.idle = append(sp.idle, e)
		p.totalIdle++
	}

	p.wakeLocked(sp)
	p.mu.Unlock()

	if discard {
		_ = e.c.Close()
	}
	p.record()
}

// wakeLocked serves the longest-waiting pending waiter on sp whose route
// still has capacity, called while p.mu is held.
func (p *pool) wakeLocked(sp *subpool) {
	for len(sp.waiters) > 0 {
		w := sp.waiters[0]
		sp.waiters = sp.waiters[1:]
		if w.cancelled {
			continue
		}

		if ep, ok := p.tryLeaseLocked(sp, w.userToken); ok {
			w.result <- leaseResult{ep: ep}
		} else {
			// No capacity freed after all (raced with another waiter);
			// put it back in front and stop.
			sp.waiters = append([]*waiter{w}, sp.waiters...)
			return
		}
	}
}

// wakeAllLocked is invoked after a limit increase: every route may now have
// newly-available capacity.
func (p *pool) wakeAllLocked() {
	for _, sp := range p.routes {
		p.wakeLocked(sp)
	}
}

func (p *pool) Connect(ctx context.Context, ep Endpoint, connectTimeout time.Duration, tlsConfig *tls.Config, dial DialFunc) error {
	real, ok := ep.(*endpoint)
	if !ok {
		return liberr.ProtocolError.Error(nil)
	}

	c := real.e.c
	if c.Open() {
		return nil
	}

	if dial == nil {
		dial = defaultDial
	}

	dctx := ctx
	var cancel context.CancelFunc
	if connectTimeout > 0 {
		dctx, cancel = context.WithTimeout(ctx, connectTimeout)
		defer cancel()
	}

	target := real.rt.Target
	if len(real.rt.Proxies) > 0 {
		target = real.rt.Proxies[0]
	}
	addr := fmt.Sprintf("%s:%d", target.Host, target.Port)

	raw, err := dial(dctx, "tcp", addr)
	if err != nil {
		if dctx.Err() != nil {
			return liberr.ConnectTimeout.Error(err)
		}
		return liberr.IOError.Error(err)
	}

	if tlsConfig != nil && target.Secure {
		tc := tls.Client(raw, tlsConfig)
		if err = tc.HandshakeContext(dctx); err != nil {
			_ = raw.Close()
			return liberr.TLSFailure.Error(err)
		}
		raw = tc
		if neg := tc.ConnectionState().NegotiatedProtocol; neg != "" {
			c.SetProtocolVersion(neg)
		}
	}

	c.rebind(raw)
	return nil
}

func defaultDial(ctx context.Context, network, addr string) (net.Conn, error) {
	var d net.Dialer
	return d.DialContext(ctx, network, addr)
}

func (p *pool) CloseExpired() {
	now := time.Now()
	p.sweep(func(e *entry) bool {
		return e.expired(now)
	}, true)
}

func (p *pool) CloseIdle(maxIdle time.Duration) {
	now := time.Now()
	p.sweep(func(e *entry) bool {
		return now.Sub(e.c.LastUsedAt()) >= maxIdle
	}, false)
}

// sweep removes every idle entry matching pred, closing its connection
// outside the lock. With leased set, entries still out on loan are swept
// too: their connection is closed now (a TTL can run out mid-lease) and the
// Closed entry is discarded at its next release.
func (p *pool) sweep(pred func(*entry) bool, leased bool) {
	var toClose []*entry

	p.mu.Lock()
	for _, sp := range p.routes {
		kept := sp.idle[:0:0]
		for _, e := range sp.idle {
			if pred(e) {
				e.state = Closed
				toClose = append(toClose, e)
				p.totalIdle--
			} else {
				kept = append(kept, e)
			}
		}
		sp.idle = kept

		if !leased {
			continue
		}
		for e := range sp.leased {
			if e.state != Closed && pred(e) {
				e.state = Closed
				toClose = append(toClose, e)
			}
		}
	}
	p.mu.Unlock()

	for _, e := range toClose {
		_ = e.c.Close()
	}
}

func (p *pool) SetConnTTL(d time.Duration) {
	p.mu.Lock()
	p.connTTL = d
	p.mu.Unlock()
}

func (p *pool) SetValidateAfterInactivity(d time.Duration) {
	p.mu.Lock()
	p.validateAfter = d
	p.mu.Unlock()
}

func (p *pool) SetMaxTotal(n int) {
	p.mu.Lock()
	p.maxTotal = n
	p.wakeAllLocked()
	p.mu.Unlock()
}

func (p *pool) SetMaxPerRoute(rt route.Route, n int) {
	p.mu.Lock()
	sp := p.subpoolFor(rt)
	sp.max = n
	p.wakeLocked(sp)
	p.mu.Unlock()
}

func (p *pool) SetDefaultMaxPerRoute(n int) {
	p.mu.Lock()
	p.defaultMaxPerRoute = n
	p.wakeAllLocked()
	p.mu.Unlock()
}

func (p *pool) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()

	pending := 0
	for _, sp := range p.routes {
		pending += len(sp.waiters)
	}

	return Stats{
		Leased:    p.totalLeased,
		Available: p.totalIdle,
		Pending:   pending,
		Max:       p.maxTotal,
	}
}

func (p *pool) RouteStats(rt route.Route) Stats {
	p.mu.Lock()
	defer p.mu.Unlock()

	sp, ok := p.routes[rt.Key()]
	if !ok {
		return Stats{Max: p.defaultMaxPerRoute}
	}

	return Stats{
		Leased:    sp.leasedCount(),
		Available: sp.idleCount(),
		Pending:   len(sp.waiters),
		Max:       sp.limit(p.defaultMaxPerRoute),
	}
}

func (p *pool) Shutdown() {
	p.mu.Lock()
	p.shutdown = true

	var toClose []*entry
	for _, sp := range p.routes {
		for _, e := range sp.idle {
			e.state = Closed
			toClose = append(toClose, e)
		}
		sp.idle = nil

		for _, w := range sp.waiters {
			w.result <- leaseResult{err: liberr.PoolShutdown.Error(nil)}
		}
		sp.waiters = nil
	}
	p.totalIdle = 0
	p.mu.Unlock()

	for _, e := range toClose {
		_ = e.c.Close()
	}
}

func (p *pool) record() {
	if p.metrics == nil {
		return
	}
	s := p.Stats()
	p.metrics.observe(s)
}
