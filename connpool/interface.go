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

// Package connpool implements the pooled connection manager: leasing and
// releasing Connections keyed by route.Route, per-route and global limits,
// liveness validation and idle/TTL expiry.
package connpool

import (
	"context"
	"crypto/tls"
	"net"
	"time"

	"github.com/sabouaram/httpcore/route"
)

// State is the lifecycle state of a pool entry.
type State uint8

const (
	Idle State = iota
	Leased
	Closed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Leased:
		return "leased"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Connection is an owned bidirectional byte stream bound to a route.
type Connection interface {
	net.Conn

	// Open reports whether the underlying socket has been established.
	Open() bool
	// Reusable reports whether the connection may be returned to the pool
	// on release rather than discarded.
	Reusable() bool
	SetReusable(bool)

	SetSocketTimeout(d time.Duration)
	SocketTimeout() time.Duration

	// ProtocolVersion is the negotiated wire protocol ("http/1.1" or "h2"),
	// empty until Connect has completed.
	ProtocolVersion() string
	SetProtocolVersion(v string)

	CreatedAt() time.Time
	LastUsedAt() time.Time
	touch()
}

// Endpoint is a handle to a leased pool entry, valid until Release or the
// pool discards it. On drop (by the caller forgetting to release) the entry
// remains leased until the owning execution releases or closes it - callers
// MUST always pair Lease with exactly one Release/Close.
type Endpoint interface {
	Route() route.Route
	Connection() Connection
	UserToken() interface{}

	// MarkNonReusable flags the underlying connection so the next Release
	// discards it instead of returning it to idle. Used when a request body
	// was partially written and the wire state is no longer trustworthy.
	MarkNonReusable()
}

// DialFunc opens the raw network connection for a hop. Swappable so callers
// can inject their own dialer (SOCKS, custom resolver, test fakes); TLS
// layering, when tlsConfig is non-nil, is applied by the caller of DialFunc.
type DialFunc func(ctx context.Context, network, addr string) (net.Conn, error)

// Stats reports lease/availability counters for the whole pool or a route.
type Stats struct {
	Leased    int
	Available int
	Pending   int
	Max       int
}

// Pool is the connection manager contract: lease/release, connect, expiry
// sweeps and limit configuration.
type Pool interface {
	// Lease blocks (subject to ctx and leaseTimeout) until a connection for
	// route is available, returning KindPoolTimeout if none becomes free in
	// time and KindPoolShutdown if the pool has been shut down.
	Lease(ctx context.Context, rt route.Route, userToken interface{}, leaseTimeout time.Duration) (Endpoint, error)

	// Release returns ep to the pool. A negative keepAlive means "keep
	// indefinitely" (until idle pruning decides otherwise); a positive value
	// arms a per-entry idle expiry. newUserToken re-tags the connection for
	// future affinity-aware leases.
	Release(ep Endpoint, newUserToken interface{}, keepAlive time.Duration)

	// Connect opens the underlying connection for ep if not already open.
	Connect(ctx context.Context, ep Endpoint, connectTimeout time.Duration, tlsConfig *tls.Config, dial DialFunc) error

	CloseExpired()
	CloseIdle(maxIdle time.Duration)

	// SetConnTTL arms the creation-time TTL on every entry created after
	// the call: whatever its idle state, an entry older than d is closed
	// by the next CloseExpired sweep. Zero disables the TTL.
	SetConnTTL(d time.Duration)

	// SetValidateAfterInactivity arms the liveness probe: an idle entry
	// about to be leased out that has been inactive longer than d is
	// checked for a peer close first, and silently replaced when dead.
	// Zero disables the probe.
	SetValidateAfterInactivity(d time.Duration)

	SetMaxTotal(n int)
	SetMaxPerRoute(rt route.Route, n int)
	SetDefaultMaxPerRoute(n int)

	Stats() Stats
	RouteStats(rt route.Route) Stats

	Shutdown()
}
