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
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sabouaram/httpcore/route"
)

// conn wraps a net.Conn with the bookkeeping fields the pool needs:
// reusability, socket timeout, negotiated protocol version and usage
// timestamps. Mirrors the refcounted Conn shape of a pooled RPC client,
// adapted here for plain byte-stream reuse instead of stream multiplexing.
type conn struct {
	net.Conn

	mu       sync.Mutex
	open     bool
	reusable bool
	proto    string
	timeout  time.Duration

	createdAt time.Time
	lastUsed  atomic.Int64 // unix nano
}

func newConn(raw net.Conn) *conn {
	c := &conn{
		Conn:      raw,
		open:      raw != nil,
		reusable:  true,
		createdAt: time.Now(),
	}
	c.touch()
	return c
}

func (c *conn) Open() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

func (c *conn) setOpen(v bool) {
	c.mu.Lock()
	c.open = v
	c.mu.Unlock()
}

func (c *conn) Reusable() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reusable
}

func (c *conn) SetReusable(v bool) {
	c.mu.Lock()
	c.reusable = v
	c.mu.Unlock()
}

func (c *conn) SetSocketTimeout(d time.Duration) {
	c.mu.Lock()
	c.timeout = d
	c.mu.Unlock()

	if c.Conn != nil && d > 0 {
		deadline := time.Now().Add(d)
		_ = c.Conn.SetDeadline(deadline)
	}
}

func (c *conn) SocketTimeout() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timeout
}

func (c *conn) ProtocolVersion() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.proto
}

func (c *conn) SetProtocolVersion(v string) {
	c.mu.Lock()
	c.proto = v
	c.mu.Unlock()
}

func (c *conn) CreatedAt() time.Time {
	return c.createdAt
}

func (c *conn) LastUsedAt() time.Time {
	return time.Unix(0, c.lastUsed.Load())
}

func (c *conn) touch() {
	c.lastUsed.Store(time.Now().UnixNano())
}

// peerClosed probes whether the other side has shut the connection down
// while it sat idle: a read with an immediate deadline must time out on a
// live connection; EOF, any other error, or stray buffered bytes mean the
// connection cannot carry another exchange.
func (c *conn) peerClosed() bool {
	c.mu.Lock()
	raw := c.Conn
	open := c.open
	c.mu.Unlock()

	if raw == nil || !open {
		return true
	}

	_ = raw.SetReadDeadline(time.Now())
	var b [1]byte
	n, err := raw.Read(b[:])
	_ = raw.SetReadDeadline(time.Time{})

	if n > 0 {
		return true
	}
	if ne, ok := err.(net.Error); ok && ne.Timeout() {
		return false
	}
	return true
}

// rebind swaps in the raw connection once Connect succeeds.
func (c *conn) rebind(raw net.Conn) {
	c.mu.Lock()
	c.Conn = raw
	c.open = raw != nil
	c.mu.Unlock()
	c.touch()
}

func (c *conn) Close() error {
	c.setOpen(false)
	if c.Conn == nil {
		return nil
	}
	return c.Conn.Close()
}

// entry is the exclusive owner of a Connection: state, route membership and
// the two expiry timers (idle + TTL).
type entry struct {
	rt        route.Route
	c         *conn
	state     State
	userToken interface{}

	ttlDeadline  time.Time // creation + ttl, zero = no TTL
	idleDeadline time.Time // set at release, zero = keep indefinitely
}

func newEntry(rt route.Route, ttl time.Duration) *entry {
	e := &entry{
		rt:    rt,
		c:     newConn(nil),
		state: Idle,
	}
	if ttl > 0 {
		e.ttlDeadline = time.Now().Add(ttl)
	}
	return e
}

func (e *entry) expired(now time.Time) bool {
	if !e.ttlDeadline.IsZero() && now.After(e.ttlDeadline) {
		return true
	}
	if !e.idleDeadline.IsZero() && now.After(e.idleDeadline) {
		return true
	}
	return false
}

// endpoint implements Endpoint, handed to the caller of Lease.
type endpoint struct {
	p  *pool
	rt route.Route
	e  *entry
}

func (ep *endpoint) Route() route.Route { return ep.rt }

func (ep *endpoint) Connection() Connection { return ep.e.c }

func (ep *endpoint) UserToken() interface{} { return ep.e.userToken }

func (ep *endpoint) MarkNonReusable() {
	ep.e.c.SetReusable(false)
}
