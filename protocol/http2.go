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

package protocol

import (
	"context"
	"net"
	"net/http"
	"sync"

	"golang.org/x/net/http2"

	liberr "github.com/sabouaram/httpcore/errors"
)

// http2Adapter wraps golang.org/x/net/http2's Transport/ClientConn pair,
// caching one ClientConn per net.Conn so repeated RoundTrips against the
// same leased connection reuse its stream multiplexer instead of redialing.
type http2Adapter struct {
	mu    sync.Mutex
	conns map[net.Conn]*http2.ClientConn
	tr    *http2.Transport
}

// NewHTTP2Adapter returns the HTTP/2 wire adapter. Stream state and HPACK
// compression are delegated entirely to golang.org/x/net/http2; this adapter
// only threads a leased net.Conn through it per request.
func NewHTTP2Adapter() Adapter {
	return &http2Adapter{
		conns: make(map[net.Conn]*http2.ClientConn),
		tr:    &http2.Transport{},
	}
}

func (a *http2Adapter) Version() Version { return HTTP2 }

func (a *http2Adapter) RoundTrip(ctx context.Context, c net.Conn, req *http.Request) (*http.Response, error) {
	cc, err := a.clientConn(c)
	if err != nil {
		return nil, err
	}

	resp, err := cc.RoundTrip(req.WithContext(ctx))
	if err != nil {
		return nil, liberr.IOError.Error(err)
	}

	return resp, nil
}

func (a *http2Adapter) clientConn(c net.Conn) (*http2.ClientConn, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if cc, ok := a.conns[c]; ok && cc.CanTakeNewRequest() {
		return cc, nil
	}

	// drop dead multiplexers so the cache tracks live conns only
	for k, v := range a.conns {
		if !v.CanTakeNewRequest() {
			delete(a.conns, k)
		}
	}

	cc, err := a.tr.NewClientConn(c)
	if err != nil {
		return nil, liberr.ProtocolError.Error(err)
	}

	a.conns[c] = cc
	return cc, nil
}
