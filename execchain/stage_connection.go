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

package execchain

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/sabouaram/httpcore/connpool"
	"github.com/sabouaram/httpcore/execctx"
	liberr "github.com/sabouaram/httpcore/errors"
	"github.com/sabouaram/httpcore/protocol"
)

// connectionStage is the innermost stage of the chain: lease a pooled
// connection for the route planned by protocolStage, connect it if needed,
// round-trip the request over the negotiated wire protocol, and release the
// endpoint - discarding it instead of recycling it when the round trip
// fails, with the error marked by whether any byte of the request body had
// already gone out.
func connectionStage(scope *Scope) Handler {
	return func(req *http.Request) (*http.Response, error) {
		rt, ok := execctx.Route(scope.Ctx)
		if !ok {
			planned, err := scope.Planner.Plan(req.URL)
			if err != nil {
				return nil, err
			}
			rt = planned
			execctx.SetRoute(scope.Ctx, rt)
		}

		opts := scope.opts()
		userToken := execctx.UserToken(scope.Ctx)

		ep, err := scope.Pool.Lease(req.Context(), rt, userToken, opts.ConnectionRequestTimeout)
		if err != nil {
			return nil, err
		}
		execctx.SetEndpoint(scope.Ctx, ep)

		if err := scope.Pool.Connect(req.Context(), ep, opts.ConnectTimeout, scope.TLS, scope.Dial); err != nil {
			scope.Pool.Release(ep, userToken, 0)
			return nil, err
		}

		conn := ep.Connection()
		conn.SetSocketTimeout(opts.SocketTimeout)

		ctx := req.Context()
		var cancel context.CancelFunc
		if opts.ResponseTimeout > 0 {
			ctx, cancel = context.WithTimeout(ctx, opts.ResponseTimeout)
			defer cancel()
		}

		adapter := protocol.Select(conn.ProtocolVersion())

		transmitted := false
		body := req.Body
		if body != nil && body != http.NoBody {
			req.Body = &transmitMarkerBody{ReadCloser: body, marked: &transmitted}
		}

		resp, rerr := adapter.RoundTrip(ctx, conn, req)
		if rerr != nil {
			ep.MarkNonReusable()
			scope.Pool.Release(ep, userToken, 0)
			if liberr.Get(rerr) == nil {
				rerr = liberr.IOError.Error(rerr)
			}
			return nil, markTransmitted(rerr, transmitted)
		}

		keepAlive := time.Duration(-1)
		if resp.Close {
			ep.MarkNonReusable()
			keepAlive = 0
		}

		if resp.Body == nil || resp.Body == http.NoBody {
			scope.Pool.Release(ep, userToken, keepAlive)
			return resp, nil
		}

		// the endpoint stays leased until the caller finishes the body:
		// releasing it at header time would let another exchange interleave
		// on a connection whose response is still streaming
		resp.Body = &releasingBody{
			body:      resp.Body,
			pool:      scope.Pool,
			ep:        ep,
			token:     userToken,
			keepAlive: keepAlive,
		}

		return resp, nil
	}
}

// releasingBody hands the endpoint back to the pool once the response body
// is fully read or closed. A close before EOF discards the connection: the
// unread remainder would otherwise corrupt the next exchange on it.
type releasingBody struct {
	body      io.ReadCloser
	pool      connpool.Pool
	ep        connpool.Endpoint
	token     interface{}
	keepAlive time.Duration

	eof  bool
	once sync.Once
}

func (b *releasingBody) Read(p []byte) (int, error) {
	n, err := b.body.Read(p)
	if err == io.EOF {
		b.eof = true
	}
	return n, err
}

func (b *releasingBody) Close() error {
	err := b.body.Close()
	b.once.Do(func() {
		if !b.eof {
			b.ep.MarkNonReusable()
			b.pool.Release(b.ep, b.token, 0)
			return
		}
		b.pool.Release(b.ep, b.token, b.keepAlive)
	})
	return err
}

// transmitMarkerBody flips *marked to true the first time any byte is read
// off the request body, so a later I/O failure can be attributed correctly
// against the "retry only if not yet transmitted" rule.
type transmitMarkerBody struct {
	io.ReadCloser
	marked *bool
}

func (b *transmitMarkerBody) Read(p []byte) (int, error) {
	n, err := b.ReadCloser.Read(p)
	if n > 0 {
		*b.marked = true
	}
	return n, err
}
