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
	"bufio"
	"context"
	"io"
	"net"
	"net/http"
	"sync"

	liberr "github.com/sabouaram/httpcore/errors"
)

type http1Adapter struct{}

// NewHTTP1Adapter returns the HTTP/1.1 wire adapter: a serialized,
// write-request-then-read-response exchange per RFC 7230, the same shape
// net/http.Transport uses internally over a persistent connection.
func NewHTTP1Adapter() Adapter {
	return http1Adapter{}
}

func (http1Adapter) Version() Version { return HTTP1 }

func (http1Adapter) RoundTrip(ctx context.Context, c net.Conn, req *http.Request) (*http.Response, error) {
	if dl, ok := ctx.Deadline(); ok {
		_ = c.SetDeadline(dl)
	}

	if expectsContinue(req) && req.Body != nil && req.Body != http.NoBody {
		return roundTripExpect(c, req)
	}

	if err := req.Write(c); err != nil {
		return nil, liberr.IOError.Error(err)
	}

	br := bufio.NewReader(c)
	resp, err := http.ReadResponse(br, req)
	if err != nil {
		return nil, liberr.IOError.Error(err)
	}

	return resp, nil
}

func expectsContinue(req *http.Request) bool {
	return req.Header.Get("Expect") == "100-continue"
}

// roundTripExpect performs the Expect/100-continue dance: the request is
// written with its body held behind a gate, and the gate only opens when
// the server answers with an interim 100. A final status before the gate
// opens (e.g. a 401 rejecting credentials) returns immediately with the
// body unsent; the connection is flagged Close since its write side was
// cut short of the announced Content-Length.
func roundTripExpect(c net.Conn, req *http.Request) (*http.Response, error) {
	gate := &gatedBody{inner: req.Body, allow: make(chan struct{}), deny: make(chan struct{})}
	req.Body = gate

	wr := make(chan error, 1)
	go func() { wr <- req.Write(c) }()

	br := bufio.NewReader(c)
	resp, err := http.ReadResponse(br, req)
	if err != nil {
		gate.Deny()
		<-wr
		return nil, liberr.IOError.Error(err)
	}

	if resp.StatusCode != http.StatusContinue {
		gate.Deny()
		<-wr
		resp.Close = true
		return resp, nil
	}

	gate.Allow()
	if werr := <-wr; werr != nil {
		return nil, liberr.IOError.Error(werr)
	}

	resp, err = http.ReadResponse(br, req)
	if err != nil {
		return nil, liberr.IOError.Error(err)
	}
	return resp, nil
}

// gatedBody blocks the first Read until the server's verdict arrives:
// Allow passes reads through to the real body, Deny ends the body stream
// without transmitting a byte.
type gatedBody struct {
	inner io.ReadCloser
	allow chan struct{}
	deny  chan struct{}
	once  sync.Once
}

func (g *gatedBody) Allow() {
	g.once.Do(func() { close(g.allow) })
}

func (g *gatedBody) Deny() {
	g.once.Do(func() { close(g.deny) })
}

func (g *gatedBody) Read(p []byte) (int, error) {
	select {
	case <-g.allow:
		return g.inner.Read(p)
	case <-g.deny:
		return 0, io.EOF
	}
}

func (g *gatedBody) Close() error {
	return g.inner.Close()
}
