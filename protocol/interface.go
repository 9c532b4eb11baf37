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

// Package protocol wraps the two wire codecs a leased connection can speak -
// HTTP/1.1 and HTTP/2 - behind one Adapter interface, selected by the ALPN
// result recorded on the connection at connect time.
package protocol

import (
	"context"
	"net"
	"net/http"
)

// Version is the wire protocol negotiated for a connection.
type Version string

const (
	HTTP1 Version = "http/1.1"
	HTTP2 Version = "h2"
)

// Adapter exchanges one request/response pair over an already-open net.Conn.
// It does not own the connection's lifecycle - the connection pool does.
type Adapter interface {
	Version() Version
	RoundTrip(ctx context.Context, c net.Conn, req *http.Request) (*http.Response, error)
}

// The shared adapters: the HTTP/2 one caches a ClientConn per leased
// net.Conn, so it must be process-wide - a fresh adapter per exchange would
// replay the client preface on a connection that already completed it.
var (
	sharedHTTP1 = NewHTTP1Adapter()
	sharedHTTP2 = NewHTTP2Adapter()
)

// Select returns the Adapter matching the ALPN-negotiated protocol string,
// defaulting to HTTP/1.1 when empty or unrecognized (no ALPN, or a plain
// non-TLS connection).
func Select(negotiated string) Adapter {
	if negotiated == string(HTTP2) {
		return sharedHTTP2
	}
	return sharedHTTP1
}
