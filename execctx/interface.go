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

// Package execctx is the request-scoped
// execution context: a typed wrapper over the generic context.Config[T]
// map (kept as-is from the context package) with a closed set of
// well-known keys - auth state for target/proxy, cookie store, credentials
// provider, redirect trail, route, endpoint details, user token and
// request options. It survives one top-level Client.Execute call across
// redirects and retries.
package execctx

import (
	"context"

	"github.com/google/uuid"

	libctx "github.com/sabouaram/httpcore/context"
)

// key is the closed set of well-known slots a request-scoped Context
// carries.
type key uint8

const (
	keyTraceID key = iota
	keyCookieJar
	keyCredentials
	keyAuthRegistry
	keyTargetAuth
	keyProxyAuth
	keyRedirectTrail
	keyRoute
	keyEndpoint
	keyUserToken
	keyRequestOptions
)

// Context is the request-scoped execution context threaded through the
// execution chain. It is NOT safe to share across concurrent Execute
// calls; callers needing isolation create a fresh one per call.
type Context = libctx.Config[key]

// New builds a fresh Context derived from parent, stamped with a new
// trace id correlating every log line of one execution.
func New(parent context.Context) Context {
	c := libctx.New[key](parent)
	c.Store(keyTraceID, uuid.NewString())
	return c
}

// TraceID returns the per-execution trace id stamped by New.
func TraceID(c Context) string {
	if c == nil {
		return ""
	}
	if v, ok := c.Load(keyTraceID); ok {
		if s, k := v.(string); k {
			return s
		}
	}
	return ""
}
