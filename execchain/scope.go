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

// Package execchain composes the five-stage interceptor pipeline -
// redirect, retry, protocol, auth, connection, outermost to
// innermost - into the single Handler a Client.Execute call drives.
package execchain

import (
	"crypto/tls"
	"net/http"

	"github.com/sabouaram/httpcore/connpool"
	"github.com/sabouaram/httpcore/execctx"
	"github.com/sabouaram/httpcore/logger"
	"github.com/sabouaram/httpcore/redirect"
	"github.com/sabouaram/httpcore/retry"
	"github.com/sabouaram/httpcore/route"
)

// Scope carries everything a stage needs beyond the request/response pair
// itself: the process-wide shared collaborators (pool, planner) and the
// per-execution context - cancellation travels on the request's own
// context.Context, threaded through execctx.Context.
type Scope struct {
	Ctx execctx.Context

	Pool    connpool.Pool
	Planner route.Planner
	Dial    connpool.DialFunc
	TLS     *tls.Config

	RedirectStrategy redirect.Strategy
	Retry            retry.Strategy

	DefaultHeaders http.Header
	UserAgent      string

	Logger logger.Logger
}

func (s *Scope) opts() execctx.RequestOptions {
	return execctx.RequestOptionsOf(s.Ctx)
}

func (s *Scope) debug(msg string, data interface{}) {
	if s.Logger != nil {
		s.Logger.Debug(msg, data)
	}
}
