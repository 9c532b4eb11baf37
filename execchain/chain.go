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

import "net/http"

// Handler is one exec interceptor's continuation value:
// `next` is a plain function value, not a base-class call. Each stage closes over its
// own Scope and the next Handler inward.
type Handler func(req *http.Request) (*http.Response, error)

// Middleware wraps an inner Handler to produce the next-outermost one.
type Middleware func(next Handler) Handler

// Build composes the canonical five stages, outermost to innermost:
// redirect, retry, protocol, auth, connection.
func Build(scope *Scope) Handler {
	h := connectionStage(scope)
	h = authStage(scope)(h)
	h = protocolStage(scope)(h)
	h = retryStage(scope)(h)
	h = redirectStage(scope)(h)
	return h
}
