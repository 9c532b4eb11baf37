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

// Package redirect resolves 3xx responses into a follow-up request: location
// resolution against RFC 3986, method/body rewriting per status code, loop
// detection and cross-origin header scrubbing.
package redirect

import "net/http"

// Decision describes the follow-up request a Strategy wants for a redirect
// response. A nil Decision with a nil error means the response was not a
// redirect this Strategy handles (300, 304, 305 pass through unchanged).
type Decision struct {
	Method   string
	URL      string
	DropBody bool
}

// Strategy decides whether and how to follow a redirect response.
type Strategy interface {
	// IsRedirect reports whether statusCode is one this Strategy acts on.
	// 300, 304 and 305 are never redirects here: they return to the caller
	// as-is, unchanged.
	IsRedirect(statusCode int) bool
	// Resolve computes the follow-up request for resp, received in answer
	// to req. It returns (nil, nil) when resp is not a redirect.
	Resolve(req *http.Request, resp *http.Response) (*Decision, error)
}
