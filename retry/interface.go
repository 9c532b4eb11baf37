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

// Package retry decides, for one request attempt, whether to retry and
// after how long - idempotent-method I/O failures, Retry-After-bearing
// 429/503, and an opt-in 5xx policy.
package retry

import (
	"net/http"
	"time"
)

// Decision is the outcome of asking a Strategy whether to retry.
type Decision struct {
	Retry bool
	After time.Duration
}

// DoNotRetry is the zero Decision, returned whenever retrying is not
// warranted.
var DoNotRetry = Decision{}

// Strategy decides retryability and backoff for one failed attempt.
type Strategy interface {
	// ShouldRetry is consulted after an I/O error (resp is nil, err is set).
	// transmitted reports whether any byte of the request had already gone
	// out on the wire when the error occurred; non-idempotent methods only
	// retry when it is false (retry only if the request was not yet
	// transmitted).
	ShouldRetry(req *http.Request, err error, attempt int, transmitted bool) Decision
	// ShouldRetryResponse is consulted after a response was received.
	ShouldRetryResponse(req *http.Request, resp *http.Response, attempt int) Decision
}

func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete,
		http.MethodOptions, http.MethodTrace:
		return true
	default:
		return false
	}
}
