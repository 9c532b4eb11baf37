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

package retry

import (
	"net/http"
	"time"

	liberr "github.com/sabouaram/httpcore/errors"
)

// DefaultStrategy is the stock retry policy: idempotent methods
// retry on I/O errors, 429/503 honor Retry-After, other 5xx are opt-in.
type DefaultStrategy struct {
	MaxRetries int
	Min        time.Duration
	Max        time.Duration
	// RetryOn5xx opts into retrying other 5xx statuses with the same
	// backoff as I/O errors. Defaults to false.
	RetryOn5xx bool
}

// NewDefaultStrategy returns a DefaultStrategy with the bounds go-retryablehttp
// ships as its own defaults (1s floor, 30s ceiling).
func NewDefaultStrategy(maxRetries int) *DefaultStrategy {
	return &DefaultStrategy{
		MaxRetries: maxRetries,
		Min:        time.Second,
		Max:        30 * time.Second,
	}
}

func (s *DefaultStrategy) ShouldRetry(req *http.Request, err error, attempt int, transmitted bool) Decision {
	if attempt >= s.MaxRetries {
		return DoNotRetry
	}

	// cancellation and protocol violations are terminal whatever the method
	if liberr.Has(err, liberr.Cancelled) || liberr.Has(err, liberr.ProtocolError) {
		return DoNotRetry
	}

	if !isIdempotent(req.Method) && transmitted {
		return DoNotRetry
	}

	return Decision{Retry: true, After: Backoff(s.Min, s.Max, attempt, nil)}
}

func (s *DefaultStrategy) ShouldRetryResponse(req *http.Request, resp *http.Response, attempt int) Decision {
	if attempt >= s.MaxRetries {
		return DoNotRetry
	}

	switch resp.StatusCode {
	case http.StatusTooManyRequests, http.StatusServiceUnavailable:
		return Decision{Retry: true, After: Backoff(s.Min, s.Max, attempt, resp)}
	}

	if resp.StatusCode >= 500 && resp.StatusCode < 600 && s.RetryOn5xx {
		return Decision{Retry: true, After: Backoff(s.Min, s.Max, attempt, resp)}
	}

	return DoNotRetry
}
