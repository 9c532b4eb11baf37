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
	"net/http"

	"github.com/sabouaram/httpcore/retry"
)

// retryStage sits just inside the redirect stage: on a retryable I/O failure or a
// retryable status, sleep and re-enter the inner chain (protocol/auth/
// connection). Whether a non-idempotent request is safe to repeat is
// decided from the connection stage's transmitted marker on the error.
func retryStage(scope *Scope) Middleware {
	return func(next Handler) Handler {
		return func(req *http.Request) (*http.Response, error) {
			strategy := scope.Retry
			if strategy == nil {
				strategy = retry.NewDefaultStrategy(0)
			}

			attempt := 0
			current := req

			for {
				resp, err := next(current)

				if err != nil {
					decision := strategy.ShouldRetry(current, err, attempt, wasTransmitted(err))
					if !decision.Retry {
						return resp, unmark(err)
					}
					scope.debug("retrying after error", map[string]interface{}{
						"attempt": attempt,
						"after":   decision.After.String(),
					})
					if serr := retry.Sleep(current.Context(), decision.After); serr != nil {
						return nil, serr
					}
					clone, cerr := retryClone(current)
					if cerr != nil {
						return resp, unmark(err)
					}
					current = clone
					attempt++
					continue
				}

				decision := strategy.ShouldRetryResponse(current, resp, attempt)
				if !decision.Retry {
					return resp, nil
				}
				clone, cerr := retryClone(current)
				if cerr != nil {
					return resp, nil
				}
				scope.debug("retrying after status", map[string]interface{}{
					"status":  resp.StatusCode,
					"attempt": attempt,
					"after":   decision.After.String(),
				})
				discardBody(resp)
				if serr := retry.Sleep(current.Context(), decision.After); serr != nil {
					return nil, serr
				}
				current = clone
				attempt++
			}
		}
	}
}
