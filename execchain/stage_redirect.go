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
	"io"
	"net/http"
	"net/url"

	"github.com/sabouaram/httpcore/execctx"
	liberr "github.com/sabouaram/httpcore/errors"
	"github.com/sabouaram/httpcore/redirect"
)

// redirectBodySlurp caps how much of a 3xx body is drained before the next
// hop so the connection can go back to the pool reusable.
const redirectBodySlurp = 4 << 10

func discardBody(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, redirectBodySlurp))
	_ = resp.Body.Close()
}

// redirectStage is the outermost stage: it owns the
// Trail for this execution and re-enters the rest of the chain once per
// hop until a non-redirect response, an error, or a Trail rejection.
func redirectStage(scope *Scope) Middleware {
	return func(next Handler) Handler {
		return func(req *http.Request) (*http.Response, error) {
			opts := scope.opts()
			current := req

			strategy := scope.RedirectStrategy
			if strategy == nil {
				strategy = redirect.NewDefaultStrategy()
			}

			trail := execctx.RedirectTrail(scope.Ctx, opts.CircularRedirectsAllowed, opts.MaxRedirects)

			for {
				resp, err := next(current)
				if err != nil {
					return resp, err
				}

				if !opts.RedirectsEnabled || !strategy.IsRedirect(resp.StatusCode) {
					return resp, nil
				}

				decision, derr := strategy.Resolve(current, resp)
				if derr != nil {
					discardBody(resp)
					return nil, derr
				}
				if decision == nil {
					return resp, nil
				}

				target, perr := url.Parse(decision.URL)
				if perr != nil {
					discardBody(resp)
					return nil, liberr.ProtocolError.Error(perr)
				}

				if verr := trail.Visit(decision.Method, target.String()); verr != nil {
					discardBody(resp)
					return nil, verr
				}

				follow, rerr := rewind(current, target, decision.Method, decision.DropBody)
				if rerr != nil {
					discardBody(resp)
					return nil, rerr
				}

				if redirect.CrossOrigin(current.URL, target) {
					redirect.ScrubCrossOrigin(follow.Header)
				}

				scope.debug("following redirect", map[string]interface{}{
					"status": resp.StatusCode,
					"to":     target.String(),
				})

				discardBody(resp)
				current = follow
			}
		}
	}
}
