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

	"github.com/sabouaram/httpcore/auth"
	"github.com/sabouaram/httpcore/execctx"
)

// maxAuthAttempts bounds the challenge/response loop: one round for the
// proxy's challenge and one for the target's, plus one spare, is enough for
// every scheme currently registered (Basic, Digest and Bearer
// all report Complete() == true, so a scheme never asks for a second retry
// of its own accord).
const maxAuthAttempts = 4

// authStage wraps the connection stage: it applies a cached scheme preemptively,
// and on a 401/407 drives the target or proxy auth.Exchange through its
// challenge/response cycle and resends once a scheme is selected.
func authStage(scope *Scope) Middleware {
	return func(next Handler) Handler {
		return func(req *http.Request) (*http.Response, error) {
			opts := scope.opts()
			if !opts.AuthenticationEnabled {
				return next(req)
			}

			rt, ok := execctx.Route(scope.Ctx)
			if !ok {
				return next(req)
			}

			target := execctx.TargetAuth(scope.Ctx, auth.Scope{Host: rt.Target.Host, Port: rt.Target.Port})
			target.SetPreferredSchemes(opts.TargetPreferredAuthSchemes)

			var proxyEx *auth.Exchange
			if !rt.Direct() {
				p := rt.Proxies[0]
				proxyEx = execctx.ProxyAuth(scope.Ctx, auth.Scope{Host: p.Host, Port: p.Port})
				proxyEx.SetPreferredSchemes(opts.ProxyPreferredAuthSchemes)
			}

			current := req

			for attempt := 0; ; attempt++ {
				if proxyEx != nil {
					if _, err := proxyEx.Apply(current); err != nil {
						return nil, err
					}
				}
				if _, err := target.Apply(current); err != nil {
					return nil, err
				}

				resp, err := next(current)
				if err != nil {
					return resp, err
				}

				// attempts exhausted: hand the last response back as-is
				if attempt+1 >= maxAuthAttempts {
					return resp, nil
				}

				if proxyEx != nil {
					if handled, cerr := proxyEx.OnChallenge(resp); handled {
						if cerr != nil {
							return resp, nil
						}
						clone, rerr := retryClone(current)
						if rerr != nil {
							return resp, nil
						}
						discardBody(resp)
						current = clone
						continue
					}
					proxyEx.OnResponse(resp)
				}

				if handled, cerr := target.OnChallenge(resp); handled {
					if cerr != nil {
						return resp, nil
					}
					clone, rerr := retryClone(current)
					if rerr != nil {
						return resp, nil
					}
					scope.debug("answering authentication challenge", map[string]interface{}{
						"host":  rt.Target.Host,
						"state": target.State().String(),
					})
					discardBody(resp)
					current = clone
					continue
				}

				// a scheme that is not complete yet asks for one more pass
				// with a freshly applied header (none of the built-in ones do)
				if target.OnResponse(resp) {
					clone, rerr := retryClone(current)
					if rerr != nil {
						return resp, nil
					}
					discardBody(resp)
					current = clone
					continue
				}
				return resp, nil
			}
		}
	}
}
