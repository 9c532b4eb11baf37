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

	"github.com/sabouaram/httpcore/execctx"
)

// protocolStage sits between retry and auth: it plans the route once per request
// (so every inner stage, including auth's scope lookups, shares it) and
// normalizes headers the way a browser or curl would - Host, User-Agent,
// Cookie - before handing off to auth.
func protocolStage(scope *Scope) Middleware {
	return func(next Handler) Handler {
		return func(req *http.Request) (*http.Response, error) {
			rt, err := scope.Planner.Plan(req.URL)
			if err != nil {
				return nil, err
			}
			execctx.SetRoute(scope.Ctx, rt)

			normalizeHeaders(scope, req)
			attachCookies(scope, req)

			return next(req)
		}
	}
}

func normalizeHeaders(scope *Scope, req *http.Request) {
	if req.Header == nil {
		req.Header = make(http.Header)
	}

	for k, vs := range scope.DefaultHeaders {
		if _, ok := req.Header[k]; !ok {
			req.Header[k] = vs
		}
	}

	if scope.UserAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", scope.UserAgent)
	}

	if req.Host == "" {
		req.Host = req.URL.Host
	}

	if scope.opts().ExpectContinue && req.Body != nil && req.Body != http.NoBody &&
		req.Header.Get("Expect") == "" {
		req.Header.Set("Expect", "100-continue")
	}
}

func attachCookies(scope *Scope, req *http.Request) {
	if scope.opts().CookieSpec == "ignore" {
		return
	}

	jar := execctx.CookieJar(scope.Ctx)
	if jar == nil {
		return
	}

	for _, c := range jar.Cookies(req.URL) {
		req.AddCookie(c)
	}
}
