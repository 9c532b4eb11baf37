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

package execctx

import (
	"github.com/sabouaram/httpcore/connpool"
	"github.com/sabouaram/httpcore/redirect"
	"github.com/sabouaram/httpcore/route"
)

// SetRoute attaches the planned hop list for the current request.
func SetRoute(c Context, rt route.Route) {
	c.Store(keyRoute, rt)
}

// Route returns the route attached by SetRoute, and false if none was set.
func Route(c Context) (route.Route, bool) {
	if v, ok := c.Load(keyRoute); ok {
		if rt, k := v.(route.Route); k {
			return rt, true
		}
	}
	return route.Route{}, false
}

// SetEndpoint attaches the leased pool endpoint servicing the current
// request, so later execution-chain stages can release or mark it
// non-reusable without re-threading it through call arguments.
func SetEndpoint(c Context, ep connpool.Endpoint) {
	c.Store(keyEndpoint, ep)
}

// Endpoint returns the endpoint attached by SetEndpoint, or nil.
func Endpoint(c Context) connpool.Endpoint {
	if v, ok := c.Load(keyEndpoint); ok {
		if ep, k := v.(connpool.Endpoint); k {
			return ep
		}
	}
	return nil
}

// SetUserToken attaches the caller-supplied affinity token used to prefer
// leasing back a connection previously used by the same logical user
// (user token affinity).
func SetUserToken(c Context, token interface{}) {
	c.Store(keyUserToken, token)
}

// UserToken returns the token attached by SetUserToken, or nil.
func UserToken(c Context) interface{} {
	v, _ := c.Load(keyUserToken)
	return v
}

// RedirectTrail returns the redirect.Trail for this execution, creating one
// on first use from the given limits so the first call in a chain defines
// them.
func RedirectTrail(c Context, allowCircular bool, maxRedirects int) *redirect.Trail {
	v, _ := c.LoadOrStore(keyRedirectTrail, redirect.NewTrail(allowCircular, maxRedirects))
	if t, ok := v.(*redirect.Trail); ok {
		return t
	}
	return redirect.NewTrail(allowCircular, maxRedirects)
}
