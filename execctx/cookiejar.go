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

import "net/http"

// Cookie parsing itself is an external collaborator; the store that holds
// parsed cookies is in scope, so it is reached through Go's own
// http.CookieJar interface rather than a bespoke type.

// SetCookieJar attaches jar to c for the lifetime of the execution.
func SetCookieJar(c Context, jar http.CookieJar) {
	c.Store(keyCookieJar, jar)
}

// CookieJar returns the jar attached by SetCookieJar, or nil if none.
func CookieJar(c Context) http.CookieJar {
	if v, ok := c.Load(keyCookieJar); ok {
		if j, k := v.(http.CookieJar); k {
			return j
		}
	}
	return nil
}
