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

package redirect

import "net/url"

// CrossOrigin reports whether target differs from original in scheme, host
// or port - the trigger for stripping caller-set auth/cookie headers before
// following a redirect.
func CrossOrigin(original, target *url.URL) bool {
	return original.Scheme != target.Scheme || original.Hostname() != target.Hostname() || portOf(original) != portOf(target)
}

func portOf(u *url.URL) string {
	if p := u.Port(); p != "" {
		return p
	}
	switch u.Scheme {
	case "https":
		return "443"
	default:
		return "80"
	}
}

// ScrubCrossOrigin removes headers that must not follow a request across an
// origin boundary: Authorization and Cookie set by the caller. Interceptor
// stages (e.g. the auth state machine) re-apply their own headers fresh on
// the next pass through the chain, so nothing here needs to survive.
func ScrubCrossOrigin(header map[string][]string) {
	delete(header, "Authorization")
	delete(header, "Cookie")
}
