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

import (
	liberr "github.com/sabouaram/httpcore/errors"
)

// Trail tracks the (method, absolute-URI) pairs visited within one
// top-level execute call, enforcing one of two loop-detection modes.
type Trail struct {
	AllowCircular bool
	MaxRedirects  int

	visited map[string]struct{}
	count   int
}

// NewTrail returns an empty Trail. When allowCircular is false, any revisit
// of a (method, URI) pair fails; when true, the trail is capped by
// maxRedirects instead.
func NewTrail(allowCircular bool, maxRedirects int) *Trail {
	return &Trail{
		AllowCircular: allowCircular,
		MaxRedirects:  maxRedirects,
		visited:       make(map[string]struct{}),
	}
}

// Visit records a hop to (method, uri), failing with circular_redirect or
// too_many_redirects per the active mode.
func (t *Trail) Visit(method, uri string) error {
	key := method + " " + uri

	if !t.AllowCircular {
		if _, seen := t.visited[key]; seen {
			return liberr.CircularRedirect.Error(nil)
		}
		t.visited[key] = struct{}{}
		return nil
	}

	if t.count >= t.MaxRedirects {
		return liberr.TooManyRedirects.Error(nil)
	}
	t.count++
	t.visited[key] = struct{}{}
	return nil
}

// Len reports how many hops have been recorded.
func (t *Trail) Len() int {
	return len(t.visited)
}
