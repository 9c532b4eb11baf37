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
	"net/http"
	"net/url"
	"strings"

	liberr "github.com/sabouaram/httpcore/errors"
)

// DefaultStrategy implements the lineage default: 303 always coerces to
// GET, 301/302 coerce POST to GET when RewriteLegacyPostGet is set (the
// historical browser behavior), 307/308 always preserve method and body.
type DefaultStrategy struct {
	// RewriteLegacyPostGet enables the 301/302 POST->GET legacy rewrite.
	// Defaults to true: enabled for 301/302 + POST.
	RewriteLegacyPostGet bool
}

// NewDefaultStrategy returns the default strategy with the legacy rewrite
// enabled, matching the historical user-agent lineage.
func NewDefaultStrategy() *DefaultStrategy {
	return &DefaultStrategy{RewriteLegacyPostGet: true}
}

func (s *DefaultStrategy) IsRedirect(statusCode int) bool {
	switch statusCode {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return true
	default:
		return false
	}
}

func (s *DefaultStrategy) Resolve(req *http.Request, resp *http.Response) (*Decision, error) {
	if !s.IsRedirect(resp.StatusCode) {
		return nil, nil
	}

	loc := resp.Header.Get("Location")
	if loc == "" || containsControlOrSpace(loc) {
		return nil, liberr.ProtocolError.Error(nil)
	}

	target, err := resolveLocation(req.URL, loc)
	if err != nil {
		return nil, liberr.ProtocolError.Error(err)
	}

	if target.Scheme != "http" && target.Scheme != "https" {
		return nil, liberr.ProtocolError.Error(nil)
	}

	d := &Decision{Method: req.Method, URL: target.String()}

	switch resp.StatusCode {
	case http.StatusSeeOther:
		d.Method = http.MethodGet
		d.DropBody = true
	case http.StatusMovedPermanently, http.StatusFound:
		if s.RewriteLegacyPostGet && req.Method == http.MethodPost {
			d.Method = http.MethodGet
			d.DropBody = true
		} else if req.Body != nil && req.Body != http.NoBody && req.GetBody == nil {
			return nil, liberr.NonRepeatable.Error(nil)
		}
	case http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		if req.Body != nil && req.Body != http.NoBody && req.GetBody == nil {
			return nil, liberr.NonRepeatable.Error(nil)
		}
	}

	return d, nil
}

// resolveLocation resolves loc against base per RFC 3986 reference
// resolution, supporting both absolute and relative Location values
// (`Location: 100` against `/random/oldlocation` resolves to `/random/100`).
func resolveLocation(base *url.URL, loc string) (*url.URL, error) {
	ref, err := url.Parse(loc)
	if err != nil {
		return nil, err
	}
	return base.ResolveReference(ref), nil
}

func containsControlOrSpace(s string) bool {
	for _, r := range s {
		if r <= 0x20 || r == 0x7f {
			return true
		}
	}
	return strings.ContainsAny(s, "\r\n")
}
