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

package route

import (
	"net/url"
	"strconv"
	"strings"

	liberr "github.com/sabouaram/httpcore/errors"
)

// Planner computes a Route for a request URI.
type Planner interface {
	Plan(u *url.URL) (Route, error)
}

type planner struct {
	resolver SchemePortResolver
	selector ProxySelector
	noProxy  []string
}

// NewPlanner builds a Planner. resolver defaults to DefaultSchemePortResolver
// and selector to NoProxySelector when nil. noProxy lists host suffixes
// (NO_PROXY style) that bypass the selector entirely.
func NewPlanner(resolver SchemePortResolver, selector ProxySelector, noProxy []string) Planner {
	if resolver == nil {
		resolver = DefaultSchemePortResolver()
	}
	if selector == nil {
		selector = NoProxySelector
	}
	return &planner{
		resolver: resolver,
		selector: selector,
		noProxy:  noProxy,
	}
}

func (p *planner) Plan(u *url.URL) (Route, error) {
	if u == nil || u.Host == "" {
		return Route{}, liberr.ProtocolError.Error(nil)
	}

	target, err := p.hop(u)
	if err != nil {
		return Route{}, err
	}

	if p.excluded(target.Host) {
		return Route{Target: target}, nil
	}

	hops, err := p.selector(u)
	if err != nil {
		return Route{}, err
	}

	return Route{Target: target, Proxies: hops}, nil
}

func (p *planner) hop(u *url.URL) (Hop, error) {
	secure := strings.EqualFold(u.Scheme, "https")

	host := u.Hostname()
	portStr := u.Port()

	var port int
	if portStr != "" {
		i, err := strconv.Atoi(portStr)
		if err != nil {
			return Hop{}, liberr.ProtocolError.Error(err)
		}
		port = i
	} else if p, ok := p.resolver.Resolve(u.Scheme); ok {
		port = p
	} else {
		return Hop{}, liberr.ProtocolError.Error(nil)
	}

	return Hop{Host: host, Port: port, Secure: secure}, nil
}

// excluded reports whether host matches one of the planner's NO_PROXY
// suffixes (".example.com" matches "api.example.com" and "example.com").
func (p *planner) excluded(host string) bool {
	for _, n := range p.noProxy {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if n == "*" {
			return true
		}
		n = strings.TrimPrefix(n, ".")
		if strings.EqualFold(host, n) || strings.HasSuffix(strings.ToLower(host), "."+strings.ToLower(n)) {
			return true
		}
	}
	return false
}
