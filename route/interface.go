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

// Package route computes the ordered hop list a request must traverse -
// the target plus any proxies and whether TLS is layered at each hop - and
// defines the equality used to key the connection pool.
package route

import (
	"fmt"
	"net/url"
	"strings"
)

// Hop is a single network hop: a host/port pair and whether traffic to it
// is TLS-secured.
type Hop struct {
	Host   string
	Port   int
	Secure bool
}

func (h Hop) String() string {
	scheme := "http"
	if h.Secure {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s:%d", scheme, h.Host, h.Port)
}

func (h Hop) Equal(o Hop) bool {
	return h.Host == o.Host && h.Port == o.Port && h.Secure == o.Secure
}

// Route is the ordered hop list (target, via proxies..., secure?) a request
// must traverse. Route equality is the connection pool's key.
type Route struct {
	Target  Hop
	Proxies []Hop
}

// Key returns a stable string uniquely identifying the route, suitable as a
// map key for the connection pool's per-route subpools.
func (r Route) Key() string {
	b := strings.Builder{}
	b.WriteString(r.Target.String())
	for _, p := range r.Proxies {
		b.WriteByte('|')
		b.WriteString(p.String())
	}
	return b.String()
}

func (r Route) Equal(o Route) bool {
	if !r.Target.Equal(o.Target) {
		return false
	}
	if len(r.Proxies) != len(o.Proxies) {
		return false
	}
	for i := range r.Proxies {
		if !r.Proxies[i].Equal(o.Proxies[i]) {
			return false
		}
	}
	return true
}

// Direct reports whether the route has no proxy hops.
func (r Route) Direct() bool {
	return len(r.Proxies) == 0
}

func (r Route) String() string {
	if r.Direct() {
		return r.Target.String()
	}
	b := strings.Builder{}
	for _, p := range r.Proxies {
		b.WriteString(p.String())
		b.WriteString(" -> ")
	}
	b.WriteString(r.Target.String())
	return b.String()
}

// SchemePortResolver maps a URI scheme to its default port.
type SchemePortResolver interface {
	Resolve(scheme string) (port int, ok bool)
}

type defaultResolver struct{}

func (defaultResolver) Resolve(scheme string) (int, bool) {
	switch strings.ToLower(scheme) {
	case "http":
		return 80, true
	case "https":
		return 443, true
	default:
		return 0, false
	}
}

// DefaultSchemePortResolver returns the http/https port resolver.
func DefaultSchemePortResolver() SchemePortResolver {
	return defaultResolver{}
}

// ProxySelector returns the ordered proxy hops to use for a given request
// URI. A nil or empty return means a direct route.
type ProxySelector func(u *url.URL) ([]Hop, error)

// NoProxySelector never selects a proxy.
func NoProxySelector(*url.URL) ([]Hop, error) {
	return nil, nil
}
