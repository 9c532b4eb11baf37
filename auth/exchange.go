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

package auth

import (
	"net/http"
	"strings"
	"sync"

	liberr "github.com/sabouaram/httpcore/errors"
)

// Exchange drives the Unchallenged -> Challenged -> HaveScheme -> Attempted
// -> Success|Failure state machine for one (host, port) target, or for the
// forward proxy in front of it. One Exchange is kept per scope for the
// lifetime of an execution context so a scheme picked once can be reused
// preemptively (a successful scheme is cached for later
// requests against the same host).
type Exchange struct {
	mu sync.Mutex

	registry Registry
	creds    CredentialsProvider
	scope    Scope
	proxy    bool

	state  State
	scheme Scheme
	last   Credentials
	prefer []string
}

// NewExchange builds an Exchange for scope. proxy selects whether challenges
// are read from Proxy-Authenticate/407 or WWW-Authenticate/401, and whether
// Apply writes Proxy-Authorization or Authorization.
func NewExchange(registry Registry, creds CredentialsProvider, scope Scope, proxy bool) *Exchange {
	return &Exchange{
		registry: registry,
		creds:    creds,
		scope:    scope,
		proxy:    proxy,
		state:    Unchallenged,
	}
}

func (e *Exchange) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// SetPreferredSchemes overrides the schemes' own Preference ranking:
// listed names outrank unlisted ones, and earlier names outrank later
// ones. An empty list restores the default ranking.
func (e *Exchange) SetPreferredSchemes(names []string) {
	e.mu.Lock()
	e.prefer = names
	e.mu.Unlock()
}

// rank is the effective preference of a scheme given the caller override.
// Called with e.mu held.
func (e *Exchange) rank(name string, s Scheme) int {
	for i, p := range e.prefer {
		if strings.EqualFold(p, name) {
			return 1<<16 - i
		}
	}
	return s.Preference()
}

func (e *Exchange) challengeStatus() int {
	if e.proxy {
		return http.StatusProxyAuthRequired
	}
	return http.StatusUnauthorized
}

func (e *Exchange) challengeHeader() string {
	if e.proxy {
		return "Proxy-Authenticate"
	}
	return "Www-Authenticate"
}

// HeaderName is the request header Apply writes to.
func (e *Exchange) HeaderName() string {
	if e.proxy {
		return "Proxy-Authorization"
	}
	return "Authorization"
}

// OnChallenge inspects resp for a challenge relevant to this Exchange's
// scope (proxy vs target), selects the highest-Preference scheme the
// registry and the challenge agree on, and looks up credentials for it. It
// is a no-op, returning false, when resp does not carry a challenge this
// Exchange cares about.
func (e *Exchange) OnChallenge(resp *http.Response) (bool, error) {
	if resp.StatusCode != e.challengeStatus() {
		return false, nil
	}

	challenges := parseChallenges(resp.Header.Values(e.challengeHeader()))
	if len(challenges) == 0 {
		return false, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	var (
		best     Scheme
		bestName string
		bestPref = -1
	)

	for name, factory := range e.registry {
		params, offered := challenges[name]
		if !offered {
			continue
		}
		candidate := factory()
		pref := e.rank(name, candidate)
		if pref <= bestPref {
			continue
		}
		if err := candidate.ProcessChallenge(params); err != nil {
			continue
		}
		best, bestName, bestPref = candidate, name, pref
	}

	if best == nil {
		e.state = Failure
		return true, liberr.AuthFailure.Error(nil)
	}

	scope := e.scope
	scope.Scheme = bestName
	scope.Realm = realmOf(best)

	var (
		creds Credentials
		ok    bool
	)
	if e.creds != nil {
		creds, ok = e.creds.Credentials(scope)
	}
	if !ok {
		e.state = Challenged
		e.scheme = best
		return true, liberr.AuthFailure.Error(nil)
	}

	e.scheme = best
	e.last = creds
	e.state = HaveScheme
	return true, nil
}

func realmOf(s Scheme) string {
	switch v := s.(type) {
	case *BasicScheme:
		return v.Realm
	case *DigestScheme:
		return v.Realm
	case *BearerScheme:
		return v.realm
	default:
		return ""
	}
}

// Apply sets the Authorization/Proxy-Authorization header on req when a
// scheme has been selected and credentials are known. It reports false when
// there is nothing to apply yet (state is Unchallenged or lacks credentials).
func (e *Exchange) Apply(req *http.Request) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.scheme == nil || e.state == Failure || e.state == Challenged {
		return false, nil
	}

	uri := req.URL.RequestURI()
	if err := e.scheme.Authorize(req, e.HeaderName(), req.Method, uri, e.last); err != nil {
		return false, liberr.AuthFailure.Error(err)
	}

	e.state = Attempted
	return true, nil
}

// OnResponse updates state after a request carrying an Authorize'd header
// comes back. It reports whether the caller should retry the request with a
// freshly re-applied header: true only when the response is another
// challenge and the selected scheme reports itself not Complete. The new
// challenge's parameters are not parsed, and the built-in Basic, Digest and
// Bearer schemes are always Complete, so with them a repeated challenge
// ends in Failure.
func (e *Exchange) OnResponse(resp *http.Response) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if resp.StatusCode != e.challengeStatus() {
		if e.state == Attempted {
			e.state = Success
		}
		return false
	}

	if e.state != Attempted {
		return false
	}

	if e.scheme != nil && !e.scheme.Complete() {
		e.state = HaveScheme
		return true
	}

	e.state = Failure
	return false
}
