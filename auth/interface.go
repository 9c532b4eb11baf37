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

// Package auth implements the per-host authentication state machine:
// scheme selection, credential lookup, challenge parsing and preemptive
// caching of a successful scheme for later requests in the same context.
package auth

import "net/http"

// State is a position in the per-host authentication state machine.
type State uint8

const (
	Unchallenged State = iota
	Challenged
	HaveScheme
	Attempted
	Success
	Failure
)

func (s State) String() string {
	switch s {
	case Unchallenged:
		return "unchallenged"
	case Challenged:
		return "challenged"
	case HaveScheme:
		return "have_scheme"
	case Attempted:
		return "attempted"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// Scope identifies the target a set of Credentials is good for: a host and
// port, optionally narrowed to a realm and scheme name. A zero Realm or
// Scheme matches any.
type Scope struct {
	Host   string
	Port   int
	Realm  string
	Scheme string
}

// Credentials carries whichever fields the selected Scheme needs.
type Credentials struct {
	User  string
	Pass  string
	Token string
}

// CredentialsProvider resolves Credentials for a Scope. Implementations
// must be safe for concurrent use (credentials providers are shared
// across concurrent executions).
type CredentialsProvider interface {
	Credentials(scope Scope) (Credentials, bool)
}

// StaticCredentials is the simplest CredentialsProvider: one fixed
// Credentials value regardless of scope, or none if Creds is the zero value
// and Has is false.
type StaticCredentials struct {
	Creds Credentials
	Has   bool
}

func (s StaticCredentials) Credentials(Scope) (Credentials, bool) {
	return s.Creds, s.Has
}

// Scheme is one authentication mechanism (Basic, Digest, Bearer, ...).
type Scheme interface {
	Name() string
	// Preference ranks schemes when more than one is offered in a
	// challenge; higher wins. Default order: Bearer > Digest
	// > Basic.
	Preference() int
	// ProcessChallenge parses the scheme-specific portion of a
	// WWW-Authenticate/Proxy-Authenticate challenge value.
	ProcessChallenge(challenge string) error
	// Authorize sets header ("Authorization" or "Proxy-Authorization") on
	// req using creds and any state recorded by ProcessChallenge.
	Authorize(req *http.Request, header, method, uri string, creds Credentials) error
	// Complete reports whether the scheme has nothing further to send after
	// a failed attempt (no second round trip is possible).
	Complete() bool
}

// SchemeFactory constructs a fresh Scheme instance, since challenge state
// (nonce, nc counter, ...) is per-exchange.
type SchemeFactory func() Scheme

// Registry maps a scheme name (case-insensitive, matched lower-case) to its
// factory.
type Registry map[string]SchemeFactory

// DefaultRegistry returns the Bearer, Digest and Basic schemes, the set
// the client supports out of the box.
func DefaultRegistry() Registry {
	return Registry{
		"bearer": func() Scheme { return &BearerScheme{} },
		"digest": func() Scheme { return &DigestScheme{} },
		"basic":  func() Scheme { return &BasicScheme{} },
	}
}
