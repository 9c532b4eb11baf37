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
	"fmt"
	"sync"

	"github.com/sabouaram/httpcore/auth"
)

// SetCredentialsProvider attaches the credentials provider consulted by
// every auth.Exchange created from c.
func SetCredentialsProvider(c Context, p auth.CredentialsProvider) {
	c.Store(keyCredentials, p)
}

// CredentialsProvider returns the provider attached by SetCredentialsProvider.
func CredentialsProvider(c Context) auth.CredentialsProvider {
	if v, ok := c.Load(keyCredentials); ok {
		if p, k := v.(auth.CredentialsProvider); k {
			return p
		}
	}
	return nil
}

// SetAuthRegistry attaches the scheme registry used to select a scheme on
// challenge, overriding auth.DefaultRegistry.
func SetAuthRegistry(c Context, r auth.Registry) {
	c.Store(keyAuthRegistry, r)
}

// AuthRegistry returns the registry attached by SetAuthRegistry, or
// auth.DefaultRegistry if none was set.
func AuthRegistry(c Context) auth.Registry {
	if v, ok := c.Load(keyAuthRegistry); ok {
		if r, k := v.(auth.Registry); k {
			return r
		}
	}
	return auth.DefaultRegistry()
}

// exchangeTable is the per-context, lazily-populated map of (host, port)
// scopes to the auth.Exchange tracking that scope's state machine. Kept
// under one ctxKey (target vs proxy) since execctx.Context only keys
// well-known slots by a closed key enum, not by arbitrary scope.
type exchangeTable struct {
	mu sync.Mutex
	m  map[string]*auth.Exchange
}

func scopeKey(scope auth.Scope) string {
	return fmt.Sprintf("%s:%d", scope.Host, scope.Port)
}

func (t *exchangeTable) get(scope auth.Scope, proxy bool, registry auth.Registry, creds auth.CredentialsProvider) *auth.Exchange {
	t.mu.Lock()
	defer t.mu.Unlock()

	k := scopeKey(scope)
	if e, ok := t.m[k]; ok {
		return e
	}

	e := auth.NewExchange(registry, creds, scope, proxy)
	t.m[k] = e
	return e
}

func tableFor(c Context, k key) *exchangeTable {
	v, _ := c.LoadOrStore(k, &exchangeTable{m: make(map[string]*auth.Exchange)})
	t, ok := v.(*exchangeTable)
	if !ok {
		// Another goroutine raced a different type in under the same key;
		// this should not happen since only this package ever stores
		// keyTargetAuth/keyProxyAuth, but fail safe with a fresh table
		// rather than panic.
		return &exchangeTable{m: make(map[string]*auth.Exchange)}
	}
	return t
}

// TargetAuth returns the Exchange for the given target scope, creating one
// on first use and caching it for the lifetime of c so a scheme resolved
// once is reused preemptively on later requests in the same context
// (preemptive auth).
func TargetAuth(c Context, scope auth.Scope) *auth.Exchange {
	return tableFor(c, keyTargetAuth).get(scope, false, AuthRegistry(c), CredentialsProvider(c))
}

// ProxyAuth is TargetAuth's counterpart for the forward proxy in front of
// the target, tracked independently (per host, target and
// proxy separate).
func ProxyAuth(c Context, scope auth.Scope) *auth.Exchange {
	return tableFor(c, keyProxyAuth).get(scope, true, AuthRegistry(c), CredentialsProvider(c))
}
