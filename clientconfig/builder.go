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

package clientconfig

import (
	"crypto/tls"
	"net/http"
	"time"

	"github.com/sabouaram/httpcore/auth"
	"github.com/sabouaram/httpcore/cachestore"
	"github.com/sabouaram/httpcore/connpool"
	libdur "github.com/sabouaram/httpcore/duration"
	"github.com/sabouaram/httpcore/execctx"
	"github.com/sabouaram/httpcore/logger"
	"github.com/sabouaram/httpcore/redirect"
	"github.com/sabouaram/httpcore/retry"
)

// Builder assembles a ClientOptions value through chained
// setters, one per option.
type Builder struct {
	o ClientOptions
}

// NewBuilder starts from Default.
func NewBuilder() *Builder {
	return &Builder{o: Default()}
}

func (b *Builder) MaxTotalConnections(n int) *Builder {
	b.o.MaxTotalConnections = n
	return b
}

func (b *Builder) MaxPerRoute(n int) *Builder {
	b.o.MaxPerRoute = n
	return b
}

func (b *Builder) DefaultMaxPerRoute(n int) *Builder {
	b.o.DefaultMaxPerRoute = n
	return b
}

func (b *Builder) ReusePolicy(p connpool.ReusePolicy) *Builder {
	b.o.ReusePolicy = p
	return b
}

func (b *Builder) ValidateAfterInactivity(d time.Duration) *Builder {
	b.o.ValidateAfterInactivity = libdur.ParseDuration(d)
	return b
}

func (b *Builder) PoolPruneInterval(d time.Duration) *Builder {
	b.o.PoolPruneInterval = libdur.ParseDuration(d)
	return b
}

// ConnTTL caps the total lifetime of every pooled connection created after
// the Client starts, whatever its idle state. Zero means no lifetime cap.
func (b *Builder) ConnTTL(d time.Duration) *Builder {
	b.o.ConnTTL = libdur.ParseDuration(d)
	return b
}

func (b *Builder) DefaultHeaders(h http.Header) *Builder {
	b.o.DefaultHeaders = h
	return b
}

func (b *Builder) UserAgent(ua string) *Builder {
	b.o.UserAgent = ua
	return b
}

func (b *Builder) AuthRegistry(r auth.Registry) *Builder {
	b.o.AuthRegistry = r
	return b
}

func (b *Builder) CredentialsProvider(p auth.CredentialsProvider) *Builder {
	b.o.CredentialsProvider = p
	return b
}

func (b *Builder) CookieJar(j http.CookieJar) *Builder {
	b.o.CookieJar = j
	return b
}

func (b *Builder) RetryStrategy(s retry.Strategy) *Builder {
	b.o.RetryStrategy = s
	return b
}

func (b *Builder) RedirectStrategy(s redirect.Strategy) *Builder {
	b.o.RedirectStrategy = s
	return b
}

func (b *Builder) CacheStore(s cachestore.Store) *Builder {
	b.o.CacheStore = s
	return b
}

func (b *Builder) TLSConfig(c *tls.Config) *Builder {
	b.o.TLSConfig = c
	return b
}

func (b *Builder) Logger(l logger.Logger) *Builder {
	b.o.Logger = l
	return b
}

func (b *Builder) DefaultRequestOptions(o execctx.RequestOptions) *Builder {
	b.o.DefaultRequestOptions = o
	return b
}

// Build validates the accumulated options and returns them, or the
// validation error if a constraint was violated.
func (b *Builder) Build() (ClientOptions, error) {
	if err := b.o.Validate(); err != nil {
		return ClientOptions{}, err
	}
	return b.o, nil
}
