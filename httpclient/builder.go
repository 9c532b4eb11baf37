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

package httpclient

import "github.com/sabouaram/httpcore/clientconfig"

// Builder is the fluent entry point for assembling a Client: it wraps
// clientconfig.Builder's fluent option setters and turns the accumulated
// ClientOptions into a running Client, rather than stopping at the option
// struct clientconfig.Builder itself returns.
type Builder struct {
	inner *clientconfig.Builder
}

// NewBuilder starts a Builder from clientconfig.Default().
func NewBuilder() *Builder {
	return &Builder{inner: clientconfig.NewBuilder()}
}

// Options exposes the underlying clientconfig.Builder and its setters
// (MaxTotalConnections, DefaultHeaders, AuthRegistry,
// CredentialsProvider, CookieJar, RetryStrategy, RedirectStrategy,
// CacheStore, UserAgent, ...).
func (b *Builder) Options() *clientconfig.Builder {
	return b.inner
}

// Build validates the accumulated options and returns a running Client, or
// the validation error.
func (b *Builder) Build() (*Client, error) {
	opts, err := b.inner.Build()
	if err != nil {
		return nil, err
	}
	return New(opts)
}
