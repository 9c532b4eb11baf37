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

import "time"

// RequestOptions is the per-request override set layered
// over the client-wide builder options. It lives here, rather than in
// clientconfig, so that execctx (imported by the low-level execution chain)
// never has to import the higher-level builder package back.
type RequestOptions struct {
	ConnectTimeout           time.Duration `validate:"gte=0"`
	ConnectionRequestTimeout time.Duration `validate:"gte=0"`
	ResponseTimeout          time.Duration `validate:"gte=0"`
	SocketTimeout            time.Duration `validate:"gte=0"`
	ExpectContinue           bool

	RedirectsEnabled         bool
	MaxRedirects             int  `validate:"gte=0"`
	CircularRedirectsAllowed bool

	AuthenticationEnabled      bool
	TargetPreferredAuthSchemes []string
	ProxyPreferredAuthSchemes  []string

	CookieSpec string `validate:"omitempty,oneof=default netscape ignore"`
}

// DefaultRequestOptions is the stock per-request configuration:
// redirects and authentication on, up to 50 redirects, no circular
// redirects, default cookie handling.
func DefaultRequestOptions() RequestOptions {
	return RequestOptions{
		ConnectTimeout:           0,
		ConnectionRequestTimeout: 0,
		ResponseTimeout:          0,
		SocketTimeout:            0,
		ExpectContinue:           false,
		RedirectsEnabled:         true,
		MaxRedirects:             50,
		CircularRedirectsAllowed: false,
		AuthenticationEnabled:    true,
		CookieSpec:               "default",
	}
}

// SetRequestOptions attaches the effective per-request options for the
// current execution.
func SetRequestOptions(c Context, o RequestOptions) {
	c.Store(keyRequestOptions, o)
}

// RequestOptionsOf returns the options attached by SetRequestOptions, or
// DefaultRequestOptions if none were set.
func RequestOptionsOf(c Context) RequestOptions {
	if v, ok := c.Load(keyRequestOptions); ok {
		if o, k := v.(RequestOptions); k {
			return o
		}
	}
	return DefaultRequestOptions()
}
