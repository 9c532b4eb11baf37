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

// Package clientconfig is the builder-level option set:
// pool sizing, default headers, the pluggable collaborators (auth registry,
// credentials, cookie jar, retry/redirect strategies, cache store) and the
// per-request option defaults every execution starts from.
package clientconfig

import (
	"crypto/tls"
	"net/http"
	"time"

	validator "github.com/go-playground/validator/v10"

	"github.com/sabouaram/httpcore/auth"
	libdur "github.com/sabouaram/httpcore/duration"
	"github.com/sabouaram/httpcore/cachestore"
	"github.com/sabouaram/httpcore/connpool"
	"github.com/sabouaram/httpcore/execctx"
	"github.com/sabouaram/httpcore/logger"
	"github.com/sabouaram/httpcore/redirect"
	"github.com/sabouaram/httpcore/retry"
)

// ClientOptions is the client-wide configuration a Builder assembles,
// one field per builder option.
type ClientOptions struct {
	MaxTotalConnections int `validate:"gte=1"`
	MaxPerRoute         int `validate:"gte=0"`
	DefaultMaxPerRoute  int `validate:"gte=1"`
	ReusePolicy         connpool.ReusePolicy

	// The pool timing knobs use the duration type so a ClientOptions value
	// embedded in an application config file parses "90s" / "1h30m" forms
	// from JSON, YAML or TOML directly.
	ValidateAfterInactivity libdur.Duration `validate:"gte=0"`
	PoolPruneInterval       libdur.Duration `validate:"gte=0"`
	ConnTTL                 libdur.Duration `validate:"gte=0"`

	DefaultHeaders http.Header
	UserAgent      string `validate:"required"`

	AuthRegistry        auth.Registry
	CredentialsProvider auth.CredentialsProvider
	CookieJar           http.CookieJar

	RetryStrategy    retry.Strategy
	RedirectStrategy redirect.Strategy
	CacheStore       cachestore.Store

	TLSConfig *tls.Config
	Logger    logger.Logger

	DefaultRequestOptions execctx.RequestOptions
}

// Default returns the baseline option set: 2 connections per route, 20
// total, LIFO reuse, a 2-second
// inactivity check and a 60-second idle prune sweep.
func Default() ClientOptions {
	return ClientOptions{
		MaxTotalConnections:     20,
		MaxPerRoute:             0,
		DefaultMaxPerRoute:      2,
		ReusePolicy:             connpool.LIFO,
		ValidateAfterInactivity: libdur.ParseDuration(2 * time.Second),
		PoolPruneInterval:       libdur.ParseDuration(60 * time.Second),
		ConnTTL:                 0,
		DefaultHeaders:          make(http.Header),
		UserAgent:               "httpcore",
		AuthRegistry:            auth.DefaultRegistry(),
		RetryStrategy:           retry.NewDefaultStrategy(3),
		RedirectStrategy:        redirect.NewDefaultStrategy(),
		DefaultRequestOptions:   execctx.DefaultRequestOptions(),
	}
}

var validate = validator.New()

// Validate checks o against its struct tags via go-playground/validator.
func (o ClientOptions) Validate() error {
	if err := validate.Struct(o); err != nil {
		return ErrorValidation.Error(err)
	}
	return nil
}
