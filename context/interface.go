/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
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
 */

// Package context provides Config, a typed key/value map layered over a
// standard context.Context. A Config[T] is itself a context.Context, so it
// can be threaded anywhere a plain context goes, while carrying a closed
// set of well-known slots keyed by T instead of untyped context values.
package context

import (
	"context"

	libatm "github.com/sabouaram/httpcore/atomic"
)

// FuncWalk is the callback for Walk/WalkLimit; returning false stops the
// iteration.
type FuncWalk[T comparable] func(key T, val interface{}) bool

// Config is a concurrency-safe typed map bound to a context.Context.
type Config[T comparable] interface {
	context.Context

	// GetContext returns the underlying context, or context.Background
	// when none was bound.
	GetContext() context.Context

	// Load returns the value stored for key, with ok false when absent.
	Load(key T) (val interface{}, ok bool)
	// Store sets the value for key. Storing nil removes the key.
	Store(key T, cfg interface{})
	// Delete removes key.
	Delete(key T)
	// LoadOrStore returns the existing value for key when present, storing
	// and returning cfg otherwise.
	LoadOrStore(key T, cfg interface{}) (val interface{}, loaded bool)
	// LoadAndDelete removes key and returns its former value.
	LoadAndDelete(key T) (val interface{}, loaded bool)
	// Clean removes every key.
	Clean()

	// Walk calls fct for each key/value pair until fct returns false.
	Walk(fct FuncWalk[T])
	// WalkLimit is Walk restricted to the given keys.
	WalkLimit(fct FuncWalk[T], validKeys ...T)

	// Clone returns an independent copy bound to ctx, or to the current
	// context when ctx is nil. A canceled source yields nil.
	Clone(ctx context.Context) Config[T]
	// Merge copies every pair of cfg into the receiver. It reports false
	// when cfg is nil or the receiver's context is already canceled.
	Merge(cfg Config[T]) bool
}

// New returns an empty Config bound to ctx, or to context.Background when
// ctx is nil.
func New[T comparable](ctx context.Context) Config[T] {
	if ctx == nil {
		ctx = context.Background()
	}

	return &ccx[T]{
		m: libatm.NewMapAny[T](),
		x: ctx,
	}
}
