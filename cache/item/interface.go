/*
 * MIT License
 *
 * Copyright (c) 2024 Nicolas JUHEL
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

// Package item holds one cached value with its own time-to-live, checked on
// every load rather than by a background sweep. It backs the in-memory
// cache storage, one item per key.
package item

import (
	"time"

	libatm "github.com/sabouaram/httpcore/atomic"
)

// CacheItem is one TTL-tracked value. A zero ttl means the value never
// expires on its own.
type CacheItem[T any] interface {
	// Load returns the value, with false once the TTL has run out or
	// before the first Store.
	Load() (T, bool)
	// LoadRemain is Load plus the time left before expiry (zero when the
	// item carries no TTL).
	LoadRemain() (T, time.Duration, bool)
	// Remain returns only the validity information of LoadRemain.
	Remain() (time.Duration, bool)
	// Store replaces the value and restarts the TTL clock.
	Store(val T)
}

// New returns a CacheItem holding val, expiring ttl after each Store.
func New[T any](ttl time.Duration, val T) CacheItem[T] {
	i := &itm[T]{
		e: ttl,
		t: libatm.NewValue[time.Time](),
		v: libatm.NewValue[T](),
		k: libatm.NewValue[bool](),
	}
	i.Store(val)
	return i
}
