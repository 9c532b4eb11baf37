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

package item

import (
	"time"

	libatm "github.com/sabouaram/httpcore/atomic"
)

type itm[T any] struct {
	e time.Duration
	t libatm.Value[time.Time]
	v libatm.Value[T]
	k libatm.Value[bool]
}

func (o *itm[T]) Load() (T, bool) {
	v, _, k := o.LoadRemain()
	return v, k
}

func (o *itm[T]) Remain() (time.Duration, bool) {
	_, r, k := o.LoadRemain()
	return r, k
}

func (o *itm[T]) LoadRemain() (T, time.Duration, bool) {
	var zero T

	if !o.k.Load() {
		return zero, 0, false
	} else if o.e == 0 {
		return o.v.Load(), 0, true
	}

	elapsed := time.Since(o.t.Load())
	if elapsed >= o.e {
		o.clean()
		return zero, 0, false
	}

	return o.v.Load(), o.e - elapsed, true
}

func (o *itm[T]) Store(val T) {
	o.t.Store(time.Now())
	o.v.Store(val)
	o.k.Store(true)
}

// clean resets the item to its empty state once the TTL has run out, so a
// later Store restarts from scratch instead of resurrecting stale state.
func (o *itm[T]) clean() {
	var zero T
	o.k.Store(false)
	o.t.Store(time.Time{})
	o.v.Store(zero)
}
