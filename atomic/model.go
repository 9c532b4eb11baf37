/*
 * MIT License
 *
 * Copyright (c) 2023 Nicolas JUHEL
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

package atomic

import "sync"

// box wraps the stored value so a nil slot pointer marks "never stored",
// letting Load tell that state apart from a stored zero T.
type box[T any] struct {
	v T
}

type val[T any] struct {
	v sync.Mutex
	b *box[T]
}

func (o *val[T]) Load() T {
	o.v.Lock()
	defer o.v.Unlock()

	if o.b == nil {
		var zero T
		return zero
	}
	return o.b.v
}

func (o *val[T]) Store(v T) {
	o.v.Lock()
	o.b = &box[T]{v: v}
	o.v.Unlock()
}

type ma[K comparable] struct {
	m sync.Map
}

func (o *ma[K]) Load(key K) (any, bool) {
	return o.m.Load(key)
}

func (o *ma[K]) Store(key K, value any) {
	o.m.Store(key, value)
}

func (o *ma[K]) Delete(key K) {
	o.m.Delete(key)
}

func (o *ma[K]) LoadOrStore(key K, value any) (any, bool) {
	return o.m.LoadOrStore(key, value)
}

func (o *ma[K]) LoadAndDelete(key K) (any, bool) {
	return o.m.LoadAndDelete(key)
}

func (o *ma[K]) Range(fct func(key K, value any) bool) {
	o.m.Range(func(k, v any) bool {
		kk, ok := k.(K)
		if !ok {
			return true
		}
		return fct(kk, v)
	})
}
