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

// Package atomic wraps a mutex-guarded value slot and sync.Map behind small
// generic interfaces, so callers get typed Load/Store without repeating the
// type assertions at every call site.
package atomic

// Value holds one value of type T, safe for concurrent use. Storing the
// zero T or a nil never panics: values are boxed behind a mutex.
type Value[T any] interface {
	// Load returns the stored value, or the zero T before the first Store.
	Load() T
	// Store replaces the stored value.
	Store(val T)
}

// Map is a typed-key map of any values, safe for concurrent use. Keys are
// of type K; values stay untyped since one map commonly holds several
// unrelated well-known slots.
type Map[K comparable] interface {
	// Load returns the value for key, with ok false when absent.
	Load(key K) (value any, ok bool)
	// Store sets the value for key, replacing any previous one.
	Store(key K, value any)
	// Delete removes key. Removing an absent key is a no-op.
	Delete(key K)
	// LoadOrStore returns the existing value for key when present, storing
	// and returning value otherwise. loaded reports which happened.
	LoadOrStore(key K, value any) (actual any, loaded bool)
	// LoadAndDelete removes key and returns its former value, with loaded
	// false when the key was absent.
	LoadAndDelete(key K) (value any, loaded bool)
	// Range calls fct for each key/value pair until fct returns false.
	Range(fct func(key K, value any) bool)
}

// NewValue returns an empty Value.
func NewValue[T any]() Value[T] {
	return &val[T]{}
}

// NewMapAny returns an empty Map.
func NewMapAny[K comparable]() Map[K] {
	return &ma[K]{}
}
