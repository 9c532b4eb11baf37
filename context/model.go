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

package context

import (
	"context"
	"time"

	libatm "github.com/sabouaram/httpcore/atomic"
)

type ccx[T comparable] struct {
	m libatm.Map[T]
	x context.Context
}

func (c *ccx[T]) GetContext() context.Context {
	if c.x != nil {
		return c.x
	}
	return context.Background()
}

func (c *ccx[T]) Deadline() (deadline time.Time, ok bool) {
	return c.GetContext().Deadline()
}

func (c *ccx[T]) Done() <-chan struct{} {
	return c.GetContext().Done()
}

func (c *ccx[T]) Err() error {
	return c.GetContext().Err()
}

// Value first consults the typed map when key is a T, then falls back to
// the bound context's own values.
func (c *ccx[T]) Value(key any) any {
	if i, k := key.(T); k {
		if v, ok := c.Load(i); ok {
			return v
		}
	}
	return c.GetContext().Value(key)
}

func (c *ccx[T]) Load(key T) (interface{}, bool) {
	return c.m.Load(key)
}

func (c *ccx[T]) Store(key T, cfg interface{}) {
	if cfg == nil {
		c.m.Delete(key)
		return
	}
	c.m.Store(key, cfg)
}

func (c *ccx[T]) Delete(key T) {
	c.m.Delete(key)
}

func (c *ccx[T]) LoadOrStore(key T, cfg interface{}) (interface{}, bool) {
	return c.m.LoadOrStore(key, cfg)
}

func (c *ccx[T]) LoadAndDelete(key T) (interface{}, bool) {
	return c.m.LoadAndDelete(key)
}

func (c *ccx[T]) Clean() {
	c.m.Range(func(key T, _ any) bool {
		c.m.Delete(key)
		return true
	})
}

func (c *ccx[T]) Walk(fct FuncWalk[T]) {
	c.m.Range(func(key T, val any) bool {
		return fct(key, val)
	})
}

func (c *ccx[T]) WalkLimit(fct FuncWalk[T], validKeys ...T) {
	for _, k := range validKeys {
		if v, ok := c.m.Load(k); ok {
			if !fct(k, v) {
				return
			}
		}
	}
}

func (c *ccx[T]) Clone(ctx context.Context) Config[T] {
	if c.Err() != nil {
		c.Clean()
		return nil
	} else if ctx == nil {
		ctx = c.GetContext()
	}

	n := &ccx[T]{
		m: libatm.NewMapAny[T](),
		x: ctx,
	}

	c.m.Range(func(key T, value any) bool {
		n.Store(key, value)
		return true
	})

	return n
}

func (c *ccx[T]) Merge(cfg Config[T]) bool {
	if c.Err() != nil {
		c.Clean()
		return false
	} else if cfg == nil {
		return false
	}

	cfg.Walk(func(k T, v interface{}) bool {
		c.m.Store(k, v)
		return true
	})

	return true
}
