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

// Package memstore is an in-process cachestore.Backend, grounded on the
// generic TTL cache/item package: each key wraps its own CacheItem so
// expiry is checked per-entry rather than through a sweep goroutine.
package memstore

import (
	"context"
	"sync"
	"time"

	item "github.com/sabouaram/httpcore/cache/item"
)

type slot struct {
	it      item.CacheItem[[]byte]
	version uint64
}

// Memstore is the default cachestore.Backend: a mutex-guarded map of
// per-key TTL items, good for single-process use and the test suite.
type Memstore struct {
	mu   sync.Mutex
	data map[string]*slot
	ttl  time.Duration
}

// New returns an empty Memstore. ttl of 0 means entries never expire on
// their own, matching cache/item's "0 = no expiry" convention.
func New(ttl time.Duration) *Memstore {
	return &Memstore{
		data: make(map[string]*slot),
		ttl:  ttl,
	}
}

func (m *Memstore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	s, ok := m.data[key]
	m.mu.Unlock()
	if !ok {
		return nil, false, nil
	}

	val, found := s.it.Load()
	if !found {
		m.mu.Lock()
		delete(m.data, key)
		m.mu.Unlock()
		return nil, false, nil
	}
	return val, true, nil
}

func (m *Memstore) Set(_ context.Context, key string, val []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.data[key]; ok {
		s.it.Store(val)
		s.version++
		return nil
	}

	m.data[key] = &slot{it: item.New[[]byte](m.ttl, val), version: 1}
	return nil
}

func (m *Memstore) Gets(_ context.Context, key string) ([]byte, uint64, bool, error) {
	m.mu.Lock()
	s, ok := m.data[key]
	m.mu.Unlock()
	if !ok {
		return nil, 0, false, nil
	}

	val, found := s.it.Load()
	if !found {
		m.mu.Lock()
		delete(m.data, key)
		m.mu.Unlock()
		return nil, 0, false, nil
	}
	return val, s.version, true, nil
}

func (m *Memstore) Cas(_ context.Context, key string, val []byte, cas uint64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.data[key]
	if !ok {
		if cas != 0 {
			return false, nil
		}
		m.data[key] = &slot{it: item.New[[]byte](m.ttl, val), version: 1}
		return true, nil
	}

	if s.version != cas {
		return false, nil
	}

	s.it.Store(val)
	s.version++
	return true, nil
}

func (m *Memstore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
