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

package cachestore

import (
	"bytes"
	"context"
	"encoding/gob"
	"net/http"

	liberr "github.com/sabouaram/httpcore/errors"
)

// store is the default Store: a Backend plus an Entry codec and a
// CAS-retrying Update loop.
type store struct {
	backend Backend
	keyFunc KeyFunc
}

// New wraps backend as a Store, deriving keys with DefaultKeyFunc unless
// overridden.
func New(backend Backend, opts ...Option) Store {
	s := &store{backend: backend, keyFunc: DefaultKeyFunc}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Option customizes a Store built by New.
type Option func(*store)

// WithKeyFunc overrides the default SHA-256 key derivation.
func WithKeyFunc(fn KeyFunc) Option {
	return func(s *store) { s.keyFunc = fn }
}

// envelope is the stored form of an Entry: the derived key rides along so a
// hash collision (two requests deriving the same backend key) is detectable
// on read.
type envelope struct {
	Key   string
	Entry *Entry
}

func encodeEntry(key string, e *Entry) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(envelope{Key: key, Entry: e}); err != nil {
		return nil, liberr.SerializationError.Error(err)
	}
	return buf.Bytes(), nil
}

// decodeEntry unwraps a stored envelope. A payload that does not decode, or
// whose embedded key differs from the requested one (hash collision), is a
// miss, never an error: the next Put overwrites it unconditionally.
func decodeEntry(key string, raw []byte) (*Entry, bool) {
	var env envelope
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&env); err != nil {
		return nil, false
	}
	if env.Key != key || env.Entry == nil {
		return nil, false
	}
	return env.Entry, true
}

func (s *store) Get(ctx context.Context, req *http.Request, varying []string) (*Entry, bool, error) {
	key := s.keyFunc(req, varying)
	raw, ok, err := s.backend.Get(ctx, key)
	if err != nil || !ok {
		return nil, false, err
	}

	e, ok := decodeEntry(key, raw)
	if !ok {
		return nil, false, nil
	}
	return e, true, nil
}

func (s *store) Put(ctx context.Context, req *http.Request, varying []string, entry *Entry) error {
	key := s.keyFunc(req, varying)
	raw, err := encodeEntry(key, entry)
	if err != nil {
		return err
	}
	return s.backend.Set(ctx, key, raw)
}

func (s *store) Remove(ctx context.Context, req *http.Request, varying []string) error {
	key := s.keyFunc(req, varying)
	return s.backend.Delete(ctx, key)
}

// Update reads the current entry (if any) via Gets, lets fn compute the
// next value, then writes it back with Cas. On a lost race it re-reads and
// retries, up to maxRetries times, before failing with update_conflict.
// No update is ever silently dropped.
func (s *store) Update(ctx context.Context, req *http.Request, varying []string, maxRetries int, fn func(*Entry) (*Entry, error)) error {
	key := s.keyFunc(req, varying)

	for attempt := 0; attempt <= maxRetries; attempt++ {
		raw, cas, found, err := s.backend.Gets(ctx, key)
		if err != nil {
			return err
		}

		var current *Entry
		if found {
			current, _ = decodeEntry(key, raw)
		}

		next, err := fn(current)
		if err != nil {
			return err
		}

		encoded, err := encodeEntry(key, next)
		if err != nil {
			return err
		}

		ok, err := s.backend.Cas(ctx, key, encoded, cas)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}

	return liberr.UpdateConflict.Error(nil)
}
