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

// Package cachestore abstracts the key -> entry store behind HTTP caching:
// a CAS-updatable map keyed by method + effective URI + a Vary fingerprint,
// with a pluggable Backend so callers can swap in an external KV without
// touching the stage that consumes it.
package cachestore

import (
	"context"
	"net/http"
	"time"
)

// Entry is one cached response: status, headers and body, plus the set of
// sibling fingerprints Vary produced.
type Entry struct {
	Status   int
	Header   http.Header
	Body     []byte
	Stored   time.Time
	Variants map[string]string
}

// Backend is the external key/value protocol: get, set,
// gets (get-with-CAS-token), cas, delete. A Backend stores opaque bytes;
// Store owns the Entry codec on top of it.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte) error
	// Gets is Get plus an opaque CAS token for a subsequent Cas call.
	Gets(ctx context.Context, key string) ([]byte, uint64, bool, error)
	// Cas writes val only if the stored value's token still matches cas. It
	// reports false, nil when the token is stale (a concurrent writer won).
	Cas(ctx context.Context, key string, val []byte, cas uint64) (bool, error)
	Delete(ctx context.Context, key string) error
}

// Store is the abstract cache contract: get, put, remove, update.
type Store interface {
	Get(ctx context.Context, req *http.Request, varying []string) (*Entry, bool, error)
	Put(ctx context.Context, req *http.Request, varying []string, entry *Entry) error
	Remove(ctx context.Context, req *http.Request, varying []string) error
	// Update reads, lets fn mutate, and writes back with the backend's CAS
	// primitive, retrying on conflict up to maxRetries times before failing
	// with update_conflict.
	Update(ctx context.Context, req *http.Request, varying []string, maxRetries int, fn func(*Entry) (*Entry, error)) error
}
