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

package connpool

import (
	"context"
	"time"
)

// Reaper periodically prunes expired idle connections from a Pool. It plays
// the same role as a health-monitor loop watching a keyed server collection:
// a single background goroutine sweeping a shared resource on an interval,
// stoppable via context cancellation.
type Reaper struct {
	pool     Pool
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewReaper builds a Reaper that calls CloseExpired on p every interval.
// Call Start to begin the background loop and Stop to end it.
func NewReaper(p Pool, interval time.Duration) *Reaper {
	return &Reaper{pool: p, interval: interval}
}

func (r *Reaper) Start(ctx context.Context) {
	if r.interval <= 0 {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})

	go func() {
		defer close(r.done)

		t := time.NewTicker(r.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				r.pool.CloseExpired()
			}
		}
	}()
}

func (r *Reaper) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
}
