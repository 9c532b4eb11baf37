/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
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

// Package hashicorp adapts the logger to hashicorp/go-hclog's Logger
// interface, so components built on hclog (the go-retryablehttp client,
// cleanhttp-based tooling, or any other hashicorp-ecosystem dependency)
// log through this module's structured logger instead of their own.
//
// The adapter maps levels bidirectionally (hclog.Trace rides on Debug,
// NoLevel/Off on the nil level), carries With() arguments and Named()
// names in the logger's field system, and exposes StandardLogger /
// StandardWriter bridges for code expecting the stdlib surfaces.
//
//	loghc.SetDefault(func() liblog.Logger { return myLogger }) // route hclog.Default() here
//	l := loghc.New(func() liblog.Logger { return myLogger })
package hashicorp
