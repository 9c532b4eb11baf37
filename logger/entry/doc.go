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

// Package entry wraps one log statement as a chainable value: level and
// message first, then optional fields (FieldAdd/FieldMerge/FieldSet),
// errors (ErrorAdd), and a final Log() or Check() that hands the finished
// entry to logrus. Nothing is emitted until the terminal call, so an entry
// can be built up across several branches and dropped for free.
//
//	log.Entry(loglvl.InfoLevel, "lease acquired").
//	    FieldAdd("route", rt.String()).
//	    Log()
//
// Check logs the entry at its own level when it carries at least one error,
// or at the fallback level it is given otherwise, and reports whether an
// error was found, replacing the log-and-test-error boilerplate around
// fallible calls.
package entry
