/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
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

package errors

// Each package reserves a contiguous block of CodeError values
// so error codes stay unique and greppable by
// package across the whole module.
const (
	MinPkgLogger       = 1600
	MinPkgLoggerCfg    = 1650
	MinPkgRoute        = 4100
	MinPkgConnPool     = 4200
	MinPkgProtocol     = 4300
	MinPkgAuth         = 4400
	MinPkgRedirect     = 4500
	MinPkgRetry        = 4600
	MinPkgCacheStore   = 4700
	MinPkgExecChain    = 4800
	MinPkgClientConfig = 4900
	MinPkgHttpClient   = 5000

	MinAvailable = 5100
)
