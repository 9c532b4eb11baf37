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

package httpclient

import (
	"fmt"

	liberr "github.com/sabouaram/httpcore/errors"
)

// Error codes for the root client package.
const (
	ErrorClientClosed liberr.CodeError = iota + liberr.MinPkgHttpClient // Execute called on a shut down Client
	ErrorNilRequest                                                    // Execute called with a nil *http.Request
)

func init() {
	if liberr.ExistInMapMessage(ErrorClientClosed) {
		panic(fmt.Errorf("error code collision with package httpclient"))
	}
	liberr.RegisterIdFctMessage(ErrorClientClosed, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case ErrorClientClosed:
		return "client is shut down"
	case ErrorNilRequest:
		return "request must not be nil"
	}

	return liberr.NullMessage
}
