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

package execchain

import (
	stderrors "errors"
	"net/http"
	"net/url"

	liberr "github.com/sabouaram/httpcore/errors"
)

// rewind clones req for a repeat pass through the chain (redirect, retry or
// auth re-attempt), rebuilding the body from GetBody when one was attached.
// A request with a body but no GetBody is non-repeatable: rewind returns
// liberr.NonRepeatable for it unless dropBody is set.
func rewind(req *http.Request, newURL *url.URL, method string, dropBody bool) (*http.Request, error) {
	out := req.Clone(req.Context())

	if newURL != nil {
		out.URL = newURL
		out.Host = newURL.Host
	}
	if method != "" {
		out.Method = method
	}

	if dropBody {
		out.Body = http.NoBody
		out.ContentLength = 0
		out.GetBody = nil
		return out, nil
	}

	if req.Body != nil && req.Body != http.NoBody {
		if req.GetBody == nil {
			return nil, liberr.NonRepeatable.Error(nil)
		}
		body, err := req.GetBody()
		if err != nil {
			return nil, liberr.IOError.Error(err)
		}
		out.Body = body
	}

	return out, nil
}

// retryClone is rewind with no URL/method/body change - a plain repeatable
// copy for a retry-stage or auth-stage re-attempt.
func retryClone(req *http.Request) (*http.Request, error) {
	return rewind(req, nil, "", false)
}

// transmitError wraps a connection-stage failure with whether any byte of
// the request had already gone out on the wire, so retryStage can honor
// the rule that non-idempotent methods retry only if the request was not
// yet transmitted.
type transmitError struct {
	err         error
	transmitted bool
}

func (t *transmitError) Error() string { return t.err.Error() }
func (t *transmitError) Unwrap() error { return t.err }

func markTransmitted(err error, transmitted bool) error {
	if err == nil {
		return nil
	}
	return &transmitError{err: err, transmitted: transmitted}
}

func wasTransmitted(err error) bool {
	var t *transmitError
	if stderrors.As(err, &t) {
		return t.transmitted
	}
	return false
}

// unmark strips the transmit marker once the retry decision has been made,
// so the error surfaced to callers is the plain coded chain.
func unmark(err error) error {
	var t *transmitError
	if stderrors.As(err, &t) {
		return t.err
	}
	return err
}
