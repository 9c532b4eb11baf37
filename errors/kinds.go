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

package errors

// Kind is the closed set of error kinds the execution pipeline can surface.
// Every failed operation returns an Error whose code resolves to exactly one
// Kind via LookupKind.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindConnectTimeout
	KindIOError
	KindTLSFailure
	KindProtocolError
	KindTooManyRedirects
	KindCircularRedirect
	KindNonRepeatable
	KindAuthFailure
	KindPoolShutdown
	KindPoolTimeout
	KindCancelled
	KindUpdateConflict
	KindSerializationError
)

func (k Kind) String() string {
	switch k {
	case KindConnectTimeout:
		return "connect_timeout"
	case KindIOError:
		return "io_error"
	case KindTLSFailure:
		return "tls_failure"
	case KindProtocolError:
		return "protocol_error"
	case KindTooManyRedirects:
		return "too_many_redirects"
	case KindCircularRedirect:
		return "circular_redirect"
	case KindNonRepeatable:
		return "non_repeatable"
	case KindAuthFailure:
		return "auth_failure"
	case KindPoolShutdown:
		return "pool_shutdown"
	case KindPoolTimeout:
		return "pool_timeout"
	case KindCancelled:
		return "cancelled"
	case KindUpdateConflict:
		return "update_conflict"
	case KindSerializationError:
		return "serialization_error"
	default:
		return "unknown"
	}
}

// CodeError values for each Kind, one contiguous block past MinAvailable so
// they never collide with a package's own reserved range.
const (
	ConnectTimeout     = CodeError(MinAvailable + iota) // 5100
	IOError
	TLSFailure
	ProtocolError
	TooManyRedirects
	CircularRedirect
	NonRepeatable
	AuthFailure
	PoolShutdown
	PoolTimeout
	Cancelled
	UpdateConflict
	SerializationError
)

var kindByCode = map[CodeError]Kind{
	ConnectTimeout:     KindConnectTimeout,
	IOError:            KindIOError,
	TLSFailure:         KindTLSFailure,
	ProtocolError:      KindProtocolError,
	TooManyRedirects:   KindTooManyRedirects,
	CircularRedirect:   KindCircularRedirect,
	NonRepeatable:      KindNonRepeatable,
	AuthFailure:        KindAuthFailure,
	PoolShutdown:       KindPoolShutdown,
	PoolTimeout:        KindPoolTimeout,
	Cancelled:          KindCancelled,
	UpdateConflict:     KindUpdateConflict,
	SerializationError: KindSerializationError,
}

func init() {
	RegisterIdFctMessage(ConnectTimeout, func(CodeError) string { return "connect timeout" })
	RegisterIdFctMessage(IOError, func(CodeError) string { return "i/o error" })
	RegisterIdFctMessage(TLSFailure, func(CodeError) string { return "tls handshake failure" })
	RegisterIdFctMessage(ProtocolError, func(CodeError) string { return "protocol error" })
	RegisterIdFctMessage(TooManyRedirects, func(CodeError) string { return "too many redirects" })
	RegisterIdFctMessage(CircularRedirect, func(CodeError) string { return "circular redirect detected" })
	RegisterIdFctMessage(NonRepeatable, func(CodeError) string { return "request body is not repeatable" })
	RegisterIdFctMessage(AuthFailure, func(CodeError) string { return "authentication failure" })
	RegisterIdFctMessage(PoolShutdown, func(CodeError) string { return "connection pool is shut down" })
	RegisterIdFctMessage(PoolTimeout, func(CodeError) string { return "timed out waiting for a pooled connection" })
	RegisterIdFctMessage(Cancelled, func(CodeError) string { return "operation cancelled" })
	RegisterIdFctMessage(UpdateConflict, func(CodeError) string { return "compare-and-swap update conflict" })
	RegisterIdFctMessage(SerializationError, func(CodeError) string { return "cache entry serialization error" })
}

// LookupKind returns the Kind for err if err (or one of its parents, via
// HasCode) carries one of the registered CodeError values. The zero Kind
// (KindUnknown) is returned for any error outside the closed set.
func LookupKind(err error) Kind {
	e, ok := err.(Error)
	if !ok {
		return KindUnknown
	}

	for code, kind := range kindByCode {
		if e.HasCode(code) {
			return kind
		}
	}

	return KindUnknown
}
