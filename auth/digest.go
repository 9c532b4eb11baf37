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

package auth

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
)

// DigestScheme implements RFC 7616 Digest authentication, MD5 only (the
// mandatory-to-implement algorithm) with the qop=auth message-integrity
// mode. SHA-256 digest is not implemented: servers that offer it also
// offer MD5, and MD5 remains the interoperable baseline.
type DigestScheme struct {
	Realm  string
	Nonce  string
	Opaque string
	Qop    string
	Algo   string

	nc uint32
}

func (s *DigestScheme) Name() string    { return "Digest" }
func (s *DigestScheme) Preference() int { return 2 }

func (s *DigestScheme) ProcessChallenge(challenge string) error {
	s.Realm = parseParam(challenge, "realm")
	s.Nonce = parseParam(challenge, "nonce")
	s.Opaque = parseParam(challenge, "opaque")
	s.Qop = firstQop(parseParam(challenge, "qop"))
	s.Algo = parseParam(challenge, "algorithm")
	return nil
}

func firstQop(v string) string {
	for _, p := range strings.Split(v, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			return p
		}
	}
	return ""
}

func (s *DigestScheme) Authorize(req *http.Request, header, method, uri string, creds Credentials) error {
	ha1 := md5hex(creds.User + ":" + s.Realm + ":" + creds.Pass)
	ha2 := md5hex(method + ":" + uri)

	var response, cnonce, ncStr string

	if s.Qop == "auth" {
		nc := atomic.AddUint32(&s.nc, 1)
		ncStr = fmt.Sprintf("%08x", nc)
		cnonce = md5hex(fmt.Sprintf("%s:%d", s.Nonce, nc))[:16]
		response = md5hex(strings.Join([]string{ha1, s.Nonce, ncStr, cnonce, s.Qop, ha2}, ":"))
	} else {
		response = md5hex(ha1 + ":" + s.Nonce + ":" + ha2)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `Digest username="%s", realm="%s", nonce="%s", uri="%s", response="%s"`,
		creds.User, s.Realm, s.Nonce, uri, response)

	if s.Opaque != "" {
		fmt.Fprintf(&b, `, opaque="%s"`, s.Opaque)
	}
	if s.Qop == "auth" {
		fmt.Fprintf(&b, `, qop=%s, nc=%s, cnonce="%s"`, s.Qop, ncStr, cnonce)
	}
	if s.Algo != "" {
		fmt.Fprintf(&b, `, algorithm=%s`, s.Algo)
	}

	req.Header.Set(header, b.String())
	return nil
}

// Complete is true: a stale or rejected digest response has nothing more
// to offer without a fresh server nonce, which only a new challenge carries.
func (s *DigestScheme) Complete() bool { return true }

func md5hex(v string) string {
	sum := md5.Sum([]byte(v))
	return hex.EncodeToString(sum[:])
}
