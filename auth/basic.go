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
	"encoding/base64"
	"net/http"
)

// BasicScheme implements RFC 7617 Basic authentication: base64(user:pass).
type BasicScheme struct {
	Realm string
}

func (s *BasicScheme) Name() string    { return "Basic" }
func (s *BasicScheme) Preference() int { return 1 }

func (s *BasicScheme) ProcessChallenge(challenge string) error {
	s.Realm = parseParam(challenge, "realm")
	return nil
}

func (s *BasicScheme) Authorize(req *http.Request, header, _, _ string, creds Credentials) error {
	token := base64.StdEncoding.EncodeToString([]byte(creds.User + ":" + creds.Pass))
	req.Header.Set(header, "Basic "+token)
	return nil
}

func (s *BasicScheme) Complete() bool { return true }
