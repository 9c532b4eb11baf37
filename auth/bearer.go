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

import "net/http"

// BearerScheme implements RFC 6750 Bearer authentication. It carries no
// challenge-derived state: the token is opaque to the client.
type BearerScheme struct {
	realm string
}

func (s *BearerScheme) Name() string    { return "Bearer" }
func (s *BearerScheme) Preference() int { return 3 }

func (s *BearerScheme) ProcessChallenge(challenge string) error {
	s.realm = parseParam(challenge, "realm")
	return nil
}

func (s *BearerScheme) Authorize(req *http.Request, header, _, _ string, creds Credentials) error {
	req.Header.Set(header, "Bearer "+creds.Token)
	return nil
}

// Complete is true: a rejected bearer token has no second round trip to
// offer, the caller must obtain a fresh token out of band.
func (s *BearerScheme) Complete() bool { return true }
