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

import "strings"

// parseChallenges splits a comma-separated list of WWW-Authenticate /
// Proxy-Authenticate header values into scheme name -> raw challenge
// params, lower-casing scheme names for lookup in a Registry. Multiple
// header instances and multiple challenges within one header value are
// both supported.
func parseChallenges(values []string) map[string]string {
	out := make(map[string]string)

	for _, v := range values {
		for _, part := range splitSchemes(v) {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			name, rest := firstToken(part)
			out[strings.ToLower(name)] = rest
		}
	}

	return out
}

// splitSchemes splits a header value into one entry per auth-scheme
// ("Basic realm=..., Digest realm=..., nonce=..." -> two entries), first
// splitting on commas that are not inside a quoted string then regrouping:
// a segment starts a new scheme when the text before its first '=' still
// contains whitespace (i.e. it is "SchemeName key", not a bare "key").
// A continuation segment ("nonce=\"n\"") has no scheme-name prefix and so
// no whitespace before its '='.
func splitSchemes(v string) []string {
	segments := splitOutsideQuotes(v)

	var parts []string
	for _, seg := range segments {
		trimmed := strings.TrimSpace(seg)
		if isNewScheme(trimmed) || len(parts) == 0 {
			parts = append(parts, trimmed)
			continue
		}
		parts[len(parts)-1] += ", " + trimmed
	}

	return parts
}

func splitOutsideQuotes(v string) []string {
	var (
		parts []string
		depth bool
		start int
	)

	for i := 0; i < len(v); i++ {
		switch v[i] {
		case '"':
			depth = !depth
		case ',':
			if depth {
				continue
			}
			parts = append(parts, v[start:i])
			start = i + 1
		}
	}
	parts = append(parts, v[start:])

	return parts
}

func isNewScheme(segment string) bool {
	eq := strings.IndexByte(segment, '=')
	if eq < 0 {
		return segment != ""
	}
	return strings.ContainsAny(segment[:eq], " \t")
}

func firstToken(s string) (token, rest string) {
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}

// parseParam extracts the value of key from a challenge parameter string
// like `realm="test realm", qop="auth"`.
func parseParam(params, key string) string {
	for _, seg := range strings.Split(params, ",") {
		seg = strings.TrimSpace(seg)
		kv := strings.SplitN(seg, "=", 2)
		if len(kv) != 2 {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(kv[0]), key) {
			continue
		}
		return strings.Trim(strings.TrimSpace(kv[1]), `"`)
	}
	return ""
}
