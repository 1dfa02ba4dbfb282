// Copyright (c) 2021 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package interpolate

import (
	"fmt"
	"strings"
)

// Parse parses an interpolatable string.
//
// A doubled dollar sign is kept as-is and never starts a reference, so
// "$${NAME}" renders literally.
//
// Variable names start with a letter or underscore, continue with letters,
// digits and underscores, and may be split into words by single hyphens
// (${peer-host}). Everything after the first colon up to the closing brace
// is the default value.
func Parse(s string) (String, error) {
	var (
		out String
		lit strings.Builder
	)

	flush := func() {
		if lit.Len() > 0 {
			out = append(out, literal(lit.String()))
			lit.Reset()
		}
	}

	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s) && s[i+1] == '$':
			lit.WriteByte('$')
			i++
		case s[i] == '$' && i+1 < len(s) && s[i+1] == '$':
			// "$$" is literal and does not start a reference.
			lit.WriteString("$$")
			i++
		case s[i] == '$' && i+1 < len(s) && s[i+1] == '{':
			end := strings.IndexByte(s[i+2:], '}')
			if end < 0 {
				return nil, fmt.Errorf("unterminated variable reference at offset %d in %q", i, s)
			}
			v, err := parseVariable(s[i+2 : i+2+end])
			if err != nil {
				return nil, fmt.Errorf("invalid variable reference at offset %d in %q: %v", i, s, err)
			}
			flush()
			out = append(out, v)
			i += 2 + end
		default:
			lit.WriteByte(s[i])
		}
	}
	flush()
	return out, nil
}

// parseVariable parses the body of ${...}.
func parseVariable(body string) (variable, error) {
	v := variable{Name: body}
	if idx := strings.IndexByte(body, ':'); idx >= 0 {
		v = variable{Name: body[:idx], Default: body[idx+1:], HasDefault: true}
	}
	if !isValidName(v.Name) {
		return variable{}, fmt.Errorf("invalid variable name %q", v.Name)
	}
	return v, nil
}

func isValidName(name string) bool {
	if name == "" || name[0] == '-' || name[len(name)-1] == '-' || strings.Contains(name, "--") {
		return false
	}
	for i, c := range name {
		switch {
		case c == '_', c == '-', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
