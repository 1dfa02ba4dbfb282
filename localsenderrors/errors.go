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

package localsenderrors

import (
	"errors"
	"fmt"

	"github.com/localsend/localsend-go/internal/humanize"
)

// DecodeError is returned when a textual token does not name any member of a
// closed set of values, such as a device type or a protocol scheme.
type DecodeError struct {
	// Kind names the set being decoded, for example "device type".
	Kind string

	// Token is the input that was rejected.
	Token string

	// Expected lists the accepted tokens.
	Expected []string
}

// NewDecodeError builds a DecodeError for the given token.
func NewDecodeError(kind, token string, expected []string) *DecodeError {
	return &DecodeError{
		Kind:     kind,
		Token:    token,
		Expected: append([]string(nil), expected...),
	}
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unknown %s %q, expected %s",
		e.Kind, e.Token, humanize.QuotedJoin(e.Expected, "or", "nothing"))
}

// IsDecodeError returns true if err, or any error it wraps, is a
// DecodeError.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
