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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDecodeErrorMessage(t *testing.T) {
	tests := []struct {
		desc     string
		expected []string
		want     string
	}{
		{
			desc:     "many",
			expected: []string{"mobile", "desktop", "web"},
			want:     `unknown device type "tablet", expected "mobile", "desktop", or "web"`,
		},
		{
			desc:     "one",
			expected: []string{"mobile"},
			want:     `unknown device type "tablet", expected "mobile"`,
		},
		{
			desc: "none",
			want: `unknown device type "tablet", expected nothing`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			err := NewDecodeError("device type", "tablet", tt.expected)
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestNewDecodeErrorCopiesExpected(t *testing.T) {
	expected := []string{"http", "https"}
	err := NewDecodeError("protocol", "ftp", expected)
	expected[0] = "gopher"
	assert.Equal(t, []string{"http", "https"}, err.Expected)
}

func TestIsDecodeError(t *testing.T) {
	decodeErr := NewDecodeError("protocol", "ftp", []string{"http", "https"})

	tests := []struct {
		desc string
		give error
		want bool
	}{
		{desc: "nil", give: nil, want: false},
		{desc: "plain", give: errors.New("great sadness"), want: false},
		{desc: "direct", give: decodeErr, want: true},
		{desc: "wrapped", give: fmt.Errorf("reading peer: %w", decodeErr), want: true},
		{
			desc: "combined",
			give: multierr.Combine(errors.New("host is required"), decodeErr),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDecodeError(tt.give))
		})
	}
}

func TestDecodeErrorAs(t *testing.T) {
	err := fmt.Errorf("decode: %w", NewDecodeError("api version", "v9", []string{"v3"}))

	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "api version", de.Kind)
	assert.Equal(t, "v9", de.Token)
}
