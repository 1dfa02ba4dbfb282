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

package http

import (
	"testing"

	"github.com/localsend/localsend-go/localsenderrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIVersionTags(t *testing.T) {
	assert.Equal(t, "v3", V3.Tag())
	assert.Equal(t, "v3", V3.String())
	assert.Equal(t, V3, APIVersion(0), "zero value must be the current version")

	for v, tag := range _apiVersionTags {
		assert.NotEmpty(t, tag, "api version %d has no tag", v)
	}
}

func TestAPIVersionRoundTrip(t *testing.T) {
	for v, tag := range _apiVersionTags {
		t.Run(tag, func(t *testing.T) {
			parsed, err := ParseAPIVersion(APIVersion(v).Tag())
			require.NoError(t, err)
			assert.Equal(t, APIVersion(v), parsed)

			text, err := APIVersion(v).MarshalText()
			require.NoError(t, err)

			var got APIVersion
			require.NoError(t, got.UnmarshalText(text))
			assert.Equal(t, APIVersion(v), got)
		})
	}
}

func TestAPIVersionFailures(t *testing.T) {
	for _, give := range []string{"", "v2", "V3", "3"} {
		t.Run(give, func(t *testing.T) {
			_, err := ParseAPIVersion(give)
			require.Error(t, err)
			assert.True(t, localsenderrors.IsDecodeError(err))
		})
	}

	_, err := APIVersion(42).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "42", APIVersion(42).Tag())
}
