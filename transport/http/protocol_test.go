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

func TestProtocolRoundTrip(t *testing.T) {
	for p, name := range _protocolToString {
		t.Run(name, func(t *testing.T) {
			text, err := Protocol(p).MarshalText()
			require.NoError(t, err)
			assert.Equal(t, name, string(text))

			var got Protocol
			require.NoError(t, got.UnmarshalText(text))
			assert.Equal(t, Protocol(p), got)
		})
	}
}

func TestProtocolString(t *testing.T) {
	assert.Equal(t, "http", ProtocolHTTP.String())
	assert.Equal(t, "https", ProtocolHTTPS.String())
	assert.Equal(t, "7", Protocol(7).String())
}

func TestProtocolFailures(t *testing.T) {
	for _, give := range []string{"", "ftp", "HTTPS", "http://"} {
		t.Run(give, func(t *testing.T) {
			_, err := ParseProtocol(give)
			require.Error(t, err)
			assert.True(t, localsenderrors.IsDecodeError(err))
		})
	}

	_, err := Protocol(7).MarshalText()
	assert.Error(t, err)

	p := ProtocolHTTPS
	assert.Error(t, p.UnmarshalText([]byte("gopher")))
	assert.Equal(t, ProtocolHTTPS, p)
}
