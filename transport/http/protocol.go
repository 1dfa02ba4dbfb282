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
	"fmt"
	"strconv"

	"github.com/localsend/localsend-go/localsenderrors"
)

// Protocol selects between plaintext and encrypted transport.
type Protocol uint8

const (
	// ProtocolHTTP is plaintext HTTP.
	ProtocolHTTP Protocol = iota

	// ProtocolHTTPS is HTTP over TLS.
	ProtocolHTTPS

	_numProtocols
)

var _protocolToString = [...]string{
	ProtocolHTTP:  "http",
	ProtocolHTTPS: "https",
}

// Fails to compile if a Protocol lacks a scheme.
var (
	_ [len(_protocolToString) - int(_numProtocols)]struct{}
	_ [int(_numProtocols) - len(_protocolToString)]struct{}
)

const _protocolKind = "protocol"

// ParseProtocol returns the Protocol for a lowercase scheme name ("http" or
// "https").
func ParseProtocol(s string) (Protocol, error) {
	for p, name := range _protocolToString {
		if name == s {
			return Protocol(p), nil
		}
	}
	return 0, localsenderrors.NewDecodeError(_protocolKind, s, _protocolToString[:])
}

// String returns the URL scheme of the protocol.
func (p Protocol) String() string {
	if p < _numProtocols {
		return _protocolToString[p]
	}
	return strconv.Itoa(int(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p Protocol) MarshalText() ([]byte, error) {
	if p >= _numProtocols {
		return nil, fmt.Errorf("unknown protocol: %d", int(p))
	}
	return []byte(_protocolToString[p]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Protocol) UnmarshalText(text []byte) error {
	parsed, err := ParseProtocol(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
