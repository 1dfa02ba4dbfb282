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
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
)

// TargetURL addresses one endpoint of a peer's LocalSend API.
//
// A TargetURL is built for a single outgoing call and rendered with String.
// Rendering never fails and never validates: a malformed Host or Path yields
// a malformed URL, which the HTTP client will reject when dialing.
type TargetURL struct {
	Version  APIVersion
	Protocol Protocol

	// Host is an IPv4 literal, a hostname, or an IPv6 literal without
	// brackets.
	Host string
	Port uint16
	Path Path
}

// String renders the target as
//
// 	<protocol>://<host>:<port>/api/localsend/<version><path>
//
// Hosts containing a colon are treated as IPv6 literals and wrapped in
// brackets. This is a textual check only; any host with a colon is bracketed.
func (u TargetURL) String() string {
	scheme := u.Protocol.String()
	tag := u.Version.Tag()

	var b strings.Builder
	b.Grow(len(scheme) + len(u.Host) + len(_apiPrefix) + len(tag) + len(u.Path) + 12)

	b.WriteString(scheme)
	b.WriteString("://")
	if strings.Contains(u.Host, ":") {
		b.WriteByte('[')
		b.WriteString(u.Host)
		b.WriteByte(']')
	} else {
		b.WriteString(u.Host)
	}
	b.WriteByte(':')
	b.WriteString(strconv.FormatUint(uint64(u.Port), 10))
	b.WriteString(_apiPrefix)
	b.WriteString(tag)
	b.WriteString(string(u.Path))
	return b.String()
}

// URL parses the rendered target for HTTP clients that want a *url.URL.
// It fails only if Host or Path make the rendered string unparseable.
func (u TargetURL) URL() (*url.URL, error) {
	return url.Parse(u.String())
}

// MarshalLogObject implements zap.ObjectMarshaler.
func (u TargetURL) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("url", u.String())
	enc.AddString("protocol", u.Protocol.String())
	enc.AddString("host", u.Host)
	enc.AddUint16("port", u.Port)
	enc.AddString("version", u.Version.Tag())
	enc.AddString("path", string(u.Path))
	return nil
}
