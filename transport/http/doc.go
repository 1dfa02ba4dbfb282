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

// Package http builds the addresses LocalSend clients use to reach the HTTP
// API of a peer.
//
// A TargetURL names one endpoint of a peer's versioned API. Rendering it
// yields the request URL handed to an HTTP client:
//
// 	u := http.TargetURL{
// 		Version:  http.V3,
// 		Protocol: http.ProtocolHTTPS,
// 		Host:     "fe80::1",
// 		Port:     http.DefaultPort,
// 		Path:     http.InfoPath,
// 	}
// 	u.String() // https://[fe80::1]:53317/api/localsend/v3/info
//
// Targets may also be described in YAML and loaded with
// LoadTargetConfigFromYAML.
//
// Nothing in this package performs network I/O. All values are immutable and
// safe for concurrent use.
package http
