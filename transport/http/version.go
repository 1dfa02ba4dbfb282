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

// APIVersion identifies a version of the LocalSend HTTP API.
//
// The zero value is V3.
type APIVersion uint8

const (
	// V3 is version 3 of the API.
	V3 APIVersion = iota

	_numAPIVersions
)

// _apiVersionTags holds the path segment of every APIVersion.
var _apiVersionTags = [...]string{
	V3: "v3",
}

// Fails to compile if an APIVersion lacks a tag.
var (
	_ [len(_apiVersionTags) - int(_numAPIVersions)]struct{}
	_ [int(_numAPIVersions) - len(_apiVersionTags)]struct{}
)

const _apiVersionKind = "api version"

// ParseAPIVersion returns the APIVersion for a path tag such as "v3".
func ParseAPIVersion(tag string) (APIVersion, error) {
	for v, t := range _apiVersionTags {
		if t == tag {
			return APIVersion(v), nil
		}
	}
	return 0, localsenderrors.NewDecodeError(_apiVersionKind, tag, _apiVersionTags[:])
}

// Tag returns the path segment identifying this version, e.g. "v3".
func (v APIVersion) Tag() string {
	if v < _numAPIVersions {
		return _apiVersionTags[v]
	}
	return strconv.Itoa(int(v))
}

func (v APIVersion) String() string {
	return v.Tag()
}

// MarshalText implements encoding.TextMarshaler.
func (v APIVersion) MarshalText() ([]byte, error) {
	if v >= _numAPIVersions {
		return nil, fmt.Errorf("unknown api version: %d", int(v))
	}
	return []byte(_apiVersionTags[v]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *APIVersion) UnmarshalText(text []byte) error {
	parsed, err := ParseAPIVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
