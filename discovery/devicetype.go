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

package discovery

import (
	"fmt"
	"strconv"

	"github.com/localsend/localsend-go/localsenderrors"
)

const (
	// DeviceTypeMobile is a phone or tablet.
	DeviceTypeMobile DeviceType = iota

	// DeviceTypeDesktop is a desktop or laptop computer.
	DeviceTypeDesktop

	// DeviceTypeWeb is a browser-based client.
	DeviceTypeWeb

	// DeviceTypeHeadless is a client without a user interface, such as a CLI.
	DeviceTypeHeadless

	// DeviceTypeServer is an always-on machine that only receives files.
	DeviceTypeServer

	_numDeviceTypes
)

// _deviceTypeToString holds the wire token of every DeviceType. Peers match
// these tokens exactly; renaming one requires a protocol version bump.
var _deviceTypeToString = [...]string{
	DeviceTypeMobile:   "mobile",
	DeviceTypeDesktop:  "desktop",
	DeviceTypeWeb:      "web",
	DeviceTypeHeadless: "headless",
	DeviceTypeServer:   "server",
}

// A compiler error on either line below means a DeviceType was added or
// removed without updating _deviceTypeToString.
var (
	_ [len(_deviceTypeToString) - int(_numDeviceTypes)]struct{}
	_ [int(_numDeviceTypes) - len(_deviceTypeToString)]struct{}
)

var _stringToDeviceType = func() map[string]DeviceType {
	m := make(map[string]DeviceType, len(_deviceTypeToString))
	for dt, s := range _deviceTypeToString {
		m[s] = DeviceType(dt)
	}
	return m
}()

const _deviceTypeKind = "device type"

// DeviceType classifies a peer taking part in discovery or transfers.
//
// DeviceType is encoded in JSON payloads as its wire token through
// MarshalText and UnmarshalText.
//
// The zero value is DeviceTypeMobile.
type DeviceType uint8

// DeviceTypes returns every DeviceType in declaration order.
func DeviceTypes() []DeviceType {
	types := make([]DeviceType, 0, _numDeviceTypes)
	for dt := DeviceType(0); dt < _numDeviceTypes; dt++ {
		types = append(types, dt)
	}
	return types
}

// ParseDeviceType returns the DeviceType named by the given wire token.
// Matching is case-sensitive.
//
// An unrecognized token yields a *localsenderrors.DecodeError. Callers decide
// whether an unknown type reported by a newer peer drops the field or rejects
// the message.
func ParseDeviceType(token string) (DeviceType, error) {
	dt, ok := _stringToDeviceType[token]
	if !ok {
		return 0, localsenderrors.NewDecodeError(_deviceTypeKind, token, _deviceTypeToString[:])
	}
	return dt, nil
}

// String returns the wire token for the DeviceType.
func (dt DeviceType) String() string {
	if dt < _numDeviceTypes {
		return _deviceTypeToString[dt]
	}
	return strconv.Itoa(int(dt))
}

// MarshalText implements encoding.TextMarshaler.
func (dt DeviceType) MarshalText() ([]byte, error) {
	if dt >= _numDeviceTypes {
		return nil, fmt.Errorf("unknown device type: %d", int(dt))
	}
	return []byte(_deviceTypeToString[dt]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (dt *DeviceType) UnmarshalText(text []byte) error {
	parsed, err := ParseDeviceType(string(text))
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}
