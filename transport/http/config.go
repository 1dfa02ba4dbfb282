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
	"io"
	"io/ioutil"
	"math"
	"os"

	"github.com/localsend/localsend-go/internal/config"
	"github.com/localsend/localsend-go/internal/interpolate"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v2"
)

// TargetConfig describes a peer to address.
//
// 	host: ${LOCALSEND_PEER_HOST:192.168.1.5}
// 	port: 53317
// 	protocol: https
// 	version: v3
//
// Only host is required. Port defaults to DefaultPort, protocol to https and
// version to v3. Host, port and protocol may reference environment variables.
type TargetConfig struct {
	// Host of the peer. This field is required.
	Host string `config:"host,interpolate"`

	// Port the peer listens on. Zero means DefaultPort.
	Port int `config:"port,interpolate"`

	// Protocol is "http" or "https". Empty means "https".
	Protocol string `config:"protocol,interpolate"`

	// Version is the API version tag. Empty means "v3".
	Version string `config:"version"`
}

// LoadTargetConfigFromYAML reads a TargetConfig from YAML.
//
// ${VAR} references are resolved with the given resolver, or with the
// process environment if resolver is nil.
func LoadTargetConfigFromYAML(r io.Reader, resolver interpolate.VariableResolver) (TargetConfig, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return TargetConfig{}, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(b, &data); err != nil {
		return TargetConfig{}, err
	}

	if resolver == nil {
		resolver = os.LookupEnv
	}

	var tc TargetConfig
	if err := config.DecodeInto(&tc, data, config.InterpolateWith(resolver)); err != nil {
		return TargetConfig{}, fmt.Errorf("failed to decode target config: %v", err)
	}
	return tc, nil
}

// Target validates the configuration and returns a TargetURL addressing the
// given endpoint of the configured peer.
//
// All problems with the configuration are reported together.
func (c TargetConfig) Target(path Path) (TargetURL, error) {
	var err error

	if c.Host == "" {
		err = multierr.Append(err, fmt.Errorf("host is required"))
	}

	port := DefaultPort
	switch {
	case c.Port < 0 || c.Port > math.MaxUint16:
		err = multierr.Append(err, fmt.Errorf("port %d is out of range", c.Port))
	case c.Port > 0:
		port = uint16(c.Port)
	}

	protocol := ProtocolHTTPS
	if c.Protocol != "" {
		p, perr := ParseProtocol(c.Protocol)
		err = multierr.Append(err, perr)
		protocol = p
	}

	version := V3
	if c.Version != "" {
		v, verr := ParseAPIVersion(c.Version)
		err = multierr.Append(err, verr)
		version = v
	}

	if err != nil {
		return TargetURL{}, fmt.Errorf("invalid target config: %w", err)
	}

	return TargetURL{
		Version:  version,
		Protocol: protocol,
		Host:     c.Host,
		Port:     port,
		Path:     path,
	}, nil
}
