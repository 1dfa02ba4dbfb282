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

// Package logging sets up process-wide logging for LocalSend clients.
//
// Libraries in this module never configure logging themselves; they accept a
// *zap.Logger or log through zap.L(). Applications call EnableDebugLogging
// once at startup, or as often as they like: only the first call has an
// effect.
package logging

import (
	"sync"

	"go.uber.org/atomic"
	"go.uber.org/zap"
)

var _bootstrap bootstrap

// bootstrap installs the global logger at most once.
type bootstrap struct {
	enabled atomic.Bool

	// mu is held while the logger is built and installed so that no caller
	// returns before the global logger is in place.
	mu sync.Mutex
}

// EnableDebugLogging installs a development logger at debug level as the
// global zap logger.
//
// It is safe to call concurrently and more than once. When it returns nil,
// the debug logger is installed. Later calls leave it in place and log that
// it was already initialized. If building the logger fails, the error is
// returned and a later call tries again.
func EnableDebugLogging() error {
	return _bootstrap.enable(newDebugLogger)
}

func newDebugLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	return cfg.Build()
}

func (b *bootstrap) enable(build func() (*zap.Logger, error)) error {
	if b.enabled.Load() {
		zap.L().Debug("debug logging already initialized")
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.enabled.Load() {
		zap.L().Debug("debug logging already initialized")
		return nil
	}

	logger, err := build()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	b.enabled.Store(true)
	return nil
}
