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

// Package interpolate renders strings that reference variables as ${NAME} or
// ${NAME:default}. A backslash before a dollar sign escapes it.
package interpolate

import (
	"fmt"
	"io"
	"strings"
)

// A String is a parsed interpolatable string: a series of literals and
// variable references.
//
// Obtain one with Parse.
type String []term

type (
	term interface {
		term()
	}

	literal string

	variable struct {
		Name       string
		Default    string
		HasDefault bool
	}
)

func (literal) term()  {}
func (variable) term() {}

// VariableResolver looks up the value of a variable.
//
// ok reports whether the variable has a value. Rendering a variable that has
// neither a value nor a default fails.
type VariableResolver func(name string) (value string, ok bool)

// Render renders the string, resolving variables with the given resolver.
func (s String) Render(resolve VariableResolver) (string, error) {
	var b strings.Builder
	if err := s.RenderTo(&b, resolve); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderTo renders the string into w, resolving variables with the given
// resolver.
func (s String) RenderTo(w io.Writer, resolve VariableResolver) error {
	for _, t := range s {
		var value string
		switch t := t.(type) {
		case literal:
			value = string(t)
		case variable:
			v, ok := resolve(t.Name)
			switch {
			case ok:
				value = v
			case t.HasDefault:
				value = t.Default
			default:
				return errUnknownVariable{Name: t.Name}
			}
		}
		if _, err := io.WriteString(w, value); err != nil {
			return err
		}
	}
	return nil
}

type errUnknownVariable struct{ Name string }

func (e errUnknownVariable) Error() string {
	return fmt.Sprintf("variable %q does not have a value or a default", e.Name)
}
