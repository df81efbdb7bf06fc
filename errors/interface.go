/*
 * MIT License
 *
 * Copyright (c) 2024 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package errors provides error handling with numeric error codes, call-site
// capture and parent chaining, compatible with the standard errors.Is / errors.As.
//
// Each package of this module reserves a code range in modules.go and registers
// a message for every code it defines. An Error keeps the code, the message, the
// file and line of its creation, and an optional chain of parent errors.
package errors

import stderr "errors"

// FuncMap is the callback used to walk an error hierarchy. Returning false
// stops the walk.
type FuncMap func(e error) bool

// Error extends the standard error with a numeric code, parent chaining and
// call-site information.
type Error interface {
	error

	// IsCode checks the error's own code, ignoring parents.
	IsCode(code CodeError) bool
	// HasCode checks the error's code and every parent's code.
	HasCode(code CodeError) bool
	// GetCode returns the error's own code.
	GetCode() CodeError

	// Add appends parents to the error's chain.
	Add(parent ...error)
	// SetParent replaces the error's chain with the given parents.
	SetParent(parent ...error)
	// HasParent reports whether the chain is not empty.
	HasParent() bool
	// GetParent returns the flattened chain, optionally prefixed by the
	// error itself.
	GetParent(withMainError bool) []error

	// IsError compares the error's own message with err's message.
	IsError(err error) bool
	// HasError checks the error's message and every parent's message.
	HasError(err error) bool

	// Map walks the error and its chain with the given callback.
	Map(fct FuncMap) bool

	// Is implements the interface used by the standard errors.Is.
	Is(err error) bool

	// GetTrace returns the "file:line" of the error's creation site.
	GetTrace() string

	// StringError renders the error and its full chain, one message per
	// line, parents indented.
	StringError() string
}

// New returns an Error with the given code and message, capturing the caller's
// file and line. Parents may be given as a chain.
func New(code CodeError, message string, parent ...error) Error {
	e := &ers{
		c: code.Uint16(),
		e: message,
		t: getFrame(),
	}
	e.Add(parent...)
	return e
}

// If returns nil when err is nil, otherwise an Error with the given code
// wrapping err.
func If(code CodeError, err error) Error {
	if err == nil {
		return nil
	}
	return New(code, code.Message(), err)
}

// Is reports whether err carries the given code, either directly or through
// any parent, unwrapping non-Error values as needed.
func Is(err error, code CodeError) bool {
	if err == nil {
		return false
	}
	var e Error
	if stderr.As(err, &e) {
		return e.HasCode(code)
	}
	return false
}
