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

package errors

import (
	"math"
	"strconv"
	"sync"
)

// Message generates the message associated with an error code.
type Message func(code CodeError) string

// CodeError is a numeric error code. Each package of this module reserves a
// range of codes (see modules.go) and registers a message per code.
type CodeError uint16

const (
	// UnknownError is the fallback code when no specific code applies.
	UnknownError CodeError = 0

	// UnknownMessage is the message associated with UnknownError.
	UnknownMessage = "unknown error"
)

var (
	idm = make(map[CodeError]Message)
	idl = sync.RWMutex{}
)

// ParseCodeError converts an int64 into a CodeError, clamping out-of-range
// values.
func ParseCodeError(i int64) CodeError {
	if i < 0 {
		return UnknownError
	} else if i >= int64(math.MaxUint16) {
		return CodeError(math.MaxUint16)
	} else {
		return CodeError(i)
	}
}

// Uint16 returns the code as an uint16.
func (c CodeError) Uint16() uint16 {
	return uint16(c)
}

// Int returns the code as an int.
func (c CodeError) Int() int {
	return int(c)
}

// String returns the decimal representation of the code.
func (c CodeError) String() string {
	return strconv.Itoa(c.Int())
}

// Message returns the registered message for the code, or UnknownMessage when
// no message is registered.
func (c CodeError) Message() string {
	idl.RLock()
	defer idl.RUnlock()

	if f, ok := idm[c]; ok && c != UnknownError {
		return f(c)
	}

	return UnknownMessage
}

// Error returns an Error instance carrying the code and its registered
// message, with optional parents.
func (c CodeError) Error(parent ...error) Error {
	return New(c, c.Message(), parent...)
}

// ErrorParent is like Error but never captures a nil parent.
func (c CodeError) ErrorParent(parent ...error) Error {
	var p []error
	for _, e := range parent {
		if e != nil {
			p = append(p, e)
		}
	}
	return New(c, c.Message(), p...)
}

// Register associates a message function with the single code minCode; other
// codes are not registered. RegisterIdFctMessage covers a package's range.
func Register(minCode CodeError, fct Message) {
	idl.Lock()
	defer idl.Unlock()

	idm[minCode] = fct
}

// RegisterIdFctMessage associates a message function with each code at or
// above minCode that the function recognizes. Codes are probed until the
// function returns an empty message.
func RegisterIdFctMessage(minCode CodeError, fct Message) {
	idl.Lock()
	defer idl.Unlock()

	for c := minCode; ; c++ {
		if m := fct(c); m == "" {
			break
		}
		idm[c] = fct
	}
}

// ExistInMapMessage reports whether the code has a registered message.
func ExistInMapMessage(code CodeError) bool {
	idl.RLock()
	defer idl.RUnlock()

	_, ok := idm[code]
	return ok
}
