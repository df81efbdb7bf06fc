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

package sockbuf

import (
	liberr "github.com/nabbar/x11trace/errors"
)

const (
	ErrorParamInvalid liberr.CodeError = iota + liberr.MinPkgSockBuf
	ErrorSystemRead
	ErrorSystemWrite
	ErrorPeerClosed
	ErrorMessageSizeSet
	ErrorMessageSizeUnset
	ErrorCursorOrdering
)

func init() {
	liberr.RegisterIdFctMessage(ErrorParamInvalid, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case liberr.UnknownError:
		return ""
	case ErrorParamInvalid:
		return "given parameter is invalid"
	case ErrorSystemRead:
		return "error occurs while reading from socket"
	case ErrorSystemWrite:
		return "error occurs while writing to socket"
	case ErrorPeerClosed:
		return "peer has closed the connection"
	case ErrorMessageSizeSet:
		return "a message size is already declared"
	case ErrorMessageSizeUnset:
		return "no message size has been declared"
	case ErrorCursorOrdering:
		return "message size exceeds unparsed bytes"
	}

	return ""
}
