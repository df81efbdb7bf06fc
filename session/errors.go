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

package session

import (
	liberr "github.com/nabbar/x11trace/errors"
)

const (
	ErrorParamInvalid liberr.CodeError = iota + liberr.MinPkgSession
	ErrorSequenceOrder
	ErrorSequenceUnknown
	ErrorStashMissing
	ErrorCloseSocket
	ErrorUpstreamDial
	ErrorAcceptSocket
	ErrorSessionGone
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
	case ErrorSequenceOrder:
		return "request log length does not match sequence counter"
	case ErrorSequenceUnknown:
		return "sequence number does not match any registered request"
	case ErrorStashMissing:
		return "no stashed name for the replied sequence number"
	case ErrorCloseSocket:
		return "error occurs while closing session socket"
	case ErrorUpstreamDial:
		return "error occurs while dialing the display"
	case ErrorAcceptSocket:
		return "error occurs while accepting a client connection"
	case ErrorSessionGone:
		return "session has already terminated"
	}

	return ""
}
