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

package parser

import (
	liberr "github.com/nabbar/x11trace/errors"
)

const (
	ErrorParamInvalid liberr.CodeError = iota + liberr.MinPkgParser
	ErrorValidatorError
	ErrorSetupByteOrder
	ErrorSetupStatus
	ErrorMalformedLength
	ErrorMalformedReserved
	ErrorMalformedTruncated
	ErrorUnknownOpcode
	ErrorSinkWrite
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
	case ErrorValidatorError:
		return "invalid config, validation error"
	case ErrorSetupByteOrder:
		return "initiation byte-order byte is neither MSB nor LSB marker"
	case ErrorSetupStatus:
		return "setup response status byte is unknown"
	case ErrorMalformedLength:
		return "message length field does not match its body"
	case ErrorMalformedReserved:
		return "reserved bits are set in a must-be-zero field"
	case ErrorMalformedTruncated:
		return "message body is shorter than its fixed layout"
	case ErrorUnknownOpcode:
		return "opcode is not assigned by the core protocol"
	case ErrorSinkWrite:
		return "error occurs while writing trace record to sink"
	}

	return ""
}
