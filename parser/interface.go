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

// Package parser decodes the X11 core wire protocol: the connection-setup
// handshake, the 119 core requests plus NoOperation (with BIG-REQUESTS
// length expansion), the reply stream dispatched by shadowed sequence
// numbers, the 33 core events (with the SendEvent synthetic bit) and the 17
// core errors. Every decoded message is rendered as one trace record and
// written to the sink in a single call.
//
// The parser is the session pump's Analyzer: each invocation frames at most
// one complete message against the relay buffer and consumes exactly that
// message, or consumes nothing when the bytes on hand are short.
//
// The only traffic modification the parser may apply is rewriting the
// present byte of QueryExtension replies to zero when DenyAllExtensions is
// set.
package parser

import (
	"io"

	liberr "github.com/nabbar/x11trace/errors"
	libses "github.com/nabbar/x11trace/session"
)

// Parser decodes and traces both directions of proxied sessions. One Parser
// serves any number of sessions; records are written atomically per message.
type Parser interface {
	libses.Analyzer

	// SetOptions swaps the formatter knobs; live sessions pick the new
	// options up on their next message.
	SetOptions(opt Options)

	// GetOptions returns the current formatter knobs.
	GetOptions() Options
}

// New returns a Parser emitting trace records to sink.
func New(sink io.Writer, opt Options) (Parser, liberr.Error) {
	if sink == nil {
		return nil, ErrorParamInvalid.Error(nil)
	}

	if err := opt.Validate(); err != nil {
		return nil, err
	}

	return newParser(sink, opt), nil
}
