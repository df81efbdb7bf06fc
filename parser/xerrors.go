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
	libprt "github.com/nabbar/x11trace/protocol"
	libses "github.com/nabbar/x11trace/session"
)

// decodeError renders one 32-byte core error: the failing request's major
// and minor opcodes, and the offending resource id or value where the error
// kind carries one. The stash for the failed sequence, if any, is dropped.
func (x *prs) decodeError(c libses.Connection, raw []byte) error {
	bo := c.ByteOrder()
	code := raw[1]
	seq := bo.Uint16(raw[2:4])

	name := libprt.XErrorName(code)
	if name == "" {
		return ErrorUnknownOpcode.Error(nil)
	}

	r := newReader(raw, bo)
	r.Skip(4)
	value := r.U32()
	minor := r.U16()
	major := r.U8()

	// a failed InternAtom or QueryExtension never gets its reply
	c.DropStash(seq)
	_, _ = c.TakeExtensionName(seq)

	ws := x.ws()
	var members []string

	switch {
	case libprt.XErrorHasResource(code):
		members = append(members, ws.member("bad_resource", hexPad(uint64(value), 4)))
	case libprt.XErrorHasValue(code):
		members = append(members, ws.member("bad_value", hexPad(uint64(value), 4)))
	}

	members = append(members,
		ws.member("minor_opcode", dec(uint64(minor))),
		ws.member("major_opcode", fmtOpcodeName(major)),
	)

	body := ws.record(members)
	if x.opt().Verbose {
		body = "sequence=" + dec(uint64(seq)) + " " + body
	}

	return x.emit('S', c, fmtSeq(seq), x.paint(x.cErr, "Error("+name+")"), body)
}
