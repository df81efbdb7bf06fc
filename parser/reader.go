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
	"encoding/binary"

	libprt "github.com/nabbar/x11trace/protocol"
)

// rdr is a cursor over one framed message, decoding integers in the
// connection's declared byte order. Reading past the end does not panic: it
// yields zeros and latches the overflow flag, which the caller turns into a
// malformed-message failure after the decode pass.
type rdr struct {
	b   []byte
	bo  binary.ByteOrder
	i   int
	ov  bool
	rsv bool
}

func newReader(b []byte, bo binary.ByteOrder) *rdr {
	return &rdr{b: b, bo: bo}
}

func (r *rdr) Bad() bool {
	return r.ov
}

// Reserved reports whether a must-be-zero check failed during decode.
func (r *rdr) Reserved() bool {
	return r.rsv
}

// ZeroCheck32 latches the reserved flag when v has bits set in mask.
func (r *rdr) ZeroCheck32(v, mask uint32) uint32 {
	if v&mask != 0 {
		r.rsv = true
	}
	return v
}

// ZeroCheck16 latches the reserved flag when v has bits set in mask.
func (r *rdr) ZeroCheck16(v, mask uint16) uint16 {
	if v&mask != 0 {
		r.rsv = true
	}
	return v
}

// KeyMaskCheck validates a SETofKEYMASK, where AnyModifier is the one legal
// reserved-bit value.
func (r *rdr) KeyMaskCheck(v uint16) uint16 {
	if v != libprt.AnyModifier && v&libprt.ZeroBitsSetOfKeyMask != 0 {
		r.rsv = true
	}
	return v
}

// AtomCheck validates the top three must-be-zero bits of an ATOM.
func (r *rdr) AtomCheck(v uint32) uint32 {
	return r.ZeroCheck32(v, libprt.ZeroBitsXID)
}

func (r *rdr) Consumed() int {
	return r.i
}

func (r *rdr) Remaining() int {
	return len(r.b) - r.i
}

func (r *rdr) take(n int) []byte {
	if r.i+n > len(r.b) {
		r.ov = true
		r.i = len(r.b)
		return nil
	}

	out := r.b[r.i : r.i+n]
	r.i += n
	return out
}

func (r *rdr) U8() uint8 {
	if b := r.take(1); b != nil {
		return b[0]
	}
	return 0
}

func (r *rdr) I8() int8 {
	return int8(r.U8())
}

func (r *rdr) U16() uint16 {
	if b := r.take(2); b != nil {
		return r.bo.Uint16(b)
	}
	return 0
}

func (r *rdr) I16() int16 {
	return int16(r.U16())
}

func (r *rdr) U32() uint32 {
	if b := r.take(4); b != nil {
		return r.bo.Uint32(b)
	}
	return 0
}

func (r *rdr) I32() int32 {
	return int32(r.U32())
}

func (r *rdr) Bytes(n int) []byte {
	return r.take(n)
}

func (r *rdr) Str(n int) string {
	if b := r.take(n); b != nil {
		return string(b)
	}
	return ""
}

func (r *rdr) Skip(n int) {
	r.take(n)
}

// SkipPad consumes the padding that aligns a tail of n bytes to a 4-byte
// boundary.
func (r *rdr) SkipPad(n int) {
	r.take(libprt.Pad(n))
}
