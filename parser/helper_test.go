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

// helper_test.go provides shared wire-building utilities: little-endian
// message encoders, a primed connection, and drive loops feeding bytes
// through relay buffers into the parser.
package parser_test

import (
	"bytes"
	"encoding/binary"

	libprs "github.com/nabbar/x11trace/parser"
	libses "github.com/nabbar/x11trace/session"
	libbuf "github.com/nabbar/x11trace/sockbuf"

	. "github.com/onsi/gomega"
)

// wire builds a little-endian message byte by byte.
type wire struct {
	b []byte
}

func (w *wire) u8(v uint8) *wire {
	w.b = append(w.b, v)
	return w
}

func (w *wire) u16(v uint16) *wire {
	w.b = append(w.b, byte(v), byte(v>>8))
	return w
}

func (w *wire) u32(v uint32) *wire {
	w.b = append(w.b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	return w
}

func (w *wire) str(s string) *wire {
	w.b = append(w.b, s...)
	return w
}

func (w *wire) pad(n int) *wire {
	w.b = append(w.b, make([]byte, n)...)
	return w
}

func (w *wire) bytes() []byte {
	return w.b
}

// newTestParser returns a parser writing to a capture buffer.
func newTestParser(opt libprs.Options) (libprs.Parser, *bytes.Buffer) {
	sink := bytes.NewBuffer(nil)
	p, err := libprs.New(sink, opt)
	Expect(err).ToNot(HaveOccurred())
	return p, sink
}

// newStreamConn returns a connection already past the setup exchange, in
// little-endian byte order.
func newStreamConn() libses.Connection {
	c := libses.NewConnection()
	c.SetByteOrder(binary.LittleEndian)
	c.SetClientSetupDone()
	c.SetServerSetupDone()
	return c
}

// driveClient loads the bytes into a fresh buffer and parses until the
// parser stops consuming, returning the buffer for drain checks.
func driveClient(p libprs.Parser, c libses.Connection, data []byte) libbuf.Buffer {
	b := libbuf.New()
	b.Load(data)
	for {
		ok, err := p.ParseClient(c, b)
		Expect(err).ToNot(HaveOccurred())
		if !ok {
			break
		}
	}
	return b
}

func driveServer(p libprs.Parser, c libses.Connection, data []byte) libbuf.Buffer {
	b := libbuf.New()
	b.Load(data)
	for {
		ok, err := p.ParseServer(c, b)
		Expect(err).ToNot(HaveOccurred())
		if !ok {
			break
		}
	}
	return b
}

// reqGetGeometry encodes the 8-byte GetGeometry request for a drawable.
func reqGetGeometry(drawable uint32) []byte {
	return (&wire{}).u8(14).u8(0).u16(2).u32(drawable).bytes()
}

// repGetGeometry encodes the matching 32-byte reply.
func repGetGeometry(seq uint16, depth uint8, root uint32, width, height uint16) []byte {
	return (&wire{}).
		u8(1).u8(depth).u16(seq).u32(0).
		u32(root).
		u16(0).u16(0). // x, y
		u16(width).u16(height).
		u16(0). // border-width
		pad(10).
		bytes()
}

// reqInternAtom encodes an InternAtom request for the given name.
func reqInternAtom(name string) []byte {
	n := len(name)
	pad := (4 - n&3) & 3
	total := 8 + n + pad
	return (&wire{}).
		u8(16).u8(0).u16(uint16(total / 4)).
		u16(uint16(n)).u16(0).
		str(name).pad(pad).
		bytes()
}

// repInternAtom encodes the matching reply.
func repInternAtom(seq uint16, atom uint32) []byte {
	return (&wire{}).
		u8(1).u8(0).u16(seq).u32(0).
		u32(atom).
		pad(20).
		bytes()
}

// reqQueryExtension encodes a QueryExtension request for the given name.
func reqQueryExtension(name string) []byte {
	n := len(name)
	pad := (4 - n&3) & 3
	total := 8 + n + pad
	return (&wire{}).
		u8(98).u8(0).u16(uint16(total / 4)).
		u16(uint16(n)).u16(0).
		str(name).pad(pad).
		bytes()
}

// repQueryExtension encodes the matching reply.
func repQueryExtension(seq uint16, present, major, firstEvent, firstError uint8) []byte {
	return (&wire{}).
		u8(1).u8(0).u16(seq).u32(0).
		u8(present).u8(major).u8(firstEvent).u8(firstError).
		pad(20).
		bytes()
}
