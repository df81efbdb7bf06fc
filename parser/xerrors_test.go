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

// xerrors_test.go covers the 32-byte core error records.
package parser_test

import (
	"bytes"

	libprs "github.com/nabbar/x11trace/parser"
	libses "github.com/nabbar/x11trace/session"
	libbuf "github.com/nabbar/x11trace/sockbuf"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func xerr(code uint8, seq uint16, value uint32, minor uint16, major uint8) []byte {
	return (&wire{}).
		u8(0).u8(code).u16(seq).
		u32(value).
		u16(minor).u8(major).
		pad(21).
		bytes()
}

var _ = Describe("Error decoding", func() {
	var (
		p    libprs.Parser
		sink *bytes.Buffer
		c    libses.Connection
	)

	BeforeEach(func() {
		p, sink = newTestParser(libprs.Options{})
		c = newStreamConn()
	})

	It("should render a Window error for a failed DestroyWindow", func() {
		driveClient(p, c, (&wire{}).u8(4).u8(0).u16(2).u32(0).bytes())

		b := driveServer(p, c, xerr(3, 1, 0, 0, 4))
		Expect(b.Parsed()).To(Equal(32))

		out := sink.String()
		Expect(out).To(ContainSubstring("Error(Window)"))
		Expect(out).To(ContainSubstring("bad_resource=0x00000000"))
		Expect(out).To(ContainSubstring("major_opcode=DestroyWindow(4)"))
	})

	It("should render the offending value for Value errors", func() {
		driveServer(p, c, xerr(2, 1, 0xCAFE, 0, 12))
		out := sink.String()
		Expect(out).To(ContainSubstring("Error(Value)"))
		Expect(out).To(ContainSubstring("bad_value=0x0000cafe"))
		Expect(out).To(ContainSubstring("major_opcode=ConfigureWindow(12)"))
	})

	It("should drop the atom stash of a failed InternAtom", func() {
		driveClient(p, c, reqInternAtom("_MY_APP"))
		driveServer(p, c, xerr(11, 1, 0, 0, 16))

		// a late reply for the same sequence has nothing to resolve
		Expect(c.InternedAtoms()).To(Equal(0))
	})

	It("should reject an unknown error code", func() {
		b := libbuf.New()
		b.Load(xerr(42, 1, 0, 0, 4))
		_, err := p.ParseServer(c, b)
		Expect(err).To(HaveOccurred())
	})
})
