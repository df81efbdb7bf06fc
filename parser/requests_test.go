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

// requests_test.go covers client-side framing and decoding: consumed sizes,
// partial-message accumulation, value lists, format-unit tails and the
// BIG-REQUESTS length expansion.
package parser_test

import (
	"bytes"

	libprs "github.com/nabbar/x11trace/parser"
	libses "github.com/nabbar/x11trace/session"
	libbuf "github.com/nabbar/x11trace/sockbuf"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Request decoding", func() {
	var (
		p    libprs.Parser
		sink *bytes.Buffer
		c    libses.Connection
	)

	BeforeEach(func() {
		p, sink = newTestParser(libprs.Options{})
		c = newStreamConn()
	})

	It("should trace GetGeometry with its sequence number", func() {
		b := driveClient(p, c, reqGetGeometry(0x12345678))

		Expect(b.Parsed()).To(Equal(8))
		Expect(c.Sequence()).To(Equal(uint16(1)))
		Expect(sink.String()).To(ContainSubstring("GetGeometry"))
		Expect(sink.String()).To(ContainSubstring("00001"))
		Expect(sink.String()).To(ContainSubstring("drawable=0x12345678"))
	})

	It("should consume a split request only once both halves arrived", func() {
		msg := reqGetGeometry(0x12345678)
		b := libbuf.New()

		b.Load(msg[:4])
		ok, err := p.ParseClient(c, b)
		Expect(err).ToNot(HaveOccurred())
		Expect(ok).To(BeFalse())
		Expect(sink.String()).To(BeEmpty())
		Expect(c.Sequence()).To(Equal(uint16(0)))

		b.Load(msg[4:])
		ok, err = p.ParseClient(c, b)
		Expect(err).ToNot(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(b.Parsed()).To(Equal(8))
		Expect(sink.String()).To(ContainSubstring("GetGeometry"))
	})

	It("should consume exactly the padded format-unit tail of ChangeProperty", func() {
		msg := (&wire{}).
			u8(18).u8(0).u16(8). // ChangeProperty, mode=Replace, 32 bytes
			u32(0x0000012C).     // window
			u32(39).             // property WM_NAME
			u32(31).             // type STRING
			u8(8).pad(3).        // format
			u32(5).              // length in format units
			str("hello").pad(3).
			bytes()
		Expect(msg).To(HaveLen(32))

		b := driveClient(p, c, msg)
		Expect(b.Parsed()).To(Equal(32))
		Expect(sink.String()).To(ContainSubstring(`data="hello"`))
		Expect(sink.String()).To(ContainSubstring("ChangeProperty"))
	})

	It("should walk a value-list LSB first", func() {
		// ConfigureWindow with x, height and stack-mode enabled
		mask := uint16(1<<0 | 1<<3 | 1<<6)
		msg := (&wire{}).
			u8(12).u8(0).u16(6).
			u32(0x200).
			u16(mask).u16(0).
			u32(0xFFFFFFF6). // x = -10
			u32(480).        // height
			u32(1).          // stack-mode = Below
			bytes()
		Expect(msg).To(HaveLen(24))

		b := driveClient(p, c, msg)
		Expect(b.Parsed()).To(Equal(24))
		Expect(sink.String()).To(ContainSubstring("x=-10"))
		Expect(sink.String()).To(ContainSubstring("height=480"))
		Expect(sink.String()).To(ContainSubstring("stack-mode=Below"))
	})

	It("should stash the InternAtom name at its sequence", func() {
		driveClient(p, c, reqInternAtom("WM_NAME"))
		Expect(c.Sequence()).To(Equal(uint16(1)))
		Expect(sink.String()).To(ContainSubstring(`name="WM_NAME"`))
	})

	It("should render the AnyModifier sentinel of SETofKEYMASK", func() {
		// UngrabKey key=AnyKey, modifiers=0x8000
		msg := (&wire{}).
			u8(34).u8(0).u16(3).
			u32(0x200).
			u16(0x8000).u16(0).
			bytes()

		b := driveClient(p, c, msg)
		Expect(b.Parsed()).To(Equal(12))
		Expect(sink.String()).To(ContainSubstring("modifiers=AnyModifier"))
	})

	It("should render a zero TIMESTAMP as CurrentTime", func() {
		driveClient(p, c, (&wire{}).u8(27).u8(0).u16(2).u32(0).bytes())
		Expect(sink.String()).To(ContainSubstring("time=CurrentTime"))
	})

	It("should fail soft on reserved SETofKEYMASK bits", func() {
		msg := (&wire{}).
			u8(34).u8(0).u16(3).
			u32(0x200).
			u16(0x4000).u16(0).
			bytes()

		b := libbuf.New()
		b.Load(msg)
		_, err := p.ParseClient(c, b)
		Expect(err).To(HaveOccurred())
	})

	It("should forward extension requests opaquely", func() {
		msg := (&wire{}).u8(200).u8(3).u16(2).u32(0xDEADBEEF).bytes()
		b := driveClient(p, c, msg)
		Expect(b.Parsed()).To(Equal(8))
		Expect(sink.String()).To(ContainSubstring("Extension"))
		Expect(sink.String()).To(ContainSubstring("major-opcode=200"))
	})

	It("should reject an unused core opcode", func() {
		msg := (&wire{}).u8(121).u8(0).u16(1).bytes()
		b := libbuf.New()
		b.Load(msg)
		_, err := p.ParseClient(c, b)
		Expect(err).To(HaveOccurred())
	})

	Context("with BIG-REQUESTS active", func() {
		BeforeEach(func() {
			driveClient(p, c, reqQueryExtension("BIG-REQUESTS"))
			driveServer(p, c, repQueryExtension(1, 1, 133, 0, 0))
			// BigReqEnable switches the framing
			driveClient(p, c, (&wire{}).u8(133).u8(0).u16(1).bytes())
			Expect(c.BigRequests()).To(BeTrue())
		})

		It("should frame a zero 16-bit length through the 32-bit field", func() {
			msg := (&wire{}).
				u8(127).u8(0).u16(0). // NoOperation, extended length
				u32(3).               // 3 * 4 = 12 bytes total
				u32(0).
				bytes()
			Expect(msg).To(HaveLen(12))

			b := driveClient(p, c, msg)
			Expect(b.Parsed()).To(Equal(12))
			Expect(sink.String()).To(ContainSubstring("NoOperation"))
		})
	})
})
