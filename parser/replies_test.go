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

// replies_test.go covers reply dispatch by shadowed sequence number, the
// interned-atom round trip, the QueryExtension rewrite and the byte-identity
// guarantee of forwarded traffic.
package parser_test

import (
	"bytes"

	libprs "github.com/nabbar/x11trace/parser"
	libses "github.com/nabbar/x11trace/session"
	libbuf "github.com/nabbar/x11trace/sockbuf"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Reply decoding", func() {
	var (
		p    libprs.Parser
		sink *bytes.Buffer
		c    libses.Connection
	)

	BeforeEach(func() {
		p, sink = newTestParser(libprs.Options{})
		c = newStreamConn()
	})

	It("should dispatch GetGeometry replies by shadowed sequence", func() {
		driveClient(p, c, reqGetGeometry(0x12345678))
		b := driveServer(p, c, repGetGeometry(1, 24, 0x250, 640, 480))

		Expect(b.Parsed()).To(Equal(32))

		out := sink.String()
		Expect(out).To(ContainSubstring("Reply(GetGeometry)"))
		Expect(out).To(ContainSubstring("depth=24"))
		Expect(out).To(ContainSubstring("root=0x00000250"))
		Expect(out).To(ContainSubstring("width=640"))
		Expect(out).To(ContainSubstring("height=480"))
	})

	It("should fail reply dispatch without a registered request", func() {
		b := libbuf.New()
		b.Load(repGetGeometry(1, 24, 0x250, 640, 480))
		_, err := p.ParseServer(c, b)
		Expect(err).To(HaveOccurred())
	})

	Context("InternAtom round trips", func() {
		It("should not intern a predefined atom", func() {
			driveClient(p, c, reqInternAtom("WM_NAME"))
			driveServer(p, c, repInternAtom(1, 39))

			Expect(c.InternedAtoms()).To(Equal(0))

			name, ok := c.AtomName(39)
			Expect(ok).To(BeTrue())
			Expect(name).To(Equal("WM_NAME"))
			Expect(sink.String()).To(ContainSubstring(`"WM_NAME"`))
		})

		It("should intern a server-allocated atom", func() {
			driveClient(p, c, reqInternAtom("_MY_APP"))
			driveServer(p, c, repInternAtom(1, 377))

			Expect(c.InternedAtoms()).To(Equal(1))

			name, ok := c.AtomName(377)
			Expect(ok).To(BeTrue())
			Expect(name).To(Equal("_MY_APP"))
		})

		It("should render an interned atom with its hex id in verbose mode", func() {
			p.SetOptions(libprs.Options{Verbose: true})
			driveClient(p, c, reqInternAtom("_MY_APP"))
			driveServer(p, c, repInternAtom(1, 377))

			sink.Reset()
			driveClient(p, c, (&wire{}).u8(17).u8(0).u16(2).u32(377).bytes())
			Expect(sink.String()).To(ContainSubstring(`0x00000179("_MY_APP")`))
		})

		It("should leave unknown atoms unrecognized before the reply", func() {
			driveClient(p, c, reqInternAtom("_MY_APP"))

			sink.Reset()
			driveClient(p, c, (&wire{}).u8(17).u8(0).u16(2).u32(377).bytes())
			Expect(sink.String()).To(ContainSubstring("unrecognized atom"))
		})
	})

	Context("QueryExtension deny", func() {
		BeforeEach(func() {
			p.SetOptions(libprs.Options{DenyAllExtensions: true})
		})

		It("should rewrite present to zero in the forwarded bytes only", func() {
			driveClient(p, c, reqQueryExtension("RANDR"))

			rep := repQueryExtension(1, 1, 140, 89, 147)
			b := driveServer(p, c, rep)

			// forwarded bytes carry present=0, the rest intact
			fwd := bytes.NewBuffer(nil)
			_, err := b.Drain(fwd)
			Expect(err).ToNot(HaveOccurred())

			out := fwd.Bytes()
			Expect(out).To(HaveLen(32))
			Expect(out[8]).To(Equal(uint8(0)))
			Expect(out[9]).To(Equal(uint8(140)))
			Expect(out[10]).To(Equal(uint8(89)))
			Expect(out[11]).To(Equal(uint8(147)))

			Expect(sink.String()).To(ContainSubstring("present=False"))
			Expect(sink.String()).To(ContainSubstring("major-opcode=140"))
		})

		It("should not activate BIG-REQUESTS through a denied reply", func() {
			driveClient(p, c, reqQueryExtension("BIG-REQUESTS"))
			driveServer(p, c, repQueryExtension(1, 1, 133, 0, 0))
			driveClient(p, c, (&wire{}).u8(133).u8(0).u16(1).bytes())
			Expect(c.BigRequests()).To(BeFalse())
		})
	})

	Context("byte identity", func() {
		It("should forward requests unmodified", func() {
			in := append(append([]byte{}, reqGetGeometry(0x12345678)...), reqInternAtom("_MY_APP")...)
			b := driveClient(p, c, in)

			fwd := bytes.NewBuffer(nil)
			_, err := b.Drain(fwd)
			Expect(err).ToNot(HaveOccurred())
			Expect(fwd.Bytes()).To(Equal(in))
		})

		It("should forward replies unmodified without deny", func() {
			driveClient(p, c, reqQueryExtension("RANDR"))

			in := repQueryExtension(1, 1, 140, 89, 147)
			cp := append([]byte{}, in...)
			b := driveServer(p, c, in)

			fwd := bytes.NewBuffer(nil)
			_, err := b.Drain(fwd)
			Expect(err).ToNot(HaveOccurred())
			Expect(fwd.Bytes()).To(Equal(cp))
		})
	})

	It("should render the terminal ListFontsWithInfo reply", func() {
		driveClient(p, c, (&wire{}).
			u8(50).u8(0).u16(3).
			u16(10).u16(1).str("*").pad(3).
			bytes())

		last := (&wire{}).
			u8(1).u8(0).u16(1).u32(7).
			pad(52).
			bytes()
		b := driveServer(p, c, last)
		Expect(b.Parsed()).To(Equal(60))
		Expect(sink.String()).To(ContainSubstring("last-reply"))
	})
})
