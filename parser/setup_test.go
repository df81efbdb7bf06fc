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

// setup_test.go covers the connection handshake: initiation framing, the
// byte-order latch, and the three server response variants.
package parser_test

import (
	"bytes"
	"encoding/binary"

	libprs "github.com/nabbar/x11trace/parser"
	libses "github.com/nabbar/x11trace/session"
	libbuf "github.com/nabbar/x11trace/sockbuf"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// initiation encodes a little-endian client setup message.
func initiation(authName, authData string) []byte {
	n := len(authName)
	d := len(authData)
	return (&wire{}).
		u8(0x6C).u8(0).
		u16(11).u16(0).
		u16(uint16(n)).u16(uint16(d)).u16(0).
		str(authName).pad((4 - n&3) & 3).
		str(authData).pad((4 - d&3) & 3).
		bytes()
}

// setupSuccess encodes a minimal success response: no vendor, no formats,
// no screens.
func setupSuccess() []byte {
	return (&wire{}).
		u8(1).u8(0).
		u16(11).u16(0).
		u16(8). // additional data in 4-byte units
		u32(1). // release-number
		u32(0x00400000).u32(0x003FFFFF). // resource-id base and mask
		u32(256).                        // motion-buffer-size
		u16(0).                          // vendor length
		u16(65535).                      // maximum-request-length
		u8(0).u8(0).                     // screens, formats
		u8(0).u8(0).                     // image and bitmap orders
		u8(32).u8(32).                   // scanline unit and pad
		u8(8).u8(255).                   // keycode range
		pad(4).
		bytes()
}

var _ = Describe("Setup handshake", func() {
	var (
		p    libprs.Parser
		sink *bytes.Buffer
		c    libses.Connection
	)

	BeforeEach(func() {
		p, sink = newTestParser(libprs.Options{})
		c = libses.NewConnection()
	})

	It("should latch the declared byte order from the initiation", func() {
		msg := initiation("MIT-MAGIC-COOKIE-1", "0123456789abcdef")
		b := driveClient(p, c, msg)

		Expect(b.Parsed()).To(Equal(len(msg)))
		Expect(c.ClientSetupDone()).To(BeTrue())
		Expect(c.ByteOrder()).To(Equal(binary.ByteOrder(binary.LittleEndian)))

		out := sink.String()
		Expect(out).To(ContainSubstring("SetupInitiation"))
		Expect(out).To(ContainSubstring("byte-order=LSBFirst"))
		Expect(out).To(ContainSubstring(`authorization-protocol-name="MIT-MAGIC-COOKIE-1"`))
	})

	It("should reject an invalid byte-order byte", func() {
		msg := initiation("", "")
		msg[0] = 'x'
		b := libbuf.New()
		b.Load(msg)
		_, err := p.ParseClient(c, b)
		Expect(err).To(HaveOccurred())
	})

	It("should wait for the padded auth tail before consuming", func() {
		msg := initiation("MIT-MAGIC-COOKIE-1", "0123456789abcdef")
		b := libbuf.New()

		b.Load(msg[:12])
		ok, err := p.ParseClient(c, b)
		Expect(err).ToNot(HaveOccurred())
		Expect(ok).To(BeFalse())
		Expect(c.ClientSetupDone()).To(BeFalse())

		b.Load(msg[12:])
		ok, err = p.ParseClient(c, b)
		Expect(err).ToNot(HaveOccurred())
		Expect(ok).To(BeTrue())
	})

	Context("server responses", func() {
		BeforeEach(func() {
			driveClient(p, c, initiation("", ""))
		})

		It("should enter the message-stream phase on success", func() {
			msg := setupSuccess()
			b := driveServer(p, c, msg)

			Expect(b.Parsed()).To(Equal(len(msg)))
			Expect(c.ServerSetupDone()).To(BeTrue())

			out := sink.String()
			Expect(out).To(ContainSubstring("SetupSuccess"))
			Expect(out).To(ContainSubstring("resource-id-base=0x00400000"))
			Expect(out).To(ContainSubstring("max-keycode=255"))
		})

		It("should render a refusal without leaving the setup phase", func() {
			reason := "Access denied"
			msg := (&wire{}).
				u8(0).u8(uint8(len(reason))).
				u16(11).u16(0).
				u16(uint16((len(reason) + 3) / 4)).
				str(reason).pad((4 - len(reason)&3) & 3).
				bytes()

			driveServer(p, c, msg)
			Expect(c.ServerSetupDone()).To(BeFalse())
			Expect(sink.String()).To(ContainSubstring("SetupFailed"))
			Expect(sink.String()).To(ContainSubstring(`reason="Access denied"`))
		})

		It("should keep the handshake open after Authenticate", func() {
			reason := "more auth please"
			msg := (&wire{}).
				u8(2).pad(5).
				u16(uint16((len(reason) + 3) / 4)).
				str(reason).pad((4 - len(reason)&3) & 3).
				bytes()

			driveServer(p, c, msg)
			Expect(c.ServerSetupDone()).To(BeFalse())
			Expect(sink.String()).To(ContainSubstring("SetupAuthenticate"))
		})
	})
})
