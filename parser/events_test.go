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

// events_test.go covers the 32-byte event records: framing, the SendEvent
// synthetic bit, the sequence-less KeymapNotify and the ConfigureRequest
// value mask.
package parser_test

import (
	"bytes"

	libprs "github.com/nabbar/x11trace/parser"
	libses "github.com/nabbar/x11trace/session"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func evtExpose(seq uint16, window uint32, width, height uint16) []byte {
	return (&wire{}).
		u8(12).u8(0).u16(seq).
		u32(window).
		u16(0).u16(0).
		u16(width).u16(height).
		u16(0).
		pad(14).
		bytes()
}

var _ = Describe("Event decoding", func() {
	var (
		p    libprs.Parser
		sink *bytes.Buffer
		c    libses.Connection
	)

	BeforeEach(func() {
		p, sink = newTestParser(libprs.Options{})
		c = newStreamConn()
	})

	It("should consume exactly 32 bytes per event", func() {
		b := driveServer(p, c, evtExpose(4, 0x300, 640, 480))
		Expect(b.Parsed()).To(Equal(32))

		out := sink.String()
		Expect(out).To(ContainSubstring("Event(Expose)"))
		Expect(out).To(ContainSubstring("width=640"))
		Expect(out).To(ContainSubstring("00004"))
	})

	It("should flag SendEvent-synthesized events", func() {
		raw := evtExpose(4, 0x300, 640, 480)
		raw[0] |= 0x80
		driveServer(p, c, raw)
		Expect(sink.String()).To(ContainSubstring("Event(Expose,synthetic)"))
	})

	It("should render KeymapNotify without a sequence number", func() {
		raw := (&wire{}).u8(11).pad(31).bytes()
		b := driveServer(p, c, raw)
		Expect(b.Parsed()).To(Equal(32))

		out := sink.String()
		Expect(out).To(ContainSubstring("Event(KeymapNotify)"))
		Expect(out).ToNot(ContainSubstring(":00000"))
	})

	It("should render the ConfigureRequest value mask", func() {
		raw := (&wire{}).
			u8(23).u8(0).u16(9).
			u32(0x100). // parent
			u32(0x200). // window
			u32(0).     // sibling
			u16(0).u16(0).
			u16(800).u16(600).
			u16(0).
			u16(0x000C). // width|height
			pad(4).
			bytes()
		Expect(raw).To(HaveLen(32))

		driveServer(p, c, raw)
		out := sink.String()
		Expect(out).To(ContainSubstring("Event(ConfigureRequest)"))
		Expect(out).To(ContainSubstring("value-mask=width|height"))
	})

	It("should anchor timestamps to wall clock when configured", func() {
		p.SetOptions(libprs.Options{
			RelativeTimestamps: true,
			RefTimestamp:       1000,
			RefUnixTime:        1700000000, // 2023-11-14T22:13:20Z
		})

		raw := (&wire{}).
			u8(2).u8(38).u16(7).
			u32(6000). // five seconds past the anchor
			u32(0x100).u32(0x200).u32(0).
			u16(0).u16(0).u16(0).u16(0).
			u16(0).u8(1).pad(1).
			bytes()

		driveServer(p, c, raw)
		Expect(sink.String()).To(ContainSubstring("time=0x00001770(2023-11-14T22:13:25Z)"))
	})

	It("should render a full pointer event", func() {
		raw := (&wire{}).
			u8(2).u8(38).u16(7). // KeyPress, detail 38
			u32(0x10203040).     // time
			u32(0x100).          // root
			u32(0x200).          // event
			u32(0).              // child None
			u16(5).u16(6).       // root-x, root-y
			u16(1).u16(2).       // event-x, event-y
			u16(0x0001).         // state: Shift
			u8(1).               // same-screen
			pad(1).
			bytes()
		Expect(raw).To(HaveLen(32))

		driveServer(p, c, raw)
		out := sink.String()
		Expect(out).To(ContainSubstring("Event(KeyPress)"))
		Expect(out).To(ContainSubstring("detail=38"))
		Expect(out).To(ContainSubstring("state=Shift"))
		Expect(out).To(ContainSubstring("child=None"))
	})
})
