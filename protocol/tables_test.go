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

// tables_test.go pins the wire-constant tables against the core protocol
// encoding appendix.
package protocol_test

import (
	libprt "github.com/nabbar/x11trace/protocol"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Protocol tables", func() {
	Context("request opcodes", func() {
		It("should name the boundaries of the opcode space", func() {
			Expect(libprt.RequestName(1)).To(Equal("CreateWindow"))
			Expect(libprt.RequestName(119)).To(Equal("GetModifierMapping"))
			Expect(libprt.RequestName(127)).To(Equal("NoOperation"))
			Expect(libprt.RequestName(120)).To(Equal(libprt.UnusedOpcodeName))
			Expect(libprt.RequestName(128)).To(Equal("Extension"))
		})

		It("should recognize all 120 core requests", func() {
			count := 0
			for op := 1; op <= 127; op++ {
				if libprt.IsCoreRequest(uint8(op)) {
					count++
				}
			}
			Expect(count).To(Equal(120))
		})

		It("should know the reply-bearing set", func() {
			Expect(libprt.HasReply(libprt.OpGetGeometry)).To(BeTrue())
			Expect(libprt.HasReply(libprt.OpInternAtom)).To(BeTrue())
			Expect(libprt.HasReply(libprt.OpDestroyWindow)).To(BeFalse())
			Expect(libprt.HasReply(libprt.OpNoOperation)).To(BeFalse())
		})
	})

	Context("events and errors", func() {
		It("should name the 33 event codes", func() {
			for code := uint8(2); code <= 34; code++ {
				Expect(libprt.EventName(code)).ToNot(BeEmpty())
			}
			Expect(libprt.EventName(2)).To(Equal("KeyPress"))
			Expect(libprt.EventName(34)).To(Equal("MappingNotify"))
			Expect(libprt.EventName(35)).To(BeEmpty())
		})

		It("should strip the SendEvent bit in classification", func() {
			Expect(libprt.IsCoreEvent(0x80 | 12)).To(BeTrue())
			Expect(libprt.IsCoreEvent(0x80)).To(BeFalse())
		})

		It("should name the 17 error codes", func() {
			for code := uint8(1); code <= 17; code++ {
				Expect(libprt.XErrorName(code)).ToNot(BeEmpty())
			}
			Expect(libprt.XErrorName(1)).To(Equal("Request"))
			Expect(libprt.XErrorName(17)).To(Equal("Implementation"))
			Expect(libprt.XErrorName(18)).To(BeEmpty())
		})

		It("should classify the resource-carrying errors", func() {
			Expect(libprt.XErrorHasResource(libprt.XErrWindow)).To(BeTrue())
			Expect(libprt.XErrorHasResource(libprt.XErrMatch)).To(BeFalse())
			Expect(libprt.XErrorHasValue(libprt.XErrValue)).To(BeTrue())
			Expect(libprt.XErrorHasValue(libprt.XErrAtom)).To(BeTrue())
		})
	})

	Context("predefined atoms", func() {
		It("should cover exactly the 1..68 range", func() {
			_, ok := libprt.PredefinedAtomName(0)
			Expect(ok).To(BeFalse())
			_, ok = libprt.PredefinedAtomName(69)
			Expect(ok).To(BeFalse())

			for id := uint32(1); id <= libprt.PredefinedAtomMax; id++ {
				name, ok := libprt.PredefinedAtomName(id)
				Expect(ok).To(BeTrue())
				Expect(name).ToNot(BeEmpty())
			}
		})

		It("should match the appendix for known ids", func() {
			name, _ := libprt.PredefinedAtomName(39)
			Expect(name).To(Equal("WM_NAME"))
			name, _ = libprt.PredefinedAtomName(68)
			Expect(name).To(Equal("WM_TRANSIENT_FOR"))
		})
	})

	Context("padding", func() {
		It("should align to 4-byte boundaries", func() {
			Expect(libprt.Pad(0)).To(Equal(0))
			Expect(libprt.Pad(1)).To(Equal(3))
			Expect(libprt.Pad(2)).To(Equal(2))
			Expect(libprt.Pad(3)).To(Equal(1))
			Expect(libprt.Pad(4)).To(Equal(0))
			Expect(libprt.Padded(5)).To(Equal(8))
		})
	})
})
