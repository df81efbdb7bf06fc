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

// basic_test.go validates the relay buffer's cursor discipline: fill/drain
// round trips, message framing, growth, reset on full drain, and the
// ordering invariant between the written, parsed and read cursors.
package sockbuf_test

import (
	"bytes"

	liberr "github.com/nabbar/x11trace/errors"
	libbuf "github.com/nabbar/x11trace/sockbuf"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Buffer", func() {
	var buf libbuf.Buffer

	BeforeEach(func() {
		buf = libbuf.New()
	})

	invariant := func() {
		Expect(buf.Parsed()).To(BeNumerically(">=", 0))
		Expect(buf.Unparsed()).To(BeNumerically(">=", 0))
		Expect(buf.Size()).To(Equal(buf.Parsed() + buf.Unparsed()))
	}

	Context("when empty", func() {
		It("should be empty and read ready", func() {
			Expect(buf.Empty()).To(BeTrue())
			Expect(buf.ReadReady()).To(BeTrue())
			Expect(buf.WriteReady()).To(BeFalse())
			Expect(buf.Size()).To(Equal(0))
		})

		It("should have one block of capacity", func() {
			Expect(buf.Capacity()).To(Equal(libbuf.BlockSize))
		})
	})

	Context("loading and framing", func() {
		It("should hold loaded bytes as unparsed", func() {
			n := buf.Load([]byte{1, 2, 3, 4})
			Expect(n).To(Equal(4))
			Expect(buf.Unparsed()).To(Equal(4))
			Expect(buf.Parsed()).To(Equal(0))
			invariant()
		})

		It("should report an incomplete message until the declared size arrives", func() {
			buf.Load([]byte{1, 2})
			Expect(buf.IncompleteMessage()).To(BeTrue())

			Expect(buf.SetMessageSize(4)).ToNot(HaveOccurred())
			Expect(buf.IncompleteMessage()).To(BeTrue())
			Expect(buf.ReadReady()).To(BeTrue())

			buf.Load([]byte{3, 4})
			Expect(buf.IncompleteMessage()).To(BeFalse())
		})

		It("should advance the parsed cursor on mark", func() {
			buf.Load([]byte{1, 2, 3, 4, 5})
			Expect(buf.SetMessageSize(4)).ToNot(HaveOccurred())
			Expect(buf.MarkMessageParsed()).ToNot(HaveOccurred())

			Expect(buf.Parsed()).To(Equal(4))
			Expect(buf.Unparsed()).To(Equal(1))
			Expect(buf.MessageSizeSet()).To(BeFalse())
			Expect(buf.WriteReady()).To(BeTrue())
			invariant()
		})

		It("should refuse a second size declaration", func() {
			Expect(buf.SetMessageSize(4)).ToNot(HaveOccurred())
			err := buf.SetMessageSize(8)
			Expect(err).To(HaveOccurred())
			Expect(liberr.Is(err, libbuf.ErrorMessageSizeSet)).To(BeTrue())
		})

		It("should refuse to mark without a declared size", func() {
			buf.Load([]byte{1, 2, 3, 4})
			err := buf.MarkMessageParsed()
			Expect(err).To(HaveOccurred())
			Expect(liberr.Is(err, libbuf.ErrorMessageSizeUnset)).To(BeTrue())
		})

		It("should refuse to mark past the read cursor", func() {
			buf.Load([]byte{1, 2})
			Expect(buf.SetMessageSize(4)).ToNot(HaveOccurred())
			err := buf.MarkMessageParsed()
			Expect(err).To(HaveOccurred())
			Expect(liberr.Is(err, libbuf.ErrorCursorOrdering)).To(BeTrue())
		})
	})

	Context("filling from a reader", func() {
		It("should ingest available bytes", func() {
			src := bytes.NewBuffer([]byte{9, 8, 7})
			n, err := buf.Fill(src)
			Expect(err).ToNot(HaveOccurred())
			Expect(n).To(Equal(3))
			Expect(buf.Unparsed()).To(Equal(3))
		})

		It("should report a closed peer", func() {
			src := bytes.NewBuffer(nil)
			_, err := buf.Fill(src)
			Expect(err).To(HaveOccurred())
			Expect(liberr.Is(err, libbuf.ErrorPeerClosed)).To(BeTrue())
		})

		It("should grow by one block when capacity is exhausted", func() {
			big := make([]byte, libbuf.BlockSize)
			buf.Load(big)
			Expect(buf.Capacity()).To(Equal(0))

			n, err := buf.FillN(bytes.NewBuffer([]byte{1}), 1)
			Expect(err).ToNot(HaveOccurred())
			Expect(n).To(Equal(1))
			Expect(buf.Size()).To(Equal(libbuf.BlockSize + 1))
		})
	})

	Context("draining to a writer", func() {
		It("should write only the parsed prefix", func() {
			buf.Load([]byte{1, 2, 3, 4, 5, 6})
			Expect(buf.SetMessageSize(4)).ToNot(HaveOccurred())
			Expect(buf.MarkMessageParsed()).ToNot(HaveOccurred())

			dst := bytes.NewBuffer(nil)
			n, err := buf.Drain(dst)
			Expect(err).ToNot(HaveOccurred())
			Expect(n).To(Equal(4))
			Expect(dst.Bytes()).To(Equal([]byte{1, 2, 3, 4}))
			Expect(buf.Unparsed()).To(Equal(2))
			invariant()
		})

		It("should clear once everything read has been written", func() {
			buf.Load([]byte{1, 2, 3, 4})
			Expect(buf.SetMessageSize(4)).ToNot(HaveOccurred())
			Expect(buf.MarkMessageParsed()).ToNot(HaveOccurred())

			dst := bytes.NewBuffer(nil)
			_, err := buf.Drain(dst)
			Expect(err).ToNot(HaveOccurred())
			Expect(buf.Empty()).To(BeTrue())
			Expect(buf.Size()).To(Equal(0))
			Expect(buf.MessageSizeSet()).To(BeFalse())
		})

		It("should keep partial drains consistent across calls", func() {
			buf.Load([]byte{1, 2, 3, 4, 5, 6, 7, 8})
			Expect(buf.SetMessageSize(8)).ToNot(HaveOccurred())
			Expect(buf.MarkMessageParsed()).ToNot(HaveOccurred())

			dst := bytes.NewBuffer(nil)
			n, err := buf.DrainN(dst, 3)
			Expect(err).ToNot(HaveOccurred())
			Expect(n).To(Equal(3))
			Expect(buf.Parsed()).To(Equal(5))

			n, err = buf.Drain(dst)
			Expect(err).ToNot(HaveOccurred())
			Expect(n).To(Equal(5))
			Expect(dst.Bytes()).To(Equal([]byte{1, 2, 3, 4, 5, 6, 7, 8}))
			Expect(buf.Empty()).To(BeTrue())
		})
	})

	Context("unloading", func() {
		It("should hand back the front of the buffer", func() {
			buf.Load([]byte{1, 2, 3, 4})
			out := buf.Unload(2)
			Expect(out).To(Equal([]byte{1, 2}))
			Expect(buf.Size()).To(Equal(2))
		})
	})
})
