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

// connection_test.go validates the per-session record: sequence shadowing,
// request-log lookups, stash and interned-atom behavior, and the idempotence
// of the socket close operations.
package session_test

import (
	"net"

	liberr "github.com/nabbar/x11trace/errors"
	libses "github.com/nabbar/x11trace/session"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Connection", func() {
	var cn libses.Connection

	BeforeEach(func() {
		cn = libses.NewConnection()
	})

	Context("identity", func() {
		It("should assign unique ids", func() {
			other := libses.NewConnection()
			Expect(other.ID()).To(BeNumerically(">", cn.ID()))
		})
	})

	Context("sequence shadowing", func() {
		It("should number requests from one", func() {
			seq, err := cn.RegisterRequest(14)
			Expect(err).ToNot(HaveOccurred())
			Expect(seq).To(Equal(uint16(1)))
			Expect(cn.Sequence()).To(Equal(uint16(1)))
		})

		It("should look up every registered opcode by sequence", func() {
			ops := []uint8{1, 14, 16, 98, 127}
			for _, op := range ops {
				_, err := cn.RegisterRequest(op)
				Expect(err).ToNot(HaveOccurred())
			}

			Expect(cn.Requests()).To(Equal(uint64(len(ops))))

			for i, op := range ops {
				got, err := cn.LookupRequest(uint16(i + 1))
				Expect(err).ToNot(HaveOccurred())
				Expect(got).To(Equal(op))
			}
		})

		It("should fail lookups for unknown sequence numbers", func() {
			_, err := cn.LookupRequest(1)
			Expect(err).To(HaveOccurred())
			Expect(liberr.Is(err, libses.ErrorSequenceUnknown)).To(BeTrue())

			_, _ = cn.RegisterRequest(14)
			_, err = cn.LookupRequest(7)
			Expect(err).To(HaveOccurred())
		})
	})

	Context("atom stash and interning", func() {
		It("should resolve a stashed name into the interned table", func() {
			cn.StashAtomName(1, "_MY_APP")
			Expect(cn.ResolveAtom(1, 377)).ToNot(HaveOccurred())
			Expect(cn.InternedAtoms()).To(Equal(1))

			name, ok := cn.AtomName(377)
			Expect(ok).To(BeTrue())
			Expect(name).To(Equal("_MY_APP"))
		})

		It("should not intern predefined atoms", func() {
			cn.StashAtomName(1, "WM_NAME")
			Expect(cn.ResolveAtom(1, 39)).ToNot(HaveOccurred())
			Expect(cn.InternedAtoms()).To(Equal(0))

			name, ok := cn.AtomName(39)
			Expect(ok).To(BeTrue())
			Expect(name).To(Equal("WM_NAME"))
		})

		It("should not intern a zero atom", func() {
			cn.StashAtomName(1, "NOPE")
			Expect(cn.ResolveAtom(1, 0)).ToNot(HaveOccurred())
			Expect(cn.InternedAtoms()).To(Equal(0))
		})

		It("should report a missing stash as an invariant violation", func() {
			err := cn.ResolveAtom(9, 377)
			Expect(err).To(HaveOccurred())
			Expect(liberr.Is(err, libses.ErrorStashMissing)).To(BeTrue())
		})

		It("should yield unrecognized for unknown atoms", func() {
			_, ok := cn.AtomName(9999)
			Expect(ok).To(BeFalse())
		})
	})

	Context("extension stash", func() {
		It("should take a stashed extension name exactly once", func() {
			cn.StashExtensionName(3, "BIG-REQUESTS")

			name, ok := cn.TakeExtensionName(3)
			Expect(ok).To(BeTrue())
			Expect(name).To(Equal("BIG-REQUESTS"))

			_, ok = cn.TakeExtensionName(3)
			Expect(ok).To(BeFalse())
		})
	})

	Context("closing sockets", func() {
		It("should be idempotent for both sides", func() {
			cli, srv := net.Pipe()
			sess := libses.NewSession(cli, srv, nil, nil, nil)
			cn := sess.Conn()

			Expect(cn.CloseClient()).ToNot(HaveOccurred())
			Expect(cn.CloseClient()).ToNot(HaveOccurred())
			Expect(cn.CloseServer()).ToNot(HaveOccurred())
			Expect(cn.CloseServer()).ToNot(HaveOccurred())
		})
	})
})
