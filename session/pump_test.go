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

// pump_test.go drives a full proxied session through in-memory pipes with
// the real decoder: handshake, request/reply relay, byte identity and
// teardown on peer close.
package session_test

import (
	"bytes"
	"context"
	"io"
	"net"
	"sync"
	"time"

	libprs "github.com/nabbar/x11trace/parser"
	libses "github.com/nabbar/x11trace/session"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// lockedBuffer is a concurrency-safe trace sink for tests.
type lockedBuffer struct {
	m sync.Mutex
	b bytes.Buffer
}

func (o *lockedBuffer) Write(p []byte) (int, error) {
	o.m.Lock()
	defer o.m.Unlock()
	return o.b.Write(p)
}

func (o *lockedBuffer) String() string {
	o.m.Lock()
	defer o.m.Unlock()
	return o.b.String()
}

func le16(v uint16) []byte { return []byte{byte(v), byte(v >> 8)} }
func le32(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

func cat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func testInitiation() []byte {
	return cat([]byte{0x6C, 0}, le16(11), le16(0), le16(0), le16(0), le16(0))
}

func testSetupSuccess() []byte {
	body := cat(
		le32(1),                      // release-number
		le32(0x00400000),             // resource-id-base
		le32(0x003FFFFF),             // resource-id-mask
		le32(256),                    // motion-buffer-size
		le16(0), le16(65535),         // vendor length, max request length
		[]byte{0, 0, 0, 0, 32, 32, 8, 255}, // counts, orders, scanline, keycodes
		le32(0),                      // unused
	)
	return cat([]byte{1, 0}, le16(11), le16(0), le16(uint16(len(body)/4)), body)
}

func testGetGeometry() []byte {
	return cat([]byte{14, 0}, le16(2), le32(0x12345678))
}

func testGetGeometryReply() []byte {
	return cat(
		[]byte{1, 24}, le16(1), le32(0),
		le32(0x250),
		le16(0), le16(0),
		le16(640), le16(480),
		le16(0),
		make([]byte, 10),
	)
}

var _ = Describe("Session pump", func() {
	var (
		cliUser, cliProxy net.Conn
		srvProxy, srvUser net.Conn
		sink              *lockedBuffer
		sess              libses.Session
		cnl               context.CancelFunc
	)

	BeforeEach(func() {
		cliUser, cliProxy = net.Pipe()
		srvProxy, srvUser = net.Pipe()

		sink = &lockedBuffer{}
		prs, err := libprs.New(sink, libprs.Options{})
		Expect(err).ToNot(HaveOccurred())

		sess = libses.NewSession(cliProxy, srvProxy, prs, nil, nil)

		var ctx context.Context
		ctx, cnl = context.WithCancel(context.Background())
		go sess.Run(ctx)
	})

	AfterEach(func() {
		_ = cliUser.Close()
		_ = srvUser.Close()
		cnl()
		Eventually(sess.Done(), time.Second).Should(BeClosed())
	})

	relay := func(src net.Conn, dst net.Conn, msg []byte) []byte {
		go func() {
			_, _ = src.Write(msg)
		}()
		out := make([]byte, len(msg))
		_ = dst.SetReadDeadline(time.Now().Add(time.Second))
		_, err := io.ReadFull(dst, out)
		Expect(err).ToNot(HaveOccurred())
		return out
	}

	It("should relay a whole session byte for byte", func() {
		init := testInitiation()
		Expect(relay(cliUser, srvUser, init)).To(Equal(init))

		setup := testSetupSuccess()
		Expect(relay(srvUser, cliUser, setup)).To(Equal(setup))

		req := testGetGeometry()
		Expect(relay(cliUser, srvUser, req)).To(Equal(req))

		rep := testGetGeometryReply()
		Expect(relay(srvUser, cliUser, rep)).To(Equal(rep))

		Eventually(sink.String, time.Second).Should(ContainSubstring("GetGeometry"))
		Expect(sink.String()).To(ContainSubstring("Reply(GetGeometry)"))
		Expect(sink.String()).To(ContainSubstring("SetupInitiation"))
		Expect(sink.String()).To(ContainSubstring("SetupSuccess"))
	})

	It("should tear the session down when the client closes", func() {
		init := testInitiation()
		Expect(relay(cliUser, srvUser, init)).To(Equal(init))

		_ = cliUser.Close()
		Eventually(sess.Done(), time.Second).Should(BeClosed())

		By("closing both sides idempotently")
		Expect(sess.Conn().CloseClient()).ToNot(HaveOccurred())
		Expect(sess.Conn().CloseServer()).ToNot(HaveOccurred())
	})
})
