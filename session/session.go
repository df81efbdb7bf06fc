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

package session

import (
	"context"
	"io"
	"net"
	"sync"

	liberr "github.com/nabbar/x11trace/errors"
	libbuf "github.com/nabbar/x11trace/sockbuf"
)

type sess struct {
	cn  *conn
	ana Analyzer

	cli net.Conn
	srv net.Conn

	fe FuncError
	fi FuncInfo

	dn  chan struct{}
	one sync.Once
}

func newSession(client, server net.Conn, ana Analyzer, fe FuncError, fi FuncInfo) *sess {
	c := newConnection()
	c.attach(client, server)

	return &sess{
		cn:  c,
		ana: ana,
		cli: client,
		srv: server,
		fe:  fe,
		fi:  fi,
		dn:  make(chan struct{}),
	}
}

func (o *sess) Conn() Connection {
	return o.cn
}

func (o *sess) Done() <-chan struct{} {
	return o.dn
}

func (o *sess) info(msg string) {
	if o.fi != nil {
		o.fi(o.cn.ID(), msg)
	}
}

func (o *sess) fail(err error) {
	if err == nil {
		return
	}
	if liberr.Is(err, libbuf.ErrorPeerClosed) {
		o.info("peer closed connection")
		return
	}
	if o.fe != nil {
		o.fe(o.cn.ID(), err)
	}
}

func (o *sess) teardown() {
	_ = o.cn.CloseClient()
	_ = o.cn.CloseServer()
}

// Run relays both directions until either side ends. Each direction owns its
// buffer; the shared connection record is internally locked. Closing both
// sides on any failure unblocks the peer direction's pending read.
func (o *sess) Run(ctx context.Context) {
	defer o.one.Do(func() { close(o.dn) })

	o.info("session opened")

	stop := make(chan struct{})
	defer close(stop)

	go func() {
		select {
		case <-ctx.Done():
			o.teardown()
		case <-stop:
		}
	}()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		defer o.teardown()
		o.fail(o.pump(o.cli, o.srv, o.ana.ParseClient))
	}()

	go func() {
		defer wg.Done()
		defer o.teardown()
		o.fail(o.pump(o.srv, o.cli, o.ana.ParseServer))
	}()

	wg.Wait()
	o.info("session closed")
}

func (o *sess) pump(src io.Reader, dst io.Writer, parse func(Connection, libbuf.Buffer) (bool, error)) error {
	b := libbuf.New()

	for {
		if _, err := b.Fill(src); err != nil {
			return err
		}

		for {
			ok, err := parse(o.cn, b)
			if err != nil {
				return err
			}
			if !ok {
				break
			}
		}

		if b.WriteReady() {
			if _, err := b.Drain(dst); err != nil {
				return err
			}
		}
	}
}
