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
	"errors"
	"net"
	"sync"
	"sync/atomic"
	"time"
)

type srv struct {
	m sync.Mutex

	lst net.Listener
	dia DialUpstream
	ana Analyzer

	fe FuncError
	fi FuncInfo

	run atomic.Bool
	gon atomic.Bool

	ses map[uint64]*sess
	dn  chan struct{}
	one sync.Once
}

func newServer(l net.Listener, dial DialUpstream, ana Analyzer) *srv {
	return &srv{
		lst: l,
		dia: dial,
		ana: ana,
		ses: make(map[uint64]*sess),
		dn:  make(chan struct{}),
	}
}

func (o *srv) RegisterFuncError(f FuncError) {
	o.m.Lock()
	defer o.m.Unlock()
	o.fe = f
}

func (o *srv) RegisterFuncInfo(f FuncInfo) {
	o.m.Lock()
	defer o.m.Unlock()
	o.fi = f
}

func (o *srv) funcError() FuncError {
	o.m.Lock()
	defer o.m.Unlock()
	return o.fe
}

func (o *srv) funcInfo() FuncInfo {
	o.m.Lock()
	defer o.m.Unlock()
	return o.fi
}

func (o *srv) fail(id uint64, err error) {
	if f := o.funcError(); f != nil && err != nil {
		f(id, err)
	}
}

func (o *srv) info(id uint64, msg string) {
	if f := o.funcInfo(); f != nil {
		f(id, msg)
	}
}

func (o *srv) IsRunning() bool {
	return o.run.Load()
}

func (o *srv) IsGone() bool {
	return o.gon.Load()
}

func (o *srv) Done() <-chan struct{} {
	return o.dn
}

func (o *srv) OpenConnections() int {
	o.m.Lock()
	defer o.m.Unlock()
	return len(o.ses)
}

func (o *srv) track(s *sess) {
	o.m.Lock()
	defer o.m.Unlock()
	o.ses[s.Conn().ID()] = s
}

func (o *srv) untrack(s *sess) {
	o.m.Lock()
	defer o.m.Unlock()
	delete(o.ses, s.Conn().ID())
}

func (o *srv) Listen(ctx context.Context) error {
	if o.gon.Load() {
		return ErrorSessionGone.Error(nil)
	}

	o.run.Store(true)
	defer func() {
		o.run.Store(false)
		o.gon.Store(true)
		o.one.Do(func() { close(o.dn) })
	}()

	go func() {
		<-ctx.Done()
		_ = o.lst.Close()
	}()

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		cli, err := o.lst.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) || ctx.Err() != nil {
				return nil
			}
			return ErrorAcceptSocket.Error(err)
		}

		ups, err := o.dia(ctx)
		if err != nil {
			o.fail(0, ErrorUpstreamDial.Error(err))
			_ = cli.Close()
			continue
		}

		s := newSession(cli, ups, o.ana, o.funcError(), o.funcInfo())
		o.track(s)
		o.info(s.Conn().ID(), "client accepted")

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer o.untrack(s)
			s.Run(ctx)
		}()
	}
}

func (o *srv) Shutdown(ctx context.Context) error {
	_ = o.lst.Close()

	tck := time.NewTicker(5 * time.Millisecond)
	defer tck.Stop()

	for {
		if o.OpenConnections() == 0 && o.IsGone() {
			return nil
		}

		select {
		case <-ctx.Done():
			return o.Close()
		case <-tck.C:
		}
	}
}

func (o *srv) Close() error {
	err := o.lst.Close()

	o.m.Lock()
	lst := make([]*sess, 0, len(o.ses))
	for _, s := range o.ses {
		lst = append(lst, s)
	}
	o.m.Unlock()

	for _, s := range lst {
		s.teardown()
	}

	if err != nil && !errors.Is(err, net.ErrClosed) {
		return ErrorCloseSocket.Error(err)
	}

	return nil
}
