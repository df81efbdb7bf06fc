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

package parser

import (
	"fmt"
	"io"
	"sync"

	libclr "github.com/fatih/color"

	libatm "github.com/nabbar/x11trace/atomic"
	libses "github.com/nabbar/x11trace/session"
)

type prs struct {
	s sync.Mutex
	w io.Writer
	o libatm.Value[Options]

	cReq *libclr.Color
	cRep *libclr.Color
	cEvt *libclr.Color
	cErr *libclr.Color
	cSet *libclr.Color
}

func newParser(sink io.Writer, opt Options) *prs {
	x := &prs{
		w:    sink,
		o:    libatm.NewValueDefault[Options](opt),
		cReq: libclr.New(libclr.FgGreen),
		cRep: libclr.New(libclr.FgCyan),
		cEvt: libclr.New(libclr.FgYellow),
		cErr: libclr.New(libclr.FgRed),
		cSet: libclr.New(libclr.FgMagenta),
	}

	for _, c := range []*libclr.Color{x.cReq, x.cRep, x.cEvt, x.cErr, x.cSet} {
		c.EnableColor()
	}

	x.o.Store(opt)
	return x
}

func (x *prs) opt() Options {
	return x.o.Load()
}

func (x *prs) SetOptions(opt Options) {
	x.o.Store(opt)
}

func (x *prs) GetOptions() Options {
	return x.opt()
}

func (x *prs) paint(c *libclr.Color, s string) string {
	if x.opt().Color {
		return c.Sprint(s)
	}
	return s
}

// emit writes one trace record as a single call to the sink, preserving line
// atomicity across sessions.
func (x *prs) emit(dir byte, c libses.Connection, seq string, kind string, body string) error {
	var line string

	if seq != "" {
		line = fmt.Sprintf("%c %06d:%s %s %s\n", dir, c.ID(), seq, kind, body)
	} else {
		line = fmt.Sprintf("%c %06d %s %s\n", dir, c.ID(), kind, body)
	}

	x.s.Lock()
	defer x.s.Unlock()

	if _, err := x.w.Write([]byte(line)); err != nil {
		return ErrorSinkWrite.Error(err)
	}

	return nil
}

func fmtSeq(seq uint16) string {
	return fmt.Sprintf("%05d", seq)
}

func (x *prs) ws() whitespace {
	return newWhitespace(x.opt().Multiline)
}
