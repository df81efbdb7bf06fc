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

package sockbuf

import (
	"errors"
	"io"
	"net"
)

/*
	    data()
	    bw          bp          br          cap(b)
	    |           |           |           |
	▉▉▉▉▉▉▉▉▉▉▉▉▉▉▉▉▉▉▉▉▉▉▉▉▉▉▉▉............
	    written     parsed      available
*/

type buf struct {
	b  []byte
	br int // bytes read or loaded since last clear
	bp int // bytes marked parsed since last clear
	bw int // bytes written or unloaded since last clear
	ms int // declared size of the next message, 0 = unset
}

func (o *buf) available() int {
	return len(o.b) - o.br
}

func (o *buf) grow() {
	o.b = append(o.b, make([]byte, BlockSize)...)
}

func (o *buf) Fill(r io.Reader) (int, error) {
	return o.fill(r, -1)
}

func (o *buf) FillN(r io.Reader, n int) (int, error) {
	if n < 0 {
		return 0, ErrorParamInvalid.Error(nil)
	}
	return o.fill(r, n)
}

func (o *buf) fill(r io.Reader, max int) (int, error) {
	if o.available() == 0 {
		o.grow()
	}

	lim := o.available()
	if max >= 0 && lim > max {
		lim = max
	}
	if lim == 0 {
		return 0, nil
	}

	// one read per call: the pump re-invokes on the next readiness, so a
	// blocking source is never read twice without a parse step in between
	n, err := r.Read(o.b[o.br : o.br+lim])
	o.br += n

	if err != nil {
		if errors.Is(err, io.EOF) {
			return n, ErrorPeerClosed.Error(err)
		}
		var nerr net.Error
		if errors.As(err, &nerr) && nerr.Timeout() {
			return n, nil
		}
		return n, ErrorSystemRead.Error(err)
	}

	return n, nil
}

func (o *buf) Drain(w io.Writer) (int, error) {
	return o.drain(w, o.bp-o.bw)
}

func (o *buf) DrainN(w io.Writer, n int) (int, error) {
	if n < 0 || n > o.bp-o.bw {
		return 0, ErrorParamInvalid.Error(nil)
	}
	return o.drain(w, n)
}

func (o *buf) drain(w io.Writer, n int) (int, error) {
	if n == 0 {
		return 0, nil
	}

	wr, err := w.Write(o.b[o.bw : o.bw+n])
	o.bw += wr

	if o.bw == o.br {
		o.Clear()
	}

	if err != nil {
		return wr, ErrorSystemWrite.Error(err)
	}

	return wr, nil
}

func (o *buf) Load(p []byte) int {
	for o.available() < len(p) {
		o.grow()
	}

	copy(o.b[o.br:], p)
	o.br += len(p)

	return len(p)
}

func (o *buf) Unload(n int) []byte {
	if n > o.Size() {
		n = o.Size()
	}

	out := o.b[o.bw : o.bw+n]
	o.bw += n
	if o.bp < o.bw {
		o.bp = o.bw
	}

	if o.bw == o.br {
		// the backing array keeps out alive after the cursor reset
		o.Clear()
	}

	return out
}

func (o *buf) SetMessageSize(n int) error {
	if n <= 0 {
		return ErrorParamInvalid.Error(nil)
	} else if o.ms != 0 {
		return ErrorMessageSizeSet.Error(nil)
	}

	o.ms = n
	return nil
}

func (o *buf) MessageSizeSet() bool {
	return o.ms != 0
}

func (o *buf) MessageSize() int {
	return o.ms
}

func (o *buf) MarkMessageParsed() error {
	if o.ms == 0 {
		return ErrorMessageSizeUnset.Error(nil)
	} else if o.bp+o.ms > o.br {
		return ErrorCursorOrdering.Error(nil)
	}

	o.bp += o.ms
	o.ms = 0
	return nil
}

func (o *buf) Size() int {
	return o.br - o.bw
}

func (o *buf) Parsed() int {
	return o.bp - o.bw
}

func (o *buf) Unparsed() int {
	return o.br - o.bp
}

func (o *buf) Capacity() int {
	return o.available()
}

func (o *buf) Data() []byte {
	return o.b[o.bw:o.br]
}

func (o *buf) Peek() []byte {
	return o.b[o.bp:o.br]
}

func (o *buf) Empty() bool {
	return o.br == 0
}

func (o *buf) AllParsed() bool {
	return o.bp == o.br
}

func (o *buf) ReadReady() bool {
	return o.Empty() || o.IncompleteMessage()
}

func (o *buf) WriteReady() bool {
	return !o.Empty() && o.Parsed() > 0
}

func (o *buf) IncompleteMessage() bool {
	return o.Unparsed() > 0 &&
		(!o.MessageSizeSet() || o.Unparsed() < o.ms)
}

func (o *buf) Clear() {
	o.br = 0
	o.bp = 0
	o.bw = 0
	o.ms = 0
}
