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
	libprt "github.com/nabbar/x11trace/protocol"
	libses "github.com/nabbar/x11trace/session"
	libbuf "github.com/nabbar/x11trace/sockbuf"
)

// ParseClient frames and decodes one client-to-server message. It re-reads
// the header on every invocation until the complete message has arrived, and
// only then registers the request and consumes the bytes.
func (x *prs) ParseClient(c libses.Connection, b libbuf.Buffer) (bool, error) {
	if b.Unparsed() == 0 {
		return false, nil
	}

	if !c.ClientSetupDone() {
		return x.parseClientSetup(c, b)
	}

	peek := b.Peek()
	if len(peek) < libprt.RequestHeaderSize {
		return false, nil
	}

	bo := c.ByteOrder()
	op := peek[0]
	data := peek[1]
	hdr := libprt.RequestHeaderSize

	var total int
	if l16 := bo.Uint16(peek[2:4]); l16 == 0 && c.BigRequests() {
		if len(peek) < hdr+libprt.BigRequestLengthSize {
			return false, nil
		}
		hdr += libprt.BigRequestLengthSize
		total = int(bo.Uint32(peek[4:8])) * libprt.RequestLengthUnit
	} else {
		total = int(l16) * libprt.RequestLengthUnit
	}

	if total < hdr {
		return false, ErrorMalformedLength.Error(nil)
	}

	if op < libprt.OpExtensionBase && !libprt.IsCoreRequest(op) {
		return false, ErrorUnknownOpcode.Error(nil)
	}

	if !b.MessageSizeSet() {
		if err := b.SetMessageSize(total); err != nil {
			return false, err
		}
	}

	if b.Unparsed() < total {
		return false, nil
	}

	seq, err := c.RegisterRequest(op)
	if err != nil {
		return false, err
	}

	r := newReader(peek[hdr:total], bo)
	name, body, err := x.decodeRequest(c, seq, op, data, total, r)
	if err != nil {
		return false, err
	}

	if err := x.emit('C', c, fmtSeq(seq), x.paint(x.cReq, name), body); err != nil {
		return false, err
	}

	return true, b.MarkMessageParsed()
}

// ParseServer frames and decodes one server-to-client message: the setup
// response while the handshake is open, afterwards one of error (0), reply
// (1) or event (>=2).
func (x *prs) ParseServer(c libses.Connection, b libbuf.Buffer) (bool, error) {
	if b.Unparsed() == 0 {
		return false, nil
	}

	if !c.ServerSetupDone() {
		return x.parseServerSetup(c, b)
	}

	peek := b.Peek()
	bo := c.ByteOrder()
	first := peek[0]

	// the total size is not known before the reply header's length field is
	// on hand, so nothing is declared until then
	total := libprt.EventSize
	if first == libprt.ReplyPrefixReply {
		if len(peek) < libprt.SetupResponseHeaderSize {
			return false, nil
		}
		total += int(bo.Uint32(peek[4:8])) * libprt.RequestLengthUnit
	}

	if !b.MessageSizeSet() {
		if err := b.SetMessageSize(total); err != nil {
			return false, err
		}
	}

	if b.Unparsed() < total {
		return false, nil
	}

	var err error
	switch {
	case first == libprt.ReplyPrefixError:
		err = x.decodeError(c, peek[:total])
	case first == libprt.ReplyPrefixReply:
		err = x.decodeReply(c, peek[:total])
	default:
		err = x.decodeEvent(c, peek[:total])
	}

	if err != nil {
		return false, err
	}

	return true, b.MarkMessageParsed()
}
