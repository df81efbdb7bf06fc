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
	"encoding/binary"
	"strconv"

	libprt "github.com/nabbar/x11trace/protocol"
	libses "github.com/nabbar/x11trace/session"
	libbuf "github.com/nabbar/x11trace/sockbuf"
)

// parseClientSetup frames and decodes the client initiation message: the
// fixed 12-byte header whose first byte latches the connection byte order,
// then the padded authorization protocol name and data.
func (x *prs) parseClientSetup(c libses.Connection, b libbuf.Buffer) (bool, error) {
	peek := b.Peek()
	if len(peek) < libprt.SetupHeaderSize {
		return false, nil
	}

	var bo binary.ByteOrder
	switch peek[0] {
	case libprt.ByteOrderMSBFirst:
		bo = binary.BigEndian
	case libprt.ByteOrderLSBFirst:
		bo = binary.LittleEndian
	default:
		return false, ErrorSetupByteOrder.Error(nil)
	}

	n := int(bo.Uint16(peek[6:8]))
	d := int(bo.Uint16(peek[8:10]))
	total := libprt.SetupHeaderSize + libprt.Padded(n) + libprt.Padded(d)

	if !b.MessageSizeSet() {
		if err := b.SetMessageSize(total); err != nil {
			return false, err
		}
	}

	if b.Unparsed() < total {
		return false, nil
	}

	c.SetByteOrder(bo)

	r := newReader(peek[:total], bo)
	order := r.U8()
	r.Skip(1)
	major := r.U16()
	minor := r.U16()
	r.Skip(6) // n, d, unused already decoded from the header
	name := r.Str(n)
	r.SkipPad(n)
	data := r.Bytes(d)
	r.SkipPad(d)

	ws := x.ws()
	orderName := "MSBFirst"
	if order == libprt.ByteOrderLSBFirst {
		orderName = "LSBFirst"
	}

	members := []string{
		ws.member("byte-order", orderName),
		ws.member("protocol-major-version", dec(uint64(major))),
		ws.member("protocol-minor-version", dec(uint64(minor))),
		ws.member("authorization-protocol-name", strconv.Quote(name)),
	}
	if x.opt().Verbose {
		members = append(members,
			ws.member("authorization-protocol-data", x.fmtBytes(data)))
	}

	c.SetClientSetupDone()

	if err := x.emit('C', c, "", x.paint(x.cSet, "SetupInitiation"), ws.record(members)); err != nil {
		return false, err
	}

	return true, b.MarkMessageParsed()
}

// parseServerSetup frames and decodes one server setup response: Failed,
// Success or Authenticate, each an 8-byte header plus a length-driven body.
// Authenticate keeps the handshake open for another response.
func (x *prs) parseServerSetup(c libses.Connection, b libbuf.Buffer) (bool, error) {
	peek := b.Peek()
	if len(peek) < libprt.SetupResponseHeaderSize {
		return false, nil
	}

	bo := c.ByteOrder()
	status := peek[0]
	total := libprt.SetupResponseHeaderSize +
		int(bo.Uint16(peek[6:8]))*libprt.RequestLengthUnit

	if !b.MessageSizeSet() {
		if err := b.SetMessageSize(total); err != nil {
			return false, err
		}
	}

	if b.Unparsed() < total {
		return false, nil
	}

	r := newReader(peek[:total], bo)
	ws := x.ws()

	var (
		kind string
		body string
		err  error
	)

	switch status {
	case libprt.SetupFailed:
		kind = "SetupFailed"
		body = x.setupFailed(r, ws)
	case libprt.SetupSuccess:
		kind = "SetupSuccess"
		body = x.setupSuccess(r, ws)
		c.SetServerSetupDone()
	case libprt.SetupAuthenticate:
		kind = "SetupAuthenticate"
		body = x.setupAuthenticate(r, ws, total)
	default:
		return false, ErrorSetupStatus.Error(nil)
	}

	if r.Bad() {
		return false, ErrorMalformedTruncated.Error(nil)
	}

	if err = x.emit('S', c, "", x.paint(x.cSet, kind), body); err != nil {
		return false, err
	}

	return true, b.MarkMessageParsed()
}

func (x *prs) setupFailed(r *rdr, ws whitespace) string {
	r.Skip(1)
	n := int(r.U8())
	major := r.U16()
	minor := r.U16()
	r.Skip(2)
	reason := r.Str(n)

	return ws.record([]string{
		ws.member("protocol-major-version", dec(uint64(major))),
		ws.member("protocol-minor-version", dec(uint64(minor))),
		ws.member("reason", strconv.Quote(reason)),
	})
}

func (x *prs) setupAuthenticate(r *rdr, ws whitespace, total int) string {
	r.Skip(libprt.SetupResponseHeaderSize)
	reason := r.Str(total - libprt.SetupResponseHeaderSize)

	return ws.record([]string{
		ws.member("reason", strconv.Quote(reason)),
	})
}

func (x *prs) setupSuccess(r *rdr, ws whitespace) string {
	r.Skip(libprt.SetupResponseHeaderSize)

	release := r.U32()
	ridBase := r.U32()
	ridMask := r.U32()
	motion := r.U32()
	v := int(r.U16())
	maxReqLen := r.U16()
	screens := int(r.U8())
	formats := int(r.U8())
	imgOrder := r.U8()
	bmpOrder := r.U8()
	slUnit := r.U8()
	slPad := r.U8()
	minKc := r.U8()
	maxKc := r.U8()
	r.Skip(4)
	vendor := r.Str(v)
	r.SkipPad(v)

	nw := ws.nest()
	fmts := fmtList(formats, ws, func(int) string {
		return x.setupFormat(r, nw)
	})
	scrs := fmtList(screens, ws, func(int) string {
		return x.setupScreen(r, nw)
	})

	members := []string{
		ws.member("release-number", dec(uint64(release))),
		ws.member("resource-id-base", hexPad(uint64(ridBase), 4)),
		ws.member("resource-id-mask", hexPad(uint64(ridMask), 4)),
		ws.member("motion-buffer-size", dec(uint64(motion))),
		ws.member("maximum-request-length", dec(uint64(maxReqLen))),
		ws.member("image-byte-order", x.fmtEnum(uint64(imgOrder), 1, libprt.ImageByteOrderNames)),
		ws.member("bitmap-format-bit-order", x.fmtEnum(uint64(bmpOrder), 1, libprt.BitmapFormatBitOrderNames)),
		ws.member("bitmap-format-scanline-unit", dec(uint64(slUnit))),
		ws.member("bitmap-format-scanline-pad", dec(uint64(slPad))),
		ws.member("min-keycode", dec(uint64(minKc))),
		ws.member("max-keycode", dec(uint64(maxKc))),
		ws.member("vendor", strconv.Quote(vendor)),
		ws.member("pixmap-formats", fmts),
		ws.member("roots", scrs),
	}

	return ws.record(members)
}

func (x *prs) setupFormat(r *rdr, ws whitespace) string {
	depth := r.U8()
	bpp := r.U8()
	pad := r.U8()
	r.Skip(5)

	return ws.record([]string{
		ws.member("depth", dec(uint64(depth))),
		ws.member("bits-per-pixel", dec(uint64(bpp))),
		ws.member("scanline-pad", dec(uint64(pad))),
	})
}

func (x *prs) setupScreen(r *rdr, ws whitespace) string {
	root := r.U32()
	cmap := r.U32()
	white := r.U32()
	black := r.U32()
	inputs := r.U32()
	wPx := r.U16()
	hPx := r.U16()
	wMm := r.U16()
	hMm := r.U16()
	minMaps := r.U16()
	maxMaps := r.U16()
	visual := r.U32()
	backing := r.U8()
	saveUnders := r.U8()
	rootDepth := r.U8()
	depths := int(r.U8())

	nw := ws.nest()
	dls := fmtList(depths, ws, func(int) string {
		return x.setupDepth(r, nw)
	})

	return ws.record([]string{
		ws.member("root", hexPad(uint64(root), 4)),
		ws.member("default-colormap", hexPad(uint64(cmap), 4)),
		ws.member("white-pixel", hexPad(uint64(white), 4)),
		ws.member("black-pixel", hexPad(uint64(black), 4)),
		ws.member("current-input-masks", x.fmtMask(uint64(inputs), 4, libprt.SetOfEventFlagNames)),
		ws.member("width-in-pixels", dec(uint64(wPx))),
		ws.member("height-in-pixels", dec(uint64(hPx))),
		ws.member("width-in-millimeters", dec(uint64(wMm))),
		ws.member("height-in-millimeters", dec(uint64(hMm))),
		ws.member("min-installed-maps", dec(uint64(minMaps))),
		ws.member("max-installed-maps", dec(uint64(maxMaps))),
		ws.member("root-visual", hexPad(uint64(visual), 4)),
		ws.member("backing-stores", x.fmtEnum(uint64(backing), 1, libprt.BackingStoresNames)),
		ws.member("save-unders", x.fmtBool(saveUnders)),
		ws.member("root-depth", dec(uint64(rootDepth))),
		ws.member("allowed-depths", dls),
	})
}

func (x *prs) setupDepth(r *rdr, ws whitespace) string {
	depth := r.U8()
	r.Skip(1)
	visuals := int(r.U16())
	r.Skip(4)

	nw := ws.nest()
	vls := fmtList(visuals, ws, func(int) string {
		return x.setupVisual(r, nw)
	})

	return ws.record([]string{
		ws.member("depth", dec(uint64(depth))),
		ws.member("visuals", vls),
	})
}

func (x *prs) setupVisual(r *rdr, ws whitespace) string {
	vid := r.U32()
	class := r.U8()
	bits := r.U8()
	entries := r.U16()
	redMask := r.U32()
	greenMask := r.U32()
	blueMask := r.U32()
	r.Skip(4)

	return ws.record([]string{
		ws.member("visual-id", hexPad(uint64(vid), 4)),
		ws.member("class", x.fmtEnum(uint64(class), 1, libprt.VisualClassNames)),
		ws.member("bits-per-rgb-value", dec(uint64(bits))),
		ws.member("colormap-entries", dec(uint64(entries))),
		ws.member("red-mask", hexPad(uint64(redMask), 4)),
		ws.member("green-mask", hexPad(uint64(greenMask), 4)),
		ws.member("blue-mask", hexPad(uint64(blueMask), 4)),
	})
}
