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
	"strconv"

	libprt "github.com/nabbar/x11trace/protocol"
)

// reqBodyFonts covers the font, graphics-context, drawing and text opcodes
// (45..77); later opcodes fall through to the colormap and control group.
func (x *prs) reqBodyFonts(q *reqCtx, op uint8, ws whitespace) string {
	switch op {
	case libprt.OpOpenFont:
		return x.reqOpenFont(q, ws)
	case libprt.OpCloseFont:
		return x.reqOnlyFont(q, ws)
	case libprt.OpQueryFont:
		return x.reqOnlyFontable(q, ws)
	case libprt.OpQueryTextExtents:
		return x.reqQueryTextExtents(q, ws)
	case libprt.OpListFonts, libprt.OpListFontsWithInfo:
		return x.reqListFonts(q, ws)
	case libprt.OpSetFontPath:
		return x.reqSetFontPath(q, ws)
	case libprt.OpCreatePixmap:
		return x.reqCreatePixmap(q, ws)
	case libprt.OpFreePixmap:
		return x.reqOnlyPixmap(q, ws)
	case libprt.OpCreateGC:
		return x.reqCreateGC(q, ws)
	case libprt.OpChangeGC:
		return x.reqChangeGC(q, ws)
	case libprt.OpCopyGC:
		return x.reqCopyGC(q, ws)
	case libprt.OpSetDashes:
		return x.reqSetDashes(q, ws)
	case libprt.OpSetClipRectangles:
		return x.reqSetClipRectangles(q, ws)
	case libprt.OpFreeGC:
		return x.reqOnlyGC(q, ws)
	case libprt.OpClearArea:
		return x.reqClearArea(q, ws)
	case libprt.OpCopyArea:
		return x.reqCopyArea(q, ws)
	case libprt.OpCopyPlane:
		return x.reqCopyPlane(q, ws)
	case libprt.OpPolyPoint, libprt.OpPolyLine:
		return x.reqPolyPoint(q, ws)
	case libprt.OpPolySegment:
		return x.reqPolySegment(q, ws)
	case libprt.OpPolyRectangle, libprt.OpPolyFillRectangle:
		return x.reqPolyRectangle(q, ws)
	case libprt.OpPolyArc, libprt.OpPolyFillArc:
		return x.reqPolyArc(q, ws)
	case libprt.OpFillPoly:
		return x.reqFillPoly(q, ws)
	case libprt.OpPutImage:
		return x.reqPutImage(q, ws)
	case libprt.OpGetImage:
		return x.reqGetImage(q, ws)
	case libprt.OpPolyText8:
		return x.reqPolyText8(q, ws)
	case libprt.OpPolyText16:
		return x.reqPolyText16(q, ws)
	case libprt.OpImageText8:
		return x.reqImageText8(q, ws)
	case libprt.OpImageText16:
		return x.reqImageText16(q, ws)
	default:
		return x.reqBodyColor(q, op, ws)
	}
}

func (x *prs) reqOnlyFont(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("font", x.fmtXID(q.r.U32(), nil)),
	})
}

func (x *prs) reqOnlyFontable(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("font", x.fmtXID(q.r.U32(), nil)),
	})
}

func (x *prs) reqOnlyPixmap(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("pixmap", x.fmtXID(q.r.U32(), nil)),
	})
}

func (x *prs) reqOnlyGC(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("gc", x.fmtXID(q.r.U32(), nil)),
	})
}

func (x *prs) reqOpenFont(q *reqCtx, ws whitespace) string {
	fid := q.r.U32()
	n := int(q.r.U16())
	q.r.Skip(2)
	name := q.r.Str(n)
	q.r.SkipPad(n)

	members := []string{
		ws.member("fid", x.fmtXID(fid, nil)),
	}
	if x.opt().Verbose {
		members = append(members, ws.member("n", dec(uint64(n))))
	}
	members = append(members, ws.member("name", strconv.Quote(name)))

	return ws.record(members)
}

// reqQueryTextExtents's string length derives from the request length; the
// odd-length flag in the data byte drops the trailing pad unit.
func (x *prs) reqQueryTextExtents(q *reqCtx, ws whitespace) string {
	font := q.r.U32()

	n := q.r.Remaining() / 2
	if q.data != 0 {
		n--
	}
	units := make([]uint16, 0, n)
	for i := 0; i < n; i++ {
		units = append(units, q.r.U16())
	}
	q.r.Skip(q.r.Remaining())

	return ws.record([]string{
		ws.member("font", x.fmtXID(font, nil)),
		ws.member("string", fmtString16(units)),
	})
}

func (x *prs) reqListFonts(q *reqCtx, ws whitespace) string {
	max := q.r.U16()
	n := int(q.r.U16())
	pattern := q.r.Str(n)
	q.r.SkipPad(n)

	members := []string{
		ws.member("max-names", dec(uint64(max))),
	}
	if x.opt().Verbose {
		members = append(members, ws.member("n", dec(uint64(n))))
	}
	members = append(members, ws.member("pattern", strconv.Quote(pattern)))

	return ws.record(members)
}

func (x *prs) reqSetFontPath(q *reqCtx, ws whitespace) string {
	n := int(q.r.U16())
	q.r.Skip(2)

	nw := ws.nest()
	path := fmtList(n, ws, func(int) string {
		return x.fmtStr(q.r, nw)
	})
	q.r.Skip(q.r.Remaining())

	return ws.record([]string{
		ws.member("path", path),
	})
}

func (x *prs) reqCreatePixmap(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("depth", dec(uint64(q.data))),
		ws.member("pid", x.fmtXID(q.r.U32(), nil)),
		ws.member("drawable", x.fmtXID(q.r.U32(), nil)),
		ws.member("width", dec(uint64(q.r.U16()))),
		ws.member("height", dec(uint64(q.r.U16()))),
	})
}

func (x *prs) reqCreateGC(q *reqCtx, ws whitespace) string {
	cid := q.r.U32()
	drawable := q.r.U32()
	mask := q.r.U32()

	return ws.record([]string{
		ws.member("cid", x.fmtXID(cid, nil)),
		ws.member("drawable", x.fmtXID(drawable, nil)),
		ws.member("value-mask", x.fmtMask(uint64(mask), 4, libprt.GCValueMaskNames)),
		ws.member("value-list", x.fmtValueList(q.c, q.r, ws.nest(), uint64(mask), gcBinds)),
	})
}

func (x *prs) reqChangeGC(q *reqCtx, ws whitespace) string {
	gc := q.r.U32()
	mask := q.r.U32()

	return ws.record([]string{
		ws.member("gc", x.fmtXID(gc, nil)),
		ws.member("value-mask", x.fmtMask(uint64(mask), 4, libprt.GCValueMaskNames)),
		ws.member("value-list", x.fmtValueList(q.c, q.r, ws.nest(), uint64(mask), gcBinds)),
	})
}

func (x *prs) reqCopyGC(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("src-gc", x.fmtXID(q.r.U32(), nil)),
		ws.member("dst-gc", x.fmtXID(q.r.U32(), nil)),
		ws.member("value-mask", x.fmtMask(uint64(q.r.U32()), 4, libprt.GCValueMaskNames)),
	})
}

func (x *prs) reqSetDashes(q *reqCtx, ws whitespace) string {
	gc := q.r.U32()
	offset := q.r.U16()
	n := int(q.r.U16())
	dashes := q.r.Bytes(n)
	q.r.SkipPad(n)

	return ws.record([]string{
		ws.member("gc", x.fmtXID(gc, nil)),
		ws.member("dash-offset", dec(uint64(offset))),
		ws.member("dashes", x.fmtBytes(dashes)),
	})
}

func (x *prs) reqSetClipRectangles(q *reqCtx, ws whitespace) string {
	gc := q.r.U32()
	cx := q.r.I16()
	cy := q.r.I16()

	n := q.r.Remaining() / 8
	nw := ws.nest()
	rects := fmtList(n, ws, func(int) string {
		return x.fmtRectangle(q.r, nw)
	})

	return ws.record([]string{
		ws.member("ordering", x.fmtEnum(uint64(q.data), 1, libprt.ClipOrderingNames)),
		ws.member("gc", x.fmtXID(gc, nil)),
		ws.member("clip-x-origin", decI(int64(cx))),
		ws.member("clip-y-origin", decI(int64(cy))),
		ws.member("rectangles", rects),
	})
}

func (x *prs) reqClearArea(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("exposures", x.fmtBool(q.data)),
		ws.member("window", x.fmtXID(q.r.U32(), nil)),
		ws.member("x", decI(int64(q.r.I16()))),
		ws.member("y", decI(int64(q.r.I16()))),
		ws.member("width", dec(uint64(q.r.U16()))),
		ws.member("height", dec(uint64(q.r.U16()))),
	})
}

func (x *prs) reqCopyArea(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("src-drawable", x.fmtXID(q.r.U32(), nil)),
		ws.member("dst-drawable", x.fmtXID(q.r.U32(), nil)),
		ws.member("gc", x.fmtXID(q.r.U32(), nil)),
		ws.member("src-x", decI(int64(q.r.I16()))),
		ws.member("src-y", decI(int64(q.r.I16()))),
		ws.member("dst-x", decI(int64(q.r.I16()))),
		ws.member("dst-y", decI(int64(q.r.I16()))),
		ws.member("width", dec(uint64(q.r.U16()))),
		ws.member("height", dec(uint64(q.r.U16()))),
	})
}

func (x *prs) reqCopyPlane(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("src-drawable", x.fmtXID(q.r.U32(), nil)),
		ws.member("dst-drawable", x.fmtXID(q.r.U32(), nil)),
		ws.member("gc", x.fmtXID(q.r.U32(), nil)),
		ws.member("src-x", decI(int64(q.r.I16()))),
		ws.member("src-y", decI(int64(q.r.I16()))),
		ws.member("dst-x", decI(int64(q.r.I16()))),
		ws.member("dst-y", decI(int64(q.r.I16()))),
		ws.member("width", dec(uint64(q.r.U16()))),
		ws.member("height", dec(uint64(q.r.U16()))),
		ws.member("bit-plane", hexPad(uint64(q.r.U32()), 4)),
	})
}

func (x *prs) reqPolyPoint(q *reqCtx, ws whitespace) string {
	drawable := q.r.U32()
	gc := q.r.U32()

	n := q.r.Remaining() / 4
	nw := ws.nest()
	pts := fmtList(n, ws, func(int) string {
		return x.fmtPoint(q.r, nw)
	})

	return ws.record([]string{
		ws.member("coordinate-mode", x.fmtEnum(uint64(q.data), 1, libprt.CoordinateModeNames)),
		ws.member("drawable", x.fmtXID(drawable, nil)),
		ws.member("gc", x.fmtXID(gc, nil)),
		ws.member("points", pts),
	})
}

func (x *prs) reqPolySegment(q *reqCtx, ws whitespace) string {
	drawable := q.r.U32()
	gc := q.r.U32()

	n := q.r.Remaining() / 8
	nw := ws.nest()
	segs := fmtList(n, ws, func(int) string {
		return x.fmtSegment(q.r, nw)
	})

	return ws.record([]string{
		ws.member("drawable", x.fmtXID(drawable, nil)),
		ws.member("gc", x.fmtXID(gc, nil)),
		ws.member("segments", segs),
	})
}

func (x *prs) reqPolyRectangle(q *reqCtx, ws whitespace) string {
	drawable := q.r.U32()
	gc := q.r.U32()

	n := q.r.Remaining() / 8
	nw := ws.nest()
	rects := fmtList(n, ws, func(int) string {
		return x.fmtRectangle(q.r, nw)
	})

	return ws.record([]string{
		ws.member("drawable", x.fmtXID(drawable, nil)),
		ws.member("gc", x.fmtXID(gc, nil)),
		ws.member("rectangles", rects),
	})
}

func (x *prs) reqPolyArc(q *reqCtx, ws whitespace) string {
	drawable := q.r.U32()
	gc := q.r.U32()

	n := q.r.Remaining() / 12
	nw := ws.nest()
	arcs := fmtList(n, ws, func(int) string {
		return x.fmtArc(q.r, nw)
	})

	return ws.record([]string{
		ws.member("drawable", x.fmtXID(drawable, nil)),
		ws.member("gc", x.fmtXID(gc, nil)),
		ws.member("arcs", arcs),
	})
}

func (x *prs) reqFillPoly(q *reqCtx, ws whitespace) string {
	drawable := q.r.U32()
	gc := q.r.U32()
	shape := q.r.U8()
	mode := q.r.U8()
	q.r.Skip(2)

	n := q.r.Remaining() / 4
	nw := ws.nest()
	pts := fmtList(n, ws, func(int) string {
		return x.fmtPoint(q.r, nw)
	})

	return ws.record([]string{
		ws.member("drawable", x.fmtXID(drawable, nil)),
		ws.member("gc", x.fmtXID(gc, nil)),
		ws.member("shape", x.fmtEnum(uint64(shape), 1, libprt.PolyShapeNames)),
		ws.member("coordinate-mode", x.fmtEnum(uint64(mode), 1, libprt.CoordinateModeNames)),
		ws.member("points", pts),
	})
}

func (x *prs) reqPutImage(q *reqCtx, ws whitespace) string {
	drawable := q.r.U32()
	gc := q.r.U32()
	width := q.r.U16()
	height := q.r.U16()
	dx := q.r.I16()
	dy := q.r.I16()
	leftPad := q.r.U8()
	depth := q.r.U8()
	q.r.Skip(2)
	data := q.r.Bytes(q.r.Remaining())

	return ws.record([]string{
		ws.member("format", x.fmtEnum(uint64(q.data), 1, libprt.ImageFormatNames)),
		ws.member("drawable", x.fmtXID(drawable, nil)),
		ws.member("gc", x.fmtXID(gc, nil)),
		ws.member("width", dec(uint64(width))),
		ws.member("height", dec(uint64(height))),
		ws.member("dst-x", decI(int64(dx))),
		ws.member("dst-y", decI(int64(dy))),
		ws.member("left-pad", dec(uint64(leftPad))),
		ws.member("depth", dec(uint64(depth))),
		ws.member("data", x.fmtBytes(data)),
	})
}

func (x *prs) reqGetImage(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("format", x.fmtEnum(uint64(q.data), 1, libprt.ImageFormatNames)),
		ws.member("drawable", x.fmtXID(q.r.U32(), nil)),
		ws.member("x", decI(int64(q.r.I16()))),
		ws.member("y", decI(int64(q.r.I16()))),
		ws.member("width", dec(uint64(q.r.U16()))),
		ws.member("height", dec(uint64(q.r.U16()))),
		ws.member("plane-mask", hexPad(uint64(q.r.U32()), 4)),
	})
}

// reqPolyText8's body is a heterogeneous TEXTITEM8 list: a leading byte of
// 255 switches the font (5 bytes total), any other value is the length of an
// embedded string element. The list runs to the padded request length.
func (x *prs) reqPolyText8(q *reqCtx, ws whitespace) string {
	drawable := q.r.U32()
	gc := q.r.U32()
	xx := q.r.I16()
	yy := q.r.I16()

	nw := ws.nest()
	var items []string
	for q.r.Remaining() > 0 && !q.r.Bad() {
		n := q.r.U8()
		if n == 255 {
			fid := uint32(q.r.U8())<<24 | uint32(q.r.U8())<<16 |
				uint32(q.r.U8())<<8 | uint32(q.r.U8())
			items = append(items, nw.record([]string{
				nw.member("font", hexPad(uint64(fid), 4)),
			}))
			continue
		}
		if q.r.Remaining() < int(n)+1 {
			// trailing pad bytes, never a valid item
			q.r.Skip(q.r.Remaining())
			break
		}
		delta := q.r.I8()
		s := q.r.Str(int(n))
		items = append(items, nw.record([]string{
			nw.member("delta", decI(int64(delta))),
			nw.member("string", strconv.Quote(s)),
		}))
	}

	return ws.record([]string{
		ws.member("drawable", x.fmtXID(drawable, nil)),
		ws.member("gc", x.fmtXID(gc, nil)),
		ws.member("x", decI(int64(xx))),
		ws.member("y", decI(int64(yy))),
		ws.member("items", ws.list(items)),
	})
}

func (x *prs) reqPolyText16(q *reqCtx, ws whitespace) string {
	drawable := q.r.U32()
	gc := q.r.U32()
	xx := q.r.I16()
	yy := q.r.I16()

	nw := ws.nest()
	var items []string
	for q.r.Remaining() > 0 && !q.r.Bad() {
		n := q.r.U8()
		if n == 255 {
			fid := uint32(q.r.U8())<<24 | uint32(q.r.U8())<<16 |
				uint32(q.r.U8())<<8 | uint32(q.r.U8())
			items = append(items, nw.record([]string{
				nw.member("font", hexPad(uint64(fid), 4)),
			}))
			continue
		}
		if q.r.Remaining() < int(n)*2+1 {
			q.r.Skip(q.r.Remaining())
			break
		}
		delta := q.r.I8()
		units := make([]uint16, 0, int(n))
		for i := 0; i < int(n); i++ {
			units = append(units, q.r.U16())
		}
		items = append(items, nw.record([]string{
			nw.member("delta", decI(int64(delta))),
			nw.member("string", fmtString16(units)),
		}))
	}

	return ws.record([]string{
		ws.member("drawable", x.fmtXID(drawable, nil)),
		ws.member("gc", x.fmtXID(gc, nil)),
		ws.member("x", decI(int64(xx))),
		ws.member("y", decI(int64(yy))),
		ws.member("items", ws.list(items)),
	})
}

func (x *prs) reqImageText8(q *reqCtx, ws whitespace) string {
	drawable := q.r.U32()
	gc := q.r.U32()
	xx := q.r.I16()
	yy := q.r.I16()
	s := q.r.Str(int(q.data))
	q.r.SkipPad(int(q.data))

	return ws.record([]string{
		ws.member("drawable", x.fmtXID(drawable, nil)),
		ws.member("gc", x.fmtXID(gc, nil)),
		ws.member("x", decI(int64(xx))),
		ws.member("y", decI(int64(yy))),
		ws.member("string", strconv.Quote(s)),
	})
}

func (x *prs) reqImageText16(q *reqCtx, ws whitespace) string {
	drawable := q.r.U32()
	gc := q.r.U32()
	xx := q.r.I16()
	yy := q.r.I16()

	units := make([]uint16, 0, int(q.data))
	for i := 0; i < int(q.data); i++ {
		units = append(units, q.r.U16())
	}
	q.r.SkipPad(int(q.data) * 2)

	return ws.record([]string{
		ws.member("drawable", x.fmtXID(drawable, nil)),
		ws.member("gc", x.fmtXID(gc, nil)),
		ws.member("x", decI(int64(xx))),
		ws.member("y", decI(int64(yy))),
		ws.member("string", fmtString16(units)),
	})
}
