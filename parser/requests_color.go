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

// reqBodyColor covers the colormap, cursor, keyboard, pointer and control
// opcodes (78..119).
func (x *prs) reqBodyColor(q *reqCtx, op uint8, ws whitespace) string {
	switch op {
	case libprt.OpCreateColormap:
		return x.reqCreateColormap(q, ws)
	case libprt.OpFreeColormap, libprt.OpInstallColormap, libprt.OpUninstallColormap:
		return x.reqOnlyColormap(q, ws)
	case libprt.OpCopyColormapAndFree:
		return x.reqCopyColormapAndFree(q, ws)
	case libprt.OpAllocColor:
		return x.reqAllocColor(q, ws)
	case libprt.OpAllocNamedColor:
		return x.reqAllocNamedColor(q, ws)
	case libprt.OpAllocColorCells:
		return x.reqAllocColorCells(q, ws)
	case libprt.OpAllocColorPlanes:
		return x.reqAllocColorPlanes(q, ws)
	case libprt.OpFreeColors:
		return x.reqFreeColors(q, ws)
	case libprt.OpStoreColors:
		return x.reqStoreColors(q, ws)
	case libprt.OpStoreNamedColor:
		return x.reqStoreNamedColor(q, ws)
	case libprt.OpQueryColors:
		return x.reqQueryColors(q, ws)
	case libprt.OpLookupColor:
		return x.reqLookupColor(q, ws)
	case libprt.OpCreateCursor:
		return x.reqCreateCursor(q, ws)
	case libprt.OpCreateGlyphCursor:
		return x.reqCreateGlyphCursor(q, ws)
	case libprt.OpFreeCursor:
		return x.reqOnlyCursor(q, ws)
	case libprt.OpRecolorCursor:
		return x.reqRecolorCursor(q, ws)
	case libprt.OpQueryBestSize:
		return x.reqQueryBestSize(q, ws)
	case libprt.OpQueryExtension:
		return x.reqQueryExtension(q, ws)
	case libprt.OpChangeKeyboardMapping:
		return x.reqChangeKeyboardMapping(q, ws)
	case libprt.OpGetKeyboardMapping:
		return x.reqGetKeyboardMapping(q, ws)
	case libprt.OpChangeKeyboardControl:
		return x.reqChangeKeyboardControl(q, ws)
	case libprt.OpBell:
		return x.reqBell(q, ws)
	case libprt.OpChangePointerControl:
		return x.reqChangePointerControl(q, ws)
	case libprt.OpSetScreenSaver:
		return x.reqSetScreenSaver(q, ws)
	case libprt.OpChangeHosts:
		return x.reqChangeHosts(q, ws)
	case libprt.OpSetAccessControl:
		return ws.record([]string{
			ws.member("mode", x.fmtEnum(uint64(q.data), 1, libprt.AccessModeNames)),
		})
	case libprt.OpSetCloseDownMode:
		return ws.record([]string{
			ws.member("mode", x.fmtEnum(uint64(q.data), 1, libprt.CloseDownModeNames)),
		})
	case libprt.OpKillClient:
		return ws.record([]string{
			ws.member("resource", x.fmtXID(q.r.U32(), libprt.ClientResourceNames)),
		})
	case libprt.OpRotateProperties:
		return x.reqRotateProperties(q, ws)
	case libprt.OpForceScreenSaver:
		return ws.record([]string{
			ws.member("mode", x.fmtEnum(uint64(q.data), 1, libprt.ForceScreenSaverModeNames)),
		})
	case libprt.OpSetPointerMapping:
		return x.reqSetPointerMapping(q, ws)
	case libprt.OpSetModifierMapping:
		return x.reqSetModifierMapping(q, ws)
	default:
		q.r.Skip(q.r.Remaining())
		return ws.record(nil)
	}
}

func (x *prs) reqOnlyColormap(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("cmap", x.fmtXID(q.r.U32(), nil)),
	})
}

func (x *prs) reqOnlyCursor(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("cursor", x.fmtXID(q.r.U32(), nil)),
	})
}

func (x *prs) reqCreateColormap(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("alloc", x.fmtEnum(uint64(q.data), 1, libprt.ColormapAllocNames)),
		ws.member("mid", x.fmtXID(q.r.U32(), nil)),
		ws.member("window", x.fmtXID(q.r.U32(), nil)),
		ws.member("visual", x.fmtXID(q.r.U32(), nil)),
	})
}

func (x *prs) reqCopyColormapAndFree(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("mid", x.fmtXID(q.r.U32(), nil)),
		ws.member("src-cmap", x.fmtXID(q.r.U32(), nil)),
	})
}

func (x *prs) reqAllocColor(q *reqCtx, ws whitespace) string {
	cmap := q.r.U32()
	red := q.r.U16()
	green := q.r.U16()
	blue := q.r.U16()
	q.r.Skip(2)

	return ws.record([]string{
		ws.member("cmap", x.fmtXID(cmap, nil)),
		ws.member("red", dec(uint64(red))),
		ws.member("green", dec(uint64(green))),
		ws.member("blue", dec(uint64(blue))),
	})
}

func (x *prs) reqAllocNamedColor(q *reqCtx, ws whitespace) string {
	cmap := q.r.U32()
	n := int(q.r.U16())
	q.r.Skip(2)
	name := q.r.Str(n)
	q.r.SkipPad(n)

	return ws.record([]string{
		ws.member("cmap", x.fmtXID(cmap, nil)),
		ws.member("name", strconv.Quote(name)),
	})
}

func (x *prs) reqAllocColorCells(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("contiguous", x.fmtBool(q.data)),
		ws.member("cmap", x.fmtXID(q.r.U32(), nil)),
		ws.member("colors", dec(uint64(q.r.U16()))),
		ws.member("planes", dec(uint64(q.r.U16()))),
	})
}

func (x *prs) reqAllocColorPlanes(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("contiguous", x.fmtBool(q.data)),
		ws.member("cmap", x.fmtXID(q.r.U32(), nil)),
		ws.member("colors", dec(uint64(q.r.U16()))),
		ws.member("reds", dec(uint64(q.r.U16()))),
		ws.member("greens", dec(uint64(q.r.U16()))),
		ws.member("blues", dec(uint64(q.r.U16()))),
	})
}

func (x *prs) reqFreeColors(q *reqCtx, ws whitespace) string {
	cmap := q.r.U32()
	planeMask := q.r.U32()

	n := q.r.Remaining() / 4
	pixels := fmtList(n, ws, func(int) string {
		return hexPad(uint64(q.r.U32()), 4)
	})

	return ws.record([]string{
		ws.member("cmap", x.fmtXID(cmap, nil)),
		ws.member("plane-mask", hexPad(uint64(planeMask), 4)),
		ws.member("pixels", pixels),
	})
}

func (x *prs) reqStoreColors(q *reqCtx, ws whitespace) string {
	cmap := q.r.U32()

	n := q.r.Remaining() / 12
	nw := ws.nest()
	items := fmtList(n, ws, func(int) string {
		return x.fmtColorItem(q.r, nw)
	})

	return ws.record([]string{
		ws.member("cmap", x.fmtXID(cmap, nil)),
		ws.member("items", items),
	})
}

func (x *prs) reqStoreNamedColor(q *reqCtx, ws whitespace) string {
	cmap := q.r.U32()
	pixel := q.r.U32()
	n := int(q.r.U16())
	q.r.Skip(2)
	name := q.r.Str(n)
	q.r.SkipPad(n)

	return ws.record([]string{
		ws.member("do", x.fmtMask(uint64(q.data), 1, libprt.DoRGBMaskNames)),
		ws.member("cmap", x.fmtXID(cmap, nil)),
		ws.member("pixel", hexPad(uint64(pixel), 4)),
		ws.member("name", strconv.Quote(name)),
	})
}

func (x *prs) reqQueryColors(q *reqCtx, ws whitespace) string {
	cmap := q.r.U32()

	n := q.r.Remaining() / 4
	pixels := fmtList(n, ws, func(int) string {
		return hexPad(uint64(q.r.U32()), 4)
	})

	return ws.record([]string{
		ws.member("cmap", x.fmtXID(cmap, nil)),
		ws.member("pixels", pixels),
	})
}

func (x *prs) reqLookupColor(q *reqCtx, ws whitespace) string {
	cmap := q.r.U32()
	n := int(q.r.U16())
	q.r.Skip(2)
	name := q.r.Str(n)
	q.r.SkipPad(n)

	return ws.record([]string{
		ws.member("cmap", x.fmtXID(cmap, nil)),
		ws.member("name", strconv.Quote(name)),
	})
}

func (x *prs) reqCreateCursor(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("cid", x.fmtXID(q.r.U32(), nil)),
		ws.member("source", x.fmtXID(q.r.U32(), nil)),
		ws.member("mask", x.fmtXID(q.r.U32(), libprt.ZeroNoneNames)),
		ws.member("fore-red", dec(uint64(q.r.U16()))),
		ws.member("fore-green", dec(uint64(q.r.U16()))),
		ws.member("fore-blue", dec(uint64(q.r.U16()))),
		ws.member("back-red", dec(uint64(q.r.U16()))),
		ws.member("back-green", dec(uint64(q.r.U16()))),
		ws.member("back-blue", dec(uint64(q.r.U16()))),
		ws.member("x", dec(uint64(q.r.U16()))),
		ws.member("y", dec(uint64(q.r.U16()))),
	})
}

func (x *prs) reqCreateGlyphCursor(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("cid", x.fmtXID(q.r.U32(), nil)),
		ws.member("source-font", x.fmtXID(q.r.U32(), nil)),
		ws.member("mask-font", x.fmtXID(q.r.U32(), libprt.ZeroNoneNames)),
		ws.member("source-char", dec(uint64(q.r.U16()))),
		ws.member("mask-char", dec(uint64(q.r.U16()))),
		ws.member("fore-red", dec(uint64(q.r.U16()))),
		ws.member("fore-green", dec(uint64(q.r.U16()))),
		ws.member("fore-blue", dec(uint64(q.r.U16()))),
		ws.member("back-red", dec(uint64(q.r.U16()))),
		ws.member("back-green", dec(uint64(q.r.U16()))),
		ws.member("back-blue", dec(uint64(q.r.U16()))),
	})
}

func (x *prs) reqRecolorCursor(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("cursor", x.fmtXID(q.r.U32(), nil)),
		ws.member("fore-red", dec(uint64(q.r.U16()))),
		ws.member("fore-green", dec(uint64(q.r.U16()))),
		ws.member("fore-blue", dec(uint64(q.r.U16()))),
		ws.member("back-red", dec(uint64(q.r.U16()))),
		ws.member("back-green", dec(uint64(q.r.U16()))),
		ws.member("back-blue", dec(uint64(q.r.U16()))),
	})
}

func (x *prs) reqQueryBestSize(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("class", x.fmtEnum(uint64(q.data), 1, libprt.SizeClassNames)),
		ws.member("drawable", x.fmtXID(q.r.U32(), nil)),
		ws.member("width", dec(uint64(q.r.U16()))),
		ws.member("height", dec(uint64(q.r.U16()))),
	})
}

// reqQueryExtension stashes the queried name so the reply can be bound to it
// for BIG-REQUESTS detection and extension denial.
func (x *prs) reqQueryExtension(q *reqCtx, ws whitespace) string {
	n := int(q.r.U16())
	q.r.Skip(2)
	name := q.r.Str(n)
	q.r.SkipPad(n)

	if !q.r.Bad() {
		q.c.StashExtensionName(q.seq, name)
	}

	members := make([]string, 0, 2)
	if x.opt().Verbose {
		members = append(members, ws.member("n", dec(uint64(n))))
	}
	members = append(members, ws.member("name", strconv.Quote(name)))

	return ws.record(members)
}

func (x *prs) reqChangeKeyboardMapping(q *reqCtx, ws whitespace) string {
	first := q.r.U8()
	perKc := int(q.r.U8())
	q.r.Skip(2)

	n := int(q.data)
	nw := ws.nest()
	rows := fmtList(n, ws, func(int) string {
		return fmtList(perKc, nw.singleLine(), func(int) string {
			return x.fmtKeysym(q.r.U32())
		})
	})

	return ws.record([]string{
		ws.member("keycode-count", dec(uint64(n))),
		ws.member("first-keycode", dec(uint64(first))),
		ws.member("keysyms-per-keycode", dec(uint64(perKc))),
		ws.member("keysyms", rows),
	})
}

func (x *prs) reqGetKeyboardMapping(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("first-keycode", dec(uint64(q.r.U8()))),
		ws.member("count", dec(uint64(q.r.U8()))),
	})
}

func (x *prs) reqChangeKeyboardControl(q *reqCtx, ws whitespace) string {
	mask := q.r.U32()

	return ws.record([]string{
		ws.member("value-mask", x.fmtMask(uint64(mask), 4, libprt.KeyboardControlMaskNames)),
		ws.member("value-list", x.fmtValueList(q.c, q.r, ws.nest(), uint64(mask), keyboardControlBinds)),
	})
}

func (x *prs) reqBell(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("percent", decI(int64(int8(q.data)))),
	})
}

func (x *prs) reqChangePointerControl(q *reqCtx, ws whitespace) string {
	num := q.r.I16()
	den := q.r.I16()
	thr := q.r.I16()
	doAcc := q.r.U8()
	doThr := q.r.U8()

	return ws.record([]string{
		ws.member("acceleration-numerator", decI(int64(num))),
		ws.member("acceleration-denominator", decI(int64(den))),
		ws.member("threshold", decI(int64(thr))),
		ws.member("do-acceleration", x.fmtBool(doAcc)),
		ws.member("do-threshold", x.fmtBool(doThr)),
	})
}

func (x *prs) reqSetScreenSaver(q *reqCtx, ws whitespace) string {
	timeout := q.r.I16()
	interval := q.r.I16()
	blank := q.r.U8()
	expose := q.r.U8()
	q.r.Skip(2)

	return ws.record([]string{
		ws.member("timeout", decI(int64(timeout))),
		ws.member("interval", decI(int64(interval))),
		ws.member("prefer-blanking", x.fmtEnum(uint64(blank), 1, libprt.ScreenSaverNames)),
		ws.member("allow-exposures", x.fmtEnum(uint64(expose), 1, libprt.ScreenSaverNames)),
	})
}

func (x *prs) reqChangeHosts(q *reqCtx, ws whitespace) string {
	family := q.r.U8()
	q.r.Skip(1)
	n := int(q.r.U16())
	adr := q.r.Bytes(n)
	q.r.SkipPad(n)

	return ws.record([]string{
		ws.member("mode", x.fmtEnum(uint64(q.data), 1, libprt.HostChangeModeNames)),
		ws.member("family", x.fmtEnum(uint64(family), 1, libprt.HostFamilyNames)),
		ws.member("address", x.fmtAddress(family, adr)),
	})
}

func (x *prs) reqRotateProperties(q *reqCtx, ws whitespace) string {
	window := q.r.U32()
	n := int(q.r.U16())
	delta := q.r.I16()

	props := fmtList(n, ws, func(int) string {
		return x.fmtAtom(q.c, q.r.AtomCheck(q.r.U32()))
	})

	return ws.record([]string{
		ws.member("window", x.fmtXID(window, nil)),
		ws.member("delta", decI(int64(delta))),
		ws.member("properties", props),
	})
}

func (x *prs) reqSetPointerMapping(q *reqCtx, ws whitespace) string {
	n := int(q.data)
	m := q.r.Bytes(n)
	q.r.SkipPad(n)

	return ws.record([]string{
		ws.member("map", x.fmtBytes(m)),
	})
}

func (x *prs) reqSetModifierMapping(q *reqCtx, ws whitespace) string {
	per := int(q.data)

	rows := fmtList(8, ws, func(int) string {
		return fmtBitVector(q.r.Bytes(per))
	})

	return ws.record([]string{
		ws.member("keycodes-per-modifier", dec(uint64(per))),
		ws.member("keycodes", rows),
	})
}
