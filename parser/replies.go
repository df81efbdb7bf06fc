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
	libses "github.com/nabbar/x11trace/session"
)

// repCtx carries one framed reply through its per-opcode decoder. The raw
// slice aliases the relay buffer, so a rewrite changes the forwarded bytes.
type repCtx struct {
	c    libses.Connection
	seq  uint16
	data uint8
	raw  []byte
	r    *rdr
	err  error
}

// decodeReply dispatches a server reply by the opcode shadowed for its
// 16-bit sequence number, applies the QueryExtension rewrite when
// configured, and emits the rendered record.
func (x *prs) decodeReply(c libses.Connection, raw []byte) error {
	bo := c.ByteOrder()
	seq := bo.Uint16(raw[2:4])

	op, err := c.LookupRequest(seq)
	if err != nil {
		return err
	}

	r := newReader(raw, bo)
	r.Skip(1)
	data := r.U8()
	r.Skip(6) // sequence and reply length already framed

	p := &repCtx{c: c, seq: seq, data: data, raw: raw, r: r}
	ws := x.ws()

	name := libprt.RequestName(op)
	body := x.repBody(p, op, ws)

	if p.err != nil {
		return p.err
	}
	if r.Bad() {
		return ErrorMalformedTruncated.Error(nil)
	}
	if r.Reserved() {
		return ErrorMalformedReserved.Error(nil)
	}

	if x.opt().Verbose {
		body = "sequence=" + dec(uint64(seq)) +
			" length=" + dec(uint64(len(raw))) + " " + body
	}

	return x.emit('S', c, fmtSeq(seq), x.paint(x.cRep, "Reply("+name+")"), body)
}

func (x *prs) repBody(p *repCtx, op uint8, ws whitespace) string {
	switch op {
	case libprt.OpGetWindowAttrs:
		return x.repGetWindowAttributes(p, ws)
	case libprt.OpGetGeometry:
		return x.repGetGeometry(p, ws)
	case libprt.OpQueryTree:
		return x.repQueryTree(p, ws)
	case libprt.OpInternAtom:
		return x.repInternAtom(p, ws)
	case libprt.OpGetAtomName:
		return x.repGetAtomName(p, ws)
	case libprt.OpGetProperty:
		return x.repGetProperty(p, ws)
	case libprt.OpListProperties:
		return x.repListProperties(p, ws)
	case libprt.OpGetSelectionOwner:
		return ws.record([]string{
			ws.member("owner", x.fmtXID(p.r.U32(), libprt.ZeroNoneNames)),
		})
	case libprt.OpGrabPointer, libprt.OpGrabKeyboard:
		return ws.record([]string{
			ws.member("status", x.fmtEnum(uint64(p.data), 1, libprt.GrabStatusNames)),
		})
	case libprt.OpQueryPointer:
		return x.repQueryPointer(p, ws)
	case libprt.OpGetMotionEvents:
		return x.repGetMotionEvents(p, ws)
	case libprt.OpTranslateCoords:
		return ws.record([]string{
			ws.member("same-screen", x.fmtBool(p.data)),
			ws.member("child", x.fmtXID(p.r.U32(), libprt.ZeroNoneNames)),
			ws.member("dst-x", decI(int64(p.r.I16()))),
			ws.member("dst-y", decI(int64(p.r.I16()))),
		})
	case libprt.OpGetInputFocus:
		return ws.record([]string{
			ws.member("revert-to", x.fmtEnum(uint64(p.data), 1, libprt.InputFocusNames)),
			ws.member("focus", x.fmtXID(p.r.U32(), libprt.InputFocusNames)),
		})
	case libprt.OpQueryKeymap:
		return ws.record([]string{
			ws.member("keys", fmtBitVector(p.r.Bytes(32))),
		})
	case libprt.OpQueryFont:
		return x.repQueryFont(p, ws)
	case libprt.OpQueryTextExtents:
		return x.repQueryTextExtents(p, ws)
	case libprt.OpListFonts:
		return x.repListFonts(p, ws)
	case libprt.OpListFontsWithInfo:
		return x.repListFontsWithInfo(p, ws)
	case libprt.OpGetFontPath:
		return x.repListFonts(p, ws)
	case libprt.OpGetImage:
		return x.repGetImage(p, ws)
	case libprt.OpListInstalledColormap:
		return x.repListInstalledColormaps(p, ws)
	case libprt.OpAllocColor:
		return x.repAllocColor(p, ws)
	case libprt.OpAllocNamedColor:
		return x.repAllocNamedColor(p, ws)
	case libprt.OpAllocColorCells:
		return x.repAllocColorCells(p, ws)
	case libprt.OpAllocColorPlanes:
		return x.repAllocColorPlanes(p, ws)
	case libprt.OpQueryColors:
		return x.repQueryColors(p, ws)
	case libprt.OpLookupColor:
		return x.repLookupColor(p, ws)
	case libprt.OpQueryBestSize:
		return ws.record([]string{
			ws.member("width", dec(uint64(p.r.U16()))),
			ws.member("height", dec(uint64(p.r.U16()))),
		})
	case libprt.OpQueryExtension:
		return x.repQueryExtension(p, ws)
	case libprt.OpListExtensions:
		return x.repListExtensions(p, ws)
	case libprt.OpGetKeyboardMapping:
		return x.repGetKeyboardMapping(p, ws)
	case libprt.OpGetKeyboardControl:
		return x.repGetKeyboardControl(p, ws)
	case libprt.OpGetPointerControl:
		return ws.record([]string{
			ws.member("acceleration-numerator", dec(uint64(p.r.U16()))),
			ws.member("acceleration-denominator", dec(uint64(p.r.U16()))),
			ws.member("threshold", dec(uint64(p.r.U16()))),
		})
	case libprt.OpGetScreenSaver:
		return ws.record([]string{
			ws.member("timeout", dec(uint64(p.r.U16()))),
			ws.member("interval", dec(uint64(p.r.U16()))),
			ws.member("prefer-blanking", x.fmtEnum(uint64(p.r.U8()), 1, libprt.ScreenSaverNames)),
			ws.member("allow-exposures", x.fmtEnum(uint64(p.r.U8()), 1, libprt.ScreenSaverNames)),
		})
	case libprt.OpListHosts:
		return x.repListHosts(p, ws)
	case libprt.OpSetPointerMapping, libprt.OpSetModifierMapping:
		return ws.record([]string{
			ws.member("status", x.fmtEnum(uint64(p.data), 1, libprt.MappingStatusNames)),
		})
	case libprt.OpGetPointerMapping:
		return x.repGetPointerMapping(p, ws)
	case libprt.OpGetModifierMapping:
		return x.repGetModifierMapping(p, ws)
	default:
		p.r.Skip(p.r.Remaining())
		return ws.record(nil)
	}
}

func (x *prs) repGetWindowAttributes(p *repCtx, ws whitespace) string {
	visual := p.r.U32()
	class := p.r.U16()
	bitGrav := p.r.U8()
	winGrav := p.r.U8()
	planes := p.r.U32()
	pixel := p.r.U32()
	saveUnder := p.r.U8()
	mapInstalled := p.r.U8()
	mapState := p.r.U8()
	override := p.r.U8()
	cmap := p.r.U32()
	allMasks := p.r.ZeroCheck32(p.r.U32(), libprt.ZeroBitsSetOfEvent)
	yourMask := p.r.ZeroCheck32(p.r.U32(), libprt.ZeroBitsSetOfEvent)
	noPropagate := p.r.U16()
	p.r.Skip(2)

	return ws.record([]string{
		ws.member("backing-store", x.fmtEnum(uint64(p.data), 1, libprt.BackingStoreNames)),
		ws.member("visual", x.fmtXID(visual, nil)),
		ws.member("class", x.fmtEnum(uint64(class), 2, libprt.WindowClassNames)),
		ws.member("bit-gravity", x.fmtEnum(uint64(bitGrav), 1, libprt.BitGravityNames)),
		ws.member("win-gravity", x.fmtEnum(uint64(winGrav), 1, libprt.WinGravityNames)),
		ws.member("backing-planes", hexPad(uint64(planes), 4)),
		ws.member("backing-pixel", hexPad(uint64(pixel), 4)),
		ws.member("save-under", x.fmtBool(saveUnder)),
		ws.member("map-is-installed", x.fmtBool(mapInstalled)),
		ws.member("map-state", x.fmtEnum(uint64(mapState), 1, libprt.MapStateNames)),
		ws.member("override-redirect", x.fmtBool(override)),
		ws.member("colormap", x.fmtXID(cmap, libprt.ZeroNoneNames)),
		ws.member("all-event-masks", x.fmtMask(uint64(allMasks), 4, libprt.SetOfEventFlagNames)),
		ws.member("your-event-mask", x.fmtMask(uint64(yourMask), 4, libprt.SetOfEventFlagNames)),
		ws.member("do-not-propagate-mask", x.fmtMask(uint64(noPropagate), 2, libprt.SetOfEventFlagNames)),
	})
}

func (x *prs) repGetGeometry(p *repCtx, ws whitespace) string {
	root := p.r.U32()
	xx := p.r.I16()
	yy := p.r.I16()
	width := p.r.U16()
	height := p.r.U16()
	border := p.r.U16()
	p.r.Skip(10)

	return ws.record([]string{
		ws.member("depth", dec(uint64(p.data))),
		ws.member("root", x.fmtXID(root, nil)),
		ws.member("x", decI(int64(xx))),
		ws.member("y", decI(int64(yy))),
		ws.member("width", dec(uint64(width))),
		ws.member("height", dec(uint64(height))),
		ws.member("border-width", dec(uint64(border))),
	})
}

func (x *prs) repQueryTree(p *repCtx, ws whitespace) string {
	root := p.r.U32()
	parent := p.r.U32()
	n := int(p.r.U16())
	p.r.Skip(14)

	children := fmtList(n, ws, func(int) string {
		return x.fmtXID(p.r.U32(), nil)
	})

	return ws.record([]string{
		ws.member("root", x.fmtXID(root, nil)),
		ws.member("parent", x.fmtXID(parent, libprt.ZeroNoneNames)),
		ws.member("children", children),
	})
}

// repInternAtom binds the stashed request name to the returned atom id.
func (x *prs) repInternAtom(p *repCtx, ws whitespace) string {
	atom := p.r.AtomCheck(p.r.U32())

	if !p.r.Bad() {
		if err := p.c.ResolveAtom(p.seq, atom); err != nil {
			p.err = err
		}
	}

	return ws.record([]string{
		ws.member("atom", x.fmtAtomEnum(p.c, atom, libprt.ZeroNoneNames)),
	})
}

func (x *prs) repGetAtomName(p *repCtx, ws whitespace) string {
	n := int(p.r.U16())
	p.r.Skip(22)
	name := p.r.Str(n)
	p.r.SkipPad(n)

	return ws.record([]string{
		ws.member("name", strconv.Quote(name)),
	})
}

// repGetProperty's value length derives from the format and the unit count.
func (x *prs) repGetProperty(p *repCtx, ws whitespace) string {
	typ := p.r.AtomCheck(p.r.U32())
	after := p.r.U32()
	units := int(p.r.U32())
	p.r.Skip(12)

	n := units * int(p.data) / 8
	value := p.r.Bytes(n)
	p.r.SkipPad(n)

	members := []string{
		ws.member("format", dec(uint64(p.data))),
		ws.member("type", x.fmtAtomEnum(p.c, typ, libprt.ZeroNoneNames)),
		ws.member("bytes-after", dec(uint64(after))),
	}
	if x.opt().Verbose {
		members = append(members, ws.member("length", dec(uint64(units))))
	}
	members = append(members, ws.member("value", x.fmtPropertyValue(p.data, value, p.r.bo)))

	return ws.record(members)
}

func (x *prs) repListProperties(p *repCtx, ws whitespace) string {
	n := int(p.r.U16())
	p.r.Skip(22)

	atoms := fmtList(n, ws, func(int) string {
		return x.fmtAtom(p.c, p.r.AtomCheck(p.r.U32()))
	})

	return ws.record([]string{
		ws.member("atoms", atoms),
	})
}

func (x *prs) repQueryPointer(p *repCtx, ws whitespace) string {
	root := p.r.U32()
	child := p.r.U32()
	rootX := p.r.I16()
	rootY := p.r.I16()
	winX := p.r.I16()
	winY := p.r.I16()
	mask := p.r.ZeroCheck16(p.r.U16(), libprt.ZeroBitsSetOfKeyButMask)
	p.r.Skip(2)

	return ws.record([]string{
		ws.member("same-screen", x.fmtBool(p.data)),
		ws.member("root", x.fmtXID(root, nil)),
		ws.member("child", x.fmtXID(child, libprt.ZeroNoneNames)),
		ws.member("root-x", decI(int64(rootX))),
		ws.member("root-y", decI(int64(rootY))),
		ws.member("win-x", decI(int64(winX))),
		ws.member("win-y", decI(int64(winY))),
		ws.member("mask", x.fmtMask(uint64(mask), 2, libprt.SetOfKeyButMaskFlagNames)),
	})
}

func (x *prs) repGetMotionEvents(p *repCtx, ws whitespace) string {
	n := int(p.r.U32())
	p.r.Skip(20)

	nw := ws.nest()
	events := fmtList(n, ws, func(int) string {
		return x.fmtTimecoord(p.r, nw)
	})

	return ws.record([]string{
		ws.member("events", events),
	})
}

func (x *prs) repQueryFont(p *repCtx, ws whitespace) string {
	nw := ws.nest()

	minBounds := x.fmtCharInfo(p.r, nw)
	p.r.Skip(4)
	maxBounds := x.fmtCharInfo(p.r, nw)
	p.r.Skip(4)
	minChar := p.r.U16()
	maxChar := p.r.U16()
	defChar := p.r.U16()
	nProps := int(p.r.U16())
	direction := p.r.U8()
	minByte1 := p.r.U8()
	maxByte1 := p.r.U8()
	allExist := p.r.U8()
	ascent := p.r.I16()
	descent := p.r.I16()
	nChars := int(p.r.U32())

	props := fmtList(nProps, ws, func(int) string {
		return x.fmtFontProp(p.c, p.r, nw)
	})
	chars := fmtList(nChars, ws, func(int) string {
		return x.fmtCharInfo(p.r, nw)
	})

	return ws.record([]string{
		ws.member("min-bounds", minBounds),
		ws.member("max-bounds", maxBounds),
		ws.member("min-char-or-byte2", dec(uint64(minChar))),
		ws.member("max-char-or-byte2", dec(uint64(maxChar))),
		ws.member("default-char", dec(uint64(defChar))),
		ws.member("draw-direction", x.fmtEnum(uint64(direction), 1, libprt.DrawDirectionNames)),
		ws.member("min-byte1", dec(uint64(minByte1))),
		ws.member("max-byte1", dec(uint64(maxByte1))),
		ws.member("all-chars-exist", x.fmtBool(allExist)),
		ws.member("font-ascent", decI(int64(ascent))),
		ws.member("font-descent", decI(int64(descent))),
		ws.member("properties", props),
		ws.member("char-infos", chars),
	})
}

func (x *prs) repQueryTextExtents(p *repCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("draw-direction", x.fmtEnum(uint64(p.data), 1, libprt.DrawDirectionNames)),
		ws.member("font-ascent", decI(int64(p.r.I16()))),
		ws.member("font-descent", decI(int64(p.r.I16()))),
		ws.member("overall-ascent", decI(int64(p.r.I16()))),
		ws.member("overall-descent", decI(int64(p.r.I16()))),
		ws.member("overall-width", decI(int64(p.r.I32()))),
		ws.member("overall-left", decI(int64(p.r.I32()))),
		ws.member("overall-right", decI(int64(p.r.I32()))),
	})
}

func (x *prs) repListFonts(p *repCtx, ws whitespace) string {
	n := int(p.r.U16())
	p.r.Skip(22)

	nw := ws.nest()
	names := fmtList(n, ws, func(int) string {
		return x.fmtStr(p.r, nw)
	})
	p.r.Skip(p.r.Remaining())

	return ws.record([]string{
		ws.member("names", names),
	})
}

// repListFontsWithInfo renders one reply of the per-font stream; the
// terminal reply carries a zero name length.
func (x *prs) repListFontsWithInfo(p *repCtx, ws whitespace) string {
	n := int(p.data)
	if n == 0 {
		p.r.Skip(p.r.Remaining())
		return ws.record([]string{
			ws.member("last-reply", "True"),
		})
	}

	nw := ws.nest()
	minBounds := x.fmtCharInfo(p.r, nw)
	p.r.Skip(4)
	maxBounds := x.fmtCharInfo(p.r, nw)
	p.r.Skip(4)
	minChar := p.r.U16()
	maxChar := p.r.U16()
	defChar := p.r.U16()
	nProps := int(p.r.U16())
	direction := p.r.U8()
	minByte1 := p.r.U8()
	maxByte1 := p.r.U8()
	allExist := p.r.U8()
	ascent := p.r.I16()
	descent := p.r.I16()
	hint := p.r.U32()

	props := fmtList(nProps, ws, func(int) string {
		return x.fmtFontProp(p.c, p.r, nw)
	})
	name := p.r.Str(n)
	p.r.SkipPad(n)

	return ws.record([]string{
		ws.member("name", strconv.Quote(name)),
		ws.member("min-bounds", minBounds),
		ws.member("max-bounds", maxBounds),
		ws.member("min-char-or-byte2", dec(uint64(minChar))),
		ws.member("max-char-or-byte2", dec(uint64(maxChar))),
		ws.member("default-char", dec(uint64(defChar))),
		ws.member("draw-direction", x.fmtEnum(uint64(direction), 1, libprt.DrawDirectionNames)),
		ws.member("min-byte1", dec(uint64(minByte1))),
		ws.member("max-byte1", dec(uint64(maxByte1))),
		ws.member("all-chars-exist", x.fmtBool(allExist)),
		ws.member("font-ascent", decI(int64(ascent))),
		ws.member("font-descent", decI(int64(descent))),
		ws.member("replies-hint", dec(uint64(hint))),
		ws.member("properties", props),
	})
}

func (x *prs) repGetImage(p *repCtx, ws whitespace) string {
	visual := p.r.U32()
	p.r.Skip(20)
	data := p.r.Bytes(p.r.Remaining())

	return ws.record([]string{
		ws.member("depth", dec(uint64(p.data))),
		ws.member("visual", x.fmtXID(visual, libprt.ZeroNoneNames)),
		ws.member("data", x.fmtBytes(data)),
	})
}

func (x *prs) repListInstalledColormaps(p *repCtx, ws whitespace) string {
	n := int(p.r.U16())
	p.r.Skip(22)

	cmaps := fmtList(n, ws, func(int) string {
		return x.fmtXID(p.r.U32(), nil)
	})

	return ws.record([]string{
		ws.member("cmaps", cmaps),
	})
}

func (x *prs) repAllocColor(p *repCtx, ws whitespace) string {
	red := p.r.U16()
	green := p.r.U16()
	blue := p.r.U16()
	p.r.Skip(2)
	pixel := p.r.U32()

	return ws.record([]string{
		ws.member("red", dec(uint64(red))),
		ws.member("green", dec(uint64(green))),
		ws.member("blue", dec(uint64(blue))),
		ws.member("pixel", hexPad(uint64(pixel), 4)),
	})
}

func (x *prs) repAllocNamedColor(p *repCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("pixel", hexPad(uint64(p.r.U32()), 4)),
		ws.member("exact-red", dec(uint64(p.r.U16()))),
		ws.member("exact-green", dec(uint64(p.r.U16()))),
		ws.member("exact-blue", dec(uint64(p.r.U16()))),
		ws.member("visual-red", dec(uint64(p.r.U16()))),
		ws.member("visual-green", dec(uint64(p.r.U16()))),
		ws.member("visual-blue", dec(uint64(p.r.U16()))),
	})
}

func (x *prs) repAllocColorCells(p *repCtx, ws whitespace) string {
	n := int(p.r.U16())
	m := int(p.r.U16())
	p.r.Skip(20)

	pixels := fmtList(n, ws, func(int) string {
		return hexPad(uint64(p.r.U32()), 4)
	})
	masks := fmtList(m, ws, func(int) string {
		return hexPad(uint64(p.r.U32()), 4)
	})

	return ws.record([]string{
		ws.member("pixels", pixels),
		ws.member("masks", masks),
	})
}

func (x *prs) repAllocColorPlanes(p *repCtx, ws whitespace) string {
	n := int(p.r.U16())
	p.r.Skip(2)
	redMask := p.r.U32()
	greenMask := p.r.U32()
	blueMask := p.r.U32()
	p.r.Skip(8)

	pixels := fmtList(n, ws, func(int) string {
		return hexPad(uint64(p.r.U32()), 4)
	})

	return ws.record([]string{
		ws.member("red-mask", hexPad(uint64(redMask), 4)),
		ws.member("green-mask", hexPad(uint64(greenMask), 4)),
		ws.member("blue-mask", hexPad(uint64(blueMask), 4)),
		ws.member("pixels", pixels),
	})
}

func (x *prs) repQueryColors(p *repCtx, ws whitespace) string {
	n := int(p.r.U16())
	p.r.Skip(22)

	nw := ws.nest()
	colors := fmtList(n, ws, func(int) string {
		return x.fmtRGB(p.r, nw)
	})

	return ws.record([]string{
		ws.member("colors", colors),
	})
}

func (x *prs) repLookupColor(p *repCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("exact-red", dec(uint64(p.r.U16()))),
		ws.member("exact-green", dec(uint64(p.r.U16()))),
		ws.member("exact-blue", dec(uint64(p.r.U16()))),
		ws.member("visual-red", dec(uint64(p.r.U16()))),
		ws.member("visual-green", dec(uint64(p.r.U16()))),
		ws.member("visual-blue", dec(uint64(p.r.U16()))),
	})
}

// repQueryExtension resolves the stashed extension name. Under
// DenyAllExtensions the present byte of the forwarded reply is overwritten
// with zero; the remaining fields stay intact. A present BIG-REQUESTS reply
// records the extension's major opcode for the framing switch.
func (x *prs) repQueryExtension(p *repCtx, ws whitespace) string {
	present := p.r.U8()
	major := p.r.U8()
	firstEvent := p.r.U8()
	firstError := p.r.U8()

	name, _ := p.c.TakeExtensionName(p.seq)

	if present != 0 && x.opt().DenyAllExtensions {
		// byte 8 of the framed reply, aliasing the relay buffer
		p.raw[8] = 0
		present = 0
	}

	if present != 0 && name == libprt.BigRequestsName {
		p.c.SetBigRequestsOpcode(major)
	}

	members := make([]string, 0, 5)
	if name != "" {
		members = append(members, ws.member("name", strconv.Quote(name)))
	}
	members = append(members,
		ws.member("present", x.fmtCard(uint64(present), 1, libprt.BoolNames)),
		ws.member("major-opcode", dec(uint64(major))),
		ws.member("first-event", dec(uint64(firstEvent))),
		ws.member("first-error", dec(uint64(firstError))),
	)

	return ws.record(members)
}

func (x *prs) repListExtensions(p *repCtx, ws whitespace) string {
	p.r.Skip(24)

	nw := ws.nest()
	names := fmtList(int(p.data), ws, func(int) string {
		return x.fmtStr(p.r, nw)
	})
	p.r.Skip(p.r.Remaining())

	return ws.record([]string{
		ws.member("names", names),
	})
}

func (x *prs) repGetKeyboardMapping(p *repCtx, ws whitespace) string {
	p.r.Skip(24)

	per := int(p.data)
	rows := 0
	if per > 0 {
		rows = p.r.Remaining() / 4 / per
	}

	nw := ws.nest()
	syms := fmtList(rows, ws, func(int) string {
		return fmtList(per, nw.singleLine(), func(int) string {
			return x.fmtKeysym(p.r.U32())
		})
	})

	return ws.record([]string{
		ws.member("keysyms-per-keycode", dec(uint64(per))),
		ws.member("keysyms", syms),
	})
}

func (x *prs) repGetKeyboardControl(p *repCtx, ws whitespace) string {
	leds := p.r.U32()
	click := p.r.U8()
	bell := p.r.U8()
	pitch := p.r.U16()
	duration := p.r.U16()
	p.r.Skip(2)
	repeats := p.r.Bytes(32)

	return ws.record([]string{
		ws.member("global-auto-repeat", x.fmtEnum(uint64(p.data), 1, libprt.OffOnNames)),
		ws.member("led-mask", hexPad(uint64(leds), 4)),
		ws.member("key-click-percent", dec(uint64(click))),
		ws.member("bell-percent", dec(uint64(bell))),
		ws.member("bell-pitch", dec(uint64(pitch))),
		ws.member("bell-duration", dec(uint64(duration))),
		ws.member("auto-repeats", fmtBitVector(repeats)),
	})
}

func (x *prs) repListHosts(p *repCtx, ws whitespace) string {
	n := int(p.r.U16())
	p.r.Skip(22)

	nw := ws.nest()
	hosts := fmtList(n, ws, func(int) string {
		return x.fmtHost(p.r, nw)
	})

	return ws.record([]string{
		ws.member("mode", x.fmtEnum(uint64(p.data), 1, libprt.HostStatusModeNames)),
		ws.member("hosts", hosts),
	})
}

func (x *prs) repGetPointerMapping(p *repCtx, ws whitespace) string {
	n := int(p.data)
	p.r.Skip(24)
	m := p.r.Bytes(n)
	p.r.SkipPad(n)

	return ws.record([]string{
		ws.member("map", x.fmtBytes(m)),
	})
}

func (x *prs) repGetModifierMapping(p *repCtx, ws whitespace) string {
	per := int(p.data)
	p.r.Skip(24)

	rows := fmtList(8, ws, func(int) string {
		return fmtBitVector(p.r.Bytes(per))
	})

	return ws.record([]string{
		ws.member("keycodes-per-modifier", dec(uint64(per))),
		ws.member("keycodes", rows),
	})
}
