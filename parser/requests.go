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
	"strings"

	libprt "github.com/nabbar/x11trace/protocol"
	libses "github.com/nabbar/x11trace/session"
)

// reqCtx carries one framed request through its per-opcode decoder: the
// session, the assigned sequence number, the header data byte, the total
// wire size and the body cursor.
type reqCtx struct {
	c     libses.Connection
	seq   uint16
	data  uint8
	total int
	r     *rdr
}

// decodeRequest renders one framed request body. The request has already
// been registered against the sequence shadow; structural violations fail
// soft by returning an error that ends the session.
func (x *prs) decodeRequest(c libses.Connection, seq uint16, op, data uint8, total int, r *rdr) (string, string, error) {
	q := &reqCtx{c: c, seq: seq, data: data, total: total, r: r}
	ws := x.ws()

	var (
		name string
		body string
	)

	if op >= libprt.OpExtensionBase {
		name, body = x.reqExtension(q, op, ws)
	} else {
		name = libprt.RequestName(op)
		body = x.reqBody(q, op, ws)
	}

	if r.Bad() {
		return name, body, ErrorMalformedTruncated.Error(nil)
	}
	if r.Reserved() {
		return name, body, ErrorMalformedReserved.Error(nil)
	}

	if x.opt().Verbose {
		body = "opcode=" + dec(uint64(op)) + " length=" + dec(uint64(total)) + " " + body
	}

	return name, body, nil
}

// reqExtension renders an extension request opaquely, and watches for the
// BigReqEnable call that switches the connection's framing.
func (x *prs) reqExtension(q *reqCtx, op uint8, ws whitespace) (string, string) {
	if bro := q.c.BigRequestsOpcode(); bro != 0 && op == bro {
		q.c.ActivateBigRequests()
	}

	body := ws.record([]string{
		ws.member("major-opcode", dec(uint64(op))),
		ws.member("minor-opcode", dec(uint64(q.data))),
		ws.member("data", x.fmtBytes(q.r.Bytes(q.r.Remaining()))),
	})

	return libprt.RequestName(op), body
}

func (x *prs) reqBody(q *reqCtx, op uint8, ws whitespace) string {
	switch op {
	case libprt.OpCreateWindow:
		return x.reqCreateWindow(q, ws)
	case libprt.OpChangeWindowAttrs:
		return x.reqChangeWindowAttributes(q, ws)
	case libprt.OpGetWindowAttrs, libprt.OpDestroyWindow, libprt.OpDestroySubwindows,
		libprt.OpMapWindow, libprt.OpMapSubwindows, libprt.OpUnmapWindow,
		libprt.OpUnmapSubwindows, libprt.OpQueryTree, libprt.OpListProperties,
		libprt.OpQueryPointer, libprt.OpListInstalledColormap:
		return x.reqOnlyWindow(q, ws)
	case libprt.OpChangeSaveSet:
		return x.reqChangeSaveSet(q, ws)
	case libprt.OpReparentWindow:
		return x.reqReparentWindow(q, ws)
	case libprt.OpConfigureWindow:
		return x.reqConfigureWindow(q, ws)
	case libprt.OpCirculateWindow:
		return x.reqCirculateWindow(q, ws)
	case libprt.OpGetGeometry:
		return x.reqOnlyDrawable(q, ws)
	case libprt.OpInternAtom:
		return x.reqInternAtom(q, ws)
	case libprt.OpGetAtomName:
		return x.reqGetAtomName(q, ws)
	case libprt.OpChangeProperty:
		return x.reqChangeProperty(q, ws)
	case libprt.OpDeleteProperty:
		return x.reqDeleteProperty(q, ws)
	case libprt.OpGetProperty:
		return x.reqGetProperty(q, ws)
	case libprt.OpSetSelectionOwner:
		return x.reqSetSelectionOwner(q, ws)
	case libprt.OpGetSelectionOwner:
		return x.reqGetSelectionOwner(q, ws)
	case libprt.OpConvertSelection:
		return x.reqConvertSelection(q, ws)
	case libprt.OpSendEvent:
		return x.reqSendEvent(q, ws)
	case libprt.OpGrabPointer:
		return x.reqGrabPointer(q, ws)
	case libprt.OpUngrabPointer, libprt.OpUngrabKeyboard, libprt.OpAllowEvents:
		return x.reqOnlyTime(q, op, ws)
	case libprt.OpGrabButton:
		return x.reqGrabButton(q, ws)
	case libprt.OpUngrabButton:
		return x.reqUngrabButton(q, ws)
	case libprt.OpChangeActivePtrGrab:
		return x.reqChangeActivePointerGrab(q, ws)
	case libprt.OpGrabKeyboard:
		return x.reqGrabKeyboard(q, ws)
	case libprt.OpGrabKey:
		return x.reqGrabKey(q, ws)
	case libprt.OpUngrabKey:
		return x.reqUngrabKey(q, ws)
	case libprt.OpGrabServer, libprt.OpUngrabServer, libprt.OpGetInputFocus,
		libprt.OpQueryKeymap, libprt.OpGetFontPath, libprt.OpListExtensions,
		libprt.OpGetKeyboardControl, libprt.OpGetPointerControl,
		libprt.OpGetScreenSaver, libprt.OpListHosts, libprt.OpGetPointerMapping,
		libprt.OpGetModifierMapping:
		return ws.record(nil)
	case libprt.OpGetMotionEvents:
		return x.reqGetMotionEvents(q, ws)
	case libprt.OpTranslateCoords:
		return x.reqTranslateCoordinates(q, ws)
	case libprt.OpWarpPointer:
		return x.reqWarpPointer(q, ws)
	case libprt.OpSetInputFocus:
		return x.reqSetInputFocus(q, ws)
	case libprt.OpNoOperation:
		return x.reqNoOperation(q, ws)
	default:
		return x.reqBodyFonts(q, op, ws)
	}
}

func (x *prs) reqOnlyWindow(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("window", x.fmtXID(q.r.U32(), nil)),
	})
}

func (x *prs) reqOnlyDrawable(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("drawable", x.fmtXID(q.r.U32(), nil)),
	})
}

func (x *prs) reqOnlyTime(q *reqCtx, op uint8, ws whitespace) string {
	members := make([]string, 0, 2)

	if op == libprt.OpAllowEvents {
		members = append(members,
			ws.member("mode", x.fmtEnum(uint64(q.data), 1, libprt.AllowEventsModeNames)))
	}

	members = append(members, ws.member("time", x.fmtTimestamp(q.r.U32())))

	return ws.record(members)
}

func (x *prs) reqCreateWindow(q *reqCtx, ws whitespace) string {
	wid := q.r.U32()
	parent := q.r.U32()
	xx := q.r.I16()
	yy := q.r.I16()
	width := q.r.U16()
	height := q.r.U16()
	border := q.r.U16()
	class := q.r.U16()
	visual := q.r.U32()
	mask := q.r.U32()

	return ws.record([]string{
		ws.member("depth", dec(uint64(q.data))),
		ws.member("wid", x.fmtXID(wid, nil)),
		ws.member("parent", x.fmtXID(parent, nil)),
		ws.member("x", decI(int64(xx))),
		ws.member("y", decI(int64(yy))),
		ws.member("width", dec(uint64(width))),
		ws.member("height", dec(uint64(height))),
		ws.member("border-width", dec(uint64(border))),
		ws.member("class", x.fmtEnum(uint64(class), 2, libprt.WindowClassNames)),
		ws.member("visual", x.fmtXID(visual, libprt.ZeroCopyFromParentNames)),
		ws.member("value-mask", x.fmtMask(uint64(mask), 4, libprt.WindowAttributeMaskNames)),
		ws.member("value-list", x.fmtValueList(q.c, q.r, ws.nest(), uint64(mask), windowAttributeBinds)),
	})
}

func (x *prs) reqChangeWindowAttributes(q *reqCtx, ws whitespace) string {
	window := q.r.U32()
	mask := q.r.U32()

	return ws.record([]string{
		ws.member("window", x.fmtXID(window, nil)),
		ws.member("value-mask", x.fmtMask(uint64(mask), 4, libprt.WindowAttributeMaskNames)),
		ws.member("value-list", x.fmtValueList(q.c, q.r, ws.nest(), uint64(mask), windowAttributeBinds)),
	})
}

func (x *prs) reqChangeSaveSet(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("mode", x.fmtEnum(uint64(q.data), 1, libprt.SaveSetModeNames)),
		ws.member("window", x.fmtXID(q.r.U32(), nil)),
	})
}

func (x *prs) reqReparentWindow(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("window", x.fmtXID(q.r.U32(), nil)),
		ws.member("parent", x.fmtXID(q.r.U32(), nil)),
		ws.member("x", decI(int64(q.r.I16()))),
		ws.member("y", decI(int64(q.r.I16()))),
	})
}

func (x *prs) reqConfigureWindow(q *reqCtx, ws whitespace) string {
	window := q.r.U32()
	mask := q.r.U16()
	q.r.Skip(2)

	return ws.record([]string{
		ws.member("window", x.fmtXID(window, nil)),
		ws.member("value-mask", x.fmtMask(uint64(mask), 2, libprt.WindowValueMaskNames)),
		ws.member("value-list", x.fmtValueList(q.c, q.r, ws.nest(), uint64(mask), configureWindowBinds)),
	})
}

func (x *prs) reqCirculateWindow(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("direction", x.fmtEnum(uint64(q.data), 1, libprt.CirculateDirectionNames)),
		ws.member("window", x.fmtXID(q.r.U32(), nil)),
	})
}

// reqInternAtom stashes the requested name so that the matching reply can
// populate the interned-atom table.
func (x *prs) reqInternAtom(q *reqCtx, ws whitespace) string {
	n := int(q.r.U16())
	q.r.Skip(2)
	name := q.r.Str(n)
	q.r.SkipPad(n)

	if !q.r.Bad() {
		q.c.StashAtomName(q.seq, name)
	}

	members := []string{
		ws.member("only-if-exists", x.fmtBool(q.data)),
	}
	if x.opt().Verbose {
		members = append(members, ws.member("n", dec(uint64(n))))
	}
	members = append(members, ws.member("name", strconv.Quote(name)))

	return ws.record(members)
}

func (x *prs) reqGetAtomName(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("atom", x.fmtAtom(q.c, q.r.AtomCheck(q.r.U32()))),
	})
}

// reqChangeProperty's data tail is counted in format units, not bytes.
func (x *prs) reqChangeProperty(q *reqCtx, ws whitespace) string {
	window := q.r.U32()
	property := q.r.AtomCheck(q.r.U32())
	typ := q.r.AtomCheck(q.r.U32())
	format := q.r.U8()
	q.r.Skip(3)
	units := int(q.r.U32())

	n := units * int(format) / 8
	data := q.r.Bytes(n)
	q.r.SkipPad(n)

	members := []string{
		ws.member("mode", x.fmtEnum(uint64(q.data), 1, libprt.ChangePropertyModeNames)),
		ws.member("window", x.fmtXID(window, nil)),
		ws.member("property", x.fmtAtom(q.c, property)),
		ws.member("type", x.fmtAtom(q.c, typ)),
		ws.member("format", dec(uint64(format))),
	}
	if x.opt().Verbose {
		members = append(members, ws.member("length", dec(uint64(units))))
	}
	members = append(members, ws.member("data", x.fmtPropertyValue(format, data, q.r.bo)))

	return ws.record(members)
}

// fmtPropertyValue renders a property data tail per its format: 8-bit data
// as a quoted string, wider formats as element lists.
func (x *prs) fmtPropertyValue(format uint8, data []byte, bo binary.ByteOrder) string {
	switch format {
	case 8:
		return strconv.Quote(string(data))
	case 16:
		out := make([]string, 0, len(data)/2)
		for i := 0; i+1 < len(data); i += 2 {
			out = append(out, dec(uint64(bo.Uint16(data[i:]))))
		}
		return "[ " + strings.Join(out, ", ") + " ]"
	case 32:
		out := make([]string, 0, len(data)/4)
		for i := 0; i+3 < len(data); i += 4 {
			out = append(out, hexPad(uint64(bo.Uint32(data[i:])), 4))
		}
		return "[ " + strings.Join(out, ", ") + " ]"
	default:
		return x.fmtBytes(data)
	}
}

func (x *prs) reqDeleteProperty(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("window", x.fmtXID(q.r.U32(), nil)),
		ws.member("property", x.fmtAtom(q.c, q.r.AtomCheck(q.r.U32()))),
	})
}

func (x *prs) reqGetProperty(q *reqCtx, ws whitespace) string {
	window := q.r.U32()
	property := q.r.AtomCheck(q.r.U32())
	typ := q.r.AtomCheck(q.r.U32())
	offset := q.r.U32()
	length := q.r.U32()

	return ws.record([]string{
		ws.member("delete", x.fmtBool(q.data)),
		ws.member("window", x.fmtXID(window, nil)),
		ws.member("property", x.fmtAtom(q.c, property)),
		ws.member("type", x.fmtAtomEnum(q.c, typ, libprt.PropertyTypeNames)),
		ws.member("long-offset", dec(uint64(offset))),
		ws.member("long-length", dec(uint64(length))),
	})
}

func (x *prs) reqSetSelectionOwner(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("owner", x.fmtXID(q.r.U32(), libprt.ZeroNoneNames)),
		ws.member("selection", x.fmtAtom(q.c, q.r.AtomCheck(q.r.U32()))),
		ws.member("time", x.fmtTimestamp(q.r.U32())),
	})
}

func (x *prs) reqGetSelectionOwner(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("selection", x.fmtAtom(q.c, q.r.AtomCheck(q.r.U32()))),
	})
}

func (x *prs) reqConvertSelection(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("requestor", x.fmtXID(q.r.U32(), nil)),
		ws.member("selection", x.fmtAtom(q.c, q.r.AtomCheck(q.r.U32()))),
		ws.member("target", x.fmtAtom(q.c, q.r.AtomCheck(q.r.U32()))),
		ws.member("property", x.fmtAtomEnum(q.c, q.r.AtomCheck(q.r.U32()), libprt.ZeroNoneNames)),
		ws.member("time", x.fmtTimestamp(q.r.U32())),
	})
}

// reqSendEvent renders the embedded 32-byte event recursively.
func (x *prs) reqSendEvent(q *reqCtx, ws whitespace) string {
	destination := q.r.U32()
	mask := q.r.ZeroCheck32(q.r.U32(), libprt.ZeroBitsSetOfEvent)
	raw := q.r.Bytes(32)

	embedded := "<truncated event>"
	if raw != nil {
		name, body := x.eventRecord(q.c, raw, ws.nest())
		embedded = name + body
	}

	return ws.record([]string{
		ws.member("propagate", x.fmtBool(q.data)),
		ws.member("destination", x.fmtXID(destination, libprt.EventDestinationNames)),
		ws.member("event-mask", x.fmtMask(uint64(mask), 4, libprt.SetOfEventFlagNames)),
		ws.member("event", embedded),
	})
}

func (x *prs) reqGrabPointer(q *reqCtx, ws whitespace) string {
	window := q.r.U32()
	mask := q.r.ZeroCheck16(q.r.U16(), uint16(libprt.ZeroBitsSetOfPointerEvent&0xFFFF))
	pMode := q.r.U8()
	kMode := q.r.U8()
	confine := q.r.U32()
	cursor := q.r.U32()
	t := q.r.U32()

	return ws.record([]string{
		ws.member("owner-events", x.fmtBool(q.data)),
		ws.member("grab-window", x.fmtXID(window, nil)),
		ws.member("event-mask", x.fmtMask(uint64(mask), 2, libprt.SetOfEventFlagNames)),
		ws.member("pointer-mode", x.fmtEnum(uint64(pMode), 1, libprt.InputModeNames)),
		ws.member("keyboard-mode", x.fmtEnum(uint64(kMode), 1, libprt.InputModeNames)),
		ws.member("confine-to", x.fmtXID(confine, libprt.ZeroNoneNames)),
		ws.member("cursor", x.fmtXID(cursor, libprt.ZeroNoneNames)),
		ws.member("time", x.fmtTimestamp(t)),
	})
}

func (x *prs) reqGrabButton(q *reqCtx, ws whitespace) string {
	window := q.r.U32()
	mask := q.r.ZeroCheck16(q.r.U16(), uint16(libprt.ZeroBitsSetOfPointerEvent&0xFFFF))
	pMode := q.r.U8()
	kMode := q.r.U8()
	confine := q.r.U32()
	cursor := q.r.U32()
	button := q.r.U8()
	q.r.Skip(1)
	modifiers := q.r.KeyMaskCheck(q.r.U16())

	return ws.record([]string{
		ws.member("owner-events", x.fmtBool(q.data)),
		ws.member("grab-window", x.fmtXID(window, nil)),
		ws.member("event-mask", x.fmtMask(uint64(mask), 2, libprt.SetOfEventFlagNames)),
		ws.member("pointer-mode", x.fmtEnum(uint64(pMode), 1, libprt.InputModeNames)),
		ws.member("keyboard-mode", x.fmtEnum(uint64(kMode), 1, libprt.InputModeNames)),
		ws.member("confine-to", x.fmtXID(confine, libprt.ZeroNoneNames)),
		ws.member("cursor", x.fmtXID(cursor, libprt.ZeroNoneNames)),
		ws.member("button", x.fmtCard(uint64(button), 1, libprt.ButtonNames)),
		ws.member("modifiers", x.fmtKeyMask(modifiers)),
	})
}

func (x *prs) reqUngrabButton(q *reqCtx, ws whitespace) string {
	window := q.r.U32()
	modifiers := q.r.KeyMaskCheck(q.r.U16())
	q.r.Skip(2)

	return ws.record([]string{
		ws.member("button", x.fmtCard(uint64(q.data), 1, libprt.ButtonNames)),
		ws.member("grab-window", x.fmtXID(window, nil)),
		ws.member("modifiers", x.fmtKeyMask(modifiers)),
	})
}

func (x *prs) reqChangeActivePointerGrab(q *reqCtx, ws whitespace) string {
	cursor := q.r.U32()
	t := q.r.U32()
	mask := q.r.ZeroCheck16(q.r.U16(), uint16(libprt.ZeroBitsSetOfPointerEvent&0xFFFF))
	q.r.Skip(2)

	return ws.record([]string{
		ws.member("cursor", x.fmtXID(cursor, libprt.ZeroNoneNames)),
		ws.member("time", x.fmtTimestamp(t)),
		ws.member("event-mask", x.fmtMask(uint64(mask), 2, libprt.SetOfEventFlagNames)),
	})
}

func (x *prs) reqGrabKeyboard(q *reqCtx, ws whitespace) string {
	window := q.r.U32()
	t := q.r.U32()
	pMode := q.r.U8()
	kMode := q.r.U8()
	q.r.Skip(2)

	return ws.record([]string{
		ws.member("owner-events", x.fmtBool(q.data)),
		ws.member("grab-window", x.fmtXID(window, nil)),
		ws.member("time", x.fmtTimestamp(t)),
		ws.member("pointer-mode", x.fmtEnum(uint64(pMode), 1, libprt.InputModeNames)),
		ws.member("keyboard-mode", x.fmtEnum(uint64(kMode), 1, libprt.InputModeNames)),
	})
}

func (x *prs) reqGrabKey(q *reqCtx, ws whitespace) string {
	window := q.r.U32()
	modifiers := q.r.KeyMaskCheck(q.r.U16())
	key := q.r.U8()
	pMode := q.r.U8()
	kMode := q.r.U8()
	q.r.Skip(3)

	return ws.record([]string{
		ws.member("owner-events", x.fmtBool(q.data)),
		ws.member("grab-window", x.fmtXID(window, nil)),
		ws.member("modifiers", x.fmtKeyMask(modifiers)),
		ws.member("key", x.fmtCard(uint64(key), 1, libprt.KeyNames)),
		ws.member("pointer-mode", x.fmtEnum(uint64(pMode), 1, libprt.InputModeNames)),
		ws.member("keyboard-mode", x.fmtEnum(uint64(kMode), 1, libprt.InputModeNames)),
	})
}

func (x *prs) reqUngrabKey(q *reqCtx, ws whitespace) string {
	window := q.r.U32()
	modifiers := q.r.KeyMaskCheck(q.r.U16())
	q.r.Skip(2)

	return ws.record([]string{
		ws.member("key", x.fmtCard(uint64(q.data), 1, libprt.KeyNames)),
		ws.member("grab-window", x.fmtXID(window, nil)),
		ws.member("modifiers", x.fmtKeyMask(modifiers)),
	})
}

func (x *prs) reqGetMotionEvents(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("window", x.fmtXID(q.r.U32(), nil)),
		ws.member("start", x.fmtTimestamp(q.r.U32())),
		ws.member("stop", x.fmtTimestamp(q.r.U32())),
	})
}

func (x *prs) reqTranslateCoordinates(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("src-window", x.fmtXID(q.r.U32(), nil)),
		ws.member("dst-window", x.fmtXID(q.r.U32(), nil)),
		ws.member("src-x", decI(int64(q.r.I16()))),
		ws.member("src-y", decI(int64(q.r.I16()))),
	})
}

func (x *prs) reqWarpPointer(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("src-window", x.fmtXID(q.r.U32(), libprt.ZeroNoneNames)),
		ws.member("dst-window", x.fmtXID(q.r.U32(), libprt.ZeroNoneNames)),
		ws.member("src-x", decI(int64(q.r.I16()))),
		ws.member("src-y", decI(int64(q.r.I16()))),
		ws.member("src-width", dec(uint64(q.r.U16()))),
		ws.member("src-height", dec(uint64(q.r.U16()))),
		ws.member("dst-x", decI(int64(q.r.I16()))),
		ws.member("dst-y", decI(int64(q.r.I16()))),
	})
}

func (x *prs) reqSetInputFocus(q *reqCtx, ws whitespace) string {
	return ws.record([]string{
		ws.member("revert-to", x.fmtEnum(uint64(q.data), 1, libprt.InputFocusNames)),
		ws.member("focus", x.fmtXID(q.r.U32(), libprt.InputFocusNames)),
		ws.member("time", x.fmtTimestamp(q.r.U32())),
	})
}

func (x *prs) reqNoOperation(q *reqCtx, ws whitespace) string {
	n := q.r.Remaining()
	q.r.Skip(n)

	if n == 0 {
		return ws.record(nil)
	}

	return ws.record([]string{
		ws.member("data", "<" + dec(uint64(n)) + " bytes>"),
	})
}

