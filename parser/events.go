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
)

// decodeEvent renders one 32-byte core event and emits it. The high bit of
// the code byte marks a SendEvent-synthesized event.
func (x *prs) decodeEvent(c libses.Connection, raw []byte) error {
	if !libprt.IsCoreEvent(raw[0]) {
		return ErrorUnknownOpcode.Error(nil)
	}

	ws := x.ws()
	name, body := x.eventRecord(c, raw, ws)

	code := raw[0] & libprt.EvtCodeMask
	kind := "Event(" + name + ")"
	if raw[0]&libprt.EvtSendEventMask != 0 {
		kind = "Event(" + name + ",synthetic)"
	}

	// KeymapNotify is the one event without a sequence number slot
	seq := ""
	if code != libprt.EvtKeymapNotify {
		seq = fmtSeq(c.ByteOrder().Uint16(raw[2:4]))
	}

	return x.emit('S', c, seq, x.paint(x.cEvt, kind), body)
}

// eventRecord renders an event's name and body from its fixed 32 bytes; it
// is shared with the SendEvent request decoder for the embedded event.
func (x *prs) eventRecord(c libses.Connection, raw []byte, ws whitespace) (string, string) {
	code := raw[0] & libprt.EvtCodeMask
	name := libprt.EventName(code)
	if name == "" {
		name = "UnknownEvent"
	}

	r := newReader(raw, c.ByteOrder())
	r.Skip(1)
	detail := r.U8()

	if code != libprt.EvtKeymapNotify {
		r.Skip(2) // sequence, carried in the record prefix
	}

	var body string

	switch code {
	case libprt.EvtKeyPress, libprt.EvtKeyRelease,
		libprt.EvtButtonPress, libprt.EvtButtonRelease,
		libprt.EvtMotionNotify:
		body = x.evtPointer(c, code, detail, r, ws)
	case libprt.EvtEnterNotify, libprt.EvtLeaveNotify:
		body = x.evtCrossing(c, detail, r, ws)
	case libprt.EvtFocusIn, libprt.EvtFocusOut:
		body = ws.record([]string{
			ws.member("detail", x.fmtEnum(uint64(detail), 1, libprt.FocusDetailNames)),
			ws.member("event", x.fmtXID(r.U32(), nil)),
			ws.member("mode", x.fmtEnum(uint64(r.U8()), 1, libprt.FocusModeNames)),
		})
	case libprt.EvtKeymapNotify:
		// bytes 1..31 cover keycodes 8..255
		body = ws.record([]string{
			ws.member("keys", fmtBitVector(raw[1:32])),
		})
	case libprt.EvtExpose:
		body = ws.record([]string{
			ws.member("window", x.fmtXID(r.U32(), nil)),
			ws.member("x", dec(uint64(r.U16()))),
			ws.member("y", dec(uint64(r.U16()))),
			ws.member("width", dec(uint64(r.U16()))),
			ws.member("height", dec(uint64(r.U16()))),
			ws.member("count", dec(uint64(r.U16()))),
		})
	case libprt.EvtGraphicsExposure:
		body = ws.record([]string{
			ws.member("drawable", x.fmtXID(r.U32(), nil)),
			ws.member("x", dec(uint64(r.U16()))),
			ws.member("y", dec(uint64(r.U16()))),
			ws.member("width", dec(uint64(r.U16()))),
			ws.member("height", dec(uint64(r.U16()))),
			ws.member("minor-opcode", dec(uint64(r.U16()))),
			ws.member("count", dec(uint64(r.U16()))),
			ws.member("major-opcode", fmtOpcodeName(r.U8())),
		})
	case libprt.EvtNoExposure:
		drawable := r.U32()
		minor := r.U16()
		major := r.U8()
		body = ws.record([]string{
			ws.member("drawable", x.fmtXID(drawable, nil)),
			ws.member("minor-opcode", dec(uint64(minor))),
			ws.member("major-opcode", fmtOpcodeName(major)),
		})
	case libprt.EvtVisibilityNotify:
		body = ws.record([]string{
			ws.member("window", x.fmtXID(r.U32(), nil)),
			ws.member("state", x.fmtEnum(uint64(r.U8()), 1, libprt.VisibilityStateNames)),
		})
	case libprt.EvtCreateNotify:
		body = ws.record([]string{
			ws.member("parent", x.fmtXID(r.U32(), nil)),
			ws.member("window", x.fmtXID(r.U32(), nil)),
			ws.member("x", decI(int64(r.I16()))),
			ws.member("y", decI(int64(r.I16()))),
			ws.member("width", dec(uint64(r.U16()))),
			ws.member("height", dec(uint64(r.U16()))),
			ws.member("border-width", dec(uint64(r.U16()))),
			ws.member("override-redirect", x.fmtBool(r.U8())),
		})
	case libprt.EvtDestroyNotify:
		body = ws.record([]string{
			ws.member("event", x.fmtXID(r.U32(), nil)),
			ws.member("window", x.fmtXID(r.U32(), nil)),
		})
	case libprt.EvtUnmapNotify:
		body = ws.record([]string{
			ws.member("event", x.fmtXID(r.U32(), nil)),
			ws.member("window", x.fmtXID(r.U32(), nil)),
			ws.member("from-configure", x.fmtBool(r.U8())),
		})
	case libprt.EvtMapNotify:
		body = ws.record([]string{
			ws.member("event", x.fmtXID(r.U32(), nil)),
			ws.member("window", x.fmtXID(r.U32(), nil)),
			ws.member("override-redirect", x.fmtBool(r.U8())),
		})
	case libprt.EvtMapRequest:
		body = ws.record([]string{
			ws.member("parent", x.fmtXID(r.U32(), nil)),
			ws.member("window", x.fmtXID(r.U32(), nil)),
		})
	case libprt.EvtReparentNotify:
		body = ws.record([]string{
			ws.member("event", x.fmtXID(r.U32(), nil)),
			ws.member("window", x.fmtXID(r.U32(), nil)),
			ws.member("parent", x.fmtXID(r.U32(), nil)),
			ws.member("x", decI(int64(r.I16()))),
			ws.member("y", decI(int64(r.I16()))),
			ws.member("override-redirect", x.fmtBool(r.U8())),
		})
	case libprt.EvtConfigureNotify:
		body = ws.record([]string{
			ws.member("event", x.fmtXID(r.U32(), nil)),
			ws.member("window", x.fmtXID(r.U32(), nil)),
			ws.member("above-sibling", x.fmtXID(r.U32(), libprt.ZeroNoneNames)),
			ws.member("x", decI(int64(r.I16()))),
			ws.member("y", decI(int64(r.I16()))),
			ws.member("width", dec(uint64(r.U16()))),
			ws.member("height", dec(uint64(r.U16()))),
			ws.member("border-width", dec(uint64(r.U16()))),
			ws.member("override-redirect", x.fmtBool(r.U8())),
		})
	case libprt.EvtConfigureRequest:
		// all 32 bytes are present, only value-mask flagged fields are
		// semantically meaningful
		body = ws.record([]string{
			ws.member("stack-mode", x.fmtEnum(uint64(detail), 1, libprt.StackModeNames)),
			ws.member("parent", x.fmtXID(r.U32(), nil)),
			ws.member("window", x.fmtXID(r.U32(), nil)),
			ws.member("sibling", x.fmtXID(r.U32(), libprt.ZeroNoneNames)),
			ws.member("x", decI(int64(r.I16()))),
			ws.member("y", decI(int64(r.I16()))),
			ws.member("width", dec(uint64(r.U16()))),
			ws.member("height", dec(uint64(r.U16()))),
			ws.member("border-width", dec(uint64(r.U16()))),
			ws.member("value-mask", x.fmtMask(uint64(r.U16()), 2, libprt.WindowValueMaskNames)),
		})
	case libprt.EvtGravityNotify:
		body = ws.record([]string{
			ws.member("event", x.fmtXID(r.U32(), nil)),
			ws.member("window", x.fmtXID(r.U32(), nil)),
			ws.member("x", decI(int64(r.I16()))),
			ws.member("y", decI(int64(r.I16()))),
		})
	case libprt.EvtResizeRequest:
		body = ws.record([]string{
			ws.member("window", x.fmtXID(r.U32(), nil)),
			ws.member("width", dec(uint64(r.U16()))),
			ws.member("height", dec(uint64(r.U16()))),
		})
	case libprt.EvtCirculateNotify, libprt.EvtCirculateRequest:
		event := r.U32()
		window := r.U32()
		r.Skip(4)
		place := r.U8()
		body = ws.record([]string{
			ws.member("event", x.fmtXID(event, nil)),
			ws.member("window", x.fmtXID(window, nil)),
			ws.member("place", x.fmtEnum(uint64(place), 1, libprt.CirculatePlaceNames)),
		})
	case libprt.EvtPropertyNotify:
		body = ws.record([]string{
			ws.member("window", x.fmtXID(r.U32(), nil)),
			ws.member("atom", x.fmtAtom(c, r.AtomCheck(r.U32()))),
			ws.member("time", x.fmtTimestamp(r.U32())),
			ws.member("state", x.fmtEnum(uint64(r.U8()), 1, libprt.PropertyStateNames)),
		})
	case libprt.EvtSelectionClear:
		body = ws.record([]string{
			ws.member("time", x.fmtTimestamp(r.U32())),
			ws.member("owner", x.fmtXID(r.U32(), nil)),
			ws.member("selection", x.fmtAtom(c, r.AtomCheck(r.U32()))),
		})
	case libprt.EvtSelectionRequest:
		body = ws.record([]string{
			ws.member("time", x.fmtTimestamp(r.U32())),
			ws.member("owner", x.fmtXID(r.U32(), nil)),
			ws.member("requestor", x.fmtXID(r.U32(), nil)),
			ws.member("selection", x.fmtAtom(c, r.AtomCheck(r.U32()))),
			ws.member("target", x.fmtAtom(c, r.AtomCheck(r.U32()))),
			ws.member("property", x.fmtAtomEnum(c, r.AtomCheck(r.U32()), libprt.ZeroNoneNames)),
		})
	case libprt.EvtSelectionNotify:
		body = ws.record([]string{
			ws.member("time", x.fmtTimestamp(r.U32())),
			ws.member("requestor", x.fmtXID(r.U32(), nil)),
			ws.member("selection", x.fmtAtom(c, r.AtomCheck(r.U32()))),
			ws.member("target", x.fmtAtom(c, r.AtomCheck(r.U32()))),
			ws.member("property", x.fmtAtomEnum(c, r.AtomCheck(r.U32()), libprt.ZeroNoneNames)),
		})
	case libprt.EvtColormapNotify:
		body = ws.record([]string{
			ws.member("window", x.fmtXID(r.U32(), nil)),
			ws.member("colormap", x.fmtXID(r.U32(), libprt.ZeroNoneNames)),
			ws.member("new", x.fmtBool(r.U8())),
			ws.member("state", x.fmtEnum(uint64(r.U8()), 1, libprt.ColormapStateNames)),
		})
	case libprt.EvtClientMessage:
		body = x.evtClientMessage(c, detail, r, ws)
	case libprt.EvtMappingNotify:
		body = ws.record([]string{
			ws.member("request", x.fmtEnum(uint64(r.U8()), 1, libprt.MappingNotifyRequestNames)),
			ws.member("first-keycode", dec(uint64(r.U8()))),
			ws.member("count", dec(uint64(r.U8()))),
		})
	default:
		body = ws.record(nil)
	}

	return name, body
}

func (x *prs) evtPointer(c libses.Connection, code, detail uint8, r *rdr, ws whitespace) string {
	t := r.U32()
	root := r.U32()
	event := r.U32()
	child := r.U32()
	rootX := r.I16()
	rootY := r.I16()
	eventX := r.I16()
	eventY := r.I16()
	state := r.ZeroCheck16(r.U16(), libprt.ZeroBitsSetOfKeyButMask)
	sameScreen := r.U8()

	detailStr := dec(uint64(detail))
	if code == libprt.EvtMotionNotify {
		detailStr = x.fmtEnum(uint64(detail), 1, libprt.MotionHintNames)
	}

	return ws.record([]string{
		ws.member("detail", detailStr),
		ws.member("time", x.fmtTimestamp(t)),
		ws.member("root", x.fmtXID(root, nil)),
		ws.member("event", x.fmtXID(event, nil)),
		ws.member("child", x.fmtXID(child, libprt.ZeroNoneNames)),
		ws.member("root-x", decI(int64(rootX))),
		ws.member("root-y", decI(int64(rootY))),
		ws.member("event-x", decI(int64(eventX))),
		ws.member("event-y", decI(int64(eventY))),
		ws.member("state", x.fmtMask(uint64(state), 2, libprt.SetOfKeyButMaskFlagNames)),
		ws.member("same-screen", x.fmtBool(sameScreen)),
	})
}

func (x *prs) evtCrossing(c libses.Connection, detail uint8, r *rdr, ws whitespace) string {
	t := r.U32()
	root := r.U32()
	event := r.U32()
	child := r.U32()
	rootX := r.I16()
	rootY := r.I16()
	eventX := r.I16()
	eventY := r.I16()
	state := r.ZeroCheck16(r.U16(), libprt.ZeroBitsSetOfKeyButMask)
	mode := r.U8()
	flags := r.U8()

	return ws.record([]string{
		ws.member("detail", x.fmtEnum(uint64(detail), 1, libprt.FocusDetailNames)),
		ws.member("time", x.fmtTimestamp(t)),
		ws.member("root", x.fmtXID(root, nil)),
		ws.member("event", x.fmtXID(event, nil)),
		ws.member("child", x.fmtXID(child, libprt.ZeroNoneNames)),
		ws.member("root-x", decI(int64(rootX))),
		ws.member("root-y", decI(int64(rootY))),
		ws.member("event-x", decI(int64(eventX))),
		ws.member("event-y", decI(int64(eventY))),
		ws.member("state", x.fmtMask(uint64(state), 2, libprt.SetOfKeyButMaskFlagNames)),
		ws.member("mode", x.fmtEnum(uint64(mode), 1, libprt.FocusModeNames)),
		ws.member("same-screen/focus", x.fmtMask(uint64(flags), 1, libprt.FocusSameScreenMaskNames)),
	})
}

func (x *prs) evtClientMessage(c libses.Connection, format uint8, r *rdr, ws whitespace) string {
	window := r.U32()
	typ := r.AtomCheck(r.U32())
	data := r.Bytes(20)

	return ws.record([]string{
		ws.member("format", dec(uint64(format))),
		ws.member("window", x.fmtXID(window, nil)),
		ws.member("type", x.fmtAtom(c, typ)),
		ws.member("data", x.fmtPropertyValue(format, data, r.bo)),
	})
}
