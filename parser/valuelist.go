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

// valueBind binds one bit of a VALUE-LIST bitmask to the field it enables:
// the protocol name and the renderer of its 4-byte slot.
type valueBind struct {
	name string
	fmt  func(x *prs, c libses.Connection, v uint32) string
}

// fmtValueList walks the mask's set bits LSB-first, consuming one 4-byte
// slot per enabled bit in the fixed enumeration order of the binds.
func (x *prs) fmtValueList(c libses.Connection, r *rdr, ws whitespace, mask uint64, binds []valueBind) string {
	var members []string

	for i := 0; i < len(binds); i++ {
		if mask&(1<<uint(i)) == 0 {
			continue
		}
		v := r.U32()
		members = append(members, ws.member(binds[i].name, binds[i].fmt(x, c, v)))
	}

	return ws.record(members)
}

func bindHex(x *prs, _ libses.Connection, v uint32) string {
	return hexPad(uint64(v), 4)
}

func bindCard16(x *prs, _ libses.Connection, v uint32) string {
	return dec(uint64(uint16(v)))
}

func bindCard8(x *prs, _ libses.Connection, v uint32) string {
	return dec(uint64(uint8(v)))
}

func bindInt16(x *prs, _ libses.Connection, v uint32) string {
	return decI(int64(int16(uint16(v))))
}

func bindInt8(x *prs, _ libses.Connection, v uint32) string {
	return decI(int64(int8(uint8(v))))
}

func bindBool(x *prs, _ libses.Connection, v uint32) string {
	return x.fmtBool(uint8(v))
}

func bindEnum(names []string) func(x *prs, c libses.Connection, v uint32) string {
	return func(x *prs, _ libses.Connection, v uint32) string {
		return x.fmtEnum(uint64(uint8(v)), 1, names)
	}
}

func bindXID(names []string) func(x *prs, c libses.Connection, v uint32) string {
	return func(x *prs, _ libses.Connection, v uint32) string {
		return x.fmtXID(v, names)
	}
}

func bindEventMask(x *prs, _ libses.Connection, v uint32) string {
	return x.fmtMask(uint64(v), 4, libprt.SetOfEventFlagNames)
}

// windowAttributeBinds is the fixed VALUE order of CreateWindow and
// ChangeWindowAttributes.
var windowAttributeBinds = []valueBind{
	{"background-pixmap", bindXID(libprt.BackgroundPixmapNames)},
	{"background-pixel", bindHex},
	{"border-pixmap", bindXID(libprt.ZeroCopyFromParentNames)},
	{"border-pixel", bindHex},
	{"bit-gravity", bindEnum(libprt.BitGravityNames)},
	{"win-gravity", bindEnum(libprt.WinGravityNames)},
	{"backing-store", bindEnum(libprt.BackingStoreNames)},
	{"backing-planes", bindHex},
	{"backing-pixel", bindHex},
	{"override-redirect", bindBool},
	{"save-under", bindBool},
	{"event-mask", bindEventMask},
	{"do-not-propagate-mask", bindEventMask},
	{"colormap", bindXID(libprt.ZeroCopyFromParentNames)},
	{"cursor", bindXID(libprt.ZeroNoneNames)},
}

// configureWindowBinds is the fixed VALUE order of ConfigureWindow.
var configureWindowBinds = []valueBind{
	{"x", bindInt16},
	{"y", bindInt16},
	{"width", bindCard16},
	{"height", bindCard16},
	{"border-width", bindCard16},
	{"sibling", bindXID(nil)},
	{"stack-mode", bindEnum(libprt.StackModeNames)},
}

// gcBinds is the fixed VALUE order of CreateGC, ChangeGC and CopyGC.
var gcBinds = []valueBind{
	{"function", bindEnum(libprt.GCFunctionNames)},
	{"plane-mask", bindHex},
	{"foreground", bindHex},
	{"background", bindHex},
	{"line-width", bindCard16},
	{"line-style", bindEnum(libprt.GCLineStyleNames)},
	{"cap-style", bindEnum(libprt.GCCapStyleNames)},
	{"join-style", bindEnum(libprt.GCJoinStyleNames)},
	{"fill-style", bindEnum(libprt.GCFillStyleNames)},
	{"fill-rule", bindEnum(libprt.GCFillRuleNames)},
	{"tile", bindHex},
	{"stipple", bindHex},
	{"tile-stipple-x-origin", bindInt16},
	{"tile-stipple-y-origin", bindInt16},
	{"font", bindHex},
	{"subwindow-mode", bindEnum(libprt.GCSubwindowModeNames)},
	{"graphics-exposures", bindBool},
	{"clip-x-origin", bindInt16},
	{"clip-y-origin", bindInt16},
	{"clip-mask", bindXID(libprt.ZeroNoneNames)},
	{"dash-offset", bindCard16},
	{"dashes", bindCard8},
	{"arc-mode", bindEnum(libprt.GCArcModeNames)},
}

// keyboardControlBinds is the fixed VALUE order of ChangeKeyboardControl.
var keyboardControlBinds = []valueBind{
	{"key-click-percent", bindInt8},
	{"bell-percent", bindInt8},
	{"bell-pitch", bindInt16},
	{"bell-duration", bindInt16},
	{"led", bindCard8},
	{"led-mode", bindEnum(libprt.OffOnNames)},
	{"key", bindCard8},
	{"auto-repeat-mode", bindEnum(libprt.OffOnNames)},
}
