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

package protocol

// Core protocol error codes, each a fixed 32-byte record starting with a
// zero byte.
const (
	XErrRequest        uint8 = 1
	XErrValue          uint8 = 2
	XErrWindow         uint8 = 3
	XErrPixmap         uint8 = 4
	XErrAtom           uint8 = 5
	XErrCursor         uint8 = 6
	XErrFont           uint8 = 7
	XErrMatch          uint8 = 8
	XErrDrawable       uint8 = 9
	XErrAccess         uint8 = 10
	XErrAlloc          uint8 = 11
	XErrColormap       uint8 = 12
	XErrGContext       uint8 = 13
	XErrIDChoice       uint8 = 14
	XErrName           uint8 = 15
	XErrLength         uint8 = 16
	XErrImplementation uint8 = 17

	XErrMax uint8 = 17
)

var xErrorNames = [XErrMax + 1]string{
	XErrRequest:        "Request",
	XErrValue:          "Value",
	XErrWindow:         "Window",
	XErrPixmap:         "Pixmap",
	XErrAtom:           "Atom",
	XErrCursor:         "Cursor",
	XErrFont:           "Font",
	XErrMatch:          "Match",
	XErrDrawable:       "Drawable",
	XErrAccess:         "Access",
	XErrAlloc:          "Alloc",
	XErrColormap:       "Colormap",
	XErrGContext:       "GContext",
	XErrIDChoice:       "IDChoice",
	XErrName:           "Name",
	XErrLength:         "Length",
	XErrImplementation: "Implementation",
}

// XErrorName returns the name of a core error code, or an empty string for
// codes outside 1..17.
func XErrorName(code uint8) string {
	if code < XErrRequest || code > XErrMax {
		return ""
	}
	return xErrorNames[code]
}

// XErrorHasResource reports whether the error's 4-byte slot carries a bad
// resource id rather than being unused.
func XErrorHasResource(code uint8) bool {
	switch code {
	case XErrWindow, XErrPixmap, XErrCursor, XErrFont,
		XErrDrawable, XErrColormap, XErrGContext, XErrIDChoice:
		return true
	default:
		return false
	}
}

// XErrorHasValue reports whether the error's 4-byte slot carries the
// offending value (Value and Atom errors).
func XErrorHasValue(code uint8) bool {
	return code == XErrValue || code == XErrAtom
}
