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

// Server-to-client first-byte classification. Codes 2..34 are core events;
// the high bit marks an event synthesized through SendEvent.
const (
	ReplyPrefixError uint8 = 0
	ReplyPrefixReply uint8 = 1

	EvtKeyPress         uint8 = 2
	EvtKeyRelease       uint8 = 3
	EvtButtonPress      uint8 = 4
	EvtButtonRelease    uint8 = 5
	EvtMotionNotify     uint8 = 6
	EvtEnterNotify      uint8 = 7
	EvtLeaveNotify      uint8 = 8
	EvtFocusIn          uint8 = 9
	EvtFocusOut         uint8 = 10
	EvtKeymapNotify     uint8 = 11
	EvtExpose           uint8 = 12
	EvtGraphicsExposure uint8 = 13
	EvtNoExposure       uint8 = 14
	EvtVisibilityNotify uint8 = 15
	EvtCreateNotify     uint8 = 16
	EvtDestroyNotify    uint8 = 17
	EvtUnmapNotify      uint8 = 18
	EvtMapNotify        uint8 = 19
	EvtMapRequest       uint8 = 20
	EvtReparentNotify   uint8 = 21
	EvtConfigureNotify  uint8 = 22
	EvtConfigureRequest uint8 = 23
	EvtGravityNotify    uint8 = 24
	EvtResizeRequest    uint8 = 25
	EvtCirculateNotify  uint8 = 26
	EvtCirculateRequest uint8 = 27
	EvtPropertyNotify   uint8 = 28
	EvtSelectionClear   uint8 = 29
	EvtSelectionRequest uint8 = 30
	EvtSelectionNotify  uint8 = 31
	EvtColormapNotify   uint8 = 32
	EvtClientMessage    uint8 = 33
	EvtMappingNotify    uint8 = 34

	EvtCoreMax uint8 = 34

	// EvtSendEventMask flags an event as synthetic when set in the code byte.
	EvtSendEventMask uint8 = 0x80
	// EvtCodeMask extracts the event code from the first byte.
	EvtCodeMask uint8 = 0x7F

	// EventSize is the fixed wire size of every core event, error and of the
	// reply header.
	EventSize = 32
)

var eventNames = [EvtCoreMax + 1]string{
	EvtKeyPress:         "KeyPress",
	EvtKeyRelease:       "KeyRelease",
	EvtButtonPress:      "ButtonPress",
	EvtButtonRelease:    "ButtonRelease",
	EvtMotionNotify:     "MotionNotify",
	EvtEnterNotify:      "EnterNotify",
	EvtLeaveNotify:      "LeaveNotify",
	EvtFocusIn:          "FocusIn",
	EvtFocusOut:         "FocusOut",
	EvtKeymapNotify:     "KeymapNotify",
	EvtExpose:           "Expose",
	EvtGraphicsExposure: "GraphicsExposure",
	EvtNoExposure:       "NoExposure",
	EvtVisibilityNotify: "VisibilityNotify",
	EvtCreateNotify:     "CreateNotify",
	EvtDestroyNotify:    "DestroyNotify",
	EvtUnmapNotify:      "UnmapNotify",
	EvtMapNotify:        "MapNotify",
	EvtMapRequest:       "MapRequest",
	EvtReparentNotify:   "ReparentNotify",
	EvtConfigureNotify:  "ConfigureNotify",
	EvtConfigureRequest: "ConfigureRequest",
	EvtGravityNotify:    "GravityNotify",
	EvtResizeRequest:    "ResizeRequest",
	EvtCirculateNotify:  "CirculateNotify",
	EvtCirculateRequest: "CirculateRequest",
	EvtPropertyNotify:   "PropertyNotify",
	EvtSelectionClear:   "SelectionClear",
	EvtSelectionRequest: "SelectionRequest",
	EvtSelectionNotify:  "SelectionNotify",
	EvtColormapNotify:   "ColormapNotify",
	EvtClientMessage:    "ClientMessage",
	EvtMappingNotify:    "MappingNotify",
}

// EventName returns the name of a core event code (SendEvent bit already
// stripped), or an empty string for codes outside 2..34.
func EventName(code uint8) string {
	if code < EvtKeyPress || code > EvtCoreMax {
		return ""
	}
	return eventNames[code]
}

// IsCoreEvent reports whether the first byte of a server message, after
// stripping the SendEvent bit, is a defined core event code.
func IsCoreEvent(first uint8) bool {
	c := first & EvtCodeMask
	return c >= EvtKeyPress && c <= EvtCoreMax
}
