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

// Core request major opcodes. 120 through 126 are unused by the core
// protocol; 128 through 255 are assigned to extensions.
const (
	OpCreateWindow          uint8 = 1
	OpChangeWindowAttrs     uint8 = 2
	OpGetWindowAttrs        uint8 = 3
	OpDestroyWindow         uint8 = 4
	OpDestroySubwindows     uint8 = 5
	OpChangeSaveSet         uint8 = 6
	OpReparentWindow        uint8 = 7
	OpMapWindow             uint8 = 8
	OpMapSubwindows         uint8 = 9
	OpUnmapWindow           uint8 = 10
	OpUnmapSubwindows       uint8 = 11
	OpConfigureWindow       uint8 = 12
	OpCirculateWindow       uint8 = 13
	OpGetGeometry           uint8 = 14
	OpQueryTree             uint8 = 15
	OpInternAtom            uint8 = 16
	OpGetAtomName           uint8 = 17
	OpChangeProperty        uint8 = 18
	OpDeleteProperty        uint8 = 19
	OpGetProperty           uint8 = 20
	OpListProperties        uint8 = 21
	OpSetSelectionOwner     uint8 = 22
	OpGetSelectionOwner     uint8 = 23
	OpConvertSelection      uint8 = 24
	OpSendEvent             uint8 = 25
	OpGrabPointer           uint8 = 26
	OpUngrabPointer         uint8 = 27
	OpGrabButton            uint8 = 28
	OpUngrabButton          uint8 = 29
	OpChangeActivePtrGrab   uint8 = 30
	OpGrabKeyboard          uint8 = 31
	OpUngrabKeyboard        uint8 = 32
	OpGrabKey               uint8 = 33
	OpUngrabKey             uint8 = 34
	OpAllowEvents           uint8 = 35
	OpGrabServer            uint8 = 36
	OpUngrabServer          uint8 = 37
	OpQueryPointer          uint8 = 38
	OpGetMotionEvents       uint8 = 39
	OpTranslateCoords       uint8 = 40
	OpWarpPointer           uint8 = 41
	OpSetInputFocus         uint8 = 42
	OpGetInputFocus         uint8 = 43
	OpQueryKeymap           uint8 = 44
	OpOpenFont              uint8 = 45
	OpCloseFont             uint8 = 46
	OpQueryFont             uint8 = 47
	OpQueryTextExtents      uint8 = 48
	OpListFonts             uint8 = 49
	OpListFontsWithInfo     uint8 = 50
	OpSetFontPath           uint8 = 51
	OpGetFontPath           uint8 = 52
	OpCreatePixmap          uint8 = 53
	OpFreePixmap            uint8 = 54
	OpCreateGC              uint8 = 55
	OpChangeGC              uint8 = 56
	OpCopyGC                uint8 = 57
	OpSetDashes             uint8 = 58
	OpSetClipRectangles     uint8 = 59
	OpFreeGC                uint8 = 60
	OpClearArea             uint8 = 61
	OpCopyArea              uint8 = 62
	OpCopyPlane             uint8 = 63
	OpPolyPoint             uint8 = 64
	OpPolyLine              uint8 = 65
	OpPolySegment           uint8 = 66
	OpPolyRectangle         uint8 = 67
	OpPolyArc               uint8 = 68
	OpFillPoly              uint8 = 69
	OpPolyFillRectangle     uint8 = 70
	OpPolyFillArc           uint8 = 71
	OpPutImage              uint8 = 72
	OpGetImage              uint8 = 73
	OpPolyText8             uint8 = 74
	OpPolyText16            uint8 = 75
	OpImageText8            uint8 = 76
	OpImageText16           uint8 = 77
	OpCreateColormap        uint8 = 78
	OpFreeColormap          uint8 = 79
	OpCopyColormapAndFree   uint8 = 80
	OpInstallColormap       uint8 = 81
	OpUninstallColormap     uint8 = 82
	OpListInstalledColormap uint8 = 83
	OpAllocColor            uint8 = 84
	OpAllocNamedColor       uint8 = 85
	OpAllocColorCells       uint8 = 86
	OpAllocColorPlanes      uint8 = 87
	OpFreeColors            uint8 = 88
	OpStoreColors           uint8 = 89
	OpStoreNamedColor       uint8 = 90
	OpQueryColors           uint8 = 91
	OpLookupColor           uint8 = 92
	OpCreateCursor          uint8 = 93
	OpCreateGlyphCursor     uint8 = 94
	OpFreeCursor            uint8 = 95
	OpRecolorCursor         uint8 = 96
	OpQueryBestSize         uint8 = 97
	OpQueryExtension        uint8 = 98
	OpListExtensions        uint8 = 99
	OpChangeKeyboardMapping uint8 = 100
	OpGetKeyboardMapping    uint8 = 101
	OpChangeKeyboardControl uint8 = 102
	OpGetKeyboardControl    uint8 = 103
	OpBell                  uint8 = 104
	OpChangePointerControl  uint8 = 105
	OpGetPointerControl     uint8 = 106
	OpSetScreenSaver        uint8 = 107
	OpGetScreenSaver        uint8 = 108
	OpChangeHosts           uint8 = 109
	OpListHosts             uint8 = 110
	OpSetAccessControl      uint8 = 111
	OpSetCloseDownMode      uint8 = 112
	OpKillClient            uint8 = 113
	OpRotateProperties      uint8 = 114
	OpForceScreenSaver      uint8 = 115
	OpSetPointerMapping     uint8 = 116
	OpGetPointerMapping     uint8 = 117
	OpSetModifierMapping    uint8 = 118
	OpGetModifierMapping    uint8 = 119
	OpNoOperation           uint8 = 127

	// OpCoreMax is the highest defined core opcode.
	OpCoreMax uint8 = 127
	// OpExtensionBase is the first opcode assigned to extensions.
	OpExtensionBase uint8 = 128
)

// UnusedOpcodeName fills the gaps in the opcode name table (120..126).
const UnusedOpcodeName = "(unused core opcode)"

var requestNames = [OpCoreMax + 1]string{
	OpCreateWindow:          "CreateWindow",
	OpChangeWindowAttrs:     "ChangeWindowAttributes",
	OpGetWindowAttrs:        "GetWindowAttributes",
	OpDestroyWindow:         "DestroyWindow",
	OpDestroySubwindows:     "DestroySubwindows",
	OpChangeSaveSet:         "ChangeSaveSet",
	OpReparentWindow:        "ReparentWindow",
	OpMapWindow:             "MapWindow",
	OpMapSubwindows:         "MapSubwindows",
	OpUnmapWindow:           "UnmapWindow",
	OpUnmapSubwindows:       "UnmapSubwindows",
	OpConfigureWindow:       "ConfigureWindow",
	OpCirculateWindow:       "CirculateWindow",
	OpGetGeometry:           "GetGeometry",
	OpQueryTree:             "QueryTree",
	OpInternAtom:            "InternAtom",
	OpGetAtomName:           "GetAtomName",
	OpChangeProperty:        "ChangeProperty",
	OpDeleteProperty:        "DeleteProperty",
	OpGetProperty:           "GetProperty",
	OpListProperties:        "ListProperties",
	OpSetSelectionOwner:     "SetSelectionOwner",
	OpGetSelectionOwner:     "GetSelectionOwner",
	OpConvertSelection:      "ConvertSelection",
	OpSendEvent:             "SendEvent",
	OpGrabPointer:           "GrabPointer",
	OpUngrabPointer:         "UngrabPointer",
	OpGrabButton:            "GrabButton",
	OpUngrabButton:          "UngrabButton",
	OpChangeActivePtrGrab:   "ChangeActivePointerGrab",
	OpGrabKeyboard:          "GrabKeyboard",
	OpUngrabKeyboard:        "UngrabKeyboard",
	OpGrabKey:               "GrabKey",
	OpUngrabKey:             "UngrabKey",
	OpAllowEvents:           "AllowEvents",
	OpGrabServer:            "GrabServer",
	OpUngrabServer:          "UngrabServer",
	OpQueryPointer:          "QueryPointer",
	OpGetMotionEvents:       "GetMotionEvents",
	OpTranslateCoords:       "TranslateCoordinates",
	OpWarpPointer:           "WarpPointer",
	OpSetInputFocus:         "SetInputFocus",
	OpGetInputFocus:         "GetInputFocus",
	OpQueryKeymap:           "QueryKeymap",
	OpOpenFont:              "OpenFont",
	OpCloseFont:             "CloseFont",
	OpQueryFont:             "QueryFont",
	OpQueryTextExtents:      "QueryTextExtents",
	OpListFonts:             "ListFonts",
	OpListFontsWithInfo:     "ListFontsWithInfo",
	OpSetFontPath:           "SetFontPath",
	OpGetFontPath:           "GetFontPath",
	OpCreatePixmap:          "CreatePixmap",
	OpFreePixmap:            "FreePixmap",
	OpCreateGC:              "CreateGC",
	OpChangeGC:              "ChangeGC",
	OpCopyGC:                "CopyGC",
	OpSetDashes:             "SetDashes",
	OpSetClipRectangles:     "SetClipRectangles",
	OpFreeGC:                "FreeGC",
	OpClearArea:             "ClearArea",
	OpCopyArea:              "CopyArea",
	OpCopyPlane:             "CopyPlane",
	OpPolyPoint:             "PolyPoint",
	OpPolyLine:              "PolyLine",
	OpPolySegment:           "PolySegment",
	OpPolyRectangle:         "PolyRectangle",
	OpPolyArc:               "PolyArc",
	OpFillPoly:              "FillPoly",
	OpPolyFillRectangle:     "PolyFillRectangle",
	OpPolyFillArc:           "PolyFillArc",
	OpPutImage:              "PutImage",
	OpGetImage:              "GetImage",
	OpPolyText8:             "PolyText8",
	OpPolyText16:            "PolyText16",
	OpImageText8:            "ImageText8",
	OpImageText16:           "ImageText16",
	OpCreateColormap:        "CreateColormap",
	OpFreeColormap:          "FreeColormap",
	OpCopyColormapAndFree:   "CopyColormapAndFree",
	OpInstallColormap:       "InstallColormap",
	OpUninstallColormap:     "UninstallColormap",
	OpListInstalledColormap: "ListInstalledColormaps",
	OpAllocColor:            "AllocColor",
	OpAllocNamedColor:       "AllocNamedColor",
	OpAllocColorCells:       "AllocColorCells",
	OpAllocColorPlanes:      "AllocColorPlanes",
	OpFreeColors:            "FreeColors",
	OpStoreColors:           "StoreColors",
	OpStoreNamedColor:       "StoreNamedColor",
	OpQueryColors:           "QueryColors",
	OpLookupColor:           "LookupColor",
	OpCreateCursor:          "CreateCursor",
	OpCreateGlyphCursor:     "CreateGlyphCursor",
	OpFreeCursor:            "FreeCursor",
	OpRecolorCursor:         "RecolorCursor",
	OpQueryBestSize:         "QueryBestSize",
	OpQueryExtension:        "QueryExtension",
	OpListExtensions:        "ListExtensions",
	OpChangeKeyboardMapping: "ChangeKeyboardMapping",
	OpGetKeyboardMapping:    "GetKeyboardMapping",
	OpChangeKeyboardControl: "ChangeKeyboardControl",
	OpGetKeyboardControl:    "GetKeyboardControl",
	OpBell:                  "Bell",
	OpChangePointerControl:  "ChangePointerControl",
	OpGetPointerControl:     "GetPointerControl",
	OpSetScreenSaver:        "SetScreenSaver",
	OpGetScreenSaver:        "GetScreenSaver",
	OpChangeHosts:           "ChangeHosts",
	OpListHosts:             "ListHosts",
	OpSetAccessControl:      "SetAccessControl",
	OpSetCloseDownMode:      "SetCloseDownMode",
	OpKillClient:            "KillClient",
	OpRotateProperties:      "RotateProperties",
	OpForceScreenSaver:      "ForceScreenSaver",
	OpSetPointerMapping:     "SetPointerMapping",
	OpGetPointerMapping:     "GetPointerMapping",
	OpSetModifierMapping:    "SetModifierMapping",
	OpGetModifierMapping:    "GetModifierMapping",
	OpNoOperation:           "NoOperation",
}

var replyBearing = map[uint8]bool{
	OpGetWindowAttrs:        true,
	OpGetGeometry:           true,
	OpQueryTree:             true,
	OpInternAtom:            true,
	OpGetAtomName:           true,
	OpGetProperty:           true,
	OpListProperties:        true,
	OpGetSelectionOwner:     true,
	OpGrabPointer:           true,
	OpGrabKeyboard:          true,
	OpQueryPointer:          true,
	OpGetMotionEvents:       true,
	OpTranslateCoords:       true,
	OpGetInputFocus:         true,
	OpQueryKeymap:           true,
	OpQueryFont:             true,
	OpQueryTextExtents:      true,
	OpListFonts:             true,
	OpListFontsWithInfo:     true,
	OpGetFontPath:           true,
	OpGetImage:              true,
	OpListInstalledColormap: true,
	OpAllocColor:            true,
	OpAllocNamedColor:       true,
	OpAllocColorCells:       true,
	OpAllocColorPlanes:      true,
	OpQueryColors:           true,
	OpLookupColor:           true,
	OpQueryBestSize:         true,
	OpQueryExtension:        true,
	OpListExtensions:        true,
	OpGetKeyboardMapping:    true,
	OpGetKeyboardControl:    true,
	OpGetPointerControl:     true,
	OpGetScreenSaver:        true,
	OpListHosts:             true,
	OpSetPointerMapping:     true,
	OpGetPointerMapping:     true,
	OpSetModifierMapping:    true,
	OpGetModifierMapping:    true,
}

// RequestName returns the name of a core request opcode, UnusedOpcodeName for
// the 120..126 gap, and "Extension" for opcodes at or above OpExtensionBase.
func RequestName(op uint8) string {
	if op >= OpExtensionBase {
		return "Extension"
	}
	if n := requestNames[op]; n != "" {
		return n
	}
	return UnusedOpcodeName
}

// IsCoreRequest reports whether the opcode is a defined core request.
func IsCoreRequest(op uint8) bool {
	return op <= OpCoreMax && requestNames[op] != ""
}

// HasReply reports whether the core request opcode expects a reply.
func HasReply(op uint8) bool {
	return replyBearing[op]
}
