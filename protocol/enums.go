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

// Enumeration and flag name tables, indexed by encoded value (enums) or by
// bit position (flag tables). Several request fields share one table; the
// slices are immutable and aliased freely by the decoder entries.

// BitGravityNames names BITGRAVITY values.
var BitGravityNames = []string{
	"Forget", "NorthWest", "North", "NorthEast", "West", "Center",
	"East", "SouthWest", "South", "SouthEast", "Static",
}

// WinGravityNames names WINGRAVITY values.
var WinGravityNames = []string{
	"Unmap", "NorthWest", "North", "NorthEast", "West", "Center",
	"East", "SouthWest", "South", "SouthEast", "Static",
}

// BoolNames names BOOL values.
var BoolNames = []string{"False", "True"}

// SetOfEventFlagNames names the bits of SETofEVENT, SETofPOINTEREVENT and
// SETofDEVICEEVENT.
var SetOfEventFlagNames = []string{
	"KeyPress", "KeyRelease", "ButtonPress", "ButtonRelease",
	"EnterWindow", "LeaveWindow", "PointerMotion", "PointerMotionHint",
	"Button1Motion", "Button2Motion", "Button3Motion", "Button4Motion",
	"Button5Motion", "ButtonMotion", "KeymapState", "Exposure",
	"VisibilityChange", "StructureNotify", "ResizeRedirect",
	"SubstructureNotify", "SubstructureRedirect", "FocusChange",
	"PropertyChange", "ColormapChange", "OwnerGrabButton",
}

// SetOfKeyButMaskFlagNames names the bits of SETofKEYBUTMASK and SETofKEYMASK.
var SetOfKeyButMaskFlagNames = []string{
	"Shift", "Lock", "Control", "Mod1", "Mod2", "Mod3", "Mod4", "Mod5",
	"Button1", "Button2", "Button3", "Button4", "Button5",
}

// AnyModifierName names the 0x8000 sentinel of SETofKEYMASK.
const AnyModifierName = "AnyModifier"

// HostFamilyNames names HOST.family values (3 and 4 are unassigned).
var HostFamilyNames = []string{
	"Internet", "DECnet", "Chaos", "", "", "ServerInterpreted", "InternetV6",
}

// ImageByteOrderNames names the setup image-byte-order field.
var ImageByteOrderNames = []string{"LSBFirst", "MSBFirst"}

// BitmapFormatBitOrderNames names the setup bitmap-format-bit-order field.
var BitmapFormatBitOrderNames = []string{"LeastSignificant", "MostSignificant"}

// BackingStoresNames names SCREEN.backing-stores.
var BackingStoresNames = []string{"Never", "WhenMapped", "Always"}

// VisualClassNames names VISUALTYPE.class.
var VisualClassNames = []string{
	"StaticGray", "GrayScale", "StaticColor", "PseudoColor",
	"TrueColor", "DirectColor",
}

// WindowClassNames names CreateWindow/GetWindowAttributes class.
var WindowClassNames = []string{"CopyFromParent", "InputOutput", "InputOnly"}

// ZeroCopyFromParentNames covers fields whose zero value means CopyFromParent.
var ZeroCopyFromParentNames = []string{"CopyFromParent"}

// ZeroNoneNames covers the many fields whose zero value means None.
var ZeroNoneNames = []string{"None"}

// WindowAttributeMaskNames names the bits of the CreateWindow /
// ChangeWindowAttributes value-mask.
var WindowAttributeMaskNames = []string{
	"background-pixmap", "background-pixel", "border-pixmap", "border-pixel",
	"bit-gravity", "win-gravity", "backing-store", "backing-planes",
	"backing-pixel", "override-redirect", "save-under", "event-mask",
	"do-not-propagate-mask", "colormap", "cursor",
}

// BackgroundPixmapNames names the background-pixmap value slot.
var BackgroundPixmapNames = []string{"None", "ParentRelative"}

// BackingStoreNames names the backing-store value slot.
var BackingStoreNames = []string{"NotUseful", "WhenMapped", "Always"}

// MapStateNames names GetWindowAttributes reply map-state.
var MapStateNames = []string{"Unmapped", "Unviewable", "Viewable"}

// SaveSetModeNames names ChangeSaveSet.mode.
var SaveSetModeNames = []string{"Insert", "Delete"}

// WindowValueMaskNames names the bits of the ConfigureWindow value-mask and
// of the ConfigureRequest event value-mask.
var WindowValueMaskNames = []string{
	"x", "y", "width", "height", "border-width", "sibling", "stack-mode",
}

// StackModeNames names the stack-mode value slot.
var StackModeNames = []string{"Above", "Below", "TopIf", "BottomIf", "Opposite"}

// CirculateDirectionNames names CirculateWindow.direction.
var CirculateDirectionNames = []string{"RaiseLowest", "LowerHighest"}

// ChangePropertyModeNames names ChangeProperty.mode.
var ChangePropertyModeNames = []string{"Replace", "Prepend", "Append"}

// PropertyTypeNames names GetProperty.type's zero value.
var PropertyTypeNames = []string{"AnyPropertyType"}

// EventDestinationNames names SendEvent.destination sentinels.
var EventDestinationNames = []string{"PointerWindow", "InputFocus"}

// ButtonNames names BUTTON's zero value.
var ButtonNames = []string{"AnyButton"}

// GrabStatusNames names GrabPointer/GrabKeyboard reply status.
var GrabStatusNames = []string{
	"Success", "AlreadyGrabbed", "InvalidTime", "NotViewable", "Frozen",
}

// InputModeNames names pointer-mode/keyboard-mode fields.
var InputModeNames = []string{"Synchronous", "Asynchronous"}

// KeyNames names KEYCODE's zero value in grab requests.
var KeyNames = []string{"AnyKey"}

// AllowEventsModeNames names AllowEvents.mode.
var AllowEventsModeNames = []string{
	"AsyncPointer", "SyncPointer", "ReplayPointer", "AsyncKeyboard",
	"SyncKeyboard", "ReplayKeyboard", "AsyncBoth", "SyncBoth",
}

// TimeNames names TIMESTAMP's zero sentinel.
var TimeNames = []string{"CurrentTime"}

// InputFocusNames names SetInputFocus revert-to and focus sentinels.
var InputFocusNames = []string{"None", "PointerRoot", "Parent"}

// DrawDirectionNames names the font draw-direction fields.
var DrawDirectionNames = []string{"LeftToRight", "RightToLeft"}

// GCValueMaskNames names the bits of the CreateGC/ChangeGC/CopyGC value-mask.
var GCValueMaskNames = []string{
	"function", "plane-mask", "foreground", "background", "line-width",
	"line-style", "cap-style", "join-style", "fill-style", "fill-rule",
	"tile", "stipple", "tile-stipple-x-origin", "tile-stipple-y-origin",
	"font", "subwindow-mode", "graphics-exposures", "clip-x-origin",
	"clip-y-origin", "clip-mask", "dash-offset", "dashes", "arc-mode",
}

// GCFunctionNames names the GC function value slot.
var GCFunctionNames = []string{
	"Clear", "And", "AndReverse", "Copy", "AndInverted", "NoOp", "Xor",
	"Or", "Nor", "Equiv", "Invert", "OrReverse", "CopyInverted",
	"OrInverted", "Nand", "Set",
}

// GCLineStyleNames names the GC line-style value slot.
var GCLineStyleNames = []string{"Solid", "OnOffDash", "DoubleDash"}

// GCCapStyleNames names the GC cap-style value slot.
var GCCapStyleNames = []string{"NotLast", "Butt", "Round", "Projecting"}

// GCJoinStyleNames names the GC join-style value slot.
var GCJoinStyleNames = []string{"Miter", "Round", "Bevel"}

// GCFillStyleNames names the GC fill-style value slot.
var GCFillStyleNames = []string{"Solid", "Tiled", "Stippled", "OpaqueStippled"}

// GCFillRuleNames names the GC fill-rule value slot.
var GCFillRuleNames = []string{"EvenOdd", "Winding"}

// GCSubwindowModeNames names the GC subwindow-mode value slot.
var GCSubwindowModeNames = []string{"ClipByChildren", "IncludeInferiors"}

// GCArcModeNames names the GC arc-mode value slot.
var GCArcModeNames = []string{"Chord", "PieSlice"}

// ClipOrderingNames names SetClipRectangles.ordering.
var ClipOrderingNames = []string{"UnSorted", "YSorted", "YXSorted", "YXBanded"}

// PolyShapeNames names FillPoly.shape.
var PolyShapeNames = []string{"Complex", "Nonconvex", "Convex"}

// CoordinateModeNames names the coordinate-mode fields of the Poly requests.
var CoordinateModeNames = []string{"Origin", "Previous"}

// ImageFormatNames names PutImage/GetImage format.
var ImageFormatNames = []string{"Bitmap", "XYPixmap", "ZPixmap"}

// ColormapAllocNames names CreateColormap.alloc.
var ColormapAllocNames = []string{"None", "All"}

// DoRGBMaskNames names the bits of the StoreColors do-red/green/blue flags.
var DoRGBMaskNames = []string{"do-red", "do-green", "do-blue"}

// SizeClassNames names QueryBestSize.class.
var SizeClassNames = []string{"Cursor", "Tile", "Stipple"}

// KeyboardControlMaskNames names the bits of the ChangeKeyboardControl
// value-mask.
var KeyboardControlMaskNames = []string{
	"key-click-percent", "bell-percent", "bell-pitch", "bell-duration",
	"led", "led-mode", "key", "auto-repeat-mode",
}

// OffOnNames names led-mode/auto-repeat-mode values.
var OffOnNames = []string{"Off", "On"}

// ScreenSaverNames names SetScreenSaver prefer-blanking/allow-exposures.
var ScreenSaverNames = []string{"No", "Yes", "Default"}

// HostChangeModeNames names ChangeHosts.mode.
var HostChangeModeNames = []string{"Insert", "Delete"}

// HostStatusModeNames names the ListHosts reply mode.
var HostStatusModeNames = []string{"Disabled", "Enabled"}

// AccessModeNames names SetAccessControl.mode.
var AccessModeNames = []string{"Disable", "Enable"}

// CloseDownModeNames names SetCloseDownMode.mode.
var CloseDownModeNames = []string{"Destroy", "RetainPermanent", "RetainTemporary"}

// ClientResourceNames names KillClient.resource's zero value.
var ClientResourceNames = []string{"AllTemporary"}

// ForceScreenSaverModeNames names ForceScreenSaver.mode.
var ForceScreenSaverModeNames = []string{"Reset", "Activate"}

// MappingStatusNames names SetPointerMapping/SetModifierMapping reply status.
var MappingStatusNames = []string{"Success", "Busy", "Failed"}

// MotionHintNames names MotionNotify.detail.
var MotionHintNames = []string{"Normal", "Hint"}

// FocusModeNames names the mode field of the focus and crossing events.
var FocusModeNames = []string{"Normal", "Grab", "Ungrab", "WhileGrabbed"}

// FocusSameScreenMaskNames names the bits of the EnterNotify/LeaveNotify
// same-screen/focus byte.
var FocusSameScreenMaskNames = []string{"focus", "same-screen"}

// FocusDetailNames names the detail field of the focus and crossing events.
var FocusDetailNames = []string{
	"Ancestor", "Virtual", "Inferior", "Nonlinear", "NonlinearVirtual",
	"Pointer", "PointerRoot", "None",
}

// VisibilityStateNames names VisibilityNotify.state.
var VisibilityStateNames = []string{
	"Unobscured", "PartiallyObscured", "FullyObscured",
}

// CirculatePlaceNames names CirculateNotify/CirculateRequest place.
var CirculatePlaceNames = []string{"Top", "Bottom"}

// PropertyStateNames names PropertyNotify.state.
var PropertyStateNames = []string{"NewValue", "Deleted"}

// ColormapStateNames names ColormapNotify.state.
var ColormapStateNames = []string{"Uninstalled", "Installed"}

// MappingNotifyRequestNames names MappingNotify.request.
var MappingNotifyRequestNames = []string{"Modifier", "Keyboard", "Pointer"}
