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

// PredefinedAtomMax is the highest predefined atom id (Appendix B,
// Predefined Atoms).
const PredefinedAtomMax uint32 = 68

var predefinedAtoms = [PredefinedAtomMax + 1]string{
	1:  "PRIMARY",
	2:  "SECONDARY",
	3:  "ARC",
	4:  "ATOM",
	5:  "BITMAP",
	6:  "CARDINAL",
	7:  "COLORMAP",
	8:  "CURSOR",
	9:  "CUT_BUFFER0",
	10: "CUT_BUFFER1",
	11: "CUT_BUFFER2",
	12: "CUT_BUFFER3",
	13: "CUT_BUFFER4",
	14: "CUT_BUFFER5",
	15: "CUT_BUFFER6",
	16: "CUT_BUFFER7",
	17: "DRAWABLE",
	18: "FONT",
	19: "INTEGER",
	20: "PIXMAP",
	21: "POINT",
	22: "RECTANGLE",
	23: "RESOURCE_MANAGER",
	24: "RGB_COLOR_MAP",
	25: "RGB_BEST_MAP",
	26: "RGB_BLUE_MAP",
	27: "RGB_DEFAULT_MAP",
	28: "RGB_GRAY_MAP",
	29: "RGB_GREEN_MAP",
	30: "RGB_RED_MAP",
	31: "STRING",
	32: "VISUALID",
	33: "WINDOW",
	34: "WM_COMMAND",
	35: "WM_HINTS",
	36: "WM_CLIENT_MACHINE",
	37: "WM_ICON_NAME",
	38: "WM_ICON_SIZE",
	39: "WM_NAME",
	40: "WM_NORMAL_HINTS",
	41: "WM_SIZE_HINTS",
	42: "WM_ZOOM_HINTS",
	43: "MIN_SPACE",
	44: "NORM_SPACE",
	45: "MAX_SPACE",
	46: "END_SPACE",
	47: "SUPERSCRIPT_X",
	48: "SUPERSCRIPT_Y",
	49: "SUBSCRIPT_X",
	50: "SUBSCRIPT_Y",
	51: "UNDERLINE_POSITION",
	52: "UNDERLINE_THICKNESS",
	53: "STRIKEOUT_ASCENT",
	54: "STRIKEOUT_DESCENT",
	55: "ITALIC_ANGLE",
	56: "X_HEIGHT",
	57: "QUAD_WIDTH",
	58: "WEIGHT",
	59: "POINT_SIZE",
	60: "RESOLUTION",
	61: "COPYRIGHT",
	62: "NOTICE",
	63: "FONT_NAME",
	64: "FAMILY_NAME",
	65: "FULL_NAME",
	66: "CAP_HEIGHT",
	67: "WM_CLASS",
	68: "WM_TRANSIENT_FOR",
}

// PredefinedAtomName returns the name of a predefined atom id and whether the
// id lies in the predefined range 1..68.
func PredefinedAtomName(id uint32) (string, bool) {
	if id == 0 || id > PredefinedAtomMax {
		return "", false
	}
	return predefinedAtoms[id], true
}
