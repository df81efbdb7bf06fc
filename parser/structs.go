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
	"strings"
	"unicode/utf16"

	libprt "github.com/nabbar/x11trace/protocol"
	libses "github.com/nabbar/x11trace/session"
)

// fmtList renders n elements produced by the element callback.
func fmtList(n int, ws whitespace, elem func(i int) string) string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, elem(i))
	}
	return ws.list(out)
}

func (x *prs) fmtPoint(r *rdr, ws whitespace) string {
	return ws.record([]string{
		ws.member("x", decI(int64(r.I16()))),
		ws.member("y", decI(int64(r.I16()))),
	})
}

func (x *prs) fmtRectangle(r *rdr, ws whitespace) string {
	return ws.record([]string{
		ws.member("x", decI(int64(r.I16()))),
		ws.member("y", decI(int64(r.I16()))),
		ws.member("width", dec(uint64(r.U16()))),
		ws.member("height", dec(uint64(r.U16()))),
	})
}

func (x *prs) fmtArc(r *rdr, ws whitespace) string {
	return ws.record([]string{
		ws.member("x", decI(int64(r.I16()))),
		ws.member("y", decI(int64(r.I16()))),
		ws.member("width", dec(uint64(r.U16()))),
		ws.member("height", dec(uint64(r.U16()))),
		ws.member("angle1", decI(int64(r.I16()))),
		ws.member("angle2", decI(int64(r.I16()))),
	})
}

func (x *prs) fmtSegment(r *rdr, ws whitespace) string {
	return ws.record([]string{
		ws.member("x1", decI(int64(r.I16()))),
		ws.member("y1", decI(int64(r.I16()))),
		ws.member("x2", decI(int64(r.I16()))),
		ws.member("y2", decI(int64(r.I16()))),
	})
}

// fmtStr consumes one STR (length byte plus bytes, unpadded).
func (x *prs) fmtStr(r *rdr, ws whitespace) string {
	n := int(r.U8())
	s := r.Str(n)

	if x.opt().Verbose {
		return ws.record([]string{
			ws.member("n", dec(uint64(n))),
			ws.member("name", strconv.Quote(s)),
		})
	}

	return strconv.Quote(s)
}

// fmtHost consumes one HOST (family, length, padded address).
func (x *prs) fmtHost(r *rdr, ws whitespace) string {
	fam := r.U8()
	r.Skip(1)
	n := int(r.U16())
	adr := r.Bytes(n)
	r.SkipPad(n)

	members := []string{
		ws.member("family", x.fmtEnum(uint64(fam), 1, libprt.HostFamilyNames)),
	}
	if x.opt().Verbose {
		members = append(members, ws.member("n", dec(uint64(n))))
	}
	members = append(members, ws.member("address", x.fmtAddress(fam, adr)))

	return ws.record(members)
}

func (x *prs) fmtAddress(family uint8, adr []byte) string {
	switch family {
	case 0: // Internet
		if len(adr) == 4 {
			var sb strings.Builder
			for i, v := range adr {
				if i > 0 {
					sb.WriteByte('.')
				}
				sb.WriteString(dec(uint64(v)))
			}
			return sb.String()
		}
	case 5: // ServerInterpreted
		return strconv.Quote(string(adr))
	}
	return x.fmtBytes(adr)
}

// fmtString16 renders a CHAR2B string; code units map through UTF-16 so that
// the common Latin-1 subset prints as text.
func fmtString16(units []uint16) string {
	return strconv.Quote(string(utf16.Decode(units)))
}

func (x *prs) fmtTimecoord(r *rdr, ws whitespace) string {
	return ws.record([]string{
		ws.member("time", x.fmtTimestamp(r.U32())),
		ws.member("x", decI(int64(r.I16()))),
		ws.member("y", decI(int64(r.I16()))),
	})
}

func (x *prs) fmtFontProp(c libses.Connection, r *rdr, ws whitespace) string {
	return ws.record([]string{
		ws.member("name", x.fmtAtom(c, r.U32())),
		ws.member("value", hexPad(uint64(r.U32()), 4)),
	})
}

func (x *prs) fmtCharInfo(r *rdr, ws whitespace) string {
	return ws.record([]string{
		ws.member("left-side-bearing", decI(int64(r.I16()))),
		ws.member("right-side-bearing", decI(int64(r.I16()))),
		ws.member("character-width", decI(int64(r.I16()))),
		ws.member("ascent", decI(int64(r.I16()))),
		ws.member("descent", decI(int64(r.I16()))),
		ws.member("attributes", hexPad(uint64(r.U16()), 2)),
	})
}

func (x *prs) fmtColorItem(r *rdr, ws whitespace) string {
	pixel := r.U32()
	red := r.U16()
	green := r.U16()
	blue := r.U16()
	do := r.U8()
	r.Skip(1)

	return ws.record([]string{
		ws.member("pixel", hexPad(uint64(pixel), 4)),
		ws.member("red", dec(uint64(red))),
		ws.member("green", dec(uint64(green))),
		ws.member("blue", dec(uint64(blue))),
		ws.member("do", x.fmtMask(uint64(do), 1, libprt.DoRGBMaskNames)),
	})
}

func (x *prs) fmtRGB(r *rdr, ws whitespace) string {
	out := ws.record([]string{
		ws.member("red", dec(uint64(r.U16()))),
		ws.member("green", dec(uint64(r.U16()))),
		ws.member("blue", dec(uint64(r.U16()))),
	})
	r.Skip(2)
	return out
}
