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
	"fmt"
	"strconv"
	"strings"
	"time"

	libprt "github.com/nabbar/x11trace/protocol"
	libses "github.com/nabbar/x11trace/session"
)

// hexPad renders v as a 0x-prefixed hex literal zero-padded to the type's
// width in bytes.
func hexPad(v uint64, width int) string {
	return fmt.Sprintf("%#0*x", width*2, v)
}

func dec(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func decI(v int64) string {
	return strconv.FormatInt(v, 10)
}

// fmtEnum renders a value covered by an enum-name range: the name alone, or
// "0xNN(Name)" in verbose mode. Values outside the range render decimal.
func (x *prs) fmtEnum(v uint64, width int, names []string) string {
	if int(v) < len(names) && names[v] != "" {
		if x.opt().Verbose {
			return hexPad(v, width) + "(" + names[v] + ")"
		}
		return names[v]
	}
	return dec(v)
}

// fmtCard renders an unsigned scalar, preferring an enum name when the value
// lies in the given range.
func (x *prs) fmtCard(v uint64, width int, names []string) string {
	if len(names) > 0 && int(v) < len(names) && names[v] != "" {
		return x.fmtEnum(v, width, names)
	}
	return dec(v)
}

// fmtXID renders a resource id as a padded hex literal, preferring an enum
// name (None, CopyFromParent, ...) when the value lies in the given range.
func (x *prs) fmtXID(v uint32, names []string) string {
	if len(names) > 0 && int(v) < len(names) && names[v] != "" {
		return x.fmtEnum(uint64(v), 4, names)
	}
	return hexPad(uint64(v), 4)
}

// fmtMask renders a bitmask as pipe-separated flag names; verbose mode also
// prints the hex literal. An empty mask always renders as hex.
func (x *prs) fmtMask(v uint64, width int, flags []string) string {
	var set []string

	for i := 0; i < len(flags); i++ {
		if v&(1<<uint(i)) != 0 {
			set = append(set, flags[i])
		}
	}

	if len(set) == 0 {
		return hexPad(v, width)
	}

	j := strings.Join(set, "|")
	if x.opt().Verbose {
		return hexPad(v, width) + "(" + j + ")"
	}

	return j
}

// fmtKeyMask renders a SETofKEYMASK, where 0x8000 is the AnyModifier
// sentinel.
func (x *prs) fmtKeyMask(v uint16) string {
	if v == libprt.AnyModifier {
		if x.opt().Verbose {
			return hexPad(uint64(v), 2) + "(" + libprt.AnyModifierName + ")"
		}
		return libprt.AnyModifierName
	}
	return x.fmtMask(uint64(v), 2, libprt.SetOfKeyButMaskFlagNames)
}

// fmtTimestamp renders a TIMESTAMP as a hex literal; zero renders as the
// CurrentTime sentinel, and a configured relative-time anchor appends the
// RFC 3339 UTC wall clock.
func (x *prs) fmtTimestamp(v uint32) string {
	o := x.opt()
	h := hexPad(uint64(v), 4)

	if v == 0 {
		if o.Verbose {
			return h + "(" + libprt.TimeNames[0] + ")"
		}
		return libprt.TimeNames[0]
	}

	if o.RelativeTimestamps {
		const ticksPerSec = 1000
		sec := (int64(v)-int64(o.RefTimestamp))/ticksPerSec + o.RefUnixTime
		return h + "(" + time.Unix(sec, 0).UTC().Format("2006-01-02T15:04:05Z") + ")"
	}

	return h
}

// fmtAtom renders an ATOM, preferring the session's interned table, then the
// predefined table; unknown atoms render as unrecognized.
func (x *prs) fmtAtom(c libses.Connection, v uint32) string {
	h := hexPad(uint64(v), 4)

	name, ok := c.AtomName(v)
	if !ok {
		return h + "(unrecognized atom)"
	}

	q := strconv.Quote(name)
	if x.opt().Verbose {
		return h + "(" + q + ")"
	}

	return q
}

// fmtAtomEnum is fmtAtom with a zero-value sentinel range (None,
// AnyPropertyType).
func (x *prs) fmtAtomEnum(c libses.Connection, v uint32, names []string) string {
	if int(v) < len(names) && names[v] != "" {
		return x.fmtEnum(uint64(v), 4, names)
	}
	return x.fmtAtom(c, v)
}

func (x *prs) fmtBool(v uint8) string {
	return x.fmtEnum(uint64(v), 1, libprt.BoolNames)
}

// fmtKeysym renders a KEYSYM, always hex.
func (x *prs) fmtKeysym(v uint32) string {
	return hexPad(uint64(v), 4)
}

// fmtOpcodeName renders a major opcode as "Name(nn)".
func fmtOpcodeName(op uint8) string {
	return libprt.RequestName(op) + "(" + dec(uint64(op)) + ")"
}

// fmtBytes renders an opaque byte tail as a count, or as a hex dump of the
// leading bytes in verbose mode.
func (x *prs) fmtBytes(b []byte) string {
	if !x.opt().Verbose || len(b) == 0 {
		return "<" + dec(uint64(len(b))) + " bytes>"
	}

	const maxDump = 16
	n := len(b)
	if n > maxDump {
		n = maxDump
	}

	var sb strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", b[i])
	}
	if n < len(b) {
		sb.WriteString(" ...")
	}

	return "<" + dec(uint64(len(b))) + " bytes: " + sb.String() + ">"
}

// fmtBitVector renders a key bit-vector as a hex byte string, always on one
// line.
func fmtBitVector(b []byte) string {
	var sb strings.Builder
	sb.WriteString("0x")
	for _, v := range b {
		fmt.Fprintf(&sb, "%02x", v)
	}
	return sb.String()
}
