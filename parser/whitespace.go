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
	"strings"
)

// whitespace carries the rendering discipline through nested records: the
// member separator, the per-member and enclosure indents, and the equals
// token. A single-line context overrides multiline for dense arrays such as
// key bit-vectors.
type whitespace struct {
	multi  bool
	equals string
	indent string // enclosure indent of the current nesting level
	step   string // one extra level of member indent
}

func newWhitespace(multi bool) whitespace {
	return whitespace{
		multi:  multi,
		equals: "=",
		step:   "  ",
	}
}

// nest returns the context of one deeper nesting level.
func (w whitespace) nest() whitespace {
	n := w
	n.indent = w.indent + w.step
	return n
}

// singleLine returns a copy forcing one-line rendering.
func (w whitespace) singleLine() whitespace {
	n := w
	n.multi = false
	return n
}

// member renders one name/value pair.
func (w whitespace) member(name, value string) string {
	return name + w.equals + value
}

// record encloses the given members in braces per the context discipline.
func (w whitespace) record(members []string) string {
	if len(members) == 0 {
		return "{}"
	}

	if !w.multi {
		return "{ " + strings.Join(members, ", ") + " }"
	}

	mi := w.indent + w.step
	return "{\n" + mi + strings.Join(members, ",\n"+mi) + "\n" + w.indent + "}"
}

// list encloses rendered elements in brackets per the context discipline.
func (w whitespace) list(elems []string) string {
	if len(elems) == 0 {
		return "[]"
	}

	if !w.multi {
		return "[ " + strings.Join(elems, ", ") + " ]"
	}

	mi := w.indent + w.step
	return "[\n" + mi + strings.Join(elems, ",\n"+mi) + "\n" + w.indent + "]"
}
