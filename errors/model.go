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

package errors

import (
	"runtime"
	"strconv"
	"strings"
)

type ers struct {
	c uint16
	e string
	p []Error
	t string
}

func getFrame() string {
	if _, f, l, ok := runtime.Caller(2); ok {
		return f + ":" + strconv.Itoa(l)
	}
	return ""
}

func (e *ers) Error() string {
	return e.e
}

func (e *ers) GetTrace() string {
	return e.t
}

func (e *ers) IsCode(code CodeError) bool {
	return e.c == code.Uint16()
}

func (e *ers) HasCode(code CodeError) bool {
	if e.IsCode(code) {
		return true
	}

	for _, p := range e.p {
		if p.HasCode(code) {
			return true
		}
	}

	return false
}

func (e *ers) GetCode() CodeError {
	return CodeError(e.c)
}

func (e *ers) IsError(err error) bool {
	if err == nil {
		return false
	}
	return strings.EqualFold(e.e, err.Error())
}

func (e *ers) HasError(err error) bool {
	if e.IsError(err) {
		return true
	}

	for _, p := range e.p {
		if p.HasError(err) {
			return true
		}
	}

	return false
}

func (e *ers) Is(err error) bool {
	if err == nil {
		return false
	}

	if er, ok := err.(*ers); ok {
		if er.c > 0 && e.c > 0 {
			return er.c == e.c
		}
		return e.IsError(er)
	}

	return e.IsError(err)
}

func (e *ers) Add(parent ...error) {
	for _, v := range parent {
		if v == nil {
			continue
		}

		if er, ok := v.(Error); ok {
			e.p = append(e.p, er)
		} else {
			e.p = append(e.p, &ers{
				c: 0,
				e: v.Error(),
			})
		}
	}
}

func (e *ers) SetParent(parent ...error) {
	e.p = make([]Error, 0)
	e.Add(parent...)
}

func (e *ers) HasParent() bool {
	return len(e.p) > 0
}

func (e *ers) GetParent(withMainError bool) []error {
	var res = make([]error, 0)

	if withMainError {
		res = append(res, &ers{
			c: e.c,
			e: e.e,
			t: e.t,
		})
	}

	for _, er := range e.p {
		res = append(res, er.GetParent(true)...)
	}

	return res
}

func (e *ers) Map(fct FuncMap) bool {
	if !fct(e) {
		return false
	}

	for _, er := range e.p {
		if !er.Map(fct) {
			return false
		}
	}

	return true
}

func (e *ers) Unwrap() []error {
	var res = make([]error, 0, len(e.p))
	for _, p := range e.p {
		res = append(res, p)
	}
	return res
}

func (e *ers) StringError() string {
	var buf = strings.Builder{}

	buf.WriteString(e.e)

	for _, p := range e.p {
		for _, l := range strings.Split(p.StringError(), "\n") {
			buf.WriteString("\n  ")
			buf.WriteString(l)
		}
	}

	return buf.String()
}
