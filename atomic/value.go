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

package atomic

import (
	"sync/atomic"
)

type val[T any] struct {
	av *atomic.Value
	dl *atomic.Value
}

// Cast attempts to convert any value to the target type M. Returns the zero
// value of M and false when src is nil or of another type.
func Cast[M any](src any) (model M, casted bool) {
	if src == nil {
		return model, false
	} else if v, k := src.(M); !k {
		return model, false
	} else {
		return v, true
	}
}

func (o *val[T]) SetDefaultLoad(def T) {
	o.dl.Store(def)
}

func (o *val[T]) getDefaultLoad() T {
	if v, k := Cast[T](o.dl.Load()); k {
		return v
	}
	var tmp T
	return tmp
}

func (o *val[T]) Load() (val T) {
	if v, k := Cast[T](o.av.Load()); !k {
		return o.getDefaultLoad()
	} else {
		return v
	}
}

func (o *val[T]) Store(val T) {
	o.av.Store(val)
}

func (o *val[T]) Swap(new T) (old T) {
	if v, k := Cast[T](o.av.Swap(new)); !k {
		return o.getDefaultLoad()
	} else {
		return v
	}
}

func (o *val[T]) CompareAndSwap(old, new T) (swapped bool) {
	return o.av.CompareAndSwap(old, new)
}

type cnt struct {
	u atomic.Uint64
}

func (o *cnt) Next() uint64 {
	return o.u.Add(1)
}

func (o *cnt) Current() uint64 {
	return o.u.Load()
}
