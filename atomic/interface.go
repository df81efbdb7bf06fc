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

// Package atomic provides type-safe lock-free containers built on sync/atomic:
// a generic Value[T] with default-value support and a monotonic Counter used
// for process-wide id assignment.
package atomic

import (
	"sync/atomic"
)

// Value is a type-safe atomic holder for a value of type T.
type Value[T any] interface {
	// SetDefaultLoad sets the value returned by Load while nothing has been
	// stored yet.
	SetDefaultLoad(def T)

	// Load returns the stored value, or the default load value when nothing
	// has been stored.
	Load() (val T)
	// Store replaces the stored value.
	Store(val T)
	// Swap replaces the stored value and returns the previous one.
	Swap(new T) (old T)
	// CompareAndSwap replaces the stored value with new when the current
	// value equals old.
	CompareAndSwap(old, new T) (swapped bool)
}

// Counter is a monotonically increasing uint64.
type Counter interface {
	// Next increments the counter and returns the new value. The first call
	// returns 1.
	Next() uint64
	// Current returns the last value handed out.
	Current() uint64
}

// NewValue returns a new empty Value[T].
func NewValue[T any]() Value[T] {
	return &val[T]{
		av: new(atomic.Value),
		dl: new(atomic.Value),
	}
}

// NewValueDefault returns a new Value[T] preloaded with the given default
// load value.
func NewValueDefault[T any](defLoad T) Value[T] {
	v := NewValue[T]()
	v.SetDefaultLoad(defLoad)
	return v
}

// NewCounter returns a new Counter starting at zero.
func NewCounter() Counter {
	return &cnt{}
}
