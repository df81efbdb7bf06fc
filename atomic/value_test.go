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

package atomic_test

import (
	"sync"

	. "github.com/nabbar/x11trace/atomic"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("atomic", func() {
	Describe("Value[T]", func() {
		It("should store and load typed values", func() {
			v := NewValue[int]()
			v.Store(42)
			Expect(v.Load()).To(Equal(42))
		})

		It("should return the default load value before any store", func() {
			v := NewValueDefault[string]("fallback")
			Expect(v.Load()).To(Equal("fallback"))

			v.Store("real")
			Expect(v.Load()).To(Equal("real"))
		})

		It("should swap and return the previous value", func() {
			v := NewValue[int]()
			v.Store(10)
			Expect(v.Swap(20)).To(Equal(10))
			Expect(v.Load()).To(Equal(20))
		})

		It("should compare and swap on match only", func() {
			v := NewValue[int]()
			v.Store(100)
			Expect(v.CompareAndSwap(100, 200)).To(BeTrue())
			Expect(v.CompareAndSwap(100, 300)).To(BeFalse())
			Expect(v.Load()).To(Equal(200))
		})

		It("should hold struct values", func() {
			type knob struct {
				Verbose bool
				Level   int
			}
			v := NewValue[knob]()
			v.Store(knob{Verbose: true, Level: 3})
			Expect(v.Load()).To(Equal(knob{Verbose: true, Level: 3}))
		})
	})

	Describe("Counter", func() {
		It("should start at one and increase monotonically", func() {
			c := NewCounter()
			Expect(c.Current()).To(Equal(uint64(0)))
			Expect(c.Next()).To(Equal(uint64(1)))
			Expect(c.Next()).To(Equal(uint64(2)))
			Expect(c.Current()).To(Equal(uint64(2)))
		})

		It("should hand out unique values concurrently", func() {
			c := NewCounter()

			var wg sync.WaitGroup
			seen := make([]uint64, 100)
			for i := 0; i < 100; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					seen[i] = c.Next()
				}(i)
			}
			wg.Wait()

			uniq := make(map[uint64]bool, 100)
			for _, v := range seen {
				uniq[v] = true
			}
			Expect(uniq).To(HaveLen(100))
			Expect(c.Current()).To(Equal(uint64(100)))
		})
	})

	Describe("Cast", func() {
		It("should cast matching types", func() {
			v, ok := Cast[int](any(7))
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal(7))
		})

		It("should reject nil and mismatched types", func() {
			_, ok := Cast[int](nil)
			Expect(ok).To(BeFalse())
			_, ok = Cast[int]("nope")
			Expect(ok).To(BeFalse())
		})
	})
})
