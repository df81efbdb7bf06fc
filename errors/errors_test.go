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

package errors_test

import (
	"errors"
	"fmt"

	liberr "github.com/nabbar/x11trace/errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const testCode liberr.CodeError = liberr.MinAvailable + 10

var _ = Describe("Errors", func() {
	Context("code registration", func() {
		It("should return the registered message", func() {
			liberr.Register(testCode, func(liberr.CodeError) string {
				return "test failure"
			})
			Expect(testCode.Message()).To(Equal("test failure"))
			Expect(liberr.ExistInMapMessage(testCode)).To(BeTrue())
		})

		It("should fall back to the unknown message", func() {
			var unknown liberr.CodeError = liberr.MinAvailable + 999
			Expect(unknown.Message()).To(Equal(liberr.UnknownMessage))
		})

		It("should clamp out-of-range parses", func() {
			Expect(liberr.ParseCodeError(-1)).To(Equal(liberr.UnknownError))
			Expect(liberr.ParseCodeError(70000).Uint16()).To(Equal(uint16(65535)))
			Expect(liberr.ParseCodeError(42).Int()).To(Equal(42))
		})
	})

	Context("creation and chaining", func() {
		It("should carry code, message and trace", func() {
			err := liberr.New(testCode, "boom")
			Expect(err.Error()).To(Equal("boom"))
			Expect(err.IsCode(testCode)).To(BeTrue())
			Expect(err.GetCode()).To(Equal(testCode))
			Expect(err.GetTrace()).To(ContainSubstring(":"))
		})

		It("should chain parents and find codes through the chain", func() {
			base := errors.New("root cause")
			mid := liberr.New(testCode, "middle", base)
			top := liberr.New(liberr.MinAvailable+11, "top", mid)

			Expect(top.HasParent()).To(BeTrue())
			Expect(top.HasCode(testCode)).To(BeTrue())
			Expect(top.IsCode(testCode)).To(BeFalse())
			Expect(top.HasError(base)).To(BeTrue())
		})

		It("should flatten the chain with GetParent", func() {
			base := errors.New("root cause")
			top := liberr.New(testCode, "top", base)

			all := top.GetParent(true)
			Expect(all).To(HaveLen(2))
			Expect(all[0].Error()).To(Equal("top"))
			Expect(all[1].Error()).To(Equal("root cause"))
		})

		It("should render the whole chain with StringError", func() {
			base := errors.New("root cause")
			top := liberr.New(testCode, "top", base)
			Expect(top.StringError()).To(ContainSubstring("top"))
			Expect(top.StringError()).To(ContainSubstring("root cause"))
		})
	})

	Context("standard library compatibility", func() {
		It("should work with errors.Is through Unwrap", func() {
			base := errors.New("root cause")
			top := liberr.New(testCode, "top", base)
			Expect(errors.Is(top, base)).To(BeTrue())
		})

		It("should wrap with If and pass nil through", func() {
			Expect(liberr.If(testCode, nil)).To(BeNil())

			wrapped := liberr.If(testCode, fmt.Errorf("io busted"))
			Expect(wrapped).ToNot(BeNil())
			Expect(wrapped.HasCode(testCode)).To(BeTrue())
		})

		It("should probe codes with the package helper", func() {
			err := testCode.Error(nil)
			Expect(liberr.Is(err, testCode)).To(BeTrue())
			Expect(liberr.Is(nil, testCode)).To(BeFalse())
			Expect(liberr.Is(errors.New("plain"), testCode)).To(BeFalse())
		})
	})

	Context("walking", func() {
		It("should visit the error and every parent", func() {
			base := errors.New("root cause")
			top := liberr.New(testCode, "top", base)

			var seen []string
			top.Map(func(e error) bool {
				seen = append(seen, e.Error())
				return true
			})
			Expect(seen).To(Equal([]string{"top", "root cause"}))
		})
	})
})
