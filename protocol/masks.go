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

// Reserved "unused but must be zero" bit masks of the SETof bitfield types,
// and the unused top bits shared by ATOM and every XID-valued type.
const (
	ZeroBitsSetOfEvent        uint32 = 0xFE000000
	ZeroBitsSetOfPointerEvent uint32 = 0xFFFF8003
	ZeroBitsSetOfDeviceEvent  uint32 = 0xFFFFC0B0
	ZeroBitsSetOfKeyButMask   uint16 = 0xE000
	ZeroBitsSetOfKeyMask      uint16 = 0xFF00

	// AnyModifier is the one legal value of SETofKEYMASK that carries a
	// reserved bit.
	AnyModifier uint16 = 0x8000

	// ZeroBitsXID covers the top three bits that must be zero in ATOM and
	// every resource id.
	ZeroBitsXID uint32 = 0xE0000000
)

// Wire framing constants.
const (
	// SetupHeaderSize is the fixed prefix of the client initiation message.
	SetupHeaderSize = 12
	// SetupResponseHeaderSize is the fixed prefix of every server setup
	// response variant.
	SetupResponseHeaderSize = 8
	// RequestHeaderSize is the generic 4-byte request header.
	RequestHeaderSize = 4
	// BigRequestLengthSize is the 32-bit length that follows a zero 16-bit
	// length field when BIG-REQUESTS is active.
	BigRequestLengthSize = 4
	// RequestLengthUnit converts request length fields to bytes.
	RequestLengthUnit = 4

	// ByteOrderMSBFirst and ByteOrderLSBFirst are the legal values of the
	// initiation byte-order byte.
	ByteOrderMSBFirst uint8 = 0x42
	ByteOrderLSBFirst uint8 = 0x6C

	// Setup response status bytes.
	SetupFailed       uint8 = 0
	SetupSuccess      uint8 = 1
	SetupAuthenticate uint8 = 2
)

// BigRequestsName is the extension whose activation changes core framing.
const BigRequestsName = "BIG-REQUESTS"

// Pad returns the number of padding bytes that align n to a 4-byte boundary.
func Pad(n int) int {
	return (4 - (n & 0x3)) & 0x3
}

// Padded returns n rounded up to a 4-byte boundary.
func Padded(n int) int {
	return n + Pad(n)
}
