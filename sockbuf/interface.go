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

// Package sockbuf provides the per-direction relay buffer of a proxied
// session: a growable contiguous byte store with three cursors (read, parsed,
// written) and a declared next-message size, so that a protocol parser can
// frame complete messages while partial reads and partial writes stay
// transparent to both peers.
//
// Cursor ordering holds at all times:
//
//	0 <= written <= parsed <= read <= capacity
//
// Bytes enter through Fill (from an io.Reader) or Load (in-process), become
// relayable when the parser declares and marks a message, and leave through
// Drain (to an io.Writer) or Unload. When everything read has been written
// the buffer resets to empty, keeping its storage.
package sockbuf

import (
	"io"
)

const (
	// BlockSize is the allocation quantum of the buffer storage.
	BlockSize = 2048
)

// Buffer is the relay buffer of one traffic direction.
type Buffer interface {
	// Fill performs one read from r into the free region, growing the
	// storage by one block first when no capacity remains. An io.EOF from r
	// is reported as ErrorPeerClosed; a read deadline expiry is not an
	// error. A zero-byte read with nil error returns (0, nil).
	Fill(r io.Reader) (int, error)

	// FillN is Fill bounded to at most n bytes for this call.
	FillN(r io.Reader, n int) (int, error)

	// Drain writes every parsed-but-unwritten byte to w, advancing the
	// written cursor by the amount accepted. Partial writes are retained
	// across calls. When all read bytes have been written the buffer is
	// cleared.
	Drain(w io.Writer) (int, error)

	// DrainN is Drain bounded to at most n bytes.
	DrainN(w io.Writer, n int) (int, error)

	// Load appends p to the buffer as if it had been read from a socket.
	Load(p []byte) int

	// Unload discards n unwritten bytes from the front of the buffer and
	// returns them. The returned slice aliases internal storage and is only
	// valid until the next mutation.
	Unload(n int) []byte

	// SetMessageSize declares the total wire size of the next unparsed
	// message. Declaring while a size is already set, or declaring a zero
	// size, is an invariant violation.
	SetMessageSize(n int) error

	// MessageSizeSet reports whether a next-message size is declared.
	MessageSizeSet() bool

	// MessageSize returns the declared next-message size, or 0 when unset.
	MessageSize() int

	// MarkMessageParsed commits the declared message: the parsed cursor
	// advances by the declared size and the size slot clears. Requires a
	// declared size and at least that many unparsed bytes.
	MarkMessageParsed() error

	// Size returns the number of bytes read but not yet written.
	Size() int

	// Parsed returns the number of bytes marked parsed but not yet written.
	Parsed() int

	// Unparsed returns the number of bytes read but not yet parsed.
	Unparsed() int

	// Capacity returns the bytes that can still be read without a resize.
	Capacity() int

	// Data returns the unwritten region of the buffer. The slice aliases
	// internal storage.
	Data() []byte

	// Peek returns the unparsed region of the buffer. The slice aliases
	// internal storage.
	Peek() []byte

	// Empty reports whether nothing has been read since the last clear.
	Empty() bool

	// AllParsed reports whether every unwritten byte is marked parsed.
	AllParsed() bool

	// ReadReady reports whether the buffer wants more input: it is empty or
	// holds an incomplete message.
	ReadReady() bool

	// WriteReady reports whether parsed bytes are waiting to be written.
	WriteReady() bool

	// IncompleteMessage reports whether unparsed bytes do not yet form a
	// complete message (no declared size, or fewer unparsed bytes than the
	// declared size).
	IncompleteMessage() bool

	// Clear resets all cursors to zero, retaining the storage.
	Clear()
}

// New returns an empty Buffer with one block of storage.
func New() Buffer {
	return &buf{
		b: make([]byte, BlockSize),
	}
}
