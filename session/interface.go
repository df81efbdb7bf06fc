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

// Package session carries the per-session state of the proxy: the Connection
// record (identity, sequence shadow, request log, byte order, extension
// flags, interned atoms), the dual-direction pump relaying bytes between the
// client and the display through sockbuf relay buffers, and the accept-loop
// server that pairs each incoming client with a fresh upstream connection.
//
// Sessions are independent: a failure tears down its own session and never
// propagates to any other.
package session

import (
	"context"
	"encoding/binary"
	"net"
	"time"

	libbuf "github.com/nabbar/x11trace/sockbuf"
)

// FuncError receives session-scoped failures; id is the connection id, or 0
// for server-scoped failures.
type FuncError func(id uint64, err error)

// FuncInfo receives session lifecycle notices.
type FuncInfo func(id uint64, msg string)

// Analyzer is the protocol decoder driven by the pump. Each call operates on
// the unparsed region of the buffer and either consumes exactly one complete
// message (advancing the parsed cursor and returning true) or consumes
// nothing and returns false; short data is not an error.
type Analyzer interface {
	// ParseClient frames and decodes one client-to-server message.
	ParseClient(c Connection, b libbuf.Buffer) (bool, error)
	// ParseServer frames and decodes one server-to-client message. The
	// analyzer may rewrite bytes of the framed message in place before they
	// are relayed.
	ParseServer(c Connection, b libbuf.Buffer) (bool, error)
}

// Connection is the shared state of one proxied client<->server session.
// Both pump directions touch it; implementations are safe for concurrent
// use.
type Connection interface {
	// ID returns the process-wide unique connection id.
	ID() uint64
	// OpenedAt returns the connection creation time.
	OpenedAt() time.Time

	// ByteOrder returns the integer byte order declared by the client's
	// initiation message, defaulting to little endian until latched.
	ByteOrder() binary.ByteOrder
	// SetByteOrder latches the declared byte order.
	SetByteOrder(bo binary.ByteOrder)
	// ClientSetupDone reports whether the client initiation message has been
	// parsed.
	ClientSetupDone() bool
	// SetClientSetupDone marks the client initiation as parsed.
	SetClientSetupDone()
	// ServerSetupDone reports whether the server accepted the connection,
	// moving the server direction into the message-stream phase.
	ServerSetupDone() bool
	// SetServerSetupDone marks the server setup as accepted.
	SetServerSetupDone()

	// RegisterRequest appends the request's major opcode to the request log
	// and returns the assigned sequence number (the first request of a
	// connection is 1).
	RegisterRequest(opcode uint8) (uint16, error)
	// LookupRequest returns the major opcode of the request whose 16-bit
	// wire sequence number is seq, resolving wraparound against the most
	// recent matching request.
	LookupRequest(seq uint16) (uint8, error)
	// Sequence returns the sequence number of the last registered request.
	Sequence() uint16
	// Requests returns the count of registered requests.
	Requests() uint64

	// BigRequests reports whether the BIG-REQUESTS length expansion is
	// active on this connection.
	BigRequests() bool
	// SetBigRequestsOpcode records the extension major opcode learned from
	// a QueryExtension reply; seeing that opcode as a request activates the
	// expansion.
	SetBigRequestsOpcode(op uint8)
	// BigRequestsOpcode returns the recorded opcode, or 0 when unknown.
	BigRequestsOpcode() uint8
	// ActivateBigRequests turns the length expansion on.
	ActivateBigRequests()

	// StashAtomName holds the name carried by an InternAtom request until
	// the matching reply arrives.
	StashAtomName(seq uint16, name string)
	// ResolveAtom binds the stashed name for seq to the atom id returned by
	// the server and drops the stash. A missing stash is an invariant
	// violation.
	ResolveAtom(seq uint16, atom uint32) error
	// DropStash discards the stash for seq, if any.
	DropStash(seq uint16)

	// StashExtensionName holds the name carried by a QueryExtension request
	// until the matching reply arrives.
	StashExtensionName(seq uint16, name string)
	// TakeExtensionName returns and drops the stashed extension name.
	TakeExtensionName(seq uint16) (string, bool)

	// AtomName resolves an atom id against the interned table first, then
	// the predefined table.
	AtomName(atom uint32) (string, bool)
	// InternedAtoms returns the count of interned atoms.
	InternedAtoms() int

	// CloseClient closes the client side; closing an already closed side is
	// a no-op.
	CloseClient() error
	// CloseServer closes the server side; closing an already closed side is
	// a no-op.
	CloseServer() error
}

// Session pumps one proxied connection until EOF or error on either side.
type Session interface {
	// Conn returns the session's connection record.
	Conn() Connection
	// Run relays traffic until the context ends, a side closes, or an error
	// occurs; both sides are closed before it returns.
	Run(ctx context.Context)
	// Done is closed once Run has finished.
	Done() <-chan struct{}
}

// Server accepts proxy clients and spawns one Session per accepted
// connection.
type Server interface {
	// Listen runs the accept loop until the context ends or Shutdown is
	// called.
	Listen(ctx context.Context) error
	// Shutdown stops the accept loop and waits for open sessions to end.
	Shutdown(ctx context.Context) error
	// Close stops the accept loop and closes open sessions.
	Close() error
	// IsRunning reports whether the accept loop is active.
	IsRunning() bool
	// IsGone reports whether the accept loop has ended.
	IsGone() bool
	// OpenConnections returns the number of live sessions.
	OpenConnections() int
	// Done is closed once the accept loop has ended.
	Done() <-chan struct{}

	// RegisterFuncError installs the failure callback.
	RegisterFuncError(f FuncError)
	// RegisterFuncInfo installs the lifecycle callback.
	RegisterFuncInfo(f FuncInfo)
}

// DialUpstream opens one connection to the real display for a new session.
type DialUpstream func(ctx context.Context) (net.Conn, error)

// NewConnection returns a fresh Connection with a process-wide unique id.
func NewConnection() Connection {
	return newConnection()
}

// NewSession pairs an accepted client connection with its upstream
// connection under the given analyzer.
func NewSession(client, server net.Conn, ana Analyzer, fe FuncError, fi FuncInfo) Session {
	return newSession(client, server, ana, fe, fi)
}

// New returns a Server accepting on l and dialing the display through dial
// for every accepted client.
func New(l net.Listener, dial DialUpstream, ana Analyzer) Server {
	return newServer(l, dial, ana)
}
