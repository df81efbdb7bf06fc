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

package session

import (
	"encoding/binary"
	"net"
	"sync"
	"time"

	libatm "github.com/nabbar/x11trace/atomic"
	libprt "github.com/nabbar/x11trace/protocol"
)

var connIds = libatm.NewCounter()

type conn struct {
	m sync.RWMutex

	id uint64
	ts time.Time

	cli net.Conn
	srv net.Conn

	bo binary.ByteOrder
	sc bool // client initiation parsed
	ss bool // server setup accepted

	seq uint64  // requests registered so far, first request is 1
	log []uint8 // major opcode by sequence number, slot 0 reserved

	bro uint8 // BIG-REQUESTS major opcode once learned
	brq bool  // BIG-REQUESTS length expansion active

	atm map[uint32]string // interned atoms
	sta map[uint16]string // InternAtom name stash by sequence
	ext map[uint16]string // QueryExtension name stash by sequence
}

func newConnection() *conn {
	return &conn{
		id:  connIds.Next(),
		ts:  time.Now(),
		bo:  binary.LittleEndian,
		log: make([]uint8, 1),
		atm: make(map[uint32]string),
		sta: make(map[uint16]string),
		ext: make(map[uint16]string),
	}
}

func (o *conn) attach(cli, srv net.Conn) {
	o.m.Lock()
	defer o.m.Unlock()
	o.cli = cli
	o.srv = srv
}

func (o *conn) ID() uint64 {
	return o.id
}

func (o *conn) OpenedAt() time.Time {
	return o.ts
}

func (o *conn) ByteOrder() binary.ByteOrder {
	o.m.RLock()
	defer o.m.RUnlock()
	return o.bo
}

func (o *conn) SetByteOrder(bo binary.ByteOrder) {
	o.m.Lock()
	defer o.m.Unlock()
	o.bo = bo
}

func (o *conn) ClientSetupDone() bool {
	o.m.RLock()
	defer o.m.RUnlock()
	return o.sc
}

func (o *conn) SetClientSetupDone() {
	o.m.Lock()
	defer o.m.Unlock()
	o.sc = true
}

func (o *conn) ServerSetupDone() bool {
	o.m.RLock()
	defer o.m.RUnlock()
	return o.ss
}

func (o *conn) SetServerSetupDone() {
	o.m.Lock()
	defer o.m.Unlock()
	o.ss = true
}

func (o *conn) RegisterRequest(opcode uint8) (uint16, error) {
	o.m.Lock()
	defer o.m.Unlock()

	if uint64(len(o.log)) != o.seq+1 {
		return 0, ErrorSequenceOrder.Error(nil)
	}

	o.log = append(o.log, opcode)
	o.seq++

	return uint16(o.seq & 0xFFFF), nil
}

func (o *conn) LookupRequest(seq uint16) (uint8, error) {
	o.m.RLock()
	defer o.m.RUnlock()

	// replies echo only the low 16 bits; resolve against the most recent
	// registered request matching them
	if o.seq == 0 {
		return 0, ErrorSequenceUnknown.Error(nil)
	}

	base := o.seq &^ 0xFFFF
	idx := base | uint64(seq)
	if idx > o.seq {
		if base == 0 {
			return 0, ErrorSequenceUnknown.Error(nil)
		}
		idx -= 0x10000
	}
	if idx == 0 || idx >= uint64(len(o.log)) {
		return 0, ErrorSequenceUnknown.Error(nil)
	}

	return o.log[idx], nil
}

func (o *conn) Sequence() uint16 {
	o.m.RLock()
	defer o.m.RUnlock()
	return uint16(o.seq & 0xFFFF)
}

func (o *conn) Requests() uint64 {
	o.m.RLock()
	defer o.m.RUnlock()
	return o.seq
}

func (o *conn) BigRequests() bool {
	o.m.RLock()
	defer o.m.RUnlock()
	return o.brq
}

func (o *conn) SetBigRequestsOpcode(op uint8) {
	o.m.Lock()
	defer o.m.Unlock()
	o.bro = op
}

func (o *conn) BigRequestsOpcode() uint8 {
	o.m.RLock()
	defer o.m.RUnlock()
	return o.bro
}

func (o *conn) ActivateBigRequests() {
	o.m.Lock()
	defer o.m.Unlock()
	o.brq = true
}

func (o *conn) StashAtomName(seq uint16, name string) {
	o.m.Lock()
	defer o.m.Unlock()
	o.sta[seq] = name
}

func (o *conn) ResolveAtom(seq uint16, atom uint32) error {
	o.m.Lock()
	defer o.m.Unlock()

	name, ok := o.sta[seq]
	if !ok {
		return ErrorStashMissing.Error(nil)
	}
	delete(o.sta, seq)

	if atom == 0 || atom <= libprt.PredefinedAtomMax {
		// zero means "does not exist"; predefined atoms need no interning
		return nil
	}

	o.atm[atom] = name
	return nil
}

func (o *conn) DropStash(seq uint16) {
	o.m.Lock()
	defer o.m.Unlock()
	delete(o.sta, seq)
}

func (o *conn) StashExtensionName(seq uint16, name string) {
	o.m.Lock()
	defer o.m.Unlock()
	o.ext[seq] = name
}

func (o *conn) TakeExtensionName(seq uint16) (string, bool) {
	o.m.Lock()
	defer o.m.Unlock()

	name, ok := o.ext[seq]
	if ok {
		delete(o.ext, seq)
	}

	return name, ok
}

func (o *conn) AtomName(atom uint32) (string, bool) {
	o.m.RLock()
	defer o.m.RUnlock()

	if n, ok := o.atm[atom]; ok {
		return n, true
	}

	return libprt.PredefinedAtomName(atom)
}

func (o *conn) InternedAtoms() int {
	o.m.RLock()
	defer o.m.RUnlock()
	return len(o.atm)
}

func (o *conn) CloseClient() error {
	o.m.Lock()
	defer o.m.Unlock()

	if o.cli == nil {
		return nil
	}

	c := o.cli
	o.cli = nil

	if err := c.Close(); err != nil {
		return ErrorCloseSocket.Error(err)
	}

	return nil
}

func (o *conn) CloseServer() error {
	o.m.Lock()
	defer o.m.Unlock()

	if o.srv == nil {
		return nil
	}

	c := o.srv
	o.srv = nil

	if err := c.Close(); err != nil {
		return ErrorCloseSocket.Error(err)
	}

	return nil
}
