// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parse

import (
	"encoding/binary"
	"time"

	"github.com/dpeckett/pgpparse/types/mpi"
)

// reader is the primitive-read layer: every byte the rest of this
// package consumes from the caller's Source passes through it, so it
// is the single place that feeds the accumulator and advances region
// bookkeeping.
type reader struct {
	opts *Options
	acc  *accumulator

	// totalRead is the number of bytes consumed from opts.Source since
	// this reader was created, i.e. since the start of the stream. It
	// never resets between packets, unlike acc, so it is the source of
	// a PTag event's stream position.
	totalRead uint32
}

func (p *reader) accumulatedLength() uint32 {
	if p.acc == nil {
		return 0
	}
	return p.acc.length
}

// baseRead is the only call site that touches opts.Source. Every byte
// it reports, successful or partial, is fed to the accumulator and to
// the running stream position before being returned to the caller.
func (p *reader) baseRead(dest []byte, flags ReadFlags) (int, ReadResult, error) {
	n, ret, err := p.opts.Source.Read(dest, flags)
	if n > 0 {
		if p.acc != nil {
			p.acc.append(dest[:n])
		}
		p.totalRead += uint32(n)
	}
	return n, ret, err
}

// limitedRead fills dest from rgn, refusing to cross rgn's declared
// length unless rgn is indeterminate (in which case the read is issued
// with ReturnLength and the source may fill less than dest by
// returning PARTIAL; an EOF result is still a failure). Every
// successful read advances lengthRead on rgn and all of its ancestors.
// A failure is delivered to the callback as an EventParserError before
// it is returned.
func (p *reader) limitedRead(dest []byte, rgn *region) error {
	length := uint32(len(dest))
	if !rgn.indeterminate && rgn.lengthRead+length > rgn.length {
		return fail(p.opts, newParseError(ErrBoundary, "not enough data left in region (want %d, have %d)", length, rgn.length-rgn.lengthRead))
	}

	var flags ReadFlags
	if rgn.indeterminate {
		flags = ReturnLength
	}

	n, ret, err := p.baseRead(dest, flags)
	if err != nil {
		return fail(p.opts, newParseError(ErrUpstream, "%v", err))
	}
	switch ret {
	case ReadOK:
	case ReadPartial:
		if flags&ReturnLength == 0 {
			return fail(p.opts, newParseError(ErrUpstream, "short read"))
		}
	default:
		return fail(p.opts, newParseError(ErrUpstream, "read failed (%s)", ret))
	}

	actual := uint32(n)
	rgn.lastRead = actual
	for rg := rgn; rg != nil; rg = rg.parent {
		rg.lengthRead += actual
	}

	if actual != length && flags&ReturnLength == 0 {
		return fail(p.opts, newParseError(ErrUpstream, "short read (wanted %d, got %d)", length, actual))
	}
	return nil
}

// readScalarFree reads an n-byte big-endian scalar directly from the
// source, outside of any region. It exists for the packet-tag layer,
// which reads the tag octet and (for old-format packets) the length
// octets before any region exists to bound them.
func (p *reader) readScalarFree(n int) (uint32, error) {
	buf := make([]byte, n)
	read := 0
	for read < n {
		nRead, ret, err := p.baseRead(buf[read:read+1], 0)
		if err != nil {
			return 0, newParseError(ErrUpstream, "%v", err)
		}
		if ret != ReadOK || nRead != 1 {
			return 0, newParseError(ErrUpstream, "short read of packet framing")
		}
		read++
	}
	var t uint32
	for _, c := range buf {
		t = (t << 8) + uint32(c)
	}
	return t, nil
}

func (p *reader) readOctetFree() (byte, error) {
	v, err := p.readScalarFree(1)
	return byte(v), err
}

func readNewLengthGeneric(readByte func() (byte, error)) (uint32, error) {
	b0, err := readByte()
	if err != nil {
		return 0, err
	}
	if b0 < 192 {
		return uint32(b0), nil
	}
	if b0 < 255 {
		b1, err := readByte()
		if err != nil {
			return 0, err
		}
		return (uint32(b0)-192)<<8 + uint32(b1) + 192, nil
	}
	var buf [4]byte
	for i := range buf {
		b, err := readByte()
		if err != nil {
			return 0, err
		}
		buf[i] = b
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// readNewLengthFree decodes a new-format packet length directly from
// the source (RFC 4880 section 4.2.2), outside of any region — used
// only for the outermost packet length, which precedes the region it
// will go on to define.
func (p *reader) readNewLengthFree() (uint32, error) {
	return readNewLengthGeneric(p.readOctetFree)
}

// readNewLengthIn decodes a new-format length bounded by rgn, used for
// the per-subpacket length header within a signature subpacket set.
func (p *reader) readNewLengthIn(rgn *region) (uint32, error) {
	return readNewLengthGeneric(func() (byte, error) {
		return p.readOctet(rgn)
	})
}

func (p *reader) readOctet(rgn *region) (byte, error) {
	var b [1]byte
	if err := p.limitedRead(b[:], rgn); err != nil {
		return 0, err
	}
	return b[0], nil
}

func (p *reader) readScalar(rgn *region, n int) (uint32, error) {
	buf := make([]byte, n)
	if err := p.limitedRead(buf, rgn); err != nil {
		return 0, err
	}
	var t uint32
	for _, c := range buf {
		t = (t << 8) + uint32(c)
	}
	return t, nil
}

func (p *reader) readTime(rgn *region) (time.Time, error) {
	t, err := p.readScalar(rgn, 4)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(int64(t), 0).UTC(), nil
}

func (p *reader) readData(rgn *region, n uint32) ([]byte, error) {
	buf := make([]byte, n)
	if err := p.limitedRead(buf, rgn); err != nil {
		return nil, err
	}
	return buf, nil
}

// readRestAsData reads whatever remains of rgn's declared length. It
// is used for the variable-length tail fields: user IDs, user
// attributes, trust packets, and raw subpacket bodies.
func (p *reader) readRestAsData(rgn *region) ([]byte, error) {
	if rgn.indeterminate {
		return nil, fail(p.opts, newParseError(ErrFraming, "cannot read an indeterminate region to completion in one call"))
	}
	return p.readData(rgn, rgn.length-rgn.lengthRead)
}

func (p *reader) readString(rgn *region) (string, error) {
	data, err := p.readRestAsData(rgn)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (p *reader) readMPI(rgn *region, opts mpi.Options) (mpi.MPI, error) {
	bits, err := p.readScalar(rgn, 2)
	if err != nil {
		return mpi.MPI{}, err
	}
	byteLen := mpi.ByteLen(uint16(bits))
	if byteLen > mpi.MaxMantissaBytes {
		return mpi.MPI{}, fail(p.opts, newParseError(ErrMPIShape, "mantissa too large (%d bytes)", byteLen))
	}
	data, err := p.readData(rgn, uint32(byteLen))
	if err != nil {
		return mpi.MPI{}, err
	}
	m, err := mpi.Decode(data, uint16(bits), opts)
	if err != nil {
		return mpi.MPI{}, fail(p.opts, newParseError(ErrMPIShape, "%v", err))
	}
	return m, nil
}

// limitedSkip discards n bytes of rgn without retaining them, used to
// skip whatever remains of an ignored signature subpacket's body: all
// of it for a type with no typed decoder, or any tail the typed
// decoder left unread.
func (p *reader) limitedSkip(rgn *region, n uint32) error {
	var buf [8192]byte
	for n > 0 {
		chunk := n
		if chunk > uint32(len(buf)) {
			chunk = uint32(len(buf))
		}
		if err := p.limitedRead(buf[:chunk], rgn); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}
