// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parse

import "github.com/dpeckett/pgpparse/types/tag"

const (
	tagAlwaysSet     = 0x80
	tagNewFormatBit  = 0x40
	tagNewContentMsk = 0x3f
	tagOldContentMsk = 0x3c
	tagOldContentSh  = 2
	tagOldLengthMsk  = 0x03
)

// fail emits exactly one EventParserError carrying err and returns
// err, so every failing code path in this package reports through the
// same channel instead of some paths emitting nothing, as a few corners
// of the original implementation did.
func fail(opts *Options, err error) error {
	opts.emit(Event{Kind: EventParserError, Payload: err})
	return err
}

// Parse drives opts.Source one packet at a time, dispatching each
// recognized content tag to its decoder and delivering events through
// opts.Callback, until the source reaches a clean end-of-stream
// between packets or a decoder reports an error. It returns nil only
// for the former; any non-nil error has already been delivered to the
// callback as an EventParserError.
func Parse(opts *Options) error {
	r := &reader{opts: opts}
	for {
		more, err := parseOnePacket(r, opts)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

func parseOnePacket(r *reader, opts *Options) (bool, error) {
	acc := newAccumulator(opts.Accumulate)
	r.acc = acc

	position := r.totalRead

	var tagByte [1]byte
	n, ret, err := r.baseRead(tagByte[:], 0)
	if err != nil {
		return false, fail(opts, newParseError(ErrUpstream, "%v", err))
	}
	if ret == ReadEOF && n == 0 {
		return false, nil
	}
	if ret != ReadOK || n != 1 {
		return false, fail(opts, newParseError(ErrUpstream, "short read of packet tag"))
	}

	b := tagByte[0]
	if b&tagAlwaysSet == 0 {
		return false, fail(opts, newParseError(ErrFraming, "format error (reserved bit not set in packet tag 0x%02x)", b))
	}

	var pt tag.Packet
	pt.Position = position
	pt.NewFormat = b&tagNewFormatBit != 0

	var indeterminate bool
	if pt.NewFormat {
		pt.ContentTag = tag.Content(b & tagNewContentMsk)
		length, err := r.readNewLengthFree()
		if err != nil {
			return false, fail(opts, err)
		}
		pt.Length = length
	} else {
		pt.ContentTag = tag.Content((b & tagOldContentMsk) >> tagOldContentSh)
		pt.LengthType = tag.LengthType(b & tagOldLengthMsk)
		switch pt.LengthType {
		case tag.OneByteLength:
			v, err := r.readScalarFree(1)
			if err != nil {
				return false, fail(opts, err)
			}
			pt.Length = v
		case tag.TwoByteLength:
			v, err := r.readScalarFree(2)
			if err != nil {
				return false, fail(opts, err)
			}
			pt.Length = v
		case tag.FourByteLength:
			v, err := r.readScalarFree(4)
			if err != nil {
				return false, fail(opts, err)
			}
			pt.Length = v
		case tag.IndeterminateLength:
			indeterminate = true
		}
	}

	opts.emit(Event{Kind: EventPTag, Payload: pt})

	rgn := newRegion(nil, pt.Length, indeterminate)

	var decodeErr error
	switch pt.ContentTag {
	case tag.Signature:
		decodeErr = decodeSignature(r, rgn, opts)
	case tag.PublicKey:
		decodeErr = decodePublicKey(r, rgn, opts, false)
	case tag.PublicSubkey:
		decodeErr = decodePublicKey(r, rgn, opts, true)
	case tag.Trust:
		decodeErr = decodeTrust(r, rgn, opts)
	case tag.UserID:
		decodeErr = decodeUserID(r, rgn, opts)
	case tag.UserAttribute:
		decodeErr = decodeUserAttribute(r, rgn, opts)
	case tag.CompressedData:
		decodeErr = decodeCompressed(r, rgn, opts)
	case tag.OnePassSignature:
		decodeErr = decodeOnePassSignature(r, rgn, opts)
	case tag.LiteralData:
		decodeErr = decodeLiteralData(r, rgn, opts)
	case tag.SecretKey:
		decodeErr = decodeSecretKey(r, rgn, opts)
	default:
		decodeErr = fail(opts, newParseError(ErrFraming, "format error (unsupported content tag %d)", pt.ContentTag))
	}

	opts.emit(Event{Kind: EventPacketEnd, Payload: PacketEnd{Raw: acc.bytes(), Length: acc.length}})

	if decodeErr != nil {
		return false, decodeErr
	}
	return true, nil
}
