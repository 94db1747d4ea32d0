// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Package tag enumerates the OpenPGP packet content tags (RFC 4880
// section 4.3) and the length-encoding styles used by the old packet
// format.
package tag

import "fmt"

// Content is the packet content tag, decoded from either the old or
// new packet-tag encoding. Values above 63 never occur on the wire;
// they exist only so an unrecognized tag can still be formatted.
type Content uint8

const (
	PublicKeyEncryptedSessionKey Content = 1
	Signature                    Content = 2
	SymmetricKeyEncryptedSession Content = 3
	OnePassSignature              Content = 4
	SecretKey                    Content = 5
	PublicKey                    Content = 6
	SecretSubkey                 Content = 7
	CompressedData               Content = 8
	SymmetricallyEncrypted       Content = 9
	Marker                       Content = 10
	LiteralData                  Content = 11
	Trust                        Content = 12
	UserID                       Content = 13
	PublicSubkey                 Content = 14
	UserAttribute                Content = 17
	SymEncryptedIntegrityProtected Content = 18
	ModificationDetectionCode    Content = 19
)

var names = map[Content]string{
	PublicKeyEncryptedSessionKey:   "PublicKeyEncryptedSessionKey",
	Signature:                      "Signature",
	SymmetricKeyEncryptedSession:   "SymmetricKeyEncryptedSessionKey",
	OnePassSignature:               "OnePassSignature",
	SecretKey:                      "SecretKey",
	PublicKey:                      "PublicKey",
	SecretSubkey:                   "SecretSubkey",
	CompressedData:                 "CompressedData",
	SymmetricallyEncrypted:         "SymmetricallyEncrypted",
	Marker:                         "Marker",
	LiteralData:                    "LiteralData",
	Trust:                          "Trust",
	UserID:                         "UserID",
	PublicSubkey:                   "PublicSubkey",
	UserAttribute:                  "UserAttribute",
	SymEncryptedIntegrityProtected: "SymEncryptedIntegrityProtected",
	ModificationDetectionCode:      "ModificationDetectionCode",
}

func (c Content) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	return fmt.Sprintf("Content(%d)", uint8(c))
}

// LengthType is the old-format length-encoding selector (RFC 4880
// section 4.2.1). It has no meaning for new-format packets.
type LengthType uint8

const (
	OneByteLength      LengthType = 0
	TwoByteLength      LengthType = 1
	FourByteLength     LengthType = 2
	IndeterminateLength LengthType = 3
)

func (l LengthType) String() string {
	switch l {
	case OneByteLength:
		return "OneByte"
	case TwoByteLength:
		return "TwoByte"
	case FourByteLength:
		return "FourByte"
	case IndeterminateLength:
		return "Indeterminate"
	default:
		return fmt.Sprintf("LengthType(%d)", uint8(l))
	}
}

// Packet is the decoded packet-tag octet: format selector, content
// tag, old-format length type, declared length, and the stream
// position at which the tag octet was read. It mirrors ops_ptag_t.
type Packet struct {
	NewFormat  bool
	ContentTag Content
	LengthType LengthType // only meaningful when !NewFormat
	Length     uint32
	Position   uint32
}
