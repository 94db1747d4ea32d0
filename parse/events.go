// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parse

import "fmt"

// EventKind discriminates the payload carried by an Event. Go's
// interface-typed Payload field plus this discriminant replace the
// original implementation's tagged union and its matching destructor
// table; callers switch on Kind and type-assert Payload, and the
// garbage collector takes the destructor table's place.
type EventKind int

const (
	EventPTag EventKind = iota
	EventPacketEnd
	EventParserError

	EventPublicKey
	EventPublicSubkey
	EventSignature
	EventOnePassSignature
	EventUserID
	EventUserAttribute
	EventTrust
	EventCompressed
	EventLiteralDataHeader
	EventLiteralDataBody
	EventSecretKey

	EventRawSubpacket
	EventSubpacketCreationTime
	EventSubpacketSignatureExpirationTime
	EventSubpacketKeyExpirationTime
	EventSubpacketTrust
	EventSubpacketRevocable
	EventSubpacketIssuerKeyID
	EventSubpacketPreferredSymmetricAlgorithms
	EventSubpacketPreferredHashAlgorithms
	EventSubpacketPreferredCompressionAlgorithms
	EventSubpacketPrimaryUserID
	EventSubpacketKeyFlags
	EventSubpacketKeyServerPreferences
	EventSubpacketFeatures
	EventSubpacketNotationData
	EventSubpacketPolicyURL
	EventSubpacketRegexp
	EventSubpacketPreferredKeyServer
	EventSubpacketSignersUserID
	EventSubpacketRevocationReason
	EventSubpacketRevocationKey
	EventSubpacketUserDefined
)

var eventKindNames = map[EventKind]string{
	EventPTag:             "PTag",
	EventPacketEnd:        "PacketEnd",
	EventParserError:      "ParserError",
	EventPublicKey:        "PublicKey",
	EventPublicSubkey:     "PublicSubkey",
	EventSignature:        "Signature",
	EventOnePassSignature: "OnePassSignature",
	EventUserID:           "UserID",
	EventUserAttribute:    "UserAttribute",
	EventTrust:            "Trust",
	EventCompressed:       "Compressed",
	EventLiteralDataHeader: "LiteralDataHeader",
	EventLiteralDataBody:   "LiteralDataBody",
	EventSecretKey:         "SecretKey",

	EventRawSubpacket:                             "RawSubpacket",
	EventSubpacketCreationTime:                    "Subpacket.CreationTime",
	EventSubpacketSignatureExpirationTime:         "Subpacket.SignatureExpirationTime",
	EventSubpacketKeyExpirationTime:               "Subpacket.KeyExpirationTime",
	EventSubpacketTrust:                           "Subpacket.Trust",
	EventSubpacketRevocable:                       "Subpacket.Revocable",
	EventSubpacketIssuerKeyID:                     "Subpacket.IssuerKeyID",
	EventSubpacketPreferredSymmetricAlgorithms:    "Subpacket.PreferredSymmetricAlgorithms",
	EventSubpacketPreferredHashAlgorithms:         "Subpacket.PreferredHashAlgorithms",
	EventSubpacketPreferredCompressionAlgorithms:  "Subpacket.PreferredCompressionAlgorithms",
	EventSubpacketPrimaryUserID:                   "Subpacket.PrimaryUserID",
	EventSubpacketKeyFlags:                        "Subpacket.KeyFlags",
	EventSubpacketKeyServerPreferences:            "Subpacket.KeyServerPreferences",
	EventSubpacketFeatures:                        "Subpacket.Features",
	EventSubpacketNotationData:                    "Subpacket.NotationData",
	EventSubpacketPolicyURL:                       "Subpacket.PolicyURL",
	EventSubpacketRegexp:                          "Subpacket.Regexp",
	EventSubpacketPreferredKeyServer:              "Subpacket.PreferredKeyServer",
	EventSubpacketSignersUserID:                   "Subpacket.SignersUserID",
	EventSubpacketRevocationReason:                "Subpacket.RevocationReason",
	EventSubpacketRevocationKey:                   "Subpacket.RevocationKey",
	EventSubpacketUserDefined:                     "Subpacket.UserDefined",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Disposition is a callback's verdict on whether the core should
// retain the bytes behind the event it was just given. It mirrors the
// RELEASE_MEMORY/KEEP_MEMORY contract of the original implementation;
// Go's garbage collector makes neither choice a safety requirement; it
// is honored purely as delivered API surface.
type Disposition int

const (
	DispositionRelease Disposition = iota
	DispositionKeep
)

// Event is a single notification delivered to a Callback. Kind
// discriminates Payload; Critical is only meaningful for the
// signature-subpacket event kinds, where it carries the subpacket's
// wire critical bit regardless of how the subpacket was routed.
type Event struct {
	Kind     EventKind
	Critical bool
	Payload  any
}

// Callback receives every event the core emits during a Parse. Its
// return value is advisory (see Disposition); the core does not
// change its own behavior based on it.
type Callback func(Event) Disposition
