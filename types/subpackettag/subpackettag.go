// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Package subpackettag enumerates the V4 signature-subpacket types
// (RFC 4880 section 5.2.3.1) and the per-type delivery routing a
// caller can request for each of them.
package subpackettag

import "fmt"

// Type is a signature-subpacket type octet, with the critical-flag bit
// already stripped (RFC 4880 section 5.2.3.1: "bit 7 of the subpacket
// type is the 'critical' bit").
type Type uint8

const (
	CreationTime                   Type = 2
	SignatureExpirationTime        Type = 3
	TrustSignature                 Type = 5
	Regexp                         Type = 6
	Revocable                      Type = 7
	KeyExpirationTime              Type = 9
	PreferredSymmetricAlgorithms   Type = 11
	RevocationKey                  Type = 12
	IssuerKeyID                    Type = 16
	NotationData                   Type = 20
	PreferredHashAlgorithms        Type = 21
	PreferredCompressionAlgorithms Type = 22
	KeyServerPreferences           Type = 23
	PreferredKeyServer             Type = 24
	PrimaryUserID                  Type = 25
	PolicyURL                      Type = 26
	KeyFlags                       Type = 27
	SignersUserID                  Type = 28
	RevocationReason               Type = 29
	Features                       Type = 30

	// UserDefinedBase is the first of the eleven user-defined
	// subpacket types (100-110) reserved by RFC 4880 for private use.
	UserDefinedBase Type = 100
)

// IsUserDefined reports whether t falls in the 100-110 user-defined
// range.
func (t Type) IsUserDefined() bool {
	return t >= UserDefinedBase && t <= UserDefinedBase+10
}

func (t Type) String() string {
	switch t {
	case CreationTime:
		return "CreationTime"
	case SignatureExpirationTime:
		return "SignatureExpirationTime"
	case TrustSignature:
		return "TrustSignature"
	case Regexp:
		return "Regexp"
	case Revocable:
		return "Revocable"
	case KeyExpirationTime:
		return "KeyExpirationTime"
	case PreferredSymmetricAlgorithms:
		return "PreferredSymmetricAlgorithms"
	case RevocationKey:
		return "RevocationKey"
	case IssuerKeyID:
		return "IssuerKeyID"
	case NotationData:
		return "NotationData"
	case PreferredHashAlgorithms:
		return "PreferredHashAlgorithms"
	case PreferredCompressionAlgorithms:
		return "PreferredCompressionAlgorithms"
	case KeyServerPreferences:
		return "KeyServerPreferences"
	case PreferredKeyServer:
		return "PreferredKeyServer"
	case PrimaryUserID:
		return "PrimaryUserID"
	case PolicyURL:
		return "PolicyURL"
	case KeyFlags:
		return "KeyFlags"
	case SignersUserID:
		return "SignersUserID"
	case RevocationReason:
		return "RevocationReason"
	case Features:
		return "Features"
	default:
		if t.IsUserDefined() {
			return fmt.Sprintf("UserDefined%02d", int(t-UserDefinedBase))
		}
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// Routing is the delivery policy a caller selects for a given
// subpacket type (RFC 4880 semantics of "critical" aside, which is a
// per-instance bit on the wire, not a routing choice).
type Routing int

const (
	// RouteIgnore delivers no event for the subpacket. A recognized
	// type's body is still decoded, so creation-time and issuer-key-id
	// subpackets still populate the enclosing signature; anything left
	// unread, including the whole body of an unrecognized type, is
	// skipped. A critical subpacket routed this way is a parse error.
	RouteIgnore Routing = iota
	// RouteRaw delivers the subpacket's undecoded payload bytes.
	RouteRaw
	// RouteParsed invokes the typed decoder for the subpacket and
	// delivers the decoded value.
	RouteParsed
)

func (r Routing) String() string {
	switch r {
	case RouteIgnore:
		return "ignore"
	case RouteRaw:
		return "raw"
	case RouteParsed:
		return "parsed"
	default:
		return fmt.Sprintf("Routing(%d)", int(r))
	}
}

// ParseRouting maps the lowercase names used by the YAML routing
// profiles (package config) onto a Routing value.
func ParseRouting(name string) (Routing, error) {
	switch name {
	case "ignore", "":
		return RouteIgnore, nil
	case "raw":
		return RouteRaw, nil
	case "parsed":
		return RouteParsed, nil
	default:
		return RouteIgnore, fmt.Errorf("subpackettag: unknown routing %q", name)
	}
}
