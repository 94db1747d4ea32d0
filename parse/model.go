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
	"time"

	"github.com/dpeckett/pgpparse/types/keyid"
	"github.com/dpeckett/pgpparse/types/mpi"
	"github.com/dpeckett/pgpparse/types/subpackettag"
)

// PublicKeyAlgorithm identifies the public-key algorithm of a key or
// signature (RFC 4880 section 9.1).
type PublicKeyAlgorithm uint8

const (
	AlgorithmRSA            PublicKeyAlgorithm = 1
	AlgorithmRSAEncryptOnly PublicKeyAlgorithm = 2
	AlgorithmRSASignOnly    PublicKeyAlgorithm = 3
	AlgorithmElgamal        PublicKeyAlgorithm = 16
	AlgorithmDSA            PublicKeyAlgorithm = 17
)

type RSAPublicKey struct{ N, E mpi.MPI }
type DSAPublicKey struct{ P, Q, G, Y mpi.MPI }
type ElgamalPublicKey struct{ P, G, Y mpi.MPI }

// PublicKey is the decoded content of a PUBLIC_KEY or PUBLIC_SUBKEY
// packet. Exactly one of RSA, DSA, or Elgamal is non-nil, selected by
// Algorithm.
type PublicKey struct {
	Version      uint8
	CreationTime time.Time
	DaysValid    uint16 // only meaningful when Version <= 3
	Algorithm    PublicKeyAlgorithm
	RSA          *RSAPublicKey
	DSA          *DSAPublicKey
	Elgamal      *ElgamalPublicKey
}

type RSASignature struct{ Sig mpi.MPI }
type DSASignature struct{ R, S mpi.MPI }

// Signature is the decoded content of a SIGNATURE packet, V2/V3 and V4
// alike. V4HashedDataStart/V4HashedDataLength describe the span of the
// enclosing packet's accumulated bytes that a verifier must rehash;
// they are zero for V2/V3 signatures, which hash their fixed fields
// directly rather than a hashed subpacket region.
type Signature struct {
	Version         uint8
	Type            uint8
	CreationTime    time.Time
	CreationTimeSet bool
	SignerID        keyid.ID
	SignerIDSet     bool
	KeyAlgorithm    PublicKeyAlgorithm
	HashAlgorithm   uint8
	Hash2           [2]byte
	RSA             *RSASignature
	DSA             *DSASignature

	V4HashedDataStart  uint32
	V4HashedDataLength uint32
}

// OnePassSignature is the decoded content of a ONE_PASS_SIGNATURE
// packet, a forward-announcement of the signature that follows the
// signed data it precedes.
type OnePassSignature struct {
	Version       uint8
	SigType       uint8
	HashAlgorithm uint8
	KeyAlgorithm  PublicKeyAlgorithm
	KeyID         keyid.ID
	Nested        bool
}

type UserID struct{ ID string }
type UserAttribute struct{ Data []byte }
type Trust struct{ Data []byte }

// Compressed is emitted as soon as a COMPRESSED_DATA packet's
// algorithm octet is read; the packet's body is handed to the
// configured Decompressor and the packets recovered from it are
// re-driven through the same parse, so they appear as ordinary
// subsequent events rather than as a Compressed payload field.
type Compressed struct {
	Algorithm uint8
}

type LiteralDataHeader struct {
	Format           byte
	Filename         string
	ModificationTime time.Time
}

// LiteralDataBody carries one chunk of a literal data packet's body.
// Large bodies are split across multiple EventLiteralDataBody events
// rather than buffered whole, the same streaming behavior the
// original implementation gets from its fixed internal chunk buffer.
type LiteralDataBody struct {
	Data []byte
}

type RSASecretKey struct{ D, P, Q, U mpi.MPI }

// SecretKey is the decoded content of a SECRET_KEY packet. Only
// S2KUsage == 0 (unencrypted secret material) is supported; any other
// value is a parse error, matching the scope restriction already
// present in the original implementation.
type SecretKey struct {
	PublicKey PublicKey
	S2KUsage  uint8
	RSA       *RSASecretKey
	Checksum  uint16
}

// PacketEnd carries the bytes (if accumulation was requested) and
// total length of the packet that just finished, whether or not its
// content decoded successfully.
type PacketEnd struct {
	Raw    []byte
	Length uint32
}

// Signature-subpacket payloads.

type TimeSubpacket struct{ Time time.Time }
type TrustSubpacket struct{ Level, Amount uint8 }
type BoolSubpacket struct{ Value bool }
type IssuerKeyIDSubpacket struct{ KeyID keyid.ID }
type OpaqueSubpacket struct{ Data []byte }

type NotationDataSubpacket struct {
	Flags [4]byte
	Name  []byte
	Value []byte
}

type StringSubpacket struct{ Text string }

type RevocationReasonSubpacket struct {
	Code uint8
	Text string
}

type RevocationKeySubpacket struct {
	Class       uint8
	AlgID       uint8
	Fingerprint keyid.Fingerprint
}

type UserDefinedSubpacket struct {
	Type subpackettag.Type
	Data []byte
}

// RawSubpacket is delivered for any subpacket type routed via
// subpackettag.RouteRaw, bypassing the typed decoder entirely.
type RawSubpacket struct {
	Tag    subpackettag.Type
	Length uint32
	Data   []byte
}
