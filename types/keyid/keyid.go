// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Package keyid holds the fixed-width identifiers used throughout
// OpenPGP signatures: 8-byte key IDs and 20-byte revocation-key
// fingerprints.
package keyid

import (
	"encoding/hex"
	"fmt"
)

// Size is the length in bytes of an OpenPGP key ID (RFC 4880 section
// 5.2.2, field "Signer").
const Size = 8

// FingerprintSize is the length in bytes of a V4 fingerprint, as
// carried by the Revocation Key subpacket.
const FingerprintSize = 20

// ID is an 8-byte OpenPGP key ID.
type ID [Size]byte

func (id ID) String() string {
	return fmt.Sprintf("%X", [Size]byte(id))
}

func (id ID) IsZero() bool {
	return id == ID{}
}

// Fingerprint is a 20-byte key fingerprint, as found in a Revocation
// Key subpacket.
type Fingerprint [FingerprintSize]byte

func (fp Fingerprint) String() string {
	return hex.EncodeToString(fp[:])
}
