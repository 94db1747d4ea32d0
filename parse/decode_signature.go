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
	"github.com/dpeckett/pgpparse/types/keyid"
)

func decodeSignature(r *reader, rgn *region, opts *Options) error {
	// The hashed data span a V4 signature must report starts at this
	// packet's version octet, so it has to be captured before that
	// octet is read.
	hashedStart := r.accumulatedLength()

	version, err := r.readOctet(rgn)
	if err != nil {
		return err
	}

	switch version {
	case 2, 3:
		return decodeV3Signature(r, rgn, opts, version)
	case 4:
		return decodeV4Signature(r, rgn, opts, hashedStart)
	default:
		return fail(opts, newParseError(ErrFraming, "bad signature version (%d)", version))
	}
}

// decodeV3Signature handles both the V2 and V3 wire formats, which are
// identical apart from the version octet's value.
func decodeV3Signature(r *reader, rgn *region, opts *Options, version uint8) error {
	var sig Signature
	sig.Version = version

	hashedInfoLen, err := r.readOctet(rgn)
	if err != nil {
		return err
	}
	if hashedInfoLen != 5 {
		return fail(opts, newParseError(ErrFraming, "bad V3 signature hashed-info length (%d)", hashedInfoLen))
	}

	sigType, err := r.readOctet(rgn)
	if err != nil {
		return err
	}
	sig.Type = sigType

	ct, err := r.readTime(rgn)
	if err != nil {
		return err
	}
	sig.CreationTime = ct
	sig.CreationTimeSet = true

	signerID, err := r.readData(rgn, keyid.Size)
	if err != nil {
		return err
	}
	copy(sig.SignerID[:], signerID)
	sig.SignerIDSet = true

	keyAlg, err := r.readOctet(rgn)
	if err != nil {
		return err
	}
	sig.KeyAlgorithm = PublicKeyAlgorithm(keyAlg)

	hashAlg, err := r.readOctet(rgn)
	if err != nil {
		return err
	}
	sig.HashAlgorithm = hashAlg

	hash2, err := r.readData(rgn, 2)
	if err != nil {
		return err
	}
	copy(sig.Hash2[:], hash2)

	if err := readSignatureMaterial(r, rgn, opts, &sig); err != nil {
		return err
	}

	if rgn.lengthRead != rgn.length {
		return fail(opts, newParseError(ErrUnconsumedData, "unconsumed data (%d bytes)", rgn.length-rgn.lengthRead))
	}

	opts.emit(Event{Kind: EventSignature, Payload: sig})
	return nil
}

// decodeV4Signature decodes a V4 signature, tracking the span of the
// enclosing packet's accumulated bytes covered by the hashed
// subpacket set (everything from the version octet through the end of
// the hashed subpackets) so a verifier can recompute the signed hash
// input without re-deriving the framing itself.
func decodeV4Signature(r *reader, rgn *region, opts *Options, hashedStart uint32) error {
	var sig Signature
	sig.Version = 4
	sig.V4HashedDataStart = hashedStart

	sigType, err := r.readOctet(rgn)
	if err != nil {
		return err
	}
	sig.Type = sigType

	keyAlg, err := r.readOctet(rgn)
	if err != nil {
		return err
	}
	sig.KeyAlgorithm = PublicKeyAlgorithm(keyAlg)

	hashAlg, err := r.readOctet(rgn)
	if err != nil {
		return err
	}
	sig.HashAlgorithm = hashAlg

	if err := decodeSignatureSubpacketSet(r, rgn, opts, &sig); err != nil {
		return err
	}
	sig.V4HashedDataLength = r.accumulatedLength() - sig.V4HashedDataStart

	if err := decodeSignatureSubpacketSet(r, rgn, opts, &sig); err != nil {
		return err
	}

	hash2, err := r.readData(rgn, 2)
	if err != nil {
		return err
	}
	copy(sig.Hash2[:], hash2)

	if err := readSignatureMaterial(r, rgn, opts, &sig); err != nil {
		return err
	}

	if rgn.lengthRead != rgn.length {
		return fail(opts, newParseError(ErrUnconsumedData, "unconsumed data (%d bytes)", rgn.length-rgn.lengthRead))
	}

	opts.emit(Event{Kind: EventSignature, Payload: sig})
	return nil
}

func readSignatureMaterial(r *reader, rgn *region, opts *Options, sig *Signature) error {
	switch sig.KeyAlgorithm {
	case AlgorithmRSA:
		s, err := r.readMPI(rgn, opts.mpiOpts)
		if err != nil {
			return err
		}
		sig.RSA = &RSASignature{Sig: s}
	case AlgorithmDSA:
		rv, err := r.readMPI(rgn, opts.mpiOpts)
		if err != nil {
			return err
		}
		sv, err := r.readMPI(rgn, opts.mpiOpts)
		if err != nil {
			return err
		}
		sig.DSA = &DSASignature{R: rv, S: sv}
	default:
		return fail(opts, newParseError(ErrFraming, "unsupported signature key algorithm (%d)", sig.KeyAlgorithm))
	}
	return nil
}
