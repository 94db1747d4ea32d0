// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parse

// decodeSecretKey decodes a SECRET_KEY packet. Only s2k_usage == 0
// (unencrypted secret material, stored as plain MPIs followed by a
// 16-bit checksum) is supported, matching the scope of the original
// implementation; any other usage octet means the secret material is
// passphrase-protected, which this core does not attempt to unwrap.
func decodeSecretKey(r *reader, rgn *region, opts *Options) error {
	var sk SecretKey

	pk, err := parsePublicKeyData(r, rgn, opts)
	if err != nil {
		return err
	}
	sk.PublicKey = pk

	usage, err := r.readOctet(rgn)
	if err != nil {
		return err
	}
	sk.S2KUsage = usage
	if usage != 0 {
		return fail(opts, newParseError(ErrFraming, "encrypted secret key material is not supported (s2k_usage=%d)", usage))
	}

	switch pk.Algorithm {
	case AlgorithmRSA, AlgorithmRSAEncryptOnly, AlgorithmRSASignOnly:
		d, err := r.readMPI(rgn, opts.mpiOpts)
		if err != nil {
			return err
		}
		p, err := r.readMPI(rgn, opts.mpiOpts)
		if err != nil {
			return err
		}
		q, err := r.readMPI(rgn, opts.mpiOpts)
		if err != nil {
			return err
		}
		u, err := r.readMPI(rgn, opts.mpiOpts)
		if err != nil {
			return err
		}
		sk.RSA = &RSASecretKey{D: d, P: p, Q: q, U: u}
	default:
		return fail(opts, newParseError(ErrFraming, "unsupported secret key algorithm (%d)", pk.Algorithm))
	}

	checksum, err := r.readScalar(rgn, 2)
	if err != nil {
		return err
	}
	sk.Checksum = uint16(checksum)

	if rgn.lengthRead != rgn.length {
		return fail(opts, newParseError(ErrUnconsumedData, "unconsumed data (%d bytes)", rgn.length-rgn.lengthRead))
	}

	opts.emit(Event{Kind: EventSecretKey, Payload: sk})
	return nil
}
