// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parse

// parsePublicKeyData decodes the version, creation time, optional
// validity period, algorithm, and algorithm-specific key material
// shared by the PUBLIC_KEY, PUBLIC_SUBKEY, and SECRET_KEY content
// tags. It does not check for unconsumed data or emit an event; the
// two decoders that call it handle that according to what else their
// content tag carries.
func parsePublicKeyData(r *reader, rgn *region, opts *Options) (PublicKey, error) {
	var pk PublicKey

	version, err := r.readOctet(rgn)
	if err != nil {
		return pk, err
	}
	pk.Version = version
	if version < 2 || version > 4 {
		return pk, fail(opts, newParseError(ErrFraming, "bad public key version (%d)", version))
	}

	ct, err := r.readTime(rgn)
	if err != nil {
		return pk, err
	}
	pk.CreationTime = ct

	if version <= 3 {
		dv, err := r.readScalar(rgn, 2)
		if err != nil {
			return pk, err
		}
		pk.DaysValid = uint16(dv)
	}

	algByte, err := r.readOctet(rgn)
	if err != nil {
		return pk, err
	}
	pk.Algorithm = PublicKeyAlgorithm(algByte)

	switch pk.Algorithm {
	case AlgorithmDSA:
		p, err := r.readMPI(rgn, opts.mpiOpts)
		if err != nil {
			return pk, err
		}
		q, err := r.readMPI(rgn, opts.mpiOpts)
		if err != nil {
			return pk, err
		}
		g, err := r.readMPI(rgn, opts.mpiOpts)
		if err != nil {
			return pk, err
		}
		y, err := r.readMPI(rgn, opts.mpiOpts)
		if err != nil {
			return pk, err
		}
		pk.DSA = &DSAPublicKey{P: p, Q: q, G: g, Y: y}
	case AlgorithmRSA, AlgorithmRSAEncryptOnly, AlgorithmRSASignOnly:
		n, err := r.readMPI(rgn, opts.mpiOpts)
		if err != nil {
			return pk, err
		}
		e, err := r.readMPI(rgn, opts.mpiOpts)
		if err != nil {
			return pk, err
		}
		pk.RSA = &RSAPublicKey{N: n, E: e}
	case AlgorithmElgamal:
		p, err := r.readMPI(rgn, opts.mpiOpts)
		if err != nil {
			return pk, err
		}
		g, err := r.readMPI(rgn, opts.mpiOpts)
		if err != nil {
			return pk, err
		}
		y, err := r.readMPI(rgn, opts.mpiOpts)
		if err != nil {
			return pk, err
		}
		pk.Elgamal = &ElgamalPublicKey{P: p, G: g, Y: y}
	default:
		return pk, fail(opts, newParseError(ErrFraming, "unknown public key algorithm (%d)", algByte))
	}

	return pk, nil
}

func decodePublicKey(r *reader, rgn *region, opts *Options, subkey bool) error {
	pk, err := parsePublicKeyData(r, rgn, opts)
	if err != nil {
		return err
	}

	if rgn.lengthRead != rgn.length {
		return fail(opts, newParseError(ErrUnconsumedData, "unconsumed data (%d bytes)", rgn.length-rgn.lengthRead))
	}

	kind := EventPublicKey
	if subkey {
		kind = EventPublicSubkey
	}
	opts.emit(Event{Kind: kind, Payload: pk})
	return nil
}
