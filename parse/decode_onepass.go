// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parse

import "github.com/dpeckett/pgpparse/types/keyid"

func decodeOnePassSignature(r *reader, rgn *region, opts *Options) error {
	var ops OnePassSignature

	version, err := r.readOctet(rgn)
	if err != nil {
		return err
	}
	if version != 3 {
		return fail(opts, newParseError(ErrFraming, "bad one-pass signature version (%d)", version))
	}
	ops.Version = version

	sigType, err := r.readOctet(rgn)
	if err != nil {
		return err
	}
	ops.SigType = sigType

	hashAlg, err := r.readOctet(rgn)
	if err != nil {
		return err
	}
	ops.HashAlgorithm = hashAlg

	keyAlg, err := r.readOctet(rgn)
	if err != nil {
		return err
	}
	ops.KeyAlgorithm = PublicKeyAlgorithm(keyAlg)

	keyIDData, err := r.readData(rgn, keyid.Size)
	if err != nil {
		return err
	}
	copy(ops.KeyID[:], keyIDData)

	nested, err := r.readOctet(rgn)
	if err != nil {
		return err
	}
	ops.Nested = nested != 0

	if rgn.lengthRead != rgn.length {
		return fail(opts, newParseError(ErrUnconsumedData, "unconsumed data (%d bytes)", rgn.length-rgn.lengthRead))
	}

	opts.emit(Event{Kind: EventOnePassSignature, Payload: ops})
	return nil
}
