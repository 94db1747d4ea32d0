// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package armor

import (
	"errors"
	"io"

	"github.com/ProtonMail/go-crypto/openpgp/clearsign"

	"github.com/dpeckett/pgpparse/parse"
)

// CleartextSource recovers the embedded detached-signature packet
// bytes from an OpenPGP cleartext-signed document (RFC 4880 section
// 7). It does not verify the signature against any keyring -
// verification is out of scope for this core; a caller that wants it
// already has everything needed to perform it: the dash-unescaped
// Message bytes and the Signature event this Source's packets decode
// to.
type CleartextSource struct {
	message []byte
	body    io.Reader
}

// NewCleartextSource reads r to completion - the cleartext-signature
// format has no way to locate its trailing armored signature without
// first seeing the whole document - and recovers the embedded
// signature packet's byte stream.
func NewCleartextSource(r io.Reader) (*CleartextSource, error) {
	signedData, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	block, _ := clearsign.Decode(signedData)
	if block == nil {
		return nil, errors.New("armor: invalid cleartext-signed input")
	}

	return &CleartextSource{
		message: block.Bytes,
		body:    block.ArmoredSignature.Body,
	}, nil
}

// Message returns the dash-unescaped cleartext message bytes that were
// signed.
func (s *CleartextSource) Message() []byte {
	return s.message
}

func (s *CleartextSource) Read(dest []byte, flags parse.ReadFlags) (int, parse.ReadResult, error) {
	if flags&parse.ReturnLength != 0 {
		n, err := s.body.Read(dest)
		return classifyRead(n, err)
	}
	n, err := io.ReadFull(s.body, dest)
	return classifyReadFull(n, err)
}
