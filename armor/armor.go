// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Package armor adapts ASCII-armored and cleartext-signed OpenPGP
// input (RFC 4880 sections 6 and 7) into the parse.Source contract, so
// either can be handed straight to parse.Parse. Both collaborators
// here are built on github.com/ProtonMail/go-crypto, which already
// implements the armor checksum and radix-64 decoding this core has no
// reason to reimplement.
package armor

import (
	"io"

	protonarmor "github.com/ProtonMail/go-crypto/openpgp/armor"

	"github.com/dpeckett/pgpparse/parse"
)

// Reader de-armours an ASCII-armored OpenPGP message, exposing its
// decoded binary body as a parse.Source.
type Reader struct {
	block *protonarmor.Block
}

// NewReader decodes the armor header and checksum framing of r,
// leaving the binary packet stream in Block.Body unread until the
// returned Reader is itself read.
func NewReader(r io.Reader) (*Reader, error) {
	block, err := protonarmor.Decode(r)
	if err != nil {
		return nil, err
	}
	return &Reader{block: block}, nil
}

// Type reports the armor header's block type, e.g. "PGP MESSAGE" or
// "PGP PUBLIC KEY BLOCK".
func (r *Reader) Type() string {
	return r.block.Type
}

func (r *Reader) Read(dest []byte, flags parse.ReadFlags) (int, parse.ReadResult, error) {
	if flags&parse.ReturnLength != 0 {
		n, err := r.block.Body.Read(dest)
		return classifyRead(n, err)
	}
	n, err := io.ReadFull(r.block.Body, dest)
	return classifyReadFull(n, err)
}

func classifyRead(n int, err error) (int, parse.ReadResult, error) {
	switch {
	case err == nil:
		return n, parse.ReadOK, nil
	case err == io.EOF:
		if n > 0 {
			return n, parse.ReadPartial, nil
		}
		return 0, parse.ReadEOF, nil
	default:
		return n, parse.ReadError, err
	}
}

func classifyReadFull(n int, err error) (int, parse.ReadResult, error) {
	switch {
	case err == nil:
		return n, parse.ReadOK, nil
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		if n > 0 {
			return n, parse.ReadPartial, nil
		}
		return 0, parse.ReadEOF, nil
	default:
		return n, parse.ReadError, err
	}
}
