// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package armor_test

import (
	"bytes"
	"testing"

	protonarmor "github.com/ProtonMail/go-crypto/openpgp/armor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpeckett/pgpparse/armor"
	"github.com/dpeckett/pgpparse/parse"
)

func TestReaderDecodesArmor(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03, 0x04, 0x05}

	var buf bytes.Buffer
	w, err := protonarmor.Encode(&buf, "PGP MESSAGE", nil)
	require.NoError(t, err)
	_, err = w.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := armor.NewReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, "PGP MESSAGE", r.Type())

	got := make([]byte, len(payload))
	n, ret, err := r.Read(got, 0)
	require.NoError(t, err)
	assert.Equal(t, parse.ReadOK, ret)
	assert.Equal(t, payload, got[:n])
}

func TestReaderReportsEOF(t *testing.T) {
	var buf bytes.Buffer
	w, err := protonarmor.Encode(&buf, "PGP MESSAGE", nil)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := armor.NewReader(&buf)
	require.NoError(t, err)

	dest := make([]byte, 4)
	_, ret, err := r.Read(dest, 0)
	require.NoError(t, err)
	assert.Equal(t, parse.ReadEOF, ret)
}
