// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package mpi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpeckett/pgpparse/types/mpi"
)

func TestByteLen(t *testing.T) {
	assert.Equal(t, 1, mpi.ByteLen(1))
	assert.Equal(t, 1, mpi.ByteLen(8))
	assert.Equal(t, 2, mpi.ByteLen(9))
	assert.Equal(t, 2, mpi.ByteLen(16))
	assert.Equal(t, 3, mpi.ByteLen(17))
}

func TestDecodeValidShape(t *testing.T) {
	m, err := mpi.Decode([]byte{0x80}, 8, mpi.Options{})
	require.NoError(t, err)
	assert.EqualValues(t, 8, m.DeclaredBits)
	assert.Equal(t, "128", m.Value.String())

	// Declared bit count that doesn't land on a byte boundary: top
	// byte's significant bits start partway in.
	m, err = mpi.Decode([]byte{0x01}, 1, mpi.Options{})
	require.NoError(t, err)
	assert.Equal(t, "1", m.Value.String())
}

func TestDecodeRejectsExtraHighBits(t *testing.T) {
	_, err := mpi.Decode([]byte{0x03}, 1, mpi.Options{})
	require.ErrorIs(t, err, mpi.ErrShape)
}

func TestDecodeRejectsClearTopBit(t *testing.T) {
	_, err := mpi.Decode([]byte{0x40}, 8, mpi.Options{})
	require.ErrorIs(t, err, mpi.ErrShape)
}

func TestDecodeAllowsEncryptedShape(t *testing.T) {
	m, err := mpi.Decode([]byte{0x03}, 1, mpi.Options{AllowEncryptedShape: true})
	require.NoError(t, err)
	assert.Equal(t, "3", m.Value.String())
}

func TestDecodeWrongLengthIsError(t *testing.T) {
	_, err := mpi.Decode([]byte{0x80, 0x00}, 8, mpi.Options{})
	require.Error(t, err)
}
