// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package compress_test

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpeckett/pgpparse/compress"
	"github.com/dpeckett/pgpparse/parse"
)

type byteSource struct {
	data []byte
	pos  int
}

func (s *byteSource) Read(dest []byte, flags parse.ReadFlags) (int, parse.ReadResult, error) {
	if s.pos >= len(s.data) {
		return 0, parse.ReadEOF, nil
	}
	n := copy(dest, s.data[s.pos:])
	s.pos += n
	if n < len(dest) {
		if flags&parse.ReturnLength != 0 {
			return n, parse.ReadPartial, nil
		}
		return n, parse.ReadEOF, nil
	}
	return n, parse.ReadOK, nil
}

func TestDefaultDecompressZLIB(t *testing.T) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, err := w.Write([]byte("the quick brown fox jumps over the lazy dog"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	var d compress.Default
	src, err := d.Decompress(compress.AlgorithmZLIB, &byteSource{data: buf.Bytes()})
	require.NoError(t, err)

	out, err := readAllFromSource(src)
	require.NoError(t, err)
	assert.Equal(t, "the quick brown fox jumps over the lazy dog", string(out))
}

func TestDefaultDecompressUncompressedPassesThrough(t *testing.T) {
	var d compress.Default
	src, err := d.Decompress(compress.AlgorithmUncompressed, &byteSource{data: []byte("raw")})
	require.NoError(t, err)

	out, err := readAllFromSource(src)
	require.NoError(t, err)
	assert.Equal(t, "raw", string(out))
}

func TestDefaultDecompressUnsupportedAlgorithm(t *testing.T) {
	var d compress.Default
	_, err := d.Decompress(99, &byteSource{})
	require.Error(t, err)
}

func readAllFromSource(src parse.Source) ([]byte, error) {
	var out []byte
	buf := make([]byte, 8)
	for {
		n, ret, err := src.Read(buf, parse.ReturnLength)
		if err != nil {
			return out, err
		}
		out = append(out, buf[:n]...)
		if ret == parse.ReadEOF {
			return out, nil
		}
	}
}
