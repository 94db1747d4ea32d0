// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Package compress implements the default parse.Decompressor,
// covering all three compression algorithms RFC 4880 section 9.3
// defines.
package compress

import (
	stdbzip2 "compress/bzip2"
	"errors"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zlib"

	"github.com/dpeckett/pgpparse/parse"
)

const (
	AlgorithmUncompressed uint8 = 0
	AlgorithmZIP          uint8 = 1
	AlgorithmZLIB         uint8 = 2
	AlgorithmBZip2        uint8 = 3
)

// Default is the parse.Decompressor installed by applications that
// want COMPRESSED_DATA packet bodies decoded automatically. ZIP (raw
// DEFLATE) and ZLIB use klauspost/compress, a faster drop-in for the
// standard library's own implementations of both formats; BZip2 falls
// back to the standard library, since no third-party BZip2 reader
// exists for it to replace.
type Default struct{}

func (Default) Decompress(algorithm uint8, src parse.Source) (parse.Source, error) {
	upstream := &sourceReader{src: src}

	switch algorithm {
	case AlgorithmUncompressed:
		return src, nil
	case AlgorithmZIP:
		return &readerSource{r: flate.NewReader(upstream)}, nil
	case AlgorithmZLIB:
		zr, err := zlib.NewReader(upstream)
		if err != nil {
			return nil, err
		}
		return &readerSource{r: zr}, nil
	case AlgorithmBZip2:
		return &readerSource{r: stdbzip2.NewReader(upstream)}, nil
	default:
		return nil, errors.New("compress: unsupported compression algorithm")
	}
}

// sourceReader adapts a parse.Source to io.Reader, for handing to the
// third-party and standard-library decompressors, which only know how
// to pull from io.Reader.
type sourceReader struct {
	src parse.Source
}

func (r *sourceReader) Read(dest []byte) (int, error) {
	n, ret, err := r.src.Read(dest, parse.ReturnLength)
	if err != nil {
		return n, err
	}
	if ret == parse.ReadEOF {
		return n, io.EOF
	}
	if ret == parse.ReadError {
		return n, errors.New("compress: upstream read failed")
	}
	return n, nil
}

// readerSource adapts the decompressor's io.Reader back into a
// parse.Source, so the recovered packet stream can be re-driven
// through parse.Parse.
type readerSource struct {
	r io.Reader
}

func (s *readerSource) Read(dest []byte, flags parse.ReadFlags) (int, parse.ReadResult, error) {
	if flags&parse.ReturnLength != 0 {
		n, err := s.r.Read(dest)
		return classify(n, err)
	}
	n, err := io.ReadFull(s.r, dest)
	return classifyFull(n, err)
}

func classify(n int, err error) (int, parse.ReadResult, error) {
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

func classifyFull(n int, err error) (int, parse.ReadResult, error) {
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
