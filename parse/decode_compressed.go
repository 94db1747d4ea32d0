// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parse

// Decompressor decodes the body of a COMPRESSED_DATA packet into a
// Source of the packets it contains, selecting an implementation by
// the packet's one-byte compression algorithm octet (RFC 4880 section
// 9.3: 0 uninterpreted, 1 ZIP, 2 ZLIB, 3 BZip2). See package compress
// for the default implementation, built on klauspost/compress and the
// standard library's bzip2 reader.
type Decompressor interface {
	Decompress(algorithm uint8, src Source) (Source, error)
}

// decodeCompressed reads the algorithm octet, hands the remaining
// bytes of the packet region to the configured Decompressor, and then
// re-drives Parse against the recovered Source using the same
// Options, so the packets inside the compressed body are delivered as
// ordinary subsequent events rather than being modeled as a nested
// event stream.
func decodeCompressed(r *reader, rgn *region, opts *Options) error {
	algByte, err := r.readOctet(rgn)
	if err != nil {
		return err
	}

	opts.emit(Event{Kind: EventCompressed, Payload: Compressed{Algorithm: algByte}})

	if opts.Decompressor == nil {
		return fail(opts, newParseError(ErrFraming, "no decompressor configured for algorithm %d", algByte))
	}

	body := &regionSource{r: r, rgn: rgn}
	decompressed, err := opts.Decompressor.Decompress(algByte, body)
	if err != nil {
		return fail(opts, newParseError(ErrFraming, "decompression failed: %v", err))
	}

	nested := *opts
	nested.Source = decompressed
	return Parse(&nested)
}

// regionSource exposes the unread remainder of a region as a Source,
// so a Decompressor only ever sees bytes that belong to the
// COMPRESSED_DATA packet it was handed, never bytes beyond it — a
// tighter boundary guarantee than the original implementation's direct
// hand-off of its global reader to the decompression filter.
type regionSource struct {
	r   *reader
	rgn *region
}

func (s *regionSource) Read(dest []byte, flags ReadFlags) (int, ReadResult, error) {
	if !s.rgn.indeterminate {
		remaining := s.rgn.length - s.rgn.lengthRead
		if remaining == 0 {
			return 0, ReadEOF, nil
		}
		if uint32(len(dest)) > remaining {
			dest = dest[:remaining]
		}
	}

	n, ret, err := s.r.baseRead(dest, flags|ReturnLength)
	if err != nil {
		return n, ret, err
	}
	if n > 0 {
		s.rgn.lastRead = uint32(n)
		for rg := s.rgn; rg != nil; rg = rg.parent {
			rg.lengthRead += uint32(n)
		}
	}
	return n, ret, nil
}
