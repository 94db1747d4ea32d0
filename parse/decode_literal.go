// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parse

// literalDataChunkSize bounds how much of a literal data packet's body
// is buffered for a single EventLiteralDataBody, so a large literal
// packet streams through as a sequence of events rather than being
// held in memory whole.
const literalDataChunkSize = 8192

func decodeLiteralData(r *reader, rgn *region, opts *Options) error {
	format, err := r.readOctet(rgn)
	if err != nil {
		return err
	}

	filenameLen, err := r.readOctet(rgn)
	if err != nil {
		return err
	}
	filenameData, err := r.readData(rgn, uint32(filenameLen))
	if err != nil {
		return err
	}

	modTime, err := r.readTime(rgn)
	if err != nil {
		return err
	}

	opts.emit(Event{Kind: EventLiteralDataHeader, Payload: LiteralDataHeader{
		Format:           format,
		Filename:         string(filenameData),
		ModificationTime: modTime,
	}})

	for rgn.lengthRead < rgn.length {
		remaining := rgn.length - rgn.lengthRead
		chunkLen := remaining
		if chunkLen > literalDataChunkSize {
			chunkLen = literalDataChunkSize
		}
		data, err := r.readData(rgn, chunkLen)
		if err != nil {
			return err
		}
		opts.emit(Event{Kind: EventLiteralDataBody, Payload: LiteralDataBody{Data: data}})
	}

	return nil
}
