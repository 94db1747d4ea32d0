// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parse

// accumulator captures the raw bytes of the packet currently being
// decoded, for delivery in the packet's EventPacketEnd. Its length is
// tracked unconditionally (every primitive read against the reader
// adds to it), since EventPacketEnd.Length is reported regardless of
// whether the caller asked for the bytes themselves; only when store
// is set does it actually retain them. It resets every packet, unlike
// reader.totalRead, so it cannot supply a stream-wide PTag position.
// Growth is left to append's own amortized doubling rather than a
// hand-rolled capacity-doubling loop.
type accumulator struct {
	store  bool
	buf    []byte
	length uint32
}

func newAccumulator(store bool) *accumulator {
	return &accumulator{store: store}
}

func (a *accumulator) append(b []byte) {
	a.length += uint32(len(b))
	if a.store {
		a.buf = append(a.buf, b...)
	}
}

func (a *accumulator) bytes() []byte {
	return a.buf
}
