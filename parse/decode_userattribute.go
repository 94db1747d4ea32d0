// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parse

// decodeUserAttribute reads the rest of the packet region as an
// opaque attribute subpacket stream (RFC 4880 section 5.12). This
// core does not decode the JPEG image subpacket it usually contains;
// callers that need it can do so from the raw bytes delivered here.
func decodeUserAttribute(r *reader, rgn *region, opts *Options) error {
	data, err := r.readRestAsData(rgn)
	if err != nil {
		return err
	}
	opts.emit(Event{Kind: EventUserAttribute, Payload: UserAttribute{Data: data}})
	return nil
}
