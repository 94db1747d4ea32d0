// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parse

// decodeUserID reads the rest of the packet region as a UTF-8 user ID
// string. Unlike the C string this packet type models, the result
// needs no trailing NUL — Go strings carry their own length.
func decodeUserID(r *reader, rgn *region, opts *Options) error {
	data, err := r.readRestAsData(rgn)
	if err != nil {
		return err
	}
	opts.emit(Event{Kind: EventUserID, Payload: UserID{ID: string(data)}})
	return nil
}
