// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parse

// decodeTrust reads the rest of the packet region as opaque trust
// data (RFC 4880 section 5.10). This core never interprets it; a
// local keyring layer with its own trust model is expected to.
func decodeTrust(r *reader, rgn *region, opts *Options) error {
	data, err := r.readRestAsData(rgn)
	if err != nil {
		return err
	}
	opts.emit(Event{Kind: EventTrust, Payload: Trust{Data: data}})
	return nil
}
