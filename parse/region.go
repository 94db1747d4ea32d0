// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parse

// region is a nested length envelope bounding how many bytes a
// decoder may read before it must stop. Every packet body is a region
// rooted at nil; signature subpackets and subpacket sets open child
// regions. A read against any region also advances lengthRead on every
// ancestor, so a parent region never loses track of how much of its
// own declared length a nested region has consumed.
type region struct {
	length        uint32
	lengthRead    uint32
	lastRead      uint32
	indeterminate bool
	parent        *region
}

func newRegion(parent *region, length uint32, indeterminate bool) *region {
	return &region{length: length, indeterminate: indeterminate, parent: parent}
}
