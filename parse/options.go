// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parse

import (
	"github.com/dpeckett/pgpparse/types/mpi"
	"github.com/dpeckett/pgpparse/types/subpackettag"
)

// Options configures one Parse call: the byte source to read from,
// the callback to deliver events to, and the per-subpacket-type
// routing tables that replace the original implementation's two
// 256-bit ss_raw/ss_parsed bitmaps. There is no functional-options
// builder here; fields are set directly or through the With* helpers
// below, matching how this codebase's other constructors take their
// configuration as plain arguments.
type Options struct {
	Source       Source
	Callback     Callback
	Accumulate   bool
	Decompressor Decompressor

	ssRaw    [256]bool
	ssParsed [256]bool

	mpiOpts mpi.Options
}

// NewOptions returns Options ready to drive a Parse against src,
// delivering events to cb. All signature subpackets are ignored by
// default; use SetSubpacketRouting or SetAllSubpacketRouting to
// request raw or parsed delivery.
func NewOptions(src Source, cb Callback) *Options {
	return &Options{Source: src, Callback: cb}
}

// WithAccumulate enables or disables packet-byte accumulation; when
// enabled, EventPacketEnd carries the raw bytes of the packet that
// just finished.
func (o *Options) WithAccumulate(v bool) *Options {
	o.Accumulate = v
	return o
}

// WithDecompressor installs the collaborator used to decode
// COMPRESSED_DATA packet bodies. See package compress for the default
// implementation.
func (o *Options) WithDecompressor(d Decompressor) *Options {
	o.Decompressor = d
	return o
}

// WithAllowEncryptedMPIShape relaxes the MPI leading-byte shape check
// for every MPI read during this parse, for contexts where an MPI's
// declared bit count describes ciphertext rather than plaintext.
func (o *Options) WithAllowEncryptedMPIShape(v bool) *Options {
	o.mpiOpts.AllowEncryptedShape = v
	return o
}

// SetSubpacketRouting selects how signature subpackets of type t are
// delivered.
func (o *Options) SetSubpacketRouting(t subpackettag.Type, r subpackettag.Routing) {
	o.ssRaw[t] = r == subpackettag.RouteRaw
	o.ssParsed[t] = r == subpackettag.RouteParsed
}

// SetAllSubpacketRouting applies r to every one of the 256 possible
// subpacket types in one call, mirroring ops_parse_options's
// OPS_PARSE_SS_ALL bulk setting. Call it first, then override
// individual types with SetSubpacketRouting as needed.
func (o *Options) SetAllSubpacketRouting(r subpackettag.Routing) {
	for t := 0; t < 256; t++ {
		o.SetSubpacketRouting(subpackettag.Type(t), r)
	}
}

// RoutingFor reports the delivery routing currently configured for
// subpacket type t.
func (o *Options) RoutingFor(t subpackettag.Type) subpackettag.Routing {
	if o.ssRaw[t] {
		return subpackettag.RouteRaw
	}
	if o.ssParsed[t] {
		return subpackettag.RouteParsed
	}
	return subpackettag.RouteIgnore
}

func (o *Options) emit(e Event) Disposition {
	if o.Callback == nil {
		return DispositionRelease
	}
	return o.Callback(e)
}
