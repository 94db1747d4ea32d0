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
	"github.com/dpeckett/pgpparse/types/keyid"
	"github.com/dpeckett/pgpparse/types/subpackettag"
)

// decodeSignatureSubpacketSet reads a two-octet subpacket-set length
// followed by that many bytes of individual subpackets (RFC 4880
// section 5.2.3), bounding them in a child region of the enclosing
// signature's region.
func decodeSignatureSubpacketSet(r *reader, parent *region, opts *Options, sig *Signature) error {
	length, err := r.readScalar(parent, 2)
	if err != nil {
		return err
	}
	set := newRegion(parent, length, false)
	for set.lengthRead < set.length {
		if err := decodeOneSignatureSubpacket(r, set, opts, sig); err != nil {
			return err
		}
	}
	if set.lengthRead != set.length {
		return fail(opts, newParseError(ErrUnconsumedData, "unconsumed data in subpacket set (%d bytes)", set.length-set.lengthRead))
	}
	return nil
}

// decodeOneSignatureSubpacket reads one subpacket's new-format length,
// its type-and-critical octet, and then routes its body: raw delivery
// bypasses the typed decoder entirely (so, notably, an issuer-key-id
// subpacket routed raw does not populate sig.SignerID — a caller that
// wants both the raw bytes and the side effect must route it parsed);
// otherwise the typed decoder always runs, if one exists for the
// type, and its result is either delivered (parsed routing) or
// discarded (ignored routing, where a critical bit is a hard error
// regardless of whether the type itself was recognized).
func decodeOneSignatureSubpacket(r *reader, parent *region, opts *Options, sig *Signature) error {
	length, err := r.readNewLengthIn(parent)
	if err != nil {
		return err
	}
	sub := newRegion(parent, length, false)

	first, err := r.readOctet(sub)
	if err != nil {
		return err
	}
	critical := first&0x80 != 0
	spType := subpackettag.Type(first & 0x7f)

	if opts.ssRaw[spType] {
		data, err := r.readRestAsData(sub)
		if err != nil {
			return err
		}
		opts.emit(Event{Kind: EventRawSubpacket, Critical: critical, Payload: RawSubpacket{
			Tag:    spType,
			Length: sub.length - 1,
			Data:   data,
		}})
		return nil
	}

	kind, payload, known, err := decodeSubpacketTyped(r, sub, opts, spType, sig)
	if err != nil {
		return err
	}

	if !opts.ssParsed[spType] {
		if critical {
			return fail(opts, newParseError(ErrCriticalSubpacketIgnored, "critical signature subpacket ignored (type %d)", spType))
		}
		return r.limitedSkip(sub, sub.length-sub.lengthRead)
	}

	if !known {
		return fail(opts, newParseError(ErrFraming, "unknown signature subpacket type (%d)", spType))
	}
	if sub.lengthRead != sub.length {
		return fail(opts, newParseError(ErrUnconsumedData, "unconsumed data in subpacket (%d bytes)", sub.length-sub.lengthRead))
	}

	opts.emit(Event{Kind: kind, Critical: critical, Payload: payload})
	return nil
}

var timeSubpacketKinds = map[subpackettag.Type]EventKind{
	subpackettag.SignatureExpirationTime: EventSubpacketSignatureExpirationTime,
	subpackettag.KeyExpirationTime:       EventSubpacketKeyExpirationTime,
}

var opaqueSubpacketKinds = map[subpackettag.Type]EventKind{
	subpackettag.PreferredSymmetricAlgorithms:   EventSubpacketPreferredSymmetricAlgorithms,
	subpackettag.PreferredHashAlgorithms:        EventSubpacketPreferredHashAlgorithms,
	subpackettag.PreferredCompressionAlgorithms: EventSubpacketPreferredCompressionAlgorithms,
	subpackettag.KeyFlags:                       EventSubpacketKeyFlags,
	subpackettag.KeyServerPreferences:           EventSubpacketKeyServerPreferences,
	subpackettag.Features:                       EventSubpacketFeatures,
}

var stringSubpacketKinds = map[subpackettag.Type]EventKind{
	subpackettag.PolicyURL:          EventSubpacketPolicyURL,
	subpackettag.Regexp:             EventSubpacketRegexp,
	subpackettag.PreferredKeyServer: EventSubpacketPreferredKeyServer,
	subpackettag.SignersUserID:      EventSubpacketSignersUserID,
}

// decodeSubpacketTyped decodes the body of one signature subpacket
// according to its type. known is false only when spType has no case
// below and is not in the user-defined range; in that case the caller
// is responsible for skipping sub's remaining bytes itself, since no
// read has been attempted.
func decodeSubpacketTyped(r *reader, sub *region, opts *Options, spType subpackettag.Type, sig *Signature) (EventKind, any, bool, error) {
	if kind, ok := timeSubpacketKinds[spType]; ok {
		t, err := r.readTime(sub)
		if err != nil {
			return 0, nil, true, err
		}
		return kind, TimeSubpacket{Time: t}, true, nil
	}

	if kind, ok := opaqueSubpacketKinds[spType]; ok {
		data, err := r.readRestAsData(sub)
		if err != nil {
			return 0, nil, true, err
		}
		return kind, OpaqueSubpacket{Data: data}, true, nil
	}

	if kind, ok := stringSubpacketKinds[spType]; ok {
		s, err := r.readString(sub)
		if err != nil {
			return 0, nil, true, err
		}
		return kind, StringSubpacket{Text: s}, true, nil
	}

	switch spType {
	case subpackettag.CreationTime:
		t, err := r.readTime(sub)
		if err != nil {
			return 0, nil, true, err
		}
		sig.CreationTime = t
		sig.CreationTimeSet = true
		return EventSubpacketCreationTime, TimeSubpacket{Time: t}, true, nil

	case subpackettag.TrustSignature:
		level, err := r.readOctet(sub)
		if err != nil {
			return 0, nil, true, err
		}
		amount, err := r.readOctet(sub)
		if err != nil {
			return 0, nil, true, err
		}
		return EventSubpacketTrust, TrustSubpacket{Level: level, Amount: amount}, true, nil

	case subpackettag.Revocable:
		b, err := r.readOctet(sub)
		if err != nil {
			return 0, nil, true, err
		}
		return EventSubpacketRevocable, BoolSubpacket{Value: b != 0}, true, nil

	case subpackettag.PrimaryUserID:
		b, err := r.readOctet(sub)
		if err != nil {
			return 0, nil, true, err
		}
		return EventSubpacketPrimaryUserID, BoolSubpacket{Value: b != 0}, true, nil

	case subpackettag.IssuerKeyID:
		data, err := r.readData(sub, keyid.Size)
		if err != nil {
			return 0, nil, true, err
		}
		var id keyid.ID
		copy(id[:], data)
		sig.SignerID = id
		sig.SignerIDSet = true
		return EventSubpacketIssuerKeyID, IssuerKeyIDSubpacket{KeyID: id}, true, nil

	case subpackettag.NotationData:
		flagData, err := r.readData(sub, 4)
		if err != nil {
			return 0, nil, true, err
		}
		var flags [4]byte
		copy(flags[:], flagData)
		nameLen, err := r.readScalar(sub, 2)
		if err != nil {
			return 0, nil, true, err
		}
		valueLen, err := r.readScalar(sub, 2)
		if err != nil {
			return 0, nil, true, err
		}
		name, err := r.readData(sub, nameLen)
		if err != nil {
			return 0, nil, true, err
		}
		value, err := r.readData(sub, valueLen)
		if err != nil {
			return 0, nil, true, err
		}
		return EventSubpacketNotationData, NotationDataSubpacket{Flags: flags, Name: name, Value: value}, true, nil

	case subpackettag.RevocationReason:
		code, err := r.readOctet(sub)
		if err != nil {
			return 0, nil, true, err
		}
		text, err := r.readString(sub)
		if err != nil {
			return 0, nil, true, err
		}
		return EventSubpacketRevocationReason, RevocationReasonSubpacket{Code: code, Text: text}, true, nil

	case subpackettag.RevocationKey:
		class, err := r.readOctet(sub)
		if err != nil {
			return 0, nil, true, err
		}
		if class&0x80 == 0 {
			return 0, nil, true, fail(opts, newParseError(ErrFraming, "revocation key class octet: reserved bit 0x80 not set"))
		}
		algID, err := r.readOctet(sub)
		if err != nil {
			return 0, nil, true, err
		}
		fpData, err := r.readData(sub, keyid.FingerprintSize)
		if err != nil {
			return 0, nil, true, err
		}
		var fp keyid.Fingerprint
		copy(fp[:], fpData)
		return EventSubpacketRevocationKey, RevocationKeySubpacket{Class: class, AlgID: algID, Fingerprint: fp}, true, nil

	default:
		if spType.IsUserDefined() {
			data, err := r.readRestAsData(sub)
			if err != nil {
				return 0, nil, true, err
			}
			return EventSubpacketUserDefined, UserDefinedSubpacket{Type: spType, Data: data}, true, nil
		}
		return 0, nil, false, nil
	}
}
