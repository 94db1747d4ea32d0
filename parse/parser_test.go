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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpeckett/pgpparse/types/subpackettag"
	"github.com/dpeckett/pgpparse/types/tag"
)

func TestParseEmptyStreamIsClean(t *testing.T) {
	opts := NewOptions(&bytesSource{}, func(Event) Disposition { return DispositionRelease })
	require.NoError(t, Parse(opts))
}

func TestParseUserIDOldFormat(t *testing.T) {
	body := []byte("Alice <alice@example.com>")
	data := oldFormatPacket(13, body)

	var got []UserID
	opts := NewOptions(&bytesSource{data: data}, func(e Event) Disposition {
		if e.Kind == EventUserID {
			got = append(got, e.Payload.(UserID))
		}
		return DispositionRelease
	})

	require.NoError(t, Parse(opts))
	require.Len(t, got, 1)
	assert.Equal(t, string(body), got[0].ID)
}

func TestParseUserIDNewFormatTwoByteLength(t *testing.T) {
	body := bytes.Repeat([]byte{'a'}, 200)
	data := newFormatPacket(13, body)

	var got UserID
	opts := NewOptions(&bytesSource{data: data}, func(e Event) Disposition {
		if e.Kind == EventUserID {
			got = e.Payload.(UserID)
		}
		return DispositionRelease
	})

	require.NoError(t, Parse(opts))
	assert.Equal(t, string(body), got.ID)
}

func TestPacketEndAccumulatesRawBytes(t *testing.T) {
	body := []byte("hello world")
	data := oldFormatPacket(13, body)

	var raw []byte
	opts := NewOptions(&bytesSource{data: data}, func(e Event) Disposition {
		if e.Kind == EventPacketEnd {
			raw = e.Payload.(PacketEnd).Raw
		}
		return DispositionRelease
	}).WithAccumulate(true)

	require.NoError(t, Parse(opts))
	assert.Equal(t, data, raw)
}

func TestParsePublicKeyRSA(t *testing.T) {
	body := []byte{
		4,          // version
		0, 0, 0, 0, // creation time
		1,    // algorithm: RSA
		0, 8, // N: 8 bits
		0x80, // N mantissa, valid shape
		0, 8, // E: 8 bits
		0x80, // E mantissa, valid shape
	}
	data := oldFormatPacket(6, body) // tag.PublicKey == 6

	var got PublicKey
	opts := NewOptions(&bytesSource{data: data}, func(e Event) Disposition {
		if e.Kind == EventPublicKey {
			got = e.Payload.(PublicKey)
		}
		return DispositionRelease
	})

	require.NoError(t, Parse(opts))
	require.NotNil(t, got.RSA)
	assert.EqualValues(t, 8, got.RSA.N.DeclaredBits)
	assert.Equal(t, AlgorithmRSA, got.Algorithm)
}

func TestPublicKeyMalformedMPIShapeIsError(t *testing.T) {
	body := []byte{
		4,
		0, 0, 0, 0,
		1,    // RSA
		0, 8, // 8 bits
		0x40, // top bit clear: invalid shape for an 8-bit value
	}
	data := oldFormatPacket(6, body)

	opts := NewOptions(&bytesSource{data: data}, func(Event) Disposition { return DispositionRelease })

	err := Parse(opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMPIShape)
}

func TestSignatureCriticalUnknownSubpacketIsError(t *testing.T) {
	body := []byte{
		4,    // version
		0,    // signature type
		1,    // key algorithm: RSA
		2,    // hash algorithm
		0, 2, // hashed subpacket set length
		1,    // subpacket length (type octet only)
		0xE3, // critical bit set, type 99 (unrecognized, non-user-defined)
	}
	data := oldFormatPacket(2, body) // tag.Signature == 2

	opts := NewOptions(&bytesSource{data: data}, func(Event) Disposition { return DispositionRelease })

	err := Parse(opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCriticalSubpacketIgnored)
}

func signatureWithIssuerKeyID() []byte {
	return []byte{
		4, 0, 1, 2, // version, type, key alg RSA, hash alg
		0, 10, // hashed subpacket set length
		9, 16, 1, 2, 3, 4, 5, 6, 7, 8, // issuer key id subpacket (non-critical)
		0, 0, // unhashed subpacket set, empty
		0xAA, 0xBB, // left 16 bits of hash
		0, 8, 0x80, // RSA signature MPI: 8 bits, valid shape
	}
}

func TestSignatureIssuerKeyIDRouting(t *testing.T) {
	t.Run("raw routing bypasses the signer-id side effect", func(t *testing.T) {
		data := oldFormatPacket(2, signatureWithIssuerKeyID())

		var raw *RawSubpacket
		var sig Signature
		opts := NewOptions(&bytesSource{data: data}, func(e Event) Disposition {
			switch e.Kind {
			case EventRawSubpacket:
				payload := e.Payload.(RawSubpacket)
				raw = &payload
			case EventSignature:
				sig = e.Payload.(Signature)
			}
			return DispositionRelease
		})
		opts.SetSubpacketRouting(subpackettag.IssuerKeyID, subpackettag.RouteRaw)

		require.NoError(t, Parse(opts))
		require.NotNil(t, raw)
		assert.False(t, sig.SignerIDSet)
	})

	t.Run("parsed routing sets the signer id", func(t *testing.T) {
		data := oldFormatPacket(2, signatureWithIssuerKeyID())

		var issuer *IssuerKeyIDSubpacket
		var sig Signature
		opts := NewOptions(&bytesSource{data: data}, func(e Event) Disposition {
			switch e.Kind {
			case EventSubpacketIssuerKeyID:
				payload := e.Payload.(IssuerKeyIDSubpacket)
				issuer = &payload
			case EventSignature:
				sig = e.Payload.(Signature)
			}
			return DispositionRelease
		})
		opts.SetSubpacketRouting(subpackettag.IssuerKeyID, subpackettag.RouteParsed)

		require.NoError(t, Parse(opts))
		require.NotNil(t, issuer)
		assert.True(t, sig.SignerIDSet)
		assert.Equal(t, issuer.KeyID, sig.SignerID)
		assert.Equal(t, [8]byte{1, 2, 3, 4, 5, 6, 7, 8}, [8]byte(sig.SignerID))
	})
}

func TestSignatureV4HashedDataSpan(t *testing.T) {
	data := oldFormatPacket(2, signatureWithIssuerKeyID())

	var sig Signature
	opts := NewOptions(&bytesSource{data: data}, func(e Event) Disposition {
		if e.Kind == EventSignature {
			sig = e.Payload.(Signature)
		}
		return DispositionRelease
	})
	opts.SetSubpacketRouting(subpackettag.IssuerKeyID, subpackettag.RouteParsed)

	require.NoError(t, Parse(opts))
	// version(1) + type(1) + keyalg(1) + hashalg(1) + hashed-set-length(2) + hashed-set-body(10) = 16
	assert.EqualValues(t, 16, sig.V4HashedDataLength)
}

func signatureWithCreationTime() []byte {
	return []byte{
		4, 0, 1, 2, // version, type, key alg RSA, hash alg
		0, 6, // hashed subpacket set length
		5, 2, 0, 0, 0, 1, // creation-time subpacket (non-critical), time = 1
		0, 0, // unhashed subpacket set, empty
		0xAA, 0xBB, // left 16 bits of hash
		0, 8, 0x80, // RSA signature MPI: 8 bits, valid shape
	}
}

func TestSignatureCreationTimeSubpacketSetsSignature(t *testing.T) {
	data := oldFormatPacket(2, signatureWithCreationTime())

	var sig Signature
	opts := NewOptions(&bytesSource{data: data}, func(e Event) Disposition {
		if e.Kind == EventSignature {
			sig = e.Payload.(Signature)
		}
		return DispositionRelease
	})

	require.NoError(t, Parse(opts))
	require.True(t, sig.CreationTimeSet)
	assert.Equal(t, int64(1), sig.CreationTime.Unix())
}

func TestPTagPositionAdvancesAcrossPackets(t *testing.T) {
	first := oldFormatPacket(13, []byte("ab"))
	second := oldFormatPacket(13, []byte("cde"))
	data := append(append([]byte{}, first...), second...)

	var positions []uint32
	opts := NewOptions(&bytesSource{data: data}, func(e Event) Disposition {
		if e.Kind == EventPTag {
			positions = append(positions, e.Payload.(tag.Packet).Position)
		}
		return DispositionRelease
	})

	require.NoError(t, Parse(opts))
	require.Len(t, positions, 2)
	assert.EqualValues(t, 0, positions[0])
	assert.EqualValues(t, len(first), positions[1])
}

func TestUnknownContentTagIsError(t *testing.T) {
	data := oldFormatPacket(10, []byte{1, 2, 3}) // tag.Marker, not dispatched by the driver

	opts := NewOptions(&bytesSource{data: data}, func(Event) Disposition { return DispositionRelease })

	err := Parse(opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFraming)
}

func TestFormatErrorOnReservedBitUnset(t *testing.T) {
	data := []byte{0x00, 0x01, 0xFF}

	opts := NewOptions(&bytesSource{data: data}, func(Event) Disposition { return DispositionRelease })

	err := Parse(opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFraming)
}
