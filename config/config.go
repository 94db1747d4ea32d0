// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Package config loads signature-subpacket routing profiles from YAML,
// so which subpacket types get raw, parsed, or ignored delivery can be
// declared in a config file rather than hard-coded into a caller.
package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dpeckett/pgpparse/parse"
	"github.com/dpeckett/pgpparse/types/subpackettag"
)

// RoutingProfile is the YAML-serializable form of a signature
// subpacket routing table: a default routing applied to every type,
// plus named per-type overrides.
type RoutingProfile struct {
	Default   string            `yaml:"default"`
	Overrides map[string]string `yaml:"overrides"`
}

var namesByType = map[string]subpackettag.Type{
	"creation-time":                     subpackettag.CreationTime,
	"signature-expiration-time":         subpackettag.SignatureExpirationTime,
	"trust-signature":                   subpackettag.TrustSignature,
	"regexp":                            subpackettag.Regexp,
	"revocable":                         subpackettag.Revocable,
	"key-expiration-time":               subpackettag.KeyExpirationTime,
	"preferred-symmetric-algorithms":    subpackettag.PreferredSymmetricAlgorithms,
	"revocation-key":                    subpackettag.RevocationKey,
	"issuer-key-id":                     subpackettag.IssuerKeyID,
	"notation-data":                     subpackettag.NotationData,
	"preferred-hash-algorithms":         subpackettag.PreferredHashAlgorithms,
	"preferred-compression-algorithms":  subpackettag.PreferredCompressionAlgorithms,
	"key-server-preferences":            subpackettag.KeyServerPreferences,
	"preferred-key-server":              subpackettag.PreferredKeyServer,
	"primary-user-id":                   subpackettag.PrimaryUserID,
	"policy-url":                        subpackettag.PolicyURL,
	"key-flags":                         subpackettag.KeyFlags,
	"signers-user-id":                   subpackettag.SignersUserID,
	"revocation-reason":                 subpackettag.RevocationReason,
	"features":                          subpackettag.Features,
}

// LoadRoutingProfile decodes a YAML routing profile from r and applies
// it to opts.
func LoadRoutingProfile(r io.Reader, opts *parse.Options) error {
	var profile RoutingProfile
	if err := yaml.NewDecoder(r).Decode(&profile); err != nil {
		return fmt.Errorf("config: decoding routing profile: %w", err)
	}
	return ApplyRoutingProfile(profile, opts)
}

// ApplyRoutingProfile sets opts' default subpacket routing, then
// layers profile's named overrides on top of it.
func ApplyRoutingProfile(profile RoutingProfile, opts *parse.Options) error {
	def, err := subpackettag.ParseRouting(profile.Default)
	if err != nil {
		return fmt.Errorf("config: default routing: %w", err)
	}
	opts.SetAllSubpacketRouting(def)

	for name, routingName := range profile.Overrides {
		t, ok := namesByType[name]
		if !ok {
			return fmt.Errorf("config: unknown subpacket name %q", name)
		}
		routing, err := subpackettag.ParseRouting(routingName)
		if err != nil {
			return fmt.Errorf("config: routing for %q: %w", name, err)
		}
		opts.SetSubpacketRouting(t, routing)
	}

	return nil
}
