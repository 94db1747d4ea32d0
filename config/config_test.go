// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpeckett/pgpparse/config"
	"github.com/dpeckett/pgpparse/parse"
	"github.com/dpeckett/pgpparse/types/subpackettag"
)

type noopSource struct{}

func (noopSource) Read(dest []byte, flags parse.ReadFlags) (int, parse.ReadResult, error) {
	return 0, parse.ReadEOF, nil
}

func TestLoadRoutingProfile(t *testing.T) {
	const doc = `
default: ignore
overrides:
  issuer-key-id: parsed
  notation-data: raw
`
	opts := parse.NewOptions(noopSource{}, nil)
	require.NoError(t, config.LoadRoutingProfile(strings.NewReader(doc), opts))

	assert.Equal(t, subpackettag.RouteParsed, opts.RoutingFor(subpackettag.IssuerKeyID))
	assert.Equal(t, subpackettag.RouteRaw, opts.RoutingFor(subpackettag.NotationData))
	assert.Equal(t, subpackettag.RouteIgnore, opts.RoutingFor(subpackettag.KeyFlags))
}

func TestApplyRoutingProfileUnknownName(t *testing.T) {
	opts := parse.NewOptions(noopSource{}, nil)
	err := config.ApplyRoutingProfile(config.RoutingProfile{
		Default:   "ignore",
		Overrides: map[string]string{"not-a-real-subpacket": "raw"},
	}, opts)
	require.Error(t, err)
}

func TestApplyRoutingProfileBadRoutingName(t *testing.T) {
	opts := parse.NewOptions(noopSource{}, nil)
	err := config.ApplyRoutingProfile(config.RoutingProfile{
		Default: "not-a-real-routing",
	}, opts)
	require.Error(t, err)
}
