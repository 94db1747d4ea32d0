// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package armor_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dpeckett/pgpparse/armor"
)

func TestCleartextSourceRejectsGarbage(t *testing.T) {
	_, err := armor.NewCleartextSource(strings.NewReader("not a clearsigned document"))
	require.Error(t, err)
}
