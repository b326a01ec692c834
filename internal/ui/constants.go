// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

const (
	headerHeight = 2 // Title line plus the rule under it.
	footerHeight = 2 // Rule plus the status/help line.
)
