// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorize(t *testing.T) {
	prev := SetEnabled(true)
	defer SetEnabled(prev)

	assert.Equal(t, "\033[31mhi\033[0m", Colorize("hi", FgRed))
	assert.Equal(t, "\033[97;36mhi\033[0m", Colorize("hi", FgHiWhite, FgCyan))
	assert.Equal(t, "hi", Colorize("hi"))
}

func TestColorize_Disabled(t *testing.T) {
	prev := SetEnabled(false)
	defer SetEnabled(prev)

	assert.Equal(t, "hi", Colorize("hi", FgYellow, FgWhite))
	assert.False(t, Enabled())
}

func TestDetect_NoColorWins(t *testing.T) {
	t.Setenv(NoColor, "1")
	t.Setenv(ForceColor, "1")

	assert.False(t, detect(nil))
}

func TestDetect_ForceColor(t *testing.T) {
	t.Setenv(NoColor, "")
	t.Setenv(ForceColor, "1")

	assert.True(t, detect(nil))
}
