// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearScreen is what termenv emits to erase the display and move the cursor to 1,1.
const clearScreen = "\x1b[2J\x1b[1;1H"

func TestNew_NonTerminalDoesNotClear(t *testing.T) {
	buf := &bytes.Buffer{}
	c := New(buf)

	assert.False(t, c.ClearScreen)
	c.Clear()
	assert.Empty(t, buf.String())
}

func TestStarted_ClearsThenPrintsBanner(t *testing.T) {
	buf := &bytes.Buffer{}
	c := New(buf)
	c.ClearScreen = true

	c.Started(context.Background())

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, clearScreen))
	assert.Contains(t, out, Banner)
	assert.Less(t, strings.Index(out, clearScreen), strings.Index(out, Banner))
	assert.True(t, strings.HasSuffix(out, "\n\n"))
	assert.Equal(t, 1, strings.Count(out, Banner))
}

func TestClear_UsesRendererOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	other := &bytes.Buffer{}
	c := &Console{Out: other, Renderer: lipgloss.NewRenderer(buf), ClearScreen: true}

	c.Clear()

	assert.Equal(t, clearScreen, buf.String())
	assert.Empty(t, other.String())
}

func TestPrint_Bold(t *testing.T) {
	buf := &bytes.Buffer{}
	r := lipgloss.NewRenderer(buf)
	r.SetColorProfile(termenv.ANSI)

	c := &Console{Out: buf, Renderer: r}
	require.NoError(t, c.Print(Banner))

	out := buf.String()
	assert.Contains(t, out, "\x1b[1m")
	assert.Contains(t, out, Banner)
	assert.True(t, strings.HasPrefix(out, "\n"))
}

func TestPrint_PlainWithoutColourProfile(t *testing.T) {
	buf := &bytes.Buffer{}
	r := lipgloss.NewRenderer(buf)
	r.SetColorProfile(termenv.Ascii)

	c := &Console{Out: buf, Renderer: r}
	require.NoError(t, c.Print("hello"))

	assert.Equal(t, "\n hello\n\n", buf.String())
}
