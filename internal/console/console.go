// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package console clears the terminal and prints the banner shown when a batch starts.
package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/matt-FFFFFF/infrared/internal/color"
	"github.com/matt-FFFFFF/infrared/internal/ctxlog"
)

// Banner is printed every time a batch starts.
const Banner = "Starting file processing..."

// Console writes status output for humans.
type Console struct {
	Out      io.Writer
	Renderer *lipgloss.Renderer
	// ClearScreen controls whether Clear erases the display.
	ClearScreen bool
	mu          sync.Mutex
}

// New creates a Console on out. Clearing is enabled when out is a terminal.
func New(out io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}

	f, _ := out.(*os.File)

	return &Console{
		Out:         out,
		Renderer:    lipgloss.NewRenderer(out),
		ClearScreen: color.IsTerminal(f),
	}
}

// Clear erases prior terminal output and homes the cursor.
func (c *Console) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.ClearScreen {
		return
	}

	c.renderer().Output().ClearScreen()
}

// Print writes text in bold, surrounded by blank lines.
func (c *Console) Print(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	style := c.renderer().NewStyle().Bold(true)
	_, err := fmt.Fprintf(c.Out, "\n%s\n\n", style.Render(" "+text))

	return err //nolint:wrapcheck
}

// Started clears the console and prints Banner. Write failures are logged, never returned.
func (c *Console) Started(ctx context.Context) {
	c.Clear()

	if err := c.Print(Banner); err != nil {
		ctxlog.Debug(ctx, "unable to print banner", "error", err)
	}
}

func (c *Console) renderer() *lipgloss.Renderer {
	if c.Renderer == nil {
		c.Renderer = lipgloss.NewRenderer(c.Out)
	}

	return c.Renderer
}
