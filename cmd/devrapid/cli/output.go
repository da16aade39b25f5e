// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether w is a file connected to a terminal.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// WriteHighlighted writes source followed by a newline. On a terminal
// it is syntax-highlighted as language ("json", "markdown", ...);
// elsewhere, and when highlighting fails, it is written unchanged.
func WriteHighlighted(w io.Writer, source, language string) error {
	if IsTerminal(w) {
		var highlighted strings.Builder
		if err := quick.Highlight(&highlighted, source, language, "terminal256", "monokai"); err == nil {
			source = highlighted.String()
		}
	}
	_, err := fmt.Fprintln(w, source)
	return err
}

// Check is one line of a checklist.
type Check struct {
	// Name describes what was checked.
	Name string

	// Err is nil when the check passed.
	Err error
}

// checklistStyles holds the rendered status labels.
type checklistStyles struct {
	pass   lipgloss.Style
	fail   lipgloss.Style
	detail lipgloss.Style
}

func newChecklistStyles(w io.Writer) checklistStyles {
	renderer := lipgloss.NewRenderer(w)
	if IsTerminal(w) {
		renderer.SetColorProfile(termenv.ANSI256)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return checklistStyles{
		pass:   renderer.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		fail:   renderer.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		detail: renderer.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// WriteChecklist writes one "PASS name" or "FAIL name  error" line per
// check, with names padded to a common width, and returns the number of
// failures. Labels are colored on terminals only.
func WriteChecklist(w io.Writer, checks []Check) (int, error) {
	styles := newChecklistStyles(w)

	nameWidth := 0
	for _, check := range checks {
		nameWidth = max(nameWidth, ansi.StringWidth(check.Name))
	}

	failures := 0
	for _, check := range checks {
		label := styles.pass.Render("PASS")
		detail := ""
		if check.Err != nil {
			failures++
			label = styles.fail.Render("FAIL")
			detail = "  " + styles.detail.Render(check.Err.Error())
		}
		padding := strings.Repeat(" ", nameWidth-ansi.StringWidth(check.Name))
		line := strings.TrimRight(fmt.Sprintf("%s %s%s%s", label, check.Name, padding, detail), " ")
		if _, err := fmt.Fprintln(w, line); err != nil {
			return failures, err
		}
	}
	return failures, nil
}
