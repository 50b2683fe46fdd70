package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yzke/dlog/internal/domain"
)

var (
	idStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("212"))

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("219"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("78"))
)

// renderEntry prints one entry. In recursive mode the entry's
// directory is shown as well, since results span multiple directories.
func renderEntry(w io.Writer, e domain.LogEntry, showDir bool) {
	header := idStyle.Render(fmt.Sprintf("[%d]", e.ID)) + " " +
		timeStyle.Render(e.Time().Local().Format("2006-01-02 15:04:05"))
	if e.Tags != "" {
		header += " " + tagStyle.Render("| Tags: "+e.Tags)
	}
	fmt.Fprintln(w, header)

	if showDir {
		fmt.Fprintln(w, dimStyle.Render("  └─ "+e.Directory))
	}

	fmt.Fprintln(w, strings.TrimRight(e.Content, "\n"))
	fmt.Fprintln(w, dimStyle.Render(strings.Repeat("─", 40)))
}

func success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, successStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}
