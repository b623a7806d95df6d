package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	purple = lipgloss.Color("99")
	green  = lipgloss.Color("76")
	red    = lipgloss.Color("204")
	yellow = lipgloss.Color("214")
	dim    = lipgloss.Color("243")
)

var (
	accentStyle  = lipgloss.NewStyle().Foreground(purple)
	successStyle = lipgloss.NewStyle().Foreground(green)
	errorStyle   = lipgloss.NewStyle().Foreground(red)
	warnStyle    = lipgloss.NewStyle().Foreground(yellow)
	mutedStyle   = lipgloss.NewStyle().Foreground(dim)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(purple)
	currentStyle = lipgloss.NewStyle().Bold(true)
)

func successMsg(format string, a ...any) string {
	return successStyle.Render("✓") + " " + fmt.Sprintf(format, a...)
}

func warnMsg(format string, a ...any) string {
	return warnStyle.Render("!") + " " + fmt.Sprintf(format, a...)
}

func errorMsg(format string, a ...any) string {
	return errorStyle.Render("✗") + " " + fmt.Sprintf(format, a...)
}

func infoMsg(format string, a ...any) string {
	return accentStyle.Render("●") + " " + fmt.Sprintf(format, a...)
}

// stepList renders the step names on one line with the current one marked.
func stepList(names []string, current string) string {
	parts := make([]string, len(names))
	for i, n := range names {
		if n == current {
			parts[i] = currentStyle.Render("[" + n + "]")
		} else {
			parts[i] = mutedStyle.Render(n)
		}
	}
	return strings.Join(parts, mutedStyle.Render(" › "))
}

const helpText = `commands:
  next [value]   move to the next step, passing value to validation
  prev           move to the previous step
  go <step>      move to a named step
  steps          list all steps
  help           show this help
  quit           exit`
