// Package output formats command results for the terminal.
package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"gitkit.dev/gitkit"
)

var (
	branchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ccbf1")).Bold(true)
	stagedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#4dca7d"))
	modifiedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f5c800"))
	conflictStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f46251")).Bold(true)
	untrackedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f89048"))
	dimStyle       = lipgloss.NewStyle().Faint(true)
)

// IsInteractive reports whether both stdin and stdout are attached to a
// terminal.
func IsInteractive() bool {
	return (isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
}

// FormatStatus renders a parsed status for display. Styling is dropped
// when colored is false so piped output stays plain text.
func FormatStatus(status *gitkit.Status, colored bool) string {
	style := func(s lipgloss.Style, text string) string {
		if !colored {
			return text
		}
		return s.Render(text)
	}

	var b strings.Builder

	head := status.BranchHead
	if head == "" {
		head = "(unknown)"
	}
	b.WriteString("On branch " + style(branchStyle, head) + "\n")

	if status.HasUpstream() {
		b.WriteString(fmt.Sprintf("Tracking %s", style(branchStyle, status.Upstream)))
		if status.Ahead > 0 || status.Behind > 0 {
			b.WriteString(fmt.Sprintf(" (ahead %d, behind %d)", status.Ahead, status.Behind))
		}
		b.WriteString("\n")
	}

	if status.IsClean() {
		b.WriteString("\nNothing to commit, working tree clean\n")
		return b.String()
	}

	if len(status.Unmerged) > 0 {
		b.WriteString("\nUnmerged paths:\n")
		for _, entry := range status.Unmerged {
			b.WriteString("  " + style(conflictStyle, "both modified:  "+entry.Path) + "\n")
		}
	}

	var staged, unstaged []string
	for _, entry := range status.Changed {
		if entry.Index != '.' {
			staged = append(staged, describeChange(entry.Index, entry.Path))
		}
		if entry.Worktree != '.' {
			unstaged = append(unstaged, describeChange(entry.Worktree, entry.Path))
		}
	}
	for _, entry := range status.Renamed {
		staged = append(staged, fmt.Sprintf("renamed:    %s -> %s", entry.OrigPath, entry.Path))
	}

	if len(staged) > 0 {
		b.WriteString("\nChanges to be committed:\n")
		for _, line := range staged {
			b.WriteString("  " + style(stagedStyle, line) + "\n")
		}
	}
	if len(unstaged) > 0 {
		b.WriteString("\nChanges not staged for commit:\n")
		for _, line := range unstaged {
			b.WriteString("  " + style(modifiedStyle, line) + "\n")
		}
	}
	if len(status.Untracked) > 0 {
		b.WriteString("\nUntracked files:\n")
		for _, path := range status.Untracked {
			b.WriteString("  " + style(untrackedStyle, path) + "\n")
		}
	}
	if len(status.Ignored) > 0 {
		b.WriteString("\nIgnored files:\n")
		for _, path := range status.Ignored {
			b.WriteString("  " + style(dimStyle, path) + "\n")
		}
	}

	return b.String()
}

func describeChange(code byte, path string) string {
	switch code {
	case 'M':
		return "modified:   " + path
	case 'A':
		return "new file:   " + path
	case 'D':
		return "deleted:    " + path
	case 'T':
		return "typechange: " + path
	default:
		return fmt.Sprintf("%c:          %s", code, path)
	}
}
