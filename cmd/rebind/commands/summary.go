package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/rebind/internal/core/domain"
)

var (
	colorIris  = lipgloss.Color("#5D3FD3")
	colorSlate = lipgloss.Color("#667085")
	colorWhite = lipgloss.Color("#FFFFFF")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(colorIris).
			Foreground(colorWhite)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorSlate).
			Width(12)

	countStyle = lipgloss.NewStyle().
			Bold(true)

	headingStyle = lipgloss.NewStyle().
			Foreground(colorIris).
			Bold(true).
			MarginTop(1)

	skippedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // Orange

	fileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")) // Green

	faintStyle = lipgloss.NewStyle().
			Foreground(colorSlate).
			Faint(true)
)

// renderReport writes the end-of-run summary.
func renderReport(w io.Writer, r *domain.Report, dryRun bool) {
	var b strings.Builder

	title := titleStyle.Render("rebind " + string(r.Mode))
	if dryRun {
		title += " " + faintStyle.Render("(dry run)")
	}
	b.WriteString(title + "\n")

	changedLabel, createdLabel := "Changed", "Created"
	if dryRun {
		changedLabel, createdLabel = "To change", "To create"
	}

	rows := []struct {
		label string
		n     int
	}{
		{"Projects", r.Projects},
		{"Packages", r.Packages},
		{"Raised", r.Raised},
		{"Reconciled", len(r.Reconciled)},
		{"Skipped", len(r.Skipped)},
		{changedLabel, len(r.Changed)},
		{createdLabel, len(r.Created)},
	}
	for _, row := range rows {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(row.label),
			countStyle.Render(strconv.Itoa(row.n)),
		) + "\n")
	}

	if len(r.Skipped) > 0 {
		b.WriteString(headingStyle.Render("Skipped packages") + "\n")
		for _, key := range r.Skipped {
			b.WriteString("  " + skippedStyle.Render(key.Name+" "+key.Version) + "\n")
		}
	}

	if dryRun {
		writeFiles(&b, "Would change", r.Changed)
		writeFiles(&b, "Would create", r.Created)
	} else {
		writeFiles(&b, "Changed files", r.Changed)
		writeFiles(&b, "Created files", r.Created)
	}

	if r.RunID != "" {
		b.WriteString(faintStyle.Render("run "+r.RunID) + "\n")
	}

	_, _ = fmt.Fprint(w, b.String())
}

func writeFiles(b *strings.Builder, heading string, paths []string) {
	if len(paths) == 0 {
		return
	}
	b.WriteString(headingStyle.Render(heading) + "\n")
	for _, p := range paths {
		b.WriteString("  " + fileStyle.Render(p) + "\n")
	}
}
