// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/linkedin-cv/internal/resume"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocumentStats outputs a summary of the text recovered from the
// uploaded document.
func (p *Printer) PrintDocumentStats(text string, elapsed time.Duration) {
	var sb strings.Builder
	lines := strings.Count(text, "\n") + 1
	sb.WriteString(fmt.Sprintf("Characters: %d\n", len(text)))
	sb.WriteString(fmt.Sprintf("Lines:      %d\n", lines))
	sb.WriteString(fmt.Sprintf("Extracted in %v", elapsed.Round(time.Millisecond)))

	p.printBox("DOCUMENT TEXT", sb.String())
}

// PrintResume outputs a human-readable summary of an extracted resume.
func (p *Printer) PrintResume(data *resume.ResumeData) {
	if data == nil {
		return
	}

	var sb strings.Builder

	info := data.PersonalInfo
	sb.WriteString(fmt.Sprintf("Name:     %s\n", info.FullName))
	if info.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", info.Email))
	}
	if info.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", info.Location))
	}
	sb.WriteString("\n")

	if len(data.Experience) > 0 {
		sb.WriteString(fmt.Sprintf("Experience (%d):\n", len(data.Experience)))
		count := min(len(data.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := data.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s", exp.Title))
			if exp.Company != "" {
				sb.WriteString(fmt.Sprintf(" @ %s", exp.Company))
			}
			sb.WriteString("\n")
		}
		if len(data.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(data.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(data.Education) > 0 {
		sb.WriteString(fmt.Sprintf("Education (%d):\n", len(data.Education)))
		count := min(len(data.Education), 3)
		for i := 0; i < count; i++ {
			edu := data.Education[i]
			sb.WriteString(fmt.Sprintf("  • %s", edu.School))
			if edu.Degree != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", edu.Degree))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	p.printTaggedLine(&sb, "Skills", data.Skills)
	p.printTaggedLine(&sb, "Languages", data.Languages)
	p.printTaggedLine(&sb, "Certifications", data.Certifications)

	p.printBox("EXTRACTED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printTaggedLine(sb *strings.Builder, label string, items []resume.TaggedItem) {
	if len(items) == 0 {
		return
	}
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	joined := strings.Join(names, ", ")
	if len(joined) > 40 {
		joined = joined[:37] + "..."
	}
	sb.WriteString(fmt.Sprintf("%s (%d): %s\n", label, len(items), joined))
}

// PrintArtifact outputs a summary of a produced export artifact.
func (p *Printer) PrintArtifact(filename string, size int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File: %s\n", filename))
	sb.WriteString(fmt.Sprintf("Size: %d bytes", size))

	p.printBox("EXPORT ARTIFACT", sb.String())
}
