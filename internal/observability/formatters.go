// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/linkedin-scraper/internal/profile"
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

func orDash(value *string) string {
	if value == nil {
		return "-"
	}
	return *value
}

// PrintResult outputs a human-readable summary of a scraped profile.
func (p *Printer) PrintResult(result *profile.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", orDash(result.UserProfile.FullName)))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", orDash(result.UserProfile.Title)))
	if loc := result.UserProfile.Location; loc != nil {
		parts := []string{}
		for _, part := range []*string{loc.City, loc.Province, loc.Country} {
			if part != nil {
				parts = append(parts, *part)
			}
		}
		sb.WriteString(fmt.Sprintf("Location: %s\n", strings.Join(parts, ", ")))
	}
	sb.WriteString(fmt.Sprintf("URL:      %s\n", result.UserProfile.URL))
	sb.WriteString("\n")

	if len(result.Experiences) > 0 {
		sb.WriteString(fmt.Sprintf("Experiences (%d):\n", len(result.Experiences)))
		count := min(len(result.Experiences), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := result.Experiences[i]
			sb.WriteString(fmt.Sprintf("  • %s", orDash(exp.Title)))
			if exp.Company != nil {
				sb.WriteString(fmt.Sprintf(" @ %s", *exp.Company))
			}
			if exp.EndDateIsPresent {
				sb.WriteString(" (current)")
			}
			sb.WriteString("\n")
		}
		if len(result.Experiences) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Experiences)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(result.Education) > 0 {
		sb.WriteString(fmt.Sprintf("Education (%d):\n", len(result.Education)))
		count := min(len(result.Education), 3)
		for i := 0; i < count; i++ {
			edu := result.Education[i]
			sb.WriteString(fmt.Sprintf("  • %s", orDash(edu.SchoolName)))
			if edu.DegreeName != nil {
				sb.WriteString(fmt.Sprintf(" (%s)", *edu.DegreeName))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(result.Skills) > 0 {
		names := make([]string, 0, len(result.Skills))
		for _, skill := range result.Skills {
			if skill.SkillName != nil {
				names = append(names, *skill.SkillName)
			}
		}
		skills := strings.Join(names, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills:   %s\n", skills))
	}
	sb.WriteString(fmt.Sprintf("Volunteering entries: %d", len(result.VolunteerExperiences)))

	p.printBox("SCRAPED PROFILE", sb.String())
}
