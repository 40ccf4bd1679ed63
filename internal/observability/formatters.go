// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cofounder-match/internal/types"
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

// PrintProfile outputs a human-readable summary of a profile.
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	name := profile.Name
	if name == "" {
		name = profile.ID
	}
	sb.WriteString(fmt.Sprintf("Name:      %s\n", name))
	if profile.Goals != "" {
		sb.WriteString(fmt.Sprintf("Goal:      %s\n", profile.Goals))
	}
	if profile.StartupStage != "" {
		sb.WriteString(fmt.Sprintf("Stage:     %s\n", profile.StartupStage))
	}
	if profile.Location != "" {
		sb.WriteString(fmt.Sprintf("Location:  %s\n", profile.Location))
	}
	if profile.CollabStyle != "" {
		sb.WriteString(fmt.Sprintf("Style:     %s\n", profile.CollabStyle))
	}

	if len(profile.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(profile.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Skills[i]))
		}
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
	}

	if len(profile.Interests) > 0 {
		sb.WriteString("\nInterests:\n")
		count := min(len(profile.Interests), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Interests[i]))
		}
		if len(profile.Interests) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Interests)-3))
		}
	}

	p.printBox("PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatches outputs the top N match results with scores and explanations.
func (p *Printer) PrintMatches(targetID string, results []types.MatchResult) {
	if len(results) == 0 {
		p.printBox("MATCHES", fmt.Sprintf("No matches found for %s", targetID))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Matches for %s: %d\n\n", targetID, len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		res := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, res.CandidateID))
		sb.WriteString(fmt.Sprintf("    Score: %.3f\n", res.Score))
		if res.Breakdown != nil && len(res.Breakdown.SharedSkills) > 0 {
			skills := strings.Join(res.Breakdown.SharedSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Shared: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more matches", len(results)-maxItemsToShow))
	}

	p.printBox("TOP MATCHES", sb.String())
}

// PrintExplanation outputs the full explanation for a single match.
func (p *Printer) PrintExplanation(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidate: %s\n", result.CandidateID))
	sb.WriteString(fmt.Sprintf("Score:     %.3f\n\n", result.Score))

	// Wrap the explanation to fit the box
	words := strings.Fields(result.Explanation)
	line := ""
	for _, word := range words {
		if len(line)+len(word)+1 > boxWidth-6 {
			sb.WriteString(line + "\n")
			line = word
			continue
		}
		if line == "" {
			line = word
		} else {
			line += " " + word
		}
	}
	if line != "" {
		sb.WriteString(line)
	}

	p.printBox("MATCH EXPLANATION", sb.String())
}
