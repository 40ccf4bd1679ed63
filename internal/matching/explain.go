package matching

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/cofounder-match/internal/types"
)

// maxComplementExamples caps how many complementary-skill pairs an
// explanation cites, keeping the top pairs by synergy value.
const maxComplementExamples = 3

// explainMatch renders a subscore bundle and final score into a
// human-readable rationale. The output is a deterministic function of the
// bundle: one clause per non-zero subscore, in a fixed order, followed by a
// numeric summary sentence.
func explainMatch(subs *types.SubscoreBundle, finalScore float64) string {
	var lines []string

	if subs.SkillOverlapCount > 0 {
		lines = append(lines, fmt.Sprintf("You share %d %s: %s.",
			subs.SkillOverlapCount,
			plural("skill", subs.SkillOverlapCount),
			strings.Join(subs.SharedSkills, ", ")))
	}

	if subs.ComplementSum > 0 {
		examples := topComplementPairs(subs.ComplementDetails, maxComplementExamples)
		pairs := make([]string, 0, len(examples))
		for _, d := range examples {
			pairs = append(pairs, fmt.Sprintf("%s+%s (%s)", d.SkillA, d.SkillB, formatScore(d.Value)))
		}
		lines = append(lines, fmt.Sprintf("Complementary skills total %s synergy points (e.g. %s).",
			formatScore(subs.ComplementSum), strings.Join(pairs, ", ")))
	}

	if subs.InterestOverlapCount > 0 {
		lines = append(lines, fmt.Sprintf("Shared %s: %s.",
			plural("interest", subs.InterestOverlapCount),
			strings.Join(subs.SharedInterests, ", ")))
	}

	if subs.GoalVal > 0 {
		if subs.GoalDesc == alignExact {
			lines = append(lines, "Your goals align perfectly.")
		} else {
			lines = append(lines, "Your goals partially align.")
		}
	}

	if subs.StageVal > 0 {
		if subs.StageDesc == alignExact {
			lines = append(lines, "You're both at the same startup stage.")
		} else {
			lines = append(lines, "There's partial alignment in your startup stages.")
		}
	}

	if subs.LocationVal > 0 {
		lines = append(lines, fmt.Sprintf("You share the same location for a +%s synergy.", formatScore(subs.LocationVal)))
	}

	if subs.AvailabilityVal > 0 {
		lines = append(lines, fmt.Sprintf("Availability synergy contributes +%s (similar schedules or 'Student - flexible').",
			formatScore(subs.AvailabilityVal)))
	}

	if subs.CollabStyleVal > 0 {
		lines = append(lines, fmt.Sprintf("Your collaboration styles add +%s synergy.", formatScore(subs.CollabStyleVal)))
	}

	if len(lines) == 0 {
		lines = append(lines, "You have limited direct overlap, but there may still be potential to explore.")
	}

	lines = append(lines, fmt.Sprintf("Overall match score: %s.", formatScore(finalScore)))

	return strings.Join(lines, " ")
}

// topComplementPairs returns up to n detail pairs ordered by synergy value
// descending. The sort is stable so equal-valued pairs keep their original
// skill-iteration order.
func topComplementPairs(details []types.ComplementPair, n int) []types.ComplementPair {
	sorted := make([]types.ComplementPair, len(details))
	copy(sorted, details)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// formatScore renders a float without trailing zeros ("1.3", "0.5", "11.95").
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
