package matching

import (
	"sort"
	"strings"

	"github.com/jonathan/cofounder-match/internal/types"
)

// Descriptor values for goal and stage alignment.
const (
	alignExact   = "exact"
	alignPartial = "partial"
	alignNone    = "none"
)

// skillOverlap returns the count and identity of skills both profiles share.
// Symmetric: skillOverlap(a, b) == skillOverlap(b, a). The shared list is
// sorted so downstream output is deterministic.
func skillOverlap(a, b *types.Profile) (int, []string) {
	return setOverlap(a.Skills, b.Skills)
}

// interestOverlap returns the count and identity of shared interests.
func interestOverlap(a, b *types.Profile) (int, []string) {
	return setOverlap(a.Interests, b.Interests)
}

func setOverlap(xs, ys []string) (int, []string) {
	set := make(map[string]bool, len(xs))
	for _, x := range xs {
		set[x] = true
	}
	seen := make(map[string]bool)
	var shared []string
	for _, y := range ys {
		if set[y] && !seen[y] {
			seen[y] = true
			shared = append(shared, y)
		}
	}
	sort.Strings(shared)
	return len(shared), shared
}

// complementarySkillSynergy sums the complement-matrix values for every
// (skill of a, skill of b) pair present in the matrix, collecting detail
// pairs for the explanation. The lookup is directional: only a's skills are
// used as row keys, so synergy(a, b) need not equal synergy(b, a).
func complementarySkillSynergy(a, b *types.Profile) (float64, []types.ComplementPair) {
	sum := 0.0
	var details []types.ComplementPair
	for _, skillA := range a.Skills {
		row, ok := complementMatrix[skillA]
		if !ok {
			continue
		}
		for _, skillB := range b.Skills {
			if val := row[skillB]; val > 0 {
				sum += val
				details = append(details, types.ComplementPair{SkillA: skillA, SkillB: skillB, Value: val})
			}
		}
	}
	return sum, details
}

// goalAlignment scores how close the two profiles' goals sit on the goal
// ordinal scale. Absent or unrecognized goals score 0 with descriptor "none".
func goalAlignment(a, b *types.Profile) (float64, string) {
	return ordinalAlignment(goalOrdinals[a.Goals], goalOrdinals[b.Goals])
}

// stageAlignment scores startup-stage proximity, same shape as goalAlignment.
func stageAlignment(a, b *types.Profile) (float64, string) {
	return ordinalAlignment(stageOrdinals[a.StartupStage], stageOrdinals[b.StartupStage])
}

// ordinalAlignment maps two ordinals to a score of max(0, 1 - 0.3*|diff|).
// An ordinal of 0 means the value was absent or unrecognized.
func ordinalAlignment(oa, ob int) (float64, string) {
	if oa == 0 || ob == 0 {
		return 0.0, alignNone
	}
	diff := oa - ob
	if diff < 0 {
		diff = -diff
	}
	score := 1.0 - 0.3*float64(diff)
	if score < 0 {
		score = 0
	}
	switch {
	case diff == 0:
		return score, alignExact
	case score > 0:
		return score, alignPartial
	default:
		return score, alignNone
	}
}

// locationSynergy awards 1.0 only for an exact match of non-empty locations.
// No partial credit for geographic proximity.
func locationSynergy(a, b *types.Profile) float64 {
	if a.Location != "" && b.Location != "" && a.Location == b.Location {
		return 1.0
	}
	return 0.0
}

// availabilitySynergy awards 1.0 for identical availability strings; failing
// that, 0.5 if either side mentions being a student. The exact-match check
// runs first, so two identical "Student - flexible" profiles score 1.0.
func availabilitySynergy(a, b *types.Profile) float64 {
	if a.Availability == "" || b.Availability == "" {
		return 0.0
	}
	if a.Availability == b.Availability {
		return 1.0
	}
	if strings.Contains(strings.ToLower(a.Availability), "student") ||
		strings.Contains(strings.ToLower(b.Availability), "student") {
		return 0.5
	}
	return 0.0
}

// collabStyleSynergy looks up the pair of collaboration styles in the synergy
// table, trying both orderings. Absent styles or unknown pairs score 0.
func collabStyleSynergy(a, b *types.Profile) float64 {
	if a.CollabStyle == "" || b.CollabStyle == "" {
		return 0.0
	}
	if val, ok := collabStyleSynergies[stylePair{a.CollabStyle, b.CollabStyle}]; ok {
		return val
	}
	if val, ok := collabStyleSynergies[stylePair{b.CollabStyle, a.CollabStyle}]; ok {
		return val
	}
	return 0.0
}

// computeSubscores evaluates every compatibility dimension for the pair
// (a, b) and bundles the results for the aggregator and the explainer.
func computeSubscores(a, b *types.Profile) *types.SubscoreBundle {
	skillCount, sharedSkills := skillOverlap(a, b)
	complementSum, complementDetails := complementarySkillSynergy(a, b)
	interestCount, sharedInterests := interestOverlap(a, b)
	goalVal, goalDesc := goalAlignment(a, b)
	stageVal, stageDesc := stageAlignment(a, b)

	return &types.SubscoreBundle{
		SkillOverlapCount:    skillCount,
		SharedSkills:         sharedSkills,
		ComplementSum:        complementSum,
		ComplementDetails:    complementDetails,
		InterestOverlapCount: interestCount,
		SharedInterests:      sharedInterests,
		GoalVal:              goalVal,
		GoalDesc:             goalDesc,
		StageVal:             stageVal,
		StageDesc:            stageDesc,
		LocationVal:          locationSynergy(a, b),
		AvailabilityVal:      availabilitySynergy(a, b),
		CollabStyleVal:       collabStyleSynergy(a, b),
	}
}
