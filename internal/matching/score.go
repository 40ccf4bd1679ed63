package matching

import (
	"math"

	"github.com/jonathan/cofounder-match/internal/types"
)

// weightedScore combines a subscore bundle into a single match score via the
// fixed linear weights. The result is rounded to 3 decimal places and is an
// unbounded positive value; thresholds are the caller's business.
func weightedScore(subs *types.SubscoreBundle) float64 {
	score := float64(subs.SkillOverlapCount)*skillOverlapWeight +
		subs.ComplementSum*complementarySkillWeight +
		float64(subs.InterestOverlapCount)*interestOverlapWeight +
		subs.GoalVal*goalAlignmentWeight +
		subs.StageVal*stageAlignmentWeight +
		subs.LocationVal*locationSynergyWeight +
		subs.AvailabilityVal*availabilitySynergyWeight +
		subs.CollabStyleVal*collabStyleSynergyWeight
	return round3(score)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
