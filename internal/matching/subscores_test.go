package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cofounder-match/internal/types"
)

func TestSkillOverlap_Symmetric(t *testing.T) {
	a := &types.Profile{ID: "a", Skills: []string{"Python", "AI", "Marketing"}}
	b := &types.Profile{ID: "b", Skills: []string{"AI", "Python", "Sales"}}

	countAB, sharedAB := skillOverlap(a, b)
	countBA, sharedBA := skillOverlap(b, a)

	assert.Equal(t, 2, countAB)
	assert.Equal(t, countAB, countBA)
	assert.Equal(t, sharedAB, sharedBA)
	assert.Equal(t, []string{"AI", "Python"}, sharedAB)
}

func TestSkillOverlap_DuplicatesCountOnce(t *testing.T) {
	a := &types.Profile{ID: "a", Skills: []string{"Python", "Python"}}
	b := &types.Profile{ID: "b", Skills: []string{"Python", "Python"}}

	count, shared := skillOverlap(a, b)
	assert.Equal(t, 1, count)
	assert.Equal(t, []string{"Python"}, shared)
}

func TestInterestOverlap_Symmetric(t *testing.T) {
	a := &types.Profile{ID: "a", Interests: []string{"HealthTech", "SaaS"}}
	b := &types.Profile{ID: "b", Interests: []string{"SaaS", "Robotics"}}

	countAB, sharedAB := interestOverlap(a, b)
	countBA, sharedBA := interestOverlap(b, a)

	assert.Equal(t, 1, countAB)
	assert.Equal(t, countAB, countBA)
	assert.Equal(t, []string{"SaaS"}, sharedAB)
	assert.Equal(t, sharedAB, sharedBA)
}

func TestComplementarySkillSynergy_Directional(t *testing.T) {
	// "Python" -> "Node.js" is 0.7 in the matrix, but there is no "Node.js"
	// row, so the reverse direction scores zero. The engine reflects the
	// matrix exactly rather than symmetrizing.
	a := &types.Profile{ID: "a", Skills: []string{"Python"}}
	b := &types.Profile{ID: "b", Skills: []string{"Node.js"}}

	sumAB, detailsAB := complementarySkillSynergy(a, b)
	sumBA, detailsBA := complementarySkillSynergy(b, a)

	assert.InDelta(t, 0.7, sumAB, 1e-9)
	assert.Len(t, detailsAB, 1)
	assert.Equal(t, types.ComplementPair{SkillA: "Python", SkillB: "Node.js", Value: 0.7}, detailsAB[0])

	assert.Zero(t, sumBA)
	assert.Empty(t, detailsBA)
}

func TestComplementarySkillSynergy_SumsAllPairs(t *testing.T) {
	a := &types.Profile{ID: "a", Skills: []string{"Python", "AI"}}
	b := &types.Profile{ID: "b", Skills: []string{"DataScience"}}

	sum, details := complementarySkillSynergy(a, b)

	// Python->DataScience (1.3) + AI->DataScience (1.5)
	assert.InDelta(t, 2.8, sum, 1e-9)
	assert.Len(t, details, 2)
}

func TestGoalAlignment_ExactMatch(t *testing.T) {
	a := &types.Profile{ID: "a", Goals: "Build MVP"}
	b := &types.Profile{ID: "b", Goals: "Build MVP"}

	score, desc := goalAlignment(a, b)
	assert.Equal(t, 1.0, score)
	assert.Equal(t, alignExact, desc)
}

func TestGoalAlignment_PartialAndUnknown(t *testing.T) {
	tests := []struct {
		name      string
		goalA     string
		goalB     string
		wantScore float64
		wantDesc  string
	}{
		{"one step apart", "Build MVP", "Join accelerator", 0.7, alignPartial},
		{"same ordinal different goal", "Build MVP", "Find CTO", 1.0, alignExact},
		{"three steps apart", "Build MVP", "Scale internationally", 0.1, alignPartial},
		{"unrecognized goal", "Build MVP", "Conquer the world", 0.0, alignNone},
		{"absent goal", "Build MVP", "", 0.0, alignNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &types.Profile{ID: "a", Goals: tt.goalA}
			b := &types.Profile{ID: "b", Goals: tt.goalB}
			score, desc := goalAlignment(a, b)
			assert.InDelta(t, tt.wantScore, score, 1e-9)
			assert.Equal(t, tt.wantDesc, desc)
		})
	}
}

func TestStageAlignment_FourStepsApartClampsToZero(t *testing.T) {
	a := &types.Profile{ID: "a", StartupStage: "Idea/Concept"}
	b := &types.Profile{ID: "b", StartupStage: "Series A+"}

	score, desc := stageAlignment(a, b)
	assert.Equal(t, 0.0, score)
	assert.Equal(t, alignNone, desc)
}

func TestStageAlignment_EquivalentStages(t *testing.T) {
	// Prototype and Research/Academic share ordinal 2.
	a := &types.Profile{ID: "a", StartupStage: "Prototype"}
	b := &types.Profile{ID: "b", StartupStage: "Research/Academic"}

	score, desc := stageAlignment(a, b)
	assert.Equal(t, 1.0, score)
	assert.Equal(t, alignExact, desc)
}

func TestLocationSynergy(t *testing.T) {
	tests := []struct {
		name string
		locA string
		locB string
		want float64
	}{
		{"exact match", "London", "London", 1.0},
		{"different cities", "London", "Berlin", 0.0},
		{"one absent", "London", "", 0.0},
		{"both absent", "", "", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &types.Profile{ID: "a", Location: tt.locA}
			b := &types.Profile{ID: "b", Location: tt.locB}
			assert.Equal(t, tt.want, locationSynergy(a, b))
		})
	}
}

func TestAvailabilitySynergy_ExactMatchBeatsStudentHeuristic(t *testing.T) {
	// Two identical "Student - flexible" strings are an exact match (1.0);
	// the 0.5 student heuristic only applies when the strings differ.
	a := &types.Profile{ID: "a", Availability: "Student - flexible"}
	b := &types.Profile{ID: "b", Availability: "Student - flexible"}

	assert.Equal(t, 1.0, availabilitySynergy(a, b))
}

func TestAvailabilitySynergy(t *testing.T) {
	tests := []struct {
		name string
		avaA string
		avaB string
		want float64
	}{
		{"exact match", "Full-Time", "Full-Time", 1.0},
		{"student on one side", "Student - flexible", "Full-Time", 0.5},
		{"student case-insensitive", "STUDENT schedule", "Part-Time", 0.5},
		{"no overlap", "Full-Time", "Part-Time", 0.0},
		{"one absent", "Full-Time", "", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &types.Profile{ID: "a", Availability: tt.avaA}
			b := &types.Profile{ID: "b", Availability: tt.avaB}
			assert.Equal(t, tt.want, availabilitySynergy(a, b))
		})
	}
}

func TestCollabStyleSynergy_BothOrderings(t *testing.T) {
	a := &types.Profile{ID: "a", CollabStyle: "Planner"}
	b := &types.Profile{ID: "b", CollabStyle: "Visionary"}

	// Table entry is (Visionary, Planner); the reversed lookup must hit it.
	assert.Equal(t, 1.0, collabStyleSynergy(a, b))
	assert.Equal(t, 1.0, collabStyleSynergy(b, a))
}

func TestCollabStyleSynergy_UnknownOrAbsent(t *testing.T) {
	a := &types.Profile{ID: "a", CollabStyle: "Executor"}
	b := &types.Profile{ID: "b", CollabStyle: "Creative"}
	assert.Equal(t, 0.0, collabStyleSynergy(a, b))

	c := &types.Profile{ID: "c"}
	assert.Equal(t, 0.0, collabStyleSynergy(a, c))
}
