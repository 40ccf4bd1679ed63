// Package matching implements the co-founder compatibility engine: per-pair
// subscore calculators, the weighted aggregator, explanation generation, and
// the top-N recommendation workflows.
package matching

// Weights for combining subscores into a final match score.
const (
	skillOverlapWeight       = 2.0
	complementarySkillWeight = 1.5
	interestOverlapWeight    = 1.5
	goalAlignmentWeight      = 2.0
	stageAlignmentWeight     = 2.0
	locationSynergyWeight    = 1.0
	availabilitySynergyWeight = 0.5
	collabStyleSynergyWeight = 1.0
)

// stageOrdinals maps startup stages onto an ordinal scale; the closer two
// stages are, the more aligned the founders. Unknown stages resolve to 0,
// which the calculators treat as "no signal".
var stageOrdinals = map[string]int{
	"Idea/Concept":          1,
	"Prototype":             2,
	"Research/Academic":     2,
	"Early Clinical Trials": 3,
	"Seed Funded":           4,
	"Series A+":             5,
}

// goalOrdinals maps user goals onto an ordinal scale, same convention as
// stageOrdinals.
var goalOrdinals = map[string]int{
	"Build MVP":               1,
	"Recruit team":            1,
	"Find CTO":                1,
	"Join accelerator":        2,
	"Get funded":              3,
	"Launch product":          3,
	"Scale internationally":   4,
	"Expand research lab":     4,
}

// complementMatrix scores beneficial skill pairings. Lookups are directional:
// the outer key is a skill of the source profile, the inner key a skill of
// the candidate. Most entries are authored symmetrically, but the table is
// not required to be symmetric and the engine does not symmetrize it.
var complementMatrix = map[string]map[string]float64{
	"Python":                {"AI": 1.2, "DataScience": 1.3, "Node.js": 0.7},
	"AI":                    {"Python": 1.2, "DataScience": 1.5},
	"DataScience":           {"Python": 1.3, "AI": 1.5},
	"CivilEngineering":      {"MechanicalEngineering": 1.5},
	"MechanicalEngineering": {"CivilEngineering": 1.5},
	"Medicine":              {"Biology": 1.5, "Pharmacy": 1.0},
	"Biology":               {"Medicine": 1.5, "Pharmacy": 1.0},
	"Pharmacy":              {"Medicine": 1.0, "Biology": 1.0},
}

// stylePair is an ordered pair of collaboration styles. Synergy lookups try
// both orderings, so the table only needs one entry per unordered pair.
type stylePair struct {
	A, B string
}

// collabStyleSynergies scores how two collaboration styles work together.
var collabStyleSynergies = map[stylePair]float64{
	{"Visionary", "Planner"}:    1.0,
	{"Visionary", "Analytical"}: 0.8,
	{"Planner", "Executor"}:     1.0,
	{"Analytical", "Creative"}:  0.8,
	{"Connector", "Visionary"}:  0.7,
}
