package matching

import (
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cofounder-match/internal/types"
)

// DefaultTopN is the number of matches returned when the caller does not ask
// for a specific count.
const DefaultTopN = 5

// Options controls a recommendation run.
type Options struct {
	// TopN bounds the result size; values < 1 fall back to DefaultTopN.
	TopN int
	// MinScore drops candidates scoring below the threshold. Zero keeps
	// everything. The batch workflows pass 0.5; raw scoring applies no floor.
	MinScore float64
	// ExcludeIDs are candidate ids to filter out, typically built from the
	// caller's rejected-match history.
	ExcludeIDs []string
	// IncludeBreakdown attaches the subscore bundle to each result.
	IncludeBreakdown bool
}

func (o Options) topN() int {
	if o.TopN < 1 {
		return DefaultTopN
	}
	return o.TopN
}

// Compatibility computes the directed match result for the pair (a, b):
// a's subscores toward b, the aggregated score, and the explanation.
func Compatibility(a, b *types.Profile) (*types.MatchResult, error) {
	if a.ID == "" {
		return nil, &MalformedProfileError{Name: a.Name}
	}
	if b.ID == "" {
		return nil, &MalformedProfileError{Name: b.Name}
	}
	subs := computeSubscores(a, b)
	score := weightedScore(subs)
	return &types.MatchResult{
		CandidateID: b.ID,
		Score:       score,
		Explanation: explainMatch(subs, score),
		Breakdown:   subs,
	}, nil
}

// Recommend scores every candidate against the target and returns the top-N
// results sorted by score descending, ties broken by candidate id ascending.
// The target itself and any id in opts.ExcludeIDs never appear in the
// output. An empty eligible pool yields an empty slice, not an error.
func Recommend(target *types.Profile, candidates []*types.Profile, opts Options) ([]types.MatchResult, error) {
	if target.ID == "" {
		return nil, &MalformedProfileError{Name: target.Name}
	}

	excluded := make(map[string]bool, len(opts.ExcludeIDs)+1)
	excluded[target.ID] = true
	for _, id := range opts.ExcludeIDs {
		excluded[id] = true
	}

	results := make([]types.MatchResult, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.ID == "" {
			return nil, &MalformedProfileError{Name: candidate.Name}
		}
		if excluded[candidate.ID] {
			continue
		}

		subs := computeSubscores(target, candidate)
		score := weightedScore(subs)
		if score < opts.MinScore {
			continue
		}

		result := types.MatchResult{
			CandidateID: candidate.ID,
			Score:       score,
			Explanation: explainMatch(subs, score),
		}
		if opts.IncludeBreakdown {
			result.Breakdown = subs
		}
		results = append(results, result)
	}

	sortResults(results)
	if len(results) > opts.topN() {
		results = results[:opts.topN()]
	}
	return results, nil
}

// RecommendAll computes top-N matches for every profile in the population,
// evaluating every directed pair (complementary-skill synergy is
// directional, so A toward B is scored independently of B toward A). Each
// source profile's group is independent, so the outer loop runs on a bounded
// worker pool and the groups merge into a keyed map at the end.
func RecommendAll(population []*types.Profile, opts Options) (map[string][]types.MatchResult, error) {
	for _, p := range population {
		if p.ID == "" {
			return nil, &MalformedProfileError{Name: p.Name}
		}
	}

	groups := make([][]types.MatchResult, len(population))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, source := range population {
		g.Go(func() error {
			results, err := Recommend(source, population, opts)
			if err != nil {
				return err
			}
			groups[i] = results
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string][]types.MatchResult, len(population))
	for i, source := range population {
		out[source.ID] = groups[i]
	}
	return out, nil
}

// sortResults orders results by score descending, with ascending candidate
// id as the deterministic tie-break.
func sortResults(results []types.MatchResult) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].CandidateID < results[j].CandidateID
	})
}
