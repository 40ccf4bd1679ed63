package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cofounder-match/internal/matching"
)

func setMatchAllFlags(t *testing.T, profiles, out string, topN int, minScore float64) {
	t.Helper()

	matchAllProfilesPath = profiles
	matchAllOutputPath = out
	matchAllTopN = topN
	matchAllMinScore = minScore

	t.Cleanup(func() {
		matchAllProfilesPath = ""
		matchAllOutputPath = ""
		matchAllTopN = matching.DefaultTopN
		matchAllMinScore = 0.5
	})
}

func TestMatchAllCommand_WritesAllGroups(t *testing.T) {
	poolPath := writePoolFile(t, testPool())
	outPath := filepath.Join(t.TempDir(), "all.json")
	setMatchAllFlags(t, poolPath, outPath, matching.DefaultTopN, 0)

	require.NoError(t, runMatchAll(nil, nil))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var out matchAllOutput
	require.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, 3, out.Profiles)
	require.Len(t, out.Matches, 3)
	for _, id := range []string{"alice", "bob", "carol"} {
		group, ok := out.Matches[id]
		require.True(t, ok, "missing group for %s", id)
		for _, res := range group {
			assert.NotEqual(t, id, res.CandidateID, "profile matched with itself")
		}
	}

	// alice's best match is bob in both directions
	require.NotEmpty(t, out.Matches["alice"])
	assert.Equal(t, "bob", out.Matches["alice"][0].CandidateID)
	require.NotEmpty(t, out.Matches["bob"])
	assert.Equal(t, "alice", out.Matches["bob"][0].CandidateID)
}

func TestMatchAllCommand_MinScoreFiltersWeakPairs(t *testing.T) {
	poolPath := writePoolFile(t, testPool())
	outPath := filepath.Join(t.TempDir(), "all.json")
	setMatchAllFlags(t, poolPath, outPath, matching.DefaultTopN, 100)

	require.NoError(t, runMatchAll(nil, nil))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var out matchAllOutput
	require.NoError(t, json.Unmarshal(data, &out))

	for id, group := range out.Matches {
		assert.Empty(t, group, "expected no matches for %s above threshold", id)
	}
}

func TestMatchAllCommand_MissingPoolFile(t *testing.T) {
	setMatchAllFlags(t, filepath.Join(t.TempDir(), "nope.json"), filepath.Join(t.TempDir(), "all.json"), matching.DefaultTopN, 0)

	err := runMatchAll(nil, nil)
	require.Error(t, err)
}
