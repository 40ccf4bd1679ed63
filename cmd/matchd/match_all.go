package main

import (
	"fmt"

	"github.com/jonathan/cofounder-match/internal/matching"
	"github.com/jonathan/cofounder-match/internal/types"
	"github.com/spf13/cobra"
)

var (
	matchAllProfilesPath string
	matchAllTopN         int
	matchAllMinScore     float64
	matchAllOutputPath   string
)

var matchAllCmd = &cobra.Command{
	Use:   "match-all",
	Short: "Compute top matches for every profile in a pool",
	Long: `Score every directed pair in a profile pool and write each profile's
top matches to a JSON file keyed by profile ID.`,
	RunE: runMatchAll,
}

func init() {
	matchAllCmd.Flags().StringVarP(&matchAllProfilesPath, "profiles", "p", "", "Path to profile pool JSON file (required)")
	matchAllCmd.Flags().IntVar(&matchAllTopN, "top-n", matching.DefaultTopN, "Number of matches to keep per profile")
	matchAllCmd.Flags().Float64Var(&matchAllMinScore, "min-score", 0.5, "Drop candidates scoring below this threshold")
	matchAllCmd.Flags().StringVarP(&matchAllOutputPath, "out", "o", "", "Path to output JSON file (required)")

	if err := matchAllCmd.MarkFlagRequired("profiles"); err != nil {
		panic(err)
	}
	if err := matchAllCmd.MarkFlagRequired("out"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(matchAllCmd)
}

// matchAllOutput is the JSON document match-all writes.
type matchAllOutput struct {
	Profiles int                            `json:"profiles"`
	Matches  map[string][]types.MatchResult `json:"matches"`
}

func runMatchAll(_ *cobra.Command, _ []string) error {
	pool, err := loadPool(matchAllProfilesPath)
	if err != nil {
		return err
	}

	matches, err := matching.RecommendAll(pool, matching.Options{
		TopN:     matchAllTopN,
		MinScore: matchAllMinScore,
	})
	if err != nil {
		return fmt.Errorf("batch matching failed: %w", err)
	}

	output := matchAllOutput{
		Profiles: len(pool),
		Matches:  matches,
	}
	if err := writeJSONOutput(matchAllOutputPath, output); err != nil {
		return err
	}

	fmt.Printf("Successfully matched %d profiles, output written to %s\n", len(pool), matchAllOutputPath)
	return nil
}
