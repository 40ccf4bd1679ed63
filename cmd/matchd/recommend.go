package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/cofounder-match/internal/config"
	"github.com/jonathan/cofounder-match/internal/matching"
	"github.com/jonathan/cofounder-match/internal/observability"
	"github.com/jonathan/cofounder-match/internal/types"
	"github.com/spf13/cobra"
)

var (
	recommendConfigPath   string
	recommendProfilesPath string
	recommendTargetID     string
	recommendTopN         int
	recommendMinScore     float64
	recommendExclude      string
	recommendOutputPath   string
	recommendVerbose      bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank co-founder candidates for one profile",
	Long: `Score every candidate in a profile pool against a target profile and
print the top matches with scores and explanations.

The pool file is a JSON array of profiles validated against
schemas/pool.schema.json before scoring.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runRecommend,
}

func init() {
	// Config file flag (processed first)
	recommendCmd.Flags().StringVar(&recommendConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	recommendCmd.Flags().StringVarP(&recommendProfilesPath, "profiles", "p", "", "Path to profile pool JSON file")
	recommendCmd.Flags().StringVarP(&recommendTargetID, "target", "t", "", "ID of the profile to recommend for")
	recommendCmd.Flags().IntVar(&recommendTopN, "top-n", 0, "Number of matches to return (default 5)")
	recommendCmd.Flags().Float64Var(&recommendMinScore, "min-score", 0, "Drop candidates scoring below this threshold")
	recommendCmd.Flags().StringVar(&recommendExclude, "exclude", "", "Comma-separated candidate IDs to skip")
	recommendCmd.Flags().StringVarP(&recommendOutputPath, "out", "o", "", "Path to output JSON file (default: stdout)")
	recommendCmd.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Print formatted profile and match summaries")

	// Note: --profiles and --target are not marked required; we validate
	// after merging config
	rootCmd.AddCommand(recommendCmd)
}

// recommendOutput is the JSON document recommend writes.
type recommendOutput struct {
	TargetID string              `json:"target_id"`
	Count    int                 `json:"count"`
	Matches  []types.MatchResult `json:"matches"`
}

func runRecommend(_ *cobra.Command, _ []string) error {
	// Step 1: Load config file if provided
	var fileCfg config.Config
	if recommendConfigPath != "" {
		loadedCfg, err := config.LoadConfig(recommendConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		fileCfg = *loadedCfg
	}

	// Step 2: Flags take priority; config file fills unset values
	cfg := config.Config{
		Profiles: recommendProfilesPath,
		Target:   recommendTargetID,
		Count:    recommendTopN,
		MinScore: recommendMinScore,
		Verbose:  recommendVerbose,
	}
	cfg = cfg.MergeWithDefaults(fileCfg)
	cfg = cfg.MergeWithDefaults(config.Config{Count: matching.DefaultTopN})

	// Step 3: Validate required fields
	if cfg.Profiles == "" {
		return fmt.Errorf("--profiles is required (via flag or config)")
	}
	if cfg.Target == "" {
		return fmt.Errorf("--target is required (via flag or config)")
	}

	pool, err := loadPool(cfg.Profiles)
	if err != nil {
		return err
	}

	target, err := findProfile(pool, cfg.Target)
	if err != nil {
		return err
	}

	var exclude []string
	for _, id := range strings.Split(recommendExclude, ",") {
		if id = strings.TrimSpace(id); id != "" {
			exclude = append(exclude, id)
		}
	}

	results, err := matching.Recommend(target, pool, matching.Options{
		TopN:             cfg.Count,
		MinScore:         cfg.MinScore,
		ExcludeIDs:       exclude,
		IncludeBreakdown: cfg.Verbose,
	})
	if err != nil {
		return fmt.Errorf("recommendation failed: %w", err)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintProfile(target)
		printer.PrintMatches(target.ID, results)
		if len(results) > 0 {
			printer.PrintExplanation(&results[0])
		}
	}

	output := recommendOutput{
		TargetID: target.ID,
		Count:    len(results),
		Matches:  results,
	}

	if recommendOutputPath == "" {
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if err := writeJSONOutput(recommendOutputPath, output); err != nil {
		return err
	}
	fmt.Printf("Successfully wrote %d matches for %s to %s\n", len(results), target.ID, recommendOutputPath)
	return nil
}
