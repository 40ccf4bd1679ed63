package main

import (
	"fmt"
	"os"

	"github.com/jonathan/cofounder-match/internal/schemas"
	"github.com/jonathan/cofounder-match/internal/types"
	"github.com/spf13/cobra"
)

var (
	seedCount      int
	seedOutputPath string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate a sample profile pool",
	Long: `Write a JSON file of sample founder profiles suitable as input for the
recommend and match-all commands.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().IntVarP(&seedCount, "count", "n", len(seedPersonas), "Number of profiles to generate")
	seedCmd.Flags().StringVarP(&seedOutputPath, "out", "o", "", "Path to output JSON file (required)")

	if err := seedCmd.MarkFlagRequired("out"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(seedCmd)
}

// seedPersonas are the base fixtures; counts beyond this list cycle through
// the personas with a numeric suffix on the id.
var seedPersonas = []types.Profile{
	{
		ID:           "techfounder",
		Name:         "Tech Founder",
		Bio:          "Backend engineer turned founder, building ML products.",
		Skills:       []string{"Python", "AI", "Node.js"},
		Interests:    []string{"Machine Learning", "Open Source"},
		Goals:        "Build MVP",
		StartupStage: "Idea/Concept",
		Location:     "San Francisco",
		Availability: "Full-time",
		CollabStyle:  "Visionary",
	},
	{
		ID:           "business_guru",
		Name:         "Business Guru",
		Bio:          "Repeat operator focused on go-to-market and fundraising.",
		Skills:       []string{"Sales", "Marketing", "Finance"},
		Interests:    []string{"SaaS", "Fundraising"},
		Goals:        "Get funded",
		StartupStage: "Prototype",
		Location:     "San Francisco",
		Availability: "Full-time",
		CollabStyle:  "Planner",
	},
	{
		ID:           "design_master",
		Name:         "Design Master",
		Bio:          "Product designer who prototypes fast and tests with users.",
		Skills:       []string{"Design", "UX Research"},
		Interests:    []string{"Consumer Apps", "Accessibility"},
		Goals:        "Launch product",
		StartupStage: "Prototype",
		Location:     "New York",
		Availability: "Part-time",
		CollabStyle:  "Creative",
	},
	{
		ID:           "data_scientist",
		Name:         "Data Scientist",
		Bio:          "Quantitative researcher applying models to real markets.",
		Skills:       []string{"DataScience", "Python"},
		Interests:    []string{"Machine Learning", "Fintech"},
		Goals:        "Find CTO",
		StartupStage: "Idea/Concept",
		Location:     "Remote",
		Availability: "Full-time",
		CollabStyle:  "Analytical",
	},
	{
		ID:           "biotech_founder",
		Name:         "Biotech Founder",
		Bio:          "Clinician moving a diagnostic device toward trials.",
		Skills:       []string{"Medicine", "Biology"},
		Interests:    []string{"Healthcare", "Diagnostics"},
		Goals:        "Expand research lab",
		StartupStage: "Early Clinical Trials",
		Location:     "Boston",
		Availability: "Part-time",
		CollabStyle:  "Executor",
	},
	{
		ID:           "growth_operator",
		Name:         "Growth Operator",
		Bio:          "Scaled two marketplaces from seed to Series A.",
		Skills:       []string{"Marketing", "Sales", "Operations"},
		Interests:    []string{"Marketplaces", "Fundraising"},
		Goals:        "Scale internationally",
		StartupStage: "Seed Funded",
		Location:     "New York",
		Availability: "Full-time",
		CollabStyle:  "Connector",
	},
}

func runSeed(_ *cobra.Command, _ []string) error {
	if seedCount < 1 {
		return fmt.Errorf("count must be at least 1, got %d", seedCount)
	}

	pool := make([]types.Profile, 0, seedCount)
	for i := 0; i < seedCount; i++ {
		p := seedPersonas[i%len(seedPersonas)]
		if i >= len(seedPersonas) {
			p.ID = fmt.Sprintf("%s_%d", p.ID, i/len(seedPersonas)+1)
			p.Name = fmt.Sprintf("%s %d", p.Name, i/len(seedPersonas)+1)
		}
		pool = append(pool, p)
	}

	if err := writeJSONOutput(seedOutputPath, pool); err != nil {
		return err
	}

	// Validate output against schema (non-fatal)
	schemaPath := schemas.ResolveSchemaPath("schemas/pool.schema.json")
	if schemaPath == "" {
		fmt.Fprintln(os.Stderr, "Warning: could not locate pool schema, skipping validation")
	} else if err := schemas.ValidateJSON(schemaPath, seedOutputPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: generated pool failed schema validation: %v\n", err)
	}

	fmt.Printf("Successfully wrote %d sample profiles to %s\n", seedCount, seedOutputPath)
	return nil
}
