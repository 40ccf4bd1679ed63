// Package chat provides LLM-backed advice for approaching a potential
// co-founder match.
package chat

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/cofounder-match/internal/llm"
	"github.com/jonathan/cofounder-match/internal/types"
)

// Advisor generates conversational advice about a match. When no LLM client
// is configured, or the call fails, it falls back to the deterministic
// explanation so callers always get an answer.
type Advisor struct {
	client llm.Client
}

// NewAdvisor creates an advisor. A nil client is allowed and means
// fallback-only operation.
func NewAdvisor(client llm.Client) *Advisor {
	return &Advisor{client: client}
}

// Advise returns advice on how to approach the candidate, given the computed
// match between the two profiles.
func (a *Advisor) Advise(ctx context.Context, target, candidate *types.Profile, match *types.MatchResult) (string, error) {
	if match == nil {
		return "", fmt.Errorf("match result is required")
	}

	if a.client == nil {
		return match.Explanation, nil
	}

	prompt := buildAdvicePrompt(target, candidate, match)
	advice, err := a.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		log.Printf("chat advice generation failed, using explanation fallback: %v", err)
		return match.Explanation, nil
	}

	advice = strings.TrimSpace(advice)
	if advice == "" {
		return match.Explanation, nil
	}
	return advice, nil
}

func buildAdvicePrompt(target, candidate *types.Profile, match *types.MatchResult) string {
	var b strings.Builder

	b.WriteString("You are a startup co-founder matching assistant. ")
	b.WriteString("Give short, practical advice (3-4 sentences) on how the first person ")
	b.WriteString("should approach the second as a potential co-founder. ")
	b.WriteString("Be concrete about what to bring up in a first conversation.\n\n")

	writeProfile(&b, "First person", target)
	writeProfile(&b, "Second person", candidate)

	fmt.Fprintf(&b, "Computed compatibility score: %.3f\n", match.Score)
	fmt.Fprintf(&b, "Why they match: %s\n", match.Explanation)

	return b.String()
}

func writeProfile(b *strings.Builder, label string, p *types.Profile) {
	if p == nil {
		return
	}
	fmt.Fprintf(b, "%s:\n", label)
	if p.Name != "" {
		fmt.Fprintf(b, "  Name: %s\n", p.Name)
	}
	if len(p.Skills) > 0 {
		fmt.Fprintf(b, "  Skills: %s\n", strings.Join(p.Skills, ", "))
	}
	if len(p.Interests) > 0 {
		fmt.Fprintf(b, "  Interests: %s\n", strings.Join(p.Interests, ", "))
	}
	if p.Goals != "" {
		fmt.Fprintf(b, "  Goal: %s\n", p.Goals)
	}
	if p.StartupStage != "" {
		fmt.Fprintf(b, "  Stage: %s\n", p.StartupStage)
	}
	if p.Location != "" {
		fmt.Fprintf(b, "  Location: %s\n", p.Location)
	}
	if p.CollabStyle != "" {
		fmt.Fprintf(b, "  Collaboration style: %s\n", p.CollabStyle)
	}
	b.WriteString("\n")
}
