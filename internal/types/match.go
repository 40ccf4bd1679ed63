package types

import (
	"time"

	"github.com/google/uuid"
)

// Match status values. A match starts pending and moves to accepted,
// rejected, or connected through user actions.
const (
	MatchStatusPending   = "pending"
	MatchStatusAccepted  = "accepted"
	MatchStatusRejected  = "rejected"
	MatchStatusConnected = "connected"
)

// ComplementPair records one directed complementary-skill hit:
// skill A (from the source profile) pairs with skill B (from the candidate)
// for the given synergy value.
type ComplementPair struct {
	SkillA string  `json:"skill_a"`
	SkillB string  `json:"skill_b"`
	Value  float64 `json:"value"`
}

// SubscoreBundle carries every per-dimension compatibility signal computed
// for a single (source, candidate) pair. It is built once per pair, consumed
// by the aggregator and the explanation generator, and never persisted.
type SubscoreBundle struct {
	SkillOverlapCount    int              `json:"skill_overlap_count"`
	SharedSkills         []string         `json:"shared_skills,omitempty"`
	ComplementSum        float64          `json:"complement_sum"`
	ComplementDetails    []ComplementPair `json:"complement_details,omitempty"`
	InterestOverlapCount int              `json:"interest_overlap_count"`
	SharedInterests      []string         `json:"shared_interests,omitempty"`
	GoalVal              float64          `json:"goal_val"`
	GoalDesc             string           `json:"goal_desc"`
	StageVal             float64          `json:"stage_val"`
	StageDesc            string           `json:"stage_desc"`
	LocationVal          float64          `json:"location_val"`
	AvailabilityVal      float64          `json:"availability_val"`
	CollabStyleVal       float64          `json:"collab_style_val"`
}

// MatchResult is the engine's output for one candidate: who, how well, and why.
// Ownership passes to the caller, which may persist it as a MatchRecord.
type MatchResult struct {
	CandidateID string          `json:"candidate_id"`
	Score       float64         `json:"score"`
	Explanation string          `json:"explanation"`
	Breakdown   *SubscoreBundle `json:"breakdown,omitempty"`
}

// MatchRecord is the persisted form of a match between two users, with the
// lifecycle fields (status, timestamps) owned by the storage layer rather
// than the engine.
type MatchRecord struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	MatchedUserID uuid.UUID `json:"matched_user_id"`
	Score         float64   `json:"score"`
	Explanation   string    `json:"explanation,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ValidMatchAction reports whether an action string is one a user may apply
// to a match.
func ValidMatchAction(action string) bool {
	switch action {
	case "accept", "reject", "connect":
		return true
	}
	return false
}

// StatusForAction maps a match action to the resulting match status.
// Returns "" for unknown actions.
func StatusForAction(action string) string {
	switch action {
	case "accept":
		return MatchStatusAccepted
	case "reject":
		return MatchStatusRejected
	case "connect":
		return MatchStatusConnected
	}
	return ""
}
