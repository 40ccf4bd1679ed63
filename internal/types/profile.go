// Package types provides type definitions for structured data used throughout the co-founder matching system.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Profile holds the compatibility-relevant attributes of a user.
// The matching engine consumes profiles read-only; every field except ID
// is optional and an absent value contributes zero signal to a score.
type Profile struct {
	ID           string    `json:"id" validate:"required"`
	UserID       string    `json:"user_id,omitempty"`
	Name         string    `json:"name,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	Skills       []string  `json:"skills,omitempty"`
	Interests    []string  `json:"interests,omitempty"`
	Goals        string    `json:"goals,omitempty"`
	StartupStage string    `json:"startup_stage,omitempty"`
	Location     string    `json:"location,omitempty"`
	Availability string    `json:"availability,omitempty"`
	CollabStyle  string    `json:"collab_style,omitempty"`
	LinkedInURL  string    `json:"linkedin_url,omitempty" validate:"omitempty,url"`
	GitHubURL    string    `json:"github_url,omitempty" validate:"omitempty,url"`
	AvatarURL    string    `json:"avatar_url,omitempty" validate:"omitempty,url"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}

// Validate validates the Profile using the validator.
func (p *Profile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// SkillSet returns the profile's skills as a set for overlap computations.
func (p *Profile) SkillSet() map[string]bool {
	set := make(map[string]bool, len(p.Skills))
	for _, s := range p.Skills {
		set[s] = true
	}
	return set
}

// InterestSet returns the profile's interests as a set.
func (p *Profile) InterestSet() map[string]bool {
	set := make(map[string]bool, len(p.Interests))
	for _, s := range p.Interests {
		set[s] = true
	}
	return set
}
