package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/cofounder-match/internal/types"
)

// User represents a user account row
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	PasswordSet  bool      `json:"password_set" db:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile represents a profile row. Skills and interests are JSONB arrays.
type Profile struct {
	ID           uuid.UUID   `json:"id"`
	UserID       uuid.UUID   `json:"user_id"`
	Bio          string      `json:"bio,omitempty"`
	Skills       StringArray `json:"skills"`
	Interests    StringArray `json:"interests"`
	Goals        string      `json:"goals,omitempty"`
	StartupStage string      `json:"startup_stage,omitempty"`
	Location     string      `json:"location,omitempty"`
	Availability string      `json:"availability,omitempty"`
	CollabStyle  string      `json:"collab_style,omitempty"`
	LinkedInURL  string      `json:"linkedin_url,omitempty"`
	GitHubURL    string      `json:"github_url,omitempty"`
	AvatarURL    string      `json:"avatar_url,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// Match represents a persisted match row between two users
type Match struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	MatchedUserID uuid.UUID `json:"matched_user_id"`
	Score         float64   `json:"score"`
	Explanation   string    `json:"explanation,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToMatchProfile converts a profile row (plus the owner's display name) into
// the engine-facing profile. The engine keys profiles by user ID, since
// matches are between users.
func (p *Profile) ToMatchProfile(name string) *types.Profile {
	return &types.Profile{
		ID:           p.UserID.String(),
		UserID:       p.UserID.String(),
		Name:         name,
		Bio:          p.Bio,
		Skills:       p.Skills,
		Interests:    p.Interests,
		Goals:        p.Goals,
		StartupStage: p.StartupStage,
		Location:     p.Location,
		Availability: p.Availability,
		CollabStyle:  p.CollabStyle,
		LinkedInURL:  p.LinkedInURL,
		GitHubURL:    p.GitHubURL,
		AvatarURL:    p.AvatarURL,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ToRecord converts a match row into the API-facing match record.
func (m *Match) ToRecord() types.MatchRecord {
	return types.MatchRecord{
		ID:            m.ID,
		UserID:        m.UserID,
		MatchedUserID: m.MatchedUserID,
		Score:         m.Score,
		Explanation:   m.Explanation,
		Status:        m.Status,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// StringArray handles JSONB string arrays
type StringArray []string

// Scan implements the Scanner interface for StringArray
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = []string{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, a)
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}
