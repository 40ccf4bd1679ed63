package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/cofounder-match/internal/types"
)

const profileColumns = `id, user_id, COALESCE(bio, ''), skills, interests,
	COALESCE(goals, ''), COALESCE(startup_stage, ''), COALESCE(location, ''),
	COALESCE(availability, ''), COALESCE(collab_style, ''),
	COALESCE(linkedin_url, ''), COALESCE(github_url, ''), COALESCE(avatar_url, ''),
	created_at, updated_at`

func scanProfile(row pgx.Row) (*Profile, error) {
	var p Profile
	err := row.Scan(&p.ID, &p.UserID, &p.Bio, &p.Skills, &p.Interests,
		&p.Goals, &p.StartupStage, &p.Location,
		&p.Availability, &p.CollabStyle,
		&p.LinkedInURL, &p.GitHubURL, &p.AvatarURL,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProfile creates a profile for a user and returns its ID
func (db *DB) CreateProfile(ctx context.Context, p *Profile) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO profiles (user_id, bio, skills, interests, goals, startup_stage,
		                       location, availability, collab_style,
		                       linkedin_url, github_url, avatar_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id`,
		p.UserID, p.Bio, p.Skills, p.Interests, p.Goals, p.StartupStage,
		p.Location, p.Availability, p.CollabStyle,
		p.LinkedInURL, p.GitHubURL, p.AvatarURL,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return id, nil
}

// GetProfile retrieves a profile by its ID, or nil when not found
func (db *DB) GetProfile(ctx context.Context, profileID uuid.UUID) (*Profile, error) {
	p, err := scanProfile(db.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = $1`, profileID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

// GetProfileByUserID retrieves the profile belonging to a user, or nil
func (db *DB) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	p, err := scanProfile(db.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile for user: %w", err)
	}
	return p, nil
}

// ListProfiles retrieves all profiles
func (db *DB) ListProfiles(ctx context.Context) ([]Profile, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+profileColumns+` FROM profiles ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, *p)
	}
	return profiles, nil
}

// UpdateProfile updates the matching-relevant fields of a profile
func (db *DB) UpdateProfile(ctx context.Context, p *Profile) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE profiles
		 SET bio = $1, skills = $2, interests = $3, goals = $4, startup_stage = $5,
		     location = $6, availability = $7, collab_style = $8,
		     linkedin_url = $9, github_url = $10, avatar_url = $11, updated_at = NOW()
		 WHERE id = $12`,
		p.Bio, p.Skills, p.Interests, p.Goals, p.StartupStage,
		p.Location, p.Availability, p.CollabStyle,
		p.LinkedInURL, p.GitHubURL, p.AvatarURL, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile not found: %s", p.ID)
	}
	return nil
}

// DeleteProfile deletes a profile by ID
func (db *DB) DeleteProfile(ctx context.Context, profileID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, profileID)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile not found: %s", profileID)
	}
	return nil
}

// ListMatchingPool retrieves every profile joined with its owner's name,
// converted to the engine-facing representation. This is the population the
// recommendation workflows operate on.
func (db *DB) ListMatchingPool(ctx context.Context) ([]*types.Profile, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT p.user_id, u.name, COALESCE(p.bio, ''), p.skills, p.interests,
		        COALESCE(p.goals, ''), COALESCE(p.startup_stage, ''), COALESCE(p.location, ''),
		        COALESCE(p.availability, ''), COALESCE(p.collab_style, '')
		 FROM profiles p
		 JOIN users u ON u.id = p.user_id
		 ORDER BY p.created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list matching pool: %w", err)
	}
	defer rows.Close()

	var pool []*types.Profile
	for rows.Next() {
		var userID uuid.UUID
		var p types.Profile
		var skills, interests StringArray
		if err := rows.Scan(&userID, &p.Name, &p.Bio, &skills, &interests,
			&p.Goals, &p.StartupStage, &p.Location,
			&p.Availability, &p.CollabStyle); err != nil {
			return nil, fmt.Errorf("failed to scan matching pool row: %w", err)
		}
		p.ID = userID.String()
		p.UserID = userID.String()
		p.Skills = skills
		p.Interests = interests
		pool = append(pool, &p)
	}
	return pool, nil
}
