// Package server provides the HTTP REST API for the co-founder matching service.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonathan/cofounder-match/internal/db"
	"github.com/jonathan/cofounder-match/internal/server/middleware"
)

// profileRequest is the request body for creating or updating a profile
type profileRequest struct {
	Bio          string   `json:"bio"`
	Skills       []string `json:"skills"`
	Interests    []string `json:"interests"`
	Goals        string   `json:"goals"`
	StartupStage string   `json:"startup_stage"`
	Location     string   `json:"location"`
	Availability string   `json:"availability"`
	CollabStyle  string   `json:"collab_style"`
	LinkedInURL  string   `json:"linkedin_url" validate:"omitempty,url"`
	GitHubURL    string   `json:"github_url" validate:"omitempty,url"`
	AvatarURL    string   `json:"avatar_url" validate:"omitempty,url"`
}

var profileValidator = validator.New()

// toRow copies the request fields onto a profile row
func (req *profileRequest) toRow(row *db.Profile) {
	row.Bio = req.Bio
	row.Skills = req.Skills
	row.Interests = req.Interests
	row.Goals = req.Goals
	row.StartupStage = req.StartupStage
	row.Location = req.Location
	row.Availability = req.Availability
	row.CollabStyle = req.CollabStyle
	row.LinkedInURL = req.LinkedInURL
	row.GitHubURL = req.GitHubURL
	row.AvatarURL = req.AvatarURL
}

// handleCreateProfile creates a profile for the authenticated user
func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := profileValidator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	// One profile per user
	existing, err := s.db.GetProfileByUserID(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if existing != nil {
		s.errorResponse(w, http.StatusConflict, "profile already exists for this user")
		return
	}

	row := db.Profile{UserID: userID}
	req.toRow(&row)

	id, err := s.db.CreateProfile(r.Context(), &row)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

// handleGetProfile retrieves a profile by ID
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	profile, err := s.db.GetProfile(r.Context(), profileID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, (&ErrProfileNotFound{ID: profileID}).Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

// handleListProfiles retrieves all profiles
func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.db.ListProfiles(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"profiles": profiles,
		"count":    len(profiles),
	})
}

// handleUpdateProfile updates the authenticated user's profile
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	profileID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := profileValidator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	profile, err := s.db.GetProfile(r.Context(), profileID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, (&ErrProfileNotFound{ID: profileID}).Error())
		return
	}
	if profile.UserID != userID {
		s.errorResponse(w, http.StatusForbidden, (&ErrForbidden{}).Error())
		return
	}

	req.toRow(profile)
	if err := s.db.UpdateProfile(r.Context(), profile); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Profile updated successfully"})
}

// handleDeleteProfile deletes the authenticated user's profile
func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	profileID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	profile, err := s.db.GetProfile(r.Context(), profileID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, (&ErrProfileNotFound{ID: profileID}).Error())
		return
	}
	if profile.UserID != userID {
		s.errorResponse(w, http.StatusForbidden, (&ErrForbidden{}).Error())
		return
	}

	if err := s.db.DeleteProfile(r.Context(), profileID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Profile deleted successfully"})
}

// handleGetUserProfile retrieves the profile belonging to a user
func (s *Server) handleGetUserProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	profile, err := s.db.GetProfileByUserID(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "profile not found for user")
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

// handleGetMyProfile retrieves the authenticated user's profile
func (s *Server) handleGetMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	profile, err := s.db.GetProfileByUserID(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "profile not found for user")
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}
