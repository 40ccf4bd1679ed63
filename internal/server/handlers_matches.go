// Package server provides the HTTP REST API for the co-founder matching service.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/jonathan/cofounder-match/internal/matching"
	"github.com/jonathan/cofounder-match/internal/server/middleware"
	"github.com/jonathan/cofounder-match/internal/types"
)

// generateAllMinScore is the default score floor for persisted batch matches.
// Pairs scoring below it are noise and are not worth storing.
const generateAllMinScore = 0.5

// recommendation is a recommendation entry with its persisted match row ID
type recommendation struct {
	MatchID     string                `json:"match_id,omitempty"`
	CandidateID string                `json:"candidate_id"`
	Score       float64               `json:"score"`
	Explanation string                `json:"explanation"`
	Breakdown   *types.SubscoreBundle `json:"breakdown,omitempty"`
}

// handleListMatches retrieves the authenticated user's saved matches
func (s *Server) handleListMatches(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	matches, err := s.db.ListMatchesForUser(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	records := make([]types.MatchRecord, 0, len(matches))
	for i := range matches {
		records = append(records, matches[i].ToRecord())
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"matches": records,
		"count":   len(records),
	})
}

// handleGetMatch retrieves a single match owned by the authenticated user
func (s *Server) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	matchID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid match ID")
		return
	}

	match, err := s.db.GetMatch(r.Context(), matchID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if match == nil {
		s.errorResponse(w, http.StatusNotFound, (&ErrMatchNotFound{ID: matchID}).Error())
		return
	}
	if match.UserID != userID && match.MatchedUserID != userID {
		s.errorResponse(w, http.StatusForbidden, (&ErrForbidden{}).Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, match.ToRecord())
}

// handleRecommend computes fresh recommendations for the authenticated user,
// persists them as pending matches, and returns them best first. Users the
// caller has rejected (or been rejected by) are excluded.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	count := matching.DefaultTopN
	if raw := r.URL.Query().Get("count"); raw != "" {
		count, err = strconv.Atoi(raw)
		if err != nil || count < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid count parameter")
			return
		}
	}
	includeBreakdown := r.URL.Query().Get("breakdown") == "true"

	target, pool, err := s.loadMatchingPool(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if target == nil {
		s.errorResponse(w, http.StatusNotFound, "create a profile before requesting matches")
		return
	}

	excluded, err := s.db.ListRejectedUserIDs(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	results, err := matching.Recommend(target, pool, matching.Options{
		TopN:             count,
		ExcludeIDs:       excluded,
		IncludeBreakdown: includeBreakdown,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	recommendations := make([]recommendation, 0, len(results))
	for _, res := range results {
		rec := recommendation{
			CandidateID: res.CandidateID,
			Score:       res.Score,
			Explanation: res.Explanation,
			Breakdown:   res.Breakdown,
		}
		if candidateID, parseErr := uuid.Parse(res.CandidateID); parseErr == nil {
			matchID, saveErr := s.db.SaveMatch(r.Context(), userID, candidateID, res.Score, res.Explanation)
			if saveErr != nil {
				s.errorResponse(w, http.StatusInternalServerError, saveErr.Error())
				return
			}
			rec.MatchID = matchID.String()
		}
		recommendations = append(recommendations, rec)
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"recommendations": recommendations,
		"count":           len(recommendations),
	})
}

// generateAllRequest is the optional request body for batch generation
type generateAllRequest struct {
	TopN     int     `json:"top_n"`
	MinScore float64 `json:"min_score"`
}

// handleGenerateAll computes recommendations for every profiled user and
// persists the results. Pairs below the minimum score are skipped.
func (s *Server) handleGenerateAll(w http.ResponseWriter, r *http.Request) {
	req := generateAllRequest{TopN: matching.DefaultTopN, MinScore: generateAllMinScore}
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}
	if req.TopN < 1 {
		req.TopN = matching.DefaultTopN
	}

	pool, err := s.db.ListMatchingPool(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	all, err := matching.RecommendAll(pool, matching.Options{
		TopN:     req.TopN,
		MinScore: req.MinScore,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	saved := 0
	for sourceID, results := range all {
		source, err := uuid.Parse(sourceID)
		if err != nil {
			continue
		}
		for _, res := range results {
			candidate, err := uuid.Parse(res.CandidateID)
			if err != nil {
				continue
			}
			if _, err := s.db.SaveMatch(r.Context(), source, candidate, res.Score, res.Explanation); err != nil {
				s.errorResponse(w, http.StatusInternalServerError, err.Error())
				return
			}
			saved++
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"users":         len(all),
		"matches_saved": saved,
	})
}

// matchActionRequest is the request body for acting on a match
type matchActionRequest struct {
	Action string `json:"action"`
}

// handleMatchAction applies an accept/reject/connect action to a match
func (s *Server) handleMatchAction(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	matchID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid match ID")
		return
	}

	var req matchActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !types.ValidMatchAction(req.Action) {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid action: %q", req.Action))
		return
	}

	match, err := s.db.GetMatch(r.Context(), matchID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if match == nil {
		s.errorResponse(w, http.StatusNotFound, (&ErrMatchNotFound{ID: matchID}).Error())
		return
	}
	if match.UserID != userID {
		s.errorResponse(w, http.StatusForbidden, (&ErrForbidden{}).Error())
		return
	}

	status := types.StatusForAction(req.Action)
	if err := s.db.UpdateMatchStatus(r.Context(), matchID, status); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{
		"message": "Match updated",
		"status":  status,
	})
}

// compatibilityRequest is the request body for a pairwise compatibility check
type compatibilityRequest struct {
	UserID string `json:"user_id"`
}

// handleCompatibility scores the authenticated user against one other user
func (s *Server) handleCompatibility(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req compatibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	otherID, err := uuid.Parse(req.UserID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	target, candidate, err := s.loadProfilePair(r.Context(), userID, otherID)
	if err != nil {
		status := HTTPStatus(err)
		s.errorResponse(w, status, err.Error())
		return
	}

	result, err := matching.Compatibility(target, candidate)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// loadMatchingPool loads the full profile pool and picks out the target user's
// entry. A nil target means the user has no profile yet.
func (s *Server) loadMatchingPool(ctx context.Context, userID uuid.UUID) (*types.Profile, []*types.Profile, error) {
	pool, err := s.db.ListMatchingPool(ctx)
	if err != nil {
		return nil, nil, err
	}

	id := userID.String()
	for _, p := range pool {
		if p.ID == id {
			return p, pool, nil
		}
	}
	return nil, pool, nil
}

// loadProfilePair loads the engine-facing profiles of two users
func (s *Server) loadProfilePair(ctx context.Context, userID, otherID uuid.UUID) (*types.Profile, *types.Profile, error) {
	target, err := s.loadEngineProfile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	candidate, err := s.loadEngineProfile(ctx, otherID)
	if err != nil {
		return nil, nil, err
	}
	return target, candidate, nil
}

// loadEngineProfile loads one user's profile in engine-facing form
func (s *Server) loadEngineProfile(ctx context.Context, userID uuid.UUID) (*types.Profile, error) {
	user, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &ErrUserNotFound{UserID: userID}
	}

	row, err := s.db.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, &ErrProfileNotFound{ID: userID}
	}

	return row.ToMatchProfile(user.Name), nil
}
