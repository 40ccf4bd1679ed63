// Package server provides the HTTP REST API for the co-founder matching service.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/cofounder-match/internal/matching"
	"github.com/jonathan/cofounder-match/internal/server/middleware"
)

// adviceRequest is the request body for match advice
type adviceRequest struct {
	UserID string `json:"user_id"`
}

// handleChatAdvice computes the match between the authenticated user and one
// other user, then asks the advisor how to approach them. Without an LLM key
// the deterministic explanation is returned.
func (s *Server) handleChatAdvice(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req adviceRequest
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
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := matching.Compatibility(target, candidate)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	advice, err := s.advisor.Advise(r.Context(), target, candidate, result)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"advice":      advice,
		"score":       result.Score,
		"explanation": result.Explanation,
	})
}
