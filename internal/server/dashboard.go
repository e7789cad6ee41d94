package server

import (
	"net/http"

	"launchpad/internal/apperror"
)

// handleDashboardStartups lists the caller's own startups, every status
// included, with the same derived counters the public cards carry.
func (s *Service) handleDashboardStartups(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()

	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		s.respondError(w, apperror.Unauthenticated())
		return
	}

	startups, err := s.startupRepo.StartupsByUser(ctx, userID)
	if err != nil {
		s.respondError(w, apperror.Dependency(err, "fetch startups"))
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{
		"startups": s.cardsOf(ctx, startups),
	})
}
