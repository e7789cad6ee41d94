package server

import (
	"encoding/json"
	"net/http"

	"launchpad/internal/apperror"
	"launchpad/pkg/types"
)

// handleVote implements POST /api/startups/:id/vote. Repeat votes by the
// same user overwrite the previous direction.
func (s *Service) handleVote(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()
	startupID := r.PathValue("id")

	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		s.respondError(w, apperror.Unauthenticated())
		return
	}

	var req types.VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, apperror.Validation("", "invalid request body"))
		return
	}

	startup, err := s.startupRepo.Startup(ctx, startupID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	if startup.Status != types.StartupStatusApproved {
		s.respondError(w, apperror.NotFound("startup", startupID))
		return
	}

	if err := s.voteRepo.UpsertVote(ctx, startup.ID, userID, req.Upvote); err != nil {
		s.respondError(w, apperror.Dependency(err, "record vote"))
		return
	}

	counts, err := s.voteRepo.Counts(ctx, startup.ID)
	if err != nil {
		s.respondError(w, apperror.Dependency(err, "count votes"))
		return
	}

	s.respondJSON(w, http.StatusOK, counts)
}

// handleDeleteVote removes the caller's vote, if any.
func (s *Service) handleDeleteVote(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()
	startupID := r.PathValue("id")

	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		s.respondError(w, apperror.Unauthenticated())
		return
	}

	if err := s.voteRepo.DeleteVote(ctx, startupID, userID); err != nil {
		s.respondError(w, apperror.Dependency(err, "delete vote"))
		return
	}

	counts, err := s.voteRepo.Counts(ctx, startupID)
	if err != nil {
		s.respondError(w, apperror.Dependency(err, "count votes"))
		return
	}

	s.respondJSON(w, http.StatusOK, counts)
}

// handleWishlist returns the caller's wishlisted startups as listing cards.
func (s *Service) handleWishlist(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()

	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		s.respondError(w, apperror.Unauthenticated())
		return
	}

	startups, err := s.wishlistRepo.StartupsByUser(ctx, userID)
	if err != nil {
		s.respondError(w, apperror.Dependency(err, "fetch wishlist"))
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{
		"startups": s.cardsOf(ctx, startups),
	})
}

func (s *Service) handleWishlistAdd(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()
	startupID := r.PathValue("id")

	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		s.respondError(w, apperror.Unauthenticated())
		return
	}

	startup, err := s.startupRepo.Startup(ctx, startupID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	if err := s.wishlistRepo.AddItem(ctx, userID, startup.ID); err != nil {
		s.respondError(w, apperror.Dependency(err, "add wishlist item"))
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{
		"message": "added to wishlist",
		"id":      startup.ID,
	})
}

func (s *Service) handleWishlistRemove(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()
	startupID := r.PathValue("id")

	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		s.respondError(w, apperror.Unauthenticated())
		return
	}

	if err := s.wishlistRepo.RemoveItem(ctx, userID, startupID); err != nil {
		s.respondError(w, apperror.Dependency(err, "remove wishlist item"))
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{
		"message": "removed from wishlist",
		"id":      startupID,
	})
}
