package server

import (
	"context"
	"encoding/json"
	"net/http"

	"launchpad/internal/apperror"
	"launchpad/internal/media"
	"launchpad/pkg/types"
)

// handleAttachMedia implements POST /api/startups/:id/media. The startup row
// is read, the media set reconciled in memory, and written back in a single
// UPDATE; concurrent attaches on the same row are last-write-wins.
func (s *Service) handleAttachMedia(w http.ResponseWriter, r *http.Request) {
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

	// Ownership before payload validation: a non-owner gets 403 no matter
	// what they send.
	if err := s.requireOwner(ctx, startup, userID); err != nil {
		s.respondError(w, err)
		return
	}

	var req types.MediaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, apperror.Validation("", "invalid request body"))
		return
	}

	if req.MediaType == "" || req.URL == "" {
		s.respondError(w, apperror.Validation("mediaType", "mediaType and url are required"))
		return
	}

	canonical := media.Normalize(req.MediaType)
	set, err := media.Attach(mediaSetOf(startup), canonical, req.MediaType, req.URL)
	if err != nil {
		s.respondError(w, err)
		return
	}

	if err := s.startupRepo.UpdateMedia(ctx, startup.ID, set); err != nil {
		s.respondError(w, apperror.Dependency(err, "update media"))
		return
	}

	s.appendAudit(ctx, userID, types.AuditActionUpdateMedia, startup.ID, map[string]any{
		"mediaType": req.MediaType,
		"title":     req.Title,
		"url":       req.URL,
	})
	s.invalidateStartupPages(ctx, startup)

	s.respondJSON(w, http.StatusOK, map[string]string{
		"message":   "media attached",
		"id":        startup.ID,
		"url":       req.URL,
		"mediaType": canonical,
	})
}

// handleDetachMedia implements DELETE /api/startups/:id/media. The blob is
// deleted best-effort before the row update: a dangling blob is less harmful
// than a dangling reference.
func (s *Service) handleDetachMedia(w http.ResponseWriter, r *http.Request) {
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

	if err := s.requireOwner(ctx, startup, userID); err != nil {
		s.respondError(w, err)
		return
	}

	var req types.MediaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, apperror.Validation("", "invalid request body"))
		return
	}

	if req.MediaType == "" || req.URL == "" {
		s.respondError(w, apperror.Validation("mediaType", "mediaType and url are required"))
		return
	}

	canonical := media.Normalize(req.MediaType)

	set, err := media.Detach(mediaSetOf(startup), canonical, req.URL)
	if err != nil {
		s.respondError(w, err)
		return
	}

	if key := s.storage.KeyFromURL(req.URL); key != "" {
		if err := s.storage.Delete(ctx, key); err != nil {
			s.logger.WithError(err).WithField("key", key).Warn("failed to delete blob, continuing")
		}
	}

	if err := s.startupRepo.UpdateMedia(ctx, startup.ID, set); err != nil {
		s.respondError(w, apperror.Dependency(err, "update media"))
		return
	}

	s.appendAudit(ctx, userID, types.AuditActionUpdateMedia, startup.ID, map[string]any{
		"mediaType": req.MediaType,
		"url":       req.URL,
		"removed":   true,
	})
	s.invalidateStartupPages(ctx, startup)

	s.respondJSON(w, http.StatusOK, map[string]string{
		"message": "media removed",
		"id":      startup.ID,
	})
}

// requireOwner enforces the write-ownership rule: the startup's owner or an
// admin.
func (s *Service) requireOwner(ctx context.Context, startup *types.Startup, userID string) error {
	if startup.UserID == userID {
		return nil
	}

	profile, err := s.profileRepo.Profile(ctx, userID)
	if err == nil && profile.IsAdmin() {
		return nil
	}

	return apperror.Forbidden("you do not own this startup")
}

func mediaSetOf(startup *types.Startup) media.Set {
	return media.Set{
		LogoURL:      startup.LogoURL,
		PitchDeckURL: startup.PitchDeckURL,
		Images:       startup.MediaImages,
		Documents:    startup.MediaDocuments,
		Videos:       startup.MediaVideos,
	}
}

// appendAudit writes an audit entry, logging and swallowing failures so they
// never fail the caller's operation.
func (s *Service) appendAudit(ctx context.Context, userID, action, startupID string, details map[string]any) {
	entry := &types.AuditEntry{
		UserID:     userID,
		Action:     action,
		EntityType: "startup",
		EntityID:   startupID,
		Details:    details,
	}

	if err := s.auditRepo.Append(ctx, entry); err != nil {
		s.logger.WithError(err).WithField("action", action).Warn("failed to append audit entry")
	}
}

func (s *Service) invalidateStartupPages(ctx context.Context, startup *types.Startup) {
	var categorySlug string
	if startup.CategoryID != nil {
		category, err := s.categoryRepo.CategoryByID(ctx, *startup.CategoryID)
		if err == nil && category != nil {
			categorySlug = category.Slug
		}
	}

	s.cache.InvalidateStartup(ctx, startup.Slug, categorySlug)
}
