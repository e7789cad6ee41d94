package server

import (
	"encoding/json"
	"net/http"

	"launchpad/internal/apperror"
	"launchpad/internal/moderation"
	"launchpad/pkg/types"
)

type adminQuery struct {
	Status string `form:"status"`
}

type moderationRow struct {
	types.Startup
	Spam           moderation.Report         `json:"spam"`
	Classification moderation.Classification `json:"classification"`
}

// handleAdminQueue lists startups for the moderation console, defaulting to
// the pending queue. Each row carries a freshly computed spam report so the
// console can sort by review priority.
func (s *Service) handleAdminQueue(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()

	var q adminQuery
	if err := decoder.Decode(&q, r.URL.Query()); err != nil {
		s.respondError(w, apperror.Validation("", "invalid query parameters"))
		return
	}

	status := types.StartupStatus(q.Status)
	if q.Status == "" {
		status = types.StartupStatusPending
	}
	if !types.ValidStatus(status) {
		s.respondError(w, apperror.Validation("status", "unknown status"))
		return
	}

	startups, err := s.startupRepo.StartupsByStatus(ctx, status)
	if err != nil {
		s.respondError(w, apperror.Dependency(err, "fetch startups"))
		return
	}

	rows := make([]moderationRow, 0, len(startups))
	for _, startup := range startups {
		var description string
		if startup.Description != nil {
			description = *startup.Description
		}

		report := moderation.Score(startup.Name, description)
		rows = append(rows, moderationRow{
			Startup:        *startup,
			Spam:           report,
			Classification: report.Classification(),
		})
	}

	s.respondJSON(w, http.StatusOK, map[string]any{"startups": rows})
}

// handleAdminStatus implements POST /api/admin/startups/:id/status. Any
// status may follow any other, so approvals can be reversed and flagged
// submissions restored.
func (s *Service) handleAdminStatus(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()
	startupID := r.PathValue("id")

	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		s.respondError(w, apperror.Unauthenticated())
		return
	}

	var req types.StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, apperror.Validation("", "invalid request body"))
		return
	}

	if !types.ValidStatus(req.Status) {
		s.respondError(w, apperror.Validation("status", "unknown status"))
		return
	}

	startup, err := s.startupRepo.Startup(ctx, startupID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	previous := startup.Status

	if err := s.startupRepo.UpdateStatus(ctx, startup.ID, req.Status); err != nil {
		s.respondError(w, err)
		return
	}

	s.appendAudit(ctx, userID, types.AuditActionUpdateStatus, startup.ID, map[string]any{
		"from": previous,
		"to":   req.Status,
	})
	s.invalidateStartupPages(ctx, startup)
	s.notifier.StatusChanged(startup, previous, req.Status, userID)

	s.respondJSON(w, http.StatusOK, map[string]string{
		"message": "status updated",
		"id":      startup.ID,
		"status":  string(req.Status),
	})
}

// handleAdminDelete removes a startup and its dependents regardless of
// owner, for submissions that should not stay in the system at all.
func (s *Service) handleAdminDelete(w http.ResponseWriter, r *http.Request) {
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

	if err := s.deleteStartupCascade(ctx, startup); err != nil {
		s.respondError(w, err)
		return
	}

	s.appendAudit(ctx, userID, types.AuditActionDeleteStartup, startup.ID, map[string]any{
		"name":   startup.Name,
		"status": startup.Status,
	})
	s.invalidateStartupPages(ctx, startup)

	s.respondJSON(w, http.StatusOK, map[string]string{
		"message": "startup deleted",
		"id":      startup.ID,
	})
}
