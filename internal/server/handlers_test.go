package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"launchpad/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Stubs embed the store interface so only the methods a test exercises need
// an implementation.

type stubStartupStore struct {
	StartupStore
	startup  *types.Startup
	statuses []types.StartupStatus
}

func (s *stubStartupStore) Startup(_ context.Context, _ string) (*types.Startup, error) {
	return s.startup, nil
}

func (s *stubStartupStore) UpdateStatus(_ context.Context, _ string, status types.StartupStatus) error {
	s.statuses = append(s.statuses, status)
	s.startup.Status = status
	return nil
}

type stubProfileStore struct {
	ProfileStore
	profile *types.Profile
}

func (s *stubProfileStore) Profile(_ context.Context, _ string) (*types.Profile, error) {
	return s.profile, nil
}

type stubAuditStore struct {
	entries []*types.AuditEntry
}

func (s *stubAuditStore) Append(_ context.Context, entry *types.AuditEntry) error {
	s.entries = append(s.entries, entry)
	return nil
}

func newTestService(startups StartupStore, profiles ProfileStore, audits AuditStore) *Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return &Service{
		logger:      logger,
		config:      &types.Config{},
		startupRepo: startups,
		profileRepo: profiles,
		auditRepo:   audits,
	}
}

func authedRequest(t *testing.T, method, target, userID string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	return req.WithContext(context.WithValue(req.Context(), contextKeyUserID, userID))
}

func TestAttachMediaNonOwnerForbidden(t *testing.T) {
	startups := &stubStartupStore{startup: &types.Startup{
		ID:     "st1",
		UserID: "owner-1",
		Status: types.StartupStatusApproved,
	}}
	profiles := &stubProfileStore{profile: &types.Profile{ID: "intruder", Role: types.RoleFounder}}
	s := newTestService(startups, profiles, &stubAuditStore{})

	// 403 regardless of payload validity: ownership is checked before the
	// body is even read.
	cases := map[string]any{
		"valid payload":   types.MediaRequest{MediaType: "image", URL: "https://x/a.png"},
		"empty payload":   map[string]string{},
		"garbage payload": "not json at all",
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			req := authedRequest(t, http.MethodPost, "/api/startups/st1/media", "intruder", body)
			req.SetPathValue("id", "st1")

			w := httptest.NewRecorder()
			s.handleAttachMedia(w, req)

			assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
		})
	}
}

func TestDetachMediaNonOwnerForbidden(t *testing.T) {
	startups := &stubStartupStore{startup: &types.Startup{
		ID:     "st1",
		UserID: "owner-1",
		Status: types.StartupStatusApproved,
	}}
	profiles := &stubProfileStore{profile: &types.Profile{ID: "intruder", Role: types.RoleInvestor}}
	s := newTestService(startups, profiles, &stubAuditStore{})

	req := authedRequest(t, http.MethodDelete, "/api/startups/st1/media", "intruder", map[string]string{})
	req.SetPathValue("id", "st1")

	w := httptest.NewRecorder()
	s.handleDetachMedia(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
}

func TestAttachMediaOwnerInvalidBodyRejected(t *testing.T) {
	startups := &stubStartupStore{startup: &types.Startup{
		ID:     "st1",
		UserID: "owner-1",
		Status: types.StartupStatusApproved,
	}}
	s := newTestService(startups, &stubProfileStore{}, &stubAuditStore{})

	req := authedRequest(t, http.MethodPost, "/api/startups/st1/media", "owner-1", map[string]string{})
	req.SetPathValue("id", "st1")

	w := httptest.NewRecorder()
	s.handleAttachMedia(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestAdminStatusAnyTransitionAllowed(t *testing.T) {
	startups := &stubStartupStore{startup: &types.Startup{
		ID:     "st1",
		UserID: "owner-1",
		Status: types.StartupStatusPending,
	}}
	audits := &stubAuditStore{}
	s := newTestService(startups, &stubProfileStore{}, audits)

	// Approve, then send it straight back to pending: no transition guard.
	for _, status := range []types.StartupStatus{
		types.StartupStatusApproved,
		types.StartupStatusPending,
	} {
		req := authedRequest(t, http.MethodPost, "/api/admin/startups/st1/status", "admin-1",
			types.StatusRequest{Status: status})
		req.SetPathValue("id", "st1")

		w := httptest.NewRecorder()
		s.handleAdminStatus(w, req)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	assert.Equal(t, []types.StartupStatus{
		types.StartupStatusApproved,
		types.StartupStatusPending,
	}, startups.statuses)
	assert.Equal(t, types.StartupStatusPending, startups.startup.Status)

	require.Len(t, audits.entries, 2)
	assert.Equal(t, types.AuditActionUpdateStatus, audits.entries[0].Action)
	assert.Equal(t, types.StartupStatusApproved, audits.entries[0].Details["to"])
	assert.Equal(t, types.StartupStatusPending, audits.entries[1].Details["to"])
}

func TestAdminStatusUnknownValueRejected(t *testing.T) {
	startups := &stubStartupStore{startup: &types.Startup{ID: "st1", Status: types.StartupStatusPending}}
	s := newTestService(startups, &stubProfileStore{}, &stubAuditStore{})

	req := authedRequest(t, http.MethodPost, "/api/admin/startups/st1/status", "admin-1",
		map[string]string{"status": "published"})
	req.SetPathValue("id", "st1")

	w := httptest.NewRecorder()
	s.handleAdminStatus(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Empty(t, startups.statuses)
}
