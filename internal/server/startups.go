package server

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"launchpad/internal/apperror"
	"launchpad/internal/media"
	"launchpad/internal/slug"
	"launchpad/internal/storage"
	"launchpad/internal/utils"
	"launchpad/pkg/types"

	"github.com/sirupsen/logrus"
)

const maxUploadBytes = 64 << 20

// wizardPayload is the decoded multipart submission: three JSON blocks plus
// file parts handled separately.
type wizardPayload struct {
	Basic    types.StartupBasicInfo
	Detailed types.StartupDetailedInfo
	Media    types.StartupMediaInfo
}

func parseWizardForm(r *http.Request) (*wizardPayload, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, apperror.Validation("", "invalid multipart form")
	}

	var payload wizardPayload

	if raw := r.FormValue("basicInfo"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &payload.Basic); err != nil {
			return nil, apperror.Validation("basicInfo", "basicInfo is not valid JSON")
		}
	}
	if raw := r.FormValue("detailedInfo"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &payload.Detailed); err != nil {
			return nil, apperror.Validation("detailedInfo", "detailedInfo is not valid JSON")
		}
	}
	if raw := r.FormValue("mediaInfo"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &payload.Media); err != nil {
			return nil, apperror.Validation("mediaInfo", "mediaInfo is not valid JSON")
		}
	}

	return &payload, nil
}

func (s *Service) handleCreateStartup(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()

	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		s.respondError(w, apperror.Unauthenticated())
		return
	}

	payload, err := parseWizardForm(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	name := strings.TrimSpace(payload.Basic.Name)
	if name == "" {
		s.respondError(w, apperror.Validation("name", "name is required"))
		return
	}

	startupSlug, err := slug.Unique(ctx, name, s.startupRepo.SlugExists)
	if err != nil {
		s.respondError(w, apperror.Dependency(err, "generate slug"))
		return
	}

	startup := &types.Startup{
		UserID:        userID,
		Name:          name,
		Slug:          startupSlug,
		Tagline:       utils.NullableString(payload.Basic.Tagline),
		Description:   utils.NullableString(payload.Detailed.Description),
		CategoryID:    utils.NullableString(payload.Basic.CategoryID),
		WebsiteURL:    utils.NullableString(payload.Basic.WebsiteURL),
		FundingStage:  utils.NullableString(payload.Detailed.FundingStage),
		FundingAmount: payload.Detailed.FundingAmount,
		TeamSize:      payload.Detailed.TeamSize,
		Location:      utils.NullableString(payload.Detailed.Location),
		Status:        types.StartupStatusPending,
	}

	if payload.Detailed.FoundedAt != "" {
		founded, err := time.Parse("2006-01-02", payload.Detailed.FoundedAt)
		if err != nil {
			s.respondError(w, apperror.Validation("foundedAt", "foundedAt must be YYYY-MM-DD"))
			return
		}
		startup.FoundedAt = &founded
	}

	if startup.CategoryID != nil {
		category, err := s.categoryRepo.CategoryByID(ctx, *startup.CategoryID)
		if err != nil {
			s.respondError(w, apperror.Dependency(err, "lookup category"))
			return
		}
		if category == nil {
			s.respondError(w, apperror.Validation("categoryId", "unknown category"))
			return
		}
	}

	set, err := s.uploadWizardFiles(ctx, userID, media.Set{}, r.MultipartForm)
	if err != nil {
		s.respondError(w, err)
		return
	}

	for _, videoURL := range payload.Media.VideoURLs {
		set, err = media.Attach(set, media.TypeVideo, "video", videoURL)
		if err != nil {
			s.respondError(w, err)
			return
		}
	}

	startup.LogoURL = set.LogoURL
	startup.PitchDeckURL = set.PitchDeckURL
	startup.MediaImages = set.Images
	startup.MediaDocuments = set.Documents
	startup.MediaVideos = set.Videos

	if err := s.startupRepo.CreateStartup(ctx, startup); err != nil {
		// The uploaded blobs may be orphaned here; accepted best-effort
		// posture, no rollback.
		s.respondError(w, apperror.Dependency(err, "create startup"))
		return
	}

	if len(payload.Detailed.SocialLinks) > 0 {
		if err := s.socialLinkRepo.ReplaceLinks(ctx, startup.ID, payload.Detailed.SocialLinks); err != nil {
			s.respondError(w, apperror.Dependency(err, "save social links"))
			return
		}
	}

	if len(payload.Detailed.LookingFor) > 0 {
		if err := s.lookingForRepo.ReplaceAssignments(ctx, startup.ID, payload.Detailed.LookingFor); err != nil {
			s.respondError(w, apperror.Dependency(err, "save looking-for tags"))
			return
		}
	}

	s.appendAudit(ctx, userID, types.AuditActionCreateStartup, startup.ID, map[string]any{
		"name": startup.Name,
		"slug": startup.Slug,
	})
	s.notifier.NewSubmission(startup)

	s.respondJSON(w, http.StatusCreated, map[string]string{
		"id":      startup.ID,
		"slug":    startup.Slug,
		"message": "startup submitted for review",
	})
}

func (s *Service) handleUpdateStartup(w http.ResponseWriter, r *http.Request) {
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

	payload, err := parseWizardForm(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	if name := strings.TrimSpace(payload.Basic.Name); name != "" && name != startup.Name {
		startup.Name = name
		// The slug survives renames; public URLs stay stable.
	}
	if payload.Basic.Tagline != "" {
		startup.Tagline = &payload.Basic.Tagline
	}
	if payload.Basic.WebsiteURL != "" {
		startup.WebsiteURL = &payload.Basic.WebsiteURL
	}
	if payload.Basic.CategoryID != "" {
		category, err := s.categoryRepo.CategoryByID(ctx, payload.Basic.CategoryID)
		if err != nil {
			s.respondError(w, apperror.Dependency(err, "lookup category"))
			return
		}
		if category == nil {
			s.respondError(w, apperror.Validation("categoryId", "unknown category"))
			return
		}
		startup.CategoryID = &payload.Basic.CategoryID
	}
	if payload.Detailed.Description != "" {
		startup.Description = &payload.Detailed.Description
	}
	if payload.Detailed.FundingStage != "" {
		startup.FundingStage = &payload.Detailed.FundingStage
	}
	if payload.Detailed.FundingAmount != nil {
		startup.FundingAmount = payload.Detailed.FundingAmount
	}
	if payload.Detailed.TeamSize != nil {
		startup.TeamSize = payload.Detailed.TeamSize
	}
	if payload.Detailed.Location != "" {
		startup.Location = &payload.Detailed.Location
	}
	if payload.Detailed.FoundedAt != "" {
		founded, err := time.Parse("2006-01-02", payload.Detailed.FoundedAt)
		if err != nil {
			s.respondError(w, apperror.Validation("foundedAt", "foundedAt must be YYYY-MM-DD"))
			return
		}
		startup.FoundedAt = &founded
	}

	set, err := s.uploadWizardFiles(ctx, startup.UserID, mediaSetOf(startup), r.MultipartForm)
	if err != nil {
		s.respondError(w, err)
		return
	}

	for _, videoURL := range payload.Media.VideoURLs {
		set, err = media.Attach(set, media.TypeVideo, "video", videoURL)
		if err != nil {
			s.respondError(w, err)
			return
		}
	}

	startup.LogoURL = set.LogoURL
	startup.PitchDeckURL = set.PitchDeckURL
	startup.MediaImages = set.Images
	startup.MediaDocuments = set.Documents
	startup.MediaVideos = set.Videos

	if err := s.startupRepo.UpdateStartup(ctx, startup.ID, startup); err != nil {
		s.respondError(w, apperror.Dependency(err, "update startup"))
		return
	}

	if payload.Detailed.SocialLinks != nil {
		if err := s.socialLinkRepo.ReplaceLinks(ctx, startup.ID, payload.Detailed.SocialLinks); err != nil {
			s.respondError(w, apperror.Dependency(err, "save social links"))
			return
		}
	}

	if payload.Detailed.LookingFor != nil {
		if err := s.lookingForRepo.ReplaceAssignments(ctx, startup.ID, payload.Detailed.LookingFor); err != nil {
			s.respondError(w, apperror.Dependency(err, "save looking-for tags"))
			return
		}
	}

	s.appendAudit(ctx, userID, types.AuditActionUpdateStartup, startup.ID, map[string]any{
		"name": startup.Name,
	})
	s.invalidateStartupPages(ctx, startup)

	s.respondJSON(w, http.StatusOK, map[string]any{
		"message": "startup updated",
		"id":      startup.ID,
		"startup": startup,
	})
}

func (s *Service) handleDeleteStartup(w http.ResponseWriter, r *http.Request) {
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

	if err := s.deleteStartupCascade(ctx, startup); err != nil {
		s.respondError(w, apperror.Dependency(err, "delete startup"))
		return
	}

	s.appendAudit(ctx, userID, types.AuditActionDeleteStartup, startup.ID, map[string]any{
		"name": startup.Name,
	})
	s.invalidateStartupPages(ctx, startup)

	s.respondJSON(w, http.StatusOK, map[string]string{"message": "startup deleted"})
}

// deleteStartupCascade removes dependent rows, best-effort deletes the
// startup's blobs, then drops the row itself.
func (s *Service) deleteStartupCascade(ctx context.Context, startup *types.Startup) error {
	if err := s.socialLinkRepo.DeleteByStartup(ctx, startup.ID); err != nil {
		return err
	}
	if err := s.voteRepo.DeleteByStartup(ctx, startup.ID); err != nil {
		return err
	}
	if err := s.wishlistRepo.DeleteByStartup(ctx, startup.ID); err != nil {
		return err
	}
	if err := s.lookingForRepo.DeleteByStartup(ctx, startup.ID); err != nil {
		return err
	}
	if err := s.viewLogRepo.DeleteByStartup(ctx, startup.ID); err != nil {
		return err
	}

	var urls []string
	urls = append(urls, startup.MediaImages...)
	urls = append(urls, startup.MediaDocuments...)
	urls = append(urls, startup.MediaVideos...)
	for _, url := range urls {
		key := s.storage.KeyFromURL(url)
		if key == "" {
			continue
		}
		if err := s.storage.Delete(ctx, key); err != nil {
			s.logger.WithError(err).WithField("key", key).Warn("failed to delete blob, continuing")
		}
	}

	return s.startupRepo.DeleteStartup(ctx, startup.ID)
}

// wizard file parts mapped to storage categories and attach labels.
var wizardFileParts = []struct {
	field    string
	category string
	rawLabel string
}{
	{"logo", storage.CategoryLogos, "logo"},
	{"banner", storage.CategoryImages, "coverImage"},
	{"gallery", storage.CategoryImages, "image"},
	{"pitchDeck", storage.CategoryDocuments, "pitchDeck"},
}

// uploadWizardFiles uploads each file part and folds it into the media set.
func (s *Service) uploadWizardFiles(ctx context.Context, userID string, set media.Set, mpForm *multipart.Form) (media.Set, error) {
	if mpForm == nil {
		return set, nil
	}

	for _, part := range wizardFileParts {
		for _, header := range mpForm.File[part.field] {
			url, err := s.uploadFilePart(ctx, userID, part.category, header)
			if err != nil {
				return set, err
			}

			set, err = media.Attach(set, media.Normalize(part.rawLabel), part.rawLabel, url)
			if err != nil {
				return set, err
			}
		}
	}

	return set, nil
}

func (s *Service) uploadFilePart(ctx context.Context, userID, category string, header *multipart.FileHeader) (string, error) {
	contentType := header.Header.Get("Content-Type")
	if !storage.AllowedMimeType(category, contentType) {
		return "", apperror.Validation("file", "unsupported file type "+contentType)
	}

	file, err := header.Open()
	if err != nil {
		return "", apperror.Dependency(err, "open upload")
	}
	defer file.Close()

	key := storage.ObjectKey(userID, category, header.Filename)

	url, err := s.storage.Upload(ctx, key, file, contentType)
	if err != nil {
		return "", apperror.Dependency(err, "upload file")
	}

	s.logger.WithFields(logrus.Fields{
		"key":   key,
		"bytes": header.Size,
	}).Debug("uploaded file")

	return url, nil
}
