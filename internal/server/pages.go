package server

import (
	"context"
	"net/http"

	"launchpad/internal/apperror"
	"launchpad/internal/cache"
	"launchpad/internal/store"
	"launchpad/pkg/types"
)

const homePageLimit = 12

type browseQuery struct {
	Category string `form:"category"` // category slug
	Search   string `form:"search"`
	Limit    uint64 `form:"limit"`
}

type homePage struct {
	Startups   []*types.StartupCard `json:"startups"`
	Categories []*types.Category    `json:"categories"`
}

type browsePage struct {
	Startups []*types.StartupCard `json:"startups"`
	Category *types.Category      `json:"category,omitempty"`
}

type startupDetail struct {
	types.StartupCard
	Category    *types.Category           `json:"category,omitempty"`
	SocialLinks []*types.SocialLink       `json:"socialLinks"`
	LookingFor  []*types.LookingForOption `json:"lookingFor"`
}

// handleHome serves the landing page data: recently approved startups plus
// the category list. The payload is cached under a single key and
// invalidated whenever a listed startup changes.
func (s *Service) handleHome(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()

	var page homePage
	if s.cache.Get(ctx, cache.KeyHome, &page) {
		s.respondJSON(w, http.StatusOK, page)
		return
	}

	startups, err := s.startupRepo.ApprovedStartups(ctx, store.BrowseFilter{Limit: homePageLimit})
	if err != nil {
		s.respondError(w, apperror.Dependency(err, "fetch startups"))
		return
	}

	categories, err := s.categoryRepo.AllCategories(ctx)
	if err != nil {
		s.respondError(w, apperror.Dependency(err, "fetch categories"))
		return
	}

	page = homePage{
		Startups:   s.cardsOf(ctx, startups),
		Categories: categories,
	}

	s.cache.Set(ctx, cache.KeyHome, page)
	s.respondJSON(w, http.StatusOK, page)
}

// handleBrowse serves the public approved listing, optionally narrowed by
// category slug and a search term. Pure category pages (no search) are
// cached under page:category:{slug}; searches always hit the datastore.
func (s *Service) handleBrowse(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()

	var q browseQuery
	if err := decoder.Decode(&q, r.URL.Query()); err != nil {
		s.respondError(w, apperror.Validation("", "invalid query parameters"))
		return
	}

	cacheable := q.Category != "" && q.Search == "" && q.Limit == 0

	var page browsePage
	if cacheable && s.cache.Get(ctx, cache.KeyCategory(q.Category), &page) {
		s.respondJSON(w, http.StatusOK, page)
		return
	}

	filter := store.BrowseFilter{Search: q.Search, Limit: q.Limit}

	if q.Category != "" {
		category, err := s.categoryRepo.CategoryBySlug(ctx, q.Category)
		if err != nil {
			s.respondError(w, apperror.Dependency(err, "fetch category"))
			return
		}
		if category == nil {
			s.respondError(w, apperror.NotFound("category", q.Category))
			return
		}

		filter.CategoryID = category.ID
		page.Category = category
	}

	startups, err := s.startupRepo.ApprovedStartups(ctx, filter)
	if err != nil {
		s.respondError(w, apperror.Dependency(err, "fetch startups"))
		return
	}

	page.Startups = s.cardsOf(ctx, startups)

	if cacheable {
		s.cache.Set(ctx, cache.KeyCategory(q.Category), page)
	}

	s.respondJSON(w, http.StatusOK, page)
}

func (s *Service) handleCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.categoryRepo.AllCategories(r.Context())
	if err != nil {
		s.respondError(w, apperror.Dependency(err, "fetch categories"))
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

func (s *Service) handleLookingForOptions(w http.ResponseWriter, r *http.Request) {
	options, err := s.lookingForRepo.AllOptions(r.Context())
	if err != nil {
		s.respondError(w, apperror.Dependency(err, "fetch looking-for options"))
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{"options": options})
}

// handleStartupDetail serves the public profile page for an approved
// startup. Each request appends a view-log row best-effort, cache hit or
// not, so the view counter inside a cached payload lags by at most the TTL.
func (s *Service) handleStartupDetail(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()
	slug := r.PathValue("slug")

	startup, err := s.startupRepo.StartupBySlug(ctx, slug)
	if err != nil {
		s.respondError(w, err)
		return
	}

	if startup.Status != types.StartupStatusApproved {
		s.respondError(w, apperror.NotFound("startup", slug))
		return
	}

	viewerID, _ := s.userIDFromContext(ctx)
	if err := s.viewLogRepo.RecordView(ctx, startup.ID, viewerID); err != nil {
		s.logger.WithError(err).WithField("startup_id", startup.ID).Warn("failed to record view")
	}

	var detail startupDetail
	if s.cache.Get(ctx, cache.KeyStartup(slug), &detail) {
		s.respondJSON(w, http.StatusOK, detail)
		return
	}

	detail.StartupCard = *s.cardOf(ctx, startup)

	if startup.CategoryID != nil {
		category, err := s.categoryRepo.CategoryByID(ctx, *startup.CategoryID)
		if err == nil {
			detail.Category = category
		}
	}

	links, err := s.socialLinkRepo.LinksByStartup(ctx, startup.ID)
	if err != nil {
		s.respondError(w, apperror.Dependency(err, "fetch social links"))
		return
	}
	detail.SocialLinks = links

	options, err := s.lookingForRepo.OptionsByStartup(ctx, startup.ID)
	if err != nil {
		s.respondError(w, apperror.Dependency(err, "fetch looking-for options"))
		return
	}
	detail.LookingFor = options

	s.cache.Set(ctx, cache.KeyStartup(slug), detail)
	s.respondJSON(w, http.StatusOK, detail)
}

// cardOf decorates a startup row with its derived counters. Counter
// failures degrade to zero rather than failing the page.
func (s *Service) cardOf(ctx context.Context, startup *types.Startup) *types.StartupCard {
	card := &types.StartupCard{Startup: *startup}

	counts, err := s.voteRepo.Counts(ctx, startup.ID)
	if err != nil {
		s.logger.WithError(err).WithField("startup_id", startup.ID).Warn("failed to count votes")
	} else {
		card.Upvotes = counts.Upvotes
		card.Downvotes = counts.Downvotes
	}

	views, err := s.viewLogRepo.CountByStartup(ctx, startup.ID)
	if err != nil {
		s.logger.WithError(err).WithField("startup_id", startup.ID).Warn("failed to count views")
	} else {
		card.Views = views
	}

	return card
}

func (s *Service) cardsOf(ctx context.Context, startups []*types.Startup) []*types.StartupCard {
	cards := make([]*types.StartupCard, 0, len(startups))
	for _, startup := range startups {
		cards = append(cards, s.cardOf(ctx, startup))
	}
	return cards
}
