package server

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"launchpad/internal/cache"
	"launchpad/internal/notify"
	"launchpad/internal/storage"
	"launchpad/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/go-playground/form/v4"
	"github.com/gorilla/securecookie"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/sirupsen/logrus"
)

var decoder = form.NewDecoder()

type Service struct {
	logger *logrus.Logger
	config *types.Config

	cognitoClient *cognitoidentityprovider.Client
	storage       *storage.Client
	cache         *cache.Cache
	notifier      *notify.Notifier

	startupRepo    StartupStore
	categoryRepo   CategoryStore
	socialLinkRepo SocialLinkStore
	voteRepo       VoteStore
	wishlistRepo   WishlistStore
	lookingForRepo LookingForStore
	profileRepo    ProfileStore
	viewLogRepo    ViewLogStore
	auditRepo      AuditStore

	cookie *securecookie.SecureCookie

	jwksCache *jwk.Cache
	jwksURL   string

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	cognitoClient *cognitoidentityprovider.Client,
	storageClient *storage.Client,
	pageCache *cache.Cache,
	notifier *notify.Notifier,
	startupRepo StartupStore,
	categoryRepo CategoryStore,
	socialLinkRepo SocialLinkStore,
	voteRepo VoteStore,
	wishlistRepo WishlistStore,
	lookingForRepo LookingForStore,
	profileRepo ProfileStore,
	viewLogRepo ViewLogStore,
	auditRepo AuditStore,
	jwkCache *jwk.Cache,
	jwksURL string,
) (*Service, error) {
	mux := flow.New()

	hashKey, _ := base64.StdEncoding.DecodeString(config.CookieHashKey)
	blockKey, _ := base64.StdEncoding.DecodeString(config.CookieBlockKey)

	s := &Service{
		logger: logger,
		config: config,

		cognitoClient: cognitoClient,
		storage:       storageClient,
		cache:         pageCache,
		notifier:      notifier,

		startupRepo:    startupRepo,
		categoryRepo:   categoryRepo,
		socialLinkRepo: socialLinkRepo,
		voteRepo:       voteRepo,
		wishlistRepo:   wishlistRepo,
		lookingForRepo: lookingForRepo,
		profileRepo:    profileRepo,
		viewLogRepo:    viewLogRepo,
		auditRepo:      auditRepo,

		cookie: securecookie.New(hashKey, blockKey),

		jwksCache: jwkCache,
		jwksURL:   jwksURL,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	s.buildRouter(mux)

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	// Public read surface
	r.HandleFunc("/api/home", s.handleHome, http.MethodGet)
	r.HandleFunc("/api/browse", s.handleBrowse, http.MethodGet)
	r.HandleFunc("/api/categories", s.handleCategories, http.MethodGet)
	r.HandleFunc("/api/looking-for", s.handleLookingForOptions, http.MethodGet)
	r.HandleFunc("/api/startups/slug/:slug", s.handleStartupDetail, http.MethodGet)

	// Auth
	r.HandleFunc("/api/auth/register", s.handleRegister, http.MethodPost)
	r.HandleFunc("/api/auth/login", s.handleLogin, http.MethodPost)
	r.HandleFunc("/api/auth/logout", s.handleLogout, http.MethodPost)

	// Founder / investor surface
	r.Group(func(r *flow.Mux) {
		r.Use(s.RequireAuth)

		r.HandleFunc("/api/startups", s.handleCreateStartup, http.MethodPost)
		r.HandleFunc("/api/startups/:id", s.handleUpdateStartup, http.MethodPut)
		r.HandleFunc("/api/startups/:id", s.handleDeleteStartup, http.MethodDelete)

		r.HandleFunc("/api/startups/:id/media", s.handleAttachMedia, http.MethodPost)
		r.HandleFunc("/api/startups/:id/media", s.handleDetachMedia, http.MethodDelete)

		r.HandleFunc("/api/startups/:id/vote", s.handleVote, http.MethodPost)
		r.HandleFunc("/api/startups/:id/vote", s.handleDeleteVote, http.MethodDelete)

		r.HandleFunc("/api/wishlist", s.handleWishlist, http.MethodGet)
		r.HandleFunc("/api/wishlist/:id", s.handleWishlistAdd, http.MethodPost)
		r.HandleFunc("/api/wishlist/:id", s.handleWishlistRemove, http.MethodDelete)

		r.HandleFunc("/api/dashboard/startups", s.handleDashboardStartups, http.MethodGet)
	})

	// Admin moderation console
	r.Group(func(r *flow.Mux) {
		r.Use(s.RequireAuth)
		r.Use(s.RequireAdmin)

		r.HandleFunc("/api/admin/startups", s.handleAdminQueue, http.MethodGet)
		r.HandleFunc("/api/admin/startups/:id/status", s.handleAdminStatus, http.MethodPost)
		r.HandleFunc("/api/admin/startups/:id", s.handleAdminDelete, http.MethodDelete)
	})
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Service) userIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(contextKeyUserID).(string)
	if !ok {
		return "", fmt.Errorf("user id not found in context")
	}
	return userID, nil
}
