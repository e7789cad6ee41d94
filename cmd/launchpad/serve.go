package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"launchpad/internal/cache"
	"launchpad/internal/db"
	"launchpad/internal/notify"
	"launchpad/internal/server"
	"launchpad/internal/storage"
	"launchpad/internal/store"

	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/lestrrat-go/httprc/v3"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP server",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	config, err := loadConfig()
	if err != nil {
		return err
	}

	awsConfig, err := loadAWSConfig(ctx)
	if err != nil {
		return err
	}

	cognitoClient := cognitoidentityprovider.NewFromConfig(awsConfig)
	s3Client := s3.NewFromConfig(awsConfig)
	storageClient := storage.New(s3Client, config.S3Bucket, config.S3PublicBaseURL)

	pool, err := db.Connect(ctx, config)
	if err != nil {
		return err
	}
	defer pool.Close()

	pageCache := cache.New(ctx, config.RedisURL, time.Duration(config.CacheTTLSeconds)*time.Second, logger)
	notifier := notify.New(logger, config.AdminNotifyEmail)

	startupRepo := store.NewStartupRepository(pool)
	categoryRepo := store.NewCategoryRepository(pool)
	socialLinkRepo := store.NewSocialLinkRepository(pool)
	voteRepo := store.NewVoteRepository(pool)
	wishlistRepo := store.NewWishlistRepository(pool)
	lookingForRepo := store.NewLookingForRepository(pool)
	profileRepo := store.NewProfileRepository(pool)
	viewLogRepo := store.NewViewLogRepository(pool)
	auditRepo := store.NewAuditRepository(pool)

	jwkCache, err := jwk.NewCache(context.Background(), httprc.NewClient())
	if err != nil {
		return fmt.Errorf("failed to initialize jwk cache: %w", err)
	}

	jwksURL := fmt.Sprintf("%s/.well-known/jwks.json", config.CognitoIssuerURL)

	err = jwkCache.Register(context.Background(), jwksURL)
	if err != nil {
		return fmt.Errorf("failed to register cognito jwk with cache: %w", err)
	}

	srv, err := server.New(
		config,
		logger,
		cognitoClient,
		storageClient,
		pageCache,
		notifier,
		startupRepo,
		categoryRepo,
		socialLinkRepo,
		voteRepo,
		wishlistRepo,
		lookingForRepo,
		profileRepo,
		viewLogRepo,
		auditRepo,
		jwkCache,
		jwksURL,
	)
	if err != nil {
		return err
	}

	go func() {
		logger.WithField("port", config.ServerPort).Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}
