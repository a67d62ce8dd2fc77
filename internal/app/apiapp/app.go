package apiapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minio/minio-go/v7"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/syberke1354/exion-sub001/internal/config"
	cldinfra "github.com/syberke1354/exion-sub001/internal/infra/cloudinary"
	"github.com/syberke1354/exion-sub001/internal/infra/httpclient"
	s3infra "github.com/syberke1354/exion-sub001/internal/infra/s3"
	pgrepo "github.com/syberke1354/exion-sub001/internal/repo/postgres"
	redrepo "github.com/syberke1354/exion-sub001/internal/repo/redis"
	authsvc "github.com/syberke1354/exion-sub001/internal/services/adminauth"
	contactsvc "github.com/syberke1354/exion-sub001/internal/services/contact"
	contentsvc "github.com/syberke1354/exion-sub001/internal/services/content"
	docssvc "github.com/syberke1354/exion-sub001/internal/services/docs"
	mediasvc "github.com/syberke1354/exion-sub001/internal/services/media"
)

type App struct {
	cfg        config.Config
	logger     *zap.Logger
	server     *http.Server
	postgres   *pgxpool.Pool
	redis      *goredis.Client
	s3         *minio.Client
	httpRouter http.Handler
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	r := chi.NewRouter()
	ApplyMiddlewares(r, log)

	var pool *pgxpool.Pool
	if p, err := pgrepo.NewPool(ctx, cfg.Postgres.DSN); err != nil {
		log.Warn("postgres init failed, continuing in degraded mode", zap.Error(err))
	} else {
		pool = p
	}

	redisClient := redrepo.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	sessionRepo := redrepo.NewSessionRepo(redisClient)
	accountRepo := pgrepo.NewAdminAccountRepo(pool)
	contentRepo := pgrepo.NewContentRepo(pool)
	contactRepo := pgrepo.NewContactRepo(pool)
	documentRepo := pgrepo.NewDocumentRepo(pool)

	verifier := authsvc.NewFirebaseVerifier(
		httpclient.New(0),
		cfg.Identity.Endpoint,
		cfg.Identity.APIKey,
	)
	authService := authsvc.NewService(verifier, accountRepo, sessionRepo, cfg.Auth.JWTSecret, cfg.Auth.SessionIdleTTL)

	var mediaHost mediasvc.Host
	if client, err := cldinfra.NewClient(cldinfra.Config{
		CloudName: cfg.Cloudinary.CloudName,
		APIKey:    cfg.Cloudinary.APIKey,
		APISecret: cfg.Cloudinary.APISecret,
	}); err != nil {
		log.Warn("cloudinary init failed, continuing in degraded mode", zap.Error(err))
	} else {
		mediaHost = mediasvc.NewCloudinaryHost(client)
	}
	mediaService := mediasvc.NewService(mediaHost, cfg.Cloudinary.DefaultFolder)

	contentService := contentsvc.NewService(contentRepo, mediaService, log)

	var mailer contactsvc.Mailer
	if m, err := contactsvc.NewSMTPMailer(contactsvc.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		NotifyTo: cfg.SMTP.NotifyTo,
	}); err != nil {
		log.Warn("smtp init failed, contact notifications disabled", zap.Error(err))
	} else {
		mailer = m
	}
	contactService := contactsvc.NewService(contactRepo, mailer, log)

	var s3Client *minio.Client
	if c, err := s3infra.NewClient(s3infra.Config{
		Endpoint:  cfg.S3.Endpoint,
		AccessKey: cfg.S3.AccessKey,
		SecretKey: cfg.S3.SecretKey,
		UseSSL:    cfg.S3.UseSSL,
	}); err != nil {
		log.Warn("s3 init failed, continuing in degraded mode", zap.Error(err))
	} else {
		s3Client = c
	}
	docsStorage := docssvc.NewS3Storage(s3Client, cfg.S3.Bucket)
	docsService := docssvc.NewService(documentRepo, docsStorage)

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	RegisterRoutes(r, Dependencies{
		AuthService:    authService,
		MediaService:   mediaService,
		ContentService: contentService,
		ContactService: contactService,
		DocsService:    docsService,
		Logger:         log,
		Config:         cfg,
	})

	return &App{
		cfg:        cfg,
		logger:     log,
		server:     server,
		postgres:   pool,
		redis:      redisClient,
		s3:         s3Client,
		httpRouter: r,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info("api server started", zap.String("addr", a.cfg.HTTP.Addr))
	err := a.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) Shutdown(ctx context.Context) error {
	var shutdownErr error

	if err := a.server.Shutdown(ctx); err != nil {
		shutdownErr = err
	}
	if a.postgres != nil {
		a.postgres.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil && shutdownErr == nil {
			shutdownErr = err
		}
	}

	return shutdownErr
}

func (a *App) Handler() http.Handler {
	return a.httpRouter
}
