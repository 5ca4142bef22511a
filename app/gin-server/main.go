package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/yoockh/konselor/config"
	"github.com/yoockh/konselor/internal/api/handlers"
	"github.com/yoockh/konselor/internal/api/middleware"
	"github.com/yoockh/konselor/internal/api/routes"
	"github.com/yoockh/konselor/internal/logger"
	"github.com/yoockh/konselor/internal/providers/llm"
	"github.com/yoockh/konselor/internal/ratelimit"
	"github.com/yoockh/konselor/internal/repositories"
	mongorepo "github.com/yoockh/konselor/internal/repositories/mongo"
	pgrepo "github.com/yoockh/konselor/internal/repositories/postgres"
	"github.com/yoockh/konselor/internal/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.New("").WithError(err).Fatal("config load failed")
	}
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessions, interactions, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("store init failed")
	}
	defer closeStore()

	provider, err := newProvider(ctx, cfg.Gemini)
	if err != nil {
		log.WithError(err).Fatal("gemini provider init failed")
	}
	defer provider.Close()
	log.WithField("gemini", cfg.Gemini.String()).Info("gemini provider ready")

	var geminiMW []gin.HandlerFunc
	if limiter, closeLimiter := newLimiter(ctx, cfg, log); limiter != nil {
		defer closeLimiter()
		geminiMW = append(geminiMW, middleware.RateLimit(limiter, log))
	}

	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log), middleware.CORS(cfg.Server.AllowedOrigins))

	routes.RegisterRoutes(r, cfg.Server.APIPrefix, routes.Deps{
		Session:          handlers.NewSessionHandler(services.NewSessionService(sessions)),
		Interaction:      handlers.NewInteractionHandler(services.NewInteractionService(interactions, log)),
		Generation:       handlers.NewGenerationHandler(services.NewGenerationService(provider, log)),
		GeminiMiddleware: geminiMW,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := runServer(ctx, srv, log); err != nil {
		log.WithError(err).Fatal("server error")
	}
}

func openStore(ctx context.Context, cfg *config.Config, log *logrus.Logger) (repositories.SessionRepository, repositories.InteractionRepository, func(), error) {
	switch cfg.Store {
	case config.BackendMongo:
		client, err := config.OpenMongo(ctx, cfg.Mongo)
		if err != nil {
			return nil, nil, nil, err
		}
		db := client.Database(cfg.Mongo.Database)
		if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, nil, err
		}
		log.WithField("store", cfg.Mongo.String()).Info("mongo connected")
		closeFn := func() {
			dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = client.Disconnect(dctx)
		}
		return mongorepo.NewSessionRepo(db), mongorepo.NewInteractionRepo(db), closeFn, nil

	default:
		db, err := config.OpenPostgres(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, nil, err
		}
		if cfg.Postgres.AutoMigrate {
			if err := pgrepo.Migrate(ctx, db); err != nil {
				_ = sqlDB.Close()
				return nil, nil, nil, err
			}
		}
		log.WithField("store", cfg.Postgres.String()).Info("postgres connected")
		return pgrepo.NewSessionRepo(db), pgrepo.NewInteractionRepo(db), func() { _ = sqlDB.Close() }, nil
	}
}

func newProvider(ctx context.Context, cfg config.GeminiConfig) (llm.Provider, error) {
	if cfg.Backend == config.GeminiVertex {
		return llm.NewVertexGemini(ctx, cfg.VertexProject, cfg.VertexLocation, cfg.Model)
	}
	return llm.NewGeminiREST(cfg.URL(), cfg.APIKey, nil), nil
}

// newLimiter returns nil when rate limiting is disabled. An unreachable Redis
// falls back to the in-process limiter.
func newLimiter(ctx context.Context, cfg *config.Config, log *logrus.Logger) (ratelimit.Limiter, func()) {
	if !cfg.RateLimit.Enabled() {
		log.Info("gemini rate limit disabled")
		return nil, func() {}
	}
	if cfg.Redis.Enabled() {
		rdb, err := config.OpenRedis(ctx, cfg.Redis)
		if err == nil {
			log.WithField("redis", cfg.Redis.String()).Info("redis rate limiter ready")
			return ratelimit.NewRedisLimiter(rdb, cfg.RateLimit.PerMinute, cfg.RateLimit.Window), func() { _ = rdb.Close() }
		}
		log.WithError(err).Warn("redis unavailable, using in-memory rate limiter")
	}
	return ratelimit.NewMemoryLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Window), func() {}
}

func runServer(ctx context.Context, srv *http.Server, log *logrus.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	}
}
