package app

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/riskwatch/riskwatch/configs"
	"github.com/riskwatch/riskwatch/internal/bus"
	"github.com/riskwatch/riskwatch/internal/generator"
	"github.com/riskwatch/riskwatch/internal/handlers"
	"github.com/riskwatch/riskwatch/internal/rules"
	"github.com/riskwatch/riskwatch/internal/session"
	"github.com/riskwatch/riskwatch/internal/store"
	"github.com/riskwatch/riskwatch/pkg"
	"github.com/riskwatch/riskwatch/pkg/cache"
	middleware "github.com/riskwatch/riskwatch/pkg/middlewares"
	"go.uber.org/zap"
)

// NewApp wires dependencies, builds the Gin engine, and returns an *http.Server
// and a cleanup func. It reads configuration from environment variables via
// configs.Load.
func NewApp(ctx context.Context, logger *zap.Logger) (*http.Server, func(), error) {
	// Load config
	cfg, err := configs.Load(logger)
	if err != nil {
		return nil, nil, err
	}

	// Session backend: file by default, Redis when configured
	var sessions session.Store
	var redisClient *redis.Client
	closeRedis := func() {}
	if cfg.SessionBackend == "redis" {
		client, closer, err := cache.New(ctx, cache.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err != nil {
			return nil, nil, err
		}
		redisClient = client
		closeRedis = closer
		sessions = session.NewRedisStore(client, logger)
	} else {
		sessions = session.NewFileStore(cfg.SessionFile, logger)
	}

	// Seed the feed and replay the persisted session
	gen := generator.New(rand.New(rand.NewSource(time.Now().UnixNano())))
	st := store.New(ctx, store.Config{
		SeedCount:  cfg.SeedCount,
		LoginDelay: cfg.LoginDelay(),
		Users:      store.DefaultUsers(),
	}, sessions, gen, logger)

	// Event bus and live producer, continuing from the seeded sequences
	b := bus.New(logger)
	st.Attach(b)
	txSeq, alertSeq := st.NextSequences()
	producer := bus.NewProducer(b, gen, cfg.ProducerInterval(), txSeq, alertSeq, logger)
	producer.Start(ctx)

	ruleSvc := rules.NewService(logger)
	limiter := pkg.NewLoginLimiter(redisClient, "riskwatch:login", cfg.LoginRatePerMin, cfg.LoginBurst, logger)

	// Setup handlers
	baseHandler := handlers.NewBaseHandler(logger)
	authHandler := handlers.NewAuthHandler(logger, st, limiter)
	txHandler := handlers.NewTransactionHandler(logger, st)
	chartHandler := handlers.NewChartHandler(logger, st)
	ruleHandler := handlers.NewRuleHandler(logger, ruleSvc)

	// Router
	r := gin.Default()

	api := r.Group("/api/v1")
	api.Use(middleware.TraceID())
	api.Use(middleware.Metrics())

	authHandler.RegisterRoutes(api)
	txHandler.RegisterRoutes(api)
	chartHandler.RegisterRoutes(api)
	ruleHandler.RegisterRoutes(api)
	baseHandler.RegisterRoutes(r)

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	cleanup := func() {
		producer.Stop()
		st.Detach()
		closeRedis()
	}

	return srv, cleanup, nil
}
