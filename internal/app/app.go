package app

import (
	"context"
	"math/rand/v2"
	"time"

	"go-staffdesk/internal/employee"
	"go-staffdesk/internal/messaging/kafka"
	"go-staffdesk/internal/middleware"
	"go-staffdesk/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// BuildApp generates the roster, connects the optional Redis and Kafka
// backends and registers every route on router. The returned cleanup stops the
// outbox worker and closes connections.
func BuildApp(router *gin.Engine, cfg Config) (func(), error) {
	logger := zap.L().Named("app")
	cleanups := make([]func(), 0, 3)
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	genRng, repoRng := newRands(cfg.RosterSeed)
	roster := employee.NewGenerator(genRng, time.Now).Generate(cfg.RosterSize, cfg.AttendanceDays, cfg.PaymentMonths)
	repo := employee.NewMemoryRepository(roster, employee.WithRand(repoRng))
	logger.Info("roster generated",
		zap.Int("employees", len(roster)),
		zap.Int("attendance_days", cfg.AttendanceDays),
		zap.Int("payment_months", cfg.PaymentMonths),
	)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		client, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
		if err != nil {
			return nil, err
		}
		rdb = client
		cleanups = append(cleanups, func() { _ = client.Close() })
		logger.Info("redis connection established", zap.String("addr", cfg.RedisAddr))
	}

	var outbox kafka.OutboxRepository
	if cfg.KafkaBroker != "" {
		ctx, cancel := context.WithCancel(context.Background())
		ob, stop, err := startOutboxWorker(ctx, cfg, logger)
		if err != nil {
			cancel()
			cleanup()
			return nil, err
		}
		outbox = ob
		cleanups = append(cleanups, func() {
			cancel()
			stop()
		})
	}

	router.Use(middleware.RequestID(), middleware.ContextLogger(zap.L()))
	registerModules(router, repo, rdb, outbox, time.Now)

	return cleanup, nil
}

// newRands returns independent sources for the generator and the repository,
// both derived from seed when one is configured.
func newRands(seed *uint64) (*rand.Rand, *rand.Rand) {
	if seed == nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
			rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(*seed, 0)), rand.New(rand.NewPCG(*seed, 1))
}
