package main

import (
	"context"
	"crypto/rand"
	"log"
	"net/http"
	"time"

	"github.com/teamplan/team-calendar-backend/internal/api"
	schedule_service "github.com/teamplan/team-calendar-backend/internal/business/schedule"
	"github.com/teamplan/team-calendar-backend/internal/config"
	"github.com/teamplan/team-calendar-backend/internal/database"
	"github.com/teamplan/team-calendar-backend/internal/database/category"
	"github.com/teamplan/team-calendar-backend/internal/database/member"
	"github.com/teamplan/team-calendar-backend/internal/database/schedule"
	"github.com/teamplan/team-calendar-backend/internal/database/team"
	"github.com/teamplan/team-calendar-backend/internal/notifications"
	"github.com/teamplan/team-calendar-backend/internal/pkg/jwt"
	"github.com/teamplan/team-calendar-backend/internal/pkg/oauth"
	"github.com/teamplan/team-calendar-backend/internal/redis"
	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx := context.Background()

	logger, err := initLogger()
	if err != nil {
		log.Fatalf("unable to initializae logger: %v", err)
	}

	jwts := jwt.NewManger()
	tokenParser := oauth.NewParser()

	redisPool := redis.NewRedisPool(logger)
	refreshTokens := redis.NewRefreshTokenRepository(redisPool, logger)
	go cleanupSessions(ctx, logger, refreshTokens)

	db, err := database.NewPGX(ctx)
	if err != nil {
		log.Fatalf("unable to initializae db: %v", err)
	}

	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("unable to migrate db: %v", err)
	}

	membersRepository := member.NewRepository()
	teamsRepository := team.NewRepository()
	categoriesRepository := category.NewRepository()
	schedulesRepository := schedule.NewRepository()

	schedulesService := schedule_service.NewService(db, logger, teamsRepository, categoriesRepository, schedulesRepository)

	notifier := notifications.NewNotifier(db, logger, teamsRepository, membersRepository)
	go notifier.Start(ctx)

	api, err := api.NewApi(
		logger,
		rand.Reader,
		jwts,
		tokenParser,
		refreshTokens,
		db,
		membersRepository,
		teamsRepository,
		categoriesRepository,
		schedulesService,
		notifier,
	)
	if err != nil {
		logger.Fatalw("error initiating api", "err", err)
	}

	errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
	if err != nil {
		logger.Fatalw("error initiating server logger", "err", err)
	}

	server := &http.Server{
		Addr:     ":" + config.Port(),
		Handler:  api,
		ErrorLog: errLogger,
	}

	logger.Infow("Started server", "port", config.Port())
	logger.Fatalw("server error", "err", server.ListenAndServe())
}

func cleanupSessions(ctx context.Context, logger *zap.SugaredLogger, sessions *redis.RefreshTokenRepository) {
	ticker := time.NewTicker(config.SessionCleanupPeriod())

	closer.Bind(ticker.Stop)

	for range ticker.C {
		if err := sessions.DeleteExpired(ctx); err != nil {
			logger.Errorw("failed cleaning up expired sessions", "err", err)
		}
	}
}

func initLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if config.Production() {
		logger, err = zap.NewProduction()
	} else {
		conf := zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = conf.Build()
	}

	if err != nil {
		return nil, err
	}

	closer.Bind(func() {
		_ = logger.Sync()
	})

	return logger.Sugar(), nil
}
