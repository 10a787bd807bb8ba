package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	redisCache "github.com/aniladanir/qr-sms-service/internal/cache/redis"
	"github.com/aniladanir/qr-sms-service/internal/domain"
	httpHandler "github.com/aniladanir/qr-sms-service/internal/handler/http"
	"github.com/aniladanir/qr-sms-service/internal/persistant/postgresql"
	"github.com/aniladanir/qr-sms-service/internal/qr"
	visitRepo "github.com/aniladanir/qr-sms-service/internal/repository/visit"
	"github.com/aniladanir/qr-sms-service/internal/service"
	"gorm.io/gorm"
)

var (
	configFile = flag.String("config", "config.json", "config file path")
)

func main() {
	// create root context
	appCtx, appCtxCancel := context.WithCancel(context.Background())
	defer appCtxCancel()

	// listen for terminate signal
	notifyCtx, stop := signal.NotifyContext(appCtx, syscall.SIGTERM, os.Interrupt)
	defer stop()

	// parse flags
	flag.Parse()

	// parse config
	config, err := LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	// setup logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// initialize optional external dependencies
	db, rCache, err := initExternalDependencies(notifyCtx, config, logger)
	if err != nil {
		log.Fatalf("failed to initialize external dependencies: %v", err)
	}

	// init qr renderer, cached when redis is configured
	var renderer qr.Renderer = qr.NewPNGRenderer()
	if rCache != nil {
		renderer = qr.NewCachedRenderer(renderer, rCache, config.QRCacheTTL, logger.With(slog.String("component", "qrCache")))
	}

	// init visit repository
	var visits visitRepo.Repository
	if db != nil {
		visits = visitRepo.NewVisitRepository(db)
	}

	// init link service
	linker := service.NewSMSLinkerService(
		config.BaseURL,
		renderer,
		visits,
		logger.With(slog.String("component", "smsLinker")),
	)

	// init http handler
	httpHandler := httpHandler.NewHttpHandler(
		fmt.Sprintf(":%d", config.HttpPort),
		linker,
		logger.With(slog.String("component", "httpHandler")),
		config.QRCacheTTL,
	)

	wg := sync.WaitGroup{}
	// run http handler
	wg.Go(func() {
		logger.Info("http server listening", "port", config.HttpPort)
		if err := httpHandler.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server encountered with an error and closed", "error", err.Error())
		}
		// cancel app context if http handler fails
		appCtxCancel()
	})

	// graceful shutdown
	wg.Go(func() {
		<-notifyCtx.Done()
		logger.Info("application shutting down...")

		shutDownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		httpHandler.Shutdown(shutDownCtx)
		if rCache != nil {
			rCache.Close()
		}
		if db != nil {
			postgresql.Close(db)
		}
	})

	wg.Wait()
	os.Exit(0)
}

func initExternalDependencies(ctx context.Context, config *Config, logger *slog.Logger) (db *gorm.DB, rCache *redisCache.RedisCache, err error) {
	// initialize database
	if config.DbConnString != "" {
		db, err = postgresql.Initialize(ctx, config.DbConnString, []any{&domain.DispatchVisit{}})
		if err != nil {
			return
		}
	} else {
		logger.Info("db_conn_string is empty, dispatch statistics are disabled")
	}

	// initialize cache
	if config.RedisAddr != "" {
		rCache, err = redisCache.NewRedisCache(ctx, config.RedisAddr, config.RedisPassword, config.RedisDB)
	} else {
		logger.Info("redis_addr is empty, qr codes are not cached")
	}

	return
}
