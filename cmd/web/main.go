package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/Navya-Das/HotelReservation/internal/adapters/flash"
	server "github.com/Navya-Das/HotelReservation/internal/adapters/http_server"
	"github.com/Navya-Das/HotelReservation/internal/adapters/observability"
	"github.com/Navya-Das/HotelReservation/internal/adapters/view"
	"github.com/Navya-Das/HotelReservation/internal/app"
	"github.com/Navya-Das/HotelReservation/internal/shared"
	mysqlrepo "github.com/Navya-Das/HotelReservation/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	hotels := app.NewHotelService(mysqlrepo.NewHotelRepo(db))
	rooms := app.NewRoomService(mysqlrepo.NewRoomRepo(db))
	flashes := flash.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.FlashTTL)
	views, err := view.New()
	if err != nil {
		log.Fatal().Err(err).Msg("template parse failed")
	}

	// http
	srv := server.New()
	limiter := server.NewSubmitLimiter(cfg.FormRateRPS)
	srv.MountHandlers(&server.Handlers{
		Hotels:   hotels,
		Rooms:    rooms,
		Views:    views,
		Flash:    flashes,
		FlashTTL: cfg.FlashTTL,
	}, limiter.Middleware)

	reg := observability.InitRegistry()
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", observability.MetricsHandler(reg))

	appSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}
	metricsSrv := &http.Server{Addr: cfg.MetricsAddr, Handler: metricsMux, ReadHeaderTimeout: 5 * time.Second}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("web server listening")
		if err := appSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		log.Info().Str("addr", cfg.MetricsAddr).Msg("metrics server listening")
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsSrv.Shutdown(shutdownCtx)
		return appSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
	log.Info().Msg("server stopped")
}
