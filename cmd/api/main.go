package main

import (
	"database/sql"
	"net/http"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	server "github.com/priyanshu599/backendRantease/internal/adapters/http_server"
	"github.com/priyanshu599/backendRantease/internal/adapters/observability"
	redisad "github.com/priyanshu599/backendRantease/internal/adapters/redis"
	"github.com/priyanshu599/backendRantease/internal/app"
	"github.com/priyanshu599/backendRantease/internal/shared"
	mysqlrepo "github.com/priyanshu599/backendRantease/internal/storage/mysql"
)

func main() {
	_ = godotenv.Load()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	db.SetConnMaxLifetime(3 * time.Minute)
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	repos := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	bookings := app.NewBookingService(repos.Bookings, repos.Properties, cache, cfg.CacheTTL)
	applications := app.NewApplicationService(repos.Applications, repos.Properties)
	properties := app.NewPropertyService(repos.Properties, cache, cfg.CacheTTL)
	payments := app.NewPaymentService(repos.Payments, repos.Bookings)
	messages := app.NewMessageService(repos.Messages)
	admin := app.NewAdminService(repos.Users, repos.Properties, repos.Bookings, repos.Applications, repos.Payments, cache)

	// http
	srv := server.New(cfg.ThrottleRPS)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(
		server.NewHandlers(bookings, applications, properties, payments, messages, admin),
		server.RequireAuth([]byte(cfg.JWTSecret)),
	)

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
