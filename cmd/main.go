package main

import (
	"net/http"

	matchapp "github.com/asklink/matching/application/match"
	userapp "github.com/asklink/matching/application/user"
	"github.com/asklink/matching/cmd/config"
	redisclient "github.com/asklink/matching/cmd/redis"
	_ "github.com/asklink/matching/docs"
	matchRepo "github.com/asklink/matching/repository/match"
	redisRepo "github.com/asklink/matching/repository/redis"
	txRepo "github.com/asklink/matching/repository/tx"
	userRepo "github.com/asklink/matching/repository/user"
	"github.com/asklink/matching/thirdparty/rabbitmq"
	"github.com/asklink/matching/transport"
	"github.com/asklink/matching/utils/logger"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

// @title ASKLINK MATCHING API
// @version 1.0
// @description Referral and match response API
// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Run schema migrations
	if err := goose.SetDialect("mysql"); err != nil {
		logger.Fatal("err set goose dialect", zap.Error(err))
	}
	if err := goose.Up(db.DB, "migrations"); err != nil {
		logger.Fatal("err run migrations", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// RabbitMQ publisher; the API stays up without it, expiration
	// scheduling and responded events are just disabled.
	publisher, err := rabbitmq.NewPublisher(cfg.Rabbit.Host, cfg.Rabbit.Port, cfg.Rabbit.User, cfg.Rabbit.Password)
	if err != nil {
		logger.Warn("rabbitmq unavailable, events disabled", zap.Error(err))
		publisher = nil
	} else {
		defer func() {
			_ = publisher.Close()
		}()
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	MatchRepo := matchRepo.NewMatchRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	MatchApp := matchapp.NewMatchApp(TxRepo, MatchRepo, UserRepo, publisher)

	httpTransport := transport.NewTransport(cfg, UserApp, MatchApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
