package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/asklink/matching/cmd/config"
	"github.com/asklink/matching/thirdparty/rabbitmq"
	"github.com/asklink/matching/utils/logger"
	"go.uber.org/zap"
)

// The expiration consumer drains the delayed match-expiration queue and
// calls the API's internal expire endpoint for each message.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting expiration consumer", zap.String("env", cfg.Environment))

	consumer, err := rabbitmq.NewConsumer(
		cfg.Rabbit.Host,
		cfg.Rabbit.Port,
		cfg.Rabbit.User,
		cfg.Rabbit.Password,
		cfg.Rabbit.APIBaseURL,
		cfg.Internal.APIKey,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	<-ctx.Done()
	logger.Info("Expiration consumer shutting down")
}
