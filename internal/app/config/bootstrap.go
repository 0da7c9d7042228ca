package config

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	Logger         *zap.Logger
	Lifecycle      *logrus.Logger
	RabbitMQ       *amqp091.Connection
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// ReferenceStop if set is called during Shutdown to unmount the reference queries
	ReferenceStop func()
	// PublisherStop if set is called during Shutdown to close the event channel
	PublisherStop func() error
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.ReferenceStop != nil {
		b.ReferenceStop()
		b.Lifecycle.Println("Successfully stopped reference store")
	}

	if b.PublisherStop != nil {
		err := b.PublisherStop()
		if err != nil {
			return err
		}
		b.Lifecycle.Println("Successfully closing mutation event publisher")
	}

	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			return err
		}
		b.Lifecycle.Println("Successfully closing Redis")
	}

	if b.RabbitMQ != nil {
		err := b.RabbitMQ.Close()
		if err != nil {
			return err
		}
		b.Lifecycle.Println("Successfully closing RabbitMQ")
	}

	// zap returns an error syncing stdout on some platforms, which is harmless
	_ = b.Logger.Sync()
	b.Lifecycle.Println("Successfully closing Logger")

	return nil
}
