// Package persistence selects and wires the record store backend.
package persistence

import (
	"context"
	"log/slog"

	"lounge/config"
	"lounge/internal/domain/lifecycle"
	"lounge/internal/domain/repository"
	"lounge/internal/infra/persistence/memstore"
	"lounge/internal/infra/persistence/mongostore"
	"lounge/internal/infra/persistence/redisstore"
	"lounge/internal/infra/persistence/rtdb"

	firebasesdk "firebase.google.com/go/v4"
	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

// Record store drivers
const (
	DriverFirebase = "firebase"
	DriverRedis    = "redis"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

// StoreParams holds dependencies for the RecordStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc          fx.Lifecycle
	Ctx         context.Context
	Config      *config.Config
	Logger      *slog.Logger
	FirebaseApp *firebasesdk.App `optional:"true"`
}

// NewRecordStore creates the RecordStore selected by store.driver
func NewRecordStore(params StoreParams) (repository.RecordStore, error) {
	cfg := params.Config.Store
	logger := params.Logger.With(slog.String("store_driver", cfg.Driver))

	switch cfg.Driver {
	case DriverFirebase:
		if params.FirebaseApp == nil {
			return nil, errors.New("firebase driver requires firebase configuration")
		}
		client, err := params.FirebaseApp.Database(params.Ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get realtime database client")
		}
		logger.Info("Using Firebase Realtime Database record store")

		return rtdb.New(client, logger), nil

	case DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return errors.Wrap(client.Ping(ctx).Err(), "failed to ping Redis")
			},
			OnStop: func(_ context.Context) error {
				logger.Info("Closing Redis client")

				return client.Close()
			},
		})
		logger.Info("Using Redis record store", slog.String("addr", cfg.Redis.Addr))

		return redisstore.New(client, cfg.Redis.Prefix, logger), nil

	case DriverMongo:
		client, err := mongo.Connect(params.Ctx, options.Client().ApplyURI(cfg.Mongo.URI))
		if err != nil {
			return nil, errors.Wrap(err, "failed to create MongoDB client")
		}
		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return errors.Wrap(client.Ping(ctx, nil), "failed to ping MongoDB")
			},
			OnStop: func(stopCtx context.Context) error {
				logger.Info("Closing MongoDB client")

				return client.Disconnect(stopCtx)
			},
		})
		logger.Info("Using MongoDB record store", slog.String("database", cfg.Mongo.Database))

		return mongostore.New(client.Database(cfg.Mongo.Database), logger), nil

	case DriverMemory, "":
		logger.Warn("Using in-memory record store, data is lost on restart")

		return memstore.New(), nil

	default:
		return nil, errors.Errorf("unknown store driver: %s", cfg.Driver)
	}
}

// Module provides the record store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRecordStore),
)
