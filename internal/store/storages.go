// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/chewsday/internal/config"
	"github.com/MKhiriev/chewsday/internal/logger"
)

// Storages bundles the repositories used by the service layer together with
// the connections behind them.
type Storages struct {
	UserRepository UserRepository
	// TokenBlocklist is nil when no Redis address is configured.
	TokenBlocklist TokenBlocklist

	closers []func(ctx context.Context) error
}

// NewStorages connects to the primary store picked by the DSN scheme, applies
// migrations for relational backends and, when configured, connects to Redis.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	storages := &Storages{}

	switch backend := cfg.DB.Backend(); backend {
	case config.BackendPostgres, config.BackendSQLite:
		connect := NewConnectPostgres
		if backend == config.BackendSQLite {
			connect = NewConnectSQLite
		}

		db, err := connect(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		storages.closers = append(storages.closers, func(context.Context) error { return db.Close() })

		if err = db.Migrate(ctx); err != nil {
			_ = storages.Close(ctx)
			return nil, err
		}

		storages.UserRepository = NewUserRepository(db, log)
	case config.BackendMongo:
		client, err := NewConnectMongo(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		storages.closers = append(storages.closers, client.Disconnect)

		repo, err := NewMongoUserRepository(ctx, client.Database(cfg.DB.Name), log)
		if err != nil {
			_ = storages.Close(ctx)
			return nil, err
		}

		storages.UserRepository = repo
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, backend)
	}

	if cfg.Cache.RedisAddress != "" {
		client, err := NewConnectRedis(ctx, cfg.Cache, log)
		if err != nil {
			_ = storages.Close(ctx)
			return nil, err
		}
		storages.closers = append(storages.closers, func(context.Context) error { return client.Close() })
		storages.TokenBlocklist = NewRedisTokenBlocklist(client)
	}

	return storages, nil
}

// Close releases every connection opened by [NewStorages].
func (s *Storages) Close(ctx context.Context) error {
	var err error
	for i := len(s.closers) - 1; i >= 0; i-- {
		err = errors.Join(err, s.closers[i](ctx))
	}
	s.closers = nil

	return err
}
