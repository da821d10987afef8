// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/chewsday/internal/logger"
	"github.com/MKhiriev/chewsday/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMongoRepo(mt *mtest.T) *mongoUserRepository {
	return &mongoUserRepository{users: mt.Coll, logger: logger.Nop()}
}

func duplicateKeyResponse() bson.D {
	return mtest.CreateWriteErrorsResponse(mtest.WriteError{
		Index:   0,
		Code:    11000,
		Message: "E11000 duplicate key error collection: chewsday.users",
	})
}

func TestMongoUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create user", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := newMongoRepo(mt).CreateUser(ctx, models.User{ID: "u-1", Username: "alice", Email: "alice@example.com"})
		require.NoError(mt, err)
	})

	mt.Run("create user duplicate", func(mt *mtest.T) {
		mt.AddMockResponses(duplicateKeyResponse())

		err := newMongoRepo(mt).CreateUser(ctx, models.User{ID: "u-1", Username: "alice", Email: "alice@example.com"})
		assert.ErrorIs(mt, err, ErrUserAlreadyExists)
	})

	mt.Run("find user by email", func(mt *mtest.T) {
		created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "chewsday.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "u-1"},
			{Key: "username", Value: "alice"},
			{Key: "email", Value: "alice@example.com"},
			{Key: "phone", Value: "5551234567"},
			{Key: "password_hash", Value: "hash"},
			{Key: "created_at", Value: created},
		}))

		user, err := newMongoRepo(mt).FindUserByEmail(ctx, "alice@example.com")
		require.NoError(mt, err)
		assert.Equal(mt, "u-1", user.ID)
		assert.Equal(mt, "hash", user.PasswordHash)
		require.NotNil(mt, user.Phone)
		assert.Equal(mt, "5551234567", *user.Phone)
		assert.True(mt, created.Equal(user.CreatedAt))
	})

	mt.Run("find user by id not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "chewsday.users", mtest.FirstBatch))

		_, err := newMongoRepo(mt).FindUserByID(ctx, "missing")
		assert.ErrorIs(mt, err, ErrNoUserWasFound)
	})

	mt.Run("add favorite dish", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		require.NoError(mt, newMongoRepo(mt).AddFavoriteDish(ctx, "u-1", "52772"))
	})

	mt.Run("add favorite dish already present", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
		))

		require.NoError(mt, newMongoRepo(mt).AddFavoriteDish(ctx, "u-1", "52772"))
	})

	mt.Run("add favorite restaurant unknown user", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		err := newMongoRepo(mt).AddFavoriteRestaurant(ctx, "missing", "yelp-id")
		assert.ErrorIs(mt, err, ErrNoUserWasFound)
	})

	mt.Run("get favorites", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "chewsday.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "u-1"},
			{Key: "favorite_dishes", Value: bson.A{"b", "a"}},
		}))

		favorites, err := newMongoRepo(mt).GetFavorites(ctx, "u-1")
		require.NoError(mt, err)
		assert.Equal(mt, []string{"b", "a"}, favorites.Dishes)
		assert.Equal(mt, []string{}, favorites.Restaurants)
	})

	mt.Run("get favorites unknown user", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "chewsday.users", mtest.FirstBatch))

		_, err := newMongoRepo(mt).GetFavorites(ctx, "missing")
		assert.ErrorIs(mt, err, ErrNoUserWasFound)
	})

	mt.Run("set phone", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		require.NoError(mt, newMongoRepo(mt).SetPhone(ctx, "u-1", "5551234567"))
	})

	mt.Run("set phone taken", func(mt *mtest.T) {
		mt.AddMockResponses(duplicateKeyResponse())

		err := newMongoRepo(mt).SetPhone(ctx, "u-1", "5551234567")
		assert.ErrorIs(mt, err, ErrPhoneAlreadyExists)
	})

	mt.Run("set phone unknown user", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := newMongoRepo(mt).SetPhone(ctx, "missing", "5551234567")
		assert.ErrorIs(mt, err, ErrNoUserWasFound)
	})

	mt.Run("new repository creates indexes", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		repo, err := NewMongoUserRepository(ctx, mt.DB, logger.Nop())
		require.NoError(mt, err)
		assert.NotNil(mt, repo)
	})
}
