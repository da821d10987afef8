// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/chewsday/internal/logger"
	"github.com/MKhiriev/chewsday/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection           = "users"
	favoriteDishesField       = "favorite_dishes"
	favoriteRestaurantsField  = "favorite_restaurants"
	userDocumentPhoneField    = "phone"
	userDocumentEmailField    = "email"
	userDocumentUsernameField = "username"
)

// mongoUserRepository is the document implementation of [UserRepository].
// Each user is one document keyed by its id; favorites are arrays mutated
// only with $addToSet, which makes additions atomic and idempotent.
type mongoUserRepository struct {
	users  *mongo.Collection
	logger *logger.Logger
}

// NewMongoUserRepository constructs a [UserRepository] on the users
// collection of db and makes sure its unique indexes exist.
func NewMongoUserRepository(ctx context.Context, db *mongo.Database, logger *logger.Logger) (UserRepository, error) {
	logger.Debug().Str("backend", "mongodb").Msg("creating user repository")

	repo := &mongoUserRepository{
		users:  db.Collection(usersCollection),
		logger: logger,
	}
	if err := repo.ensureIndexes(ctx); err != nil {
		return nil, err
	}

	return repo, nil
}

func (r *mongoUserRepository) ensureIndexes(ctx context.Context) error {
	_, err := r.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: userDocumentUsernameField, Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: userDocumentEmailField, Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: userDocumentPhoneField, Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{userDocumentPhoneField: bson.M{"$type": "string"}}),
		},
	})
	if err != nil {
		return fmt.Errorf("error creating user indexes: %w", err)
	}

	return nil
}

func (r *mongoUserRepository) CreateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	if user.FavoriteDishes == nil {
		user.FavoriteDishes = []string{}
	}
	if user.FavoriteRestaurants == nil {
		user.FavoriteRestaurants = []string{}
	}

	if _, err := r.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrUserAlreadyExists
		}

		log.Err(err).Str("func", "*mongoUserRepository.CreateUser").Msg("error inserting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *mongoUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, bson.M{userDocumentEmailField: email})
}

func (r *mongoUserRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findUser(ctx, bson.M{"_id": userID})
}

func (r *mongoUserRepository) findUser(ctx context.Context, filter bson.M) (models.User, error) {
	log := logger.FromContext(ctx)

	opts := options.FindOne().SetProjection(bson.M{favoriteDishesField: 0, favoriteRestaurantsField: 0})

	var user models.User
	err := r.users.FindOne(ctx, filter, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.findUser").Msg("error decoding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

func (r *mongoUserRepository) AddFavoriteDish(ctx context.Context, userID, dishID string) error {
	return r.addFavorite(ctx, favoriteDishesField, userID, dishID)
}

func (r *mongoUserRepository) AddFavoriteRestaurant(ctx context.Context, userID, restaurantID string) error {
	return r.addFavorite(ctx, favoriteRestaurantsField, userID, restaurantID)
}

func (r *mongoUserRepository) addFavorite(ctx context.Context, field, userID, itemID string) error {
	log := logger.FromContext(ctx)

	result, err := r.users.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{field: itemID}},
	)
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.addFavorite").Str("field", field).Msg("error adding favorite")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if result.MatchedCount == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

func (r *mongoUserRepository) GetFavorites(ctx context.Context, userID string) (models.Favorites, error) {
	log := logger.FromContext(ctx)

	opts := options.FindOne().SetProjection(bson.M{favoriteDishesField: 1, favoriteRestaurantsField: 1})

	var user models.User
	err := r.users.FindOne(ctx, bson.M{"_id": userID}, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Favorites{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.GetFavorites").Msg("error decoding favorites")
		return models.Favorites{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	favorites := models.Favorites{Dishes: user.FavoriteDishes, Restaurants: user.FavoriteRestaurants}
	if favorites.Dishes == nil {
		favorites.Dishes = []string{}
	}
	if favorites.Restaurants == nil {
		favorites.Restaurants = []string{}
	}

	return favorites, nil
}

func (r *mongoUserRepository) SetPhone(ctx context.Context, userID, phone string) error {
	log := logger.FromContext(ctx)

	result, err := r.users.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{userDocumentPhoneField: phone}},
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrPhoneAlreadyExists
		}

		log.Err(err).Str("func", "*mongoUserRepository.SetPhone").Msg("error updating phone")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if result.MatchedCount == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
