// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/chewsday/models"
	sq "github.com/Masterminds/squirrel"
)

const usersTable = "users"

var userColumns = []string{"id", "username", "email", "phone", "password_hash", "created_at"}

// favoriteSet names the table and item column of one favorites collection.
type favoriteSet struct {
	table  string
	column string
}

var (
	favoriteDishes      = favoriteSet{table: "favorite_dishes", column: "dish_id"}
	favoriteRestaurants = favoriteSet{table: "favorite_restaurants", column: "restaurant_id"}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("id", "username", "email", "password_hash", "created_at").
		Values(user.ID, user.Username, user.Email, user.PasswordHash, user.CreatedAt).
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, column, value string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		ToSql()
}

func buildUserExistsQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select("1").
		From(usersTable).
		Where(sq.Eq{"id": userID}).
		Limit(1).
		ToSql()
}

// buildInsertFavoriteQuery builds an add-if-absent insert. Rows come from
// selecting the user itself, so nothing is inserted for an unknown user, and
// the conflict clause turns a repeated identifier into a no-op. seq is the
// number of items the user already has, which keeps insertion order.
func buildInsertFavoriteQuery(b sq.StatementBuilderType, set favoriteSet, userID, itemID string) (string, []any, error) {
	source := sq.Select("id").
		Column(sq.Expr("CAST(? AS TEXT)", itemID)).
		Column(sq.Expr(fmt.Sprintf("(SELECT COUNT(*) FROM %s WHERE user_id = ?)", set.table), userID)).
		From(usersTable).
		Where(sq.Eq{"id": userID})

	return b.Insert(set.table).
		Columns("user_id", set.column, "seq").
		Select(source).
		Suffix(fmt.Sprintf("ON CONFLICT (user_id, %s) DO NOTHING", set.column)).
		ToSql()
}

func buildSelectFavoritesQuery(b sq.StatementBuilderType, set favoriteSet, userID string) (string, []any, error) {
	return b.Select(set.column).
		From(set.table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("seq", set.column).
		ToSql()
}

func buildUpdatePhoneQuery(b sq.StatementBuilderType, userID, phone string) (string, []any, error) {
	return b.Update(usersTable).
		Set("phone", phone).
		Where(sq.Eq{"id": userID}).
		ToSql()
}
