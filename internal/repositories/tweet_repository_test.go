package repositories

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nanotweet/backend/internal/models"
)

func TestCreateTweet_InsertsRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresTweetRepository(db)

	mock.ExpectQuery(quote(`INSERT INTO "tweets"`)).
		WithArgs(uint(1), "hello world", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	tweet := &models.Tweet{UserID: 1, Content: "hello world"}
	require.NoError(t, repo.CreateTweet(tweet))
	assert.Equal(t, uint(7), tweet.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTweets_OrdersNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresTweetRepository(db)

	now := time.Now()
	mock.ExpectQuery(quote(`SELECT * FROM "tweets"`) + `.*` + quote(`ORDER BY created_at DESC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "content", "created_at"}).
			AddRow(3, 2, "newest", now).
			AddRow(1, 1, "oldest", now.Add(-time.Hour)))
	mock.ExpectQuery(quote(`SELECT * FROM "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
			AddRow(1, "alice").
			AddRow(2, "bob"))

	tweets, err := repo.GetTweets()
	require.NoError(t, err)
	require.Len(t, tweets, 2)
	assert.Equal(t, "newest", tweets[0].Content)
	assert.Equal(t, "bob", tweets[0].User.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTweetsByUserID_OrdersNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresTweetRepository(db)

	now := time.Now()
	mock.ExpectQuery(quote(`SELECT * FROM "tweets" WHERE user_id = $1 ORDER BY created_at DESC`)).
		WithArgs(uint(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "content", "created_at"}).
			AddRow(9, 2, "latest", now).
			AddRow(4, 2, "earlier", now.Add(-time.Hour)))

	tweets, err := repo.GetTweetsByUserID(2)
	require.NoError(t, err)
	require.Len(t, tweets, 2)
	assert.Equal(t, "latest", tweets[0].Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTweetByID_PreloadsAuthor(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresTweetRepository(db)

	mock.ExpectQuery(quote(`SELECT * FROM "tweets" WHERE "tweets"."id" = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "content", "created_at"}).
			AddRow(7, 2, "hi", time.Now()))
	mock.ExpectQuery(quote(`SELECT * FROM "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(2, "bob"))

	tweet, err := repo.GetTweetByID(7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), tweet.ID)
	assert.Equal(t, "bob", tweet.User.Username)
}

func TestGetTweetByID_MissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresTweetRepository(db)

	mock.ExpectQuery(quote(`SELECT * FROM "tweets" WHERE "tweets"."id" = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "content", "created_at"}))

	_, err := repo.GetTweetByID(99)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestDeleteTweet_DeletesByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresTweetRepository(db)

	mock.ExpectExec(quote(`DELETE FROM "tweets" WHERE "tweets"."id" = $1`)).
		WithArgs(uint(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteTweet(7))
	assert.NoError(t, mock.ExpectationsWereMet())
}
