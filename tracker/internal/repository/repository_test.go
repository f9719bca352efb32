package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Astemirdum/book-tracker/tracker/internal/errs"
	"github.com/Astemirdum/book-tracker/tracker/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMockRepo(t *testing.T) (*repository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewRepository(mock, zap.NewExample()), mock
}

var (
	testUserID    = uuid.MustParse("b7b56d39-a074-442d-8e4d-ae8e915278d8")
	testCreatedAt = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
)

func userRows() *pgxmock.Rows {
	lastLogin := testCreatedAt
	return pgxmock.NewRows(userColumns).
		AddRow(testUserID.String(), "reader", 1, 3, 20, 2, &lastLogin, false, int64(4))
}

func ownershipRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "user_id", "book_id", "title", "status",
		"review", "rating", "created_at", "updated_at"})
}

func TestRepository_SaveUser(t *testing.T) {
	t.Parallel()
	lastLogin := testCreatedAt
	u := model.User{ID: testUserID, BooksRead: 1, TotalBooks: 3, Points: 20, LoginStreak: 2, LastLoginDate: &lastLogin, Version: 4}
	const saveUserSQL = `UPDATE users SET books_read = \$1, total_books = \$2, points = \$3, login_streak = \$4, ` +
		`last_login_date = \$5, version = version \+ 1 WHERE id = \$6 AND version = \$7 returning version`

	var tests = []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
		version int64
	}{
		{
			name: "ok. version bumped",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(saveUserSQL).
					WithArgs(1, 3, 20, 2, pgxmock.AnyArg(), pgxmock.AnyArg(), int64(4)).
					WillReturnRows(pgxmock.NewRows([]string{"version"}).AddRow(int64(5)))
			},
			version: 5,
		},
		{
			name: "err. stale version",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(saveUserSQL).
					WithArgs(1, 3, 20, 2, pgxmock.AnyArg(), pgxmock.AnyArg(), int64(4)).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: errs.ErrConflict,
		},
		{
			name: "err. serialization failure",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(saveUserSQL).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
			},
			wantErr: errs.ErrConflict,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo, mock := newMockRepo(t)
			tt.setup(mock)

			got, err := repo.SaveUser(context.Background(), u)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.version, got.Version)
				require.Equal(t, 20, got.Points)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("for update locks the row", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`SELECT id, username, .* FROM users WHERE id = \$1 for update$`).
			WithArgs(testUserID).
			WillReturnRows(userRows())

		u, err := repo.GetUserForUpdate(ctx, testUserID)
		require.NoError(t, err)
		require.Equal(t, testUserID, u.ID)
		require.Equal(t, 20, u.Points)
		require.Equal(t, int64(4), u.Version)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("plain read takes no lock", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`FROM users WHERE id = \$1$`).
			WithArgs(testUserID).
			WillReturnRows(userRows())

		_, err := repo.GetUser(ctx, testUserID)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing user", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`FROM users`).
			WillReturnRows(pgxmock.NewRows(userColumns))

		_, err := repo.GetUserForUpdate(ctx, testUserID)
		require.ErrorIs(t, err, errs.ErrUserNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_CreateOwnership(t *testing.T) {
	t.Parallel()
	review := "Loved it"
	rating := 5

	var tests = []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "ok",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`insert into user_books`).
					WithArgs(testUserID, int64(42), model.StatusUnread).
					WillReturnRows(ownershipRows().
						AddRow(int64(7), testUserID.String(), int64(42), "Dune", model.StatusUnread, &review, &rating, testCreatedAt, testCreatedAt))
			},
		},
		{
			name: "err. already in library",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`insert into user_books`).
					WithArgs(testUserID, int64(42), model.StatusUnread).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
			},
			wantErr: errs.ErrAlreadyInLibrary,
		},
		{
			name: "err. unknown book",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`insert into user_books`).
					WithArgs(testUserID, int64(42), model.StatusUnread).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})
			},
			wantErr: errs.ErrBookNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo, mock := newMockRepo(t)
			tt.setup(mock)

			ub, err := repo.CreateOwnership(context.Background(), testUserID, 42)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				require.Equal(t, int64(7), ub.ID)
				require.Equal(t, "Dune", ub.Title)
				require.Equal(t, model.StatusUnread, ub.Status)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Ownership(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("get locks the record", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`FROM user_books ub JOIN books b on b.id = ub.book_id WHERE .* for update of ub$`).
			WillReturnRows(ownershipRows().
				AddRow(int64(7), testUserID.String(), int64(42), "Dune", model.StatusReading, (*string)(nil), (*int)(nil), testCreatedAt, testCreatedAt))

		ub, err := repo.GetOwnership(ctx, testUserID, 42)
		require.NoError(t, err)
		require.Equal(t, model.StatusReading, ub.Status)
		require.Nil(t, ub.Rating)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("get missing", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`FROM user_books`).WillReturnRows(ownershipRows())

		_, err := repo.GetOwnership(ctx, testUserID, 42)
		require.ErrorIs(t, err, errs.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("save missing", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)
		mock.ExpectExec(`UPDATE user_books SET status = \$1`).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.SaveOwnership(ctx, model.UserBook{ID: 7, UserID: testUserID, Status: model.StatusRead})
		require.ErrorIs(t, err, errs.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_RecordEarned(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)
	mock.ExpectExec(`INSERT INTO user_achievements \(user_id,achievement_id,earned_at\)`).
		WithArgs(testUserID, int64(1), testCreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO user_achievements`).
		WithArgs(testUserID, int64(1), testCreatedAt).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, Message: "duplicate key"})

	require.NoError(t, repo.RecordEarned(context.Background(), testUserID, 1, testCreatedAt))
	err := repo.RecordEarned(context.Background(), testUserID, 1, testCreatedAt)
	require.ErrorIs(t, err, errs.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListFeed(t *testing.T) {
	t.Parallel()
	const visible = `FROM feed_posts WHERE \(user_id = \$1 OR user_id in \(select following_id from followers where follower_id = \$2 and is_approved\)\)`
	postID := uuid.MustParse("0b1c7c62-6d0f-4a43-a4b9-4f1f52f0b3a1")
	feedRows := func() *pgxmock.Rows {
		return pgxmock.NewRows([]string{"id", "user_id", "content", "created_at"}).
			AddRow(postID.String(), testUserID.String(), "finished reading 'Dune' 📚", testCreatedAt)
	}

	t.Run("first page", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(visible + ` ORDER BY created_at desc, id desc LIMIT 11$`).
			WithArgs(testUserID, testUserID).
			WillReturnRows(feedRows())

		items, err := repo.ListFeed(context.Background(), testUserID, nil, 11)
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.Equal(t, postID, items[0].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("after cursor compares timestamp and id", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)
		cursor := model.FeedCursor{CreatedAt: testCreatedAt, ID: uuid.New()}
		mock.ExpectQuery(visible + ` AND \(created_at, id\) < \(\$3, \$4\) ORDER BY created_at desc, id desc LIMIT 11$`).
			WithArgs(testUserID, testUserID, cursor.CreatedAt, cursor.ID).
			WillReturnRows(feedRows())

		_, err := repo.ListFeed(context.Background(), testUserID, &cursor, 11)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Follows(t *testing.T) {
	t.Parallel()
	target := uuid.New()
	follow := model.Follow{FollowerID: testUserID, FollowingID: target, IsApproved: true, CreatedAt: testCreatedAt}

	var tests = []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		call    func(r *repository) error
		wantErr error
	}{
		{
			name: "create",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO followers`).
					WithArgs(testUserID, target, true, testCreatedAt).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			call: func(r *repository) error { return r.CreateFollow(context.Background(), follow) },
		},
		{
			name: "create duplicate",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO followers`).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
			},
			call:    func(r *repository) error { return r.CreateFollow(context.Background(), follow) },
			wantErr: errs.ErrAlreadyFollowing,
		},
		{
			name: "create unknown user",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO followers`).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})
			},
			call:    func(r *repository) error { return r.CreateFollow(context.Background(), follow) },
			wantErr: errs.ErrUserNotFound,
		},
		{
			name: "delete missing",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`DELETE FROM followers WHERE follower_id = \$1 AND following_id = \$2`).
					WithArgs(testUserID, target).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
			call:    func(r *repository) error { return r.DeleteFollow(context.Background(), testUserID, target) },
			wantErr: errs.ErrFollowNotFound,
		},
		{
			name: "approve only pending",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`UPDATE followers SET is_approved = \$1 WHERE follower_id = \$2 AND following_id = \$3 AND is_approved = \$4`).
					WithArgs(true, target, testUserID, false).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			call:    func(r *repository) error { return r.ApproveFollow(context.Background(), target, testUserID) },
			wantErr: errs.ErrFollowNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo, mock := newMockRepo(t)
			tt.setup(mock)

			err := tt.call(repo)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTxManager_RunInTx(t *testing.T) {
	t.Parallel()
	ub := model.UserBook{ID: 7, UserID: testUserID, Status: model.StatusRead}

	t.Run("commit", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE user_books`).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		err := NewTxManager(mock).RunInTx(context.Background(), func(ctx context.Context) error {
			return repo.SaveOwnership(ctx, ub)
		})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback on error", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE user_books`).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectRollback()
		boom := errors.New("evaluate failed")

		err := NewTxManager(mock).RunInTx(context.Background(), func(ctx context.Context) error {
			if err := repo.SaveOwnership(ctx, ub); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("commit conflict", func(t *testing.T) {
		t.Parallel()
		_, mock := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})

		err := NewTxManager(mock).RunInTx(context.Background(), func(context.Context) error { return nil })
		require.ErrorIs(t, err, errs.ErrConflict)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nested joins outer", func(t *testing.T) {
		t.Parallel()
		_, mock := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectCommit()
		tm := NewTxManager(mock)

		err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
			return tm.RunInTx(ctx, func(context.Context) error { return nil })
		})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
