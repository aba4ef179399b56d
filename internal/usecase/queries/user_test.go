//go:build unit

package queries_test

import (
	"context"
	"testing"

	"society-booking/internal/infra"
	"society-booking/internal/pkg/errs"
	"society-booking/internal/usecase/queries"
	"society-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	view *queries.AuthorizedUserView
	err  error
}

func (f *fakeUserStore) FindByID(_ context.Context, _ uuid.UUID) (*queries.AuthorizedUserView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.view, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, _ string) (*queries.AuthorizedUserView, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	return f.view, "hashed_password", nil
}

func TestGetCurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the active user", func(t *testing.T) {
		view := builder.NewUserBuilder().BuildReadModel()
		q := queries.NewUserQueries(&fakeUserStore{view: view})

		got, err := q.GetCurrentUser(ctx, view.ID)

		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("missing user maps to ErrUserNotFound", func(t *testing.T) {
		q := queries.NewUserQueries(&fakeUserStore{
			err: infra.WrapRepoErr("user not found", nil, infra.KindNotFound),
		})

		_, err := q.GetCurrentUser(ctx, uuid.New())

		assert.ErrorIs(t, err, queries.ErrUserNotFound)
	})

	t.Run("inactive user maps to ErrUserInactive", func(t *testing.T) {
		view := builder.NewUserBuilder().AsInactive().BuildReadModel()
		q := queries.NewUserQueries(&fakeUserStore{view: view})

		_, err := q.GetCurrentUser(ctx, view.ID)

		assert.ErrorIs(t, err, queries.ErrUserInactive)
	})

	t.Run("other store errors pass through", func(t *testing.T) {
		storeErr := errs.New("connection refused")
		q := queries.NewUserQueries(&fakeUserStore{err: storeErr})

		_, err := q.GetCurrentUser(ctx, uuid.New())

		assert.ErrorIs(t, err, storeErr)
	})
}
