package service

import (
	"context"
	"testing"

	"github.com/retailstack/store-api/internal/logger"
	"github.com/retailstack/store-api/internal/store"
	"github.com/retailstack/store-api/internal/store/mocks"
	"github.com/retailstack/store-api/internal/utils"
	"github.com/retailstack/store-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserService(t *testing.T) (UserService, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	return NewUserService(repo, logger.Nop()), repo
}

func TestUserService_Add_HashesPassword(t *testing.T) {
	svc, repo := newTestUserService(t)

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.Empty(t, user.Password, "plain text must not reach the repository")
			assert.True(t, utils.CheckPassword(user.PasswordHash, "secret"))
			user.ID = 1
			return user, nil
		})

	created, err := svc.Add(context.Background(), models.User{Username: "john", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Empty(t, created.Password)
	assert.Empty(t, created.PasswordHash)
}

func TestUserService_Add_Invalid(t *testing.T) {
	tests := []struct {
		name string
		user models.User
	}{
		{name: "empty username", user: models.User{Password: "secret"}},
		{name: "empty password", user: models.User{Username: "john"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestUserService(t)

			_, err := svc.Add(context.Background(), tt.user)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestUserService_Add_UsernameTaken(t *testing.T) {
	svc, repo := newTestUserService(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUsernameAlreadyExists)

	_, err := svc.Add(context.Background(), models.User{Username: "john", Password: "secret"})
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestUserService_GetAll_Sanitizes(t *testing.T) {
	svc, repo := newTestUserService(t)

	repo.EXPECT().GetAll(gomock.Any()).Return([]models.User{
		{ID: 1, Username: "john", PasswordHash: "$2a$10$hash"},
		{ID: 2, Username: "jane", PasswordHash: "$2a$10$hash2"},
	}, nil)

	users, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Empty(t, u.PasswordHash)
		assert.Empty(t, u.Password)
	}
}

func TestUserService_GetByID_SanitizesAndKeepsOrders(t *testing.T) {
	svc, repo := newTestUserService(t)

	repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(models.User{
		ID:           1,
		Username:     "john",
		PasswordHash: "$2a$10$hash",
		Orders:       []models.Order{{ID: 10, UserID: 1}},
	}, nil)

	user, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
	assert.Len(t, user.Orders, 1)
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	svc, repo := newTestUserService(t)

	repo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	svc, repo := newTestUserService(t)

	repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) error {
			assert.Empty(t, user.Password)
			assert.True(t, utils.CheckPassword(user.PasswordHash, "newsecret"))
			return nil
		})

	err := svc.Update(context.Background(), models.User{ID: 1, Username: "john", Password: "newsecret"})
	require.NoError(t, err)
}

func TestUserService_Update_Invalid(t *testing.T) {
	svc, _ := newTestUserService(t)

	err := svc.Update(context.Background(), models.User{ID: 1, Username: "john"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUserService_Delete_NotFound(t *testing.T) {
	svc, repo := newTestUserService(t)

	repo.EXPECT().Delete(gomock.Any(), int64(99)).Return(store.ErrUserNotFound)

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
