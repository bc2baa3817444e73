package service

import (
	"context"
	"testing"
	"time"

	"github.com/retailstack/store-api/internal/logger"
	"github.com/retailstack/store-api/internal/store"
	"github.com/retailstack/store-api/internal/store/mocks"
	"github.com/retailstack/store-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestOrderService(t *testing.T) (OrderService, *mocks.MockOrderRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOrderRepository(ctrl)
	return NewOrderService(repo, logger.Nop()), repo
}

func TestOrderService_Add_Success(t *testing.T) {
	svc, repo := newTestOrderService(t)
	order := models.Order{
		ID:        1,
		OrderDate: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		UserID:    1,
		Products:  []models.Product{{ID: 10}},
	}

	repo.EXPECT().Create(gomock.Any(), order).Return(order, nil)

	created, err := svc.Add(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, order, created)
}

func TestOrderService_Add_Invalid(t *testing.T) {
	date := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		order models.Order
	}{
		{name: "missing user", order: models.Order{OrderDate: date}},
		{name: "negative user", order: models.Order{OrderDate: date, UserID: -1}},
		{name: "zero order date", order: models.Order{UserID: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestOrderService(t)

			_, err := svc.Add(context.Background(), tt.order)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestOrderService_GetByID_NotFound(t *testing.T) {
	svc, repo := newTestOrderService(t)

	repo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(models.Order{}, store.ErrOrderNotFound)

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, store.ErrOrderNotFound)
}

func TestOrderService_GetAll_Success(t *testing.T) {
	svc, repo := newTestOrderService(t)
	want := []models.Order{
		{ID: 1, UserID: 1, Products: []models.Product{{ID: 10, Name: "Widget"}}},
		{ID: 2, UserID: 2},
	}

	repo.EXPECT().GetAll(gomock.Any()).Return(want, nil)

	got, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestOrderService_Update_NotFound(t *testing.T) {
	svc, repo := newTestOrderService(t)
	order := models.Order{ID: 99, OrderDate: time.Now(), UserID: 1}

	repo.EXPECT().Update(gomock.Any(), order).Return(store.ErrOrderNotFound)

	err := svc.Update(context.Background(), order)
	assert.ErrorIs(t, err, store.ErrOrderNotFound)
}

func TestOrderService_Delete_NotFound(t *testing.T) {
	svc, repo := newTestOrderService(t)

	repo.EXPECT().Delete(gomock.Any(), int64(99)).Return(store.ErrOrderNotFound)

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, store.ErrOrderNotFound)
}
