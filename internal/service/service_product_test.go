// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/retailstack/store-api/internal/logger"
	"github.com/retailstack/store-api/internal/store"
	"github.com/retailstack/store-api/internal/store/mocks"
	"github.com/retailstack/store-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errStorage = errors.New("storage error")

func newTestProductService(t *testing.T) (ProductService, *mocks.MockProductRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProductRepository(ctrl)
	return NewProductService(repo, logger.Nop()), repo
}

func TestProductService_GetAll_Success(t *testing.T) {
	svc, repo := newTestProductService(t)
	want := []models.Product{{ID: 1, Name: "Widget", Price: 9.99}}

	repo.EXPECT().GetAll(gomock.Any()).Return(want, nil)

	got, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProductService_GetAll_StorageError(t *testing.T) {
	svc, repo := newTestProductService(t)

	repo.EXPECT().GetAll(gomock.Any()).Return(nil, errStorage)

	_, err := svc.GetAll(context.Background())
	assert.ErrorIs(t, err, errStorage)
}

func TestProductService_GetByID_NotFound(t *testing.T) {
	svc, repo := newTestProductService(t)

	repo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(models.Product{}, store.ErrProductNotFound)

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, store.ErrProductNotFound)
}

func TestProductService_Add_Success(t *testing.T) {
	svc, repo := newTestProductService(t)
	product := models.Product{ID: 7, Name: "Widget", Price: 9.99}

	repo.EXPECT().Create(gomock.Any(), product).Return(product, nil)

	created, err := svc.Add(context.Background(), product)
	require.NoError(t, err)
	assert.Equal(t, product, created)
}

func TestProductService_Add_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		product models.Product
	}{
		{name: "empty name", product: models.Product{Price: 9.99}},
		{name: "negative price", product: models.Product{Name: "Widget", Price: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no repository expectations: validation fails before persistence
			svc, _ := newTestProductService(t)

			_, err := svc.Add(context.Background(), tt.product)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestProductService_Add_FreeProductIsValid(t *testing.T) {
	svc, repo := newTestProductService(t)
	product := models.Product{Name: "Sample", Price: 0}

	repo.EXPECT().Create(gomock.Any(), product).Return(models.Product{ID: 1, Name: "Sample"}, nil)

	created, err := svc.Add(context.Background(), product)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestProductService_Add_DuplicateID(t *testing.T) {
	svc, repo := newTestProductService(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Product{}, store.ErrIDAlreadyExists)

	_, err := svc.Add(context.Background(), models.Product{ID: 7, Name: "Widget", Price: 9.99})
	assert.ErrorIs(t, err, store.ErrIDAlreadyExists)
}

func TestProductService_Update_NotFound(t *testing.T) {
	svc, repo := newTestProductService(t)

	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(store.ErrProductNotFound)

	err := svc.Update(context.Background(), models.Product{ID: 99, Name: "Ghost", Price: 1})
	assert.ErrorIs(t, err, store.ErrProductNotFound)
}

func TestProductService_Update_Invalid(t *testing.T) {
	svc, _ := newTestProductService(t)

	err := svc.Update(context.Background(), models.Product{ID: 1, Name: "", Price: 1})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestProductService_Delete_Success(t *testing.T) {
	svc, repo := newTestProductService(t)

	repo.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), 1))
}

func TestProductService_Delete_NotFound(t *testing.T) {
	svc, repo := newTestProductService(t)

	repo.EXPECT().Delete(gomock.Any(), int64(99)).Return(store.ErrProductNotFound)

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, store.ErrProductNotFound)
}
