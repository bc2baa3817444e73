package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/retailstack/store-api/internal/service"
	"github.com/retailstack/store-api/internal/store"
	"github.com/retailstack/store-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllOrders(t *testing.T) {
	h, ts := newTestHandler()
	date := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ts.orders.getAllFn = func(_ context.Context) ([]models.Order, error) {
		return []models.Order{
			{ID: 1, OrderDate: date, UserID: 1},
			{ID: 2, OrderDate: date, UserID: 2},
		}, nil
	}

	rec := doAuthed(h, http.MethodGet, "/api/orders", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	assert.Len(t, orders, 2)
}

func TestGetOrder_EmptyProductsSerializedAsList(t *testing.T) {
	h, ts := newTestHandler()
	date := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ts.orders.getByIDFn = func(_ context.Context, _ int64) (models.Order, error) {
		return models.Order{ID: 1, OrderDate: date, UserID: 1, Products: []models.Product{}}, nil
	}

	rec := doAuthed(h, http.MethodGet, "/api/orders/1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"id":1,"orderDate":"2025-06-01T12:00:00Z","userId":1,"products":[]}`,
		rec.Body.String())
}

func TestGetOrder_NotFound(t *testing.T) {
	h, ts := newTestHandler()
	ts.orders.getByIDFn = func(_ context.Context, _ int64) (models.Order, error) {
		return models.Order{}, store.ErrOrderNotFound
	}

	rec := doAuthed(h, http.MethodGet, "/api/orders/99", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddOrder_CreatedWithLocation(t *testing.T) {
	h, ts := newTestHandler()
	ts.orders.addFn = func(_ context.Context, order models.Order) (models.Order, error) {
		assert.Equal(t, int64(1), order.UserID)
		assert.Len(t, order.Products, 1)
		return order, nil
	}

	body := `{"id":3,"orderDate":"2025-06-01T12:00:00Z","userId":1,"products":[{"id":10,"name":"Widget","price":9.99}]}`
	rec := doAuthed(h, http.MethodPost, "/api/orders", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/orders/3", rec.Header().Get("Location"))
}

func TestAddOrder_ValidationFailure(t *testing.T) {
	h, ts := newTestHandler()
	ts.orders.addFn = func(_ context.Context, _ models.Order) (models.Order, error) {
		return models.Order{}, service.ErrInvalidDataProvided
	}

	rec := doAuthed(h, http.MethodPost, "/api/orders", `{"id":3}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateOrder_NotFound(t *testing.T) {
	h, ts := newTestHandler()
	ts.orders.updateFn = func(_ context.Context, _ models.Order) error {
		return store.ErrOrderNotFound
	}

	rec := doAuthed(h, http.MethodPut, "/api/orders/99", `{"orderDate":"2025-06-01T12:00:00Z","userId":1}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteOrder_NoContent(t *testing.T) {
	h, _ := newTestHandler()

	rec := doAuthed(h, http.MethodDelete, "/api/orders/1", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
