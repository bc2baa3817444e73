package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/retailstack/store-api/internal/logger"
	"github.com/retailstack/store-api/internal/service"
	"github.com/retailstack/store-api/internal/store"
	"github.com/retailstack/store-api/internal/utils"
	"github.com/retailstack/store-api/models"
)

func (h *Handler) getAllOrders(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	orders, err := h.services.OrderService.GetAll(r.Context())
	if err != nil {
		log.Err(err).Msg("orders listing failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if orders == nil {
		orders = []models.Order{}
	}
	utils.WriteJSON(w, orders, http.StatusOK)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid order id")
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	order, err := h.services.OrderService.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrOrderNotFound):
			http.Error(w, "order not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", id).Msg("order lookup failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, order, http.StatusOK)
}

func (h *Handler) addOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var order models.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.OrderService.Add(r.Context(), order)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrIDAlreadyExists):
			log.Err(err).Msg("order id already exists")
			http.Error(w, "order id already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("order creation failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Location", fmt.Sprintf("/api/orders/%d", created.ID))
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid order id")
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var order models.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	order.ID = id

	if err := h.services.OrderService.Update(r.Context(), order); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrOrderNotFound):
			http.Error(w, "order not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", id).Msg("order update failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid order id")
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.services.OrderService.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, store.ErrOrderNotFound):
			http.Error(w, "order not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", id).Msg("order deletion failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
