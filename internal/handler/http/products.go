package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/retailstack/store-api/internal/logger"
	"github.com/retailstack/store-api/internal/service"
	"github.com/retailstack/store-api/internal/store"
	"github.com/retailstack/store-api/internal/utils"
	"github.com/retailstack/store-api/models"
)

// idFromRequest parses the {id} route parameter as a base-10 int64.
func idFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *Handler) getAllProducts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	products, err := h.services.ProductService.GetAll(r.Context())
	if err != nil {
		log.Err(err).Msg("products listing failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if products == nil {
		products = []models.Product{}
	}
	utils.WriteJSON(w, products, http.StatusOK)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid product id")
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	product, err := h.services.ProductService.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrProductNotFound):
			http.Error(w, "product not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", id).Msg("product lookup failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, product, http.StatusOK)
}

func (h *Handler) addProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.ProductService.Add(r.Context(), product)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrIDAlreadyExists):
			log.Err(err).Msg("product id already exists")
			http.Error(w, "product id already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("product creation failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Location", fmt.Sprintf("/api/products/%d", created.ID))
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid product id")
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	// the path parameter wins over any id in the body
	product.ID = id

	if err := h.services.ProductService.Update(r.Context(), product); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrProductNotFound):
			http.Error(w, "product not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", id).Msg("product update failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid product id")
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.services.ProductService.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, store.ErrProductNotFound):
			http.Error(w, "product not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", id).Msg("product deletion failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
