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

func (h *Handler) getAllUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	users, err := h.services.UserService.GetAll(r.Context())
	if err != nil {
		log.Err(err).Msg("users listing failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if users == nil {
		users = []models.User{}
	}
	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid user id")
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			http.Error(w, "user not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", id).Msg("user lookup failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) addUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.UserService.Add(r.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Err(err).Msg("username already exists")
			http.Error(w, "username already exists", http.StatusConflict)
			return
		case errors.Is(err, store.ErrIDAlreadyExists):
			log.Err(err).Msg("user id already exists")
			http.Error(w, "user id already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("user creation failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Location", fmt.Sprintf("/api/users/%d", created.ID))
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid user id")
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	user.ID = id

	if err := h.services.UserService.Update(r.Context(), user); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserNotFound):
			http.Error(w, "user not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", id).Msg("user update failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid user id")
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.services.UserService.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			http.Error(w, "user not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", id).Msg("user deletion failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
