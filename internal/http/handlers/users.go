package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/kaiwenlow/simple-auth-be/internal/http/respond"
	"github.com/kaiwenlow/simple-auth-be/internal/models/dto"
	"github.com/kaiwenlow/simple-auth-be/internal/storage"
)

const (
	defaultSkip  = 0
	defaultLimit = 10
)

// UsersHandler serves the user listing and lookup endpoints.
type UsersHandler struct {
	store storage.UserStore
}

// NewUsersHandler constructs the handler.
func NewUsersHandler(store storage.UserStore) *UsersHandler {
	return &UsersHandler{store: store}
}

// Register attaches user routes to the mux.
func (h *UsersHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/users", h.handleList)
	mux.HandleFunc("/users/{username}", h.handleGet)
}

func (h *UsersHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	skip, fieldErr := queryInt(r, "skip", defaultSkip)
	if fieldErr != nil {
		respond.ValidationError(w, []respond.FieldError{*fieldErr})
		return
	}
	limit, fieldErr := queryInt(r, "limit", defaultLimit)
	if fieldErr != nil {
		respond.ValidationError(w, []respond.FieldError{*fieldErr})
		return
	}

	users, total, err := h.store.ListUsers(r.Context(), skip, limit)
	if err != nil {
		logrus.WithError(err).Error("list users failed")
		respond.Error(w, http.StatusInternalServerError, "failed to list users")
		return
	}

	summaries := dto.SummarizeUsers(users)
	respond.JSON(w, http.StatusOK, dto.UserListResponse{
		Total:   total,
		Showing: len(summaries),
		Users:   summaries,
	})
}

func (h *UsersHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	username := r.PathValue("username")
	user, err := h.store.FindByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "User not found")
			return
		}
		logrus.WithError(err).Error("get user failed")
		respond.Error(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}
	respond.JSON(w, http.StatusOK, user)
}

// queryInt parses a non-negative integer query parameter with a default.
func queryInt(r *http.Request, name string, def int) (int, *respond.FieldError) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, &respond.FieldError{Field: name, Error: "must be a non-negative integer"}
	}
	return value, nil
}
