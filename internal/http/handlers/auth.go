package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/kaiwenlow/simple-auth-be/internal/auth"
	"github.com/kaiwenlow/simple-auth-be/internal/http/respond"
	"github.com/kaiwenlow/simple-auth-be/internal/models"
	"github.com/kaiwenlow/simple-auth-be/internal/models/dto"
	"github.com/kaiwenlow/simple-auth-be/internal/storage"
)

// AuthHandler owns the register and login endpoints.
type AuthHandler struct {
	store    storage.UserStore
	tokens   *auth.TokenManager
	validate *validator.Validate
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store storage.UserStore, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens, validate: newValidator()}
}

// Register attaches auth routes to the mux.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/register", h.handleRegister)
	mux.HandleFunc("/login", h.handleLogin)
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)
	req.FullName = strings.TrimSpace(req.FullName)
	if fields := checkStruct(h.validate, req); len(fields) > 0 {
		respond.ValidationError(w, fields)
		return
	}

	// The store's unique constraints are the real guarantee here; these
	// lookups exist to report which field conflicted.
	if _, err := h.store.FindByEmail(r.Context(), req.Email); err == nil {
		respond.Error(w, http.StatusConflict, "Email already registered")
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		logrus.WithError(err).Error("register: email lookup failed")
		respond.Error(w, http.StatusInternalServerError, "failed to create user")
		return
	}
	if _, err := h.store.FindByUsername(r.Context(), req.Username); err == nil {
		respond.Error(w, http.StatusConflict, "Username already taken")
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		logrus.WithError(err).Error("register: username lookup failed")
		respond.Error(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		logrus.WithError(err).Error("register: hash password failed")
		respond.Error(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	user := models.User{
		Email:        req.Email,
		Username:     req.Username,
		FullName:     req.FullName,
		PasswordHash: passwordHash,
	}
	created, err := h.store.CreateUser(r.Context(), user)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			// Lost the race between the pre-check and the insert.
			respond.Error(w, http.StatusConflict, "Email already registered")
			return
		}
		logrus.WithError(err).Error("register: create user failed")
		respond.Error(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	respond.JSON(w, http.StatusCreated, created)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if fields := checkStruct(h.validate, req); len(fields) > 0 {
		respond.ValidationError(w, fields)
		return
	}

	// Unknown username and wrong password produce the same response so the
	// error text cannot be used to enumerate accounts.
	user, err := h.store.FindByUsername(r.Context(), strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		logrus.WithError(err).Error("login: user lookup failed")
		respond.Error(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}
	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		respond.Error(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	if !user.IsActive {
		respond.Error(w, http.StatusForbidden, "Account is disabled")
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		logrus.WithError(err).Error("login: generate token failed")
		respond.Error(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	respond.JSON(w, http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Message:     fmt.Sprintf("Welcome back, %s!", user.Username),
	})
}
