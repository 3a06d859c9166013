// Package handlers exposes the HTTP surface: registration, login and the
// ownership-scoped task routes behind the auth middleware.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/hudsonrene96-debug/todo-list-backend/auth"
	"github.com/hudsonrene96-debug/todo-list-backend/entities"
	"github.com/hudsonrene96-debug/todo-list-backend/storage"
)

const storeTimeout = 5 * time.Second

// AuthHandler serves registration and login.
type AuthHandler struct {
	users  storage.UserRepository
	tokens *auth.TokenManager
}

func NewAuthHandler(users storage.UserRepository, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates an account, persisting only the password digest.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, KindValidation, "invalid request body")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, KindMissingField, "username and password are required")
		return
	}

	digest, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, KindInternal, "could not register user")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	user := entities.User{Username: req.Username, PasswordHash: digest}
	if err := h.users.Insert(ctx, &user); err != nil {
		if errors.Is(err, storage.ErrDuplicateUsername) {
			writeError(w, http.StatusBadRequest, KindUsernameTaken, "username already taken")
			return
		}
		log.Printf("register: insert user: %v", err)
		writeError(w, http.StatusInternalServerError, KindInternal, "could not register user")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "user registered"})
}

// Login verifies the credentials and issues a session token. The unknown
// username and wrong password paths share this one failure response so the
// two cases are byte identical on the wire.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, KindValidation, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	user, err := h.users.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		log.Printf("login: find user: %v", err)
		writeError(w, http.StatusInternalServerError, KindInternal, "could not log in")
		return
	}
	if err != nil || !auth.CheckPassword(req.Password, user.PasswordHash) {
		writeError(w, http.StatusBadRequest, KindInvalidCredentials, "invalid username or password")
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		log.Printf("login: issue token: %v", err)
		writeError(w, http.StatusInternalServerError, KindInternal, "could not log in")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"token":    token,
		"userId":   user.ID,
		"username": user.Username,
	})
}
