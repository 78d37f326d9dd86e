package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"storeflow/pkg/otel"
)

type ctxKey int

const (
	userKey ctxKey = iota + 1
	sessionKey
)

// loginRequest represents login credentials.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginHandler resolves the account and creates a session.
// @Summary Login
// @Description Authenticates user and sets session cookie
// @Accept json
// @Produce json
// @Param creds body loginRequest true "Credentials"
// @Success 200
// @Router /login [post]
func loginHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "loginHandler")
	defer span.End()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
		http.Error(w, "invalid credentials", http.StatusBadRequest)
		return
	}
	u, err := users.GetByUsername(ctx, req.Username)
	if err != nil || u.Password != req.Password {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	sid := uuid.NewString()
	if err := redisClient.Set(ctx, "session:"+sid, u.ID, cfg.SessionTTL).Err(); err != nil {
		http.Error(w, "session error", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "session_id",
		Value:    sid,
		Path:     "/",
		Expires:  time.Now().Add(cfg.SessionTTL),
		HttpOnly: true,
	})
	w.WriteHeader(http.StatusOK)
}

// authMiddleware ensures a valid session exists and records the session
// and user IDs in the request context.
func authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("session_id")
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		userID, err := redisClient.Get(r.Context(), "session:"+c.Value).Result()
		if err != nil || userID == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), userKey, userID)
		ctx = context.WithValue(ctx, sessionKey, c.Value)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionUser(r *http.Request) string {
	v, _ := r.Context().Value(userKey).(string)
	return v
}

func sessionID(r *http.Request) string {
	v, _ := r.Context().Value(sessionKey).(string)
	return v
}
