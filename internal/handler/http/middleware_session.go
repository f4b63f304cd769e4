// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shelfnotes Authors

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/shelfnotes/shelfnotes-server/internal/logger"
	"github.com/shelfnotes/shelfnotes-server/internal/store"
	"github.com/shelfnotes/shelfnotes-server/internal/utils"
	"github.com/shelfnotes/shelfnotes-server/models"
)

// withUser deserializes the caller's session, resolves the stored user id to
// a full user record, and — on success — stores the user in the request
// context under [utils.UserCtxKey].
//
// The middleware never rejects a request: anonymous callers and callers whose
// session points at a vanished account simply proceed without a context user.
// A session whose account no longer exists is cleared so the browser stops
// presenting a dead cookie. Enforcement is requireUser's job.
func (h *Handler) withUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		userID, ok := h.sessions.UserID(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.UserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, store.ErrNoUserWasFound) {
				log.Warn().Int64("user_id", userID).Msg("session references a vanished account, clearing session")
				if clearErr := h.sessions.Clear(w, r); clearErr != nil {
					log.Err(clearErr).Msg("session destruction failed")
				}
			} else {
				log.Err(err).Int64("user_id", userID).Msg("session user lookup failed")
			}
			next.ServeHTTP(w, r)
			return
		}

		ctx = context.WithValue(ctx, utils.UserCtxKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireUser rejects requests that carry no authenticated session user with
// HTTP 401 Unauthorized. It must be mounted after withUser.
func (h *Handler) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetUserFromContext(r.Context()); !ok {
			logger.FromRequest(r).Warn().Str("uri", r.RequestURI).Msg("unauthenticated request to protected route")
			utils.WriteJSON(w, models.ErrorResponse{Error: msgAuthRequired}, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
