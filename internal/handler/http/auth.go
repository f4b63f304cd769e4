package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shelfnotes/shelfnotes-server/internal/logger"
	"github.com/shelfnotes/shelfnotes-server/internal/service"
	"github.com/shelfnotes/shelfnotes-server/internal/store"
	"github.com/shelfnotes/shelfnotes-server/internal/utils"
	"github.com/shelfnotes/shelfnotes-server/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.ErrorResponse{Error: "username, email and password are required"}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserAlreadyExists):
			log.Err(err).Msg("username or email already registered")
			utils.WriteJSON(w, models.ErrorResponse{Error: msgDuplicateUser}, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSON(w, models.ErrorResponse{Error: msgInternalError}, http.StatusInternalServerError)
			return
		}
	}

	// registration doubles as login: the browser is authenticated right away
	if err := h.sessions.Establish(w, r, registeredUser.ID); err != nil {
		log.Err(err).Msg("session establishment failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInternalError}, http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", registeredUser.ID).Str("username", registeredUser.Username).Msg("user registered")
	utils.WriteJSON(w, models.AuthResponse{Success: true, Username: registeredUser.Username}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.ErrorResponse{Error: "username and password are required"}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Msg("no user was found")
			utils.WriteJSON(w, models.AuthResponse{Success: false, Error: msgUserNotFound}, http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("wrong password")
			utils.WriteJSON(w, models.AuthResponse{Success: false, Error: msgWrongPassword}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSON(w, models.ErrorResponse{Error: msgInternalError}, http.StatusInternalServerError)
			return
		}
	}

	if err := h.sessions.Establish(w, r, foundUser.ID); err != nil {
		log.Err(err).Msg("session establishment failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInternalError}, http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", foundUser.ID).Str("username", foundUser.Username).Msg("user successfully logged in")
	utils.WriteJSON(w, models.AuthResponse{Success: true, Username: foundUser.Username}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.sessions.Clear(w, r); err != nil {
		log.Err(err).Msg("session destruction failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInternalError}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{Success: true}, http.StatusOK)
}

// currentUser reports whether the caller holds an authenticated session.
// Anonymous callers get loggedIn=false, never an error.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.WriteJSON(w, models.CurrentUserResponse{LoggedIn: false}, http.StatusOK)
		return
	}

	utils.WriteJSON(w, models.CurrentUserResponse{LoggedIn: true, Username: user.Username}, http.StatusOK)
}
