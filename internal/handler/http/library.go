package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/shelfnotes/shelfnotes-server/internal/logger"
	"github.com/shelfnotes/shelfnotes-server/internal/service"
	"github.com/shelfnotes/shelfnotes-server/internal/store"
	"github.com/shelfnotes/shelfnotes-server/internal/utils"
	"github.com/shelfnotes/shelfnotes-server/models"
)

// listReviews serves GET /posts: one page of the public review feed, joined
// with reviewer and book. The page query parameter defaults to 1; garbage
// values also fall back to 1.
func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	page := pageParam(r)

	reviews, err := h.services.LibraryService.ListReviews(ctx, page)
	if err != nil {
		log.Err(err).Int("page", page).Msg("unexpected error occurred during review listing")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInternalError}, http.StatusInternalServerError)
		return
	}

	if reviews == nil {
		reviews = []models.Review{}
	}
	utils.WriteJSON(w, models.ReviewsResponse{Reviews: reviews}, http.StatusOK)
}

// listNotes serves GET /notes: one page of one user's notes on one book.
// Both book_id and user_id are required query parameters.
func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	bookID, _ := strconv.ParseInt(r.URL.Query().Get("book_id"), 10, 64)
	userID, _ := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)

	notes, err := h.services.LibraryService.ListNotes(ctx, models.NotesFilter{
		BookID: bookID,
		UserID: userID,
		Page:   pageParam(r),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid notes filter provided")
			utils.WriteJSON(w, models.ErrorResponse{Error: "book_id and user_id are required"}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during note listing")
			utils.WriteJSON(w, models.ErrorResponse{Error: msgInternalError}, http.StatusInternalServerError)
			return
		}
	}

	if notes == nil {
		notes = []models.Note{}
	}
	utils.WriteJSON(w, models.NotesResponse{Notes: notes}, http.StatusOK)
}

// addContribution serves POST /add/: upserts the book by title and creates
// the review and/or note carried in the body on behalf of the session user.
func (h *Handler) addContribution(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		// requireUser guards this route; reaching here without a user is a
		// wiring bug, not a client error
		log.Error().Msg("no session user in context on protected route")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgAuthRequired}, http.StatusUnauthorized)
		return
	}

	var contribution models.Contribution
	if err := json.NewDecoder(r.Body).Decode(&contribution); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidJSON}, http.StatusBadRequest)
		return
	}
	contribution.UserID = user.ID

	if err := h.services.LibraryService.AddContribution(ctx, contribution); err != nil {
		switch {
		case errors.Is(err, service.ErrNothingToAdd):
			log.Err(err).Msg("contribution carries neither review nor note")
			utils.WriteJSON(w, models.ErrorResponse{Error: msgNothingToAdd}, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid contribution provided")
			utils.WriteJSON(w, models.ErrorResponse{Error: "title is required"}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrReferencedRowMissing):
			log.Err(err).Msg("contribution references a missing row")
			utils.WriteJSON(w, models.ErrorResponse{Error: msgInternalError}, http.StatusInternalServerError)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during contribution")
			utils.WriteJSON(w, models.ErrorResponse{Error: msgInternalError}, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("user_id", user.ID).Str("title", contribution.Title).Msg("contribution created")

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusCreated)
	w.Write([]byte(msgCreated))
}

// pageParam reads the 1-based "page" query parameter, defaulting to 1 when
// absent or unparsable.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
