package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"bookreviews/pkg/book"
	"bookreviews/pkg/session"
)

const (
	muxVarISBN   string = "isbn"
	muxVarAuthor string = "author"
	muxVarTitle  string = "title"
	queryReview  string = "review"
)

type BookHandler struct {
	Service book.ServiceInterface
	Logger  *slog.Logger
}

func NewBookHandler(service book.ServiceInterface, logger *slog.Logger) *BookHandler {
	return &BookHandler{
		Service: service,
		Logger:  logger,
	}
}

// ListBooks pretty-prints the whole catalog.
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	resp, err := json.MarshalIndent(h.Service.ListAll(), "", "    ")
	if err != nil {
		h.Logger.Error("list books", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if _, err := w.Write(resp); err != nil {
		h.Logger.Error("Failed to write response to client", "error", err)
	}
}

func (h *BookHandler) GetBookByISBN(w http.ResponseWriter, r *http.Request) {
	isbn := mux.Vars(r)[muxVarISBN]

	found, err := h.Service.GetByISBN(isbn)
	if err != nil {
		writeMessage(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, h.Logger, found)
}

func (h *BookHandler) GetBooksByAuthor(w http.ResponseWriter, r *http.Request) {
	author := mux.Vars(r)[muxVarAuthor]

	matching, err := h.Service.GetByAuthor(author)
	if err != nil {
		writeMessage(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, h.Logger, matching)
}

func (h *BookHandler) GetBooksByTitle(w http.ResponseWriter, r *http.Request) {
	title := mux.Vars(r)[muxVarTitle]

	matching, err := h.Service.GetByTitle(title)
	if err != nil {
		writeMessage(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, h.Logger, matching)
}

func (h *BookHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	isbn := mux.Vars(r)[muxVarISBN]

	reviews, err := h.Service.Reviews(isbn)
	if err != nil {
		writeMessage(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, h.Logger, reviews)
}

func (h *BookHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	username, ok := usernameFromContext(w, r)
	if !ok {
		return
	}

	isbn := mux.Vars(r)[muxVarISBN]
	text := r.URL.Query().Get(queryReview)

	reviews, err := h.Service.AddReview(isbn, username, text)
	if err != nil {
		switch {
		case errors.Is(err, book.ErrReviewRequired):
			writeMessage(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, book.ErrBookNotFound):
			writeMessage(w, http.StatusNotFound, err.Error())
		default:
			h.Logger.Error("add review", "error", err)
			writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	if ok := writeJSON(w, h.Logger, map[string]any{
		"message": "Review added/modified successfully",
		"reviews": reviews,
	}); ok {
		h.Logger.Info("review upsert", "user", username, muxVarISBN, isbn)
	}
}

func (h *BookHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	username, ok := usernameFromContext(w, r)
	if !ok {
		return
	}

	isbn := mux.Vars(r)[muxVarISBN]

	reviews, err := h.Service.DeleteReview(isbn, username)
	if err != nil {
		writeMessage(w, http.StatusNotFound, err.Error())
		return
	}

	if ok := writeJSON(w, h.Logger, map[string]any{
		"message": "Review deleted successfully",
		"reviews": reviews,
	}); ok {
		h.Logger.Info("review delete", "user", username, muxVarISBN, isbn)
	}
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, data any) bool {
	resp, err := json.Marshal(data)
	if err != nil {
		logger.Error("Failed to serialize JSON response", "error", err)
		writeMessage(w, http.StatusInternalServerError, "failed json marshal")
		return false
	}

	w.Header().Set("Content-Type", "application/json")

	if _, err := w.Write(resp); err != nil {
		logger.Error("Failed to write response to client", "error", err)
		return false
	}
	return true
}

func usernameFromContext(w http.ResponseWriter, r *http.Request) (string, bool) {
	username, ok := r.Context().Value(session.UsernameContextKey).(string)
	if !ok || username == "" {
		writeMessage(w, http.StatusUnauthorized, "User not logged in")
		return "", false
	}
	return username, true
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": msg}); err != nil {
		return
	}
}
