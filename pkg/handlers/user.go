package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"bookreviews/pkg/session"
	"bookreviews/pkg/user"
)

type CredentialsForm struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UserHandler struct {
	Service  user.ServiceInterface
	Logger   *slog.Logger
	validate *validator.Validate
}

func NewUserHandler(service user.ServiceInterface, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		Service:  service,
		Logger:   logger,
		validate: validator.New(),
	}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Username and password are required.")
		return
	}

	if _, err := h.Service.Register(req.Username, req.Password); err != nil {
		if errors.Is(err, user.ErrUserExists) {
			writeMessage(w, http.StatusConflict, "User already exists.")
			return
		}
		h.Logger.Error("register", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeMessage(w, http.StatusCreated, "User successfully registered.")
	h.Logger.Info("register", "user", req.Username)
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Username and password are required to login.")
		return
	}

	result, err := h.Service.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			writeMessage(w, http.StatusUnauthorized, "Invalid username or password.")
			return
		}
		h.Logger.Error("login", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    result.SessionID,
		Path:     "/",
		HttpOnly: true,
	})

	if ok := writeJSON(w, h.Logger, map[string]any{
		"message": "User successfully logged in.",
		"token":   result.Token,
	}); ok {
		h.Logger.Info("login", "user", req.Username)
	}
}

func DecodeJSONBody(w http.ResponseWriter, r *http.Request, req any) bool {
	if r.Header.Get("Content-Type") != "application/json" {
		writeMessage(w, http.StatusBadRequest, "invalid Content-Type")
		return false
	}

	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeMessage(w, http.StatusBadRequest, "bad json")
		return false
	}

	return true
}
