package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"path"
	"strconv"

	"github.com/Dan9191/thingful-users/internal/middleware"
	"github.com/Dan9191/thingful-users/internal/service"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const (
	msgUserNameTaken  = "Username already taken"
	msgUserNotFound   = "User doesn't exist"
	msgInvalidBody    = "Invalid request body"
	msgInternalServer = "Internal server error"
)

// maxRegisterBodyBytes caps the registration payload
const maxRegisterBodyBytes = 4 << 10

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

type registerRequest struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	NickName string `json:"nickname"`
}

// Register handles user registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxRegisterBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.WithError(err).Debug("failed to decode registration body")
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	user, err := h.svc.Register(r.Context(), service.RegisterInput{
		UserName: req.UserName,
		Password: req.Password,
		FullName: req.FullName,
		NickName: req.NickName,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.Header().Set("Location", path.Join(r.URL.Path, strconv.FormatInt(user.ID, 10)))
	writeJSON(w, http.StatusCreated, user)
}

// GetUser returns a registered user by id
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, msgUserNotFound)
		return
	}

	user, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeError(w, http.StatusBadRequest, vErr.Message)
	case errors.Is(err, service.ErrUserNameTaken):
		writeError(w, http.StatusBadRequest, msgUserNameTaken)
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusNotFound, msgUserNotFound)
	default:
		h.log.WithFields(logrus.Fields{
			"request_id": middleware.RequestIDFromContext(r.Context()),
			"path":       r.URL.Path,
		}).WithError(err).Error("request failed")
		writeError(w, http.StatusInternalServerError, msgInternalServer)
	}
}

func writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]string{"error": message})
}
