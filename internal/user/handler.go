package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/fkhayef/shopped/pkg/response"
)

// Response messages
const (
	MsgInvalidBody   = "Invalid request body"
	MsgUserExists    = "The user you tried to create already exists"
	MsgUserCreated   = "User was created successfully"
	MsgCreateFailed  = "Failed to create user"
	MsgUserNotFound  = "User not found"
	MsgLoginAccepted = "Welcome to shopped"
)

// Handler handles HTTP requests for user operations
type Handler struct {
	service *Service
	log     *zap.Logger
}

// NewHandler creates a new user handler with service dependency injected
func NewHandler(service *Service, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{service: service, log: log}
}

// Routes returns the router for user endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)

	return r
}

// Register handles POST /users/register
// @Summary      Register a new user
// @Description  Create a new user with name, email and an optional avatar
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body CreateUserRequest true "User registration request"
// @Success      201 {object} response.ServerResponse[UserResponse]
// @Failure      400 {object} response.ServerResponse[response.Empty]
// @Failure      409 {object} response.ServerResponse[response.Empty]
// @Failure      500 {object} response.ServerResponse[response.Empty]
// @Router       /users/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, MsgInvalidBody)
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		var vErr *ValidationError
		switch {
		case errors.As(err, &vErr):
			response.BadRequest(w, vErr.Message)
		case errors.Is(err, ErrEmailAlreadyInUse):
			response.Conflict(w, MsgUserExists)
		default:
			h.log.Error("register user",
				zap.Error(err),
				zap.String("request_id", chimw.GetReqID(r.Context())),
			)
			response.InternalError(w, MsgCreateFailed)
		}
		return
	}

	response.Success(w, http.StatusCreated, MsgUserCreated, user.ToResponse())
}

// Login handles POST /users/login
// @Summary      Log in
// @Description  Accept a login for an existing email. No credential is verified.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body LoginUserRequest true "User login request"
// @Success      202 {object} response.ServerResponse[response.Empty]
// @Failure      400 {object} response.ServerResponse[response.Empty]
// @Failure      404 {object} response.ServerResponse[response.Empty]
// @Router       /users/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, MsgInvalidBody)
		return
	}

	if _, err := h.service.Login(r.Context(), &req); err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			response.BadRequest(w, vErr.Message)
			return
		}

		// Every lookup failure reads as not found to the client
		if !errors.Is(err, ErrUserNotFound) {
			h.log.Error("login lookup",
				zap.Error(err),
				zap.String("request_id", chimw.GetReqID(r.Context())),
			)
		}
		response.NotFound(w, MsgUserNotFound)
		return
	}

	response.Accepted(w, MsgLoginAccepted)
}
