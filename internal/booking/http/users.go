package http

import (
	"net/http"
	"strings"

	"github.com/castlinehq/castline/internal/booking/domain"
	"github.com/castlinehq/castline/internal/booking/service"
	"github.com/castlinehq/castline/pkg/httpx"
)

// UsersHandler serves the admin user CRUD under /v1/users.
type UsersHandler struct {
	Users *service.UserService
}

type createUserRequest struct {
	Email        string      `json:"email"`
	Telephone    string      `json:"telephone"`
	Password     string      `json:"password"`
	FullName     string      `json:"fullName"`
	MobileNumber string      `json:"mobileNumber"`
	Role         domain.Role `json:"role"`
}

// HandleCreate godoc
//
//	@Summary	Create a user
//	@Tags		Users
//	@Security	BearerAuth
//	@Success	201	{object}	domain.User
//	@Failure	400	{object}	errorResponse	"Email already taken"
//	@Router		/v1/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}
	if req.Password == "" || (req.Email == "" && req.Telephone == "") {
		writeBadRequest(w, "Email or telephone and password are required")
		return
	}
	if !req.Role.Valid() {
		writeBadRequest(w, "Invalid role")
		return
	}

	user, err := h.Users.Create(r.Context(), service.CreateUserInput{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Telephone:    strings.TrimSpace(req.Telephone),
		Password:     req.Password,
		FullName:     strings.TrimSpace(req.FullName),
		MobileNumber: strings.TrimSpace(req.MobileNumber),
		Role:         req.Role,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, user)
}

// HandleList godoc
//
//	@Summary	List users
//	@Tags		Users
//	@Security	BearerAuth
//	@Router		/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, total, err := h.Users.List(r.Context(), pageFromQuery(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, newListResponse(r, users, total))
}

// HandleGet godoc
//
//	@Summary	Get a user by id
//	@Tags		Users
//	@Security	BearerAuth
//	@Failure	404	{object}	errorResponse	"Not found"
//	@Router		/v1/users/{id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, err := h.Users.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, user)
}

type updateUserRequest struct {
	Email        *string      `json:"email,omitempty"`
	Telephone    *string      `json:"telephone,omitempty"`
	Password     *string      `json:"password,omitempty"`
	FullName     *string      `json:"fullName,omitempty"`
	MobileNumber *string      `json:"mobileNumber,omitempty"`
	Role         *domain.Role `json:"role,omitempty"`
}

// HandleUpdate godoc
//
//	@Summary	Update a user
//	@Tags		Users
//	@Security	BearerAuth
//	@Failure	400	{object}	errorResponse	"Email already taken"
//	@Router		/v1/users/{id} [patch].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}
	if req.Role != nil && !req.Role.Valid() {
		writeBadRequest(w, "Invalid role")
		return
	}
	if req.Password != nil && len(*req.Password) < 8 {
		writeBadRequest(w, "Password must be at least 8 characters")
		return
	}

	user, err := h.Users.Update(r.Context(), r.PathValue("id"), service.UpdateUserInput{
		Email:        req.Email,
		Telephone:    req.Telephone,
		Password:     req.Password,
		FullName:     req.FullName,
		MobileNumber: req.MobileNumber,
		Role:         req.Role,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, user)
}

// HandleDelete godoc
//
//	@Summary	Delete a user
//	@Tags		Users
//	@Security	BearerAuth
//	@Success	204
//	@Router		/v1/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Users.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
