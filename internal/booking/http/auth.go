package http

import (
	"net/http"
	"strings"

	"github.com/castlinehq/castline/internal/booking/domain"
	"github.com/castlinehq/castline/internal/booking/service"
	"github.com/castlinehq/castline/pkg/httpx"
)

// AuthHandler serves the /v1/auth routes.
type AuthHandler struct {
	Auth     *service.AuthService
	Agencies *service.AgencyService
	Managers *service.ManagerService
	Talents  *service.TalentService
}

type registerRequest struct {
	Email        string `json:"email"`
	Telephone    string `json:"telephone"`
	Password     string `json:"password"`
	FullName     string `json:"fullName"`
	MobileNumber string `json:"mobileNumber"`

	// Agency / manager profile fields.
	AgencyName string `json:"agencyName,omitempty"`
	RegNumber  string `json:"regNumber,omitempty"`
	Industry   string `json:"industry,omitempty"`
	Address    string `json:"address,omitempty"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country,omitempty"`

	// Talent profile fields.
	StageName string `json:"stageName,omitempty"`
	Category  string `json:"category,omitempty"`
	Bio       string `json:"bio,omitempty"`
	FeeRange  string `json:"feeRange,omitempty"`
}

type authResponse struct {
	User   domain.User       `json:"user"`
	Tokens *domain.TokenPair `json:"tokens"`
}

// HandleRegisterAgency godoc
//
//	@Summary	Register an agency account
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		registerRequest	true	"Account and agency profile"
//	@Success	201		{object}	authResponse
//	@Failure	400		{object}	errorResponse
//	@Router		/v1/auth/register-as-agency [post].
func (h *AuthHandler) HandleRegisterAgency(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, domain.RoleAgency)
}

// HandleRegisterManager godoc
//
//	@Summary	Register a manager account
//	@Tags		Auth
//	@Router		/v1/auth/register-as-manager [post].
func (h *AuthHandler) HandleRegisterManager(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, domain.RoleManager)
}

// HandleRegisterTalent godoc
//
//	@Summary	Register a talent account
//	@Tags		Auth
//	@Router		/v1/auth/register-as-talent [post].
func (h *AuthHandler) HandleRegisterTalent(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, domain.RoleTalent)
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request, role domain.Role) {
	ctx := r.Context()

	var req registerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}
	if req.Password == "" || (req.Email == "" && req.Telephone == "") {
		writeBadRequest(w, "Email or telephone and password are required")
		return
	}
	if len(req.Password) < 8 {
		writeBadRequest(w, "Password must be at least 8 characters")
		return
	}

	user, pair, err := h.Auth.Register(ctx, service.RegisterInput{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Telephone:    strings.TrimSpace(req.Telephone),
		Password:     req.Password,
		FullName:     strings.TrimSpace(req.FullName),
		MobileNumber: strings.TrimSpace(req.MobileNumber),
		Role:         role,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	// Role-specific profile record. Creation failures surface as 500; the
	// account itself already exists at this point.
	switch role {
	case domain.RoleAgency:
		_, err = h.Agencies.Create(ctx, domain.Agency{
			UserID: user.ID, AgencyName: req.AgencyName, RegNumber: req.RegNumber,
			Industry: req.Industry, Address: req.Address, State: req.State, Country: req.Country,
		})
	case domain.RoleManager:
		_, err = h.Managers.Create(ctx, domain.Manager{
			UserID: user.ID, AgencyName: req.AgencyName, RegNumber: req.RegNumber,
			Industry: req.Industry, Address: req.Address, State: req.State, Country: req.Country,
		})
	case domain.RoleTalent:
		_, err = h.Talents.Create(ctx, domain.Talent{
			UserID: user.ID, StageName: req.StageName, Category: req.Category,
			Bio: req.Bio, FeeRange: req.FeeRange,
		})
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, authResponse{User: user, Tokens: pair})
}

type loginRequest struct {
	Email     string `json:"email,omitempty"`
	Telephone string `json:"telephone,omitempty"`
	Password  string `json:"password"`
}

// HandleLogin godoc
//
//	@Summary	Login with email and password
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		loginRequest	true	"Credentials"
//	@Success	200		{object}	authResponse
//	@Failure	401		{object}	errorResponse	"Incorrect email or password"
//	@Router		/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	user, pair, err := h.Auth.LoginWithEmail(r.Context(),
		strings.ToLower(strings.TrimSpace(req.Email)), req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, authResponse{User: user, Tokens: pair})
}

// HandleLoginWithPhone godoc
//
//	@Summary	Login with telephone and password
//	@Tags		Auth
//	@Failure	401	{object}	errorResponse	"Incorrect telephone or password"
//	@Router		/v1/auth/login-with-phone [post].
func (h *AuthHandler) HandleLoginWithPhone(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	user, pair, err := h.Auth.LoginWithPhone(r.Context(),
		strings.TrimSpace(req.Telephone), req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, authResponse{User: user, Tokens: pair})
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// HandleLogout godoc
//
//	@Summary	Revoke a refresh session
//	@Tags		Auth
//	@Success	204
//	@Failure	404	{object}	errorResponse	"Not found"
//	@Router		/v1/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.RefreshToken == "" {
		writeBadRequest(w, "Refresh token is required")
		return
	}

	if err := h.Auth.Logout(r.Context(), req.RefreshToken); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleRefreshTokens godoc
//
//	@Summary	Rotate a refresh token for a new pair
//	@Tags		Auth
//	@Success	200	{object}	domain.TokenPair
//	@Failure	401	{object}	errorResponse	"Please authenticate"
//	@Router		/v1/auth/refresh-tokens [post].
func (h *AuthHandler) HandleRefreshTokens(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.RefreshToken == "" {
		writeBadRequest(w, "Refresh token is required")
		return
	}

	pair, err := h.Auth.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, pair)
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// HandleForgotPassword godoc
//
//	@Summary	Request a password reset email
//	@Tags		Auth
//	@Success	204
//	@Failure	404	{object}	errorResponse	"Not found"
//	@Router		/v1/auth/forgot-password [post].
func (h *AuthHandler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.Email == "" {
		writeBadRequest(w, "Email is required")
		return
	}

	if err := h.Auth.ForgotPassword(r.Context(),
		strings.ToLower(strings.TrimSpace(req.Email))); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type resetPasswordRequest struct {
	Password string `json:"password"`
}

// HandleResetPassword godoc
//
//	@Summary	Redeem a reset token and set a new password
//	@Tags		Auth
//	@Param		token	query	string	true	"Reset token"
//	@Success	204
//	@Failure	401	{object}	errorResponse	"Password reset failed"
//	@Router		/v1/auth/reset-password [post].
func (h *AuthHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")

	var req resetPasswordRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || token == "" || req.Password == "" {
		writeBadRequest(w, "Token and password are required")
		return
	}
	if len(req.Password) < 8 {
		writeBadRequest(w, "Password must be at least 8 characters")
		return
	}

	if err := h.Auth.ResetPassword(r.Context(), token, req.Password); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleSendVerificationEmail godoc
//
//	@Summary	Send a verification email to the authenticated account
//	@Tags		Auth
//	@Security	BearerAuth
//	@Success	204
//	@Router		/v1/auth/send-verification-email [post].
func (h *AuthHandler) HandleSendVerificationEmail(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())
	if err := h.Auth.SendVerificationEmail(r.Context(), userID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleVerifyEmail godoc
//
//	@Summary	Redeem an email verification token
//	@Tags		Auth
//	@Param		token	query	string	true	"Verification token"
//	@Success	204
//	@Failure	401	{object}	errorResponse	"Email verification failed"
//	@Router		/v1/auth/verify-email [post].
func (h *AuthHandler) HandleVerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		writeBadRequest(w, "Token is required")
		return
	}

	if err := h.Auth.VerifyEmail(r.Context(), token); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type createOTPRequest struct {
	Telephone string `json:"telephone"`
}

type createOTPResponse struct {
	Capsule   string `json:"capsule"`
	ExpiresAt int64  `json:"expires"`
}

// HandleCreateOTP godoc
//
//	@Summary	Create an OTP challenge for a telephone number
//	@Tags		Auth
//	@Success	200	{object}	createOTPResponse	"Capsule; the code travels by SMS"
//	@Router		/v1/auth/create-otp [post].
func (h *AuthHandler) HandleCreateOTP(w http.ResponseWriter, r *http.Request) {
	var req createOTPRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.Telephone == "" {
		writeBadRequest(w, "Telephone is required")
		return
	}

	challenge, err := h.Auth.CreateOTP(r.Context(), strings.TrimSpace(req.Telephone))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, createOTPResponse{
		Capsule:   challenge.Capsule,
		ExpiresAt: challenge.ExpiresAt.UnixMilli(),
	})
}

type verifyOTPRequest struct {
	Telephone string `json:"telephone"`
	OTP       string `json:"otp"`
	Capsule   string `json:"capsule"`
}

// HandleVerifyOTP godoc
//
//	@Summary	Verify an OTP challenge
//	@Tags		Auth
//	@Success	204
//	@Failure	400	{object}	errorResponse	"Invalid OTP / OTP expired"
//	@Router		/v1/auth/verify-otp [post].
func (h *AuthHandler) HandleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req verifyOTPRequest
	if err := httpx.DecodeJSON(r, &req); err != nil ||
		req.Telephone == "" || req.OTP == "" || req.Capsule == "" {
		writeBadRequest(w, "Telephone, otp, and capsule are required")
		return
	}

	if err := h.Auth.VerifyOTP(r.Context(),
		strings.TrimSpace(req.Telephone), req.OTP, req.Capsule); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
