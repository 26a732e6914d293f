package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/fashion-directory/constant"
	"github.com/muhammadheryan/fashion-directory/model"
	"github.com/muhammadheryan/fashion-directory/utils/errors"
	validatorx "github.com/muhammadheryan/fashion-directory/utils/validator"
)

// Register handler
// @Summary Register user
// @Description Register a new account and start a session for it
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} Response{data=model.AuthResponse}
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.SessionApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email and password and receive a JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} Response{data=model.AuthResponse}
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.SessionApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=model.Session}
// @Failure 401 {object} Response
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := s.SessionApp.Logout(r.Context()); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, s.SessionApp.Snapshot())
}

// GetSession handler
// @Summary Current session
// @Tags Auth
// @Produce json
// @Success 200 {object} Response{data=model.Session}
// @Router /session [get]
func (s *RestHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.SessionApp.Snapshot())
}

// ClearSessionError handler
// @Summary Clear the last session error
// @Tags Auth
// @Produce json
// @Success 200 {object} Response{data=model.Session}
// @Router /session/error [delete]
func (s *RestHandler) ClearSessionError(w http.ResponseWriter, r *http.Request) {
	s.SessionApp.ClearError()
	writeSuccess(w, s.SessionApp.Snapshot())
}

// ForgotPassword handler
// @Summary Request a password reset link
// @Description Always succeeds for a well formed email, registered or not
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.ForgotPasswordRequest true "Forgot Password Request"
// @Success 200 {object} Response{data=model.MessageResponse}
// @Failure 400 {object} Response
// @Router /forgot-password [post]
func (s *RestHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.SessionApp.ForgotPassword(ctx, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.MessageResponse{Message: "If the email is registered, a reset link has been sent."})
}

// ResetPassword handler
// @Summary Reset password
// @Description The token may be given as query parameter or in the body
// @Tags Auth
// @Accept json
// @Produce json
// @Param token query string false "Reset token"
// @Param request body model.ResetPasswordRequest true "Reset Password Request"
// @Success 200 {object} Response{data=model.MessageResponse}
// @Failure 400 {object} Response
// @Router /reset-password [post]
func (s *RestHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if token := r.URL.Query().Get("token"); token != "" {
		req.Token = token
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.SessionApp.ResetPassword(ctx, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.MessageResponse{Message: "Password has been reset."})
}
