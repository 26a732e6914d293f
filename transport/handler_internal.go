package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/fashion-directory/model"
)

// ExpireResetToken handler
// @Summary Expire a password reset token
// @Tags Internal
// @Produce json
// @Security InternalAPIKey
// @Param id path string true "Reset token ID"
// @Success 200 {object} Response{data=model.MessageResponse}
// @Failure 401 {object} Response
// @Router /internal/v1/password-reset/{id}/expire [post]
func (s *RestHandler) ExpireResetToken(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := s.SessionApp.ExpireResetToken(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.MessageResponse{Message: "reset token expired"})
}
