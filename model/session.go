package model

import (
	"time"

	"github.com/muhammadheryan/fashion-directory/constant"
)

// Session is a snapshot of the authentication state.
type Session struct {
	User            *SessionUser          `json:"user"`
	IsAuthenticated bool                  `json:"is_authenticated"`
	Loading         bool                  `json:"loading"`
	Error           string                `json:"error,omitempty"`
	State           constant.SessionState `json:"state"`
}

// ResetToken is a password reset token that has been issued and not yet
// used or expired.
type ResetToken struct {
	ID        string    `json:"id"`
	UserID    uint64    `json:"user_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MessageResponse carries a human readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}
