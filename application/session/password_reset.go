package session

import (
	"context"
	stderrors "errors"
	"strconv"
	"time"

	"github.com/muhammadheryan/fashion-directory/constant"
	"github.com/muhammadheryan/fashion-directory/model"
	userrepo "github.com/muhammadheryan/fashion-directory/repository/user"
	"github.com/muhammadheryan/fashion-directory/thirdparty/mail"
	"github.com/muhammadheryan/fashion-directory/thirdparty/rabbitmq"
	"github.com/muhammadheryan/fashion-directory/utils/delay"
	"github.com/muhammadheryan/fashion-directory/utils/errors"
	"github.com/muhammadheryan/fashion-directory/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ForgotPassword issues a reset token for the account and mails the link.
// Unknown emails succeed silently.
func (s *sessionAppImpl) ForgotPassword(ctx context.Context, req *model.ForgotPasswordRequest) error {
	if err := delay.Wait(ctx, s.config.Auth.SimulatedLatency*2); err != nil {
		return errors.SetCustomError(constant.ErrCanceled)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[ForgotPassword] err userRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		logger.Info("[ForgotPassword] no account for requested email")
		return nil
	}

	token, claims, err := s.generateJWT(user.ID, resetAudience, s.config.Auth.ResetTokenExpiration)
	if err != nil {
		logger.Error("[ForgotPassword] err generateJWT", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	resetToken := &model.ResetToken{
		ID:        claims.ID,
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if err := s.resetRepo.Save(ctx, resetToken); err != nil {
		logger.Error("[ForgotPassword] err resetRepo.Save", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if s.mailer == nil {
		logger.Warn("[ForgotPassword] mail is not configured, reset link not delivered",
			zap.String("token_id", resetToken.ID))
	} else {
		body, err := mail.ResetBody(s.config.Mail.ResetURL, token, mail.ResetMailData{
			Name:      user.FirstName,
			ExpiresAt: resetToken.ExpiresAt.Format(time.RFC1123),
		})
		if err != nil {
			logger.Error("[ForgotPassword] err mail.ResetBody", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if err := s.mailer.Send(user.Email, mail.ResetSubject, body); err != nil {
			logger.Error("[ForgotPassword] err mailer.Send", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}

	// expiry is also enforced on read, the message only prunes early
	if s.publisher != nil {
		err := s.publisher.PublishResetExpiration(ctx, rabbitmq.ResetExpirationMessage{
			TokenID:   resetToken.ID,
			ExpiresAt: resetToken.ExpiresAt,
		})
		if err != nil {
			logger.Warn("[ForgotPassword] err publisher.PublishResetExpiration", zap.String("error", err.Error()))
		}
	}

	return nil
}

// ResetPassword replaces the password of the token's account and consumes
// the token.
func (s *sessionAppImpl) ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) error {
	if err := delay.Wait(ctx, s.config.Auth.SimulatedLatency*2); err != nil {
		return errors.SetCustomError(constant.ErrCanceled)
	}

	claims, err := s.parseJWT(req.Token, resetAudience)
	if err != nil {
		logger.Info("[ResetPassword] rejected token", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInvalidResetToken)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[ResetPassword] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	issued, err := s.resetRepo.Consume(ctx, claims.ID)
	if err != nil {
		logger.Error("[ResetPassword] err resetRepo.Consume", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if issued == nil || strconv.FormatUint(issued.UserID, 10) != claims.Subject {
		return errors.SetCustomError(constant.ErrInvalidResetToken)
	}

	s.registryMu.Lock()
	err = s.userRepo.UpdatePasswordHash(ctx, issued.UserID, string(hashedPassword))
	s.registryMu.Unlock()
	if stderrors.Is(err, userrepo.ErrUserNotFound) {
		return errors.SetCustomError(constant.ErrInvalidResetToken)
	}
	if err != nil {
		logger.Error("[ResetPassword] err userRepo.UpdatePasswordHash", zap.String("error", err.Error()))
		// the password did not change, so the link stays usable
		if err := s.resetRepo.Save(ctx, issued); err != nil {
			logger.Error("[ResetPassword] err resetRepo.Save", zap.String("error", err.Error()))
		}
		return errors.SetCustomError(constant.ErrInternal)
	}

	logger.Info("[ResetPassword] password updated", zap.Uint64("user_id", issued.UserID))
	return nil
}

func (s *sessionAppImpl) ExpireResetToken(ctx context.Context, tokenID string) error {
	if err := s.resetRepo.Delete(ctx, tokenID); err != nil {
		logger.Error("[ExpireResetToken] err resetRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
