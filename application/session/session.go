package session

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/muhammadheryan/fashion-directory/cmd/config"
	"github.com/muhammadheryan/fashion-directory/constant"
	"github.com/muhammadheryan/fashion-directory/model"
	resettokenrepo "github.com/muhammadheryan/fashion-directory/repository/resettoken"
	sessionrepo "github.com/muhammadheryan/fashion-directory/repository/session"
	"github.com/muhammadheryan/fashion-directory/repository/storage"
	userrepo "github.com/muhammadheryan/fashion-directory/repository/user"
	"github.com/muhammadheryan/fashion-directory/thirdparty/mail"
	"github.com/muhammadheryan/fashion-directory/thirdparty/rabbitmq"
	"github.com/muhammadheryan/fashion-directory/utils/delay"
	"github.com/muhammadheryan/fashion-directory/utils/errors"
	"github.com/muhammadheryan/fashion-directory/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SessionApp owns the authentication state of the profile.
type SessionApp interface {
	Initialize(ctx context.Context) error
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	Logout(ctx context.Context) error
	ClearError()
	Snapshot() model.Session
	ValidateToken(ctx context.Context, tokenString string) (uint64, error)
	ForgotPassword(ctx context.Context, req *model.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) error
	ExpireResetToken(ctx context.Context, tokenID string) error
}

type sessionAppImpl struct {
	config      *config.Config
	userRepo    userrepo.UserRepository
	sessionRepo sessionrepo.SessionRepository
	resetRepo   resettokenrepo.ResetTokenRepository
	mailer      mail.Sender
	publisher   rabbitmq.ResetExpirationPublisher

	mu    sync.RWMutex
	state model.Session

	// serializes registry read-modify-write
	registryMu sync.Mutex
}

// NewSessionApp builds the store. mailer and publisher may be nil.
func NewSessionApp(
	config *config.Config,
	userRepo userrepo.UserRepository,
	sessionRepo sessionrepo.SessionRepository,
	resetRepo resettokenrepo.ResetTokenRepository,
	mailer mail.Sender,
	publisher rabbitmq.ResetExpirationPublisher,
) SessionApp {
	return &sessionAppImpl{
		config:      config,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		resetRepo:   resetRepo,
		mailer:      mailer,
		publisher:   publisher,
		state:       model.Session{State: constant.SessionUninitialized},
	}
}

func (s *sessionAppImpl) Initialize(ctx context.Context) error {
	s.mu.Lock()
	s.state = model.Session{State: constant.SessionLoading, Loading: true}
	s.mu.Unlock()

	user, err := s.sessionRepo.Get(ctx)
	if err != nil {
		if !stderrors.Is(err, storage.ErrMalformedState) {
			s.settle(nil, "")
			return fmt.Errorf("load session: %w", err)
		}
		logger.Warn("[Initialize] discarding unreadable session", zap.String("error", err.Error()))
		if err := s.sessionRepo.Clear(ctx); err != nil {
			s.settle(nil, "")
			return fmt.Errorf("clear session: %w", err)
		}
		user = nil
	}

	if user != nil {
		s.settle(user, "")
		logger.Info("[Initialize] session restored", zap.Uint64("user_id", user.ID))
		return nil
	}

	if s.config.Auth.SeedDemoUser {
		if err := s.seedDemoUser(ctx); err != nil {
			s.settle(nil, "")
			return fmt.Errorf("seed demo user: %w", err)
		}
	}

	s.settle(nil, "")
	return nil
}

func (s *sessionAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	prev := s.begin()
	if err := delay.Wait(ctx, s.config.Auth.SimulatedLatency); err != nil {
		s.abandon(prev)
		return nil, errors.SetCustomError(constant.ErrCanceled)
	}

	s.registryMu.Lock()
	defer s.registryMu.Unlock()

	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, s.fail(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, s.fail(constant.ErrDuplicateEmail)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, s.fail(constant.ErrInternal)
	}

	userEntity, err := s.userRepo.Create(ctx, &model.UserEntity{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hashedPassword),
		Role:         constant.UserRole,
	})
	if err != nil {
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, s.fail(constant.ErrInternal)
	}

	return s.startSession(ctx, "[Register]", userEntity)
}

func (s *sessionAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	prev := s.begin()
	if err := delay.Wait(ctx, s.config.Auth.SimulatedLatency); err != nil {
		s.abandon(prev)
		return nil, errors.SetCustomError(constant.ErrCanceled)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, s.fail(constant.ErrInternal)
	}
	if user == nil {
		return nil, s.fail(constant.ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, s.fail(constant.ErrInvalidCredentials)
	}

	return s.startSession(ctx, "[Login]", user)
}

func (s *sessionAppImpl) Logout(ctx context.Context) error {
	if err := s.sessionRepo.Clear(ctx); err != nil {
		logger.Error("[Logout] err sessionRepo.Clear", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	s.mu.Lock()
	s.state = model.Session{State: constant.SessionAnonymous}
	s.mu.Unlock()
	return nil
}

func (s *sessionAppImpl) ClearError() {
	s.mu.Lock()
	s.state.Error = ""
	s.mu.Unlock()
}

func (s *sessionAppImpl) Snapshot() model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.state
	if snap.User != nil {
		u := *snap.User
		snap.User = &u
	}
	return snap
}

// startSession persists the redacted user and issues an access token.
func (s *sessionAppImpl) startSession(ctx context.Context, op string, user *model.UserEntity) (*model.AuthResponse, error) {
	sessionUser := user.Redact()
	if err := s.sessionRepo.Set(ctx, sessionUser); err != nil {
		logger.Error(op+" err sessionRepo.Set", zap.String("error", err.Error()))
		return nil, s.fail(constant.ErrInternal)
	}

	token, _, err := s.generateJWT(user.ID, accessAudience, s.config.Auth.JWTExpiration)
	if err != nil {
		logger.Error(op+" err generateJWT", zap.String("error", err.Error()))
		return nil, s.fail(constant.ErrInternal)
	}

	s.settle(sessionUser, "")
	u := *sessionUser
	return &model.AuthResponse{User: &u, Token: token}, nil
}

func (s *sessionAppImpl) seedDemoUser(ctx context.Context) error {
	s.registryMu.Lock()
	defer s.registryMu.Unlock()

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(constant.DemoUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.userRepo.Create(ctx, &model.UserEntity{
		FirstName:    constant.DemoUserFirstName,
		LastName:     constant.DemoUserLastName,
		Email:        constant.DemoUserEmail,
		Phone:        constant.DemoUserPhone,
		PasswordHash: string(hashedPassword),
		Role:         constant.UserRole,
	})
	if err != nil {
		return err
	}

	logger.Info("[Initialize] demo user created", zap.String("email", constant.DemoUserEmail))
	return nil
}

// begin enters the loading state and returns the state it replaced.
func (s *sessionAppImpl) begin() model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state
	s.state.Loading = true
	s.state.State = constant.SessionLoading
	s.state.Error = ""
	return prev
}

// abandon leaves loading after a cancelled request without recording an
// error.
func (s *sessionAppImpl) abandon(prev model.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Loading = false
	s.state.State = settledState(s.state.User)
	s.state.Error = prev.Error
}

// fail leaves loading, keeps the authentication state and mirrors the
// error message into the session.
func (s *sessionAppImpl) fail(errType constant.ErrorType) error {
	err := errors.SetCustomError(errType)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Loading = false
	s.state.State = settledState(s.state.User)
	s.state.Error = err.Error()
	return err
}

func (s *sessionAppImpl) settle(user *model.SessionUser, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = model.Session{
		User:            user,
		IsAuthenticated: user != nil,
		Error:           errMsg,
		State:           settledState(user),
	}
}

func settledState(user *model.SessionUser) constant.SessionState {
	if user != nil {
		return constant.SessionAuthenticated
	}
	return constant.SessionAnonymous
}
