package resettoken

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/muhammadheryan/fashion-directory/constant"
	"github.com/muhammadheryan/fashion-directory/model"
	"github.com/muhammadheryan/fashion-directory/repository/storage"
	"github.com/muhammadheryan/fashion-directory/utils/logger"
	"go.uber.org/zap"
)

type Store struct {
	store storage.Storage
	now   func() time.Time

	// mu serializes the load-modify-save cycles on the token document.
	mu sync.Mutex
}

// ResetTokenRepository keeps the password reset tokens that have been
// issued and not consumed yet.
type ResetTokenRepository interface {
	Save(ctx context.Context, token *model.ResetToken) error
	// Get returns nil when the token is unknown or expired.
	Get(ctx context.Context, id string) (*model.ResetToken, error)
	// Consume removes the token and returns it. Only one caller gets a
	// given token; the others, like callers with unknown or expired ids,
	// get nil.
	Consume(ctx context.Context, id string) (*model.ResetToken, error)
	Delete(ctx context.Context, id string) error
}

func NewResetTokenRepository(store storage.Storage) ResetTokenRepository {
	return &Store{store: store, now: time.Now}
}

// Save adds token and drops expired ones.
func (s *Store) Save(ctx context.Context, token *model.ResetToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tokens, err := s.list(ctx)
	if err != nil {
		return err
	}
	return s.save(ctx, append(s.live(tokens), *token))
}

func (s *Store) Get(ctx context.Context, id string) (*model.ResetToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tokens, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range s.live(tokens) {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, nil
}

func (s *Store) Consume(ctx context.Context, id string) (*model.ResetToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tokens, err := s.list(ctx)
	if err != nil {
		return nil, err
	}

	var found *model.ResetToken
	kept := make([]model.ResetToken, 0, len(tokens))
	for _, t := range s.live(tokens) {
		if t.ID == id && found == nil {
			found = &t
			continue
		}
		kept = append(kept, t)
	}
	if found == nil {
		return nil, nil
	}
	if err := s.save(ctx, kept); err != nil {
		return nil, err
	}
	return found, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tokens, err := s.list(ctx)
	if err != nil {
		return err
	}

	kept := make([]model.ResetToken, 0, len(tokens))
	for _, t := range tokens {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tokens) {
		return nil
	}
	return s.save(ctx, kept)
}

func (s *Store) live(tokens []model.ResetToken) []model.ResetToken {
	now := s.now()
	out := make([]model.ResetToken, 0, len(tokens))
	for _, t := range tokens {
		if now.Before(t.ExpiresAt) {
			out = append(out, t)
		}
	}
	return out
}

func (s *Store) list(ctx context.Context) ([]model.ResetToken, error) {
	data, err := s.store.Load(ctx, constant.StorageKeyResetTokens)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var tokens []model.ResetToken
	if err := json.Unmarshal(data, &tokens); err != nil {
		logger.Warn("[ResetTokenRepository] discarding unreadable tokens",
			zap.Error(fmt.Errorf("%w: %v", storage.ErrMalformedState, err)))
		return nil, nil
	}
	return tokens, nil
}

func (s *Store) save(ctx context.Context, tokens []model.ResetToken) error {
	data, err := json.Marshal(tokens)
	if err != nil {
		return fmt.Errorf("encode reset tokens: %w", err)
	}
	return s.store.Save(ctx, constant.StorageKeyResetTokens, data)
}
