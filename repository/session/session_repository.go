package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/muhammadheryan/fashion-directory/constant"
	"github.com/muhammadheryan/fashion-directory/model"
	"github.com/muhammadheryan/fashion-directory/repository/storage"
)

type Store struct {
	store storage.Storage
}

// SessionRepository persists the redacted user of the current session.
type SessionRepository interface {
	// Get returns nil when no session is persisted, and an error wrapping
	// storage.ErrMalformedState when the record cannot be decoded.
	Get(ctx context.Context) (*model.SessionUser, error)
	Set(ctx context.Context, user *model.SessionUser) error
	Clear(ctx context.Context) error
}

func NewSessionRepository(store storage.Storage) SessionRepository {
	return &Store{store: store}
}

func (s *Store) Get(ctx context.Context) (*model.SessionUser, error) {
	data, err := s.store.Load(ctx, constant.StorageKeySessionUser)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var user *model.SessionUser
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrMalformedState, err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: empty session record", storage.ErrMalformedState)
	}
	return user, nil
}

func (s *Store) Set(ctx context.Context, user *model.SessionUser) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.store.Save(ctx, constant.StorageKeySessionUser, data)
}

func (s *Store) Clear(ctx context.Context) error {
	return s.store.Remove(ctx, constant.StorageKeySessionUser)
}
