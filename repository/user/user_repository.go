package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/muhammadheryan/fashion-directory/constant"
	"github.com/muhammadheryan/fashion-directory/model"
	"github.com/muhammadheryan/fashion-directory/repository/storage"
	"github.com/muhammadheryan/fashion-directory/utils/logger"
	"go.uber.org/zap"
)

// ErrUserNotFound is returned by updates addressing an unknown user.
var ErrUserNotFound = errors.New("user not found")

type Registry struct {
	store storage.Storage
	now   func() time.Time
}

// UserRepository is the persisted user registry. A registry that cannot
// be decoded is treated as empty.
type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	List(ctx context.Context) ([]model.UserEntity, error)
	UpdatePasswordHash(ctx context.Context, userID uint64, passwordHash string) error
}

func NewUserRepository(store storage.Storage) UserRepository {
	return &Registry{store: store, now: time.Now}
}

// Create appends data to the registry, assigning an id greater than any
// existing one and a creation time when none is set.
func (r *Registry) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	now := r.now()
	id := uint64(now.UnixMilli())
	for _, u := range users {
		if u.ID >= id {
			id = u.ID + 1
		}
	}

	created := *data
	created.ID = id
	if created.CreatedAt.IsZero() {
		created.CreatedAt = now.UTC()
	}
	if created.Role == "" {
		created.Role = constant.UserRole
	}

	if err := r.save(ctx, append(users, created)); err != nil {
		return nil, err
	}
	return &created, nil
}

// Get returns the first user matching every non-empty filter field, nil
// when there is none.
func (r *Registry) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if filter.ID != 0 && users[i].ID != filter.ID {
			continue
		}
		if filter.Email != "" && users[i].Email != filter.Email {
			continue
		}
		return &users[i], nil
	}
	return nil, nil
}

func (r *Registry) List(ctx context.Context) ([]model.UserEntity, error) {
	data, err := r.store.Load(ctx, constant.StorageKeyUserRegistry)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []model.UserEntity{}, nil
	}

	var users []model.UserEntity
	if err := json.Unmarshal(data, &users); err != nil {
		logger.Warn("[UserRepository] discarding unreadable registry",
			zap.Error(fmt.Errorf("%w: %v", storage.ErrMalformedState, err)))
		return []model.UserEntity{}, nil
	}
	if users == nil {
		users = []model.UserEntity{}
	}
	return users, nil
}

func (r *Registry) UpdatePasswordHash(ctx context.Context, userID uint64, passwordHash string) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}

	for i := range users {
		if users[i].ID == userID {
			users[i].PasswordHash = passwordHash
			return r.save(ctx, users)
		}
	}
	return ErrUserNotFound
}

func (r *Registry) save(ctx context.Context, users []model.UserEntity) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}
	return r.store.Save(ctx, constant.StorageKeyUserRegistry, data)
}
