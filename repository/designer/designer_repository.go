package designer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/muhammadheryan/fashion-directory/constant"
	"github.com/muhammadheryan/fashion-directory/model"
	"github.com/muhammadheryan/fashion-directory/repository/storage"
)

type Collection struct {
	store storage.Storage
}

// DesignerRepository persists the designer collection as one document.
type DesignerRepository interface {
	// Load returns nil when nothing is persisted, a non-nil (possibly empty)
	// slice otherwise. Undecodable data yields storage.ErrMalformedState.
	Load(ctx context.Context) ([]model.Designer, error)
	Save(ctx context.Context, designers []model.Designer) error
	Clear(ctx context.Context) error
}

func NewDesignerRepository(store storage.Storage) DesignerRepository {
	return &Collection{store: store}
}

func (c *Collection) Load(ctx context.Context) ([]model.Designer, error) {
	data, err := c.store.Load(ctx, constant.StorageKeyDesigners)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var designers []model.Designer
	if err := json.Unmarshal(data, &designers); err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrMalformedState, err)
	}
	if designers == nil {
		designers = []model.Designer{}
	}
	return designers, nil
}

func (c *Collection) Save(ctx context.Context, designers []model.Designer) error {
	if designers == nil {
		designers = []model.Designer{}
	}
	data, err := json.Marshal(designers)
	if err != nil {
		return fmt.Errorf("encode designers: %w", err)
	}
	return c.store.Save(ctx, constant.StorageKeyDesigners, data)
}

func (c *Collection) Clear(ctx context.Context) error {
	return c.store.Remove(ctx, constant.StorageKeyDesigners)
}
