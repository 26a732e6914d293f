package directory

import (
	"context"
	stderrors "errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/muhammadheryan/fashion-directory/cmd/config"
	"github.com/muhammadheryan/fashion-directory/constant"
	"github.com/muhammadheryan/fashion-directory/model"
	designerrepo "github.com/muhammadheryan/fashion-directory/repository/designer"
	"github.com/muhammadheryan/fashion-directory/repository/storage"
	"github.com/muhammadheryan/fashion-directory/thirdparty/rabbitmq"
	"github.com/muhammadheryan/fashion-directory/utils/errors"
	"github.com/muhammadheryan/fashion-directory/utils/logger"
	"go.uber.org/zap"
)

// DirectoryApp owns the designer collection and the search criteria.
type DirectoryApp interface {
	Initialize(ctx context.Context) error
	// AddDesigner stores a new designer. Input is not form-validated here;
	// only a storage failure makes it fail.
	AddDesigner(ctx context.Context, req *model.DesignerRequest) (*model.Designer, error)
	// UpdateDesigner replaces the designer with the same id, dropping blank
	// services. It returns nil and writes nothing when no designer has that
	// id.
	UpdateDesigner(ctx context.Context, designer *model.Designer) (*model.Designer, error)
	DeleteDesigner(ctx context.Context, id uint64) error
	GetDesigner(ctx context.Context, id uint64) (*model.Designer, error)
	ListDesigners(ctx context.Context) []model.Designer
	SetSearchFilters(ctx context.Context, filters model.SearchFilters)
	SearchFilters(ctx context.Context) model.SearchFilters
	GetFilteredDesigners(ctx context.Context) []model.Designer
}

type directoryAppImpl struct {
	config       *config.Config
	designerRepo designerrepo.DesignerRepository
	publisher    rabbitmq.DesignerEventPublisher
	now          func() time.Time

	mu        sync.RWMutex
	designers []model.Designer
	filters   model.SearchFilters
	lastID    uint64
}

// NewDirectoryApp builds the store. publisher may be nil.
func NewDirectoryApp(config *config.Config, designerRepo designerrepo.DesignerRepository, publisher rabbitmq.DesignerEventPublisher) DirectoryApp {
	return &directoryAppImpl{
		config:       config,
		designerRepo: designerRepo,
		publisher:    publisher,
		now:          time.Now,
		designers:    []model.Designer{},
		filters:      DefaultFilters(),
	}
}

func (s *directoryAppImpl) Initialize(ctx context.Context) error {
	if s.config.Directory.ResetCacheOnStart {
		if err := s.designerRepo.Clear(ctx); err != nil {
			return fmt.Errorf("clear designer cache: %w", err)
		}
		logger.Info("[Initialize] designer cache cleared")
	}

	designers, err := s.designerRepo.Load(ctx)
	if err != nil && !stderrors.Is(err, storage.ErrMalformedState) {
		return fmt.Errorf("load designers: %w", err)
	}
	if err != nil {
		logger.Warn("[Initialize] discarding unreadable designer collection", zap.String("error", err.Error()))
		designers = nil
	}

	if designers == nil {
		designers, err = LoadSeed(s.config.Directory.SeedFile)
		if err != nil {
			return err
		}
		if err := s.designerRepo.Save(ctx, designers); err != nil {
			return fmt.Errorf("save seed designers: %w", err)
		}
		logger.Info("[Initialize] designer collection seeded", zap.Int("count", len(designers)))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.designers = designers
	s.filters = DefaultFilters()
	s.lastID = 0
	for _, d := range designers {
		if d.ID > s.lastID {
			s.lastID = d.ID
		}
	}
	return nil
}

func (s *directoryAppImpl) AddDesigner(ctx context.Context, req *model.DesignerRequest) (*model.Designer, error) {
	designer := model.Designer{
		Name:         req.Name,
		Specialty:    req.Specialty,
		Location:     req.Location,
		Phone:        req.Phone,
		Email:        req.Email,
		Experience:   req.Experience,
		Description:  req.Description,
		Services:     dropBlank(req.Services),
		WorkingHours: req.WorkingHours,
		Image:        req.Image,
		Portfolio:    slices.Clone(req.Portfolio),
	}
	if designer.Portfolio == nil {
		designer.Portfolio = []model.PortfolioItem{}
	}
	if strings.TrimSpace(designer.Image) == "" {
		designer.Image = constant.PlaceholderDesignerImage
	}

	s.mu.Lock()
	now := s.now()
	designer.ID = s.nextID(now)
	designer.Rating = 0
	designer.CreatedAt = now.UTC()

	next := make([]model.Designer, 0, len(s.designers)+1)
	next = append(next, s.designers...)
	next = append(next, designer)
	if err := s.commit(ctx, next); err != nil {
		s.mu.Unlock()
		logger.Error("[AddDesigner] err designerRepo.Save", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	s.lastID = designer.ID
	s.mu.Unlock()

	s.publish(ctx, constant.DesignerCreated, designer)
	out := cloneDesigner(designer)
	return &out, nil
}

func (s *directoryAppImpl) UpdateDesigner(ctx context.Context, designer *model.Designer) (*model.Designer, error) {
	if designer.Rating < constant.MinRating || designer.Rating > constant.MaxRating {
		logger.Info("[UpdateDesigner] rating out of range", zap.Float64("rating", designer.Rating))
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	s.mu.Lock()
	idx := s.indexOf(designer.ID)
	if idx < 0 {
		s.mu.Unlock()
		return nil, nil
	}

	updated := cloneDesigner(*designer)
	updated.Services = dropBlank(designer.Services)
	next := append([]model.Designer(nil), s.designers...)
	next[idx] = updated
	if err := s.commit(ctx, next); err != nil {
		s.mu.Unlock()
		logger.Error("[UpdateDesigner] err designerRepo.Save", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	s.mu.Unlock()

	s.publish(ctx, constant.DesignerUpdated, updated)
	out := cloneDesigner(updated)
	return &out, nil
}

func (s *directoryAppImpl) DeleteDesigner(ctx context.Context, id uint64) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}

	removed := s.designers[idx]
	next := make([]model.Designer, 0, len(s.designers)-1)
	next = append(next, s.designers[:idx]...)
	next = append(next, s.designers[idx+1:]...)
	if err := s.commit(ctx, next); err != nil {
		s.mu.Unlock()
		logger.Error("[DeleteDesigner] err designerRepo.Save", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	s.mu.Unlock()

	s.publish(ctx, constant.DesignerDeleted, removed)
	return nil
}

func (s *directoryAppImpl) GetDesigner(ctx context.Context, id uint64) (*model.Designer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	out := cloneDesigner(s.designers[idx])
	return &out, nil
}

func (s *directoryAppImpl) ListDesigners(ctx context.Context) []model.Designer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneDesigners(s.designers)
}

func (s *directoryAppImpl) SetSearchFilters(ctx context.Context, filters model.SearchFilters) {
	s.mu.Lock()
	s.filters = filters
	s.mu.Unlock()
}

func (s *directoryAppImpl) SearchFilters(ctx context.Context) model.SearchFilters {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filters
}

func (s *directoryAppImpl) GetFilteredDesigners(ctx context.Context) []model.Designer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneDesigners(FilterDesigners(s.designers, s.filters))
}

// commit persists next and makes it the current collection. The caller
// holds mu.
func (s *directoryAppImpl) commit(ctx context.Context, next []model.Designer) error {
	if err := s.designerRepo.Save(ctx, next); err != nil {
		return err
	}
	s.designers = next
	return nil
}

// nextID derives an id from the clock, bumped past every id seen so far.
// The caller holds mu.
func (s *directoryAppImpl) nextID(now time.Time) uint64 {
	id := uint64(now.UnixMilli())
	if id <= s.lastID {
		id = s.lastID + 1
	}
	return id
}

func (s *directoryAppImpl) indexOf(id uint64) int {
	for i := range s.designers {
		if s.designers[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *directoryAppImpl) publish(ctx context.Context, eventType constant.DesignerEventType, d model.Designer) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishDesignerEvent(ctx, rabbitmq.DesignerEventMessage{
		Type:       eventType,
		DesignerID: d.ID,
		Name:       d.Name,
		OccurredAt: s.now().UTC(),
	})
	if err != nil {
		logger.Warn("[publish] err publisher.PublishDesignerEvent",
			zap.String("type", string(eventType)),
			zap.Uint64("designer_id", d.ID),
			zap.String("error", err.Error()))
	}
}

func dropBlank(services []string) []string {
	out := make([]string, 0, len(services))
	for _, s := range services {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

func cloneDesigner(d model.Designer) model.Designer {
	d.Services = slices.Clone(d.Services)
	d.Portfolio = slices.Clone(d.Portfolio)
	return d
}

func cloneDesigners(designers []model.Designer) []model.Designer {
	out := make([]model.Designer, len(designers))
	for i := range designers {
		out[i] = cloneDesigner(designers[i])
	}
	return out
}
