package content

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/syberke1354/exion-sub001/internal/domain/model"
	mediasvc "github.com/syberke1354/exion-sub001/internal/services/media"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("record not found")
)

type Store interface {
	ListExtracurriculars(ctx context.Context, onlyActive bool) ([]model.Extracurricular, error)
	GetExtracurricularBySlug(ctx context.Context, slug string) (model.Extracurricular, error)
	CreateExtracurricular(ctx context.Context, e model.Extracurricular) (model.Extracurricular, error)
	UpdateExtracurricular(ctx context.Context, e model.Extracurricular) (model.Extracurricular, error)
	DeleteExtracurricular(ctx context.Context, id int64) (model.Extracurricular, error)

	ListAchievements(ctx context.Context) ([]model.Achievement, error)
	CreateAchievement(ctx context.Context, a model.Achievement) (model.Achievement, error)
	UpdateAchievement(ctx context.Context, a model.Achievement) (model.Achievement, error)
	DeleteAchievement(ctx context.Context, id int64) (model.Achievement, error)
}

// ImageDestroyer removes an attached image from the media host when its
// owning record goes away. *media.Service satisfies it.
type ImageDestroyer interface {
	Destroy(ctx context.Context, publicID string) (mediasvc.DestroyResult, error)
}

type Service struct {
	store  Store
	images ImageDestroyer
	log    *zap.Logger
}

func NewService(store Store, images ImageDestroyer, log *zap.Logger) *Service {
	return &Service{store: store, images: images, log: log}
}

func (s *Service) ListExtracurriculars(ctx context.Context, onlyActive bool) ([]model.Extracurricular, error) {
	if s.store == nil {
		return nil, fmt.Errorf("content store is not configured")
	}
	items, err := s.store.ListExtracurriculars(ctx, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("list extracurriculars: %w", err)
	}
	return items, nil
}

func (s *Service) GetExtracurricular(ctx context.Context, slug string) (model.Extracurricular, error) {
	if strings.TrimSpace(slug) == "" {
		return model.Extracurricular{}, ErrValidation
	}
	if s.store == nil {
		return model.Extracurricular{}, fmt.Errorf("content store is not configured")
	}
	return s.store.GetExtracurricularBySlug(ctx, slug)
}

func (s *Service) CreateExtracurricular(ctx context.Context, e model.Extracurricular) (model.Extracurricular, error) {
	if strings.TrimSpace(e.Name) == "" || strings.TrimSpace(e.Category) == "" {
		return model.Extracurricular{}, ErrValidation
	}
	if s.store == nil {
		return model.Extracurricular{}, fmt.Errorf("content store is not configured")
	}

	if strings.TrimSpace(e.Slug) == "" {
		e.Slug = Slugify(e.Name)
	}

	created, err := s.store.CreateExtracurricular(ctx, e)
	if err != nil {
		return model.Extracurricular{}, fmt.Errorf("create extracurricular: %w", err)
	}
	return created, nil
}

func (s *Service) UpdateExtracurricular(ctx context.Context, e model.Extracurricular) (model.Extracurricular, error) {
	if e.ID <= 0 || strings.TrimSpace(e.Name) == "" {
		return model.Extracurricular{}, ErrValidation
	}
	if s.store == nil {
		return model.Extracurricular{}, fmt.Errorf("content store is not configured")
	}

	updated, err := s.store.UpdateExtracurricular(ctx, e)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.Extracurricular{}, ErrNotFound
		}
		return model.Extracurricular{}, fmt.Errorf("update extracurricular: %w", err)
	}
	return updated, nil
}

// DeleteExtracurricular removes the record and, best effort, its attached
// image on the media host. A failed image destroy is logged, never
// surfaced: the record is already gone.
func (s *Service) DeleteExtracurricular(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrValidation
	}
	if s.store == nil {
		return fmt.Errorf("content store is not configured")
	}

	deleted, err := s.store.DeleteExtracurricular(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete extracurricular: %w", err)
	}

	s.destroyImage(ctx, deleted.ImagePublicID)
	return nil
}

func (s *Service) ListAchievements(ctx context.Context) ([]model.Achievement, error) {
	if s.store == nil {
		return nil, fmt.Errorf("content store is not configured")
	}
	items, err := s.store.ListAchievements(ctx)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	return items, nil
}

func (s *Service) CreateAchievement(ctx context.Context, a model.Achievement) (model.Achievement, error) {
	if strings.TrimSpace(a.Title) == "" || a.Year <= 0 {
		return model.Achievement{}, ErrValidation
	}
	if s.store == nil {
		return model.Achievement{}, fmt.Errorf("content store is not configured")
	}

	created, err := s.store.CreateAchievement(ctx, a)
	if err != nil {
		return model.Achievement{}, fmt.Errorf("create achievement: %w", err)
	}
	return created, nil
}

func (s *Service) UpdateAchievement(ctx context.Context, a model.Achievement) (model.Achievement, error) {
	if a.ID <= 0 || strings.TrimSpace(a.Title) == "" || a.Year <= 0 {
		return model.Achievement{}, ErrValidation
	}
	if s.store == nil {
		return model.Achievement{}, fmt.Errorf("content store is not configured")
	}

	updated, err := s.store.UpdateAchievement(ctx, a)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.Achievement{}, ErrNotFound
		}
		return model.Achievement{}, fmt.Errorf("update achievement: %w", err)
	}
	return updated, nil
}

func (s *Service) DeleteAchievement(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrValidation
	}
	if s.store == nil {
		return fmt.Errorf("content store is not configured")
	}

	deleted, err := s.store.DeleteAchievement(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete achievement: %w", err)
	}

	s.destroyImage(ctx, deleted.ImagePublicID)
	return nil
}

func (s *Service) destroyImage(ctx context.Context, publicID string) {
	if s.images == nil || strings.TrimSpace(publicID) == "" {
		return
	}
	if _, err := s.images.Destroy(ctx, publicID); err != nil && s.log != nil {
		s.log.Warn("destroy attached image failed",
			zap.String("public_id", publicID),
			zap.Error(err),
		)
	}
}

// Slugify turns a display name into a URL slug: lowercase, runs of
// non-alphanumerics collapsed into single dashes.
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
