package content

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/syberke1354/exion-sub001/internal/domain/model"
	mediasvc "github.com/syberke1354/exion-sub001/internal/services/media"
)

type fakeStore struct {
	extracurriculars map[int64]model.Extracurricular
	achievements     map[int64]model.Achievement
	nextID           int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		extracurriculars: map[int64]model.Extracurricular{},
		achievements:     map[int64]model.Achievement{},
	}
}

func (f *fakeStore) ListExtracurriculars(_ context.Context, onlyActive bool) ([]model.Extracurricular, error) {
	out := make([]model.Extracurricular, 0, len(f.extracurriculars))
	for _, e := range f.extracurriculars {
		if onlyActive && !e.IsActive {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeStore) GetExtracurricularBySlug(_ context.Context, slug string) (model.Extracurricular, error) {
	for _, e := range f.extracurriculars {
		if e.Slug == slug {
			return e, nil
		}
	}
	return model.Extracurricular{}, ErrNotFound
}

func (f *fakeStore) CreateExtracurricular(_ context.Context, e model.Extracurricular) (model.Extracurricular, error) {
	f.nextID++
	e.ID = f.nextID
	f.extracurriculars[e.ID] = e
	return e, nil
}

func (f *fakeStore) UpdateExtracurricular(_ context.Context, e model.Extracurricular) (model.Extracurricular, error) {
	if _, ok := f.extracurriculars[e.ID]; !ok {
		return model.Extracurricular{}, ErrNotFound
	}
	f.extracurriculars[e.ID] = e
	return e, nil
}

func (f *fakeStore) DeleteExtracurricular(_ context.Context, id int64) (model.Extracurricular, error) {
	e, ok := f.extracurriculars[id]
	if !ok {
		return model.Extracurricular{}, ErrNotFound
	}
	delete(f.extracurriculars, id)
	return e, nil
}

func (f *fakeStore) ListAchievements(_ context.Context) ([]model.Achievement, error) {
	out := make([]model.Achievement, 0, len(f.achievements))
	for _, a := range f.achievements {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeStore) CreateAchievement(_ context.Context, a model.Achievement) (model.Achievement, error) {
	f.nextID++
	a.ID = f.nextID
	f.achievements[a.ID] = a
	return a, nil
}

func (f *fakeStore) UpdateAchievement(_ context.Context, a model.Achievement) (model.Achievement, error) {
	if _, ok := f.achievements[a.ID]; !ok {
		return model.Achievement{}, ErrNotFound
	}
	f.achievements[a.ID] = a
	return a, nil
}

func (f *fakeStore) DeleteAchievement(_ context.Context, id int64) (model.Achievement, error) {
	a, ok := f.achievements[id]
	if !ok {
		return model.Achievement{}, ErrNotFound
	}
	delete(f.achievements, id)
	return a, nil
}

type fakeDestroyer struct {
	destroyed []string
	err       error
}

func (f *fakeDestroyer) Destroy(_ context.Context, publicID string) (mediasvc.DestroyResult, error) {
	f.destroyed = append(f.destroyed, publicID)
	if f.err != nil {
		return mediasvc.DestroyResult{}, f.err
	}
	return mediasvc.DestroyResult{Result: "ok"}, nil
}

func TestCreateExtracurricularGeneratesSlug(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeDestroyer{}, zap.NewNop())

	created, err := svc.CreateExtracurricular(context.Background(), model.Extracurricular{
		Name:     "Pencak Silat",
		Category: "olahraga",
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Slug != "pencak-silat" {
		t.Fatalf("unexpected slug: %q", created.Slug)
	}
}

func TestCreateExtracurricularValidation(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeDestroyer{}, zap.NewNop())

	_, err := svc.CreateExtracurricular(context.Background(), model.Extracurricular{Name: "  "})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestDeleteExtracurricularDestroysAttachedImage(t *testing.T) {
	store := newFakeStore()
	destroyer := &fakeDestroyer{}
	svc := NewService(store, destroyer, zap.NewNop())

	created, err := svc.CreateExtracurricular(context.Background(), model.Extracurricular{
		Name:          "Futsal",
		Category:      "olahraga",
		ImagePublicID: "uploads/futsal1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.DeleteExtracurricular(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(destroyer.destroyed) != 1 || destroyer.destroyed[0] != "uploads/futsal1" {
		t.Fatalf("attached image must be destroyed, got %v", destroyer.destroyed)
	}
}

func TestDeleteExtracurricularSurvivesImageDestroyFailure(t *testing.T) {
	store := newFakeStore()
	destroyer := &fakeDestroyer{err: errors.New("host down")}
	svc := NewService(store, destroyer, zap.NewNop())

	created, err := svc.CreateExtracurricular(context.Background(), model.Extracurricular{
		Name:          "Basket",
		Category:      "olahraga",
		ImagePublicID: "uploads/basket1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.DeleteExtracurricular(context.Background(), created.ID); err != nil {
		t.Fatalf("record delete must succeed even when image destroy fails: %v", err)
	}
}

func TestDeleteExtracurricularNotFound(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeDestroyer{}, zap.NewNop())
	if err := svc.DeleteExtracurricular(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateAchievement(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, &fakeDestroyer{}, zap.NewNop())

	created, err := svc.CreateAchievement(context.Background(), model.Achievement{
		Title: "Juara 1 Futsal",
		Level: "kota",
		Year:  2024,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	created.Title = "Juara 1 Futsal Tingkat Kota"
	created.Year = 2025
	updated, err := svc.UpdateAchievement(context.Background(), created)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Juara 1 Futsal Tingkat Kota" || updated.Year != 2025 {
		t.Fatalf("unexpected updated record: %+v", updated)
	}
	if stored := store.achievements[created.ID]; stored.Title != updated.Title {
		t.Fatalf("store not updated: %+v", stored)
	}
}

func TestUpdateAchievementValidationAndNotFound(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeDestroyer{}, zap.NewNop())

	_, err := svc.UpdateAchievement(context.Background(), model.Achievement{ID: 0, Title: "x", Year: 2024})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for missing id, got %v", err)
	}
	_, err = svc.UpdateAchievement(context.Background(), model.Achievement{ID: 1, Title: "  ", Year: 2024})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for blank title, got %v", err)
	}
	_, err = svc.UpdateAchievement(context.Background(), model.Achievement{ID: 99, Title: "Juara", Year: 2024})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Pencak Silat":        "pencak-silat",
		"  KIR (Karya Ilmiah Remaja)  ": "kir-karya-ilmiah-remaja",
		"Futsal":              "futsal",
		"Tari -- Tradisional": "tari-tradisional",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
