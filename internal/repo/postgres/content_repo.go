package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/syberke1354/exion-sub001/internal/domain/model"
	"github.com/syberke1354/exion-sub001/internal/services/content"
)

// ContentRepo backs the public site content: extracurricular profiles
// and the achievement list.
type ContentRepo struct {
	pool *pgxpool.Pool
}

func NewContentRepo(pool *pgxpool.Pool) *ContentRepo {
	return &ContentRepo{pool: pool}
}

func (r *ContentRepo) ListExtracurriculars(ctx context.Context, onlyActive bool) ([]model.Extracurricular, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("postgres pool is nil")
	}

	query := `
SELECT id, slug, name, category, description, schedule, coach,
       image_public_id, image_url, is_active, created_at, updated_at
FROM extracurriculars
`
	if onlyActive {
		query += "WHERE is_active = TRUE\n"
	}
	query += "ORDER BY name"

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list extracurriculars: %w", err)
	}
	defer rows.Close()

	var items []model.Extracurricular
	for rows.Next() {
		item, err := scanExtracurricular(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate extracurriculars: %w", err)
	}

	return items, nil
}

func (r *ContentRepo) GetExtracurricularBySlug(ctx context.Context, slug string) (model.Extracurricular, error) {
	if r.pool == nil {
		return model.Extracurricular{}, fmt.Errorf("postgres pool is nil")
	}

	row := r.pool.QueryRow(ctx, `
SELECT id, slug, name, category, description, schedule, coach,
       image_public_id, image_url, is_active, created_at, updated_at
FROM extracurriculars
WHERE slug = $1
`, strings.TrimSpace(slug))

	item, err := scanExtracurricular(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Extracurricular{}, content.ErrNotFound
		}
		return model.Extracurricular{}, err
	}
	return item, nil
}

func (r *ContentRepo) CreateExtracurricular(ctx context.Context, e model.Extracurricular) (model.Extracurricular, error) {
	if r.pool == nil {
		return model.Extracurricular{}, fmt.Errorf("postgres pool is nil")
	}

	err := r.pool.QueryRow(ctx, `
INSERT INTO extracurriculars
	(slug, name, category, description, schedule, coach,
	 image_public_id, image_url, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
RETURNING id, created_at, updated_at
`,
		e.Slug, e.Name, e.Category, e.Description, e.Schedule, e.Coach,
		e.ImagePublicID, e.ImageURL, e.IsActive,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return model.Extracurricular{}, fmt.Errorf("insert extracurricular: %w", err)
	}

	return e, nil
}

func (r *ContentRepo) UpdateExtracurricular(ctx context.Context, e model.Extracurricular) (model.Extracurricular, error) {
	if r.pool == nil {
		return model.Extracurricular{}, fmt.Errorf("postgres pool is nil")
	}

	err := r.pool.QueryRow(ctx, `
UPDATE extracurriculars
SET slug = $2, name = $3, category = $4, description = $5, schedule = $6,
    coach = $7, image_public_id = $8, image_url = $9, is_active = $10,
    updated_at = NOW()
WHERE id = $1
RETURNING created_at, updated_at
`,
		e.ID, e.Slug, e.Name, e.Category, e.Description, e.Schedule,
		e.Coach, e.ImagePublicID, e.ImageURL, e.IsActive,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Extracurricular{}, content.ErrNotFound
		}
		return model.Extracurricular{}, fmt.Errorf("update extracurricular: %w", err)
	}

	return e, nil
}

func (r *ContentRepo) DeleteExtracurricular(ctx context.Context, id int64) (model.Extracurricular, error) {
	if r.pool == nil {
		return model.Extracurricular{}, fmt.Errorf("postgres pool is nil")
	}

	row := r.pool.QueryRow(ctx, `
DELETE FROM extracurriculars
WHERE id = $1
RETURNING id, slug, name, category, description, schedule, coach,
          image_public_id, image_url, is_active, created_at, updated_at
`, id)

	item, err := scanExtracurricular(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Extracurricular{}, content.ErrNotFound
		}
		return model.Extracurricular{}, fmt.Errorf("delete extracurricular: %w", err)
	}
	return item, nil
}

func (r *ContentRepo) ListAchievements(ctx context.Context) ([]model.Achievement, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("postgres pool is nil")
	}

	rows, err := r.pool.Query(ctx, `
SELECT id, title, level, year, extracurricular_id, description,
       image_public_id, image_url, created_at
FROM achievements
ORDER BY year DESC, id DESC
`)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	defer rows.Close()

	var items []model.Achievement
	for rows.Next() {
		var a model.Achievement
		if err := rows.Scan(
			&a.ID, &a.Title, &a.Level, &a.Year, &a.ExtracurricularID,
			&a.Description, &a.ImagePublicID, &a.ImageURL, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan achievement: %w", err)
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate achievements: %w", err)
	}

	return items, nil
}

func (r *ContentRepo) CreateAchievement(ctx context.Context, a model.Achievement) (model.Achievement, error) {
	if r.pool == nil {
		return model.Achievement{}, fmt.Errorf("postgres pool is nil")
	}

	err := r.pool.QueryRow(ctx, `
INSERT INTO achievements
	(title, level, year, extracurricular_id, description,
	 image_public_id, image_url, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
RETURNING id, created_at
`,
		a.Title, a.Level, a.Year, a.ExtracurricularID, a.Description,
		a.ImagePublicID, a.ImageURL,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return model.Achievement{}, fmt.Errorf("insert achievement: %w", err)
	}

	return a, nil
}

func (r *ContentRepo) UpdateAchievement(ctx context.Context, a model.Achievement) (model.Achievement, error) {
	if r.pool == nil {
		return model.Achievement{}, fmt.Errorf("postgres pool is nil")
	}

	err := r.pool.QueryRow(ctx, `
UPDATE achievements
SET title = $2, level = $3, year = $4, extracurricular_id = $5,
    description = $6, image_public_id = $7, image_url = $8
WHERE id = $1
RETURNING created_at
`,
		a.ID, a.Title, a.Level, a.Year, a.ExtracurricularID,
		a.Description, a.ImagePublicID, a.ImageURL,
	).Scan(&a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Achievement{}, content.ErrNotFound
		}
		return model.Achievement{}, fmt.Errorf("update achievement: %w", err)
	}

	return a, nil
}

func (r *ContentRepo) DeleteAchievement(ctx context.Context, id int64) (model.Achievement, error) {
	if r.pool == nil {
		return model.Achievement{}, fmt.Errorf("postgres pool is nil")
	}

	var a model.Achievement
	err := r.pool.QueryRow(ctx, `
DELETE FROM achievements
WHERE id = $1
RETURNING id, title, level, year, extracurricular_id, description,
          image_public_id, image_url, created_at
`, id).Scan(
		&a.ID, &a.Title, &a.Level, &a.Year, &a.ExtracurricularID,
		&a.Description, &a.ImagePublicID, &a.ImageURL, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Achievement{}, content.ErrNotFound
		}
		return model.Achievement{}, fmt.Errorf("delete achievement: %w", err)
	}

	return a, nil
}

func scanExtracurricular(row pgx.Row) (model.Extracurricular, error) {
	var e model.Extracurricular
	err := row.Scan(
		&e.ID, &e.Slug, &e.Name, &e.Category, &e.Description, &e.Schedule,
		&e.Coach, &e.ImagePublicID, &e.ImageURL, &e.IsActive,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Extracurricular{}, pgx.ErrNoRows
		}
		return model.Extracurricular{}, fmt.Errorf("scan extracurricular: %w", err)
	}
	return e, nil
}
