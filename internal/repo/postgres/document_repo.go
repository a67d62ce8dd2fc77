package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/syberke1354/exion-sub001/internal/domain/model"
	"github.com/syberke1354/exion-sub001/internal/services/docs"
)

type DocumentRepo struct {
	pool *pgxpool.Pool
}

func NewDocumentRepo(pool *pgxpool.Pool) *DocumentRepo {
	return &DocumentRepo{pool: pool}
}

func (r *DocumentRepo) CreateDocument(ctx context.Context, doc model.Document) (model.Document, error) {
	if r.pool == nil {
		return model.Document{}, fmt.Errorf("postgres pool is nil")
	}

	err := r.pool.QueryRow(ctx, `
INSERT INTO documents
	(title, file_name, object_key, content_type, size_bytes, uploaded_by, created_at)
VALUES ($1, $2, $3, $4, $5, $6, NOW())
RETURNING id, created_at
`,
		doc.Title, doc.FileName, doc.ObjectKey, doc.ContentType,
		doc.SizeBytes, doc.UploadedBy,
	).Scan(&doc.ID, &doc.CreatedAt)
	if err != nil {
		return model.Document{}, fmt.Errorf("insert document: %w", err)
	}

	return doc, nil
}

func (r *DocumentRepo) ListDocuments(ctx context.Context) ([]model.Document, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("postgres pool is nil")
	}

	rows, err := r.pool.Query(ctx, `
SELECT id, title, file_name, object_key, content_type, size_bytes, uploaded_by, created_at
FROM documents
ORDER BY created_at DESC
`)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var items []model.Document
	for rows.Next() {
		var d model.Document
		if err := rows.Scan(
			&d.ID, &d.Title, &d.FileName, &d.ObjectKey,
			&d.ContentType, &d.SizeBytes, &d.UploadedBy, &d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}

	return items, nil
}

func (r *DocumentRepo) GetDocument(ctx context.Context, id int64) (model.Document, error) {
	if r.pool == nil {
		return model.Document{}, fmt.Errorf("postgres pool is nil")
	}

	var d model.Document
	err := r.pool.QueryRow(ctx, `
SELECT id, title, file_name, object_key, content_type, size_bytes, uploaded_by, created_at
FROM documents
WHERE id = $1
`, id).Scan(
		&d.ID, &d.Title, &d.FileName, &d.ObjectKey,
		&d.ContentType, &d.SizeBytes, &d.UploadedBy, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Document{}, docs.ErrNotFound
		}
		return model.Document{}, fmt.Errorf("get document: %w", err)
	}

	return d, nil
}

func (r *DocumentRepo) DeleteDocument(ctx context.Context, id int64) (model.Document, error) {
	if r.pool == nil {
		return model.Document{}, fmt.Errorf("postgres pool is nil")
	}

	var d model.Document
	err := r.pool.QueryRow(ctx, `
DELETE FROM documents
WHERE id = $1
RETURNING id, title, file_name, object_key, content_type, size_bytes, uploaded_by, created_at
`, id).Scan(
		&d.ID, &d.Title, &d.FileName, &d.ObjectKey,
		&d.ContentType, &d.SizeBytes, &d.UploadedBy, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Document{}, docs.ErrNotFound
		}
		return model.Document{}, fmt.Errorf("delete document: %w", err)
	}

	return d, nil
}
