package docs

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/syberke1354/exion-sub001/internal/domain/model"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("document not found")
)

const downloadURLTTL = 5 * time.Minute

type Store interface {
	CreateDocument(ctx context.Context, doc model.Document) (model.Document, error)
	ListDocuments(ctx context.Context) ([]model.Document, error)
	GetDocument(ctx context.Context, id int64) (model.Document, error)
	DeleteDocument(ctx context.Context, id int64) (model.Document, error)
}

type ObjectStorage interface {
	EnsureBucket(ctx context.Context) error
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

type Service struct {
	store   Store
	storage ObjectStorage
}

func NewService(store Store, storage ObjectStorage) *Service {
	return &Service{store: store, storage: storage}
}

func (s *Service) Upload(ctx context.Context, uploadedBy int64, title, fileName, contentType string, body io.Reader, size int64) (model.Document, error) {
	if strings.TrimSpace(title) == "" || body == nil || size <= 0 {
		return model.Document{}, ErrValidation
	}
	if s.store == nil || s.storage == nil {
		return model.Document{}, fmt.Errorf("docs dependencies are not configured")
	}

	if err := s.storage.EnsureBucket(ctx); err != nil {
		return model.Document{}, fmt.Errorf("ensure bucket: %w", err)
	}

	objectKey, err := buildObjectKey(fileName)
	if err != nil {
		return model.Document{}, fmt.Errorf("build object key: %w", err)
	}

	if strings.TrimSpace(contentType) == "" {
		contentType = "application/octet-stream"
	}

	if err := s.storage.Put(ctx, objectKey, body, size, contentType); err != nil {
		return model.Document{}, fmt.Errorf("put object: %w", err)
	}

	doc, err := s.store.CreateDocument(ctx, model.Document{
		Title:       strings.TrimSpace(title),
		FileName:    strings.TrimSpace(fileName),
		ObjectKey:   objectKey,
		ContentType: contentType,
		SizeBytes:   size,
		UploadedBy:  uploadedBy,
	})
	if err != nil {
		_ = s.storage.Delete(ctx, objectKey)
		return model.Document{}, fmt.Errorf("create document record: %w", err)
	}

	return doc, nil
}

func (s *Service) List(ctx context.Context) ([]model.Document, error) {
	if s.store == nil {
		return nil, fmt.Errorf("docs store is not configured")
	}
	docs, err := s.store.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

func (s *Service) DownloadURL(ctx context.Context, id int64) (string, error) {
	if id <= 0 {
		return "", ErrValidation
	}
	if s.store == nil || s.storage == nil {
		return "", fmt.Errorf("docs dependencies are not configured")
	}

	doc, err := s.store.GetDocument(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("get document: %w", err)
	}

	url, err := s.storage.PresignGet(ctx, doc.ObjectKey, downloadURLTTL)
	if err != nil {
		return "", fmt.Errorf("presign download url: %w", err)
	}
	return url, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrValidation
	}
	if s.store == nil || s.storage == nil {
		return fmt.Errorf("docs dependencies are not configured")
	}

	doc, err := s.store.DeleteDocument(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete document record: %w", err)
	}

	if err := s.storage.Delete(ctx, doc.ObjectKey); err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

func buildObjectKey(fileName string) (string, error) {
	rnd := make([]byte, 8)
	if _, err := rand.Read(rnd); err != nil {
		return "", err
	}

	ext := strings.ToLower(path.Ext(strings.TrimSpace(fileName)))
	if ext == "" {
		ext = ".bin"
	}

	stamp := time.Now().UTC().Format("20060102T150405")
	return fmt.Sprintf("documents/%s_%s%s", stamp, hex.EncodeToString(rnd), ext), nil
}

func DownloadURLTTL() time.Duration {
	return downloadURLTTL
}
