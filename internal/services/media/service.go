package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

var (
	ErrNoFile     = errors.New("no file provided")
	ErrNoPublicID = errors.New("no publicId provided")
)

const defaultFolder = "uploads"

type UploadParams struct {
	Folder   string
	FileName string
}

// UploadResult mirrors the media host's upload descriptor; the proxy
// endpoint returns it to the caller without transformation.
type UploadResult struct {
	PublicID     string    `json:"public_id"`
	URL          string    `json:"url"`
	SecureURL    string    `json:"secure_url"`
	Format       string    `json:"format,omitempty"`
	ResourceType string    `json:"resource_type,omitempty"`
	Bytes        int       `json:"bytes"`
	Width        int       `json:"width,omitempty"`
	Height       int       `json:"height,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// DestroyResult is the host's deletion outcome, passed through verbatim.
// Deleting an unknown id yields {"result":"not found"} per host semantics;
// the proxy adds no idempotence guarantee of its own.
type DestroyResult struct {
	Result string `json:"result"`
}

type Host interface {
	Upload(ctx context.Context, body io.Reader, params UploadParams) (UploadResult, error)
	Destroy(ctx context.Context, publicID string) (DestroyResult, error)
}

type Service struct {
	host   Host
	folder string
}

func NewService(host Host, folder string) *Service {
	if strings.TrimSpace(folder) == "" {
		folder = defaultFolder
	}
	return &Service{host: host, folder: folder}
}

// Upload forwards one file to the media host scoped to the given folder.
// A nil body never reaches the host.
func (s *Service) Upload(ctx context.Context, body io.Reader, params UploadParams) (UploadResult, error) {
	if body == nil {
		return UploadResult{}, ErrNoFile
	}
	if s.host == nil {
		return UploadResult{}, fmt.Errorf("media host is not configured")
	}

	if strings.TrimSpace(params.Folder) == "" {
		params.Folder = s.folder
	}

	result, err := s.host.Upload(ctx, body, params)
	if err != nil {
		return UploadResult{}, fmt.Errorf("upload to media host: %w", err)
	}

	return result, nil
}

// Destroy requests deletion of one identifier. An empty publicId is
// rejected before any external call is made.
func (s *Service) Destroy(ctx context.Context, publicID string) (DestroyResult, error) {
	if strings.TrimSpace(publicID) == "" {
		return DestroyResult{}, ErrNoPublicID
	}
	if s.host == nil {
		return DestroyResult{}, fmt.Errorf("media host is not configured")
	}

	result, err := s.host.Destroy(ctx, publicID)
	if err != nil {
		return DestroyResult{}, fmt.Errorf("destroy on media host: %w", err)
	}

	return result, nil
}

func DefaultFolder() string {
	return defaultFolder
}
