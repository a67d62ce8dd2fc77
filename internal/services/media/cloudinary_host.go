package media

import (
	"context"
	"fmt"
	"io"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryHost adapts the Cloudinary SDK to the Host interface used by
// the proxy endpoints.
type CloudinaryHost struct {
	client *cld.Cloudinary
}

func NewCloudinaryHost(client *cld.Cloudinary) *CloudinaryHost {
	return &CloudinaryHost{client: client}
}

func (h *CloudinaryHost) Upload(ctx context.Context, body io.Reader, params UploadParams) (UploadResult, error) {
	if h.client == nil {
		return UploadResult{}, fmt.Errorf("cloudinary client is nil")
	}

	res, err := h.client.Upload.Upload(ctx, body, uploader.UploadParams{
		Folder: params.Folder,
	})
	if err != nil {
		return UploadResult{}, fmt.Errorf("cloudinary upload: %w", err)
	}
	// The SDK reports some API-level failures in the body instead of err.
	if res.Error.Message != "" {
		return UploadResult{}, fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}

	return UploadResult{
		PublicID:     res.PublicID,
		URL:          res.URL,
		SecureURL:    res.SecureURL,
		Format:       res.Format,
		ResourceType: res.ResourceType,
		Bytes:        res.Bytes,
		Width:        res.Width,
		Height:       res.Height,
		CreatedAt:    res.CreatedAt,
	}, nil
}

func (h *CloudinaryHost) Destroy(ctx context.Context, publicID string) (DestroyResult, error) {
	if h.client == nil {
		return DestroyResult{}, fmt.Errorf("cloudinary client is nil")
	}

	res, err := h.client.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return DestroyResult{}, fmt.Errorf("cloudinary destroy: %w", err)
	}
	if res.Error.Message != "" {
		return DestroyResult{}, fmt.Errorf("cloudinary destroy: %s", res.Error.Message)
	}

	return DestroyResult{Result: res.Result}, nil
}
